// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/opencane/edged/ent/lifelogcontext"
	"github.com/opencane/edged/ent/predicate"
)

// LifelogContextUpdate is the builder for updating LifelogContext entities.
type LifelogContextUpdate struct {
	config
	hooks    []Hook
	mutation *LifelogContextMutation
}

// Where appends a list predicates to the LifelogContextUpdate builder.
func (_u *LifelogContextUpdate) Where(ps ...predicate.LifelogContext) *LifelogContextUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetImageID sets the "image_id" field.
func (_u *LifelogContextUpdate) SetImageID(v string) *LifelogContextUpdate {
	_u.mutation.SetImageID(v)
	return _u
}

// SetNillableImageID sets the "image_id" field if the given value is not nil.
func (_u *LifelogContextUpdate) SetNillableImageID(v *string) *LifelogContextUpdate {
	if v != nil {
		_u.SetImageID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LifelogContextUpdate) SetSessionID(v string) *LifelogContextUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LifelogContextUpdate) SetNillableSessionID(v *string) *LifelogContextUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSemanticTitle sets the "semantic_title" field.
func (_u *LifelogContextUpdate) SetSemanticTitle(v string) *LifelogContextUpdate {
	_u.mutation.SetSemanticTitle(v)
	return _u
}

// SetNillableSemanticTitle sets the "semantic_title" field if the given value is not nil.
func (_u *LifelogContextUpdate) SetNillableSemanticTitle(v *string) *LifelogContextUpdate {
	if v != nil {
		_u.SetSemanticTitle(*v)
	}
	return _u
}

// ClearSemanticTitle clears the value of the "semantic_title" field.
func (_u *LifelogContextUpdate) ClearSemanticTitle() *LifelogContextUpdate {
	_u.mutation.ClearSemanticTitle()
	return _u
}

// SetSemanticSummary sets the "semantic_summary" field.
func (_u *LifelogContextUpdate) SetSemanticSummary(v string) *LifelogContextUpdate {
	_u.mutation.SetSemanticSummary(v)
	return _u
}

// SetNillableSemanticSummary sets the "semantic_summary" field if the given value is not nil.
func (_u *LifelogContextUpdate) SetNillableSemanticSummary(v *string) *LifelogContextUpdate {
	if v != nil {
		_u.SetSemanticSummary(*v)
	}
	return _u
}

// ClearSemanticSummary clears the value of the "semantic_summary" field.
func (_u *LifelogContextUpdate) ClearSemanticSummary() *LifelogContextUpdate {
	_u.mutation.ClearSemanticSummary()
	return _u
}

// SetObjects sets the "objects" field.
func (_u *LifelogContextUpdate) SetObjects(v []string) *LifelogContextUpdate {
	_u.mutation.SetObjects(v)
	return _u
}

// AppendObjects appends value to the "objects" field.
func (_u *LifelogContextUpdate) AppendObjects(v []string) *LifelogContextUpdate {
	_u.mutation.AppendObjects(v)
	return _u
}

// ClearObjects clears the value of the "objects" field.
func (_u *LifelogContextUpdate) ClearObjects() *LifelogContextUpdate {
	_u.mutation.ClearObjects()
	return _u
}

// SetOcr sets the "ocr" field.
func (_u *LifelogContextUpdate) SetOcr(v []string) *LifelogContextUpdate {
	_u.mutation.SetOcr(v)
	return _u
}

// AppendOcr appends value to the "ocr" field.
func (_u *LifelogContextUpdate) AppendOcr(v []string) *LifelogContextUpdate {
	_u.mutation.AppendOcr(v)
	return _u
}

// ClearOcr clears the value of the "ocr" field.
func (_u *LifelogContextUpdate) ClearOcr() *LifelogContextUpdate {
	_u.mutation.ClearOcr()
	return _u
}

// SetRiskHints sets the "risk_hints" field.
func (_u *LifelogContextUpdate) SetRiskHints(v []string) *LifelogContextUpdate {
	_u.mutation.SetRiskHints(v)
	return _u
}

// AppendRiskHints appends value to the "risk_hints" field.
func (_u *LifelogContextUpdate) AppendRiskHints(v []string) *LifelogContextUpdate {
	_u.mutation.AppendRiskHints(v)
	return _u
}

// ClearRiskHints clears the value of the "risk_hints" field.
func (_u *LifelogContextUpdate) ClearRiskHints() *LifelogContextUpdate {
	_u.mutation.ClearRiskHints()
	return _u
}

// SetActionableSummary sets the "actionable_summary" field.
func (_u *LifelogContextUpdate) SetActionableSummary(v string) *LifelogContextUpdate {
	_u.mutation.SetActionableSummary(v)
	return _u
}

// SetNillableActionableSummary sets the "actionable_summary" field if the given value is not nil.
func (_u *LifelogContextUpdate) SetNillableActionableSummary(v *string) *LifelogContextUpdate {
	if v != nil {
		_u.SetActionableSummary(*v)
	}
	return _u
}

// ClearActionableSummary clears the value of the "actionable_summary" field.
func (_u *LifelogContextUpdate) ClearActionableSummary() *LifelogContextUpdate {
	_u.mutation.ClearActionableSummary()
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *LifelogContextUpdate) SetRiskLevel(v string) *LifelogContextUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *LifelogContextUpdate) SetNillableRiskLevel(v *string) *LifelogContextUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *LifelogContextUpdate) SetRiskScore(v float64) *LifelogContextUpdate {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *LifelogContextUpdate) SetNillableRiskScore(v *float64) *LifelogContextUpdate {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *LifelogContextUpdate) AddRiskScore(v float64) *LifelogContextUpdate {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *LifelogContextUpdate) SetConfidence(v float64) *LifelogContextUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *LifelogContextUpdate) SetNillableConfidence(v *float64) *LifelogContextUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *LifelogContextUpdate) AddConfidence(v float64) *LifelogContextUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_u *LifelogContextUpdate) SetCreatedAtMs(v int64) *LifelogContextUpdate {
	_u.mutation.ResetCreatedAtMs()
	_u.mutation.SetCreatedAtMs(v)
	return _u
}

// SetNillableCreatedAtMs sets the "created_at_ms" field if the given value is not nil.
func (_u *LifelogContextUpdate) SetNillableCreatedAtMs(v *int64) *LifelogContextUpdate {
	if v != nil {
		_u.SetCreatedAtMs(*v)
	}
	return _u
}

// AddCreatedAtMs adds value to the "created_at_ms" field.
func (_u *LifelogContextUpdate) AddCreatedAtMs(v int64) *LifelogContextUpdate {
	_u.mutation.AddCreatedAtMs(v)
	return _u
}

// Mutation returns the LifelogContextMutation object of the builder.
func (_u *LifelogContextUpdate) Mutation() *LifelogContextMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LifelogContextUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LifelogContextUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LifelogContextUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LifelogContextUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LifelogContextUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(lifelogcontext.Table, lifelogcontext.Columns, sqlgraph.NewFieldSpec(lifelogcontext.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ImageID(); ok {
		_spec.SetField(lifelogcontext.FieldImageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lifelogcontext.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SemanticTitle(); ok {
		_spec.SetField(lifelogcontext.FieldSemanticTitle, field.TypeString, value)
	}
	if _u.mutation.SemanticTitleCleared() {
		_spec.ClearField(lifelogcontext.FieldSemanticTitle, field.TypeString)
	}
	if value, ok := _u.mutation.SemanticSummary(); ok {
		_spec.SetField(lifelogcontext.FieldSemanticSummary, field.TypeString, value)
	}
	if _u.mutation.SemanticSummaryCleared() {
		_spec.ClearField(lifelogcontext.FieldSemanticSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Objects(); ok {
		_spec.SetField(lifelogcontext.FieldObjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedObjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lifelogcontext.FieldObjects, value)
		})
	}
	if _u.mutation.ObjectsCleared() {
		_spec.ClearField(lifelogcontext.FieldObjects, field.TypeJSON)
	}
	if value, ok := _u.mutation.Ocr(); ok {
		_spec.SetField(lifelogcontext.FieldOcr, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOcr(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lifelogcontext.FieldOcr, value)
		})
	}
	if _u.mutation.OcrCleared() {
		_spec.ClearField(lifelogcontext.FieldOcr, field.TypeJSON)
	}
	if value, ok := _u.mutation.RiskHints(); ok {
		_spec.SetField(lifelogcontext.FieldRiskHints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRiskHints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lifelogcontext.FieldRiskHints, value)
		})
	}
	if _u.mutation.RiskHintsCleared() {
		_spec.ClearField(lifelogcontext.FieldRiskHints, field.TypeJSON)
	}
	if value, ok := _u.mutation.ActionableSummary(); ok {
		_spec.SetField(lifelogcontext.FieldActionableSummary, field.TypeString, value)
	}
	if _u.mutation.ActionableSummaryCleared() {
		_spec.ClearField(lifelogcontext.FieldActionableSummary, field.TypeString)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(lifelogcontext.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(lifelogcontext.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(lifelogcontext.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(lifelogcontext.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(lifelogcontext.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAtMs(); ok {
		_spec.SetField(lifelogcontext.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtMs(); ok {
		_spec.AddField(lifelogcontext.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lifelogcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LifelogContextUpdateOne is the builder for updating a single LifelogContext entity.
type LifelogContextUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LifelogContextMutation
}

// SetImageID sets the "image_id" field.
func (_u *LifelogContextUpdateOne) SetImageID(v string) *LifelogContextUpdateOne {
	_u.mutation.SetImageID(v)
	return _u
}

// SetNillableImageID sets the "image_id" field if the given value is not nil.
func (_u *LifelogContextUpdateOne) SetNillableImageID(v *string) *LifelogContextUpdateOne {
	if v != nil {
		_u.SetImageID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LifelogContextUpdateOne) SetSessionID(v string) *LifelogContextUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LifelogContextUpdateOne) SetNillableSessionID(v *string) *LifelogContextUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSemanticTitle sets the "semantic_title" field.
func (_u *LifelogContextUpdateOne) SetSemanticTitle(v string) *LifelogContextUpdateOne {
	_u.mutation.SetSemanticTitle(v)
	return _u
}

// SetNillableSemanticTitle sets the "semantic_title" field if the given value is not nil.
func (_u *LifelogContextUpdateOne) SetNillableSemanticTitle(v *string) *LifelogContextUpdateOne {
	if v != nil {
		_u.SetSemanticTitle(*v)
	}
	return _u
}

// ClearSemanticTitle clears the value of the "semantic_title" field.
func (_u *LifelogContextUpdateOne) ClearSemanticTitle() *LifelogContextUpdateOne {
	_u.mutation.ClearSemanticTitle()
	return _u
}

// SetSemanticSummary sets the "semantic_summary" field.
func (_u *LifelogContextUpdateOne) SetSemanticSummary(v string) *LifelogContextUpdateOne {
	_u.mutation.SetSemanticSummary(v)
	return _u
}

// SetNillableSemanticSummary sets the "semantic_summary" field if the given value is not nil.
func (_u *LifelogContextUpdateOne) SetNillableSemanticSummary(v *string) *LifelogContextUpdateOne {
	if v != nil {
		_u.SetSemanticSummary(*v)
	}
	return _u
}

// ClearSemanticSummary clears the value of the "semantic_summary" field.
func (_u *LifelogContextUpdateOne) ClearSemanticSummary() *LifelogContextUpdateOne {
	_u.mutation.ClearSemanticSummary()
	return _u
}

// SetObjects sets the "objects" field.
func (_u *LifelogContextUpdateOne) SetObjects(v []string) *LifelogContextUpdateOne {
	_u.mutation.SetObjects(v)
	return _u
}

// AppendObjects appends value to the "objects" field.
func (_u *LifelogContextUpdateOne) AppendObjects(v []string) *LifelogContextUpdateOne {
	_u.mutation.AppendObjects(v)
	return _u
}

// ClearObjects clears the value of the "objects" field.
func (_u *LifelogContextUpdateOne) ClearObjects() *LifelogContextUpdateOne {
	_u.mutation.ClearObjects()
	return _u
}

// SetOcr sets the "ocr" field.
func (_u *LifelogContextUpdateOne) SetOcr(v []string) *LifelogContextUpdateOne {
	_u.mutation.SetOcr(v)
	return _u
}

// AppendOcr appends value to the "ocr" field.
func (_u *LifelogContextUpdateOne) AppendOcr(v []string) *LifelogContextUpdateOne {
	_u.mutation.AppendOcr(v)
	return _u
}

// ClearOcr clears the value of the "ocr" field.
func (_u *LifelogContextUpdateOne) ClearOcr() *LifelogContextUpdateOne {
	_u.mutation.ClearOcr()
	return _u
}

// SetRiskHints sets the "risk_hints" field.
func (_u *LifelogContextUpdateOne) SetRiskHints(v []string) *LifelogContextUpdateOne {
	_u.mutation.SetRiskHints(v)
	return _u
}

// AppendRiskHints appends value to the "risk_hints" field.
func (_u *LifelogContextUpdateOne) AppendRiskHints(v []string) *LifelogContextUpdateOne {
	_u.mutation.AppendRiskHints(v)
	return _u
}

// ClearRiskHints clears the value of the "risk_hints" field.
func (_u *LifelogContextUpdateOne) ClearRiskHints() *LifelogContextUpdateOne {
	_u.mutation.ClearRiskHints()
	return _u
}

// SetActionableSummary sets the "actionable_summary" field.
func (_u *LifelogContextUpdateOne) SetActionableSummary(v string) *LifelogContextUpdateOne {
	_u.mutation.SetActionableSummary(v)
	return _u
}

// SetNillableActionableSummary sets the "actionable_summary" field if the given value is not nil.
func (_u *LifelogContextUpdateOne) SetNillableActionableSummary(v *string) *LifelogContextUpdateOne {
	if v != nil {
		_u.SetActionableSummary(*v)
	}
	return _u
}

// ClearActionableSummary clears the value of the "actionable_summary" field.
func (_u *LifelogContextUpdateOne) ClearActionableSummary() *LifelogContextUpdateOne {
	_u.mutation.ClearActionableSummary()
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *LifelogContextUpdateOne) SetRiskLevel(v string) *LifelogContextUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *LifelogContextUpdateOne) SetNillableRiskLevel(v *string) *LifelogContextUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *LifelogContextUpdateOne) SetRiskScore(v float64) *LifelogContextUpdateOne {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *LifelogContextUpdateOne) SetNillableRiskScore(v *float64) *LifelogContextUpdateOne {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *LifelogContextUpdateOne) AddRiskScore(v float64) *LifelogContextUpdateOne {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *LifelogContextUpdateOne) SetConfidence(v float64) *LifelogContextUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *LifelogContextUpdateOne) SetNillableConfidence(v *float64) *LifelogContextUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *LifelogContextUpdateOne) AddConfidence(v float64) *LifelogContextUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_u *LifelogContextUpdateOne) SetCreatedAtMs(v int64) *LifelogContextUpdateOne {
	_u.mutation.ResetCreatedAtMs()
	_u.mutation.SetCreatedAtMs(v)
	return _u
}

// SetNillableCreatedAtMs sets the "created_at_ms" field if the given value is not nil.
func (_u *LifelogContextUpdateOne) SetNillableCreatedAtMs(v *int64) *LifelogContextUpdateOne {
	if v != nil {
		_u.SetCreatedAtMs(*v)
	}
	return _u
}

// AddCreatedAtMs adds value to the "created_at_ms" field.
func (_u *LifelogContextUpdateOne) AddCreatedAtMs(v int64) *LifelogContextUpdateOne {
	_u.mutation.AddCreatedAtMs(v)
	return _u
}

// Mutation returns the LifelogContextMutation object of the builder.
func (_u *LifelogContextUpdateOne) Mutation() *LifelogContextMutation {
	return _u.mutation
}

// Where appends a list predicates to the LifelogContextUpdate builder.
func (_u *LifelogContextUpdateOne) Where(ps ...predicate.LifelogContext) *LifelogContextUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LifelogContextUpdateOne) Select(field string, fields ...string) *LifelogContextUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LifelogContext entity.
func (_u *LifelogContextUpdateOne) Save(ctx context.Context) (*LifelogContext, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LifelogContextUpdateOne) SaveX(ctx context.Context) *LifelogContext {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LifelogContextUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LifelogContextUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LifelogContextUpdateOne) sqlSave(ctx context.Context) (_node *LifelogContext, err error) {
	_spec := sqlgraph.NewUpdateSpec(lifelogcontext.Table, lifelogcontext.Columns, sqlgraph.NewFieldSpec(lifelogcontext.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LifelogContext.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lifelogcontext.FieldID)
		for _, f := range fields {
			if !lifelogcontext.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lifelogcontext.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ImageID(); ok {
		_spec.SetField(lifelogcontext.FieldImageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lifelogcontext.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SemanticTitle(); ok {
		_spec.SetField(lifelogcontext.FieldSemanticTitle, field.TypeString, value)
	}
	if _u.mutation.SemanticTitleCleared() {
		_spec.ClearField(lifelogcontext.FieldSemanticTitle, field.TypeString)
	}
	if value, ok := _u.mutation.SemanticSummary(); ok {
		_spec.SetField(lifelogcontext.FieldSemanticSummary, field.TypeString, value)
	}
	if _u.mutation.SemanticSummaryCleared() {
		_spec.ClearField(lifelogcontext.FieldSemanticSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Objects(); ok {
		_spec.SetField(lifelogcontext.FieldObjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedObjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lifelogcontext.FieldObjects, value)
		})
	}
	if _u.mutation.ObjectsCleared() {
		_spec.ClearField(lifelogcontext.FieldObjects, field.TypeJSON)
	}
	if value, ok := _u.mutation.Ocr(); ok {
		_spec.SetField(lifelogcontext.FieldOcr, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOcr(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lifelogcontext.FieldOcr, value)
		})
	}
	if _u.mutation.OcrCleared() {
		_spec.ClearField(lifelogcontext.FieldOcr, field.TypeJSON)
	}
	if value, ok := _u.mutation.RiskHints(); ok {
		_spec.SetField(lifelogcontext.FieldRiskHints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRiskHints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lifelogcontext.FieldRiskHints, value)
		})
	}
	if _u.mutation.RiskHintsCleared() {
		_spec.ClearField(lifelogcontext.FieldRiskHints, field.TypeJSON)
	}
	if value, ok := _u.mutation.ActionableSummary(); ok {
		_spec.SetField(lifelogcontext.FieldActionableSummary, field.TypeString, value)
	}
	if _u.mutation.ActionableSummaryCleared() {
		_spec.ClearField(lifelogcontext.FieldActionableSummary, field.TypeString)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(lifelogcontext.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(lifelogcontext.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(lifelogcontext.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(lifelogcontext.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(lifelogcontext.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAtMs(); ok {
		_spec.SetField(lifelogcontext.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtMs(); ok {
		_spec.AddField(lifelogcontext.FieldCreatedAtMs, field.TypeInt64, value)
	}
	_node = &LifelogContext{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lifelogcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
