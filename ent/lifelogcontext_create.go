// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencane/edged/ent/lifelogcontext"
)

// LifelogContextCreate is the builder for creating a LifelogContext entity.
type LifelogContextCreate struct {
	config
	mutation *LifelogContextMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetImageID sets the "image_id" field.
func (_c *LifelogContextCreate) SetImageID(v string) *LifelogContextCreate {
	_c.mutation.SetImageID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *LifelogContextCreate) SetSessionID(v string) *LifelogContextCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSemanticTitle sets the "semantic_title" field.
func (_c *LifelogContextCreate) SetSemanticTitle(v string) *LifelogContextCreate {
	_c.mutation.SetSemanticTitle(v)
	return _c
}

// SetNillableSemanticTitle sets the "semantic_title" field if the given value is not nil.
func (_c *LifelogContextCreate) SetNillableSemanticTitle(v *string) *LifelogContextCreate {
	if v != nil {
		_c.SetSemanticTitle(*v)
	}
	return _c
}

// SetSemanticSummary sets the "semantic_summary" field.
func (_c *LifelogContextCreate) SetSemanticSummary(v string) *LifelogContextCreate {
	_c.mutation.SetSemanticSummary(v)
	return _c
}

// SetNillableSemanticSummary sets the "semantic_summary" field if the given value is not nil.
func (_c *LifelogContextCreate) SetNillableSemanticSummary(v *string) *LifelogContextCreate {
	if v != nil {
		_c.SetSemanticSummary(*v)
	}
	return _c
}

// SetObjects sets the "objects" field.
func (_c *LifelogContextCreate) SetObjects(v []string) *LifelogContextCreate {
	_c.mutation.SetObjects(v)
	return _c
}

// SetOcr sets the "ocr" field.
func (_c *LifelogContextCreate) SetOcr(v []string) *LifelogContextCreate {
	_c.mutation.SetOcr(v)
	return _c
}

// SetRiskHints sets the "risk_hints" field.
func (_c *LifelogContextCreate) SetRiskHints(v []string) *LifelogContextCreate {
	_c.mutation.SetRiskHints(v)
	return _c
}

// SetActionableSummary sets the "actionable_summary" field.
func (_c *LifelogContextCreate) SetActionableSummary(v string) *LifelogContextCreate {
	_c.mutation.SetActionableSummary(v)
	return _c
}

// SetNillableActionableSummary sets the "actionable_summary" field if the given value is not nil.
func (_c *LifelogContextCreate) SetNillableActionableSummary(v *string) *LifelogContextCreate {
	if v != nil {
		_c.SetActionableSummary(*v)
	}
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *LifelogContextCreate) SetRiskLevel(v string) *LifelogContextCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_c *LifelogContextCreate) SetNillableRiskLevel(v *string) *LifelogContextCreate {
	if v != nil {
		_c.SetRiskLevel(*v)
	}
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *LifelogContextCreate) SetRiskScore(v float64) *LifelogContextCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_c *LifelogContextCreate) SetNillableRiskScore(v *float64) *LifelogContextCreate {
	if v != nil {
		_c.SetRiskScore(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *LifelogContextCreate) SetConfidence(v float64) *LifelogContextCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *LifelogContextCreate) SetNillableConfidence(v *float64) *LifelogContextCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_c *LifelogContextCreate) SetCreatedAtMs(v int64) *LifelogContextCreate {
	_c.mutation.SetCreatedAtMs(v)
	return _c
}

// SetID sets the "id" field.
func (_c *LifelogContextCreate) SetID(v string) *LifelogContextCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LifelogContextMutation object of the builder.
func (_c *LifelogContextCreate) Mutation() *LifelogContextMutation {
	return _c.mutation
}

// Save creates the LifelogContext in the database.
func (_c *LifelogContextCreate) Save(ctx context.Context) (*LifelogContext, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LifelogContextCreate) SaveX(ctx context.Context) *LifelogContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LifelogContextCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LifelogContextCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LifelogContextCreate) defaults() {
	if _, ok := _c.mutation.RiskLevel(); !ok {
		v := lifelogcontext.DefaultRiskLevel
		_c.mutation.SetRiskLevel(v)
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		v := lifelogcontext.DefaultRiskScore
		_c.mutation.SetRiskScore(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := lifelogcontext.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LifelogContextCreate) check() error {
	if _, ok := _c.mutation.ImageID(); !ok {
		return &ValidationError{Name: "image_id", err: errors.New(`ent: missing required field "LifelogContext.image_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LifelogContext.session_id"`)}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "LifelogContext.risk_level"`)}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "LifelogContext.risk_score"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "LifelogContext.confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAtMs(); !ok {
		return &ValidationError{Name: "created_at_ms", err: errors.New(`ent: missing required field "LifelogContext.created_at_ms"`)}
	}
	return nil
}

func (_c *LifelogContextCreate) sqlSave(ctx context.Context) (*LifelogContext, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LifelogContext.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LifelogContextCreate) createSpec() (*LifelogContext, *sqlgraph.CreateSpec) {
	var (
		_node = &LifelogContext{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lifelogcontext.Table, sqlgraph.NewFieldSpec(lifelogcontext.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ImageID(); ok {
		_spec.SetField(lifelogcontext.FieldImageID, field.TypeString, value)
		_node.ImageID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(lifelogcontext.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.SemanticTitle(); ok {
		_spec.SetField(lifelogcontext.FieldSemanticTitle, field.TypeString, value)
		_node.SemanticTitle = value
	}
	if value, ok := _c.mutation.SemanticSummary(); ok {
		_spec.SetField(lifelogcontext.FieldSemanticSummary, field.TypeString, value)
		_node.SemanticSummary = value
	}
	if value, ok := _c.mutation.Objects(); ok {
		_spec.SetField(lifelogcontext.FieldObjects, field.TypeJSON, value)
		_node.Objects = value
	}
	if value, ok := _c.mutation.Ocr(); ok {
		_spec.SetField(lifelogcontext.FieldOcr, field.TypeJSON, value)
		_node.Ocr = value
	}
	if value, ok := _c.mutation.RiskHints(); ok {
		_spec.SetField(lifelogcontext.FieldRiskHints, field.TypeJSON, value)
		_node.RiskHints = value
	}
	if value, ok := _c.mutation.ActionableSummary(); ok {
		_spec.SetField(lifelogcontext.FieldActionableSummary, field.TypeString, value)
		_node.ActionableSummary = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(lifelogcontext.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(lifelogcontext.FieldRiskScore, field.TypeFloat64, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(lifelogcontext.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.CreatedAtMs(); ok {
		_spec.SetField(lifelogcontext.FieldCreatedAtMs, field.TypeInt64, value)
		_node.CreatedAtMs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LifelogContext.Create().
//		SetImageID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LifelogContextUpsert) {
//			SetImageID(v+v).
//		}).
//		Exec(ctx)
func (_c *LifelogContextCreate) OnConflict(opts ...sql.ConflictOption) *LifelogContextUpsertOne {
	_c.conflict = opts
	return &LifelogContextUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LifelogContext.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LifelogContextCreate) OnConflictColumns(columns ...string) *LifelogContextUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LifelogContextUpsertOne{
		create: _c,
	}
}

type (
	// LifelogContextUpsertOne is the builder for "upsert"-ing
	//  one LifelogContext node.
	LifelogContextUpsertOne struct {
		create *LifelogContextCreate
	}

	// LifelogContextUpsert is the "OnConflict" setter.
	LifelogContextUpsert struct {
		*sql.UpdateSet
	}
)

// SetImageID sets the "image_id" field.
func (u *LifelogContextUpsert) SetImageID(v string) *LifelogContextUpsert {
	u.Set(lifelogcontext.FieldImageID, v)
	return u
}

// UpdateImageID sets the "image_id" field to the value that was provided on create.
func (u *LifelogContextUpsert) UpdateImageID() *LifelogContextUpsert {
	u.SetExcluded(lifelogcontext.FieldImageID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *LifelogContextUpsert) SetSessionID(v string) *LifelogContextUpsert {
	u.Set(lifelogcontext.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *LifelogContextUpsert) UpdateSessionID() *LifelogContextUpsert {
	u.SetExcluded(lifelogcontext.FieldSessionID)
	return u
}

// SetSemanticTitle sets the "semantic_title" field.
func (u *LifelogContextUpsert) SetSemanticTitle(v string) *LifelogContextUpsert {
	u.Set(lifelogcontext.FieldSemanticTitle, v)
	return u
}

// UpdateSemanticTitle sets the "semantic_title" field to the value that was provided on create.
func (u *LifelogContextUpsert) UpdateSemanticTitle() *LifelogContextUpsert {
	u.SetExcluded(lifelogcontext.FieldSemanticTitle)
	return u
}

// ClearSemanticTitle clears the value of the "semantic_title" field.
func (u *LifelogContextUpsert) ClearSemanticTitle() *LifelogContextUpsert {
	u.SetNull(lifelogcontext.FieldSemanticTitle)
	return u
}

// SetSemanticSummary sets the "semantic_summary" field.
func (u *LifelogContextUpsert) SetSemanticSummary(v string) *LifelogContextUpsert {
	u.Set(lifelogcontext.FieldSemanticSummary, v)
	return u
}

// UpdateSemanticSummary sets the "semantic_summary" field to the value that was provided on create.
func (u *LifelogContextUpsert) UpdateSemanticSummary() *LifelogContextUpsert {
	u.SetExcluded(lifelogcontext.FieldSemanticSummary)
	return u
}

// ClearSemanticSummary clears the value of the "semantic_summary" field.
func (u *LifelogContextUpsert) ClearSemanticSummary() *LifelogContextUpsert {
	u.SetNull(lifelogcontext.FieldSemanticSummary)
	return u
}

// SetObjects sets the "objects" field.
func (u *LifelogContextUpsert) SetObjects(v []string) *LifelogContextUpsert {
	u.Set(lifelogcontext.FieldObjects, v)
	return u
}

// UpdateObjects sets the "objects" field to the value that was provided on create.
func (u *LifelogContextUpsert) UpdateObjects() *LifelogContextUpsert {
	u.SetExcluded(lifelogcontext.FieldObjects)
	return u
}

// ClearObjects clears the value of the "objects" field.
func (u *LifelogContextUpsert) ClearObjects() *LifelogContextUpsert {
	u.SetNull(lifelogcontext.FieldObjects)
	return u
}

// SetOcr sets the "ocr" field.
func (u *LifelogContextUpsert) SetOcr(v []string) *LifelogContextUpsert {
	u.Set(lifelogcontext.FieldOcr, v)
	return u
}

// UpdateOcr sets the "ocr" field to the value that was provided on create.
func (u *LifelogContextUpsert) UpdateOcr() *LifelogContextUpsert {
	u.SetExcluded(lifelogcontext.FieldOcr)
	return u
}

// ClearOcr clears the value of the "ocr" field.
func (u *LifelogContextUpsert) ClearOcr() *LifelogContextUpsert {
	u.SetNull(lifelogcontext.FieldOcr)
	return u
}

// SetRiskHints sets the "risk_hints" field.
func (u *LifelogContextUpsert) SetRiskHints(v []string) *LifelogContextUpsert {
	u.Set(lifelogcontext.FieldRiskHints, v)
	return u
}

// UpdateRiskHints sets the "risk_hints" field to the value that was provided on create.
func (u *LifelogContextUpsert) UpdateRiskHints() *LifelogContextUpsert {
	u.SetExcluded(lifelogcontext.FieldRiskHints)
	return u
}

// ClearRiskHints clears the value of the "risk_hints" field.
func (u *LifelogContextUpsert) ClearRiskHints() *LifelogContextUpsert {
	u.SetNull(lifelogcontext.FieldRiskHints)
	return u
}

// SetActionableSummary sets the "actionable_summary" field.
func (u *LifelogContextUpsert) SetActionableSummary(v string) *LifelogContextUpsert {
	u.Set(lifelogcontext.FieldActionableSummary, v)
	return u
}

// UpdateActionableSummary sets the "actionable_summary" field to the value that was provided on create.
func (u *LifelogContextUpsert) UpdateActionableSummary() *LifelogContextUpsert {
	u.SetExcluded(lifelogcontext.FieldActionableSummary)
	return u
}

// ClearActionableSummary clears the value of the "actionable_summary" field.
func (u *LifelogContextUpsert) ClearActionableSummary() *LifelogContextUpsert {
	u.SetNull(lifelogcontext.FieldActionableSummary)
	return u
}

// SetRiskLevel sets the "risk_level" field.
func (u *LifelogContextUpsert) SetRiskLevel(v string) *LifelogContextUpsert {
	u.Set(lifelogcontext.FieldRiskLevel, v)
	return u
}

// UpdateRiskLevel sets the "risk_level" field to the value that was provided on create.
func (u *LifelogContextUpsert) UpdateRiskLevel() *LifelogContextUpsert {
	u.SetExcluded(lifelogcontext.FieldRiskLevel)
	return u
}

// SetRiskScore sets the "risk_score" field.
func (u *LifelogContextUpsert) SetRiskScore(v float64) *LifelogContextUpsert {
	u.Set(lifelogcontext.FieldRiskScore, v)
	return u
}

// UpdateRiskScore sets the "risk_score" field to the value that was provided on create.
func (u *LifelogContextUpsert) UpdateRiskScore() *LifelogContextUpsert {
	u.SetExcluded(lifelogcontext.FieldRiskScore)
	return u
}

// AddRiskScore adds v to the "risk_score" field.
func (u *LifelogContextUpsert) AddRiskScore(v float64) *LifelogContextUpsert {
	u.Add(lifelogcontext.FieldRiskScore, v)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *LifelogContextUpsert) SetConfidence(v float64) *LifelogContextUpsert {
	u.Set(lifelogcontext.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *LifelogContextUpsert) UpdateConfidence() *LifelogContextUpsert {
	u.SetExcluded(lifelogcontext.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *LifelogContextUpsert) AddConfidence(v float64) *LifelogContextUpsert {
	u.Add(lifelogcontext.FieldConfidence, v)
	return u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *LifelogContextUpsert) SetCreatedAtMs(v int64) *LifelogContextUpsert {
	u.Set(lifelogcontext.FieldCreatedAtMs, v)
	return u
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *LifelogContextUpsert) UpdateCreatedAtMs() *LifelogContextUpsert {
	u.SetExcluded(lifelogcontext.FieldCreatedAtMs)
	return u
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *LifelogContextUpsert) AddCreatedAtMs(v int64) *LifelogContextUpsert {
	u.Add(lifelogcontext.FieldCreatedAtMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LifelogContext.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lifelogcontext.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LifelogContextUpsertOne) UpdateNewValues() *LifelogContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(lifelogcontext.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LifelogContext.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LifelogContextUpsertOne) Ignore() *LifelogContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LifelogContextUpsertOne) DoNothing() *LifelogContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LifelogContextCreate.OnConflict
// documentation for more info.
func (u *LifelogContextUpsertOne) Update(set func(*LifelogContextUpsert)) *LifelogContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LifelogContextUpsert{UpdateSet: update})
	}))
	return u
}

// SetImageID sets the "image_id" field.
func (u *LifelogContextUpsertOne) SetImageID(v string) *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetImageID(v)
	})
}

// UpdateImageID sets the "image_id" field to the value that was provided on create.
func (u *LifelogContextUpsertOne) UpdateImageID() *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateImageID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *LifelogContextUpsertOne) SetSessionID(v string) *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *LifelogContextUpsertOne) UpdateSessionID() *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateSessionID()
	})
}

// SetSemanticTitle sets the "semantic_title" field.
func (u *LifelogContextUpsertOne) SetSemanticTitle(v string) *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetSemanticTitle(v)
	})
}

// UpdateSemanticTitle sets the "semantic_title" field to the value that was provided on create.
func (u *LifelogContextUpsertOne) UpdateSemanticTitle() *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateSemanticTitle()
	})
}

// ClearSemanticTitle clears the value of the "semantic_title" field.
func (u *LifelogContextUpsertOne) ClearSemanticTitle() *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.ClearSemanticTitle()
	})
}

// SetSemanticSummary sets the "semantic_summary" field.
func (u *LifelogContextUpsertOne) SetSemanticSummary(v string) *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetSemanticSummary(v)
	})
}

// UpdateSemanticSummary sets the "semantic_summary" field to the value that was provided on create.
func (u *LifelogContextUpsertOne) UpdateSemanticSummary() *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateSemanticSummary()
	})
}

// ClearSemanticSummary clears the value of the "semantic_summary" field.
func (u *LifelogContextUpsertOne) ClearSemanticSummary() *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.ClearSemanticSummary()
	})
}

// SetObjects sets the "objects" field.
func (u *LifelogContextUpsertOne) SetObjects(v []string) *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetObjects(v)
	})
}

// UpdateObjects sets the "objects" field to the value that was provided on create.
func (u *LifelogContextUpsertOne) UpdateObjects() *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateObjects()
	})
}

// ClearObjects clears the value of the "objects" field.
func (u *LifelogContextUpsertOne) ClearObjects() *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.ClearObjects()
	})
}

// SetOcr sets the "ocr" field.
func (u *LifelogContextUpsertOne) SetOcr(v []string) *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetOcr(v)
	})
}

// UpdateOcr sets the "ocr" field to the value that was provided on create.
func (u *LifelogContextUpsertOne) UpdateOcr() *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateOcr()
	})
}

// ClearOcr clears the value of the "ocr" field.
func (u *LifelogContextUpsertOne) ClearOcr() *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.ClearOcr()
	})
}

// SetRiskHints sets the "risk_hints" field.
func (u *LifelogContextUpsertOne) SetRiskHints(v []string) *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetRiskHints(v)
	})
}

// UpdateRiskHints sets the "risk_hints" field to the value that was provided on create.
func (u *LifelogContextUpsertOne) UpdateRiskHints() *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateRiskHints()
	})
}

// ClearRiskHints clears the value of the "risk_hints" field.
func (u *LifelogContextUpsertOne) ClearRiskHints() *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.ClearRiskHints()
	})
}

// SetActionableSummary sets the "actionable_summary" field.
func (u *LifelogContextUpsertOne) SetActionableSummary(v string) *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetActionableSummary(v)
	})
}

// UpdateActionableSummary sets the "actionable_summary" field to the value that was provided on create.
func (u *LifelogContextUpsertOne) UpdateActionableSummary() *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateActionableSummary()
	})
}

// ClearActionableSummary clears the value of the "actionable_summary" field.
func (u *LifelogContextUpsertOne) ClearActionableSummary() *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.ClearActionableSummary()
	})
}

// SetRiskLevel sets the "risk_level" field.
func (u *LifelogContextUpsertOne) SetRiskLevel(v string) *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetRiskLevel(v)
	})
}

// UpdateRiskLevel sets the "risk_level" field to the value that was provided on create.
func (u *LifelogContextUpsertOne) UpdateRiskLevel() *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateRiskLevel()
	})
}

// SetRiskScore sets the "risk_score" field.
func (u *LifelogContextUpsertOne) SetRiskScore(v float64) *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetRiskScore(v)
	})
}

// AddRiskScore adds v to the "risk_score" field.
func (u *LifelogContextUpsertOne) AddRiskScore(v float64) *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.AddRiskScore(v)
	})
}

// UpdateRiskScore sets the "risk_score" field to the value that was provided on create.
func (u *LifelogContextUpsertOne) UpdateRiskScore() *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateRiskScore()
	})
}

// SetConfidence sets the "confidence" field.
func (u *LifelogContextUpsertOne) SetConfidence(v float64) *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *LifelogContextUpsertOne) AddConfidence(v float64) *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *LifelogContextUpsertOne) UpdateConfidence() *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateConfidence()
	})
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *LifelogContextUpsertOne) SetCreatedAtMs(v int64) *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetCreatedAtMs(v)
	})
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *LifelogContextUpsertOne) AddCreatedAtMs(v int64) *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.AddCreatedAtMs(v)
	})
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *LifelogContextUpsertOne) UpdateCreatedAtMs() *LifelogContextUpsertOne {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateCreatedAtMs()
	})
}

// Exec executes the query.
func (u *LifelogContextUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LifelogContextCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LifelogContextUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LifelogContextUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LifelogContextUpsertOne.ID is not supported by MySQL driver. Use LifelogContextUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LifelogContextUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LifelogContextCreateBulk is the builder for creating many LifelogContext entities in bulk.
type LifelogContextCreateBulk struct {
	config
	err      error
	builders []*LifelogContextCreate
	conflict []sql.ConflictOption
}

// Save creates the LifelogContext entities in the database.
func (_c *LifelogContextCreateBulk) Save(ctx context.Context) ([]*LifelogContext, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LifelogContext, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LifelogContextMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LifelogContextCreateBulk) SaveX(ctx context.Context) []*LifelogContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LifelogContextCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LifelogContextCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LifelogContext.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LifelogContextUpsert) {
//			SetImageID(v+v).
//		}).
//		Exec(ctx)
func (_c *LifelogContextCreateBulk) OnConflict(opts ...sql.ConflictOption) *LifelogContextUpsertBulk {
	_c.conflict = opts
	return &LifelogContextUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LifelogContext.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LifelogContextCreateBulk) OnConflictColumns(columns ...string) *LifelogContextUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LifelogContextUpsertBulk{
		create: _c,
	}
}

// LifelogContextUpsertBulk is the builder for "upsert"-ing
// a bulk of LifelogContext nodes.
type LifelogContextUpsertBulk struct {
	create *LifelogContextCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LifelogContext.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lifelogcontext.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LifelogContextUpsertBulk) UpdateNewValues() *LifelogContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(lifelogcontext.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LifelogContext.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LifelogContextUpsertBulk) Ignore() *LifelogContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LifelogContextUpsertBulk) DoNothing() *LifelogContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LifelogContextCreateBulk.OnConflict
// documentation for more info.
func (u *LifelogContextUpsertBulk) Update(set func(*LifelogContextUpsert)) *LifelogContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LifelogContextUpsert{UpdateSet: update})
	}))
	return u
}

// SetImageID sets the "image_id" field.
func (u *LifelogContextUpsertBulk) SetImageID(v string) *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetImageID(v)
	})
}

// UpdateImageID sets the "image_id" field to the value that was provided on create.
func (u *LifelogContextUpsertBulk) UpdateImageID() *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateImageID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *LifelogContextUpsertBulk) SetSessionID(v string) *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *LifelogContextUpsertBulk) UpdateSessionID() *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateSessionID()
	})
}

// SetSemanticTitle sets the "semantic_title" field.
func (u *LifelogContextUpsertBulk) SetSemanticTitle(v string) *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetSemanticTitle(v)
	})
}

// UpdateSemanticTitle sets the "semantic_title" field to the value that was provided on create.
func (u *LifelogContextUpsertBulk) UpdateSemanticTitle() *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateSemanticTitle()
	})
}

// ClearSemanticTitle clears the value of the "semantic_title" field.
func (u *LifelogContextUpsertBulk) ClearSemanticTitle() *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.ClearSemanticTitle()
	})
}

// SetSemanticSummary sets the "semantic_summary" field.
func (u *LifelogContextUpsertBulk) SetSemanticSummary(v string) *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetSemanticSummary(v)
	})
}

// UpdateSemanticSummary sets the "semantic_summary" field to the value that was provided on create.
func (u *LifelogContextUpsertBulk) UpdateSemanticSummary() *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateSemanticSummary()
	})
}

// ClearSemanticSummary clears the value of the "semantic_summary" field.
func (u *LifelogContextUpsertBulk) ClearSemanticSummary() *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.ClearSemanticSummary()
	})
}

// SetObjects sets the "objects" field.
func (u *LifelogContextUpsertBulk) SetObjects(v []string) *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetObjects(v)
	})
}

// UpdateObjects sets the "objects" field to the value that was provided on create.
func (u *LifelogContextUpsertBulk) UpdateObjects() *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateObjects()
	})
}

// ClearObjects clears the value of the "objects" field.
func (u *LifelogContextUpsertBulk) ClearObjects() *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.ClearObjects()
	})
}

// SetOcr sets the "ocr" field.
func (u *LifelogContextUpsertBulk) SetOcr(v []string) *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetOcr(v)
	})
}

// UpdateOcr sets the "ocr" field to the value that was provided on create.
func (u *LifelogContextUpsertBulk) UpdateOcr() *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateOcr()
	})
}

// ClearOcr clears the value of the "ocr" field.
func (u *LifelogContextUpsertBulk) ClearOcr() *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.ClearOcr()
	})
}

// SetRiskHints sets the "risk_hints" field.
func (u *LifelogContextUpsertBulk) SetRiskHints(v []string) *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetRiskHints(v)
	})
}

// UpdateRiskHints sets the "risk_hints" field to the value that was provided on create.
func (u *LifelogContextUpsertBulk) UpdateRiskHints() *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateRiskHints()
	})
}

// ClearRiskHints clears the value of the "risk_hints" field.
func (u *LifelogContextUpsertBulk) ClearRiskHints() *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.ClearRiskHints()
	})
}

// SetActionableSummary sets the "actionable_summary" field.
func (u *LifelogContextUpsertBulk) SetActionableSummary(v string) *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetActionableSummary(v)
	})
}

// UpdateActionableSummary sets the "actionable_summary" field to the value that was provided on create.
func (u *LifelogContextUpsertBulk) UpdateActionableSummary() *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateActionableSummary()
	})
}

// ClearActionableSummary clears the value of the "actionable_summary" field.
func (u *LifelogContextUpsertBulk) ClearActionableSummary() *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.ClearActionableSummary()
	})
}

// SetRiskLevel sets the "risk_level" field.
func (u *LifelogContextUpsertBulk) SetRiskLevel(v string) *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetRiskLevel(v)
	})
}

// UpdateRiskLevel sets the "risk_level" field to the value that was provided on create.
func (u *LifelogContextUpsertBulk) UpdateRiskLevel() *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateRiskLevel()
	})
}

// SetRiskScore sets the "risk_score" field.
func (u *LifelogContextUpsertBulk) SetRiskScore(v float64) *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetRiskScore(v)
	})
}

// AddRiskScore adds v to the "risk_score" field.
func (u *LifelogContextUpsertBulk) AddRiskScore(v float64) *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.AddRiskScore(v)
	})
}

// UpdateRiskScore sets the "risk_score" field to the value that was provided on create.
func (u *LifelogContextUpsertBulk) UpdateRiskScore() *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateRiskScore()
	})
}

// SetConfidence sets the "confidence" field.
func (u *LifelogContextUpsertBulk) SetConfidence(v float64) *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *LifelogContextUpsertBulk) AddConfidence(v float64) *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *LifelogContextUpsertBulk) UpdateConfidence() *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateConfidence()
	})
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *LifelogContextUpsertBulk) SetCreatedAtMs(v int64) *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.SetCreatedAtMs(v)
	})
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *LifelogContextUpsertBulk) AddCreatedAtMs(v int64) *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.AddCreatedAtMs(v)
	})
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *LifelogContextUpsertBulk) UpdateCreatedAtMs() *LifelogContextUpsertBulk {
	return u.Update(func(s *LifelogContextUpsert) {
		s.UpdateCreatedAtMs()
	})
}

// Exec executes the query.
func (u *LifelogContextUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LifelogContextCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LifelogContextCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LifelogContextUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
