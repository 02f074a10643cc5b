// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencane/edged/ent/lifelogevent"
	"github.com/opencane/edged/ent/predicate"
)

// LifelogEventUpdate is the builder for updating LifelogEvent entities.
type LifelogEventUpdate struct {
	config
	hooks    []Hook
	mutation *LifelogEventMutation
}

// Where appends a list predicates to the LifelogEventUpdate builder.
func (_u *LifelogEventUpdate) Where(ps ...predicate.LifelogEvent) *LifelogEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LifelogEventUpdate) SetSessionID(v string) *LifelogEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LifelogEventUpdate) SetNillableSessionID(v *string) *LifelogEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *LifelogEventUpdate) SetDeviceID(v string) *LifelogEventUpdate {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *LifelogEventUpdate) SetNillableDeviceID(v *string) *LifelogEventUpdate {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// ClearDeviceID clears the value of the "device_id" field.
func (_u *LifelogEventUpdate) ClearDeviceID() *LifelogEventUpdate {
	_u.mutation.ClearDeviceID()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *LifelogEventUpdate) SetEventType(v string) *LifelogEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *LifelogEventUpdate) SetNillableEventType(v *string) *LifelogEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *LifelogEventUpdate) SetPayload(v map[string]interface{}) *LifelogEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *LifelogEventUpdate) ClearPayload() *LifelogEventUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetText sets the "text" field.
func (_u *LifelogEventUpdate) SetText(v string) *LifelogEventUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *LifelogEventUpdate) SetNillableText(v *string) *LifelogEventUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// ClearText clears the value of the "text" field.
func (_u *LifelogEventUpdate) ClearText() *LifelogEventUpdate {
	_u.mutation.ClearText()
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *LifelogEventUpdate) SetRiskLevel(v string) *LifelogEventUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *LifelogEventUpdate) SetNillableRiskLevel(v *string) *LifelogEventUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (_u *LifelogEventUpdate) ClearRiskLevel() *LifelogEventUpdate {
	_u.mutation.ClearRiskLevel()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *LifelogEventUpdate) SetConfidence(v float64) *LifelogEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *LifelogEventUpdate) SetNillableConfidence(v *float64) *LifelogEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *LifelogEventUpdate) AddConfidence(v float64) *LifelogEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTsMs sets the "ts_ms" field.
func (_u *LifelogEventUpdate) SetTsMs(v int64) *LifelogEventUpdate {
	_u.mutation.ResetTsMs()
	_u.mutation.SetTsMs(v)
	return _u
}

// SetNillableTsMs sets the "ts_ms" field if the given value is not nil.
func (_u *LifelogEventUpdate) SetNillableTsMs(v *int64) *LifelogEventUpdate {
	if v != nil {
		_u.SetTsMs(*v)
	}
	return _u
}

// AddTsMs adds value to the "ts_ms" field.
func (_u *LifelogEventUpdate) AddTsMs(v int64) *LifelogEventUpdate {
	_u.mutation.AddTsMs(v)
	return _u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_u *LifelogEventUpdate) SetCreatedAtMs(v int64) *LifelogEventUpdate {
	_u.mutation.ResetCreatedAtMs()
	_u.mutation.SetCreatedAtMs(v)
	return _u
}

// SetNillableCreatedAtMs sets the "created_at_ms" field if the given value is not nil.
func (_u *LifelogEventUpdate) SetNillableCreatedAtMs(v *int64) *LifelogEventUpdate {
	if v != nil {
		_u.SetCreatedAtMs(*v)
	}
	return _u
}

// AddCreatedAtMs adds value to the "created_at_ms" field.
func (_u *LifelogEventUpdate) AddCreatedAtMs(v int64) *LifelogEventUpdate {
	_u.mutation.AddCreatedAtMs(v)
	return _u
}

// Mutation returns the LifelogEventMutation object of the builder.
func (_u *LifelogEventUpdate) Mutation() *LifelogEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LifelogEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LifelogEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LifelogEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LifelogEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LifelogEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(lifelogevent.Table, lifelogevent.Columns, sqlgraph.NewFieldSpec(lifelogevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lifelogevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(lifelogevent.FieldDeviceID, field.TypeString, value)
	}
	if _u.mutation.DeviceIDCleared() {
		_spec.ClearField(lifelogevent.FieldDeviceID, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(lifelogevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(lifelogevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(lifelogevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(lifelogevent.FieldText, field.TypeString, value)
	}
	if _u.mutation.TextCleared() {
		_spec.ClearField(lifelogevent.FieldText, field.TypeString)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(lifelogevent.FieldRiskLevel, field.TypeString, value)
	}
	if _u.mutation.RiskLevelCleared() {
		_spec.ClearField(lifelogevent.FieldRiskLevel, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(lifelogevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(lifelogevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TsMs(); ok {
		_spec.SetField(lifelogevent.FieldTsMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTsMs(); ok {
		_spec.AddField(lifelogevent.FieldTsMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CreatedAtMs(); ok {
		_spec.SetField(lifelogevent.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtMs(); ok {
		_spec.AddField(lifelogevent.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lifelogevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LifelogEventUpdateOne is the builder for updating a single LifelogEvent entity.
type LifelogEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LifelogEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *LifelogEventUpdateOne) SetSessionID(v string) *LifelogEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LifelogEventUpdateOne) SetNillableSessionID(v *string) *LifelogEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *LifelogEventUpdateOne) SetDeviceID(v string) *LifelogEventUpdateOne {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *LifelogEventUpdateOne) SetNillableDeviceID(v *string) *LifelogEventUpdateOne {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// ClearDeviceID clears the value of the "device_id" field.
func (_u *LifelogEventUpdateOne) ClearDeviceID() *LifelogEventUpdateOne {
	_u.mutation.ClearDeviceID()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *LifelogEventUpdateOne) SetEventType(v string) *LifelogEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *LifelogEventUpdateOne) SetNillableEventType(v *string) *LifelogEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *LifelogEventUpdateOne) SetPayload(v map[string]interface{}) *LifelogEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *LifelogEventUpdateOne) ClearPayload() *LifelogEventUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetText sets the "text" field.
func (_u *LifelogEventUpdateOne) SetText(v string) *LifelogEventUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *LifelogEventUpdateOne) SetNillableText(v *string) *LifelogEventUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// ClearText clears the value of the "text" field.
func (_u *LifelogEventUpdateOne) ClearText() *LifelogEventUpdateOne {
	_u.mutation.ClearText()
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *LifelogEventUpdateOne) SetRiskLevel(v string) *LifelogEventUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *LifelogEventUpdateOne) SetNillableRiskLevel(v *string) *LifelogEventUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (_u *LifelogEventUpdateOne) ClearRiskLevel() *LifelogEventUpdateOne {
	_u.mutation.ClearRiskLevel()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *LifelogEventUpdateOne) SetConfidence(v float64) *LifelogEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *LifelogEventUpdateOne) SetNillableConfidence(v *float64) *LifelogEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *LifelogEventUpdateOne) AddConfidence(v float64) *LifelogEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTsMs sets the "ts_ms" field.
func (_u *LifelogEventUpdateOne) SetTsMs(v int64) *LifelogEventUpdateOne {
	_u.mutation.ResetTsMs()
	_u.mutation.SetTsMs(v)
	return _u
}

// SetNillableTsMs sets the "ts_ms" field if the given value is not nil.
func (_u *LifelogEventUpdateOne) SetNillableTsMs(v *int64) *LifelogEventUpdateOne {
	if v != nil {
		_u.SetTsMs(*v)
	}
	return _u
}

// AddTsMs adds value to the "ts_ms" field.
func (_u *LifelogEventUpdateOne) AddTsMs(v int64) *LifelogEventUpdateOne {
	_u.mutation.AddTsMs(v)
	return _u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_u *LifelogEventUpdateOne) SetCreatedAtMs(v int64) *LifelogEventUpdateOne {
	_u.mutation.ResetCreatedAtMs()
	_u.mutation.SetCreatedAtMs(v)
	return _u
}

// SetNillableCreatedAtMs sets the "created_at_ms" field if the given value is not nil.
func (_u *LifelogEventUpdateOne) SetNillableCreatedAtMs(v *int64) *LifelogEventUpdateOne {
	if v != nil {
		_u.SetCreatedAtMs(*v)
	}
	return _u
}

// AddCreatedAtMs adds value to the "created_at_ms" field.
func (_u *LifelogEventUpdateOne) AddCreatedAtMs(v int64) *LifelogEventUpdateOne {
	_u.mutation.AddCreatedAtMs(v)
	return _u
}

// Mutation returns the LifelogEventMutation object of the builder.
func (_u *LifelogEventUpdateOne) Mutation() *LifelogEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LifelogEventUpdate builder.
func (_u *LifelogEventUpdateOne) Where(ps ...predicate.LifelogEvent) *LifelogEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LifelogEventUpdateOne) Select(field string, fields ...string) *LifelogEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LifelogEvent entity.
func (_u *LifelogEventUpdateOne) Save(ctx context.Context) (*LifelogEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LifelogEventUpdateOne) SaveX(ctx context.Context) *LifelogEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LifelogEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LifelogEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LifelogEventUpdateOne) sqlSave(ctx context.Context) (_node *LifelogEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(lifelogevent.Table, lifelogevent.Columns, sqlgraph.NewFieldSpec(lifelogevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LifelogEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lifelogevent.FieldID)
		for _, f := range fields {
			if !lifelogevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lifelogevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lifelogevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(lifelogevent.FieldDeviceID, field.TypeString, value)
	}
	if _u.mutation.DeviceIDCleared() {
		_spec.ClearField(lifelogevent.FieldDeviceID, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(lifelogevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(lifelogevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(lifelogevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(lifelogevent.FieldText, field.TypeString, value)
	}
	if _u.mutation.TextCleared() {
		_spec.ClearField(lifelogevent.FieldText, field.TypeString)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(lifelogevent.FieldRiskLevel, field.TypeString, value)
	}
	if _u.mutation.RiskLevelCleared() {
		_spec.ClearField(lifelogevent.FieldRiskLevel, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(lifelogevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(lifelogevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TsMs(); ok {
		_spec.SetField(lifelogevent.FieldTsMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTsMs(); ok {
		_spec.AddField(lifelogevent.FieldTsMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CreatedAtMs(); ok {
		_spec.SetField(lifelogevent.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtMs(); ok {
		_spec.AddField(lifelogevent.FieldCreatedAtMs, field.TypeInt64, value)
	}
	_node = &LifelogEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lifelogevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
