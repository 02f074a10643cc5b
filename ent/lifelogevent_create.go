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
	"github.com/opencane/edged/ent/lifelogevent"
)

// LifelogEventCreate is the builder for creating a LifelogEvent entity.
type LifelogEventCreate struct {
	config
	mutation *LifelogEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *LifelogEventCreate) SetSessionID(v string) *LifelogEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDeviceID sets the "device_id" field.
func (_c *LifelogEventCreate) SetDeviceID(v string) *LifelogEventCreate {
	_c.mutation.SetDeviceID(v)
	return _c
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_c *LifelogEventCreate) SetNillableDeviceID(v *string) *LifelogEventCreate {
	if v != nil {
		_c.SetDeviceID(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *LifelogEventCreate) SetEventType(v string) *LifelogEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *LifelogEventCreate) SetPayload(v map[string]interface{}) *LifelogEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetText sets the "text" field.
func (_c *LifelogEventCreate) SetText(v string) *LifelogEventCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_c *LifelogEventCreate) SetNillableText(v *string) *LifelogEventCreate {
	if v != nil {
		_c.SetText(*v)
	}
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *LifelogEventCreate) SetRiskLevel(v string) *LifelogEventCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_c *LifelogEventCreate) SetNillableRiskLevel(v *string) *LifelogEventCreate {
	if v != nil {
		_c.SetRiskLevel(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *LifelogEventCreate) SetConfidence(v float64) *LifelogEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *LifelogEventCreate) SetNillableConfidence(v *float64) *LifelogEventCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetTsMs sets the "ts_ms" field.
func (_c *LifelogEventCreate) SetTsMs(v int64) *LifelogEventCreate {
	_c.mutation.SetTsMs(v)
	return _c
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_c *LifelogEventCreate) SetCreatedAtMs(v int64) *LifelogEventCreate {
	_c.mutation.SetCreatedAtMs(v)
	return _c
}

// SetID sets the "id" field.
func (_c *LifelogEventCreate) SetID(v string) *LifelogEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LifelogEventMutation object of the builder.
func (_c *LifelogEventCreate) Mutation() *LifelogEventMutation {
	return _c.mutation
}

// Save creates the LifelogEvent in the database.
func (_c *LifelogEventCreate) Save(ctx context.Context) (*LifelogEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LifelogEventCreate) SaveX(ctx context.Context) *LifelogEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LifelogEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LifelogEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LifelogEventCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := lifelogevent.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LifelogEventCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LifelogEvent.session_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "LifelogEvent.event_type"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "LifelogEvent.confidence"`)}
	}
	if _, ok := _c.mutation.TsMs(); !ok {
		return &ValidationError{Name: "ts_ms", err: errors.New(`ent: missing required field "LifelogEvent.ts_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAtMs(); !ok {
		return &ValidationError{Name: "created_at_ms", err: errors.New(`ent: missing required field "LifelogEvent.created_at_ms"`)}
	}
	return nil
}

func (_c *LifelogEventCreate) sqlSave(ctx context.Context) (*LifelogEvent, error) {
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
			return nil, fmt.Errorf("unexpected LifelogEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LifelogEventCreate) createSpec() (*LifelogEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LifelogEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lifelogevent.Table, sqlgraph.NewFieldSpec(lifelogevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(lifelogevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.DeviceID(); ok {
		_spec.SetField(lifelogevent.FieldDeviceID, field.TypeString, value)
		_node.DeviceID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(lifelogevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(lifelogevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(lifelogevent.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(lifelogevent.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(lifelogevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.TsMs(); ok {
		_spec.SetField(lifelogevent.FieldTsMs, field.TypeInt64, value)
		_node.TsMs = value
	}
	if value, ok := _c.mutation.CreatedAtMs(); ok {
		_spec.SetField(lifelogevent.FieldCreatedAtMs, field.TypeInt64, value)
		_node.CreatedAtMs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LifelogEvent.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LifelogEventUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *LifelogEventCreate) OnConflict(opts ...sql.ConflictOption) *LifelogEventUpsertOne {
	_c.conflict = opts
	return &LifelogEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LifelogEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LifelogEventCreate) OnConflictColumns(columns ...string) *LifelogEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LifelogEventUpsertOne{
		create: _c,
	}
}

type (
	// LifelogEventUpsertOne is the builder for "upsert"-ing
	//  one LifelogEvent node.
	LifelogEventUpsertOne struct {
		create *LifelogEventCreate
	}

	// LifelogEventUpsert is the "OnConflict" setter.
	LifelogEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *LifelogEventUpsert) SetSessionID(v string) *LifelogEventUpsert {
	u.Set(lifelogevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *LifelogEventUpsert) UpdateSessionID() *LifelogEventUpsert {
	u.SetExcluded(lifelogevent.FieldSessionID)
	return u
}

// SetDeviceID sets the "device_id" field.
func (u *LifelogEventUpsert) SetDeviceID(v string) *LifelogEventUpsert {
	u.Set(lifelogevent.FieldDeviceID, v)
	return u
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *LifelogEventUpsert) UpdateDeviceID() *LifelogEventUpsert {
	u.SetExcluded(lifelogevent.FieldDeviceID)
	return u
}

// ClearDeviceID clears the value of the "device_id" field.
func (u *LifelogEventUpsert) ClearDeviceID() *LifelogEventUpsert {
	u.SetNull(lifelogevent.FieldDeviceID)
	return u
}

// SetEventType sets the "event_type" field.
func (u *LifelogEventUpsert) SetEventType(v string) *LifelogEventUpsert {
	u.Set(lifelogevent.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *LifelogEventUpsert) UpdateEventType() *LifelogEventUpsert {
	u.SetExcluded(lifelogevent.FieldEventType)
	return u
}

// SetPayload sets the "payload" field.
func (u *LifelogEventUpsert) SetPayload(v map[string]interface{}) *LifelogEventUpsert {
	u.Set(lifelogevent.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *LifelogEventUpsert) UpdatePayload() *LifelogEventUpsert {
	u.SetExcluded(lifelogevent.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *LifelogEventUpsert) ClearPayload() *LifelogEventUpsert {
	u.SetNull(lifelogevent.FieldPayload)
	return u
}

// SetText sets the "text" field.
func (u *LifelogEventUpsert) SetText(v string) *LifelogEventUpsert {
	u.Set(lifelogevent.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *LifelogEventUpsert) UpdateText() *LifelogEventUpsert {
	u.SetExcluded(lifelogevent.FieldText)
	return u
}

// ClearText clears the value of the "text" field.
func (u *LifelogEventUpsert) ClearText() *LifelogEventUpsert {
	u.SetNull(lifelogevent.FieldText)
	return u
}

// SetRiskLevel sets the "risk_level" field.
func (u *LifelogEventUpsert) SetRiskLevel(v string) *LifelogEventUpsert {
	u.Set(lifelogevent.FieldRiskLevel, v)
	return u
}

// UpdateRiskLevel sets the "risk_level" field to the value that was provided on create.
func (u *LifelogEventUpsert) UpdateRiskLevel() *LifelogEventUpsert {
	u.SetExcluded(lifelogevent.FieldRiskLevel)
	return u
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (u *LifelogEventUpsert) ClearRiskLevel() *LifelogEventUpsert {
	u.SetNull(lifelogevent.FieldRiskLevel)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *LifelogEventUpsert) SetConfidence(v float64) *LifelogEventUpsert {
	u.Set(lifelogevent.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *LifelogEventUpsert) UpdateConfidence() *LifelogEventUpsert {
	u.SetExcluded(lifelogevent.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *LifelogEventUpsert) AddConfidence(v float64) *LifelogEventUpsert {
	u.Add(lifelogevent.FieldConfidence, v)
	return u
}

// SetTsMs sets the "ts_ms" field.
func (u *LifelogEventUpsert) SetTsMs(v int64) *LifelogEventUpsert {
	u.Set(lifelogevent.FieldTsMs, v)
	return u
}

// UpdateTsMs sets the "ts_ms" field to the value that was provided on create.
func (u *LifelogEventUpsert) UpdateTsMs() *LifelogEventUpsert {
	u.SetExcluded(lifelogevent.FieldTsMs)
	return u
}

// AddTsMs adds v to the "ts_ms" field.
func (u *LifelogEventUpsert) AddTsMs(v int64) *LifelogEventUpsert {
	u.Add(lifelogevent.FieldTsMs, v)
	return u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *LifelogEventUpsert) SetCreatedAtMs(v int64) *LifelogEventUpsert {
	u.Set(lifelogevent.FieldCreatedAtMs, v)
	return u
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *LifelogEventUpsert) UpdateCreatedAtMs() *LifelogEventUpsert {
	u.SetExcluded(lifelogevent.FieldCreatedAtMs)
	return u
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *LifelogEventUpsert) AddCreatedAtMs(v int64) *LifelogEventUpsert {
	u.Add(lifelogevent.FieldCreatedAtMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LifelogEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lifelogevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LifelogEventUpsertOne) UpdateNewValues() *LifelogEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(lifelogevent.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LifelogEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LifelogEventUpsertOne) Ignore() *LifelogEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LifelogEventUpsertOne) DoNothing() *LifelogEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LifelogEventCreate.OnConflict
// documentation for more info.
func (u *LifelogEventUpsertOne) Update(set func(*LifelogEventUpsert)) *LifelogEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LifelogEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *LifelogEventUpsertOne) SetSessionID(v string) *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *LifelogEventUpsertOne) UpdateSessionID() *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetDeviceID sets the "device_id" field.
func (u *LifelogEventUpsertOne) SetDeviceID(v string) *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *LifelogEventUpsertOne) UpdateDeviceID() *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.UpdateDeviceID()
	})
}

// ClearDeviceID clears the value of the "device_id" field.
func (u *LifelogEventUpsertOne) ClearDeviceID() *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.ClearDeviceID()
	})
}

// SetEventType sets the "event_type" field.
func (u *LifelogEventUpsertOne) SetEventType(v string) *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *LifelogEventUpsertOne) UpdateEventType() *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.UpdateEventType()
	})
}

// SetPayload sets the "payload" field.
func (u *LifelogEventUpsertOne) SetPayload(v map[string]interface{}) *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *LifelogEventUpsertOne) UpdatePayload() *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *LifelogEventUpsertOne) ClearPayload() *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.ClearPayload()
	})
}

// SetText sets the "text" field.
func (u *LifelogEventUpsertOne) SetText(v string) *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *LifelogEventUpsertOne) UpdateText() *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.UpdateText()
	})
}

// ClearText clears the value of the "text" field.
func (u *LifelogEventUpsertOne) ClearText() *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.ClearText()
	})
}

// SetRiskLevel sets the "risk_level" field.
func (u *LifelogEventUpsertOne) SetRiskLevel(v string) *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.SetRiskLevel(v)
	})
}

// UpdateRiskLevel sets the "risk_level" field to the value that was provided on create.
func (u *LifelogEventUpsertOne) UpdateRiskLevel() *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.UpdateRiskLevel()
	})
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (u *LifelogEventUpsertOne) ClearRiskLevel() *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.ClearRiskLevel()
	})
}

// SetConfidence sets the "confidence" field.
func (u *LifelogEventUpsertOne) SetConfidence(v float64) *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *LifelogEventUpsertOne) AddConfidence(v float64) *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *LifelogEventUpsertOne) UpdateConfidence() *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.UpdateConfidence()
	})
}

// SetTsMs sets the "ts_ms" field.
func (u *LifelogEventUpsertOne) SetTsMs(v int64) *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.SetTsMs(v)
	})
}

// AddTsMs adds v to the "ts_ms" field.
func (u *LifelogEventUpsertOne) AddTsMs(v int64) *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.AddTsMs(v)
	})
}

// UpdateTsMs sets the "ts_ms" field to the value that was provided on create.
func (u *LifelogEventUpsertOne) UpdateTsMs() *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.UpdateTsMs()
	})
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *LifelogEventUpsertOne) SetCreatedAtMs(v int64) *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.SetCreatedAtMs(v)
	})
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *LifelogEventUpsertOne) AddCreatedAtMs(v int64) *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.AddCreatedAtMs(v)
	})
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *LifelogEventUpsertOne) UpdateCreatedAtMs() *LifelogEventUpsertOne {
	return u.Update(func(s *LifelogEventUpsert) {
		s.UpdateCreatedAtMs()
	})
}

// Exec executes the query.
func (u *LifelogEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LifelogEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LifelogEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LifelogEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LifelogEventUpsertOne.ID is not supported by MySQL driver. Use LifelogEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LifelogEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LifelogEventCreateBulk is the builder for creating many LifelogEvent entities in bulk.
type LifelogEventCreateBulk struct {
	config
	err      error
	builders []*LifelogEventCreate
	conflict []sql.ConflictOption
}

// Save creates the LifelogEvent entities in the database.
func (_c *LifelogEventCreateBulk) Save(ctx context.Context) ([]*LifelogEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LifelogEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LifelogEventMutation)
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
func (_c *LifelogEventCreateBulk) SaveX(ctx context.Context) []*LifelogEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LifelogEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LifelogEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LifelogEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LifelogEventUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *LifelogEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *LifelogEventUpsertBulk {
	_c.conflict = opts
	return &LifelogEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LifelogEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LifelogEventCreateBulk) OnConflictColumns(columns ...string) *LifelogEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LifelogEventUpsertBulk{
		create: _c,
	}
}

// LifelogEventUpsertBulk is the builder for "upsert"-ing
// a bulk of LifelogEvent nodes.
type LifelogEventUpsertBulk struct {
	create *LifelogEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LifelogEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lifelogevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LifelogEventUpsertBulk) UpdateNewValues() *LifelogEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(lifelogevent.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LifelogEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LifelogEventUpsertBulk) Ignore() *LifelogEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LifelogEventUpsertBulk) DoNothing() *LifelogEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LifelogEventCreateBulk.OnConflict
// documentation for more info.
func (u *LifelogEventUpsertBulk) Update(set func(*LifelogEventUpsert)) *LifelogEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LifelogEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *LifelogEventUpsertBulk) SetSessionID(v string) *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *LifelogEventUpsertBulk) UpdateSessionID() *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetDeviceID sets the "device_id" field.
func (u *LifelogEventUpsertBulk) SetDeviceID(v string) *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *LifelogEventUpsertBulk) UpdateDeviceID() *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.UpdateDeviceID()
	})
}

// ClearDeviceID clears the value of the "device_id" field.
func (u *LifelogEventUpsertBulk) ClearDeviceID() *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.ClearDeviceID()
	})
}

// SetEventType sets the "event_type" field.
func (u *LifelogEventUpsertBulk) SetEventType(v string) *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *LifelogEventUpsertBulk) UpdateEventType() *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.UpdateEventType()
	})
}

// SetPayload sets the "payload" field.
func (u *LifelogEventUpsertBulk) SetPayload(v map[string]interface{}) *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *LifelogEventUpsertBulk) UpdatePayload() *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *LifelogEventUpsertBulk) ClearPayload() *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.ClearPayload()
	})
}

// SetText sets the "text" field.
func (u *LifelogEventUpsertBulk) SetText(v string) *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *LifelogEventUpsertBulk) UpdateText() *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.UpdateText()
	})
}

// ClearText clears the value of the "text" field.
func (u *LifelogEventUpsertBulk) ClearText() *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.ClearText()
	})
}

// SetRiskLevel sets the "risk_level" field.
func (u *LifelogEventUpsertBulk) SetRiskLevel(v string) *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.SetRiskLevel(v)
	})
}

// UpdateRiskLevel sets the "risk_level" field to the value that was provided on create.
func (u *LifelogEventUpsertBulk) UpdateRiskLevel() *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.UpdateRiskLevel()
	})
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (u *LifelogEventUpsertBulk) ClearRiskLevel() *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.ClearRiskLevel()
	})
}

// SetConfidence sets the "confidence" field.
func (u *LifelogEventUpsertBulk) SetConfidence(v float64) *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *LifelogEventUpsertBulk) AddConfidence(v float64) *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *LifelogEventUpsertBulk) UpdateConfidence() *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.UpdateConfidence()
	})
}

// SetTsMs sets the "ts_ms" field.
func (u *LifelogEventUpsertBulk) SetTsMs(v int64) *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.SetTsMs(v)
	})
}

// AddTsMs adds v to the "ts_ms" field.
func (u *LifelogEventUpsertBulk) AddTsMs(v int64) *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.AddTsMs(v)
	})
}

// UpdateTsMs sets the "ts_ms" field to the value that was provided on create.
func (u *LifelogEventUpsertBulk) UpdateTsMs() *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.UpdateTsMs()
	})
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *LifelogEventUpsertBulk) SetCreatedAtMs(v int64) *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.SetCreatedAtMs(v)
	})
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *LifelogEventUpsertBulk) AddCreatedAtMs(v int64) *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.AddCreatedAtMs(v)
	})
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *LifelogEventUpsertBulk) UpdateCreatedAtMs() *LifelogEventUpsertBulk {
	return u.Update(func(s *LifelogEventUpsert) {
		s.UpdateCreatedAtMs()
	})
}

// Exec executes the query.
func (u *LifelogEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LifelogEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LifelogEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LifelogEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
