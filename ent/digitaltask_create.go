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
	"github.com/opencane/edged/ent/digitaltask"
)

// DigitalTaskCreate is the builder for creating a DigitalTask entity.
type DigitalTaskCreate struct {
	config
	mutation *DigitalTaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *DigitalTaskCreate) SetSessionID(v string) *DigitalTaskCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDeviceID sets the "device_id" field.
func (_c *DigitalTaskCreate) SetDeviceID(v string) *DigitalTaskCreate {
	_c.mutation.SetDeviceID(v)
	return _c
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_c *DigitalTaskCreate) SetNillableDeviceID(v *string) *DigitalTaskCreate {
	if v != nil {
		_c.SetDeviceID(*v)
	}
	return _c
}

// SetGoal sets the "goal" field.
func (_c *DigitalTaskCreate) SetGoal(v string) *DigitalTaskCreate {
	_c.mutation.SetGoal(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DigitalTaskCreate) SetStatus(v digitaltask.Status) *DigitalTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DigitalTaskCreate) SetNillableStatus(v *digitaltask.Status) *DigitalTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSteps sets the "steps" field.
func (_c *DigitalTaskCreate) SetSteps(v []map[string]interface{}) *DigitalTaskCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *DigitalTaskCreate) SetResult(v string) *DigitalTaskCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *DigitalTaskCreate) SetNillableResult(v *string) *DigitalTaskCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DigitalTaskCreate) SetErrorMessage(v string) *DigitalTaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DigitalTaskCreate) SetNillableErrorMessage(v *string) *DigitalTaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_c *DigitalTaskCreate) SetTimeoutSeconds(v int) *DigitalTaskCreate {
	_c.mutation.SetTimeoutSeconds(v)
	return _c
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_c *DigitalTaskCreate) SetNillableTimeoutSeconds(v *int) *DigitalTaskCreate {
	if v != nil {
		_c.SetTimeoutSeconds(*v)
	}
	return _c
}

// SetPushContext sets the "push_context" field.
func (_c *DigitalTaskCreate) SetPushContext(v map[string]interface{}) *DigitalTaskCreate {
	_c.mutation.SetPushContext(v)
	return _c
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_c *DigitalTaskCreate) SetCreatedAtMs(v int64) *DigitalTaskCreate {
	_c.mutation.SetCreatedAtMs(v)
	return _c
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (_c *DigitalTaskCreate) SetUpdatedAtMs(v int64) *DigitalTaskCreate {
	_c.mutation.SetUpdatedAtMs(v)
	return _c
}

// SetCompletedAtMs sets the "completed_at_ms" field.
func (_c *DigitalTaskCreate) SetCompletedAtMs(v int64) *DigitalTaskCreate {
	_c.mutation.SetCompletedAtMs(v)
	return _c
}

// SetNillableCompletedAtMs sets the "completed_at_ms" field if the given value is not nil.
func (_c *DigitalTaskCreate) SetNillableCompletedAtMs(v *int64) *DigitalTaskCreate {
	if v != nil {
		_c.SetCompletedAtMs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DigitalTaskCreate) SetID(v string) *DigitalTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DigitalTaskMutation object of the builder.
func (_c *DigitalTaskCreate) Mutation() *DigitalTaskMutation {
	return _c.mutation
}

// Save creates the DigitalTask in the database.
func (_c *DigitalTaskCreate) Save(ctx context.Context) (*DigitalTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DigitalTaskCreate) SaveX(ctx context.Context) *DigitalTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DigitalTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DigitalTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DigitalTaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := digitaltask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TimeoutSeconds(); !ok {
		v := digitaltask.DefaultTimeoutSeconds
		_c.mutation.SetTimeoutSeconds(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DigitalTaskCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "DigitalTask.session_id"`)}
	}
	if _, ok := _c.mutation.Goal(); !ok {
		return &ValidationError{Name: "goal", err: errors.New(`ent: missing required field "DigitalTask.goal"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DigitalTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := digitaltask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DigitalTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeoutSeconds(); !ok {
		return &ValidationError{Name: "timeout_seconds", err: errors.New(`ent: missing required field "DigitalTask.timeout_seconds"`)}
	}
	if _, ok := _c.mutation.CreatedAtMs(); !ok {
		return &ValidationError{Name: "created_at_ms", err: errors.New(`ent: missing required field "DigitalTask.created_at_ms"`)}
	}
	if _, ok := _c.mutation.UpdatedAtMs(); !ok {
		return &ValidationError{Name: "updated_at_ms", err: errors.New(`ent: missing required field "DigitalTask.updated_at_ms"`)}
	}
	return nil
}

func (_c *DigitalTaskCreate) sqlSave(ctx context.Context) (*DigitalTask, error) {
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
			return nil, fmt.Errorf("unexpected DigitalTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DigitalTaskCreate) createSpec() (*DigitalTask, *sqlgraph.CreateSpec) {
	var (
		_node = &DigitalTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(digitaltask.Table, sqlgraph.NewFieldSpec(digitaltask.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(digitaltask.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.DeviceID(); ok {
		_spec.SetField(digitaltask.FieldDeviceID, field.TypeString, value)
		_node.DeviceID = value
	}
	if value, ok := _c.mutation.Goal(); ok {
		_spec.SetField(digitaltask.FieldGoal, field.TypeString, value)
		_node.Goal = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(digitaltask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(digitaltask.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(digitaltask.FieldResult, field.TypeString, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(digitaltask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.TimeoutSeconds(); ok {
		_spec.SetField(digitaltask.FieldTimeoutSeconds, field.TypeInt, value)
		_node.TimeoutSeconds = value
	}
	if value, ok := _c.mutation.PushContext(); ok {
		_spec.SetField(digitaltask.FieldPushContext, field.TypeJSON, value)
		_node.PushContext = value
	}
	if value, ok := _c.mutation.CreatedAtMs(); ok {
		_spec.SetField(digitaltask.FieldCreatedAtMs, field.TypeInt64, value)
		_node.CreatedAtMs = value
	}
	if value, ok := _c.mutation.UpdatedAtMs(); ok {
		_spec.SetField(digitaltask.FieldUpdatedAtMs, field.TypeInt64, value)
		_node.UpdatedAtMs = value
	}
	if value, ok := _c.mutation.CompletedAtMs(); ok {
		_spec.SetField(digitaltask.FieldCompletedAtMs, field.TypeInt64, value)
		_node.CompletedAtMs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DigitalTask.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DigitalTaskUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *DigitalTaskCreate) OnConflict(opts ...sql.ConflictOption) *DigitalTaskUpsertOne {
	_c.conflict = opts
	return &DigitalTaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DigitalTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DigitalTaskCreate) OnConflictColumns(columns ...string) *DigitalTaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DigitalTaskUpsertOne{
		create: _c,
	}
}

type (
	// DigitalTaskUpsertOne is the builder for "upsert"-ing
	//  one DigitalTask node.
	DigitalTaskUpsertOne struct {
		create *DigitalTaskCreate
	}

	// DigitalTaskUpsert is the "OnConflict" setter.
	DigitalTaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *DigitalTaskUpsert) SetSessionID(v string) *DigitalTaskUpsert {
	u.Set(digitaltask.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *DigitalTaskUpsert) UpdateSessionID() *DigitalTaskUpsert {
	u.SetExcluded(digitaltask.FieldSessionID)
	return u
}

// SetDeviceID sets the "device_id" field.
func (u *DigitalTaskUpsert) SetDeviceID(v string) *DigitalTaskUpsert {
	u.Set(digitaltask.FieldDeviceID, v)
	return u
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *DigitalTaskUpsert) UpdateDeviceID() *DigitalTaskUpsert {
	u.SetExcluded(digitaltask.FieldDeviceID)
	return u
}

// ClearDeviceID clears the value of the "device_id" field.
func (u *DigitalTaskUpsert) ClearDeviceID() *DigitalTaskUpsert {
	u.SetNull(digitaltask.FieldDeviceID)
	return u
}

// SetGoal sets the "goal" field.
func (u *DigitalTaskUpsert) SetGoal(v string) *DigitalTaskUpsert {
	u.Set(digitaltask.FieldGoal, v)
	return u
}

// UpdateGoal sets the "goal" field to the value that was provided on create.
func (u *DigitalTaskUpsert) UpdateGoal() *DigitalTaskUpsert {
	u.SetExcluded(digitaltask.FieldGoal)
	return u
}

// SetStatus sets the "status" field.
func (u *DigitalTaskUpsert) SetStatus(v digitaltask.Status) *DigitalTaskUpsert {
	u.Set(digitaltask.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DigitalTaskUpsert) UpdateStatus() *DigitalTaskUpsert {
	u.SetExcluded(digitaltask.FieldStatus)
	return u
}

// SetSteps sets the "steps" field.
func (u *DigitalTaskUpsert) SetSteps(v []map[string]interface{}) *DigitalTaskUpsert {
	u.Set(digitaltask.FieldSteps, v)
	return u
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *DigitalTaskUpsert) UpdateSteps() *DigitalTaskUpsert {
	u.SetExcluded(digitaltask.FieldSteps)
	return u
}

// ClearSteps clears the value of the "steps" field.
func (u *DigitalTaskUpsert) ClearSteps() *DigitalTaskUpsert {
	u.SetNull(digitaltask.FieldSteps)
	return u
}

// SetResult sets the "result" field.
func (u *DigitalTaskUpsert) SetResult(v string) *DigitalTaskUpsert {
	u.Set(digitaltask.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *DigitalTaskUpsert) UpdateResult() *DigitalTaskUpsert {
	u.SetExcluded(digitaltask.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *DigitalTaskUpsert) ClearResult() *DigitalTaskUpsert {
	u.SetNull(digitaltask.FieldResult)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *DigitalTaskUpsert) SetErrorMessage(v string) *DigitalTaskUpsert {
	u.Set(digitaltask.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DigitalTaskUpsert) UpdateErrorMessage() *DigitalTaskUpsert {
	u.SetExcluded(digitaltask.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *DigitalTaskUpsert) ClearErrorMessage() *DigitalTaskUpsert {
	u.SetNull(digitaltask.FieldErrorMessage)
	return u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (u *DigitalTaskUpsert) SetTimeoutSeconds(v int) *DigitalTaskUpsert {
	u.Set(digitaltask.FieldTimeoutSeconds, v)
	return u
}

// UpdateTimeoutSeconds sets the "timeout_seconds" field to the value that was provided on create.
func (u *DigitalTaskUpsert) UpdateTimeoutSeconds() *DigitalTaskUpsert {
	u.SetExcluded(digitaltask.FieldTimeoutSeconds)
	return u
}

// AddTimeoutSeconds adds v to the "timeout_seconds" field.
func (u *DigitalTaskUpsert) AddTimeoutSeconds(v int) *DigitalTaskUpsert {
	u.Add(digitaltask.FieldTimeoutSeconds, v)
	return u
}

// SetPushContext sets the "push_context" field.
func (u *DigitalTaskUpsert) SetPushContext(v map[string]interface{}) *DigitalTaskUpsert {
	u.Set(digitaltask.FieldPushContext, v)
	return u
}

// UpdatePushContext sets the "push_context" field to the value that was provided on create.
func (u *DigitalTaskUpsert) UpdatePushContext() *DigitalTaskUpsert {
	u.SetExcluded(digitaltask.FieldPushContext)
	return u
}

// ClearPushContext clears the value of the "push_context" field.
func (u *DigitalTaskUpsert) ClearPushContext() *DigitalTaskUpsert {
	u.SetNull(digitaltask.FieldPushContext)
	return u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *DigitalTaskUpsert) SetCreatedAtMs(v int64) *DigitalTaskUpsert {
	u.Set(digitaltask.FieldCreatedAtMs, v)
	return u
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *DigitalTaskUpsert) UpdateCreatedAtMs() *DigitalTaskUpsert {
	u.SetExcluded(digitaltask.FieldCreatedAtMs)
	return u
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *DigitalTaskUpsert) AddCreatedAtMs(v int64) *DigitalTaskUpsert {
	u.Add(digitaltask.FieldCreatedAtMs, v)
	return u
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (u *DigitalTaskUpsert) SetUpdatedAtMs(v int64) *DigitalTaskUpsert {
	u.Set(digitaltask.FieldUpdatedAtMs, v)
	return u
}

// UpdateUpdatedAtMs sets the "updated_at_ms" field to the value that was provided on create.
func (u *DigitalTaskUpsert) UpdateUpdatedAtMs() *DigitalTaskUpsert {
	u.SetExcluded(digitaltask.FieldUpdatedAtMs)
	return u
}

// AddUpdatedAtMs adds v to the "updated_at_ms" field.
func (u *DigitalTaskUpsert) AddUpdatedAtMs(v int64) *DigitalTaskUpsert {
	u.Add(digitaltask.FieldUpdatedAtMs, v)
	return u
}

// SetCompletedAtMs sets the "completed_at_ms" field.
func (u *DigitalTaskUpsert) SetCompletedAtMs(v int64) *DigitalTaskUpsert {
	u.Set(digitaltask.FieldCompletedAtMs, v)
	return u
}

// UpdateCompletedAtMs sets the "completed_at_ms" field to the value that was provided on create.
func (u *DigitalTaskUpsert) UpdateCompletedAtMs() *DigitalTaskUpsert {
	u.SetExcluded(digitaltask.FieldCompletedAtMs)
	return u
}

// AddCompletedAtMs adds v to the "completed_at_ms" field.
func (u *DigitalTaskUpsert) AddCompletedAtMs(v int64) *DigitalTaskUpsert {
	u.Add(digitaltask.FieldCompletedAtMs, v)
	return u
}

// ClearCompletedAtMs clears the value of the "completed_at_ms" field.
func (u *DigitalTaskUpsert) ClearCompletedAtMs() *DigitalTaskUpsert {
	u.SetNull(digitaltask.FieldCompletedAtMs)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DigitalTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(digitaltask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DigitalTaskUpsertOne) UpdateNewValues() *DigitalTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(digitaltask.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DigitalTask.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DigitalTaskUpsertOne) Ignore() *DigitalTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DigitalTaskUpsertOne) DoNothing() *DigitalTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DigitalTaskCreate.OnConflict
// documentation for more info.
func (u *DigitalTaskUpsertOne) Update(set func(*DigitalTaskUpsert)) *DigitalTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DigitalTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *DigitalTaskUpsertOne) SetSessionID(v string) *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *DigitalTaskUpsertOne) UpdateSessionID() *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateSessionID()
	})
}

// SetDeviceID sets the "device_id" field.
func (u *DigitalTaskUpsertOne) SetDeviceID(v string) *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *DigitalTaskUpsertOne) UpdateDeviceID() *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateDeviceID()
	})
}

// ClearDeviceID clears the value of the "device_id" field.
func (u *DigitalTaskUpsertOne) ClearDeviceID() *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.ClearDeviceID()
	})
}

// SetGoal sets the "goal" field.
func (u *DigitalTaskUpsertOne) SetGoal(v string) *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetGoal(v)
	})
}

// UpdateGoal sets the "goal" field to the value that was provided on create.
func (u *DigitalTaskUpsertOne) UpdateGoal() *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateGoal()
	})
}

// SetStatus sets the "status" field.
func (u *DigitalTaskUpsertOne) SetStatus(v digitaltask.Status) *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DigitalTaskUpsertOne) UpdateStatus() *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetSteps sets the "steps" field.
func (u *DigitalTaskUpsertOne) SetSteps(v []map[string]interface{}) *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetSteps(v)
	})
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *DigitalTaskUpsertOne) UpdateSteps() *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateSteps()
	})
}

// ClearSteps clears the value of the "steps" field.
func (u *DigitalTaskUpsertOne) ClearSteps() *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.ClearSteps()
	})
}

// SetResult sets the "result" field.
func (u *DigitalTaskUpsertOne) SetResult(v string) *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *DigitalTaskUpsertOne) UpdateResult() *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *DigitalTaskUpsertOne) ClearResult() *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.ClearResult()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *DigitalTaskUpsertOne) SetErrorMessage(v string) *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DigitalTaskUpsertOne) UpdateErrorMessage() *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *DigitalTaskUpsertOne) ClearErrorMessage() *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (u *DigitalTaskUpsertOne) SetTimeoutSeconds(v int) *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetTimeoutSeconds(v)
	})
}

// AddTimeoutSeconds adds v to the "timeout_seconds" field.
func (u *DigitalTaskUpsertOne) AddTimeoutSeconds(v int) *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.AddTimeoutSeconds(v)
	})
}

// UpdateTimeoutSeconds sets the "timeout_seconds" field to the value that was provided on create.
func (u *DigitalTaskUpsertOne) UpdateTimeoutSeconds() *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateTimeoutSeconds()
	})
}

// SetPushContext sets the "push_context" field.
func (u *DigitalTaskUpsertOne) SetPushContext(v map[string]interface{}) *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetPushContext(v)
	})
}

// UpdatePushContext sets the "push_context" field to the value that was provided on create.
func (u *DigitalTaskUpsertOne) UpdatePushContext() *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdatePushContext()
	})
}

// ClearPushContext clears the value of the "push_context" field.
func (u *DigitalTaskUpsertOne) ClearPushContext() *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.ClearPushContext()
	})
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *DigitalTaskUpsertOne) SetCreatedAtMs(v int64) *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetCreatedAtMs(v)
	})
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *DigitalTaskUpsertOne) AddCreatedAtMs(v int64) *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.AddCreatedAtMs(v)
	})
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *DigitalTaskUpsertOne) UpdateCreatedAtMs() *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateCreatedAtMs()
	})
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (u *DigitalTaskUpsertOne) SetUpdatedAtMs(v int64) *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetUpdatedAtMs(v)
	})
}

// AddUpdatedAtMs adds v to the "updated_at_ms" field.
func (u *DigitalTaskUpsertOne) AddUpdatedAtMs(v int64) *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.AddUpdatedAtMs(v)
	})
}

// UpdateUpdatedAtMs sets the "updated_at_ms" field to the value that was provided on create.
func (u *DigitalTaskUpsertOne) UpdateUpdatedAtMs() *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateUpdatedAtMs()
	})
}

// SetCompletedAtMs sets the "completed_at_ms" field.
func (u *DigitalTaskUpsertOne) SetCompletedAtMs(v int64) *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetCompletedAtMs(v)
	})
}

// AddCompletedAtMs adds v to the "completed_at_ms" field.
func (u *DigitalTaskUpsertOne) AddCompletedAtMs(v int64) *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.AddCompletedAtMs(v)
	})
}

// UpdateCompletedAtMs sets the "completed_at_ms" field to the value that was provided on create.
func (u *DigitalTaskUpsertOne) UpdateCompletedAtMs() *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateCompletedAtMs()
	})
}

// ClearCompletedAtMs clears the value of the "completed_at_ms" field.
func (u *DigitalTaskUpsertOne) ClearCompletedAtMs() *DigitalTaskUpsertOne {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.ClearCompletedAtMs()
	})
}

// Exec executes the query.
func (u *DigitalTaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DigitalTaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DigitalTaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DigitalTaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DigitalTaskUpsertOne.ID is not supported by MySQL driver. Use DigitalTaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DigitalTaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DigitalTaskCreateBulk is the builder for creating many DigitalTask entities in bulk.
type DigitalTaskCreateBulk struct {
	config
	err      error
	builders []*DigitalTaskCreate
	conflict []sql.ConflictOption
}

// Save creates the DigitalTask entities in the database.
func (_c *DigitalTaskCreateBulk) Save(ctx context.Context) ([]*DigitalTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DigitalTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DigitalTaskMutation)
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
func (_c *DigitalTaskCreateBulk) SaveX(ctx context.Context) []*DigitalTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DigitalTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DigitalTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DigitalTask.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DigitalTaskUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *DigitalTaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *DigitalTaskUpsertBulk {
	_c.conflict = opts
	return &DigitalTaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DigitalTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DigitalTaskCreateBulk) OnConflictColumns(columns ...string) *DigitalTaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DigitalTaskUpsertBulk{
		create: _c,
	}
}

// DigitalTaskUpsertBulk is the builder for "upsert"-ing
// a bulk of DigitalTask nodes.
type DigitalTaskUpsertBulk struct {
	create *DigitalTaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DigitalTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(digitaltask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DigitalTaskUpsertBulk) UpdateNewValues() *DigitalTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(digitaltask.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DigitalTask.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DigitalTaskUpsertBulk) Ignore() *DigitalTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DigitalTaskUpsertBulk) DoNothing() *DigitalTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DigitalTaskCreateBulk.OnConflict
// documentation for more info.
func (u *DigitalTaskUpsertBulk) Update(set func(*DigitalTaskUpsert)) *DigitalTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DigitalTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *DigitalTaskUpsertBulk) SetSessionID(v string) *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *DigitalTaskUpsertBulk) UpdateSessionID() *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateSessionID()
	})
}

// SetDeviceID sets the "device_id" field.
func (u *DigitalTaskUpsertBulk) SetDeviceID(v string) *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *DigitalTaskUpsertBulk) UpdateDeviceID() *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateDeviceID()
	})
}

// ClearDeviceID clears the value of the "device_id" field.
func (u *DigitalTaskUpsertBulk) ClearDeviceID() *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.ClearDeviceID()
	})
}

// SetGoal sets the "goal" field.
func (u *DigitalTaskUpsertBulk) SetGoal(v string) *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetGoal(v)
	})
}

// UpdateGoal sets the "goal" field to the value that was provided on create.
func (u *DigitalTaskUpsertBulk) UpdateGoal() *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateGoal()
	})
}

// SetStatus sets the "status" field.
func (u *DigitalTaskUpsertBulk) SetStatus(v digitaltask.Status) *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DigitalTaskUpsertBulk) UpdateStatus() *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetSteps sets the "steps" field.
func (u *DigitalTaskUpsertBulk) SetSteps(v []map[string]interface{}) *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetSteps(v)
	})
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *DigitalTaskUpsertBulk) UpdateSteps() *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateSteps()
	})
}

// ClearSteps clears the value of the "steps" field.
func (u *DigitalTaskUpsertBulk) ClearSteps() *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.ClearSteps()
	})
}

// SetResult sets the "result" field.
func (u *DigitalTaskUpsertBulk) SetResult(v string) *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *DigitalTaskUpsertBulk) UpdateResult() *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *DigitalTaskUpsertBulk) ClearResult() *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.ClearResult()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *DigitalTaskUpsertBulk) SetErrorMessage(v string) *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DigitalTaskUpsertBulk) UpdateErrorMessage() *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *DigitalTaskUpsertBulk) ClearErrorMessage() *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (u *DigitalTaskUpsertBulk) SetTimeoutSeconds(v int) *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetTimeoutSeconds(v)
	})
}

// AddTimeoutSeconds adds v to the "timeout_seconds" field.
func (u *DigitalTaskUpsertBulk) AddTimeoutSeconds(v int) *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.AddTimeoutSeconds(v)
	})
}

// UpdateTimeoutSeconds sets the "timeout_seconds" field to the value that was provided on create.
func (u *DigitalTaskUpsertBulk) UpdateTimeoutSeconds() *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateTimeoutSeconds()
	})
}

// SetPushContext sets the "push_context" field.
func (u *DigitalTaskUpsertBulk) SetPushContext(v map[string]interface{}) *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetPushContext(v)
	})
}

// UpdatePushContext sets the "push_context" field to the value that was provided on create.
func (u *DigitalTaskUpsertBulk) UpdatePushContext() *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdatePushContext()
	})
}

// ClearPushContext clears the value of the "push_context" field.
func (u *DigitalTaskUpsertBulk) ClearPushContext() *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.ClearPushContext()
	})
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *DigitalTaskUpsertBulk) SetCreatedAtMs(v int64) *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetCreatedAtMs(v)
	})
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *DigitalTaskUpsertBulk) AddCreatedAtMs(v int64) *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.AddCreatedAtMs(v)
	})
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *DigitalTaskUpsertBulk) UpdateCreatedAtMs() *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateCreatedAtMs()
	})
}

// SetUpdatedAtMs sets the "updated_at_ms" field.
func (u *DigitalTaskUpsertBulk) SetUpdatedAtMs(v int64) *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetUpdatedAtMs(v)
	})
}

// AddUpdatedAtMs adds v to the "updated_at_ms" field.
func (u *DigitalTaskUpsertBulk) AddUpdatedAtMs(v int64) *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.AddUpdatedAtMs(v)
	})
}

// UpdateUpdatedAtMs sets the "updated_at_ms" field to the value that was provided on create.
func (u *DigitalTaskUpsertBulk) UpdateUpdatedAtMs() *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateUpdatedAtMs()
	})
}

// SetCompletedAtMs sets the "completed_at_ms" field.
func (u *DigitalTaskUpsertBulk) SetCompletedAtMs(v int64) *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.SetCompletedAtMs(v)
	})
}

// AddCompletedAtMs adds v to the "completed_at_ms" field.
func (u *DigitalTaskUpsertBulk) AddCompletedAtMs(v int64) *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.AddCompletedAtMs(v)
	})
}

// UpdateCompletedAtMs sets the "completed_at_ms" field to the value that was provided on create.
func (u *DigitalTaskUpsertBulk) UpdateCompletedAtMs() *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.UpdateCompletedAtMs()
	})
}

// ClearCompletedAtMs clears the value of the "completed_at_ms" field.
func (u *DigitalTaskUpsertBulk) ClearCompletedAtMs() *DigitalTaskUpsertBulk {
	return u.Update(func(s *DigitalTaskUpsert) {
		s.ClearCompletedAtMs()
	})
}

// Exec executes the query.
func (u *DigitalTaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DigitalTaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DigitalTaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DigitalTaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
