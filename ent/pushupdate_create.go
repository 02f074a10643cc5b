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
	"github.com/opencane/edged/ent/pushupdate"
)

// PushUpdateCreate is the builder for creating a PushUpdate entity.
type PushUpdateCreate struct {
	config
	mutation *PushUpdateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDeviceID sets the "device_id" field.
func (_c *PushUpdateCreate) SetDeviceID(v string) *PushUpdateCreate {
	_c.mutation.SetDeviceID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PushUpdateCreate) SetSessionID(v string) *PushUpdateCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *PushUpdateCreate) SetNillableSessionID(v *string) *PushUpdateCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *PushUpdateCreate) SetTaskID(v string) *PushUpdateCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetSendKey sets the "send_key" field.
func (_c *PushUpdateCreate) SetSendKey(v string) *PushUpdateCreate {
	_c.mutation.SetSendKey(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *PushUpdateCreate) SetPayload(v map[string]interface{}) *PushUpdateCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PushUpdateCreate) SetStatus(v pushupdate.Status) *PushUpdateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PushUpdateCreate) SetNillableStatus(v *pushupdate.Status) *PushUpdateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_c *PushUpdateCreate) SetCreatedAtMs(v int64) *PushUpdateCreate {
	_c.mutation.SetCreatedAtMs(v)
	return _c
}

// SetSentAtMs sets the "sent_at_ms" field.
func (_c *PushUpdateCreate) SetSentAtMs(v int64) *PushUpdateCreate {
	_c.mutation.SetSentAtMs(v)
	return _c
}

// SetNillableSentAtMs sets the "sent_at_ms" field if the given value is not nil.
func (_c *PushUpdateCreate) SetNillableSentAtMs(v *int64) *PushUpdateCreate {
	if v != nil {
		_c.SetSentAtMs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PushUpdateCreate) SetID(v string) *PushUpdateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PushUpdateMutation object of the builder.
func (_c *PushUpdateCreate) Mutation() *PushUpdateMutation {
	return _c.mutation
}

// Save creates the PushUpdate in the database.
func (_c *PushUpdateCreate) Save(ctx context.Context) (*PushUpdate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PushUpdateCreate) SaveX(ctx context.Context) *PushUpdate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PushUpdateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PushUpdateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PushUpdateCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pushupdate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PushUpdateCreate) check() error {
	if _, ok := _c.mutation.DeviceID(); !ok {
		return &ValidationError{Name: "device_id", err: errors.New(`ent: missing required field "PushUpdate.device_id"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "PushUpdate.task_id"`)}
	}
	if _, ok := _c.mutation.SendKey(); !ok {
		return &ValidationError{Name: "send_key", err: errors.New(`ent: missing required field "PushUpdate.send_key"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "PushUpdate.payload"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PushUpdate.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pushupdate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PushUpdate.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAtMs(); !ok {
		return &ValidationError{Name: "created_at_ms", err: errors.New(`ent: missing required field "PushUpdate.created_at_ms"`)}
	}
	return nil
}

func (_c *PushUpdateCreate) sqlSave(ctx context.Context) (*PushUpdate, error) {
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
			return nil, fmt.Errorf("unexpected PushUpdate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PushUpdateCreate) createSpec() (*PushUpdate, *sqlgraph.CreateSpec) {
	var (
		_node = &PushUpdate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pushupdate.Table, sqlgraph.NewFieldSpec(pushupdate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DeviceID(); ok {
		_spec.SetField(pushupdate.FieldDeviceID, field.TypeString, value)
		_node.DeviceID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(pushupdate.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(pushupdate.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.SendKey(); ok {
		_spec.SetField(pushupdate.FieldSendKey, field.TypeString, value)
		_node.SendKey = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(pushupdate.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pushupdate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAtMs(); ok {
		_spec.SetField(pushupdate.FieldCreatedAtMs, field.TypeInt64, value)
		_node.CreatedAtMs = value
	}
	if value, ok := _c.mutation.SentAtMs(); ok {
		_spec.SetField(pushupdate.FieldSentAtMs, field.TypeInt64, value)
		_node.SentAtMs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PushUpdate.Create().
//		SetDeviceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PushUpdateUpsert) {
//			SetDeviceID(v+v).
//		}).
//		Exec(ctx)
func (_c *PushUpdateCreate) OnConflict(opts ...sql.ConflictOption) *PushUpdateUpsertOne {
	_c.conflict = opts
	return &PushUpdateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PushUpdate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PushUpdateCreate) OnConflictColumns(columns ...string) *PushUpdateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PushUpdateUpsertOne{
		create: _c,
	}
}

type (
	// PushUpdateUpsertOne is the builder for "upsert"-ing
	//  one PushUpdate node.
	PushUpdateUpsertOne struct {
		create *PushUpdateCreate
	}

	// PushUpdateUpsert is the "OnConflict" setter.
	PushUpdateUpsert struct {
		*sql.UpdateSet
	}
)

// SetDeviceID sets the "device_id" field.
func (u *PushUpdateUpsert) SetDeviceID(v string) *PushUpdateUpsert {
	u.Set(pushupdate.FieldDeviceID, v)
	return u
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *PushUpdateUpsert) UpdateDeviceID() *PushUpdateUpsert {
	u.SetExcluded(pushupdate.FieldDeviceID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *PushUpdateUpsert) SetSessionID(v string) *PushUpdateUpsert {
	u.Set(pushupdate.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *PushUpdateUpsert) UpdateSessionID() *PushUpdateUpsert {
	u.SetExcluded(pushupdate.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *PushUpdateUpsert) ClearSessionID() *PushUpdateUpsert {
	u.SetNull(pushupdate.FieldSessionID)
	return u
}

// SetTaskID sets the "task_id" field.
func (u *PushUpdateUpsert) SetTaskID(v string) *PushUpdateUpsert {
	u.Set(pushupdate.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *PushUpdateUpsert) UpdateTaskID() *PushUpdateUpsert {
	u.SetExcluded(pushupdate.FieldTaskID)
	return u
}

// SetSendKey sets the "send_key" field.
func (u *PushUpdateUpsert) SetSendKey(v string) *PushUpdateUpsert {
	u.Set(pushupdate.FieldSendKey, v)
	return u
}

// UpdateSendKey sets the "send_key" field to the value that was provided on create.
func (u *PushUpdateUpsert) UpdateSendKey() *PushUpdateUpsert {
	u.SetExcluded(pushupdate.FieldSendKey)
	return u
}

// SetPayload sets the "payload" field.
func (u *PushUpdateUpsert) SetPayload(v map[string]interface{}) *PushUpdateUpsert {
	u.Set(pushupdate.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *PushUpdateUpsert) UpdatePayload() *PushUpdateUpsert {
	u.SetExcluded(pushupdate.FieldPayload)
	return u
}

// SetStatus sets the "status" field.
func (u *PushUpdateUpsert) SetStatus(v pushupdate.Status) *PushUpdateUpsert {
	u.Set(pushupdate.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PushUpdateUpsert) UpdateStatus() *PushUpdateUpsert {
	u.SetExcluded(pushupdate.FieldStatus)
	return u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *PushUpdateUpsert) SetCreatedAtMs(v int64) *PushUpdateUpsert {
	u.Set(pushupdate.FieldCreatedAtMs, v)
	return u
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *PushUpdateUpsert) UpdateCreatedAtMs() *PushUpdateUpsert {
	u.SetExcluded(pushupdate.FieldCreatedAtMs)
	return u
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *PushUpdateUpsert) AddCreatedAtMs(v int64) *PushUpdateUpsert {
	u.Add(pushupdate.FieldCreatedAtMs, v)
	return u
}

// SetSentAtMs sets the "sent_at_ms" field.
func (u *PushUpdateUpsert) SetSentAtMs(v int64) *PushUpdateUpsert {
	u.Set(pushupdate.FieldSentAtMs, v)
	return u
}

// UpdateSentAtMs sets the "sent_at_ms" field to the value that was provided on create.
func (u *PushUpdateUpsert) UpdateSentAtMs() *PushUpdateUpsert {
	u.SetExcluded(pushupdate.FieldSentAtMs)
	return u
}

// AddSentAtMs adds v to the "sent_at_ms" field.
func (u *PushUpdateUpsert) AddSentAtMs(v int64) *PushUpdateUpsert {
	u.Add(pushupdate.FieldSentAtMs, v)
	return u
}

// ClearSentAtMs clears the value of the "sent_at_ms" field.
func (u *PushUpdateUpsert) ClearSentAtMs() *PushUpdateUpsert {
	u.SetNull(pushupdate.FieldSentAtMs)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PushUpdate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pushupdate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PushUpdateUpsertOne) UpdateNewValues() *PushUpdateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pushupdate.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PushUpdate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PushUpdateUpsertOne) Ignore() *PushUpdateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PushUpdateUpsertOne) DoNothing() *PushUpdateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PushUpdateCreate.OnConflict
// documentation for more info.
func (u *PushUpdateUpsertOne) Update(set func(*PushUpdateUpsert)) *PushUpdateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PushUpdateUpsert{UpdateSet: update})
	}))
	return u
}

// SetDeviceID sets the "device_id" field.
func (u *PushUpdateUpsertOne) SetDeviceID(v string) *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *PushUpdateUpsertOne) UpdateDeviceID() *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.UpdateDeviceID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *PushUpdateUpsertOne) SetSessionID(v string) *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *PushUpdateUpsertOne) UpdateSessionID() *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *PushUpdateUpsertOne) ClearSessionID() *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.ClearSessionID()
	})
}

// SetTaskID sets the "task_id" field.
func (u *PushUpdateUpsertOne) SetTaskID(v string) *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *PushUpdateUpsertOne) UpdateTaskID() *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.UpdateTaskID()
	})
}

// SetSendKey sets the "send_key" field.
func (u *PushUpdateUpsertOne) SetSendKey(v string) *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.SetSendKey(v)
	})
}

// UpdateSendKey sets the "send_key" field to the value that was provided on create.
func (u *PushUpdateUpsertOne) UpdateSendKey() *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.UpdateSendKey()
	})
}

// SetPayload sets the "payload" field.
func (u *PushUpdateUpsertOne) SetPayload(v map[string]interface{}) *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *PushUpdateUpsertOne) UpdatePayload() *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.UpdatePayload()
	})
}

// SetStatus sets the "status" field.
func (u *PushUpdateUpsertOne) SetStatus(v pushupdate.Status) *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PushUpdateUpsertOne) UpdateStatus() *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.UpdateStatus()
	})
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *PushUpdateUpsertOne) SetCreatedAtMs(v int64) *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.SetCreatedAtMs(v)
	})
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *PushUpdateUpsertOne) AddCreatedAtMs(v int64) *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.AddCreatedAtMs(v)
	})
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *PushUpdateUpsertOne) UpdateCreatedAtMs() *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.UpdateCreatedAtMs()
	})
}

// SetSentAtMs sets the "sent_at_ms" field.
func (u *PushUpdateUpsertOne) SetSentAtMs(v int64) *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.SetSentAtMs(v)
	})
}

// AddSentAtMs adds v to the "sent_at_ms" field.
func (u *PushUpdateUpsertOne) AddSentAtMs(v int64) *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.AddSentAtMs(v)
	})
}

// UpdateSentAtMs sets the "sent_at_ms" field to the value that was provided on create.
func (u *PushUpdateUpsertOne) UpdateSentAtMs() *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.UpdateSentAtMs()
	})
}

// ClearSentAtMs clears the value of the "sent_at_ms" field.
func (u *PushUpdateUpsertOne) ClearSentAtMs() *PushUpdateUpsertOne {
	return u.Update(func(s *PushUpdateUpsert) {
		s.ClearSentAtMs()
	})
}

// Exec executes the query.
func (u *PushUpdateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PushUpdateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PushUpdateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PushUpdateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PushUpdateUpsertOne.ID is not supported by MySQL driver. Use PushUpdateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PushUpdateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PushUpdateCreateBulk is the builder for creating many PushUpdate entities in bulk.
type PushUpdateCreateBulk struct {
	config
	err      error
	builders []*PushUpdateCreate
	conflict []sql.ConflictOption
}

// Save creates the PushUpdate entities in the database.
func (_c *PushUpdateCreateBulk) Save(ctx context.Context) ([]*PushUpdate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PushUpdate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PushUpdateMutation)
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
func (_c *PushUpdateCreateBulk) SaveX(ctx context.Context) []*PushUpdate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PushUpdateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PushUpdateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PushUpdate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PushUpdateUpsert) {
//			SetDeviceID(v+v).
//		}).
//		Exec(ctx)
func (_c *PushUpdateCreateBulk) OnConflict(opts ...sql.ConflictOption) *PushUpdateUpsertBulk {
	_c.conflict = opts
	return &PushUpdateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PushUpdate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PushUpdateCreateBulk) OnConflictColumns(columns ...string) *PushUpdateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PushUpdateUpsertBulk{
		create: _c,
	}
}

// PushUpdateUpsertBulk is the builder for "upsert"-ing
// a bulk of PushUpdate nodes.
type PushUpdateUpsertBulk struct {
	create *PushUpdateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PushUpdate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pushupdate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PushUpdateUpsertBulk) UpdateNewValues() *PushUpdateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pushupdate.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PushUpdate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PushUpdateUpsertBulk) Ignore() *PushUpdateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PushUpdateUpsertBulk) DoNothing() *PushUpdateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PushUpdateCreateBulk.OnConflict
// documentation for more info.
func (u *PushUpdateUpsertBulk) Update(set func(*PushUpdateUpsert)) *PushUpdateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PushUpdateUpsert{UpdateSet: update})
	}))
	return u
}

// SetDeviceID sets the "device_id" field.
func (u *PushUpdateUpsertBulk) SetDeviceID(v string) *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *PushUpdateUpsertBulk) UpdateDeviceID() *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.UpdateDeviceID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *PushUpdateUpsertBulk) SetSessionID(v string) *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *PushUpdateUpsertBulk) UpdateSessionID() *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *PushUpdateUpsertBulk) ClearSessionID() *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.ClearSessionID()
	})
}

// SetTaskID sets the "task_id" field.
func (u *PushUpdateUpsertBulk) SetTaskID(v string) *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *PushUpdateUpsertBulk) UpdateTaskID() *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.UpdateTaskID()
	})
}

// SetSendKey sets the "send_key" field.
func (u *PushUpdateUpsertBulk) SetSendKey(v string) *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.SetSendKey(v)
	})
}

// UpdateSendKey sets the "send_key" field to the value that was provided on create.
func (u *PushUpdateUpsertBulk) UpdateSendKey() *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.UpdateSendKey()
	})
}

// SetPayload sets the "payload" field.
func (u *PushUpdateUpsertBulk) SetPayload(v map[string]interface{}) *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *PushUpdateUpsertBulk) UpdatePayload() *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.UpdatePayload()
	})
}

// SetStatus sets the "status" field.
func (u *PushUpdateUpsertBulk) SetStatus(v pushupdate.Status) *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PushUpdateUpsertBulk) UpdateStatus() *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.UpdateStatus()
	})
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *PushUpdateUpsertBulk) SetCreatedAtMs(v int64) *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.SetCreatedAtMs(v)
	})
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *PushUpdateUpsertBulk) AddCreatedAtMs(v int64) *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.AddCreatedAtMs(v)
	})
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *PushUpdateUpsertBulk) UpdateCreatedAtMs() *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.UpdateCreatedAtMs()
	})
}

// SetSentAtMs sets the "sent_at_ms" field.
func (u *PushUpdateUpsertBulk) SetSentAtMs(v int64) *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.SetSentAtMs(v)
	})
}

// AddSentAtMs adds v to the "sent_at_ms" field.
func (u *PushUpdateUpsertBulk) AddSentAtMs(v int64) *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.AddSentAtMs(v)
	})
}

// UpdateSentAtMs sets the "sent_at_ms" field to the value that was provided on create.
func (u *PushUpdateUpsertBulk) UpdateSentAtMs() *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.UpdateSentAtMs()
	})
}

// ClearSentAtMs clears the value of the "sent_at_ms" field.
func (u *PushUpdateUpsertBulk) ClearSentAtMs() *PushUpdateUpsertBulk {
	return u.Update(func(s *PushUpdateUpsert) {
		s.ClearSentAtMs()
	})
}

// Exec executes the query.
func (u *PushUpdateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PushUpdateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PushUpdateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PushUpdateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
