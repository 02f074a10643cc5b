// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencane/edged/ent/thoughttrace"
)

// ThoughtTraceCreate is the builder for creating a ThoughtTrace entity.
type ThoughtTraceCreate struct {
	config
	mutation *ThoughtTraceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTraceID sets the "trace_id" field.
func (_c *ThoughtTraceCreate) SetTraceID(v string) *ThoughtTraceCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ThoughtTraceCreate) SetSessionID(v string) *ThoughtTraceCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *ThoughtTraceCreate) SetSource(v string) *ThoughtTraceCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *ThoughtTraceCreate) SetStage(v string) *ThoughtTraceCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ThoughtTraceCreate) SetPayload(v map[string]interface{}) *ThoughtTraceCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetTsMs sets the "ts_ms" field.
func (_c *ThoughtTraceCreate) SetTsMs(v int64) *ThoughtTraceCreate {
	_c.mutation.SetTsMs(v)
	return _c
}

// Mutation returns the ThoughtTraceMutation object of the builder.
func (_c *ThoughtTraceCreate) Mutation() *ThoughtTraceMutation {
	return _c.mutation
}

// Save creates the ThoughtTrace in the database.
func (_c *ThoughtTraceCreate) Save(ctx context.Context) (*ThoughtTrace, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ThoughtTraceCreate) SaveX(ctx context.Context) *ThoughtTrace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThoughtTraceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThoughtTraceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ThoughtTraceCreate) check() error {
	if _, ok := _c.mutation.TraceID(); !ok {
		return &ValidationError{Name: "trace_id", err: errors.New(`ent: missing required field "ThoughtTrace.trace_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ThoughtTrace.session_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ThoughtTrace.source"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "ThoughtTrace.stage"`)}
	}
	if _, ok := _c.mutation.TsMs(); !ok {
		return &ValidationError{Name: "ts_ms", err: errors.New(`ent: missing required field "ThoughtTrace.ts_ms"`)}
	}
	return nil
}

func (_c *ThoughtTraceCreate) sqlSave(ctx context.Context) (*ThoughtTrace, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ThoughtTraceCreate) createSpec() (*ThoughtTrace, *sqlgraph.CreateSpec) {
	var (
		_node = &ThoughtTrace{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(thoughttrace.Table, sqlgraph.NewFieldSpec(thoughttrace.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(thoughttrace.FieldTraceID, field.TypeString, value)
		_node.TraceID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(thoughttrace.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(thoughttrace.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(thoughttrace.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(thoughttrace.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.TsMs(); ok {
		_spec.SetField(thoughttrace.FieldTsMs, field.TypeInt64, value)
		_node.TsMs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ThoughtTrace.Create().
//		SetTraceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ThoughtTraceUpsert) {
//			SetTraceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ThoughtTraceCreate) OnConflict(opts ...sql.ConflictOption) *ThoughtTraceUpsertOne {
	_c.conflict = opts
	return &ThoughtTraceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ThoughtTrace.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ThoughtTraceCreate) OnConflictColumns(columns ...string) *ThoughtTraceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ThoughtTraceUpsertOne{
		create: _c,
	}
}

type (
	// ThoughtTraceUpsertOne is the builder for "upsert"-ing
	//  one ThoughtTrace node.
	ThoughtTraceUpsertOne struct {
		create *ThoughtTraceCreate
	}

	// ThoughtTraceUpsert is the "OnConflict" setter.
	ThoughtTraceUpsert struct {
		*sql.UpdateSet
	}
)

// SetTraceID sets the "trace_id" field.
func (u *ThoughtTraceUpsert) SetTraceID(v string) *ThoughtTraceUpsert {
	u.Set(thoughttrace.FieldTraceID, v)
	return u
}

// UpdateTraceID sets the "trace_id" field to the value that was provided on create.
func (u *ThoughtTraceUpsert) UpdateTraceID() *ThoughtTraceUpsert {
	u.SetExcluded(thoughttrace.FieldTraceID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *ThoughtTraceUpsert) SetSessionID(v string) *ThoughtTraceUpsert {
	u.Set(thoughttrace.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ThoughtTraceUpsert) UpdateSessionID() *ThoughtTraceUpsert {
	u.SetExcluded(thoughttrace.FieldSessionID)
	return u
}

// SetSource sets the "source" field.
func (u *ThoughtTraceUpsert) SetSource(v string) *ThoughtTraceUpsert {
	u.Set(thoughttrace.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *ThoughtTraceUpsert) UpdateSource() *ThoughtTraceUpsert {
	u.SetExcluded(thoughttrace.FieldSource)
	return u
}

// SetStage sets the "stage" field.
func (u *ThoughtTraceUpsert) SetStage(v string) *ThoughtTraceUpsert {
	u.Set(thoughttrace.FieldStage, v)
	return u
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *ThoughtTraceUpsert) UpdateStage() *ThoughtTraceUpsert {
	u.SetExcluded(thoughttrace.FieldStage)
	return u
}

// SetPayload sets the "payload" field.
func (u *ThoughtTraceUpsert) SetPayload(v map[string]interface{}) *ThoughtTraceUpsert {
	u.Set(thoughttrace.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *ThoughtTraceUpsert) UpdatePayload() *ThoughtTraceUpsert {
	u.SetExcluded(thoughttrace.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *ThoughtTraceUpsert) ClearPayload() *ThoughtTraceUpsert {
	u.SetNull(thoughttrace.FieldPayload)
	return u
}

// SetTsMs sets the "ts_ms" field.
func (u *ThoughtTraceUpsert) SetTsMs(v int64) *ThoughtTraceUpsert {
	u.Set(thoughttrace.FieldTsMs, v)
	return u
}

// UpdateTsMs sets the "ts_ms" field to the value that was provided on create.
func (u *ThoughtTraceUpsert) UpdateTsMs() *ThoughtTraceUpsert {
	u.SetExcluded(thoughttrace.FieldTsMs)
	return u
}

// AddTsMs adds v to the "ts_ms" field.
func (u *ThoughtTraceUpsert) AddTsMs(v int64) *ThoughtTraceUpsert {
	u.Add(thoughttrace.FieldTsMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ThoughtTrace.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ThoughtTraceUpsertOne) UpdateNewValues() *ThoughtTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ThoughtTrace.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ThoughtTraceUpsertOne) Ignore() *ThoughtTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ThoughtTraceUpsertOne) DoNothing() *ThoughtTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ThoughtTraceCreate.OnConflict
// documentation for more info.
func (u *ThoughtTraceUpsertOne) Update(set func(*ThoughtTraceUpsert)) *ThoughtTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ThoughtTraceUpsert{UpdateSet: update})
	}))
	return u
}

// SetTraceID sets the "trace_id" field.
func (u *ThoughtTraceUpsertOne) SetTraceID(v string) *ThoughtTraceUpsertOne {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.SetTraceID(v)
	})
}

// UpdateTraceID sets the "trace_id" field to the value that was provided on create.
func (u *ThoughtTraceUpsertOne) UpdateTraceID() *ThoughtTraceUpsertOne {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.UpdateTraceID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *ThoughtTraceUpsertOne) SetSessionID(v string) *ThoughtTraceUpsertOne {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ThoughtTraceUpsertOne) UpdateSessionID() *ThoughtTraceUpsertOne {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.UpdateSessionID()
	})
}

// SetSource sets the "source" field.
func (u *ThoughtTraceUpsertOne) SetSource(v string) *ThoughtTraceUpsertOne {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *ThoughtTraceUpsertOne) UpdateSource() *ThoughtTraceUpsertOne {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.UpdateSource()
	})
}

// SetStage sets the "stage" field.
func (u *ThoughtTraceUpsertOne) SetStage(v string) *ThoughtTraceUpsertOne {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *ThoughtTraceUpsertOne) UpdateStage() *ThoughtTraceUpsertOne {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.UpdateStage()
	})
}

// SetPayload sets the "payload" field.
func (u *ThoughtTraceUpsertOne) SetPayload(v map[string]interface{}) *ThoughtTraceUpsertOne {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *ThoughtTraceUpsertOne) UpdatePayload() *ThoughtTraceUpsertOne {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *ThoughtTraceUpsertOne) ClearPayload() *ThoughtTraceUpsertOne {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.ClearPayload()
	})
}

// SetTsMs sets the "ts_ms" field.
func (u *ThoughtTraceUpsertOne) SetTsMs(v int64) *ThoughtTraceUpsertOne {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.SetTsMs(v)
	})
}

// AddTsMs adds v to the "ts_ms" field.
func (u *ThoughtTraceUpsertOne) AddTsMs(v int64) *ThoughtTraceUpsertOne {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.AddTsMs(v)
	})
}

// UpdateTsMs sets the "ts_ms" field to the value that was provided on create.
func (u *ThoughtTraceUpsertOne) UpdateTsMs() *ThoughtTraceUpsertOne {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.UpdateTsMs()
	})
}

// Exec executes the query.
func (u *ThoughtTraceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ThoughtTraceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ThoughtTraceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ThoughtTraceUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ThoughtTraceUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ThoughtTraceCreateBulk is the builder for creating many ThoughtTrace entities in bulk.
type ThoughtTraceCreateBulk struct {
	config
	err      error
	builders []*ThoughtTraceCreate
	conflict []sql.ConflictOption
}

// Save creates the ThoughtTrace entities in the database.
func (_c *ThoughtTraceCreateBulk) Save(ctx context.Context) ([]*ThoughtTrace, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ThoughtTrace, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ThoughtTraceMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ThoughtTraceCreateBulk) SaveX(ctx context.Context) []*ThoughtTrace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThoughtTraceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThoughtTraceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ThoughtTrace.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ThoughtTraceUpsert) {
//			SetTraceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ThoughtTraceCreateBulk) OnConflict(opts ...sql.ConflictOption) *ThoughtTraceUpsertBulk {
	_c.conflict = opts
	return &ThoughtTraceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ThoughtTrace.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ThoughtTraceCreateBulk) OnConflictColumns(columns ...string) *ThoughtTraceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ThoughtTraceUpsertBulk{
		create: _c,
	}
}

// ThoughtTraceUpsertBulk is the builder for "upsert"-ing
// a bulk of ThoughtTrace nodes.
type ThoughtTraceUpsertBulk struct {
	create *ThoughtTraceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ThoughtTrace.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ThoughtTraceUpsertBulk) UpdateNewValues() *ThoughtTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ThoughtTrace.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ThoughtTraceUpsertBulk) Ignore() *ThoughtTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ThoughtTraceUpsertBulk) DoNothing() *ThoughtTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ThoughtTraceCreateBulk.OnConflict
// documentation for more info.
func (u *ThoughtTraceUpsertBulk) Update(set func(*ThoughtTraceUpsert)) *ThoughtTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ThoughtTraceUpsert{UpdateSet: update})
	}))
	return u
}

// SetTraceID sets the "trace_id" field.
func (u *ThoughtTraceUpsertBulk) SetTraceID(v string) *ThoughtTraceUpsertBulk {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.SetTraceID(v)
	})
}

// UpdateTraceID sets the "trace_id" field to the value that was provided on create.
func (u *ThoughtTraceUpsertBulk) UpdateTraceID() *ThoughtTraceUpsertBulk {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.UpdateTraceID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *ThoughtTraceUpsertBulk) SetSessionID(v string) *ThoughtTraceUpsertBulk {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ThoughtTraceUpsertBulk) UpdateSessionID() *ThoughtTraceUpsertBulk {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.UpdateSessionID()
	})
}

// SetSource sets the "source" field.
func (u *ThoughtTraceUpsertBulk) SetSource(v string) *ThoughtTraceUpsertBulk {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *ThoughtTraceUpsertBulk) UpdateSource() *ThoughtTraceUpsertBulk {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.UpdateSource()
	})
}

// SetStage sets the "stage" field.
func (u *ThoughtTraceUpsertBulk) SetStage(v string) *ThoughtTraceUpsertBulk {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *ThoughtTraceUpsertBulk) UpdateStage() *ThoughtTraceUpsertBulk {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.UpdateStage()
	})
}

// SetPayload sets the "payload" field.
func (u *ThoughtTraceUpsertBulk) SetPayload(v map[string]interface{}) *ThoughtTraceUpsertBulk {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *ThoughtTraceUpsertBulk) UpdatePayload() *ThoughtTraceUpsertBulk {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *ThoughtTraceUpsertBulk) ClearPayload() *ThoughtTraceUpsertBulk {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.ClearPayload()
	})
}

// SetTsMs sets the "ts_ms" field.
func (u *ThoughtTraceUpsertBulk) SetTsMs(v int64) *ThoughtTraceUpsertBulk {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.SetTsMs(v)
	})
}

// AddTsMs adds v to the "ts_ms" field.
func (u *ThoughtTraceUpsertBulk) AddTsMs(v int64) *ThoughtTraceUpsertBulk {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.AddTsMs(v)
	})
}

// UpdateTsMs sets the "ts_ms" field to the value that was provided on create.
func (u *ThoughtTraceUpsertBulk) UpdateTsMs() *ThoughtTraceUpsertBulk {
	return u.Update(func(s *ThoughtTraceUpsert) {
		s.UpdateTsMs()
	})
}

// Exec executes the query.
func (u *ThoughtTraceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ThoughtTraceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ThoughtTraceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ThoughtTraceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
