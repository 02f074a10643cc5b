// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencane/edged/ent/observabilitysample"
)

// ObservabilitySampleCreate is the builder for creating a ObservabilitySample entity.
type ObservabilitySampleCreate struct {
	config
	mutation *ObservabilitySampleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetScope sets the "scope" field.
func (_c *ObservabilitySampleCreate) SetScope(v string) *ObservabilitySampleCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetCounters sets the "counters" field.
func (_c *ObservabilitySampleCreate) SetCounters(v map[string]interface{}) *ObservabilitySampleCreate {
	_c.mutation.SetCounters(v)
	return _c
}

// SetTsMs sets the "ts_ms" field.
func (_c *ObservabilitySampleCreate) SetTsMs(v int64) *ObservabilitySampleCreate {
	_c.mutation.SetTsMs(v)
	return _c
}

// Mutation returns the ObservabilitySampleMutation object of the builder.
func (_c *ObservabilitySampleCreate) Mutation() *ObservabilitySampleMutation {
	return _c.mutation
}

// Save creates the ObservabilitySample in the database.
func (_c *ObservabilitySampleCreate) Save(ctx context.Context) (*ObservabilitySample, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ObservabilitySampleCreate) SaveX(ctx context.Context) *ObservabilitySample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObservabilitySampleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObservabilitySampleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ObservabilitySampleCreate) check() error {
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "ObservabilitySample.scope"`)}
	}
	if _, ok := _c.mutation.Counters(); !ok {
		return &ValidationError{Name: "counters", err: errors.New(`ent: missing required field "ObservabilitySample.counters"`)}
	}
	if _, ok := _c.mutation.TsMs(); !ok {
		return &ValidationError{Name: "ts_ms", err: errors.New(`ent: missing required field "ObservabilitySample.ts_ms"`)}
	}
	return nil
}

func (_c *ObservabilitySampleCreate) sqlSave(ctx context.Context) (*ObservabilitySample, error) {
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

func (_c *ObservabilitySampleCreate) createSpec() (*ObservabilitySample, *sqlgraph.CreateSpec) {
	var (
		_node = &ObservabilitySample{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(observabilitysample.Table, sqlgraph.NewFieldSpec(observabilitysample.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(observabilitysample.FieldScope, field.TypeString, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.Counters(); ok {
		_spec.SetField(observabilitysample.FieldCounters, field.TypeJSON, value)
		_node.Counters = value
	}
	if value, ok := _c.mutation.TsMs(); ok {
		_spec.SetField(observabilitysample.FieldTsMs, field.TypeInt64, value)
		_node.TsMs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ObservabilitySample.Create().
//		SetScope(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ObservabilitySampleUpsert) {
//			SetScope(v+v).
//		}).
//		Exec(ctx)
func (_c *ObservabilitySampleCreate) OnConflict(opts ...sql.ConflictOption) *ObservabilitySampleUpsertOne {
	_c.conflict = opts
	return &ObservabilitySampleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ObservabilitySample.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ObservabilitySampleCreate) OnConflictColumns(columns ...string) *ObservabilitySampleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ObservabilitySampleUpsertOne{
		create: _c,
	}
}

type (
	// ObservabilitySampleUpsertOne is the builder for "upsert"-ing
	//  one ObservabilitySample node.
	ObservabilitySampleUpsertOne struct {
		create *ObservabilitySampleCreate
	}

	// ObservabilitySampleUpsert is the "OnConflict" setter.
	ObservabilitySampleUpsert struct {
		*sql.UpdateSet
	}
)

// SetScope sets the "scope" field.
func (u *ObservabilitySampleUpsert) SetScope(v string) *ObservabilitySampleUpsert {
	u.Set(observabilitysample.FieldScope, v)
	return u
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *ObservabilitySampleUpsert) UpdateScope() *ObservabilitySampleUpsert {
	u.SetExcluded(observabilitysample.FieldScope)
	return u
}

// SetCounters sets the "counters" field.
func (u *ObservabilitySampleUpsert) SetCounters(v map[string]interface{}) *ObservabilitySampleUpsert {
	u.Set(observabilitysample.FieldCounters, v)
	return u
}

// UpdateCounters sets the "counters" field to the value that was provided on create.
func (u *ObservabilitySampleUpsert) UpdateCounters() *ObservabilitySampleUpsert {
	u.SetExcluded(observabilitysample.FieldCounters)
	return u
}

// SetTsMs sets the "ts_ms" field.
func (u *ObservabilitySampleUpsert) SetTsMs(v int64) *ObservabilitySampleUpsert {
	u.Set(observabilitysample.FieldTsMs, v)
	return u
}

// UpdateTsMs sets the "ts_ms" field to the value that was provided on create.
func (u *ObservabilitySampleUpsert) UpdateTsMs() *ObservabilitySampleUpsert {
	u.SetExcluded(observabilitysample.FieldTsMs)
	return u
}

// AddTsMs adds v to the "ts_ms" field.
func (u *ObservabilitySampleUpsert) AddTsMs(v int64) *ObservabilitySampleUpsert {
	u.Add(observabilitysample.FieldTsMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ObservabilitySample.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ObservabilitySampleUpsertOne) UpdateNewValues() *ObservabilitySampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ObservabilitySample.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ObservabilitySampleUpsertOne) Ignore() *ObservabilitySampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ObservabilitySampleUpsertOne) DoNothing() *ObservabilitySampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ObservabilitySampleCreate.OnConflict
// documentation for more info.
func (u *ObservabilitySampleUpsertOne) Update(set func(*ObservabilitySampleUpsert)) *ObservabilitySampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ObservabilitySampleUpsert{UpdateSet: update})
	}))
	return u
}

// SetScope sets the "scope" field.
func (u *ObservabilitySampleUpsertOne) SetScope(v string) *ObservabilitySampleUpsertOne {
	return u.Update(func(s *ObservabilitySampleUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *ObservabilitySampleUpsertOne) UpdateScope() *ObservabilitySampleUpsertOne {
	return u.Update(func(s *ObservabilitySampleUpsert) {
		s.UpdateScope()
	})
}

// SetCounters sets the "counters" field.
func (u *ObservabilitySampleUpsertOne) SetCounters(v map[string]interface{}) *ObservabilitySampleUpsertOne {
	return u.Update(func(s *ObservabilitySampleUpsert) {
		s.SetCounters(v)
	})
}

// UpdateCounters sets the "counters" field to the value that was provided on create.
func (u *ObservabilitySampleUpsertOne) UpdateCounters() *ObservabilitySampleUpsertOne {
	return u.Update(func(s *ObservabilitySampleUpsert) {
		s.UpdateCounters()
	})
}

// SetTsMs sets the "ts_ms" field.
func (u *ObservabilitySampleUpsertOne) SetTsMs(v int64) *ObservabilitySampleUpsertOne {
	return u.Update(func(s *ObservabilitySampleUpsert) {
		s.SetTsMs(v)
	})
}

// AddTsMs adds v to the "ts_ms" field.
func (u *ObservabilitySampleUpsertOne) AddTsMs(v int64) *ObservabilitySampleUpsertOne {
	return u.Update(func(s *ObservabilitySampleUpsert) {
		s.AddTsMs(v)
	})
}

// UpdateTsMs sets the "ts_ms" field to the value that was provided on create.
func (u *ObservabilitySampleUpsertOne) UpdateTsMs() *ObservabilitySampleUpsertOne {
	return u.Update(func(s *ObservabilitySampleUpsert) {
		s.UpdateTsMs()
	})
}

// Exec executes the query.
func (u *ObservabilitySampleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ObservabilitySampleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ObservabilitySampleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ObservabilitySampleUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ObservabilitySampleUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ObservabilitySampleCreateBulk is the builder for creating many ObservabilitySample entities in bulk.
type ObservabilitySampleCreateBulk struct {
	config
	err      error
	builders []*ObservabilitySampleCreate
	conflict []sql.ConflictOption
}

// Save creates the ObservabilitySample entities in the database.
func (_c *ObservabilitySampleCreateBulk) Save(ctx context.Context) ([]*ObservabilitySample, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ObservabilitySample, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ObservabilitySampleMutation)
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
func (_c *ObservabilitySampleCreateBulk) SaveX(ctx context.Context) []*ObservabilitySample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObservabilitySampleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObservabilitySampleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ObservabilitySample.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ObservabilitySampleUpsert) {
//			SetScope(v+v).
//		}).
//		Exec(ctx)
func (_c *ObservabilitySampleCreateBulk) OnConflict(opts ...sql.ConflictOption) *ObservabilitySampleUpsertBulk {
	_c.conflict = opts
	return &ObservabilitySampleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ObservabilitySample.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ObservabilitySampleCreateBulk) OnConflictColumns(columns ...string) *ObservabilitySampleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ObservabilitySampleUpsertBulk{
		create: _c,
	}
}

// ObservabilitySampleUpsertBulk is the builder for "upsert"-ing
// a bulk of ObservabilitySample nodes.
type ObservabilitySampleUpsertBulk struct {
	create *ObservabilitySampleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ObservabilitySample.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ObservabilitySampleUpsertBulk) UpdateNewValues() *ObservabilitySampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ObservabilitySample.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ObservabilitySampleUpsertBulk) Ignore() *ObservabilitySampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ObservabilitySampleUpsertBulk) DoNothing() *ObservabilitySampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ObservabilitySampleCreateBulk.OnConflict
// documentation for more info.
func (u *ObservabilitySampleUpsertBulk) Update(set func(*ObservabilitySampleUpsert)) *ObservabilitySampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ObservabilitySampleUpsert{UpdateSet: update})
	}))
	return u
}

// SetScope sets the "scope" field.
func (u *ObservabilitySampleUpsertBulk) SetScope(v string) *ObservabilitySampleUpsertBulk {
	return u.Update(func(s *ObservabilitySampleUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *ObservabilitySampleUpsertBulk) UpdateScope() *ObservabilitySampleUpsertBulk {
	return u.Update(func(s *ObservabilitySampleUpsert) {
		s.UpdateScope()
	})
}

// SetCounters sets the "counters" field.
func (u *ObservabilitySampleUpsertBulk) SetCounters(v map[string]interface{}) *ObservabilitySampleUpsertBulk {
	return u.Update(func(s *ObservabilitySampleUpsert) {
		s.SetCounters(v)
	})
}

// UpdateCounters sets the "counters" field to the value that was provided on create.
func (u *ObservabilitySampleUpsertBulk) UpdateCounters() *ObservabilitySampleUpsertBulk {
	return u.Update(func(s *ObservabilitySampleUpsert) {
		s.UpdateCounters()
	})
}

// SetTsMs sets the "ts_ms" field.
func (u *ObservabilitySampleUpsertBulk) SetTsMs(v int64) *ObservabilitySampleUpsertBulk {
	return u.Update(func(s *ObservabilitySampleUpsert) {
		s.SetTsMs(v)
	})
}

// AddTsMs adds v to the "ts_ms" field.
func (u *ObservabilitySampleUpsertBulk) AddTsMs(v int64) *ObservabilitySampleUpsertBulk {
	return u.Update(func(s *ObservabilitySampleUpsert) {
		s.AddTsMs(v)
	})
}

// UpdateTsMs sets the "ts_ms" field to the value that was provided on create.
func (u *ObservabilitySampleUpsertBulk) UpdateTsMs() *ObservabilitySampleUpsertBulk {
	return u.Update(func(s *ObservabilitySampleUpsert) {
		s.UpdateTsMs()
	})
}

// Exec executes the query.
func (u *ObservabilitySampleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ObservabilitySampleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ObservabilitySampleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ObservabilitySampleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
