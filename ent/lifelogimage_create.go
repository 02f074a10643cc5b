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
	"github.com/opencane/edged/ent/lifelogimage"
)

// LifelogImageCreate is the builder for creating a LifelogImage entity.
type LifelogImageCreate struct {
	config
	mutation *LifelogImageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *LifelogImageCreate) SetSessionID(v string) *LifelogImageCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDeviceID sets the "device_id" field.
func (_c *LifelogImageCreate) SetDeviceID(v string) *LifelogImageCreate {
	_c.mutation.SetDeviceID(v)
	return _c
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_c *LifelogImageCreate) SetNillableDeviceID(v *string) *LifelogImageCreate {
	if v != nil {
		_c.SetDeviceID(*v)
	}
	return _c
}

// SetImageURI sets the "image_uri" field.
func (_c *LifelogImageCreate) SetImageURI(v string) *LifelogImageCreate {
	_c.mutation.SetImageURI(v)
	return _c
}

// SetDhash sets the "dhash" field.
func (_c *LifelogImageCreate) SetDhash(v string) *LifelogImageCreate {
	_c.mutation.SetDhash(v)
	return _c
}

// SetIsDedup sets the "is_dedup" field.
func (_c *LifelogImageCreate) SetIsDedup(v bool) *LifelogImageCreate {
	_c.mutation.SetIsDedup(v)
	return _c
}

// SetNillableIsDedup sets the "is_dedup" field if the given value is not nil.
func (_c *LifelogImageCreate) SetNillableIsDedup(v *bool) *LifelogImageCreate {
	if v != nil {
		_c.SetIsDedup(*v)
	}
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *LifelogImageCreate) SetContentType(v string) *LifelogImageCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_c *LifelogImageCreate) SetNillableContentType(v *string) *LifelogImageCreate {
	if v != nil {
		_c.SetContentType(*v)
	}
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *LifelogImageCreate) SetSizeBytes(v int) *LifelogImageCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *LifelogImageCreate) SetNillableSizeBytes(v *int) *LifelogImageCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetTsMs sets the "ts_ms" field.
func (_c *LifelogImageCreate) SetTsMs(v int64) *LifelogImageCreate {
	_c.mutation.SetTsMs(v)
	return _c
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_c *LifelogImageCreate) SetCreatedAtMs(v int64) *LifelogImageCreate {
	_c.mutation.SetCreatedAtMs(v)
	return _c
}

// SetID sets the "id" field.
func (_c *LifelogImageCreate) SetID(v string) *LifelogImageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LifelogImageMutation object of the builder.
func (_c *LifelogImageCreate) Mutation() *LifelogImageMutation {
	return _c.mutation
}

// Save creates the LifelogImage in the database.
func (_c *LifelogImageCreate) Save(ctx context.Context) (*LifelogImage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LifelogImageCreate) SaveX(ctx context.Context) *LifelogImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LifelogImageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LifelogImageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LifelogImageCreate) defaults() {
	if _, ok := _c.mutation.IsDedup(); !ok {
		v := lifelogimage.DefaultIsDedup
		_c.mutation.SetIsDedup(v)
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		v := lifelogimage.DefaultContentType
		_c.mutation.SetContentType(v)
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		v := lifelogimage.DefaultSizeBytes
		_c.mutation.SetSizeBytes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LifelogImageCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LifelogImage.session_id"`)}
	}
	if _, ok := _c.mutation.ImageURI(); !ok {
		return &ValidationError{Name: "image_uri", err: errors.New(`ent: missing required field "LifelogImage.image_uri"`)}
	}
	if _, ok := _c.mutation.Dhash(); !ok {
		return &ValidationError{Name: "dhash", err: errors.New(`ent: missing required field "LifelogImage.dhash"`)}
	}
	if _, ok := _c.mutation.IsDedup(); !ok {
		return &ValidationError{Name: "is_dedup", err: errors.New(`ent: missing required field "LifelogImage.is_dedup"`)}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "LifelogImage.content_type"`)}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "LifelogImage.size_bytes"`)}
	}
	if _, ok := _c.mutation.TsMs(); !ok {
		return &ValidationError{Name: "ts_ms", err: errors.New(`ent: missing required field "LifelogImage.ts_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAtMs(); !ok {
		return &ValidationError{Name: "created_at_ms", err: errors.New(`ent: missing required field "LifelogImage.created_at_ms"`)}
	}
	return nil
}

func (_c *LifelogImageCreate) sqlSave(ctx context.Context) (*LifelogImage, error) {
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
			return nil, fmt.Errorf("unexpected LifelogImage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LifelogImageCreate) createSpec() (*LifelogImage, *sqlgraph.CreateSpec) {
	var (
		_node = &LifelogImage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lifelogimage.Table, sqlgraph.NewFieldSpec(lifelogimage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(lifelogimage.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.DeviceID(); ok {
		_spec.SetField(lifelogimage.FieldDeviceID, field.TypeString, value)
		_node.DeviceID = value
	}
	if value, ok := _c.mutation.ImageURI(); ok {
		_spec.SetField(lifelogimage.FieldImageURI, field.TypeString, value)
		_node.ImageURI = value
	}
	if value, ok := _c.mutation.Dhash(); ok {
		_spec.SetField(lifelogimage.FieldDhash, field.TypeString, value)
		_node.Dhash = value
	}
	if value, ok := _c.mutation.IsDedup(); ok {
		_spec.SetField(lifelogimage.FieldIsDedup, field.TypeBool, value)
		_node.IsDedup = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(lifelogimage.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(lifelogimage.FieldSizeBytes, field.TypeInt, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.TsMs(); ok {
		_spec.SetField(lifelogimage.FieldTsMs, field.TypeInt64, value)
		_node.TsMs = value
	}
	if value, ok := _c.mutation.CreatedAtMs(); ok {
		_spec.SetField(lifelogimage.FieldCreatedAtMs, field.TypeInt64, value)
		_node.CreatedAtMs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LifelogImage.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LifelogImageUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *LifelogImageCreate) OnConflict(opts ...sql.ConflictOption) *LifelogImageUpsertOne {
	_c.conflict = opts
	return &LifelogImageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LifelogImage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LifelogImageCreate) OnConflictColumns(columns ...string) *LifelogImageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LifelogImageUpsertOne{
		create: _c,
	}
}

type (
	// LifelogImageUpsertOne is the builder for "upsert"-ing
	//  one LifelogImage node.
	LifelogImageUpsertOne struct {
		create *LifelogImageCreate
	}

	// LifelogImageUpsert is the "OnConflict" setter.
	LifelogImageUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *LifelogImageUpsert) SetSessionID(v string) *LifelogImageUpsert {
	u.Set(lifelogimage.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *LifelogImageUpsert) UpdateSessionID() *LifelogImageUpsert {
	u.SetExcluded(lifelogimage.FieldSessionID)
	return u
}

// SetDeviceID sets the "device_id" field.
func (u *LifelogImageUpsert) SetDeviceID(v string) *LifelogImageUpsert {
	u.Set(lifelogimage.FieldDeviceID, v)
	return u
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *LifelogImageUpsert) UpdateDeviceID() *LifelogImageUpsert {
	u.SetExcluded(lifelogimage.FieldDeviceID)
	return u
}

// ClearDeviceID clears the value of the "device_id" field.
func (u *LifelogImageUpsert) ClearDeviceID() *LifelogImageUpsert {
	u.SetNull(lifelogimage.FieldDeviceID)
	return u
}

// SetImageURI sets the "image_uri" field.
func (u *LifelogImageUpsert) SetImageURI(v string) *LifelogImageUpsert {
	u.Set(lifelogimage.FieldImageURI, v)
	return u
}

// UpdateImageURI sets the "image_uri" field to the value that was provided on create.
func (u *LifelogImageUpsert) UpdateImageURI() *LifelogImageUpsert {
	u.SetExcluded(lifelogimage.FieldImageURI)
	return u
}

// SetDhash sets the "dhash" field.
func (u *LifelogImageUpsert) SetDhash(v string) *LifelogImageUpsert {
	u.Set(lifelogimage.FieldDhash, v)
	return u
}

// UpdateDhash sets the "dhash" field to the value that was provided on create.
func (u *LifelogImageUpsert) UpdateDhash() *LifelogImageUpsert {
	u.SetExcluded(lifelogimage.FieldDhash)
	return u
}

// SetIsDedup sets the "is_dedup" field.
func (u *LifelogImageUpsert) SetIsDedup(v bool) *LifelogImageUpsert {
	u.Set(lifelogimage.FieldIsDedup, v)
	return u
}

// UpdateIsDedup sets the "is_dedup" field to the value that was provided on create.
func (u *LifelogImageUpsert) UpdateIsDedup() *LifelogImageUpsert {
	u.SetExcluded(lifelogimage.FieldIsDedup)
	return u
}

// SetContentType sets the "content_type" field.
func (u *LifelogImageUpsert) SetContentType(v string) *LifelogImageUpsert {
	u.Set(lifelogimage.FieldContentType, v)
	return u
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *LifelogImageUpsert) UpdateContentType() *LifelogImageUpsert {
	u.SetExcluded(lifelogimage.FieldContentType)
	return u
}

// SetSizeBytes sets the "size_bytes" field.
func (u *LifelogImageUpsert) SetSizeBytes(v int) *LifelogImageUpsert {
	u.Set(lifelogimage.FieldSizeBytes, v)
	return u
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *LifelogImageUpsert) UpdateSizeBytes() *LifelogImageUpsert {
	u.SetExcluded(lifelogimage.FieldSizeBytes)
	return u
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *LifelogImageUpsert) AddSizeBytes(v int) *LifelogImageUpsert {
	u.Add(lifelogimage.FieldSizeBytes, v)
	return u
}

// SetTsMs sets the "ts_ms" field.
func (u *LifelogImageUpsert) SetTsMs(v int64) *LifelogImageUpsert {
	u.Set(lifelogimage.FieldTsMs, v)
	return u
}

// UpdateTsMs sets the "ts_ms" field to the value that was provided on create.
func (u *LifelogImageUpsert) UpdateTsMs() *LifelogImageUpsert {
	u.SetExcluded(lifelogimage.FieldTsMs)
	return u
}

// AddTsMs adds v to the "ts_ms" field.
func (u *LifelogImageUpsert) AddTsMs(v int64) *LifelogImageUpsert {
	u.Add(lifelogimage.FieldTsMs, v)
	return u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *LifelogImageUpsert) SetCreatedAtMs(v int64) *LifelogImageUpsert {
	u.Set(lifelogimage.FieldCreatedAtMs, v)
	return u
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *LifelogImageUpsert) UpdateCreatedAtMs() *LifelogImageUpsert {
	u.SetExcluded(lifelogimage.FieldCreatedAtMs)
	return u
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *LifelogImageUpsert) AddCreatedAtMs(v int64) *LifelogImageUpsert {
	u.Add(lifelogimage.FieldCreatedAtMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LifelogImage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lifelogimage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LifelogImageUpsertOne) UpdateNewValues() *LifelogImageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(lifelogimage.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LifelogImage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LifelogImageUpsertOne) Ignore() *LifelogImageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LifelogImageUpsertOne) DoNothing() *LifelogImageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LifelogImageCreate.OnConflict
// documentation for more info.
func (u *LifelogImageUpsertOne) Update(set func(*LifelogImageUpsert)) *LifelogImageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LifelogImageUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *LifelogImageUpsertOne) SetSessionID(v string) *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *LifelogImageUpsertOne) UpdateSessionID() *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.UpdateSessionID()
	})
}

// SetDeviceID sets the "device_id" field.
func (u *LifelogImageUpsertOne) SetDeviceID(v string) *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *LifelogImageUpsertOne) UpdateDeviceID() *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.UpdateDeviceID()
	})
}

// ClearDeviceID clears the value of the "device_id" field.
func (u *LifelogImageUpsertOne) ClearDeviceID() *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.ClearDeviceID()
	})
}

// SetImageURI sets the "image_uri" field.
func (u *LifelogImageUpsertOne) SetImageURI(v string) *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.SetImageURI(v)
	})
}

// UpdateImageURI sets the "image_uri" field to the value that was provided on create.
func (u *LifelogImageUpsertOne) UpdateImageURI() *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.UpdateImageURI()
	})
}

// SetDhash sets the "dhash" field.
func (u *LifelogImageUpsertOne) SetDhash(v string) *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.SetDhash(v)
	})
}

// UpdateDhash sets the "dhash" field to the value that was provided on create.
func (u *LifelogImageUpsertOne) UpdateDhash() *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.UpdateDhash()
	})
}

// SetIsDedup sets the "is_dedup" field.
func (u *LifelogImageUpsertOne) SetIsDedup(v bool) *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.SetIsDedup(v)
	})
}

// UpdateIsDedup sets the "is_dedup" field to the value that was provided on create.
func (u *LifelogImageUpsertOne) UpdateIsDedup() *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.UpdateIsDedup()
	})
}

// SetContentType sets the "content_type" field.
func (u *LifelogImageUpsertOne) SetContentType(v string) *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *LifelogImageUpsertOne) UpdateContentType() *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.UpdateContentType()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *LifelogImageUpsertOne) SetSizeBytes(v int) *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *LifelogImageUpsertOne) AddSizeBytes(v int) *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *LifelogImageUpsertOne) UpdateSizeBytes() *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetTsMs sets the "ts_ms" field.
func (u *LifelogImageUpsertOne) SetTsMs(v int64) *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.SetTsMs(v)
	})
}

// AddTsMs adds v to the "ts_ms" field.
func (u *LifelogImageUpsertOne) AddTsMs(v int64) *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.AddTsMs(v)
	})
}

// UpdateTsMs sets the "ts_ms" field to the value that was provided on create.
func (u *LifelogImageUpsertOne) UpdateTsMs() *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.UpdateTsMs()
	})
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *LifelogImageUpsertOne) SetCreatedAtMs(v int64) *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.SetCreatedAtMs(v)
	})
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *LifelogImageUpsertOne) AddCreatedAtMs(v int64) *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.AddCreatedAtMs(v)
	})
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *LifelogImageUpsertOne) UpdateCreatedAtMs() *LifelogImageUpsertOne {
	return u.Update(func(s *LifelogImageUpsert) {
		s.UpdateCreatedAtMs()
	})
}

// Exec executes the query.
func (u *LifelogImageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LifelogImageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LifelogImageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LifelogImageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LifelogImageUpsertOne.ID is not supported by MySQL driver. Use LifelogImageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LifelogImageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LifelogImageCreateBulk is the builder for creating many LifelogImage entities in bulk.
type LifelogImageCreateBulk struct {
	config
	err      error
	builders []*LifelogImageCreate
	conflict []sql.ConflictOption
}

// Save creates the LifelogImage entities in the database.
func (_c *LifelogImageCreateBulk) Save(ctx context.Context) ([]*LifelogImage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LifelogImage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LifelogImageMutation)
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
func (_c *LifelogImageCreateBulk) SaveX(ctx context.Context) []*LifelogImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LifelogImageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LifelogImageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LifelogImage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LifelogImageUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *LifelogImageCreateBulk) OnConflict(opts ...sql.ConflictOption) *LifelogImageUpsertBulk {
	_c.conflict = opts
	return &LifelogImageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LifelogImage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LifelogImageCreateBulk) OnConflictColumns(columns ...string) *LifelogImageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LifelogImageUpsertBulk{
		create: _c,
	}
}

// LifelogImageUpsertBulk is the builder for "upsert"-ing
// a bulk of LifelogImage nodes.
type LifelogImageUpsertBulk struct {
	create *LifelogImageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LifelogImage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lifelogimage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LifelogImageUpsertBulk) UpdateNewValues() *LifelogImageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(lifelogimage.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LifelogImage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LifelogImageUpsertBulk) Ignore() *LifelogImageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LifelogImageUpsertBulk) DoNothing() *LifelogImageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LifelogImageCreateBulk.OnConflict
// documentation for more info.
func (u *LifelogImageUpsertBulk) Update(set func(*LifelogImageUpsert)) *LifelogImageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LifelogImageUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *LifelogImageUpsertBulk) SetSessionID(v string) *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *LifelogImageUpsertBulk) UpdateSessionID() *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.UpdateSessionID()
	})
}

// SetDeviceID sets the "device_id" field.
func (u *LifelogImageUpsertBulk) SetDeviceID(v string) *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *LifelogImageUpsertBulk) UpdateDeviceID() *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.UpdateDeviceID()
	})
}

// ClearDeviceID clears the value of the "device_id" field.
func (u *LifelogImageUpsertBulk) ClearDeviceID() *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.ClearDeviceID()
	})
}

// SetImageURI sets the "image_uri" field.
func (u *LifelogImageUpsertBulk) SetImageURI(v string) *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.SetImageURI(v)
	})
}

// UpdateImageURI sets the "image_uri" field to the value that was provided on create.
func (u *LifelogImageUpsertBulk) UpdateImageURI() *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.UpdateImageURI()
	})
}

// SetDhash sets the "dhash" field.
func (u *LifelogImageUpsertBulk) SetDhash(v string) *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.SetDhash(v)
	})
}

// UpdateDhash sets the "dhash" field to the value that was provided on create.
func (u *LifelogImageUpsertBulk) UpdateDhash() *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.UpdateDhash()
	})
}

// SetIsDedup sets the "is_dedup" field.
func (u *LifelogImageUpsertBulk) SetIsDedup(v bool) *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.SetIsDedup(v)
	})
}

// UpdateIsDedup sets the "is_dedup" field to the value that was provided on create.
func (u *LifelogImageUpsertBulk) UpdateIsDedup() *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.UpdateIsDedup()
	})
}

// SetContentType sets the "content_type" field.
func (u *LifelogImageUpsertBulk) SetContentType(v string) *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *LifelogImageUpsertBulk) UpdateContentType() *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.UpdateContentType()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *LifelogImageUpsertBulk) SetSizeBytes(v int) *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *LifelogImageUpsertBulk) AddSizeBytes(v int) *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *LifelogImageUpsertBulk) UpdateSizeBytes() *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetTsMs sets the "ts_ms" field.
func (u *LifelogImageUpsertBulk) SetTsMs(v int64) *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.SetTsMs(v)
	})
}

// AddTsMs adds v to the "ts_ms" field.
func (u *LifelogImageUpsertBulk) AddTsMs(v int64) *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.AddTsMs(v)
	})
}

// UpdateTsMs sets the "ts_ms" field to the value that was provided on create.
func (u *LifelogImageUpsertBulk) UpdateTsMs() *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.UpdateTsMs()
	})
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *LifelogImageUpsertBulk) SetCreatedAtMs(v int64) *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.SetCreatedAtMs(v)
	})
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *LifelogImageUpsertBulk) AddCreatedAtMs(v int64) *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.AddCreatedAtMs(v)
	})
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *LifelogImageUpsertBulk) UpdateCreatedAtMs() *LifelogImageUpsertBulk {
	return u.Update(func(s *LifelogImageUpsert) {
		s.UpdateCreatedAtMs()
	})
}

// Exec executes the query.
func (u *LifelogImageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LifelogImageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LifelogImageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LifelogImageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
