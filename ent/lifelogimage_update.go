// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencane/edged/ent/lifelogimage"
	"github.com/opencane/edged/ent/predicate"
)

// LifelogImageUpdate is the builder for updating LifelogImage entities.
type LifelogImageUpdate struct {
	config
	hooks    []Hook
	mutation *LifelogImageMutation
}

// Where appends a list predicates to the LifelogImageUpdate builder.
func (_u *LifelogImageUpdate) Where(ps ...predicate.LifelogImage) *LifelogImageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LifelogImageUpdate) SetSessionID(v string) *LifelogImageUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LifelogImageUpdate) SetNillableSessionID(v *string) *LifelogImageUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *LifelogImageUpdate) SetDeviceID(v string) *LifelogImageUpdate {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *LifelogImageUpdate) SetNillableDeviceID(v *string) *LifelogImageUpdate {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// ClearDeviceID clears the value of the "device_id" field.
func (_u *LifelogImageUpdate) ClearDeviceID() *LifelogImageUpdate {
	_u.mutation.ClearDeviceID()
	return _u
}

// SetImageURI sets the "image_uri" field.
func (_u *LifelogImageUpdate) SetImageURI(v string) *LifelogImageUpdate {
	_u.mutation.SetImageURI(v)
	return _u
}

// SetNillableImageURI sets the "image_uri" field if the given value is not nil.
func (_u *LifelogImageUpdate) SetNillableImageURI(v *string) *LifelogImageUpdate {
	if v != nil {
		_u.SetImageURI(*v)
	}
	return _u
}

// SetDhash sets the "dhash" field.
func (_u *LifelogImageUpdate) SetDhash(v string) *LifelogImageUpdate {
	_u.mutation.SetDhash(v)
	return _u
}

// SetNillableDhash sets the "dhash" field if the given value is not nil.
func (_u *LifelogImageUpdate) SetNillableDhash(v *string) *LifelogImageUpdate {
	if v != nil {
		_u.SetDhash(*v)
	}
	return _u
}

// SetIsDedup sets the "is_dedup" field.
func (_u *LifelogImageUpdate) SetIsDedup(v bool) *LifelogImageUpdate {
	_u.mutation.SetIsDedup(v)
	return _u
}

// SetNillableIsDedup sets the "is_dedup" field if the given value is not nil.
func (_u *LifelogImageUpdate) SetNillableIsDedup(v *bool) *LifelogImageUpdate {
	if v != nil {
		_u.SetIsDedup(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *LifelogImageUpdate) SetContentType(v string) *LifelogImageUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *LifelogImageUpdate) SetNillableContentType(v *string) *LifelogImageUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *LifelogImageUpdate) SetSizeBytes(v int) *LifelogImageUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *LifelogImageUpdate) SetNillableSizeBytes(v *int) *LifelogImageUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *LifelogImageUpdate) AddSizeBytes(v int) *LifelogImageUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetTsMs sets the "ts_ms" field.
func (_u *LifelogImageUpdate) SetTsMs(v int64) *LifelogImageUpdate {
	_u.mutation.ResetTsMs()
	_u.mutation.SetTsMs(v)
	return _u
}

// SetNillableTsMs sets the "ts_ms" field if the given value is not nil.
func (_u *LifelogImageUpdate) SetNillableTsMs(v *int64) *LifelogImageUpdate {
	if v != nil {
		_u.SetTsMs(*v)
	}
	return _u
}

// AddTsMs adds value to the "ts_ms" field.
func (_u *LifelogImageUpdate) AddTsMs(v int64) *LifelogImageUpdate {
	_u.mutation.AddTsMs(v)
	return _u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_u *LifelogImageUpdate) SetCreatedAtMs(v int64) *LifelogImageUpdate {
	_u.mutation.ResetCreatedAtMs()
	_u.mutation.SetCreatedAtMs(v)
	return _u
}

// SetNillableCreatedAtMs sets the "created_at_ms" field if the given value is not nil.
func (_u *LifelogImageUpdate) SetNillableCreatedAtMs(v *int64) *LifelogImageUpdate {
	if v != nil {
		_u.SetCreatedAtMs(*v)
	}
	return _u
}

// AddCreatedAtMs adds value to the "created_at_ms" field.
func (_u *LifelogImageUpdate) AddCreatedAtMs(v int64) *LifelogImageUpdate {
	_u.mutation.AddCreatedAtMs(v)
	return _u
}

// Mutation returns the LifelogImageMutation object of the builder.
func (_u *LifelogImageUpdate) Mutation() *LifelogImageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LifelogImageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LifelogImageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LifelogImageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LifelogImageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LifelogImageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(lifelogimage.Table, lifelogimage.Columns, sqlgraph.NewFieldSpec(lifelogimage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lifelogimage.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(lifelogimage.FieldDeviceID, field.TypeString, value)
	}
	if _u.mutation.DeviceIDCleared() {
		_spec.ClearField(lifelogimage.FieldDeviceID, field.TypeString)
	}
	if value, ok := _u.mutation.ImageURI(); ok {
		_spec.SetField(lifelogimage.FieldImageURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dhash(); ok {
		_spec.SetField(lifelogimage.FieldDhash, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDedup(); ok {
		_spec.SetField(lifelogimage.FieldIsDedup, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(lifelogimage.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(lifelogimage.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(lifelogimage.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TsMs(); ok {
		_spec.SetField(lifelogimage.FieldTsMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTsMs(); ok {
		_spec.AddField(lifelogimage.FieldTsMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CreatedAtMs(); ok {
		_spec.SetField(lifelogimage.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtMs(); ok {
		_spec.AddField(lifelogimage.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lifelogimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LifelogImageUpdateOne is the builder for updating a single LifelogImage entity.
type LifelogImageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LifelogImageMutation
}

// SetSessionID sets the "session_id" field.
func (_u *LifelogImageUpdateOne) SetSessionID(v string) *LifelogImageUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LifelogImageUpdateOne) SetNillableSessionID(v *string) *LifelogImageUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *LifelogImageUpdateOne) SetDeviceID(v string) *LifelogImageUpdateOne {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *LifelogImageUpdateOne) SetNillableDeviceID(v *string) *LifelogImageUpdateOne {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// ClearDeviceID clears the value of the "device_id" field.
func (_u *LifelogImageUpdateOne) ClearDeviceID() *LifelogImageUpdateOne {
	_u.mutation.ClearDeviceID()
	return _u
}

// SetImageURI sets the "image_uri" field.
func (_u *LifelogImageUpdateOne) SetImageURI(v string) *LifelogImageUpdateOne {
	_u.mutation.SetImageURI(v)
	return _u
}

// SetNillableImageURI sets the "image_uri" field if the given value is not nil.
func (_u *LifelogImageUpdateOne) SetNillableImageURI(v *string) *LifelogImageUpdateOne {
	if v != nil {
		_u.SetImageURI(*v)
	}
	return _u
}

// SetDhash sets the "dhash" field.
func (_u *LifelogImageUpdateOne) SetDhash(v string) *LifelogImageUpdateOne {
	_u.mutation.SetDhash(v)
	return _u
}

// SetNillableDhash sets the "dhash" field if the given value is not nil.
func (_u *LifelogImageUpdateOne) SetNillableDhash(v *string) *LifelogImageUpdateOne {
	if v != nil {
		_u.SetDhash(*v)
	}
	return _u
}

// SetIsDedup sets the "is_dedup" field.
func (_u *LifelogImageUpdateOne) SetIsDedup(v bool) *LifelogImageUpdateOne {
	_u.mutation.SetIsDedup(v)
	return _u
}

// SetNillableIsDedup sets the "is_dedup" field if the given value is not nil.
func (_u *LifelogImageUpdateOne) SetNillableIsDedup(v *bool) *LifelogImageUpdateOne {
	if v != nil {
		_u.SetIsDedup(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *LifelogImageUpdateOne) SetContentType(v string) *LifelogImageUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *LifelogImageUpdateOne) SetNillableContentType(v *string) *LifelogImageUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *LifelogImageUpdateOne) SetSizeBytes(v int) *LifelogImageUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *LifelogImageUpdateOne) SetNillableSizeBytes(v *int) *LifelogImageUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *LifelogImageUpdateOne) AddSizeBytes(v int) *LifelogImageUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetTsMs sets the "ts_ms" field.
func (_u *LifelogImageUpdateOne) SetTsMs(v int64) *LifelogImageUpdateOne {
	_u.mutation.ResetTsMs()
	_u.mutation.SetTsMs(v)
	return _u
}

// SetNillableTsMs sets the "ts_ms" field if the given value is not nil.
func (_u *LifelogImageUpdateOne) SetNillableTsMs(v *int64) *LifelogImageUpdateOne {
	if v != nil {
		_u.SetTsMs(*v)
	}
	return _u
}

// AddTsMs adds value to the "ts_ms" field.
func (_u *LifelogImageUpdateOne) AddTsMs(v int64) *LifelogImageUpdateOne {
	_u.mutation.AddTsMs(v)
	return _u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_u *LifelogImageUpdateOne) SetCreatedAtMs(v int64) *LifelogImageUpdateOne {
	_u.mutation.ResetCreatedAtMs()
	_u.mutation.SetCreatedAtMs(v)
	return _u
}

// SetNillableCreatedAtMs sets the "created_at_ms" field if the given value is not nil.
func (_u *LifelogImageUpdateOne) SetNillableCreatedAtMs(v *int64) *LifelogImageUpdateOne {
	if v != nil {
		_u.SetCreatedAtMs(*v)
	}
	return _u
}

// AddCreatedAtMs adds value to the "created_at_ms" field.
func (_u *LifelogImageUpdateOne) AddCreatedAtMs(v int64) *LifelogImageUpdateOne {
	_u.mutation.AddCreatedAtMs(v)
	return _u
}

// Mutation returns the LifelogImageMutation object of the builder.
func (_u *LifelogImageUpdateOne) Mutation() *LifelogImageMutation {
	return _u.mutation
}

// Where appends a list predicates to the LifelogImageUpdate builder.
func (_u *LifelogImageUpdateOne) Where(ps ...predicate.LifelogImage) *LifelogImageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LifelogImageUpdateOne) Select(field string, fields ...string) *LifelogImageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LifelogImage entity.
func (_u *LifelogImageUpdateOne) Save(ctx context.Context) (*LifelogImage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LifelogImageUpdateOne) SaveX(ctx context.Context) *LifelogImage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LifelogImageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LifelogImageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LifelogImageUpdateOne) sqlSave(ctx context.Context) (_node *LifelogImage, err error) {
	_spec := sqlgraph.NewUpdateSpec(lifelogimage.Table, lifelogimage.Columns, sqlgraph.NewFieldSpec(lifelogimage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LifelogImage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lifelogimage.FieldID)
		for _, f := range fields {
			if !lifelogimage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lifelogimage.FieldID {
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
		_spec.SetField(lifelogimage.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(lifelogimage.FieldDeviceID, field.TypeString, value)
	}
	if _u.mutation.DeviceIDCleared() {
		_spec.ClearField(lifelogimage.FieldDeviceID, field.TypeString)
	}
	if value, ok := _u.mutation.ImageURI(); ok {
		_spec.SetField(lifelogimage.FieldImageURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dhash(); ok {
		_spec.SetField(lifelogimage.FieldDhash, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDedup(); ok {
		_spec.SetField(lifelogimage.FieldIsDedup, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(lifelogimage.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(lifelogimage.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(lifelogimage.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TsMs(); ok {
		_spec.SetField(lifelogimage.FieldTsMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTsMs(); ok {
		_spec.AddField(lifelogimage.FieldTsMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CreatedAtMs(); ok {
		_spec.SetField(lifelogimage.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtMs(); ok {
		_spec.AddField(lifelogimage.FieldCreatedAtMs, field.TypeInt64, value)
	}
	_node = &LifelogImage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lifelogimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
