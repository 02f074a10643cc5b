// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencane/edged/ent/telemetrysample"
)

// TelemetrySampleCreate is the builder for creating a TelemetrySample entity.
type TelemetrySampleCreate struct {
	config
	mutation *TelemetrySampleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDeviceID sets the "device_id" field.
func (_c *TelemetrySampleCreate) SetDeviceID(v string) *TelemetrySampleCreate {
	_c.mutation.SetDeviceID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TelemetrySampleCreate) SetSessionID(v string) *TelemetrySampleCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *TelemetrySampleCreate) SetNillableSessionID(v *string) *TelemetrySampleCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *TelemetrySampleCreate) SetSchemaVersion(v string) *TelemetrySampleCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_c *TelemetrySampleCreate) SetNillableSchemaVersion(v *string) *TelemetrySampleCreate {
	if v != nil {
		_c.SetSchemaVersion(*v)
	}
	return _c
}

// SetBattery sets the "battery" field.
func (_c *TelemetrySampleCreate) SetBattery(v map[string]interface{}) *TelemetrySampleCreate {
	_c.mutation.SetBattery(v)
	return _c
}

// SetNetwork sets the "network" field.
func (_c *TelemetrySampleCreate) SetNetwork(v map[string]interface{}) *TelemetrySampleCreate {
	_c.mutation.SetNetwork(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *TelemetrySampleCreate) SetLocation(v map[string]interface{}) *TelemetrySampleCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetImu sets the "imu" field.
func (_c *TelemetrySampleCreate) SetImu(v map[string]interface{}) *TelemetrySampleCreate {
	_c.mutation.SetImu(v)
	return _c
}

// SetTemperatureC sets the "temperature_c" field.
func (_c *TelemetrySampleCreate) SetTemperatureC(v float64) *TelemetrySampleCreate {
	_c.mutation.SetTemperatureC(v)
	return _c
}

// SetNillableTemperatureC sets the "temperature_c" field if the given value is not nil.
func (_c *TelemetrySampleCreate) SetNillableTemperatureC(v *float64) *TelemetrySampleCreate {
	if v != nil {
		_c.SetTemperatureC(*v)
	}
	return _c
}

// SetRaw sets the "raw" field.
func (_c *TelemetrySampleCreate) SetRaw(v map[string]interface{}) *TelemetrySampleCreate {
	_c.mutation.SetRaw(v)
	return _c
}

// SetTsMs sets the "ts_ms" field.
func (_c *TelemetrySampleCreate) SetTsMs(v int64) *TelemetrySampleCreate {
	_c.mutation.SetTsMs(v)
	return _c
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_c *TelemetrySampleCreate) SetCreatedAtMs(v int64) *TelemetrySampleCreate {
	_c.mutation.SetCreatedAtMs(v)
	return _c
}

// Mutation returns the TelemetrySampleMutation object of the builder.
func (_c *TelemetrySampleCreate) Mutation() *TelemetrySampleMutation {
	return _c.mutation
}

// Save creates the TelemetrySample in the database.
func (_c *TelemetrySampleCreate) Save(ctx context.Context) (*TelemetrySample, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TelemetrySampleCreate) SaveX(ctx context.Context) *TelemetrySample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TelemetrySampleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TelemetrySampleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TelemetrySampleCreate) defaults() {
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		v := telemetrysample.DefaultSchemaVersion
		_c.mutation.SetSchemaVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TelemetrySampleCreate) check() error {
	if _, ok := _c.mutation.DeviceID(); !ok {
		return &ValidationError{Name: "device_id", err: errors.New(`ent: missing required field "TelemetrySample.device_id"`)}
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		return &ValidationError{Name: "schema_version", err: errors.New(`ent: missing required field "TelemetrySample.schema_version"`)}
	}
	if _, ok := _c.mutation.TsMs(); !ok {
		return &ValidationError{Name: "ts_ms", err: errors.New(`ent: missing required field "TelemetrySample.ts_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAtMs(); !ok {
		return &ValidationError{Name: "created_at_ms", err: errors.New(`ent: missing required field "TelemetrySample.created_at_ms"`)}
	}
	return nil
}

func (_c *TelemetrySampleCreate) sqlSave(ctx context.Context) (*TelemetrySample, error) {
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

func (_c *TelemetrySampleCreate) createSpec() (*TelemetrySample, *sqlgraph.CreateSpec) {
	var (
		_node = &TelemetrySample{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(telemetrysample.Table, sqlgraph.NewFieldSpec(telemetrysample.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.DeviceID(); ok {
		_spec.SetField(telemetrysample.FieldDeviceID, field.TypeString, value)
		_node.DeviceID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(telemetrysample.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(telemetrysample.FieldSchemaVersion, field.TypeString, value)
		_node.SchemaVersion = value
	}
	if value, ok := _c.mutation.Battery(); ok {
		_spec.SetField(telemetrysample.FieldBattery, field.TypeJSON, value)
		_node.Battery = value
	}
	if value, ok := _c.mutation.Network(); ok {
		_spec.SetField(telemetrysample.FieldNetwork, field.TypeJSON, value)
		_node.Network = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(telemetrysample.FieldLocation, field.TypeJSON, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.Imu(); ok {
		_spec.SetField(telemetrysample.FieldImu, field.TypeJSON, value)
		_node.Imu = value
	}
	if value, ok := _c.mutation.TemperatureC(); ok {
		_spec.SetField(telemetrysample.FieldTemperatureC, field.TypeFloat64, value)
		_node.TemperatureC = &value
	}
	if value, ok := _c.mutation.Raw(); ok {
		_spec.SetField(telemetrysample.FieldRaw, field.TypeJSON, value)
		_node.Raw = value
	}
	if value, ok := _c.mutation.TsMs(); ok {
		_spec.SetField(telemetrysample.FieldTsMs, field.TypeInt64, value)
		_node.TsMs = value
	}
	if value, ok := _c.mutation.CreatedAtMs(); ok {
		_spec.SetField(telemetrysample.FieldCreatedAtMs, field.TypeInt64, value)
		_node.CreatedAtMs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TelemetrySample.Create().
//		SetDeviceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TelemetrySampleUpsert) {
//			SetDeviceID(v+v).
//		}).
//		Exec(ctx)
func (_c *TelemetrySampleCreate) OnConflict(opts ...sql.ConflictOption) *TelemetrySampleUpsertOne {
	_c.conflict = opts
	return &TelemetrySampleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TelemetrySample.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TelemetrySampleCreate) OnConflictColumns(columns ...string) *TelemetrySampleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TelemetrySampleUpsertOne{
		create: _c,
	}
}

type (
	// TelemetrySampleUpsertOne is the builder for "upsert"-ing
	//  one TelemetrySample node.
	TelemetrySampleUpsertOne struct {
		create *TelemetrySampleCreate
	}

	// TelemetrySampleUpsert is the "OnConflict" setter.
	TelemetrySampleUpsert struct {
		*sql.UpdateSet
	}
)

// SetDeviceID sets the "device_id" field.
func (u *TelemetrySampleUpsert) SetDeviceID(v string) *TelemetrySampleUpsert {
	u.Set(telemetrysample.FieldDeviceID, v)
	return u
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *TelemetrySampleUpsert) UpdateDeviceID() *TelemetrySampleUpsert {
	u.SetExcluded(telemetrysample.FieldDeviceID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *TelemetrySampleUpsert) SetSessionID(v string) *TelemetrySampleUpsert {
	u.Set(telemetrysample.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TelemetrySampleUpsert) UpdateSessionID() *TelemetrySampleUpsert {
	u.SetExcluded(telemetrysample.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *TelemetrySampleUpsert) ClearSessionID() *TelemetrySampleUpsert {
	u.SetNull(telemetrysample.FieldSessionID)
	return u
}

// SetSchemaVersion sets the "schema_version" field.
func (u *TelemetrySampleUpsert) SetSchemaVersion(v string) *TelemetrySampleUpsert {
	u.Set(telemetrysample.FieldSchemaVersion, v)
	return u
}

// UpdateSchemaVersion sets the "schema_version" field to the value that was provided on create.
func (u *TelemetrySampleUpsert) UpdateSchemaVersion() *TelemetrySampleUpsert {
	u.SetExcluded(telemetrysample.FieldSchemaVersion)
	return u
}

// SetBattery sets the "battery" field.
func (u *TelemetrySampleUpsert) SetBattery(v map[string]interface{}) *TelemetrySampleUpsert {
	u.Set(telemetrysample.FieldBattery, v)
	return u
}

// UpdateBattery sets the "battery" field to the value that was provided on create.
func (u *TelemetrySampleUpsert) UpdateBattery() *TelemetrySampleUpsert {
	u.SetExcluded(telemetrysample.FieldBattery)
	return u
}

// ClearBattery clears the value of the "battery" field.
func (u *TelemetrySampleUpsert) ClearBattery() *TelemetrySampleUpsert {
	u.SetNull(telemetrysample.FieldBattery)
	return u
}

// SetNetwork sets the "network" field.
func (u *TelemetrySampleUpsert) SetNetwork(v map[string]interface{}) *TelemetrySampleUpsert {
	u.Set(telemetrysample.FieldNetwork, v)
	return u
}

// UpdateNetwork sets the "network" field to the value that was provided on create.
func (u *TelemetrySampleUpsert) UpdateNetwork() *TelemetrySampleUpsert {
	u.SetExcluded(telemetrysample.FieldNetwork)
	return u
}

// ClearNetwork clears the value of the "network" field.
func (u *TelemetrySampleUpsert) ClearNetwork() *TelemetrySampleUpsert {
	u.SetNull(telemetrysample.FieldNetwork)
	return u
}

// SetLocation sets the "location" field.
func (u *TelemetrySampleUpsert) SetLocation(v map[string]interface{}) *TelemetrySampleUpsert {
	u.Set(telemetrysample.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *TelemetrySampleUpsert) UpdateLocation() *TelemetrySampleUpsert {
	u.SetExcluded(telemetrysample.FieldLocation)
	return u
}

// ClearLocation clears the value of the "location" field.
func (u *TelemetrySampleUpsert) ClearLocation() *TelemetrySampleUpsert {
	u.SetNull(telemetrysample.FieldLocation)
	return u
}

// SetImu sets the "imu" field.
func (u *TelemetrySampleUpsert) SetImu(v map[string]interface{}) *TelemetrySampleUpsert {
	u.Set(telemetrysample.FieldImu, v)
	return u
}

// UpdateImu sets the "imu" field to the value that was provided on create.
func (u *TelemetrySampleUpsert) UpdateImu() *TelemetrySampleUpsert {
	u.SetExcluded(telemetrysample.FieldImu)
	return u
}

// ClearImu clears the value of the "imu" field.
func (u *TelemetrySampleUpsert) ClearImu() *TelemetrySampleUpsert {
	u.SetNull(telemetrysample.FieldImu)
	return u
}

// SetTemperatureC sets the "temperature_c" field.
func (u *TelemetrySampleUpsert) SetTemperatureC(v float64) *TelemetrySampleUpsert {
	u.Set(telemetrysample.FieldTemperatureC, v)
	return u
}

// UpdateTemperatureC sets the "temperature_c" field to the value that was provided on create.
func (u *TelemetrySampleUpsert) UpdateTemperatureC() *TelemetrySampleUpsert {
	u.SetExcluded(telemetrysample.FieldTemperatureC)
	return u
}

// AddTemperatureC adds v to the "temperature_c" field.
func (u *TelemetrySampleUpsert) AddTemperatureC(v float64) *TelemetrySampleUpsert {
	u.Add(telemetrysample.FieldTemperatureC, v)
	return u
}

// ClearTemperatureC clears the value of the "temperature_c" field.
func (u *TelemetrySampleUpsert) ClearTemperatureC() *TelemetrySampleUpsert {
	u.SetNull(telemetrysample.FieldTemperatureC)
	return u
}

// SetRaw sets the "raw" field.
func (u *TelemetrySampleUpsert) SetRaw(v map[string]interface{}) *TelemetrySampleUpsert {
	u.Set(telemetrysample.FieldRaw, v)
	return u
}

// UpdateRaw sets the "raw" field to the value that was provided on create.
func (u *TelemetrySampleUpsert) UpdateRaw() *TelemetrySampleUpsert {
	u.SetExcluded(telemetrysample.FieldRaw)
	return u
}

// ClearRaw clears the value of the "raw" field.
func (u *TelemetrySampleUpsert) ClearRaw() *TelemetrySampleUpsert {
	u.SetNull(telemetrysample.FieldRaw)
	return u
}

// SetTsMs sets the "ts_ms" field.
func (u *TelemetrySampleUpsert) SetTsMs(v int64) *TelemetrySampleUpsert {
	u.Set(telemetrysample.FieldTsMs, v)
	return u
}

// UpdateTsMs sets the "ts_ms" field to the value that was provided on create.
func (u *TelemetrySampleUpsert) UpdateTsMs() *TelemetrySampleUpsert {
	u.SetExcluded(telemetrysample.FieldTsMs)
	return u
}

// AddTsMs adds v to the "ts_ms" field.
func (u *TelemetrySampleUpsert) AddTsMs(v int64) *TelemetrySampleUpsert {
	u.Add(telemetrysample.FieldTsMs, v)
	return u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *TelemetrySampleUpsert) SetCreatedAtMs(v int64) *TelemetrySampleUpsert {
	u.Set(telemetrysample.FieldCreatedAtMs, v)
	return u
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *TelemetrySampleUpsert) UpdateCreatedAtMs() *TelemetrySampleUpsert {
	u.SetExcluded(telemetrysample.FieldCreatedAtMs)
	return u
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *TelemetrySampleUpsert) AddCreatedAtMs(v int64) *TelemetrySampleUpsert {
	u.Add(telemetrysample.FieldCreatedAtMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TelemetrySample.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TelemetrySampleUpsertOne) UpdateNewValues() *TelemetrySampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TelemetrySample.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TelemetrySampleUpsertOne) Ignore() *TelemetrySampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TelemetrySampleUpsertOne) DoNothing() *TelemetrySampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TelemetrySampleCreate.OnConflict
// documentation for more info.
func (u *TelemetrySampleUpsertOne) Update(set func(*TelemetrySampleUpsert)) *TelemetrySampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TelemetrySampleUpsert{UpdateSet: update})
	}))
	return u
}

// SetDeviceID sets the "device_id" field.
func (u *TelemetrySampleUpsertOne) SetDeviceID(v string) *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *TelemetrySampleUpsertOne) UpdateDeviceID() *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateDeviceID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *TelemetrySampleUpsertOne) SetSessionID(v string) *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TelemetrySampleUpsertOne) UpdateSessionID() *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *TelemetrySampleUpsertOne) ClearSessionID() *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.ClearSessionID()
	})
}

// SetSchemaVersion sets the "schema_version" field.
func (u *TelemetrySampleUpsertOne) SetSchemaVersion(v string) *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetSchemaVersion(v)
	})
}

// UpdateSchemaVersion sets the "schema_version" field to the value that was provided on create.
func (u *TelemetrySampleUpsertOne) UpdateSchemaVersion() *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateSchemaVersion()
	})
}

// SetBattery sets the "battery" field.
func (u *TelemetrySampleUpsertOne) SetBattery(v map[string]interface{}) *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetBattery(v)
	})
}

// UpdateBattery sets the "battery" field to the value that was provided on create.
func (u *TelemetrySampleUpsertOne) UpdateBattery() *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateBattery()
	})
}

// ClearBattery clears the value of the "battery" field.
func (u *TelemetrySampleUpsertOne) ClearBattery() *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.ClearBattery()
	})
}

// SetNetwork sets the "network" field.
func (u *TelemetrySampleUpsertOne) SetNetwork(v map[string]interface{}) *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetNetwork(v)
	})
}

// UpdateNetwork sets the "network" field to the value that was provided on create.
func (u *TelemetrySampleUpsertOne) UpdateNetwork() *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateNetwork()
	})
}

// ClearNetwork clears the value of the "network" field.
func (u *TelemetrySampleUpsertOne) ClearNetwork() *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.ClearNetwork()
	})
}

// SetLocation sets the "location" field.
func (u *TelemetrySampleUpsertOne) SetLocation(v map[string]interface{}) *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *TelemetrySampleUpsertOne) UpdateLocation() *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *TelemetrySampleUpsertOne) ClearLocation() *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.ClearLocation()
	})
}

// SetImu sets the "imu" field.
func (u *TelemetrySampleUpsertOne) SetImu(v map[string]interface{}) *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetImu(v)
	})
}

// UpdateImu sets the "imu" field to the value that was provided on create.
func (u *TelemetrySampleUpsertOne) UpdateImu() *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateImu()
	})
}

// ClearImu clears the value of the "imu" field.
func (u *TelemetrySampleUpsertOne) ClearImu() *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.ClearImu()
	})
}

// SetTemperatureC sets the "temperature_c" field.
func (u *TelemetrySampleUpsertOne) SetTemperatureC(v float64) *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetTemperatureC(v)
	})
}

// AddTemperatureC adds v to the "temperature_c" field.
func (u *TelemetrySampleUpsertOne) AddTemperatureC(v float64) *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.AddTemperatureC(v)
	})
}

// UpdateTemperatureC sets the "temperature_c" field to the value that was provided on create.
func (u *TelemetrySampleUpsertOne) UpdateTemperatureC() *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateTemperatureC()
	})
}

// ClearTemperatureC clears the value of the "temperature_c" field.
func (u *TelemetrySampleUpsertOne) ClearTemperatureC() *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.ClearTemperatureC()
	})
}

// SetRaw sets the "raw" field.
func (u *TelemetrySampleUpsertOne) SetRaw(v map[string]interface{}) *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetRaw(v)
	})
}

// UpdateRaw sets the "raw" field to the value that was provided on create.
func (u *TelemetrySampleUpsertOne) UpdateRaw() *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateRaw()
	})
}

// ClearRaw clears the value of the "raw" field.
func (u *TelemetrySampleUpsertOne) ClearRaw() *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.ClearRaw()
	})
}

// SetTsMs sets the "ts_ms" field.
func (u *TelemetrySampleUpsertOne) SetTsMs(v int64) *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetTsMs(v)
	})
}

// AddTsMs adds v to the "ts_ms" field.
func (u *TelemetrySampleUpsertOne) AddTsMs(v int64) *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.AddTsMs(v)
	})
}

// UpdateTsMs sets the "ts_ms" field to the value that was provided on create.
func (u *TelemetrySampleUpsertOne) UpdateTsMs() *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateTsMs()
	})
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *TelemetrySampleUpsertOne) SetCreatedAtMs(v int64) *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetCreatedAtMs(v)
	})
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *TelemetrySampleUpsertOne) AddCreatedAtMs(v int64) *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.AddCreatedAtMs(v)
	})
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *TelemetrySampleUpsertOne) UpdateCreatedAtMs() *TelemetrySampleUpsertOne {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateCreatedAtMs()
	})
}

// Exec executes the query.
func (u *TelemetrySampleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TelemetrySampleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TelemetrySampleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TelemetrySampleUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TelemetrySampleUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TelemetrySampleCreateBulk is the builder for creating many TelemetrySample entities in bulk.
type TelemetrySampleCreateBulk struct {
	config
	err      error
	builders []*TelemetrySampleCreate
	conflict []sql.ConflictOption
}

// Save creates the TelemetrySample entities in the database.
func (_c *TelemetrySampleCreateBulk) Save(ctx context.Context) ([]*TelemetrySample, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TelemetrySample, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TelemetrySampleMutation)
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
func (_c *TelemetrySampleCreateBulk) SaveX(ctx context.Context) []*TelemetrySample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TelemetrySampleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TelemetrySampleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TelemetrySample.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TelemetrySampleUpsert) {
//			SetDeviceID(v+v).
//		}).
//		Exec(ctx)
func (_c *TelemetrySampleCreateBulk) OnConflict(opts ...sql.ConflictOption) *TelemetrySampleUpsertBulk {
	_c.conflict = opts
	return &TelemetrySampleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TelemetrySample.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TelemetrySampleCreateBulk) OnConflictColumns(columns ...string) *TelemetrySampleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TelemetrySampleUpsertBulk{
		create: _c,
	}
}

// TelemetrySampleUpsertBulk is the builder for "upsert"-ing
// a bulk of TelemetrySample nodes.
type TelemetrySampleUpsertBulk struct {
	create *TelemetrySampleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TelemetrySample.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TelemetrySampleUpsertBulk) UpdateNewValues() *TelemetrySampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TelemetrySample.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TelemetrySampleUpsertBulk) Ignore() *TelemetrySampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TelemetrySampleUpsertBulk) DoNothing() *TelemetrySampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TelemetrySampleCreateBulk.OnConflict
// documentation for more info.
func (u *TelemetrySampleUpsertBulk) Update(set func(*TelemetrySampleUpsert)) *TelemetrySampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TelemetrySampleUpsert{UpdateSet: update})
	}))
	return u
}

// SetDeviceID sets the "device_id" field.
func (u *TelemetrySampleUpsertBulk) SetDeviceID(v string) *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *TelemetrySampleUpsertBulk) UpdateDeviceID() *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateDeviceID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *TelemetrySampleUpsertBulk) SetSessionID(v string) *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TelemetrySampleUpsertBulk) UpdateSessionID() *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *TelemetrySampleUpsertBulk) ClearSessionID() *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.ClearSessionID()
	})
}

// SetSchemaVersion sets the "schema_version" field.
func (u *TelemetrySampleUpsertBulk) SetSchemaVersion(v string) *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetSchemaVersion(v)
	})
}

// UpdateSchemaVersion sets the "schema_version" field to the value that was provided on create.
func (u *TelemetrySampleUpsertBulk) UpdateSchemaVersion() *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateSchemaVersion()
	})
}

// SetBattery sets the "battery" field.
func (u *TelemetrySampleUpsertBulk) SetBattery(v map[string]interface{}) *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetBattery(v)
	})
}

// UpdateBattery sets the "battery" field to the value that was provided on create.
func (u *TelemetrySampleUpsertBulk) UpdateBattery() *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateBattery()
	})
}

// ClearBattery clears the value of the "battery" field.
func (u *TelemetrySampleUpsertBulk) ClearBattery() *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.ClearBattery()
	})
}

// SetNetwork sets the "network" field.
func (u *TelemetrySampleUpsertBulk) SetNetwork(v map[string]interface{}) *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetNetwork(v)
	})
}

// UpdateNetwork sets the "network" field to the value that was provided on create.
func (u *TelemetrySampleUpsertBulk) UpdateNetwork() *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateNetwork()
	})
}

// ClearNetwork clears the value of the "network" field.
func (u *TelemetrySampleUpsertBulk) ClearNetwork() *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.ClearNetwork()
	})
}

// SetLocation sets the "location" field.
func (u *TelemetrySampleUpsertBulk) SetLocation(v map[string]interface{}) *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *TelemetrySampleUpsertBulk) UpdateLocation() *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *TelemetrySampleUpsertBulk) ClearLocation() *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.ClearLocation()
	})
}

// SetImu sets the "imu" field.
func (u *TelemetrySampleUpsertBulk) SetImu(v map[string]interface{}) *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetImu(v)
	})
}

// UpdateImu sets the "imu" field to the value that was provided on create.
func (u *TelemetrySampleUpsertBulk) UpdateImu() *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateImu()
	})
}

// ClearImu clears the value of the "imu" field.
func (u *TelemetrySampleUpsertBulk) ClearImu() *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.ClearImu()
	})
}

// SetTemperatureC sets the "temperature_c" field.
func (u *TelemetrySampleUpsertBulk) SetTemperatureC(v float64) *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetTemperatureC(v)
	})
}

// AddTemperatureC adds v to the "temperature_c" field.
func (u *TelemetrySampleUpsertBulk) AddTemperatureC(v float64) *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.AddTemperatureC(v)
	})
}

// UpdateTemperatureC sets the "temperature_c" field to the value that was provided on create.
func (u *TelemetrySampleUpsertBulk) UpdateTemperatureC() *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateTemperatureC()
	})
}

// ClearTemperatureC clears the value of the "temperature_c" field.
func (u *TelemetrySampleUpsertBulk) ClearTemperatureC() *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.ClearTemperatureC()
	})
}

// SetRaw sets the "raw" field.
func (u *TelemetrySampleUpsertBulk) SetRaw(v map[string]interface{}) *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetRaw(v)
	})
}

// UpdateRaw sets the "raw" field to the value that was provided on create.
func (u *TelemetrySampleUpsertBulk) UpdateRaw() *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateRaw()
	})
}

// ClearRaw clears the value of the "raw" field.
func (u *TelemetrySampleUpsertBulk) ClearRaw() *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.ClearRaw()
	})
}

// SetTsMs sets the "ts_ms" field.
func (u *TelemetrySampleUpsertBulk) SetTsMs(v int64) *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetTsMs(v)
	})
}

// AddTsMs adds v to the "ts_ms" field.
func (u *TelemetrySampleUpsertBulk) AddTsMs(v int64) *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.AddTsMs(v)
	})
}

// UpdateTsMs sets the "ts_ms" field to the value that was provided on create.
func (u *TelemetrySampleUpsertBulk) UpdateTsMs() *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateTsMs()
	})
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (u *TelemetrySampleUpsertBulk) SetCreatedAtMs(v int64) *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.SetCreatedAtMs(v)
	})
}

// AddCreatedAtMs adds v to the "created_at_ms" field.
func (u *TelemetrySampleUpsertBulk) AddCreatedAtMs(v int64) *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.AddCreatedAtMs(v)
	})
}

// UpdateCreatedAtMs sets the "created_at_ms" field to the value that was provided on create.
func (u *TelemetrySampleUpsertBulk) UpdateCreatedAtMs() *TelemetrySampleUpsertBulk {
	return u.Update(func(s *TelemetrySampleUpsert) {
		s.UpdateCreatedAtMs()
	})
}

// Exec executes the query.
func (u *TelemetrySampleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TelemetrySampleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TelemetrySampleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TelemetrySampleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
