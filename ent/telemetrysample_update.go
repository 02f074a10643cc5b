// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opencane/edged/ent/predicate"
	"github.com/opencane/edged/ent/telemetrysample"
)

// TelemetrySampleUpdate is the builder for updating TelemetrySample entities.
type TelemetrySampleUpdate struct {
	config
	hooks    []Hook
	mutation *TelemetrySampleMutation
}

// Where appends a list predicates to the TelemetrySampleUpdate builder.
func (_u *TelemetrySampleUpdate) Where(ps ...predicate.TelemetrySample) *TelemetrySampleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *TelemetrySampleUpdate) SetDeviceID(v string) *TelemetrySampleUpdate {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *TelemetrySampleUpdate) SetNillableDeviceID(v *string) *TelemetrySampleUpdate {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TelemetrySampleUpdate) SetSessionID(v string) *TelemetrySampleUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TelemetrySampleUpdate) SetNillableSessionID(v *string) *TelemetrySampleUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *TelemetrySampleUpdate) ClearSessionID() *TelemetrySampleUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *TelemetrySampleUpdate) SetSchemaVersion(v string) *TelemetrySampleUpdate {
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *TelemetrySampleUpdate) SetNillableSchemaVersion(v *string) *TelemetrySampleUpdate {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// SetBattery sets the "battery" field.
func (_u *TelemetrySampleUpdate) SetBattery(v map[string]interface{}) *TelemetrySampleUpdate {
	_u.mutation.SetBattery(v)
	return _u
}

// ClearBattery clears the value of the "battery" field.
func (_u *TelemetrySampleUpdate) ClearBattery() *TelemetrySampleUpdate {
	_u.mutation.ClearBattery()
	return _u
}

// SetNetwork sets the "network" field.
func (_u *TelemetrySampleUpdate) SetNetwork(v map[string]interface{}) *TelemetrySampleUpdate {
	_u.mutation.SetNetwork(v)
	return _u
}

// ClearNetwork clears the value of the "network" field.
func (_u *TelemetrySampleUpdate) ClearNetwork() *TelemetrySampleUpdate {
	_u.mutation.ClearNetwork()
	return _u
}

// SetLocation sets the "location" field.
func (_u *TelemetrySampleUpdate) SetLocation(v map[string]interface{}) *TelemetrySampleUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *TelemetrySampleUpdate) ClearLocation() *TelemetrySampleUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetImu sets the "imu" field.
func (_u *TelemetrySampleUpdate) SetImu(v map[string]interface{}) *TelemetrySampleUpdate {
	_u.mutation.SetImu(v)
	return _u
}

// ClearImu clears the value of the "imu" field.
func (_u *TelemetrySampleUpdate) ClearImu() *TelemetrySampleUpdate {
	_u.mutation.ClearImu()
	return _u
}

// SetTemperatureC sets the "temperature_c" field.
func (_u *TelemetrySampleUpdate) SetTemperatureC(v float64) *TelemetrySampleUpdate {
	_u.mutation.ResetTemperatureC()
	_u.mutation.SetTemperatureC(v)
	return _u
}

// SetNillableTemperatureC sets the "temperature_c" field if the given value is not nil.
func (_u *TelemetrySampleUpdate) SetNillableTemperatureC(v *float64) *TelemetrySampleUpdate {
	if v != nil {
		_u.SetTemperatureC(*v)
	}
	return _u
}

// AddTemperatureC adds value to the "temperature_c" field.
func (_u *TelemetrySampleUpdate) AddTemperatureC(v float64) *TelemetrySampleUpdate {
	_u.mutation.AddTemperatureC(v)
	return _u
}

// ClearTemperatureC clears the value of the "temperature_c" field.
func (_u *TelemetrySampleUpdate) ClearTemperatureC() *TelemetrySampleUpdate {
	_u.mutation.ClearTemperatureC()
	return _u
}

// SetRaw sets the "raw" field.
func (_u *TelemetrySampleUpdate) SetRaw(v map[string]interface{}) *TelemetrySampleUpdate {
	_u.mutation.SetRaw(v)
	return _u
}

// ClearRaw clears the value of the "raw" field.
func (_u *TelemetrySampleUpdate) ClearRaw() *TelemetrySampleUpdate {
	_u.mutation.ClearRaw()
	return _u
}

// SetTsMs sets the "ts_ms" field.
func (_u *TelemetrySampleUpdate) SetTsMs(v int64) *TelemetrySampleUpdate {
	_u.mutation.ResetTsMs()
	_u.mutation.SetTsMs(v)
	return _u
}

// SetNillableTsMs sets the "ts_ms" field if the given value is not nil.
func (_u *TelemetrySampleUpdate) SetNillableTsMs(v *int64) *TelemetrySampleUpdate {
	if v != nil {
		_u.SetTsMs(*v)
	}
	return _u
}

// AddTsMs adds value to the "ts_ms" field.
func (_u *TelemetrySampleUpdate) AddTsMs(v int64) *TelemetrySampleUpdate {
	_u.mutation.AddTsMs(v)
	return _u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_u *TelemetrySampleUpdate) SetCreatedAtMs(v int64) *TelemetrySampleUpdate {
	_u.mutation.ResetCreatedAtMs()
	_u.mutation.SetCreatedAtMs(v)
	return _u
}

// SetNillableCreatedAtMs sets the "created_at_ms" field if the given value is not nil.
func (_u *TelemetrySampleUpdate) SetNillableCreatedAtMs(v *int64) *TelemetrySampleUpdate {
	if v != nil {
		_u.SetCreatedAtMs(*v)
	}
	return _u
}

// AddCreatedAtMs adds value to the "created_at_ms" field.
func (_u *TelemetrySampleUpdate) AddCreatedAtMs(v int64) *TelemetrySampleUpdate {
	_u.mutation.AddCreatedAtMs(v)
	return _u
}

// Mutation returns the TelemetrySampleMutation object of the builder.
func (_u *TelemetrySampleUpdate) Mutation() *TelemetrySampleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TelemetrySampleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TelemetrySampleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TelemetrySampleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TelemetrySampleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TelemetrySampleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(telemetrysample.Table, telemetrysample.Columns, sqlgraph.NewFieldSpec(telemetrysample.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(telemetrysample.FieldDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(telemetrysample.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(telemetrysample.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(telemetrysample.FieldSchemaVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Battery(); ok {
		_spec.SetField(telemetrysample.FieldBattery, field.TypeJSON, value)
	}
	if _u.mutation.BatteryCleared() {
		_spec.ClearField(telemetrysample.FieldBattery, field.TypeJSON)
	}
	if value, ok := _u.mutation.Network(); ok {
		_spec.SetField(telemetrysample.FieldNetwork, field.TypeJSON, value)
	}
	if _u.mutation.NetworkCleared() {
		_spec.ClearField(telemetrysample.FieldNetwork, field.TypeJSON)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(telemetrysample.FieldLocation, field.TypeJSON, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(telemetrysample.FieldLocation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Imu(); ok {
		_spec.SetField(telemetrysample.FieldImu, field.TypeJSON, value)
	}
	if _u.mutation.ImuCleared() {
		_spec.ClearField(telemetrysample.FieldImu, field.TypeJSON)
	}
	if value, ok := _u.mutation.TemperatureC(); ok {
		_spec.SetField(telemetrysample.FieldTemperatureC, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperatureC(); ok {
		_spec.AddField(telemetrysample.FieldTemperatureC, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCCleared() {
		_spec.ClearField(telemetrysample.FieldTemperatureC, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Raw(); ok {
		_spec.SetField(telemetrysample.FieldRaw, field.TypeJSON, value)
	}
	if _u.mutation.RawCleared() {
		_spec.ClearField(telemetrysample.FieldRaw, field.TypeJSON)
	}
	if value, ok := _u.mutation.TsMs(); ok {
		_spec.SetField(telemetrysample.FieldTsMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTsMs(); ok {
		_spec.AddField(telemetrysample.FieldTsMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CreatedAtMs(); ok {
		_spec.SetField(telemetrysample.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtMs(); ok {
		_spec.AddField(telemetrysample.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{telemetrysample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TelemetrySampleUpdateOne is the builder for updating a single TelemetrySample entity.
type TelemetrySampleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TelemetrySampleMutation
}

// SetDeviceID sets the "device_id" field.
func (_u *TelemetrySampleUpdateOne) SetDeviceID(v string) *TelemetrySampleUpdateOne {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *TelemetrySampleUpdateOne) SetNillableDeviceID(v *string) *TelemetrySampleUpdateOne {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TelemetrySampleUpdateOne) SetSessionID(v string) *TelemetrySampleUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TelemetrySampleUpdateOne) SetNillableSessionID(v *string) *TelemetrySampleUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *TelemetrySampleUpdateOne) ClearSessionID() *TelemetrySampleUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *TelemetrySampleUpdateOne) SetSchemaVersion(v string) *TelemetrySampleUpdateOne {
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *TelemetrySampleUpdateOne) SetNillableSchemaVersion(v *string) *TelemetrySampleUpdateOne {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// SetBattery sets the "battery" field.
func (_u *TelemetrySampleUpdateOne) SetBattery(v map[string]interface{}) *TelemetrySampleUpdateOne {
	_u.mutation.SetBattery(v)
	return _u
}

// ClearBattery clears the value of the "battery" field.
func (_u *TelemetrySampleUpdateOne) ClearBattery() *TelemetrySampleUpdateOne {
	_u.mutation.ClearBattery()
	return _u
}

// SetNetwork sets the "network" field.
func (_u *TelemetrySampleUpdateOne) SetNetwork(v map[string]interface{}) *TelemetrySampleUpdateOne {
	_u.mutation.SetNetwork(v)
	return _u
}

// ClearNetwork clears the value of the "network" field.
func (_u *TelemetrySampleUpdateOne) ClearNetwork() *TelemetrySampleUpdateOne {
	_u.mutation.ClearNetwork()
	return _u
}

// SetLocation sets the "location" field.
func (_u *TelemetrySampleUpdateOne) SetLocation(v map[string]interface{}) *TelemetrySampleUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *TelemetrySampleUpdateOne) ClearLocation() *TelemetrySampleUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetImu sets the "imu" field.
func (_u *TelemetrySampleUpdateOne) SetImu(v map[string]interface{}) *TelemetrySampleUpdateOne {
	_u.mutation.SetImu(v)
	return _u
}

// ClearImu clears the value of the "imu" field.
func (_u *TelemetrySampleUpdateOne) ClearImu() *TelemetrySampleUpdateOne {
	_u.mutation.ClearImu()
	return _u
}

// SetTemperatureC sets the "temperature_c" field.
func (_u *TelemetrySampleUpdateOne) SetTemperatureC(v float64) *TelemetrySampleUpdateOne {
	_u.mutation.ResetTemperatureC()
	_u.mutation.SetTemperatureC(v)
	return _u
}

// SetNillableTemperatureC sets the "temperature_c" field if the given value is not nil.
func (_u *TelemetrySampleUpdateOne) SetNillableTemperatureC(v *float64) *TelemetrySampleUpdateOne {
	if v != nil {
		_u.SetTemperatureC(*v)
	}
	return _u
}

// AddTemperatureC adds value to the "temperature_c" field.
func (_u *TelemetrySampleUpdateOne) AddTemperatureC(v float64) *TelemetrySampleUpdateOne {
	_u.mutation.AddTemperatureC(v)
	return _u
}

// ClearTemperatureC clears the value of the "temperature_c" field.
func (_u *TelemetrySampleUpdateOne) ClearTemperatureC() *TelemetrySampleUpdateOne {
	_u.mutation.ClearTemperatureC()
	return _u
}

// SetRaw sets the "raw" field.
func (_u *TelemetrySampleUpdateOne) SetRaw(v map[string]interface{}) *TelemetrySampleUpdateOne {
	_u.mutation.SetRaw(v)
	return _u
}

// ClearRaw clears the value of the "raw" field.
func (_u *TelemetrySampleUpdateOne) ClearRaw() *TelemetrySampleUpdateOne {
	_u.mutation.ClearRaw()
	return _u
}

// SetTsMs sets the "ts_ms" field.
func (_u *TelemetrySampleUpdateOne) SetTsMs(v int64) *TelemetrySampleUpdateOne {
	_u.mutation.ResetTsMs()
	_u.mutation.SetTsMs(v)
	return _u
}

// SetNillableTsMs sets the "ts_ms" field if the given value is not nil.
func (_u *TelemetrySampleUpdateOne) SetNillableTsMs(v *int64) *TelemetrySampleUpdateOne {
	if v != nil {
		_u.SetTsMs(*v)
	}
	return _u
}

// AddTsMs adds value to the "ts_ms" field.
func (_u *TelemetrySampleUpdateOne) AddTsMs(v int64) *TelemetrySampleUpdateOne {
	_u.mutation.AddTsMs(v)
	return _u
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_u *TelemetrySampleUpdateOne) SetCreatedAtMs(v int64) *TelemetrySampleUpdateOne {
	_u.mutation.ResetCreatedAtMs()
	_u.mutation.SetCreatedAtMs(v)
	return _u
}

// SetNillableCreatedAtMs sets the "created_at_ms" field if the given value is not nil.
func (_u *TelemetrySampleUpdateOne) SetNillableCreatedAtMs(v *int64) *TelemetrySampleUpdateOne {
	if v != nil {
		_u.SetCreatedAtMs(*v)
	}
	return _u
}

// AddCreatedAtMs adds value to the "created_at_ms" field.
func (_u *TelemetrySampleUpdateOne) AddCreatedAtMs(v int64) *TelemetrySampleUpdateOne {
	_u.mutation.AddCreatedAtMs(v)
	return _u
}

// Mutation returns the TelemetrySampleMutation object of the builder.
func (_u *TelemetrySampleUpdateOne) Mutation() *TelemetrySampleMutation {
	return _u.mutation
}

// Where appends a list predicates to the TelemetrySampleUpdate builder.
func (_u *TelemetrySampleUpdateOne) Where(ps ...predicate.TelemetrySample) *TelemetrySampleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TelemetrySampleUpdateOne) Select(field string, fields ...string) *TelemetrySampleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TelemetrySample entity.
func (_u *TelemetrySampleUpdateOne) Save(ctx context.Context) (*TelemetrySample, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TelemetrySampleUpdateOne) SaveX(ctx context.Context) *TelemetrySample {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TelemetrySampleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TelemetrySampleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TelemetrySampleUpdateOne) sqlSave(ctx context.Context) (_node *TelemetrySample, err error) {
	_spec := sqlgraph.NewUpdateSpec(telemetrysample.Table, telemetrysample.Columns, sqlgraph.NewFieldSpec(telemetrysample.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TelemetrySample.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, telemetrysample.FieldID)
		for _, f := range fields {
			if !telemetrysample.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != telemetrysample.FieldID {
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
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(telemetrysample.FieldDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(telemetrysample.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(telemetrysample.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(telemetrysample.FieldSchemaVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Battery(); ok {
		_spec.SetField(telemetrysample.FieldBattery, field.TypeJSON, value)
	}
	if _u.mutation.BatteryCleared() {
		_spec.ClearField(telemetrysample.FieldBattery, field.TypeJSON)
	}
	if value, ok := _u.mutation.Network(); ok {
		_spec.SetField(telemetrysample.FieldNetwork, field.TypeJSON, value)
	}
	if _u.mutation.NetworkCleared() {
		_spec.ClearField(telemetrysample.FieldNetwork, field.TypeJSON)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(telemetrysample.FieldLocation, field.TypeJSON, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(telemetrysample.FieldLocation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Imu(); ok {
		_spec.SetField(telemetrysample.FieldImu, field.TypeJSON, value)
	}
	if _u.mutation.ImuCleared() {
		_spec.ClearField(telemetrysample.FieldImu, field.TypeJSON)
	}
	if value, ok := _u.mutation.TemperatureC(); ok {
		_spec.SetField(telemetrysample.FieldTemperatureC, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperatureC(); ok {
		_spec.AddField(telemetrysample.FieldTemperatureC, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCCleared() {
		_spec.ClearField(telemetrysample.FieldTemperatureC, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Raw(); ok {
		_spec.SetField(telemetrysample.FieldRaw, field.TypeJSON, value)
	}
	if _u.mutation.RawCleared() {
		_spec.ClearField(telemetrysample.FieldRaw, field.TypeJSON)
	}
	if value, ok := _u.mutation.TsMs(); ok {
		_spec.SetField(telemetrysample.FieldTsMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTsMs(); ok {
		_spec.AddField(telemetrysample.FieldTsMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CreatedAtMs(); ok {
		_spec.SetField(telemetrysample.FieldCreatedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedAtMs(); ok {
		_spec.AddField(telemetrysample.FieldCreatedAtMs, field.TypeInt64, value)
	}
	_node = &TelemetrySample{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{telemetrysample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
