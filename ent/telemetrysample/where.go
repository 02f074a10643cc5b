// Code generated by ent, DO NOT EDIT.

package telemetrysample

import (
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldLTE(FieldID, id))
}

// DeviceID applies equality check predicate on the "device_id" field. It's identical to DeviceIDEQ.
func DeviceID(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldEQ(FieldDeviceID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldEQ(FieldSessionID, v))
}

// SchemaVersion applies equality check predicate on the "schema_version" field. It's identical to SchemaVersionEQ.
func SchemaVersion(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldEQ(FieldSchemaVersion, v))
}

// TemperatureC applies equality check predicate on the "temperature_c" field. It's identical to TemperatureCEQ.
func TemperatureC(v float64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldEQ(FieldTemperatureC, v))
}

// TsMs applies equality check predicate on the "ts_ms" field. It's identical to TsMsEQ.
func TsMs(v int64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldEQ(FieldTsMs, v))
}

// CreatedAtMs applies equality check predicate on the "created_at_ms" field. It's identical to CreatedAtMsEQ.
func CreatedAtMs(v int64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldEQ(FieldCreatedAtMs, v))
}

// DeviceIDEQ applies the EQ predicate on the "device_id" field.
func DeviceIDEQ(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldEQ(FieldDeviceID, v))
}

// DeviceIDNEQ applies the NEQ predicate on the "device_id" field.
func DeviceIDNEQ(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNEQ(FieldDeviceID, v))
}

// DeviceIDIn applies the In predicate on the "device_id" field.
func DeviceIDIn(vs ...string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldIn(FieldDeviceID, vs...))
}

// DeviceIDNotIn applies the NotIn predicate on the "device_id" field.
func DeviceIDNotIn(vs ...string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNotIn(FieldDeviceID, vs...))
}

// DeviceIDGT applies the GT predicate on the "device_id" field.
func DeviceIDGT(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldGT(FieldDeviceID, v))
}

// DeviceIDGTE applies the GTE predicate on the "device_id" field.
func DeviceIDGTE(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldGTE(FieldDeviceID, v))
}

// DeviceIDLT applies the LT predicate on the "device_id" field.
func DeviceIDLT(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldLT(FieldDeviceID, v))
}

// DeviceIDLTE applies the LTE predicate on the "device_id" field.
func DeviceIDLTE(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldLTE(FieldDeviceID, v))
}

// DeviceIDContains applies the Contains predicate on the "device_id" field.
func DeviceIDContains(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldContains(FieldDeviceID, v))
}

// DeviceIDHasPrefix applies the HasPrefix predicate on the "device_id" field.
func DeviceIDHasPrefix(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldHasPrefix(FieldDeviceID, v))
}

// DeviceIDHasSuffix applies the HasSuffix predicate on the "device_id" field.
func DeviceIDHasSuffix(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldHasSuffix(FieldDeviceID, v))
}

// DeviceIDEqualFold applies the EqualFold predicate on the "device_id" field.
func DeviceIDEqualFold(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldEqualFold(FieldDeviceID, v))
}

// DeviceIDContainsFold applies the ContainsFold predicate on the "device_id" field.
func DeviceIDContainsFold(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldContainsFold(FieldDeviceID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldContainsFold(FieldSessionID, v))
}

// SchemaVersionEQ applies the EQ predicate on the "schema_version" field.
func SchemaVersionEQ(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldEQ(FieldSchemaVersion, v))
}

// SchemaVersionNEQ applies the NEQ predicate on the "schema_version" field.
func SchemaVersionNEQ(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNEQ(FieldSchemaVersion, v))
}

// SchemaVersionIn applies the In predicate on the "schema_version" field.
func SchemaVersionIn(vs ...string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldIn(FieldSchemaVersion, vs...))
}

// SchemaVersionNotIn applies the NotIn predicate on the "schema_version" field.
func SchemaVersionNotIn(vs ...string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNotIn(FieldSchemaVersion, vs...))
}

// SchemaVersionGT applies the GT predicate on the "schema_version" field.
func SchemaVersionGT(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldGT(FieldSchemaVersion, v))
}

// SchemaVersionGTE applies the GTE predicate on the "schema_version" field.
func SchemaVersionGTE(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldGTE(FieldSchemaVersion, v))
}

// SchemaVersionLT applies the LT predicate on the "schema_version" field.
func SchemaVersionLT(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldLT(FieldSchemaVersion, v))
}

// SchemaVersionLTE applies the LTE predicate on the "schema_version" field.
func SchemaVersionLTE(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldLTE(FieldSchemaVersion, v))
}

// SchemaVersionContains applies the Contains predicate on the "schema_version" field.
func SchemaVersionContains(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldContains(FieldSchemaVersion, v))
}

// SchemaVersionHasPrefix applies the HasPrefix predicate on the "schema_version" field.
func SchemaVersionHasPrefix(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldHasPrefix(FieldSchemaVersion, v))
}

// SchemaVersionHasSuffix applies the HasSuffix predicate on the "schema_version" field.
func SchemaVersionHasSuffix(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldHasSuffix(FieldSchemaVersion, v))
}

// SchemaVersionEqualFold applies the EqualFold predicate on the "schema_version" field.
func SchemaVersionEqualFold(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldEqualFold(FieldSchemaVersion, v))
}

// SchemaVersionContainsFold applies the ContainsFold predicate on the "schema_version" field.
func SchemaVersionContainsFold(v string) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldContainsFold(FieldSchemaVersion, v))
}

// BatteryIsNil applies the IsNil predicate on the "battery" field.
func BatteryIsNil() predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldIsNull(FieldBattery))
}

// BatteryNotNil applies the NotNil predicate on the "battery" field.
func BatteryNotNil() predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNotNull(FieldBattery))
}

// NetworkIsNil applies the IsNil predicate on the "network" field.
func NetworkIsNil() predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldIsNull(FieldNetwork))
}

// NetworkNotNil applies the NotNil predicate on the "network" field.
func NetworkNotNil() predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNotNull(FieldNetwork))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNotNull(FieldLocation))
}

// ImuIsNil applies the IsNil predicate on the "imu" field.
func ImuIsNil() predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldIsNull(FieldImu))
}

// ImuNotNil applies the NotNil predicate on the "imu" field.
func ImuNotNil() predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNotNull(FieldImu))
}

// TemperatureCEQ applies the EQ predicate on the "temperature_c" field.
func TemperatureCEQ(v float64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldEQ(FieldTemperatureC, v))
}

// TemperatureCNEQ applies the NEQ predicate on the "temperature_c" field.
func TemperatureCNEQ(v float64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNEQ(FieldTemperatureC, v))
}

// TemperatureCIn applies the In predicate on the "temperature_c" field.
func TemperatureCIn(vs ...float64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldIn(FieldTemperatureC, vs...))
}

// TemperatureCNotIn applies the NotIn predicate on the "temperature_c" field.
func TemperatureCNotIn(vs ...float64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNotIn(FieldTemperatureC, vs...))
}

// TemperatureCGT applies the GT predicate on the "temperature_c" field.
func TemperatureCGT(v float64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldGT(FieldTemperatureC, v))
}

// TemperatureCGTE applies the GTE predicate on the "temperature_c" field.
func TemperatureCGTE(v float64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldGTE(FieldTemperatureC, v))
}

// TemperatureCLT applies the LT predicate on the "temperature_c" field.
func TemperatureCLT(v float64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldLT(FieldTemperatureC, v))
}

// TemperatureCLTE applies the LTE predicate on the "temperature_c" field.
func TemperatureCLTE(v float64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldLTE(FieldTemperatureC, v))
}

// TemperatureCIsNil applies the IsNil predicate on the "temperature_c" field.
func TemperatureCIsNil() predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldIsNull(FieldTemperatureC))
}

// TemperatureCNotNil applies the NotNil predicate on the "temperature_c" field.
func TemperatureCNotNil() predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNotNull(FieldTemperatureC))
}

// RawIsNil applies the IsNil predicate on the "raw" field.
func RawIsNil() predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldIsNull(FieldRaw))
}

// RawNotNil applies the NotNil predicate on the "raw" field.
func RawNotNil() predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNotNull(FieldRaw))
}

// TsMsEQ applies the EQ predicate on the "ts_ms" field.
func TsMsEQ(v int64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldEQ(FieldTsMs, v))
}

// TsMsNEQ applies the NEQ predicate on the "ts_ms" field.
func TsMsNEQ(v int64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNEQ(FieldTsMs, v))
}

// TsMsIn applies the In predicate on the "ts_ms" field.
func TsMsIn(vs ...int64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldIn(FieldTsMs, vs...))
}

// TsMsNotIn applies the NotIn predicate on the "ts_ms" field.
func TsMsNotIn(vs ...int64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNotIn(FieldTsMs, vs...))
}

// TsMsGT applies the GT predicate on the "ts_ms" field.
func TsMsGT(v int64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldGT(FieldTsMs, v))
}

// TsMsGTE applies the GTE predicate on the "ts_ms" field.
func TsMsGTE(v int64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldGTE(FieldTsMs, v))
}

// TsMsLT applies the LT predicate on the "ts_ms" field.
func TsMsLT(v int64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldLT(FieldTsMs, v))
}

// TsMsLTE applies the LTE predicate on the "ts_ms" field.
func TsMsLTE(v int64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldLTE(FieldTsMs, v))
}

// CreatedAtMsEQ applies the EQ predicate on the "created_at_ms" field.
func CreatedAtMsEQ(v int64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsNEQ applies the NEQ predicate on the "created_at_ms" field.
func CreatedAtMsNEQ(v int64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsIn applies the In predicate on the "created_at_ms" field.
func CreatedAtMsIn(vs ...int64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsNotIn applies the NotIn predicate on the "created_at_ms" field.
func CreatedAtMsNotIn(vs ...int64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldNotIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsGT applies the GT predicate on the "created_at_ms" field.
func CreatedAtMsGT(v int64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldGT(FieldCreatedAtMs, v))
}

// CreatedAtMsGTE applies the GTE predicate on the "created_at_ms" field.
func CreatedAtMsGTE(v int64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldGTE(FieldCreatedAtMs, v))
}

// CreatedAtMsLT applies the LT predicate on the "created_at_ms" field.
func CreatedAtMsLT(v int64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldLT(FieldCreatedAtMs, v))
}

// CreatedAtMsLTE applies the LTE predicate on the "created_at_ms" field.
func CreatedAtMsLTE(v int64) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.FieldLTE(FieldCreatedAtMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TelemetrySample) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TelemetrySample) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TelemetrySample) predicate.TelemetrySample {
	return predicate.TelemetrySample(sql.NotPredicates(p))
}
