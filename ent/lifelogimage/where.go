// Code generated by ent, DO NOT EDIT.

package lifelogimage

import (
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldSessionID, v))
}

// DeviceID applies equality check predicate on the "device_id" field. It's identical to DeviceIDEQ.
func DeviceID(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldDeviceID, v))
}

// ImageURI applies equality check predicate on the "image_uri" field. It's identical to ImageURIEQ.
func ImageURI(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldImageURI, v))
}

// Dhash applies equality check predicate on the "dhash" field. It's identical to DhashEQ.
func Dhash(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldDhash, v))
}

// IsDedup applies equality check predicate on the "is_dedup" field. It's identical to IsDedupEQ.
func IsDedup(v bool) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldIsDedup, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldContentType, v))
}

// SizeBytes applies equality check predicate on the "size_bytes" field. It's identical to SizeBytesEQ.
func SizeBytes(v int) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldSizeBytes, v))
}

// TsMs applies equality check predicate on the "ts_ms" field. It's identical to TsMsEQ.
func TsMs(v int64) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldTsMs, v))
}

// CreatedAtMs applies equality check predicate on the "created_at_ms" field. It's identical to CreatedAtMsEQ.
func CreatedAtMs(v int64) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldCreatedAtMs, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldContainsFold(FieldSessionID, v))
}

// DeviceIDEQ applies the EQ predicate on the "device_id" field.
func DeviceIDEQ(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldDeviceID, v))
}

// DeviceIDNEQ applies the NEQ predicate on the "device_id" field.
func DeviceIDNEQ(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNEQ(FieldDeviceID, v))
}

// DeviceIDIn applies the In predicate on the "device_id" field.
func DeviceIDIn(vs ...string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldIn(FieldDeviceID, vs...))
}

// DeviceIDNotIn applies the NotIn predicate on the "device_id" field.
func DeviceIDNotIn(vs ...string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNotIn(FieldDeviceID, vs...))
}

// DeviceIDGT applies the GT predicate on the "device_id" field.
func DeviceIDGT(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldGT(FieldDeviceID, v))
}

// DeviceIDGTE applies the GTE predicate on the "device_id" field.
func DeviceIDGTE(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldGTE(FieldDeviceID, v))
}

// DeviceIDLT applies the LT predicate on the "device_id" field.
func DeviceIDLT(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldLT(FieldDeviceID, v))
}

// DeviceIDLTE applies the LTE predicate on the "device_id" field.
func DeviceIDLTE(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldLTE(FieldDeviceID, v))
}

// DeviceIDContains applies the Contains predicate on the "device_id" field.
func DeviceIDContains(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldContains(FieldDeviceID, v))
}

// DeviceIDHasPrefix applies the HasPrefix predicate on the "device_id" field.
func DeviceIDHasPrefix(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldHasPrefix(FieldDeviceID, v))
}

// DeviceIDHasSuffix applies the HasSuffix predicate on the "device_id" field.
func DeviceIDHasSuffix(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldHasSuffix(FieldDeviceID, v))
}

// DeviceIDIsNil applies the IsNil predicate on the "device_id" field.
func DeviceIDIsNil() predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldIsNull(FieldDeviceID))
}

// DeviceIDNotNil applies the NotNil predicate on the "device_id" field.
func DeviceIDNotNil() predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNotNull(FieldDeviceID))
}

// DeviceIDEqualFold applies the EqualFold predicate on the "device_id" field.
func DeviceIDEqualFold(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEqualFold(FieldDeviceID, v))
}

// DeviceIDContainsFold applies the ContainsFold predicate on the "device_id" field.
func DeviceIDContainsFold(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldContainsFold(FieldDeviceID, v))
}

// ImageURIEQ applies the EQ predicate on the "image_uri" field.
func ImageURIEQ(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldImageURI, v))
}

// ImageURINEQ applies the NEQ predicate on the "image_uri" field.
func ImageURINEQ(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNEQ(FieldImageURI, v))
}

// ImageURIIn applies the In predicate on the "image_uri" field.
func ImageURIIn(vs ...string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldIn(FieldImageURI, vs...))
}

// ImageURINotIn applies the NotIn predicate on the "image_uri" field.
func ImageURINotIn(vs ...string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNotIn(FieldImageURI, vs...))
}

// ImageURIGT applies the GT predicate on the "image_uri" field.
func ImageURIGT(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldGT(FieldImageURI, v))
}

// ImageURIGTE applies the GTE predicate on the "image_uri" field.
func ImageURIGTE(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldGTE(FieldImageURI, v))
}

// ImageURILT applies the LT predicate on the "image_uri" field.
func ImageURILT(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldLT(FieldImageURI, v))
}

// ImageURILTE applies the LTE predicate on the "image_uri" field.
func ImageURILTE(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldLTE(FieldImageURI, v))
}

// ImageURIContains applies the Contains predicate on the "image_uri" field.
func ImageURIContains(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldContains(FieldImageURI, v))
}

// ImageURIHasPrefix applies the HasPrefix predicate on the "image_uri" field.
func ImageURIHasPrefix(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldHasPrefix(FieldImageURI, v))
}

// ImageURIHasSuffix applies the HasSuffix predicate on the "image_uri" field.
func ImageURIHasSuffix(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldHasSuffix(FieldImageURI, v))
}

// ImageURIEqualFold applies the EqualFold predicate on the "image_uri" field.
func ImageURIEqualFold(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEqualFold(FieldImageURI, v))
}

// ImageURIContainsFold applies the ContainsFold predicate on the "image_uri" field.
func ImageURIContainsFold(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldContainsFold(FieldImageURI, v))
}

// DhashEQ applies the EQ predicate on the "dhash" field.
func DhashEQ(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldDhash, v))
}

// DhashNEQ applies the NEQ predicate on the "dhash" field.
func DhashNEQ(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNEQ(FieldDhash, v))
}

// DhashIn applies the In predicate on the "dhash" field.
func DhashIn(vs ...string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldIn(FieldDhash, vs...))
}

// DhashNotIn applies the NotIn predicate on the "dhash" field.
func DhashNotIn(vs ...string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNotIn(FieldDhash, vs...))
}

// DhashGT applies the GT predicate on the "dhash" field.
func DhashGT(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldGT(FieldDhash, v))
}

// DhashGTE applies the GTE predicate on the "dhash" field.
func DhashGTE(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldGTE(FieldDhash, v))
}

// DhashLT applies the LT predicate on the "dhash" field.
func DhashLT(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldLT(FieldDhash, v))
}

// DhashLTE applies the LTE predicate on the "dhash" field.
func DhashLTE(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldLTE(FieldDhash, v))
}

// DhashContains applies the Contains predicate on the "dhash" field.
func DhashContains(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldContains(FieldDhash, v))
}

// DhashHasPrefix applies the HasPrefix predicate on the "dhash" field.
func DhashHasPrefix(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldHasPrefix(FieldDhash, v))
}

// DhashHasSuffix applies the HasSuffix predicate on the "dhash" field.
func DhashHasSuffix(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldHasSuffix(FieldDhash, v))
}

// DhashEqualFold applies the EqualFold predicate on the "dhash" field.
func DhashEqualFold(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEqualFold(FieldDhash, v))
}

// DhashContainsFold applies the ContainsFold predicate on the "dhash" field.
func DhashContainsFold(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldContainsFold(FieldDhash, v))
}

// IsDedupEQ applies the EQ predicate on the "is_dedup" field.
func IsDedupEQ(v bool) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldIsDedup, v))
}

// IsDedupNEQ applies the NEQ predicate on the "is_dedup" field.
func IsDedupNEQ(v bool) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNEQ(FieldIsDedup, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldContainsFold(FieldContentType, v))
}

// SizeBytesEQ applies the EQ predicate on the "size_bytes" field.
func SizeBytesEQ(v int) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldSizeBytes, v))
}

// SizeBytesNEQ applies the NEQ predicate on the "size_bytes" field.
func SizeBytesNEQ(v int) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNEQ(FieldSizeBytes, v))
}

// SizeBytesIn applies the In predicate on the "size_bytes" field.
func SizeBytesIn(vs ...int) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldIn(FieldSizeBytes, vs...))
}

// SizeBytesNotIn applies the NotIn predicate on the "size_bytes" field.
func SizeBytesNotIn(vs ...int) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNotIn(FieldSizeBytes, vs...))
}

// SizeBytesGT applies the GT predicate on the "size_bytes" field.
func SizeBytesGT(v int) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldGT(FieldSizeBytes, v))
}

// SizeBytesGTE applies the GTE predicate on the "size_bytes" field.
func SizeBytesGTE(v int) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldGTE(FieldSizeBytes, v))
}

// SizeBytesLT applies the LT predicate on the "size_bytes" field.
func SizeBytesLT(v int) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldLT(FieldSizeBytes, v))
}

// SizeBytesLTE applies the LTE predicate on the "size_bytes" field.
func SizeBytesLTE(v int) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldLTE(FieldSizeBytes, v))
}

// TsMsEQ applies the EQ predicate on the "ts_ms" field.
func TsMsEQ(v int64) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldTsMs, v))
}

// TsMsNEQ applies the NEQ predicate on the "ts_ms" field.
func TsMsNEQ(v int64) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNEQ(FieldTsMs, v))
}

// TsMsIn applies the In predicate on the "ts_ms" field.
func TsMsIn(vs ...int64) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldIn(FieldTsMs, vs...))
}

// TsMsNotIn applies the NotIn predicate on the "ts_ms" field.
func TsMsNotIn(vs ...int64) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNotIn(FieldTsMs, vs...))
}

// TsMsGT applies the GT predicate on the "ts_ms" field.
func TsMsGT(v int64) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldGT(FieldTsMs, v))
}

// TsMsGTE applies the GTE predicate on the "ts_ms" field.
func TsMsGTE(v int64) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldGTE(FieldTsMs, v))
}

// TsMsLT applies the LT predicate on the "ts_ms" field.
func TsMsLT(v int64) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldLT(FieldTsMs, v))
}

// TsMsLTE applies the LTE predicate on the "ts_ms" field.
func TsMsLTE(v int64) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldLTE(FieldTsMs, v))
}

// CreatedAtMsEQ applies the EQ predicate on the "created_at_ms" field.
func CreatedAtMsEQ(v int64) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsNEQ applies the NEQ predicate on the "created_at_ms" field.
func CreatedAtMsNEQ(v int64) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsIn applies the In predicate on the "created_at_ms" field.
func CreatedAtMsIn(vs ...int64) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsNotIn applies the NotIn predicate on the "created_at_ms" field.
func CreatedAtMsNotIn(vs ...int64) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldNotIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsGT applies the GT predicate on the "created_at_ms" field.
func CreatedAtMsGT(v int64) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldGT(FieldCreatedAtMs, v))
}

// CreatedAtMsGTE applies the GTE predicate on the "created_at_ms" field.
func CreatedAtMsGTE(v int64) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldGTE(FieldCreatedAtMs, v))
}

// CreatedAtMsLT applies the LT predicate on the "created_at_ms" field.
func CreatedAtMsLT(v int64) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldLT(FieldCreatedAtMs, v))
}

// CreatedAtMsLTE applies the LTE predicate on the "created_at_ms" field.
func CreatedAtMsLTE(v int64) predicate.LifelogImage {
	return predicate.LifelogImage(sql.FieldLTE(FieldCreatedAtMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LifelogImage) predicate.LifelogImage {
	return predicate.LifelogImage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LifelogImage) predicate.LifelogImage {
	return predicate.LifelogImage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LifelogImage) predicate.LifelogImage {
	return predicate.LifelogImage(sql.NotPredicates(p))
}
