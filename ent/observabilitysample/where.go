// Code generated by ent, DO NOT EDIT.

package observabilitysample

import (
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldLTE(FieldID, id))
}

// Scope applies equality check predicate on the "scope" field. It's identical to ScopeEQ.
func Scope(v string) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldEQ(FieldScope, v))
}

// TsMs applies equality check predicate on the "ts_ms" field. It's identical to TsMsEQ.
func TsMs(v int64) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldEQ(FieldTsMs, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v string) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v string) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...string) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...string) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldNotIn(FieldScope, vs...))
}

// ScopeGT applies the GT predicate on the "scope" field.
func ScopeGT(v string) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldGT(FieldScope, v))
}

// ScopeGTE applies the GTE predicate on the "scope" field.
func ScopeGTE(v string) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldGTE(FieldScope, v))
}

// ScopeLT applies the LT predicate on the "scope" field.
func ScopeLT(v string) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldLT(FieldScope, v))
}

// ScopeLTE applies the LTE predicate on the "scope" field.
func ScopeLTE(v string) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldLTE(FieldScope, v))
}

// ScopeContains applies the Contains predicate on the "scope" field.
func ScopeContains(v string) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldContains(FieldScope, v))
}

// ScopeHasPrefix applies the HasPrefix predicate on the "scope" field.
func ScopeHasPrefix(v string) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldHasPrefix(FieldScope, v))
}

// ScopeHasSuffix applies the HasSuffix predicate on the "scope" field.
func ScopeHasSuffix(v string) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldHasSuffix(FieldScope, v))
}

// ScopeEqualFold applies the EqualFold predicate on the "scope" field.
func ScopeEqualFold(v string) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldEqualFold(FieldScope, v))
}

// ScopeContainsFold applies the ContainsFold predicate on the "scope" field.
func ScopeContainsFold(v string) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldContainsFold(FieldScope, v))
}

// TsMsEQ applies the EQ predicate on the "ts_ms" field.
func TsMsEQ(v int64) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldEQ(FieldTsMs, v))
}

// TsMsNEQ applies the NEQ predicate on the "ts_ms" field.
func TsMsNEQ(v int64) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldNEQ(FieldTsMs, v))
}

// TsMsIn applies the In predicate on the "ts_ms" field.
func TsMsIn(vs ...int64) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldIn(FieldTsMs, vs...))
}

// TsMsNotIn applies the NotIn predicate on the "ts_ms" field.
func TsMsNotIn(vs ...int64) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldNotIn(FieldTsMs, vs...))
}

// TsMsGT applies the GT predicate on the "ts_ms" field.
func TsMsGT(v int64) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldGT(FieldTsMs, v))
}

// TsMsGTE applies the GTE predicate on the "ts_ms" field.
func TsMsGTE(v int64) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldGTE(FieldTsMs, v))
}

// TsMsLT applies the LT predicate on the "ts_ms" field.
func TsMsLT(v int64) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldLT(FieldTsMs, v))
}

// TsMsLTE applies the LTE predicate on the "ts_ms" field.
func TsMsLTE(v int64) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.FieldLTE(FieldTsMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ObservabilitySample) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ObservabilitySample) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ObservabilitySample) predicate.ObservabilitySample {
	return predicate.ObservabilitySample(sql.NotPredicates(p))
}
