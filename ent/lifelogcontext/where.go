// Code generated by ent, DO NOT EDIT.

package lifelogcontext

import (
	"entgo.io/ent/dialect/sql"
	"github.com/opencane/edged/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldContainsFold(FieldID, id))
}

// ImageID applies equality check predicate on the "image_id" field. It's identical to ImageIDEQ.
func ImageID(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldImageID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldSessionID, v))
}

// SemanticTitle applies equality check predicate on the "semantic_title" field. It's identical to SemanticTitleEQ.
func SemanticTitle(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldSemanticTitle, v))
}

// SemanticSummary applies equality check predicate on the "semantic_summary" field. It's identical to SemanticSummaryEQ.
func SemanticSummary(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldSemanticSummary, v))
}

// ActionableSummary applies equality check predicate on the "actionable_summary" field. It's identical to ActionableSummaryEQ.
func ActionableSummary(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldActionableSummary, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskScore applies equality check predicate on the "risk_score" field. It's identical to RiskScoreEQ.
func RiskScore(v float64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldRiskScore, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldConfidence, v))
}

// CreatedAtMs applies equality check predicate on the "created_at_ms" field. It's identical to CreatedAtMsEQ.
func CreatedAtMs(v int64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldCreatedAtMs, v))
}

// ImageIDEQ applies the EQ predicate on the "image_id" field.
func ImageIDEQ(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldImageID, v))
}

// ImageIDNEQ applies the NEQ predicate on the "image_id" field.
func ImageIDNEQ(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNEQ(FieldImageID, v))
}

// ImageIDIn applies the In predicate on the "image_id" field.
func ImageIDIn(vs ...string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldIn(FieldImageID, vs...))
}

// ImageIDNotIn applies the NotIn predicate on the "image_id" field.
func ImageIDNotIn(vs ...string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNotIn(FieldImageID, vs...))
}

// ImageIDGT applies the GT predicate on the "image_id" field.
func ImageIDGT(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGT(FieldImageID, v))
}

// ImageIDGTE applies the GTE predicate on the "image_id" field.
func ImageIDGTE(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGTE(FieldImageID, v))
}

// ImageIDLT applies the LT predicate on the "image_id" field.
func ImageIDLT(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLT(FieldImageID, v))
}

// ImageIDLTE applies the LTE predicate on the "image_id" field.
func ImageIDLTE(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLTE(FieldImageID, v))
}

// ImageIDContains applies the Contains predicate on the "image_id" field.
func ImageIDContains(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldContains(FieldImageID, v))
}

// ImageIDHasPrefix applies the HasPrefix predicate on the "image_id" field.
func ImageIDHasPrefix(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldHasPrefix(FieldImageID, v))
}

// ImageIDHasSuffix applies the HasSuffix predicate on the "image_id" field.
func ImageIDHasSuffix(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldHasSuffix(FieldImageID, v))
}

// ImageIDEqualFold applies the EqualFold predicate on the "image_id" field.
func ImageIDEqualFold(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEqualFold(FieldImageID, v))
}

// ImageIDContainsFold applies the ContainsFold predicate on the "image_id" field.
func ImageIDContainsFold(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldContainsFold(FieldImageID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldContainsFold(FieldSessionID, v))
}

// SemanticTitleEQ applies the EQ predicate on the "semantic_title" field.
func SemanticTitleEQ(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldSemanticTitle, v))
}

// SemanticTitleNEQ applies the NEQ predicate on the "semantic_title" field.
func SemanticTitleNEQ(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNEQ(FieldSemanticTitle, v))
}

// SemanticTitleIn applies the In predicate on the "semantic_title" field.
func SemanticTitleIn(vs ...string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldIn(FieldSemanticTitle, vs...))
}

// SemanticTitleNotIn applies the NotIn predicate on the "semantic_title" field.
func SemanticTitleNotIn(vs ...string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNotIn(FieldSemanticTitle, vs...))
}

// SemanticTitleGT applies the GT predicate on the "semantic_title" field.
func SemanticTitleGT(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGT(FieldSemanticTitle, v))
}

// SemanticTitleGTE applies the GTE predicate on the "semantic_title" field.
func SemanticTitleGTE(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGTE(FieldSemanticTitle, v))
}

// SemanticTitleLT applies the LT predicate on the "semantic_title" field.
func SemanticTitleLT(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLT(FieldSemanticTitle, v))
}

// SemanticTitleLTE applies the LTE predicate on the "semantic_title" field.
func SemanticTitleLTE(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLTE(FieldSemanticTitle, v))
}

// SemanticTitleContains applies the Contains predicate on the "semantic_title" field.
func SemanticTitleContains(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldContains(FieldSemanticTitle, v))
}

// SemanticTitleHasPrefix applies the HasPrefix predicate on the "semantic_title" field.
func SemanticTitleHasPrefix(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldHasPrefix(FieldSemanticTitle, v))
}

// SemanticTitleHasSuffix applies the HasSuffix predicate on the "semantic_title" field.
func SemanticTitleHasSuffix(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldHasSuffix(FieldSemanticTitle, v))
}

// SemanticTitleIsNil applies the IsNil predicate on the "semantic_title" field.
func SemanticTitleIsNil() predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldIsNull(FieldSemanticTitle))
}

// SemanticTitleNotNil applies the NotNil predicate on the "semantic_title" field.
func SemanticTitleNotNil() predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNotNull(FieldSemanticTitle))
}

// SemanticTitleEqualFold applies the EqualFold predicate on the "semantic_title" field.
func SemanticTitleEqualFold(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEqualFold(FieldSemanticTitle, v))
}

// SemanticTitleContainsFold applies the ContainsFold predicate on the "semantic_title" field.
func SemanticTitleContainsFold(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldContainsFold(FieldSemanticTitle, v))
}

// SemanticSummaryEQ applies the EQ predicate on the "semantic_summary" field.
func SemanticSummaryEQ(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldSemanticSummary, v))
}

// SemanticSummaryNEQ applies the NEQ predicate on the "semantic_summary" field.
func SemanticSummaryNEQ(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNEQ(FieldSemanticSummary, v))
}

// SemanticSummaryIn applies the In predicate on the "semantic_summary" field.
func SemanticSummaryIn(vs ...string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldIn(FieldSemanticSummary, vs...))
}

// SemanticSummaryNotIn applies the NotIn predicate on the "semantic_summary" field.
func SemanticSummaryNotIn(vs ...string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNotIn(FieldSemanticSummary, vs...))
}

// SemanticSummaryGT applies the GT predicate on the "semantic_summary" field.
func SemanticSummaryGT(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGT(FieldSemanticSummary, v))
}

// SemanticSummaryGTE applies the GTE predicate on the "semantic_summary" field.
func SemanticSummaryGTE(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGTE(FieldSemanticSummary, v))
}

// SemanticSummaryLT applies the LT predicate on the "semantic_summary" field.
func SemanticSummaryLT(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLT(FieldSemanticSummary, v))
}

// SemanticSummaryLTE applies the LTE predicate on the "semantic_summary" field.
func SemanticSummaryLTE(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLTE(FieldSemanticSummary, v))
}

// SemanticSummaryContains applies the Contains predicate on the "semantic_summary" field.
func SemanticSummaryContains(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldContains(FieldSemanticSummary, v))
}

// SemanticSummaryHasPrefix applies the HasPrefix predicate on the "semantic_summary" field.
func SemanticSummaryHasPrefix(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldHasPrefix(FieldSemanticSummary, v))
}

// SemanticSummaryHasSuffix applies the HasSuffix predicate on the "semantic_summary" field.
func SemanticSummaryHasSuffix(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldHasSuffix(FieldSemanticSummary, v))
}

// SemanticSummaryIsNil applies the IsNil predicate on the "semantic_summary" field.
func SemanticSummaryIsNil() predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldIsNull(FieldSemanticSummary))
}

// SemanticSummaryNotNil applies the NotNil predicate on the "semantic_summary" field.
func SemanticSummaryNotNil() predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNotNull(FieldSemanticSummary))
}

// SemanticSummaryEqualFold applies the EqualFold predicate on the "semantic_summary" field.
func SemanticSummaryEqualFold(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEqualFold(FieldSemanticSummary, v))
}

// SemanticSummaryContainsFold applies the ContainsFold predicate on the "semantic_summary" field.
func SemanticSummaryContainsFold(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldContainsFold(FieldSemanticSummary, v))
}

// ObjectsIsNil applies the IsNil predicate on the "objects" field.
func ObjectsIsNil() predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldIsNull(FieldObjects))
}

// ObjectsNotNil applies the NotNil predicate on the "objects" field.
func ObjectsNotNil() predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNotNull(FieldObjects))
}

// OcrIsNil applies the IsNil predicate on the "ocr" field.
func OcrIsNil() predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldIsNull(FieldOcr))
}

// OcrNotNil applies the NotNil predicate on the "ocr" field.
func OcrNotNil() predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNotNull(FieldOcr))
}

// RiskHintsIsNil applies the IsNil predicate on the "risk_hints" field.
func RiskHintsIsNil() predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldIsNull(FieldRiskHints))
}

// RiskHintsNotNil applies the NotNil predicate on the "risk_hints" field.
func RiskHintsNotNil() predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNotNull(FieldRiskHints))
}

// ActionableSummaryEQ applies the EQ predicate on the "actionable_summary" field.
func ActionableSummaryEQ(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldActionableSummary, v))
}

// ActionableSummaryNEQ applies the NEQ predicate on the "actionable_summary" field.
func ActionableSummaryNEQ(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNEQ(FieldActionableSummary, v))
}

// ActionableSummaryIn applies the In predicate on the "actionable_summary" field.
func ActionableSummaryIn(vs ...string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldIn(FieldActionableSummary, vs...))
}

// ActionableSummaryNotIn applies the NotIn predicate on the "actionable_summary" field.
func ActionableSummaryNotIn(vs ...string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNotIn(FieldActionableSummary, vs...))
}

// ActionableSummaryGT applies the GT predicate on the "actionable_summary" field.
func ActionableSummaryGT(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGT(FieldActionableSummary, v))
}

// ActionableSummaryGTE applies the GTE predicate on the "actionable_summary" field.
func ActionableSummaryGTE(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGTE(FieldActionableSummary, v))
}

// ActionableSummaryLT applies the LT predicate on the "actionable_summary" field.
func ActionableSummaryLT(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLT(FieldActionableSummary, v))
}

// ActionableSummaryLTE applies the LTE predicate on the "actionable_summary" field.
func ActionableSummaryLTE(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLTE(FieldActionableSummary, v))
}

// ActionableSummaryContains applies the Contains predicate on the "actionable_summary" field.
func ActionableSummaryContains(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldContains(FieldActionableSummary, v))
}

// ActionableSummaryHasPrefix applies the HasPrefix predicate on the "actionable_summary" field.
func ActionableSummaryHasPrefix(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldHasPrefix(FieldActionableSummary, v))
}

// ActionableSummaryHasSuffix applies the HasSuffix predicate on the "actionable_summary" field.
func ActionableSummaryHasSuffix(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldHasSuffix(FieldActionableSummary, v))
}

// ActionableSummaryIsNil applies the IsNil predicate on the "actionable_summary" field.
func ActionableSummaryIsNil() predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldIsNull(FieldActionableSummary))
}

// ActionableSummaryNotNil applies the NotNil predicate on the "actionable_summary" field.
func ActionableSummaryNotNil() predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNotNull(FieldActionableSummary))
}

// ActionableSummaryEqualFold applies the EqualFold predicate on the "actionable_summary" field.
func ActionableSummaryEqualFold(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEqualFold(FieldActionableSummary, v))
}

// ActionableSummaryContainsFold applies the ContainsFold predicate on the "actionable_summary" field.
func ActionableSummaryContainsFold(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldContainsFold(FieldActionableSummary, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldContainsFold(FieldRiskLevel, v))
}

// RiskScoreEQ applies the EQ predicate on the "risk_score" field.
func RiskScoreEQ(v float64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldRiskScore, v))
}

// RiskScoreNEQ applies the NEQ predicate on the "risk_score" field.
func RiskScoreNEQ(v float64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNEQ(FieldRiskScore, v))
}

// RiskScoreIn applies the In predicate on the "risk_score" field.
func RiskScoreIn(vs ...float64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldIn(FieldRiskScore, vs...))
}

// RiskScoreNotIn applies the NotIn predicate on the "risk_score" field.
func RiskScoreNotIn(vs ...float64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNotIn(FieldRiskScore, vs...))
}

// RiskScoreGT applies the GT predicate on the "risk_score" field.
func RiskScoreGT(v float64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGT(FieldRiskScore, v))
}

// RiskScoreGTE applies the GTE predicate on the "risk_score" field.
func RiskScoreGTE(v float64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGTE(FieldRiskScore, v))
}

// RiskScoreLT applies the LT predicate on the "risk_score" field.
func RiskScoreLT(v float64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLT(FieldRiskScore, v))
}

// RiskScoreLTE applies the LTE predicate on the "risk_score" field.
func RiskScoreLTE(v float64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLTE(FieldRiskScore, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLTE(FieldConfidence, v))
}

// CreatedAtMsEQ applies the EQ predicate on the "created_at_ms" field.
func CreatedAtMsEQ(v int64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsNEQ applies the NEQ predicate on the "created_at_ms" field.
func CreatedAtMsNEQ(v int64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsIn applies the In predicate on the "created_at_ms" field.
func CreatedAtMsIn(vs ...int64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsNotIn applies the NotIn predicate on the "created_at_ms" field.
func CreatedAtMsNotIn(vs ...int64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldNotIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsGT applies the GT predicate on the "created_at_ms" field.
func CreatedAtMsGT(v int64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGT(FieldCreatedAtMs, v))
}

// CreatedAtMsGTE applies the GTE predicate on the "created_at_ms" field.
func CreatedAtMsGTE(v int64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldGTE(FieldCreatedAtMs, v))
}

// CreatedAtMsLT applies the LT predicate on the "created_at_ms" field.
func CreatedAtMsLT(v int64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLT(FieldCreatedAtMs, v))
}

// CreatedAtMsLTE applies the LTE predicate on the "created_at_ms" field.
func CreatedAtMsLTE(v int64) predicate.LifelogContext {
	return predicate.LifelogContext(sql.FieldLTE(FieldCreatedAtMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LifelogContext) predicate.LifelogContext {
	return predicate.LifelogContext(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LifelogContext) predicate.LifelogContext {
	return predicate.LifelogContext(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LifelogContext) predicate.LifelogContext {
	return predicate.LifelogContext(sql.NotPredicates(p))
}
