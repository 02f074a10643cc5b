// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/opencane/edged/ent/devicesession"
	"github.com/opencane/edged/ent/digitaltask"
	"github.com/opencane/edged/ent/lifelogcontext"
	"github.com/opencane/edged/ent/lifelogevent"
	"github.com/opencane/edged/ent/lifelogimage"
	"github.com/opencane/edged/ent/schema"
	"github.com/opencane/edged/ent/telemetrysample"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	devicebindingFields := schema.DeviceBinding{}.Fields()
	_ = devicebindingFields
	deviceoperationFields := schema.DeviceOperation{}.Fields()
	_ = deviceoperationFields
	devicesessionFields := schema.DeviceSession{}.Fields()
	_ = devicesessionFields
	// devicesessionDescLastInboundSeq is the schema descriptor for last_inbound_seq field.
	devicesessionDescLastInboundSeq := devicesessionFields[5].Descriptor()
	// devicesession.DefaultLastInboundSeq holds the default value on creation for the last_inbound_seq field.
	devicesession.DefaultLastInboundSeq = devicesessionDescLastInboundSeq.Default.(int64)
	// devicesessionDescLastOutboundSeq is the schema descriptor for last_outbound_seq field.
	devicesessionDescLastOutboundSeq := devicesessionFields[6].Descriptor()
	// devicesession.DefaultLastOutboundSeq holds the default value on creation for the last_outbound_seq field.
	devicesession.DefaultLastOutboundSeq = devicesessionDescLastOutboundSeq.Default.(int64)
	digitaltaskFields := schema.DigitalTask{}.Fields()
	_ = digitaltaskFields
	// digitaltaskDescTimeoutSeconds is the schema descriptor for timeout_seconds field.
	digitaltaskDescTimeoutSeconds := digitaltaskFields[8].Descriptor()
	// digitaltask.DefaultTimeoutSeconds holds the default value on creation for the timeout_seconds field.
	digitaltask.DefaultTimeoutSeconds = digitaltaskDescTimeoutSeconds.Default.(int)
	lifelogcontextFields := schema.LifelogContext{}.Fields()
	_ = lifelogcontextFields
	// lifelogcontextDescRiskLevel is the schema descriptor for risk_level field.
	lifelogcontextDescRiskLevel := lifelogcontextFields[9].Descriptor()
	// lifelogcontext.DefaultRiskLevel holds the default value on creation for the risk_level field.
	lifelogcontext.DefaultRiskLevel = lifelogcontextDescRiskLevel.Default.(string)
	// lifelogcontextDescRiskScore is the schema descriptor for risk_score field.
	lifelogcontextDescRiskScore := lifelogcontextFields[10].Descriptor()
	// lifelogcontext.DefaultRiskScore holds the default value on creation for the risk_score field.
	lifelogcontext.DefaultRiskScore = lifelogcontextDescRiskScore.Default.(float64)
	// lifelogcontextDescConfidence is the schema descriptor for confidence field.
	lifelogcontextDescConfidence := lifelogcontextFields[11].Descriptor()
	// lifelogcontext.DefaultConfidence holds the default value on creation for the confidence field.
	lifelogcontext.DefaultConfidence = lifelogcontextDescConfidence.Default.(float64)
	lifelogeventFields := schema.LifelogEvent{}.Fields()
	_ = lifelogeventFields
	// lifelogeventDescConfidence is the schema descriptor for confidence field.
	lifelogeventDescConfidence := lifelogeventFields[7].Descriptor()
	// lifelogevent.DefaultConfidence holds the default value on creation for the confidence field.
	lifelogevent.DefaultConfidence = lifelogeventDescConfidence.Default.(float64)
	lifelogimageFields := schema.LifelogImage{}.Fields()
	_ = lifelogimageFields
	// lifelogimageDescIsDedup is the schema descriptor for is_dedup field.
	lifelogimageDescIsDedup := lifelogimageFields[5].Descriptor()
	// lifelogimage.DefaultIsDedup holds the default value on creation for the is_dedup field.
	lifelogimage.DefaultIsDedup = lifelogimageDescIsDedup.Default.(bool)
	// lifelogimageDescContentType is the schema descriptor for content_type field.
	lifelogimageDescContentType := lifelogimageFields[6].Descriptor()
	// lifelogimage.DefaultContentType holds the default value on creation for the content_type field.
	lifelogimage.DefaultContentType = lifelogimageDescContentType.Default.(string)
	// lifelogimageDescSizeBytes is the schema descriptor for size_bytes field.
	lifelogimageDescSizeBytes := lifelogimageFields[7].Descriptor()
	// lifelogimage.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	lifelogimage.DefaultSizeBytes = lifelogimageDescSizeBytes.Default.(int)
	pushupdateFields := schema.PushUpdate{}.Fields()
	_ = pushupdateFields
	telemetrysampleFields := schema.TelemetrySample{}.Fields()
	_ = telemetrysampleFields
	// telemetrysampleDescSchemaVersion is the schema descriptor for schema_version field.
	telemetrysampleDescSchemaVersion := telemetrysampleFields[2].Descriptor()
	// telemetrysample.DefaultSchemaVersion holds the default value on creation for the schema_version field.
	telemetrysample.DefaultSchemaVersion = telemetrysampleDescSchemaVersion.Default.(string)
}
