package policy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func confPtr(v float64) *float64 { return &v }

func TestSafetyPolicyLowConfidenceDowngrade(t *testing.T) {
	policy := NewSafetyPolicy(SafetyConfig{
		Enabled:                true,
		LowConfidenceThreshold: 0.8,
		MaxOutputChars:         300,
	})
	decision := policy.Evaluate(SafetyInput{
		Text:       "请向前走10米，然后左转。",
		Source:     "vision_reply",
		Confidence: confPtr(0.2),
		RiskLevel:  "P1",
	})
	assert.True(t, decision.Downgraded)
	assert.Equal(t, "low_confidence", decision.Reason)
	assert.Equal(t, "P1", decision.RiskLevel)
	assert.Contains(t, decision.Text, "请先停下")
}

func TestSafetyPolicyInferRiskAndAddCautionPrefix(t *testing.T) {
	policy := NewSafetyPolicy(SafetyConfig{
		Enabled:                true,
		LowConfidenceThreshold: 0.4,
		MaxOutputChars:         300,
		PrependCautionForRisk:  true,
	})
	decision := policy.Evaluate(SafetyInput{
		Text:       "前方有车流，请注意观察。",
		Source:     "vision_reply",
		Confidence: confPtr(0.95),
	})
	assert.False(t, decision.Downgraded)
	assert.Equal(t, "P0", decision.RiskLevel)
	assert.True(t, strings.HasPrefix(decision.Text, "注意安全。"))
	assert.Contains(t, decision.Flags, "caution_prefix_added")
}

func TestSafetyPolicyDisabledPassthroughWithTruncation(t *testing.T) {
	policy := NewSafetyPolicy(SafetyConfig{
		Enabled:                false,
		LowConfidenceThreshold: 0.99,
		MaxOutputChars:         20, // clamps to the 64-char floor
	})
	decision := policy.Evaluate(SafetyInput{
		Text:       strings.Repeat("0123456789", 12),
		Source:     "task_update",
		Confidence: confPtr(0.1),
		RiskLevel:  "P0",
	})
	assert.False(t, decision.Downgraded)
	assert.Equal(t, "ok", decision.Reason)
	assert.True(t, strings.HasSuffix(decision.Text, "..."))
	assert.LessOrEqual(t, len([]rune(decision.Text)), 64)
	assert.Contains(t, decision.Flags, "output_truncated")
}

func TestSafetyPolicySemanticGuardConflict(t *testing.T) {
	policy := NewSafetyPolicy(DefaultSafetyConfig())
	decision := policy.Evaluate(SafetyInput{
		Text:       "请左转，然后右转进入路口。",
		Source:     "vision_reply",
		Confidence: confPtr(0.95),
		RiskLevel:  "P2",
	})
	assert.True(t, decision.Downgraded)
	assert.Equal(t, "semantic_guard_conflict", decision.Reason)
	assert.Contains(t, decision.Flags, "semantic_guard_conflict")
}

func TestSafetyPolicySemanticGuardDirectionalUnderLowConfidence(t *testing.T) {
	policy := NewSafetyPolicy(DefaultSafetyConfig())
	decision := policy.Evaluate(SafetyInput{
		Text:       "请直行通过。",
		Source:     "vision_reply",
		Confidence: confPtr(0.7), // above low threshold, below directional
		RiskLevel:  "P1",
	})
	assert.True(t, decision.Downgraded)
	assert.Equal(t, "semantic_guard_directional", decision.Reason)

	confident := policy.Evaluate(SafetyInput{
		Text:       "请直行通过。",
		Source:     "vision_reply",
		Confidence: confPtr(0.95),
		RiskLevel:  "P1",
	})
	assert.False(t, confident.Downgraded)
}

func TestSafetyPolicyEmptyOutputFallback(t *testing.T) {
	policy := NewSafetyPolicy(DefaultSafetyConfig())
	decision := policy.Evaluate(SafetyInput{
		Text:      "   ",
		Source:    "vision_reply",
		RiskLevel: "P0",
	})
	assert.True(t, decision.Downgraded)
	assert.Equal(t, "empty_output", decision.Reason)
	assert.Contains(t, decision.Text, "请立即停下")
}

func TestSafetyPolicyNilConfidenceMeansConfident(t *testing.T) {
	policy := NewSafetyPolicy(DefaultSafetyConfig())
	decision := policy.Evaluate(SafetyInput{
		Text:   "前面没有障碍。",
		Source: "vision_reply",
	})
	assert.False(t, decision.Downgraded)
	assert.Equal(t, 1.0, decision.Confidence)
}
