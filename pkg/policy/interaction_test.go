package policy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteractionPolicyAddsEmotionPrefixForHighRisk(t *testing.T) {
	cfg := DefaultInteractionConfig()
	cfg.ProactiveEnabled = false
	cfg.SilentEnabled = false
	policy := NewInteractionPolicy(cfg, nil)

	decision := policy.Evaluate(InteractionInput{
		Text:       "前方可能有车辆。",
		Source:     "vision_reply",
		Confidence: confPtr(0.92),
		RiskLevel:  "P1",
		Speak:      true,
	})
	assert.True(t, decision.ShouldSpeak)
	assert.True(t, strings.HasPrefix(decision.Text, "请先停下，注意安全。"))
	assert.Contains(t, decision.Flags, "emotion_high_risk_prefix")
}

func TestInteractionPolicyLowConfidencePrefix(t *testing.T) {
	cfg := DefaultInteractionConfig()
	cfg.ProactiveEnabled = false
	cfg.SilentEnabled = false
	policy := NewInteractionPolicy(cfg, nil)

	decision := policy.Evaluate(InteractionInput{
		Text:       "前面似乎是人行道。",
		Source:     "vision_reply",
		Confidence: confPtr(0.2),
		RiskLevel:  "P3",
		Speak:      true,
	})
	assert.True(t, strings.HasPrefix(decision.Text, "我不太确定"))
	assert.Contains(t, decision.Flags, "emotion_low_confidence_prefix")
	// The two emotion prefixes are mutually exclusive.
	assert.NotContains(t, decision.Flags, "emotion_high_risk_prefix")
}

func TestInteractionPolicyAppendsProactiveHint(t *testing.T) {
	cfg := DefaultInteractionConfig()
	cfg.EmotionEnabled = false
	cfg.SilentEnabled = false
	policy := NewInteractionPolicy(cfg, nil)

	decision := policy.Evaluate(InteractionInput{
		Text:       "前方是楼梯口。",
		Source:     "vision_reply",
		Confidence: confPtr(0.9),
		RiskLevel:  "P2",
		Context:    map[string]any{"proactive_hint": "如需我可以继续描述左侧障碍。"},
		Speak:      true,
	})
	assert.True(t, decision.ShouldSpeak)
	assert.Contains(t, decision.Text, "如需我可以继续描述左侧障碍。")
	assert.Contains(t, decision.Flags, "proactive_hint_appended")
}

func TestInteractionPolicySilencesLowPrioritySilentSource(t *testing.T) {
	cfg := DefaultInteractionConfig()
	cfg.EmotionEnabled = false
	cfg.ProactiveEnabled = false
	policy := NewInteractionPolicy(cfg, nil)

	decision := policy.Evaluate(InteractionInput{
		Text:       "任务还在执行中。",
		Source:     "task_update",
		Confidence: confPtr(1.0),
		RiskLevel:  "P3",
		Context:    map[string]any{"priority": "low"},
		Speak:      true,
	})
	assert.False(t, decision.ShouldSpeak)
	assert.Equal(t, "silent_low_priority", decision.Reason)
}

func TestInteractionPolicySilenceInQuietHours(t *testing.T) {
	cfg := DefaultInteractionConfig()
	cfg.EmotionEnabled = false
	cfg.ProactiveEnabled = false
	cfg.QuietHoursEnabled = true
	cfg.QuietHoursStartHour = 23
	cfg.QuietHoursEndHour = 7
	policy := NewInteractionPolicy(cfg, func() int { return 23 })

	decision := policy.Evaluate(InteractionInput{
		Text:       "任务还在执行中。",
		Source:     "task_update",
		Confidence: confPtr(1.0),
		RiskLevel:  "P3",
		Context:    map[string]any{"priority": "normal"},
		Speak:      true,
	})
	assert.False(t, decision.ShouldSpeak)
	assert.Equal(t, "silent_quiet_hours", decision.Reason)

	// High risk still speaks in quiet hours.
	urgent := policy.Evaluate(InteractionInput{
		Text:       "前方有障碍。",
		Source:     "task_update",
		Confidence: confPtr(1.0),
		RiskLevel:  "P0",
		Context:    map[string]any{"priority": "normal"},
		Speak:      true,
	})
	assert.True(t, urgent.ShouldSpeak)

	// Daytime messages pass.
	day := NewInteractionPolicy(cfg, func() int { return 12 })
	decision = day.Evaluate(InteractionInput{
		Text:      "任务还在执行中。",
		Source:    "task_update",
		RiskLevel: "P3",
		Speak:     true,
	})
	assert.True(t, decision.ShouldSpeak)
}

func TestInteractionPolicyDisabledPassthrough(t *testing.T) {
	cfg := DefaultInteractionConfig()
	cfg.Enabled = false
	policy := NewInteractionPolicy(cfg, nil)

	decision := policy.Evaluate(InteractionInput{
		Text:      "前方可能有车辆。",
		Source:    "vision_reply",
		RiskLevel: "P0",
		Speak:     true,
	})
	assert.Equal(t, "disabled", decision.Reason)
	assert.Equal(t, "前方可能有车辆。", decision.Text)
	assert.Empty(t, decision.Flags)
}
