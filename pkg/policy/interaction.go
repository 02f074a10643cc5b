package policy

import (
	"strings"
	"time"
)

var highRiskSpeechPrefixes = []string{"注意", "小心", "请先停", "warning", "caution"}

var lowConfidenceSpeechPrefixes = []string{"我不太确定", "不太确定", "i may be wrong", "not fully sure"}

// InteractionDecision is the interaction policy outcome for one outbound
// message.
type InteractionDecision struct {
	Text          string   `json:"text"`
	ShouldSpeak   bool     `json:"should_speak"`
	Source        string   `json:"source"`
	RiskLevel     string   `json:"risk_level"`
	Confidence    float64  `json:"confidence"`
	Reason        string   `json:"reason"`
	Flags         []string `json:"flags"`
	PolicyVersion string   `json:"policy_version"`
}

// InteractionConfig tunes tone, proactive hints, and silence control.
type InteractionConfig struct {
	Enabled                         bool
	EmotionEnabled                  bool
	ProactiveEnabled                bool
	SilentEnabled                   bool
	LowConfidenceThreshold          float64
	HighRiskLevels                  []string
	ProactiveSources                []string
	SilentSources                   []string
	QuietHoursEnabled               bool
	QuietHoursStartHour             int
	QuietHoursEndHour               int
	SuppressLowPriorityInQuietHours bool
}

// DefaultInteractionConfig returns the production defaults.
func DefaultInteractionConfig() InteractionConfig {
	return InteractionConfig{
		Enabled:                         true,
		EmotionEnabled:                  true,
		ProactiveEnabled:                true,
		SilentEnabled:                   true,
		LowConfidenceThreshold:          0.45,
		HighRiskLevels:                  []string{"P0", "P1"},
		ProactiveSources:                []string{"vision_reply"},
		SilentSources:                   []string{"task_update"},
		QuietHoursEnabled:               false,
		QuietHoursStartHour:             23,
		QuietHoursEndHour:               7,
		SuppressLowPriorityInQuietHours: true,
	}
}

// InteractionPolicy decides emotion tone, proactive hints, and whether a
// message should be spoken at all.
type InteractionPolicy struct {
	cfg              InteractionConfig
	highRiskLevels   map[string]bool
	proactiveSources map[string]bool
	silentSources    map[string]bool
	currentHour      func() int
}

// NewInteractionPolicy builds the lookup sets. currentHour may be nil and
// defaults to the local clock; tests inject a fixed hour.
func NewInteractionPolicy(cfg InteractionConfig, currentHour func() int) *InteractionPolicy {
	cfg.LowConfidenceThreshold = clampConfidence(cfg.LowConfidenceThreshold, 0.45)
	cfg.QuietHoursStartHour = ((cfg.QuietHoursStartHour % 24) + 24) % 24
	cfg.QuietHoursEndHour = ((cfg.QuietHoursEndHour % 24) + 24) % 24
	if currentHour == nil {
		currentHour = func() int { return time.Now().Hour() }
	}

	highRisk := make(map[string]bool)
	for _, level := range cfg.HighRiskLevels {
		v := strings.ToUpper(strings.TrimSpace(level))
		if _, ok := riskOrder[v]; ok {
			highRisk[v] = true
		}
	}
	return &InteractionPolicy{
		cfg:              cfg,
		highRiskLevels:   highRisk,
		proactiveSources: lowerSet(cfg.ProactiveSources),
		silentSources:    lowerSet(cfg.SilentSources),
		currentHour:      currentHour,
	}
}

// Enabled reports whether the policy shapes output at all.
func (p *InteractionPolicy) Enabled() bool { return p.cfg.Enabled }

// InteractionInput is one outbound message to evaluate.
type InteractionInput struct {
	Text       string
	Source     string
	Confidence *float64
	RiskLevel  string
	Context    map[string]any
	Speak      bool
}

// Evaluate applies silence control first, then the mutually exclusive
// emotion prefixes, then the proactive hint.
func (p *InteractionPolicy) Evaluate(in InteractionInput) InteractionDecision {
	out := strings.TrimSpace(in.Text)
	source := strings.TrimSpace(in.Source)
	if source == "" {
		source = "runtime"
	}
	sourceLower := strings.ToLower(source)
	conf := clampConfidencePtr(in.Confidence, 1.0)
	risk := normalizeRisk(in.RiskLevel)
	shouldSpeak := in.Speak
	reason := "ok"
	var flags []string

	if !p.cfg.Enabled {
		return InteractionDecision{
			Text: out, ShouldSpeak: shouldSpeak, Source: source,
			RiskLevel: risk, Confidence: conf, Reason: "disabled",
			PolicyVersion: "v1.0",
		}
	}

	if p.cfg.SilentEnabled && shouldSpeak {
		priority := ""
		if in.Context != nil {
			if v, ok := in.Context["priority"].(string); ok {
				priority = strings.ToLower(strings.TrimSpace(v))
			}
		}
		switch {
		case p.silentSources[sourceLower] && priority == "low":
			shouldSpeak = false
			reason = "silent_low_priority"
			flags = append(flags, "silent_low_priority")
		case p.cfg.QuietHoursEnabled &&
			p.cfg.SuppressLowPriorityInQuietHours &&
			p.inQuietHours() &&
			p.silentSources[sourceLower] &&
			(priority == "" || priority == "low" || priority == "normal") &&
			!p.highRiskLevels[risk]:
			shouldSpeak = false
			reason = "silent_quiet_hours"
			flags = append(flags, "silent_quiet_hours")
		}
	}

	if out != "" && p.cfg.EmotionEnabled {
		if p.highRiskLevels[risk] && !startsWithAny(out, highRiskSpeechPrefixes) {
			out = "请先停下，注意安全。" + out
			flags = append(flags, "emotion_high_risk_prefix")
		} else if conf < p.cfg.LowConfidenceThreshold && !startsWithAny(out, lowConfidenceSpeechPrefixes) {
			out = "我不太确定，建议先确认周边环境。" + out
			flags = append(flags, "emotion_low_confidence_prefix")
		}
	}

	if out != "" && p.cfg.ProactiveEnabled && p.proactiveSources[sourceLower] {
		hint := ""
		if in.Context != nil {
			if v, ok := in.Context["proactive_hint"].(string); ok {
				hint = strings.TrimSpace(v)
			}
		}
		if hint != "" {
			out = out + " " + shorten(hint, 72)
			flags = append(flags, "proactive_hint_appended")
		}
	}

	return InteractionDecision{
		Text:          out,
		ShouldSpeak:   shouldSpeak,
		Source:        source,
		RiskLevel:     risk,
		Confidence:    conf,
		Reason:        reason,
		Flags:         flags,
		PolicyVersion: "v1.0",
	}
}

func (p *InteractionPolicy) inQuietHours() bool {
	start := p.cfg.QuietHoursStartHour
	end := p.cfg.QuietHoursEndHour
	now := p.currentHour() % 24
	if start == end {
		return true
	}
	if start < end {
		return start <= now && now < end
	}
	return now >= start || now < end
}

func lowerSet(items []string) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, item := range items {
		if v := strings.ToLower(strings.TrimSpace(item)); v != "" {
			out[v] = true
		}
	}
	return out
}

func startsWithAny(text string, prefixes []string) bool {
	lower := strings.ToLower(text)
	for _, p := range prefixes {
		if strings.HasPrefix(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
