// Package policy implements the runtime output gates: the safety policy
// that rewrites or downgrades risky speech, the interaction policy that
// decides tone and whether to speak at all, and the tool domain manager
// that scopes which tools an agent turn may call.
package policy

import (
	"strings"
)

// Risk bands, highest first.
var riskOrder = map[string]int{
	"P0": 0,
	"P1": 1,
	"P2": 2,
	"P3": 3,
}

var p0Keywords = []string{
	"车流", "来车", "机动车", "高速", "火灾", "煤气", "触电", "深坑", "坠落",
	"gas leak", "fire",
}

var p1Keywords = []string{
	"楼梯", "台阶", "路口", "斑马线", "施工", "障碍", "人群", "路沿",
	"stairs", "crosswalk", "intersection",
}

var p2Keywords = []string{
	"可能", "不确定", "模糊", "大概",
	"perhaps", "uncertain", "maybe",
}

var directionalKeywords = []string{
	"向前", "前进", "直行", "左转", "右转",
	"go straight", "turn left", "turn right",
}

var cautionPrefixes = []string{
	"注意", "小心", "请先停", "先停", "请立即停", "caution", "warning",
}

// SafetyDecision is the outcome for one outbound text.
type SafetyDecision struct {
	Text          string         `json:"text"`
	Source        string         `json:"source"`
	RiskLevel     string         `json:"risk_level"`
	Confidence    float64        `json:"confidence"`
	Downgraded    bool           `json:"downgraded"`
	Reason        string         `json:"reason"`
	Flags         []string       `json:"flags"`
	PolicyVersion string         `json:"policy_version"`
	RuleIDs       []string       `json:"rule_ids"`
	Evidence      map[string]any `json:"evidence"`
}

// SafetyConfig tunes the safety policy. Zero values take the documented
// defaults.
type SafetyConfig struct {
	Enabled                        bool
	LowConfidenceThreshold         float64
	MaxOutputChars                 int
	PrependCautionForRisk          bool
	SemanticGuardEnabled           bool
	DirectionalConfidenceThreshold float64
}

// DefaultSafetyConfig returns the production defaults.
func DefaultSafetyConfig() SafetyConfig {
	return SafetyConfig{
		Enabled:                        true,
		LowConfidenceThreshold:         0.55,
		MaxOutputChars:                 320,
		PrependCautionForRisk:          true,
		SemanticGuardEnabled:           true,
		DirectionalConfidenceThreshold: 0.85,
	}
}

// SafetyPolicy is the rule-based gate for conservative runtime output.
type SafetyPolicy struct {
	cfg SafetyConfig
}

// NewSafetyPolicy clamps the config into valid ranges.
func NewSafetyPolicy(cfg SafetyConfig) *SafetyPolicy {
	cfg.LowConfidenceThreshold = clampConfidence(cfg.LowConfidenceThreshold, 0.55)
	cfg.DirectionalConfidenceThreshold = clampConfidence(cfg.DirectionalConfidenceThreshold, 0.85)
	if cfg.MaxOutputChars < 64 {
		cfg.MaxOutputChars = 64
	}
	return &SafetyPolicy{cfg: cfg}
}

// Enabled reports whether the policy will rewrite text at all.
func (p *SafetyPolicy) Enabled() bool { return p.cfg.Enabled }

// SafetyInput is one outbound text to evaluate. A nil Confidence means the
// producer did not score its output and is treated as fully confident.
type SafetyInput struct {
	Text       string
	Source     string
	Confidence *float64
	RiskLevel  string
	Context    map[string]any
}

// Evaluate applies the safety rules in order: empty-output fallback,
// low-confidence downgrade, caution prefix for P0/P1, semantic guard, then
// length truncation.
func (p *SafetyPolicy) Evaluate(in SafetyInput) SafetyDecision {
	rawText := strings.TrimSpace(in.Text)
	out := rawText
	source := strings.TrimSpace(in.Source)
	if source == "" {
		source = "runtime"
	}
	conf := clampConfidencePtr(in.Confidence, 1.0)
	inferred := p.inferRisk(rawText, in.Context)
	risk := higherRisk(normalizeRisk(in.RiskLevel), inferred)

	var flags, ruleIDs []string
	downgraded := false
	reason := "ok"
	evidence := map[string]any{
		"input_risk_level":    normalizeRisk(in.RiskLevel),
		"inferred_risk_level": inferred,
		"directional":         containsKeyword(rawText, directionalKeywords),
		"conflict_direction":  hasConflictingDirections(rawText),
	}

	apply := func(rule string) {
		flags = append(flags, rule)
		ruleIDs = append(ruleIDs, rule)
	}

	if out == "" {
		out = fallbackMessage(risk)
		apply("empty_output")
		downgraded = true
		reason = "empty_output"
	}

	if p.cfg.Enabled {
		if conf < p.cfg.LowConfidenceThreshold {
			out = fallbackMessage(risk)
			apply("low_confidence")
			downgraded = true
			reason = "low_confidence"
		} else if p.cfg.PrependCautionForRisk && (risk == "P0" || risk == "P1") && out != "" && !hasCautionPrefix(out) {
			out = "注意安全。" + out
			apply("caution_prefix_added")
		}

		if p.cfg.SemanticGuardEnabled && !downgraded {
			switch {
			case hasConflictingDirections(out):
				out = fallbackMessage(risk)
				apply("semantic_guard_conflict")
				downgraded = true
				reason = "semantic_guard_conflict"
			case (risk == "P0" || risk == "P1") &&
				conf < p.cfg.DirectionalConfidenceThreshold &&
				containsKeyword(out, directionalKeywords):
				out = fallbackMessage(risk)
				apply("semantic_guard_directional")
				downgraded = true
				reason = "semantic_guard_directional"
			}
		}
	}

	if runeLen(out) > p.cfg.MaxOutputChars {
		out = shorten(out, p.cfg.MaxOutputChars)
		apply("output_truncated")
	}

	return SafetyDecision{
		Text:          out,
		Source:        source,
		RiskLevel:     risk,
		Confidence:    conf,
		Downgraded:    downgraded,
		Reason:        reason,
		Flags:         flags,
		PolicyVersion: "v1.1",
		RuleIDs:       ruleIDs,
		Evidence:      evidence,
	}
}

// inferRisk escalates the contextual risk level based on keyword classes
// found in the text.
func (p *SafetyPolicy) inferRisk(text string, context map[string]any) string {
	risk := "P3"
	if context != nil {
		if v, ok := context["risk_level"].(string); ok {
			risk = normalizeRisk(v)
		}
	}
	switch {
	case containsKeyword(text, p0Keywords):
		risk = higherRisk(risk, "P0")
	case containsKeyword(text, p1Keywords):
		risk = higherRisk(risk, "P1")
	case containsKeyword(text, p2Keywords):
		risk = higherRisk(risk, "P2")
	}
	return risk
}

func fallbackMessage(riskLevel string) string {
	switch normalizeRisk(riskLevel) {
	case "P0":
		return "我对当前环境判断不够确定。请立即停下，先确认周边安全并寻求附近人员协助。"
	case "P1":
		return "我当前判断不够稳定。请先停下，用盲杖确认前方，再谨慎移动。"
	default:
		return "我现在不够确定。请先停下并确认周边环境安全。"
	}
}

func normalizeRisk(value string) string {
	text := strings.ToUpper(strings.TrimSpace(value))
	if _, ok := riskOrder[text]; ok {
		return text
	}
	return "P3"
}

func higherRisk(left, right string) string {
	if riskOrder[left] <= riskOrder[right] {
		return left
	}
	return right
}

func clampConfidence(value, fallback float64) float64 {
	if value == 0 {
		value = fallback
	}
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

func clampConfidencePtr(value *float64, fallback float64) float64 {
	if value == nil {
		return fallback
	}
	v := *value
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func containsKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(text, kw) || strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func hasConflictingDirections(text string) bool {
	lower := strings.ToLower(text)
	hasLeft := strings.Contains(text, "左转") || strings.Contains(lower, "turn left")
	hasRight := strings.Contains(text, "右转") || strings.Contains(lower, "turn right")
	return hasLeft && hasRight
}

func hasCautionPrefix(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range cautionPrefixes {
		if strings.HasPrefix(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

func runeLen(text string) int {
	return len([]rune(text))
}

// shorten truncates to maxChars runes with a trailing ellipsis.
func shorten(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return strings.TrimRight(string(runes[:maxChars-3]), " \t") + "..."
}
