package lifelog

import (
	"context"
	"strings"
)

// AnalyzeRequest carries one decoded image to the vision analyzer.
type AnalyzeRequest struct {
	SessionID  string
	ImageBytes []byte
	MIME       string
	Question   string
}

// Analyzer produces a structured description of one image. Implementations
// typically call a multimodal model; the pipeline tolerates missing or
// loosely typed fields in the returned map.
type Analyzer interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (map[string]any, error)
}

// Analysis is the normalized analyzer output persisted as a context row.
type Analysis struct {
	Summary           string
	Objects           []string
	OCR               []string
	RiskHints         []string
	ActionableSummary string
	RiskLevel         string
	RiskScore         float64
	Confidence        float64
}

// normalizeAnalysis merges a raw analyzer payload over the defaults,
// coercing loosely typed fields into the shapes the store expects.
func normalizeAnalysis(raw map[string]any, defaults Analysis) Analysis {
	out := defaults
	if raw == nil {
		return out
	}
	if summary := strings.TrimSpace(asString(raw["summary"])); summary != "" {
		out.Summary = summary
	}
	if items := normalizeObjectItems(raw["objects"]); items != nil {
		out.Objects = items
	}
	if items := normalizeOCRItems(raw["ocr"]); items != nil {
		out.OCR = items
	}
	if items := normalizeStringItems(raw["risk_hints"]); items != nil {
		out.RiskHints = items
	}
	if v := strings.TrimSpace(asString(raw["actionable_summary"])); v != "" {
		out.ActionableSummary = v
	}
	if v := strings.TrimSpace(asString(raw["risk_level"])); v != "" {
		out.RiskLevel = v
	}
	if v, ok := asFloat(raw["risk_score"]); ok {
		out.RiskScore = v
	}
	if v, ok := asFloat(raw["confidence"]); ok {
		out.Confidence = v
	}
	return out
}

// normalizeObjectItems accepts plain strings or analyzer object records
// keyed by label/name.
func normalizeObjectItems(value any) []string {
	return normalizeItems(value, "label", "name")
}

// normalizeOCRItems accepts plain strings or analyzer OCR records keyed by
// text.
func normalizeOCRItems(value any) []string {
	return normalizeItems(value, "text", "value")
}

func normalizeStringItems(value any) []string {
	return normalizeItems(value)
}

func normalizeItems(value any, keys ...string) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if text := strings.TrimSpace(v); text != "" {
				out = append(out, text)
			}
		case map[string]any:
			for _, key := range keys {
				if text := strings.TrimSpace(asString(v[key])); text != "" {
					out = append(out, text)
					break
				}
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func asString(value any) string {
	s, _ := value.(string)
	return s
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
