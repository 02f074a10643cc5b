package masking

import (
	"log/slog"

	"github.com/opencane/edged/pkg/config"
)

// Service applies data masking to lifelog payloads, transcripts, and thought
// traces before they reach durable rows. Created once at application startup
// (singleton). Thread-safe and stateless aside from compiled patterns.
type Service struct {
	enabled  bool
	patterns []*CompiledPattern
}

// NewService creates a masking service with eagerly compiled patterns.
// Invalid patterns are logged and skipped. A nil or disabled config yields
// a passthrough service.
func NewService(cfg *config.MaskingConfig) *Service {
	if cfg == nil || !cfg.Enabled {
		slog.Info("Masking service disabled, payloads stored unmodified")
		return &Service{}
	}

	s := &Service{
		enabled:  true,
		patterns: compilePatterns(cfg),
	}

	slog.Info("Masking service initialized",
		"builtin_patterns", len(config.GetBuiltinConfig().MaskingPatterns),
		"compiled_patterns", len(s.patterns))

	return s
}

// MaskText applies every compiled pattern to text in order.
func (s *Service) MaskText(text string) string {
	if !s.enabled || text == "" {
		return text
	}
	for _, pattern := range s.patterns {
		text = pattern.Regex.ReplaceAllString(text, pattern.Replacement)
	}
	return text
}

// MaskMap returns a copy of m with every string value masked, recursing into
// nested maps and slices. Non-string scalars pass through unchanged; the
// input map is never mutated.
func (s *Service) MaskMap(m map[string]any) map[string]any {
	if !s.enabled || m == nil {
		return m
	}
	return s.maskMap(m)
}

func (s *Service) maskMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = s.maskValue(v)
	}
	return out
}

func (s *Service) maskValue(v any) any {
	switch tv := v.(type) {
	case string:
		return s.MaskText(tv)
	case map[string]any:
		return s.maskMap(tv)
	case []any:
		out := make([]any, len(tv))
		for i, item := range tv {
			out[i] = s.maskValue(item)
		}
		return out
	default:
		return v
	}
}
