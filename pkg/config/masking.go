package config

// MaskingConfig selects which masking patterns scrub lifelog rows and
// thought traces before they reach the store.
type MaskingConfig struct {
	Enabled        bool             `yaml:"enabled"`
	PatternGroups  []string         `yaml:"pattern_groups,omitempty"`
	Patterns       []string         `yaml:"patterns,omitempty"`
	CustomPatterns []MaskingPattern `yaml:"custom_patterns,omitempty"`
}

// MaskingPattern defines a regex-based masking pattern.
type MaskingPattern struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Description string `yaml:"description,omitempty"`
}

// DefaultMaskingConfig returns the built-in masking defaults: on, with the
// security pattern group (tokens, API keys, credentials).
func DefaultMaskingConfig() *MaskingConfig {
	return &MaskingConfig{
		Enabled:       true,
		PatternGroups: []string{"security"},
	}
}
