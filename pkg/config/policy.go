package config

// SafetyConfig holds the resolved safety-gate settings.
type SafetyConfig struct {
	Enabled                        bool
	LowConfidenceThreshold         float64
	MaxOutputChars                 int
	PrependCautionForRisk          bool
	SemanticGuardEnabled           bool
	DirectionalConfidenceThreshold float64
}

// DefaultSafetyConfig returns the built-in safety defaults (gate on).
func DefaultSafetyConfig() *SafetyConfig {
	return &SafetyConfig{
		Enabled:                        true,
		LowConfidenceThreshold:         0.55,
		MaxOutputChars:                 320,
		PrependCautionForRisk:          true,
		SemanticGuardEnabled:           true,
		DirectionalConfidenceThreshold: 0.85,
	}
}

// InteractionConfig holds the resolved interaction-gate settings.
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

// DefaultInteractionConfig returns the built-in interaction defaults.
func DefaultInteractionConfig() *InteractionConfig {
	return &InteractionConfig{
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
