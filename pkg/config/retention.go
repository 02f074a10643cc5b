package config

import "time"

// RetentionConfig controls time-series retention. Cleanup runs as a store
// purge, either once at startup or periodically when Enabled is set;
// operators can also trigger it through the control API.
type RetentionConfig struct {
	// Enabled turns on the periodic cleanup loop.
	Enabled bool

	// Per-kind ages in days; 0 keeps rows forever.
	EventsDays        int
	ImagesDays        int
	TracesDays        int
	TelemetryDays     int
	ObservabilityDays int

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		Enabled:           false,
		EventsDays:        90,
		ImagesDays:        30,
		TracesDays:        30,
		TelemetryDays:     14,
		ObservabilityDays: 14,
		CleanupInterval:   12 * time.Hour,
	}
}
