package config

import "time"

// DigitalTaskConfig holds the resolved digital-task service settings.
type DigitalTaskConfig struct {
	DefaultTimeout     time.Duration
	MaxConcurrentTasks int
	StatusRetryCount   int
	StatusRetryBackoff time.Duration
}

// DefaultDigitalTaskConfig returns the built-in task defaults.
func DefaultDigitalTaskConfig() *DigitalTaskConfig {
	return &DigitalTaskConfig{
		DefaultTimeout:     120 * time.Second,
		MaxConcurrentTasks: 2,
		StatusRetryCount:   2,
		StatusRetryBackoff: 300 * time.Millisecond,
	}
}
