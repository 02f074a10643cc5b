package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig returns a fully resolved config that passes validation.
func validTestConfig(t *testing.T) *Config {
	t.Helper()
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	return &Config{
		Hardware:    DefaultHardwareConfig(),
		Safety:      DefaultSafetyConfig(),
		Interaction: DefaultInteractionConfig(),
		Lifelog:     DefaultLifelogConfig(),
		DigitalTask: DefaultDigitalTaskConfig(),
		LLM:         DefaultLLMConfig(),
		Masking:     DefaultMaskingConfig(),
		Retention:   DefaultRetentionConfig(),
		MCPServers:  map[string]*MCPServerConfig{},
	}
}

func TestValidateAllDefaults(t *testing.T) {
	cfg := validTestConfig(t)
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateHardware(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*HardwareConfig)
		wantErr string
	}{
		{
			name:    "unknown adapter",
			mutate:  func(hw *HardwareConfig) { hw.Adapter = "smoke_signals" },
			wantErr: "unknown adapter kind",
		},
		{
			name:    "unresolved profile alias",
			mutate:  func(hw *HardwareConfig) { hw.Adapter = AdapterEC600 },
			wantErr: "profile alias",
		},
		{
			name:    "unknown tts mode",
			mutate:  func(hw *HardwareConfig) { hw.TTSMode = "morse" },
			wantErr: "unknown tts mode",
		},
		{
			name:    "tiny audio chunks",
			mutate:  func(hw *HardwareConfig) { hw.TTSAudioChunkBytes = 100 },
			wantErr: "tts_audio_chunk_bytes",
		},
		{
			name:    "bad port",
			mutate:  func(hw *HardwareConfig) { hw.Port = 0 },
			wantErr: "port",
		},
		{
			name: "control port collides with ws listener",
			mutate: func(hw *HardwareConfig) {
				hw.Adapter = AdapterWebSocket
				hw.ControlPort = hw.Port
			},
			wantErr: "control_port",
		},
		{
			name:    "heartbeat below floor",
			mutate:  func(hw *HardwareConfig) { hw.HeartbeatSeconds = 5 },
			wantErr: "heartbeat_seconds",
		},
		{
			name:    "auth enabled without token",
			mutate:  func(hw *HardwareConfig) { hw.Auth.Enabled = true },
			wantErr: "auth.token",
		},
		{
			name: "rate limit without rpm",
			mutate: func(hw *HardwareConfig) {
				hw.Auth.ControlAPIRateLimit = RateLimitConfig{Enabled: true, Burst: 5}
			},
			wantErr: "rpm",
		},
		{
			name: "replay protection without window",
			mutate: func(hw *HardwareConfig) {
				hw.Auth.ControlAPIReplayProtection = ReplayProtectionConfig{Enabled: true}
			},
			wantErr: "window_seconds",
		},
		{
			name: "mqtt qos out of range",
			mutate: func(hw *HardwareConfig) {
				hw.Adapter = AdapterMQTT
				hw.MQTT.QoSControl = 3
			},
			wantErr: "qos_control",
		},
		{
			name:    "control plane without base url",
			mutate:  func(hw *HardwareConfig) { hw.ControlPlane.Enabled = true },
			wantErr: "control_plane.base_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig(t)
			tt.mutate(cfg.Hardware)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateSafety(t *testing.T) {
	cfg := validTestConfig(t)
	cfg.Safety.LowConfidenceThreshold = 1.5
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "low_confidence_threshold")

	cfg = validTestConfig(t)
	cfg.Safety.MaxOutputChars = 10
	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_output_chars")
}

func TestValidateInteraction(t *testing.T) {
	cfg := validTestConfig(t)
	cfg.Interaction.HighRiskLevels = []string{"P0", "P9"}
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "P9")

	cfg = validTestConfig(t)
	cfg.Interaction.QuietHoursStartHour = 24
	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quiet_hours_start_hour")
}

func TestValidateLifelog(t *testing.T) {
	cfg := validTestConfig(t)
	cfg.Lifelog.VectorBackend = "chalkboard"
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vector_backend")

	cfg = validTestConfig(t)
	cfg.Lifelog.VectorBackend = VectorRedis
	cfg.Lifelog.Redis.Addr = ""
	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis.addr")

	cfg = validTestConfig(t)
	cfg.Lifelog.IngestOverflowPolicy = "explode"
	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ingest_overflow_policy")

	cfg = validTestConfig(t)
	cfg.Lifelog.DedupMaxDistance = 65
	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dedup_max_distance")
}

func TestValidateLLM(t *testing.T) {
	cfg := validTestConfig(t)
	cfg.LLM.APIKeyEnv = "EDGED_TEST_UNSET_KEY"
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EDGED_TEST_UNSET_KEY")

	cfg = validTestConfig(t)
	cfg.LLM.Temperature = 1.2
	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temperature")
}

func TestValidateMasking(t *testing.T) {
	cfg := validTestConfig(t)
	cfg.Masking.PatternGroups = []string{"nonexistent_group"}
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent_group")

	cfg = validTestConfig(t)
	cfg.Masking.Patterns = []string{"nonexistent_pattern"}
	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent_pattern")

	cfg = validTestConfig(t)
	cfg.Masking.CustomPatterns = []MaskingPattern{{Pattern: "(unclosed", Replacement: "x"}}
	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not compile")

	// Disabled masking skips pattern checks entirely
	cfg = validTestConfig(t)
	cfg.Masking.Enabled = false
	cfg.Masking.PatternGroups = []string{"nonexistent_group"}
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateRetention(t *testing.T) {
	cfg := validTestConfig(t)
	cfg.Retention.ImagesDays = -1
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "images_days")

	cfg = validTestConfig(t)
	cfg.Retention.Enabled = true
	cfg.Retention.CleanupInterval = 0
	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cleanup_interval")
}

func TestValidateMCPServers(t *testing.T) {
	cfg := validTestConfig(t)
	cfg.MCPServers["bad"] = &MCPServerConfig{
		Transport: TransportConfig{Type: "telnet"},
	}
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid transport type")

	cfg = validTestConfig(t)
	cfg.MCPServers["stdio-no-cmd"] = &MCPServerConfig{
		Transport: TransportConfig{Type: MCPTransportStdio},
	}
	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command required")

	cfg = validTestConfig(t)
	cfg.MCPServers["http-no-url"] = &MCPServerConfig{
		Transport: TransportConfig{Type: MCPTransportHTTP},
	}
	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "url required")
}
