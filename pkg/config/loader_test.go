package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	configDir := setupTestConfigDir(t)
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Every section resolves even when the YAML only sets hardware
	assert.NotNil(t, cfg.Hardware)
	assert.NotNil(t, cfg.Safety)
	assert.NotNil(t, cfg.Interaction)
	assert.NotNil(t, cfg.Lifelog)
	assert.NotNil(t, cfg.DigitalTask)
	assert.NotNil(t, cfg.LLM)
	assert.NotNil(t, cfg.Masking)
	assert.NotNil(t, cfg.Retention)

	assert.Equal(t, AdapterMock, cfg.Hardware.Adapter)
	assert.Equal(t, configDir, cfg.ConfigDir())

	stats := cfg.Stats()
	assert.Equal(t, "mock", stats.Adapter)
	assert.Equal(t, "device_text", stats.TTSMode)
	assert.Equal(t, "memory", stats.VectorBackend)
}

func TestInitializeConfigNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := Initialize(ctx, "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()

	err := os.WriteFile(filepath.Join(configDir, "edged.yaml"), []byte(`{{{`), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := t.TempDir()

	invalidConfig := `
hardware:
  adapter: "carrier_pigeon"
`
	err := os.WriteFile(filepath.Join(configDir, "edged.yaml"), []byte(invalidConfig), 0644)
	require.NoError(t, err)
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "carrier_pigeon")
}

func TestResolveHardwareDefaults(t *testing.T) {
	cfg := resolveHardwareConfig(nil)

	assert.True(t, cfg.Enabled)
	assert.Equal(t, AdapterMock, cfg.Adapter)
	assert.Equal(t, TTSDeviceText, cfg.TTSMode)
	assert.Equal(t, 1600, cfg.TTSAudioChunkBytes)
	assert.Equal(t, 60, cfg.HeartbeatSeconds)
	assert.Equal(t, byte(0xA1), cfg.PacketMagic)
	assert.True(t, cfg.Audio.EnableVAD)
	assert.Equal(t, 3, cfg.Audio.PrebufferChunks)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, 600, cfg.Auth.ControlAPIRateLimit.RPM)
	assert.Equal(t, "device/+/up/control", cfg.MQTT.UpControlTopic)
}

func TestResolveHardwareProfileAlias(t *testing.T) {
	cfg := resolveHardwareConfig(&HardwareYAMLConfig{Adapter: "ec600"})

	assert.Equal(t, AdapterMQTT, cfg.Adapter)
	assert.Equal(t, "ec600", cfg.DeviceProfile)

	// An explicit profile is kept even under an alias adapter
	cfg = resolveHardwareConfig(&HardwareYAMLConfig{
		Adapter:       "generic_mqtt",
		DeviceProfile: "ec600",
	})
	assert.Equal(t, AdapterMQTT, cfg.Adapter)
	assert.Equal(t, "ec600", cfg.DeviceProfile)
}

func TestResolveHardwareNetworkProfile(t *testing.T) {
	cfg := resolveHardwareConfig(&HardwareYAMLConfig{NetworkProfile: "cellular"})
	assert.Equal(t, 800, cfg.TTSAudioChunkBytes)

	// Explicit chunk size wins over the network profile
	cfg = resolveHardwareConfig(&HardwareYAMLConfig{
		NetworkProfile:     "cellular",
		TTSAudioChunkBytes: 1200,
	})
	assert.Equal(t, 1200, cfg.TTSAudioChunkBytes)
}

func TestResolveHardwareExplicitFalseOverridesDefault(t *testing.T) {
	enabled := false
	vad := false
	cfg := resolveHardwareConfig(&HardwareYAMLConfig{
		Enabled: &enabled,
		Audio:   &AudioYAMLConfig{EnableVAD: &vad},
	})

	assert.False(t, cfg.Enabled)
	assert.False(t, cfg.Audio.EnableVAD)
}

func TestResolveMQTTQoSZero(t *testing.T) {
	qos := 0
	cfg := resolveHardwareConfig(&HardwareYAMLConfig{
		Adapter: "mqtt",
		MQTT:    &MQTTYAMLConfig{QoSControl: &qos},
	})

	assert.Equal(t, 0, cfg.MQTT.QoSControl)
	assert.Equal(t, 0, cfg.MQTT.QoSAudio)
}

func TestResolveSafetyExplicitZeroThreshold(t *testing.T) {
	zero := 0.0
	cfg := resolveSafetyConfig(&SafetyYAMLConfig{LowConfidenceThreshold: &zero})
	assert.Equal(t, 0.0, cfg.LowConfidenceThreshold)

	cfg = resolveSafetyConfig(nil)
	assert.Equal(t, 0.55, cfg.LowConfidenceThreshold)
	assert.True(t, cfg.Enabled)
}

func TestResolveLifelogDedupZero(t *testing.T) {
	zero := 0
	cfg := resolveLifelogConfig(&LifelogYAMLConfig{DedupMaxDistance: &zero})
	assert.Equal(t, 0, cfg.DedupMaxDistance)

	cfg = resolveLifelogConfig(nil)
	assert.Equal(t, 3, cfg.DedupMaxDistance)
	assert.Equal(t, 2*time.Second, cfg.IngestEnqueueTimeout)
}

func TestResolveDigitalTask(t *testing.T) {
	cfg := resolveDigitalTaskConfig(&DigitalTaskYAMLConfig{
		DefaultTimeoutSeconds: 30,
		StatusRetryBackoffMS:  150,
	})

	assert.Equal(t, 30*time.Second, cfg.DefaultTimeout)
	assert.Equal(t, 150*time.Millisecond, cfg.StatusRetryBackoff)
	assert.Equal(t, 2, cfg.StatusRetryCount)

	zero := 0
	cfg = resolveDigitalTaskConfig(&DigitalTaskYAMLConfig{StatusRetryCount: &zero})
	assert.Equal(t, 0, cfg.StatusRetryCount)
}

func TestResolveLLMVisionModel(t *testing.T) {
	cfg := resolveLLMConfig(nil)
	assert.Equal(t, cfg.Model, cfg.VisionModel)

	cfg = resolveLLMConfig(&LLMConfig{Model: "claude-opus-4-1"})
	assert.Equal(t, "claude-opus-4-1", cfg.VisionModel)

	cfg = resolveLLMConfig(&LLMConfig{Model: "claude-opus-4-1", VisionModel: "claude-sonnet-4-5"})
	assert.Equal(t, "claude-sonnet-4-5", cfg.VisionModel)
}

func TestResolveRetention(t *testing.T) {
	cfg := resolveRetentionConfig(nil)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 90, cfg.EventsDays)
	assert.Equal(t, 12*time.Hour, cfg.CleanupInterval)

	keep := 0
	cfg = resolveRetentionConfig(&RetentionYAMLConfig{
		Enabled:         true,
		EventsDays:      &keep,
		CleanupInterval: "1h",
	})
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 0, cfg.EventsDays)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)

	// A malformed interval falls back to the default
	cfg = resolveRetentionConfig(&RetentionYAMLConfig{CleanupInterval: "soon"})
	assert.Equal(t, 12*time.Hour, cfg.CleanupInterval)
}

func TestEnvironmentVariableInterpolationInConfig(t *testing.T) {
	configDir := t.TempDir()

	config := `
hardware:
  adapter: mock
  auth:
    enabled: true
    token: "{{.EDGED_SHARED_TOKEN}}"
mcp_servers:
  web:
    transport:
      type: "stdio"
      command: "{{.TEST_COMMAND}}"
`
	err := os.WriteFile(filepath.Join(configDir, "edged.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	t.Setenv("EDGED_SHARED_TOKEN", "sekrit")
	t.Setenv("TEST_COMMAND", "test-cmd")
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.Equal(t, "sekrit", cfg.Hardware.Auth.Token)
	server, err := cfg.GetMCPServer("web")
	require.NoError(t, err)
	assert.Equal(t, "test-cmd", server.Transport.Command)
}

func TestGetMCPServerNotFound(t *testing.T) {
	cfg := &Config{MCPServers: map[string]*MCPServerConfig{}}
	_, err := cfg.GetMCPServer("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMCPServerNotFound)
}

// Helper function to set up test config directory
func setupTestConfigDir(t *testing.T) string {
	dir := t.TempDir()

	edgedYAML := `
hardware:
  adapter: mock
`
	err := os.WriteFile(filepath.Join(dir, "edged.yaml"), []byte(edgedYAML), 0644)
	require.NoError(t, err)

	return dir
}
