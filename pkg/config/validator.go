package config

import (
	"fmt"
	"os"
	"regexp"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateHardware(); err != nil {
		return fmt.Errorf("hardware validation failed: %w", err)
	}

	if err := v.validateSafety(); err != nil {
		return fmt.Errorf("safety validation failed: %w", err)
	}

	if err := v.validateInteraction(); err != nil {
		return fmt.Errorf("interaction validation failed: %w", err)
	}

	if err := v.validateLifelog(); err != nil {
		return fmt.Errorf("lifelog validation failed: %w", err)
	}

	if err := v.validateDigitalTask(); err != nil {
		return fmt.Errorf("digital task validation failed: %w", err)
	}

	if err := v.validateLLM(); err != nil {
		return fmt.Errorf("LLM validation failed: %w", err)
	}

	if err := v.validateMasking(); err != nil {
		return fmt.Errorf("masking validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	if err := v.validateMCPServers(); err != nil {
		return fmt.Errorf("MCP server validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateHardware() error {
	hw := v.cfg.Hardware

	if !hw.Adapter.IsValid() {
		return NewValidationError("hardware", "", "adapter", fmt.Errorf("unknown adapter kind: %s", hw.Adapter))
	}
	if hw.Adapter.IsProfileAlias() {
		return NewValidationError("hardware", "", "adapter", fmt.Errorf("profile alias %s must resolve to mqtt before validation", hw.Adapter))
	}

	if !hw.TTSMode.IsValid() {
		return NewValidationError("hardware", "", "tts_mode", fmt.Errorf("unknown tts mode: %s", hw.TTSMode))
	}
	if hw.TTSAudioChunkBytes < 256 {
		return NewValidationError("hardware", "", "tts_audio_chunk_bytes", fmt.Errorf("must be at least 256"))
	}

	if hw.Port < 1 || hw.Port > 65535 {
		return NewValidationError("hardware", "", "port", fmt.Errorf("must be in 1..65535"))
	}
	if hw.ControlPort < 1 || hw.ControlPort > 65535 {
		return NewValidationError("hardware", "", "control_port", fmt.Errorf("must be in 1..65535"))
	}
	if hw.ControlPort == hw.Port && hw.Adapter == AdapterWebSocket {
		return NewValidationError("hardware", "", "control_port", fmt.Errorf("must differ from the device listener port"))
	}

	if hw.HeartbeatSeconds < 10 {
		return NewValidationError("hardware", "", "heartbeat_seconds", fmt.Errorf("must be at least 10"))
	}

	if hw.Auth.Enabled && hw.Auth.Token == "" {
		return NewValidationError("hardware", "", "auth.token", fmt.Errorf("required when auth is enabled"))
	}
	if rl := hw.Auth.ControlAPIRateLimit; rl.Enabled {
		if rl.RPM < 1 {
			return NewValidationError("hardware", "", "auth.control_api_rate_limit.rpm", fmt.Errorf("must be at least 1"))
		}
		if rl.Burst < 1 {
			return NewValidationError("hardware", "", "auth.control_api_rate_limit.burst", fmt.Errorf("must be at least 1"))
		}
	}
	if rp := hw.Auth.ControlAPIReplayProtection; rp.Enabled && rp.WindowSeconds < 1 {
		return NewValidationError("hardware", "", "auth.control_api_replay_protection.window_seconds", fmt.Errorf("must be at least 1"))
	}

	if hw.Adapter == AdapterMQTT {
		if hw.MQTT.QoSControl < 0 || hw.MQTT.QoSControl > 2 {
			return NewValidationError("hardware", "", "mqtt.qos_control", fmt.Errorf("must be in 0..2"))
		}
		if hw.MQTT.QoSAudio < 0 || hw.MQTT.QoSAudio > 2 {
			return NewValidationError("hardware", "", "mqtt.qos_audio", fmt.Errorf("must be in 0..2"))
		}
	}

	if hw.ControlPlane.Enabled && hw.ControlPlane.BaseURL == "" {
		return NewValidationError("hardware", "", "control_plane.base_url", fmt.Errorf("required when control plane is enabled"))
	}

	return nil
}

func (v *ConfigValidator) validateSafety() error {
	s := v.cfg.Safety

	if s.LowConfidenceThreshold < 0 || s.LowConfidenceThreshold > 1 {
		return NewValidationError("safety", "", "low_confidence_threshold", fmt.Errorf("must be in 0..1"))
	}
	if s.DirectionalConfidenceThreshold < 0 || s.DirectionalConfidenceThreshold > 1 {
		return NewValidationError("safety", "", "directional_confidence_threshold", fmt.Errorf("must be in 0..1"))
	}
	if s.MaxOutputChars < 64 {
		return NewValidationError("safety", "", "max_output_chars", fmt.Errorf("must be at least 64"))
	}

	return nil
}

func (v *ConfigValidator) validateInteraction() error {
	in := v.cfg.Interaction

	if in.LowConfidenceThreshold < 0 || in.LowConfidenceThreshold > 1 {
		return NewValidationError("interaction", "", "low_confidence_threshold", fmt.Errorf("must be in 0..1"))
	}
	for _, level := range in.HighRiskLevels {
		switch level {
		case "P0", "P1", "P2", "P3":
		default:
			return NewValidationError("interaction", "", "high_risk_levels", fmt.Errorf("unknown risk level: %s", level))
		}
	}
	if in.QuietHoursStartHour < 0 || in.QuietHoursStartHour > 23 {
		return NewValidationError("interaction", "", "quiet_hours_start_hour", fmt.Errorf("must be in 0..23"))
	}
	if in.QuietHoursEndHour < 0 || in.QuietHoursEndHour > 23 {
		return NewValidationError("interaction", "", "quiet_hours_end_hour", fmt.Errorf("must be in 0..23"))
	}

	return nil
}

func (v *ConfigValidator) validateLifelog() error {
	ll := v.cfg.Lifelog

	if !ll.VectorBackend.IsValid() {
		return NewValidationError("lifelog", "", "vector_backend", fmt.Errorf("unknown vector backend: %s", ll.VectorBackend))
	}
	if ll.VectorBackend == VectorRedis && ll.Redis.Addr == "" {
		return NewValidationError("lifelog", "", "redis.addr", fmt.Errorf("required for the redis vector backend"))
	}
	if !ll.IngestOverflowPolicy.IsValid() {
		return NewValidationError("lifelog", "", "ingest_overflow_policy", fmt.Errorf("unknown overflow policy: %s", ll.IngestOverflowPolicy))
	}
	if ll.DedupMaxDistance < 0 || ll.DedupMaxDistance > 64 {
		return NewValidationError("lifelog", "", "dedup_max_distance", fmt.Errorf("must be in 0..64"))
	}
	if ll.Redis.DB < 0 {
		return NewValidationError("lifelog", "", "redis.db", fmt.Errorf("must not be negative"))
	}

	return nil
}

func (v *ConfigValidator) validateDigitalTask() error {
	dt := v.cfg.DigitalTask

	if dt.StatusRetryCount < 0 {
		return NewValidationError("digital_task", "", "status_retry_count", fmt.Errorf("must not be negative"))
	}

	return nil
}

func (v *ConfigValidator) validateLLM() error {
	llm := v.cfg.LLM

	if llm.Model == "" {
		return NewValidationError("llm", "", "model", fmt.Errorf("model required"))
	}
	if llm.Temperature < 0 || llm.Temperature > 1 {
		return NewValidationError("llm", "", "temperature", fmt.Errorf("must be in 0..1"))
	}

	// Validate API key environment variable is set (if specified)
	if llm.APIKeyEnv != "" {
		if value := os.Getenv(llm.APIKeyEnv); value == "" {
			return NewValidationError("llm", "", "api_key_env", fmt.Errorf("environment variable %s is not set", llm.APIKeyEnv))
		}
	}

	return nil
}

func (v *ConfigValidator) validateMasking() error {
	m := v.cfg.Masking
	if !m.Enabled {
		return nil
	}

	builtin := GetBuiltinConfig()

	// Validate pattern groups reference built-in groups
	for _, groupName := range m.PatternGroups {
		if _, exists := builtin.PatternGroups[groupName]; !exists {
			return NewValidationError("masking", "", "pattern_groups", fmt.Errorf("pattern group '%s' not found", groupName))
		}
	}

	// Validate individual patterns reference built-in patterns
	for _, patternName := range m.Patterns {
		if _, exists := builtin.MaskingPatterns[patternName]; !exists {
			return NewValidationError("masking", "", "patterns", fmt.Errorf("pattern '%s' not found", patternName))
		}
	}

	// Validate custom patterns have required fields and compile
	for i, pattern := range m.CustomPatterns {
		if pattern.Pattern == "" {
			return NewValidationError("masking", "", fmt.Sprintf("custom_patterns[%d].pattern", i), fmt.Errorf("pattern required"))
		}
		if pattern.Replacement == "" {
			return NewValidationError("masking", "", fmt.Sprintf("custom_patterns[%d].replacement", i), fmt.Errorf("replacement required"))
		}
		if _, err := regexp.Compile(pattern.Pattern); err != nil {
			return NewValidationError("masking", "", fmt.Sprintf("custom_patterns[%d].pattern", i), fmt.Errorf("does not compile: %v", err))
		}
	}

	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention

	for field, days := range map[string]int{
		"events_days":        r.EventsDays,
		"images_days":        r.ImagesDays,
		"traces_days":        r.TracesDays,
		"telemetry_days":     r.TelemetryDays,
		"observability_days": r.ObservabilityDays,
	} {
		if days < 0 {
			return NewValidationError("retention", "", field, fmt.Errorf("must not be negative"))
		}
	}
	if r.Enabled && r.CleanupInterval <= 0 {
		return NewValidationError("retention", "", "cleanup_interval", fmt.Errorf("must be positive when cleanup is enabled"))
	}

	return nil
}

func (v *ConfigValidator) validateMCPServers() error {
	for serverID, server := range v.cfg.MCPServers {
		// Validate transport type
		if !server.Transport.Type.IsValid() {
			return NewValidationError("mcp_server", serverID, "transport.type", fmt.Errorf("invalid transport type: %s", server.Transport.Type))
		}

		// Validate transport-specific fields
		switch server.Transport.Type {
		case MCPTransportStdio:
			if server.Transport.Command == "" {
				return NewValidationError("mcp_server", serverID, "transport.command", fmt.Errorf("command required for stdio transport"))
			}

		case MCPTransportHTTP, MCPTransportSSE:
			if server.Transport.URL == "" {
				return NewValidationError("mcp_server", serverID, "transport.url", fmt.Errorf("url required for %s transport", server.Transport.Type))
			}
		}
	}

	return nil
}
