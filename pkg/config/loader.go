package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// EdgedYAMLConfig represents the complete edged.yaml file structure
type EdgedYAMLConfig struct {
	Hardware    *HardwareYAMLConfig        `yaml:"hardware"`
	Safety      *SafetyYAMLConfig          `yaml:"safety"`
	Interaction *InteractionYAMLConfig     `yaml:"interaction"`
	Lifelog     *LifelogYAMLConfig         `yaml:"lifelog"`
	DigitalTask *DigitalTaskYAMLConfig     `yaml:"digital_task"`
	LLM         *LLMConfig                 `yaml:"llm"`
	Masking     *MaskingConfig             `yaml:"masking"`
	Retention   *RetentionYAMLConfig       `yaml:"retention"`
	MCPServers  map[string]MCPServerConfig `yaml:"mcp_servers"`
}

// HardwareYAMLConfig holds the hardware section as written in YAML. Pointer
// fields distinguish "unset" from an explicit zero so defaults only fill
// gaps.
type HardwareYAMLConfig struct {
	Enabled            *bool               `yaml:"enabled,omitempty"`
	Adapter            string              `yaml:"adapter,omitempty"`
	DeviceProfile      string              `yaml:"device_profile,omitempty"`
	ProfileOverrides   map[string]any      `yaml:"profile_overrides,omitempty"`
	TTSMode            string              `yaml:"tts_mode,omitempty"`
	TTSAudioChunkBytes int                 `yaml:"tts_audio_chunk_bytes,omitempty"`
	TTSTextChunkChars  int                 `yaml:"tts_text_chunk_chars,omitempty"`
	NetworkProfile     string              `yaml:"network_profile,omitempty"`
	Host               string              `yaml:"host,omitempty"`
	Port               int                 `yaml:"port,omitempty"`
	ControlHost        string              `yaml:"control_host,omitempty"`
	ControlPort        int                 `yaml:"control_port,omitempty"`
	HeartbeatSeconds   int                 `yaml:"heartbeat_seconds,omitempty"`
	PacketMagic        *int                `yaml:"packet_magic,omitempty"`
	Audio              *AudioYAMLConfig    `yaml:"audio,omitempty"`
	Auth               *AuthYAMLConfig     `yaml:"auth,omitempty"`
	MQTT               *MQTTYAMLConfig     `yaml:"mqtt,omitempty"`
	ControlPlane       *ControlPlaneConfig `yaml:"control_plane,omitempty"`
}

// AudioYAMLConfig holds the hardware.audio section from YAML.
type AudioYAMLConfig struct {
	EnableVAD        *bool `yaml:"enable_vad,omitempty"`
	PrebufferChunks  *int  `yaml:"prebuffer_chunks,omitempty"`
	JitterWindow     int   `yaml:"jitter_window,omitempty"`
	VADSilenceChunks int   `yaml:"vad_silence_chunks,omitempty"`
	MaxCaptureBytes  int   `yaml:"max_capture_bytes,omitempty"`
}

// AuthYAMLConfig holds the hardware.auth section from YAML.
type AuthYAMLConfig struct {
	Enabled                    bool                    `yaml:"enabled,omitempty"`
	Token                      string                  `yaml:"token,omitempty"`
	DeviceAuthEnabled          bool                    `yaml:"device_auth_enabled,omitempty"`
	AllowUnboundDevices        bool                    `yaml:"allow_unbound_devices,omitempty"`
	RequireActivatedDevices    bool                    `yaml:"require_activated_devices,omitempty"`
	ControlAPIRateLimit        *RateLimitConfig        `yaml:"control_api_rate_limit,omitempty"`
	ControlAPIReplayProtection *ReplayProtectionConfig `yaml:"control_api_replay_protection,omitempty"`
}

// MQTTYAMLConfig holds the hardware.mqtt section from YAML. QoS fields are
// pointers because 0 is a valid QoS.
type MQTTYAMLConfig struct {
	Host     string `yaml:"host,omitempty"`
	Port     int    `yaml:"port,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	ClientID string `yaml:"client_id,omitempty"`

	KeepaliveSeconds    int `yaml:"keepalive_seconds,omitempty"`
	ReconnectMinSeconds int `yaml:"reconnect_min_seconds,omitempty"`
	ReconnectMaxSeconds int `yaml:"reconnect_max_seconds,omitempty"`

	QoSControl *int `yaml:"qos_control,omitempty"`
	QoSAudio   *int `yaml:"qos_audio,omitempty"`

	UpControlTopic           string `yaml:"up_control_topic,omitempty"`
	UpAudioTopic             string `yaml:"up_audio_topic,omitempty"`
	DownControlTopicTemplate string `yaml:"down_control_topic_template,omitempty"`
	DownAudioTopicTemplate   string `yaml:"down_audio_topic_template,omitempty"`

	ReplayEnabled        bool `yaml:"replay_enabled,omitempty"`
	ControlReplayWindow  int  `yaml:"control_replay_window,omitempty"`
	OfflineControlBuffer int  `yaml:"offline_control_buffer,omitempty"`
}

// SafetyYAMLConfig holds the safety section from YAML.
type SafetyYAMLConfig struct {
	Enabled                        *bool    `yaml:"enabled,omitempty"`
	LowConfidenceThreshold         *float64 `yaml:"low_confidence_threshold,omitempty"`
	MaxOutputChars                 int      `yaml:"max_output_chars,omitempty"`
	PrependCautionForRisk          *bool    `yaml:"prepend_caution_for_risk,omitempty"`
	SemanticGuardEnabled           *bool    `yaml:"semantic_guard_enabled,omitempty"`
	DirectionalConfidenceThreshold *float64 `yaml:"directional_confidence_threshold,omitempty"`
}

// InteractionYAMLConfig holds the interaction section from YAML.
type InteractionYAMLConfig struct {
	Enabled                         *bool    `yaml:"enabled,omitempty"`
	EmotionEnabled                  *bool    `yaml:"emotion_enabled,omitempty"`
	ProactiveEnabled                *bool    `yaml:"proactive_enabled,omitempty"`
	SilentEnabled                   *bool    `yaml:"silent_enabled,omitempty"`
	LowConfidenceThreshold          *float64 `yaml:"low_confidence_threshold,omitempty"`
	HighRiskLevels                  []string `yaml:"high_risk_levels,omitempty"`
	ProactiveSources                []string `yaml:"proactive_sources,omitempty"`
	SilentSources                   []string `yaml:"silent_sources,omitempty"`
	QuietHoursEnabled               bool     `yaml:"quiet_hours_enabled,omitempty"`
	QuietHoursStartHour             *int     `yaml:"quiet_hours_start_hour,omitempty"`
	QuietHoursEndHour               *int     `yaml:"quiet_hours_end_hour,omitempty"`
	SuppressLowPriorityInQuietHours *bool    `yaml:"suppress_low_priority_in_quiet_hours,omitempty"`
}

// LifelogYAMLConfig holds the lifelog section from YAML.
type LifelogYAMLConfig struct {
	VectorBackend          string       `yaml:"vector_backend,omitempty"`
	Redis                  *RedisConfig `yaml:"redis,omitempty"`
	IngestQueueMaxSize     int          `yaml:"ingest_queue_max_size,omitempty"`
	IngestWorkers          int          `yaml:"ingest_workers,omitempty"`
	IngestOverflowPolicy   string       `yaml:"ingest_overflow_policy,omitempty"`
	IngestEnqueueTimeoutMS int          `yaml:"ingest_enqueue_timeout_ms,omitempty"`
	DefaultTopK            int          `yaml:"default_top_k,omitempty"`
	MaxTimelineItems       int          `yaml:"max_timeline_items,omitempty"`
	DedupMaxDistance       *int         `yaml:"dedup_max_distance,omitempty"`
	RecentHashLimit        int          `yaml:"recent_hash_limit,omitempty"`
	Assets                 *AssetConfig `yaml:"assets,omitempty"`
}

// DigitalTaskYAMLConfig holds the digital_task section from YAML.
type DigitalTaskYAMLConfig struct {
	DefaultTimeoutSeconds int  `yaml:"default_timeout_seconds,omitempty"`
	MaxConcurrentTasks    int  `yaml:"max_concurrent_tasks,omitempty"`
	StatusRetryCount      *int `yaml:"status_retry_count,omitempty"`
	StatusRetryBackoffMS  int  `yaml:"status_retry_backoff_ms,omitempty"`
}

// RetentionYAMLConfig holds the retention section from YAML. Day fields are
// pointers because 0 means "keep forever".
type RetentionYAMLConfig struct {
	Enabled           bool   `yaml:"enabled,omitempty"`
	EventsDays        *int   `yaml:"events_days,omitempty"`
	ImagesDays        *int   `yaml:"images_days,omitempty"`
	TracesDays        *int   `yaml:"traces_days,omitempty"`
	TelemetryDays     *int   `yaml:"telemetry_days,omitempty"`
	ObservabilityDays *int   `yaml:"observability_days,omitempty"`
	CleanupInterval   string `yaml:"cleanup_interval,omitempty"` // Parsed to time.Duration
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load edged.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Apply default values per section
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	// 1. Load configuration files
	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Validate all configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"adapter", stats.Adapter,
		"tts_mode", stats.TTSMode,
		"vector_backend", stats.VectorBackend,
		"mcp_servers", stats.MCPServers)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	yamlCfg, err := loader.loadEdgedYAML()
	if err != nil {
		return nil, NewLoadError("edged.yaml", err)
	}

	return &Config{
		configDir:   configDir,
		Hardware:    resolveHardwareConfig(yamlCfg.Hardware),
		Safety:      resolveSafetyConfig(yamlCfg.Safety),
		Interaction: resolveInteractionConfig(yamlCfg.Interaction),
		Lifelog:     resolveLifelogConfig(yamlCfg.Lifelog),
		DigitalTask: resolveDigitalTaskConfig(yamlCfg.DigitalTask),
		LLM:         resolveLLMConfig(yamlCfg.LLM),
		Masking:     resolveMaskingConfig(yamlCfg.Masking),
		Retention:   resolveRetentionConfig(yamlCfg.Retention),
		MCPServers:  resolveMCPServers(yamlCfg.MCPServers),
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadEdgedYAML() (*EdgedYAMLConfig, error) {
	var config EdgedYAMLConfig

	// Initialize map to avoid nil map
	config.MCPServers = make(map[string]MCPServerConfig)

	if err := l.loadYAML("edged.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// resolveHardwareConfig resolves the hardware section, applying defaults and
// expanding profile-alias adapter kinds (ec600 -> mqtt + ec600 profile).
func resolveHardwareConfig(hw *HardwareYAMLConfig) *HardwareConfig {
	cfg := DefaultHardwareConfig()

	if hw == nil {
		return cfg
	}

	if hw.Enabled != nil {
		cfg.Enabled = *hw.Enabled
	}
	if hw.Adapter != "" {
		cfg.Adapter = AdapterKind(hw.Adapter)
	}
	if hw.DeviceProfile != "" {
		cfg.DeviceProfile = hw.DeviceProfile
	}
	if cfg.Adapter.IsProfileAlias() {
		if cfg.DeviceProfile == "" {
			cfg.DeviceProfile = string(cfg.Adapter)
		}
		cfg.Adapter = AdapterMQTT
	}
	if len(hw.ProfileOverrides) > 0 {
		cfg.ProfileOverrides = hw.ProfileOverrides
	}
	if hw.TTSMode != "" {
		cfg.TTSMode = TTSMode(hw.TTSMode)
	}
	if hw.NetworkProfile != "" {
		cfg.NetworkProfile = hw.NetworkProfile
	}
	// Cellular links get smaller audio chunks unless explicitly sized.
	if cfg.NetworkProfile == "cellular" {
		cfg.TTSAudioChunkBytes = 800
	}
	if hw.TTSAudioChunkBytes > 0 {
		cfg.TTSAudioChunkBytes = hw.TTSAudioChunkBytes
	}
	if hw.TTSTextChunkChars > 0 {
		cfg.TTSTextChunkChars = hw.TTSTextChunkChars
	}
	if hw.Host != "" {
		cfg.Host = hw.Host
	}
	if hw.Port > 0 {
		cfg.Port = hw.Port
	}
	if hw.ControlHost != "" {
		cfg.ControlHost = hw.ControlHost
	}
	if hw.ControlPort > 0 {
		cfg.ControlPort = hw.ControlPort
	}
	if hw.HeartbeatSeconds > 0 {
		cfg.HeartbeatSeconds = hw.HeartbeatSeconds
	}
	if hw.PacketMagic != nil && *hw.PacketMagic > 0 {
		if *hw.PacketMagic > 255 {
			slog.Warn("packet_magic out of byte range, using default",
				"value", *hw.PacketMagic,
				"default", cfg.PacketMagic)
		} else {
			cfg.PacketMagic = byte(*hw.PacketMagic)
		}
	}

	if a := hw.Audio; a != nil {
		if a.EnableVAD != nil {
			cfg.Audio.EnableVAD = *a.EnableVAD
		}
		if a.PrebufferChunks != nil {
			cfg.Audio.PrebufferChunks = *a.PrebufferChunks
		}
		if a.JitterWindow > 0 {
			cfg.Audio.JitterWindow = a.JitterWindow
		}
		if a.VADSilenceChunks > 0 {
			cfg.Audio.VADSilenceChunks = a.VADSilenceChunks
		}
		if a.MaxCaptureBytes > 0 {
			cfg.Audio.MaxCaptureBytes = a.MaxCaptureBytes
		}
	}

	if au := hw.Auth; au != nil {
		cfg.Auth.Enabled = au.Enabled
		cfg.Auth.Token = au.Token
		cfg.Auth.DeviceAuthEnabled = au.DeviceAuthEnabled
		cfg.Auth.AllowUnboundDevices = au.AllowUnboundDevices
		cfg.Auth.RequireActivatedDevices = au.RequireActivatedDevices
		if rl := au.ControlAPIRateLimit; rl != nil {
			cfg.Auth.ControlAPIRateLimit.Enabled = rl.Enabled
			if rl.RPM > 0 {
				cfg.Auth.ControlAPIRateLimit.RPM = rl.RPM
			}
			if rl.Burst > 0 {
				cfg.Auth.ControlAPIRateLimit.Burst = rl.Burst
			}
		}
		if rp := au.ControlAPIReplayProtection; rp != nil {
			cfg.Auth.ControlAPIReplayProtection.Enabled = rp.Enabled
			if rp.WindowSeconds > 0 {
				cfg.Auth.ControlAPIReplayProtection.WindowSeconds = rp.WindowSeconds
			}
		}
	}

	if m := hw.MQTT; m != nil {
		if m.Host != "" {
			cfg.MQTT.Host = m.Host
		}
		if m.Port > 0 {
			cfg.MQTT.Port = m.Port
		}
		cfg.MQTT.Username = m.Username
		cfg.MQTT.Password = m.Password
		if m.ClientID != "" {
			cfg.MQTT.ClientID = m.ClientID
		}
		if m.KeepaliveSeconds > 0 {
			cfg.MQTT.KeepaliveSeconds = m.KeepaliveSeconds
		}
		if m.ReconnectMinSeconds > 0 {
			cfg.MQTT.ReconnectMinSeconds = m.ReconnectMinSeconds
		}
		if m.ReconnectMaxSeconds > 0 {
			cfg.MQTT.ReconnectMaxSeconds = m.ReconnectMaxSeconds
		}
		if m.QoSControl != nil {
			cfg.MQTT.QoSControl = *m.QoSControl
		}
		if m.QoSAudio != nil {
			cfg.MQTT.QoSAudio = *m.QoSAudio
		}
		if m.UpControlTopic != "" {
			cfg.MQTT.UpControlTopic = m.UpControlTopic
		}
		if m.UpAudioTopic != "" {
			cfg.MQTT.UpAudioTopic = m.UpAudioTopic
		}
		if m.DownControlTopicTemplate != "" {
			cfg.MQTT.DownControlTopicTemplate = m.DownControlTopicTemplate
		}
		if m.DownAudioTopicTemplate != "" {
			cfg.MQTT.DownAudioTopicTemplate = m.DownAudioTopicTemplate
		}
		cfg.MQTT.ReplayEnabled = m.ReplayEnabled
		if m.ControlReplayWindow > 0 {
			cfg.MQTT.ControlReplayWindow = m.ControlReplayWindow
		}
		if m.OfflineControlBuffer > 0 {
			cfg.MQTT.OfflineControlBuffer = m.OfflineControlBuffer
		}
	}

	if cp := hw.ControlPlane; cp != nil {
		cfg.ControlPlane.Enabled = cp.Enabled
		cfg.ControlPlane.BaseURL = cp.BaseURL
		cfg.ControlPlane.APIToken = cp.APIToken
		if cp.TimeoutSeconds > 0 {
			cfg.ControlPlane.TimeoutSeconds = cp.TimeoutSeconds
		}
		if cp.CacheTTLSeconds > 0 {
			cfg.ControlPlane.CacheTTLSeconds = cp.CacheTTLSeconds
		}
	}

	return cfg
}

// resolveSafetyConfig resolves the safety section, applying defaults.
func resolveSafetyConfig(s *SafetyYAMLConfig) *SafetyConfig {
	cfg := DefaultSafetyConfig()

	if s == nil {
		return cfg
	}

	if s.Enabled != nil {
		cfg.Enabled = *s.Enabled
	}
	if s.LowConfidenceThreshold != nil {
		cfg.LowConfidenceThreshold = *s.LowConfidenceThreshold
	}
	if s.MaxOutputChars > 0 {
		cfg.MaxOutputChars = s.MaxOutputChars
	}
	if s.PrependCautionForRisk != nil {
		cfg.PrependCautionForRisk = *s.PrependCautionForRisk
	}
	if s.SemanticGuardEnabled != nil {
		cfg.SemanticGuardEnabled = *s.SemanticGuardEnabled
	}
	if s.DirectionalConfidenceThreshold != nil {
		cfg.DirectionalConfidenceThreshold = *s.DirectionalConfidenceThreshold
	}

	return cfg
}

// resolveInteractionConfig resolves the interaction section, applying defaults.
func resolveInteractionConfig(in *InteractionYAMLConfig) *InteractionConfig {
	cfg := DefaultInteractionConfig()

	if in == nil {
		return cfg
	}

	if in.Enabled != nil {
		cfg.Enabled = *in.Enabled
	}
	if in.EmotionEnabled != nil {
		cfg.EmotionEnabled = *in.EmotionEnabled
	}
	if in.ProactiveEnabled != nil {
		cfg.ProactiveEnabled = *in.ProactiveEnabled
	}
	if in.SilentEnabled != nil {
		cfg.SilentEnabled = *in.SilentEnabled
	}
	if in.LowConfidenceThreshold != nil {
		cfg.LowConfidenceThreshold = *in.LowConfidenceThreshold
	}
	if len(in.HighRiskLevels) > 0 {
		cfg.HighRiskLevels = in.HighRiskLevels
	}
	if len(in.ProactiveSources) > 0 {
		cfg.ProactiveSources = in.ProactiveSources
	}
	if len(in.SilentSources) > 0 {
		cfg.SilentSources = in.SilentSources
	}
	cfg.QuietHoursEnabled = in.QuietHoursEnabled
	if in.QuietHoursStartHour != nil {
		cfg.QuietHoursStartHour = *in.QuietHoursStartHour
	}
	if in.QuietHoursEndHour != nil {
		cfg.QuietHoursEndHour = *in.QuietHoursEndHour
	}
	if in.SuppressLowPriorityInQuietHours != nil {
		cfg.SuppressLowPriorityInQuietHours = *in.SuppressLowPriorityInQuietHours
	}

	return cfg
}

// resolveLifelogConfig resolves the lifelog section, applying defaults.
func resolveLifelogConfig(ll *LifelogYAMLConfig) *LifelogConfig {
	cfg := DefaultLifelogConfig()

	if ll == nil {
		return cfg
	}

	if ll.VectorBackend != "" {
		cfg.VectorBackend = VectorBackend(ll.VectorBackend)
	}
	if r := ll.Redis; r != nil {
		if r.Addr != "" {
			cfg.Redis.Addr = r.Addr
		}
		cfg.Redis.Password = r.Password
		cfg.Redis.DB = r.DB
		if r.KeyPrefix != "" {
			cfg.Redis.KeyPrefix = r.KeyPrefix
		}
	}
	if ll.IngestQueueMaxSize > 0 {
		cfg.IngestQueueMaxSize = ll.IngestQueueMaxSize
	}
	if ll.IngestWorkers > 0 {
		cfg.IngestWorkers = ll.IngestWorkers
	}
	if ll.IngestOverflowPolicy != "" {
		cfg.IngestOverflowPolicy = OverflowPolicy(ll.IngestOverflowPolicy)
	}
	if ll.IngestEnqueueTimeoutMS > 0 {
		cfg.IngestEnqueueTimeout = time.Duration(ll.IngestEnqueueTimeoutMS) * time.Millisecond
	}
	if ll.DefaultTopK > 0 {
		cfg.DefaultTopK = ll.DefaultTopK
	}
	if ll.MaxTimelineItems > 0 {
		cfg.MaxTimelineItems = ll.MaxTimelineItems
	}
	if ll.DedupMaxDistance != nil {
		cfg.DedupMaxDistance = *ll.DedupMaxDistance
	}
	if ll.RecentHashLimit > 0 {
		cfg.RecentHashLimit = ll.RecentHashLimit
	}
	if a := ll.Assets; a != nil {
		if a.Dir != "" {
			cfg.Assets.Dir = a.Dir
		}
		if a.MaxFiles > 0 {
			cfg.Assets.MaxFiles = a.MaxFiles
		}
		if a.CleanupInterval > 0 {
			cfg.Assets.CleanupInterval = a.CleanupInterval
		}
	}

	return cfg
}

// resolveDigitalTaskConfig resolves the digital_task section, applying defaults.
func resolveDigitalTaskConfig(dt *DigitalTaskYAMLConfig) *DigitalTaskConfig {
	cfg := DefaultDigitalTaskConfig()

	if dt == nil {
		return cfg
	}

	if dt.DefaultTimeoutSeconds > 0 {
		cfg.DefaultTimeout = time.Duration(dt.DefaultTimeoutSeconds) * time.Second
	}
	if dt.MaxConcurrentTasks > 0 {
		cfg.MaxConcurrentTasks = dt.MaxConcurrentTasks
	}
	if dt.StatusRetryCount != nil {
		cfg.StatusRetryCount = *dt.StatusRetryCount
	}
	if dt.StatusRetryBackoffMS > 0 {
		cfg.StatusRetryBackoff = time.Duration(dt.StatusRetryBackoffMS) * time.Millisecond
	}

	return cfg
}

// resolveLLMConfig resolves the llm section, applying defaults.
func resolveLLMConfig(llm *LLMConfig) *LLMConfig {
	cfg := DefaultLLMConfig()

	if llm != nil {
		if llm.APIKeyEnv != "" {
			cfg.APIKeyEnv = llm.APIKeyEnv
		}
		if llm.Model != "" {
			cfg.Model = llm.Model
		}
		if llm.VisionModel != "" {
			cfg.VisionModel = llm.VisionModel
		}
		if llm.MaxTokens > 0 {
			cfg.MaxTokens = llm.MaxTokens
		}
		if llm.Temperature > 0 {
			cfg.Temperature = llm.Temperature
		}
		if llm.MaxIterations > 0 {
			cfg.MaxIterations = llm.MaxIterations
		}
	}

	// Image turns ride the chat model unless overridden.
	if cfg.VisionModel == "" {
		cfg.VisionModel = cfg.Model
	}

	return cfg
}

// resolveMaskingConfig resolves the masking section. A present section
// replaces the defaults wholesale so operators can run with masking off.
func resolveMaskingConfig(m *MaskingConfig) *MaskingConfig {
	if m == nil {
		return DefaultMaskingConfig()
	}
	out := *m
	return &out
}

// resolveRetentionConfig resolves the retention section, applying defaults.
func resolveRetentionConfig(r *RetentionYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if r == nil {
		return cfg
	}

	cfg.Enabled = r.Enabled
	if r.EventsDays != nil {
		cfg.EventsDays = *r.EventsDays
	}
	if r.ImagesDays != nil {
		cfg.ImagesDays = *r.ImagesDays
	}
	if r.TracesDays != nil {
		cfg.TracesDays = *r.TracesDays
	}
	if r.TelemetryDays != nil {
		cfg.TelemetryDays = *r.TelemetryDays
	}
	if r.ObservabilityDays != nil {
		cfg.ObservabilityDays = *r.ObservabilityDays
	}
	if r.CleanupInterval != "" {
		if d, err := time.ParseDuration(r.CleanupInterval); err == nil {
			cfg.CleanupInterval = d
		} else {
			slog.Warn("Invalid cleanup_interval in retention config, using default",
				"value", r.CleanupInterval,
				"default", cfg.CleanupInterval,
				"error", err)
		}
	}

	return cfg
}

// resolveMCPServers copies the decoded server map into pointer values.
func resolveMCPServers(servers map[string]MCPServerConfig) map[string]*MCPServerConfig {
	out := make(map[string]*MCPServerConfig, len(servers))
	for id := range servers {
		server := servers[id]
		out[id] = &server
	}
	return out
}
