package config

// HardwareConfig holds the resolved device-runtime settings: which adapter
// carries device traffic, how speech is returned, and the auth posture for
// both the device link and the control API.
type HardwareConfig struct {
	Enabled bool

	// Adapter is the southbound transport. Profile aliases (ec600,
	// generic_mqtt) are resolved to mqtt with DeviceProfile set.
	Adapter       AdapterKind
	DeviceProfile string
	// ProfileOverrides patches individual profile fields (topic templates,
	// alias tables) without defining a whole new profile.
	ProfileOverrides map[string]any

	TTSMode            TTSMode
	TTSAudioChunkBytes int
	TTSTextChunkChars  int
	// NetworkProfile tunes transport defaults: "cellular" halves the audio
	// chunk size, "wifi" (default) leaves it at 1600 bytes.
	NetworkProfile string

	// Host/Port bind the WebSocket device listener.
	Host string
	Port int
	// ControlHost/ControlPort bind the control HTTP API.
	ControlHost string
	ControlPort int

	HeartbeatSeconds int
	PacketMagic      byte

	Audio        AudioConfig
	Auth         AuthConfig
	MQTT         MQTTConfig
	ControlPlane ControlPlaneConfig
}

// AudioConfig tunes the per-session capture pipeline.
type AudioConfig struct {
	EnableVAD        bool
	PrebufferChunks  int
	JitterWindow     int
	VADSilenceChunks int
	MaxCaptureBytes  int
}

// AuthConfig covers the shared transport token, the device binding check,
// and the control-API hardening knobs.
type AuthConfig struct {
	// Enabled requires the shared Token on the device link and on control
	// API requests.
	Enabled bool
	Token   string

	// DeviceAuthEnabled gates every inbound event on the binding table.
	DeviceAuthEnabled       bool
	AllowUnboundDevices     bool
	RequireActivatedDevices bool

	ControlAPIRateLimit        RateLimitConfig
	ControlAPIReplayProtection ReplayProtectionConfig
}

// RateLimitConfig is the control-API token bucket.
type RateLimitConfig struct {
	Enabled bool `yaml:"enabled"`
	RPM     int  `yaml:"rpm"`
	Burst   int  `yaml:"burst"`
}

// ReplayProtectionConfig rejects duplicate nonces within the window.
type ReplayProtectionConfig struct {
	Enabled       bool `yaml:"enabled"`
	WindowSeconds int  `yaml:"window_seconds"`
}

// MQTTConfig mirrors the broker settings the MQTT adapter needs.
type MQTTConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	ClientID string `yaml:"client_id"`

	KeepaliveSeconds    int `yaml:"keepalive_seconds"`
	ReconnectMinSeconds int `yaml:"reconnect_min_seconds"`
	ReconnectMaxSeconds int `yaml:"reconnect_max_seconds"`

	QoSControl int `yaml:"qos_control"`
	QoSAudio   int `yaml:"qos_audio"`

	UpControlTopic           string `yaml:"up_control_topic"`
	UpAudioTopic             string `yaml:"up_audio_topic"`
	DownControlTopicTemplate string `yaml:"down_control_topic_template"`
	DownAudioTopicTemplate   string `yaml:"down_audio_topic_template"`

	ReplayEnabled        bool `yaml:"replay_enabled"`
	ControlReplayWindow  int  `yaml:"control_replay_window"`
	OfflineControlBuffer int  `yaml:"offline_control_buffer"`
}

// ControlPlaneConfig points at the remote policy service.
type ControlPlaneConfig struct {
	Enabled         bool   `yaml:"enabled"`
	BaseURL         string `yaml:"base_url"`
	APIToken        string `yaml:"api_token"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
}

// DefaultHardwareConfig returns the built-in hardware defaults: mock adapter,
// device-side TTS, auth off.
func DefaultHardwareConfig() *HardwareConfig {
	return &HardwareConfig{
		Enabled:            true,
		Adapter:            AdapterMock,
		TTSMode:            TTSDeviceText,
		TTSAudioChunkBytes: 1600,
		TTSTextChunkChars:  220,
		NetworkProfile:     "wifi",
		Host:               "0.0.0.0",
		Port:               8765,
		ControlHost:        "0.0.0.0",
		ControlPort:        8080,
		HeartbeatSeconds:   60,
		PacketMagic:        0xA1,
		Audio: AudioConfig{
			EnableVAD:        true,
			PrebufferChunks:  3,
			JitterWindow:     8,
			VADSilenceChunks: 6,
			MaxCaptureBytes:  8 * 1024 * 1024,
		},
		Auth: AuthConfig{
			ControlAPIRateLimit:        RateLimitConfig{RPM: 600, Burst: 60},
			ControlAPIReplayProtection: ReplayProtectionConfig{WindowSeconds: 300},
		},
		MQTT: MQTTConfig{
			Host:                     "127.0.0.1",
			Port:                     1883,
			ClientID:                 "edged-runtime",
			KeepaliveSeconds:         30,
			ReconnectMinSeconds:      1,
			ReconnectMaxSeconds:      10,
			QoSControl:               1,
			QoSAudio:                 0,
			UpControlTopic:           "device/+/up/control",
			UpAudioTopic:             "device/+/up/audio",
			DownControlTopicTemplate: "device/{device_id}/down/control",
			DownAudioTopicTemplate:   "device/{device_id}/down/audio",
			ControlReplayWindow:      64,
			OfflineControlBuffer:     128,
		},
		ControlPlane: ControlPlaneConfig{
			TimeoutSeconds:  5,
			CacheTTLSeconds: 30,
		},
	}
}
