// Package runtime brokers canonical-envelope sessions between southbound
// device adapters and the agent, policy, lifelog, and task layers. One
// Runtime owns exactly one adapter; every inbound event is serialized
// through a per-session worker so state transitions, sequence bookkeeping,
// and outbound commands never race within a session.
package runtime

import (
	"context"
	"time"

	"github.com/opencane/edged/pkg/agent"
	"github.com/opencane/edged/pkg/lifelog"
	"github.com/opencane/edged/pkg/store"
	"github.com/opencane/edged/pkg/task"
)

// TTS modes. In device_text mode the device renders speech locally from
// tts_chunk text; in server_audio mode the runtime synthesizes audio and
// streams base64 frames, falling back to device_text when synthesis fails.
const (
	TTSModeDeviceText  = "device_text"
	TTSModeServerAudio = "server_audio"
)

// Config tunes session supervision and the voice turn surface. Zero values
// take the documented defaults.
type Config struct {
	// TTSMode selects device_text (default) or server_audio.
	TTSMode string
	// TTSAudioChunkBytes caps raw audio bytes per tts_chunk before base64
	// expansion. Default 1600, floor 256.
	TTSAudioChunkBytes int
	// TTSTextChunkChars caps runes per text tts_chunk. Default 220.
	TTSTextChunkChars int
	// NoHeartbeatTimeout closes sessions with no inbound traffic for this
	// long. Default 60s, floor 10s.
	NoHeartbeatTimeout time.Duration
	// SweepInterval is the idle-session watchdog cadence. Default 2s.
	SweepInterval time.Duration

	// DeviceAuthEnabled gates every event on the device binding check.
	DeviceAuthEnabled bool
	// AllowUnbound admits devices with no binding row when auth is enabled.
	AllowUnbound bool
	// RequireActivated rejects bindings that were never activated.
	RequireActivated bool

	// ToolResultEnabled records tool_result events into the lifelog; when
	// false they are acked and logged as ignored.
	ToolResultEnabled bool
	// ToolResultMarkOperations resolves pending device operations from
	// tool_result events. Default true.
	ToolResultMarkOperations *bool

	// TelemetryNormalize derives the structured telemetry document from raw
	// payloads and stores it in session metadata.
	TelemetryNormalize bool
	// TelemetryPersist writes normalized samples to the telemetry store.
	// Requires TelemetryNormalize.
	TelemetryPersist bool

	// OperationReplayLimit bounds queued device operations re-dispatched on
	// hello. Default 16.
	OperationReplayLimit int
	// TaskPushFlushLimit bounds pending task updates flushed on hello.
	// Default 20.
	TaskPushFlushLimit int

	// Capture tunes the per-session audio pipeline.
	Capture CaptureConfig
}

func (c Config) withDefaults() Config {
	switch c.TTSMode {
	case TTSModeDeviceText, TTSModeServerAudio:
	default:
		c.TTSMode = TTSModeDeviceText
	}
	if c.TTSAudioChunkBytes <= 0 {
		c.TTSAudioChunkBytes = 1600
	}
	if c.TTSAudioChunkBytes < 256 {
		c.TTSAudioChunkBytes = 256
	}
	if c.TTSTextChunkChars <= 0 {
		c.TTSTextChunkChars = 220
	}
	if c.NoHeartbeatTimeout <= 0 {
		c.NoHeartbeatTimeout = 60 * time.Second
	}
	if c.NoHeartbeatTimeout < 10*time.Second {
		c.NoHeartbeatTimeout = 10 * time.Second
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = 2 * time.Second
	}
	if c.ToolResultMarkOperations == nil {
		v := true
		c.ToolResultMarkOperations = &v
	}
	if c.OperationReplayLimit <= 0 {
		c.OperationReplayLimit = 16
	}
	if c.TaskPushFlushLimit <= 0 {
		c.TaskPushFlushLimit = 20
	}
	c.Capture = c.Capture.withDefaults()
	return c
}

// Store is the durable surface the runtime needs: binding verification,
// lifelog rows, traces, telemetry samples, and device operations.
type Store interface {
	VerifyDeviceBinding(ctx context.Context, deviceID, token string, requireActivated, allowUnbound bool) (store.Binding, error)
	AppendEvent(ctx context.Context, ev store.Event) (string, error)
	AppendTraceStep(ctx context.Context, step store.TraceStep) error
	InsertSample(ctx context.Context, sample store.Sample) error
	QueuedOperations(ctx context.Context, deviceID string, limit int) ([]store.Operation, error)
	MarkOperationSent(ctx context.Context, operationID string) error
	MarkOperationResult(ctx context.Context, operationID string, result map[string]any, success bool, errMsg string) error
}

// AgentLoop runs one model turn. Satisfied by agent.AnthropicLoop.
type AgentLoop interface {
	RunTurn(ctx context.Context, req agent.TurnRequest) (agent.TurnResult, error)
}

// ToolSource advertises the tool definitions offered to the agent.
// Satisfied by mcptools.Provider.
type ToolSource interface {
	Definitions(ctx context.Context) ([]agent.ToolDefinition, error)
	Names() []string
}

// PolicyResolver fetches per-device tool policy from the control plane.
// Satisfied by agent.ControlPlaneClient.
type PolicyResolver interface {
	FetchDevicePolicy(ctx context.Context, deviceID string, forceRefresh bool) (agent.DevicePolicy, string, error)
}

// TaskService is the digital-task surface the runtime routes voice intents
// to. Satisfied by task.Service.
type TaskService interface {
	Execute(ctx context.Context, req task.ExecuteRequest) (task.ExecuteResult, error)
	FlushPendingUpdates(ctx context.Context, deviceID, sessionID string, limit int) (task.FlushResult, error)
	Stats(ctx context.Context, deviceID string) (map[string]int, error)
}

// Ingestor accepts lifelog image ingest requests. Satisfied by
// lifelog.Pipeline.
type Ingestor interface {
	Ingest(ctx context.Context, req lifelog.IngestRequest) lifelog.IngestResult
	Status() lifelog.QueueStatus
}

// VisionAnswer is a vision service reply plus speech shaping hints.
type VisionAnswer struct {
	Text       string
	Confidence float64
	RiskLevel  string
	Structured map[string]any
}

// VisionService answers an image_ready turn from the event payload
// (image_base64 plus an optional question).
type VisionService interface {
	AnalyzePayload(ctx context.Context, payload map[string]any) (VisionAnswer, error)
}

// Transcriber converts captured audio to text when the device supplied no
// transcript of its own.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// TTSAudio is one synthesized utterance.
type TTSAudio struct {
	Audio        []byte
	Encoding     string
	SampleRateHz int
}

// TTSEngine synthesizes speech for server_audio mode.
type TTSEngine interface {
	Synthesize(ctx context.Context, text string) (TTSAudio, error)
}

// IntentClassifier decides whether a transcript should be routed to the
// digital task service instead of the conversational agent.
type IntentClassifier interface {
	IsDigitalTask(transcript string, payload map[string]any) bool
}

// Masker scrubs secrets from payloads before they reach durable rows.
type Masker interface {
	MaskText(string) string
	MaskMap(map[string]any) map[string]any
}
