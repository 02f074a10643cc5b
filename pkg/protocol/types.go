package protocol

// Version is the canonical envelope protocol revision announced in hello_ack.
const Version = "v1"

// Direction distinguishes device-originated events from runtime-originated commands.
type Direction string

const (
	DirectionEvent   Direction = "event"
	DirectionCommand Direction = "command"
)

// EventType enumerates device → runtime events.
type EventType string

const (
	EventHello       EventType = "hello"
	EventHeartbeat   EventType = "heartbeat"
	EventListenStart EventType = "listen_start"
	EventAudioChunk  EventType = "audio_chunk"
	EventListenStop  EventType = "listen_stop"
	EventImageReady  EventType = "image_ready"
	EventTelemetry   EventType = "telemetry"
	EventToolResult  EventType = "tool_result"
	EventAbort       EventType = "abort"
	EventError       EventType = "error"
	EventClose       EventType = "close"
)

// CommandType enumerates runtime → device commands.
type CommandType string

const (
	CommandHelloAck   CommandType = "hello_ack"
	CommandAck        CommandType = "ack"
	CommandSTTPartial CommandType = "stt_partial"
	CommandSTTFinal   CommandType = "stt_final"
	CommandTTSStart   CommandType = "tts_start"
	CommandTTSChunk   CommandType = "tts_chunk"
	CommandTTSStop    CommandType = "tts_stop"
	CommandTaskUpdate CommandType = "task_update"
	CommandSetConfig  CommandType = "set_config"
	CommandToolCall   CommandType = "tool_call"
	CommandOTAPlan    CommandType = "ota_plan"
	CommandClose      CommandType = "close"
)

var eventTypes = map[EventType]bool{
	EventHello:       true,
	EventHeartbeat:   true,
	EventListenStart: true,
	EventAudioChunk:  true,
	EventListenStop:  true,
	EventImageReady:  true,
	EventTelemetry:   true,
	EventToolResult:  true,
	EventAbort:       true,
	EventError:       true,
	EventClose:       true,
}

var commandTypes = map[CommandType]bool{
	CommandHelloAck:   true,
	CommandAck:        true,
	CommandSTTPartial: true,
	CommandSTTFinal:   true,
	CommandTTSStart:   true,
	CommandTTSChunk:   true,
	CommandTTSStop:    true,
	CommandTaskUpdate: true,
	CommandSetConfig:  true,
	CommandToolCall:   true,
	CommandOTAPlan:    true,
	CommandClose:      true,
}

// ParseEventType normalizes a wire string into a known EventType.
func ParseEventType(s string) (EventType, bool) {
	t := EventType(s)
	return t, eventTypes[t]
}

// ParseCommandType normalizes a wire string into a known CommandType.
func ParseCommandType(s string) (CommandType, bool) {
	t := CommandType(s)
	return t, commandTypes[t]
}

// OperationCommandType maps a device-operation op_type to its 1:1 command type.
func OperationCommandType(opType string) (CommandType, bool) {
	switch opType {
	case "set_config":
		return CommandSetConfig, true
	case "tool_call":
		return CommandToolCall, true
	case "ota_plan":
		return CommandOTAPlan, true
	default:
		return "", false
	}
}
