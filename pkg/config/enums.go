package config

// AdapterKind selects the southbound transport for device traffic.
type AdapterKind string

const (
	// AdapterMock is the in-process adapter used by tests and local runs
	AdapterMock AdapterKind = "mock"
	// AdapterWebSocket terminates raw WebSocket device connections
	AdapterWebSocket AdapterKind = "websocket"
	// AdapterMQTT speaks to devices through an MQTT broker
	AdapterMQTT AdapterKind = "mqtt"
	// AdapterEC600 is shorthand for mqtt with the ec600 device profile
	AdapterEC600 AdapterKind = "ec600"
	// AdapterGenericMQTT is shorthand for mqtt with the generic_mqtt profile
	AdapterGenericMQTT AdapterKind = "generic_mqtt"
)

// IsValid checks if the adapter kind is recognized
func (k AdapterKind) IsValid() bool {
	switch k {
	case AdapterMock, AdapterWebSocket, AdapterMQTT, AdapterEC600, AdapterGenericMQTT:
		return true
	default:
		return false
	}
}

// IsProfileAlias reports whether the kind names a device profile rather than
// a transport. Aliases resolve to mqtt with the matching profile.
func (k AdapterKind) IsProfileAlias() bool {
	return k == AdapterEC600 || k == AdapterGenericMQTT
}

// TTSMode selects how synthesized speech reaches the device.
type TTSMode string

const (
	// TTSDeviceText sends text chunks; the device synthesizes locally
	TTSDeviceText TTSMode = "device_text"
	// TTSServerAudio streams base64 audio frames synthesized server-side
	TTSServerAudio TTSMode = "server_audio"
)

// IsValid checks if the TTS mode is recognized
func (m TTSMode) IsValid() bool {
	return m == TTSDeviceText || m == TTSServerAudio
}

// OverflowPolicy decides what happens when the lifelog ingest queue is full.
type OverflowPolicy string

const (
	// OverflowReject fails the enqueue immediately
	OverflowReject OverflowPolicy = "reject"
	// OverflowWait blocks the producer up to the enqueue timeout
	OverflowWait OverflowPolicy = "wait"
	// OverflowDropOldest evicts the oldest queued job to make room
	OverflowDropOldest OverflowPolicy = "drop_oldest"
)

// IsValid checks if the overflow policy is recognized
func (p OverflowPolicy) IsValid() bool {
	switch p {
	case OverflowReject, OverflowWait, OverflowDropOldest:
		return true
	default:
		return false
	}
}

// VectorBackend selects the lifelog vector index implementation.
type VectorBackend string

const (
	// VectorMemory keeps vectors in process memory
	VectorMemory VectorBackend = "memory"
	// VectorRedis stores vectors in Redis
	VectorRedis VectorBackend = "redis"
)

// IsValid checks if the vector backend is recognized
func (b VectorBackend) IsValid() bool {
	return b == VectorMemory || b == VectorRedis
}

// MCPTransportType selects how an MCP server is reached.
type MCPTransportType string

const (
	// MCPTransportStdio spawns the server as a child process
	MCPTransportStdio MCPTransportType = "stdio"
	// MCPTransportHTTP talks to a streamable-HTTP server
	MCPTransportHTTP MCPTransportType = "http"
	// MCPTransportSSE talks to a legacy SSE server
	MCPTransportSSE MCPTransportType = "sse"
)

// IsValid checks if the transport type is recognized
func (t MCPTransportType) IsValid() bool {
	switch t {
	case MCPTransportStdio, MCPTransportHTTP, MCPTransportSSE:
		return true
	default:
		return false
	}
}
