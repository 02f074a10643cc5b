package adapter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/opencane/edged/pkg/protocol"
)

// Audio upload modes for packet-framed transports.
const (
	AudioUpFramedPacket = "framed_packet"
	AudioUpJSONB64      = "json_b64"
)

// Profile describes how one modem family speaks the transport: packet magic,
// audio upload mode, and the alias tables that normalize vendor field names
// into the canonical envelope shape.
type Profile struct {
	Name        string
	PacketMagic byte
	AudioUpMode string

	// EventTypeAliases maps normalized vendor event names to canonical
	// event types, e.g. boot -> hello.
	EventTypeAliases map[string]string
	// CommandTypeAliases rewrites canonical command types into the vendor
	// wire name on the way down.
	CommandTypeAliases map[string]string
	// ControlFieldAliases lists, per canonical envelope field, the vendor
	// names accepted for it in inbound control JSON.
	ControlFieldAliases map[string][]string
	// PayloadAliases adds canonical keys for known vendor payload keys,
	// e.g. chunkIndex -> chunk_index. The vendor key is kept.
	PayloadAliases map[string]string

	// Keys probed for json_b64 audio uploads.
	JSONAudioB64Keys      []string
	JSONAudioEncodingKeys []string
	JSONAudioSeqKeys      []string
	JSONAudioTSKeys       []string

	// Downlink JSON key names; default "type" and "payload".
	DownlinkTypeKey    string
	DownlinkPayloadKey string

	// Replay guard tuning for this modem family.
	ReplayWindow int
	MaxClockSkew time.Duration
}

func baseControlFieldAliases() map[string][]string {
	return map[string][]string{
		"type":       {"type", "event", "cmd"},
		"device_id":  {"device_id", "deviceId", "device", "dev_id"},
		"session_id": {"session_id", "sessionId", "sid"},
		"seq":        {"seq", "sequence", "seq_no"},
		"ts":         {"ts", "ts_ms", "timestamp"},
		"msg_id":     {"msg_id", "msgId", "message_id"},
		"version":    {"version", "v"},
		"payload":    {"payload", "data", "body"},
	}
}

// EC600Profile is the Quectel EC600 modem family: framed opus packets on the
// audio topic, snake_case control JSON.
func EC600Profile() Profile {
	return Profile{
		Name:                "ec600",
		PacketMagic:         DefaultPacketMagic,
		AudioUpMode:         AudioUpFramedPacket,
		EventTypeAliases:    map[string]string{"boot": "hello"},
		ControlFieldAliases: baseControlFieldAliases(),
		PayloadAliases: map[string]string{
			"chunkIndex": "chunk_index",
			"audioB64":   "audio_b64",
			"imageBase64": "image_base64",
		},
		JSONAudioB64Keys:      []string{"audio_b64", "audio", "data"},
		JSONAudioEncodingKeys: []string{"encoding", "codec", "format"},
		JSONAudioSeqKeys:      []string{"seq", "chunk_index", "index"},
		JSONAudioTSKeys:       []string{"ts", "timestamp"},
		DownlinkTypeKey:       "type",
		DownlinkPayloadKey:    "payload",
		ReplayWindow:          64,
		MaxClockSkew:          5 * time.Minute,
	}
}

// GenericMQTTProfile tolerates camelCase variants and json_b64 audio uploads
// from heterogeneous vendor firmware.
func GenericMQTTProfile() Profile {
	p := EC600Profile()
	p.Name = "generic_mqtt"
	p.AudioUpMode = AudioUpJSONB64
	p.EventTypeAliases = map[string]string{
		"boot":       "hello",
		"connect":    "hello",
		"ping":       "heartbeat",
		"keepalive":  "heartbeat",
		"voicestart": "listen_start",
		"voicestop":  "listen_stop",
		"photo":      "image_ready",
	}
	return p
}

var profiles = map[string]func() Profile{
	"ec600":        EC600Profile,
	"generic_mqtt": GenericMQTTProfile,
}

// ResolveProfile looks up a built-in profile by name. An empty name resolves
// to ec600.
func ResolveProfile(name string) (Profile, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = "ec600"
	}
	build, ok := profiles[key]
	if !ok {
		return Profile{}, fmt.Errorf("unknown device profile %q", name)
	}
	return build(), nil
}

// ProfileNames lists the built-in profile names.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// normalizeKey collapses a vendor field name for case and separator
// insensitive matching: "chunkIndex", "chunk_index" and "Chunk-Index" all
// normalize to "chunkindex".
func normalizeKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeEventType maps a vendor event name through the alias table.
func (p Profile) NormalizeEventType(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return ""
	}
	norm := normalizeKey(name)
	for alias, target := range p.EventTypeAliases {
		if normalizeKey(alias) == norm {
			return target
		}
	}
	return name
}

// CommandWireType returns the vendor wire name for a canonical command type.
func (p Profile) CommandWireType(canonical string) string {
	norm := normalizeKey(canonical)
	for alias, target := range p.CommandTypeAliases {
		if normalizeKey(alias) == norm {
			return target
		}
	}
	return canonical
}

// DecodeControl turns decoded inbound control JSON into a canonical event
// envelope, applying field and payload aliases. deviceFromTopic and
// defaultSessionID fill gaps the payload leaves open.
func (p Profile) DecodeControl(data map[string]any, deviceFromTopic, defaultSessionID string) (protocol.Envelope, error) {
	aliases := p.ControlFieldAliases
	if aliases == nil {
		aliases = baseControlFieldAliases()
	}

	eventType := p.NormalizeEventType(asString(extractFirst(data, aliases["type"])))
	deviceID := strings.TrimSpace(asString(extractFirst(data, aliases["device_id"])))
	if deviceID == "" {
		deviceID = deviceFromTopic
	}
	sessionID := strings.TrimSpace(asString(extractFirst(data, aliases["session_id"])))
	if sessionID == "" {
		sessionID = defaultSessionID
	}
	seq := asInt64(extractFirst(data, aliases["seq"]), 0)
	if seq < 0 {
		seq = 0
	}
	ts := asInt64(extractFirst(data, aliases["ts"]), 0)
	msgID := strings.TrimSpace(asString(extractFirst(data, aliases["msg_id"])))

	var payload map[string]any
	switch raw := extractFirst(data, aliases["payload"]).(type) {
	case map[string]any:
		payload = make(map[string]any, len(raw))
		for k, v := range raw {
			payload[k] = v
		}
	case nil:
		// Flat vendor messages carry payload fields at the top level;
		// everything that is not a reserved envelope field belongs to it.
		payload = map[string]any{}
		reserved := p.reservedControlKeys(aliases)
		for k, v := range data {
			if _, ok := reserved[normalizeKey(k)]; !ok {
				payload[k] = v
			}
		}
	default:
		payload = map[string]any{"value": raw}
	}
	payload = p.applyPayloadAliases(payload)

	if eventType == "" {
		return protocol.Envelope{}, fmt.Errorf("%w: control message has no type", protocol.ErrBadEnvelope)
	}
	if deviceID == "" {
		return protocol.Envelope{}, fmt.Errorf("%w: control message has no device_id", protocol.ErrBadEnvelope)
	}

	env := protocol.Envelope{
		Direction: protocol.DirectionEvent,
		Type:      eventType,
		DeviceID:  deviceID,
		SessionID: sessionID,
		Seq:       seq,
		TS:        ts,
		Payload:   payload,
		MsgID:     msgID,
	}
	if env.TS == 0 {
		env.TS = protocol.NowMS()
	}
	return env, nil
}

func (p Profile) reservedControlKeys(aliases map[string][]string) map[string]struct{} {
	reserved := make(map[string]struct{})
	for _, names := range aliases {
		for _, name := range names {
			reserved[normalizeKey(name)] = struct{}{}
		}
	}
	return reserved
}

// applyPayloadAliases adds the canonical key for every aliased vendor key
// present, keeping the vendor key in place.
func (p Profile) applyPayloadAliases(payload map[string]any) map[string]any {
	if len(payload) == 0 || len(p.PayloadAliases) == 0 {
		return payload
	}
	byNorm := make(map[string]string, len(p.PayloadAliases))
	for alias, target := range p.PayloadAliases {
		byNorm[normalizeKey(alias)] = target
	}
	for key, value := range payload {
		target, ok := byNorm[normalizeKey(key)]
		if !ok || target == key {
			continue
		}
		if _, exists := payload[target]; exists {
			continue
		}
		payload[target] = value
	}
	return payload
}

// extractFirst returns the first non-nil value for any of the given key
// names, matching exact names first and normalized names second.
func extractFirst(data map[string]any, keys []string) any {
	if len(data) == 0 {
		return nil
	}
	for _, name := range keys {
		if v, ok := data[name]; ok && v != nil {
			return v
		}
	}
	byNorm := make(map[string]string, len(data))
	for k := range data {
		byNorm[normalizeKey(k)] = k
	}
	for _, name := range keys {
		if k, ok := byNorm[normalizeKey(name)]; ok {
			if v := data[k]; v != nil {
				return v
			}
		}
	}
	return nil
}

func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}

func asInt64(v any, def int64) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case string:
		var out int64
		if _, err := fmt.Sscanf(strings.TrimSpace(n), "%d", &out); err == nil {
			return out
		}
	}
	return def
}
