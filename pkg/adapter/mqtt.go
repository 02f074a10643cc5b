package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/opencane/edged/pkg/protocol"
)

const (
	mqttConnectTimeout = 15 * time.Second
	mqttPublishTimeout = 5 * time.Second

	defaultControlReplayWindow  = 50
	defaultOfflineControlBuffer = 100
)

// MQTTConfig configures the broker session and topic layout.
type MQTTConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	ClientID string

	KeepaliveSeconds    int
	ReconnectMinSeconds int
	ReconnectMaxSeconds int

	QoSControl byte
	QoSAudio   byte

	// Uplink subscriptions use a + wildcard in the device segment.
	UpControlTopic string
	UpAudioTopic   string
	// Downlink templates substitute {device_id}.
	DownControlTopicTemplate string
	DownAudioTopicTemplate   string

	// ReplayEnabled turns on control replay to reconnecting devices that
	// report a last_recv_seq in their hello.
	ReplayEnabled        bool
	ControlReplayWindow  int
	OfflineControlBuffer int

	QueueSize int
}

func (c *MQTTConfig) applyDefaults() {
	if c.Host == "" {
		c.Host = "127.0.0.1"
	}
	if c.Port == 0 {
		c.Port = 1883
	}
	if c.ClientID == "" {
		c.ClientID = "edged-runtime"
	}
	if c.KeepaliveSeconds <= 0 {
		c.KeepaliveSeconds = 30
	}
	if c.ReconnectMinSeconds <= 0 {
		c.ReconnectMinSeconds = 1
	}
	if c.ReconnectMaxSeconds < c.ReconnectMinSeconds {
		c.ReconnectMaxSeconds = c.ReconnectMinSeconds * 10
	}
	if c.UpControlTopic == "" {
		c.UpControlTopic = "device/+/up/control"
	}
	if c.UpAudioTopic == "" {
		c.UpAudioTopic = "device/+/up/audio"
	}
	if c.DownControlTopicTemplate == "" {
		c.DownControlTopicTemplate = "device/{device_id}/down/control"
	}
	if c.DownAudioTopicTemplate == "" {
		c.DownAudioTopicTemplate = "device/{device_id}/down/audio"
	}
	if c.ControlReplayWindow <= 0 {
		c.ControlReplayWindow = defaultControlReplayWindow
	}
	if c.OfflineControlBuffer <= 0 {
		c.OfflineControlBuffer = defaultOfflineControlBuffer
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 256
	}
}

// sentControl is one serialized control frame kept for replay or offline
// delivery.
type sentControl struct {
	seq     int64
	topic   string
	payload []byte
	qos     byte
}

// MQTTAdapter terminates a broker session for packet-framed modem devices.
// Control JSON flows on the control topics; opus audio flows as framed
// packets on the audio topics. Successfully published control frames are
// remembered in a per-device window so a reconnecting device can ask for a
// replay; frames that cannot be published are buffered up to a bound with
// drop-oldest overflow.
type MQTTAdapter struct {
	cfg     MQTTConfig
	profile Profile
	logger  *slog.Logger
	metrics *Metrics

	events   chan protocol.Envelope
	done     chan struct{}
	stopOnce sync.Once

	// newClient is a seam for tests.
	newClient func(*pahomqtt.ClientOptions) pahomqtt.Client

	mu              sync.Mutex
	client          pahomqtt.Client
	connected       bool
	sessionByDevice map[string]string
	controlWindow   map[string][]sentControl
	pending         map[string][]sentControl
}

var _ Adapter = (*MQTTAdapter)(nil)

// NewMQTTAdapter builds an MQTT adapter with the given device profile.
// logger and metrics may be nil.
func NewMQTTAdapter(cfg MQTTConfig, profile Profile, logger *slog.Logger, metrics *Metrics) *MQTTAdapter {
	cfg.applyDefaults()
	if profile.PacketMagic == 0 {
		profile.PacketMagic = DefaultPacketMagic
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MQTTAdapter{
		cfg:             cfg,
		profile:         profile,
		logger:          logger,
		metrics:         metrics,
		events:          make(chan protocol.Envelope, cfg.QueueSize),
		done:            make(chan struct{}),
		newClient:       pahomqtt.NewClient,
		sessionByDevice: make(map[string]string),
		controlWindow:   make(map[string][]sentControl),
		pending:         make(map[string][]sentControl),
	}
}

func (a *MQTTAdapter) Name() string      { return a.profile.Name }
func (a *MQTTAdapter) Transport() string { return "mqtt" }

// Start connects to the broker and subscribes to both uplink topics.
func (a *MQTTAdapter) Start(ctx context.Context) error {
	opts := pahomqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%d", a.cfg.Host, a.cfg.Port)).
		SetClientID(a.cfg.ClientID).
		SetKeepAlive(time.Duration(a.cfg.KeepaliveSeconds) * time.Second).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(time.Duration(a.cfg.ReconnectMinSeconds) * time.Second).
		SetMaxReconnectInterval(time.Duration(a.cfg.ReconnectMaxSeconds) * time.Second)
	if a.cfg.Username != "" {
		opts.SetUsername(a.cfg.Username)
		opts.SetPassword(a.cfg.Password)
	}
	opts.SetOnConnectHandler(func(client pahomqtt.Client) {
		a.mu.Lock()
		a.connected = true
		a.mu.Unlock()
		a.subscribeUplinks(client)
	})
	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
		a.mu.Lock()
		a.connected = false
		a.mu.Unlock()
		a.logger.Warn("mqtt connection lost", "error", err)
	})

	client := a.newClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(mqttConnectTimeout) {
		return fmt.Errorf("%w: mqtt connect to %s:%d timed out", ErrTransportUnavailable, a.cfg.Host, a.cfg.Port)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: mqtt connect to %s:%d: %v", ErrTransportUnavailable, a.cfg.Host, a.cfg.Port, err)
	}
	a.mu.Lock()
	a.client = client
	a.mu.Unlock()
	a.logger.Info("mqtt adapter connected",
		"broker", fmt.Sprintf("%s:%d", a.cfg.Host, a.cfg.Port),
		"profile", a.profile.Name)
	return nil
}

func (a *MQTTAdapter) subscribeUplinks(client pahomqtt.Client) {
	handler := func(_ pahomqtt.Client, msg pahomqtt.Message) {
		a.handleMessage(msg.Topic(), msg.Payload())
	}
	for _, topic := range []string{a.cfg.UpControlTopic, a.cfg.UpAudioTopic} {
		token := client.Subscribe(topic, a.cfg.QoSControl, handler)
		if !token.WaitTimeout(mqttConnectTimeout) || token.Error() != nil {
			a.logger.Error("mqtt subscribe failed", "topic", topic, "error", token.Error())
		}
	}
}

// Stop disconnects from the broker and terminates the event stream.
// Idempotent.
func (a *MQTTAdapter) Stop(context.Context) error {
	a.stopOnce.Do(func() {
		close(a.done)
		a.mu.Lock()
		client := a.client
		a.client = nil
		a.connected = false
		a.mu.Unlock()
		if client != nil {
			client.Disconnect(250)
		}
		close(a.events)
	})
	return nil
}

func (a *MQTTAdapter) Events() <-chan protocol.Envelope { return a.events }

// Send publishes one command. tts_chunk frames carrying audio go to the
// audio topic as framed packets; everything else is control JSON. Control
// frames that cannot be delivered are buffered for the device.
func (a *MQTTAdapter) Send(_ context.Context, cmd protocol.Envelope) error {
	topic := renderTopic(a.cfg.DownControlTopicTemplate, cmd.DeviceID)
	qos := a.cfg.QoSControl
	isControlJSON := true
	var payload []byte

	if cmd.Type == string(protocol.CommandTTSChunk) {
		if b64, _ := cmd.Payload["audio_b64"].(string); b64 != "" {
			audio, err := base64.StdEncoding.DecodeString(b64)
			if err != nil {
				a.logger.Warn("invalid audio_b64 in tts_chunk, sending as control JSON",
					"device_id", cmd.DeviceID)
			} else {
				isControlJSON = false
				topic = renderTopic(a.cfg.DownAudioTopicTemplate, cmd.DeviceID)
				qos = a.cfg.QoSAudio
				payload = BuildAudioPacket(a.profile.PacketMagic, cmd.Seq, cmd.TS, audio)
			}
		}
	}
	if isControlJSON {
		data, err := a.serializeControl(cmd)
		if err != nil {
			return fmt.Errorf("failed to serialize command: %w", err)
		}
		payload = data
	}

	a.mu.Lock()
	client := a.client
	connected := a.connected
	a.mu.Unlock()

	if client == nil || !connected {
		if isControlJSON {
			a.bufferPendingControl(cmd.DeviceID, sentControl{cmd.Seq, topic, payload, qos})
		}
		a.logger.Warn("mqtt adapter disconnected, control command buffered or dropped",
			"device_id", cmd.DeviceID, "type", cmd.Type)
		return nil
	}

	if err := a.publish(client, topic, qos, payload); err != nil {
		if a.metrics != nil {
			a.metrics.PublishFailures.Add(1)
		}
		a.logger.Warn("mqtt publish failed", "topic", topic, "error", err)
		if isControlJSON {
			a.bufferPendingControl(cmd.DeviceID, sentControl{cmd.Seq, topic, payload, qos})
		}
		return nil
	}
	if a.metrics != nil {
		a.metrics.CommandsOut.Add(1)
	}
	if isControlJSON {
		a.rememberControlWindow(cmd.DeviceID, sentControl{cmd.Seq, topic, payload, qos})
	}
	return nil
}

func (a *MQTTAdapter) publish(client pahomqtt.Client, topic string, qos byte, payload []byte) error {
	token := client.Publish(topic, qos, false, payload)
	if !token.WaitTimeout(mqttPublishTimeout) {
		return fmt.Errorf("publish to %s timed out", topic)
	}
	return token.Error()
}

// serializeControl renders the downlink control JSON, applying the
// profile's command type aliases and downlink key names.
func (a *MQTTAdapter) serializeControl(cmd protocol.Envelope) ([]byte, error) {
	typeKey := a.profile.DownlinkTypeKey
	if typeKey == "" {
		typeKey = "type"
	}
	payloadKey := a.profile.DownlinkPayloadKey
	if payloadKey == "" {
		payloadKey = "payload"
	}
	data := map[string]any{
		typeKey:      a.profile.CommandWireType(cmd.Type),
		"device_id":  cmd.DeviceID,
		"session_id": cmd.SessionID,
		"seq":        cmd.Seq,
		"ts":         cmd.TS,
		payloadKey:   cmd.Payload,
	}
	if cmd.MsgID != "" {
		data["msg_id"] = cmd.MsgID
	}
	return json.Marshal(data)
}

// handleMessage translates one broker message into a canonical event.
func (a *MQTTAdapter) handleMessage(topic string, payload []byte) {
	deviceFromTopic := extractDeviceIDFromTopic(a.cfg.UpControlTopic, topic)
	if deviceFromTopic == "" {
		deviceFromTopic = extractDeviceIDFromTopic(a.cfg.UpAudioTopic, topic)
	}

	switch {
	case topicMatches(a.cfg.UpControlTopic, topic):
		a.handleControlMessage(deviceFromTopic, payload)
	case topicMatches(a.cfg.UpAudioTopic, topic):
		a.handleAudioMessage(deviceFromTopic, payload)
	default:
		a.logger.Debug("mqtt message on unexpected topic", "topic", topic)
	}
}

func (a *MQTTAdapter) handleControlMessage(deviceFromTopic string, payload []byte) {
	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		if a.metrics != nil {
			a.metrics.InvalidPayloads.Add(1)
		}
		device := deviceFromTopic
		if device == "" {
			device = "unknown"
		}
		a.emit(protocol.MakeEvent(protocol.EventError, device, a.sessionFor(device), 0, map[string]any{
			"error": "invalid control payload",
		}))
		return
	}

	env, err := a.profile.DecodeControl(data, deviceFromTopic, a.sessionFor(deviceFromTopic))
	if err != nil {
		if a.metrics != nil {
			a.metrics.InvalidPayloads.Add(1)
		}
		a.logger.Warn("undecodable control message", "device_id", deviceFromTopic, "error", err)
		return
	}
	if env.SessionID != "" {
		a.rememberSession(env.DeviceID, env.SessionID)
	}
	if env.Type == string(protocol.EventHello) {
		if a.cfg.ReplayEnabled {
			if lastRecvSeq, ok := extractLastRecvSeq(env.Payload); ok {
				a.replayControlWindow(env.DeviceID, lastRecvSeq)
			}
		}
		a.flushPendingControl(env.DeviceID)
	}
	a.emit(env)
}

func (a *MQTTAdapter) handleAudioMessage(deviceFromTopic string, payload []byte) {
	if deviceFromTopic == "" {
		return
	}
	sessionID := a.sessionFor(deviceFromTopic)

	var env protocol.Envelope
	var err error
	if a.profile.AudioUpMode == AudioUpJSONB64 {
		env, err = a.parseAudioJSON(payload, deviceFromTopic, sessionID)
	} else {
		var seq, ts int64
		var audio []byte
		seq, ts, audio, err = ParseAudioPacket(a.profile.PacketMagic, payload)
		if err == nil {
			env = protocol.MakeEvent(protocol.EventAudioChunk, deviceFromTopic, sessionID, seq, map[string]any{
				"audio_b64": base64.StdEncoding.EncodeToString(audio),
				"encoding":  "opus",
				"timestamp": ts,
			})
		}
	}
	if err != nil {
		if a.metrics != nil {
			a.metrics.InvalidPayloads.Add(1)
		}
		a.emit(protocol.MakeEvent(protocol.EventError, deviceFromTopic, sessionID, 0, map[string]any{
			"error": "invalid audio packet",
		}))
		return
	}
	a.emit(env)
}

// parseAudioJSON handles json_b64 uplinks, probing the profile's key lists
// at both the top level and a nested payload object.
func (a *MQTTAdapter) parseAudioJSON(payload []byte, deviceID, sessionID string) (protocol.Envelope, error) {
	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		return protocol.Envelope{}, fmt.Errorf("audio json payload: %w", err)
	}
	source := data
	if nested, ok := extractFirst(data, a.profile.ControlFieldAliases["payload"]).(map[string]any); ok {
		source = nested
	}

	b64 := asString(extractFirst(source, a.profile.JSONAudioB64Keys))
	if b64 == "" {
		b64 = asString(extractFirst(data, a.profile.JSONAudioB64Keys))
	}
	if b64 == "" {
		return protocol.Envelope{}, fmt.Errorf("%w: audio json payload missing base64 field", ErrBadPacket)
	}

	seq := asInt64(extractFirst(source, a.profile.JSONAudioSeqKeys), 0)
	if seq <= 0 {
		seq = asInt64(extractFirst(data, a.profile.JSONAudioSeqKeys), 0)
	}
	ts := asInt64(extractFirst(source, a.profile.JSONAudioTSKeys), 0)
	if ts <= 0 {
		ts = asInt64(extractFirst(data, a.profile.JSONAudioTSKeys), 0)
	}
	if ts < 0 {
		ts = 0
	}
	encoding := strings.TrimSpace(asString(extractFirst(source, a.profile.JSONAudioEncodingKeys)))
	if encoding == "" {
		encoding = "opus"
	}

	if override := strings.TrimSpace(asString(extractFirst(source, a.profile.ControlFieldAliases["session_id"]))); override != "" {
		sessionID = override
		a.rememberSession(deviceID, sessionID)
	}
	if seq < 0 {
		seq = 0
	}
	return protocol.MakeEvent(protocol.EventAudioChunk, deviceID, sessionID, seq, map[string]any{
		"audio_b64": b64,
		"encoding":  encoding,
		"timestamp": ts,
	}), nil
}

func (a *MQTTAdapter) emit(env protocol.Envelope) {
	if a.metrics != nil {
		a.metrics.EventsIn.Add(1)
	}
	select {
	case a.events <- env:
	case <-a.done:
	}
}

func (a *MQTTAdapter) sessionFor(deviceID string) string {
	if deviceID == "" {
		return "unknown-default"
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if s := a.sessionByDevice[deviceID]; s != "" {
		return s
	}
	return deviceID + "-default"
}

func (a *MQTTAdapter) rememberSession(deviceID, sessionID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sessionByDevice[deviceID] = sessionID
}

// rememberControlWindow records one delivered control frame for replay.
func (a *MQTTAdapter) rememberControlWindow(deviceID string, frame sentControl) {
	a.mu.Lock()
	defer a.mu.Unlock()
	window := append(a.controlWindow[deviceID], frame)
	if len(window) > a.cfg.ControlReplayWindow {
		window = window[len(window)-a.cfg.ControlReplayWindow:]
	}
	a.controlWindow[deviceID] = window
}

// bufferPendingControl queues one undeliverable control frame, dropping the
// oldest queued frame on overflow.
func (a *MQTTAdapter) bufferPendingControl(deviceID string, frame sentControl) {
	a.mu.Lock()
	defer a.mu.Unlock()
	queue := append(a.pending[deviceID], frame)
	for len(queue) > a.cfg.OfflineControlBuffer {
		queue = queue[1:]
		if a.metrics != nil {
			a.metrics.DroppedOldest.Add(1)
		}
	}
	a.pending[deviceID] = queue
	if a.metrics != nil {
		a.metrics.BufferedControl.Add(1)
	}
}

// replayControlWindow republishes remembered control frames with seq above
// the device's reported watermark.
func (a *MQTTAdapter) replayControlWindow(deviceID string, lastRecvSeq int64) {
	a.mu.Lock()
	client := a.client
	window := append([]sentControl(nil), a.controlWindow[deviceID]...)
	a.mu.Unlock()
	if client == nil {
		return
	}
	for _, frame := range window {
		if frame.seq <= lastRecvSeq {
			continue
		}
		if err := a.publish(client, frame.topic, frame.qos, frame.payload); err != nil {
			a.logger.Warn("control replay publish failed",
				"device_id", deviceID, "seq", frame.seq, "error", err)
			continue
		}
		if a.metrics != nil {
			a.metrics.ReplayedControl.Add(1)
		}
	}
}

// flushPendingControl delivers the offline buffer in order, requeueing the
// remainder on the first failure.
func (a *MQTTAdapter) flushPendingControl(deviceID string) {
	a.mu.Lock()
	client := a.client
	queue := a.pending[deviceID]
	delete(a.pending, deviceID)
	a.mu.Unlock()
	if len(queue) == 0 {
		return
	}
	if client == nil {
		a.requeuePending(deviceID, queue)
		return
	}
	for i, frame := range queue {
		if err := a.publish(client, frame.topic, frame.qos, frame.payload); err != nil {
			a.logger.Warn("pending control flush failed",
				"device_id", deviceID, "seq", frame.seq, "error", err)
			a.requeuePending(deviceID, queue[i:])
			return
		}
		a.rememberControlWindow(deviceID, frame)
	}
}

func (a *MQTTAdapter) requeuePending(deviceID string, frames []sentControl) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending[deviceID] = append(frames, a.pending[deviceID]...)
}

// extractLastRecvSeq reads the resume watermark from a hello payload,
// either at the top level or under a resume object.
func extractLastRecvSeq(payload map[string]any) (int64, bool) {
	candidates := []any{payload["last_recv_seq"], payload["lastRecvSeq"]}
	if resume, ok := payload["resume"].(map[string]any); ok {
		candidates = append(candidates, resume["last_recv_seq"], resume["lastRecvSeq"])
	}
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if v := asInt64(c, -1); v >= 0 {
			return v, true
		}
	}
	return 0, false
}

func renderTopic(template, deviceID string) string {
	return strings.ReplaceAll(template, "{device_id}", deviceID)
}

// topicMatches implements MQTT wildcard matching for + segments and a
// trailing #.
func topicMatches(pattern, topic string) bool {
	patternParts := strings.Split(pattern, "/")
	topicParts := strings.Split(topic, "/")
	for i, part := range patternParts {
		if part == "#" {
			return i == len(patternParts)-1
		}
		if i >= len(topicParts) {
			return false
		}
		if part == "+" {
			continue
		}
		if part != topicParts[i] {
			return false
		}
	}
	return len(patternParts) == len(topicParts)
}

// extractDeviceIDFromTopic returns the topic segment matching the first +
// wildcard in the pattern.
func extractDeviceIDFromTopic(pattern, topic string) string {
	if !topicMatches(pattern, topic) {
		return ""
	}
	patternParts := strings.Split(pattern, "/")
	topicParts := strings.Split(topic, "/")
	for i, part := range patternParts {
		if part == "+" && i < len(topicParts) {
			return topicParts[i]
		}
	}
	return ""
}
