package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"sync"
	"testing"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/protocol"
)

type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type publishedFrame struct {
	topic   string
	qos     byte
	payload []byte
}

// fakeMQTTClient satisfies pahomqtt.Client and records publishes.
type fakeMQTTClient struct {
	mu          sync.Mutex
	published   []publishedFrame
	failPublish bool
	subscribed  []string
}

func (c *fakeMQTTClient) IsConnected() bool      { return true }
func (c *fakeMQTTClient) IsConnectionOpen() bool { return true }
func (c *fakeMQTTClient) Connect() pahomqtt.Token {
	return &fakeToken{}
}
func (c *fakeMQTTClient) Disconnect(uint) {}
func (c *fakeMQTTClient) Publish(topic string, qos byte, _ bool, payload interface{}) pahomqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failPublish {
		return &fakeToken{err: assert.AnError}
	}
	var data []byte
	switch p := payload.(type) {
	case []byte:
		data = append([]byte(nil), p...)
	case string:
		data = []byte(p)
	}
	c.published = append(c.published, publishedFrame{topic: topic, qos: qos, payload: data})
	return &fakeToken{}
}
func (c *fakeMQTTClient) Subscribe(topic string, _ byte, _ pahomqtt.MessageHandler) pahomqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribed = append(c.subscribed, topic)
	return &fakeToken{}
}
func (c *fakeMQTTClient) SubscribeMultiple(map[string]byte, pahomqtt.MessageHandler) pahomqtt.Token {
	return &fakeToken{}
}
func (c *fakeMQTTClient) Unsubscribe(...string) pahomqtt.Token         { return &fakeToken{} }
func (c *fakeMQTTClient) AddRoute(string, pahomqtt.MessageHandler)     {}
func (c *fakeMQTTClient) OptionsReader() pahomqtt.ClientOptionsReader { return pahomqtt.ClientOptionsReader{} }

func (c *fakeMQTTClient) frames() []publishedFrame {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]publishedFrame, len(c.published))
	copy(out, c.published)
	return out
}

func newTestMQTTAdapter(t *testing.T, cfg MQTTConfig, profile Profile) (*MQTTAdapter, *fakeMQTTClient) {
	t.Helper()
	a := NewMQTTAdapter(cfg, profile, nil, &Metrics{})
	fake := &fakeMQTTClient{}
	a.client = fake
	a.connected = true
	t.Cleanup(func() { _ = a.Stop(context.Background()) })
	return a, fake
}

func TestMQTTControlMessageDecodes(t *testing.T) {
	a, _ := newTestMQTTAdapter(t, MQTTConfig{}, EC600Profile())

	payload, err := json.Marshal(map[string]any{
		"type":       "hello",
		"session_id": "sess-1",
		"seq":        1,
		"payload":    map[string]any{"capabilities": map[string]any{"mic": true}},
	})
	require.NoError(t, err)
	a.handleMessage("device/cane-1/up/control", payload)

	env := waitEvent(t, a.Events())
	assert.Equal(t, "hello", env.Type)
	assert.Equal(t, "cane-1", env.DeviceID)
	assert.Equal(t, "sess-1", env.SessionID)
	// The session sticks for later unaddressed uplinks.
	assert.Equal(t, "sess-1", a.sessionFor("cane-1"))
}

func TestMQTTInvalidControlJSON(t *testing.T) {
	a, _ := newTestMQTTAdapter(t, MQTTConfig{}, EC600Profile())

	a.handleMessage("device/cane-1/up/control", []byte("{not json"))

	env := waitEvent(t, a.Events())
	assert.Equal(t, "error", env.Type)
	assert.Equal(t, "cane-1", env.DeviceID)
	assert.Equal(t, "cane-1-default", env.SessionID)
	assert.Equal(t, "invalid control payload", env.Payload["error"])
	assert.Equal(t, int64(1), a.metrics.InvalidPayloads.Load())
}

func TestMQTTFramedAudioUplink(t *testing.T) {
	a, _ := newTestMQTTAdapter(t, MQTTConfig{}, EC600Profile())

	audio := []byte{0xAA, 0xBB, 0xCC}
	a.handleMessage("device/cane-1/up/audio", BuildAudioPacket(DefaultPacketMagic, 5, 999, audio))

	env := waitEvent(t, a.Events())
	assert.Equal(t, "audio_chunk", env.Type)
	assert.Equal(t, int64(5), env.Seq)
	assert.Equal(t, "opus", env.Payload["encoding"])
	decoded, err := base64.StdEncoding.DecodeString(env.Payload["audio_b64"].(string))
	require.NoError(t, err)
	assert.Equal(t, audio, decoded)
}

func TestMQTTInvalidAudioPacket(t *testing.T) {
	a, _ := newTestMQTTAdapter(t, MQTTConfig{}, EC600Profile())

	a.handleMessage("device/cane-1/up/audio", []byte{0x00, 0x01})

	env := waitEvent(t, a.Events())
	assert.Equal(t, "error", env.Type)
	assert.Equal(t, "invalid audio packet", env.Payload["error"])
}

func TestMQTTJSONB64AudioUplink(t *testing.T) {
	a, _ := newTestMQTTAdapter(t, MQTTConfig{}, GenericMQTTProfile())

	payload, err := json.Marshal(map[string]any{
		"audio_b64": "aGVsbG8=",
		"seq":       3,
		"timestamp": 777,
		"format":    "pcm16",
	})
	require.NoError(t, err)
	a.handleMessage("device/cane-1/up/audio", payload)

	env := waitEvent(t, a.Events())
	assert.Equal(t, "audio_chunk", env.Type)
	assert.Equal(t, int64(3), env.Seq)
	assert.Equal(t, "aGVsbG8=", env.Payload["audio_b64"])
	assert.Equal(t, "pcm16", env.Payload["encoding"])
	assert.Equal(t, int64(777), env.Payload["timestamp"])
}

func TestMQTTSendControlJSON(t *testing.T) {
	a, fake := newTestMQTTAdapter(t, MQTTConfig{QoSControl: 1}, EC600Profile())

	cmd := protocol.MakeCommand(protocol.CommandTaskUpdate, "cane-1", "sess-1", 4, map[string]any{
		"task_id": "t-1",
		"status":  "running",
	})
	require.NoError(t, a.Send(context.Background(), cmd))

	frames := fake.frames()
	require.Len(t, frames, 1)
	assert.Equal(t, "device/cane-1/down/control", frames[0].topic)
	assert.Equal(t, byte(1), frames[0].qos)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(frames[0].payload, &sent))
	assert.Equal(t, "task_update", sent["type"])
	assert.Equal(t, "cane-1", sent["device_id"])
	assert.Equal(t, float64(4), sent["seq"])
}

func TestMQTTSendTTSChunkAudioFramed(t *testing.T) {
	a, fake := newTestMQTTAdapter(t, MQTTConfig{QoSAudio: 0, QoSControl: 1}, EC600Profile())

	audio := []byte{0x01, 0x02, 0x03, 0x04}
	cmd := protocol.MakeCommand(protocol.CommandTTSChunk, "cane-1", "sess-1", 9, map[string]any{
		"audio_b64": base64.StdEncoding.EncodeToString(audio),
		"encoding":  "opus",
	})
	require.NoError(t, a.Send(context.Background(), cmd))

	frames := fake.frames()
	require.Len(t, frames, 1)
	assert.Equal(t, "device/cane-1/down/audio", frames[0].topic)
	seq, _, got, err := ParseAudioPacket(DefaultPacketMagic, frames[0].payload)
	require.NoError(t, err)
	assert.Equal(t, int64(9), seq)
	assert.Equal(t, audio, got)
	// Framed audio is not remembered for control replay.
	assert.Empty(t, a.controlWindow["cane-1"])
}

func TestMQTTTextTTSChunkStaysControl(t *testing.T) {
	a, fake := newTestMQTTAdapter(t, MQTTConfig{}, EC600Profile())

	cmd := protocol.MakeCommand(protocol.CommandTTSChunk, "cane-1", "sess-1", 2, map[string]any{
		"text": "前方有台阶",
	})
	require.NoError(t, a.Send(context.Background(), cmd))

	frames := fake.frames()
	require.Len(t, frames, 1)
	assert.Equal(t, "device/cane-1/down/control", frames[0].topic)
}

func TestMQTTOfflineBufferAndHelloFlush(t *testing.T) {
	a, fake := newTestMQTTAdapter(t, MQTTConfig{}, EC600Profile())
	a.connected = false

	for seq := int64(1); seq <= 2; seq++ {
		cmd := protocol.MakeCommand(protocol.CommandTaskUpdate, "cane-1", "sess-1", seq, map[string]any{
			"status": "running",
		})
		require.NoError(t, a.Send(context.Background(), cmd))
	}
	assert.Empty(t, fake.frames())
	assert.Len(t, a.pending["cane-1"], 2)
	assert.Equal(t, int64(2), a.metrics.BufferedControl.Load())

	// The device reconnects and says hello; buffered frames flush in order.
	a.connected = true
	hello, err := json.Marshal(map[string]any{"type": "hello", "session_id": "sess-1", "seq": 3})
	require.NoError(t, err)
	a.handleMessage("device/cane-1/up/control", hello)
	waitEvent(t, a.Events())

	frames := fake.frames()
	require.Len(t, frames, 2)
	assert.Empty(t, a.pending["cane-1"])
	var first map[string]any
	require.NoError(t, json.Unmarshal(frames[0].payload, &first))
	assert.Equal(t, float64(1), first["seq"])
}

func TestMQTTOfflineBufferDropsOldest(t *testing.T) {
	a, _ := newTestMQTTAdapter(t, MQTTConfig{OfflineControlBuffer: 2}, EC600Profile())
	a.connected = false

	for seq := int64(1); seq <= 3; seq++ {
		cmd := protocol.MakeCommand(protocol.CommandSetConfig, "cane-1", "sess-1", seq, nil)
		require.NoError(t, a.Send(context.Background(), cmd))
	}

	queue := a.pending["cane-1"]
	require.Len(t, queue, 2)
	assert.Equal(t, int64(2), queue[0].seq)
	assert.Equal(t, int64(3), queue[1].seq)
	assert.Equal(t, int64(1), a.metrics.DroppedOldest.Load())
}

func TestMQTTReplayOnHelloResume(t *testing.T) {
	a, fake := newTestMQTTAdapter(t, MQTTConfig{ReplayEnabled: true}, EC600Profile())

	for seq := int64(1); seq <= 3; seq++ {
		cmd := protocol.MakeCommand(protocol.CommandTaskUpdate, "cane-1", "sess-1", seq, map[string]any{
			"status": "running",
		})
		require.NoError(t, a.Send(context.Background(), cmd))
	}
	require.Len(t, fake.frames(), 3)

	hello, err := json.Marshal(map[string]any{
		"type":       "hello",
		"session_id": "sess-1",
		"seq":        9,
		"payload":    map[string]any{"resume": map[string]any{"last_recv_seq": 1}},
	})
	require.NoError(t, err)
	a.handleMessage("device/cane-1/up/control", hello)
	waitEvent(t, a.Events())

	// Frames with seq > 1 are republished.
	frames := fake.frames()
	require.Len(t, frames, 5)
	assert.Equal(t, int64(2), a.metrics.ReplayedControl.Load())
}

func TestMQTTPublishFailureBuffersControl(t *testing.T) {
	a, fake := newTestMQTTAdapter(t, MQTTConfig{}, EC600Profile())
	fake.failPublish = true

	cmd := protocol.MakeCommand(protocol.CommandTaskUpdate, "cane-1", "sess-1", 1, nil)
	require.NoError(t, a.Send(context.Background(), cmd))

	assert.Len(t, a.pending["cane-1"], 1)
	assert.Equal(t, int64(1), a.metrics.PublishFailures.Load())
}

func TestTopicMatching(t *testing.T) {
	assert.True(t, topicMatches("device/+/up/control", "device/cane-1/up/control"))
	assert.False(t, topicMatches("device/+/up/control", "device/cane-1/up/audio"))
	assert.False(t, topicMatches("device/+/up/control", "device/cane-1/up"))
	assert.True(t, topicMatches("device/#", "device/cane-1/up/control"))
	assert.False(t, topicMatches("device/#/up", "device/cane-1/up"))

	assert.Equal(t, "cane-1", extractDeviceIDFromTopic("device/+/up/audio", "device/cane-1/up/audio"))
	assert.Equal(t, "", extractDeviceIDFromTopic("device/+/up/audio", "device/cane-1/up/control"))
}
