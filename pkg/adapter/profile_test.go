package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/protocol"
)

func TestResolveProfile(t *testing.T) {
	p, err := ResolveProfile("")
	require.NoError(t, err)
	assert.Equal(t, "ec600", p.Name)
	assert.Equal(t, AudioUpFramedPacket, p.AudioUpMode)

	p, err = ResolveProfile("Generic_MQTT")
	require.NoError(t, err)
	assert.Equal(t, "generic_mqtt", p.Name)
	assert.Equal(t, AudioUpJSONB64, p.AudioUpMode)

	_, err = ResolveProfile("sim7600")
	require.Error(t, err)

	assert.Equal(t, []string{"ec600", "generic_mqtt"}, ProfileNames())
}

func TestDecodeControlAppliesAliases(t *testing.T) {
	p := GenericMQTTProfile()
	env, err := p.DecodeControl(map[string]any{
		"Type":      "boot",
		"deviceId":  "cane-1",
		"sessionId": "sess-9",
		"Seq":       float64(4),
		"payload":   map[string]any{"chunkIndex": float64(2)},
	}, "", "")
	require.NoError(t, err)

	assert.Equal(t, "hello", env.Type)
	assert.Equal(t, "cane-1", env.DeviceID)
	assert.Equal(t, "sess-9", env.SessionID)
	assert.Equal(t, int64(4), env.Seq)
	// Canonical key added, vendor key kept.
	assert.Equal(t, float64(2), env.Payload["chunk_index"])
	assert.Equal(t, float64(2), env.Payload["chunkIndex"])
	require.NoError(t, env.Validate())
}

func TestDecodeControlFlatPayload(t *testing.T) {
	p := EC600Profile()
	env, err := p.DecodeControl(map[string]any{
		"type":    "telemetry",
		"seq":     float64(7),
		"battery": float64(88),
		"gps":     map[string]any{"lat": 31.2},
	}, "cane-2", "cane-2-default")
	require.NoError(t, err)

	assert.Equal(t, "telemetry", env.Type)
	assert.Equal(t, "cane-2", env.DeviceID)
	assert.Equal(t, "cane-2-default", env.SessionID)
	assert.Equal(t, float64(88), env.Payload["battery"])
	assert.NotContains(t, env.Payload, "seq")
	assert.NotContains(t, env.Payload, "type")
}

func TestDecodeControlScalarPayload(t *testing.T) {
	p := EC600Profile()
	env, err := p.DecodeControl(map[string]any{
		"type":    "heartbeat",
		"payload": "ok",
	}, "cane-3", "")
	require.NoError(t, err)
	assert.Equal(t, "ok", env.Payload["value"])
}

func TestDecodeControlMissingTypeAndDevice(t *testing.T) {
	p := EC600Profile()

	_, err := p.DecodeControl(map[string]any{"device_id": "cane-1"}, "", "")
	require.ErrorIs(t, err, protocol.ErrBadEnvelope)

	_, err = p.DecodeControl(map[string]any{"type": "hello"}, "", "")
	require.ErrorIs(t, err, protocol.ErrBadEnvelope)
}

func TestNormalizeEventType(t *testing.T) {
	p := GenericMQTTProfile()
	assert.Equal(t, "hello", p.NormalizeEventType("Boot"))
	assert.Equal(t, "heartbeat", p.NormalizeEventType("keepalive"))
	assert.Equal(t, "listen_start", p.NormalizeEventType("listen_start"))
	assert.Equal(t, "", p.NormalizeEventType("  "))
}

func TestCommandWireType(t *testing.T) {
	p := EC600Profile()
	p.CommandTypeAliases = map[string]string{"tts_start": "speak_begin"}
	assert.Equal(t, "speak_begin", p.CommandWireType("tts_start"))
	assert.Equal(t, "ack", p.CommandWireType("ack"))
}
