package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeEventDefaults(t *testing.T) {
	ev := MakeEvent(EventHello, "dev-1", "sess-1", 1, nil)

	assert.Equal(t, DirectionEvent, ev.Direction)
	assert.Equal(t, "hello", ev.Type)
	assert.Equal(t, "dev-1", ev.DeviceID)
	assert.Equal(t, "sess-1", ev.SessionID)
	assert.NotNil(t, ev.Payload)
	assert.NotEmpty(t, ev.MsgID)
	assert.Positive(t, ev.TS)
	assert.NoError(t, ev.Validate())
}

func TestValidateRejectsBadEnvelopes(t *testing.T) {
	tests := []struct {
		name string
		env  Envelope
	}{
		{"missing direction", Envelope{Type: "hello", DeviceID: "d"}},
		{"missing type", Envelope{Direction: DirectionEvent, DeviceID: "d"}},
		{"missing device", Envelope{Direction: DirectionEvent, Type: "hello"}},
		{"unknown event type", Envelope{Direction: DirectionEvent, Type: "bogus", DeviceID: "d"}},
		{"unknown command type", Envelope{Direction: DirectionCommand, Type: "bogus", DeviceID: "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.env.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadEnvelope)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	ev := MakeEvent(EventAudioChunk, "dev-1", "sess-1", 7, map[string]any{
		"text":        "hello",
		"chunk_index": 1,
	})
	data, err := ev.Marshal()
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, ev.DeviceID, got.DeviceID)
	assert.Equal(t, ev.Seq, got.Seq)
	assert.Equal(t, "hello", PayloadString(got.Payload, "text"))
	assert.Equal(t, int64(1), PayloadInt(got.Payload, -1, "chunk_index"))
}

func TestOperationCommandType(t *testing.T) {
	for op, want := range map[string]CommandType{
		"set_config": CommandSetConfig,
		"tool_call":  CommandToolCall,
		"ota_plan":   CommandOTAPlan,
	} {
		got, ok := OperationCommandType(op)
		require.True(t, ok, op)
		assert.Equal(t, want, got)
	}
	_, ok := OperationCommandType("reboot")
	assert.False(t, ok)
}

func TestPayloadAccessors(t *testing.T) {
	p := map[string]any{
		"a":    "x",
		"n":    float64(42),
		"s":    "17",
		"flag": "yes",
		"f":    "0.5",
		"m":    map[string]any{"k": "v"},
	}
	assert.Equal(t, "x", PayloadString(p, "missing", "a"))
	assert.Equal(t, int64(42), PayloadInt(p, -1, "n"))
	assert.Equal(t, int64(17), PayloadInt(p, -1, "s"))
	assert.True(t, PayloadBool(p, false, "flag"))
	assert.InDelta(t, 0.5, PayloadFloat(p, 0, "f"), 1e-9)
	assert.Equal(t, "v", PayloadMap(p, "m")["k"])
	assert.Nil(t, PayloadMap(p, "a"))
}

func TestCloneIsIndependent(t *testing.T) {
	ev := MakeEvent(EventTelemetry, "d", "s", 3, map[string]any{"battery": 80})
	cp := ev.Clone()
	cp.Payload["battery"] = 10
	assert.Equal(t, 80, ev.Payload["battery"])
}
