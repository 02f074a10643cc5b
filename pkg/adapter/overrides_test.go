package adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverrides(t *testing.T) {
	o, err := ParseOverrides(map[string]any{
		"packet_magic":  0xA2,
		"audio_up_mode": "json_b64",
		"event_type_aliases": map[string]any{
			"wakeup": "listen_start",
		},
		"replay_window":  128,
		"max_clock_skew": "90s",
	})
	require.NoError(t, err)
	require.NotNil(t, o)

	require.NotNil(t, o.PacketMagic)
	assert.Equal(t, 0xA2, *o.PacketMagic)
	assert.Equal(t, AudioUpJSONB64, o.AudioUpMode)
	assert.Equal(t, "listen_start", o.EventTypeAliases["wakeup"])
	assert.Equal(t, 128, o.ReplayWindow)
	assert.Equal(t, "90s", o.MaxClockSkew)
}

func TestParseOverridesEmpty(t *testing.T) {
	o, err := ParseOverrides(nil)
	require.NoError(t, err)
	assert.Nil(t, o)
}

func TestWithOverridesMergesAliasTables(t *testing.T) {
	base := EC600Profile()
	merged, err := base.WithOverrides(&ProfileOverrides{
		EventTypeAliases: map[string]string{
			"boot":   "heartbeat", // override an existing alias
			"wakeup": "listen_start",
		},
		PayloadAliases: map[string]string{
			"imgB64": "image_base64",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "heartbeat", merged.EventTypeAliases["boot"])
	assert.Equal(t, "listen_start", merged.EventTypeAliases["wakeup"])
	// Base entries not named in the override survive.
	assert.Equal(t, "chunk_index", merged.PayloadAliases["chunkIndex"])
	assert.Equal(t, "image_base64", merged.PayloadAliases["imgB64"])

	// Built-in profile stays pristine.
	assert.Equal(t, "hello", base.EventTypeAliases["boot"])
	assert.NotContains(t, base.PayloadAliases, "imgB64")
}

func TestWithOverridesControlFieldAliases(t *testing.T) {
	base := EC600Profile()
	merged, err := base.WithOverrides(&ProfileOverrides{
		ControlFieldAliases: map[string][]string{
			"seq": {"seqNo"},
		},
	})
	require.NoError(t, err)

	// The overridden field is replaced wholesale, the rest stay.
	assert.Equal(t, []string{"seqNo"}, merged.ControlFieldAliases["seq"])
	assert.Equal(t, []string{"type", "event", "cmd"}, merged.ControlFieldAliases["type"])

	env, err := merged.DecodeControl(map[string]any{
		"type":     "hello",
		"deviceId": "cane-1",
		"seqNo":    float64(12),
	}, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(12), env.Seq)
}

func TestWithOverridesScalars(t *testing.T) {
	magic := 0xA2
	base := EC600Profile()
	merged, err := base.WithOverrides(&ProfileOverrides{
		PacketMagic:  &magic,
		AudioUpMode:  AudioUpJSONB64,
		ReplayWindow: 128,
		MaxClockSkew: "0s",
	})
	require.NoError(t, err)

	assert.Equal(t, byte(0xA2), merged.PacketMagic)
	assert.Equal(t, AudioUpJSONB64, merged.AudioUpMode)
	assert.Equal(t, 128, merged.ReplayWindow)
	assert.Equal(t, time.Duration(0), merged.MaxClockSkew, "explicit 0s disables the skew check")
	assert.Equal(t, "ec600", merged.Name)
}

func TestWithOverridesNil(t *testing.T) {
	base := GenericMQTTProfile()
	merged, err := base.WithOverrides(nil)
	require.NoError(t, err)
	assert.Equal(t, base.Name, merged.Name)
	assert.Equal(t, base.AudioUpMode, merged.AudioUpMode)
}

func TestWithOverridesRejectsBadValues(t *testing.T) {
	base := EC600Profile()

	tooBig := 0x1A1
	_, err := base.WithOverrides(&ProfileOverrides{PacketMagic: &tooBig})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "packet_magic")

	_, err = base.WithOverrides(&ProfileOverrides{AudioUpMode: "carrier_pigeon"})
	require.Error(t, err)

	_, err = base.WithOverrides(&ProfileOverrides{MaxClockSkew: "soon"})
	require.Error(t, err)

	_, err = base.WithOverrides(&ProfileOverrides{MaxClockSkew: "-5s"})
	require.Error(t, err)
}
