package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudioPacketRoundTrip(t *testing.T) {
	audio := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	packet := BuildAudioPacket(DefaultPacketMagic, 42, 1700000, audio)

	seq, ts, got, err := ParseAudioPacket(DefaultPacketMagic, packet)
	require.NoError(t, err)
	assert.Equal(t, int64(42), seq)
	assert.Equal(t, int64(1700000), ts)
	assert.Equal(t, audio, got)
}

func TestAudioPacketEmptyPayload(t *testing.T) {
	packet := BuildAudioPacket(DefaultPacketMagic, 1, 2, nil)
	require.Len(t, packet, packetHeaderLen)

	seq, ts, audio, err := ParseAudioPacket(DefaultPacketMagic, packet)
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)
	assert.Equal(t, int64(2), ts)
	assert.Empty(t, audio)
}

func TestParseAudioPacketRejectsShort(t *testing.T) {
	_, _, _, err := ParseAudioPacket(DefaultPacketMagic, []byte{0xA1, 0x01, 0x00})
	require.ErrorIs(t, err, ErrBadPacket)
}

func TestParseAudioPacketRejectsWrongMagic(t *testing.T) {
	packet := BuildAudioPacket(0xB2, 1, 1, []byte("x"))
	_, _, _, err := ParseAudioPacket(DefaultPacketMagic, packet)
	require.ErrorIs(t, err, ErrBadPacket)
}

func TestParseAudioPacketRejectsOverlongDeclaredLength(t *testing.T) {
	packet := BuildAudioPacket(DefaultPacketMagic, 1, 1, []byte("abc"))
	packet[15] = 0xFF // declared length far beyond the actual body
	_, _, _, err := ParseAudioPacket(DefaultPacketMagic, packet)
	require.ErrorIs(t, err, ErrBadPacket)
}
