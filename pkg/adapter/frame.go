package adapter

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Framed audio packets share a fixed 16-byte header:
//
//	byte 0      magic (profile dependent, default 0xA1)
//	byte 1      version (currently 1)
//	bytes 2-3   reserved
//	bytes 4-7   sequence, big endian
//	bytes 8-11  timestamp, big endian
//	bytes 12-15 payload length, big endian
//
// The opus payload follows immediately after the header.
const (
	DefaultPacketMagic = 0xA1

	packetVersion   = 1
	packetHeaderLen = 16
)

// ErrBadPacket is returned when a framed audio packet fails validation.
var ErrBadPacket = errors.New("bad audio packet")

// BuildAudioPacket frames one audio payload for the wire.
func BuildAudioPacket(magic byte, seq, ts int64, audio []byte) []byte {
	packet := make([]byte, packetHeaderLen+len(audio))
	packet[0] = magic
	packet[1] = packetVersion
	binary.BigEndian.PutUint32(packet[4:8], uint32(seq))
	binary.BigEndian.PutUint32(packet[8:12], uint32(ts))
	binary.BigEndian.PutUint32(packet[12:16], uint32(len(audio)))
	copy(packet[packetHeaderLen:], audio)
	return packet
}

// ParseAudioPacket validates and unframes one audio packet.
func ParseAudioPacket(magic byte, packet []byte) (seq, ts int64, audio []byte, err error) {
	if len(packet) < packetHeaderLen {
		return 0, 0, nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrBadPacket, len(packet))
	}
	if packet[0] != magic {
		return 0, 0, nil, fmt.Errorf("%w: magic 0x%02X, want 0x%02X", ErrBadPacket, packet[0], magic)
	}
	seq = int64(binary.BigEndian.Uint32(packet[4:8]))
	ts = int64(binary.BigEndian.Uint32(packet[8:12]))
	payloadLen := int(binary.BigEndian.Uint32(packet[12:16]))
	body := packet[packetHeaderLen:]
	if payloadLen > len(body) {
		return 0, 0, nil, fmt.Errorf("%w: declared payload %d exceeds %d remaining bytes", ErrBadPacket, payloadLen, len(body))
	}
	if payloadLen > 0 {
		body = body[:payloadLen]
	}
	return seq, ts, body, nil
}
