// Package protocol defines the canonical transport-independent envelope shared
// by southbound adapters and the device runtime. Adapters translate vendor
// payloads into this shape exactly once; everything north of the adapter works
// only with Envelope values.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Envelope is the canonical record of one device event or runtime command.
// Within one session and one direction, seq values are strictly increasing as
// intended by the origin; receivers tolerate duplicates and gaps.
type Envelope struct {
	Direction Direction      `json:"direction"`
	Type      string         `json:"type"`
	DeviceID  string         `json:"device_id"`
	SessionID string         `json:"session_id"`
	Seq       int64          `json:"seq"`
	TS        int64          `json:"ts_ms"`
	Payload   map[string]any `json:"payload,omitempty"`
	TraceID   string         `json:"trace_id,omitempty"`
	MsgID     string         `json:"msg_id,omitempty"`
}

// NowMS returns the current wall clock in unix milliseconds.
func NowMS() int64 {
	return time.Now().UnixMilli()
}

// MakeEvent builds a device event envelope with a fresh msg id.
func MakeEvent(t EventType, deviceID, sessionID string, seq int64, payload map[string]any) Envelope {
	if payload == nil {
		payload = map[string]any{}
	}
	return Envelope{
		Direction: DirectionEvent,
		Type:      string(t),
		DeviceID:  deviceID,
		SessionID: sessionID,
		Seq:       seq,
		TS:        NowMS(),
		Payload:   payload,
		MsgID:     uuid.New().String(),
	}
}

// MakeCommand builds a runtime command envelope with a fresh msg id.
func MakeCommand(t CommandType, deviceID, sessionID string, seq int64, payload map[string]any) Envelope {
	if payload == nil {
		payload = map[string]any{}
	}
	return Envelope{
		Direction: DirectionCommand,
		Type:      string(t),
		DeviceID:  deviceID,
		SessionID: sessionID,
		Seq:       seq,
		TS:        NowMS(),
		Payload:   payload,
		MsgID:     uuid.New().String(),
	}
}

var (
	// ErrBadEnvelope is returned when an envelope fails structural validation.
	ErrBadEnvelope = errors.New("bad envelope")
)

// Validate checks the structural invariants of the envelope.
func (e Envelope) Validate() error {
	if e.Direction != DirectionEvent && e.Direction != DirectionCommand {
		return fmt.Errorf("%w: unknown direction %q", ErrBadEnvelope, e.Direction)
	}
	if e.Type == "" {
		return fmt.Errorf("%w: type is required", ErrBadEnvelope)
	}
	if e.DeviceID == "" {
		return fmt.Errorf("%w: device_id is required", ErrBadEnvelope)
	}
	if e.Direction == DirectionEvent {
		if _, ok := ParseEventType(e.Type); !ok {
			return fmt.Errorf("%w: unknown event type %q", ErrBadEnvelope, e.Type)
		}
	} else {
		if _, ok := ParseCommandType(e.Type); !ok {
			return fmt.Errorf("%w: unknown command type %q", ErrBadEnvelope, e.Type)
		}
	}
	return nil
}

// EventType returns the typed event kind; ok is false for command envelopes
// and unknown types.
func (e Envelope) EventType() (EventType, bool) {
	if e.Direction != DirectionEvent {
		return "", false
	}
	return ParseEventType(e.Type)
}

// CommandType returns the typed command kind; ok is false for event envelopes
// and unknown types.
func (e Envelope) CommandType() (CommandType, bool) {
	if e.Direction != DirectionCommand {
		return "", false
	}
	return ParseCommandType(e.Type)
}

// Marshal encodes the envelope as its canonical JSON wire form.
func (e Envelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Unmarshal decodes a canonical JSON wire form into an envelope.
func Unmarshal(data []byte) (Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}
	return e, nil
}

// Clone returns a deep copy safe for mutation by the caller. Envelopes are
// value types once emitted; clone before editing a stored one.
func (e Envelope) Clone() Envelope {
	out := e
	out.Payload = make(map[string]any, len(e.Payload))
	for k, v := range e.Payload {
		out.Payload[k] = v
	}
	return out
}
