// Package adapter terminates southbound device transports and translates
// vendor payloads into canonical protocol envelopes. Each adapter exposes one
// inbound event stream plus a fire-and-forget command submit; everything
// north of this package is transport independent.
package adapter

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/opencane/edged/pkg/protocol"
)

// ErrTransportUnavailable is returned by Start when the underlying link
// cannot be established.
var ErrTransportUnavailable = errors.New("transport unavailable")

// Adapter is the southbound transport contract. Start brings the transport
// up; Stop drains and closes it and is idempotent. Events terminates when
// Stop is called and is not restartable. Send must preserve per-device
// submission order and may buffer while the device is offline.
type Adapter interface {
	Name() string
	Transport() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Events() <-chan protocol.Envelope
	Send(ctx context.Context, cmd protocol.Envelope) error
}

// Ack sends an ack command acknowledging ackSeq. seq is the outbound
// sequence allocated by the caller.
func Ack(ctx context.Context, a Adapter, deviceID, sessionID string, seq, ackSeq int64) error {
	return a.Send(ctx, protocol.MakeCommand(protocol.CommandAck, deviceID, sessionID, seq, map[string]any{
		"ack_seq": ackSeq,
	}))
}

// CloseSession sends a close command carrying the close reason.
func CloseSession(ctx context.Context, a Adapter, deviceID, sessionID string, seq int64, reason string) error {
	return a.Send(ctx, protocol.MakeCommand(protocol.CommandClose, deviceID, sessionID, seq, map[string]any{
		"reason": reason,
	}))
}

// Metrics counts transport-level outcomes. All counters are monotonically
// increasing and safe for concurrent use.
type Metrics struct {
	EventsIn        atomic.Int64
	CommandsOut     atomic.Int64
	InvalidPayloads atomic.Int64
	Duplicates      atomic.Int64
	ReplayRejected  atomic.Int64
	BufferedControl atomic.Int64
	DroppedOldest   atomic.Int64
	PublishFailures atomic.Int64
	ReplayedControl atomic.Int64
}

// Snapshot returns a point-in-time copy of all counters.
func (m *Metrics) Snapshot() map[string]int64 {
	if m == nil {
		return map[string]int64{}
	}
	return map[string]int64{
		"events_in":        m.EventsIn.Load(),
		"commands_out":     m.CommandsOut.Load(),
		"invalid_payloads": m.InvalidPayloads.Load(),
		"duplicate":        m.Duplicates.Load(),
		"replay_rejected":  m.ReplayRejected.Load(),
		"buffered_control": m.BufferedControl.Load(),
		"dropped_oldest":   m.DroppedOldest.Load(),
		"publish_failures": m.PublishFailures.Load(),
		"replayed_control": m.ReplayedControl.Load(),
	}
}
