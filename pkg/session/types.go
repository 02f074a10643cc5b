// Package session tracks per-(device, session) runtime state, inbound sequence
// de-duplication, and outbound sequence allocation. The manager is the single
// owner of session mutation; other components read copied snapshots.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// State is the high-level runtime state of one device session.
type State string

const (
	StateConnecting State = "connecting"
	StateReady      State = "ready"
	StateListening  State = "listening"
	StateThinking   State = "thinking"
	StateSpeaking   State = "speaking"
	StateClosed     State = "closed"
)

// Session is the in-memory runtime session for one connected device.
// All mutation goes through Manager; callers outside the manager only see
// Snapshot copies.
type Session struct {
	DeviceID        string
	SessionID       string
	State           State
	CreatedAtMS     int64
	LastSeenMS      int64
	LastInboundSeq  int64
	LastOutboundSeq int64
	ClosedAtMS      int64
	CloseReason     string
	Metadata        map[string]any
	Telemetry       map[string]any
}

// Snapshot is a read-only copy of one session handed to other components.
type Snapshot struct {
	DeviceID        string         `json:"device_id"`
	SessionID       string         `json:"session_id"`
	State           State          `json:"state"`
	CreatedAtMS     int64          `json:"created_at_ms"`
	LastSeenMS      int64          `json:"last_seen_ms"`
	LastInboundSeq  int64          `json:"last_inbound_seq"`
	LastOutboundSeq int64          `json:"last_outbound_seq"`
	ClosedAtMS      int64          `json:"closed_at_ms"`
	CloseReason     string         `json:"close_reason"`
	Metadata        map[string]any `json:"metadata"`
	Telemetry       map[string]any `json:"telemetry"`
}

// Record is the write-through shape handed to the persistence store on every
// state-affecting change.
type Record struct {
	DeviceID        string
	SessionID       string
	State           string
	CreatedAtMS     int64
	LastSeenMS      int64
	LastInboundSeq  int64
	LastOutboundSeq int64
	ClosedAtMS      int64
	CloseReason     string
	Metadata        map[string]any
	Telemetry       map[string]any
	UpdatedAtMS     int64
}

// PersistenceStore receives write-through session changes. Errors never block
// the realtime path; the manager logs and counts them.
type PersistenceStore interface {
	UpsertDeviceSession(ctx context.Context, rec Record) error
	CloseDeviceSession(ctx context.Context, deviceID, sessionID, reason string, closedAtMS int64) error
}

func nowMS() int64 {
	return time.Now().UnixMilli()
}

func newSessionID() string {
	return uuid.New().String()
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		DeviceID:        s.DeviceID,
		SessionID:       s.SessionID,
		State:           s.State,
		CreatedAtMS:     s.CreatedAtMS,
		LastSeenMS:      s.LastSeenMS,
		LastInboundSeq:  s.LastInboundSeq,
		LastOutboundSeq: s.LastOutboundSeq,
		ClosedAtMS:      s.ClosedAtMS,
		CloseReason:     s.CloseReason,
		Metadata:        copyMap(s.Metadata),
		Telemetry:       copyMap(s.Telemetry),
	}
}

func (s *Session) record() Record {
	return Record{
		DeviceID:        s.DeviceID,
		SessionID:       s.SessionID,
		State:           string(s.State),
		CreatedAtMS:     s.CreatedAtMS,
		LastSeenMS:      s.LastSeenMS,
		LastInboundSeq:  s.LastInboundSeq,
		LastOutboundSeq: s.LastOutboundSeq,
		ClosedAtMS:      s.ClosedAtMS,
		CloseReason:     s.CloseReason,
		Metadata:        copyMap(s.Metadata),
		Telemetry:       copyMap(s.Telemetry),
		UpdatedAtMS:     s.LastSeenMS,
	}
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
