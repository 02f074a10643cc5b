package session

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// persistTimeout bounds the write-through store call so a stalled database
// cannot wedge event processing.
const persistTimeout = 5 * time.Second

type key struct {
	deviceID  string
	sessionID string
}

// Manager tracks active sessions and performs sequence bookkeeping.
// Mutation is serialized by the internal mutex; persistence happens outside
// the lock from a copied record.
type Manager struct {
	mu             sync.RWMutex
	sessions       map[key]*Session
	latestByDevice map[string]*Session
	store          PersistenceStore
}

// NewManager creates a session manager. store may be nil (in-memory only).
func NewManager(store PersistenceStore) *Manager {
	return &Manager{
		sessions:       make(map[key]*Session),
		latestByDevice: make(map[string]*Session),
		store:          store,
	}
}

// GetOrCreate returns the session for (deviceID, sessionID), creating it in
// CONNECTING state on first reference. An empty sessionID resolves to the
// device's latest open session, or mints a new id.
func (m *Manager) GetOrCreate(deviceID, sessionID string) Snapshot {
	m.mu.Lock()
	s, created := m.getOrCreateLocked(deviceID, sessionID)
	snap := s.snapshot()
	rec := s.record()
	m.mu.Unlock()

	if created {
		m.persistUpsert(rec)
	}
	return snap
}

func (m *Manager) getOrCreateLocked(deviceID, sessionID string) (*Session, bool) {
	if sessionID != "" {
		if s, ok := m.sessions[key{deviceID, sessionID}]; ok {
			return s, false
		}
	} else {
		if s := m.latestByDevice[deviceID]; s != nil && s.State != StateClosed {
			return s, false
		}
		sessionID = newSessionID()
	}

	now := nowMS()
	s := &Session{
		DeviceID:       deviceID,
		SessionID:      sessionID,
		State:          StateConnecting,
		CreatedAtMS:    now,
		LastSeenMS:     now,
		LastInboundSeq: -1,
		Metadata:       map[string]any{},
		Telemetry:      map[string]any{},
	}
	m.sessions[key{deviceID, sessionID}] = s
	m.latestByDevice[deviceID] = s
	return s, true
}

// Get returns a snapshot of an existing session.
func (m *Manager) Get(deviceID, sessionID string) (Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[key{deviceID, sessionID}]
	if !ok {
		return Snapshot{}, false
	}
	return s.snapshot(), true
}

// Latest returns a snapshot of the device's most recent open session.
func (m *Manager) Latest(deviceID string) (Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.latestByDevice[deviceID]
	if s == nil {
		return Snapshot{}, false
	}
	return s.snapshot(), true
}

// UpdateState transitions the session and touches last_seen.
func (m *Manager) UpdateState(deviceID, sessionID string, state State) Snapshot {
	m.mu.Lock()
	s, _ := m.getOrCreateLocked(deviceID, sessionID)
	s.State = state
	if state != StateClosed {
		s.ClosedAtMS = 0
		s.CloseReason = ""
	}
	s.LastSeenMS = nowMS()
	snap := s.snapshot()
	rec := s.record()
	m.mu.Unlock()

	m.persistUpsert(rec)
	return snap
}

// UpdateMetadata merges metadata into the session.
func (m *Manager) UpdateMetadata(deviceID, sessionID string, metadata map[string]any) Snapshot {
	m.mu.Lock()
	s, _ := m.getOrCreateLocked(deviceID, sessionID)
	for k, v := range metadata {
		s.Metadata[k] = v
	}
	s.LastSeenMS = nowMS()
	snap := s.snapshot()
	rec := s.record()
	m.mu.Unlock()

	m.persistUpsert(rec)
	return snap
}

// UpdateTelemetry merges the latest telemetry snapshot into the session.
func (m *Manager) UpdateTelemetry(deviceID, sessionID string, telemetry map[string]any) Snapshot {
	m.mu.Lock()
	s, _ := m.getOrCreateLocked(deviceID, sessionID)
	for k, v := range telemetry {
		s.Telemetry[k] = v
	}
	s.LastSeenMS = nowMS()
	snap := s.snapshot()
	rec := s.record()
	m.mu.Unlock()

	m.persistUpsert(rec)
	return snap
}

// CheckAndCommitSeq reports whether seq advances the inbound watermark and
// commits it when it does. Negative seqs always pass (transport without
// sequencing). Duplicates and stale seqs return false without advancing.
func (m *Manager) CheckAndCommitSeq(deviceID, sessionID string, seq int64) bool {
	m.mu.Lock()
	s, _ := m.getOrCreateLocked(deviceID, sessionID)
	s.LastSeenMS = nowMS()
	fresh := true
	if seq >= 0 {
		if seq <= s.LastInboundSeq {
			fresh = false
		} else {
			s.LastInboundSeq = seq
		}
	}
	rec := s.record()
	m.mu.Unlock()

	m.persistUpsert(rec)
	return fresh
}

// NextOutboundSeq allocates the next outbound sequence for one session.
// Allocations are strictly increasing and unique within the session.
func (m *Manager) NextOutboundSeq(deviceID, sessionID string) int64 {
	m.mu.Lock()
	s, _ := m.getOrCreateLocked(deviceID, sessionID)
	s.LastOutboundSeq++
	if s.LastOutboundSeq < 1 {
		s.LastOutboundSeq = 1
	}
	s.LastSeenMS = nowMS()
	seq := s.LastOutboundSeq
	rec := s.record()
	m.mu.Unlock()

	m.persistUpsert(rec)
	return seq
}

// Close marks the session CLOSED and persists the close reason.
func (m *Manager) Close(deviceID, sessionID, reason string) {
	if reason == "" {
		reason = "closed"
	}
	m.mu.Lock()
	s, _ := m.getOrCreateLocked(deviceID, sessionID)
	s.State = StateClosed
	s.LastSeenMS = nowMS()
	s.ClosedAtMS = s.LastSeenMS
	s.CloseReason = reason
	closedAt := s.ClosedAtMS
	if cur := m.latestByDevice[deviceID]; cur != nil && cur.SessionID == sessionID {
		delete(m.latestByDevice, deviceID)
	}
	m.mu.Unlock()

	m.persistClose(deviceID, sessionID, reason, closedAt)
}

// Status returns the latest session snapshot for one device.
func (m *Manager) Status(deviceID string) (Snapshot, bool) {
	return m.Latest(deviceID)
}

// AllStatus returns snapshots of every tracked session.
func (m *Manager) AllStatus() []Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Snapshot, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s.snapshot())
	}
	return out
}

func (m *Manager) persistUpsert(rec Record) {
	if m.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := m.store.UpsertDeviceSession(ctx, rec); err != nil {
		slog.Warn("session persistence failed",
			"device_id", rec.DeviceID,
			"session_id", rec.SessionID,
			"error", err)
	}
}

func (m *Manager) persistClose(deviceID, sessionID, reason string, closedAtMS int64) {
	if m.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := m.store.CloseDeviceSession(ctx, deviceID, sessionID, reason, closedAtMS); err != nil {
		slog.Warn("session close persistence failed",
			"device_id", deviceID,
			"session_id", sessionID,
			"error", err)
	}
}
