package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	upserts []Record
	closes  []string
	err     error
}

func (f *fakeStore) UpsertDeviceSession(_ context.Context, rec Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, rec)
	return f.err
}

func (f *fakeStore) CloseDeviceSession(_ context.Context, deviceID, sessionID, reason string, _ int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closes = append(f.closes, deviceID+"/"+sessionID+"/"+reason)
	return f.err
}

func (f *fakeStore) upsertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.upserts)
}

func TestGetOrCreateInitialState(t *testing.T) {
	m := NewManager(nil)
	snap := m.GetOrCreate("dev-1", "sess-1")

	assert.Equal(t, StateConnecting, snap.State)
	assert.Equal(t, int64(-1), snap.LastInboundSeq)
	assert.Equal(t, int64(0), snap.LastOutboundSeq)
	assert.Positive(t, snap.CreatedAtMS)
}

func TestGetOrCreateMintsSessionID(t *testing.T) {
	m := NewManager(nil)
	snap := m.GetOrCreate("dev-1", "")
	require.NotEmpty(t, snap.SessionID)

	// An empty session id resolves to the same open session.
	again := m.GetOrCreate("dev-1", "")
	assert.Equal(t, snap.SessionID, again.SessionID)
}

func TestCheckAndCommitSeq(t *testing.T) {
	m := NewManager(nil)

	assert.True(t, m.CheckAndCommitSeq("d", "s", 1))
	assert.True(t, m.CheckAndCommitSeq("d", "s", 2))
	// Duplicate and stale seqs are rejected.
	assert.False(t, m.CheckAndCommitSeq("d", "s", 2))
	assert.False(t, m.CheckAndCommitSeq("d", "s", 1))
	// Gaps are tolerated.
	assert.True(t, m.CheckAndCommitSeq("d", "s", 10))
	// Unsequenced transports always pass.
	assert.True(t, m.CheckAndCommitSeq("d", "s", -1))
	assert.True(t, m.CheckAndCommitSeq("d", "s", -1))

	snap, ok := m.Get("d", "s")
	require.True(t, ok)
	assert.Equal(t, int64(10), snap.LastInboundSeq)
}

func TestNextOutboundSeqMonotonic(t *testing.T) {
	m := NewManager(nil)
	assert.Equal(t, int64(1), m.NextOutboundSeq("d", "s"))
	assert.Equal(t, int64(2), m.NextOutboundSeq("d", "s"))
	assert.Equal(t, int64(3), m.NextOutboundSeq("d", "s"))
	// Independent per session.
	assert.Equal(t, int64(1), m.NextOutboundSeq("d", "s2"))
}

func TestNextOutboundSeqConcurrent(t *testing.T) {
	m := NewManager(nil)
	const n = 200
	seen := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- m.NextOutboundSeq("d", "s")
		}()
	}
	wg.Wait()
	close(seen)

	uniq := make(map[int64]bool, n)
	for seq := range seen {
		assert.False(t, uniq[seq], "duplicate seq %d", seq)
		uniq[seq] = true
	}
	assert.Len(t, uniq, n)
}

func TestUpdateStateAndMetadata(t *testing.T) {
	m := NewManager(nil)
	m.GetOrCreate("d", "s")

	snap := m.UpdateState("d", "s", StateListening)
	assert.Equal(t, StateListening, snap.State)

	snap = m.UpdateMetadata("d", "s", map[string]any{"fw": "1.2.0"})
	assert.Equal(t, "1.2.0", snap.Metadata["fw"])

	snap = m.UpdateTelemetry("d", "s", map[string]any{"battery_pct": 81})
	assert.Equal(t, 81, snap.Telemetry["battery_pct"])

	// Snapshot maps are copies; mutating one does not leak back.
	snap.Metadata["fw"] = "tampered"
	got, ok := m.Get("d", "s")
	require.True(t, ok)
	assert.Equal(t, "1.2.0", got.Metadata["fw"])
}

func TestCloseClearsLatest(t *testing.T) {
	m := NewManager(nil)
	first := m.GetOrCreate("d", "")
	m.Close("d", first.SessionID, "device_disconnect")

	closed, ok := m.Get("d", first.SessionID)
	require.True(t, ok)
	assert.Equal(t, StateClosed, closed.State)
	assert.Equal(t, "device_disconnect", closed.CloseReason)
	assert.Positive(t, closed.ClosedAtMS)

	// Next empty-id reference starts a fresh session.
	next := m.GetOrCreate("d", "")
	assert.NotEqual(t, first.SessionID, next.SessionID)
}

func TestWriteThroughPersistence(t *testing.T) {
	store := &fakeStore{}
	m := NewManager(store)

	m.GetOrCreate("d", "s")
	m.UpdateState("d", "s", StateReady)
	m.CheckAndCommitSeq("d", "s", 1)
	m.Close("d", "s", "runtime_shutdown")

	assert.GreaterOrEqual(t, store.upsertCount(), 3)
	require.Len(t, store.closes, 1)
	assert.Equal(t, "d/s/runtime_shutdown", store.closes[0])
}

func TestPersistenceErrorDoesNotBlock(t *testing.T) {
	store := &fakeStore{err: assert.AnError}
	m := NewManager(store)

	snap := m.GetOrCreate("d", "s")
	assert.Equal(t, StateConnecting, snap.State)
	assert.True(t, m.CheckAndCommitSeq("d", "s", 1))
}

func TestAllStatus(t *testing.T) {
	m := NewManager(nil)
	m.GetOrCreate("d1", "s1")
	m.GetOrCreate("d2", "s2")
	assert.Len(t, m.AllStatus(), 2)

	snap, ok := m.Status("d1")
	require.True(t, ok)
	assert.Equal(t, "s1", snap.SessionID)
}
