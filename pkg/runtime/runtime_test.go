package runtime

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/adapter"
	"github.com/opencane/edged/pkg/protocol"
	"github.com/opencane/edged/pkg/session"
	"github.com/opencane/edged/pkg/store"
)

const (
	testDevice  = "dev-1"
	testSession = "sess-1"
)

// memStore is an in-memory Store with the same error contract as the real
// one: ErrUnauthorized on bad tokens, CAS-guarded operation transitions.
type memStore struct {
	mu         sync.Mutex
	seq        int64
	bindings   map[string]store.Binding // keyed by device token
	events     []store.Event
	traces     []store.TraceStep
	samples    []store.Sample
	operations map[string]*store.Operation
	queueOrder []string
}

func newMemStore() *memStore {
	return &memStore{
		bindings:   make(map[string]store.Binding),
		operations: make(map[string]*store.Operation),
	}
}

func (m *memStore) bind(token string, b store.Binding) {
	m.mu.Lock()
	m.bindings[token] = b
	m.mu.Unlock()
}

func (m *memStore) enqueue(op store.Operation) {
	m.mu.Lock()
	cp := op
	m.operations[op.ID] = &cp
	m.queueOrder = append(m.queueOrder, op.ID)
	m.mu.Unlock()
}

func (m *memStore) VerifyDeviceBinding(_ context.Context, deviceID, token string, _, _ bool) (store.Binding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bindings[token]
	if !ok || b.DeviceID != deviceID {
		return store.Binding{}, fmt.Errorf("verify %s: %w", deviceID, store.ErrUnauthorized)
	}
	return b, nil
}

func (m *memStore) AppendEvent(_ context.Context, ev store.Event) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	ev.ID = fmt.Sprintf("ev-%d", m.seq)
	m.events = append(m.events, ev)
	return ev.ID, nil
}

func (m *memStore) AppendTraceStep(_ context.Context, step store.TraceStep) error {
	m.mu.Lock()
	m.traces = append(m.traces, step)
	m.mu.Unlock()
	return nil
}

func (m *memStore) InsertSample(_ context.Context, sample store.Sample) error {
	m.mu.Lock()
	m.samples = append(m.samples, sample)
	m.mu.Unlock()
	return nil
}

func (m *memStore) QueuedOperations(_ context.Context, deviceID string, limit int) ([]store.Operation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.Operation
	for _, id := range m.queueOrder {
		op := m.operations[id]
		if op.DeviceID != deviceID || op.Status != "queued" {
			continue
		}
		out = append(out, *op)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (m *memStore) MarkOperationSent(_ context.Context, operationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	op, ok := m.operations[operationID]
	if !ok {
		return store.ErrNotFound
	}
	if op.Status != "queued" {
		return store.ErrStatusConflict
	}
	op.Status = "sent"
	return nil
}

func (m *memStore) MarkOperationResult(_ context.Context, operationID string, result map[string]any, success bool, errMsg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	op, ok := m.operations[operationID]
	if !ok {
		return store.ErrNotFound
	}
	if op.Status != "queued" && op.Status != "sent" {
		return store.ErrStatusConflict
	}
	if success {
		op.Status = "acked"
	} else {
		op.Status = "failed"
	}
	op.Result = result
	op.ErrorMessage = errMsg
	return nil
}

func (m *memStore) eventsOfType(eventType string) []store.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.Event
	for _, ev := range m.events {
		if ev.EventType == eventType {
			out = append(out, ev)
		}
	}
	return out
}

func (m *memStore) operation(id string) store.Operation {
	m.mu.Lock()
	defer m.mu.Unlock()
	if op, ok := m.operations[id]; ok {
		return *op
	}
	return store.Operation{}
}

// fixture wires a Runtime onto a mock adapter and tears it down with the
// test. Sessions default to a fresh in-memory manager.
type fixture struct {
	t        *testing.T
	rt       *Runtime
	mock     *adapter.Mock
	sessions *session.Manager
	store    *memStore
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	mock := adapter.NewMock()
	opts.Adapter = mock
	if opts.Sessions == nil {
		opts.Sessions = session.NewManager(nil)
	}
	ms, _ := opts.Store.(*memStore)
	rt, err := New(opts)
	require.NoError(t, err)
	require.NoError(t, rt.Start(context.Background()))
	t.Cleanup(func() { _ = rt.Stop(context.Background()) })
	return &fixture{t: t, rt: rt, mock: mock, sessions: opts.Sessions, store: ms}
}

func (f *fixture) inject(eventType protocol.EventType, seq int64, payload map[string]any) {
	f.t.Helper()
	require.NoError(f.t, f.mock.Inject(protocol.MakeEvent(eventType, testDevice, testSession, seq, payload)))
}

func (f *fixture) hello() {
	f.t.Helper()
	f.inject(protocol.EventHello, 1, map[string]any{"capabilities": map[string]any{"firmware": "1.4.0"}})
	f.waitCommand(protocol.CommandHelloAck)
}

// waitSent blocks until at least n commands were submitted and returns them.
func (f *fixture) waitSent(n int) []protocol.Envelope {
	f.t.Helper()
	require.Eventually(f.t, func() bool {
		return len(f.mock.Sent()) >= n
	}, 3*time.Second, 5*time.Millisecond, "waiting for %d sent commands, have %v", n, f.mock.SentTypes())
	return f.mock.Sent()
}

// waitCommand blocks until a command of the given type was sent and returns
// the first match.
func (f *fixture) waitCommand(cmdType protocol.CommandType) protocol.Envelope {
	f.t.Helper()
	var found protocol.Envelope
	require.Eventually(f.t, func() bool {
		for _, env := range f.mock.Sent() {
			if env.Type == string(cmdType) {
				found = env
				return true
			}
		}
		return false
	}, 3*time.Second, 5*time.Millisecond, "waiting for %s, have %v", cmdType, f.mock.SentTypes())
	return found
}

func (f *fixture) waitState(state session.State) session.Snapshot {
	f.t.Helper()
	var snap session.Snapshot
	require.Eventually(f.t, func() bool {
		var ok bool
		snap, ok = f.sessions.Get(testDevice, testSession)
		return ok && snap.State == state
	}, 3*time.Second, 5*time.Millisecond, "waiting for session state %s", state)
	return snap
}

func commandTypes(envs []protocol.Envelope) []string {
	out := make([]string, 0, len(envs))
	for _, env := range envs {
		out = append(out, env.Type)
	}
	return out
}

func TestHelloAcksWithSessionIdentity(t *testing.T) {
	fx := newFixture(t, Options{Store: newMemStore()})

	fx.inject(protocol.EventHello, 1, map[string]any{
		"capabilities": map[string]any{"firmware": "1.4.0", "tts": "device"},
	})

	ack := fx.waitCommand(protocol.CommandHelloAck)
	assert.Equal(t, "edged", ack.Payload["runtime"])
	assert.Equal(t, protocol.Version, ack.Payload["protocol"])
	assert.Equal(t, testSession, ack.Payload["session_id"])
	assert.EqualValues(t, 1, ack.Payload["ack_seq"])

	snap := fx.waitState(session.StateReady)
	assert.Equal(t, "1.4.0", snap.Metadata["firmware"])

	require.Eventually(t, func() bool {
		return len(fx.store.eventsOfType("hello")) == 1
	}, 3*time.Second, 5*time.Millisecond)
}

func TestDuplicateHelloReissuesAck(t *testing.T) {
	fx := newFixture(t, Options{Store: newMemStore()})

	fx.hello()
	fx.inject(protocol.EventHello, 1, map[string]any{"capabilities": map[string]any{"firmware": "1.4.0"}})

	sent := fx.waitSent(2)
	require.Equal(t, []string{"hello_ack", "hello_ack"}, commandTypes(sent))
	assert.EqualValues(t, 1, sent[0].Payload["ack_seq"])
	assert.EqualValues(t, 1, sent[1].Payload["ack_seq"])
	assert.Greater(t, sent[1].Seq, sent[0].Seq)

	// The duplicate is counted and only the first hello lands in the lifelog.
	metrics := fx.rt.metrics.Snapshot()
	assert.EqualValues(t, 1, metrics.DuplicateEventsTotal)
	assert.Len(t, fx.store.eventsOfType("hello"), 1)
}

func TestVoiceTurnCommandOrdering(t *testing.T) {
	agent := &scriptedAgent{reply: "Turn left in three meters."}
	fx := newFixture(t, Options{Agent: agent})

	fx.hello()
	fx.inject(protocol.EventListenStart, 2, nil)
	fx.inject(protocol.EventAudioChunk, 3, map[string]any{"chunk_index": 1, "text": "hello"})
	fx.inject(protocol.EventAudioChunk, 4, map[string]any{"chunk_index": 2, "text": "world"})
	fx.inject(protocol.EventListenStop, 5, nil)

	stop := fx.waitCommand(protocol.CommandTTSStop)
	assert.Equal(t, false, stop.Payload["aborted"])

	sent := fx.mock.Sent()
	assert.Equal(t, []string{
		"hello_ack",
		"ack",
		"stt_partial",
		"stt_partial",
		"ack",
		"stt_final",
		"tts_start",
		"tts_chunk",
		"tts_stop",
	}, commandTypes(sent))

	var lastSeq int64
	for _, env := range sent {
		assert.Greater(t, env.Seq, lastSeq, "outbound seq must be strictly increasing")
		lastSeq = env.Seq
	}

	final := fx.waitCommand(protocol.CommandSTTFinal)
	assert.Equal(t, "hello world", final.Payload["text"])
	start := fx.waitCommand(protocol.CommandTTSStart)
	assert.Equal(t, "Turn left in three meters.", start.Payload["text"])

	fx.waitState(session.StateReady)
	metrics := fx.rt.metrics.Snapshot()
	assert.EqualValues(t, 1, metrics.VoiceTurnTotal)
	assert.EqualValues(t, 0, metrics.VoiceTurnFailed)
}

func TestReorderedAudioChunksComposeTranscript(t *testing.T) {
	fx := newFixture(t, Options{})

	fx.hello()
	fx.inject(protocol.EventListenStart, 2, nil)
	fx.inject(protocol.EventAudioChunk, 3, map[string]any{"chunk_index": 2, "text": "world"})
	fx.inject(protocol.EventAudioChunk, 4, map[string]any{"chunk_index": 1, "text": "hello"})
	fx.inject(protocol.EventListenStop, 5, nil)

	final := fx.waitCommand(protocol.CommandSTTFinal)
	assert.Equal(t, "hello world", final.Payload["text"])

	// No agent wired: the turn closes with a bare tts_stop.
	stop := fx.waitCommand(protocol.CommandTTSStop)
	assert.Equal(t, false, stop.Payload["aborted"])
	assert.NotContains(t, fx.mock.SentTypes(), "tts_start")

	metrics := fx.rt.metrics.Snapshot()
	assert.EqualValues(t, 1, metrics.OutOfOrderAudioTotal)
}

func TestHeartbeatDuplicatesAreReAcked(t *testing.T) {
	fx := newFixture(t, Options{})

	fx.hello()
	fx.inject(protocol.EventHeartbeat, 3, nil)
	fx.inject(protocol.EventHeartbeat, 2, nil)
	fx.inject(protocol.EventHeartbeat, 3, nil)

	sent := fx.waitSent(4)
	require.Equal(t, []string{"hello_ack", "ack", "ack", "ack"}, commandTypes(sent))
	assert.EqualValues(t, 3, sent[1].Payload["ack_seq"])
	assert.EqualValues(t, 2, sent[2].Payload["ack_seq"])
	assert.EqualValues(t, 3, sent[3].Payload["ack_seq"])

	snap, ok := fx.sessions.Get(testDevice, testSession)
	require.True(t, ok)
	assert.EqualValues(t, 3, snap.LastInboundSeq)
	assert.Equal(t, session.StateReady, snap.State)

	metrics := fx.rt.metrics.Snapshot()
	assert.EqualValues(t, 2, metrics.DuplicateEventsTotal)
	assert.EqualValues(t, 1, metrics.OutOfOrderEventsTotal)
}

func TestDeviceAuthRejectsUnknownToken(t *testing.T) {
	fx := newFixture(t, Options{
		Store:  newMemStore(),
		Config: Config{DeviceAuthEnabled: true},
	})

	fx.inject(protocol.EventHello, 1, map[string]any{"device_token": "bogus"})

	closeCmd := fx.waitCommand(protocol.CommandClose)
	assert.Equal(t, "device_auth_failed", closeCmd.Payload["reason"])
	assert.NotContains(t, fx.mock.SentTypes(), "hello_ack")

	snap := fx.waitState(session.StateClosed)
	assert.Equal(t, "device_auth_failed", snap.CloseReason)
	assert.Equal(t, false, snap.Metadata["auth_passed"])

	metrics := fx.rt.metrics.Snapshot()
	assert.EqualValues(t, 1, metrics.AuthDeniedTotal)

	denied := fx.store.eventsOfType("device_auth_denied")
	require.Len(t, denied, 1)
	assert.Equal(t, "P1", denied[0].RiskLevel)
	assert.Equal(t, "device_auth_failed", denied[0].Payload["reason"])
}

func TestDeviceAuthRejectsMissingToken(t *testing.T) {
	fx := newFixture(t, Options{
		Store:  newMemStore(),
		Config: Config{DeviceAuthEnabled: true},
	})

	fx.inject(protocol.EventHello, 1, nil)

	closeCmd := fx.waitCommand(protocol.CommandClose)
	assert.Equal(t, "missing_device_token", closeCmd.Payload["reason"])
}

func TestDeviceAuthAcceptsBoundDevice(t *testing.T) {
	ms := newMemStore()
	ms.bind("tok-1", store.Binding{DeviceID: testDevice, Status: "active", UserID: "user-7"})
	fx := newFixture(t, Options{
		Store:  ms,
		Config: Config{DeviceAuthEnabled: true},
	})

	fx.inject(protocol.EventHello, 1, map[string]any{"device_token": "Bearer tok-1"})

	fx.waitCommand(protocol.CommandHelloAck)
	snap := fx.waitState(session.StateReady)
	assert.Equal(t, true, snap.Metadata["auth_passed"])
	assert.Equal(t, "active", snap.Metadata["binding_status"])
	assert.Equal(t, "user-7", snap.Metadata["binding_user_id"])

	// Follow-up events ride the cached pass without another store hit.
	fx.inject(protocol.EventHeartbeat, 2, nil)
	sent := fx.waitSent(2)
	assert.Equal(t, "ack", sent[1].Type)
}

func TestUnauthenticatedSessionEventDenied(t *testing.T) {
	fx := newFixture(t, Options{
		Store:  newMemStore(),
		Config: Config{DeviceAuthEnabled: true},
	})

	// Heartbeat without a prior authenticated hello.
	fx.inject(protocol.EventHeartbeat, 1, nil)

	closeCmd := fx.waitCommand(protocol.CommandClose)
	assert.Equal(t, "unauthenticated_session", closeCmd.Payload["reason"])
	fx.waitState(session.StateClosed)
}

func TestBargeInStopsSpeaking(t *testing.T) {
	fx := newFixture(t, Options{Store: newMemStore()})

	fx.hello()
	fx.sessions.UpdateState(testDevice, testSession, session.StateSpeaking)
	fx.inject(protocol.EventListenStart, 2, nil)

	stop := fx.waitCommand(protocol.CommandTTSStop)
	assert.Equal(t, true, stop.Payload["aborted"])
	assert.Equal(t, "barge_in", stop.Payload["reason"])

	snap := fx.waitState(session.StateListening)
	assert.Equal(t, session.StateListening, snap.State)

	metrics := fx.rt.metrics.Snapshot()
	assert.EqualValues(t, 1, metrics.BargeInTotal)

	require.Eventually(t, func() bool {
		return len(fx.store.eventsOfType("voice_interrupt")) == 1
	}, 3*time.Second, 5*time.Millisecond)
}

func TestAbortEventResetsToReady(t *testing.T) {
	fx := newFixture(t, Options{})

	fx.hello()
	fx.inject(protocol.EventListenStart, 2, nil)
	fx.waitState(session.StateListening)
	fx.inject(protocol.EventAbort, 3, nil)

	stop := fx.waitCommand(protocol.CommandTTSStop)
	assert.Equal(t, true, stop.Payload["aborted"])
	assert.Equal(t, "device_abort", stop.Payload["reason"])
	fx.waitState(session.StateReady)
}

func TestDeviceCloseEndsSession(t *testing.T) {
	fx := newFixture(t, Options{Store: newMemStore()})

	fx.hello()
	fx.inject(protocol.EventClose, 2, map[string]any{"reason": "user_done"})

	snap := fx.waitState(session.StateClosed)
	assert.Equal(t, "user_done", snap.CloseReason)

	require.Eventually(t, func() bool {
		rows := fx.store.eventsOfType("session_close")
		return len(rows) == 1 && rows[0].Payload["reason"] == "user_done"
	}, 3*time.Second, 5*time.Millisecond)
}

func TestTelemetryNormalizesAndPersists(t *testing.T) {
	fx := newFixture(t, Options{
		Store:  newMemStore(),
		Config: Config{TelemetryNormalize: true, TelemetryPersist: true},
	})

	fx.hello()
	fx.inject(protocol.EventTelemetry, 2, map[string]any{
		"battery_percent": 81.5,
		"charging":        false,
		"rssi":            -61.0,
	})

	sent := fx.waitSent(2)
	assert.Equal(t, "ack", sent[1].Type)
	assert.EqualValues(t, 2, sent[1].Payload["ack_seq"])

	require.Eventually(t, func() bool {
		snap, ok := fx.sessions.Get(testDevice, testSession)
		if !ok {
			return false
		}
		structured, ok := snap.Metadata["telemetry_structured"].(map[string]any)
		return ok && structured["battery"] != nil
	}, 3*time.Second, 5*time.Millisecond)

	snap, _ := fx.sessions.Get(testDevice, testSession)
	assert.EqualValues(t, 81.5, snap.Telemetry["battery_percent"])
	assert.Equal(t, TelemetrySchemaVersion, snap.Metadata["telemetry_schema_version"])

	require.Eventually(t, func() bool {
		fx.store.mu.Lock()
		defer fx.store.mu.Unlock()
		return len(fx.store.samples) == 1
	}, 3*time.Second, 5*time.Millisecond)

	fx.store.mu.Lock()
	sample := fx.store.samples[0]
	fx.store.mu.Unlock()
	assert.Equal(t, testDevice, sample.DeviceID)
	assert.Equal(t, TelemetrySchemaVersion, sample.SchemaVersion)
	assert.EqualValues(t, 81.5, sample.Battery["percent"])
	assert.EqualValues(t, -61.0, sample.Network["rssi_dbm"])
}

func TestStopClosesOpenSessions(t *testing.T) {
	mock := adapter.NewMock()
	sessions := session.NewManager(nil)
	rt, err := New(Options{Adapter: mock, Sessions: sessions})
	require.NoError(t, err)
	require.NoError(t, rt.Start(context.Background()))

	require.NoError(t, mock.Inject(protocol.MakeEvent(protocol.EventHello, testDevice, testSession, 1, nil)))
	require.Eventually(t, func() bool {
		snap, ok := sessions.Get(testDevice, testSession)
		return ok && snap.State == session.StateReady
	}, 3*time.Second, 5*time.Millisecond)

	require.NoError(t, rt.Stop(context.Background()))

	snap, ok := sessions.Get(testDevice, testSession)
	require.True(t, ok)
	assert.Equal(t, session.StateClosed, snap.State)
	assert.Equal(t, "runtime_stop", snap.CloseReason)
	assert.Contains(t, mock.SentTypes(), "close")

	// Idempotent.
	require.NoError(t, rt.Stop(context.Background()))
}

func TestStartTwiceFails(t *testing.T) {
	fx := newFixture(t, Options{})
	err := fx.rt.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")
}
