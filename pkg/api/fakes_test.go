package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/lifelog"
	"github.com/opencane/edged/pkg/protocol"
	"github.com/opencane/edged/pkg/runtime"
	"github.com/opencane/edged/pkg/session"
	"github.com/opencane/edged/pkg/store"
	"github.com/opencane/edged/pkg/task"
)

// newJSONContext builds an echo context carrying an optional JSON body.
func newJSONContext(e *echo.Echo, method, target, body string) (*echo.Context, *httptest.ResponseRecorder) {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

// fakeRuntime answers the Runtime interface with canned values and records
// what it was asked to do.
type fakeRuntime struct {
	mu sync.Mutex

	status    map[string]any
	snapshots map[string]session.Snapshot

	injected  []protocol.Envelope
	injectErr error

	sendErr error
	sent    []protocol.Envelope

	dispatch    runtime.OperationDispatch
	dispatchErr error
	dispatched  []string

	abortOK  bool
	aborted  []string
	closeOK  bool
	closed   []string
	closeReq [][2]string
}

func (f *fakeRuntime) Status(context.Context) map[string]any {
	if f.status == nil {
		return map[string]any{}
	}
	return f.status
}

func (f *fakeRuntime) DeviceStatus(deviceID string) (session.Snapshot, bool) {
	snap, ok := f.snapshots[deviceID]
	return snap, ok
}

func (f *fakeRuntime) InjectEvent(env protocol.Envelope) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.injectErr != nil {
		return f.injectErr
	}
	f.injected = append(f.injected, env)
	return nil
}

func (f *fakeRuntime) SendCommand(_ context.Context, deviceID, sessionID, cmdType string, payload map[string]any, traceID string) (protocol.Envelope, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return protocol.Envelope{}, f.sendErr
	}
	env := protocol.Envelope{
		Direction: protocol.DirectionCommand,
		Type:      cmdType,
		DeviceID:  deviceID,
		SessionID: sessionID,
		Seq:       int64(len(f.sent) + 1),
		Payload:   payload,
		TraceID:   traceID,
	}
	f.sent = append(f.sent, env)
	return env, nil
}

func (f *fakeRuntime) DispatchOperation(_ context.Context, deviceID, _, opType string, _ map[string]any, _ string) (runtime.OperationDispatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dispatched = append(f.dispatched, deviceID+":"+opType)
	if f.dispatchErr != nil {
		return runtime.OperationDispatch{}, f.dispatchErr
	}
	return f.dispatch, nil
}

func (f *fakeRuntime) Abort(deviceID, _ string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.aborted = append(f.aborted, deviceID)
	return f.abortOK
}

func (f *fakeRuntime) CloseDeviceSession(deviceID, sessionID, _ string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = append(f.closed, deviceID)
	f.closeReq = append(f.closeReq, [2]string{deviceID, sessionID})
	return f.closeOK
}

// fakeIngest records ingest requests and returns a canned result.
type fakeIngest struct {
	mu     sync.Mutex
	result lifelog.IngestResult
	status lifelog.QueueStatus
	got    []lifelog.IngestRequest
}

func (f *fakeIngest) Ingest(_ context.Context, req lifelog.IngestRequest) lifelog.IngestResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, req)
	return f.result
}

func (f *fakeIngest) Status() lifelog.QueueStatus { return f.status }

// fakeTasks answers the TaskService interface with canned values.
type fakeTasks struct {
	mu sync.Mutex

	executeResult task.ExecuteResult
	executeErr    error
	gotExecute    []task.ExecuteRequest

	cancelTask store.Task
	cancelErr  error
	gotCancel  []string

	tasks []store.Task
	stats map[string]int

	flush    task.FlushResult
	flushErr error
}

func (f *fakeTasks) Execute(_ context.Context, req task.ExecuteRequest) (task.ExecuteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotExecute = append(f.gotExecute, req)
	return f.executeResult, f.executeErr
}

func (f *fakeTasks) Cancel(_ context.Context, taskID, _ string) (store.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotCancel = append(f.gotCancel, taskID)
	return f.cancelTask, f.cancelErr
}

func (f *fakeTasks) List(context.Context, string, []string, int) ([]store.Task, error) {
	return f.tasks, nil
}

func (f *fakeTasks) Stats(context.Context, string) (map[string]int, error) {
	return f.stats, nil
}

func (f *fakeTasks) FlushPendingUpdates(context.Context, string, string, int) (task.FlushResult, error) {
	return f.flush, f.flushErr
}

// fakeAPIStore is an in-memory Store with the same transition guards as the
// real one, so handler tests exercise the conflict and not-found paths.
type fakeAPIStore struct {
	mu  sync.Mutex
	seq int64

	bindings   map[string]*store.Binding
	operations map[string]*store.Operation
	events     []store.Event
	contexts   map[string]store.ContextRow
	sessions   []session.Record
	samples    []store.Sample
	traces     []store.TraceStep
	counters   []store.CounterSnapshot

	insertCounterErr error
	purgeResult      store.RetentionResult
	purgePolicies    []store.RetentionPolicy
}

func newFakeAPIStore() *fakeAPIStore {
	return &fakeAPIStore{
		bindings:   make(map[string]*store.Binding),
		operations: make(map[string]*store.Operation),
		contexts:   make(map[string]store.ContextRow),
	}
}

func (f *fakeAPIStore) next() int64 {
	f.seq++
	return f.seq
}

func (f *fakeAPIStore) RegisterDevice(_ context.Context, deviceID string, metadata map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if deviceID == "" {
		return store.NewValidationError("device_id", "required")
	}
	if _, ok := f.bindings[deviceID]; ok {
		return store.ErrAlreadyExists
	}
	now := f.next()
	f.bindings[deviceID] = &store.Binding{
		DeviceID:    deviceID,
		Status:      "registered",
		Metadata:    metadata,
		CreatedAtMS: now,
		UpdatedAtMS: now,
	}
	return nil
}

func (f *fakeAPIStore) BindDevice(_ context.Context, deviceID, userID, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if userID == "" {
		return store.NewValidationError("user_id", "required")
	}
	if token == "" {
		return store.NewValidationError("device_token", "required")
	}
	b, ok := f.bindings[deviceID]
	if !ok {
		return store.ErrNotFound
	}
	if b.Status != "registered" && b.Status != "bound" {
		return store.ErrStatusConflict
	}
	b.Status = "bound"
	b.UserID = userID
	b.UpdatedAtMS = f.next()
	return nil
}

func (f *fakeAPIStore) ActivateDevice(_ context.Context, deviceID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bindings[deviceID]
	if !ok {
		return store.ErrNotFound
	}
	if b.Status != "bound" {
		return store.ErrStatusConflict
	}
	b.Status = "activated"
	b.ActivatedAtMS = f.next()
	b.UpdatedAtMS = b.ActivatedAtMS
	return nil
}

func (f *fakeAPIStore) RevokeDevice(_ context.Context, deviceID, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bindings[deviceID]
	if !ok {
		return store.ErrNotFound
	}
	b.Status = "revoked"
	b.RevokeReason = reason
	b.RevokedAtMS = f.next()
	b.UpdatedAtMS = b.RevokedAtMS
	return nil
}

func (f *fakeAPIStore) GetBinding(_ context.Context, deviceID string) (store.Binding, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bindings[deviceID]
	if !ok {
		return store.Binding{}, store.ErrNotFound
	}
	return *b, nil
}

func (f *fakeAPIStore) EnqueueOperation(_ context.Context, deviceID, sessionID, opType string, payload map[string]any) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if deviceID == "" {
		return "", store.NewValidationError("device_id", "required")
	}
	cmdType, ok := protocol.OperationCommandType(opType)
	if !ok {
		return "", store.NewValidationError("op_type", fmt.Sprintf("unknown op_type %q", opType))
	}
	id := fmt.Sprintf("op-%d", f.next())
	f.operations[id] = &store.Operation{
		ID:          id,
		DeviceID:    deviceID,
		SessionID:   sessionID,
		OpType:      opType,
		CommandType: string(cmdType),
		Status:      "queued",
		Payload:     payload,
		CreatedAtMS: f.seq,
	}
	return id, nil
}

func (f *fakeAPIStore) MarkOperationSent(_ context.Context, operationID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	op, ok := f.operations[operationID]
	if !ok || op.Status != "queued" {
		return store.ErrStatusConflict
	}
	op.Status = "sent"
	op.SentAtMS = f.next()
	return nil
}

func (f *fakeAPIStore) MarkOperationResult(_ context.Context, operationID string, result map[string]any, success bool, errMsg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	op, ok := f.operations[operationID]
	if !ok || (op.Status != "queued" && op.Status != "sent") {
		return store.ErrStatusConflict
	}
	if success {
		op.Status = "acked"
	} else {
		op.Status = "failed"
	}
	op.Result = result
	op.ErrorMessage = errMsg
	op.AckedAtMS = f.next()
	return nil
}

func (f *fakeAPIStore) CancelOperation(_ context.Context, operationID, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	op, ok := f.operations[operationID]
	if !ok || (op.Status != "queued" && op.Status != "sent") {
		return store.ErrStatusConflict
	}
	op.Status = "canceled"
	op.ErrorMessage = reason
	op.AckedAtMS = f.next()
	return nil
}

func (f *fakeAPIStore) GetOperation(_ context.Context, operationID string) (store.Operation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	op, ok := f.operations[operationID]
	if !ok {
		return store.Operation{}, store.ErrNotFound
	}
	return *op, nil
}

func (f *fakeAPIStore) ListOperations(_ context.Context, deviceID string, limit int) ([]store.Operation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit <= 0 {
		limit = 50
	}
	var out []store.Operation
	for _, op := range f.operations {
		if op.DeviceID == deviceID {
			out = append(out, *op)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAtMS > out[j].CreatedAtMS })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeAPIStore) Timeline(_ context.Context, sessionID string, fromMS, toMS int64, eventTypes []string, limit int) ([]store.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.Event
	for _, ev := range f.events {
		if ev.SessionID != sessionID {
			continue
		}
		if fromMS > 0 && ev.TSMS < fromMS {
			continue
		}
		if toMS > 0 && ev.TSMS > toMS {
			continue
		}
		if len(eventTypes) > 0 {
			found := false
			for _, t := range eventTypes {
				if ev.EventType == t {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, ev)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (f *fakeAPIStore) SafetyQuery(_ context.Context, sessionID, _ string, limit int) ([]store.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.Event
	for _, ev := range f.events {
		if ev.SessionID == sessionID && ev.EventType == "safety_signal" {
			out = append(out, ev)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeAPIStore) SafetyStats(_ context.Context, sessionID string) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stats := map[string]int{}
	for _, ev := range f.events {
		if ev.SessionID == sessionID && ev.EventType == "safety_signal" {
			stats[ev.RiskLevel]++
		}
	}
	return stats, nil
}

func (f *fakeAPIStore) GetContextByImage(_ context.Context, imageID string) (store.ContextRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.contexts[imageID]
	if !ok {
		return store.ContextRow{}, store.ErrNotFound
	}
	return row, nil
}

func (f *fakeAPIStore) ListDeviceSessions(_ context.Context, deviceID string, limit int) ([]session.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []session.Record
	for _, rec := range f.sessions {
		if deviceID == "" || rec.DeviceID == deviceID {
			out = append(out, rec)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeAPIStore) RecentSamples(_ context.Context, deviceID string, sinceMS int64, limit int) ([]store.Sample, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.Sample
	for _, s := range f.samples {
		if s.DeviceID == deviceID && s.TSMS >= sinceMS {
			out = append(out, s)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeAPIStore) AppendTraceStep(_ context.Context, step store.TraceStep) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if step.TraceID == "" {
		return store.NewValidationError("trace_id", "required")
	}
	if step.SessionID == "" {
		return store.NewValidationError("session_id", "required")
	}
	f.traces = append(f.traces, step)
	return nil
}

func (f *fakeAPIStore) QueryTraces(_ context.Context, sessionID string, limit int) ([]store.TraceStep, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.TraceStep
	for _, step := range f.traces {
		if sessionID == "" || step.SessionID == sessionID {
			out = append(out, step)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeAPIStore) ReplayTrace(_ context.Context, traceID string) ([]store.TraceStep, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.TraceStep
	for _, step := range f.traces {
		if step.TraceID == traceID {
			out = append(out, step)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TSMS < out[j].TSMS })
	return out, nil
}

func (f *fakeAPIStore) InsertCounterSnapshot(_ context.Context, snap store.CounterSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertCounterErr != nil {
		return f.insertCounterErr
	}
	f.counters = append(f.counters, snap)
	return nil
}

func (f *fakeAPIStore) RecentCounterSnapshots(_ context.Context, scope string, limit int) ([]store.CounterSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.CounterSnapshot
	for i := len(f.counters) - 1; i >= 0; i-- {
		if f.counters[i].Scope == scope {
			out = append(out, f.counters[i])
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeAPIStore) PurgeExpired(_ context.Context, policy store.RetentionPolicy) (store.RetentionResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.purgePolicies = append(f.purgePolicies, policy)
	return f.purgeResult, nil
}
