package task

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/store"
)

// fakeTaskStore is an in-memory Store with the same CAS semantics as the
// real one.
type fakeTaskStore struct {
	mu    sync.Mutex
	seq   int64
	tasks map[string]*store.Task
	queue []store.PendingUpdate
	keys  map[string]bool
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{
		tasks: make(map[string]*store.Task),
		keys:  make(map[string]bool),
	}
}

func (f *fakeTaskStore) CreateTask(_ context.Context, sessionID, deviceID, goal string, timeoutSeconds int, pushContext map[string]any) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	id := fmt.Sprintf("task-%d", f.seq)
	f.tasks[id] = &store.Task{
		ID:             id,
		SessionID:      sessionID,
		DeviceID:       deviceID,
		Goal:           goal,
		Status:         store.TaskPending,
		Steps:          []map[string]any{{"stage": "accepted"}},
		TimeoutSeconds: timeoutSeconds,
		PushContext:    pushContext,
		CreatedAtMS:    f.seq,
	}
	return id, nil
}

func (f *fakeTaskStore) TransitionTask(_ context.Context, taskID string, expected []string, next, result, errMsg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[taskID]
	if !ok {
		return store.ErrNotFound
	}
	matched := false
	for _, st := range expected {
		if task.Status == st {
			matched = true
			break
		}
	}
	if !matched {
		return store.ErrStatusConflict
	}
	task.Status = next
	step := map[string]any{"stage": next}
	if errMsg != "" {
		step["error"] = errMsg
		task.ErrorMessage = errMsg
	}
	task.Steps = append(task.Steps, step)
	if result != "" {
		task.Result = result
	}
	return nil
}

func (f *fakeTaskStore) AppendTaskStep(_ context.Context, taskID, stage string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[taskID]
	if !ok {
		return store.ErrNotFound
	}
	task.Steps = append(task.Steps, map[string]any{"stage": stage})
	return nil
}

func (f *fakeTaskStore) GetTask(_ context.Context, taskID string) (store.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[taskID]
	if !ok {
		return store.Task{}, store.ErrNotFound
	}
	return *task, nil
}

func (f *fakeTaskStore) ListTasks(_ context.Context, deviceID string, statuses []string, limit int) ([]store.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.Task
	for _, task := range f.tasks {
		if deviceID != "" && task.DeviceID != deviceID {
			continue
		}
		if len(statuses) > 0 {
			found := false
			for _, st := range statuses {
				if task.Status == st {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, *task)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAtMS > out[j].CreatedAtMS })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeTaskStore) NonTerminalTasks(_ context.Context) ([]store.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.Task
	for _, task := range f.tasks {
		if task.Status == store.TaskPending || task.Status == store.TaskRunning {
			out = append(out, *task)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAtMS < out[j].CreatedAtMS })
	return out, nil
}

func (f *fakeTaskStore) LatestActiveTask(_ context.Context, deviceID string) (store.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest *store.Task
	for _, task := range f.tasks {
		if task.DeviceID != deviceID {
			continue
		}
		if task.Status != store.TaskPending && task.Status != store.TaskRunning {
			continue
		}
		if latest == nil || task.CreatedAtMS > latest.CreatedAtMS {
			latest = task
		}
	}
	if latest == nil {
		return store.Task{}, store.ErrNotFound
	}
	return *latest, nil
}

func (f *fakeTaskStore) TaskStats(_ context.Context, deviceID string) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]int)
	for _, task := range f.tasks {
		if deviceID != "" && task.DeviceID != deviceID {
			continue
		}
		out[task.Status]++
	}
	return out, nil
}

func (f *fakeTaskStore) EnqueuePushUpdate(_ context.Context, upd store.PendingUpdate) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.keys[upd.SendKey] {
		return "", nil
	}
	f.keys[upd.SendKey] = true
	if upd.ID == "" {
		upd.ID = fmt.Sprintf("upd-%d", len(f.queue)+1)
	}
	f.queue = append(f.queue, upd)
	return upd.ID, nil
}

func (f *fakeTaskStore) PendingPushUpdates(_ context.Context, deviceID string, limit int) ([]store.PendingUpdate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.PendingUpdate
	for _, upd := range f.queue {
		if upd.DeviceID == deviceID {
			out = append(out, upd)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeTaskStore) MarkPushSent(_ context.Context, updateIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	sent := make(map[string]bool, len(updateIDs))
	for _, id := range updateIDs {
		sent[id] = true
	}
	var remaining []store.PendingUpdate
	for _, upd := range f.queue {
		if !sent[upd.ID] {
			remaining = append(remaining, upd)
		}
	}
	f.queue = remaining
	return nil
}

func (f *fakeTaskStore) queuedSendKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.queue))
	for _, upd := range f.queue {
		keys = append(keys, upd.SendKey)
	}
	sort.Strings(keys)
	return keys
}

type funcExecutor struct {
	fn func(ctx context.Context, goal, sessionID string) (ExecResult, error)
}

func (e funcExecutor) Execute(ctx context.Context, goal, sessionID string) (ExecResult, error) {
	return e.fn(ctx, goal, sessionID)
}

// pushRecorder collects status payloads and can be switched to failing.
type pushRecorder struct {
	mu       sync.Mutex
	payloads []map[string]any
	fail     bool
}

func (p *pushRecorder) callback(_ context.Context, payload map[string]any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return fmt.Errorf("push path down")
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *pushRecorder) setFail(fail bool) {
	p.mu.Lock()
	p.fail = fail
	p.mu.Unlock()
}

func (p *pushRecorder) events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.payloads))
	for _, payload := range p.payloads {
		out = append(out, payload["event"].(string))
	}
	return out
}

func stageNames(steps []map[string]any) []string {
	out := make([]string, 0, len(steps))
	for _, step := range steps {
		out = append(out, step["stage"].(string))
	}
	return out
}

func waitStatus(t *testing.T, st *fakeTaskStore, taskID, status string) store.Task {
	t.Helper()
	var task store.Task
	require.Eventually(t, func() bool {
		var err error
		task, err = st.GetTask(context.Background(), taskID)
		return err == nil && task.Status == status
	}, 3*time.Second, 5*time.Millisecond)
	return task
}

func TestExecuteRunsToSuccess(t *testing.T) {
	st := newFakeTaskStore()
	recorder := &pushRecorder{}
	exec := funcExecutor{fn: func(_ context.Context, goal, _ string) (ExecResult, error) {
		return ExecResult{Text: "已完成：" + goal, ExecutionPath: PathMCP}, nil
	}}
	svc := NewService(st, exec, Config{StatusRetryBackoff: time.Millisecond}, recorder.callback, nil)
	defer svc.Stop()

	result, err := svc.Execute(context.Background(), ExecuteRequest{
		SessionID: "sess-1",
		DeviceID:  "dev-1",
		Goal:      "帮我预约明天的按摩",
		Notify:    true,
		Speak:     true,
	})
	require.NoError(t, err)
	assert.True(t, result.Accepted)
	require.NotEmpty(t, result.TaskID)

	task := waitStatus(t, st, result.TaskID, store.TaskSuccess)
	assert.Contains(t, task.Result, `"execution_path":"mcp"`)
	assert.Subset(t, stageNames(task.Steps), []string{"accepted", "running", "success"})

	require.Eventually(t, func() bool {
		events := recorder.events()
		return len(events) >= 3 && events[len(events)-1] == "success"
	}, 3*time.Second, 5*time.Millisecond)
	assert.Contains(t, recorder.events(), "accepted")
	assert.Contains(t, recorder.events(), "running")
}

func TestCancelWinsOverConcurrentSuccess(t *testing.T) {
	st := newFakeTaskStore()
	started := make(chan struct{})
	release := make(chan struct{})
	exec := funcExecutor{fn: func(_ context.Context, _, _ string) (ExecResult, error) {
		close(started)
		<-release
		// Completes successfully even though a cancel already landed.
		return ExecResult{Text: "too late"}, nil
	}}
	svc := NewService(st, exec, Config{StatusRetryBackoff: time.Millisecond}, nil, nil)
	defer svc.Stop()

	result, err := svc.Execute(context.Background(), ExecuteRequest{
		SessionID: "sess-1",
		Goal:      "long goal",
	})
	require.NoError(t, err)
	<-started

	_, err = svc.Cancel(context.Background(), result.TaskID, "manual_cancel")
	require.NoError(t, err)
	close(release)

	task := waitStatus(t, st, result.TaskID, store.TaskCanceled)
	assert.Equal(t, "manual_cancel", task.ErrorMessage)

	// The late success must not overwrite the cancel.
	time.Sleep(20 * time.Millisecond)
	task, err = st.GetTask(context.Background(), result.TaskID)
	require.NoError(t, err)
	assert.Equal(t, store.TaskCanceled, task.Status)
	assert.NotContains(t, stageNames(task.Steps), "success")
}

func TestCancelAlreadyFinal(t *testing.T) {
	st := newFakeTaskStore()
	exec := funcExecutor{fn: func(_ context.Context, _, _ string) (ExecResult, error) {
		return ExecResult{Text: "done"}, nil
	}}
	svc := NewService(st, exec, Config{StatusRetryBackoff: time.Millisecond}, nil, nil)
	defer svc.Stop()

	result, err := svc.Execute(context.Background(), ExecuteRequest{SessionID: "s", Goal: "g"})
	require.NoError(t, err)
	waitStatus(t, st, result.TaskID, store.TaskSuccess)

	_, err = svc.Cancel(context.Background(), result.TaskID, "late")
	assert.ErrorIs(t, err, store.ErrStatusConflict)
}

func TestInterruptPreviousCancelsActiveTask(t *testing.T) {
	st := newFakeTaskStore()
	firstStarted := make(chan struct{})
	exec := funcExecutor{fn: func(ctx context.Context, goal, _ string) (ExecResult, error) {
		if goal == "first" {
			close(firstStarted)
			<-ctx.Done()
			return ExecResult{}, ctx.Err()
		}
		return ExecResult{Text: "second done"}, nil
	}}
	svc := NewService(st, exec, Config{StatusRetryBackoff: time.Millisecond}, nil, nil)
	defer svc.Stop()

	first, err := svc.Execute(context.Background(), ExecuteRequest{
		SessionID: "sess-1",
		DeviceID:  "dev-1",
		Goal:      "first",
		Notify:    true,
	})
	require.NoError(t, err)
	<-firstStarted

	second, err := svc.Execute(context.Background(), ExecuteRequest{
		SessionID:         "sess-1",
		DeviceID:          "dev-1",
		Goal:              "second",
		Notify:            true,
		InterruptPrevious: true,
	})
	require.NoError(t, err)

	task := waitStatus(t, st, first.TaskID, store.TaskCanceled)
	assert.Equal(t, InterruptReason, task.ErrorMessage)
	waitStatus(t, st, second.TaskID, store.TaskSuccess)
}

func TestTaskTimeout(t *testing.T) {
	st := newFakeTaskStore()
	exec := funcExecutor{fn: func(ctx context.Context, _, _ string) (ExecResult, error) {
		<-ctx.Done()
		return ExecResult{}, ctx.Err()
	}}
	svc := NewService(st, exec, Config{
		DefaultTimeout:     30 * time.Millisecond,
		StatusRetryBackoff: time.Millisecond,
	}, nil, nil)
	defer svc.Stop()

	result, err := svc.Execute(context.Background(), ExecuteRequest{SessionID: "s", Goal: "slow"})
	require.NoError(t, err)

	task := waitStatus(t, st, result.TaskID, store.TaskTimeout)
	assert.Contains(t, task.ErrorMessage, "timeout after")
}

func TestStatusPushQueuesOnFailureAndFlushes(t *testing.T) {
	st := newFakeTaskStore()
	recorder := &pushRecorder{}
	recorder.setFail(true)
	exec := funcExecutor{fn: func(_ context.Context, _, _ string) (ExecResult, error) {
		return ExecResult{Text: "done"}, nil
	}}
	svc := NewService(st, exec, Config{
		StatusRetryCount:   1,
		StatusRetryBackoff: time.Millisecond,
	}, recorder.callback, nil)
	defer svc.Stop()

	result, err := svc.Execute(context.Background(), ExecuteRequest{
		SessionID: "sess-1",
		DeviceID:  "dev-1",
		Goal:      "g",
		Notify:    true,
	})
	require.NoError(t, err)
	waitStatus(t, st, result.TaskID, store.TaskSuccess)

	require.Eventually(t, func() bool {
		return len(st.queuedSendKeys()) == 3
	}, 3*time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{
		result.TaskID + ":accepted",
		result.TaskID + ":running",
		result.TaskID + ":success",
	}, st.queuedSendKeys())

	// Push path recovers; flush replays the queue in order.
	recorder.setFail(false)
	flush, err := svc.FlushPendingUpdates(context.Background(), "dev-1", "sess-1", 20)
	require.NoError(t, err)
	assert.Equal(t, 3, flush.Processed)
	assert.Equal(t, 3, flush.Sent)
	assert.Equal(t, 0, flush.Retry)
	assert.Empty(t, st.queuedSendKeys())
	assert.Equal(t, []string{"accepted", "running", "success"}, recorder.events())
}

func TestRecoverUnfinishedTasks(t *testing.T) {
	st := newFakeTaskStore()
	// Seed a task that was mid-run when the process died.
	id, err := st.CreateTask(context.Background(), "sess-1", "dev-1", "resume me", 30, map[string]any{
		"device_id": "dev-1",
		"notify":    true,
		"speak":     true,
	})
	require.NoError(t, err)
	require.NoError(t, st.TransitionTask(context.Background(), id, []string{store.TaskPending}, store.TaskRunning, "", ""))

	recorder := &pushRecorder{}
	exec := funcExecutor{fn: func(_ context.Context, _, _ string) (ExecResult, error) {
		return ExecResult{Text: "resumed"}, nil
	}}
	svc := NewService(st, exec, Config{StatusRetryBackoff: time.Millisecond}, recorder.callback, nil)
	defer svc.Stop()

	recovered, err := svc.RecoverUnfinished(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	task := waitStatus(t, st, id, store.TaskSuccess)
	assert.Contains(t, stageNames(task.Steps), "recovered")
}

func TestExecuteValidation(t *testing.T) {
	svc := NewService(newFakeTaskStore(), funcExecutor{fn: func(_ context.Context, _, _ string) (ExecResult, error) {
		return ExecResult{}, nil
	}}, Config{}, nil, nil)
	defer svc.Stop()

	_, err := svc.Execute(context.Background(), ExecuteRequest{SessionID: "s"})
	require.Error(t, err)
}
