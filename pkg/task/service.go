// Package task runs long-lived digital tasks on behalf of a device: a goal
// is accepted immediately, executed in the background with a timeout, and
// every status change is pushed back to the device, falling back to a
// durable queue when the push path is down.
package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/opencane/edged/pkg/store"
)

// Executor performs the actual work for one task goal.
type Executor interface {
	Execute(ctx context.Context, goal, sessionID string) (ExecResult, error)
}

// ExecResult is the executor's outcome, persisted into the task result.
type ExecResult struct {
	Text          string   `json:"text"`
	ExecutionPath string   `json:"execution_path,omitempty"`
	AllowedTools  []string `json:"allowed_tools,omitempty"`
}

// StatusCallback delivers one task status payload to the device. A non-nil
// error means the push failed and will be retried or queued.
type StatusCallback func(ctx context.Context, payload map[string]any) error

// Store is the persistence surface the service needs, satisfied by
// *store.Store.
type Store interface {
	CreateTask(ctx context.Context, sessionID, deviceID, goal string, timeoutSeconds int, pushContext map[string]any) (string, error)
	TransitionTask(ctx context.Context, taskID string, expected []string, next, result, errMsg string) error
	AppendTaskStep(ctx context.Context, taskID, stage string) error
	GetTask(ctx context.Context, taskID string) (store.Task, error)
	ListTasks(ctx context.Context, deviceID string, statuses []string, limit int) ([]store.Task, error)
	NonTerminalTasks(ctx context.Context) ([]store.Task, error)
	LatestActiveTask(ctx context.Context, deviceID string) (store.Task, error)
	TaskStats(ctx context.Context, deviceID string) (map[string]int, error)
	EnqueuePushUpdate(ctx context.Context, upd store.PendingUpdate) (string, error)
	PendingPushUpdates(ctx context.Context, deviceID string, limit int) ([]store.PendingUpdate, error)
	MarkPushSent(ctx context.Context, updateIDs []string) error
}

// InterruptReason marks a task canceled because a newer task for the same
// device asked to take over.
const InterruptReason = "interrupted_by_new_task"

// Config tunes the service.
type Config struct {
	DefaultTimeout     time.Duration
	MaxConcurrent      int
	StatusRetryCount   int
	StatusRetryBackoff time.Duration
}

func (c Config) withDefaults() Config {
	if c.DefaultTimeout <= 0 {
		c.DefaultTimeout = 120 * time.Second
	}
	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = 2
	}
	if c.StatusRetryCount < 0 {
		c.StatusRetryCount = 0
	}
	if c.StatusRetryBackoff <= 0 {
		c.StatusRetryBackoff = 300 * time.Millisecond
	}
	return c
}

// PushContext describes where task status updates go.
type PushContext struct {
	TaskID            string
	DeviceID          string
	SessionID         string
	Notify            bool
	Speak             bool
	InterruptPrevious bool
}

func (p PushContext) toMap() map[string]any {
	return map[string]any{
		"task_id":            p.TaskID,
		"device_id":          p.DeviceID,
		"session_id":         p.SessionID,
		"notify":             p.Notify,
		"speak":              p.Speak,
		"interrupt_previous": p.InterruptPrevious,
	}
}

func pushContextFromMap(taskID, sessionID, deviceID string, m map[string]any) (PushContext, bool) {
	ctx := PushContext{
		TaskID:    taskID,
		DeviceID:  deviceID,
		SessionID: sessionID,
		Notify:    true,
		Speak:     true,
	}
	if m != nil {
		if v, ok := m["device_id"].(string); ok && strings.TrimSpace(v) != "" {
			ctx.DeviceID = strings.TrimSpace(v)
		}
		if v, ok := m["session_id"].(string); ok && strings.TrimSpace(v) != "" {
			ctx.SessionID = strings.TrimSpace(v)
		}
		if v, ok := m["notify"].(bool); ok {
			ctx.Notify = v
		}
		if v, ok := m["speak"].(bool); ok {
			ctx.Speak = v
		}
		if v, ok := m["interrupt_previous"].(bool); ok {
			ctx.InterruptPrevious = v
		}
	}
	if ctx.DeviceID == "" {
		return PushContext{}, false
	}
	return ctx, true
}

// ExecuteRequest asks the service to run one goal in the background.
type ExecuteRequest struct {
	SessionID         string
	DeviceID          string
	Goal              string
	TimeoutSeconds    int
	TargetSessionID   string
	Notify            bool
	Speak             bool
	InterruptPrevious bool
}

// ExecuteResult is the immediate acceptance response.
type ExecuteResult struct {
	TaskID   string     `json:"task_id"`
	Accepted bool       `json:"accepted"`
	Task     store.Task `json:"task"`
}

// FlushResult reports a flush_pending_updates pass.
type FlushResult struct {
	DeviceID  string `json:"device_id"`
	Processed int    `json:"processed"`
	Sent      int    `json:"sent"`
	Retry     int    `json:"retry"`
}

// Service executes digital tasks asynchronously with bounded concurrency.
type Service struct {
	store    Store
	executor Executor
	cfg      Config
	logger   *slog.Logger

	statusMu sync.RWMutex
	statusCB StatusCallback

	mu             sync.Mutex
	cancels        map[string]context.CancelFunc
	cancelReasons  map[string]string
	pushContexts   map[string]PushContext
	activeByDevice map[string]string

	sem      chan struct{}
	wg       sync.WaitGroup
	baseCtx  context.Context
	baseStop context.CancelFunc
}

// NewService wires the service. statusCB may be nil and set later via
// SetStatusCallback once the runtime's push path exists.
func NewService(st Store, executor Executor, cfg Config, statusCB StatusCallback, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()
	baseCtx, baseStop := context.WithCancel(context.Background())
	return &Service{
		store:          st,
		executor:       executor,
		cfg:            cfg,
		logger:         logger.With("component", "task.service"),
		statusCB:       statusCB,
		cancels:        make(map[string]context.CancelFunc),
		cancelReasons:  make(map[string]string),
		pushContexts:   make(map[string]PushContext),
		activeByDevice: make(map[string]string),
		sem:            make(chan struct{}, cfg.MaxConcurrent),
		baseCtx:        baseCtx,
		baseStop:       baseStop,
	}
}

// SetStatusCallback swaps the push delivery path.
func (s *Service) SetStatusCallback(cb StatusCallback) {
	s.statusMu.Lock()
	s.statusCB = cb
	s.statusMu.Unlock()
}

func (s *Service) callback() StatusCallback {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.statusCB
}

// Execute accepts a goal, creates the pending task, and starts the
// background run. Returns immediately with {task_id, accepted}.
func (s *Service) Execute(ctx context.Context, req ExecuteRequest) (ExecuteResult, error) {
	goal := strings.TrimSpace(req.Goal)
	if goal == "" {
		return ExecuteResult{}, store.NewValidationError("goal", "required")
	}
	timeout := time.Duration(req.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = s.cfg.DefaultTimeout
	}

	deviceID := strings.TrimSpace(req.DeviceID)
	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = "digital-" + uuid.New().String()[:12]
	}

	var pushCtx *PushContext
	if deviceID != "" {
		target := strings.TrimSpace(req.TargetSessionID)
		if target == "" {
			target = sessionID
		}
		pushCtx = &PushContext{
			DeviceID:          deviceID,
			SessionID:         target,
			Notify:            req.Notify,
			Speak:             req.Speak,
			InterruptPrevious: req.InterruptPrevious,
		}
		if pushCtx.InterruptPrevious {
			s.interruptPreviousForDevice(ctx, deviceID)
		}
	}

	var pushMap map[string]any
	if pushCtx != nil {
		pushMap = pushCtx.toMap()
	}
	taskID, err := s.store.CreateTask(ctx, sessionID, deviceID, goal, int(timeout/time.Second), pushMap)
	if err != nil {
		return ExecuteResult{}, err
	}

	s.mu.Lock()
	if pushCtx != nil {
		pushCtx.TaskID = taskID
		s.pushContexts[taskID] = *pushCtx
		s.activeByDevice[deviceID] = taskID
	}
	runCtx, cancel := context.WithCancel(s.baseCtx)
	s.cancels[taskID] = cancel
	s.mu.Unlock()

	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		task = store.Task{ID: taskID, Status: store.TaskPending}
	}
	// Push the accepted notice before the run starts so updates arrive in
	// lifecycle order.
	s.emitStatusUpdate(ctx, taskID, "accepted", store.TaskPending, "任务已创建，开始处理。", task)

	s.wg.Add(1)
	go s.run(runCtx, taskID, sessionID, goal, timeout)

	return ExecuteResult{TaskID: taskID, Accepted: true, Task: task}, nil
}

// Cancel moves a pending or running task to canceled and signals its
// goroutine. A concurrent success after cancel loses the CAS and is ignored.
func (s *Service) Cancel(ctx context.Context, taskID, reason string) (store.Task, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return store.Task{}, store.NewValidationError("task_id", "required")
	}
	if reason == "" {
		reason = "manual_cancel"
	}

	s.mu.Lock()
	s.cancelReasons[taskID] = reason
	cancel := s.cancels[taskID]
	s.mu.Unlock()

	err := s.store.TransitionTask(ctx, taskID, []string{store.TaskPending, store.TaskRunning}, store.TaskCanceled, "", reason)
	if err != nil {
		s.mu.Lock()
		delete(s.cancelReasons, taskID)
		s.mu.Unlock()
		return store.Task{}, err
	}

	if cancel != nil {
		cancel()
	}

	task, getErr := s.store.GetTask(ctx, taskID)
	if getErr != nil {
		task = store.Task{ID: taskID, Status: store.TaskCanceled}
	}
	s.emitStatusUpdate(ctx, taskID, "canceled", store.TaskCanceled, "任务已取消。", task)
	return task, nil
}

// Get returns one task.
func (s *Service) Get(ctx context.Context, taskID string) (store.Task, error) {
	return s.store.GetTask(ctx, taskID)
}

// List returns recent tasks filtered by device and statuses.
func (s *Service) List(ctx context.Context, deviceID string, statuses []string, limit int) ([]store.Task, error) {
	return s.store.ListTasks(ctx, deviceID, statuses, limit)
}

// Stats returns a status breakdown.
func (s *Service) Stats(ctx context.Context, deviceID string) (map[string]int, error) {
	return s.store.TaskStats(ctx, deviceID)
}

// FlushPendingUpdates replays queued status notices for a device in order.
// Updates that fail again stay queued.
func (s *Service) FlushPendingUpdates(ctx context.Context, deviceID, sessionID string, limit int) (FlushResult, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return FlushResult{}, store.NewValidationError("device_id", "required")
	}
	cb := s.callback()
	if cb == nil {
		return FlushResult{}, fmt.Errorf("status callback unavailable")
	}
	if limit <= 0 {
		limit = 20
	}

	items, err := s.store.PendingPushUpdates(ctx, deviceID, limit)
	if err != nil {
		return FlushResult{}, err
	}

	result := FlushResult{DeviceID: deviceID, Processed: len(items)}
	var sentIDs []string
	for _, item := range items {
		payload := make(map[string]any, len(item.Payload)+1)
		for k, v := range item.Payload {
			payload[k] = v
		}
		if sessionID != "" {
			payload["session_id"] = sessionID
		}
		if err := cb(ctx, payload); err != nil {
			s.logger.Warn("pending update push failed", "device_id", deviceID, "update_id", item.ID, "error", err)
			result.Retry++
			continue
		}
		sentIDs = append(sentIDs, item.ID)
		result.Sent++
	}
	if len(sentIDs) > 0 {
		if err := s.store.MarkPushSent(ctx, sentIDs); err != nil {
			return result, err
		}
	}
	return result, nil
}

// RecoverUnfinished re-enqueues non-terminal tasks after a restart. Tasks
// stuck in running are reset to pending first; every recovered task gets a
// "recovered" step.
func (s *Service) RecoverUnfinished(ctx context.Context) (int, error) {
	tasks, err := s.store.NonTerminalTasks(ctx)
	if err != nil {
		return 0, err
	}

	recovered := 0
	for _, task := range tasks {
		s.mu.Lock()
		_, alreadyRunning := s.cancels[task.ID]
		s.mu.Unlock()
		if alreadyRunning {
			continue
		}

		if task.Status == store.TaskRunning {
			err := s.store.TransitionTask(ctx, task.ID, []string{store.TaskRunning}, store.TaskPending, "", "recovered_after_restart")
			if err != nil {
				s.logger.Warn("failed to reset running task", "task_id", task.ID, "error", err)
				continue
			}
		}

		if err := s.store.AppendTaskStep(ctx, task.ID, "recovered"); err != nil {
			s.logger.Warn("failed to append recovery step", "task_id", task.ID, "error", err)
		}

		s.mu.Lock()
		if pushCtx, ok := pushContextFromMap(task.ID, task.SessionID, task.DeviceID, task.PushContext); ok {
			s.pushContexts[task.ID] = pushCtx
			s.activeByDevice[pushCtx.DeviceID] = task.ID
		}
		runCtx, cancel := context.WithCancel(s.baseCtx)
		s.cancels[task.ID] = cancel
		s.mu.Unlock()

		timeout := time.Duration(task.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = s.cfg.DefaultTimeout
		}
		s.wg.Add(1)
		go s.run(runCtx, task.ID, task.SessionID, task.Goal, timeout)
		recovered++
	}
	return recovered, nil
}

// Stop cancels all in-flight tasks and waits for their goroutines.
func (s *Service) Stop() {
	s.baseStop()
	s.wg.Wait()
}

func (s *Service) run(ctx context.Context, taskID, sessionID, goal string, timeout time.Duration) {
	defer s.wg.Done()
	defer s.cleanup(taskID)

	err := s.store.TransitionTask(ctx, taskID, []string{store.TaskPending}, store.TaskRunning, "", "")
	if err != nil {
		// A cancel beat us to it.
		return
	}
	if task, getErr := s.store.GetTask(ctx, taskID); getErr == nil {
		s.emitStatusUpdate(ctx, taskID, "running", store.TaskRunning, "任务处理中，请稍候。", task)
	}

	select {
	case s.sem <- struct{}{}:
		defer func() { <-s.sem }()
	case <-ctx.Done():
		s.finishCanceled(taskID)
		return
	}

	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, execErr := s.executor.Execute(execCtx, goal, sessionID)
	switch {
	case execErr == nil:
		s.finishSuccess(taskID, result)
	case ctx.Err() != nil:
		s.finishCanceled(taskID)
	case errors.Is(execErr, context.DeadlineExceeded):
		s.finishTimeout(taskID, timeout)
	default:
		s.finishFailed(taskID, execErr)
	}
}

func (s *Service) finishSuccess(taskID string, result ExecResult) {
	ctx := context.Background()
	data, _ := json.Marshal(result)
	err := s.store.TransitionTask(ctx, taskID, []string{store.TaskRunning}, store.TaskSuccess, string(data), "")
	if err != nil {
		// Canceled-wins: a concurrent cancel already holds the terminal state.
		return
	}
	task, _ := s.store.GetTask(ctx, taskID)
	message := "任务完成。"
	if preview := shorten(strings.TrimSpace(result.Text), 120); preview != "" {
		message += preview
	}
	s.emitStatusUpdate(ctx, taskID, "success", store.TaskSuccess, message, task)
}

func (s *Service) finishCanceled(taskID string) {
	ctx := context.Background()
	s.mu.Lock()
	reason := s.cancelReasons[taskID]
	s.mu.Unlock()
	if reason == "" {
		reason = "canceled"
	}
	err := s.store.TransitionTask(ctx, taskID, []string{store.TaskPending, store.TaskRunning}, store.TaskCanceled, "", reason)
	if err != nil {
		// Cancel() already transitioned and pushed the update.
		return
	}
	task, _ := s.store.GetTask(ctx, taskID)
	s.emitStatusUpdate(ctx, taskID, "canceled", store.TaskCanceled, "任务已取消。", task)
}

func (s *Service) finishTimeout(taskID string, timeout time.Duration) {
	ctx := context.Background()
	errMsg := fmt.Sprintf("timeout after %ds", int(timeout/time.Second))
	err := s.store.TransitionTask(ctx, taskID, []string{store.TaskRunning}, store.TaskTimeout, "", errMsg)
	if err != nil {
		return
	}
	task, _ := s.store.GetTask(ctx, taskID)
	s.emitStatusUpdate(ctx, taskID, "timeout", store.TaskTimeout, "任务超时，请稍后重试。", task)
}

func (s *Service) finishFailed(taskID string, execErr error) {
	ctx := context.Background()
	err := s.store.TransitionTask(ctx, taskID, []string{store.TaskRunning}, store.TaskFailed, "", execErr.Error())
	if err != nil {
		return
	}
	task, _ := s.store.GetTask(ctx, taskID)
	s.emitStatusUpdate(ctx, taskID, "failed", store.TaskFailed, "任务执行失败。", task)
}

func (s *Service) cleanup(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cancel, ok := s.cancels[taskID]; ok {
		cancel()
		delete(s.cancels, taskID)
	}
	delete(s.cancelReasons, taskID)
	if pushCtx, ok := s.pushContexts[taskID]; ok {
		delete(s.pushContexts, taskID)
		if s.activeByDevice[pushCtx.DeviceID] == taskID {
			delete(s.activeByDevice, pushCtx.DeviceID)
		}
	}
}

func (s *Service) interruptPreviousForDevice(ctx context.Context, deviceID string) {
	s.mu.Lock()
	previousID := s.activeByDevice[deviceID]
	s.mu.Unlock()

	if previousID == "" {
		// Fall back to the store for tasks created before a restart.
		task, err := s.store.LatestActiveTask(ctx, deviceID)
		if err != nil {
			return
		}
		previousID = task.ID
	}

	if _, err := s.Cancel(ctx, previousID, InterruptReason); err != nil && !errors.Is(err, store.ErrStatusConflict) && !errors.Is(err, store.ErrNotFound) {
		s.logger.Warn("failed to interrupt previous task", "device_id", deviceID, "task_id", previousID, "error", err)
	}
}

// emitStatusUpdate pushes one status payload with retries; when every
// attempt fails the payload is queued durably keyed by (task, event) so a
// later flush replays it exactly once.
func (s *Service) emitStatusUpdate(ctx context.Context, taskID, event, status, message string, task store.Task) {
	cb := s.callback()
	s.mu.Lock()
	pushCtx, hasCtx := s.pushContexts[taskID]
	s.mu.Unlock()
	if cb == nil || !hasCtx || !pushCtx.Notify {
		return
	}

	payload := map[string]any{
		"event":      event,
		"task_id":    taskID,
		"status":     status,
		"message":    message,
		"device_id":  pushCtx.DeviceID,
		"session_id": pushCtx.SessionID,
		"speak":      pushCtx.Speak,
		"task":       task,
	}

	attempts := s.cfg.StatusRetryCount + 1
	for attempt := 0; attempt < attempts; attempt++ {
		if err := cb(ctx, payload); err == nil {
			return
		} else if attempt == attempts-1 {
			_, qErr := s.store.EnqueuePushUpdate(ctx, store.PendingUpdate{
				DeviceID:  pushCtx.DeviceID,
				SessionID: pushCtx.SessionID,
				TaskID:    taskID,
				SendKey:   fmt.Sprintf("%s:%s", taskID, event),
				Payload:   payload,
			})
			if qErr != nil {
				s.logger.Warn("failed to queue status update", "task_id", taskID, "event", event, "error", qErr)
			} else {
				s.logger.Debug("task status push queued", "task_id", taskID, "status", status, "attempts", attempts, "error", err)
			}
			return
		}
		select {
		case <-time.After(s.cfg.StatusRetryBackoff * time.Duration(attempt+1)):
		case <-ctx.Done():
			return
		}
	}
}

func shorten(text string, maxLen int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= maxLen {
		return string(runes)
	}
	return strings.TrimRight(string(runes[:maxLen-3]), " \t") + "..."
}
