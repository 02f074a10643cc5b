package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/opencane/edged/ent"
	"github.com/opencane/edged/ent/digitaltask"
	"github.com/opencane/edged/ent/pushupdate"
)

// Task status values. Transitions are forward-only; canceled wins over a
// concurrent success.
const (
	TaskPending  = "pending"
	TaskRunning  = "running"
	TaskSuccess  = "success"
	TaskFailed   = "failed"
	TaskTimeout  = "timeout"
	TaskCanceled = "canceled"
)

// Task is one background digital task row.
type Task struct {
	ID             string           `json:"task_id"`
	SessionID      string           `json:"session_id"`
	DeviceID       string           `json:"device_id,omitempty"`
	Goal           string           `json:"goal"`
	Status         string           `json:"status"`
	Steps          []map[string]any `json:"steps,omitempty"`
	Result         string           `json:"result,omitempty"`
	ErrorMessage   string           `json:"error,omitempty"`
	TimeoutSeconds int              `json:"timeout_seconds"`
	PushContext    map[string]any   `json:"push_context,omitempty"`
	CreatedAtMS    int64            `json:"created_at_ms"`
	UpdatedAtMS    int64            `json:"updated_at_ms"`
	CompletedAtMS  int64            `json:"completed_at_ms,omitempty"`
}

// PendingUpdate is one queued task status notice for a device.
type PendingUpdate struct {
	ID          string         `json:"update_id"`
	DeviceID    string         `json:"device_id"`
	SessionID   string         `json:"session_id,omitempty"`
	TaskID      string         `json:"task_id"`
	SendKey     string         `json:"send_key"`
	Payload     map[string]any `json:"payload"`
	CreatedAtMS int64          `json:"created_at_ms"`
}

// CreateTask records a new pending task with its accepted step and returns
// its id.
func (s *Store) CreateTask(ctx context.Context, sessionID, deviceID, goal string, timeoutSeconds int, pushContext map[string]any) (string, error) {
	if sessionID == "" {
		return "", NewValidationError("session_id", "required")
	}
	if goal == "" {
		return "", NewValidationError("goal", "required")
	}
	if timeoutSeconds <= 0 {
		timeoutSeconds = 120
	}

	id := uuid.New().String()
	now := nowMS()
	builder := s.client.DigitalTask.Create().
		SetID(id).
		SetSessionID(sessionID).
		SetDeviceID(deviceID).
		SetGoal(goal).
		SetStatus(digitaltask.StatusPending).
		SetSteps([]map[string]any{{"stage": "accepted", "ts_ms": now}}).
		SetTimeoutSeconds(timeoutSeconds).
		SetCreatedAtMs(now).
		SetUpdatedAtMs(now)
	if pushContext != nil {
		builder.SetPushContext(pushContext)
	}
	if _, err := builder.Save(ctx); err != nil {
		return "", fmt.Errorf("failed to create task: %w", err)
	}
	return id, nil
}

// TransitionTask performs a compare-and-swap status transition: the task
// moves to next only if its current status is one of expected, appending a
// step row for the transition. Returns ErrStatusConflict when the guard
// fails, so a cancel racing a completion is never overwritten.
func (s *Store) TransitionTask(ctx context.Context, taskID string, expected []string, next, result, errMsg string) error {
	// Steps are read-modify-written inside a transaction so the append stays
	// consistent with the CAS guard.
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.DigitalTask.Query().
		Where(digitaltask.IDEQ(taskID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if isEntNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load task: %w", err)
	}

	matched := false
	for _, st := range expected {
		if string(row.Status) == st {
			matched = true
			break
		}
	}
	if !matched {
		return ErrStatusConflict
	}

	now := nowMS()
	step := map[string]any{"stage": next, "ts_ms": now}
	if errMsg != "" {
		step["error"] = errMsg
	}
	builder := tx.DigitalTask.UpdateOneID(taskID).
		SetStatus(digitaltask.Status(next)).
		SetSteps(append(row.Steps, step)).
		SetUpdatedAtMs(now)
	if result != "" {
		builder.SetResult(result)
	}
	if errMsg != "" {
		builder.SetErrorMessage(errMsg)
	}
	if isTerminalTaskStatus(next) {
		builder.SetCompletedAtMs(now)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to transition task: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// AppendTaskStep appends a step row without changing status (used for the
// crash-recovery marker).
func (s *Store) AppendTaskStep(ctx context.Context, taskID, stage string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.DigitalTask.Query().
		Where(digitaltask.IDEQ(taskID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if isEntNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load task: %w", err)
	}

	now := nowMS()
	_, err = tx.DigitalTask.UpdateOneID(taskID).
		SetSteps(append(row.Steps, map[string]any{"stage": stage, "ts_ms": now})).
		SetUpdatedAtMs(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append task step: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetTask returns one task by id.
func (s *Store) GetTask(ctx context.Context, taskID string) (Task, error) {
	row, err := s.client.DigitalTask.Get(ctx, taskID)
	if err != nil {
		if isEntNotFound(err) {
			return Task{}, ErrNotFound
		}
		return Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return taskFromRow(row), nil
}

// ListTasks returns recent tasks, newest first. deviceID and statuses filter
// when non-empty.
func (s *Store) ListTasks(ctx context.Context, deviceID string, statuses []string, limit int) ([]Task, error) {
	if limit <= 0 {
		limit = 50
	}
	q := s.client.DigitalTask.Query()
	if deviceID != "" {
		q = q.Where(digitaltask.DeviceIDEQ(deviceID))
	}
	if len(statuses) > 0 {
		in := make([]digitaltask.Status, 0, len(statuses))
		for _, st := range statuses {
			in = append(in, digitaltask.Status(st))
		}
		q = q.Where(digitaltask.StatusIn(in...))
	}
	rows, err := q.
		Order(digitaltask.ByCreatedAtMs(orderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	out := make([]Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, taskFromRow(row))
	}
	return out, nil
}

// NonTerminalTasks returns tasks still pending or running; crash recovery
// re-enqueues them on startup.
func (s *Store) NonTerminalTasks(ctx context.Context) ([]Task, error) {
	rows, err := s.client.DigitalTask.Query().
		Where(digitaltask.StatusIn(digitaltask.StatusPending, digitaltask.StatusRunning)).
		Order(digitaltask.ByCreatedAtMs()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query non-terminal tasks: %w", err)
	}
	out := make([]Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, taskFromRow(row))
	}
	return out, nil
}

// LatestActiveTask returns the most recent non-terminal task for a device.
func (s *Store) LatestActiveTask(ctx context.Context, deviceID string) (Task, error) {
	row, err := s.client.DigitalTask.Query().
		Where(
			digitaltask.DeviceIDEQ(deviceID),
			digitaltask.StatusIn(digitaltask.StatusPending, digitaltask.StatusRunning),
		).
		Order(digitaltask.ByCreatedAtMs(orderDesc())).
		First(ctx)
	if err != nil {
		if isEntNotFound(err) {
			return Task{}, ErrNotFound
		}
		return Task{}, fmt.Errorf("failed to query active task: %w", err)
	}
	return taskFromRow(row), nil
}

// TaskStats returns a status -> count breakdown. An empty deviceID
// aggregates across all devices.
func (s *Store) TaskStats(ctx context.Context, deviceID string) (map[string]int, error) {
	q := s.client.DigitalTask.Query()
	if deviceID != "" {
		q = q.Where(digitaltask.DeviceIDEQ(deviceID))
	}
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := q.
		GroupBy(digitaltask.FieldStatus).
		Aggregate(entCount()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate task stats: %w", err)
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

// EnqueuePushUpdate queues a task status notice for later delivery. The
// send key makes re-enqueueing the same (task, status) a no-op.
func (s *Store) EnqueuePushUpdate(ctx context.Context, upd PendingUpdate) (string, error) {
	if upd.DeviceID == "" {
		return "", NewValidationError("device_id", "required")
	}
	if upd.TaskID == "" {
		return "", NewValidationError("task_id", "required")
	}
	if upd.SendKey == "" {
		return "", NewValidationError("send_key", "required")
	}
	if upd.ID == "" {
		upd.ID = uuid.New().String()
	}
	err := s.client.PushUpdate.Create().
		SetID(upd.ID).
		SetDeviceID(upd.DeviceID).
		SetSessionID(upd.SessionID).
		SetTaskID(upd.TaskID).
		SetSendKey(upd.SendKey).
		SetPayload(upd.Payload).
		SetStatus(pushupdate.StatusPending).
		SetCreatedAtMs(nowMS()).
		OnConflictColumns(pushupdate.FieldSendKey).
		Ignore().
		Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue push update: %w", err)
	}
	return upd.ID, nil
}

// PendingPushUpdates returns undelivered notices for one device in enqueue
// order.
func (s *Store) PendingPushUpdates(ctx context.Context, deviceID string, limit int) ([]PendingUpdate, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.client.PushUpdate.Query().
		Where(
			pushupdate.DeviceIDEQ(deviceID),
			pushupdate.StatusEQ(pushupdate.StatusPending),
		).
		Order(pushupdate.ByCreatedAtMs()).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending push updates: %w", err)
	}
	out := make([]PendingUpdate, 0, len(rows))
	for _, row := range rows {
		out = append(out, PendingUpdate{
			ID:          row.ID,
			DeviceID:    row.DeviceID,
			SessionID:   row.SessionID,
			TaskID:      row.TaskID,
			SendKey:     row.SendKey,
			Payload:     row.Payload,
			CreatedAtMS: row.CreatedAtMs,
		})
	}
	return out, nil
}

// MarkPushSent flips queued notices to sent.
func (s *Store) MarkPushSent(ctx context.Context, updateIDs []string) error {
	if len(updateIDs) == 0 {
		return nil
	}
	_, err := s.client.PushUpdate.Update().
		Where(pushupdate.IDIn(updateIDs...)).
		SetStatus(pushupdate.StatusSent).
		SetSentAtMs(nowMS()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark push updates sent: %w", err)
	}
	return nil
}

func isTerminalTaskStatus(status string) bool {
	switch status {
	case TaskSuccess, TaskFailed, TaskTimeout, TaskCanceled:
		return true
	}
	return false
}

func taskFromRow(row *ent.DigitalTask) Task {
	return Task{
		ID:             row.ID,
		SessionID:      row.SessionID,
		DeviceID:       row.DeviceID,
		Goal:           row.Goal,
		Status:         string(row.Status),
		Steps:          row.Steps,
		Result:         row.Result,
		ErrorMessage:   row.ErrorMessage,
		TimeoutSeconds: row.TimeoutSeconds,
		PushContext:    row.PushContext,
		CreatedAtMS:    row.CreatedAtMs,
		UpdatedAtMS:    row.UpdatedAtMs,
		CompletedAtMS:  row.CompletedAtMs,
	}
}
