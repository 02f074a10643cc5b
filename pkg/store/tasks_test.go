package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/opencane/edged/test/database"
)

func TestStore_TaskLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := New(client.Client)
	ctx := context.Background()

	t.Run("create validates required fields", func(t *testing.T) {
		_, err := s.CreateTask(ctx, "", "glass-1", "order coffee", 0, nil)
		assert.True(t, IsValidationError(err))
		_, err = s.CreateTask(ctx, "sess-1", "glass-1", "", 0, nil)
		assert.True(t, IsValidationError(err))
	})

	t.Run("create records a pending task with the accepted step", func(t *testing.T) {
		id, err := s.CreateTask(ctx, "sess-1", "glass-1", "order coffee", 0, map[string]any{"notify": true})
		require.NoError(t, err)

		task, err := s.GetTask(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, TaskPending, task.Status)
		assert.Equal(t, "order coffee", task.Goal)
		assert.Equal(t, 120, task.TimeoutSeconds)
		assert.Equal(t, true, task.PushContext["notify"])
		require.Len(t, task.Steps, 1)
		assert.Equal(t, "accepted", task.Steps[0]["stage"])
		assert.Zero(t, task.CompletedAtMS)
	})

	t.Run("transition appends steps and completes terminal states", func(t *testing.T) {
		id, err := s.CreateTask(ctx, "sess-1", "glass-1", "check weather", 30, nil)
		require.NoError(t, err)

		require.NoError(t, s.TransitionTask(ctx, id, []string{TaskPending}, TaskRunning, "", ""))
		task, err := s.GetTask(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, TaskRunning, task.Status)
		assert.Zero(t, task.CompletedAtMS)

		require.NoError(t, s.TransitionTask(ctx, id, []string{TaskRunning}, TaskSuccess, "sunny, 22C", ""))
		task, err = s.GetTask(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, TaskSuccess, task.Status)
		assert.Equal(t, "sunny, 22C", task.Result)
		assert.NotZero(t, task.CompletedAtMS)
		require.Len(t, task.Steps, 3)
		assert.Equal(t, "accepted", task.Steps[0]["stage"])
		assert.Equal(t, TaskRunning, task.Steps[1]["stage"])
		assert.Equal(t, TaskSuccess, task.Steps[2]["stage"])
	})

	t.Run("guard failure leaves the task untouched", func(t *testing.T) {
		id, err := s.CreateTask(ctx, "sess-1", "glass-1", "send message", 30, nil)
		require.NoError(t, err)
		require.NoError(t, s.TransitionTask(ctx, id, []string{TaskPending}, TaskRunning, "", ""))

		err = s.TransitionTask(ctx, id, []string{TaskPending}, TaskRunning, "", "")
		assert.ErrorIs(t, err, ErrStatusConflict)

		task, err := s.GetTask(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, TaskRunning, task.Status)
		assert.Len(t, task.Steps, 2)
	})

	t.Run("cancel wins over a late completion", func(t *testing.T) {
		id, err := s.CreateTask(ctx, "sess-1", "glass-1", "book table", 30, nil)
		require.NoError(t, err)
		require.NoError(t, s.TransitionTask(ctx, id, []string{TaskPending}, TaskRunning, "", ""))
		require.NoError(t, s.TransitionTask(ctx, id, []string{TaskPending, TaskRunning}, TaskCanceled, "", "user canceled"))

		err = s.TransitionTask(ctx, id, []string{TaskRunning}, TaskSuccess, "done", "")
		assert.ErrorIs(t, err, ErrStatusConflict)

		task, err := s.GetTask(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, TaskCanceled, task.Status)
		assert.Equal(t, "user canceled", task.ErrorMessage)
	})

	t.Run("failure records the error message", func(t *testing.T) {
		id, err := s.CreateTask(ctx, "sess-1", "glass-1", "call restaurant", 30, nil)
		require.NoError(t, err)

		require.NoError(t, s.TransitionTask(ctx, id, []string{TaskPending, TaskRunning}, TaskFailed, "", "line busy"))
		task, err := s.GetTask(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, TaskFailed, task.Status)
		assert.Equal(t, "line busy", task.ErrorMessage)
		assert.Equal(t, "line busy", task.Steps[1]["error"])
	})

	t.Run("transition unknown task is not found", func(t *testing.T) {
		err := s.TransitionTask(ctx, "task-404", []string{TaskPending}, TaskRunning, "", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("append step keeps the status", func(t *testing.T) {
		id, err := s.CreateTask(ctx, "sess-1", "glass-1", "translate sign", 30, nil)
		require.NoError(t, err)

		require.NoError(t, s.AppendTaskStep(ctx, id, "requeued_after_restart"))
		task, err := s.GetTask(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, TaskPending, task.Status)
		require.Len(t, task.Steps, 2)
		assert.Equal(t, "requeued_after_restart", task.Steps[1]["stage"])

		assert.ErrorIs(t, s.AppendTaskStep(ctx, "task-404", "x"), ErrNotFound)
	})
}

func TestStore_TaskQueries(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := New(client.Client)
	ctx := context.Background()

	mk := func(deviceID, goal string) string {
		id, err := s.CreateTask(ctx, "sess-1", deviceID, goal, 30, nil)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond) // distinct created_at_ms for ordering
		return id
	}

	first := mk("glass-1", "first")
	second := mk("glass-1", "second")
	third := mk("glass-2", "third")
	require.NoError(t, s.TransitionTask(ctx, first, []string{TaskPending}, TaskRunning, "", ""))
	require.NoError(t, s.TransitionTask(ctx, second, []string{TaskPending}, TaskRunning, "", ""))
	require.NoError(t, s.TransitionTask(ctx, second, []string{TaskRunning}, TaskSuccess, "ok", ""))

	t.Run("list filters by device newest first", func(t *testing.T) {
		tasks, err := s.ListTasks(ctx, "glass-1", nil, 0)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, second, tasks[0].ID)
		assert.Equal(t, first, tasks[1].ID)
	})

	t.Run("list filters by status", func(t *testing.T) {
		tasks, err := s.ListTasks(ctx, "glass-1", []string{TaskSuccess}, 0)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, second, tasks[0].ID)
	})

	t.Run("non-terminal tasks in creation order", func(t *testing.T) {
		tasks, err := s.NonTerminalTasks(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, first, tasks[0].ID)
		assert.Equal(t, third, tasks[1].ID)
	})

	t.Run("latest active task per device", func(t *testing.T) {
		task, err := s.LatestActiveTask(ctx, "glass-1")
		require.NoError(t, err)
		assert.Equal(t, first, task.ID)

		require.NoError(t, s.TransitionTask(ctx, first, []string{TaskRunning}, TaskTimeout, "", "deadline exceeded"))
		_, err = s.LatestActiveTask(ctx, "glass-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("stats group by status", func(t *testing.T) {
		stats, err := s.TaskStats(ctx, "glass-1")
		require.NoError(t, err)
		assert.Equal(t, map[string]int{TaskTimeout: 1, TaskSuccess: 1}, stats)

		all, err := s.TaskStats(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, 1, all[TaskPending])
	})
}

func TestStore_PushUpdates(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := New(client.Client)
	ctx := context.Background()

	t.Run("enqueue validates required fields", func(t *testing.T) {
		_, err := s.EnqueuePushUpdate(ctx, PendingUpdate{TaskID: "task-1", SendKey: "task-1:success"})
		assert.True(t, IsValidationError(err))
		_, err = s.EnqueuePushUpdate(ctx, PendingUpdate{DeviceID: "glass-1", SendKey: "task-1:success"})
		assert.True(t, IsValidationError(err))
		_, err = s.EnqueuePushUpdate(ctx, PendingUpdate{DeviceID: "glass-1", TaskID: "task-1"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("send key makes enqueue idempotent", func(t *testing.T) {
		upd := PendingUpdate{
			DeviceID: "glass-1",
			TaskID:   "task-1",
			SendKey:  "task-1:success",
			Payload:  map[string]any{"status": "success"},
		}
		_, err := s.EnqueuePushUpdate(ctx, upd)
		require.NoError(t, err)
		_, err = s.EnqueuePushUpdate(ctx, upd)
		require.NoError(t, err)

		pending, err := s.PendingPushUpdates(ctx, "glass-1", 0)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "task-1:success", pending[0].SendKey)
		assert.Equal(t, "success", pending[0].Payload["status"])
	})

	t.Run("pending updates drain in enqueue order", func(t *testing.T) {
		time.Sleep(2 * time.Millisecond)
		_, err := s.EnqueuePushUpdate(ctx, PendingUpdate{
			DeviceID: "glass-1",
			TaskID:   "task-2",
			SendKey:  "task-2:failed",
			Payload:  map[string]any{"status": "failed"},
		})
		require.NoError(t, err)

		pending, err := s.PendingPushUpdates(ctx, "glass-1", 0)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, "task-1:success", pending[0].SendKey)
		assert.Equal(t, "task-2:failed", pending[1].SendKey)

		require.NoError(t, s.MarkPushSent(ctx, []string{pending[0].ID}))
		pending, err = s.PendingPushUpdates(ctx, "glass-1", 0)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "task-2:failed", pending[0].SendKey)
	})

	t.Run("mark sent with no ids is a no-op", func(t *testing.T) {
		assert.NoError(t, s.MarkPushSent(ctx, nil))
	})
}
