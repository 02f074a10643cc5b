package api

import (
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/store"
	"github.com/opencane/edged/pkg/task"
)

func TestTaskExecuteHandler(t *testing.T) {
	t.Run("accepts and returns the pending task", func(t *testing.T) {
		svc := &fakeTasks{executeResult: task.ExecuteResult{
			TaskID:   "task-1",
			Accepted: true,
			Task:     store.Task{ID: "task-1", Status: store.TaskPending, Goal: "order coffee beans"},
		}}
		s := &Server{tasks: svc}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/digital_task/execute",
			`{"session_id":"sess-1","device_id":"glass-1","goal":"order coffee beans"}`)

		require.NoError(t, s.taskExecuteHandler(c))
		assert.Equal(t, http.StatusAccepted, rec.Code)

		resp := decodeBody(t, rec)
		assert.Equal(t, "task-1", resp["task_id"])
		assert.Equal(t, true, resp["accepted"])
	})

	t.Run("notify and speak default on", func(t *testing.T) {
		svc := &fakeTasks{}
		s := &Server{tasks: svc}

		e := echo.New()
		c, _ := newJSONContext(e, http.MethodPost, "/v1/digital_task/execute",
			`{"device_id":"glass-1","goal":"g"}`)
		require.NoError(t, s.taskExecuteHandler(c))

		require.Len(t, svc.gotExecute, 1)
		assert.True(t, svc.gotExecute[0].Notify)
		assert.True(t, svc.gotExecute[0].Speak)
	})

	t.Run("explicit false opts out of notify and speak", func(t *testing.T) {
		svc := &fakeTasks{}
		s := &Server{tasks: svc}

		e := echo.New()
		c, _ := newJSONContext(e, http.MethodPost, "/v1/digital_task/execute",
			`{"device_id":"glass-1","goal":"g","notify":false,"speak":false}`)
		require.NoError(t, s.taskExecuteHandler(c))

		require.Len(t, svc.gotExecute, 1)
		assert.False(t, svc.gotExecute[0].Notify)
		assert.False(t, svc.gotExecute[0].Speak)
	})

	t.Run("validation errors map to 400", func(t *testing.T) {
		svc := &fakeTasks{executeErr: store.NewValidationError("goal", "required")}
		s := &Server{tasks: svc}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/digital_task/execute", `{"device_id":"glass-1"}`)
		require.NoError(t, s.taskExecuteHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeBadRequest, decodeBody(t, rec)["error_code"])
	})

	t.Run("503 without a task service", func(t *testing.T) {
		s := &Server{}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/digital_task/execute", `{}`)
		require.NoError(t, s.taskExecuteHandler(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestTaskCancelHandler(t *testing.T) {
	t.Run("cancels by id", func(t *testing.T) {
		svc := &fakeTasks{cancelTask: store.Task{ID: "task-1", Status: store.TaskCanceled}}
		s := &Server{tasks: svc}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/digital_task/cancel",
			`{"task_id":"task-1","reason":"user changed plans"}`)
		require.NoError(t, s.taskCancelHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody(t, rec)
		canceled := resp["task"].(map[string]any)
		assert.Equal(t, store.TaskCanceled, canceled["status"])
		assert.Equal(t, []string{"task-1"}, svc.gotCancel)
	})

	t.Run("requires task_id", func(t *testing.T) {
		s := &Server{tasks: &fakeTasks{}}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/digital_task/cancel", `{"reason":"r"}`)
		require.NoError(t, s.taskCancelHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("terminal tasks conflict", func(t *testing.T) {
		svc := &fakeTasks{cancelErr: store.ErrStatusConflict}
		s := &Server{tasks: svc}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/digital_task/cancel", `{"task_id":"task-1"}`)
		require.NoError(t, s.taskCancelHandler(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, codeStatusConflict, decodeBody(t, rec)["error_code"])
	})
}

func TestTaskListHandler(t *testing.T) {
	svc := &fakeTasks{tasks: []store.Task{
		{ID: "task-1", Status: store.TaskRunning},
		{ID: "task-2", Status: store.TaskSuccess},
	}}
	s := &Server{tasks: svc}

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/v1/digital_task/list", `{"device_id":"glass-1"}`)
	require.NoError(t, s.taskListHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeBody(t, rec)["count"])
}

func TestTaskStatsHandler(t *testing.T) {
	svc := &fakeTasks{stats: map[string]int{
		store.TaskPending: 1,
		store.TaskSuccess: 4,
		store.TaskFailed:  2,
	}}
	s := &Server{tasks: svc}

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/v1/digital_task/stats", `{}`)
	require.NoError(t, s.taskStatsHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	stats := decodeBody(t, rec)["stats"].(map[string]any)
	assert.Equal(t, float64(4), stats[store.TaskSuccess])
}

func TestTaskFlushHandler(t *testing.T) {
	t.Run("requires device_id", func(t *testing.T) {
		s := &Server{tasks: &fakeTasks{}}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/digital_task/flush_pending_updates", `{}`)
		require.NoError(t, s.taskFlushHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("reports the flush outcome", func(t *testing.T) {
		svc := &fakeTasks{flush: task.FlushResult{DeviceID: "glass-1", Processed: 3, Sent: 2, Retry: 1}}
		s := &Server{tasks: svc}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/digital_task/flush_pending_updates",
			`{"device_id":"glass-1"}`)
		require.NoError(t, s.taskFlushHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody(t, rec)
		assert.Equal(t, float64(3), resp["processed"])
		assert.Equal(t, float64(2), resp["sent"])
		assert.Equal(t, float64(1), resp["retry"])
	})
}
