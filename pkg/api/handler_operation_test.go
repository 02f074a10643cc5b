package api

import (
	"context"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/runtime"
	"github.com/opencane/edged/pkg/store"
)

func TestOperationEnqueueHandler(t *testing.T) {
	t.Run("queues without dispatch", func(t *testing.T) {
		st := newFakeAPIStore()
		s := &Server{store: st}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/operation/enqueue",
			`{"device_id":"glass-1","op_type":"set_config","payload":{"volume":2}}`)

		require.NoError(t, s.operationEnqueueHandler(c))
		assert.Equal(t, http.StatusAccepted, rec.Code)

		resp := decodeBody(t, rec)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "queued", resp["status"])
		opID, _ := resp["operation_id"].(string)
		require.NotEmpty(t, opID)

		op, err := st.GetOperation(context.Background(), opID)
		require.NoError(t, err)
		assert.Equal(t, "queued", op.Status)
		assert.Equal(t, "set_config", op.CommandType)
	})

	t.Run("rejects unknown op_type", func(t *testing.T) {
		s := &Server{store: newFakeAPIStore()}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/operation/enqueue",
			`{"device_id":"glass-1","op_type":"reboot"}`)

		require.NoError(t, s.operationEnqueueHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeBadRequest, decodeBody(t, rec)["error_code"])
	})

	t.Run("dispatches to a live session and marks sent", func(t *testing.T) {
		st := newFakeAPIStore()
		rt := &fakeRuntime{dispatch: runtime.OperationDispatch{DeviceID: "glass-1", OpType: "tool_call", Seq: 7}}
		s := &Server{store: st, runtime: rt}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/operation/enqueue",
			`{"device_id":"glass-1","session_id":"sess-1","op_type":"tool_call","dispatch":true}`)

		require.NoError(t, s.operationEnqueueHandler(c))
		assert.Equal(t, http.StatusAccepted, rec.Code)

		resp := decodeBody(t, rec)
		assert.Equal(t, "sent", resp["status"])
		assert.Equal(t, []string{"glass-1:tool_call"}, rt.dispatched)

		op, err := st.GetOperation(context.Background(), resp["operation_id"].(string))
		require.NoError(t, err)
		assert.Equal(t, "sent", op.Status)
	})

	t.Run("offline device keeps the operation queued", func(t *testing.T) {
		st := newFakeAPIStore()
		rt := &fakeRuntime{dispatchErr: store.ErrNotFound}
		s := &Server{store: st, runtime: rt}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/operation/enqueue",
			`{"device_id":"glass-2","op_type":"ota_plan","dispatch":true}`)

		require.NoError(t, s.operationEnqueueHandler(c))
		assert.Equal(t, http.StatusAccepted, rec.Code)

		resp := decodeBody(t, rec)
		assert.Equal(t, "queued", resp["status"])

		op, err := st.GetOperation(context.Background(), resp["operation_id"].(string))
		require.NoError(t, err)
		assert.Equal(t, "queued", op.Status)
	})

	t.Run("dispatch failure surfaces", func(t *testing.T) {
		st := newFakeAPIStore()
		rt := &fakeRuntime{dispatchErr: runtime.ErrNotRunning}
		s := &Server{store: st, runtime: rt}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/operation/enqueue",
			`{"device_id":"glass-2","op_type":"ota_plan","dispatch":true}`)

		require.NoError(t, s.operationEnqueueHandler(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, codeUnavailable, decodeBody(t, rec)["error_code"])
	})

	t.Run("503 without a store", func(t *testing.T) {
		s := &Server{}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/operation/enqueue", `{}`)

		require.NoError(t, s.operationEnqueueHandler(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestOperationMarkHandler(t *testing.T) {
	newServer := func(t *testing.T) (*Server, string) {
		t.Helper()
		st := newFakeAPIStore()
		opID, err := st.EnqueueOperation(context.Background(), "glass-1", "sess-1", "set_config", nil)
		require.NoError(t, err)
		return &Server{store: st}, opID
	}

	t.Run("advances queued to sent to acked", func(t *testing.T) {
		s, opID := newServer(t)
		e := echo.New()

		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/operation/mark",
			`{"operation_id":"`+opID+`","status":"sent"}`)
		require.NoError(t, s.operationMarkHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		op := decodeBody(t, rec)["operation"].(map[string]any)
		assert.Equal(t, "sent", op["status"])

		c, rec = newJSONContext(e, http.MethodPost, "/v1/device/operation/mark",
			`{"operation_id":"`+opID+`","status":"acked","result":{"ok":true}}`)
		require.NoError(t, s.operationMarkHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		op = decodeBody(t, rec)["operation"].(map[string]any)
		assert.Equal(t, "acked", op["status"])
	})

	t.Run("second completion is a status conflict", func(t *testing.T) {
		s, opID := newServer(t)
		e := echo.New()

		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/operation/mark",
			`{"operation_id":"`+opID+`","status":"acked"}`)
		require.NoError(t, s.operationMarkHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		c, rec = newJSONContext(e, http.MethodPost, "/v1/device/operation/mark",
			`{"operation_id":"`+opID+`","status":"failed","error":"late duplicate"}`)
		require.NoError(t, s.operationMarkHandler(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, codeStatusConflict, decodeBody(t, rec)["error_code"])
	})

	t.Run("records failure detail", func(t *testing.T) {
		s, opID := newServer(t)
		e := echo.New()

		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/operation/mark",
			`{"operation_id":"`+opID+`","status":"failed","error":"device rejected config"}`)
		require.NoError(t, s.operationMarkHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		op := decodeBody(t, rec)["operation"].(map[string]any)
		assert.Equal(t, "failed", op["status"])
		assert.Equal(t, "device rejected config", op["error"])
	})

	t.Run("cancels an undelivered operation", func(t *testing.T) {
		s, opID := newServer(t)
		e := echo.New()

		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/operation/mark",
			`{"operation_id":"`+opID+`","status":"canceled","reason":"superseded"}`)
		require.NoError(t, s.operationMarkHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		op := decodeBody(t, rec)["operation"].(map[string]any)
		assert.Equal(t, "canceled", op["status"])
		assert.Equal(t, "superseded", op["error"])
	})

	t.Run("rejects unknown status values", func(t *testing.T) {
		s, opID := newServer(t)
		e := echo.New()

		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/operation/mark",
			`{"operation_id":"`+opID+`","status":"exploded"}`)
		require.NoError(t, s.operationMarkHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOperationQueryHandler(t *testing.T) {
	st := newFakeAPIStore()
	ctx := context.Background()
	first, err := st.EnqueueOperation(ctx, "glass-1", "sess-1", "set_config", nil)
	require.NoError(t, err)
	_, err = st.EnqueueOperation(ctx, "glass-1", "sess-1", "tool_call", nil)
	require.NoError(t, err)
	_, err = st.EnqueueOperation(ctx, "glass-2", "sess-9", "ota_plan", nil)
	require.NoError(t, err)

	s := &Server{store: st}
	e := echo.New()

	t.Run("fetches one operation by id", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/operation/query",
			`{"operation_id":"`+first+`"}`)
		require.NoError(t, s.operationQueryHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		op := decodeBody(t, rec)["operation"].(map[string]any)
		assert.Equal(t, first, op["operation_id"])
	})

	t.Run("404 for an unknown operation", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/operation/query",
			`{"operation_id":"op-404"}`)
		require.NoError(t, s.operationQueryHandler(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("lists a device's operations", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/operation/query",
			`{"device_id":"glass-1"}`)
		require.NoError(t, s.operationQueryHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody(t, rec)
		assert.Equal(t, float64(2), resp["count"])
	})

	t.Run("requires an id or a device", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/operation/query", `{}`)
		require.NoError(t, s.operationQueryHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
