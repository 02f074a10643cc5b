package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/protocol"
	"github.com/opencane/edged/pkg/runtime"
	"github.com/opencane/edged/pkg/session"
)

func TestDeviceEventHandler(t *testing.T) {
	t.Run("injects a well-formed envelope", func(t *testing.T) {
		rt := &fakeRuntime{}
		s := &Server{runtime: rt}

		e := echo.New()
		body := `{"direction":"event","type":"heartbeat","device_id":"glass-1","session_id":"sess-1","seq":4,"ts_ms":1000}`
		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/event", body)

		require.NoError(t, s.deviceEventHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody(t, rec)
		assert.Equal(t, true, resp["success"])
		require.Len(t, rt.injected, 1)
		assert.Equal(t, "heartbeat", rt.injected[0].Type)
		assert.Equal(t, int64(4), rt.injected[0].Seq)
	})

	t.Run("maps a bad envelope to 400", func(t *testing.T) {
		rt := &fakeRuntime{
			injectErr: fmt.Errorf("%w: inject expects direction %q", protocol.ErrBadEnvelope, "event"),
		}
		s := &Server{runtime: rt}

		e := echo.New()
		body := `{"direction":"command","type":"ack","device_id":"glass-1","seq":1}`
		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/event", body)

		require.NoError(t, s.deviceEventHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeBody(t, rec)
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, codeBadRequest, resp["error_code"])
	})

	t.Run("answers 503 when the runtime is stopped", func(t *testing.T) {
		rt := &fakeRuntime{injectErr: runtime.ErrNotRunning}
		s := &Server{runtime: rt}

		e := echo.New()
		body := `{"direction":"event","type":"heartbeat","device_id":"glass-1","seq":1}`
		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/event", body)

		require.NoError(t, s.deviceEventHandler(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, codeUnavailable, decodeBody(t, rec)["error_code"])
	})

	t.Run("answers 503 without a runtime", func(t *testing.T) {
		s := &Server{}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/event", `{}`)

		require.NoError(t, s.deviceEventHandler(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, codeUnavailable, decodeBody(t, rec)["error_code"])
	})
}

func TestDeviceCommandHandler(t *testing.T) {
	t.Run("sends and returns the stamped envelope", func(t *testing.T) {
		rt := &fakeRuntime{}
		s := &Server{runtime: rt}

		e := echo.New()
		body := `{"device_id":"glass-1","session_id":"sess-1","type":"set_config","payload":{"volume":3}}`
		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/command", body)

		require.NoError(t, s.deviceCommandHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody(t, rec)
		assert.Equal(t, true, resp["success"])
		env, ok := resp["envelope"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "command", env["direction"])
		assert.Equal(t, "set_config", env["type"])
		assert.Equal(t, float64(1), env["seq"])
	})

	t.Run("maps no-session to 404", func(t *testing.T) {
		rt := &fakeRuntime{sendErr: runtime.ErrNoSession}
		s := &Server{runtime: rt}

		e := echo.New()
		body := `{"device_id":"glass-9","type":"set_config"}`
		c, rec := newJSONContext(e, http.MethodPost, "/v1/device/command", body)

		require.NoError(t, s.deviceCommandHandler(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, codeNotFound, decodeBody(t, rec)["error_code"])
	})
}

func TestDeviceStatusHandler(t *testing.T) {
	rt := &fakeRuntime{
		snapshots: map[string]session.Snapshot{
			"glass-1": {DeviceID: "glass-1", SessionID: "sess-1", State: session.StateReady},
		},
	}
	s := &Server{runtime: rt}

	e := echo.New()
	e.GET("/v1/device/:device_id/status", s.deviceStatusHandler)

	t.Run("returns the live snapshot", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/device/glass-1/status", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody(t, rec)
		device, ok := resp["device"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "glass-1", device["device_id"])
		assert.Equal(t, "sess-1", device["session_id"])
	})

	t.Run("404 for an unknown device", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/device/glass-404/status", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, codeNotFound, decodeBody(t, rec)["error_code"])
	})
}

func TestDeviceAbortHandler(t *testing.T) {
	t.Run("aborts the active turn", func(t *testing.T) {
		rt := &fakeRuntime{abortOK: true}
		s := &Server{runtime: rt}

		e := echo.New()
		e.POST("/v1/device/:device_id/abort", s.deviceAbortHandler)
		req := httptest.NewRequest(http.MethodPost, "/v1/device/glass-1/abort", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"glass-1"}, rt.aborted)
	})

	t.Run("404 when no session is live", func(t *testing.T) {
		rt := &fakeRuntime{abortOK: false}
		s := &Server{runtime: rt}

		e := echo.New()
		e.POST("/v1/device/:device_id/abort", s.deviceAbortHandler)
		req := httptest.NewRequest(http.MethodPost, "/v1/device/glass-1/abort", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeviceCloseHandler(t *testing.T) {
	t.Run("requires session_id", func(t *testing.T) {
		rt := &fakeRuntime{closeOK: true}
		s := &Server{runtime: rt}

		e := echo.New()
		e.POST("/v1/device/:device_id/close", s.deviceCloseHandler)
		req := httptest.NewRequest(http.MethodPost, "/v1/device/glass-1/close", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rt.closed)
	})

	t.Run("closes the named session", func(t *testing.T) {
		rt := &fakeRuntime{closeOK: true}
		s := &Server{runtime: rt}

		e := echo.New()
		e.POST("/v1/device/:device_id/close", s.deviceCloseHandler)
		req := httptest.NewRequest(http.MethodPost, "/v1/device/glass-1/close",
			strings.NewReader(`{"session_id":"sess-1","reason":"maintenance"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, rt.closeReq, 1)
		assert.Equal(t, [2]string{"glass-1", "sess-1"}, rt.closeReq[0])
	})
}

func TestBindingHandlers(t *testing.T) {
	st := newFakeAPIStore()
	s := &Server{store: st}
	e := echo.New()

	post := func(t *testing.T, path, body string) *httptest.ResponseRecorder {
		t.Helper()
		c, rec := newJSONContext(e, http.MethodPost, path, body)
		var err error
		switch path {
		case "/v1/device/register":
			err = s.deviceRegisterHandler(c)
		case "/v1/device/bind":
			err = s.deviceBindHandler(c)
		case "/v1/device/activate":
			err = s.deviceActivateHandler(c)
		case "/v1/device/revoke":
			err = s.deviceRevokeHandler(c)
		}
		require.NoError(t, err)
		return rec
	}

	rec := post(t, "/v1/device/register", `{"device_id":"glass-1","metadata":{"model":"g2"}}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = post(t, "/v1/device/register", `{"device_id":"glass-1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, codeDuplicate, decodeBody(t, rec)["error_code"])

	// Activation before binding violates the lifecycle order.
	rec = post(t, "/v1/device/activate", `{"device_id":"glass-1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, codeStatusConflict, decodeBody(t, rec)["error_code"])

	rec = post(t, "/v1/device/bind", `{"device_id":"glass-1","user_id":"user-7","device_token":"secret"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = post(t, "/v1/device/bind", `{"device_id":"glass-1","user_id":"user-7"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, codeBadRequest, decodeBody(t, rec)["error_code"])

	rec = post(t, "/v1/device/activate", `{"device_id":"glass-1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	t.Run("binding lookup reflects the lifecycle", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/v1/device/binding?device_id=glass-1", "")
		require.NoError(t, s.deviceBindingHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody(t, rec)
		binding, ok := resp["binding"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "activated", binding["status"])
		assert.Equal(t, "user-7", binding["user_id"])
	})

	t.Run("binding lookup requires device_id", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/v1/device/binding", "")
		require.NoError(t, s.deviceBindingHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("binding lookup 404s for unknown devices", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/v1/device/binding?device_id=glass-404", "")
		require.NoError(t, s.deviceBindingHandler(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	rec = post(t, "/v1/device/revoke", `{"device_id":"glass-1","reason":"lost device"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// A revoked device cannot be re-bound.
	rec = post(t, "/v1/device/bind", `{"device_id":"glass-1","user_id":"user-8","device_token":"other"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, codeStatusConflict, decodeBody(t, rec)["error_code"])
}
