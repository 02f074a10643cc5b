package api

import (
	"errors"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/version"
)

func TestHealthHandler(t *testing.T) {
	s := &Server{}

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodGet, "/healthz", "")
	require.NoError(t, s.healthHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, version.AppName, resp["service"])
	assert.NotEmpty(t, resp["version"])
}

func TestRuntimeStatusHandler(t *testing.T) {
	t.Run("returns the runtime status document", func(t *testing.T) {
		rt := &fakeRuntime{status: healthyStatus()}
		s := &Server{runtime: rt}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodGet, "/v1/runtime/status", "")
		require.NoError(t, s.runtimeStatusHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody(t, rec)
		assert.Equal(t, true, resp["running"])
		assert.Contains(t, resp, "metrics")
		assert.Contains(t, resp, "devices")
	})

	t.Run("503 without a runtime", func(t *testing.T) {
		s := &Server{}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodGet, "/v1/runtime/status", "")
		require.NoError(t, s.runtimeStatusHandler(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestObservabilityHandler(t *testing.T) {
	t.Run("reports health and records a snapshot", func(t *testing.T) {
		rt := &fakeRuntime{status: healthyStatus()}
		st := newFakeAPIStore()
		s := &Server{runtime: rt, store: st}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodGet, "/v1/runtime/observability", "")
		require.NoError(t, s.observabilityHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody(t, rec)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, true, resp["healthy"])

		require.Len(t, st.counters, 1)
		assert.Equal(t, observabilityScope, st.counters[0].Scope)
		assert.Equal(t, true, st.counters[0].Counters["healthy"])
	})

	t.Run("query params tighten thresholds", func(t *testing.T) {
		rt := &fakeRuntime{status: healthyStatus()}
		s := &Server{runtime: rt, store: newFakeAPIStore()}

		// healthyStatus has a 10% task failure rate; a 5% cap must alarm.
		e := echo.New()
		c, rec := newJSONContext(e, http.MethodGet,
			"/v1/runtime/observability?task_failure_rate_max=0.05", "")
		require.NoError(t, s.observabilityHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody(t, rec)
		assert.Equal(t, false, resp["healthy"])
		alerts := resp["alerts"].([]any)
		require.Len(t, alerts, 1)
		assert.Equal(t, "task_failure_rate", alerts[0].(map[string]any)["metric"])
	})

	t.Run("a failed snapshot insert does not fail the report", func(t *testing.T) {
		rt := &fakeRuntime{status: healthyStatus()}
		st := newFakeAPIStore()
		st.insertCounterErr = errors.New("connection refused")
		s := &Server{runtime: rt, store: st}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodGet, "/v1/runtime/observability", "")
		require.NoError(t, s.observabilityHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decodeBody(t, rec)["healthy"])
	})

	t.Run("works without a store", func(t *testing.T) {
		rt := &fakeRuntime{status: healthyStatus()}
		s := &Server{runtime: rt}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodGet, "/v1/runtime/observability", "")
		require.NoError(t, s.observabilityHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("503 without a runtime", func(t *testing.T) {
		s := &Server{}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodGet, "/v1/runtime/observability", "")
		require.NoError(t, s.observabilityHandler(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestObservabilityHistoryHandler(t *testing.T) {
	t.Run("buckets recorded snapshots", func(t *testing.T) {
		st := newFakeAPIStore()
		rt := &fakeRuntime{status: healthyStatus()}
		s := &Server{runtime: rt, store: st}

		e := echo.New()
		// Record a couple of samples through the report endpoint first.
		for i := 0; i < 2; i++ {
			c, rec := newJSONContext(e, http.MethodGet, "/v1/runtime/observability", "")
			require.NoError(t, s.observabilityHandler(c))
			require.Equal(t, http.StatusOK, rec.Code)
		}

		c, rec := newJSONContext(e, http.MethodGet,
			"/v1/runtime/observability/history?window_seconds=600&bucket_seconds=60", "")
		require.NoError(t, s.observabilityHistoryHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody(t, rec)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, observabilityScope, resp["scope"])
		assert.Equal(t, float64(2), resp["sample_count"])
		points := resp["points"].([]any)
		require.NotEmpty(t, points)

		healthyTotal := 0.0
		for _, raw := range points {
			healthyTotal += raw.(map[string]any)["healthy_count"].(float64)
		}
		assert.Equal(t, 2.0, healthyTotal)
	})

	t.Run("503 without a store", func(t *testing.T) {
		s := &Server{}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodGet, "/v1/runtime/observability/history", "")
		require.NoError(t, s.observabilityHistoryHandler(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
