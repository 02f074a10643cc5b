package api

import (
	"context"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/config"
	"github.com/opencane/edged/pkg/lifelog"
	"github.com/opencane/edged/pkg/session"
	"github.com/opencane/edged/pkg/store"
	"github.com/opencane/edged/pkg/vectorindex"
)

// fakeMasker tags payloads so tests can see the masking hook ran.
type fakeMasker struct{}

func (fakeMasker) MaskMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out["masked"] = true
	return out
}

func TestLifelogIngestHandler(t *testing.T) {
	t.Run("accepted ingest returns the pipeline result", func(t *testing.T) {
		ing := &fakeIngest{result: lifelog.IngestResult{
			Success:   true,
			SessionID: "sess-1",
			ImageID:   "img-1",
			Summary:   "kitchen counter with kettle",
		}}
		s := &Server{ingest: ing}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/ingest",
			`{"session_id":"sess-1","device_id":"glass-1","image_base64":"aGk=","question":"what is this"}`)

		require.NoError(t, s.lifelogIngestHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody(t, rec)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "img-1", resp["image_id"])

		require.Len(t, ing.got, 1)
		assert.Equal(t, "glass-1", ing.got[0].DeviceID)
		assert.Equal(t, "what is this", ing.got[0].Question)
	})

	t.Run("maps rejection codes to status", func(t *testing.T) {
		cases := []struct {
			code string
			want int
		}{
			{lifelog.ErrCodeQueueFull, http.StatusTooManyRequests},
			{lifelog.ErrCodeQueueDropped, http.StatusTooManyRequests},
			{lifelog.ErrCodeShuttingDown, http.StatusServiceUnavailable},
			{lifelog.ErrCodeStoreError, http.StatusInternalServerError},
			{lifelog.ErrCodeBadImage, http.StatusBadRequest},
			{lifelog.ErrCodeBadRequest, http.StatusBadRequest},
		}
		for _, tc := range cases {
			t.Run(tc.code, func(t *testing.T) {
				ing := &fakeIngest{result: lifelog.IngestResult{Success: false, ErrorCode: tc.code}}
				s := &Server{ingest: ing}

				e := echo.New()
				c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/ingest", `{"session_id":"s"}`)
				require.NoError(t, s.lifelogIngestHandler(c))
				assert.Equal(t, tc.want, rec.Code)
			})
		}
	})

	t.Run("503 without a pipeline", func(t *testing.T) {
		s := &Server{}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/ingest", `{}`)
		require.NoError(t, s.lifelogIngestHandler(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestLifelogQueryHandler(t *testing.T) {
	seedIndex := func(t *testing.T) vectorindex.Index {
		t.Helper()
		idx := vectorindex.NewMemoryIndex(nil)
		ctx := context.Background()
		require.NoError(t, idx.Add(ctx, vectorindex.Document{
			ID:       "ctx-1",
			Text:     "red kettle boiling on the kitchen stove",
			Metadata: map[string]any{"session_id": "sess-1"},
		}))
		require.NoError(t, idx.Add(ctx, vectorindex.Document{
			ID:       "ctx-2",
			Text:     "bicycle leaning against the garage wall",
			Metadata: map[string]any{"session_id": "sess-2"},
		}))
		return idx
	}

	t.Run("retrieves matching contexts", func(t *testing.T) {
		s := &Server{index: seedIndex(t), lifelog: config.LifelogConfig{DefaultTopK: 5}}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/query",
			`{"query":"kettle on the stove"}`)
		require.NoError(t, s.lifelogQueryHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody(t, rec)
		results, ok := resp["results"].([]any)
		require.True(t, ok)
		require.NotEmpty(t, results)
		top := results[0].(map[string]any)["document"].(map[string]any)
		assert.Equal(t, "ctx-1", top["id"])
	})

	t.Run("session filter narrows results", func(t *testing.T) {
		s := &Server{index: seedIndex(t), lifelog: config.LifelogConfig{DefaultTopK: 5}}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/query",
			`{"query":"kettle stove garage bicycle","session_id":"sess-2"}`)
		require.NoError(t, s.lifelogQueryHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody(t, rec)
		results := resp["results"].([]any)
		for _, raw := range results {
			doc := raw.(map[string]any)["document"].(map[string]any)
			meta := doc["metadata"].(map[string]any)
			assert.Equal(t, "sess-2", meta["session_id"])
		}
	})

	t.Run("empty query is a 400", func(t *testing.T) {
		s := &Server{index: seedIndex(t)}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/query", `{"query":"   "}`)
		require.NoError(t, s.lifelogQueryHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("503 without an index", func(t *testing.T) {
		s := &Server{}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/query", `{"query":"x"}`)
		require.NoError(t, s.lifelogQueryHandler(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestLifelogTimelineHandler(t *testing.T) {
	st := newFakeAPIStore()
	st.events = []store.Event{
		{ID: "ev-1", SessionID: "sess-1", EventType: "image_context", TSMS: 1000},
		{ID: "ev-2", SessionID: "sess-1", EventType: "safety_signal", RiskLevel: "low", TSMS: 2000},
		{ID: "ev-3", SessionID: "sess-2", EventType: "image_context", TSMS: 3000},
	}
	s := &Server{store: st, lifelog: config.LifelogConfig{MaxTimelineItems: 200}}
	e := echo.New()

	t.Run("returns one session's events", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/timeline", `{"session_id":"sess-1"}`)
		require.NoError(t, s.lifelogTimelineHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), decodeBody(t, rec)["count"])
	})

	t.Run("event type filter applies", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/timeline",
			`{"session_id":"sess-1","event_types":["safety_signal"]}`)
		require.NoError(t, s.lifelogTimelineHandler(c))

		resp := decodeBody(t, rec)
		assert.Equal(t, float64(1), resp["count"])
		events := resp["events"].([]any)
		assert.Equal(t, "ev-2", events[0].(map[string]any)["event_id"])
	})

	t.Run("time range filter applies", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/timeline",
			`{"session_id":"sess-1","from_ms":1500,"to_ms":2500}`)
		require.NoError(t, s.lifelogTimelineHandler(c))
		assert.Equal(t, float64(1), decodeBody(t, rec)["count"])
	})
}

func TestCapLimit(t *testing.T) {
	assert.Equal(t, 200, capLimit(0, 200, 100))
	assert.Equal(t, 50, capLimit(50, 200, 100))
	assert.Equal(t, 200, capLimit(500, 200, 100))
	assert.Equal(t, 100, capLimit(0, 0, 100))
	assert.Equal(t, 30, capLimit(30, 0, 100))
}

func TestSafetyHandlers(t *testing.T) {
	st := newFakeAPIStore()
	st.events = []store.Event{
		{ID: "ev-1", SessionID: "sess-1", EventType: "safety_signal", RiskLevel: "low", TSMS: 1000},
		{ID: "ev-2", SessionID: "sess-1", EventType: "safety_signal", RiskLevel: "high", TSMS: 2000},
		{ID: "ev-3", SessionID: "sess-1", EventType: "image_context", TSMS: 3000},
	}
	s := &Server{store: st}
	e := echo.New()

	t.Run("query returns safety events only", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/safety/query", `{"session_id":"sess-1"}`)
		require.NoError(t, s.safetyQueryHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), decodeBody(t, rec)["count"])
	})

	t.Run("stats count per risk level", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/safety/stats", `{"session_id":"sess-1"}`)
		require.NoError(t, s.safetyStatsHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		stats := decodeBody(t, rec)["stats"].(map[string]any)
		assert.Equal(t, float64(1), stats["low"])
		assert.Equal(t, float64(1), stats["high"])
	})
}

func TestTraceHandlers(t *testing.T) {
	t.Run("append masks the payload before persisting", func(t *testing.T) {
		st := newFakeAPIStore()
		s := &Server{store: st, masker: fakeMasker{}}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/thought_trace/append",
			`{"trace_id":"tr-1","session_id":"sess-1","source":"agent","stage":"plan","payload":{"token":"s3cr3t"}}`)
		require.NoError(t, s.traceAppendHandler(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		require.Len(t, st.traces, 1)
		assert.Equal(t, true, st.traces[0].Payload["masked"])
	})

	t.Run("append validates required fields", func(t *testing.T) {
		s := &Server{store: newFakeAPIStore()}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/thought_trace/append",
			`{"session_id":"sess-1","stage":"plan"}`)
		require.NoError(t, s.traceAppendHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("replay returns steps in recorded order", func(t *testing.T) {
		st := newFakeAPIStore()
		ctx := context.Background()
		require.NoError(t, st.AppendTraceStep(ctx, store.TraceStep{TraceID: "tr-1", SessionID: "sess-1", Stage: "respond", TSMS: 2000}))
		require.NoError(t, st.AppendTraceStep(ctx, store.TraceStep{TraceID: "tr-1", SessionID: "sess-1", Stage: "plan", TSMS: 1000}))
		require.NoError(t, st.AppendTraceStep(ctx, store.TraceStep{TraceID: "tr-2", SessionID: "sess-1", Stage: "plan", TSMS: 1500}))
		s := &Server{store: st}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/thought_trace/replay", `{"trace_id":"tr-1"}`)
		require.NoError(t, s.traceReplayHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody(t, rec)
		assert.Equal(t, float64(2), resp["count"])
		steps := resp["steps"].([]any)
		assert.Equal(t, "plan", steps[0].(map[string]any)["stage"])
		assert.Equal(t, "respond", steps[1].(map[string]any)["stage"])
	})

	t.Run("replay of an unknown trace is a 404", func(t *testing.T) {
		s := &Server{store: newFakeAPIStore()}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/thought_trace/replay", `{"trace_id":"tr-404"}`)
		require.NoError(t, s.traceReplayHandler(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("replay requires trace_id", func(t *testing.T) {
		s := &Server{store: newFakeAPIStore()}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/thought_trace/replay", `{}`)
		require.NoError(t, s.traceReplayHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("query lists a session's steps", func(t *testing.T) {
		st := newFakeAPIStore()
		ctx := context.Background()
		require.NoError(t, st.AppendTraceStep(ctx, store.TraceStep{TraceID: "tr-1", SessionID: "sess-1", Stage: "plan", TSMS: 1000}))
		require.NoError(t, st.AppendTraceStep(ctx, store.TraceStep{TraceID: "tr-2", SessionID: "sess-9", Stage: "plan", TSMS: 1100}))
		s := &Server{store: st}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/thought_trace/query", `{"session_id":"sess-1"}`)
		require.NoError(t, s.traceQueryHandler(c))
		assert.Equal(t, float64(1), decodeBody(t, rec)["count"])
	})
}

func TestDeviceSessionsHandler(t *testing.T) {
	st := newFakeAPIStore()
	st.sessions = []session.Record{
		{DeviceID: "glass-1", SessionID: "sess-1", State: "closed"},
		{DeviceID: "glass-1", SessionID: "sess-2", State: "ready"},
		{DeviceID: "glass-2", SessionID: "sess-3", State: "ready"},
	}
	s := &Server{store: st}
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodGet, "/v1/lifelog/device_sessions?device_id=glass-1", "")
	require.NoError(t, s.deviceSessionsHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeBody(t, rec)["count"])
}

func TestTelemetrySamplesHandler(t *testing.T) {
	st := newFakeAPIStore()
	st.samples = []store.Sample{
		{DeviceID: "glass-1", TSMS: 1000},
		{DeviceID: "glass-1", TSMS: 5000},
		{DeviceID: "glass-2", TSMS: 6000},
	}
	s := &Server{store: st}
	e := echo.New()

	t.Run("requires device_id", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/v1/lifelog/telemetry_samples", "")
		require.NoError(t, s.telemetrySamplesHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("since_ms filters old samples", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/v1/lifelog/telemetry_samples?device_id=glass-1&since_ms=2000", "")
		require.NoError(t, s.telemetrySamplesHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), decodeBody(t, rec)["count"])
	})
}

func TestRetentionCleanupHandler(t *testing.T) {
	t.Run("uses configured windows by default", func(t *testing.T) {
		st := newFakeAPIStore()
		st.purgeResult = store.RetentionResult{LifelogEvents: 12, Traces: 3}
		s := &Server{
			store:     st,
			retention: config.RetentionConfig{EventsDays: 90, ImagesDays: 30, TracesDays: 14, TelemetryDays: 7, ObservabilityDays: 7},
		}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/retention/cleanup", `{}`)
		require.NoError(t, s.retentionCleanupHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		require.Len(t, st.purgePolicies, 1)
		assert.Equal(t, store.RetentionPolicy{EventsDays: 90, ImagesDays: 30, TracesDays: 14, TelemetryDays: 7, ObservabilityDays: 7}, st.purgePolicies[0])

		purged := decodeBody(t, rec)["purged"].(map[string]any)
		assert.Equal(t, float64(12), purged["lifelog_events"])
	})

	t.Run("request fields override config", func(t *testing.T) {
		st := newFakeAPIStore()
		s := &Server{
			store:     st,
			retention: config.RetentionConfig{EventsDays: 90, TracesDays: 14},
		}

		e := echo.New()
		c, rec := newJSONContext(e, http.MethodPost, "/v1/lifelog/retention/cleanup", `{"events_days":1}`)
		require.NoError(t, s.retentionCleanupHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		require.Len(t, st.purgePolicies, 1)
		assert.Equal(t, 1, st.purgePolicies[0].EventsDays)
		assert.Equal(t, 14, st.purgePolicies[0].TracesDays)
	})
}
