package api

import (
	"errors"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/opencane/edged/pkg/lifelog"
	"github.com/opencane/edged/pkg/store"
	"github.com/opencane/edged/pkg/vectorindex"
)

type ingestRequest struct {
	SessionID   string         `json:"session_id"`
	DeviceID    string         `json:"device_id"`
	ImageBase64 string         `json:"image_base64"`
	Question    string         `json:"question"`
	MIME        string         `json:"mime"`
	Metadata    map[string]any `json:"metadata"`
	TSMS        int64          `json:"ts_ms"`
}

type lifelogQueryRequest struct {
	Query     string `json:"query"`
	SessionID string `json:"session_id"`
	TopK      int    `json:"top_k"`
}

type timelineRequest struct {
	SessionID  string   `json:"session_id"`
	FromMS     int64    `json:"from_ms"`
	ToMS       int64    `json:"to_ms"`
	EventTypes []string `json:"event_types"`
	Limit      int      `json:"limit"`
}

type safetyRequest struct {
	SessionID    string `json:"session_id"`
	MaxRiskLevel string `json:"max_risk_level"`
	Limit        int    `json:"limit"`
}

type traceAppendRequest struct {
	TraceID   string         `json:"trace_id"`
	SessionID string         `json:"session_id"`
	Source    string         `json:"source"`
	Stage     string         `json:"stage"`
	Payload   map[string]any `json:"payload"`
	TSMS      int64          `json:"ts_ms"`
}

type traceQueryRequest struct {
	TraceID   string `json:"trace_id"`
	SessionID string `json:"session_id"`
	Limit     int    `json:"limit"`
}

type retentionCleanupRequest struct {
	EventsDays        int `json:"events_days"`
	ImagesDays        int `json:"images_days"`
	TracesDays        int `json:"traces_days"`
	TelemetryDays     int `json:"telemetry_days"`
	ObservabilityDays int `json:"observability_days"`
}

// lifelogIngestHandler handles POST /v1/lifelog/ingest: one image submitted
// to the bounded analysis queue. Backpressure rejections surface as 429.
func (s *Server) lifelogIngestHandler(c *echo.Context) error {
	if s.ingest == nil {
		return respondUnavailable(c, "lifelog")
	}
	var req ingestRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	res := s.ingest.Ingest(c.Request().Context(), lifelog.IngestRequest{
		SessionID:   req.SessionID,
		DeviceID:    req.DeviceID,
		ImageBase64: req.ImageBase64,
		Question:    req.Question,
		MIME:        req.MIME,
		Metadata:    req.Metadata,
		TSMS:        req.TSMS,
	})
	return c.JSON(ingestStatus(res), &res)
}

func ingestStatus(res lifelog.IngestResult) int {
	if res.Success {
		return http.StatusOK
	}
	switch res.ErrorCode {
	case lifelog.ErrCodeQueueFull, lifelog.ErrCodeQueueDropped:
		return http.StatusTooManyRequests
	case lifelog.ErrCodeShuttingDown:
		return http.StatusServiceUnavailable
	case lifelog.ErrCodeStoreError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// lifelogQueryHandler handles POST /v1/lifelog/query: semantic retrieval
// over ingested contexts, optionally filtered to one session.
func (s *Server) lifelogQueryHandler(c *echo.Context) error {
	if s.index == nil {
		return respondUnavailable(c, "vector index")
	}
	var req lifelogQueryRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	topK := req.TopK
	if topK <= 0 {
		topK = s.lifelog.DefaultTopK
	}
	if topK <= 0 {
		topK = 5
	}
	var filter map[string]any
	if req.SessionID != "" {
		filter = map[string]any{"session_id": req.SessionID}
	}
	matches, err := s.index.Query(c.Request().Context(), req.Query, topK, filter)
	if err != nil {
		if errors.Is(err, vectorindex.ErrEmptyQuery) {
			return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
		}
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "results": matches, "count": len(matches)})
}

// lifelogTimelineHandler handles POST /v1/lifelog/timeline.
func (s *Server) lifelogTimelineHandler(c *echo.Context) error {
	if s.store == nil {
		return respondUnavailable(c, "store")
	}
	var req timelineRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	limit := capLimit(req.Limit, s.lifelog.MaxTimelineItems, 100)
	events, err := s.store.Timeline(c.Request().Context(), req.SessionID, req.FromMS, req.ToMS, req.EventTypes, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "events": events, "count": len(events)})
}

// capLimit clamps a caller-supplied limit to the configured ceiling.
func capLimit(requested, ceiling, fallback int) int {
	if ceiling <= 0 {
		ceiling = fallback
	}
	if requested <= 0 || requested > ceiling {
		return ceiling
	}
	return requested
}

// safetyQueryHandler handles POST /v1/lifelog/safety/query: safety_policy
// events at or above a risk floor.
func (s *Server) safetyQueryHandler(c *echo.Context) error {
	if s.store == nil {
		return respondUnavailable(c, "store")
	}
	var req safetyRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	events, err := s.store.SafetyQuery(c.Request().Context(), req.SessionID, req.MaxRiskLevel, req.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "events": events, "count": len(events)})
}

// safetyStatsHandler handles POST /v1/lifelog/safety/stats: per-risk-level
// counts of safety decisions.
func (s *Server) safetyStatsHandler(c *echo.Context) error {
	if s.store == nil {
		return respondUnavailable(c, "store")
	}
	var req safetyRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	stats, err := s.store.SafetyStats(c.Request().Context(), req.SessionID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "stats": stats})
}

// traceAppendHandler handles POST /v1/lifelog/thought_trace/append. Payloads
// pass through the masking service before they are persisted.
func (s *Server) traceAppendHandler(c *echo.Context) error {
	if s.store == nil {
		return respondUnavailable(c, "store")
	}
	var req traceAppendRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	payload := req.Payload
	if s.masker != nil {
		payload = s.masker.MaskMap(payload)
	}
	err := s.store.AppendTraceStep(c.Request().Context(), store.TraceStep{
		TraceID:   req.TraceID,
		SessionID: req.SessionID,
		Source:    req.Source,
		Stage:     req.Stage,
		Payload:   payload,
		TSMS:      req.TSMS,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, &successResponse{Success: true})
}

// traceQueryHandler handles POST /v1/lifelog/thought_trace/query: recent
// steps for one session, newest first.
func (s *Server) traceQueryHandler(c *echo.Context) error {
	if s.store == nil {
		return respondUnavailable(c, "store")
	}
	var req traceQueryRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	steps, err := s.store.QueryTraces(c.Request().Context(), req.SessionID, req.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "steps": steps, "count": len(steps)})
}

// traceReplayHandler handles POST /v1/lifelog/thought_trace/replay: every
// step of one trace in recorded order.
func (s *Server) traceReplayHandler(c *echo.Context) error {
	if s.store == nil {
		return respondUnavailable(c, "store")
	}
	var req traceQueryRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	if req.TraceID == "" {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, "trace_id is required")
	}
	steps, err := s.store.ReplayTrace(c.Request().Context(), req.TraceID)
	if err != nil {
		return respondError(c, err)
	}
	if len(steps) == 0 {
		return respondCode(c, http.StatusNotFound, codeNotFound, "trace not found")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"trace_id": req.TraceID,
		"steps":    steps,
		"count":    len(steps),
	})
}

// deviceSessionsHandler handles GET /v1/lifelog/device_sessions?device_id=...
func (s *Server) deviceSessionsHandler(c *echo.Context) error {
	if s.store == nil {
		return respondUnavailable(c, "store")
	}
	deviceID := c.QueryParam("device_id")
	limit := queryInt(c, "limit", 50)
	records, err := s.store.ListDeviceSessions(c.Request().Context(), deviceID, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "sessions": records, "count": len(records)})
}

// telemetrySamplesHandler handles GET /v1/lifelog/telemetry_samples?device_id=...
func (s *Server) telemetrySamplesHandler(c *echo.Context) error {
	if s.store == nil {
		return respondUnavailable(c, "store")
	}
	deviceID := c.QueryParam("device_id")
	if deviceID == "" {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, "device_id is required")
	}
	sinceMS := int64(queryInt(c, "since_ms", 0))
	limit := queryInt(c, "limit", 100)
	samples, err := s.store.RecentSamples(c.Request().Context(), deviceID, sinceMS, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "samples": samples, "count": len(samples)})
}

// retentionCleanupHandler handles POST /v1/lifelog/retention/cleanup: purge
// rows past their retention window. Body fields override the configured
// per-kind windows; zero falls back to config.
func (s *Server) retentionCleanupHandler(c *echo.Context) error {
	if s.store == nil {
		return respondUnavailable(c, "store")
	}
	var req retentionCleanupRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	policy := store.RetentionPolicy{
		EventsDays:        override(req.EventsDays, s.retention.EventsDays),
		ImagesDays:        override(req.ImagesDays, s.retention.ImagesDays),
		TracesDays:        override(req.TracesDays, s.retention.TracesDays),
		TelemetryDays:     override(req.TelemetryDays, s.retention.TelemetryDays),
		ObservabilityDays: override(req.ObservabilityDays, s.retention.ObservabilityDays),
	}
	result, err := s.store.PurgeExpired(c.Request().Context(), policy)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "purged": result})
}

func override(requested, configured int) int {
	if requested > 0 {
		return requested
	}
	return configured
}

func queryInt(c *echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
