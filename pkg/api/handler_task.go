package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/opencane/edged/pkg/task"
)

type taskExecuteRequest struct {
	SessionID         string `json:"session_id"`
	DeviceID          string `json:"device_id"`
	Goal              string `json:"goal"`
	TimeoutSeconds    int    `json:"timeout_seconds"`
	TargetSessionID   string `json:"target_session_id"`
	Notify            *bool  `json:"notify"`
	Speak             *bool  `json:"speak"`
	InterruptPrevious bool   `json:"interrupt_previous"`
}

type taskCancelRequest struct {
	TaskID string `json:"task_id"`
	Reason string `json:"reason"`
}

type taskListRequest struct {
	DeviceID string   `json:"device_id"`
	Statuses []string `json:"statuses"`
	Limit    int      `json:"limit"`
}

type taskFlushRequest struct {
	DeviceID  string `json:"device_id"`
	SessionID string `json:"session_id"`
	Limit     int    `json:"limit"`
}

// taskExecuteHandler handles POST /v1/digital_task/execute: create a pending
// task row and return immediately; the task runs in the background.
func (s *Server) taskExecuteHandler(c *echo.Context) error {
	if s.tasks == nil {
		return respondUnavailable(c, "digital task service")
	}
	var req taskExecuteRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	// Notifications and TTS default on; explicit false opts out.
	notify := req.Notify == nil || *req.Notify
	speak := req.Speak == nil || *req.Speak
	result, err := s.tasks.Execute(c.Request().Context(), task.ExecuteRequest{
		SessionID:         req.SessionID,
		DeviceID:          req.DeviceID,
		Goal:              req.Goal,
		TimeoutSeconds:    req.TimeoutSeconds,
		TargetSessionID:   req.TargetSessionID,
		Notify:            notify,
		Speak:             speak,
		InterruptPrevious: req.InterruptPrevious,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusAccepted, map[string]any{
		"success":  true,
		"task_id":  result.TaskID,
		"accepted": result.Accepted,
		"task":     result.Task,
	})
}

// taskCancelHandler handles POST /v1/digital_task/cancel.
func (s *Server) taskCancelHandler(c *echo.Context) error {
	if s.tasks == nil {
		return respondUnavailable(c, "digital task service")
	}
	var req taskCancelRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	if req.TaskID == "" {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, "task_id is required")
	}
	canceled, err := s.tasks.Cancel(c.Request().Context(), req.TaskID, req.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "task": canceled})
}

// taskListHandler handles POST /v1/digital_task/list.
func (s *Server) taskListHandler(c *echo.Context) error {
	if s.tasks == nil {
		return respondUnavailable(c, "digital task service")
	}
	var req taskListRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	tasks, err := s.tasks.List(c.Request().Context(), req.DeviceID, req.Statuses, req.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "tasks": tasks, "count": len(tasks)})
}

// taskStatsHandler handles POST /v1/digital_task/stats: per-status counts,
// optionally scoped to one device.
func (s *Server) taskStatsHandler(c *echo.Context) error {
	if s.tasks == nil {
		return respondUnavailable(c, "digital task service")
	}
	var req taskListRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	stats, err := s.tasks.Stats(c.Request().Context(), req.DeviceID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "stats": stats})
}

// taskFlushHandler handles POST /v1/digital_task/flush_pending_updates:
// replay queued status updates to a reconnected device, in order.
func (s *Server) taskFlushHandler(c *echo.Context) error {
	if s.tasks == nil {
		return respondUnavailable(c, "digital task service")
	}
	var req taskFlushRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	if req.DeviceID == "" {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, "device_id is required")
	}
	result, err := s.tasks.FlushPendingUpdates(c.Request().Context(), req.DeviceID, req.SessionID, req.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"device_id": result.DeviceID,
		"processed": result.Processed,
		"sent":      result.Sent,
		"retry":     result.Retry,
	})
}
