package api

import (
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/opencane/edged/pkg/store"
)

type operationEnqueueRequest struct {
	DeviceID  string         `json:"device_id"`
	SessionID string         `json:"session_id"`
	OpType    string         `json:"op_type"`
	Payload   map[string]any `json:"payload"`
	Dispatch  bool           `json:"dispatch"`
	TraceID   string         `json:"trace_id"`
}

type operationMarkRequest struct {
	OperationID string         `json:"operation_id"`
	Status      string         `json:"status"`
	Result      map[string]any `json:"result"`
	Error       string         `json:"error"`
	Reason      string         `json:"reason"`
}

type operationQueryRequest struct {
	OperationID string `json:"operation_id"`
	DeviceID    string `json:"device_id"`
	Limit       int    `json:"limit"`
}

// operationEnqueueHandler handles POST /v1/device/operation/enqueue. The
// operation is always recorded as queued; with dispatch=true it is also
// pushed to the device's live session and marked sent. An offline device
// keeps the row queued for replay on the next HELLO.
func (s *Server) operationEnqueueHandler(c *echo.Context) error {
	if s.store == nil {
		return respondUnavailable(c, "store")
	}
	var req operationEnqueueRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	opID, err := s.store.EnqueueOperation(ctx, req.DeviceID, req.SessionID, req.OpType, req.Payload)
	if err != nil {
		return respondError(c, err)
	}

	status := "queued"
	if req.Dispatch && s.runtime != nil {
		_, err := s.runtime.DispatchOperation(ctx, req.DeviceID, req.SessionID, req.OpType, req.Payload, req.TraceID)
		switch {
		case err == nil:
			if err := s.store.MarkOperationSent(ctx, opID); err != nil {
				return respondError(c, err)
			}
			status = "sent"
		case errors.Is(err, store.ErrNotFound):
			// Device offline; stays queued.
		default:
			return respondError(c, err)
		}
	}
	return c.JSON(http.StatusAccepted, map[string]any{
		"success":      true,
		"operation_id": opID,
		"status":       status,
	})
}

// operationMarkHandler handles POST /v1/device/operation/mark: advance one
// operation to sent, acked, failed, or canceled.
func (s *Server) operationMarkHandler(c *echo.Context) error {
	if s.store == nil {
		return respondUnavailable(c, "store")
	}
	var req operationMarkRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	var err error
	switch req.Status {
	case "sent":
		err = s.store.MarkOperationSent(ctx, req.OperationID)
	case "", "acked":
		err = s.store.MarkOperationResult(ctx, req.OperationID, req.Result, true, "")
	case "failed":
		err = s.store.MarkOperationResult(ctx, req.OperationID, req.Result, false, req.Error)
	case "canceled":
		err = s.store.CancelOperation(ctx, req.OperationID, req.Reason)
	default:
		return respondCode(c, http.StatusBadRequest, codeBadRequest, "unknown status "+req.Status)
	}
	if err != nil {
		return respondError(c, err)
	}
	op, err := s.store.GetOperation(ctx, req.OperationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "operation": op})
}

// operationQueryHandler handles POST /v1/device/operation/query: one
// operation by id, or a device's recent operations.
func (s *Server) operationQueryHandler(c *echo.Context) error {
	if s.store == nil {
		return respondUnavailable(c, "store")
	}
	var req operationQueryRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	if req.OperationID != "" {
		op, err := s.store.GetOperation(ctx, req.OperationID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]any{"success": true, "operation": op})
	}
	if req.DeviceID == "" {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, "operation_id or device_id is required")
	}
	ops, err := s.store.ListOperations(ctx, req.DeviceID, req.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "operations": ops, "count": len(ops)})
}
