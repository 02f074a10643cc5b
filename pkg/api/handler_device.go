package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/opencane/edged/pkg/protocol"
)

type deviceCommandRequest struct {
	DeviceID  string         `json:"device_id"`
	SessionID string         `json:"session_id"`
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload"`
	TraceID   string         `json:"trace_id"`
}

type deviceCommandResponse struct {
	Success  bool              `json:"success"`
	Envelope protocol.Envelope `json:"envelope"`
}

type bindingRequest struct {
	DeviceID    string         `json:"device_id"`
	UserID      string         `json:"user_id"`
	DeviceToken string         `json:"device_token"`
	Reason      string         `json:"reason"`
	Metadata    map[string]any `json:"metadata"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// deviceEventHandler handles POST /v1/device/event: the body is a canonical
// event envelope injected into the runtime as though the adapter read it.
func (s *Server) deviceEventHandler(c *echo.Context) error {
	if s.runtime == nil {
		return respondUnavailable(c, "runtime")
	}
	var env protocol.Envelope
	if err := c.Bind(&env); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	if err := s.runtime.InjectEvent(env); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, &successResponse{Success: true})
}

// deviceCommandHandler handles POST /v1/device/command: an authorized
// outbound command submitted through the session seq allocator.
func (s *Server) deviceCommandHandler(c *echo.Context) error {
	if s.runtime == nil {
		return respondUnavailable(c, "runtime")
	}
	var req deviceCommandRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	env, err := s.runtime.SendCommand(c.Request().Context(), req.DeviceID, req.SessionID, req.Type, req.Payload, req.TraceID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, &deviceCommandResponse{Success: true, Envelope: env})
}

// deviceStatusHandler handles GET /v1/device/:device_id/status.
func (s *Server) deviceStatusHandler(c *echo.Context) error {
	if s.runtime == nil {
		return respondUnavailable(c, "runtime")
	}
	snap, ok := s.runtime.DeviceStatus(c.Param("device_id"))
	if !ok {
		return respondCode(c, http.StatusNotFound, codeNotFound, "device not found")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "device": snap})
}

// deviceAbortHandler handles POST /v1/device/:device_id/abort: cancel the
// in-flight turn and tell the device to stop speaking.
func (s *Server) deviceAbortHandler(c *echo.Context) error {
	if s.runtime == nil {
		return respondUnavailable(c, "runtime")
	}
	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	if !s.runtime.Abort(c.Param("device_id"), req.Reason) {
		return respondCode(c, http.StatusNotFound, codeNotFound, "no active session for device")
	}
	return c.JSON(http.StatusOK, &successResponse{Success: true})
}

// deviceCloseHandler handles POST /v1/device/:device_id/close: force-close
// one session.
func (s *Server) deviceCloseHandler(c *echo.Context) error {
	if s.runtime == nil {
		return respondUnavailable(c, "runtime")
	}
	var req struct {
		SessionID string `json:"session_id"`
		Reason    string `json:"reason"`
	}
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	if req.SessionID == "" {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, "session_id is required")
	}
	if !s.runtime.CloseDeviceSession(c.Param("device_id"), req.SessionID, req.Reason) {
		return respondCode(c, http.StatusNotFound, codeNotFound, "session not found or already closed")
	}
	return c.JSON(http.StatusOK, &successResponse{Success: true})
}

// deviceRegisterHandler handles POST /v1/device/register.
func (s *Server) deviceRegisterHandler(c *echo.Context) error {
	if s.store == nil {
		return respondUnavailable(c, "store")
	}
	var req bindingRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	if err := s.store.RegisterDevice(c.Request().Context(), req.DeviceID, req.Metadata); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, &successResponse{Success: true})
}

// deviceBindHandler handles POST /v1/device/bind: attach a user and a
// per-device token to a registered device.
func (s *Server) deviceBindHandler(c *echo.Context) error {
	if s.store == nil {
		return respondUnavailable(c, "store")
	}
	var req bindingRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	if err := s.store.BindDevice(c.Request().Context(), req.DeviceID, req.UserID, req.DeviceToken); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, &successResponse{Success: true})
}

// deviceActivateHandler handles POST /v1/device/activate.
func (s *Server) deviceActivateHandler(c *echo.Context) error {
	if s.store == nil {
		return respondUnavailable(c, "store")
	}
	var req bindingRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	if err := s.store.ActivateDevice(c.Request().Context(), req.DeviceID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, &successResponse{Success: true})
}

// deviceRevokeHandler handles POST /v1/device/revoke.
func (s *Server) deviceRevokeHandler(c *echo.Context) error {
	if s.store == nil {
		return respondUnavailable(c, "store")
	}
	var req bindingRequest
	if err := c.Bind(&req); err != nil {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, err.Error())
	}
	if err := s.store.RevokeDevice(c.Request().Context(), req.DeviceID, req.Reason); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, &successResponse{Success: true})
}

// deviceBindingHandler handles GET /v1/device/binding?device_id=...
func (s *Server) deviceBindingHandler(c *echo.Context) error {
	if s.store == nil {
		return respondUnavailable(c, "store")
	}
	deviceID := c.QueryParam("device_id")
	if deviceID == "" {
		return respondCode(c, http.StatusBadRequest, codeBadRequest, "device_id is required")
	}
	binding, err := s.store.GetBinding(c.Request().Context(), deviceID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "binding": binding})
}
