package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/opencane/edged/pkg/protocol"
	"github.com/opencane/edged/pkg/runtime"
	"github.com/opencane/edged/pkg/store"
)

// Error codes carried in the failure envelope.
const (
	codeBadRequest     = "bad_request"
	codeNotFound       = "not_found"
	codeAuthDenied     = "auth_denied"
	codeDuplicate      = "duplicate"
	codeStatusConflict = "status_conflict"
	codeReplay         = "replay"
	codeRateLimited    = "rate_limited"
	codeTimeout        = "timeout"
	codeUnavailable    = "upstream_unavailable"
	codeInternal       = "internal"
)

// errorBody is the wire shape of every control-API failure.
type errorBody struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
}

// classifyError maps service-layer errors to an HTTP status and error code.
func classifyError(err error) (int, string) {
	var validErr *store.ValidationError
	switch {
	case errors.As(err, &validErr):
		return http.StatusBadRequest, codeBadRequest
	case errors.Is(err, protocol.ErrBadEnvelope):
		return http.StatusBadRequest, codeBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, runtime.ErrNoSession):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, store.ErrAlreadyExists):
		return http.StatusConflict, codeDuplicate
	case errors.Is(err, store.ErrStatusConflict):
		return http.StatusConflict, codeStatusConflict
	case errors.Is(err, store.ErrUnauthorized):
		return http.StatusUnauthorized, codeAuthDenied
	case errors.Is(err, runtime.ErrNotRunning):
		return http.StatusServiceUnavailable, codeUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, codeTimeout
	}
	return http.StatusInternalServerError, codeInternal
}

// respondError renders err as the uniform failure envelope.
func respondError(c *echo.Context, err error) error {
	status, code := classifyError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("Unexpected control API error", "error", err)
		msg = "internal server error"
	}
	return c.JSON(status, &errorBody{Error: msg, ErrorCode: code})
}

// respondCode renders an explicit failure without a service error behind it.
func respondCode(c *echo.Context, status int, code, msg string) error {
	return c.JSON(status, &errorBody{Error: msg, ErrorCode: code})
}

// respondUnavailable answers for handlers whose backing service is not
// configured on this deployment.
func respondUnavailable(c *echo.Context, what string) error {
	return respondCode(c, http.StatusServiceUnavailable, codeUnavailable, what+" unavailable")
}
