package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/protocol"
	"github.com/opencane/edged/pkg/runtime"
	"github.com/opencane/edged/pkg/store"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectStatus int
		expectCode   string
	}{
		{
			name:         "validation error maps to 400",
			err:          store.NewValidationError("device_id", "missing field"),
			expectStatus: http.StatusBadRequest,
			expectCode:   codeBadRequest,
		},
		{
			name:         "bad envelope maps to 400",
			err:          fmt.Errorf("decode event: %w", protocol.ErrBadEnvelope),
			expectStatus: http.StatusBadRequest,
			expectCode:   codeBadRequest,
		},
		{
			name:         "not found maps to 404",
			err:          fmt.Errorf("wrapped: %w", store.ErrNotFound),
			expectStatus: http.StatusNotFound,
			expectCode:   codeNotFound,
		},
		{
			name:         "missing session maps to 404",
			err:          runtime.ErrNoSession,
			expectStatus: http.StatusNotFound,
			expectCode:   codeNotFound,
		},
		{
			name:         "already exists maps to 409",
			err:          fmt.Errorf("wrapped: %w", store.ErrAlreadyExists),
			expectStatus: http.StatusConflict,
			expectCode:   codeDuplicate,
		},
		{
			name:         "status conflict maps to 409",
			err:          store.ErrStatusConflict,
			expectStatus: http.StatusConflict,
			expectCode:   codeStatusConflict,
		},
		{
			name:         "unauthorized maps to 401",
			err:          fmt.Errorf("bind: %w", store.ErrUnauthorized),
			expectStatus: http.StatusUnauthorized,
			expectCode:   codeAuthDenied,
		},
		{
			name:         "stopped runtime maps to 503",
			err:          runtime.ErrNotRunning,
			expectStatus: http.StatusServiceUnavailable,
			expectCode:   codeUnavailable,
		},
		{
			name:         "deadline maps to 504",
			err:          fmt.Errorf("agent turn: %w", context.DeadlineExceeded),
			expectStatus: http.StatusGatewayTimeout,
			expectCode:   codeTimeout,
		},
		{
			name:         "unknown error maps to 500",
			err:          fmt.Errorf("something unexpected happened"),
			expectStatus: http.StatusInternalServerError,
			expectCode:   codeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := classifyError(tt.err)
			assert.Equal(t, tt.expectStatus, status)
			assert.Equal(t, tt.expectCode, code)
		})
	}
}

func TestRespondError(t *testing.T) {
	e := echo.New()

	t.Run("client errors keep their message", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/test", "")

		err := respondError(c, fmt.Errorf("lookup device: %w", store.ErrNotFound))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, codeNotFound, body["error_code"])
		assert.Contains(t, body["error"], "lookup device")
	})

	t.Run("internal errors are masked", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/test", "")

		err := respondError(c, fmt.Errorf("pq: connection reset while inserting row"))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, codeInternal, body["error_code"])
		assert.Equal(t, "internal server error", body["error"])
	})
}

func TestRespondUnavailable(t *testing.T) {
	e := echo.New()
	c, rec := newJSONContext(e, http.MethodGet, "/test", "")

	err := respondUnavailable(c, "lifelog ingest")
	require.NoError(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, codeUnavailable, body["error_code"])
	assert.Equal(t, "lifelog ingest unavailable", body["error"])
}
