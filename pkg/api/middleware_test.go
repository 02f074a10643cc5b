package api

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/opencane/edged/pkg/config"
)

// runMiddleware sends req through mw wrapped around a handler that always
// answers 200.
func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	handler := mw(func(c *echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"success": true})
	})
	require.NoError(t, handler(c))
	return rec
}

func TestSecurityHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/runtime/status", nil)
	rec := runMiddleware(t, securityHeaders(), req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "camera=(), microphone=(), geolocation=()", rec.Header().Get("Permissions-Policy"))
}

func TestRequireAuth(t *testing.T) {
	enabled := config.AuthConfig{Enabled: true, Token: "control-secret"}

	tests := []struct {
		name         string
		cfg          config.AuthConfig
		target       string
		headers      map[string]string
		expectStatus int
	}{
		{
			name:         "disabled auth passes without credentials",
			cfg:          config.AuthConfig{Enabled: false, Token: "control-secret"},
			target:       "/v1/runtime/status",
			expectStatus: http.StatusOK,
		},
		{
			name:         "healthz stays open",
			cfg:          enabled,
			target:       "/healthz",
			expectStatus: http.StatusOK,
		},
		{
			name:         "bearer token accepted",
			cfg:          enabled,
			target:       "/v1/runtime/status",
			headers:      map[string]string{"Authorization": "Bearer control-secret"},
			expectStatus: http.StatusOK,
		},
		{
			name:         "bearer scheme is case-insensitive",
			cfg:          enabled,
			target:       "/v1/runtime/status",
			headers:      map[string]string{"Authorization": "BEARER control-secret"},
			expectStatus: http.StatusOK,
		},
		{
			name:         "x-auth-token accepted",
			cfg:          enabled,
			target:       "/v1/runtime/status",
			headers:      map[string]string{"X-Auth-Token": "control-secret"},
			expectStatus: http.StatusOK,
		},
		{
			name:         "configured token is trimmed",
			cfg:          config.AuthConfig{Enabled: true, Token: "  control-secret\n"},
			target:       "/v1/runtime/status",
			headers:      map[string]string{"Authorization": "Bearer control-secret"},
			expectStatus: http.StatusOK,
		},
		{
			name:         "wrong token denied",
			cfg:          enabled,
			target:       "/v1/runtime/status",
			headers:      map[string]string{"Authorization": "Bearer nope"},
			expectStatus: http.StatusUnauthorized,
		},
		{
			name:         "missing credentials denied",
			cfg:          enabled,
			target:       "/v1/runtime/status",
			expectStatus: http.StatusUnauthorized,
		},
		{
			name:         "empty configured token denies everything",
			cfg:          config.AuthConfig{Enabled: true, Token: ""},
			target:       "/v1/runtime/status",
			headers:      map[string]string{"Authorization": "Bearer anything"},
			expectStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := runMiddleware(t, requireAuth(tt.cfg), req)

			assert.Equal(t, tt.expectStatus, rec.Code)
			if tt.expectStatus == http.StatusUnauthorized {
				body := decodeBody(t, rec)
				assert.Equal(t, false, body["success"])
				assert.Equal(t, codeAuthDenied, body["error_code"])
				assert.Equal(t, "unauthorized", body["error"])
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	statusReq := func(deviceID string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/v1/runtime/status", nil)
		req.Header.Set("X-Device-Id", deviceID)
		return req
	}

	t.Run("burst is honored then requests are rejected", func(t *testing.T) {
		mw := rateLimit(config.RateLimitConfig{Enabled: true, RPM: 1, Burst: 2})

		for i := 0; i < 2; i++ {
			rec := runMiddleware(t, mw, statusReq("glass-1"))
			require.Equal(t, http.StatusOK, rec.Code)
		}

		rec := runMiddleware(t, mw, statusReq("glass-1"))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, codeRateLimited, body["error_code"])
		assert.Equal(t, "rate limited", body["error"])
	})

	t.Run("identities get separate buckets", func(t *testing.T) {
		mw := rateLimit(config.RateLimitConfig{Enabled: true, RPM: 1, Burst: 1})

		assert.Equal(t, http.StatusOK, runMiddleware(t, mw, statusReq("glass-1")).Code)
		assert.Equal(t, http.StatusTooManyRequests, runMiddleware(t, mw, statusReq("glass-1")).Code)
		assert.Equal(t, http.StatusOK, runMiddleware(t, mw, statusReq("glass-2")).Code)
	})
}

func TestClientLimiters(t *testing.T) {
	t.Run("tokens refill over time", func(t *testing.T) {
		cl := newClientLimiters(60, 1) // one request per second
		now := time.Unix(1_700_000_000, 0)

		assert.True(t, cl.allow("a", now))
		assert.False(t, cl.allow("a", now))
		assert.True(t, cl.allow("a", now.Add(1100*time.Millisecond)))
	})

	t.Run("zero config clamps to sane minimums", func(t *testing.T) {
		cl := newClientLimiters(0, 0)
		assert.Equal(t, 1, cl.burst)
		assert.Equal(t, rate.Limit(1.0/60.0), cl.limit)
	})

	t.Run("idle buckets are evicted", func(t *testing.T) {
		cl := newClientLimiters(60, 1)
		start := time.Unix(1_700_000_000, 0)
		later := start.Add(limiterIdleTTL + time.Minute)
		cl.allow("stale", start)
		cl.allow("fresh", later)

		cl.mu.Lock()
		cl.evictIdle(later)
		assert.NotContains(t, cl.clients, "stale")
		assert.Contains(t, cl.clients, "fresh")
		cl.mu.Unlock()
	})
}

func TestReplayProtection(t *testing.T) {
	cfg := config.ReplayProtectionConfig{Enabled: true, WindowSeconds: 60}

	post := func(deviceID, nonce, ts string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/v1/device/event", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Device-Id", deviceID)
		if nonce != "" {
			req.Header.Set("X-Request-Nonce", nonce)
		}
		if ts != "" {
			req.Header.Set("X-Request-Timestamp", ts)
		}
		return req
	}
	nowMS := strconv.FormatInt(time.Now().UnixMilli(), 10)

	t.Run("reads are exempt", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/runtime/status", nil)
		rec := runMiddleware(t, replayProtection(cfg), req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing nonce rejected", func(t *testing.T) {
		rec := runMiddleware(t, replayProtection(cfg), post("glass-1", "", nowMS))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, codeBadRequest, body["error_code"])
		assert.Equal(t, "missing_nonce", body["error"])
	})

	t.Run("missing timestamp rejected", func(t *testing.T) {
		rec := runMiddleware(t, replayProtection(cfg), post("glass-1", "n-1", ""))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "missing_timestamp", decodeBody(t, rec)["error"])
	})

	t.Run("garbage timestamp rejected", func(t *testing.T) {
		rec := runMiddleware(t, replayProtection(cfg), post("glass-1", "n-1", "soon"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_timestamp", decodeBody(t, rec)["error"])
	})

	t.Run("stale timestamp rejected", func(t *testing.T) {
		stale := strconv.FormatInt(time.Now().Add(-5*time.Minute).UnixMilli(), 10)
		rec := runMiddleware(t, replayProtection(cfg), post("glass-1", "n-1", stale))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, codeReplay, body["error_code"])
		assert.Equal(t, "stale_timestamp", body["error"])
	})

	t.Run("duplicate nonce rejected", func(t *testing.T) {
		mw := replayProtection(cfg)

		rec := runMiddleware(t, mw, post("glass-1", "n-dup", nowMS))
		require.Equal(t, http.StatusOK, rec.Code)

		rec = runMiddleware(t, mw, post("glass-1", "n-dup", nowMS))
		assert.Equal(t, http.StatusConflict, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, codeReplay, body["error_code"])
		assert.Equal(t, "replayed_nonce", body["error"])
	})

	t.Run("nonces are scoped per client", func(t *testing.T) {
		mw := replayProtection(cfg)

		assert.Equal(t, http.StatusOK, runMiddleware(t, mw, post("glass-1", "n-shared", nowMS)).Code)
		assert.Equal(t, http.StatusOK, runMiddleware(t, mw, post("glass-2", "n-shared", nowMS)).Code)
	})

	t.Run("second-resolution timestamps accepted", func(t *testing.T) {
		seconds := strconv.FormatInt(time.Now().Unix(), 10)
		rec := runMiddleware(t, replayProtection(cfg), post("glass-1", "n-sec", seconds))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestReplayProtector(t *testing.T) {
	t.Run("window floor is ten seconds", func(t *testing.T) {
		p := newReplayProtector(1)
		assert.Equal(t, 10*time.Second, p.window)
	})

	t.Run("nonce may be reused after the window", func(t *testing.T) {
		p := newReplayProtector(10)
		base := int64(1_700_000_000_000)

		assert.Equal(t, "", p.validate("device:a", "n-1", base, base))
		assert.Equal(t, "replayed_nonce", p.validate("device:a", "n-1", base+5_000, base+5_000))
		assert.Equal(t, "", p.validate("device:a", "n-1", base+20_000, base+20_000))
	})
}

func TestParseTimestampMS(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expect   int64
		expectOK bool
	}{
		{name: "milliseconds pass through", in: "1700000000000", expect: 1_700_000_000_000, expectOK: true},
		{name: "seconds are scaled", in: "1700000000", expect: 1_700_000_000_000, expectOK: true},
		{name: "zero passes through", in: "0", expect: 0, expectOK: true},
		{name: "garbage rejected", in: "soon", expectOK: false},
		{name: "fractional rejected", in: "1700000000.5", expectOK: false},
		{name: "empty rejected", in: "", expectOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseTimestampMS(tt.in)
			assert.Equal(t, tt.expectOK, ok)
			if tt.expectOK {
				assert.Equal(t, tt.expect, got)
			}
		})
	}
}

func TestClientIdentity(t *testing.T) {
	e := echo.New()
	identity := func(mutate func(*http.Request)) string {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		mutate(req)
		c := e.NewContext(req, httptest.NewRecorder())
		return clientIdentity(c)
	}

	t.Run("bearer token wins", func(t *testing.T) {
		id := identity(func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer control-secret")
			r.Header.Set("X-Device-Id", "glass-1")
		})
		assert.True(t, strings.HasPrefix(id, "bearer:"))
		assert.Len(t, strings.TrimPrefix(id, "bearer:"), 16)
	})

	t.Run("same token yields the same identity", func(t *testing.T) {
		first := identity(func(r *http.Request) { r.Header.Set("Authorization", "Bearer tok-a") })
		second := identity(func(r *http.Request) { r.Header.Set("Authorization", "Bearer tok-a") })
		other := identity(func(r *http.Request) { r.Header.Set("Authorization", "Bearer tok-b") })
		assert.Equal(t, first, second)
		assert.NotEqual(t, first, other)
	})

	t.Run("x-auth-token before device id", func(t *testing.T) {
		id := identity(func(r *http.Request) {
			r.Header.Set("X-Auth-Token", "control-secret")
			r.Header.Set("X-Device-Id", "glass-1")
		})
		assert.True(t, strings.HasPrefix(id, "xauth:"))
	})

	t.Run("device id before peer address", func(t *testing.T) {
		id := identity(func(r *http.Request) { r.Header.Set("X-Device-Id", "glass-1") })
		assert.Equal(t, "device:glass-1", id)
	})

	t.Run("falls back to peer ip", func(t *testing.T) {
		id := identity(func(r *http.Request) { r.RemoteAddr = "192.0.2.7:51234" })
		assert.Equal(t, "ip:192.0.2.7", id)
	})

	t.Run("portless peer address used raw", func(t *testing.T) {
		id := identity(func(r *http.Request) { r.RemoteAddr = "10.0.0.9" })
		assert.Equal(t, "ip:10.0.0.9", id)
	})

	t.Run("unknown when nothing identifies the caller", func(t *testing.T) {
		id := identity(func(r *http.Request) { r.RemoteAddr = "" })
		assert.Equal(t, "unknown", id)
	})
}

// TestServerSecurityStack drives the assembled router to check middleware
// ordering: rate limit and auth wrap every route, replay protection wraps
// mutations only.
func TestServerSecurityStack(t *testing.T) {
	cfg := &config.Config{
		Hardware: &config.HardwareConfig{
			Auth: config.AuthConfig{
				Enabled:                    true,
				Token:                      "control-secret",
				ControlAPIRateLimit:        config.RateLimitConfig{Enabled: true, RPM: 6000, Burst: 100},
				ControlAPIReplayProtection: config.ReplayProtectionConfig{Enabled: true, WindowSeconds: 60},
			},
		},
	}
	s := NewServer(cfg, Deps{Runtime: &fakeRuntime{abortOK: true}})
	h := s.Handler()

	do := func(req *http.Request) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}
	authed := func(method, target, nonce string) *http.Request {
		var req *http.Request
		if method == http.MethodGet {
			req = httptest.NewRequest(method, target, nil)
		} else {
			req = httptest.NewRequest(method, target, strings.NewReader(`{"reason":"test"}`))
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Authorization", "Bearer control-secret")
		if nonce != "" {
			req.Header.Set("X-Request-Nonce", nonce)
			req.Header.Set("X-Request-Timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))
		}
		return req
	}

	t.Run("healthz needs no token", func(t *testing.T) {
		rec := do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	})

	t.Run("reads require the token", func(t *testing.T) {
		rec := do(httptest.NewRequest(http.MethodGet, "/v1/runtime/status", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, codeAuthDenied, decodeBody(t, rec)["error_code"])
	})

	t.Run("authorized read passes without a nonce", func(t *testing.T) {
		rec := do(authed(http.MethodGet, "/v1/runtime/status", ""))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("mutations need a nonce", func(t *testing.T) {
		rec := do(authed(http.MethodPost, "/v1/device/glass-1/abort", ""))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "missing_nonce", decodeBody(t, rec)["error"])
	})

	t.Run("mutation with fresh nonce reaches the handler", func(t *testing.T) {
		rec := do(authed(http.MethodPost, "/v1/device/glass-1/abort", "nonce-1"))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decodeBody(t, rec)["success"])
	})

	t.Run("replayed nonce is rejected", func(t *testing.T) {
		rec := do(authed(http.MethodPost, "/v1/device/glass-1/abort", "nonce-dup"))
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do(authed(http.MethodPost, "/v1/device/glass-1/abort", "nonce-dup"))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, codeReplay, decodeBody(t, rec)["error_code"])
	})
}
