package api

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	echo "github.com/labstack/echo/v5"
	"golang.org/x/time/rate"

	"github.com/opencane/edged/pkg/config"
)

// securityHeaders sets standard security response headers on every reply.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// requireAuth checks the shared control-API token. Accepts
// "Authorization: Bearer <token>" or "X-Auth-Token: <token>"; the liveness
// endpoint stays open so probes need no credentials.
func requireAuth(cfg config.AuthConfig) echo.MiddlewareFunc {
	expected := []byte(strings.TrimSpace(cfg.Token))
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if !cfg.Enabled || c.Request().URL.Path == "/healthz" {
				return next(c)
			}
			candidate := bearerToken(c.Request())
			if candidate == "" {
				candidate = strings.TrimSpace(c.Request().Header.Get("X-Auth-Token"))
			}
			if len(expected) == 0 || candidate == "" ||
				subtle.ConstantTimeCompare([]byte(candidate), expected) != 1 {
				return respondCode(c, http.StatusUnauthorized, codeAuthDenied, "unauthorized")
			}
			return next(c)
		}
	}
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(raw) >= 7 && strings.EqualFold(raw[:7], "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return ""
}

const (
	maxTrackedClients = 10000
	limiterIdleTTL    = 10 * time.Minute
)

type clientLimiter struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// clientLimiters keeps one token bucket per caller identity.
type clientLimiters struct {
	limit rate.Limit
	burst int

	mu      sync.Mutex
	clients map[string]*clientLimiter
}

func newClientLimiters(rpm, burst int) *clientLimiters {
	if rpm < 1 {
		rpm = 1
	}
	if burst < 1 {
		burst = 1
	}
	return &clientLimiters{
		limit:   rate.Limit(float64(rpm) / 60.0),
		burst:   burst,
		clients: make(map[string]*clientLimiter),
	}
}

func (cl *clientLimiters) allow(key string, now time.Time) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	entry, ok := cl.clients[key]
	if !ok {
		entry = &clientLimiter{lim: rate.NewLimiter(cl.limit, cl.burst)}
		cl.clients[key] = entry
		if len(cl.clients) > maxTrackedClients {
			cl.evictIdle(now)
		}
	}
	entry.lastSeen = now
	return entry.lim.AllowN(now, 1)
}

// evictIdle drops buckets idle past the TTL. Called under mu.
func (cl *clientLimiters) evictIdle(now time.Time) {
	for key, entry := range cl.clients {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(cl.clients, key)
		}
	}
}

// rateLimit applies a per-client token bucket sized rpm+burst.
func rateLimit(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	limiters := newClientLimiters(cfg.RPM, cfg.Burst)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if !limiters.allow(clientIdentity(c), time.Now()) {
				return respondCode(c, http.StatusTooManyRequests, codeRateLimited, "rate limited")
			}
			return next(c)
		}
	}
}

const replayMaxEntries = 20000

// replayProtector rejects duplicate nonces inside a sliding window.
type replayProtector struct {
	window time.Duration

	mu   sync.Mutex
	seen map[string]int64
}

func newReplayProtector(windowSeconds int) *replayProtector {
	if windowSeconds < 10 {
		windowSeconds = 10
	}
	return &replayProtector{
		window: time.Duration(windowSeconds) * time.Second,
		seen:   make(map[string]int64),
	}
}

// validate returns the rejection reason, or "" when the nonce is fresh and
// the timestamp inside the window.
func (p *replayProtector) validate(key, nonce string, tsMS, nowMS int64) string {
	windowMS := p.window.Milliseconds()
	delta := nowMS - tsMS
	if delta < 0 {
		delta = -delta
	}
	if delta > windowMS {
		return "stale_timestamp"
	}

	replayKey := key + ":" + nonce
	cutoff := nowMS - windowMS
	p.mu.Lock()
	defer p.mu.Unlock()
	if seenMS, ok := p.seen[replayKey]; ok && seenMS >= cutoff {
		return "replayed_nonce"
	}
	p.seen[replayKey] = nowMS
	if len(p.seen) > replayMaxEntries {
		for k, v := range p.seen {
			if v < cutoff {
				delete(p.seen, k)
			}
		}
	}
	return ""
}

// replayProtection validates X-Request-Nonce and X-Request-Timestamp on
// mutating requests.
func replayProtection(cfg config.ReplayProtectionConfig) echo.MiddlewareFunc {
	protector := newReplayProtector(cfg.WindowSeconds)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			switch c.Request().Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			default:
				return next(c)
			}
			nonce := strings.TrimSpace(c.Request().Header.Get("X-Request-Nonce"))
			if nonce == "" {
				return respondCode(c, http.StatusBadRequest, codeBadRequest, "missing_nonce")
			}
			rawTS := strings.TrimSpace(c.Request().Header.Get("X-Request-Timestamp"))
			if rawTS == "" {
				return respondCode(c, http.StatusBadRequest, codeBadRequest, "missing_timestamp")
			}
			tsMS, ok := parseTimestampMS(rawTS)
			if !ok {
				return respondCode(c, http.StatusBadRequest, codeBadRequest, "invalid_timestamp")
			}
			switch reason := protector.validate(clientIdentity(c), nonce, tsMS, time.Now().UnixMilli()); reason {
			case "":
				return next(c)
			case "replayed_nonce":
				return respondCode(c, http.StatusConflict, codeReplay, reason)
			default:
				return respondCode(c, http.StatusBadRequest, codeReplay, reason)
			}
		}
	}
}

// parseTimestampMS reads a unix timestamp, accepting seconds or milliseconds.
func parseTimestampMS(text string) (int64, bool) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}
	if v > 0 && v < 10_000_000_000 {
		v *= 1000
	}
	return v, true
}

// clientIdentity derives the rate-limit/replay key for a request: a token
// fingerprint when credentials are present, the device id or peer IP
// otherwise.
func clientIdentity(c *echo.Context) string {
	if token := bearerToken(c.Request()); token != "" {
		return "bearer:" + tokenFingerprint(token)
	}
	if token := strings.TrimSpace(c.Request().Header.Get("X-Auth-Token")); token != "" {
		return "xauth:" + tokenFingerprint(token)
	}
	if deviceID := strings.TrimSpace(c.Request().Header.Get("X-Device-Id")); deviceID != "" {
		return "device:" + deviceID
	}
	if addr := c.Request().RemoteAddr; addr != "" {
		if host, _, err := net.SplitHostPort(addr); err == nil {
			return "ip:" + host
		}
		return "ip:" + addr
	}
	return "unknown"
}

func tokenFingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])[:16]
}
