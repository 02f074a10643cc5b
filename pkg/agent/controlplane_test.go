package agent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newControlPlaneServer(t *testing.T, fail *atomic.Bool, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/control/runtime_config":
			_, _ = w.Write([]byte(`{"asr_timeout_ms": 5000, "tts_voice": "female-01"}`))
		case "/v1/control/device_policy":
			if r.URL.Query().Get("device_id") == "" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			_, _ = w.Write([]byte(`{"allowed_tools": ["mcp_web_search"], "blocked_tools": ["exec"], "disabled": false}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestControlPlaneRuntimeConfigCaching(t *testing.T) {
	var fail atomic.Bool
	var hits atomic.Int64
	server := newControlPlaneServer(t, &fail, &hits)

	client := NewControlPlaneClient(ControlPlaneConfig{
		Enabled:  true,
		BaseURL:  server.URL,
		APIToken: "test-token",
	})

	cfg, source, err := client.FetchRuntimeConfig(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, PolicySourceRemote, source)
	assert.Equal(t, float64(5000), cfg["asr_timeout_ms"])

	// Within TTL the cache serves without a request.
	_, source, err = client.FetchRuntimeConfig(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, PolicySourceCache, source)
	assert.Equal(t, int64(1), hits.Load())

	// Force refresh goes back to the server.
	_, source, err = client.FetchRuntimeConfig(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, PolicySourceRemote, source)
	assert.Equal(t, int64(2), hits.Load())
}

func TestControlPlaneRuntimeConfigStaleCacheThenFallback(t *testing.T) {
	var fail atomic.Bool
	var hits atomic.Int64
	server := newControlPlaneServer(t, &fail, &hits)

	client := NewControlPlaneClient(ControlPlaneConfig{
		Enabled:               true,
		BaseURL:               server.URL,
		APIToken:              "test-token",
		FallbackRuntimeConfig: RuntimeConfig{"tts_voice": "default"},
	})

	_, _, err := client.FetchRuntimeConfig(context.Background(), false)
	require.NoError(t, err)

	fail.Store(true)
	cfg, source, err := client.FetchRuntimeConfig(context.Background(), true)
	require.Error(t, err)
	assert.Equal(t, PolicySourceStaleCache, source)
	assert.Equal(t, "female-01", cfg["tts_voice"])

	status := client.StatusSnapshot()
	assert.NotEmpty(t, status["last_error"])
}

func TestControlPlaneRuntimeConfigFallbackWithoutCache(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	var hits atomic.Int64
	server := newControlPlaneServer(t, &fail, &hits)

	client := NewControlPlaneClient(ControlPlaneConfig{
		Enabled:               true,
		BaseURL:               server.URL,
		APIToken:              "test-token",
		FallbackRuntimeConfig: RuntimeConfig{"tts_voice": "default"},
	})

	cfg, source, err := client.FetchRuntimeConfig(context.Background(), false)
	require.Error(t, err)
	assert.Equal(t, PolicySourceFallback, source)
	assert.Equal(t, "default", cfg["tts_voice"])
}

func TestControlPlaneDisabled(t *testing.T) {
	client := NewControlPlaneClient(ControlPlaneConfig{
		FallbackRuntimeConfig: RuntimeConfig{"tts_voice": "default"},
	})

	cfg, source, err := client.FetchRuntimeConfig(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, PolicySourceDisabled, source)
	assert.Equal(t, "default", cfg["tts_voice"])

	_, source, err = client.FetchDevicePolicy(context.Background(), "dev-1", false)
	require.NoError(t, err)
	assert.Equal(t, PolicySourceDisabled, source)
}

func TestControlPlaneDevicePolicy(t *testing.T) {
	var fail atomic.Bool
	var hits atomic.Int64
	server := newControlPlaneServer(t, &fail, &hits)

	client := NewControlPlaneClient(ControlPlaneConfig{
		Enabled:  true,
		BaseURL:  server.URL,
		APIToken: "test-token",
	})

	pol, source, err := client.FetchDevicePolicy(context.Background(), "dev-1", false)
	require.NoError(t, err)
	assert.Equal(t, PolicySourceRemote, source)
	assert.Equal(t, []string{"mcp_web_search"}, pol.AllowedTools)
	assert.Equal(t, []string{"exec"}, pol.BlockedTools)

	// Cached per device.
	_, source, err = client.FetchDevicePolicy(context.Background(), "dev-1", false)
	require.NoError(t, err)
	assert.Equal(t, PolicySourceCache, source)
	assert.Equal(t, int64(1), hits.Load())

	// Outage degrades to the stale cache.
	fail.Store(true)
	pol, source, err = client.FetchDevicePolicy(context.Background(), "dev-1", true)
	require.Error(t, err)
	assert.Equal(t, PolicySourceStaleCache, source)
	assert.Equal(t, []string{"mcp_web_search"}, pol.AllowedTools)

	// With no cache the error propagates.
	_, _, err = client.FetchDevicePolicy(context.Background(), "dev-2", false)
	require.Error(t, err)

	_, _, err = client.FetchDevicePolicy(context.Background(), "  ", false)
	require.Error(t, err)
}

func TestControlPlaneCacheExpiry(t *testing.T) {
	var fail atomic.Bool
	var hits atomic.Int64
	server := newControlPlaneServer(t, &fail, &hits)

	client := NewControlPlaneClient(ControlPlaneConfig{
		Enabled:  true,
		BaseURL:  server.URL,
		APIToken: "test-token",
		CacheTTL: time.Second,
	})
	now := time.Now()
	client.now = func() time.Time { return now }

	_, source, err := client.FetchRuntimeConfig(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, PolicySourceRemote, source)

	now = now.Add(2 * time.Second)
	_, source, err = client.FetchRuntimeConfig(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, PolicySourceRemote, source)
	assert.Equal(t, int64(2), hits.Load())
}
