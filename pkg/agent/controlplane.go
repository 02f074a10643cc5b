package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Policy fetch sources reported alongside the data.
const (
	PolicySourceDisabled   = "disabled"
	PolicySourceCache      = "cache"
	PolicySourceRemote     = "remote"
	PolicySourceStaleCache = "stale_cache"
	PolicySourceFallback   = "fallback"
)

// DevicePolicy is the per-device tool policy served by the control plane.
type DevicePolicy struct {
	AllowedTools []string `json:"allowed_tools"`
	BlockedTools []string `json:"blocked_tools"`
	Disabled     bool     `json:"disabled"`
}

// RuntimeConfig is the remotely managed runtime tuning block.
type RuntimeConfig map[string]any

// ControlPlaneConfig configures the remote policy client.
type ControlPlaneConfig struct {
	Enabled               bool
	BaseURL               string
	APIToken              string
	RuntimeConfigPath     string
	DevicePolicyPath      string
	Timeout               time.Duration
	CacheTTL              time.Duration
	FallbackRuntimeConfig RuntimeConfig
}

type cacheEntry[T any] struct {
	value     T
	expiresAt time.Time
}

// ControlPlaneClient fetches runtime config and per-device tool policy from
// the remote control plane, with a TTL cache and stale-cache fallback so a
// control-plane outage never stalls a voice turn.
type ControlPlaneClient struct {
	cfg  ControlPlaneConfig
	http *http.Client
	now  func() time.Time

	mu           sync.Mutex
	runtimeCache *cacheEntry[RuntimeConfig]
	deviceCache  map[string]cacheEntry[DevicePolicy]
	lastError    string
}

// NewControlPlaneClient normalizes the config. The client is disabled when
// no base URL is set.
func NewControlPlaneClient(cfg ControlPlaneConfig) *ControlPlaneClient {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.Enabled = false
	}
	if cfg.RuntimeConfigPath == "" {
		cfg.RuntimeConfigPath = "/v1/control/runtime_config"
	}
	if cfg.DevicePolicyPath == "" {
		cfg.DevicePolicyPath = "/v1/control/device_policy"
	}
	if cfg.Timeout < 200*time.Millisecond {
		cfg.Timeout = 3 * time.Second
	}
	if cfg.CacheTTL < time.Second {
		cfg.CacheTTL = 30 * time.Second
	}
	return &ControlPlaneClient{
		cfg:         cfg,
		http:        &http.Client{Timeout: cfg.Timeout},
		now:         time.Now,
		deviceCache: make(map[string]cacheEntry[DevicePolicy]),
	}
}

// FetchRuntimeConfig returns the remote runtime config, the cache source it
// came from, and any fetch warning. A failed fetch degrades to the stale
// cache, then to the configured fallback.
func (c *ControlPlaneClient) FetchRuntimeConfig(ctx context.Context, forceRefresh bool) (RuntimeConfig, string, error) {
	if !c.cfg.Enabled {
		return cloneRuntimeConfig(c.cfg.FallbackRuntimeConfig), PolicySourceDisabled, nil
	}

	c.mu.Lock()
	cached := c.runtimeCache
	c.mu.Unlock()
	if !forceRefresh && cached != nil && c.now().Before(cached.expiresAt) {
		return cloneRuntimeConfig(cached.value), PolicySourceCache, nil
	}

	var data RuntimeConfig
	err := c.getJSON(ctx, c.cfg.RuntimeConfigPath, nil, &data)
	if err == nil {
		c.mu.Lock()
		c.runtimeCache = &cacheEntry[RuntimeConfig]{value: data, expiresAt: c.now().Add(c.cfg.CacheTTL)}
		c.lastError = ""
		c.mu.Unlock()
		return cloneRuntimeConfig(data), PolicySourceRemote, nil
	}

	c.mu.Lock()
	c.lastError = err.Error()
	cached = c.runtimeCache
	c.mu.Unlock()
	if cached != nil {
		return cloneRuntimeConfig(cached.value), PolicySourceStaleCache, err
	}
	return cloneRuntimeConfig(c.cfg.FallbackRuntimeConfig), PolicySourceFallback, err
}

// FetchDevicePolicy returns the tool policy for one device. A failed fetch
// degrades to the stale cache; with no cache the error propagates and the
// caller decides how permissive to be.
func (c *ControlPlaneClient) FetchDevicePolicy(ctx context.Context, deviceID string, forceRefresh bool) (DevicePolicy, string, error) {
	device := strings.TrimSpace(deviceID)
	if device == "" {
		return DevicePolicy{}, "", fmt.Errorf("device_id is required")
	}
	if !c.cfg.Enabled {
		return DevicePolicy{}, PolicySourceDisabled, nil
	}

	c.mu.Lock()
	cached, hasCached := c.deviceCache[device]
	c.mu.Unlock()
	if !forceRefresh && hasCached && c.now().Before(cached.expiresAt) {
		return cached.value, PolicySourceCache, nil
	}

	var data DevicePolicy
	err := c.getJSON(ctx, c.cfg.DevicePolicyPath, url.Values{"device_id": {device}}, &data)
	if err == nil {
		c.mu.Lock()
		c.deviceCache[device] = cacheEntry[DevicePolicy]{value: data, expiresAt: c.now().Add(c.cfg.CacheTTL)}
		c.lastError = ""
		c.mu.Unlock()
		return data, PolicySourceRemote, nil
	}

	c.mu.Lock()
	c.lastError = err.Error()
	c.mu.Unlock()
	if hasCached {
		return cached.value, PolicySourceStaleCache, err
	}
	return DevicePolicy{}, "", err
}

// StatusSnapshot reports cache and error state for the status endpoint.
func (c *ControlPlaneClient) StatusSnapshot() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return map[string]any{
		"enabled":           c.cfg.Enabled,
		"base_url":          c.cfg.BaseURL,
		"runtime_cache":     c.runtimeCache != nil,
		"device_cache_size": len(c.deviceCache),
		"last_error":        c.lastError,
	}
}

func (c *ControlPlaneClient) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.cfg.BaseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build control-plane request: %w", err)
	}
	if c.cfg.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("control-plane request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("control-plane returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode control-plane response: %w", err)
	}
	return nil
}

func cloneRuntimeConfig(in RuntimeConfig) RuntimeConfig {
	out := make(RuntimeConfig, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
