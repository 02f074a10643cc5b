package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/opencane/edged/pkg/database"
	"github.com/opencane/edged/pkg/store"
	"github.com/opencane/edged/pkg/version"
)

const (
	observabilityScope = "runtime"

	// Upper bound on rows pulled for a history query; the window filter
	// discards anything older client-side.
	historySampleLimit = 4000
)

// healthHandler reports liveness without touching any backing service.
func (s *Server) healthHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"service": version.AppName,
		"version": version.Full(),
		"ts_ms":   time.Now().UnixMilli(),
	})
}

// runtimeStatusHandler returns the live runtime status document.
func (s *Server) runtimeStatusHandler(c *echo.Context) error {
	if s.runtime == nil {
		return respondUnavailable(c, "runtime")
	}
	return c.JSON(http.StatusOK, s.runtime.Status(c.Request().Context()))
}

// observabilityHandler derives a health report from the current runtime
// status. Each call also persists the report as a counter snapshot, so
// history queries accumulate data without an external scraper; a failed
// insert only logs because the report itself is still valid.
func (s *Server) observabilityHandler(c *echo.Context) error {
	if s.runtime == nil {
		return respondUnavailable(c, "runtime")
	}
	ctx := c.Request().Context()

	th := defaultHealthThresholds()
	th.TaskFailureRateMax = queryFloat(c, "task_failure_rate_max", th.TaskFailureRateMax)
	th.SafetyDowngradeRateMax = queryFloat(c, "safety_downgrade_rate_max", th.SafetyDowngradeRateMax)
	th.DeviceOfflineRateMax = queryFloat(c, "device_offline_rate_max", th.DeviceOfflineRateMax)
	th.IngestUtilizationMax = queryFloat(c, "ingest_utilization_max", th.IngestUtilizationMax)
	th.MinTaskTotal = queryInt(c, "min_task_total", th.MinTaskTotal)
	th.MinSafetyApplied = queryInt(c, "min_safety_applied", th.MinSafetyApplied)
	th.MinDevicesTotal = queryInt(c, "min_devices_total", th.MinDevicesTotal)

	report := buildHealthReport(s.runtime.Status(ctx), th, time.Now().UnixMilli())

	if s.db != nil {
		probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		dbHealth, err := database.Health(probeCtx, s.db)
		cancel()
		report.Database = dbHealth
		if err != nil {
			report.Healthy = false
			slog.Warn("Database health probe failed", "error", err)
		}
	}

	if s.store != nil {
		snap := store.CounterSnapshot{
			Scope:    observabilityScope,
			Counters: snapshotCounters(report),
			TSMS:     report.TSMS,
		}
		if err := s.store.InsertCounterSnapshot(ctx, snap); err != nil {
			slog.Warn("Failed to record observability snapshot", "error", err)
		}
	}
	return c.JSON(http.StatusOK, &report)
}

// observabilityHistoryHandler buckets persisted health snapshots over a
// trailing window.
func (s *Server) observabilityHistoryHandler(c *echo.Context) error {
	if s.store == nil {
		return respondUnavailable(c, "store")
	}
	scope := c.QueryParam("scope")
	if scope == "" {
		scope = observabilityScope
	}
	windowSeconds := queryInt(c, "window_seconds", 3600)
	bucketSeconds := queryInt(c, "bucket_seconds", 60)
	maxPoints := queryInt(c, "max_points", 500)

	samples, err := s.store.RecentCounterSnapshots(c.Request().Context(), scope, historySampleLimit)
	if err != nil {
		return respondError(c, err)
	}
	points, bucketUsed, sampleCount := buildHealthHistory(samples, time.Now().UnixMilli(), windowSeconds, bucketSeconds, maxPoints)
	return c.JSON(http.StatusOK, map[string]any{
		"success":        true,
		"scope":          scope,
		"window_seconds": clampInt(windowSeconds, 60, 24*60*60),
		"bucket_seconds": bucketUsed,
		"points":         points,
		"sample_count":   sampleCount,
	})
}

func queryFloat(c *echo.Context, name string, fallback float64) float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
