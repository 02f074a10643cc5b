package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/opencane/edged/ent/lifelogevent"
	"github.com/opencane/edged/ent/lifelogimage"
	"github.com/opencane/edged/ent/observabilitysample"
	"github.com/opencane/edged/ent/telemetrysample"
	"github.com/opencane/edged/ent/thoughttrace"
)

// RetentionPolicy sets per-kind retention windows in days. Zero or negative
// keeps rows of that kind forever.
type RetentionPolicy struct {
	EventsDays        int
	ImagesDays        int
	TracesDays        int
	TelemetryDays     int
	ObservabilityDays int
}

// RetentionResult reports how many rows each purge pass removed.
type RetentionResult struct {
	LifelogEvents        int `json:"lifelog_events"`
	LifelogImages        int `json:"lifelog_images"`
	Traces               int `json:"traces"`
	TelemetrySamples     int `json:"telemetry_samples"`
	ObservabilitySamples int `json:"observability_samples"`
}

// PurgeBefore deletes time-series rows older than the cutoff. Session,
// binding, and task rows are exempt; they are small and auditable.
func (s *Store) PurgeBefore(ctx context.Context, cutoffMS int64) (RetentionResult, error) {
	var res RetentionResult
	var err error

	res.LifelogEvents, err = s.client.LifelogEvent.Delete().
		Where(lifelogevent.TsMsLT(cutoffMS)).
		Exec(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to purge lifelog events: %w", err)
	}

	res.LifelogImages, err = s.client.LifelogImage.Delete().
		Where(lifelogimage.TsMsLT(cutoffMS)).
		Exec(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to purge lifelog images: %w", err)
	}

	res.Traces, err = s.client.ThoughtTrace.Delete().
		Where(thoughttrace.TsMsLT(cutoffMS)).
		Exec(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to purge traces: %w", err)
	}

	res.TelemetrySamples, err = s.client.TelemetrySample.Delete().
		Where(telemetrysample.TsMsLT(cutoffMS)).
		Exec(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to purge telemetry samples: %w", err)
	}

	res.ObservabilitySamples, err = s.client.ObservabilitySample.Delete().
		Where(observabilitysample.TsMsLT(cutoffMS)).
		Exec(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to purge observability samples: %w", err)
	}

	slog.Info("retention purge complete",
		"cutoff_ms", cutoffMS,
		"lifelog_events", res.LifelogEvents,
		"lifelog_images", res.LifelogImages,
		"traces", res.Traces,
		"telemetry_samples", res.TelemetrySamples)
	return res, nil
}

// PurgeExpired deletes time-series rows older than their kind's retention
// window, measured back from now. Kinds with a zero window are untouched.
func (s *Store) PurgeExpired(ctx context.Context, policy RetentionPolicy) (RetentionResult, error) {
	now := time.UnixMilli(nowMS())
	cutoff := func(days int) (int64, bool) {
		if days <= 0 {
			return 0, false
		}
		return now.AddDate(0, 0, -days).UnixMilli(), true
	}

	var res RetentionResult
	var err error

	if ms, ok := cutoff(policy.EventsDays); ok {
		res.LifelogEvents, err = s.client.LifelogEvent.Delete().
			Where(lifelogevent.TsMsLT(ms)).
			Exec(ctx)
		if err != nil {
			return res, fmt.Errorf("failed to purge lifelog events: %w", err)
		}
	}

	if ms, ok := cutoff(policy.ImagesDays); ok {
		res.LifelogImages, err = s.client.LifelogImage.Delete().
			Where(lifelogimage.TsMsLT(ms)).
			Exec(ctx)
		if err != nil {
			return res, fmt.Errorf("failed to purge lifelog images: %w", err)
		}
	}

	if ms, ok := cutoff(policy.TracesDays); ok {
		res.Traces, err = s.client.ThoughtTrace.Delete().
			Where(thoughttrace.TsMsLT(ms)).
			Exec(ctx)
		if err != nil {
			return res, fmt.Errorf("failed to purge traces: %w", err)
		}
	}

	if ms, ok := cutoff(policy.TelemetryDays); ok {
		res.TelemetrySamples, err = s.client.TelemetrySample.Delete().
			Where(telemetrysample.TsMsLT(ms)).
			Exec(ctx)
		if err != nil {
			return res, fmt.Errorf("failed to purge telemetry samples: %w", err)
		}
	}

	if ms, ok := cutoff(policy.ObservabilityDays); ok {
		res.ObservabilitySamples, err = s.client.ObservabilitySample.Delete().
			Where(observabilitysample.TsMsLT(ms)).
			Exec(ctx)
		if err != nil {
			return res, fmt.Errorf("failed to purge observability samples: %w", err)
		}
	}

	slog.Info("retention purge complete",
		"events_days", policy.EventsDays,
		"images_days", policy.ImagesDays,
		"traces_days", policy.TracesDays,
		"lifelog_events", res.LifelogEvents,
		"lifelog_images", res.LifelogImages,
		"traces", res.Traces,
		"telemetry_samples", res.TelemetrySamples,
		"observability_samples", res.ObservabilitySamples)
	return res, nil
}
