// Package cleanup provides data retention enforcement over the durable store.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/opencane/edged/pkg/config"
	"github.com/opencane/edged/pkg/store"
)

// Purger is the slice of the store the retention loop needs.
type Purger interface {
	PurgeExpired(ctx context.Context, policy store.RetentionPolicy) (store.RetentionResult, error)
}

// Service periodically purges expired time-series rows: lifelog events and
// images, thought traces, telemetry and observability samples. Session,
// binding, and task rows are exempt. All runs are idempotent.
type Service struct {
	cfg   *config.RetentionConfig
	store Purger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new retention service.
func NewService(cfg *config.RetentionConfig, st Purger) *Service {
	return &Service{cfg: cfg, store: st}
}

// Start launches the background retention loop. A disabled config makes
// Start a no-op.
func (s *Service) Start(ctx context.Context) {
	if !s.cfg.Enabled || s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention service started",
		"events_days", s.cfg.EventsDays,
		"images_days", s.cfg.ImagesDays,
		"traces_days", s.cfg.TracesDays,
		"telemetry_days", s.cfg.TelemetryDays,
		"observability_days", s.cfg.ObservabilityDays,
		"interval", s.cfg.CleanupInterval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.purge(ctx)

	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.purge(ctx)
		}
	}
}

// purge runs one retention pass. An in-flight pass finishes even when the
// loop is being stopped, so it runs on a background context.
func (s *Service) purge(_ context.Context) {
	res, err := s.store.PurgeExpired(context.Background(), store.RetentionPolicy{
		EventsDays:        s.cfg.EventsDays,
		ImagesDays:        s.cfg.ImagesDays,
		TracesDays:        s.cfg.TracesDays,
		TelemetryDays:     s.cfg.TelemetryDays,
		ObservabilityDays: s.cfg.ObservabilityDays,
	})
	if err != nil {
		slog.Error("Retention: purge failed", "error", err)
		return
	}
	total := res.LifelogEvents + res.LifelogImages + res.Traces +
		res.TelemetrySamples + res.ObservabilitySamples
	if total > 0 {
		slog.Info("Retention: purged expired rows",
			"lifelog_events", res.LifelogEvents,
			"lifelog_images", res.LifelogImages,
			"traces", res.Traces,
			"telemetry_samples", res.TelemetrySamples,
			"observability_samples", res.ObservabilitySamples)
	}
}
