package cleanup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/config"
	"github.com/opencane/edged/pkg/store"
)

type fakePurger struct {
	mu       sync.Mutex
	calls    int
	policies []store.RetentionPolicy
	err      error
}

func (f *fakePurger) PurgeExpired(_ context.Context, policy store.RetentionPolicy) (store.RetentionResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.policies = append(f.policies, policy)
	if f.err != nil {
		return store.RetentionResult{}, f.err
	}
	return store.RetentionResult{LifelogEvents: 3}, nil
}

func (f *fakePurger) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestService_PurgesOnStart(t *testing.T) {
	purger := &fakePurger{}
	cfg := &config.RetentionConfig{
		Enabled:           true,
		EventsDays:        90,
		ImagesDays:        30,
		TracesDays:        30,
		TelemetryDays:     14,
		ObservabilityDays: 14,
		CleanupInterval:   time.Hour,
	}

	svc := NewService(cfg, purger)
	svc.Start(context.Background())
	defer svc.Stop()

	// The first pass runs before the ticker, so it lands quickly.
	require.Eventually(t, func() bool {
		return purger.callCount() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	purger.mu.Lock()
	policy := purger.policies[0]
	purger.mu.Unlock()
	assert.Equal(t, store.RetentionPolicy{
		EventsDays:        90,
		ImagesDays:        30,
		TracesDays:        30,
		TelemetryDays:     14,
		ObservabilityDays: 14,
	}, policy)
}

func TestService_DisabledIsNoOp(t *testing.T) {
	purger := &fakePurger{}
	cfg := &config.RetentionConfig{Enabled: false, CleanupInterval: time.Millisecond}

	svc := NewService(cfg, purger)
	svc.Start(context.Background())
	svc.Stop()

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, purger.callCount())
}

func TestService_TicksUntilStopped(t *testing.T) {
	purger := &fakePurger{}
	cfg := &config.RetentionConfig{Enabled: true, CleanupInterval: 10 * time.Millisecond}

	svc := NewService(cfg, purger)
	svc.Start(context.Background())

	require.Eventually(t, func() bool {
		return purger.callCount() >= 3
	}, 2*time.Second, 5*time.Millisecond)

	svc.Stop()
	after := purger.callCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, purger.callCount(), "no purges after Stop")
}

func TestService_StartIdempotent(t *testing.T) {
	purger := &fakePurger{}
	cfg := &config.RetentionConfig{Enabled: true, CleanupInterval: time.Hour}

	svc := NewService(cfg, purger)
	svc.Start(context.Background())
	svc.Start(context.Background())
	svc.Stop()

	// Double Stop must not panic either.
	svc.Stop()
}
