package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/opencane/edged/test/database"
)

// seedTimeSeries writes one row of every purgeable kind at the given timestamp.
func seedTimeSeries(t *testing.T, s *Store, tag string, tsMS int64) {
	t.Helper()
	ctx := context.Background()

	_, err := s.AppendEvent(ctx, Event{
		SessionID: "sess-retention",
		EventType: "context_update",
		Text:      tag,
		TSMS:      tsMS,
	})
	require.NoError(t, err)

	_, err = s.SaveImage(ctx, Image{
		SessionID: "sess-retention",
		DHash:     "hash-" + tag,
		TSMS:      tsMS,
	})
	require.NoError(t, err)

	require.NoError(t, s.AppendTraceStep(ctx, TraceStep{
		TraceID:   "trace-retention",
		SessionID: "sess-retention",
		Stage:     tag,
		TSMS:      tsMS,
	}))

	require.NoError(t, s.InsertSample(ctx, Sample{
		DeviceID: "glass-retention",
		Battery:  map[string]any{"pct": 50},
		TSMS:     tsMS,
	}))

	require.NoError(t, s.InsertCounterSnapshot(ctx, CounterSnapshot{
		Scope:    "retention",
		Counters: map[string]any{"rows": 1},
		TSMS:     tsMS,
	}))
}

func TestStore_PurgeExpired(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := New(client.Client)
	ctx := context.Background()

	oldMS := time.Now().AddDate(0, 0, -10).UnixMilli()
	freshMS := time.Now().UnixMilli()
	seedTimeSeries(t, s, "old", oldMS)
	seedTimeSeries(t, s, "fresh", freshMS)

	t.Run("expired rows are purged per kind", func(t *testing.T) {
		res, err := s.PurgeExpired(ctx, RetentionPolicy{
			EventsDays:    7,
			ImagesDays:    7,
			TracesDays:    7,
			TelemetryDays: 7,
			// ObservabilityDays left zero: keep forever.
		})
		require.NoError(t, err)
		assert.Equal(t, 1, res.LifelogEvents)
		assert.Equal(t, 1, res.LifelogImages)
		assert.Equal(t, 1, res.Traces)
		assert.Equal(t, 1, res.TelemetrySamples)
		assert.Equal(t, 0, res.ObservabilitySamples)
	})

	t.Run("fresh rows survive", func(t *testing.T) {
		events, err := s.Timeline(ctx, "sess-retention", 0, 0, nil, 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "fresh", events[0].Text)

		hashes, err := s.RecentImageHashes(ctx, "sess-retention", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"hash-fresh"}, hashes)

		steps, err := s.ReplayTrace(ctx, "trace-retention")
		require.NoError(t, err)
		require.Len(t, steps, 1)
		assert.Equal(t, "fresh", steps[0].Stage)

		samples, err := s.RecentSamples(ctx, "glass-retention", 0, 0)
		require.NoError(t, err)
		assert.Len(t, samples, 1)
	})

	t.Run("zero-window kinds are untouched", func(t *testing.T) {
		snaps, err := s.RecentCounterSnapshots(ctx, "retention", 0)
		require.NoError(t, err)
		assert.Len(t, snaps, 2)
	})

	t.Run("second pass deletes nothing", func(t *testing.T) {
		res, err := s.PurgeExpired(ctx, RetentionPolicy{
			EventsDays:    7,
			ImagesDays:    7,
			TracesDays:    7,
			TelemetryDays: 7,
		})
		require.NoError(t, err)
		assert.Equal(t, RetentionResult{}, res)
	})
}

func TestStore_PurgeBefore(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := New(client.Client)
	ctx := context.Background()

	base := int64(1_700_000_000_000)
	seedTimeSeries(t, s, "older", base)
	seedTimeSeries(t, s, "newer", base+10_000)

	t.Run("cutoff is exclusive and spans all kinds", func(t *testing.T) {
		res, err := s.PurgeBefore(ctx, base+5_000)
		require.NoError(t, err)
		assert.Equal(t, RetentionResult{
			LifelogEvents:        1,
			LifelogImages:        1,
			Traces:               1,
			TelemetrySamples:     1,
			ObservabilitySamples: 1,
		}, res)

		steps, err := s.ReplayTrace(ctx, "trace-retention")
		require.NoError(t, err)
		require.Len(t, steps, 1)
		assert.Equal(t, "newer", steps[0].Stage)
	})

	t.Run("rows at the cutoff are kept", func(t *testing.T) {
		res, err := s.PurgeBefore(ctx, base+10_000)
		require.NoError(t, err)
		assert.Equal(t, RetentionResult{}, res)
	})

	t.Run("future cutoff drains everything", func(t *testing.T) {
		res, err := s.PurgeBefore(ctx, base+60_000)
		require.NoError(t, err)
		assert.Equal(t, RetentionResult{
			LifelogEvents:        1,
			LifelogImages:        1,
			Traces:               1,
			TelemetrySamples:     1,
			ObservabilitySamples: 1,
		}, res)

		events, err := s.Timeline(ctx, "sess-retention", 0, 0, nil, 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
