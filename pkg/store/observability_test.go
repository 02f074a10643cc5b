package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/opencane/edged/test/database"
)

func TestStore_CounterSnapshots(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := New(client.Client)
	ctx := context.Background()

	base := int64(1_700_000_000_000)

	t.Run("insert requires a scope", func(t *testing.T) {
		err := s.InsertCounterSnapshot(ctx, CounterSnapshot{Counters: map[string]any{"x": 1}})
		assert.True(t, IsValidationError(err))
	})

	t.Run("recent snapshots are scope-filtered newest first", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			require.NoError(t, s.InsertCounterSnapshot(ctx, CounterSnapshot{
				Scope:    "runtime",
				Counters: map[string]any{"turns_total": i},
				TSMS:     base + int64(i)*1_000,
			}))
		}
		require.NoError(t, s.InsertCounterSnapshot(ctx, CounterSnapshot{
			Scope:    "ingest",
			Counters: map[string]any{"depth": 4},
			TSMS:     base,
		}))

		rows, err := s.RecentCounterSnapshots(ctx, "runtime", 0)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, base+2_000, rows[0].TSMS)
		assert.Equal(t, float64(2), rows[0].Counters["turns_total"])

		rows, err = s.RecentCounterSnapshots(ctx, "runtime", 2)
		require.NoError(t, err)
		assert.Len(t, rows, 2)

		rows, err = s.RecentCounterSnapshots(ctx, "ingest", 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, float64(4), rows[0].Counters["depth"])
	})

	t.Run("timestamp defaults to now when unset", func(t *testing.T) {
		before := time.Now().UnixMilli()
		require.NoError(t, s.InsertCounterSnapshot(ctx, CounterSnapshot{
			Scope:    "adapter",
			Counters: map[string]any{"frames": 12},
		}))

		rows, err := s.RecentCounterSnapshots(ctx, "adapter", 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.GreaterOrEqual(t, rows[0].TSMS, before)
	})
}
