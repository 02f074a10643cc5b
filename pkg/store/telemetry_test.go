package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/opencane/edged/test/database"
)

func TestStore_TelemetrySamples(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := New(client.Client)
	ctx := context.Background()

	base := int64(1_700_000_000_000)

	t.Run("insert requires a device id", func(t *testing.T) {
		err := s.InsertSample(ctx, Sample{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("recent samples filter by cutoff newest first", func(t *testing.T) {
		temp := 31.5
		for i := 0; i < 3; i++ {
			err := s.InsertSample(ctx, Sample{
				DeviceID:  "glass-1",
				SessionID: "sess-1",
				Battery:   map[string]any{"pct": 80 - i},
				TSMS:      base + int64(i)*60_000,
			})
			require.NoError(t, err)
		}
		require.NoError(t, s.InsertSample(ctx, Sample{
			DeviceID:     "glass-2",
			TemperatureC: &temp,
			TSMS:         base,
		}))

		rows, err := s.RecentSamples(ctx, "glass-1", base+60_000, 0)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, base+120_000, rows[0].TSMS)
		assert.Equal(t, float64(78), rows[0].Battery["pct"])
		assert.Equal(t, "opencane.telemetry.v1", rows[0].SchemaVersion)

		rows, err = s.RecentSamples(ctx, "glass-2", 0, 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].TemperatureC)
		assert.Equal(t, 31.5, *rows[0].TemperatureC)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		rows, err := s.RecentSamples(ctx, "glass-1", 0, 1)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}
