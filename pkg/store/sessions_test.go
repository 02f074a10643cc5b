package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/session"
	testdb "github.com/opencane/edged/test/database"
)

func TestStore_DeviceSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := New(client.Client)
	ctx := context.Background()

	base := int64(1_700_000_000_000)
	rec := session.Record{
		DeviceID:        "glass-1",
		SessionID:       "sess-1",
		State:           "ready",
		CreatedAtMS:     base,
		LastSeenMS:      base,
		LastInboundSeq:  -1,
		LastOutboundSeq: 0,
		UpdatedAtMS:     base,
	}

	t.Run("upsert inserts then updates the same key", func(t *testing.T) {
		require.NoError(t, s.UpsertDeviceSession(ctx, rec))

		rec.State = "listening"
		rec.LastSeenMS = base + 5_000
		rec.LastInboundSeq = 12
		rec.Telemetry = map[string]any{"battery_pct": 81}
		rec.UpdatedAtMS = base + 5_000
		require.NoError(t, s.UpsertDeviceSession(ctx, rec))

		rows, err := s.ListDeviceSessions(ctx, "glass-1", 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "listening", rows[0].State)
		assert.Equal(t, int64(12), rows[0].LastInboundSeq)
		assert.Equal(t, base+5_000, rows[0].LastSeenMS)
		assert.Equal(t, float64(81), rows[0].Telemetry["battery_pct"])
	})

	t.Run("list is device-scoped newest first", func(t *testing.T) {
		second := rec
		second.SessionID = "sess-2"
		second.LastSeenMS = base + 10_000
		require.NoError(t, s.UpsertDeviceSession(ctx, second))

		other := rec
		other.DeviceID = "glass-2"
		other.SessionID = "sess-3"
		require.NoError(t, s.UpsertDeviceSession(ctx, other))

		rows, err := s.ListDeviceSessions(ctx, "glass-1", 0)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "sess-2", rows[0].SessionID)
		assert.Equal(t, "sess-1", rows[1].SessionID)
	})

	t.Run("close marks the row closed", func(t *testing.T) {
		require.NoError(t, s.CloseDeviceSession(ctx, "glass-1", "sess-1", "heartbeat timeout", base+20_000))

		rows, err := s.ListDeviceSessions(ctx, "glass-1", 0)
		require.NoError(t, err)
		for _, row := range rows {
			if row.SessionID != "sess-1" {
				continue
			}
			assert.Equal(t, "closed", row.State)
			assert.Equal(t, "heartbeat timeout", row.CloseReason)
			assert.Equal(t, base+20_000, row.ClosedAtMS)
		}
	})

	t.Run("close unknown session is not found", func(t *testing.T) {
		err := s.CloseDeviceSession(ctx, "glass-1", "sess-404", "test", base)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
