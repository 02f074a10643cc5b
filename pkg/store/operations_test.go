package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/opencane/edged/test/database"
)

func TestStore_OperationLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := New(client.Client)
	ctx := context.Background()

	t.Run("enqueue derives the command type", func(t *testing.T) {
		id, err := s.EnqueueOperation(ctx, "glass-1", "sess-1", "set_config", map[string]any{"volume": 7})
		require.NoError(t, err)

		op, err := s.GetOperation(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "queued", op.Status)
		assert.Equal(t, "set_config", op.OpType)
		assert.Equal(t, "set_config", op.CommandType)
		assert.Equal(t, "glass-1", op.DeviceID)
		assert.Equal(t, float64(7), op.Payload["volume"])
		assert.NotZero(t, op.CreatedAtMS)
	})

	t.Run("enqueue rejects unknown op types", func(t *testing.T) {
		_, err := s.EnqueueOperation(ctx, "glass-1", "", "reboot", nil)
		assert.True(t, IsValidationError(err))
	})

	t.Run("enqueue requires a device id", func(t *testing.T) {
		_, err := s.EnqueueOperation(ctx, "", "", "set_config", nil)
		assert.True(t, IsValidationError(err))
	})

	t.Run("sent then acked", func(t *testing.T) {
		id, err := s.EnqueueOperation(ctx, "glass-2", "sess-1", "tool_call", nil)
		require.NoError(t, err)

		require.NoError(t, s.MarkOperationSent(ctx, id))
		op, err := s.GetOperation(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "sent", op.Status)
		assert.NotZero(t, op.SentAtMS)

		require.NoError(t, s.MarkOperationResult(ctx, id, map[string]any{"ok": true}, true, ""))
		op, err = s.GetOperation(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "acked", op.Status)
		assert.Equal(t, true, op.Result["ok"])
		assert.NotZero(t, op.AckedAtMS)
	})

	t.Run("failure records the device error", func(t *testing.T) {
		id, err := s.EnqueueOperation(ctx, "glass-2", "sess-1", "set_config", nil)
		require.NoError(t, err)

		require.NoError(t, s.MarkOperationResult(ctx, id, nil, false, "device rejected config"))
		op, err := s.GetOperation(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "failed", op.Status)
		assert.Equal(t, "device rejected config", op.ErrorMessage)
	})

	t.Run("double completion conflicts", func(t *testing.T) {
		id, err := s.EnqueueOperation(ctx, "glass-2", "sess-1", "set_config", nil)
		require.NoError(t, err)
		require.NoError(t, s.MarkOperationResult(ctx, id, nil, true, ""))

		err = s.MarkOperationResult(ctx, id, nil, false, "late")
		assert.ErrorIs(t, err, ErrStatusConflict)
	})

	t.Run("sent is queued-only", func(t *testing.T) {
		id, err := s.EnqueueOperation(ctx, "glass-2", "sess-1", "set_config", nil)
		require.NoError(t, err)
		require.NoError(t, s.MarkOperationSent(ctx, id))

		err = s.MarkOperationSent(ctx, id)
		assert.ErrorIs(t, err, ErrStatusConflict)
	})

	t.Run("cancel covers queued and sent only", func(t *testing.T) {
		id, err := s.EnqueueOperation(ctx, "glass-3", "sess-1", "ota_plan", nil)
		require.NoError(t, err)

		require.NoError(t, s.CancelOperation(ctx, id, "superseded"))
		op, err := s.GetOperation(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "canceled", op.Status)
		assert.Equal(t, "superseded", op.ErrorMessage)

		err = s.CancelOperation(ctx, id, "again")
		assert.ErrorIs(t, err, ErrStatusConflict)
	})

	t.Run("get unknown operation is not found", func(t *testing.T) {
		_, err := s.GetOperation(ctx, "op-404")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_OperationQueries(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := New(client.Client)
	ctx := context.Background()

	var ids []string
	for _, opType := range []string{"set_config", "tool_call", "ota_plan"} {
		id, err := s.EnqueueOperation(ctx, "glass-1", "sess-1", opType, nil)
		require.NoError(t, err)
		ids = append(ids, id)
		time.Sleep(2 * time.Millisecond) // distinct created_at_ms for ordering
	}
	require.NoError(t, s.MarkOperationSent(ctx, ids[1]))

	t.Run("queued operations in enqueue order", func(t *testing.T) {
		ops, err := s.QueuedOperations(ctx, "glass-1", 0)
		require.NoError(t, err)
		require.Len(t, ops, 2)
		assert.Equal(t, ids[0], ops[0].ID)
		assert.Equal(t, ids[2], ops[1].ID)
	})

	t.Run("list returns newest first", func(t *testing.T) {
		ops, err := s.ListOperations(ctx, "glass-1", 0)
		require.NoError(t, err)
		require.Len(t, ops, 3)
		assert.Equal(t, ids[2], ops[0].ID)
		assert.Equal(t, ids[0], ops[2].ID)
	})

	t.Run("list honors the limit", func(t *testing.T) {
		ops, err := s.ListOperations(ctx, "glass-1", 1)
		require.NoError(t, err)
		require.Len(t, ops, 1)
		assert.Equal(t, ids[2], ops[0].ID)
	})

	t.Run("other devices see nothing", func(t *testing.T) {
		ops, err := s.ListOperations(ctx, "glass-2", 0)
		require.NoError(t, err)
		assert.Empty(t, ops)
	})
}
