package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/opencane/edged/test/database"
)

func TestStore_ThoughtTraces(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := New(client.Client)
	ctx := context.Background()

	base := int64(1_700_000_000_000)

	t.Run("append validates required fields", func(t *testing.T) {
		err := s.AppendTraceStep(ctx, TraceStep{SessionID: "sess-1"})
		assert.True(t, IsValidationError(err))
		err = s.AppendTraceStep(ctx, TraceStep{TraceID: "trace-1"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("replay returns one trace in recorded order", func(t *testing.T) {
		steps := []TraceStep{
			{TraceID: "trace-1", SessionID: "sess-1", Source: "agent", Stage: "plan", TSMS: base + 1_000},
			{TraceID: "trace-1", SessionID: "sess-1", Source: "agent", Stage: "tool_call", Payload: map[string]any{"tool": "lifelog_query"}, TSMS: base + 2_000},
			{TraceID: "trace-1", SessionID: "sess-1", Source: "agent", Stage: "respond", TSMS: base + 3_000},
			{TraceID: "trace-2", SessionID: "sess-1", Source: "policy", Stage: "deny", TSMS: base + 4_000},
		}
		for _, step := range steps {
			require.NoError(t, s.AppendTraceStep(ctx, step))
		}

		out, err := s.ReplayTrace(ctx, "trace-1")
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.Equal(t, "plan", out[0].Stage)
		assert.Equal(t, "tool_call", out[1].Stage)
		assert.Equal(t, "respond", out[2].Stage)
		assert.Equal(t, "lifelog_query", out[1].Payload["tool"])
	})

	t.Run("replay of an unknown trace is empty", func(t *testing.T) {
		out, err := s.ReplayTrace(ctx, "trace-404")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("query is session-scoped newest first", func(t *testing.T) {
		out, err := s.QueryTraces(ctx, "sess-1", 0)
		require.NoError(t, err)
		require.Len(t, out, 4)
		assert.Equal(t, "deny", out[0].Stage)

		out, err = s.QueryTraces(ctx, "sess-1", 2)
		require.NoError(t, err)
		assert.Len(t, out, 2)

		out, err = s.QueryTraces(ctx, "sess-404", 0)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
