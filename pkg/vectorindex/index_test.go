package vectorindex

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDocs(t *testing.T, idx Index) {
	t.Helper()
	ctx := context.Background()
	docs := []Document{
		{ID: "img-1", Text: "a red traffic light at a busy intersection", Metadata: map[string]any{"session_id": "s1", "risk_level": "P1"}},
		{ID: "img-2", Text: "an empty park bench under a tree", Metadata: map[string]any{"session_id": "s1", "risk_level": "P3"}},
		{ID: "img-3", Text: "a busy intersection with cars and a crosswalk", Metadata: map[string]any{"session_id": "s2", "risk_level": "P2"}},
	}
	for _, d := range docs {
		require.NoError(t, idx.Add(ctx, d))
	}
}

func TestMemoryIndexQuery(t *testing.T) {
	idx := NewMemoryIndex(nil)
	seedDocs(t, idx)
	ctx := context.Background()

	matches, err := idx.Query(ctx, "busy intersection traffic", 2, nil)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.LessOrEqual(t, len(matches), 2)
	// The park bench should not outrank the traffic scenes.
	assert.NotEqual(t, "img-2", matches[0].Document.ID)
}

func TestMemoryIndexFilter(t *testing.T) {
	idx := NewMemoryIndex(nil)
	seedDocs(t, idx)
	ctx := context.Background()

	matches, err := idx.Query(ctx, "intersection", 10, map[string]any{"session_id": "s2"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "img-3", matches[0].Document.ID)
}

func TestMemoryIndexDelete(t *testing.T) {
	idx := NewMemoryIndex(nil)
	seedDocs(t, idx)
	ctx := context.Background()

	require.NoError(t, idx.Delete(ctx, "img-1"))
	assert.Equal(t, 2, idx.Len())

	matches, err := idx.Query(ctx, "traffic light", 10, nil)
	require.NoError(t, err)
	for _, m := range matches {
		assert.NotEqual(t, "img-1", m.Document.ID)
	}
}

func TestEmptyQueryRejected(t *testing.T) {
	idx := NewMemoryIndex(nil)
	_, err := idx.Query(context.Background(), "   ", 5, nil)
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func newRedisIndex(t *testing.T) *RedisIndex {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisIndex(client, "test:vectorindex", nil)
}

func TestRedisIndexRoundTrip(t *testing.T) {
	idx := newRedisIndex(t)
	seedDocs(t, idx)
	ctx := context.Background()

	matches, err := idx.Query(ctx, "busy intersection", 2, nil)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.NotEqual(t, "img-2", matches[0].Document.ID)

	matches, err = idx.Query(ctx, "intersection", 10, map[string]any{"session_id": "s1"})
	require.NoError(t, err)
	for _, m := range matches {
		assert.Equal(t, "s1", m.Document.Metadata["session_id"])
	}
}

func TestRedisIndexDelete(t *testing.T) {
	idx := newRedisIndex(t)
	seedDocs(t, idx)
	ctx := context.Background()

	require.NoError(t, idx.Delete(ctx, "img-3"))
	matches, err := idx.Query(ctx, "intersection crosswalk", 10, nil)
	require.NoError(t, err)
	for _, m := range matches {
		assert.NotEqual(t, "img-3", m.Document.ID)
	}
}

func TestRedisIndexEmpty(t *testing.T) {
	idx := newRedisIndex(t)
	matches, err := idx.Query(context.Background(), "anything", 5, nil)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
