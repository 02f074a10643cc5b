package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/opencane/edged/test/database"
)

func TestStore_LifelogEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := New(client.Client)
	ctx := context.Background()

	base := int64(1_700_000_000_000)
	seed := []Event{
		{SessionID: "sess-1", DeviceID: "glass-1", EventType: "context_item", Text: "kettle on the stove", TSMS: base + 1_000},
		{SessionID: "sess-1", DeviceID: "glass-1", EventType: "safety_signal", Text: "car approaching", RiskLevel: "P1", TSMS: base + 2_000},
		{SessionID: "sess-1", DeviceID: "glass-1", EventType: "context_item", Text: "bicycle in the garage", TSMS: base + 3_000},
		{SessionID: "sess-1", DeviceID: "glass-1", EventType: "safety_signal", Text: "wet floor", RiskLevel: "P2", TSMS: base + 4_000},
		{SessionID: "sess-2", DeviceID: "glass-2", EventType: "context_item", Text: "other session", TSMS: base + 5_000},
	}
	for _, ev := range seed {
		_, err := s.AppendEvent(ctx, ev)
		require.NoError(t, err)
	}

	t.Run("append validates required fields", func(t *testing.T) {
		_, err := s.AppendEvent(ctx, Event{EventType: "context_item"})
		assert.True(t, IsValidationError(err))
		_, err = s.AppendEvent(ctx, Event{SessionID: "sess-1"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("append defaults id timestamp and confidence", func(t *testing.T) {
		id, err := s.AppendEvent(ctx, Event{SessionID: "sess-3", EventType: "context_item"})
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		rows, err := s.Timeline(ctx, "sess-3", 0, 0, nil, 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, id, rows[0].ID)
		assert.NotZero(t, rows[0].TSMS)
		assert.Equal(t, 1.0, rows[0].Confidence)
	})

	t.Run("timeline is session-scoped newest first", func(t *testing.T) {
		rows, err := s.Timeline(ctx, "sess-1", 0, 0, nil, 0)
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, "wet floor", rows[0].Text)
		assert.Equal(t, "kettle on the stove", rows[3].Text)
	})

	t.Run("timeline filters by window", func(t *testing.T) {
		rows, err := s.Timeline(ctx, "sess-1", base+2_000, base+3_000, nil, 0)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "bicycle in the garage", rows[0].Text)
		assert.Equal(t, "car approaching", rows[1].Text)
	})

	t.Run("timeline filters by event type", func(t *testing.T) {
		rows, err := s.Timeline(ctx, "sess-1", 0, 0, []string{"safety_signal"}, 0)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		for _, row := range rows {
			assert.Equal(t, "safety_signal", row.EventType)
		}
	})

	t.Run("timeline honors the limit", func(t *testing.T) {
		rows, err := s.Timeline(ctx, "sess-1", 0, 0, nil, 1)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "wet floor", rows[0].Text)
	})

	t.Run("safety query caps the risk band", func(t *testing.T) {
		rows, err := s.SafetyQuery(ctx, "sess-1", "P1", 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "car approaching", rows[0].Text)

		rows, err = s.SafetyQuery(ctx, "sess-1", "P2", 0)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("safety query spans sessions when unscoped", func(t *testing.T) {
		rows, err := s.SafetyQuery(ctx, "", "P3", 0)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("safety stats group by risk level", func(t *testing.T) {
		stats, err := s.SafetyStats(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"P1": 1, "P2": 1}, stats)
	})
}

func TestStore_LifelogImages(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := New(client.Client)
	ctx := context.Background()

	base := int64(1_700_000_000_000)

	t.Run("save validates required fields", func(t *testing.T) {
		_, err := s.SaveImage(ctx, Image{DHash: "abc"})
		assert.True(t, IsValidationError(err))
		_, err = s.SaveImage(ctx, Image{SessionID: "sess-1"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("recent hashes newest first", func(t *testing.T) {
		for i, hash := range []string{"hash-a", "hash-b", "hash-c"} {
			_, err := s.SaveImage(ctx, Image{
				SessionID: "sess-1",
				DeviceID:  "glass-1",
				ImageURI:  "file:///tmp/cap.jpg",
				DHash:     hash,
				TSMS:      base + int64(i)*1_000,
			})
			require.NoError(t, err)
		}

		hashes, err := s.RecentImageHashes(ctx, "sess-1", 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"hash-c", "hash-b"}, hashes)
	})

	t.Run("mark uri deleted blanks matching rows", func(t *testing.T) {
		_, err := s.SaveImage(ctx, Image{SessionID: "sess-2", DHash: "hash-d", ImageURI: "file:///tmp/gone.jpg", TSMS: base})
		require.NoError(t, err)

		n, err := s.MarkImageURIDeleted(ctx, "file:///tmp/gone.jpg")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		n, err = s.MarkImageURIDeleted(ctx, "file:///tmp/never.jpg")
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestStore_LifelogContexts(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := New(client.Client)
	ctx := context.Background()

	imgID, err := s.SaveImage(ctx, Image{SessionID: "sess-1", DHash: "hash-a", TSMS: 1_700_000_000_000})
	require.NoError(t, err)

	t.Run("save validates required fields", func(t *testing.T) {
		_, err := s.SaveContext(ctx, ContextRow{SessionID: "sess-1"})
		assert.True(t, IsValidationError(err))
		_, err = s.SaveContext(ctx, ContextRow{ImageID: imgID})
		assert.True(t, IsValidationError(err))
	})

	t.Run("save and fetch by image", func(t *testing.T) {
		id, err := s.SaveContext(ctx, ContextRow{
			ImageID:         imgID,
			SessionID:       "sess-1",
			SemanticTitle:   "kitchen",
			SemanticSummary: "red kettle boiling on the stove",
			Objects:         []string{"kettle", "stove"},
			RiskHints:       []string{"open flame"},
			RiskLevel:       "P2",
			RiskScore:       0.4,
			Confidence:      0.9,
		})
		require.NoError(t, err)

		row, err := s.GetContextByImage(ctx, imgID)
		require.NoError(t, err)
		assert.Equal(t, id, row.ID)
		assert.Equal(t, "kitchen", row.SemanticTitle)
		assert.Equal(t, []string{"kettle", "stove"}, row.Objects)
		assert.Equal(t, "P2", row.RiskLevel)
		assert.NotZero(t, row.CreatedAtMS)
	})

	t.Run("risk level defaults to the lowest band", func(t *testing.T) {
		otherImg, err := s.SaveImage(ctx, Image{SessionID: "sess-1", DHash: "hash-b", TSMS: 1_700_000_001_000})
		require.NoError(t, err)

		_, err = s.SaveContext(ctx, ContextRow{ImageID: otherImg, SessionID: "sess-1"})
		require.NoError(t, err)

		row, err := s.GetContextByImage(ctx, otherImg)
		require.NoError(t, err)
		assert.Equal(t, "P3", row.RiskLevel)
		assert.Equal(t, 1.0, row.Confidence)
	})

	t.Run("recent contexts are session-scoped", func(t *testing.T) {
		rows, err := s.RecentContexts(ctx, "sess-1", 0)
		require.NoError(t, err)
		assert.Len(t, rows, 2)

		rows, err = s.RecentContexts(ctx, "sess-404", 0)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("get unknown image is not found", func(t *testing.T) {
		_, err := s.GetContextByImage(ctx, "img-404")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
