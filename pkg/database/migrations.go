package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient timeline search over lifelog text and context
// summaries.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_lifelog_events_text_gin
		ON lifelog_events USING gin(to_tsvector('english', COALESCE(text, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create lifelog text GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_lifelog_contexts_summary_gin
		ON lifelog_contexts USING gin(to_tsvector('english', COALESCE(semantic_summary, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create context summary GIN index: %w", err)
	}

	return nil
}
