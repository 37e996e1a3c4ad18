package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient search over conversation content and summaries,
// which Ent schema annotations cannot express.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_chat_messages_content_gin
		ON chat_messages USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create chat content GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_chat_sessions_summary_gin
		ON chat_sessions USING gin(to_tsvector('english', COALESCE(summary, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create session summary GIN index: %w", err)
	}

	return nil
}
