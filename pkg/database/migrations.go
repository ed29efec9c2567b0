package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient full-text search on query_text and summary_text.
// Portuguese configuration: the corpus is Brazilian government data and
// user queries are predominantly pt-BR.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_investigations_query_text_gin
		ON investigations USING gin(to_tsvector('portuguese', query_text))`)
	if err != nil {
		return fmt.Errorf("failed to create query_text GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_investigations_summary_text_gin
		ON investigations USING gin(to_tsvector('portuguese', COALESCE(summary_text, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create summary_text GIN index: %w", err)
	}

	return nil
}
