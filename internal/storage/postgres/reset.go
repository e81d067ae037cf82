package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Tables lists every record table, dependents first.
var Tables = []string{
	"analytics",
	"scheduled_posts",
	"videos",
	"scripts",
	"affiliate_products",
	"viral_videos",
}

// Reset deletes all rows from the record tables. Identity sequences keep
// counting so ids are never reused.
func Reset(ctx context.Context, db *sqlx.DB) error {
	exec := GetExecutor(ctx, db)
	for _, table := range Tables {
		if _, err := exec.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
