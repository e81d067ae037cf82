// Package postgres is the relational record store backing.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"content_studio/internal/domain"
)

// getOne scans a single row into dest, translating a missing row into
// domain.ErrNotFound.
func getOne(ctx context.Context, db *sqlx.DB, dest any, kind string, id int64, query string, args ...any) error {
	err := sqlx.GetContext(ctx, GetExecutor(ctx, db), dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("query %s %d: %w", kind, id, err)
	}
	return nil
}

func selectAll(ctx context.Context, db *sqlx.DB, dest any, query string, args ...any) error {
	return sqlx.SelectContext(ctx, GetExecutor(ctx, db), dest, query, args...)
}

// statusFilter builds the optional status predicate and its argument.
// Callers append it to a query with no other positional arguments.
func statusFilter(statuses []string) (string, []any) {
	if len(statuses) == 0 {
		return "", nil
	}
	return " WHERE status = ANY($1)", []any{pq.Array(statuses)}
}
