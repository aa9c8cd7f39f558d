// Package sqlite implements the repositories over a SQLite database using
// the pure-Go modernc driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const defaultTimeout = 5 * time.Second

// Open establishes the SQLite connection pool. Foreign keys are enforced on
// every connection via the DSN pragma; busy_timeout keeps concurrent writers
// from failing immediately with SQLITE_BUSY.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}
	return db, nil
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure. The
// modernc driver exposes the constraint only through the error text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// orderClause builds a safe ORDER BY fragment. The sort field is resolved
// through an allowlist so request parameters can never inject SQL; anything
// unknown falls back to the default column, anything but "desc" sorts
// ascending.
func orderClause(allowed map[string]string, field, fallback, order string) string {
	col, ok := allowed[field]
	if !ok {
		col = fallback
	}
	dir := "ASC"
	if strings.EqualFold(order, "desc") {
		dir = "DESC"
	}
	return col + " " + dir
}

// nullFloatPtr converts an aggregate column that is NULL when no ratings
// exist into a nil pointer.
func nullFloatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}
