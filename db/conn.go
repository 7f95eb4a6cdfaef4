package db

import (
	"context"
	"time"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/starshine-sys/rsvp/common/log"
)

// LongQueryThreshold is how long a query can take before a warning is logged.
const LongQueryThreshold = 250 * time.Millisecond

// Querier is any object that can query the database.
type Querier interface {
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
}

var _ Querier = (*DB)(nil)
var _ pgxscan.Querier = (*DB)(nil)

func warnIfSlow(query string, start time.Time) {
	if d := time.Since(start); d > LongQueryThreshold {
		log.Warnf("Query %q took %v", query, d.Round(time.Microsecond))
	}
}

// Query queries the database and returns a pgx.Rows.
func (db *DB) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	defer warnIfSlow(query, time.Now())

	return db.Pool.Query(ctx, query, args...)
}

// QueryRow queries the database and returns a pgx.Row
func (db *DB) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	defer warnIfSlow(query, time.Now())

	return db.Pool.QueryRow(ctx, query, args...)
}

// Exec executes a query on the database.
func (db *DB) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	defer warnIfSlow(query, time.Now())

	return db.Pool.Exec(ctx, query, args...)
}
