// internal/repository/postgres/db.go
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
)

type DB struct {
	pool *pgxpool.Pool
}

func NewDB(pool *pgxpool.Pool) *DB {
	return &DB{pool: pool}
}

func (db *DB) Begin(ctx context.Context) (pgx.Tx, error) {
	return db.pool.Begin(ctx)
}

func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// newID mints a ULID for a fresh row.
func newID() string {
	return ulid.Make().String()
}

// wellFormedID reports whether id parses as a ULID. Malformed identifiers
// resolve to not-found instead of reaching the database.
func wellFormedID(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}
