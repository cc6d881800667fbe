// Package postgres implements the store contract on top of a pgx pool.
// Ids come from the tables' identity columns; every statement relies on
// Postgres' own per-statement atomicity.
package postgres

import (
	"errors"

	"github.com/codecpt/portfolio-api/internal/observability"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// NewStoreWithMetrics records per-operation latency and error class.
func NewStoreWithMetrics(pool *pgxpool.Pool, prom *observability.Prom) *Store {
	return &Store{pool: pool, prom: prom}
}

func (s *Store) observe(op string, fn func() error) error {
	if s.prom == nil {
		return fn()
	}

	return s.prom.ObserveDB(op, fn)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
