// Package postgres implements the durable idempotency store on PostgreSQL.
package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"time"

	_ "github.com/lib/pq"

	"github.com/smartzplatform/minter-service/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Repository provides mint record storage backed by PostgreSQL. The
// insert-if-absent reserve is the only concurrency-control point of the
// whole gateway.
type Repository struct {
	db      *sql.DB
	metrics Metrics
}

// NewRepository opens a connection pool for the given DSN.
func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}
	db.SetMaxOpenConns(16)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &Repository{db: db, metrics: metrics}, nil
}

// Close releases the underlying connection pool.
func (r *Repository) Close() error {
	return r.db.Close()
}

// unavailable wraps a driver failure so callers can fail closed on
// model.ErrStoreUnavailable.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, model.ErrStoreUnavailable, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (model.MintRecord, error) {
	var (
		rec    model.MintRecord
		amount string
	)
	if err := row.Scan(&rec.ID, &rec.Recipient, &amount, &rec.SubmissionRef, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return model.MintRecord{}, err
	}

	value, ok := new(big.Int).SetString(amount, 10)
	if !ok {
		return model.MintRecord{}, fmt.Errorf("parse stored amount %q", amount)
	}
	rec.Amount = value

	return rec, nil
}
