// Package clickhouse implements the append-only mint event journal.
package clickhouse

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"

	"github.com/smartzplatform/minter-service/internal/model"
)

// Repository stores mint lifecycle events in ClickHouse.
type Repository struct {
	conn clickhouse.Conn
}

// NewRepository opens a ClickHouse connection for the given DSN.
func NewRepository(dsn string) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn}, nil
}

// InsertEvents stores event rows in ClickHouse.
func (r *Repository) InsertEvents(ctx context.Context, events []model.MintEvent) error {
	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO mint_events (
	event_id,
	mint_id,
	kind,
	recipient,
	amount,
	submission_ref,
	occurred_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}

	for _, event := range events {
		if err = batch.Append(
			event.EventID,
			string(event.MintID),
			string(event.Kind),
			event.Recipient,
			event.Amount,
			event.SubmissionRef,
			event.OccurredAt,
		); err != nil {
			return fmt.Errorf("append event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}
