package postgres

import (
	"context"
	"database/sql"
	"errors"
	"math/big"
	"time"

	"github.com/smartzplatform/minter-service/internal/model"
)

// Reserve atomically claims a mint id before any ledger interaction.
// Exactly one concurrent caller gets created == true; all others receive
// the already stored record. A driver failure wraps
// model.ErrStoreUnavailable so the caller never mints without a durable
// reservation.
func (r *Repository) Reserve(ctx context.Context, id model.MintID, recipient string, amount *big.Int) (created bool, rec model.MintRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("reserve", err, start)
	}()

	const query = `
INSERT INTO mint_records (mint_id, recipient, amount, status)
VALUES ($1, $2, $3::numeric, 'pending')
ON CONFLICT (mint_id) DO NOTHING
RETURNING mint_id, recipient, amount::text, submission_ref, status, created_at, updated_at`

	rec, err = scanRecord(r.db.QueryRowContext(ctx, query, id, recipient, amount.String()))
	if err == nil {
		return true, rec, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, model.MintRecord{}, unavailable("reserve mint record", err)
	}

	// Lost the race: the id is already reserved. The conflicting insert
	// has committed by the time ON CONFLICT resolves, so the read below
	// always observes it.
	rec, err = r.get(ctx, id)
	if err != nil {
		return false, model.MintRecord{}, err
	}

	return false, rec, nil
}
