package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/smartzplatform/minter-service/internal/model"
)

// Get returns the record for a mint id, or model.ErrNotFound.
func (r *Repository) Get(ctx context.Context, id model.MintID) (rec model.MintRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("get", err, start)
	}()

	return r.get(ctx, id)
}

func (r *Repository) get(ctx context.Context, id model.MintID) (model.MintRecord, error) {
	const query = `
SELECT mint_id, recipient, amount::text, submission_ref, status, created_at, updated_at
FROM mint_records
WHERE mint_id = $1`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.MintRecord{}, model.ErrNotFound
	}
	if err != nil {
		return model.MintRecord{}, unavailable("get mint record", err)
	}

	return rec, nil
}
