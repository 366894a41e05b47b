package postgres

import (
	"context"
	"time"

	"github.com/smartzplatform/minter-service/internal/model"
)

// UpdateStatus moves a pending record to the given status and records the
// submission reference. Terminal records are never overwritten, so the
// pending -> confirmed reconciliation write is safe to apply redundantly.
func (r *Repository) UpdateStatus(ctx context.Context, id model.MintID, status model.MintStatus, submissionRef string) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("update_status", err, start)
	}()

	const query = `
UPDATE mint_records
SET status = $2, submission_ref = $3, updated_at = now()
WHERE mint_id = $1 AND status = 'pending'`

	res, err := r.db.ExecContext(ctx, query, id, status, submissionRef)
	if err != nil {
		return unavailable("update mint record", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return unavailable("update mint record", err)
	}
	if affected > 0 {
		return nil
	}

	// Nothing updated: either the id is unknown or the record already
	// reached a terminal state. The latter is a no-op, not an error.
	if _, err = r.get(ctx, id); err != nil {
		return err
	}

	return nil
}
