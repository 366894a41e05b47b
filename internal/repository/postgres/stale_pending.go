package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/smartzplatform/minter-service/internal/model"
)

// StalePending returns pending records that have not been updated for at
// least olderThan, oldest first. The confirmation watcher reconciles them
// against the ledger.
func (r *Repository) StalePending(ctx context.Context, olderThan time.Duration, limit int) (records []model.MintRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("stale_pending", err, start)
	}()

	const query = `
SELECT mint_id, recipient, amount::text, submission_ref, status, created_at, updated_at
FROM mint_records
WHERE status = 'pending' AND updated_at < now() - ($1 * interval '1 second')
ORDER BY updated_at
LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, olderThan.Seconds(), limit)
	if err != nil {
		return nil, unavailable("query stale pending records", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		rec, scanErr := scanRecord(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan stale pending record: %w", scanErr)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, unavailable("iterate stale pending records", err)
	}

	return records, nil
}
