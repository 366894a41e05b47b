package minter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smartzplatform/minter-service/internal/model"
)

// Submit resolutions reported to metrics.
const (
	SubmitSubmitted = "submitted"
	SubmitDuplicate = "duplicate"
	SubmitRejected  = "rejected"
	SubmitTransient = "transient"
	SubmitStoreDown = "store_unavailable"
)

// Coordinator guarantees at most one ledger-mutating submission per mint
// id under arbitrary concurrent and repeated submit calls. The reservation
// in the idempotency store strictly precedes the ledger call; no lock is
// held across the (slow) submission itself.
type Coordinator struct {
	store   IdempotencyStore
	ledger  LedgerClient
	journal Journal
	metrics CoordinatorMetrics
	logger  *zap.Logger
}

// NewCoordinator builds a Coordinator with dependencies. journal may be
// nil when no audit backend is configured.
func NewCoordinator(store IdempotencyStore, ledger LedgerClient, journal Journal, m CoordinatorMetrics, logger *zap.Logger) (*Coordinator, error) {
	if store == nil {
		return nil, errors.New("idempotency store is required")
	}
	if ledger == nil {
		return nil, errors.New("ledger client is required")
	}
	if m == nil {
		return nil, errors.New("coordinator metrics is required")
	}
	if journal == nil {
		journal = noopJournal{}
	}

	return &Coordinator{
		store:   store,
		ledger:  ledger,
		journal: journal,
		metrics: m,
		logger:  logger.Named("coordinator"),
	}, nil
}

// Submit performs the reserve-then-mint sequence for a request. It is safe
// to call repeatedly and concurrently with identical or differing
// arguments: once a record exists for the id, the ledger is never
// contacted again for it.
//
// A non-nil Outcome is returned together with ErrIdentifierMismatch and
// transient errors; callers treat those as "still pending / already
// processed", not as hard failures.
func (c *Coordinator) Submit(ctx context.Context, req model.MintRequest) (model.Outcome, error) {
	started := time.Now()

	created, rec, err := c.store.Reserve(ctx, req.ID, req.Recipient, req.Amount)
	if err != nil {
		c.metrics.ObserveSubmit(SubmitStoreDown, started)
		return model.Outcome{}, fmt.Errorf("reserve %s: %w", req.ID, err)
	}

	if !created {
		if !rec.Matches(req) {
			c.metrics.ObserveMismatch()
			c.metrics.ObserveSubmit(SubmitDuplicate, started)
			c.logger.Warn("mint id reused with different arguments",
				zap.String("mint_id", string(req.ID)),
				zap.String("stored_recipient", rec.Recipient),
				zap.String("request_recipient", req.Recipient),
			)
			c.append(ctx, rec, model.EventMismatch)
			return model.Outcome{Record: rec}, model.ErrIdentifierMismatch
		}

		c.metrics.ObserveSubmit(SubmitDuplicate, started)
		return model.Outcome{Record: rec}, nil
	}

	c.append(ctx, rec, model.EventReserved)

	ref, err := c.ledger.Mint(ctx, req.ID, req.Recipient, req.Amount)
	switch {
	case err == nil:
	case errors.Is(err, model.ErrLedgerRejected):
		c.metrics.ObserveSubmit(SubmitRejected, started)
		if updateErr := c.store.UpdateStatus(ctx, req.ID, model.MintFailed, ""); updateErr != nil {
			c.logger.Error("record rejected mint", zap.String("mint_id", string(req.ID)), zap.Error(updateErr))
		}
		rec.Status = model.MintFailed
		c.append(ctx, rec, model.EventFailed)
		return model.Outcome{Record: rec, Created: true}, err
	default:
		// Ambiguous outcome: the submission may or may not have gone
		// out. The record stays pending and a status query, never a
		// resubmission, reconciles it against the ledger.
		c.metrics.ObserveSubmit(SubmitTransient, started)
		return model.Outcome{Record: rec, Created: true}, err
	}

	rec.SubmissionRef = ref
	if updateErr := c.store.UpdateStatus(ctx, req.ID, model.MintPending, ref); updateErr != nil {
		// The mint was sent; losing the reference is recoverable via
		// the processed-id fallback, resubmitting is not.
		c.logger.Error("record submission reference",
			zap.String("mint_id", string(req.ID)),
			zap.String("tx", ref),
			zap.Error(updateErr),
		)
	}
	c.append(ctx, rec, model.EventSubmitted)
	c.metrics.ObserveSubmit(SubmitSubmitted, started)

	return model.Outcome{Record: rec, Created: true}, nil
}

func (c *Coordinator) append(ctx context.Context, rec model.MintRecord, kind model.EventKind) {
	event := model.MintEvent{
		EventID:       uuid.NewString(),
		MintID:        rec.ID,
		Kind:          kind,
		Recipient:     rec.Recipient,
		Amount:        rec.Amount,
		SubmissionRef: rec.SubmissionRef,
		OccurredAt:    time.Now().UTC(),
	}
	if err := c.journal.Append(ctx, event); err != nil {
		c.logger.Warn("journal append failed", zap.String("mint_id", string(rec.ID)), zap.Error(err))
	}
}
