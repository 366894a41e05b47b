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

// StatusResolver answers status queries, enriching pending records with
// live confirmation depth. It is read-only except for the pending ->
// confirmed/failed reconciliation write, which only ever moves a record
// forward and is safe to apply redundantly.
type StatusResolver struct {
	store                 IdempotencyStore
	ledger                LedgerClient
	journal               Journal
	requiredConfirmations uint64
	logger                *zap.Logger
}

// NewStatusResolver builds a StatusResolver. requiredConfirmations is the
// depth at which a submission counts as final; zero confirms on first
// sighting of a successful receipt.
func NewStatusResolver(store IdempotencyStore, ledger LedgerClient, journal Journal, requiredConfirmations uint64, logger *zap.Logger) (*StatusResolver, error) {
	if store == nil {
		return nil, errors.New("idempotency store is required")
	}
	if ledger == nil {
		return nil, errors.New("ledger client is required")
	}
	if journal == nil {
		journal = noopJournal{}
	}

	return &StatusResolver{
		store:                 store,
		ledger:                ledger,
		journal:               journal,
		requiredConfirmations: requiredConfirmations,
		logger:                logger.Named("resolver"),
	}, nil
}

// Status resolves the current state of a mint id. An unknown id is
// reported as model.ErrNodeSyncing rather than model.ErrNotFound while
// the ledger node is still catching up, since the mint may simply not be
// visible yet.
func (r *StatusResolver) Status(ctx context.Context, id model.MintID) (model.StatusInfo, error) {
	rec, err := r.store.Get(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		if syncing, syncErr := r.ledger.Syncing(ctx); syncErr == nil && syncing {
			return model.StatusInfo{}, fmt.Errorf("get %s: %w", id, model.ErrNodeSyncing)
		}
		return model.StatusInfo{}, fmt.Errorf("get %s: %w", id, err)
	}
	if err != nil {
		return model.StatusInfo{}, fmt.Errorf("get %s: %w", id, err)
	}

	return r.Reconcile(ctx, rec)
}

// Reconcile resolves one record against the ledger. Terminal records are
// returned as stored; pending records are checked for confirmation depth
// and upgraded once the required depth is observed. Transient ledger
// failures leave the record pending and are not surfaced as errors.
func (r *StatusResolver) Reconcile(ctx context.Context, rec model.MintRecord) (model.StatusInfo, error) {
	if rec.Status.Terminal() {
		return model.StatusInfo{Record: rec}, nil
	}

	if rec.SubmissionRef == "" {
		return r.reconcileWithoutRef(ctx, rec)
	}

	depth, err := r.ledger.ConfirmationDepth(ctx, rec.SubmissionRef)
	switch {
	case errors.Is(err, model.ErrLedgerRejected):
		return r.markFailed(ctx, rec)
	case model.IsLedgerTransient(err):
		r.logger.Debug("confirmation check unavailable", zap.String("mint_id", string(rec.ID)), zap.Error(err))
		return r.pendingInfo(rec, 0), nil
	case err != nil:
		return model.StatusInfo{}, fmt.Errorf("confirmation depth for %s: %w", rec.ID, err)
	}

	if depth > 0 && depth >= r.requiredConfirmations {
		return r.markConfirmed(ctx, rec, depth)
	}

	return r.pendingInfo(rec, depth), nil
}

// reconcileWithoutRef handles records whose submission reference was lost,
// e.g. a crash between the ledger send and the reference write. The
// contract's processed-id registry is the source of truth there: querying
// it at requiredConfirmations blocks behind the head proves the mint is
// both executed and buried at the required depth, with no reference to
// measure against.
func (r *StatusResolver) reconcileWithoutRef(ctx context.Context, rec model.MintRecord) (model.StatusInfo, error) {
	processed, err := r.ledger.Processed(ctx, rec.ID, r.requiredConfirmations)
	if err != nil {
		if model.IsLedgerTransient(err) {
			return r.pendingInfo(rec, 0), nil
		}
		return model.StatusInfo{}, fmt.Errorf("processed lookup for %s: %w", rec.ID, err)
	}

	if processed {
		return r.markConfirmed(ctx, rec, r.requiredConfirmations)
	}

	// Not executed at the required depth yet, or never submitted at all.
	return r.pendingInfo(rec, 0), nil
}

func (r *StatusResolver) markConfirmed(ctx context.Context, rec model.MintRecord, depth uint64) (model.StatusInfo, error) {
	if err := r.store.UpdateStatus(ctx, rec.ID, model.MintConfirmed, rec.SubmissionRef); err != nil {
		return model.StatusInfo{}, fmt.Errorf("confirm %s: %w", rec.ID, err)
	}
	rec.Status = model.MintConfirmed
	r.append(ctx, rec, model.EventConfirmed)

	return model.StatusInfo{Record: rec, Confirmations: depth}, nil
}

func (r *StatusResolver) markFailed(ctx context.Context, rec model.MintRecord) (model.StatusInfo, error) {
	if err := r.store.UpdateStatus(ctx, rec.ID, model.MintFailed, rec.SubmissionRef); err != nil {
		return model.StatusInfo{}, fmt.Errorf("fail %s: %w", rec.ID, err)
	}
	rec.Status = model.MintFailed
	r.append(ctx, rec, model.EventFailed)

	return model.StatusInfo{Record: rec}, nil
}

func (r *StatusResolver) pendingInfo(rec model.MintRecord, depth uint64) model.StatusInfo {
	remaining := uint64(0)
	if r.requiredConfirmations > depth {
		remaining = r.requiredConfirmations - depth
	}
	return model.StatusInfo{Record: rec, Confirmations: depth, RemainingConfirmations: remaining}
}

func (r *StatusResolver) append(ctx context.Context, rec model.MintRecord, kind model.EventKind) {
	event := model.MintEvent{
		EventID:       uuid.NewString(),
		MintID:        rec.ID,
		Kind:          kind,
		Recipient:     rec.Recipient,
		Amount:        rec.Amount,
		SubmissionRef: rec.SubmissionRef,
		OccurredAt:    time.Now().UTC(),
	}
	if err := r.journal.Append(ctx, event); err != nil {
		r.logger.Warn("journal append failed", zap.String("mint_id", string(rec.ID)), zap.Error(err))
	}
}
