package minter

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/smartzplatform/minter-service/internal/clock"
	"github.com/smartzplatform/minter-service/internal/model"
	"github.com/smartzplatform/minter-service/pkg/workerpool"
)

const (
	defaultStaleAfter        = 30 * time.Second
	defaultBatchSize         = 100
	defaultWorkerCount       = 4
	defaultSleepDuration     = 10 * time.Second
	defaultLongSleepDuration = time.Minute
)

// ConfirmationWatcher periodically sweeps stale pending records and
// reconciles them against the ledger, upgrading those that reached the
// required confirmation depth. It performs the reconciliation writes the
// request path deliberately leaves to status queries.
type ConfirmationWatcher struct {
	store             IdempotencyStore
	resolver          *StatusResolver
	metrics           WatcherMetrics
	logger            *zap.Logger
	sleep             func(context.Context, time.Duration) error
	staleAfter        time.Duration
	batchSize         int
	workerCount       int
	sleepDuration     time.Duration
	longSleepDuration time.Duration
}

// NewConfirmationWatcher builds a ConfirmationWatcher with defaults.
func NewConfirmationWatcher(store IdempotencyStore, resolver *StatusResolver, metrics WatcherMetrics, logger *zap.Logger) (*ConfirmationWatcher, error) {
	if store == nil {
		return nil, errors.New("idempotency store is required")
	}
	if resolver == nil {
		return nil, errors.New("status resolver is required")
	}
	if metrics == nil {
		return nil, errors.New("watcher metrics is required")
	}

	return &ConfirmationWatcher{
		store:             store,
		resolver:          resolver,
		metrics:           metrics,
		logger:            logger.Named("watcher"),
		sleep:             clock.Sleep,
		staleAfter:        defaultStaleAfter,
		batchSize:         defaultBatchSize,
		workerCount:       defaultWorkerCount,
		sleepDuration:     defaultSleepDuration,
		longSleepDuration: defaultLongSleepDuration,
	}, nil
}

// Run starts the reconciliation loop until the context is canceled.
func (w *ConfirmationWatcher) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := w.run(ctx); err != nil {
			// A canceled context is a shutdown, not a failed iteration.
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", w.sleepDuration))
			if sleepErr := w.sleep(ctx, w.sleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (w *ConfirmationWatcher) run(ctx context.Context) error {
	started := time.Now()
	records, err := w.store.StalePending(ctx, w.staleAfter, w.batchSize)
	w.metrics.ObserveFetchPending(err, started)
	if err != nil {
		w.logger.Error("fetch stale pending records failed", zap.Error(err))
		return err
	}

	if len(records) == 0 {
		w.logger.Debug("no stale pending records; sleeping", zap.Duration("sleep", w.longSleepDuration))
		return w.sleep(ctx, w.longSleepDuration)
	}

	w.logger.Info("reconciling pending records", zap.Int("records", len(records)))
	started = time.Now()
	err = workerpool.Run(ctx, w.workerCount, records, w.reconcile)
	w.metrics.ObserveResolveBatch(err, len(records), started)
	if err != nil {
		return err
	}

	return w.sleep(ctx, w.sleepDuration)
}

// reconcile resolves a single record. Per-record failures are logged and
// swallowed so one stuck submission cannot stall the sweep; context
// cancellation still aborts the pool.
func (w *ConfirmationWatcher) reconcile(ctx context.Context, rec model.MintRecord) error {
	info, err := w.resolver.Reconcile(ctx, rec)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		w.logger.Warn("reconcile record failed", zap.String("mint_id", string(rec.ID)), zap.Error(err))
		return nil
	}

	if info.Record.Status != rec.Status {
		w.logger.Info("record reconciled",
			zap.String("mint_id", string(rec.ID)),
			zap.String("status", string(info.Record.Status)),
			zap.Uint64("confirmations", info.Confirmations),
		)
	}
	return nil
}
