package clickhouse

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/smartzplatform/minter-service/internal/model"
	"github.com/smartzplatform/minter-service/pkg/batcher"
)

type (
	Metrics interface {
		ObserveFlush(err error, events int, started time.Time)
	}
)

// Journal buffers mint events and flushes them to ClickHouse in batches.
// Writes are best effort: a journal outage is logged and never affects the
// idempotency decision.
type Journal struct {
	repo    *Repository
	batcher *batcher.Batcher[model.MintEvent]
}

// NewJournal builds a Journal over the given repository.
func NewJournal(repo *Repository, metrics Metrics, logger *zap.Logger, flushSize int, flushInterval time.Duration, rps int) *Journal {
	j := &Journal{repo: repo}
	j.batcher = batcher.New(logger.Named("journal"), func(ctx context.Context, events []model.MintEvent) error {
		started := time.Now()
		err := repo.InsertEvents(ctx, events)
		metrics.ObserveFlush(err, len(events), started)
		return err
	}, flushSize, flushInterval, rps)
	return j
}

// Start begins the background flushing loop.
func (j *Journal) Start(ctx context.Context) {
	j.batcher.Start(ctx)
}

// Stop flushes remaining events and stops the loop.
func (j *Journal) Stop() {
	j.batcher.Stop()
}

// Append queues one event. Only context cancellation is reported back.
func (j *Journal) Append(ctx context.Context, event model.MintEvent) error {
	return j.batcher.Add(ctx, event)
}
