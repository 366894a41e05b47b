// Package batcher accumulates items and writes them out in size- or
// time-triggered batches.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// FlushFunc writes one accumulated batch to its destination.
type FlushFunc[T any] func(context.Context, []T) error

// Batcher collects items and hands them to a FlushFunc once maxSize items
// accumulated or maxWait elapsed, whichever comes first. Flushes are paced
// by a per-second rate limit so a burst of items cannot hammer the sink.
type Batcher[T any] struct {
	flush   FlushFunc[T]
	queue   chan T
	maxSize int
	maxWait time.Duration
	limiter ratelimit.Limiter
	logger  *zap.Logger

	quit     chan struct{}
	stopOnce sync.Once
	done     sync.WaitGroup
}

// New constructs a Batcher. Start must be called before items are drained.
func New[T any](logger *zap.Logger, flush FlushFunc[T], maxSize int, maxWait time.Duration, flushesPerSecond int) *Batcher[T] {
	return &Batcher[T]{
		flush:   flush,
		queue:   make(chan T, maxSize*2),
		maxSize: maxSize,
		maxWait: maxWait,
		limiter: ratelimit.New(flushesPerSecond),
		logger:  logger,
		quit:    make(chan struct{}),
	}
}

// Start launches the draining goroutine.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.done.Add(1)
	go b.drain(ctx)
}

// Stop flushes whatever is buffered and stops the draining goroutine. Safe
// to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.quit)
	})
	b.done.Wait()
}

// Add queues one item. It blocks while the queue is full and reports only
// context cancellation or a stopped batcher.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.quit:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.queue <- item:
		return nil
	}
}

func (b *Batcher[T]) drain(ctx context.Context) {
	defer b.done.Done()

	ticker := time.NewTicker(b.maxWait)
	defer ticker.Stop()

	batch := make([]T, 0, b.maxSize)

	write := func() {
		if len(batch) == 0 {
			return
		}

		b.limiter.Take()
		if err := b.flush(ctx, batch); err != nil {
			b.logger.Error("batch flush failed", zap.Int("size", len(batch)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
		}
		batch = batch[:0]
	}

	for {
		select {
		case <-ctx.Done():
			write()
			return

		case <-b.quit:
			// Drain what producers already queued before going down.
			for {
				select {
				case item := <-b.queue:
					batch = append(batch, item)
					if len(batch) >= b.maxSize {
						write()
					}
				default:
					write()
					return
				}
			}

		case item := <-b.queue:
			batch = append(batch, item)
			if len(batch) >= b.maxSize {
				write()
			}

		case <-ticker.C:
			write()
		}
	}
}
