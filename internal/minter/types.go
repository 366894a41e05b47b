// Package minter contains the idempotency-guarded mint dispatch core.
package minter

import (
	"context"
	"math/big"
	"time"

	"github.com/smartzplatform/minter-service/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// IdempotencyStore is the durable record of reserved mint ids. Its
	// Reserve is the sole serialization point of the gateway.
	IdempotencyStore interface {
		Reserve(ctx context.Context, id model.MintID, recipient string, amount *big.Int) (created bool, rec model.MintRecord, err error)
		UpdateStatus(ctx context.Context, id model.MintID, status model.MintStatus, submissionRef string) error
		Get(ctx context.Context, id model.MintID) (model.MintRecord, error)
		StalePending(ctx context.Context, olderThan time.Duration, limit int) ([]model.MintRecord, error)
	}

	// LedgerClient is the abstract minting capability. The gateway only
	// observes the ledger; it never locks it.
	LedgerClient interface {
		Mint(ctx context.Context, id model.MintID, recipient string, amount *big.Int) (ref string, err error)
		ConfirmationDepth(ctx context.Context, ref string) (uint64, error)
		Processed(ctx context.Context, id model.MintID, depth uint64) (bool, error)
		Syncing(ctx context.Context) (bool, error)
	}

	// Journal is a best-effort audit sink for lifecycle events.
	Journal interface {
		Append(ctx context.Context, event model.MintEvent) error
	}

	CoordinatorMetrics interface {
		ObserveSubmit(resolution string, started time.Time)
		ObserveMismatch()
	}

	WatcherMetrics interface {
		ObserveFetchPending(err error, started time.Time)
		ObserveResolveBatch(err error, records int, started time.Time)
	}
)

// noopJournal stands in when no journal backend is configured.
type noopJournal struct{}

func (noopJournal) Append(context.Context, model.MintEvent) error { return nil }
