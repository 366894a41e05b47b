package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record exists for a mint id.
	ErrNotFound = errors.New("mint record not found")

	// ErrStoreUnavailable is returned when the durable store cannot be
	// reached. No ledger call is ever attempted in that case.
	ErrStoreUnavailable = errors.New("idempotency store unavailable")

	// ErrIdentifierMismatch is returned when a mint id is reused with a
	// different recipient or amount. The stored outcome still stands.
	ErrIdentifierMismatch = errors.New("mint id reused with different recipient or amount")

	// ErrLedgerRejected is returned when the ledger definitively refused
	// the submission. Retrying will not change the result.
	ErrLedgerRejected = errors.New("ledger rejected submission")

	// ErrNodeSyncing is returned for an unknown mint id while the ledger
	// node is still catching up with the chain: the mint may exist but
	// not be visible yet, so "not minted" would be a lie.
	ErrNodeSyncing = errors.New("ledger node is syncing")
)

// LedgerTransientError wraps a retryable ledger failure (timeout, node
// unreachable). The record stays pending and a later status query, not a
// resubmission, reconciles it.
type LedgerTransientError struct {
	Err error
}

func (e *LedgerTransientError) Error() string {
	return fmt.Sprintf("transient ledger failure: %v", e.Err)
}

func (e *LedgerTransientError) Unwrap() error { return e.Err }

// IsLedgerTransient reports whether err is a retryable ledger failure.
func IsLedgerTransient(err error) bool {
	var te *LedgerTransientError
	return errors.As(err, &te)
}
