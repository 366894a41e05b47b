// Package model defines domain models for the minting gateway.
package model

import (
	"math/big"
	"time"
)

// MintID is the storage key for one logical mint request: the hex-encoded
// keccak-256 hash of the opaque caller-supplied identifier.
type MintID string

// MintStatus describes the lifecycle state of a mint record.
type MintStatus string

var (
	// MintPending marks a record whose ledger submission is reserved,
	// in flight or acknowledged but not yet confirmed.
	MintPending MintStatus = "pending"
	// MintConfirmed marks a record whose ledger submission is final.
	MintConfirmed MintStatus = "confirmed"
	// MintFailed marks a record whose ledger submission was rejected
	// for a reason that will not change on retry.
	MintFailed MintStatus = "failed"
)

// Terminal reports whether the status can never change again.
func (s MintStatus) Terminal() bool {
	return s == MintConfirmed || s == MintFailed
}

// MintRequest is an accepted minting request. Immutable.
type MintRequest struct {
	ID        MintID
	Recipient string
	Amount    *big.Int
}

// MintRecord is the persisted outcome for one mint id. The id is the
// primary key and is never reused for a different recipient/amount pair.
type MintRecord struct {
	ID            MintID
	Recipient     string
	Amount        *big.Int
	SubmissionRef string
	Status        MintStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Matches reports whether the stored recipient/amount equal the request's.
func (r MintRecord) Matches(req MintRequest) bool {
	if r.Recipient != req.Recipient {
		return false
	}
	if r.Amount == nil || req.Amount == nil {
		return r.Amount == req.Amount
	}
	return r.Amount.Cmp(req.Amount) == 0
}

// Outcome is the caller-visible result of a submit call.
type Outcome struct {
	Record MintRecord
	// Created is true when this call won the reservation and performed
	// the ledger submission.
	Created bool
}

// StatusInfo is the caller-visible result of a status query.
type StatusInfo struct {
	Record                 MintRecord
	Confirmations          uint64
	RemainingConfirmations uint64
}
