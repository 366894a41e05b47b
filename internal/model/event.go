package model

import (
	"math/big"
	"time"
)

// EventKind describes a lifecycle transition recorded in the mint journal.
type EventKind string

var (
	// EventReserved is emitted when a mint id is reserved in the store.
	EventReserved EventKind = "reserved"
	// EventSubmitted is emitted after the ledger accepted the submission.
	EventSubmitted EventKind = "submitted"
	// EventConfirmed is emitted when a submission is observed as final.
	EventConfirmed EventKind = "confirmed"
	// EventFailed is emitted when the ledger rejected the submission.
	EventFailed EventKind = "failed"
	// EventMismatch is emitted when a mint id is reused with different
	// recipient or amount.
	EventMismatch EventKind = "mismatch"
)

// MintEvent is one append-only journal row. The journal is a best-effort
// audit trail, never an input to the idempotency decision.
type MintEvent struct {
	EventID       string
	MintID        MintID
	Kind          EventKind
	Recipient     string
	Amount        *big.Int
	SubmissionRef string
	OccurredAt    time.Time
}
