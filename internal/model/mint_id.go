package model

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrEmptyMintID is returned when a caller supplies an empty identifier.
var ErrEmptyMintID = errors.New("empty mint id")

// NewMintID derives the storage key for a caller-supplied identifier.
// Callers send opaque strings of arbitrary length; hashing gives the store
// and the ledger contract a fixed 32-byte key.
func NewMintID(raw string) (MintID, error) {
	if raw == "" {
		return "", ErrEmptyMintID
	}
	return MintID(crypto.Keccak256Hash([]byte(raw)).Hex()), nil
}

// Hash returns the 32-byte form of the id as submitted to the ledger.
func (id MintID) Hash() common.Hash {
	return common.HexToHash(string(id))
}
