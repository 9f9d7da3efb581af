// Package escrow defines the persisted state and error codes of the
// token-swap escrow program.
//
// An escrow account holds exactly one Escrow record: the terms of one
// pending swap and the identities of the parties to it. The record is
// write-once. It is populated by the init instruction and erased for good
// when the exchange instruction settles the swap.
package escrow

import (
	"crypto/ed25519"

	"github.com/code-escrow/escrow-program/pkg/solana"
	"github.com/code-escrow/escrow-program/pkg/solana/binary"
)

// StateSize is the serialized size of an Escrow record:
// initialized flag (1) | initializer (32) | custody account (32) |
// receiving account (32) | expected amount, little-endian u64 (8).
const StateSize = 105

// Escrow is the persisted record of one pending swap.
type Escrow struct {
	// Whether the record is populated. Set exactly once, by the init
	// instruction; never cleared except by the exchange instruction
	// closing the whole record.
	IsInitialized bool
	// The account that created the escrow. Receives token B and the
	// reclaimed rent when the swap settles.
	Initializer ed25519.PublicKey
	// The temporary token A account this escrow governs. Its authority is
	// held by the program's derived authority for the escrow's lifetime.
	CustodyAccount ed25519.PublicKey
	// The initializer's token B account.
	ReceivingAccount ed25519.PublicKey
	// The token B amount the initializer demands.
	ExpectedAmount uint64
}

func (e *Escrow) Marshal() []byte {
	b := make([]byte, StateSize)

	var offset int
	binary.PutBool(b, e.IsInitialized, &offset)
	binary.PutKey32(b[offset:], e.Initializer, &offset)
	binary.PutKey32(b[offset:], e.CustodyAccount, &offset)
	binary.PutKey32(b[offset:], e.ReceivingAccount, &offset)
	binary.PutUint64(b[offset:], e.ExpectedAmount, &offset)

	return b
}

// Unmarshal decodes a populated record. It fails on buffers of the wrong
// shape and on records whose initialized flag is not set. Field semantics
// are not validated here; that is the processor's job.
func (e *Escrow) Unmarshal(b []byte) error {
	if err := e.UnmarshalUnchecked(b); err != nil {
		return err
	}
	if !e.IsInitialized {
		return solana.ErrUninitializedAccount
	}

	return nil
}

// UnmarshalUnchecked decodes a record without requiring the initialized
// flag to be set, so a freshly allocated all-zero account can be inspected
// for "not yet initialized" without treating it as corruption.
func (e *Escrow) UnmarshalUnchecked(b []byte) error {
	if len(b) < StateSize {
		return solana.ErrInvalidAccountData
	}
	if b[0] > 1 {
		return solana.ErrInvalidAccountData
	}

	var offset int
	binary.GetBool(b, &e.IsInitialized, &offset)
	binary.GetKey32(b[offset:], &e.Initializer, &offset)
	binary.GetKey32(b[offset:], &e.CustodyAccount, &offset)
	binary.GetKey32(b[offset:], &e.ReceivingAccount, &offset)
	binary.GetUint64(b[offset:], &e.ExpectedAmount, &offset)

	return nil
}
