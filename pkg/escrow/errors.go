package escrow

import (
	"github.com/code-escrow/escrow-program/pkg/solana"
)

// Custom error codes surfaced by the escrow program. The host reports the
// numeric code to the external caller verbatim.
const (
	// ErrInvalidInstruction is returned when the instruction data cannot
	// be decoded.
	ErrInvalidInstruction solana.CustomError = iota
	// ErrNotRentExempt is returned when the escrow account's balance is
	// insufficient for it to be exempt from rent collection.
	ErrNotRentExempt
	// ErrExpectedAmountMismatch is returned when the custody account's
	// balance differs from the amount the taker expects.
	ErrExpectedAmountMismatch
	// ErrAmountOverflow is returned when crediting reclaimed rent would
	// overflow the initializer's balance.
	ErrAmountOverflow
)
