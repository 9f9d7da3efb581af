// Package instruction defines the escrow program's wire format: a one byte
// command tag followed by a little-endian u64 amount operand.
package instruction

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/code-escrow/escrow-program/pkg/escrow"
	"github.com/code-escrow/escrow-program/pkg/solana"
	"github.com/code-escrow/escrow-program/pkg/solana/system"
	"github.com/code-escrow/escrow-program/pkg/solana/token"
)

const (
	tagInitEscrow byte = 0
	tagExchange   byte = 1
)

// Command is a decoded escrow instruction. The wire tag never escapes this
// package; the processor matches on the concrete type.
type Command interface {
	isCommand()
}

// InitEscrow starts a swap by populating the escrow record and moving the
// custody account under the program's derived authority.
type InitEscrow struct {
	// The amount of token B the initializer expects to receive.
	Amount uint64
}

// Exchange settles a swap atomically.
type Exchange struct {
	// The amount of token A the taker expects to be in custody. Protects
	// the taker from a stale or altered offer.
	Amount uint64
}

func (InitEscrow) isCommand() {}
func (Exchange) isCommand()   {}

// Unpack decodes raw instruction data into a Command. It is total over its
// input: every buffer either decodes fully or fails with
// escrow.ErrInvalidInstruction. Bytes beyond the amount operand are ignored.
func Unpack(data []byte) (Command, error) {
	if len(data) == 0 {
		return nil, escrow.ErrInvalidInstruction
	}

	tag, rest := data[0], data[1:]
	amount, err := unpackAmount(rest)
	if err != nil {
		return nil, err
	}

	switch tag {
	case tagInitEscrow:
		return InitEscrow{Amount: amount}, nil
	case tagExchange:
		return Exchange{Amount: amount}, nil
	default:
		return nil, escrow.ErrInvalidInstruction
	}
}

func unpackAmount(b []byte) (uint64, error) {
	if len(b) < 8 {
		return 0, escrow.ErrInvalidInstruction
	}

	return binary.LittleEndian.Uint64(b[:8]), nil
}

func packAmount(tag byte, amount uint64) []byte {
	data := make([]byte, 1+8)
	data[0] = tag
	binary.LittleEndian.PutUint64(data[1:], amount)
	return data
}

// NewInitEscrow builds the instruction that starts a swap.
func NewInitEscrow(program, initializer, custody, receiving, escrowAccount ed25519.PublicKey, amount uint64) solana.Instruction {
	// Accounts expected by this instruction:
	//
	//   0. `[signer]` The account of the person initializing the escrow.
	//   1. `[writable]` The temporary token A account, created prior to
	//      this instruction and owned by the initializer.
	//   2. `[]` The initializer's token B account.
	//   3. `[writable]` The escrow account holding the swap terms.
	//   4. `[]` The rent sysvar.
	//   5. `[]` The token program.
	return solana.NewInstruction(
		program,
		packAmount(tagInitEscrow, amount),
		solana.NewAccountMeta(initializer, true),
		solana.NewAccountMeta(custody, false),
		solana.NewReadonlyAccountMeta(receiving, false),
		solana.NewAccountMeta(escrowAccount, false),
		solana.NewReadonlyAccountMeta(system.RentSysVar, false),
		solana.NewReadonlyAccountMeta(token.ProgramKey, false),
	)
}

// NewExchange builds the instruction that settles a swap.
func NewExchange(program, taker, takerSend, takerReceive, custody, initializer, initializerReceive, escrowAccount, authority ed25519.PublicKey, amount uint64) solana.Instruction {
	// Accounts expected by this instruction:
	//
	//   0. `[signer]` The account of the person taking the swap.
	//   1. `[writable]` The taker's token B account.
	//   2. `[writable]` The taker's token A account.
	//   3. `[writable]` The custody (temporary token A) account.
	//   4. `[writable]` The initializer's main account, receives rent.
	//   5. `[writable]` The initializer's token B account.
	//   6. `[writable]` The escrow account holding the swap terms.
	//   7. `[]` The token program.
	//   8. `[]` The program's derived authority.
	return solana.NewInstruction(
		program,
		packAmount(tagExchange, amount),
		solana.NewAccountMeta(taker, true),
		solana.NewAccountMeta(takerSend, false),
		solana.NewAccountMeta(takerReceive, false),
		solana.NewAccountMeta(custody, false),
		solana.NewAccountMeta(initializer, false),
		solana.NewAccountMeta(initializerReceive, false),
		solana.NewAccountMeta(escrowAccount, false),
		solana.NewReadonlyAccountMeta(token.ProgramKey, false),
		solana.NewReadonlyAccountMeta(authority, false),
	)
}
