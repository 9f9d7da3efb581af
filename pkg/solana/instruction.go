package solana

import (
	"crypto/ed25519"
)

// AccountMeta represents the account information required
// for building instructions.
type AccountMeta struct {
	PublicKey  ed25519.PublicKey
	IsSigner   bool
	IsWritable bool
}

// NewAccountMeta creates a new AccountMeta representing a writable
// account.
func NewAccountMeta(pub ed25519.PublicKey, isSigner bool) AccountMeta {
	return AccountMeta{
		PublicKey:  pub,
		IsSigner:   isSigner,
		IsWritable: true,
	}
}

// NewReadonlyAccountMeta creates a new AccountMeta representing a readonly
// account.
func NewReadonlyAccountMeta(pub ed25519.PublicKey, isSigner bool) AccountMeta {
	return AccountMeta{
		PublicKey:  pub,
		IsSigner:   isSigner,
		IsWritable: false,
	}
}

// Instruction represents a single program invocation request.
type Instruction struct {
	Program  ed25519.PublicKey
	Accounts []AccountMeta
	Data     []byte
}

// NewInstruction creates a new instruction.
func NewInstruction(program ed25519.PublicKey, data []byte, accounts ...AccountMeta) Instruction {
	return Instruction{
		Program:  program,
		Data:     data,
		Accounts: accounts,
	}
}

// Seeds proves authority over a program derived address. The host re-derives
// the address from the seeds and the invoking program's id; a match counts
// as that address having signed the request, even though no private key
// exists for it.
type Seeds [][]byte

// Invoker issues cross-program requests on behalf of the running program.
//
// Signatures on the enclosing invocation extend to the issued request.
// Each Seeds entry additionally marks the corresponding derived address as
// a signer. The host executes the request synchronously; an error aborts
// the enclosing invocation and rolls back every write it attempted.
type Invoker interface {
	Invoke(instruction Instruction, signers ...Seeds) error
}
