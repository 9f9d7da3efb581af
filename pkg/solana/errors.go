package solana

import (
	"fmt"
)

// ProgramError is a host-native instruction error, surfaced to external
// callers by its string key.
//
// Source: https://github.com/solana-labs/solana/blob/4e2754341514cd181ae3f373cc2548bd22e918b8/sdk/program/src/instruction.rs#L23
type ProgramError string

func (e ProgramError) Error() string {
	return string(e)
}

const (
	ErrMissingRequiredSignature  ProgramError = "MissingRequiredSignature"
	ErrIncorrectProgramID        ProgramError = "IncorrectProgramId"
	ErrAccountAlreadyInitialized ProgramError = "AccountAlreadyInitialized"
	ErrUninitializedAccount      ProgramError = "UninitializedAccount"
	ErrInvalidAccountData        ProgramError = "InvalidAccountData"
	ErrNotEnoughAccountKeys      ProgramError = "NotEnoughAccountKeys"
)

// CustomError is the numerical error returned by a non-system program.
// The host surfaces the code to the external caller verbatim.
type CustomError int

func (c CustomError) Error() string {
	return fmt.Sprintf("custom program error: %#x", int(c))
}
