package solana

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"
)

// AccountInfo is the host runtime's view of a single account handed to a
// program invocation. Lamports and Data are mutable views; the host commits
// or discards every mutation atomically with the enclosing invocation.
type AccountInfo struct {
	Key ed25519.PublicKey

	// Owner is the program that owns the account, not the user that
	// controls it.
	Owner ed25519.PublicKey

	Lamports uint64
	Data     []byte

	IsSigner   bool
	IsWritable bool
}

// IsOwnedBy returns whether the account's owning program is program.
func (a *AccountInfo) IsOwnedBy(program ed25519.PublicKey) bool {
	return bytes.Equal(a.Owner, program)
}

// AccountList consumes a positional account slice in declaration order.
//
// Programs never index into the raw slice directly; each Next() call names
// the account it expects so an underflow error reports exactly which
// position was left unfilled by the caller.
type AccountList struct {
	accounts []*AccountInfo
	position int
}

func NewAccountList(accounts []*AccountInfo) *AccountList {
	return &AccountList{accounts: accounts}
}

// Next returns the account at the current position, advancing the list.
func (l *AccountList) Next(label string) (*AccountInfo, error) {
	if l.position >= len(l.accounts) {
		return nil, errors.Wrapf(ErrNotEnoughAccountKeys, "missing account %d (%s)", l.position, label)
	}

	account := l.accounts[l.position]
	l.position++

	if account == nil {
		return nil, errors.Errorf("nil account at %d (%s)", l.position-1, label)
	}

	return account, nil
}

// Remaining returns the number of unconsumed accounts.
func (l *AccountList) Remaining() int {
	return len(l.accounts) - l.position
}
