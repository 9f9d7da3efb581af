// Package processor implements the escrow program's state machine.
//
// The processor is stateless between invocations; all persisted state lives
// in the escrow account. Every failure is fatal to the enclosing invocation
// and the host rolls back all attempted writes, so no partial transition is
// ever observable.
package processor

import (
	"bytes"
	"crypto/ed25519"
	"math"

	"github.com/mr-tron/base58/base58"
	"github.com/sirupsen/logrus"

	"github.com/code-escrow/escrow-program/pkg/escrow"
	"github.com/code-escrow/escrow-program/pkg/escrow/instruction"
	"github.com/code-escrow/escrow-program/pkg/solana"
	"github.com/code-escrow/escrow-program/pkg/solana/system"
	"github.com/code-escrow/escrow-program/pkg/solana/token"
)

// AuthoritySeed is the static seed the program's custody authority is
// derived from. One derived authority is shared by every escrow the program
// ever creates; the token program's per-account bookkeeping keeps escrows
// isolated.
var AuthoritySeed = []byte("escrow")

// Processor applies escrow instructions to host-supplied accounts, issuing
// custody requests to the token program through the injected invoker.
type Processor struct {
	invoker solana.Invoker
	log     *logrus.Entry
}

func New(invoker solana.Invoker) *Processor {
	return &Processor{
		invoker: invoker,
		log:     logrus.StandardLogger().WithField("type", "escrow/processor"),
	}
}

// Process decodes raw instruction data and applies the requested transition.
func (p *Processor) Process(programID ed25519.PublicKey, accounts []*solana.AccountInfo, data []byte) error {
	cmd, err := instruction.Unpack(data)
	if err != nil {
		return err
	}

	switch cmd := cmd.(type) {
	case instruction.InitEscrow:
		p.log.Debug("instruction: init escrow")
		return p.processInitEscrow(programID, accounts, cmd.Amount)
	case instruction.Exchange:
		p.log.Debug("instruction: exchange")
		return p.processExchange(programID, accounts, cmd.Amount)
	default:
		return escrow.ErrInvalidInstruction
	}
}

func (p *Processor) processInitEscrow(programID ed25519.PublicKey, accounts []*solana.AccountInfo, amount uint64) error {
	accs, err := newInitEscrowAccounts(accounts)
	if err != nil {
		return err
	}

	// Moving the custody account under the program's authority requires
	// the current authority's approval.
	if !accs.Initializer.IsSigner {
		return solana.ErrMissingRequiredSignature
	}

	if !accs.Receiving.IsOwnedBy(token.ProgramKey) {
		return solana.ErrIncorrectProgramID
	}

	rent, err := system.RentFromAccount(accs.RentSysVar)
	if err != nil {
		return err
	}
	if !rent.IsExempt(accs.EscrowAccount.Lamports, len(accs.EscrowAccount.Data)) {
		return escrow.ErrNotRentExempt
	}

	var state escrow.Escrow
	if err := state.UnmarshalUnchecked(accs.EscrowAccount.Data); err != nil {
		return err
	}
	if state.IsInitialized {
		return solana.ErrAccountAlreadyInitialized
	}

	state.IsInitialized = true
	state.Initializer = accs.Initializer.Key
	state.CustodyAccount = accs.Custody.Key
	state.ReceivingAccount = accs.Receiving.Key
	state.ExpectedAmount = amount
	copy(accs.EscrowAccount.Data, state.Marshal())

	authority, _, err := solana.FindProgramAddressAndBump(programID, AuthoritySeed)
	if err != nil {
		return err
	}

	p.log.WithFields(logrus.Fields{
		"custody":   base58.Encode(accs.Custody.Key),
		"authority": base58.Encode(authority),
		"amount":    amount,
	}).Debug("reassigning custody account authority")

	// The initializer signed this invocation, so their signature extends
	// to the authority change.
	return p.invoker.Invoke(token.SetAuthority(
		accs.Custody.Key,
		accs.Initializer.Key,
		authority,
		token.AuthorityTypeAccountHolder,
	))
}

func (p *Processor) processExchange(programID ed25519.PublicKey, accounts []*solana.AccountInfo, expectedByTaker uint64) error {
	accs, err := newExchangeAccounts(accounts)
	if err != nil {
		return err
	}

	if !accs.Taker.IsSigner {
		return solana.ErrMissingRequiredSignature
	}

	var custodyState token.Account
	if !custodyState.Unmarshal(accs.Custody.Data) {
		return solana.ErrInvalidAccountData
	}
	if custodyState.Amount != expectedByTaker {
		return escrow.ErrExpectedAmountMismatch
	}

	authority, bump, err := solana.FindProgramAddressAndBump(programID, AuthoritySeed)
	if err != nil {
		return err
	}
	authoritySeeds := solana.Seeds{AuthoritySeed, {bump}}

	var state escrow.Escrow
	if err := state.Unmarshal(accs.EscrowAccount.Data); err != nil {
		return err
	}

	// Every account the record names must be the account actually
	// supplied, and the custody account must really sit under the derived
	// authority.
	if !bytes.Equal(state.CustodyAccount, accs.Custody.Key) {
		return solana.ErrInvalidAccountData
	}
	if !bytes.Equal(state.Initializer, accs.Initializer.Key) {
		return solana.ErrInvalidAccountData
	}
	if !bytes.Equal(state.ReceivingAccount, accs.InitializerReceive.Key) {
		return solana.ErrInvalidAccountData
	}
	if !bytes.Equal(accs.Authority.Key, authority) {
		return solana.ErrInvalidAccountData
	}
	if !bytes.Equal(custodyState.Owner, authority) {
		return solana.ErrInvalidAccountData
	}

	log := p.log.WithFields(logrus.Fields{
		"taker":       base58.Encode(accs.Taker.Key),
		"initializer": base58.Encode(accs.Initializer.Key),
	})

	log.WithField("amount", state.ExpectedAmount).Debug("transferring token B to the initializer")
	err = p.invoker.Invoke(token.Transfer(
		accs.TakerSend.Key,
		accs.InitializerReceive.Key,
		accs.Taker.Key,
		state.ExpectedAmount,
	))
	if err != nil {
		return err
	}

	log.WithField("amount", custodyState.Amount).Debug("transferring token A to the taker")
	err = p.invoker.Invoke(token.Transfer(
		accs.Custody.Key,
		accs.TakerReceive.Key,
		authority,
		custodyState.Amount,
	), authoritySeeds)
	if err != nil {
		return err
	}

	log.Debug("closing custody account")
	err = p.invoker.Invoke(token.CloseAccount(
		accs.Custody.Key,
		accs.Initializer.Key,
		authority,
	), authoritySeeds)
	if err != nil {
		return err
	}

	// Reclaim the escrow account's rent and retire the record for good.
	// A recreated account at the same address starts from zero, so the
	// escrow can never be replayed.
	if accs.Initializer.Lamports > math.MaxUint64-accs.EscrowAccount.Lamports {
		return escrow.ErrAmountOverflow
	}
	accs.Initializer.Lamports += accs.EscrowAccount.Lamports
	accs.EscrowAccount.Lamports = 0
	for i := range accs.EscrowAccount.Data {
		accs.EscrowAccount.Data[i] = 0
	}

	return nil
}
