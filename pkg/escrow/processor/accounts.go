package processor

import (
	"github.com/code-escrow/escrow-program/pkg/solana"
)

// initEscrowAccounts is the account list of an init escrow instruction,
// in positional order.
type initEscrowAccounts struct {
	// The initializer's main account. Must have signed.
	Initializer *solana.AccountInfo
	// The temporary token A account the escrow takes custody of.
	Custody *solana.AccountInfo
	// The initializer's token B account.
	Receiving *solana.AccountInfo
	// The account the escrow record is written into.
	EscrowAccount *solana.AccountInfo
	// The rent sysvar.
	RentSysVar *solana.AccountInfo
	// The token program.
	TokenProgram *solana.AccountInfo
}

func newInitEscrowAccounts(accounts []*solana.AccountInfo) (v initEscrowAccounts, err error) {
	list := solana.NewAccountList(accounts)

	if v.Initializer, err = list.Next("initializer"); err != nil {
		return v, err
	}
	if v.Custody, err = list.Next("custody account"); err != nil {
		return v, err
	}
	if v.Receiving, err = list.Next("receiving account"); err != nil {
		return v, err
	}
	if v.EscrowAccount, err = list.Next("escrow account"); err != nil {
		return v, err
	}
	if v.RentSysVar, err = list.Next("rent sysvar"); err != nil {
		return v, err
	}
	if v.TokenProgram, err = list.Next("token program"); err != nil {
		return v, err
	}

	return v, nil
}

// exchangeAccounts is the account list of an exchange instruction, in
// positional order.
type exchangeAccounts struct {
	// The taker's main account. Must have signed.
	Taker *solana.AccountInfo
	// The taker's token B account, debited by the swap.
	TakerSend *solana.AccountInfo
	// The taker's token A account, credited by the swap.
	TakerReceive *solana.AccountInfo
	// The custody account holding the escrowed token A.
	Custody *solana.AccountInfo
	// The initializer's main account, receives the reclaimed rent.
	Initializer *solana.AccountInfo
	// The initializer's token B account, credited by the swap.
	InitializerReceive *solana.AccountInfo
	// The account holding the escrow record.
	EscrowAccount *solana.AccountInfo
	// The token program.
	TokenProgram *solana.AccountInfo
	// The program's derived authority.
	Authority *solana.AccountInfo
}

func newExchangeAccounts(accounts []*solana.AccountInfo) (v exchangeAccounts, err error) {
	list := solana.NewAccountList(accounts)

	if v.Taker, err = list.Next("taker"); err != nil {
		return v, err
	}
	if v.TakerSend, err = list.Next("taker send account"); err != nil {
		return v, err
	}
	if v.TakerReceive, err = list.Next("taker receive account"); err != nil {
		return v, err
	}
	if v.Custody, err = list.Next("custody account"); err != nil {
		return v, err
	}
	if v.Initializer, err = list.Next("initializer"); err != nil {
		return v, err
	}
	if v.InitializerReceive, err = list.Next("initializer receive account"); err != nil {
		return v, err
	}
	if v.EscrowAccount, err = list.Next("escrow account"); err != nil {
		return v, err
	}
	if v.TokenProgram, err = list.Next("token program"); err != nil {
		return v, err
	}
	if v.Authority, err = list.Next("authority"); err != nil {
		return v, err
	}

	return v, nil
}
