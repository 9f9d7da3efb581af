package system

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-escrow/escrow-program/pkg/solana"
)

func TestRent_MinimumBalance(t *testing.T) {
	// (105 + 128) * 3480 * 2.0
	assert.EqualValues(t, 1621680, DefaultRent.MinimumBalance(105))

	assert.True(t, DefaultRent.IsExempt(1621680, 105))
	assert.True(t, DefaultRent.IsExempt(1621681, 105))
	assert.False(t, DefaultRent.IsExempt(1621679, 105))
	assert.False(t, DefaultRent.IsExempt(0, 105))
}

func TestRent_RoundTrip(t *testing.T) {
	expected := Rent{
		LamportsPerByteYear: 42,
		ExemptionThreshold:  1.5,
		BurnPercent:         10,
	}

	var actual Rent
	require.True(t, actual.Unmarshal(expected.Marshal()))
	assert.Equal(t, expected, actual)

	assert.False(t, actual.Unmarshal(nil))
	assert.False(t, actual.Unmarshal(make([]byte, RentAccountSize-1)))
}

func TestRentFromAccount(t *testing.T) {
	rent, err := RentFromAccount(&solana.AccountInfo{
		Key:  RentSysVar,
		Data: DefaultRent.Marshal(),
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultRent, rent)
}

func TestRentFromAccount_Invalid(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	// wrong sysvar account
	_, err = RentFromAccount(&solana.AccountInfo{
		Key:  pub,
		Data: DefaultRent.Marshal(),
	})
	assert.Error(t, err)

	// malformed data
	_, err = RentFromAccount(&solana.AccountInfo{
		Key:  RentSysVar,
		Data: make([]byte, 3),
	})
	assert.Error(t, err)
}
