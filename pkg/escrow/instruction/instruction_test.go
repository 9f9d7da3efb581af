package instruction

import (
	"crypto/ed25519"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-escrow/escrow-program/pkg/escrow"
	"github.com/code-escrow/escrow-program/pkg/solana/system"
	"github.com/code-escrow/escrow-program/pkg/solana/token"
)

func generateKeys(t *testing.T, amount int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, amount)

	for i := 0; i < amount; i++ {
		pub, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)

		keys[i] = pub
	}

	return keys
}

func TestUnpack_InitEscrow(t *testing.T) {
	cmd, err := Unpack([]byte{0, 0xE8, 0x03, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, InitEscrow{Amount: 1000}, cmd)
}

func TestUnpack_Exchange(t *testing.T) {
	data := make([]byte, 9)
	data[0] = 1
	binary.LittleEndian.PutUint64(data[1:], 500)

	cmd, err := Unpack(data)
	require.NoError(t, err)
	assert.Equal(t, Exchange{Amount: 500}, cmd)
}

func TestUnpack_TrailingBytesIgnored(t *testing.T) {
	data := make([]byte, 16)
	data[0] = 1
	binary.LittleEndian.PutUint64(data[1:9], 500)
	data[9] = 0xFF

	cmd, err := Unpack(data)
	require.NoError(t, err)
	assert.Equal(t, Exchange{Amount: 500}, cmd)
}

func TestUnpack_Invalid(t *testing.T) {
	cases := [][]byte{
		nil,
		{},
		{0},                            // missing operand
		{1},                            // missing operand
		{0, 1, 2, 3, 4, 5, 6, 7},       // short operand
		{2, 1, 0, 0, 0, 0, 0, 0, 0},    // unknown tag
		{0xFF, 1, 0, 0, 0, 0, 0, 0, 0}, // unknown tag
	}

	for _, data := range cases {
		cmd, err := Unpack(data)
		assert.Nil(t, cmd)
		assert.Equal(t, escrow.ErrInvalidInstruction, err)
	}
}

func TestNewInitEscrow(t *testing.T) {
	keys := generateKeys(t, 5)
	program, initializer, custody, receiving, escrowAccount := keys[0], keys[1], keys[2], keys[3], keys[4]

	ix := NewInitEscrow(program, initializer, custody, receiving, escrowAccount, 1000)

	assert.Equal(t, program, ix.Program)
	assert.Equal(t, []byte{0, 0xE8, 0x03, 0, 0, 0, 0, 0, 0}, ix.Data)

	require.Len(t, ix.Accounts, 6)
	assert.Equal(t, initializer, ix.Accounts[0].PublicKey)
	assert.True(t, ix.Accounts[0].IsSigner)
	assert.Equal(t, custody, ix.Accounts[1].PublicKey)
	assert.True(t, ix.Accounts[1].IsWritable)
	assert.Equal(t, receiving, ix.Accounts[2].PublicKey)
	assert.False(t, ix.Accounts[2].IsWritable)
	assert.Equal(t, escrowAccount, ix.Accounts[3].PublicKey)
	assert.True(t, ix.Accounts[3].IsWritable)
	assert.Equal(t, system.RentSysVar, ix.Accounts[4].PublicKey)
	assert.Equal(t, token.ProgramKey, ix.Accounts[5].PublicKey)

	cmd, err := Unpack(ix.Data)
	require.NoError(t, err)
	assert.Equal(t, InitEscrow{Amount: 1000}, cmd)
}

func TestNewExchange(t *testing.T) {
	keys := generateKeys(t, 9)

	ix := NewExchange(keys[0], keys[1], keys[2], keys[3], keys[4], keys[5], keys[6], keys[7], keys[8], 500)

	assert.Equal(t, keys[0], ix.Program)

	require.Len(t, ix.Accounts, 9)
	assert.Equal(t, keys[1], ix.Accounts[0].PublicKey)
	assert.True(t, ix.Accounts[0].IsSigner)
	for i := 1; i < 7; i++ {
		assert.Equal(t, keys[i+1], ix.Accounts[i].PublicKey)
		assert.True(t, ix.Accounts[i].IsWritable)
	}
	assert.Equal(t, token.ProgramKey, ix.Accounts[7].PublicKey)
	assert.Equal(t, keys[8], ix.Accounts[8].PublicKey)
	assert.False(t, ix.Accounts[8].IsWritable)

	cmd, err := Unpack(ix.Data)
	require.NoError(t, err)
	assert.Equal(t, Exchange{Amount: 500}, cmd)
}
