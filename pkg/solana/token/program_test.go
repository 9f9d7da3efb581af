package token

import (
	"crypto/ed25519"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestSetAuthority(t *testing.T) {
	keys := generateKeys(t, 3)

	instruction := SetAuthority(keys[0], keys[1], keys[2], AuthorityTypeAccountHolder)

	assert.Equal(t, ProgramKey, instruction.Program)
	assert.EqualValues(t, CommandSetAuthority, instruction.Data[0])
	assert.EqualValues(t, AuthorityTypeAccountHolder, instruction.Data[1])
	assert.EqualValues(t, 1, instruction.Data[2])
	assert.EqualValues(t, keys[2], instruction.Data[3:])

	assert.False(t, instruction.Accounts[0].IsSigner)
	assert.True(t, instruction.Accounts[0].IsWritable)
	assert.True(t, instruction.Accounts[1].IsSigner)
	assert.False(t, instruction.Accounts[1].IsWritable)

	assert.Equal(t, keys[0], instruction.Accounts[0].PublicKey)
	assert.Equal(t, keys[1], instruction.Accounts[1].PublicKey)
}

func TestSetAuthority_NoNewAuthority(t *testing.T) {
	keys := generateKeys(t, 2)

	instruction := SetAuthority(keys[0], keys[1], nil, AuthorityTypeCloseAccount)
	assert.Equal(t, []byte{byte(CommandSetAuthority), byte(AuthorityTypeCloseAccount), 0}, instruction.Data)
}

func TestTransfer(t *testing.T) {
	keys := generateKeys(t, 3)

	instruction := Transfer(keys[0], keys[1], keys[2], 123456789)

	assert.Equal(t, ProgramKey, instruction.Program)
	assert.EqualValues(t, CommandTransfer, instruction.Data[0])
	assert.EqualValues(t, 123456789, binary.LittleEndian.Uint64(instruction.Data[1:]))
	assert.Len(t, instruction.Data, 9)

	assert.True(t, instruction.Accounts[0].IsWritable)
	assert.False(t, instruction.Accounts[0].IsSigner)
	assert.True(t, instruction.Accounts[1].IsWritable)
	assert.False(t, instruction.Accounts[1].IsSigner)
	assert.False(t, instruction.Accounts[2].IsWritable)
	assert.True(t, instruction.Accounts[2].IsSigner)

	assert.Equal(t, keys[0], instruction.Accounts[0].PublicKey)
	assert.Equal(t, keys[1], instruction.Accounts[1].PublicKey)
	assert.Equal(t, keys[2], instruction.Accounts[2].PublicKey)
}

func TestCloseAccount(t *testing.T) {
	keys := generateKeys(t, 3)

	instruction := CloseAccount(keys[0], keys[1], keys[2])

	assert.Equal(t, ProgramKey, instruction.Program)
	assert.Equal(t, []byte{byte(CommandCloseAccount)}, instruction.Data)

	assert.True(t, instruction.Accounts[0].IsWritable)
	assert.True(t, instruction.Accounts[1].IsWritable)
	assert.True(t, instruction.Accounts[2].IsSigner)
	assert.False(t, instruction.Accounts[2].IsWritable)
}
