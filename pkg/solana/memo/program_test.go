package memo

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interchain-tools/solana-its/pkg/solana"
)

func TestInstruction(t *testing.T) {
	signer, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	ix := Instruction("bridge to ethereum", signer)
	assert.Equal(t, ProgramKey, ix.Program)
	assert.Equal(t, "bridge to ethereum", string(ix.Data))
	require.Len(t, ix.Accounts, 1)
	assert.Equal(t, signer, ix.Accounts[0].PublicKey)
	assert.True(t, ix.Accounts[0].IsSigner)
	assert.False(t, ix.Accounts[0].IsWritable)

	assert.Empty(t, Instruction("no signers").Accounts)
}

func TestParse(t *testing.T) {
	text, err := Parse(Instruction("hello, world"))
	require.NoError(t, err)
	assert.Equal(t, "hello, world", text)

	_, err = Parse(solana.NewInstruction(ProgramKey, []byte{0xff, 0xfe}))
	assert.Equal(t, ErrInvalidMemo, err)

	other, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	_, err = Parse(solana.NewInstruction(other, []byte("hello")))
	assert.Equal(t, ErrIncorrectProgram, err)
}
