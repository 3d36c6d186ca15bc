package token

import (
	"crypto/ed25519"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAssociatedAccount(t *testing.T) {
	// Values generated from taken from spl code.
	wallet, err := base58.Decode("4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofM")
	require.NoError(t, err)
	mint, err := base58.Decode("8opHzTAnfzRpPEx21XtnrVTX28YQuCpAjcn1PczScKh")
	require.NoError(t, err)
	addr, err := base58.Decode("H7MQwEzt97tUJryocn3qaEoy2ymWstwyEk1i9Yv3EmuZ")
	require.NoError(t, err)

	actual, err := GetAssociatedAccount(wallet, mint, ProgramKey)
	require.NoError(t, err)
	assert.EqualValues(t, addr, actual)
}

func TestGetAssociatedAccount_Token2022(t *testing.T) {
	wallet, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	mint, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	actual, err := GetAssociatedAccount(wallet, mint, Token2022ProgramKey)
	require.NoError(t, err)

	expected, _, err := solanago.FindProgramAddress(
		[][]byte{wallet, solanago.Token2022ProgramID[:], mint},
		solanago.SPLAssociatedTokenAccountProgramID,
	)
	require.NoError(t, err)
	assert.EqualValues(t, expected.Bytes(), actual)

	legacy, err := GetAssociatedAccount(wallet, mint, ProgramKey)
	require.NoError(t, err)
	assert.NotEqual(t, legacy, actual)
}

func TestGetAssociatedAccount_UnknownProgram(t *testing.T) {
	wallet, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	_, err = GetAssociatedAccount(wallet, wallet, wallet)
	assert.ErrorIs(t, err, ErrNotTokenProgram)
}

func TestProgramKeys(t *testing.T) {
	assert.Equal(t, "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", base58.Encode(ProgramKey))
	assert.Equal(t, "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb", base58.Encode(Token2022ProgramKey))
	assert.Equal(t, "ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL", base58.Encode(AssociatedTokenAccountProgramKey))

	owner, err := ProgramForMintOwner(Token2022ProgramKey)
	require.NoError(t, err)
	assert.EqualValues(t, Token2022ProgramKey, owner)

	_, err = ProgramForMintOwner(AssociatedTokenAccountProgramKey)
	assert.Equal(t, ErrNotTokenProgram, err)
}
