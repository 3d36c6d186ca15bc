package gateway

import (
	"crypto/ed25519"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRootConfigAddress(t *testing.T) {
	program, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	actual, bump, err := GetRootConfigAddress(&GetRootConfigAddressArgs{Program: program})
	require.NoError(t, err)

	expected, expectedBump, err := solanago.FindProgramAddress(
		[][]byte{[]byte("gateway")},
		solanago.PublicKeyFromBytes(program),
	)
	require.NoError(t, err)
	assert.EqualValues(t, expected.Bytes(), actual)
	assert.Equal(t, expectedBump, bump)
}

func TestGetCallContractSigningAddress(t *testing.T) {
	its, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	other, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	actual, bump, err := GetCallContractSigningAddress(&GetCallContractSigningAddressArgs{SourceProgram: its})
	require.NoError(t, err)

	expected, expectedBump, err := solanago.FindProgramAddress(
		[][]byte{[]byte("gtw-call-contract")},
		solanago.PublicKeyFromBytes(its),
	)
	require.NoError(t, err)
	assert.EqualValues(t, expected.Bytes(), actual)
	assert.Equal(t, expectedBump, bump)

	fromOther, _, err := GetCallContractSigningAddress(&GetCallContractSigningAddressArgs{SourceProgram: other})
	require.NoError(t, err)
	assert.NotEqual(t, actual, fromOther)
}
