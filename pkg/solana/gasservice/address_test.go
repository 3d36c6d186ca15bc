package gasservice

import (
	"crypto/ed25519"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigAddress(t *testing.T) {
	actual, bump, err := GetConfigAddress(&GetConfigAddressArgs{})
	require.NoError(t, err)

	expected, expectedBump, err := solanago.FindProgramAddress(
		[][]byte{[]byte("gas-service")},
		solanago.MustPublicKeyFromBase58("gasHQkvaC4jTD2MQpAuEN3RdNwde2Ym5E5QNDoh6m6G"),
	)
	require.NoError(t, err)
	assert.EqualValues(t, expected.Bytes(), actual)
	assert.Equal(t, expectedBump, bump)

	program, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	overridden, _, err := GetConfigAddress(&GetConfigAddressArgs{Program: program})
	require.NoError(t, err)
	assert.NotEqual(t, actual, overridden)
}
