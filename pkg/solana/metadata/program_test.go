package metadata

import (
	"crypto/ed25519"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMetadataAddress(t *testing.T) {
	mint, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	actual, bump, err := GetMetadataAddress(&GetMetadataAddressArgs{Mint: mint})
	require.NoError(t, err)

	expected, expectedBump, err := solanago.FindTokenMetadataAddress(solanago.PublicKeyFromBytes(mint))
	require.NoError(t, err)
	assert.EqualValues(t, expected.Bytes(), actual)
	assert.Equal(t, expectedBump, bump)
}
