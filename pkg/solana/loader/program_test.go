package loader

import (
	"crypto/ed25519"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProgramDataAddress(t *testing.T) {
	program, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	actual, bump, err := GetProgramDataAddress(program)
	require.NoError(t, err)

	expected, expectedBump, err := solanago.FindProgramAddress(
		[][]byte{program},
		solanago.BPFLoaderUpgradeableProgramID,
	)
	require.NoError(t, err)
	assert.EqualValues(t, expected.Bytes(), actual)
	assert.Equal(t, expectedBump, bump)
}
