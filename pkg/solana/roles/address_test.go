package roles

import (
	"crypto/ed25519"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKeys(t *testing.T, n int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, n)
	for i := range keys {
		pub, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)
		keys[i] = pub
	}
	return keys
}

func TestGetUserRolesAddress(t *testing.T) {
	keys := generateKeys(t, 3)
	program, resource, user := keys[0], keys[1], keys[2]

	actual, bump, err := GetUserRolesAddress(&GetUserRolesAddressArgs{
		Program:  program,
		Resource: resource,
		User:     user,
	})
	require.NoError(t, err)

	expected, expectedBump, err := solanago.FindProgramAddress(
		[][]byte{[]byte("user-roles"), resource, user},
		solanago.PublicKeyFromBytes(program),
	)
	require.NoError(t, err)
	assert.EqualValues(t, expected.Bytes(), actual)
	assert.Equal(t, expectedBump, bump)

	withBump, sameBump, err := GetUserRolesAddress(&GetUserRolesAddressArgs{
		Program:  program,
		Resource: resource,
		User:     user,
		Bump:     &bump,
	})
	require.NoError(t, err)
	assert.Equal(t, actual, withBump)
	assert.Equal(t, bump, sameBump)
}

func TestGetRoleProposalAddress_Directional(t *testing.T) {
	keys := generateKeys(t, 4)
	program, resource, a, b := keys[0], keys[1], keys[2], keys[3]

	ab, _, err := GetRoleProposalAddress(&GetRoleProposalAddressArgs{
		Program:  program,
		Resource: resource,
		From:     a,
		To:       b,
	})
	require.NoError(t, err)

	ba, _, err := GetRoleProposalAddress(&GetRoleProposalAddressArgs{
		Program:  program,
		Resource: resource,
		From:     b,
		To:       a,
	})
	require.NoError(t, err)
	assert.NotEqual(t, ab, ba)

	expected, _, err := solanago.FindProgramAddress(
		[][]byte{[]byte("role-proposal"), resource, a, b},
		solanago.PublicKeyFromBytes(program),
	)
	require.NoError(t, err)
	assert.EqualValues(t, expected.Bytes(), ab)
}

func TestRoles(t *testing.T) {
	assert.EqualValues(t, 1, Minter)
	assert.EqualValues(t, 2, Operator)
	assert.EqualValues(t, 4, FlowLimiter)

	r := Minter | FlowLimiter
	assert.True(t, r.Contains(Minter))
	assert.False(t, r.Contains(Operator))
	assert.Equal(t, "minter|flow_limiter", r.String())
	assert.Equal(t, "none", Roles(0).String())
}
