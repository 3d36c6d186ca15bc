package its

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, value string) []byte {
	b, err := hex.DecodeString(value)
	require.NoError(t, err)
	return b
}

func TestChainNameHash(t *testing.T) {
	mainnet := [32]byte{110, 239, 41, 235, 176, 58, 162, 20, 74, 26, 107, 98, 18, 206, 116, 245, 4, 163, 77, 183, 153, 184, 22, 26, 33, 20, 0, 23, 232, 13, 61, 138}
	devnet := [32]byte{10, 171, 102, 67, 72, 176, 161, 92, 42, 179, 148, 228, 13, 72, 172, 178, 168, 16, 138, 252, 99, 222, 187, 187, 25, 30, 121, 52, 235, 103, 11, 169}

	assert.Equal(t, mainnet, ChainNameHash("solana"))
	assert.Equal(t, devnet, ChainNameHash("solana-devnet"))

	program, err := NewNetworkProgram(NetworkDevnetAmplifier)
	require.NoError(t, err)
	assert.Equal(t, devnet, program.ChainNameHash())

	program, err = NewNetworkProgram(NetworkMainnet)
	require.NoError(t, err)
	assert.Equal(t, mainnet, program.ChainNameHash())
}

func TestTokenId_Vectors(t *testing.T) {
	chainNameHash := ChainNameHash("solana-devnet")

	deployer := make([]byte, 32)
	for i := range deployer {
		deployer[i] = byte(i + 1)
	}
	salt := bytes.Repeat([]byte{7}, 32)
	mint := bytes.Repeat([]byte{0xaa}, 32)

	deploySalt := InterchainTokenDeploySalt(chainNameHash, deployer, salt)
	assert.Equal(t, mustHex(t, "5dacc764547b5d614d0012ec84965b9e887f14a40dcdca848be6fe8118a9f01b"), deploySalt[:])

	interchain := TokenIdFromDeploySalt(deploySalt)
	assert.Equal(t, "0xd2fb794d8b0371b3db08ea66479f25cabb1383c07999b8e39f1299ce2dc851ce", interchain.Hex())

	linked := TokenIdFromDeploySalt(LinkedTokenDeploySalt(chainNameHash, deployer, salt))
	assert.Equal(t, "0x404cf1223d0d82df2842ed22e599435fdb8767081ff0a44b2055072593c11c00", linked.Hex())

	canonical := TokenIdFromDeploySalt(CanonicalTokenDeploySalt(chainNameHash, mint))
	assert.Equal(t, "0x7e1ef87317308cc39ccb178dc979a9e53f3818810932788dff497c588b3424d9", canonical.Hex())

	program, err := NewNetworkProgram(NetworkDevnetAmplifier)
	require.NoError(t, err)

	actual, err := program.InterchainTokenId(deployer, salt)
	require.NoError(t, err)
	assert.Equal(t, interchain, actual)

	actual, err = program.LinkedTokenId(deployer, salt)
	require.NoError(t, err)
	assert.Equal(t, linked, actual)

	actual, err = program.CanonicalTokenId(mint)
	require.NoError(t, err)
	assert.Equal(t, canonical, actual)
}

func TestTokenId_VariantSeparation(t *testing.T) {
	program, err := NewNetworkProgram(NetworkTestnet)
	require.NoError(t, err)

	key := generateKey(t)
	salt := bytes.Repeat([]byte{1}, 32)

	interchain, err := program.InterchainTokenId(key, salt)
	require.NoError(t, err)
	linked, err := program.LinkedTokenId(key, salt)
	require.NoError(t, err)
	canonical, err := program.CanonicalTokenId(key)
	require.NoError(t, err)

	assert.NotEqual(t, interchain, linked)
	assert.NotEqual(t, interchain, canonical)
	assert.NotEqual(t, linked, canonical)
}

func TestTokenId_Determinism(t *testing.T) {
	program, err := NewNetworkProgram(NetworkStagenet)
	require.NoError(t, err)

	deployer := generateKey(t)
	salt := []byte("redeploy")

	first, err := program.InterchainTokenId(deployer, salt)
	require.NoError(t, err)
	second, err := program.InterchainTokenId(deployer, salt)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := program.InterchainTokenId(deployer, []byte("redeploy2"))
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	otherDeployer, err := program.InterchainTokenId(generateKey(t), salt)
	require.NoError(t, err)
	assert.NotEqual(t, first, otherDeployer)

	// The chain name is part of the salt.
	mainnet, err := NewNetworkProgram(NetworkMainnet)
	require.NoError(t, err)
	onMainnet, err := mainnet.InterchainTokenId(deployer, salt)
	require.NoError(t, err)
	assert.NotEqual(t, first, onMainnet)
}

func TestTokenId_AnySaltLength(t *testing.T) {
	program, err := NewNetworkProgram(NetworkDevnetAmplifier)
	require.NoError(t, err)

	deployer := generateKey(t)
	for _, salt := range [][]byte{nil, {}, {1}, bytes.Repeat([]byte{2}, 100)} {
		_, err := program.InterchainTokenId(deployer, salt)
		assert.NoError(t, err)
	}

	// A nil and an empty salt hash identically.
	a, _ := program.InterchainTokenId(deployer, nil)
	b, _ := program.InterchainTokenId(deployer, []byte{})
	assert.Equal(t, a, b)
}

func TestTokenId_InvalidKey(t *testing.T) {
	program, err := NewNetworkProgram(NetworkDevnetAmplifier)
	require.NoError(t, err)

	_, err = program.InterchainTokenId(make([]byte, 31), nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "deployer or mint")

	_, err = DeploySalt(TokenIdVariant(9), program.ChainNameHash(), generateKey(t), nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseTokenId(t *testing.T) {
	expected := "0xd2fb794d8b0371b3db08ea66479f25cabb1383c07999b8e39f1299ce2dc851ce"

	id, err := ParseTokenId(expected)
	require.NoError(t, err)
	assert.Equal(t, expected, id.Hex())
	assert.Equal(t, expected, id.String())

	bare, err := ParseTokenId(expected[2:])
	require.NoError(t, err)
	assert.Equal(t, id, bare)

	for _, invalid := range []string{"", "0x", "0x1234", "zz", expected + "00"} {
		_, err := ParseTokenId(invalid)
		assert.ErrorIs(t, err, ErrInvalidArgument, invalid)
	}
}

func TestParseTokenIdVariant(t *testing.T) {
	for input, expected := range map[string]TokenIdVariant{
		"canonical":  TokenIdVariantCanonical,
		"Interchain": TokenIdVariantInterchain,
		"linked":     TokenIdVariantLinked,
		" custom ":   TokenIdVariantLinked,
	} {
		actual, err := ParseTokenIdVariant(input)
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	}

	_, err := ParseTokenIdVariant("native")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
