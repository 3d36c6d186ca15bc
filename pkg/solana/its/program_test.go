package its

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/gasservice"
)

func generateKey(t *testing.T) ed25519.PublicKey {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return pub
}

func newTestProgram(t *testing.T) *Program {
	program, err := NewNetworkProgram(NetworkDevnetAmplifier)
	require.NoError(t, err)
	return program
}

func TestNewProgram(t *testing.T) {
	config := &ProgramConfig{
		ChainName:           "solana-local",
		ProgramID:           generateKey(t),
		GatewayProgramID:    generateKey(t),
		GasServiceProgramID: generateKey(t),
	}

	program, err := NewProgram(config)
	require.NoError(t, err)
	assert.Equal(t, config.ProgramID, program.ProgramID())
	assert.Equal(t, config.GatewayProgramID, program.GatewayProgramID())
	assert.Equal(t, config.GasServiceProgramID, program.GasServiceProgramID())
	assert.Equal(t, "solana-local", program.ChainName())
	assert.Equal(t, ChainNameHash("solana-local"), program.ChainNameHash())

	_, err = NewProgram(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	invalid := *config
	invalid.ChainName = ""
	_, err = NewProgram(&invalid)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	invalid = *config
	invalid.GatewayProgramID = invalid.GatewayProgramID[:16]
	_, err = NewProgram(&invalid)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "gateway program id")
}

func TestNetworks(t *testing.T) {
	expected := map[Network]string{
		NetworkDevnetAmplifier: "solana-devnet",
		NetworkStagenet:        "solana-stagenet",
		NetworkTestnet:         "solana-testnet",
		NetworkMainnet:         "solana",
	}

	require.Len(t, Networks(), len(expected))
	for _, network := range Networks() {
		chainName, err := network.ChainName()
		require.NoError(t, err)
		assert.Equal(t, expected[network], chainName)

		config, err := NetworkProgramConfig(network)
		require.NoError(t, err)
		assert.Equal(t, chainName, config.ChainName)
		assert.Len(t, config.ProgramID, ed25519.PublicKeySize)
		assert.Len(t, config.GatewayProgramID, ed25519.PublicKeySize)
		assert.Equal(t, gasservice.PROGRAM_ID, config.GasServiceProgramID)

		endpoint, err := network.RPCEndpoint()
		require.NoError(t, err)
		assert.NotEmpty(t, endpoint)
	}

	endpoint, err := NetworkMainnet.RPCEndpoint()
	require.NoError(t, err)
	assert.Equal(t, string(solana.EnvironmentProd), endpoint)
}

func TestParseNetwork(t *testing.T) {
	network, err := ParseNetwork(" Devnet-Amplifier ")
	require.NoError(t, err)
	assert.Equal(t, NetworkDevnetAmplifier, network)

	_, err = ParseNetwork("localnet")
	assert.ErrorIs(t, err, ErrUnknownNetwork)

	_, err = Network("localnet").ChainName()
	assert.ErrorIs(t, err, ErrUnknownNetwork)

	_, err = NewNetworkProgram(Network("localnet"))
	assert.ErrorIs(t, err, ErrUnknownNetwork)
}
