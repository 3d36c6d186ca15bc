package its

import (
	"encoding/binary"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interchain-tools/solana-its/pkg/solana"
)

func TestSeeds(t *testing.T) {
	assert.Equal(t, []byte("interchain-token-service"), ItsPrefix)
	assert.Equal(t, []byte("token-manager"), TokenManagerPrefix)
	assert.Equal(t, []byte("interchain-token"), InterchainTokenPrefix)
	assert.Equal(t, []byte("flow-slot"), FlowSlotPrefix)
	assert.Equal(t, []byte("deployment-approval"), DeploymentApprovalPrefix)
	assert.Equal(t, []byte("interchain-transfer-execute"), InterchainTransferExecutePrefix)
	assert.Equal(t, []byte("interchain-token-id"), InterchainTokenIdPrefix)
	assert.Equal(t, []byte("interchain-token-salt"), InterchainTokenSaltPrefix)
	assert.Equal(t, []byte("canonical-token-salt"), CanonicalTokenSaltPrefix)
	assert.Equal(t, []byte("solana-custom-token-salt"), CustomTokenSaltPrefix)
}

func oracle(t *testing.T, program []byte, seeds ...[]byte) ([]byte, uint8) {
	address, bump, err := solanago.FindProgramAddress(seeds, solanago.PublicKeyFromBytes(program))
	require.NoError(t, err)
	return address.Bytes(), bump
}

func TestAddresses(t *testing.T) {
	program := newTestProgram(t)

	itsRoot, bump, err := program.GetItsRootAddress()
	require.NoError(t, err)
	expected, expectedBump := oracle(t, program.ProgramID(), ItsPrefix)
	assert.EqualValues(t, expected, itsRoot)
	assert.Equal(t, expectedBump, bump)

	tokenId, err := program.InterchainTokenId(generateKey(t), []byte("salt"))
	require.NoError(t, err)

	tokenManager, bump, err := program.GetTokenManagerAddress(&GetTokenManagerAddressArgs{
		ItsRoot: itsRoot,
		TokenId: tokenId,
	})
	require.NoError(t, err)
	expected, expectedBump = oracle(t, program.ProgramID(), TokenManagerPrefix, itsRoot, tokenId[:])
	assert.EqualValues(t, expected, tokenManager)
	assert.Equal(t, expectedBump, bump)

	mint, bump, err := program.GetInterchainTokenAddress(&GetInterchainTokenAddressArgs{
		ItsRoot: itsRoot,
		TokenId: tokenId,
	})
	require.NoError(t, err)
	expected, expectedBump = oracle(t, program.ProgramID(), InterchainTokenPrefix, itsRoot, tokenId[:])
	assert.EqualValues(t, expected, mint)
	assert.Equal(t, expectedBump, bump)
	assert.NotEqual(t, tokenManager, mint)

	minter := generateKey(t)
	approval, bump, err := program.GetDeploymentApprovalAddress(&GetDeploymentApprovalAddressArgs{
		Minter:           minter,
		TokenId:          tokenId,
		DestinationChain: "ethereum",
	})
	require.NoError(t, err)
	expected, expectedBump = oracle(t, program.ProgramID(), DeploymentApprovalPrefix, minter, tokenId[:], []byte("ethereum"))
	assert.EqualValues(t, expected, approval)
	assert.Equal(t, expectedBump, bump)

	epoch := make([]byte, 8)
	binary.LittleEndian.PutUint64(epoch, 81234)
	flowSlot, bump, err := program.GetFlowSlotAddress(&GetFlowSlotAddressArgs{
		TokenManager: tokenManager,
		Epoch:        81234,
	})
	require.NoError(t, err)
	expected, expectedBump = oracle(t, program.ProgramID(), FlowSlotPrefix, tokenManager, epoch)
	assert.EqualValues(t, expected, flowSlot)
	assert.Equal(t, expectedBump, bump)

	destination := generateKey(t)
	execute, bump, err := program.GetInterchainTransferExecuteAddress(&GetInterchainTransferExecuteAddressArgs{
		DestinationProgram: destination,
	})
	require.NoError(t, err)
	expected, expectedBump = oracle(t, program.ProgramID(), InterchainTransferExecutePrefix, destination)
	assert.EqualValues(t, expected, execute)
	assert.Equal(t, expectedBump, bump)
}

func TestFlowSlotAddress_EpochSeparation(t *testing.T) {
	program := newTestProgram(t)
	tokenManager := generateKey(t)

	flowSlotAt := func(timestamp int64) []byte {
		epoch, err := FlowEpochWithTimestamp(timestamp)
		require.NoError(t, err)
		address, _, err := program.GetFlowSlotAddress(&GetFlowSlotAddressArgs{TokenManager: tokenManager, Epoch: epoch})
		require.NoError(t, err)
		return address
	}

	start := flowSlotAt(0)
	assert.Equal(t, start, flowSlotAt(21599))
	assert.NotEqual(t, start, flowSlotAt(21600))
}

// invalidBump returns a bump that does not derive a valid address for seeds.
func invalidBump(t *testing.T, program []byte, seeds ...[]byte) uint8 {
	for bump := 255; bump >= 0; bump-- {
		if _, err := solana.DeriveProgramAddress(program, uint8(bump), seeds...); err != nil {
			return uint8(bump)
		}
	}
	t.Fatal("every bump derives a valid address")
	return 0
}

func TestAddresses_KnownBump(t *testing.T) {
	program := newTestProgram(t)
	tokenManager, minter, destination := generateKey(t), generateKey(t), generateKey(t)

	itsRoot, _, err := program.GetItsRootAddress()
	require.NoError(t, err)
	tokenId := testTokenId()

	epoch := make([]byte, 8)
	binary.LittleEndian.PutUint64(epoch, 7)

	for _, tc := range []struct {
		name   string
		seeds  [][]byte
		derive func(bump *uint8) ([]byte, uint8, error)
	}{
		{
			name:  "its root",
			seeds: [][]byte{ItsPrefix},
			derive: func(bump *uint8) ([]byte, uint8, error) {
				return program.DeriveItsRootAddress(bump)
			},
		},
		{
			name:  "token manager",
			seeds: [][]byte{TokenManagerPrefix, itsRoot, tokenId[:]},
			derive: func(bump *uint8) ([]byte, uint8, error) {
				return program.GetTokenManagerAddress(&GetTokenManagerAddressArgs{ItsRoot: itsRoot, TokenId: tokenId, Bump: bump})
			},
		},
		{
			name:  "interchain token",
			seeds: [][]byte{InterchainTokenPrefix, itsRoot, tokenId[:]},
			derive: func(bump *uint8) ([]byte, uint8, error) {
				return program.GetInterchainTokenAddress(&GetInterchainTokenAddressArgs{ItsRoot: itsRoot, TokenId: tokenId, Bump: bump})
			},
		},
		{
			name:  "deployment approval",
			seeds: [][]byte{DeploymentApprovalPrefix, minter, tokenId[:], []byte("ethereum")},
			derive: func(bump *uint8) ([]byte, uint8, error) {
				return program.GetDeploymentApprovalAddress(&GetDeploymentApprovalAddressArgs{
					Minter:           minter,
					TokenId:          tokenId,
					DestinationChain: "ethereum",
					Bump:             bump,
				})
			},
		},
		{
			name:  "flow slot",
			seeds: [][]byte{FlowSlotPrefix, tokenManager, epoch},
			derive: func(bump *uint8) ([]byte, uint8, error) {
				return program.GetFlowSlotAddress(&GetFlowSlotAddressArgs{TokenManager: tokenManager, Epoch: 7, Bump: bump})
			},
		},
		{
			name:  "interchain transfer execute",
			seeds: [][]byte{InterchainTransferExecutePrefix, destination},
			derive: func(bump *uint8) ([]byte, uint8, error) {
				return program.GetInterchainTransferExecuteAddress(&GetInterchainTransferExecuteAddressArgs{
					DestinationProgram: destination,
					Bump:               bump,
				})
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			expected, expectedBump := oracle(t, program.ProgramID(), tc.seeds...)

			searched, bump, err := tc.derive(nil)
			require.NoError(t, err)
			assert.EqualValues(t, expected, searched)
			assert.Equal(t, expectedBump, bump)

			derived, bump, err := tc.derive(&expectedBump)
			require.NoError(t, err)
			assert.EqualValues(t, expected, derived)
			assert.Equal(t, expectedBump, bump)

			bad := invalidBump(t, program.ProgramID(), tc.seeds...)
			fallback, bump, err := tc.derive(&bad)
			require.NoError(t, err)
			assert.EqualValues(t, expected, fallback)
			assert.Equal(t, expectedBump, bump)
		})
	}
}

func TestVerifyTokenManagerAddress(t *testing.T) {
	program := newTestProgram(t)

	itsRoot, _, err := program.GetItsRootAddress()
	require.NoError(t, err)

	args := &GetTokenManagerAddressArgs{ItsRoot: itsRoot}
	args.TokenId[0] = 1

	tokenManager, bump, err := program.GetTokenManagerAddress(args)
	require.NoError(t, err)
	assert.True(t, program.VerifyTokenManagerAddress(tokenManager, bump, args))

	derived, err := solana.DeriveProgramAddress(program.ProgramID(), bump, TokenManagerPrefix, itsRoot, args.TokenId[:])
	require.NoError(t, err)
	assert.EqualValues(t, tokenManager, derived)

	mutated := append([]byte{}, tokenManager...)
	mutated[31] ^= 1
	assert.False(t, program.VerifyTokenManagerAddress(mutated, bump, args))

	other := &GetTokenManagerAddressArgs{ItsRoot: itsRoot}
	other.TokenId[0] = 2
	assert.False(t, program.VerifyTokenManagerAddress(tokenManager, bump, other))
}
