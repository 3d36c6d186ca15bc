package its

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/interchain-tools/solana-its/pkg/solana"
)

var (
	ItsPrefix                       = []byte("interchain-token-service")
	TokenManagerPrefix              = []byte("token-manager")
	InterchainTokenPrefix           = []byte("interchain-token")
	FlowSlotPrefix                  = []byte("flow-slot")
	DeploymentApprovalPrefix        = []byte("deployment-approval")
	InterchainTransferExecutePrefix = []byte("interchain-transfer-execute")
)

// GetItsRootAddress returns the root config account of the program.
func (p *Program) GetItsRootAddress() (ed25519.PublicKey, uint8, error) {
	return p.DeriveItsRootAddress(nil)
}

// DeriveItsRootAddress is GetItsRootAddress for callers holding the persisted
// bump. A nil or invalid bump falls back to the search.
func (p *Program) DeriveItsRootAddress(knownBump *uint8) (ed25519.PublicKey, uint8, error) {
	address, bump, err := p.findOrDerive(
		knownBump,
		ItsPrefix,
	)
	if err != nil {
		return nil, 0, errors.Wrap(err, "derive its root pda")
	}
	return address, bump, nil
}

type GetTokenManagerAddressArgs struct {
	ItsRoot ed25519.PublicKey
	TokenId TokenId

	// Bump, when known, skips the search. An invalid bump falls back to it.
	Bump *uint8
}

func (p *Program) GetTokenManagerAddress(args *GetTokenManagerAddressArgs) (ed25519.PublicKey, uint8, error) {
	address, bump, err := p.findOrDerive(
		args.Bump,
		TokenManagerPrefix,
		args.ItsRoot,
		args.TokenId[:],
	)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "derive token manager pda for token id %s", args.TokenId)
	}
	return address, bump, nil
}

// VerifyTokenManagerAddress checks a token manager address against a bump
// persisted on chain.
func (p *Program) VerifyTokenManagerAddress(candidate ed25519.PublicKey, bump uint8, args *GetTokenManagerAddressArgs) bool {
	return solana.VerifyProgramAddress(
		candidate,
		p.programID,
		bump,
		TokenManagerPrefix,
		args.ItsRoot,
		args.TokenId[:],
	)
}

type GetInterchainTokenAddressArgs struct {
	ItsRoot ed25519.PublicKey
	TokenId TokenId

	// Bump, when known, skips the search. An invalid bump falls back to it.
	Bump *uint8
}

// GetInterchainTokenAddress returns the mint ITS creates for native
// interchain tokens.
func (p *Program) GetInterchainTokenAddress(args *GetInterchainTokenAddressArgs) (ed25519.PublicKey, uint8, error) {
	address, bump, err := p.findOrDerive(
		args.Bump,
		InterchainTokenPrefix,
		args.ItsRoot,
		args.TokenId[:],
	)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "derive interchain token pda for token id %s", args.TokenId)
	}
	return address, bump, nil
}

type GetDeploymentApprovalAddressArgs struct {
	Minter           ed25519.PublicKey
	TokenId          TokenId
	DestinationChain string

	// Bump, when known, skips the search. An invalid bump falls back to it.
	Bump *uint8
}

func (p *Program) GetDeploymentApprovalAddress(args *GetDeploymentApprovalAddressArgs) (ed25519.PublicKey, uint8, error) {
	address, bump, err := p.findOrDerive(
		args.Bump,
		DeploymentApprovalPrefix,
		args.Minter,
		args.TokenId[:],
		[]byte(args.DestinationChain),
	)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "derive deployment approval pda for token id %s to %s", args.TokenId, args.DestinationChain)
	}
	return address, bump, nil
}

type GetFlowSlotAddressArgs struct {
	TokenManager ed25519.PublicKey
	Epoch        uint64

	// Bump, when known, skips the search. An invalid bump falls back to it.
	Bump *uint8
}

// GetFlowSlotAddress returns the account tracking the token manager's flow
// in and out during one epoch.
func (p *Program) GetFlowSlotAddress(args *GetFlowSlotAddressArgs) (ed25519.PublicKey, uint8, error) {
	epoch := make([]byte, 8)
	binary.LittleEndian.PutUint64(epoch, args.Epoch)

	address, bump, err := p.findOrDerive(
		args.Bump,
		FlowSlotPrefix,
		args.TokenManager,
		epoch,
	)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "derive flow slot pda for epoch %d", args.Epoch)
	}
	return address, bump, nil
}

type GetInterchainTransferExecuteAddressArgs struct {
	DestinationProgram ed25519.PublicKey

	// Bump, when known, skips the search. An invalid bump falls back to it.
	Bump *uint8
}

// GetInterchainTransferExecuteAddress returns the PDA ITS signs with when it
// hands a transfer with data to the destination program.
func (p *Program) GetInterchainTransferExecuteAddress(args *GetInterchainTransferExecuteAddressArgs) (ed25519.PublicKey, uint8, error) {
	address, bump, err := p.findOrDerive(
		args.Bump,
		InterchainTransferExecutePrefix,
		args.DestinationProgram,
	)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "derive interchain transfer execute pda for %s", solana.Base58(args.DestinationProgram))
	}
	return address, bump, nil
}

// findOrDerive uses a known bump when it derives a valid address and searches
// otherwise.
func (p *Program) findOrDerive(bump *uint8, seeds ...[]byte) (ed25519.PublicKey, uint8, error) {
	if bump != nil {
		if address, err := solana.DeriveProgramAddress(p.programID, *bump, seeds...); err == nil {
			return address, *bump, nil
		}
	}
	return solana.FindProgramAddressAndBump(p.programID, seeds...)
}
