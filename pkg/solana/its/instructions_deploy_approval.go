package its

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/roles"
	"github.com/interchain-tools/solana-its/pkg/solana/system"
)

type ApproveDeployRemoteInterchainTokenInstructionArgs struct {
	Salt              [32]byte
	DestinationChain  string
	DestinationMinter []byte
}

type ApproveDeployRemoteInterchainTokenInstructionAccounts struct {
	// Payer holds the minter role on the token and grants the approval.
	Payer    ed25519.PublicKey
	Deployer ed25519.PublicKey
}

type approveDeployRemoteInterchainTokenInstructionData struct {
	Deployer          [32]byte
	Salt              [32]byte
	DestinationChain  string
	DestinationMinter []byte
}

// NewApproveDeployRemoteInterchainTokenInstruction lets Deployer deploy the
// token to DestinationChain with DestinationMinter as its minter there.
func (p *Program) NewApproveDeployRemoteInterchainTokenInstruction(
	accounts *ApproveDeployRemoteInterchainTokenInstructionAccounts,
	args *ApproveDeployRemoteInterchainTokenInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "approve deploy remote interchain token: nil accounts or args")
	}
	if err := checkKeys(
		namedKey{"payer", accounts.Payer},
		namedKey{"deployer", accounts.Deployer},
	); err != nil {
		return solana.Instruction{}, err
	}
	if err := checkNotEmpty("destination chain", args.DestinationChain); err != nil {
		return solana.Instruction{}, err
	}
	if len(args.DestinationMinter) == 0 {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "destination minter: empty")
	}

	tokenId, err := p.InterchainTokenId(accounts.Deployer, args.Salt[:])
	if err != nil {
		return solana.Instruction{}, err
	}

	itsRoot, _, err := p.GetItsRootAddress()
	if err != nil {
		return solana.Instruction{}, err
	}

	tokenManager, _, err := p.GetTokenManagerAddress(&GetTokenManagerAddressArgs{
		ItsRoot: itsRoot,
		TokenId: tokenId,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	minterRoles, _, err := roles.GetUserRolesAddress(&roles.GetUserRolesAddressArgs{
		Program:  p.programID,
		Resource: tokenManager,
		User:     accounts.Payer,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive minter roles pda")
	}

	deployApproval, _, err := p.GetDeploymentApprovalAddress(&GetDeploymentApprovalAddressArgs{
		Minter:           accounts.Payer,
		TokenId:          tokenId,
		DestinationChain: args.DestinationChain,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	data, err := encodeInstruction(InstructionTypeApproveDeployRemoteInterchainToken, approveDeployRemoteInterchainTokenInstructionData{
		Deployer:          toArray(accounts.Deployer),
		Salt:              args.Salt,
		DestinationChain:  args.DestinationChain,
		DestinationMinter: args.DestinationMinter,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(
		p.programID,
		data,
		signer(accounts.Payer),
		readonly(tokenManager),
		readonly(minterRoles),
		writable(deployApproval),
		readonly(system.ProgramKey),
	), nil
}

type RevokeDeployRemoteInterchainTokenInstructionArgs struct {
	Salt             [32]byte
	DestinationChain string
}

type RevokeDeployRemoteInterchainTokenInstructionAccounts struct {
	// Payer is the minter that granted the approval.
	Payer    ed25519.PublicKey
	Deployer ed25519.PublicKey
}

type revokeDeployRemoteInterchainTokenInstructionData struct {
	Deployer         [32]byte
	Salt             [32]byte
	DestinationChain string
}

func (p *Program) NewRevokeDeployRemoteInterchainTokenInstruction(
	accounts *RevokeDeployRemoteInterchainTokenInstructionAccounts,
	args *RevokeDeployRemoteInterchainTokenInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "revoke deploy remote interchain token: nil accounts or args")
	}
	if err := checkKeys(
		namedKey{"payer", accounts.Payer},
		namedKey{"deployer", accounts.Deployer},
	); err != nil {
		return solana.Instruction{}, err
	}
	if err := checkNotEmpty("destination chain", args.DestinationChain); err != nil {
		return solana.Instruction{}, err
	}

	tokenId, err := p.InterchainTokenId(accounts.Deployer, args.Salt[:])
	if err != nil {
		return solana.Instruction{}, err
	}

	deployApproval, _, err := p.GetDeploymentApprovalAddress(&GetDeploymentApprovalAddressArgs{
		Minter:           accounts.Payer,
		TokenId:          tokenId,
		DestinationChain: args.DestinationChain,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	data, err := encodeInstruction(InstructionTypeRevokeDeployRemoteInterchainToken, revokeDeployRemoteInterchainTokenInstructionData{
		Deployer:         toArray(accounts.Deployer),
		Salt:             args.Salt,
		DestinationChain: args.DestinationChain,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(
		p.programID,
		data,
		signer(accounts.Payer),
		writable(deployApproval),
		readonly(system.ProgramKey),
	), nil
}
