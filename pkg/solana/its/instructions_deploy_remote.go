package its

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/metadata"
	"github.com/interchain-tools/solana-its/pkg/solana/roles"
)

type DeployRemoteCanonicalInterchainTokenInstructionArgs struct {
	DestinationChain string
	GasValue         uint64
}

type DeployRemoteCanonicalInterchainTokenInstructionAccounts struct {
	Payer ed25519.PublicKey
	Mint  ed25519.PublicKey
}

type deployRemoteCanonicalInterchainTokenInstructionData struct {
	DestinationChain string
	GasValue         uint64
	SigningPdaBump   uint8
}

// NewDeployRemoteCanonicalInterchainTokenInstruction deploys the interchain
// counterpart of a registered canonical token on DestinationChain.
func (p *Program) NewDeployRemoteCanonicalInterchainTokenInstruction(
	accounts *DeployRemoteCanonicalInterchainTokenInstructionAccounts,
	args *DeployRemoteCanonicalInterchainTokenInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "deploy remote canonical interchain token: nil accounts or args")
	}
	if err := checkKeys(
		namedKey{"payer", accounts.Payer},
		namedKey{"mint", accounts.Mint},
	); err != nil {
		return solana.Instruction{}, err
	}
	if err := checkNotEmpty("destination chain", args.DestinationChain); err != nil {
		return solana.Instruction{}, err
	}

	tokenId, err := p.CanonicalTokenId(accounts.Mint)
	if err != nil {
		return solana.Instruction{}, err
	}

	remote, err := p.getRemoteDeploymentAccounts(tokenId, accounts.Mint)
	if err != nil {
		return solana.Instruction{}, err
	}

	data, err := encodeInstruction(InstructionTypeDeployRemoteCanonicalInterchainToken, deployRemoteCanonicalInterchainTokenInstructionData{
		DestinationChain: args.DestinationChain,
		GasValue:         args.GasValue,
		SigningPdaBump:   remote.callContract.signingBump,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(
		p.programID,
		data,
		p.remoteDeploymentAccountMetas(accounts.Payer, accounts.Mint, remote)...,
	), nil
}

type DeployRemoteInterchainTokenInstructionArgs struct {
	Salt             [32]byte
	DestinationChain string
	GasValue         uint64
}

type DeployRemoteInterchainTokenInstructionAccounts struct {
	// Payer must be the deployer of the local token.
	Payer ed25519.PublicKey
}

type deployRemoteInterchainTokenInstructionData struct {
	Salt             [32]byte
	DestinationChain string
	GasValue         uint64
	SigningPdaBump   uint8
}

func (p *Program) NewDeployRemoteInterchainTokenInstruction(
	accounts *DeployRemoteInterchainTokenInstructionAccounts,
	args *DeployRemoteInterchainTokenInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "deploy remote interchain token: nil accounts or args")
	}
	if err := checkKey("payer", accounts.Payer); err != nil {
		return solana.Instruction{}, err
	}
	if err := checkNotEmpty("destination chain", args.DestinationChain); err != nil {
		return solana.Instruction{}, err
	}

	tokenId, mint, err := p.getInterchainTokenMint(accounts.Payer, args.Salt)
	if err != nil {
		return solana.Instruction{}, err
	}

	remote, err := p.getRemoteDeploymentAccounts(tokenId, mint)
	if err != nil {
		return solana.Instruction{}, err
	}

	data, err := encodeInstruction(InstructionTypeDeployRemoteInterchainToken, deployRemoteInterchainTokenInstructionData{
		Salt:             args.Salt,
		DestinationChain: args.DestinationChain,
		GasValue:         args.GasValue,
		SigningPdaBump:   remote.callContract.signingBump,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(
		p.programID,
		data,
		p.remoteDeploymentAccountMetas(accounts.Payer, mint, remote)...,
	), nil
}

type DeployRemoteInterchainTokenWithMinterInstructionArgs struct {
	Salt              [32]byte
	DestinationChain  string
	DestinationMinter []byte
	GasValue          uint64
}

type DeployRemoteInterchainTokenWithMinterInstructionAccounts struct {
	// Payer must be the deployer of the local token.
	Payer ed25519.PublicKey

	// Minter is the local minter that approved the deployment.
	Minter ed25519.PublicKey
}

type deployRemoteInterchainTokenWithMinterInstructionData struct {
	Salt              [32]byte
	DestinationChain  string
	DestinationMinter []byte
	GasValue          uint64
	SigningPdaBump    uint8
}

// NewDeployRemoteInterchainTokenWithMinterInstruction deploys the token on
// DestinationChain with a minter there. It consumes the approval Minter
// granted through ApproveDeployRemoteInterchainToken.
func (p *Program) NewDeployRemoteInterchainTokenWithMinterInstruction(
	accounts *DeployRemoteInterchainTokenWithMinterInstructionAccounts,
	args *DeployRemoteInterchainTokenWithMinterInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "deploy remote interchain token with minter: nil accounts or args")
	}
	if err := checkKeys(
		namedKey{"payer", accounts.Payer},
		namedKey{"minter", accounts.Minter},
	); err != nil {
		return solana.Instruction{}, err
	}
	if err := checkNotEmpty("destination chain", args.DestinationChain); err != nil {
		return solana.Instruction{}, err
	}
	if len(args.DestinationMinter) == 0 {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "destination minter: empty")
	}

	tokenId, mint, err := p.getInterchainTokenMint(accounts.Payer, args.Salt)
	if err != nil {
		return solana.Instruction{}, err
	}

	remote, err := p.getRemoteDeploymentAccounts(tokenId, mint)
	if err != nil {
		return solana.Instruction{}, err
	}

	deployApproval, _, err := p.GetDeploymentApprovalAddress(&GetDeploymentApprovalAddressArgs{
		Minter:           accounts.Minter,
		TokenId:          tokenId,
		DestinationChain: args.DestinationChain,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	minterRoles, _, err := roles.GetUserRolesAddress(&roles.GetUserRolesAddressArgs{
		Program:  p.programID,
		Resource: remote.tokenManager,
		User:     accounts.Minter,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive minter roles pda")
	}

	data, err := encodeInstruction(InstructionTypeDeployRemoteInterchainTokenWithMinter, deployRemoteInterchainTokenWithMinterInstructionData{
		Salt:              args.Salt,
		DestinationChain:  args.DestinationChain,
		DestinationMinter: args.DestinationMinter,
		GasValue:          args.GasValue,
		SigningPdaBump:    remote.callContract.signingBump,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	accountMetas := []solana.AccountMeta{
		signer(accounts.Payer),
		readonly(mint),
		readonly(remote.metadata),
		readonly(remote.tokenManager),
		readonly(accounts.Minter),
		writable(deployApproval),
		readonly(minterRoles),
	}
	accountMetas = append(accountMetas, p.callContractAccountMetas(remote.callContract)...)

	return solana.NewInstruction(p.programID, data, accountMetas...), nil
}

type remoteDeploymentAccounts struct {
	tokenManager ed25519.PublicKey
	metadata     ed25519.PublicKey
	callContract *callContractAccounts
}

func (p *Program) getRemoteDeploymentAccounts(tokenId TokenId, mint ed25519.PublicKey) (*remoteDeploymentAccounts, error) {
	callContract, err := p.getCallContractAccounts()
	if err != nil {
		return nil, err
	}

	tokenManager, _, err := p.GetTokenManagerAddress(&GetTokenManagerAddressArgs{
		ItsRoot: callContract.itsRoot,
		TokenId: tokenId,
	})
	if err != nil {
		return nil, err
	}

	tokenMetadata, _, err := metadata.GetMetadataAddress(&metadata.GetMetadataAddressArgs{
		Mint: mint,
	})
	if err != nil {
		return nil, errors.Wrap(err, "derive token metadata pda")
	}

	return &remoteDeploymentAccounts{
		tokenManager: tokenManager,
		metadata:     tokenMetadata,
		callContract: callContract,
	}, nil
}

func (p *Program) remoteDeploymentAccountMetas(payer, mint ed25519.PublicKey, remote *remoteDeploymentAccounts) []solana.AccountMeta {
	accountMetas := []solana.AccountMeta{
		signer(payer),
		readonly(mint),
		readonly(remote.metadata),
		readonly(remote.tokenManager),
	}
	return append(accountMetas, p.callContractAccountMetas(remote.callContract)...)
}

func (p *Program) getInterchainTokenMint(deployer ed25519.PublicKey, salt [32]byte) (TokenId, ed25519.PublicKey, error) {
	tokenId, err := p.InterchainTokenId(deployer, salt[:])
	if err != nil {
		return TokenId{}, nil, err
	}

	itsRoot, _, err := p.GetItsRootAddress()
	if err != nil {
		return TokenId{}, nil, err
	}

	mint, _, err := p.GetInterchainTokenAddress(&GetInterchainTokenAddressArgs{
		ItsRoot: itsRoot,
		TokenId: tokenId,
	})
	if err != nil {
		return TokenId{}, nil, err
	}
	return tokenId, mint, nil
}
