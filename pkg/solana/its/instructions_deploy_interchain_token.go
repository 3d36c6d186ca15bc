package its

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/metadata"
	"github.com/interchain-tools/solana-its/pkg/solana/roles"
	"github.com/interchain-tools/solana-its/pkg/solana/system"
	"github.com/interchain-tools/solana-its/pkg/solana/token"
)

type DeployInterchainTokenInstructionArgs struct {
	Salt          [32]byte
	Name          string
	Symbol        string
	Decimals      uint8
	InitialSupply uint64
}

type DeployInterchainTokenInstructionAccounts struct {
	Payer ed25519.PublicKey

	// Minter is optional. When set it receives the minter role on the new
	// token manager.
	Minter ed25519.PublicKey
}

type deployInterchainTokenInstructionData struct {
	Salt          [32]byte
	Name          string
	Symbol        string
	Decimals      uint8
	InitialSupply uint64
}

// NewDeployInterchainTokenInstruction creates a new token-2022 mint owned by
// ITS together with its token manager. The initial supply goes to the payer.
func (p *Program) NewDeployInterchainTokenInstruction(
	accounts *DeployInterchainTokenInstructionAccounts,
	args *DeployInterchainTokenInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "deploy interchain token: nil accounts or args")
	}
	if err := checkKey("payer", accounts.Payer); err != nil {
		return solana.Instruction{}, err
	}
	if accounts.Minter != nil {
		if err := checkKey("minter", accounts.Minter); err != nil {
			return solana.Instruction{}, err
		}
	}
	if err := checkNotEmpty("name", args.Name); err != nil {
		return solana.Instruction{}, err
	}
	if err := checkNotEmpty("symbol", args.Symbol); err != nil {
		return solana.Instruction{}, err
	}
	if args.InitialSupply == 0 && accounts.Minter == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "initial supply: zero supply requires a minter")
	}

	tokenId, err := p.InterchainTokenId(accounts.Payer, args.Salt[:])
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

	mint, _, err := p.GetInterchainTokenAddress(&GetInterchainTokenAddressArgs{
		ItsRoot: itsRoot,
		TokenId: tokenId,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	tokenManagerAta, err := token.GetAssociatedAccount(tokenManager, mint, token.Token2022ProgramKey)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive token manager ata")
	}

	payerAta, err := token.GetAssociatedAccount(accounts.Payer, mint, token.Token2022ProgramKey)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive payer ata")
	}

	itsRoles, _, err := roles.GetUserRolesAddress(&roles.GetUserRolesAddressArgs{
		Program:  p.programID,
		Resource: tokenManager,
		User:     itsRoot,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive its roles pda")
	}

	tokenMetadata, _, err := metadata.GetMetadataAddress(&metadata.GetMetadataAddressArgs{
		Mint: mint,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive token metadata pda")
	}

	accountMetas := []solana.AccountMeta{
		signer(accounts.Payer),
		readonly(system.ProgramKey),
		readonly(itsRoot),
		writable(tokenManager),
		writable(mint),
		writable(tokenManagerAta),
		readonly(token.Token2022ProgramKey),
		readonly(token.AssociatedTokenAccountProgramKey),
		writable(itsRoles),
		readonly(system.RentSysVar),
		readonly(system.InstructionsSysVar),
		readonly(metadata.PROGRAM_ID),
		writable(tokenMetadata),
		writable(payerAta),
	}

	if accounts.Minter != nil {
		minterRoles, _, err := roles.GetUserRolesAddress(&roles.GetUserRolesAddressArgs{
			Program:  p.programID,
			Resource: tokenManager,
			User:     accounts.Minter,
		})
		if err != nil {
			return solana.Instruction{}, errors.Wrap(err, "derive minter roles pda")
		}

		accountMetas = append(accountMetas, readonly(accounts.Minter), writable(minterRoles))
	}

	data, err := encodeInstruction(InstructionTypeDeployInterchainToken, deployInterchainTokenInstructionData{
		Salt:          args.Salt,
		Name:          args.Name,
		Symbol:        args.Symbol,
		Decimals:      args.Decimals,
		InitialSupply: args.InitialSupply,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(p.programID, data, accountMetas...), nil
}
