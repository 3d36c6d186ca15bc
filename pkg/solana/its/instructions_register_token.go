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

type RegisterCanonicalInterchainTokenInstructionAccounts struct {
	Payer        ed25519.PublicKey
	Mint         ed25519.PublicKey
	TokenProgram ed25519.PublicKey
}

// NewRegisterCanonicalInterchainTokenInstruction registers an existing mint
// under a lock/unlock token manager. The token id depends only on the mint.
func (p *Program) NewRegisterCanonicalInterchainTokenInstruction(
	accounts *RegisterCanonicalInterchainTokenInstructionAccounts,
) (solana.Instruction, error) {
	if accounts == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "register canonical interchain token: nil accounts")
	}
	if err := checkKeys(
		namedKey{"payer", accounts.Payer},
		namedKey{"mint", accounts.Mint},
		namedKey{"token program", accounts.TokenProgram},
	); err != nil {
		return solana.Instruction{}, err
	}

	tokenId, err := p.CanonicalTokenId(accounts.Mint)
	if err != nil {
		return solana.Instruction{}, err
	}

	registration, err := p.getTokenRegistrationAccounts(tokenId, accounts.Mint, accounts.TokenProgram)
	if err != nil {
		return solana.Instruction{}, err
	}

	data, err := encodeInstruction(InstructionTypeRegisterCanonicalInterchainToken, nil)
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(
		p.programID,
		data,
		registration.accountMetas(accounts.Payer, accounts.Mint, accounts.TokenProgram)...,
	), nil
}

type RegisterCustomTokenInstructionArgs struct {
	Salt             [32]byte
	TokenManagerType TokenManagerType
}

type RegisterCustomTokenInstructionAccounts struct {
	Payer        ed25519.PublicKey
	Mint         ed25519.PublicKey
	TokenProgram ed25519.PublicKey

	// Operator is optional. When nil, neither the operator nor its roles
	// account is passed.
	Operator ed25519.PublicKey
}

type registerCustomTokenInstructionData struct {
	Salt             [32]byte
	TokenManagerType TokenManagerType
	Operator         *[32]byte
}

// NewRegisterCustomTokenInstruction registers an existing mint with a token
// manager of the caller's choosing, to be linked to tokens on other chains.
func (p *Program) NewRegisterCustomTokenInstruction(
	accounts *RegisterCustomTokenInstructionAccounts,
	args *RegisterCustomTokenInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "register custom token: nil accounts or args")
	}
	if err := checkKeys(
		namedKey{"payer", accounts.Payer},
		namedKey{"mint", accounts.Mint},
		namedKey{"token program", accounts.TokenProgram},
	); err != nil {
		return solana.Instruction{}, err
	}
	if accounts.Operator != nil {
		if err := checkKey("operator", accounts.Operator); err != nil {
			return solana.Instruction{}, err
		}
	}
	if !args.TokenManagerType.IsCustom() {
		return solana.Instruction{}, errors.Wrapf(ErrInvalidArgument, "token manager type: %s cannot be registered", args.TokenManagerType)
	}

	tokenId, err := p.LinkedTokenId(accounts.Payer, args.Salt[:])
	if err != nil {
		return solana.Instruction{}, err
	}

	registration, err := p.getTokenRegistrationAccounts(tokenId, accounts.Mint, accounts.TokenProgram)
	if err != nil {
		return solana.Instruction{}, err
	}

	instructionData := registerCustomTokenInstructionData{
		Salt:             args.Salt,
		TokenManagerType: args.TokenManagerType,
	}
	accountMetas := registration.accountMetas(accounts.Payer, accounts.Mint, accounts.TokenProgram)

	if accounts.Operator != nil {
		operatorRoles, _, err := roles.GetUserRolesAddress(&roles.GetUserRolesAddressArgs{
			Program:  p.programID,
			Resource: registration.tokenManager,
			User:     accounts.Operator,
		})
		if err != nil {
			return solana.Instruction{}, errors.Wrap(err, "derive operator roles pda")
		}

		operator := toArray(accounts.Operator)
		instructionData.Operator = &operator
		accountMetas = append(accountMetas, writable(accounts.Operator), writable(operatorRoles))
	}

	data, err := encodeInstruction(InstructionTypeRegisterCustomToken, instructionData)
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(p.programID, data, accountMetas...), nil
}

type tokenRegistrationAccounts struct {
	itsRoot         ed25519.PublicKey
	tokenManager    ed25519.PublicKey
	tokenManagerAta ed25519.PublicKey
	itsRoles        ed25519.PublicKey
	metadata        ed25519.PublicKey
}

func (p *Program) getTokenRegistrationAccounts(tokenId TokenId, mint, tokenProgram ed25519.PublicKey) (*tokenRegistrationAccounts, error) {
	itsRoot, _, err := p.GetItsRootAddress()
	if err != nil {
		return nil, err
	}

	tokenManager, _, err := p.GetTokenManagerAddress(&GetTokenManagerAddressArgs{
		ItsRoot: itsRoot,
		TokenId: tokenId,
	})
	if err != nil {
		return nil, err
	}

	tokenManagerAta, err := token.GetAssociatedAccount(tokenManager, mint, tokenProgram)
	if err != nil {
		return nil, errors.Wrap(err, "derive token manager ata")
	}

	itsRoles, _, err := roles.GetUserRolesAddress(&roles.GetUserRolesAddressArgs{
		Program:  p.programID,
		Resource: tokenManager,
		User:     itsRoot,
	})
	if err != nil {
		return nil, errors.Wrap(err, "derive its roles pda")
	}

	tokenMetadata, _, err := metadata.GetMetadataAddress(&metadata.GetMetadataAddressArgs{
		Mint: mint,
	})
	if err != nil {
		return nil, errors.Wrap(err, "derive token metadata pda")
	}

	return &tokenRegistrationAccounts{
		itsRoot:         itsRoot,
		tokenManager:    tokenManager,
		tokenManagerAta: tokenManagerAta,
		itsRoles:        itsRoles,
		metadata:        tokenMetadata,
	}, nil
}

func (a *tokenRegistrationAccounts) accountMetas(payer, mint, tokenProgram ed25519.PublicKey) []solana.AccountMeta {
	return []solana.AccountMeta{
		signer(payer),
		readonly(a.metadata),
		readonly(system.ProgramKey),
		readonly(a.itsRoot),
		writable(a.tokenManager),
		writable(mint),
		writable(a.tokenManagerAta),
		readonly(tokenProgram),
		readonly(token.AssociatedTokenAccountProgramKey),
		writable(a.itsRoles),
		readonly(system.RentSysVar),
	}
}
