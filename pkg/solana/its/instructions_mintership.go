package its

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/roles"
	"github.com/interchain-tools/solana-its/pkg/solana/system"
	"github.com/interchain-tools/solana-its/pkg/solana/token"
)

type TransferInterchainTokenMintershipInstructionAccounts struct {
	// Payer is the current minter.
	Payer ed25519.PublicKey
	To    ed25519.PublicKey
}

func (p *Program) NewTransferInterchainTokenMintershipInstruction(
	accounts *TransferInterchainTokenMintershipInstructionAccounts,
	args *TokenManagerRoleInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "role instruction: nil accounts or args")
	}
	return p.NewRoleInstruction(&RoleInstructionAccounts{
		Payer:        accounts.Payer,
		Counterparty: accounts.To,
	}, &RoleInstructionArgs{
		Role:     roles.Minter,
		Action:   RoleActionTransfer,
		Resource: RoleResourceTokenManager,
		TokenId:  args.TokenId,
	})
}

type ProposeInterchainTokenMintershipInstructionAccounts struct {
	Payer ed25519.PublicKey
	To    ed25519.PublicKey
}

func (p *Program) NewProposeInterchainTokenMintershipInstruction(
	accounts *ProposeInterchainTokenMintershipInstructionAccounts,
	args *TokenManagerRoleInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "role instruction: nil accounts or args")
	}
	return p.NewRoleInstruction(&RoleInstructionAccounts{
		Payer:        accounts.Payer,
		Counterparty: accounts.To,
	}, &RoleInstructionArgs{
		Role:     roles.Minter,
		Action:   RoleActionPropose,
		Resource: RoleResourceTokenManager,
		TokenId:  args.TokenId,
	})
}

type AcceptInterchainTokenMintershipInstructionAccounts struct {
	// Payer is the recipient of the proposal.
	Payer ed25519.PublicKey
	From  ed25519.PublicKey
}

func (p *Program) NewAcceptInterchainTokenMintershipInstruction(
	accounts *AcceptInterchainTokenMintershipInstructionAccounts,
	args *TokenManagerRoleInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "role instruction: nil accounts or args")
	}
	return p.NewRoleInstruction(&RoleInstructionAccounts{
		Payer:        accounts.Payer,
		Counterparty: accounts.From,
	}, &RoleInstructionArgs{
		Role:     roles.Minter,
		Action:   RoleActionAccept,
		Resource: RoleResourceTokenManager,
		TokenId:  args.TokenId,
	})
}

type HandoverMintAuthorityInstructionArgs struct {
	TokenId TokenId
}

type HandoverMintAuthorityInstructionAccounts struct {
	Payer ed25519.PublicKey
	// Authority is the mint's current mint authority. It becomes the minter.
	Authority    ed25519.PublicKey
	Mint         ed25519.PublicKey
	TokenProgram ed25519.PublicKey
}

type handoverMintAuthorityInstructionData struct {
	TokenId [32]byte
}

// NewHandoverMintAuthorityInstruction moves the mint authority of a
// registered custom token to its token manager.
func (p *Program) NewHandoverMintAuthorityInstruction(
	accounts *HandoverMintAuthorityInstructionAccounts,
	args *HandoverMintAuthorityInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "handover mint authority: nil accounts or args")
	}
	if err := checkKeys(
		namedKey{"payer", accounts.Payer},
		namedKey{"authority", accounts.Authority},
		namedKey{"mint", accounts.Mint},
		namedKey{"token program", accounts.TokenProgram},
	); err != nil {
		return solana.Instruction{}, err
	}

	itsRoot, tokenManager, err := p.getTokenManager(args.TokenId)
	if err != nil {
		return solana.Instruction{}, err
	}

	minterRoles, _, err := roles.GetUserRolesAddress(&roles.GetUserRolesAddressArgs{
		Program:  p.programID,
		Resource: tokenManager,
		User:     accounts.Authority,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive minter roles pda")
	}

	data, err := encodeInstruction(InstructionTypeHandoverMintAuthority, handoverMintAuthorityInstructionData{
		TokenId: args.TokenId,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(
		p.programID,
		data,
		signer(accounts.Payer),
		readonlySigner(accounts.Authority),
		writable(accounts.Mint),
		readonly(itsRoot),
		readonly(tokenManager),
		writable(minterRoles),
		readonly(accounts.TokenProgram),
		readonly(system.ProgramKey),
	), nil
}

type MintInterchainTokenInstructionArgs struct {
	TokenId TokenId
	Amount  uint64
}

type MintInterchainTokenInstructionAccounts struct {
	Payer        ed25519.PublicKey
	Mint         ed25519.PublicKey
	To           ed25519.PublicKey
	Minter       ed25519.PublicKey
	TokenProgram ed25519.PublicKey
}

type mintInterchainTokenInstructionData struct {
	Amount uint64
}

// NewMintInterchainTokenInstruction mints Amount into the associated token
// account of To, creating it when missing.
func (p *Program) NewMintInterchainTokenInstruction(
	accounts *MintInterchainTokenInstructionAccounts,
	args *MintInterchainTokenInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "mint interchain token: nil accounts or args")
	}
	if err := checkKeys(
		namedKey{"payer", accounts.Payer},
		namedKey{"mint", accounts.Mint},
		namedKey{"to", accounts.To},
		namedKey{"minter", accounts.Minter},
		namedKey{"token program", accounts.TokenProgram},
	); err != nil {
		return solana.Instruction{}, err
	}
	if args.Amount == 0 {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "amount: zero")
	}

	itsRoot, tokenManager, err := p.getTokenManager(args.TokenId)
	if err != nil {
		return solana.Instruction{}, err
	}

	destination, err := token.GetAssociatedAccount(accounts.To, accounts.Mint, accounts.TokenProgram)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive destination ata")
	}

	minterRoles, _, err := roles.GetUserRolesAddress(&roles.GetUserRolesAddressArgs{
		Program:  p.programID,
		Resource: tokenManager,
		User:     accounts.Minter,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive minter roles pda")
	}

	data, err := encodeInstruction(InstructionTypeMintInterchainToken, mintInterchainTokenInstructionData{
		Amount: args.Amount,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(
		p.programID,
		data,
		signer(accounts.Payer),
		writable(accounts.Mint),
		writable(accounts.To),
		writable(destination),
		readonly(itsRoot),
		readonly(tokenManager),
		readonlySigner(accounts.Minter),
		readonly(minterRoles),
		readonly(accounts.TokenProgram),
		readonly(system.ProgramKey),
		readonly(token.AssociatedTokenAccountProgramKey),
	), nil
}
