package its

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/roles"
	"github.com/interchain-tools/solana-its/pkg/solana/system"
)

type SetFlowLimitInstructionArgs struct {
	TokenId TokenId

	// FlowLimit is the maximum net flow per epoch. Nil removes the limit.
	FlowLimit *uint64
}

type SetFlowLimitInstructionAccounts struct {
	// Payer must be the ITS operator.
	Payer ed25519.PublicKey
}

type flowLimitInstructionData struct {
	FlowLimit *uint64
}

// NewSetFlowLimitInstruction sets a token manager's flow limit through the
// ITS operator rather than a flow limiter of the token manager.
func (p *Program) NewSetFlowLimitInstruction(
	accounts *SetFlowLimitInstructionAccounts,
	args *SetFlowLimitInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "set flow limit: nil accounts or args")
	}
	if err := checkKey("payer", accounts.Payer); err != nil {
		return solana.Instruction{}, err
	}

	itsRoot, tokenManager, err := p.getTokenManager(args.TokenId)
	if err != nil {
		return solana.Instruction{}, err
	}

	itsUserRoles, _, err := roles.GetUserRolesAddress(&roles.GetUserRolesAddressArgs{
		Program:  p.programID,
		Resource: itsRoot,
		User:     accounts.Payer,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive payer roles pda")
	}

	tokenManagerUserRoles, _, err := roles.GetUserRolesAddress(&roles.GetUserRolesAddressArgs{
		Program:  p.programID,
		Resource: tokenManager,
		User:     itsRoot,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive its roles pda")
	}

	data, err := encodeInstruction(InstructionTypeSetFlowLimit, flowLimitInstructionData{
		FlowLimit: args.FlowLimit,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(
		p.programID,
		data,
		signer(accounts.Payer),
		readonly(itsRoot),
		writable(tokenManager),
		readonly(itsUserRoles),
		readonly(tokenManagerUserRoles),
		readonly(system.ProgramKey),
	), nil
}

type SetTokenManagerFlowLimitInstructionArgs struct {
	TokenId   TokenId
	FlowLimit *uint64
}

type SetTokenManagerFlowLimitInstructionAccounts struct {
	Payer       ed25519.PublicKey
	FlowLimiter ed25519.PublicKey
}

func (p *Program) NewSetTokenManagerFlowLimitInstruction(
	accounts *SetTokenManagerFlowLimitInstructionAccounts,
	args *SetTokenManagerFlowLimitInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "set token manager flow limit: nil accounts or args")
	}
	if err := checkKeys(
		namedKey{"payer", accounts.Payer},
		namedKey{"flow limiter", accounts.FlowLimiter},
	); err != nil {
		return solana.Instruction{}, err
	}

	itsRoot, tokenManager, err := p.getTokenManager(args.TokenId)
	if err != nil {
		return solana.Instruction{}, err
	}

	flowLimiterRoles, _, err := roles.GetUserRolesAddress(&roles.GetUserRolesAddressArgs{
		Program:  p.programID,
		Resource: tokenManager,
		User:     accounts.FlowLimiter,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive flow limiter roles pda")
	}

	data, err := encodeInstruction(InstructionTypeSetTokenManagerFlowLimit, flowLimitInstructionData{
		FlowLimit: args.FlowLimit,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(
		p.programID,
		data,
		signer(accounts.Payer),
		readonlySigner(accounts.FlowLimiter),
		readonly(itsRoot),
		writable(tokenManager),
		readonly(flowLimiterRoles),
		readonly(system.ProgramKey),
	), nil
}

type TokenManagerFlowLimiterInstructionArgs struct {
	TokenId TokenId
}

type TokenManagerFlowLimiterInstructionAccounts struct {
	Payer ed25519.PublicKey

	// Operator holds the operator role on the token manager.
	Operator    ed25519.PublicKey
	FlowLimiter ed25519.PublicKey
}

// NewAddTokenManagerFlowLimiterInstruction grants FlowLimiter the flow
// limiter role on the token manager.
func (p *Program) NewAddTokenManagerFlowLimiterInstruction(
	accounts *TokenManagerFlowLimiterInstructionAccounts,
	args *TokenManagerFlowLimiterInstructionArgs,
) (solana.Instruction, error) {
	return p.newTokenManagerFlowLimiterInstruction(InstructionTypeAddTokenManagerFlowLimiter, accounts, args)
}

// NewRemoveTokenManagerFlowLimiterInstruction revokes the flow limiter role.
func (p *Program) NewRemoveTokenManagerFlowLimiterInstruction(
	accounts *TokenManagerFlowLimiterInstructionAccounts,
	args *TokenManagerFlowLimiterInstructionArgs,
) (solana.Instruction, error) {
	return p.newTokenManagerFlowLimiterInstruction(InstructionTypeRemoveTokenManagerFlowLimiter, accounts, args)
}

func (p *Program) newTokenManagerFlowLimiterInstruction(
	t InstructionType,
	accounts *TokenManagerFlowLimiterInstructionAccounts,
	args *TokenManagerFlowLimiterInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrapf(ErrInvalidArgument, "%s: nil accounts or args", t)
	}
	if err := checkKeys(
		namedKey{"payer", accounts.Payer},
		namedKey{"operator", accounts.Operator},
		namedKey{"flow limiter", accounts.FlowLimiter},
	); err != nil {
		return solana.Instruction{}, err
	}

	itsRoot, tokenManager, err := p.getTokenManager(args.TokenId)
	if err != nil {
		return solana.Instruction{}, err
	}

	operatorRoles, _, err := roles.GetUserRolesAddress(&roles.GetUserRolesAddressArgs{
		Program:  p.programID,
		Resource: tokenManager,
		User:     accounts.Operator,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive operator roles pda")
	}

	flowLimiterRoles, _, err := roles.GetUserRolesAddress(&roles.GetUserRolesAddressArgs{
		Program:  p.programID,
		Resource: tokenManager,
		User:     accounts.FlowLimiter,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive flow limiter roles pda")
	}

	data, err := encodeInstruction(t, nil)
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(
		p.programID,
		data,
		readonly(itsRoot),
		readonly(system.ProgramKey),
		signer(accounts.Payer),
		signer(accounts.Operator),
		readonly(operatorRoles),
		readonly(tokenManager),
		readonly(accounts.FlowLimiter),
		writable(flowLimiterRoles),
	), nil
}

func (p *Program) getTokenManager(tokenId TokenId) (itsRoot, tokenManager ed25519.PublicKey, err error) {
	itsRoot, _, err = p.GetItsRootAddress()
	if err != nil {
		return nil, nil, err
	}

	tokenManager, _, err = p.GetTokenManagerAddress(&GetTokenManagerAddressArgs{
		ItsRoot: itsRoot,
		TokenId: tokenId,
	})
	if err != nil {
		return nil, nil, err
	}
	return itsRoot, tokenManager, nil
}
