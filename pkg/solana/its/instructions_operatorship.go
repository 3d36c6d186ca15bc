package its

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/roles"
)

type TransferOperatorshipInstructionAccounts struct {
	// Payer is the current ITS operator.
	Payer ed25519.PublicKey
	To    ed25519.PublicKey
}

func (p *Program) NewTransferOperatorshipInstruction(accounts *TransferOperatorshipInstructionAccounts) (solana.Instruction, error) {
	if accounts == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "role instruction: nil accounts or args")
	}
	return p.NewRoleInstruction(&RoleInstructionAccounts{
		Payer:        accounts.Payer,
		Counterparty: accounts.To,
	}, &RoleInstructionArgs{
		Role:     roles.Operator,
		Action:   RoleActionTransfer,
		Resource: RoleResourceItsRoot,
	})
}

type ProposeOperatorshipInstructionAccounts struct {
	Payer ed25519.PublicKey
	To    ed25519.PublicKey
}

func (p *Program) NewProposeOperatorshipInstruction(accounts *ProposeOperatorshipInstructionAccounts) (solana.Instruction, error) {
	if accounts == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "role instruction: nil accounts or args")
	}
	return p.NewRoleInstruction(&RoleInstructionAccounts{
		Payer:        accounts.Payer,
		Counterparty: accounts.To,
	}, &RoleInstructionArgs{
		Role:     roles.Operator,
		Action:   RoleActionPropose,
		Resource: RoleResourceItsRoot,
	})
}

type AcceptOperatorshipInstructionAccounts struct {
	// Payer is the recipient of the proposal.
	Payer ed25519.PublicKey
	From  ed25519.PublicKey
}

func (p *Program) NewAcceptOperatorshipInstruction(accounts *AcceptOperatorshipInstructionAccounts) (solana.Instruction, error) {
	if accounts == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "role instruction: nil accounts or args")
	}
	return p.NewRoleInstruction(&RoleInstructionAccounts{
		Payer:        accounts.Payer,
		Counterparty: accounts.From,
	}, &RoleInstructionArgs{
		Role:     roles.Operator,
		Action:   RoleActionAccept,
		Resource: RoleResourceItsRoot,
	})
}

type TokenManagerRoleInstructionArgs struct {
	TokenId TokenId
}

type TransferTokenManagerOperatorshipInstructionAccounts struct {
	Payer ed25519.PublicKey
	// Sender is the current operator of the token manager.
	Sender ed25519.PublicKey
	To     ed25519.PublicKey
}

func (p *Program) NewTransferTokenManagerOperatorshipInstruction(
	accounts *TransferTokenManagerOperatorshipInstructionAccounts,
	args *TokenManagerRoleInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "role instruction: nil accounts or args")
	}
	return p.NewRoleInstruction(&RoleInstructionAccounts{
		Payer:        accounts.Payer,
		Authority:    accounts.Sender,
		Counterparty: accounts.To,
	}, &RoleInstructionArgs{
		Role:     roles.Operator,
		Action:   RoleActionTransfer,
		Resource: RoleResourceTokenManager,
		TokenId:  args.TokenId,
	})
}

type ProposeTokenManagerOperatorshipInstructionAccounts struct {
	Payer    ed25519.PublicKey
	Proposer ed25519.PublicKey
	To       ed25519.PublicKey
}

func (p *Program) NewProposeTokenManagerOperatorshipInstruction(
	accounts *ProposeTokenManagerOperatorshipInstructionAccounts,
	args *TokenManagerRoleInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "role instruction: nil accounts or args")
	}
	return p.NewRoleInstruction(&RoleInstructionAccounts{
		Payer:        accounts.Payer,
		Authority:    accounts.Proposer,
		Counterparty: accounts.To,
	}, &RoleInstructionArgs{
		Role:     roles.Operator,
		Action:   RoleActionPropose,
		Resource: RoleResourceTokenManager,
		TokenId:  args.TokenId,
	})
}

type AcceptTokenManagerOperatorshipInstructionAccounts struct {
	Payer    ed25519.PublicKey
	Accepter ed25519.PublicKey
	From     ed25519.PublicKey
}

func (p *Program) NewAcceptTokenManagerOperatorshipInstruction(
	accounts *AcceptTokenManagerOperatorshipInstructionAccounts,
	args *TokenManagerRoleInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "role instruction: nil accounts or args")
	}
	return p.NewRoleInstruction(&RoleInstructionAccounts{
		Payer:        accounts.Payer,
		Authority:    accounts.Accepter,
		Counterparty: accounts.From,
	}, &RoleInstructionArgs{
		Role:     roles.Operator,
		Action:   RoleActionAccept,
		Resource: RoleResourceTokenManager,
		TokenId:  args.TokenId,
	})
}
