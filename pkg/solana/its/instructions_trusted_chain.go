package its

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/loader"
	"github.com/interchain-tools/solana-its/pkg/solana/roles"
	"github.com/interchain-tools/solana-its/pkg/solana/system"
)

type SetTrustedChainInstructionArgs struct {
	ChainName string
}

type SetTrustedChainInstructionAccounts struct {
	// Payer is either the upgrade authority or the ITS operator.
	Payer ed25519.PublicKey
}

type RemoveTrustedChainInstructionArgs struct {
	ChainName string
}

type RemoveTrustedChainInstructionAccounts struct {
	Payer ed25519.PublicKey
}

type trustedChainInstructionData struct {
	ChainName string
}

func (p *Program) NewSetTrustedChainInstruction(
	accounts *SetTrustedChainInstructionAccounts,
	args *SetTrustedChainInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "set trusted chain: nil accounts or args")
	}
	return p.newTrustedChainInstruction(InstructionTypeSetTrustedChain, accounts.Payer, args.ChainName)
}

func (p *Program) NewRemoveTrustedChainInstruction(
	accounts *RemoveTrustedChainInstructionAccounts,
	args *RemoveTrustedChainInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "remove trusted chain: nil accounts or args")
	}
	return p.newTrustedChainInstruction(InstructionTypeRemoveTrustedChain, accounts.Payer, args.ChainName)
}

func (p *Program) newTrustedChainInstruction(t InstructionType, payer ed25519.PublicKey, chainName string) (solana.Instruction, error) {
	if err := checkKey("payer", payer); err != nil {
		return solana.Instruction{}, err
	}
	if err := checkNotEmpty("chain name", chainName); err != nil {
		return solana.Instruction{}, err
	}

	programData, _, err := loader.GetProgramDataAddress(p.programID)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive program data address")
	}

	itsRoot, _, err := p.GetItsRootAddress()
	if err != nil {
		return solana.Instruction{}, err
	}

	payerRoles, _, err := roles.GetUserRolesAddress(&roles.GetUserRolesAddressArgs{
		Program:  p.programID,
		Resource: itsRoot,
		User:     payer,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive payer roles pda")
	}

	data, err := encodeInstruction(t, trustedChainInstructionData{ChainName: chainName})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(
		p.programID,
		data,
		signer(payer),
		readonly(payerRoles),
		readonly(programData),
		writable(itsRoot),
		readonly(system.ProgramKey),
	), nil
}
