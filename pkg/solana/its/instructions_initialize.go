package its

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/loader"
	"github.com/interchain-tools/solana-its/pkg/solana/roles"
	"github.com/interchain-tools/solana-its/pkg/solana/system"
)

type InitializeInstructionArgs struct {
	ChainName     string
	ItsHubAddress string
}

type InitializeInstructionAccounts struct {
	// Payer must be the program's upgrade authority.
	Payer    ed25519.PublicKey
	Operator ed25519.PublicKey
}

type initializeInstructionData struct {
	ChainName     string
	ItsHubAddress string
}

// NewInitializeInstruction creates the root config and grants Operator the
// operator role on it.
func (p *Program) NewInitializeInstruction(
	accounts *InitializeInstructionAccounts,
	args *InitializeInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "initialize: nil accounts or args")
	}
	if err := checkKeys(
		namedKey{"payer", accounts.Payer},
		namedKey{"operator", accounts.Operator},
	); err != nil {
		return solana.Instruction{}, err
	}
	if err := checkNotEmpty("chain name", args.ChainName); err != nil {
		return solana.Instruction{}, err
	}
	if err := checkNotEmpty("its hub address", args.ItsHubAddress); err != nil {
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

	operatorRoles, _, err := roles.GetUserRolesAddress(&roles.GetUserRolesAddressArgs{
		Program:  p.programID,
		Resource: itsRoot,
		User:     accounts.Operator,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive operator roles pda")
	}

	data, err := encodeInstruction(InstructionTypeInitialize, initializeInstructionData{
		ChainName:     args.ChainName,
		ItsHubAddress: args.ItsHubAddress,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.Instruction{
		Program: p.programID,

		// Instruction args
		Data: data,

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Payer,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  programData,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  itsRoot,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  system.ProgramKey,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Operator,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  operatorRoles,
				IsWritable: true,
				IsSigner:   false,
			},
		},
	}, nil
}

type SetPauseStatusInstructionArgs struct {
	Paused bool
}

type SetPauseStatusInstructionAccounts struct {
	// Payer must be the program's upgrade authority.
	Payer ed25519.PublicKey
}

type setPauseStatusInstructionData struct {
	Paused bool
}

func (p *Program) NewSetPauseStatusInstruction(
	accounts *SetPauseStatusInstructionAccounts,
	args *SetPauseStatusInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "set pause status: nil accounts or args")
	}
	if err := checkKey("payer", accounts.Payer); err != nil {
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

	data, err := encodeInstruction(InstructionTypeSetPauseStatus, setPauseStatusInstructionData{
		Paused: args.Paused,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(
		p.programID,
		data,
		signer(accounts.Payer),
		readonly(programData),
		writable(itsRoot),
		readonly(system.ProgramKey),
	), nil
}
