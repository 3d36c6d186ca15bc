package its

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/interchain-tools/solana-its/pkg/solana"
)

type RegisterTokenMetadataInstructionArgs struct {
	GasValue uint64
}

type RegisterTokenMetadataInstructionAccounts struct {
	Payer ed25519.PublicKey
	Mint  ed25519.PublicKey
}

type registerTokenMetadataInstructionData struct {
	GasValue       uint64
	SigningPdaBump uint8
}

// NewRegisterTokenMetadataInstruction announces the decimals of a mint to the
// hub so custom tokens can be linked to it.
func (p *Program) NewRegisterTokenMetadataInstruction(
	accounts *RegisterTokenMetadataInstructionAccounts,
	args *RegisterTokenMetadataInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "register token metadata: nil accounts or args")
	}
	if err := checkKeys(
		namedKey{"payer", accounts.Payer},
		namedKey{"mint", accounts.Mint},
	); err != nil {
		return solana.Instruction{}, err
	}

	callContract, err := p.getCallContractAccounts()
	if err != nil {
		return solana.Instruction{}, err
	}

	data, err := encodeInstruction(InstructionTypeRegisterTokenMetadata, registerTokenMetadataInstructionData{
		GasValue:       args.GasValue,
		SigningPdaBump: callContract.signingBump,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	accountMetas := []solana.AccountMeta{
		signer(accounts.Payer),
		readonly(accounts.Mint),
	}
	accountMetas = append(accountMetas, p.callContractAccountMetas(callContract)...)

	return solana.NewInstruction(p.programID, data, accountMetas...), nil
}

type LinkTokenInstructionArgs struct {
	Salt                    [32]byte
	DestinationChain        string
	DestinationTokenAddress []byte
	TokenManagerType        TokenManagerType
	LinkParams              []byte
	GasValue                uint64
}

type LinkTokenInstructionAccounts struct {
	// Payer must be the deployer that registered the custom token.
	Payer ed25519.PublicKey
}

type linkTokenInstructionData struct {
	Salt                    [32]byte
	DestinationChain        string
	DestinationTokenAddress []byte
	TokenManagerType        TokenManagerType
	LinkParams              []byte
	GasValue                uint64
	SigningPdaBump          uint8
}

// NewLinkTokenInstruction links a registered custom token to an existing
// token on DestinationChain.
func (p *Program) NewLinkTokenInstruction(
	accounts *LinkTokenInstructionAccounts,
	args *LinkTokenInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "link token: nil accounts or args")
	}
	if err := checkKey("payer", accounts.Payer); err != nil {
		return solana.Instruction{}, err
	}
	if err := checkNotEmpty("destination chain", args.DestinationChain); err != nil {
		return solana.Instruction{}, err
	}
	if len(args.DestinationTokenAddress) == 0 {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "destination token address: empty")
	}
	if !args.TokenManagerType.IsCustom() {
		return solana.Instruction{}, errors.Wrapf(ErrInvalidArgument, "token manager type: %s cannot be linked", args.TokenManagerType)
	}

	tokenId, err := p.LinkedTokenId(accounts.Payer, args.Salt[:])
	if err != nil {
		return solana.Instruction{}, err
	}

	callContract, err := p.getCallContractAccounts()
	if err != nil {
		return solana.Instruction{}, err
	}

	tokenManager, _, err := p.GetTokenManagerAddress(&GetTokenManagerAddressArgs{
		ItsRoot: callContract.itsRoot,
		TokenId: tokenId,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	data, err := encodeInstruction(InstructionTypeLinkToken, linkTokenInstructionData{
		Salt:                    args.Salt,
		DestinationChain:        args.DestinationChain,
		DestinationTokenAddress: args.DestinationTokenAddress,
		TokenManagerType:        args.TokenManagerType,
		LinkParams:              nonNil(args.LinkParams),
		GasValue:                args.GasValue,
		SigningPdaBump:          callContract.signingBump,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	accountMetas := []solana.AccountMeta{
		signer(accounts.Payer),
		readonly(tokenManager),
	}
	accountMetas = append(accountMetas, p.callContractAccountMetas(callContract)...)

	return solana.NewInstruction(p.programID, data, accountMetas...), nil
}
