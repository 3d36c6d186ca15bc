package its

import (
	"crypto/ed25519"
	"math/big"

	"github.com/pkg/errors"

	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/token"
)

type InterchainTransferInstructionArgs struct {
	TokenId            TokenId
	DestinationChain   string
	DestinationAddress []byte
	Amount             uint64
	GasValue           uint64

	// Timestamp selects the flow epoch, in unix seconds. Nil means now.
	Timestamp *int64
}

type InterchainTransferInstructionAccounts struct {
	Payer         ed25519.PublicKey
	SourceAccount ed25519.PublicKey
	TokenProgram  ed25519.PublicKey

	// Mint defaults to the interchain token mint of the token id.
	Mint ed25519.PublicKey

	// Authority, when set, signs for SourceAccount. Otherwise the token
	// manager is passed in its place as a non-signer.
	Authority ed25519.PublicKey
}

type interchainTransferInstructionData struct {
	TokenId            [32]byte
	DestinationChain   string
	DestinationAddress []byte
	Amount             uint64
	GasValue           uint64
	SigningPdaBump     uint8
}

// NewInterchainTransferInstruction moves Amount out of SourceAccount and
// credits DestinationAddress on DestinationChain.
func (p *Program) NewInterchainTransferInstruction(
	accounts *InterchainTransferInstructionAccounts,
	args *InterchainTransferInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "interchain transfer: nil accounts or args")
	}

	transfer, err := p.getTransferAccounts(accounts, args.TokenId, args.DestinationChain, args.DestinationAddress, args.Timestamp)
	if err != nil {
		return solana.Instruction{}, err
	}

	data, err := encodeInstruction(InstructionTypeInterchainTransfer, interchainTransferInstructionData{
		TokenId:            args.TokenId,
		DestinationChain:   args.DestinationChain,
		DestinationAddress: args.DestinationAddress,
		Amount:             args.Amount,
		GasValue:           args.GasValue,
		SigningPdaBump:     transfer.callContract.signingBump,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(p.programID, data, p.transferAccountMetas(accounts, transfer)...), nil
}

type CallContractWithInterchainTokenInstructionArgs struct {
	TokenId            TokenId
	DestinationChain   string
	DestinationAddress []byte
	Amount             uint64
	Data               []byte
	GasValue           uint64

	// Timestamp selects the flow epoch, in unix seconds. Nil means now.
	Timestamp *int64
}

type CallContractWithInterchainTokenInstructionAccounts = InterchainTransferInstructionAccounts

type callContractWithInterchainTokenInstructionData struct {
	TokenId            [32]byte
	DestinationChain   string
	DestinationAddress []byte
	Amount             uint64
	Data               []byte
	GasValue           uint64
	SigningPdaBump     uint8
}

// NewCallContractWithInterchainTokenInstruction is an interchain transfer
// that also executes Data on the destination contract.
func (p *Program) NewCallContractWithInterchainTokenInstruction(
	accounts *CallContractWithInterchainTokenInstructionAccounts,
	args *CallContractWithInterchainTokenInstructionArgs,
) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "call contract with interchain token: nil accounts or args")
	}
	if len(args.Data) == 0 {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "data: empty")
	}

	transfer, err := p.getTransferAccounts(accounts, args.TokenId, args.DestinationChain, args.DestinationAddress, args.Timestamp)
	if err != nil {
		return solana.Instruction{}, err
	}

	data, err := encodeInstruction(InstructionTypeCallContractWithInterchainToken, callContractWithInterchainTokenInstructionData{
		TokenId:            args.TokenId,
		DestinationChain:   args.DestinationChain,
		DestinationAddress: args.DestinationAddress,
		Amount:             args.Amount,
		Data:               args.Data,
		GasValue:           args.GasValue,
		SigningPdaBump:     transfer.callContract.signingBump,
	})
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(p.programID, data, p.transferAccountMetas(accounts, transfer)...), nil
}

type callContractWithInterchainTokenOffchainDataInstructionData struct {
	TokenId            [32]byte
	DestinationChain   string
	DestinationAddress []byte
	Amount             uint64
	PayloadHash        [32]byte
	GasValue           uint64
	SigningPdaBump     uint8
}

// NewCallContractWithInterchainTokenOffchainDataInstruction commits only to
// the hash of the hub payload on chain. The payload itself is returned and
// must be handed to the relayer out of band. Data may be empty.
func (p *Program) NewCallContractWithInterchainTokenOffchainDataInstruction(
	accounts *CallContractWithInterchainTokenInstructionAccounts,
	args *CallContractWithInterchainTokenInstructionArgs,
) (solana.Instruction, []byte, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, nil, errors.Wrap(ErrInvalidArgument, "call contract with interchain token offchain data: nil accounts or args")
	}

	transfer, err := p.getTransferAccounts(accounts, args.TokenId, args.DestinationChain, args.DestinationAddress, args.Timestamp)
	if err != nil {
		return solana.Instruction{}, nil, err
	}

	hubPayload, err := NewInterchainTransferHubPayload(&InterchainTransferHubPayloadArgs{
		TokenId:            args.TokenId,
		SourceAddress:      accounts.SourceAccount,
		DestinationChain:   args.DestinationChain,
		DestinationAddress: args.DestinationAddress,
		Amount:             args.Amount,
		Data:               args.Data,
	})
	if err != nil {
		return solana.Instruction{}, nil, err
	}

	data, err := encodeInstruction(InstructionTypeCallContractWithInterchainTokenOffchainData, callContractWithInterchainTokenOffchainDataInstructionData{
		TokenId:            args.TokenId,
		DestinationChain:   args.DestinationChain,
		DestinationAddress: args.DestinationAddress,
		Amount:             args.Amount,
		PayloadHash:        HubPayloadHash(hubPayload),
		GasValue:           args.GasValue,
		SigningPdaBump:     transfer.callContract.signingBump,
	})
	if err != nil {
		return solana.Instruction{}, nil, err
	}

	return solana.NewInstruction(p.programID, data, p.transferAccountMetas(accounts, transfer)...), hubPayload, nil
}

type InterchainTransferHubPayloadArgs struct {
	TokenId            TokenId
	SourceAddress      []byte
	DestinationChain   string
	DestinationAddress []byte
	Amount             uint64
	Data               []byte
}

// NewInterchainTransferHubPayload builds the SendToHub wrapped transfer
// message the gateway carries for a transfer to DestinationChain.
func NewInterchainTransferHubPayload(args *InterchainTransferHubPayloadArgs) ([]byte, error) {
	inner, err := (&InterchainTransferPayload{
		TokenId:            args.TokenId,
		SourceAddress:      args.SourceAddress,
		DestinationAddress: args.DestinationAddress,
		Amount:             new(big.Int).SetUint64(args.Amount),
		Data:               args.Data,
	}).Encode()
	if err != nil {
		return nil, err
	}

	return WrapSendToHub(args.DestinationChain, inner)
}

type transferAccounts struct {
	authority       solana.AccountMeta
	mint            ed25519.PublicKey
	tokenManager    ed25519.PublicKey
	tokenManagerAta ed25519.PublicKey
	flowSlot        ed25519.PublicKey
	callContract    *callContractAccounts
}

func (p *Program) getTransferAccounts(
	accounts *InterchainTransferInstructionAccounts,
	tokenId TokenId,
	destinationChain string,
	destinationAddress []byte,
	timestamp *int64,
) (*transferAccounts, error) {
	if err := checkKeys(
		namedKey{"payer", accounts.Payer},
		namedKey{"source account", accounts.SourceAccount},
		namedKey{"token program", accounts.TokenProgram},
	); err != nil {
		return nil, err
	}
	if accounts.Mint != nil {
		if err := checkKey("mint", accounts.Mint); err != nil {
			return nil, err
		}
	}
	if accounts.Authority != nil {
		if err := checkKey("authority", accounts.Authority); err != nil {
			return nil, err
		}
	}
	if err := checkNotEmpty("destination chain", destinationChain); err != nil {
		return nil, err
	}
	if len(destinationAddress) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "destination address: empty")
	}

	epoch, err := flowEpoch(timestamp)
	if err != nil {
		return nil, err
	}

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

	mint := accounts.Mint
	if mint == nil {
		mint, _, err = p.GetInterchainTokenAddress(&GetInterchainTokenAddressArgs{
			ItsRoot: callContract.itsRoot,
			TokenId: tokenId,
		})
		if err != nil {
			return nil, err
		}
	}

	tokenManagerAta, err := token.GetAssociatedAccount(tokenManager, mint, accounts.TokenProgram)
	if err != nil {
		return nil, errors.Wrap(err, "derive token manager ata")
	}

	flowSlot, _, err := p.GetFlowSlotAddress(&GetFlowSlotAddressArgs{
		TokenManager: tokenManager,
		Epoch:        epoch,
	})
	if err != nil {
		return nil, err
	}

	authority := readonly(tokenManager)
	if accounts.Authority != nil {
		authority = readonlySigner(accounts.Authority)
	}

	return &transferAccounts{
		authority:       authority,
		mint:            mint,
		tokenManager:    tokenManager,
		tokenManagerAta: tokenManagerAta,
		flowSlot:        flowSlot,
		callContract:    callContract,
	}, nil
}

func (p *Program) transferAccountMetas(accounts *InterchainTransferInstructionAccounts, transfer *transferAccounts) []solana.AccountMeta {
	accountMetas := []solana.AccountMeta{
		readonlySigner(accounts.Payer),
		transfer.authority,
		writable(accounts.SourceAccount),
		writable(transfer.mint),
		writable(transfer.tokenManager),
		writable(transfer.tokenManagerAta),
		readonly(accounts.TokenProgram),
		writable(transfer.flowSlot),
	}
	return append(accountMetas, p.callContractAccountMetas(transfer.callContract)...)
}
