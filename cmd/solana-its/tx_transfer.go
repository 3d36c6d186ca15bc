package main

import (
	"crypto/ed25519"

	"github.com/spf13/cobra"

	"github.com/interchain-tools/solana-its/pkg/solana/its"
	"github.com/interchain-tools/solana-its/pkg/solana/roles"
)

// transferFlags are shared by interchain-transfer and
// call-contract-with-interchain-token.
type transferFlags struct {
	tokenId            string
	sourceAccount      string
	tokenProgram       string
	mint               string
	authority          string
	destinationChain   string
	destinationAddress string
	amount             uint64
	gasValue           uint64
	timestamp          int64
}

func (f *transferFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.tokenId, "token-id", "", "hex token id")
	cmd.Flags().StringVar(&f.sourceAccount, "source-account", "", "token account debited")
	cmd.Flags().StringVar(&f.tokenProgram, "token-program", "token", "token, token-2022 or a program id")
	cmd.Flags().StringVar(&f.mint, "mint", "", "mint, defaults to the interchain token mint")
	cmd.Flags().StringVar(&f.authority, "authority", "", "owner or delegate of the source account")
	cmd.Flags().StringVar(&f.destinationChain, "destination-chain", "", "destination chain name")
	cmd.Flags().StringVar(&f.destinationAddress, "destination-address", "", "hex recipient on the destination chain")
	cmd.Flags().Uint64Var(&f.amount, "amount", 0, "amount in base units")
	cmd.Flags().Uint64Var(&f.gasValue, "gas-value", 0, "lamports paid to the gas service")
	cmd.Flags().Int64Var(&f.timestamp, "timestamp", 0, "unix time selecting the flow epoch, defaults to now")
}

func (f *transferFlags) parse(cmd *cobra.Command, payer ed25519.PublicKey) (*its.InterchainTransferInstructionAccounts, *its.InterchainTransferInstructionArgs, error) {
	tokenId, err := its.ParseTokenId(f.tokenId)
	if err != nil {
		return nil, nil, err
	}
	source, err := parseKey("source-account", f.sourceAccount)
	if err != nil {
		return nil, nil, err
	}
	program, err := parseTokenProgram(f.tokenProgram)
	if err != nil {
		return nil, nil, err
	}
	mint, err := parseOptionalKey("mint", f.mint)
	if err != nil {
		return nil, nil, err
	}
	authority, err := parseOptionalKey("authority", f.authority)
	if err != nil {
		return nil, nil, err
	}
	destination, err := parseRequiredHex("destination-address", f.destinationAddress)
	if err != nil {
		return nil, nil, err
	}

	args := &its.InterchainTransferInstructionArgs{
		TokenId:            tokenId,
		DestinationChain:   f.destinationChain,
		DestinationAddress: destination,
		Amount:             f.amount,
		GasValue:           f.gasValue,
	}
	if cmd.Flags().Changed("timestamp") {
		timestamp := f.timestamp
		args.Timestamp = &timestamp
	}

	return &its.InterchainTransferInstructionAccounts{
		Payer:         payer,
		SourceAccount: source,
		TokenProgram:  program,
		Mint:          mint,
		Authority:     authority,
	}, args, nil
}

func (c *cli) newInterchainTransferCmd() *cobra.Command {
	var flags transferFlags

	return c.txCommand("interchain-transfer", "Send tokens to another chain", flags.register,
		func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
			accounts, args, err := flags.parse(cmd, payer)
			if err != nil {
				return txResult{}, err
			}
			ix, err := c.program.NewInterchainTransferInstruction(accounts, args)
			return txResult{instruction: ix}, err
		})
}

func (c *cli) newCallContractWithInterchainTokenCmd() *cobra.Command {
	var (
		flags    transferFlags
		data     string
		offchain bool
	)

	return c.txCommand("call-contract-with-interchain-token", "Send tokens and call a contract on another chain",
		func(cmd *cobra.Command) {
			flags.register(cmd)
			cmd.Flags().StringVar(&data, "data", "", "hex payload passed to the destination contract")
			cmd.Flags().BoolVar(&offchain, "offchain-data", false, "commit to the payload hash only and print the payload")
		},
		func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
			accounts, transferArgs, err := flags.parse(cmd, payer)
			if err != nil {
				return txResult{}, err
			}
			payload, err := parseRequiredHex("data", data)
			if err != nil {
				return txResult{}, err
			}

			args := &its.CallContractWithInterchainTokenInstructionArgs{
				TokenId:            transferArgs.TokenId,
				DestinationChain:   transferArgs.DestinationChain,
				DestinationAddress: transferArgs.DestinationAddress,
				Amount:             transferArgs.Amount,
				Data:               payload,
				GasValue:           transferArgs.GasValue,
				Timestamp:          transferArgs.Timestamp,
			}

			if !offchain {
				ix, err := c.program.NewCallContractWithInterchainTokenInstruction(accounts, args)
				return txResult{instruction: ix}, err
			}

			ix, hubPayload, err := c.program.NewCallContractWithInterchainTokenOffchainDataInstruction(accounts, args)
			return txResult{instruction: ix, hubPayload: hubPayload}, err
		})
}

func (c *cli) newSetFlowLimitCmd() *cobra.Command {
	var (
		tokenId, flowLimiter string
		flowLimit            uint64
	)

	return c.txCommand("set-flow-limit", "Set or clear the flow limit of a token", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&tokenId, "token-id", "", "hex token id")
		cmd.Flags().Uint64Var(&flowLimit, "flow-limit", 0, "limit per epoch, cleared when omitted")
		cmd.Flags().StringVar(&flowLimiter, "flow-limiter", "", "act as this token manager flow limiter instead of the ITS operator")
	}, func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
		id, err := its.ParseTokenId(tokenId)
		if err != nil {
			return txResult{}, err
		}
		limiter, err := parseOptionalKey("flow-limiter", flowLimiter)
		if err != nil {
			return txResult{}, err
		}

		var limit *uint64
		if cmd.Flags().Changed("flow-limit") {
			limit = &flowLimit
		}

		if limiter == nil {
			ix, err := c.program.NewSetFlowLimitInstruction(
				&its.SetFlowLimitInstructionAccounts{Payer: payer},
				&its.SetFlowLimitInstructionArgs{TokenId: id, FlowLimit: limit},
			)
			return txResult{instruction: ix}, err
		}

		ix, err := c.program.NewSetTokenManagerFlowLimitInstruction(
			&its.SetTokenManagerFlowLimitInstructionAccounts{Payer: payer, FlowLimiter: limiter},
			&its.SetTokenManagerFlowLimitInstructionArgs{TokenId: id, FlowLimit: limit},
		)
		return txResult{instruction: ix}, err
	})
}

func (c *cli) newFlowLimiterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flow-limiter",
		Short: "Grant or revoke the flow limiter role on a token manager",
	}

	add := func(accounts *its.TokenManagerFlowLimiterInstructionAccounts, args *its.TokenManagerFlowLimiterInstructionArgs) (txResult, error) {
		ix, err := c.program.NewAddTokenManagerFlowLimiterInstruction(accounts, args)
		return txResult{instruction: ix}, err
	}
	remove := func(accounts *its.TokenManagerFlowLimiterInstructionAccounts, args *its.TokenManagerFlowLimiterInstructionArgs) (txResult, error) {
		ix, err := c.program.NewRemoveTokenManagerFlowLimiterInstruction(accounts, args)
		return txResult{instruction: ix}, err
	}

	cmd.AddCommand(
		c.flowLimiterCommand("add", "Grant the flow limiter role", add),
		c.flowLimiterCommand("remove", "Revoke the flow limiter role", remove),
	)
	return cmd
}

func (c *cli) flowLimiterCommand(
	use, short string,
	build func(*its.TokenManagerFlowLimiterInstructionAccounts, *its.TokenManagerFlowLimiterInstructionArgs) (txResult, error),
) *cobra.Command {
	var tokenId, operator, flowLimiter string

	return c.txCommand(use, short, func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&tokenId, "token-id", "", "hex token id")
		cmd.Flags().StringVar(&operator, "operator", "", "token manager operator, defaults to the payer")
		cmd.Flags().StringVar(&flowLimiter, "flow-limiter", "", "account gaining or losing the role")
	}, func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
		id, err := its.ParseTokenId(tokenId)
		if err != nil {
			return txResult{}, err
		}
		operatorKey, err := parseOptionalKey("operator", operator)
		if err != nil {
			return txResult{}, err
		}
		if operatorKey == nil {
			operatorKey = payer
		}
		limiter, err := parseKey("flow-limiter", flowLimiter)
		if err != nil {
			return txResult{}, err
		}

		return build(
			&its.TokenManagerFlowLimiterInstructionAccounts{Payer: payer, Operator: operatorKey, FlowLimiter: limiter},
			&its.TokenManagerFlowLimiterInstructionArgs{TokenId: id},
		)
	})
}

func (c *cli) newRoleCmd() *cobra.Command {
	var role, action, resource, tokenId, authority, counterparty string

	return c.txCommand("role", "Transfer, propose or accept the operator or minter role", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&role, "role", "operator", "operator or minter")
		cmd.Flags().StringVar(&action, "action", "transfer", "transfer, propose or accept")
		cmd.Flags().StringVar(&resource, "resource", "its", "its or token-manager")
		cmd.Flags().StringVar(&tokenId, "token-id", "", "hex token id, for token manager roles")
		cmd.Flags().StringVar(&authority, "authority", "", "current holder, or the recipient when accepting. Defaults to the payer")
		cmd.Flags().StringVar(&counterparty, "counterparty", "", "recipient, or the previous holder when accepting")
	}, func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
		args := &its.RoleInstructionArgs{}

		var err error
		if args.Role, err = roles.ParseRoles(role); err != nil {
			return txResult{}, err
		}
		if args.Action, err = its.ParseRoleAction(action); err != nil {
			return txResult{}, err
		}
		if args.Resource, err = its.ParseRoleResource(resource); err != nil {
			return txResult{}, err
		}
		if args.Resource == its.RoleResourceTokenManager {
			if args.TokenId, err = its.ParseTokenId(tokenId); err != nil {
				return txResult{}, err
			}
		}

		authorityKey, err := parseOptionalKey("authority", authority)
		if err != nil {
			return txResult{}, err
		}
		counterpartyKey, err := parseKey("counterparty", counterparty)
		if err != nil {
			return txResult{}, err
		}

		ix, err := c.program.NewRoleInstruction(&its.RoleInstructionAccounts{
			Payer:        payer,
			Authority:    authorityKey,
			Counterparty: counterpartyKey,
		}, args)
		return txResult{instruction: ix}, err
	})
}

func (c *cli) newHandoverMintAuthorityCmd() *cobra.Command {
	var tokenId, mint, tokenProgram, authority string

	return c.txCommand("handover-mint-authority", "Hand a mint authority over to the token manager", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&tokenId, "token-id", "", "hex token id")
		cmd.Flags().StringVar(&mint, "mint", "", "registered mint")
		cmd.Flags().StringVar(&tokenProgram, "token-program", "token", "token, token-2022 or a program id")
		cmd.Flags().StringVar(&authority, "authority", "", "current mint authority, defaults to the payer")
	}, func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
		id, err := its.ParseTokenId(tokenId)
		if err != nil {
			return txResult{}, err
		}
		mintKey, err := parseKey("mint", mint)
		if err != nil {
			return txResult{}, err
		}
		program, err := parseTokenProgram(tokenProgram)
		if err != nil {
			return txResult{}, err
		}
		authorityKey, err := parseOptionalKey("authority", authority)
		if err != nil {
			return txResult{}, err
		}
		if authorityKey == nil {
			authorityKey = payer
		}

		ix, err := c.program.NewHandoverMintAuthorityInstruction(
			&its.HandoverMintAuthorityInstructionAccounts{
				Payer:        payer,
				Authority:    authorityKey,
				Mint:         mintKey,
				TokenProgram: program,
			},
			&its.HandoverMintAuthorityInstructionArgs{TokenId: id},
		)
		return txResult{instruction: ix}, err
	})
}

func (c *cli) newMintCmd() *cobra.Command {
	var (
		tokenId, mint, to, minter, tokenProgram string
		amount                                  uint64
	)

	return c.txCommand("mint", "Mint interchain tokens as the minter", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&tokenId, "token-id", "", "hex token id")
		cmd.Flags().StringVar(&mint, "mint", "", "mint, defaults to the interchain token mint")
		cmd.Flags().StringVar(&to, "to", "", "wallet receiving the tokens in its associated token account")
		cmd.Flags().StringVar(&minter, "minter", "", "minter, defaults to the payer")
		cmd.Flags().StringVar(&tokenProgram, "token-program", "token", "token, token-2022 or a program id")
		cmd.Flags().Uint64Var(&amount, "amount", 0, "amount in base units")
	}, func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
		id, err := its.ParseTokenId(tokenId)
		if err != nil {
			return txResult{}, err
		}
		mintKey, err := parseOptionalKey("mint", mint)
		if err != nil {
			return txResult{}, err
		}
		if mintKey == nil {
			itsRoot, _, err := c.program.GetItsRootAddress()
			if err != nil {
				return txResult{}, err
			}
			if mintKey, _, err = c.program.GetInterchainTokenAddress(&its.GetInterchainTokenAddressArgs{ItsRoot: itsRoot, TokenId: id}); err != nil {
				return txResult{}, err
			}
		}
		toKey, err := parseKey("to", to)
		if err != nil {
			return txResult{}, err
		}
		minterKey, err := parseOptionalKey("minter", minter)
		if err != nil {
			return txResult{}, err
		}
		if minterKey == nil {
			minterKey = payer
		}
		program, err := parseTokenProgram(tokenProgram)
		if err != nil {
			return txResult{}, err
		}

		ix, err := c.program.NewMintInterchainTokenInstruction(
			&its.MintInterchainTokenInstructionAccounts{
				Payer:        payer,
				Mint:         mintKey,
				To:           toKey,
				Minter:       minterKey,
				TokenProgram: program,
			},
			&its.MintInterchainTokenInstructionArgs{TokenId: id, Amount: amount},
		)
		return txResult{instruction: ix}, err
	})
}
