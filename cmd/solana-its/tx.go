package main

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/computebudget"
	"github.com/interchain-tools/solana-its/pkg/solana/its"
	"github.com/interchain-tools/solana-its/pkg/solana/memo"
)

type txResult struct {
	instruction solana.Instruction

	// hubPayload is set when the payload travels to the relayer out of band.
	hubPayload []byte
}

func (c *cli) newTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Assemble an unsigned transaction",
	}

	cmd.AddCommand(
		c.newInitializeCmd(),
		c.newSetPauseStatusCmd(),
		c.newTrustedChainCmd("set-trusted-chain", "Trust a chain for interchain messages", c.setTrustedChain),
		c.newTrustedChainCmd("remove-trusted-chain", "Stop trusting a chain", c.removeTrustedChain),
		c.newApproveDeployRemoteCmd(),
		c.newRevokeDeployRemoteCmd(),
		c.newRegisterCanonicalTokenCmd(),
		c.newDeployRemoteCanonicalTokenCmd(),
		c.newDeployInterchainTokenCmd(),
		c.newDeployRemoteInterchainTokenCmd(),
		c.newRegisterTokenMetadataCmd(),
		c.newRegisterCustomTokenCmd(),
		c.newLinkTokenCmd(),
		c.newInterchainTransferCmd(),
		c.newCallContractWithInterchainTokenCmd(),
		c.newSetFlowLimitCmd(),
		c.newFlowLimiterCmd(),
		c.newRoleCmd(),
		c.newHandoverMintAuthorityCmd(),
		c.newMintCmd(),
	)
	return cmd
}

// txCommand wraps build into a command that prints the unsigned transaction
// paying for and carrying the built instruction.
func (c *cli) txCommand(
	use, short string,
	addFlags func(cmd *cobra.Command),
	build func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error),
) *cobra.Command {
	var payer, blockhash, memoText string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payerKey, err := parseKey("payer", payer)
			if err != nil {
				return err
			}

			result, err := build(cmd, payerKey)
			if err != nil {
				return err
			}

			instructions := computebudget.Instructions(c.config.ComputeUnitLimit, c.config.ComputeUnitPrice)
			instructions = append(instructions, result.instruction)
			if memoText != "" {
				instructions = append(instructions, memo.Instruction(memoText, payerKey))
			}

			hash, err := c.recentBlockhash(blockhash)
			if err != nil {
				return err
			}

			txn := solana.NewTransaction(payerKey, instructions...)
			txn.SetBlockhash(hash)

			log := c.log.WithFields(logrus.Fields{
				"method":   use,
				"accounts": len(result.instruction.Accounts),
				"size":     len(txn.Marshal()),
			})
			if err := txn.Validate(); err != nil {
				log.WithError(err).Warn("transaction will be rejected by the cluster")
			} else {
				log.Debug("assembled transaction")
			}

			return writeTransaction(cmd.OutOrStdout(), c.output, txn, instructions, result.hubPayload)
		},
	}

	cmd.Flags().StringVar(&payer, "payer", "", "fee payer public key")
	cmd.Flags().StringVar(&blockhash, "blockhash", "", "recent blockhash, fetched over RPC when empty")
	cmd.Flags().StringVar(&memoText, "memo", "", "memo signed by the payer")
	if addFlags != nil {
		addFlags(cmd)
	}
	return cmd
}

func (c *cli) recentBlockhash(value string) (solana.Blockhash, error) {
	var hash solana.Blockhash

	if value != "" {
		decoded, err := base58.Decode(value)
		if err != nil {
			return hash, errors.Wrap(err, "--blockhash")
		}
		if len(decoded) != len(hash) {
			return hash, errors.Errorf("--blockhash: expected %d bytes, got %d", len(hash), len(decoded))
		}
		copy(hash[:], decoded)
		return hash, nil
	}

	client, err := c.client()
	if err != nil {
		return hash, err
	}
	return client.GetLatestBlockhash()
}

func online(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("blockhash")
	return flag == nil || flag.Value.String() == ""
}

// ensureTokenManagerAbsent fails when the token manager of tokenId already
// exists. Offline invocations skip the check.
func (c *cli) ensureTokenManagerAbsent(cmd *cobra.Command, tokenId its.TokenId) error {
	if !online(cmd) {
		return nil
	}

	itsRoot, _, err := c.program.GetItsRootAddress()
	if err != nil {
		return err
	}
	tokenManager, _, err := c.program.GetTokenManagerAddress(&its.GetTokenManagerAddressArgs{ItsRoot: itsRoot, TokenId: tokenId})
	if err != nil {
		return err
	}

	client, err := c.client()
	if err != nil {
		return err
	}

	_, err = client.GetAccountInfo(tokenManager, solana.CommitmentConfirmed)
	switch err {
	case solana.ErrNoAccountInfo:
		return nil
	case nil:
		return errors.Errorf("token manager %s of token id %s already exists", solana.Base58(tokenManager), tokenId)
	default:
		return errors.Wrap(err, "failed to check token manager")
	}
}

func (c *cli) newInitializeCmd() *cobra.Command {
	var operator, chainName, hubAddress string

	return c.txCommand("init", "Initialize the token service", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&operator, "operator", "", "initial operator")
		cmd.Flags().StringVar(&chainName, "chain-name", "", "chain name (default from config)")
		cmd.Flags().StringVar(&hubAddress, "its-hub-address", "", "ITS hub contract on Axelar (default from config)")
	}, func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
		operatorKey, err := parseKey("operator", operator)
		if err != nil {
			return txResult{}, err
		}
		if chainName == "" {
			chainName = c.program.ChainName()
		}
		if hubAddress == "" {
			hubAddress = c.config.ItsHubAddress
		}

		ix, err := c.program.NewInitializeInstruction(
			&its.InitializeInstructionAccounts{Payer: payer, Operator: operatorKey},
			&its.InitializeInstructionArgs{ChainName: chainName, ItsHubAddress: hubAddress},
		)
		return txResult{instruction: ix}, err
	})
}

func (c *cli) newSetPauseStatusCmd() *cobra.Command {
	var paused bool

	return c.txCommand("set-pause-status", "Pause or resume the token service", func(cmd *cobra.Command) {
		cmd.Flags().BoolVar(&paused, "paused", true, "pause when true, resume when false")
	}, func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
		ix, err := c.program.NewSetPauseStatusInstruction(
			&its.SetPauseStatusInstructionAccounts{Payer: payer},
			&its.SetPauseStatusInstructionArgs{Paused: paused},
		)
		return txResult{instruction: ix}, err
	})
}

func (c *cli) setTrustedChain(payer ed25519.PublicKey, chain string) (solana.Instruction, error) {
	return c.program.NewSetTrustedChainInstruction(
		&its.SetTrustedChainInstructionAccounts{Payer: payer},
		&its.SetTrustedChainInstructionArgs{ChainName: chain},
	)
}

func (c *cli) removeTrustedChain(payer ed25519.PublicKey, chain string) (solana.Instruction, error) {
	return c.program.NewRemoveTrustedChainInstruction(
		&its.RemoveTrustedChainInstructionAccounts{Payer: payer},
		&its.RemoveTrustedChainInstructionArgs{ChainName: chain},
	)
}

func (c *cli) newTrustedChainCmd(use, short string, build func(ed25519.PublicKey, string) (solana.Instruction, error)) *cobra.Command {
	var chain string

	return c.txCommand(use, short, func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&chain, "chain", "", "chain name")
	}, func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
		ix, err := build(payer, chain)
		return txResult{instruction: ix}, err
	})
}

func (c *cli) newApproveDeployRemoteCmd() *cobra.Command {
	var deployer, salt, destinationChain, destinationMinter string

	return c.txCommand("approve-deploy-remote", "Approve a remote deployment with a minter", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&deployer, "deployer", "", "deployer of the token")
		cmd.Flags().StringVar(&salt, "salt", "", "32 byte hex salt the token was deployed with")
		cmd.Flags().StringVar(&destinationChain, "destination-chain", "", "destination chain name")
		cmd.Flags().StringVar(&destinationMinter, "destination-minter", "", "hex minter address on the destination chain")
	}, func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
		deployerKey, err := parseKey("deployer", deployer)
		if err != nil {
			return txResult{}, err
		}
		saltBytes, err := parseSalt(salt)
		if err != nil {
			return txResult{}, err
		}
		minter, err := parseRequiredHex("destination-minter", destinationMinter)
		if err != nil {
			return txResult{}, err
		}

		ix, err := c.program.NewApproveDeployRemoteInterchainTokenInstruction(
			&its.ApproveDeployRemoteInterchainTokenInstructionAccounts{Payer: payer, Deployer: deployerKey},
			&its.ApproveDeployRemoteInterchainTokenInstructionArgs{
				Salt:              saltBytes,
				DestinationChain:  destinationChain,
				DestinationMinter: minter,
			},
		)
		return txResult{instruction: ix}, err
	})
}

func (c *cli) newRevokeDeployRemoteCmd() *cobra.Command {
	var deployer, salt, destinationChain string

	return c.txCommand("revoke-deploy-remote", "Revoke a remote deployment approval", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&deployer, "deployer", "", "deployer of the token")
		cmd.Flags().StringVar(&salt, "salt", "", "32 byte hex salt the token was deployed with")
		cmd.Flags().StringVar(&destinationChain, "destination-chain", "", "destination chain name")
	}, func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
		deployerKey, err := parseKey("deployer", deployer)
		if err != nil {
			return txResult{}, err
		}
		saltBytes, err := parseSalt(salt)
		if err != nil {
			return txResult{}, err
		}

		ix, err := c.program.NewRevokeDeployRemoteInterchainTokenInstruction(
			&its.RevokeDeployRemoteInterchainTokenInstructionAccounts{Payer: payer, Deployer: deployerKey},
			&its.RevokeDeployRemoteInterchainTokenInstructionArgs{Salt: saltBytes, DestinationChain: destinationChain},
		)
		return txResult{instruction: ix}, err
	})
}

func (c *cli) newRegisterCanonicalTokenCmd() *cobra.Command {
	var mint, tokenProgram string

	return c.txCommand("register-canonical-token", "Register an existing mint as a canonical token", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&mint, "mint", "", "mint to register")
		cmd.Flags().StringVar(&tokenProgram, "token-program", "token", "token, token-2022 or a program id")
	}, func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
		mintKey, err := parseKey("mint", mint)
		if err != nil {
			return txResult{}, err
		}
		program, err := parseTokenProgram(tokenProgram)
		if err != nil {
			return txResult{}, err
		}

		tokenId, err := c.program.CanonicalTokenId(mintKey)
		if err != nil {
			return txResult{}, err
		}
		if err := c.ensureTokenManagerAbsent(cmd, tokenId); err != nil {
			return txResult{}, err
		}

		ix, err := c.program.NewRegisterCanonicalInterchainTokenInstruction(&its.RegisterCanonicalInterchainTokenInstructionAccounts{
			Payer:        payer,
			Mint:         mintKey,
			TokenProgram: program,
		})
		return txResult{instruction: ix}, err
	})
}

func (c *cli) newDeployRemoteCanonicalTokenCmd() *cobra.Command {
	var (
		mint, destinationChain string
		gasValue               uint64
	)

	return c.txCommand("deploy-remote-canonical-token", "Deploy a canonical token on another chain", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&mint, "mint", "", "registered canonical mint")
		cmd.Flags().StringVar(&destinationChain, "destination-chain", "", "destination chain name")
		cmd.Flags().Uint64Var(&gasValue, "gas-value", 0, "lamports paid to the gas service")
	}, func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
		mintKey, err := parseKey("mint", mint)
		if err != nil {
			return txResult{}, err
		}

		ix, err := c.program.NewDeployRemoteCanonicalInterchainTokenInstruction(
			&its.DeployRemoteCanonicalInterchainTokenInstructionAccounts{Payer: payer, Mint: mintKey},
			&its.DeployRemoteCanonicalInterchainTokenInstructionArgs{DestinationChain: destinationChain, GasValue: gasValue},
		)
		return txResult{instruction: ix}, err
	})
}

func (c *cli) newDeployInterchainTokenCmd() *cobra.Command {
	var (
		salt, name, symbol, minter string
		decimals                   uint8
		initialSupply              uint64
	)

	return c.txCommand("deploy-interchain-token", "Deploy a new native interchain token", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&salt, "salt", "", "32 byte hex salt")
		cmd.Flags().StringVar(&name, "name", "", "token name")
		cmd.Flags().StringVar(&symbol, "symbol", "", "token symbol")
		cmd.Flags().Uint8Var(&decimals, "decimals", 9, "token decimals")
		cmd.Flags().Uint64Var(&initialSupply, "initial-supply", 0, "supply minted to the payer")
		cmd.Flags().StringVar(&minter, "minter", "", "optional minter")
	}, func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
		saltBytes, err := parseSalt(salt)
		if err != nil {
			return txResult{}, err
		}
		minterKey, err := parseOptionalKey("minter", minter)
		if err != nil {
			return txResult{}, err
		}

		tokenId, err := c.program.InterchainTokenId(payer, saltBytes[:])
		if err != nil {
			return txResult{}, err
		}
		if err := c.ensureTokenManagerAbsent(cmd, tokenId); err != nil {
			return txResult{}, err
		}

		ix, err := c.program.NewDeployInterchainTokenInstruction(
			&its.DeployInterchainTokenInstructionAccounts{Payer: payer, Minter: minterKey},
			&its.DeployInterchainTokenInstructionArgs{
				Salt:          saltBytes,
				Name:          name,
				Symbol:        symbol,
				Decimals:      decimals,
				InitialSupply: initialSupply,
			},
		)
		if err == nil {
			c.log.WithField("token_id", tokenId.Hex()).Info("deploying interchain token")
		}
		return txResult{instruction: ix}, err
	})
}

func (c *cli) newDeployRemoteInterchainTokenCmd() *cobra.Command {
	var (
		salt, destinationChain, minter, destinationMinter string
		gasValue                                          uint64
	)

	return c.txCommand("deploy-remote-interchain-token", "Deploy a native interchain token on another chain", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&salt, "salt", "", "32 byte hex salt the token was deployed with")
		cmd.Flags().StringVar(&destinationChain, "destination-chain", "", "destination chain name")
		cmd.Flags().Uint64Var(&gasValue, "gas-value", 0, "lamports paid to the gas service")
		cmd.Flags().StringVar(&minter, "minter", "", "local minter that approved the deployment")
		cmd.Flags().StringVar(&destinationMinter, "destination-minter", "", "hex minter address on the destination chain")
	}, func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
		saltBytes, err := parseSalt(salt)
		if err != nil {
			return txResult{}, err
		}

		if destinationMinter == "" {
			ix, err := c.program.NewDeployRemoteInterchainTokenInstruction(
				&its.DeployRemoteInterchainTokenInstructionAccounts{Payer: payer},
				&its.DeployRemoteInterchainTokenInstructionArgs{Salt: saltBytes, DestinationChain: destinationChain, GasValue: gasValue},
			)
			return txResult{instruction: ix}, err
		}

		minterKey, err := parseKey("minter", minter)
		if err != nil {
			return txResult{}, err
		}
		minterBytes, err := parseRequiredHex("destination-minter", destinationMinter)
		if err != nil {
			return txResult{}, err
		}

		ix, err := c.program.NewDeployRemoteInterchainTokenWithMinterInstruction(
			&its.DeployRemoteInterchainTokenWithMinterInstructionAccounts{Payer: payer, Minter: minterKey},
			&its.DeployRemoteInterchainTokenWithMinterInstructionArgs{
				Salt:              saltBytes,
				DestinationChain:  destinationChain,
				DestinationMinter: minterBytes,
				GasValue:          gasValue,
			},
		)
		return txResult{instruction: ix}, err
	})
}

func (c *cli) newRegisterTokenMetadataCmd() *cobra.Command {
	var (
		mint     string
		gasValue uint64
	)

	return c.txCommand("register-token-metadata", "Announce the decimals of a mint to the hub", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&mint, "mint", "", "mint to register")
		cmd.Flags().Uint64Var(&gasValue, "gas-value", 0, "lamports paid to the gas service")
	}, func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
		mintKey, err := parseKey("mint", mint)
		if err != nil {
			return txResult{}, err
		}

		ix, err := c.program.NewRegisterTokenMetadataInstruction(
			&its.RegisterTokenMetadataInstructionAccounts{Payer: payer, Mint: mintKey},
			&its.RegisterTokenMetadataInstructionArgs{GasValue: gasValue},
		)
		return txResult{instruction: ix}, err
	})
}

func (c *cli) newRegisterCustomTokenCmd() *cobra.Command {
	var mint, tokenProgram, salt, managerType, operator string

	return c.txCommand("register-custom-token", "Register an existing mint for linking", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&mint, "mint", "", "mint to register")
		cmd.Flags().StringVar(&tokenProgram, "token-program", "token", "token, token-2022 or a program id")
		cmd.Flags().StringVar(&salt, "salt", "", "32 byte hex salt")
		cmd.Flags().StringVar(&managerType, "token-manager-type", "lock_unlock", "mint_burn_from, lock_unlock, lock_unlock_fee or mint_burn")
		cmd.Flags().StringVar(&operator, "operator", "", "optional token manager operator")
	}, func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
		mintKey, err := parseKey("mint", mint)
		if err != nil {
			return txResult{}, err
		}
		program, err := parseTokenProgram(tokenProgram)
		if err != nil {
			return txResult{}, err
		}
		saltBytes, err := parseSalt(salt)
		if err != nil {
			return txResult{}, err
		}
		tmType, err := its.ParseTokenManagerType(managerType)
		if err != nil {
			return txResult{}, err
		}
		operatorKey, err := parseOptionalKey("operator", operator)
		if err != nil {
			return txResult{}, err
		}

		tokenId, err := c.program.LinkedTokenId(payer, saltBytes[:])
		if err != nil {
			return txResult{}, err
		}
		if err := c.ensureTokenManagerAbsent(cmd, tokenId); err != nil {
			return txResult{}, err
		}

		ix, err := c.program.NewRegisterCustomTokenInstruction(
			&its.RegisterCustomTokenInstructionAccounts{
				Payer:        payer,
				Mint:         mintKey,
				TokenProgram: program,
				Operator:     operatorKey,
			},
			&its.RegisterCustomTokenInstructionArgs{Salt: saltBytes, TokenManagerType: tmType},
		)
		return txResult{instruction: ix}, err
	})
}

func (c *cli) newLinkTokenCmd() *cobra.Command {
	var (
		salt, destinationChain, destinationToken, managerType, linkParams string
		gasValue                                                          uint64
	)

	return c.txCommand("link-token", "Link a registered custom token to a token on another chain", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&salt, "salt", "", "32 byte hex salt the token was registered with")
		cmd.Flags().StringVar(&destinationChain, "destination-chain", "", "destination chain name")
		cmd.Flags().StringVar(&destinationToken, "destination-token-address", "", "hex token address on the destination chain")
		cmd.Flags().StringVar(&managerType, "token-manager-type", "mint_burn", "token manager type on the destination chain")
		cmd.Flags().StringVar(&linkParams, "link-params", "", "hex parameters for the destination token manager")
		cmd.Flags().Uint64Var(&gasValue, "gas-value", 0, "lamports paid to the gas service")
	}, func(cmd *cobra.Command, payer ed25519.PublicKey) (txResult, error) {
		saltBytes, err := parseSalt(salt)
		if err != nil {
			return txResult{}, err
		}
		destination, err := parseRequiredHex("destination-token-address", destinationToken)
		if err != nil {
			return txResult{}, err
		}
		tmType, err := its.ParseTokenManagerType(managerType)
		if err != nil {
			return txResult{}, err
		}
		params, err := parseHex("link-params", linkParams)
		if err != nil {
			return txResult{}, err
		}

		ix, err := c.program.NewLinkTokenInstruction(
			&its.LinkTokenInstructionAccounts{Payer: payer},
			&its.LinkTokenInstructionArgs{
				Salt:                    saltBytes,
				DestinationChain:        destinationChain,
				DestinationTokenAddress: destination,
				TokenManagerType:        tmType,
				LinkParams:              params,
				GasValue:                gasValue,
			},
		)
		return txResult{instruction: ix}, err
	})
}
