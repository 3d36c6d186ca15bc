package main

import (
	"crypto/ed25519"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/its"
	"github.com/interchain-tools/solana-its/pkg/solana/roles"
)

func (c *cli) newAddressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Derive program addresses of the token service",
	}

	cmd.AddCommand(
		c.addressCommand("its-root", "ITS root config", nil, func(cmd *cobra.Command) (ed25519.PublicKey, uint8, error) {
			return c.program.GetItsRootAddress()
		}),
		c.tokenAddressCommand("token-manager", "token manager of a token id", func(args *its.GetTokenManagerAddressArgs) (ed25519.PublicKey, uint8, error) {
			return c.program.GetTokenManagerAddress(args)
		}),
		c.tokenAddressCommand("interchain-token", "mint of a native interchain token", func(args *its.GetTokenManagerAddressArgs) (ed25519.PublicKey, uint8, error) {
			return c.program.GetInterchainTokenAddress(&its.GetInterchainTokenAddressArgs{ItsRoot: args.ItsRoot, TokenId: args.TokenId})
		}),
		c.newFlowSlotAddressCmd(),
		c.newUserRolesAddressCmd(),
		c.newRoleProposalAddressCmd(),
		c.newDeploymentApprovalAddressCmd(),
		c.newInterchainTransferExecuteAddressCmd(),
	)
	return cmd
}

// addressCommand prints the address and bump found by derive.
func (c *cli) addressCommand(
	use, short string,
	addFlags func(cmd *cobra.Command),
	derive func(cmd *cobra.Command) (ed25519.PublicKey, uint8, error),
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: "Derive the " + short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			address, bump, err := derive(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", solana.Base58(address), bump)
			return nil
		},
	}
	if addFlags != nil {
		addFlags(cmd)
	}
	return cmd
}

func (c *cli) tokenAddressCommand(use, short string, derive func(*its.GetTokenManagerAddressArgs) (ed25519.PublicKey, uint8, error)) *cobra.Command {
	var tokenId string
	return c.addressCommand(use, short, func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&tokenId, "token-id", "", "hex token id")
	}, func(cmd *cobra.Command) (ed25519.PublicKey, uint8, error) {
		id, err := its.ParseTokenId(tokenId)
		if err != nil {
			return nil, 0, err
		}
		itsRoot, _, err := c.program.GetItsRootAddress()
		if err != nil {
			return nil, 0, err
		}
		return derive(&its.GetTokenManagerAddressArgs{ItsRoot: itsRoot, TokenId: id})
	})
}

func (c *cli) newFlowSlotAddressCmd() *cobra.Command {
	var (
		tokenId string
		epoch   uint64
	)

	return c.addressCommand("flow-slot", "flow slot of a token manager for an epoch", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&tokenId, "token-id", "", "hex token id")
		cmd.Flags().Uint64Var(&epoch, "epoch", 0, "flow epoch (default current)")
	}, func(cmd *cobra.Command) (ed25519.PublicKey, uint8, error) {
		id, err := its.ParseTokenId(tokenId)
		if err != nil {
			return nil, 0, err
		}

		if !cmd.Flags().Changed("epoch") {
			if epoch, err = its.CurrentFlowEpoch(); err != nil {
				return nil, 0, err
			}
		}

		itsRoot, _, err := c.program.GetItsRootAddress()
		if err != nil {
			return nil, 0, err
		}
		tokenManager, _, err := c.program.GetTokenManagerAddress(&its.GetTokenManagerAddressArgs{ItsRoot: itsRoot, TokenId: id})
		if err != nil {
			return nil, 0, err
		}

		c.log.WithField("epoch", epoch).Debug("deriving flow slot")
		return c.program.GetFlowSlotAddress(&its.GetFlowSlotAddressArgs{TokenManager: tokenManager, Epoch: epoch})
	})
}

func (c *cli) newUserRolesAddressCmd() *cobra.Command {
	var resource, user string

	return c.addressCommand("user-roles", "roles account of a user on a resource", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&resource, "resource", "", "ITS root or token manager address")
		cmd.Flags().StringVar(&user, "user", "", "user public key")
	}, func(cmd *cobra.Command) (ed25519.PublicKey, uint8, error) {
		resourceKey, err := parseKey("resource", resource)
		if err != nil {
			return nil, 0, err
		}
		userKey, err := parseKey("user", user)
		if err != nil {
			return nil, 0, err
		}
		return roles.GetUserRolesAddress(&roles.GetUserRolesAddressArgs{
			Program:  c.program.ProgramID(),
			Resource: resourceKey,
			User:     userKey,
		})
	})
}

func (c *cli) newRoleProposalAddressCmd() *cobra.Command {
	var resource, from, to string

	return c.addressCommand("role-proposal", "pending role proposal between two users", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&resource, "resource", "", "ITS root or token manager address")
		cmd.Flags().StringVar(&from, "from", "", "current holder")
		cmd.Flags().StringVar(&to, "to", "", "proposed holder")
	}, func(cmd *cobra.Command) (ed25519.PublicKey, uint8, error) {
		resourceKey, err := parseKey("resource", resource)
		if err != nil {
			return nil, 0, err
		}
		fromKey, err := parseKey("from", from)
		if err != nil {
			return nil, 0, err
		}
		toKey, err := parseKey("to", to)
		if err != nil {
			return nil, 0, err
		}
		return roles.GetRoleProposalAddress(&roles.GetRoleProposalAddressArgs{
			Program:  c.program.ProgramID(),
			Resource: resourceKey,
			From:     fromKey,
			To:       toKey,
		})
	})
}

func (c *cli) newDeploymentApprovalAddressCmd() *cobra.Command {
	var minter, tokenId, destinationChain string

	return c.addressCommand("deployment-approval", "approval for a remote deployment with a minter", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&minter, "minter", "", "approving minter")
		cmd.Flags().StringVar(&tokenId, "token-id", "", "hex token id")
		cmd.Flags().StringVar(&destinationChain, "destination-chain", "", "destination chain name")
	}, func(cmd *cobra.Command) (ed25519.PublicKey, uint8, error) {
		minterKey, err := parseKey("minter", minter)
		if err != nil {
			return nil, 0, err
		}
		id, err := its.ParseTokenId(tokenId)
		if err != nil {
			return nil, 0, err
		}
		return c.program.GetDeploymentApprovalAddress(&its.GetDeploymentApprovalAddressArgs{
			Minter:           minterKey,
			TokenId:          id,
			DestinationChain: destinationChain,
		})
	})
}

func (c *cli) newInterchainTransferExecuteAddressCmd() *cobra.Command {
	var destinationProgram string

	return c.addressCommand("interchain-transfer-execute", "signer ITS uses when executing a destination program", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&destinationProgram, "destination-program", "", "program receiving the transfer")
	}, func(cmd *cobra.Command) (ed25519.PublicKey, uint8, error) {
		program, err := parseKey("destination-program", destinationProgram)
		if err != nil {
			return nil, 0, err
		}
		return c.program.GetInterchainTransferExecuteAddress(&its.GetInterchainTransferExecuteAddressArgs{
			DestinationProgram: program,
		})
	})
}
