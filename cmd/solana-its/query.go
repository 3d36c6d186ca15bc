package main

import (
	"crypto/ed25519"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/its"
)

func (c *cli) newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Look up token service accounts over RPC",
	}

	cmd.AddCommand(
		c.queryCommand("its-root", "Show the ITS root account", nil, func() (ed25519.PublicKey, error) {
			itsRoot, _, err := c.program.GetItsRootAddress()
			return itsRoot, err
		}),
		c.newQueryTokenManagerCmd(),
	)
	return cmd
}

func (c *cli) newQueryTokenManagerCmd() *cobra.Command {
	var tokenId string

	return c.queryCommand("token-manager", "Show the token manager of a token id", func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&tokenId, "token-id", "", "hex token id")
	}, func() (ed25519.PublicKey, error) {
		id, err := its.ParseTokenId(tokenId)
		if err != nil {
			return nil, err
		}
		itsRoot, _, err := c.program.GetItsRootAddress()
		if err != nil {
			return nil, err
		}
		tokenManager, _, err := c.program.GetTokenManagerAddress(&its.GetTokenManagerAddressArgs{ItsRoot: itsRoot, TokenId: id})
		return tokenManager, err
	})
}

func (c *cli) queryCommand(use, short string, addFlags func(*cobra.Command), address func() (ed25519.PublicKey, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := address()
			if err != nil {
				return err
			}

			client, err := c.client()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "address: %s\n", solana.Base58(account))

			info, err := client.GetAccountInfo(account, solana.CommitmentConfirmed)
			if err == solana.ErrNoAccountInfo {
				fmt.Fprintln(w, "status: not deployed")
				return nil
			} else if err != nil {
				return errors.Wrapf(err, "failed to get account %s", solana.Base58(account))
			}

			rent, err := client.GetMinimumBalanceForRentExemption(uint64(len(info.Data)))
			if err != nil {
				return errors.Wrap(err, "failed to get rent exemption")
			}

			fmt.Fprintln(w, "status: deployed")
			fmt.Fprintf(w, "owner: %s\n", solana.Base58(info.Owner))
			fmt.Fprintf(w, "lamports: %d\n", info.Lamports)
			fmt.Fprintf(w, "data length: %d\n", len(info.Data))
			fmt.Fprintf(w, "rent exempt: %t\n", info.Lamports >= rent)
			return nil
		},
	}
	if addFlags != nil {
		addFlags(cmd)
	}
	return cmd
}
