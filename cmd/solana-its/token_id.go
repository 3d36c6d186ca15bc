package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/interchain-tools/solana-its/pkg/solana/its"
)

func (c *cli) newTokenIdCmd() *cobra.Command {
	var deployer, mint, salt string

	cmd := &cobra.Command{
		Use:   "token-id <canonical|interchain|linked>",
		Short: "Print the deploy salt and token id of a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, err := its.ParseTokenIdVariant(args[0])
			if err != nil {
				return err
			}

			keyFlag, keyValue := "deployer", deployer
			if variant == its.TokenIdVariantCanonical {
				keyFlag, keyValue = "mint", mint
			}
			key, err := parseKey(keyFlag, keyValue)
			if err != nil {
				return err
			}

			var saltBytes []byte
			if variant != its.TokenIdVariantCanonical {
				if saltBytes, err = parseRequiredHex("salt", salt); err != nil {
					return err
				}
			}

			deploySalt, err := its.DeploySalt(variant, c.program.ChainNameHash(), key, saltBytes)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "deploy salt: %s\n", hexutil.Encode(deploySalt[:]))
			fmt.Fprintf(out, "token id: %s\n", its.TokenIdFromDeploySalt(deploySalt))
			return nil
		},
	}

	cmd.Flags().StringVar(&deployer, "deployer", "", "deployer public key (interchain and linked)")
	cmd.Flags().StringVar(&mint, "mint", "", "mint public key (canonical)")
	cmd.Flags().StringVar(&salt, "salt", "", "hex salt (interchain and linked)")
	return cmd
}
