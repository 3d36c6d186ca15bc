package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/interchain-tools/solana-its/pkg/solana/its"
)

func (c *cli) newDecodePayloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-payload <hex>",
		Short: "Decode a hub envelope carried by the gateway",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := parseRequiredHex("payload", args[0])
			if err != nil {
				return err
			}

			msg, err := its.DecodeHubMessage(payload)
			if err != nil {
				return err
			}

			hash := its.HubPayloadHash(payload)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "type: %s\n", msg.Type)
			fmt.Fprintf(w, "chain: %s\n", msg.Chain)
			fmt.Fprintf(w, "inner type: %s\n", msg.InnerType)
			fmt.Fprintf(w, "payload: %s\n", hexutil.Encode(msg.Payload))
			fmt.Fprintf(w, "hash: %s\n", hexutil.Encode(hash[:]))
			return nil
		},
	}
}
