// Package gasservice derives the accounts of the Axelar gas service program.
package gasservice

import (
	"crypto/ed25519"

	"github.com/interchain-tools/solana-its/pkg/solana"
)

// PROGRAM_ID is the gas service deployment shared by every network. Deployments
// that use a different instance override it through configuration.
var PROGRAM_ID = solana.MustParsePublicKey("gasHQkvaC4jTD2MQpAuEN3RdNwde2Ym5E5QNDoh6m6G")

var (
	ConfigPrefix = []byte("gas-service")
)

type GetConfigAddressArgs struct {
	Program ed25519.PublicKey
}

// GetConfigAddress returns the gas service config (treasury) account.
func GetConfigAddress(args *GetConfigAddressArgs) (ed25519.PublicKey, uint8, error) {
	program := args.Program
	if program == nil {
		program = PROGRAM_ID
	}

	return solana.FindProgramAddressAndBump(
		program,
		ConfigPrefix,
	)
}
