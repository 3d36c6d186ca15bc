// Package gateway derives the accounts of the Axelar gateway program that
// cross-chain instructions pass through.
package gateway

import (
	"crypto/ed25519"

	"github.com/interchain-tools/solana-its/pkg/solana"
)

var (
	GatewayPrefix             = []byte("gateway")
	CallContractSigningPrefix = []byte("gtw-call-contract")
)

type GetRootConfigAddressArgs struct {
	Program ed25519.PublicKey
}

// GetRootConfigAddress returns the gateway's root config account.
func GetRootConfigAddress(args *GetRootConfigAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		args.Program,
		GatewayPrefix,
	)
}

type GetCallContractSigningAddressArgs struct {
	SourceProgram ed25519.PublicKey
}

// GetCallContractSigningAddress returns the PDA a calling program signs with
// when it invokes call_contract on the gateway. It is derived under the
// calling program, not the gateway.
func GetCallContractSigningAddress(args *GetCallContractSigningAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		args.SourceProgram,
		CallContractSigningPrefix,
	)
}
