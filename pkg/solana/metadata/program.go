// Package metadata derives Metaplex token metadata accounts.
package metadata

import (
	"crypto/ed25519"

	"github.com/interchain-tools/solana-its/pkg/solana"
)

var (
	PROGRAM_ID = solana.MustParsePublicKey("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
)

var (
	MetadataPrefix = []byte("metadata")
)

type GetMetadataAddressArgs struct {
	Mint ed25519.PublicKey
}

func GetMetadataAddress(args *GetMetadataAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		MetadataPrefix,
		PROGRAM_ID,
		args.Mint,
	)
}
