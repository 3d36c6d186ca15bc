package loader

import (
	"crypto/ed25519"

	"github.com/interchain-tools/solana-its/pkg/solana"
)

// UpgradeableProgramKey is the BPF upgradeable loader.
//
// Current key: BPFLoaderUpgradeab1e11111111111111111111111
var UpgradeableProgramKey = solana.MustParsePublicKey("BPFLoaderUpgradeab1e11111111111111111111111")

// GetProgramDataAddress returns the account holding the executable data and
// upgrade authority of an upgradeable program.
func GetProgramDataAddress(program ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		UpgradeableProgramKey,
		program,
	)
}
