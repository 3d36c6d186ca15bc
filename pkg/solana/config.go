package solana

import "strings"

type Environment string

const (
	EnvironmentLocal Environment = "http://127.0.0.1:8899"
	EnvironmentDev   Environment = "https://api.devnet.solana.com"
	EnvironmentTest  Environment = "https://api.testnet.solana.com"
	EnvironmentProd  Environment = "https://api.mainnet-beta.solana.com"
)

var environmentAliases = map[string]Environment{
	"local":        EnvironmentLocal,
	"localnet":     EnvironmentLocal,
	"devnet":       EnvironmentDev,
	"testnet":      EnvironmentTest,
	"mainnet":      EnvironmentProd,
	"mainnet-beta": EnvironmentProd,
}

// ResolveEnvironment expands a cluster moniker into its public endpoint.
// Anything else is assumed to already be an endpoint URL.
func ResolveEnvironment(value string) Environment {
	if env, ok := environmentAliases[strings.ToLower(strings.TrimSpace(value))]; ok {
		return env
	}
	return Environment(value)
}
