// Package config loads the settings shared by every solana-its command.
//
// Values come from, in increasing order of precedence, the defaults below, an
// optional config file, SOLANA_ITS_* environment variables and command line
// flags bound onto the same viper instance. The result is an immutable Config
// value; nothing in the module reads viper after Load returns.
package config

import (
	"crypto/ed25519"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/its"
)

const envPrefix = "SOLANA_ITS"

const (
	LogLevelKey            = "log_level"
	NetworkKey             = "network"
	RPCURLKey              = "rpc_url"
	ChainNameKey           = "chain_name"
	ItsProgramIDKey        = "its_program_id"
	GatewayProgramIDKey    = "gateway_program_id"
	GasServiceProgramIDKey = "gas_service_program_id"
	ItsHubAddressKey       = "its_hub_address"
	ChainsConfigKey        = "chains_config"
	ComputeUnitPriceKey    = "compute_unit_price"
	ComputeUnitLimitKey    = "compute_unit_limit"
)

var keys = []string{
	LogLevelKey,
	NetworkKey,
	RPCURLKey,
	ChainNameKey,
	ItsProgramIDKey,
	GatewayProgramIDKey,
	GasServiceProgramIDKey,
	ItsHubAddressKey,
	ChainsConfigKey,
	ComputeUnitPriceKey,
	ComputeUnitLimitKey,
}

// Config is the resolved configuration. It is a plain value and safe to copy.
type Config struct {
	LogLevel string `mapstructure:"log_level"`

	Network string `mapstructure:"network"`

	// RPCURL is either an endpoint URL or a cluster moniker such as devnet.
	// Empty means the cluster the network is deployed on.
	RPCURL string `mapstructure:"rpc_url"`

	// ChainName overrides the name Axelar registers the deployment under.
	ChainName string `mapstructure:"chain_name"`

	// Program id overrides, base58 encoded.
	ItsProgramID        string `mapstructure:"its_program_id"`
	GatewayProgramID    string `mapstructure:"gateway_program_id"`
	GasServiceProgramID string `mapstructure:"gas_service_program_id"`

	ItsHubAddress string `mapstructure:"its_hub_address"`

	// ChainsConfig is the path to an axelar-contract-deployments chains
	// config. Addresses found there fill in any override left empty.
	ChainsConfig string `mapstructure:"chains_config"`

	// Compute budget for assembled transactions. Zero omits the instruction.
	ComputeUnitPrice uint64 `mapstructure:"compute_unit_price"`
	ComputeUnitLimit uint32 `mapstructure:"compute_unit_limit"`
}

var defaultConfig = Config{
	LogLevel: "info",
	Network:  string(its.NetworkDevnetAmplifier),
}

// BindEnv registers the SOLANA_ITS_* variable of every key on v.
func BindEnv(v *viper.Viper) {
	for _, key := range keys {
		_ = v.BindEnv(key, envPrefix+"_"+strings.ToUpper(key))
	}
}

// Load resolves the configuration held by v. Environment variables are bound
// here, so callers only need to attach a config file and flags.
func Load(v *viper.Viper) (Config, error) {
	BindEnv(v)

	// Registered on v so they outrank the zero defaults of bound flags.
	v.SetDefault(LogLevelKey, defaultConfig.LogLevel)
	v.SetDefault(NetworkKey, defaultConfig.Network)

	config := defaultConfig
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal config")
	}

	network, err := its.ParseNetwork(config.Network)
	if err != nil {
		return Config{}, err
	}
	config.Network = string(network)

	if config.ChainName == "" {
		config.ChainName, err = network.ChainName()
		if err != nil {
			return Config{}, err
		}
	}

	if config.ChainsConfig != "" {
		if err := config.mergeChainsConfig(); err != nil {
			return Config{}, err
		}
	}

	for field, value := range map[string]string{
		ItsProgramIDKey:        config.ItsProgramID,
		GatewayProgramIDKey:    config.GatewayProgramID,
		GasServiceProgramIDKey: config.GasServiceProgramID,
	} {
		if value == "" {
			continue
		}
		if _, err := solana.ParsePublicKey(value); err != nil {
			return Config{}, errors.Wrapf(err, "invalid %s", field)
		}
	}

	return config, nil
}

// mergeChainsConfig copies the program addresses of the configured chain out
// of a chains config file, keeping explicit overrides.
func (c *Config) mergeChainsConfig() error {
	chains := viper.New()
	chains.SetConfigFile(c.ChainsConfig)
	chains.SetConfigType("json")
	if err := chains.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read chains config %s", c.ChainsConfig)
	}

	contracts := "chains." + c.ChainName + ".contracts."
	if !chains.IsSet("chains." + c.ChainName) {
		return errors.Errorf("chain %s not found in %s", c.ChainName, c.ChainsConfig)
	}

	fill := func(field *string, key string) {
		if *field == "" {
			*field = chains.GetString(key)
		}
	}
	fill(&c.ItsProgramID, contracts+"InterchainTokenService.address")
	fill(&c.GatewayProgramID, contracts+"AxelarGateway.address")
	fill(&c.GasServiceProgramID, contracts+"AxelarGasService.address")
	fill(&c.ItsHubAddress, "axelar.contracts.InterchainTokenService.address")
	return nil
}

// Program binds the token service deployment the configuration points at.
func (c Config) Program() (*its.Program, error) {
	programConfig, err := its.NetworkProgramConfig(its.Network(c.Network))
	if err != nil {
		return nil, err
	}

	if c.ChainName != "" {
		programConfig.ChainName = c.ChainName
	}

	overrides := []struct {
		value  string
		target *ed25519.PublicKey
	}{
		{c.ItsProgramID, &programConfig.ProgramID},
		{c.GatewayProgramID, &programConfig.GatewayProgramID},
		{c.GasServiceProgramID, &programConfig.GasServiceProgramID},
	}
	for _, override := range overrides {
		if override.value == "" {
			continue
		}
		key, err := solana.ParsePublicKey(override.value)
		if err != nil {
			return nil, err
		}
		*override.target = key
	}

	return its.NewProgram(programConfig)
}

// RPCEndpoint is the JSON-RPC endpoint to query, defaulting to the public
// cluster of the network.
func (c Config) RPCEndpoint() (string, error) {
	if c.RPCURL != "" {
		return string(solana.ResolveEnvironment(c.RPCURL)), nil
	}
	return its.Network(c.Network).RPCEndpoint()
}
