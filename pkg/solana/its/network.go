package its

import (
	"crypto/ed25519"
	"strings"

	"github.com/pkg/errors"

	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/gasservice"
)

// Network identifies an Axelar environment with its own token service deployment.
type Network string

const (
	NetworkDevnetAmplifier Network = "devnet-amplifier"
	NetworkStagenet        Network = "stagenet"
	NetworkTestnet         Network = "testnet"
	NetworkMainnet         Network = "mainnet"
)

// ItsHubChainName is the Axelar chain hosting the hub every message is routed through.
const ItsHubChainName = "axelar"

var ErrUnknownNetwork = errors.New("unknown network")

type networkInfo struct {
	chainName string
	its       string
	gateway   string
	rpc       solana.Environment
}

var networks = map[Network]networkInfo{
	NetworkDevnetAmplifier: {
		chainName: "solana-devnet",
		its:       "itsqybuNsChBo3LgVhCWWnTJVJdoVTUJaodmqQcG6z7",
		gateway:   "gtwi5T9x6rTWPtuuz6DA7ia1VmH8bdazm9QfDdi6DVp",
		rpc:       solana.EnvironmentDev,
	},
	NetworkStagenet: {
		chainName: "solana-stagenet",
		its:       "itsediSVCwwKc6UuxfrsEiF8AEuEFk34RFAscPEDEpJ",
		gateway:   "gtwqQzBirGUVdAUDt17WWYnVfPoydn9eAazDJb7gFUs",
		rpc:       solana.EnvironmentDev,
	},
	NetworkTestnet: {
		chainName: "solana-testnet",
		its:       "itsZEirFsnRmLejCsRRNZKHqWTzMsKGyYi6Qr962os4",
		gateway:   "gtwShW9qgckMsZKijtRkNnyZHL4CU1BjZMftWiu7fGW",
		rpc:       solana.EnvironmentDev,
	},
	NetworkMainnet: {
		chainName: "solana",
		its:       "its1111111111111111111111111111111111111111",
		gateway:   "gtw1111111111111111111111111111111111111111",
		rpc:       solana.EnvironmentProd,
	},
}

// ParseNetwork accepts the canonical network names, case-insensitively.
func ParseNetwork(value string) (Network, error) {
	network := Network(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := networks[network]; !ok {
		return "", errors.Wrapf(ErrUnknownNetwork, "%q", value)
	}
	return network, nil
}

// Networks lists every supported network.
func Networks() []Network {
	return []Network{NetworkDevnetAmplifier, NetworkStagenet, NetworkTestnet, NetworkMainnet}
}

// ChainName is the name Axelar registers this Solana deployment under.
func (n Network) ChainName() (string, error) {
	info, ok := networks[n]
	if !ok {
		return "", errors.Wrapf(ErrUnknownNetwork, "%q", string(n))
	}
	return info.chainName, nil
}

// RPCEndpoint is the public cluster endpoint the network is deployed on.
func (n Network) RPCEndpoint() (string, error) {
	info, ok := networks[n]
	if !ok {
		return "", errors.Wrapf(ErrUnknownNetwork, "%q", string(n))
	}
	return string(info.rpc), nil
}

// ProgramConfig holds everything needed to bind the token service of a network.
type ProgramConfig struct {
	ChainName           string
	ProgramID           ed25519.PublicKey
	GatewayProgramID    ed25519.PublicKey
	GasServiceProgramID ed25519.PublicKey
}

// NetworkProgramConfig returns the well-known deployment of a network.
func NetworkProgramConfig(n Network) (*ProgramConfig, error) {
	info, ok := networks[n]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNetwork, "%q", string(n))
	}

	return &ProgramConfig{
		ChainName:           info.chainName,
		ProgramID:           solana.MustParsePublicKey(info.its),
		GatewayProgramID:    solana.MustParsePublicKey(info.gateway),
		GasServiceProgramID: gasservice.PROGRAM_ID,
	}, nil
}
