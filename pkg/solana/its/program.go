// Package its derives the accounts of the Interchain Token Service program on
// Solana and assembles unsigned instructions for it.
package its

import (
	"crypto/ed25519"

	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
)

// Program binds the token service deployment of one network. It carries no
// mutable state and is safe for concurrent use.
type Program struct {
	programID           ed25519.PublicKey
	gatewayProgramID    ed25519.PublicKey
	gasServiceProgramID ed25519.PublicKey

	chainName     string
	chainNameHash [32]byte
}

// NewProgram validates the configuration and returns the program binding.
func NewProgram(config *ProgramConfig) (*Program, error) {
	if config == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "program config: nil")
	}
	if config.ChainName == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "chain name: empty")
	}
	if err := checkKey("program id", config.ProgramID); err != nil {
		return nil, err
	}
	if err := checkKey("gateway program id", config.GatewayProgramID); err != nil {
		return nil, err
	}
	if err := checkKey("gas service program id", config.GasServiceProgramID); err != nil {
		return nil, err
	}

	return &Program{
		programID:           config.ProgramID,
		gatewayProgramID:    config.GatewayProgramID,
		gasServiceProgramID: config.GasServiceProgramID,
		chainName:           config.ChainName,
		chainNameHash:       ChainNameHash(config.ChainName),
	}, nil
}

// NewNetworkProgram binds the well-known deployment of a network.
func NewNetworkProgram(network Network) (*Program, error) {
	config, err := NetworkProgramConfig(network)
	if err != nil {
		return nil, err
	}
	return NewProgram(config)
}

func (p *Program) ProgramID() ed25519.PublicKey {
	return p.programID
}

func (p *Program) GatewayProgramID() ed25519.PublicKey {
	return p.gatewayProgramID
}

func (p *Program) GasServiceProgramID() ed25519.PublicKey {
	return p.gasServiceProgramID
}

func (p *Program) ChainName() string {
	return p.chainName
}

func (p *Program) ChainNameHash() [32]byte {
	return p.chainNameHash
}
