package its

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/gasservice"
	"github.com/interchain-tools/solana-its/pkg/solana/gateway"
	"github.com/interchain-tools/solana-its/pkg/solana/system"
)

// callContractAccounts are the accounts every instruction that sends a
// message through the gateway carries after its own.
type callContractAccounts struct {
	itsRoot     ed25519.PublicKey
	gatewayRoot ed25519.PublicKey
	gasConfig   ed25519.PublicKey
	signing     ed25519.PublicKey
	signingBump uint8
}

func (p *Program) getCallContractAccounts() (*callContractAccounts, error) {
	itsRoot, _, err := p.GetItsRootAddress()
	if err != nil {
		return nil, err
	}

	gatewayRoot, _, err := gateway.GetRootConfigAddress(&gateway.GetRootConfigAddressArgs{
		Program: p.gatewayProgramID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "derive gateway root pda")
	}

	gasConfig, _, err := gasservice.GetConfigAddress(&gasservice.GetConfigAddressArgs{
		Program: p.gasServiceProgramID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "derive gas service config pda")
	}

	signing, signingBump, err := gateway.GetCallContractSigningAddress(&gateway.GetCallContractSigningAddressArgs{
		SourceProgram: p.programID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "derive call contract signing pda")
	}

	return &callContractAccounts{
		itsRoot:     itsRoot,
		gatewayRoot: gatewayRoot,
		gasConfig:   gasConfig,
		signing:     signing,
		signingBump: signingBump,
	}, nil
}

func (p *Program) callContractAccountMetas(accounts *callContractAccounts) []solana.AccountMeta {
	return []solana.AccountMeta{
		readonly(accounts.gatewayRoot),
		readonly(p.gatewayProgramID),
		writable(accounts.gasConfig),
		readonly(p.gasServiceProgramID),
		readonly(system.ProgramKey),
		readonly(accounts.itsRoot),
		readonly(accounts.signing),
		readonly(p.programID),
	}
}
