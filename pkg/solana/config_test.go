package solana

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEnvironment(t *testing.T) {
	assert.Equal(t, EnvironmentLocal, ResolveEnvironment("localnet"))
	assert.Equal(t, EnvironmentDev, ResolveEnvironment(" Devnet "))
	assert.Equal(t, EnvironmentProd, ResolveEnvironment("mainnet-beta"))
	assert.Equal(t, Environment("https://rpc.example.com"), ResolveEnvironment("https://rpc.example.com"))
}
