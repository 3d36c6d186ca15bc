package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoles_String(t *testing.T) {
	assert.Equal(t, "none", Roles(0).String())
	assert.Equal(t, "minter", Minter.String())
	assert.Equal(t, "minter|operator|flow_limiter", (Minter | Operator | FlowLimiter).String())
}

func TestRoles_Contains(t *testing.T) {
	held := Minter | FlowLimiter
	assert.True(t, held.Contains(Minter))
	assert.True(t, held.Contains(Minter|FlowLimiter))
	assert.False(t, held.Contains(Operator))
	assert.False(t, held.Contains(Minter|Operator))
}

func TestParseRoles(t *testing.T) {
	for input, expected := range map[string]Roles{
		"minter":       Minter,
		"Operator":     Operator,
		"flow-limiter": FlowLimiter,
		"flow_limiter": FlowLimiter,
	} {
		actual, err := ParseRoles(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, actual)
	}

	_, err := ParseRoles("admin")
	assert.Error(t, err)
}
