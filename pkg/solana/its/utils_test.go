package its

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckKeys_ReportsFirstInvalidField(t *testing.T) {
	valid := generateKey(t)

	require.NoError(t, checkKeys(namedKey{"payer", valid}, namedKey{"mint", valid}))

	for i := 0; i < 20; i++ {
		err := checkKeys(
			namedKey{"payer", valid},
			namedKey{"authority", nil},
			namedKey{"mint", []byte{1, 2}},
			namedKey{"token program", nil},
		)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.Contains(t, err.Error(), "authority:")
		assert.NotContains(t, err.Error(), "mint")
	}
}
