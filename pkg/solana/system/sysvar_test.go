package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWellKnownKeys(t *testing.T) {
	assert.Equal(t, make([]byte, 32), []byte(ProgramKey))
	assert.Equal(t, []byte{
		6, 167, 213, 23, 25, 44, 92, 81, 33, 140, 201, 76, 61, 74, 241, 127,
		88, 218, 238, 8, 155, 161, 253, 68, 227, 219, 217, 138, 0, 0, 0, 0,
	}, []byte(RentSysVar))
	assert.Len(t, InstructionsSysVar, 32)
}
