// Package computebudget builds the compute budget instructions prepended to
// assembled transactions.
package computebudget

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/interchain-tools/solana-its/pkg/solana"
)

// ComputeBudget111111111111111111111111111111
var ProgramKey = solana.MustParsePublicKey("ComputeBudget111111111111111111111111111111")

const (
	commandRequestUnits uint8 = iota
	commandRequestHeapFrame
	commandSetComputeUnitLimit
	commandSetComputeUnitPrice
)

var ErrInvalidInstruction = errors.New("invalid compute budget instruction")

// SetComputeUnitLimit caps the compute units the transaction may consume.
func SetComputeUnitLimit(limit uint32) solana.Instruction {
	data := make([]byte, 1+4)
	data[0] = commandSetComputeUnitLimit
	binary.LittleEndian.PutUint32(data[1:], limit)

	return solana.NewInstruction(ProgramKey, data)
}

// SetComputeUnitPrice sets the priority fee in micro-lamports per compute unit.
func SetComputeUnitPrice(microLamports uint64) solana.Instruction {
	data := make([]byte, 1+8)
	data[0] = commandSetComputeUnitPrice
	binary.LittleEndian.PutUint64(data[1:], microLamports)

	return solana.NewInstruction(ProgramKey, data)
}

// Instructions returns the budget instructions for the non-zero settings, in
// the order the runtime expects them.
func Instructions(limit uint32, microLamports uint64) []solana.Instruction {
	var instructions []solana.Instruction
	if limit > 0 {
		instructions = append(instructions, SetComputeUnitLimit(limit))
	}
	if microLamports > 0 {
		instructions = append(instructions, SetComputeUnitPrice(microLamports))
	}
	return instructions
}

func ParseSetComputeUnitLimitData(data []byte) (uint32, error) {
	if len(data) != 5 || data[0] != commandSetComputeUnitLimit {
		return 0, ErrInvalidInstruction
	}
	return binary.LittleEndian.Uint32(data[1:]), nil
}

func ParseSetComputeUnitPriceData(data []byte) (uint64, error) {
	if len(data) != 9 || data[0] != commandSetComputeUnitPrice {
		return 0, ErrInvalidInstruction
	}
	return binary.LittleEndian.Uint64(data[1:]), nil
}
