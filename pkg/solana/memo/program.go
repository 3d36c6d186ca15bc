package memo

import (
	"bytes"
	"crypto/ed25519"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/interchain-tools/solana-its/pkg/solana"
)

// ProgramKey is the SPL memo program, v2.
var ProgramKey = solana.MustParsePublicKey("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")

var (
	ErrIncorrectProgram = errors.New("incorrect program")
	ErrInvalidMemo      = errors.New("memo is not valid utf-8")
)

// Instruction records text in the transaction logs. Every signer must sign
// the transaction.
//
// Reference: https://github.com/solana-labs/solana-program-library/blob/master/memo/program/src/processor.rs
func Instruction(text string, signers ...ed25519.PublicKey) solana.Instruction {
	accounts := make([]solana.AccountMeta, 0, len(signers))
	for _, signer := range signers {
		accounts = append(accounts, solana.NewReadonlyAccountMeta(signer, true))
	}
	return solana.NewInstruction(ProgramKey, []byte(text), accounts...)
}

// Parse returns the memo text carried by ix.
func Parse(ix solana.Instruction) (string, error) {
	if !bytes.Equal(ix.Program, ProgramKey) {
		return "", ErrIncorrectProgram
	}
	if !utf8.Valid(ix.Data) {
		return "", ErrInvalidMemo
	}
	return string(ix.Data), nil
}
