package main

import (
	"crypto/ed25519"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/token"
)

func parseKey(flag, value string) (ed25519.PublicKey, error) {
	if value == "" {
		return nil, errors.Errorf("--%s is required", flag)
	}
	key, err := solana.ParsePublicKey(value)
	if err != nil {
		return nil, errors.Wrapf(err, "--%s", flag)
	}
	return key, nil
}

func parseOptionalKey(flag, value string) (ed25519.PublicKey, error) {
	if value == "" {
		return nil, nil
	}
	return parseKey(flag, value)
}

// parseTokenProgram accepts token, token-2022 or a base58 program id.
func parseTokenProgram(value string) (ed25519.PublicKey, error) {
	switch strings.ToLower(value) {
	case "", "token", "spl-token":
		return token.ProgramKey, nil
	case "token-2022", "token2022":
		return token.Token2022ProgramKey, nil
	}

	key, err := parseKey("token-program", value)
	if err != nil {
		return nil, err
	}
	if !token.IsTokenProgram(key) {
		return nil, errors.Wrapf(token.ErrNotTokenProgram, "--token-program %s", value)
	}
	return key, nil
}

func parseHex(flag, value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}
	if !strings.HasPrefix(value, "0x") {
		value = "0x" + value
	}
	b, err := hexutil.Decode(value)
	if err != nil {
		return nil, errors.Wrapf(err, "--%s", flag)
	}
	return b, nil
}

func parseRequiredHex(flag, value string) ([]byte, error) {
	b, err := parseHex(flag, value)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, errors.Errorf("--%s is required", flag)
	}
	return b, nil
}

func parseSalt(value string) ([32]byte, error) {
	var salt [32]byte

	b, err := parseRequiredHex("salt", value)
	if err != nil {
		return salt, err
	}
	if len(b) != len(salt) {
		return salt, errors.Errorf("--salt: expected 32 bytes, got %d", len(b))
	}
	copy(salt[:], b)
	return salt, nil
}
