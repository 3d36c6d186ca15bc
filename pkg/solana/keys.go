package solana

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// Base58 encodes a public key the way explorers and RPC nodes display it.
func Base58(key ed25519.PublicKey) string {
	return base58.Encode(key)
}

// ParsePublicKey decodes a base58 public key and checks its length.
func ParsePublicKey(value string) (ed25519.PublicKey, error) {
	decoded, err := base58.Decode(value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base58 public key %q", value)
	}
	if len(decoded) != ed25519.PublicKeySize {
		return nil, errors.Errorf("invalid public key length for %q: %d", value, len(decoded))
	}
	return decoded, nil
}

// MustParsePublicKey is ParsePublicKey for compile-time constants.
func MustParsePublicKey(value string) ed25519.PublicKey {
	key, err := ParsePublicKey(value)
	if err != nil {
		panic(err)
	}
	return key
}
