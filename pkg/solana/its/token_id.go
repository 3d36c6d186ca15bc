package its

import (
	"crypto/ed25519"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

var (
	InterchainTokenIdPrefix   = []byte("interchain-token-id")
	InterchainTokenSaltPrefix = []byte("interchain-token-salt")
	CanonicalTokenSaltPrefix  = []byte("canonical-token-salt")
	CustomTokenSaltPrefix     = []byte("solana-custom-token-salt")
)

// TokenId identifies a token across every chain connected to the hub.
type TokenId [32]byte

func (id TokenId) Hex() string {
	return hexutil.Encode(id[:])
}

func (id TokenId) String() string {
	return id.Hex()
}

// ParseTokenId decodes a 0x-prefixed (or bare) 32 byte hex token id.
func ParseTokenId(value string) (TokenId, error) {
	var id TokenId

	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "0x") && !strings.HasPrefix(value, "0X") {
		value = "0x" + value
	}

	decoded, err := hexutil.Decode(value)
	if err != nil {
		return id, errors.Wrapf(ErrInvalidArgument, "token id: %s", err)
	}
	if len(decoded) != len(id) {
		return id, errors.Wrapf(ErrInvalidArgument, "token id: expected %d bytes, got %d", len(id), len(decoded))
	}

	copy(id[:], decoded)
	return id, nil
}

// TokenIdVariant selects which deploy salt formula a token id is built from.
type TokenIdVariant uint8

const (
	TokenIdVariantCanonical TokenIdVariant = iota
	TokenIdVariantInterchain
	TokenIdVariantLinked
)

func (v TokenIdVariant) String() string {
	switch v {
	case TokenIdVariantCanonical:
		return "canonical"
	case TokenIdVariantInterchain:
		return "interchain"
	case TokenIdVariantLinked:
		return "linked"
	}
	return "unknown"
}

func ParseTokenIdVariant(value string) (TokenIdVariant, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "canonical":
		return TokenIdVariantCanonical, nil
	case "interchain":
		return TokenIdVariantInterchain, nil
	case "linked", "custom":
		return TokenIdVariantLinked, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "token id variant: unknown %q", value)
}

func keccak(parts ...[]byte) [32]byte {
	var out [32]byte
	copy(out[:], crypto.Keccak256(parts...))
	return out
}

// ChainNameHash is the keccak256 of the chain name the hub knows this
// deployment by.
func ChainNameHash(chainName string) [32]byte {
	return keccak([]byte(chainName))
}

// InterchainTokenDeploySalt is the deploy salt of a token deployed by ITS on
// behalf of deployer.
func InterchainTokenDeploySalt(chainNameHash [32]byte, deployer ed25519.PublicKey, salt []byte) [32]byte {
	return keccak(InterchainTokenSaltPrefix, chainNameHash[:], deployer, salt)
}

// LinkedTokenDeploySalt is the deploy salt of a pre-existing token registered
// by deployer with a custom token manager.
func LinkedTokenDeploySalt(chainNameHash [32]byte, deployer ed25519.PublicKey, salt []byte) [32]byte {
	return keccak(CustomTokenSaltPrefix, chainNameHash[:], deployer, salt)
}

// CanonicalTokenDeploySalt is the deploy salt of a pre-existing mint. Anyone
// may register it, so no deployer or caller salt is involved.
func CanonicalTokenDeploySalt(chainNameHash [32]byte, mint ed25519.PublicKey) [32]byte {
	return keccak(CanonicalTokenSaltPrefix, chainNameHash[:], mint)
}

func TokenIdFromDeploySalt(deploySalt [32]byte) TokenId {
	return TokenId(keccak(InterchainTokenIdPrefix, deploySalt[:]))
}

// DeploySalt dispatches on variant. For the canonical variant key is the mint
// and salt is ignored; otherwise key is the deployer.
func DeploySalt(variant TokenIdVariant, chainNameHash [32]byte, key ed25519.PublicKey, salt []byte) ([32]byte, error) {
	if err := checkKey("deployer or mint", key); err != nil {
		return [32]byte{}, err
	}

	switch variant {
	case TokenIdVariantCanonical:
		return CanonicalTokenDeploySalt(chainNameHash, key), nil
	case TokenIdVariantInterchain:
		return InterchainTokenDeploySalt(chainNameHash, key, salt), nil
	case TokenIdVariantLinked:
		return LinkedTokenDeploySalt(chainNameHash, key, salt), nil
	}
	return [32]byte{}, errors.Wrapf(ErrInvalidArgument, "token id variant: unknown %d", variant)
}

// TokenId derives the token id of variant on this program's chain.
func (p *Program) TokenId(variant TokenIdVariant, key ed25519.PublicKey, salt []byte) (TokenId, error) {
	deploySalt, err := DeploySalt(variant, p.chainNameHash, key, salt)
	if err != nil {
		return TokenId{}, err
	}
	return TokenIdFromDeploySalt(deploySalt), nil
}

func (p *Program) InterchainTokenId(deployer ed25519.PublicKey, salt []byte) (TokenId, error) {
	return p.TokenId(TokenIdVariantInterchain, deployer, salt)
}

func (p *Program) LinkedTokenId(deployer ed25519.PublicKey, salt []byte) (TokenId, error) {
	return p.TokenId(TokenIdVariantLinked, deployer, salt)
}

func (p *Program) CanonicalTokenId(mint ed25519.PublicKey) (TokenId, error) {
	return p.TokenId(TokenIdVariantCanonical, mint, nil)
}
