package its

import (
	"strings"

	"github.com/pkg/errors"
)

// TokenManagerType selects how a token manager custodies its token. The values
// are the variant indices of the on-chain enum and the hub's uint256 tag.
type TokenManagerType uint8

const (
	TokenManagerTypeNativeInterchainToken TokenManagerType = iota
	TokenManagerTypeMintBurnFrom
	TokenManagerTypeLockUnlock
	TokenManagerTypeLockUnlockFee
	TokenManagerTypeMintBurn
)

var tokenManagerTypeNames = []string{
	"native_interchain_token",
	"mint_burn_from",
	"lock_unlock",
	"lock_unlock_fee",
	"mint_burn",
}

func (t TokenManagerType) String() string {
	if int(t) < len(tokenManagerTypeNames) {
		return tokenManagerTypeNames[t]
	}
	return "unknown"
}

// ParseTokenManagerType accepts snake_case or kebab-case names.
func ParseTokenManagerType(value string) (TokenManagerType, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), "-", "_")
	for i, name := range tokenManagerTypeNames {
		if name == normalized {
			return TokenManagerType(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "token manager type: unknown %q", value)
}

// IsCustom reports whether the type may be used for custom (linked) token registration.
func (t TokenManagerType) IsCustom() bool {
	return t != TokenManagerTypeNativeInterchainToken && int(t) < len(tokenManagerTypeNames)
}
