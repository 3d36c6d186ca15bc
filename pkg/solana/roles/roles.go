// Package roles derives the role-management accounts shared by the token
// service's protocol root and its token managers.
package roles

import (
	"strings"

	"github.com/pkg/errors"
)

// Roles is a bitflag set of the roles a user holds on a resource.
type Roles uint8

const (
	Minter      Roles = 1 << 0
	Operator    Roles = 1 << 1
	FlowLimiter Roles = 1 << 2
)

func (r Roles) Contains(other Roles) bool {
	return r&other == other
}

func (r Roles) String() string {
	var names []string
	if r.Contains(Minter) {
		names = append(names, "minter")
	}
	if r.Contains(Operator) {
		names = append(names, "operator")
	}
	if r.Contains(FlowLimiter) {
		names = append(names, "flow_limiter")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParseRoles accepts a single role name as printed by String.
func ParseRoles(value string) (Roles, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(value), "-", "_")) {
	case "minter":
		return Minter, nil
	case "operator":
		return Operator, nil
	case "flow_limiter":
		return FlowLimiter, nil
	default:
		return 0, errors.Errorf("unknown role %q", value)
	}
}
