package roles

import (
	"crypto/ed25519"

	"github.com/interchain-tools/solana-its/pkg/solana"
)

var (
	UserRolesPrefix    = []byte("user-roles")
	RoleProposalPrefix = []byte("role-proposal")
)

type GetUserRolesAddressArgs struct {
	Program  ed25519.PublicKey
	Resource ed25519.PublicKey
	User     ed25519.PublicKey

	// Bump, when known, skips the search. An invalid bump falls back to it.
	Bump *uint8
}

// GetUserRolesAddress returns the account recording the roles User holds on Resource.
func GetUserRolesAddress(args *GetUserRolesAddressArgs) (ed25519.PublicKey, uint8, error) {
	return findOrDerive(args.Program, args.Bump, UserRolesPrefix, args.Resource, args.User)
}

type GetRoleProposalAddressArgs struct {
	Program  ed25519.PublicKey
	Resource ed25519.PublicKey
	From     ed25519.PublicKey
	To       ed25519.PublicKey

	Bump *uint8
}

// GetRoleProposalAddress returns the pending proposal of a role transfer from
// From to To. The derivation is directional: swapping From and To yields a
// different account.
func GetRoleProposalAddress(args *GetRoleProposalAddressArgs) (ed25519.PublicKey, uint8, error) {
	return findOrDerive(args.Program, args.Bump, RoleProposalPrefix, args.Resource, args.From, args.To)
}

func findOrDerive(program ed25519.PublicKey, bump *uint8, seeds ...[]byte) (ed25519.PublicKey, uint8, error) {
	if bump != nil {
		address, err := solana.DeriveProgramAddress(program, *bump, seeds...)
		if err == nil {
			return address, *bump, nil
		}
	}

	return solana.FindProgramAddressAndBump(program, seeds...)
}
