package its

import (
	"crypto/ed25519"
	"strings"

	"github.com/pkg/errors"

	"github.com/interchain-tools/solana-its/pkg/solana"
	"github.com/interchain-tools/solana-its/pkg/solana/roles"
	"github.com/interchain-tools/solana-its/pkg/solana/system"
)

var ErrUnsupportedRoleAction = errors.New("unsupported role action")

// RoleAction is one step of the two-phase (or direct) hand over of a role.
type RoleAction uint8

const (
	// RoleActionTransfer hands the role over directly.
	RoleActionTransfer RoleAction = iota
	// RoleActionPropose records a pending transfer the recipient must accept.
	RoleActionPropose
	// RoleActionAccept completes a proposal. The payer is the recipient.
	RoleActionAccept
)

func (a RoleAction) String() string {
	switch a {
	case RoleActionTransfer:
		return "transfer"
	case RoleActionPropose:
		return "propose"
	case RoleActionAccept:
		return "accept"
	}
	return "unknown"
}

func ParseRoleAction(value string) (RoleAction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "transfer":
		return RoleActionTransfer, nil
	case "propose":
		return RoleActionPropose, nil
	case "accept":
		return RoleActionAccept, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "role action: unknown %q", value)
}

// RoleResource is the account a role is held on.
type RoleResource uint8

const (
	RoleResourceItsRoot RoleResource = iota
	RoleResourceTokenManager
)

func (r RoleResource) String() string {
	switch r {
	case RoleResourceItsRoot:
		return "its"
	case RoleResourceTokenManager:
		return "token_manager"
	}
	return "unknown"
}

func ParseRoleResource(value string) (RoleResource, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), "-", "_") {
	case "its", "its_root":
		return RoleResourceItsRoot, nil
	case "token_manager":
		return RoleResourceTokenManager, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "role resource: unknown %q", value)
}

type roleInstructionKey struct {
	role     roles.Roles
	resource RoleResource
	action   RoleAction
}

var roleInstructionTypes = map[roleInstructionKey]InstructionType{
	{roles.Operator, RoleResourceItsRoot, RoleActionTransfer}:      InstructionTypeTransferOperatorship,
	{roles.Operator, RoleResourceItsRoot, RoleActionPropose}:       InstructionTypeProposeOperatorship,
	{roles.Operator, RoleResourceItsRoot, RoleActionAccept}:        InstructionTypeAcceptOperatorship,
	{roles.Operator, RoleResourceTokenManager, RoleActionTransfer}: InstructionTypeTransferTokenManagerOperatorship,
	{roles.Operator, RoleResourceTokenManager, RoleActionPropose}:  InstructionTypeProposeTokenManagerOperatorship,
	{roles.Operator, RoleResourceTokenManager, RoleActionAccept}:   InstructionTypeAcceptTokenManagerOperatorship,
	{roles.Minter, RoleResourceTokenManager, RoleActionTransfer}:   InstructionTypeTransferInterchainTokenMintership,
	{roles.Minter, RoleResourceTokenManager, RoleActionPropose}:    InstructionTypeProposeInterchainTokenMintership,
	{roles.Minter, RoleResourceTokenManager, RoleActionAccept}:     InstructionTypeAcceptInterchainTokenMintership,
}

type RoleInstructionArgs struct {
	Role     roles.Roles
	Action   RoleAction
	Resource RoleResource

	// TokenId selects the token manager. Ignored for the ITS root.
	TokenId TokenId
}

type RoleInstructionAccounts struct {
	Payer ed25519.PublicKey

	// Authority is the current holder for transfer and propose, and the
	// recipient for accept. It defaults to Payer. Only token manager
	// operatorship distinguishes the two.
	Authority ed25519.PublicKey

	// Counterparty is the recipient for transfer and propose, and the
	// previous holder for accept.
	Counterparty ed25519.PublicKey
}

// NewRoleInstruction maps a (role, resource, action) triple onto the concrete
// instruction. Combinations the program has no instruction for, such as any
// flow limiter hand over, fail with ErrUnsupportedRoleAction.
func (p *Program) NewRoleInstruction(accounts *RoleInstructionAccounts, args *RoleInstructionArgs) (solana.Instruction, error) {
	if accounts == nil || args == nil {
		return solana.Instruction{}, errors.Wrap(ErrInvalidArgument, "role instruction: nil accounts or args")
	}

	key := roleInstructionKey{role: args.Role, resource: args.Resource, action: args.Action}
	t, ok := roleInstructionTypes[key]
	if !ok {
		return solana.Instruction{}, errors.Wrapf(ErrUnsupportedRoleAction, "%s %s on %s", args.Action, args.Role, args.Resource)
	}

	if err := checkKeys(
		namedKey{"payer", accounts.Payer},
		namedKey{"counterparty", accounts.Counterparty},
	); err != nil {
		return solana.Instruction{}, err
	}

	authority := accounts.Authority
	if authority == nil {
		authority = accounts.Payer
	} else if err := checkKey("authority", authority); err != nil {
		return solana.Instruction{}, err
	}
	if args.Role != roles.Operator || args.Resource != RoleResourceTokenManager {
		if !authority.Equal(accounts.Payer) {
			return solana.Instruction{}, errors.Wrapf(ErrInvalidArgument, "authority: must be the payer for %s", t)
		}
	}

	itsRoot, _, err := p.GetItsRootAddress()
	if err != nil {
		return solana.Instruction{}, err
	}

	resource := itsRoot
	if args.Resource == RoleResourceTokenManager {
		resource, _, err = p.GetTokenManagerAddress(&GetTokenManagerAddressArgs{
			ItsRoot: itsRoot,
			TokenId: args.TokenId,
		})
		if err != nil {
			return solana.Instruction{}, err
		}
	}

	authorityRoles, _, err := roles.GetUserRolesAddress(&roles.GetUserRolesAddressArgs{
		Program:  p.programID,
		Resource: resource,
		User:     authority,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive authority roles pda")
	}

	counterpartyRoles, _, err := roles.GetUserRolesAddress(&roles.GetUserRolesAddressArgs{
		Program:  p.programID,
		Resource: resource,
		User:     accounts.Counterparty,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "derive counterparty roles pda")
	}

	var accountMetas []solana.AccountMeta
	if args.Resource == RoleResourceTokenManager {
		accountMetas = append(accountMetas, readonly(itsRoot))
	}
	accountMetas = append(accountMetas, readonly(system.ProgramKey), signer(accounts.Payer))
	if args.Role == roles.Operator && args.Resource == RoleResourceTokenManager {
		accountMetas = append(accountMetas, signer(authority))
	}

	switch args.Action {
	case RoleActionTransfer:
		accountMetas = append(accountMetas,
			writable(authorityRoles),
			readonly(resource),
			readonly(accounts.Counterparty),
			writable(counterpartyRoles),
		)

	case RoleActionPropose:
		proposal, _, err := roles.GetRoleProposalAddress(&roles.GetRoleProposalAddressArgs{
			Program:  p.programID,
			Resource: resource,
			From:     authority,
			To:       accounts.Counterparty,
		})
		if err != nil {
			return solana.Instruction{}, errors.Wrap(err, "derive role proposal pda")
		}

		recipientRoles := writable(counterpartyRoles)
		if args.Resource == RoleResourceItsRoot {
			recipientRoles = readonly(counterpartyRoles)
		}

		accountMetas = append(accountMetas,
			readonly(authorityRoles),
			readonly(resource),
			readonly(accounts.Counterparty),
			recipientRoles,
			writable(proposal),
		)

	case RoleActionAccept:
		proposal, _, err := roles.GetRoleProposalAddress(&roles.GetRoleProposalAddressArgs{
			Program:  p.programID,
			Resource: resource,
			From:     accounts.Counterparty,
			To:       authority,
		})
		if err != nil {
			return solana.Instruction{}, errors.Wrap(err, "derive role proposal pda")
		}

		origin := readonly(accounts.Counterparty)
		if args.Role == roles.Minter {
			origin = writable(accounts.Counterparty)
		}

		accountMetas = append(accountMetas,
			writable(authorityRoles),
			readonly(resource),
			origin,
			writable(counterpartyRoles),
			writable(proposal),
		)
	}

	data, err := encodeInstruction(t, nil)
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(p.programID, data, accountMetas...), nil
}
