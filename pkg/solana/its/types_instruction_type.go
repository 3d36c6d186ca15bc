package its

import "fmt"

// InstructionType is the variant index of the program's instruction enum.
type InstructionType uint8

const (
	InstructionTypeInitialize InstructionType = iota
	InstructionTypeSetPauseStatus
	InstructionTypeSetTrustedChain
	InstructionTypeRemoveTrustedChain
	InstructionTypeApproveDeployRemoteInterchainToken
	InstructionTypeRevokeDeployRemoteInterchainToken
	InstructionTypeRegisterCanonicalInterchainToken
	InstructionTypeDeployRemoteCanonicalInterchainToken
	InstructionTypeInterchainTransfer
	InstructionTypeCpiInterchainTransfer
	InstructionTypeDeployInterchainToken
	InstructionTypeDeployRemoteInterchainToken
	InstructionTypeDeployRemoteInterchainTokenWithMinter
	InstructionTypeRegisterTokenMetadata
	InstructionTypeRegisterCustomToken
	InstructionTypeLinkToken
	InstructionTypeCallContractWithInterchainToken
	InstructionTypeCpiCallContractWithInterchainToken
	InstructionTypeSetFlowLimit
	InstructionTypeTransferOperatorship
	InstructionTypeProposeOperatorship
	InstructionTypeAcceptOperatorship
	InstructionTypeAddTokenManagerFlowLimiter
	InstructionTypeRemoveTokenManagerFlowLimiter
	InstructionTypeSetTokenManagerFlowLimit
	InstructionTypeTransferTokenManagerOperatorship
	InstructionTypeProposeTokenManagerOperatorship
	InstructionTypeAcceptTokenManagerOperatorship
	InstructionTypeHandoverMintAuthority
	InstructionTypeMintInterchainToken
	InstructionTypeTransferInterchainTokenMintership
	InstructionTypeProposeInterchainTokenMintership
	InstructionTypeAcceptInterchainTokenMintership
	InstructionTypeExecute
	// Index 34 targets program builds that append the offchain-data variant
	// after Execute. Builds whose enum ends at Execute do not accept it.
	InstructionTypeCallContractWithInterchainTokenOffchainData
)

var instructionTypeNames = map[InstructionType]string{
	InstructionTypeInitialize:                                  "Initialize",
	InstructionTypeSetPauseStatus:                              "SetPauseStatus",
	InstructionTypeSetTrustedChain:                             "SetTrustedChain",
	InstructionTypeRemoveTrustedChain:                          "RemoveTrustedChain",
	InstructionTypeApproveDeployRemoteInterchainToken:          "ApproveDeployRemoteInterchainToken",
	InstructionTypeRevokeDeployRemoteInterchainToken:           "RevokeDeployRemoteInterchainToken",
	InstructionTypeRegisterCanonicalInterchainToken:            "RegisterCanonicalInterchainToken",
	InstructionTypeDeployRemoteCanonicalInterchainToken:        "DeployRemoteCanonicalInterchainToken",
	InstructionTypeInterchainTransfer:                          "InterchainTransfer",
	InstructionTypeCpiInterchainTransfer:                       "CpiInterchainTransfer",
	InstructionTypeDeployInterchainToken:                       "DeployInterchainToken",
	InstructionTypeDeployRemoteInterchainToken:                 "DeployRemoteInterchainToken",
	InstructionTypeDeployRemoteInterchainTokenWithMinter:       "DeployRemoteInterchainTokenWithMinter",
	InstructionTypeRegisterTokenMetadata:                       "RegisterTokenMetadata",
	InstructionTypeRegisterCustomToken:                         "RegisterCustomToken",
	InstructionTypeLinkToken:                                   "LinkToken",
	InstructionTypeCallContractWithInterchainToken:             "CallContractWithInterchainToken",
	InstructionTypeCpiCallContractWithInterchainToken:          "CpiCallContractWithInterchainToken",
	InstructionTypeSetFlowLimit:                                "SetFlowLimit",
	InstructionTypeTransferOperatorship:                        "TransferOperatorship",
	InstructionTypeProposeOperatorship:                         "ProposeOperatorship",
	InstructionTypeAcceptOperatorship:                          "AcceptOperatorship",
	InstructionTypeAddTokenManagerFlowLimiter:                  "AddTokenManagerFlowLimiter",
	InstructionTypeRemoveTokenManagerFlowLimiter:               "RemoveTokenManagerFlowLimiter",
	InstructionTypeSetTokenManagerFlowLimit:                    "SetTokenManagerFlowLimit",
	InstructionTypeTransferTokenManagerOperatorship:            "TransferTokenManagerOperatorship",
	InstructionTypeProposeTokenManagerOperatorship:             "ProposeTokenManagerOperatorship",
	InstructionTypeAcceptTokenManagerOperatorship:              "AcceptTokenManagerOperatorship",
	InstructionTypeHandoverMintAuthority:                       "HandoverMintAuthority",
	InstructionTypeMintInterchainToken:                         "MintInterchainToken",
	InstructionTypeTransferInterchainTokenMintership:           "TransferInterchainTokenMintership",
	InstructionTypeProposeInterchainTokenMintership:            "ProposeInterchainTokenMintership",
	InstructionTypeAcceptInterchainTokenMintership:             "AcceptInterchainTokenMintership",
	InstructionTypeExecute:                                     "Execute",
	InstructionTypeCallContractWithInterchainTokenOffchainData: "CallContractWithInterchainTokenOffchainData",
}

func (t InstructionType) String() string {
	if name, ok := instructionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("InstructionType(%d)", uint8(t))
}
