package its

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

// HubMessageType is the leading uint256 of every ABI encoded ITS message.
type HubMessageType uint64

const (
	HubMessageTypeInterchainTransfer HubMessageType = iota
	HubMessageTypeDeployInterchainToken
	HubMessageTypeDeployTokenManager
	HubMessageTypeSendToHub
	HubMessageTypeReceiveFromHub
	HubMessageTypeLinkToken
	HubMessageTypeRegisterTokenMetadata
)

func (t HubMessageType) String() string {
	switch t {
	case HubMessageTypeInterchainTransfer:
		return "InterchainTransfer"
	case HubMessageTypeDeployInterchainToken:
		return "DeployInterchainToken"
	case HubMessageTypeDeployTokenManager:
		return "DeployTokenManager"
	case HubMessageTypeSendToHub:
		return "SendToHub"
	case HubMessageTypeReceiveFromHub:
		return "ReceiveFromHub"
	case HubMessageTypeLinkToken:
		return "LinkToken"
	case HubMessageTypeRegisterTokenMetadata:
		return "RegisterTokenMetadata"
	}
	return "Unknown"
}

var ErrUnknownHubMessage = errors.New("unknown hub message type")

func mustType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return typ
}

var (
	uint256Type = mustType("uint256")
	uint8Type   = mustType("uint8")
	bytes32Type = mustType("bytes32")
	bytesType   = mustType("bytes")
	stringType  = mustType("string")

	messageTypeArguments = abi.Arguments{{Type: uint256Type}}

	interchainTransferArguments = abi.Arguments{
		{Name: "messageType", Type: uint256Type},
		{Name: "tokenId", Type: bytes32Type},
		{Name: "sourceAddress", Type: bytesType},
		{Name: "destinationAddress", Type: bytesType},
		{Name: "amount", Type: uint256Type},
		{Name: "data", Type: bytesType},
	}

	deployInterchainTokenArguments = abi.Arguments{
		{Name: "messageType", Type: uint256Type},
		{Name: "tokenId", Type: bytes32Type},
		{Name: "name", Type: stringType},
		{Name: "symbol", Type: stringType},
		{Name: "decimals", Type: uint8Type},
		{Name: "minter", Type: bytesType},
	}

	linkTokenArguments = abi.Arguments{
		{Name: "messageType", Type: uint256Type},
		{Name: "tokenId", Type: bytes32Type},
		{Name: "tokenManagerType", Type: uint256Type},
		{Name: "sourceTokenAddress", Type: bytesType},
		{Name: "destinationTokenAddress", Type: bytesType},
		{Name: "params", Type: bytesType},
	}

	registerTokenMetadataArguments = abi.Arguments{
		{Name: "messageType", Type: uint256Type},
		{Name: "tokenAddress", Type: bytesType},
		{Name: "decimals", Type: uint8Type},
	}

	hubEnvelopeArguments = abi.Arguments{
		{Name: "messageType", Type: uint256Type},
		{Name: "chain", Type: stringType},
		{Name: "payload", Type: bytesType},
	}
)

func messageType(t HubMessageType) *big.Int {
	return new(big.Int).SetUint64(uint64(t))
}

type InterchainTransferPayload struct {
	TokenId            TokenId
	SourceAddress      []byte
	DestinationAddress []byte
	Amount             *big.Int
	Data               []byte
}

func (m *InterchainTransferPayload) Encode() ([]byte, error) {
	amount := m.Amount
	if amount == nil {
		amount = new(big.Int)
	}
	if amount.Sign() < 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "amount: negative")
	}

	payload, err := interchainTransferArguments.Pack(
		messageType(HubMessageTypeInterchainTransfer),
		[32]byte(m.TokenId),
		nonNil(m.SourceAddress),
		nonNil(m.DestinationAddress),
		amount,
		nonNil(m.Data),
	)
	if err != nil {
		return nil, errors.Wrap(err, "abi encode interchain transfer")
	}
	return payload, nil
}

type DeployInterchainTokenPayload struct {
	TokenId  TokenId
	Name     string
	Symbol   string
	Decimals uint8
	Minter   []byte
}

func (m *DeployInterchainTokenPayload) Encode() ([]byte, error) {
	payload, err := deployInterchainTokenArguments.Pack(
		messageType(HubMessageTypeDeployInterchainToken),
		[32]byte(m.TokenId),
		m.Name,
		m.Symbol,
		m.Decimals,
		nonNil(m.Minter),
	)
	if err != nil {
		return nil, errors.Wrap(err, "abi encode deploy interchain token")
	}
	return payload, nil
}

type LinkTokenPayload struct {
	TokenId                 TokenId
	TokenManagerType        TokenManagerType
	SourceTokenAddress      []byte
	DestinationTokenAddress []byte
	Params                  []byte
}

func (m *LinkTokenPayload) Encode() ([]byte, error) {
	payload, err := linkTokenArguments.Pack(
		messageType(HubMessageTypeLinkToken),
		[32]byte(m.TokenId),
		new(big.Int).SetUint64(uint64(m.TokenManagerType)),
		nonNil(m.SourceTokenAddress),
		nonNil(m.DestinationTokenAddress),
		nonNil(m.Params),
	)
	if err != nil {
		return nil, errors.Wrap(err, "abi encode link token")
	}
	return payload, nil
}

type RegisterTokenMetadataPayload struct {
	TokenAddress []byte
	Decimals     uint8
}

func (m *RegisterTokenMetadataPayload) Encode() ([]byte, error) {
	payload, err := registerTokenMetadataArguments.Pack(
		messageType(HubMessageTypeRegisterTokenMetadata),
		nonNil(m.TokenAddress),
		m.Decimals,
	)
	if err != nil {
		return nil, errors.Wrap(err, "abi encode register token metadata")
	}
	return payload, nil
}

// WrapSendToHub wraps an encoded message for routing through the hub to
// destinationChain. This is the payload the gateway carries.
func WrapSendToHub(destinationChain string, payload []byte) ([]byte, error) {
	wrapped, err := hubEnvelopeArguments.Pack(
		messageType(HubMessageTypeSendToHub),
		destinationChain,
		nonNil(payload),
	)
	if err != nil {
		return nil, errors.Wrap(err, "abi encode send to hub")
	}
	return wrapped, nil
}

// HubPayloadHash is the keccak256 the gateway commits to for a payload.
func HubPayloadHash(payload []byte) [32]byte {
	return keccak(payload)
}

// HubMessage is a decoded SendToHub or ReceiveFromHub envelope.
type HubMessage struct {
	Type    HubMessageType
	Chain   string
	Payload []byte

	// InnerType is the message type of Payload.
	InnerType HubMessageType
}

// DecodeHubMessage unwraps a hub envelope. Messages that are not wrapped are
// rejected with ErrUnknownHubMessage.
func DecodeHubMessage(b []byte) (*HubMessage, error) {
	outerType, err := decodeMessageType(b)
	if err != nil {
		return nil, err
	}
	if outerType != HubMessageTypeSendToHub && outerType != HubMessageTypeReceiveFromHub {
		return nil, errors.Wrapf(ErrUnknownHubMessage, "expected hub envelope, got %s", outerType)
	}

	values, err := hubEnvelopeArguments.Unpack(b)
	if err != nil {
		return nil, errors.Wrap(err, "abi decode hub envelope")
	}

	msg := &HubMessage{
		Type:    outerType,
		Chain:   values[1].(string),
		Payload: values[2].([]byte),
	}

	msg.InnerType, err = decodeMessageType(msg.Payload)
	if err != nil {
		return nil, errors.Wrap(err, "inner payload")
	}
	return msg, nil
}

func decodeMessageType(b []byte) (HubMessageType, error) {
	if len(b) < 32 {
		return 0, errors.Wrapf(ErrUnknownHubMessage, "payload too short: %d bytes", len(b))
	}

	values, err := messageTypeArguments.Unpack(b[:32])
	if err != nil {
		return 0, errors.Wrap(err, "abi decode message type")
	}

	value := values[0].(*big.Int)
	if !value.IsUint64() || value.Uint64() > uint64(HubMessageTypeRegisterTokenMetadata) {
		return 0, errors.Wrapf(ErrUnknownHubMessage, "%s", value)
	}
	return HubMessageType(value.Uint64()), nil
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
