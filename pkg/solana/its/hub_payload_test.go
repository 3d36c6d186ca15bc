package its

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenId() TokenId {
	var id TokenId
	for i := range id {
		id[i] = byte(i)
	}
	return id
}

func TestInterchainTransferHubPayload(t *testing.T) {
	args := &InterchainTransferHubPayloadArgs{
		TokenId:            testTokenId(),
		SourceAddress:      bytes.Repeat([]byte{1}, 32),
		DestinationChain:   "ethereum",
		DestinationAddress: make([]byte, 20),
		Amount:             1,
	}

	payload, err := NewInterchainTransferHubPayload(args)
	require.NoError(t, err)
	require.Len(t, payload, 544)

	// SendToHub envelope head: type 3, then offsets of the chain and payload.
	assert.EqualValues(t, 3, new(big.Int).SetBytes(payload[0:32]).Uint64())
	assert.EqualValues(t, 0x60, new(big.Int).SetBytes(payload[32:64]).Uint64())
	assert.EqualValues(t, 0xa0, new(big.Int).SetBytes(payload[64:96]).Uint64())
	assert.Equal(t, "ethereum", string(payload[128:136]))

	hash := HubPayloadHash(payload)
	assert.Equal(t, "85b38ae7010709e7d387c66664394817241f8ff2ca6d3195ee7523490fa704df", hex.EncodeToString(hash[:]))

	again, err := NewInterchainTransferHubPayload(args)
	require.NoError(t, err)
	assert.Equal(t, payload, again)

	args.Amount = 2
	changed, err := NewInterchainTransferHubPayload(args)
	require.NoError(t, err)
	assert.NotEqual(t, HubPayloadHash(payload), HubPayloadHash(changed))
}

func TestDecodeHubMessage(t *testing.T) {
	inner, err := (&InterchainTransferPayload{
		TokenId:            testTokenId(),
		SourceAddress:      []byte{1, 2, 3},
		DestinationAddress: []byte{4, 5},
		Amount:             big.NewInt(1000),
		Data:               []byte("hello"),
	}).Encode()
	require.NoError(t, err)

	wrapped, err := WrapSendToHub("avalanche", inner)
	require.NoError(t, err)

	msg, err := DecodeHubMessage(wrapped)
	require.NoError(t, err)
	assert.Equal(t, HubMessageTypeSendToHub, msg.Type)
	assert.Equal(t, "avalanche", msg.Chain)
	assert.Equal(t, inner, msg.Payload)
	assert.Equal(t, HubMessageTypeInterchainTransfer, msg.InnerType)

	_, err = DecodeHubMessage(inner)
	assert.ErrorIs(t, err, ErrUnknownHubMessage)

	_, err = DecodeHubMessage([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrUnknownHubMessage)
}

func TestHubPayloads_MessageTypes(t *testing.T) {
	for _, tc := range []struct {
		name     string
		encode   func() ([]byte, error)
		expected HubMessageType
	}{
		{
			name: "deploy interchain token",
			encode: (&DeployInterchainTokenPayload{
				TokenId:  testTokenId(),
				Name:     "Token",
				Symbol:   "TKN",
				Decimals: 9,
			}).Encode,
			expected: HubMessageTypeDeployInterchainToken,
		},
		{
			name: "link token",
			encode: (&LinkTokenPayload{
				TokenId:                 testTokenId(),
				TokenManagerType:        TokenManagerTypeLockUnlock,
				SourceTokenAddress:      bytes.Repeat([]byte{9}, 32),
				DestinationTokenAddress: make([]byte, 20),
			}).Encode,
			expected: HubMessageTypeLinkToken,
		},
		{
			name: "register token metadata",
			encode: (&RegisterTokenMetadataPayload{
				TokenAddress: bytes.Repeat([]byte{9}, 32),
				Decimals:     6,
			}).Encode,
			expected: HubMessageTypeRegisterTokenMetadata,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := tc.encode()
			require.NoError(t, err)

			actual, err := decodeMessageType(payload)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)

			wrapped, err := WrapSendToHub("ethereum", payload)
			require.NoError(t, err)

			msg, err := DecodeHubMessage(wrapped)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, msg.InnerType)
		})
	}
}

func TestInterchainTransferPayload_NegativeAmount(t *testing.T) {
	_, err := (&InterchainTransferPayload{Amount: big.NewInt(-1)}).Encode()
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
