package main

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interchain-tools/solana-its/pkg/solana/computebudget"
	"github.com/interchain-tools/solana-its/pkg/solana/its"
	"github.com/interchain-tools/solana-its/pkg/solana/memo"
)

func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	return out.String(), err
}

func generateKey(t *testing.T) string {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return base58.Encode(pub)
}

func testBlockhash() string {
	return base58.Encode(bytes.Repeat([]byte{9}, 32))
}

// rpcServer answers each JSON-RPC method with its canned result.
func rpcServer(t *testing.T, results map[string]string) string {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		result, ok := results[req.Method]
		require.True(t, ok, "unexpected method %s", req.Method)
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":0,"result":` + result + `}`))
	}))
	t.Cleanup(server.Close)
	return server.URL
}

func TestTokenIdCmd(t *testing.T) {
	deployer := make([]byte, 32)
	for i := range deployer {
		deployer[i] = byte(i + 1)
	}

	out, err := execute(t,
		"token-id", "interchain",
		"--network", "devnet-amplifier",
		"--deployer", base58.Encode(deployer),
		"--salt", hexutil.Encode(bytes.Repeat([]byte{7}, 32)),
	)
	require.NoError(t, err)
	assert.Contains(t, out, "deploy salt: 0x5dacc764547b5d614d0012ec84965b9e887f14a40dcdca848be6fe8118a9f01b\n")
	assert.Contains(t, out, "token id: 0xd2fb794d8b0371b3db08ea66479f25cabb1383c07999b8e39f1299ce2dc851ce\n")

	_, err = execute(t, "token-id", "canonical", "--network", "devnet-amplifier")
	assert.EqualError(t, err, "--mint is required")

	_, err = execute(t, "token-id", "bogus")
	assert.Error(t, err)
}

func TestAddressCmd(t *testing.T) {
	program, err := its.NewNetworkProgram(its.NetworkTestnet)
	require.NoError(t, err)
	itsRoot, bump, err := program.GetItsRootAddress()
	require.NoError(t, err)

	out, err := execute(t, "address", "its-root", "--network", "testnet")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%s %d\n", base58.Encode(itsRoot), bump), out)
}

func TestTxCmd_JSON(t *testing.T) {
	payer := generateKey(t)

	out, err := execute(t,
		"tx", "set-trusted-chain",
		"--network", "devnet-amplifier",
		"--payer", payer,
		"--blockhash", testBlockhash(),
		"--chain", "ethereum",
		"-o", "json",
	)
	require.NoError(t, err)

	var decoded transactionOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, testBlockhash(), decoded.Blockhash)
	assert.Equal(t, []string{payer}, decoded.Signers)
	assert.NotEmpty(t, decoded.Transaction)
	assert.Empty(t, decoded.HubPayload)

	require.Len(t, decoded.Instructions, 1)
	assert.Equal(t, "itsqybuNsChBo3LgVhCWWnTJVJdoVTUJaodmqQcG6z7", decoded.Instructions[0].Program)
	assert.Equal(t, "0x0208000000657468657265756d", decoded.Instructions[0].Data)
	assert.Equal(t, payer, decoded.Instructions[0].Accounts[0].PublicKey)
	assert.True(t, decoded.Instructions[0].Accounts[0].IsSigner)
}

func TestTxCmd_ComputeBudget(t *testing.T) {
	out, err := execute(t,
		"tx", "set-pause-status",
		"--payer", generateKey(t),
		"--blockhash", testBlockhash(),
		"--compute-unit-limit", "200000",
		"--compute-unit-price", "1000",
		"-o", "json",
	)
	require.NoError(t, err)

	var decoded transactionOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	require.Len(t, decoded.Instructions, 3)
	assert.Equal(t, base58.Encode(computebudget.ProgramKey), decoded.Instructions[0].Program)
	assert.Equal(t, "0x02400d0300", decoded.Instructions[0].Data)
	assert.Equal(t, base58.Encode(computebudget.ProgramKey), decoded.Instructions[1].Program)
	assert.Equal(t, "0x0101", decoded.Instructions[2].Data)
}

func TestTxCmd_Memo(t *testing.T) {
	payer := generateKey(t)

	out, err := execute(t,
		"tx", "set-pause-status",
		"--payer", payer,
		"--blockhash", testBlockhash(),
		"--paused=false",
		"--memo", "resume after upgrade",
		"-o", "json",
	)
	require.NoError(t, err)

	var decoded transactionOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	require.Len(t, decoded.Instructions, 2)
	assert.Equal(t, "0x0100", decoded.Instructions[0].Data)
	assert.Equal(t, base58.Encode(memo.ProgramKey), decoded.Instructions[1].Program)
	assert.Equal(t, hexutil.Encode([]byte("resume after upgrade")), decoded.Instructions[1].Data)
	require.Len(t, decoded.Instructions[1].Accounts, 1)
	assert.Equal(t, payer, decoded.Instructions[1].Accounts[0].PublicKey)
}

func TestTxCmd_OffchainData(t *testing.T) {
	args := []string{
		"tx", "call-contract-with-interchain-token",
		"--payer", generateKey(t),
		"--blockhash", testBlockhash(),
		"--token-id", hexutil.Encode(bytes.Repeat([]byte{1}, 32)),
		"--source-account", generateKey(t),
		"--destination-chain", "ethereum",
		"--destination-address", "0x1234",
		"--amount", "10",
		"--data", "0xcafe",
		"--timestamp", "1700000000",
	}

	out, err := execute(t, append(args, "--offchain-data", "-o", "json")...)
	require.NoError(t, err)

	var decoded transactionOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Instructions, 1)
	assert.True(t, strings.HasPrefix(decoded.Instructions[0].Data, "0x22"))
	assert.NotEmpty(t, decoded.HubPayload)

	out, err = execute(t, args...)
	require.NoError(t, err)
	assert.NotContains(t, out, "hub payload")
}

func TestTxCmd_InvalidInput(t *testing.T) {
	_, err := execute(t, "tx", "set-trusted-chain", "--blockhash", testBlockhash(), "--chain", "ethereum")
	assert.EqualError(t, err, "--payer is required")

	_, err = execute(t, "tx", "set-trusted-chain", "--payer", generateKey(t), "--blockhash", "abc", "--chain", "ethereum")
	assert.Error(t, err)

	_, err = execute(t, "tx", "set-pause-status", "--payer", generateKey(t), "--blockhash", testBlockhash(), "-o", "yaml")
	assert.EqualError(t, err, `unknown output "yaml"`)

	_, err = execute(t, "tx", "set-pause-status", "--payer", generateKey(t), "--blockhash", testBlockhash(), "--network", "moon")
	assert.Error(t, err)
}

func TestTxCmd_FetchesBlockhash(t *testing.T) {
	blockhash := testBlockhash()
	url := rpcServer(t, map[string]string{
		"getLatestBlockhash": `{"context":{"slot":1},"value":{"blockhash":"` + blockhash + `","lastValidBlockHeight":10}}`,
	})

	out, err := execute(t, "tx", "set-pause-status", "--payer", generateKey(t), "--rpc", url, "-o", "json")
	require.NoError(t, err)

	var decoded transactionOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, blockhash, decoded.Blockhash)
}

func TestTxCmd_TokenManagerExists(t *testing.T) {
	url := rpcServer(t, map[string]string{
		"getAccountInfo": `{"context":{"slot":1},"value":{"lamports":1000,"owner":"` + generateKey(t) +
			`","executable":false,"rentEpoch":0,"data":["AQID","base64"]}}`,
	})

	_, err := execute(t,
		"tx", "deploy-interchain-token",
		"--payer", generateKey(t),
		"--rpc", url,
		"--salt", hexutil.Encode(bytes.Repeat([]byte{7}, 32)),
		"--name", "Token",
		"--symbol", "TKN",
		"--initial-supply", "1",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestDecodePayloadCmd(t *testing.T) {
	inner, err := (&its.InterchainTransferPayload{
		TokenId:            its.TokenId{1},
		SourceAddress:      []byte{2},
		DestinationAddress: []byte{3},
		Amount:             big.NewInt(100),
	}).Encode()
	require.NoError(t, err)

	wrapped, err := its.WrapSendToHub("ethereum", inner)
	require.NoError(t, err)

	out, err := execute(t, "decode-payload", hexutil.Encode(wrapped))
	require.NoError(t, err)
	assert.Contains(t, out, "type: SendToHub\n")
	assert.Contains(t, out, "chain: ethereum\n")
	assert.Contains(t, out, "inner type: InterchainTransfer\n")
	assert.Contains(t, out, "payload: "+hexutil.Encode(inner)+"\n")

	_, err = execute(t, "decode-payload", hexutil.Encode(inner))
	assert.Error(t, err)
}

func TestQueryCmd(t *testing.T) {
	tokenId := hexutil.Encode(bytes.Repeat([]byte{1}, 32))

	url := rpcServer(t, map[string]string{
		"getAccountInfo": `{"context":{"slot":1},"value":null}`,
	})
	out, err := execute(t, "query", "token-manager", "--token-id", tokenId, "--rpc", url)
	require.NoError(t, err)
	assert.Contains(t, out, "status: not deployed\n")

	owner := generateKey(t)
	url = rpcServer(t, map[string]string{
		"getAccountInfo": `{"context":{"slot":1},"value":{"lamports":2000000,"owner":"` + owner +
			`","executable":false,"rentEpoch":0,"data":["AQID","base64"]}}`,
		"getMinimumBalanceForRentExemption": `890880`,
	})
	out, err = execute(t, "query", "token-manager", "--token-id", tokenId, "--rpc", url)
	require.NoError(t, err)
	assert.Contains(t, out, "status: deployed\n")
	assert.Contains(t, out, "owner: "+owner+"\n")
	assert.Contains(t, out, "data length: 3\n")
	assert.Contains(t, out, "rent exempt: true\n")
}
