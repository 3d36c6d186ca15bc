package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/mr-tron/base58"

	"github.com/interchain-tools/solana-its/pkg/solana"
)

const (
	outputBase64 = "base64"
	outputBase58 = "base58"
	outputJSON   = "json"
)

type accountOutput struct {
	PublicKey  string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

type instructionOutput struct {
	Program  string          `json:"program"`
	Accounts []accountOutput `json:"accounts"`
	Data     string          `json:"data"`
}

type transactionOutput struct {
	Transaction  string              `json:"transaction"`
	Blockhash    string              `json:"blockhash"`
	Signers      []string            `json:"signers"`
	Instructions []instructionOutput `json:"instructions"`
	HubPayload   string              `json:"hub_payload,omitempty"`
}

func writeTransaction(w io.Writer, format string, txn solana.Transaction, instructions []solana.Instruction, hubPayload []byte) error {
	raw := txn.Marshal()

	switch format {
	case outputBase58:
		fmt.Fprintln(w, base58.Encode(raw))
	case outputJSON:
		out := transactionOutput{
			Transaction: base64.StdEncoding.EncodeToString(raw),
			Blockhash:   base58.Encode(txn.Message.RecentBlockhash[:]),
		}
		for _, signer := range txn.Signers() {
			out.Signers = append(out.Signers, solana.Base58(signer))
		}
		for _, ix := range instructions {
			instruction := instructionOutput{
				Program: solana.Base58(ix.Program),
				Data:    hexutil.Encode(ix.Data),
			}
			for _, account := range ix.Accounts {
				instruction.Accounts = append(instruction.Accounts, accountOutput{
					PublicKey:  solana.Base58(account.PublicKey),
					IsSigner:   account.IsSigner,
					IsWritable: account.IsWritable,
				})
			}
			out.Instructions = append(out.Instructions, instruction)
		}
		if len(hubPayload) > 0 {
			out.HubPayload = hexutil.Encode(hubPayload)
		}

		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	default:
		fmt.Fprintln(w, base64.StdEncoding.EncodeToString(raw))
	}

	if len(hubPayload) > 0 {
		fmt.Fprintf(w, "hub payload: %s\n", hexutil.Encode(hubPayload))
	}
	return nil
}
