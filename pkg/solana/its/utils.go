package its

import (
	"crypto/ed25519"

	"github.com/near/borsh-go"
	"github.com/pkg/errors"

	"github.com/interchain-tools/solana-its/pkg/solana"
)

// encodeInstruction writes the variant index followed by the borsh encoding
// of the variant's fields. args must be a struct value, not a pointer, since
// borsh encodes pointers as options.
func encodeInstruction(t InstructionType, args interface{}) ([]byte, error) {
	data := []byte{byte(t)}
	if args == nil {
		return data, nil
	}

	body, err := borsh.Serialize(args)
	if err != nil {
		return nil, errors.Wrapf(err, "serialize %s arguments", t)
	}
	return append(data, body...), nil
}

func checkKey(field string, key ed25519.PublicKey) error {
	if len(key) != ed25519.PublicKeySize {
		return errors.Wrapf(ErrInvalidArgument, "%s: expected %d byte public key, got %d", field, ed25519.PublicKeySize, len(key))
	}
	return nil
}

type namedKey struct {
	field string
	key   ed25519.PublicKey
}

// checkKeys reports the first invalid key in order.
func checkKeys(keys ...namedKey) error {
	for _, k := range keys {
		if err := checkKey(k.field, k.key); err != nil {
			return err
		}
	}
	return nil
}

func checkNotEmpty(field, value string) error {
	if value == "" {
		return errors.Wrapf(ErrInvalidArgument, "%s: empty", field)
	}
	return nil
}

func toArray(key ed25519.PublicKey) [32]byte {
	var out [32]byte
	copy(out[:], key)
	return out
}

func signer(key ed25519.PublicKey) solana.AccountMeta {
	return solana.AccountMeta{PublicKey: key, IsWritable: true, IsSigner: true}
}

func readonlySigner(key ed25519.PublicKey) solana.AccountMeta {
	return solana.AccountMeta{PublicKey: key, IsWritable: false, IsSigner: true}
}

func writable(key ed25519.PublicKey) solana.AccountMeta {
	return solana.AccountMeta{PublicKey: key, IsWritable: true, IsSigner: false}
}

func readonly(key ed25519.PublicKey) solana.AccountMeta {
	return solana.AccountMeta{PublicKey: key, IsWritable: false, IsSigner: false}
}
