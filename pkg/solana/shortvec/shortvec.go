// Package shortvec implements the compact-u16 length prefix used by Solana
// transactions and messages.
package shortvec

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

// maxEncodedLen is the number of bytes needed for math.MaxUint16.
const maxEncodedLen = 3

var (
	ErrLenOverflow   = errors.Errorf("shortvec: len exceeds %d", math.MaxUint16)
	ErrInvalidLength = errors.New("shortvec: invalid encoding")
)

// AppendLen appends the encoding of n to b.
func AppendLen(b []byte, n int) ([]byte, error) {
	if n < 0 || n > math.MaxUint16 {
		return b, errors.Wrapf(ErrLenOverflow, "%d", n)
	}

	for n >= 0x80 {
		b = append(b, byte(n&0x7f)|0x80)
		n >>= 7
	}
	return append(b, byte(n)), nil
}

// EncodeLen writes the encoding of n to w and returns the number of bytes
// written.
func EncodeLen(w io.Writer, n int) (int, error) {
	encoded, err := AppendLen(make([]byte, 0, maxEncodedLen), n)
	if err != nil {
		return 0, err
	}
	return w.Write(encoded)
}

// DecodeLen reads an encoded length from r.
func DecodeLen(r io.Reader) (int, error) {
	var (
		val  int
		next [1]byte
	)

	for i := 0; i < maxEncodedLen; i++ {
		if _, err := io.ReadFull(r, next[:]); err != nil {
			return 0, err
		}

		val |= int(next[0]&0x7f) << (7 * i)
		if next[0]&0x80 == 0 {
			if val > math.MaxUint16 {
				return 0, errors.Wrapf(ErrLenOverflow, "%d", val)
			}
			return val, nil
		}
	}

	return 0, errors.Wrapf(ErrInvalidLength, "more than %d bytes", maxEncodedLen)
}
