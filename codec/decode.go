// SPDX-License-Identifier: MIT
// Package: hashid/codec
//
// decode.go — hash → numbers.

package codec

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/hashid/alphabet"
)

// Decode recovers the integer sequence a hash was encoded from, using this
// codec's configuration. A hash produced under a different salt, alphabet or
// minimum length — or any corrupted or arbitrary string — yields an empty
// result. Decode never returns an error and never panics: "wrong salt" and
// "tampered hash" are indistinguishable by design, and both mean "no data".
//
// Complexity: O(len(hash) · len(alphabet)) time, call-scoped allocation
// only; concurrent calls on a shared Codec are safe.
func (c *Codec) Decode(hash string) []int64 {
	numbers, err := c.DecodeWithError(hash)
	if err != nil {
		return nil
	}

	return numbers
}

// DecodeWithError is Decode with the failure made distinguishable, for
// callers that want to log or surface it rather than treat every miss as an
// empty result.
//
// Description:
//
//	The hash is split on guard symbols; when that yields two or three
//	fields, the field after the first guard is the payload (guards are only
//	ever placed at the ends during encoding). The payload's first symbol is
//	the lottery character; the rest is split on separators into one digit
//	chunk per original number. Each chunk is read back over the same
//	shuffle sequence the encoder used. Finally the recovered numbers are
//	re-encoded and compared with the input — the only way to reject a
//	wrong-salt decode, since digit chunks are valid under any salt.
//
// Errors:
//   - ErrEmptyHash    — hash is "".
//   - ErrHashMismatch — anything else that fails: unknown symbols, numeric
//     overflow, or a re-encoding that differs from the input.
func (c *Codec) DecodeWithError(hash string) ([]int64, error) {
	if hash == "" {
		return nil, ErrEmptyHash
	}

	outer := strings.FieldsFunc(hash, c.isGuardRune)
	if len(outer) == 0 {
		return nil, fmt.Errorf("%w: guards only", ErrHashMismatch)
	}
	payload := outer[0]
	if len(outer) == 2 || len(outer) == 3 {
		payload = outer[1]
	}

	lottery := payload[0]
	chunks := strings.FieldsFunc(payload[1:], c.isSeparatorRune)

	alpha := append([]byte(nil), c.working...)
	buf := make([]byte, 0, 1+len(c.salt)+len(alpha))
	numbers := make([]int64, 0, len(chunks))
	for _, chunk := range chunks {
		// Mirror the encoder's shuffle schedule exactly.
		buf = buf[:0]
		buf = append(buf, lottery)
		buf = append(buf, c.salt...)
		buf = append(buf, alpha...)
		alpha = alphabet.Shuffle(alpha, buf[:len(alpha)])

		n, ok := digitsToNumber(chunk, alpha)
		if !ok {
			return nil, fmt.Errorf("%w: unreadable digit chunk %q", ErrHashMismatch, chunk)
		}
		numbers = append(numbers, n)
	}

	if string(c.encode(numbers)) != hash {
		return nil, ErrHashMismatch
	}

	return numbers, nil
}

// DecodeHex reverses EncodeHex: the hash is decoded to integers and each is
// rendered back to hex with its leading 1-nibble marker stripped. Output is
// lowercase regardless of the original casing.
//
// Errors:
//   - ErrEmptyHash / ErrHashMismatch — propagated from DecodeWithError.
func (c *Codec) DecodeHex(hash string) (string, error) {
	numbers, err := c.DecodeWithError(hash)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, n := range numbers {
		group := strconv.FormatInt(n, 16)
		sb.WriteString(group[1:])
	}

	return sb.String(), nil
}

// digitsToNumber reverses the positional encoding of one digit chunk over
// alpha. It reports failure for symbols outside alpha and for values that
// would overflow int64.
func digitsToNumber(chunk string, alpha []byte) (int64, bool) {
	radix := int64(len(alpha))
	var n int64
	for i := 0; i < len(chunk); i++ {
		pos := bytes.IndexByte(alpha, chunk[i])
		if pos < 0 {
			return 0, false
		}
		if n > (math.MaxInt64-int64(pos))/radix {
			return 0, false
		}
		n = n*radix + int64(pos)
	}

	return n, true
}

// isGuardRune adapts the partition's byte sets to strings.FieldsFunc.
// Non-ASCII runes are never guards or separators.
func (c *Codec) isGuardRune(r rune) bool {
	return r >= 0 && r <= unicode.MaxASCII && c.part.IsGuard(byte(r))
}

func (c *Codec) isSeparatorRune(r rune) bool {
	return r >= 0 && r <= unicode.MaxASCII && c.part.IsSeparator(byte(r))
}
