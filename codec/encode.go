// SPDX-License-Identifier: MIT
// Package: hashid/codec
//
// encode.go — numbers → hash.

package codec

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/hashid/alphabet"
)

// hexGroupSize is the number of hex nibbles packed per encoded integer by
// EncodeHex. Each group is prefixed with a 1-nibble so leading zeros survive
// the round trip, keeping every value inside 52 bits.
const hexGroupSize = 12

// Encode turns a sequence of non-negative integers into a hash string.
//
// Description:
//
//	The first output symbol is the "lottery" character, picked from the
//	working alphabet by a value folded from all inputs; it re-seeds every
//	subsequent shuffle. Each number is then written as positional digits
//	over a freshly reshuffled alphabet, with a separator symbol between
//	consecutive numbers. Hashes shorter than the configured minimum are
//	framed with guard symbols and, if still short, padded from the middle
//	outwards with alphabet symbols.
//
// Empty input and negative values are rejected at the boundary: the result
// is the empty string, never an error and never a panic (runtime operations
// are failure-silent by design; all validation happened in New).
//
// Complexity: O(Σ digits + minLength) time and allocation per call; the
// Codec itself is not touched, so concurrent calls are safe.
func (c *Codec) Encode(numbers []int64) string {
	if len(numbers) == 0 {
		return ""
	}
	for _, n := range numbers {
		if n < 0 {
			return ""
		}
	}

	return string(c.encode(numbers))
}

// EncodeOne encodes a single identifier — the common one-ID-per-URL case.
// Negative input yields "".
func (c *Codec) EncodeOne(n int64) string {
	return c.Encode([]int64{n})
}

// EncodeHex encodes a plain hexadecimal string ([0-9a-fA-F]+) such as an
// object ID. The string is split into groups of at most hexGroupSize
// nibbles, each group is prefixed with a 1-nibble marker and the resulting
// integers are encoded as usual; DecodeHex reverses this exactly.
//
// Errors:
//   - ErrNonHexString — empty input or a non-hex symbol.
func (c *Codec) EncodeHex(hex string) (string, error) {
	if hex == "" {
		return "", fmt.Errorf("%w: empty input", ErrNonHexString)
	}

	numbers := make([]int64, 0, (len(hex)+hexGroupSize-1)/hexGroupSize)
	for start := 0; start < len(hex); start += hexGroupSize {
		end := start + hexGroupSize
		if end > len(hex) {
			end = len(hex)
		}
		n, err := strconv.ParseInt("1"+hex[start:end], 16, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrNonHexString, hex[start:end])
		}
		numbers = append(numbers, n)
	}

	return c.Encode(numbers), nil
}

// encode is the failure-free core shared by Encode and the decode-side
// re-encode check. All numbers must be non-negative; the empty sequence is
// allowed here (it can only arise from the re-encode of a degenerate hash,
// and the resulting string then fails the round-trip comparison).
func (c *Codec) encode(numbers []int64) []byte {
	// Fold all inputs into the lottery seed: Σ numbers[i] % (100+i).
	var numbersHash int64
	for i, n := range numbers {
		numbersHash += n % int64(100+i)
	}

	alpha := append([]byte(nil), c.working...)
	lottery := alpha[numbersHash%int64(len(alpha))]

	out := make([]byte, 0, c.minLength+len(numbers)*4+1)
	out = append(out, lottery)

	buf := make([]byte, 0, 1+len(c.salt)+len(alpha))
	for i, n := range numbers {
		// Reshuffle with salt = lottery + salt + current alphabet, truncated
		// to the alphabet length.
		buf = buf[:0]
		buf = append(buf, lottery)
		buf = append(buf, c.salt...)
		buf = append(buf, alpha...)
		alpha = alphabet.Shuffle(alpha, buf[:len(alpha)])

		start := len(out)
		out = numberToDigits(out, n, alpha)

		if i+1 < len(numbers) {
			v := n % int64(int(out[start])+i)
			out = append(out, c.seps[v%int64(len(c.seps))])
		}
	}

	if len(out) < c.minLength {
		guard := c.guards[(numbersHash+int64(out[0]))%int64(len(c.guards))]
		out = append(out, 0)
		copy(out[1:], out)
		out[0] = guard

		// Any real hash is at least 3 bytes here (guard + lottery + digit);
		// the length check only matters for the empty-sequence re-encode.
		if len(out) < c.minLength && len(out) > 2 {
			guard = c.guards[(numbersHash+int64(out[2]))%int64(len(c.guards))]
			out = append(out, guard)
		}
	}

	// Splice alphabet halves around the hash until the minimum is reached,
	// reshuffling between splices so the padding never repeats, then trim
	// symmetrically back to exactly minLength.
	half := len(alpha) / 2
	for len(out) < c.minLength {
		alpha = alphabet.Shuffle(alpha, alpha)

		padded := make([]byte, 0, len(alpha)+len(out))
		padded = append(padded, alpha[half:]...)
		padded = append(padded, out...)
		padded = append(padded, alpha[:half]...)
		out = padded

		if excess := len(out) - c.minLength; excess > 0 {
			start := excess / 2
			out = out[start : start+c.minLength]
		}
	}

	return out
}

// numberToDigits appends n in positional notation (most significant digit
// first) over alpha as the digit table, and returns the extended slice.
func numberToDigits(dst []byte, n int64, alpha []byte) []byte {
	radix := int64(len(alpha))
	start := len(dst)
	for {
		dst = append(dst, alpha[n%radix])
		n /= radix
		if n == 0 {
			break
		}
	}
	// Digits were produced least-significant first; reverse in place.
	for l, r := start, len(dst)-1; l < r; l, r = l+1, r-1 {
		dst[l], dst[r] = dst[r], dst[l]
	}

	return dst
}
