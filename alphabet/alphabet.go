// SPDX-License-Identifier: MIT
// Package: hashid/alphabet
//
// alphabet.go — raw alphabet validation and deduplication.

package alphabet

import (
	"fmt"
	"unicode"
)

// Dedupe returns raw with every repeated symbol removed, keeping the first
// occurrence of each, and validates the result as a usable hashid alphabet.
//
// Description:
//
//	A hashid alphabet is an ordered set: order matters (it seeds every
//	shuffle) and duplicates are meaningless (a digit symbol must map back to
//	exactly one position). The scheme indexes the alphabet by byte, so only
//	single-byte (ASCII) symbols are allowed, and whitespace is rejected
//	because separators/guards are recovered by splitting the hash.
//
// Errors:
//   - ErrInvalidAlphabet — whitespace or non-ASCII symbol present, or fewer
//     than MinAlphabetLength unique symbols remain.
//
// Complexity: O(len(raw)) time, O(len(raw)) space.
func Dedupe(raw string) (string, error) {
	var seen [256]bool
	unique := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if b > unicode.MaxASCII {
			return "", fmt.Errorf("%w: non-ASCII symbol at byte %d", ErrInvalidAlphabet, i)
		}
		if unicode.IsSpace(rune(b)) {
			return "", fmt.Errorf("%w: whitespace at byte %d", ErrInvalidAlphabet, i)
		}
		if seen[b] {
			continue
		}
		seen[b] = true
		unique = append(unique, b)
	}
	if len(unique) < MinAlphabetLength {
		return "", fmt.Errorf("%w: %d unique symbols, need at least %d",
			ErrInvalidAlphabet, len(unique), MinAlphabetLength)
	}

	return string(unique), nil
}
