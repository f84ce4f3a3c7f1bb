// SPDX-License-Identifier: MIT
// Package: hashid/alphabet
//
// constants.go — the fixed reference values of the hashid scheme.
//
// Contract (strict):
//   • Every constant below is part of the wire format. Two codecs agree on
//     hashes only if they agree on all of them, bit for bit.
//   • DefaultSeparators is ordered; the intersection with a custom alphabet
//     preserves THIS order, not the alphabet's.

package alphabet

const (
	// DefaultAlphabet is the 62-symbol alphanumeric alphabet used when the
	// caller does not supply one. Digits come last, matching the reference
	// implementations of the scheme.
	DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

	// DefaultSeparators is the fixed reference set of separator candidates.
	// These letters are kept apart from the working alphabet so that the
	// common offensive substrings of English never appear in a hash
	// (no "c" adjacent to "s", etc.).
	DefaultSeparators = "cfhistuCFHISTU"

	// MinAlphabetLength is the minimum number of unique symbols a usable
	// alphabet must contain.
	MinAlphabetLength = 16

	// sepDiv is the maximum working-alphabet-to-separator ratio. When the
	// ratio is exceeded, separators are borrowed from the working alphabet.
	sepDiv = 3.5

	// guardDiv derives the guard count from the alphabet length:
	// ceil(len/guardDiv) symbols become guards.
	guardDiv = 12
)
