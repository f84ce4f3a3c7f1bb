// SPDX-License-Identifier: MIT
// Package: hashid/codec
//
// errors.go — sentinel errors for the codec package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site;
//     implementations attach context using %w.
//   • Encode/Decode MUST NOT panic or error at runtime — they return empty
//     results by design. Errors exist only at construction time and on the
//     explicitly error-returning variants (DecodeWithError, *Hex).

package codec

import (
	"errors"

	"github.com/katalvlaran/hashid/alphabet"
)

// ErrMissingSalt indicates that construction found no salt: none was set via
// WithSalt and the environment variable (WithEnvKey, HASHID_SALT by default)
// is unset or empty. A codec without a salt would encode identically for
// everyone, defeating its purpose.
// Usage: if errors.Is(err, ErrMissingSalt) { /* supply a salt */ }.
var ErrMissingSalt = errors.New("codec: no salt provided and environment fallback is empty")

// ErrInvalidAlphabet indicates an unusable alphabet (whitespace, non-ASCII,
// or fewer than 16 unique symbols). Re-exported from the alphabet package so
// codec callers can branch without importing it.
// Usage: if errors.Is(err, ErrInvalidAlphabet) { /* fix the alphabet */ }.
var ErrInvalidAlphabet = alphabet.ErrInvalidAlphabet

// ErrInvalidMinLength indicates a negative minimum hash length.
// Usage: if errors.Is(err, ErrInvalidMinLength) { /* fix min length */ }.
var ErrInvalidMinLength = errors.New("codec: minimum length must be non-negative")

// ErrEmptyHash indicates DecodeWithError was handed an empty string.
// Usage: if errors.Is(err, ErrEmptyHash) { /* nothing to decode */ }.
var ErrEmptyHash = errors.New("codec: empty hash")

// ErrHashMismatch indicates the hash does not survive the decode→re-encode
// round trip under this configuration: wrong salt, corrupted input, or a
// symbol outside the configured alphabet. The three causes are
// indistinguishable by design.
// Usage: if errors.Is(err, ErrHashMismatch) { /* treat as "no data" */ }.
var ErrHashMismatch = errors.New("codec: hash does not match its re-encoding")

// ErrNonHexString indicates EncodeHex/DecodeHex input that is not plain
// hexadecimal ([0-9a-fA-F]+).
// Usage: if errors.Is(err, ErrNonHexString) { /* validate input */ }.
var ErrNonHexString = errors.New("codec: not a hexadecimal string")
