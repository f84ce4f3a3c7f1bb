// SPDX-License-Identifier: MIT
// Package: hashid/alphabet
//
// errors.go — sentinel errors for the alphabet package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site;
//     implementations attach context with %w at the call site.
//   • This package never panics: every rejected input surfaces as an error.

package alphabet

import "errors"

// ErrInvalidAlphabet indicates that a raw alphabet cannot be used: it
// contains whitespace, contains a non-ASCII symbol (the scheme is
// byte-indexed), or holds fewer than MinAlphabetLength unique symbols after
// deduplication.
// Usage: if errors.Is(err, ErrInvalidAlphabet) { /* reject configuration */ }.
var ErrInvalidAlphabet = errors.New("alphabet: invalid alphabet")
