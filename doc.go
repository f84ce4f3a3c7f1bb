// Package hashid turns sequences of non-negative integers into short,
// shuffled, salt-parameterized alphanumeric strings — and back.
//
// 🚀 What is hashid?
//
//	A small, deterministic codec for exposing database identifiers
//	publicly without revealing their sequential structure:
//		• Salt-driven alphabet shuffling — one secret string changes everything
//		• Positional digit mapping over a dynamic alphabet
//		• Separator & guard placement to break up patterns and pad short hashes
//		• Adjacency rule that keeps common curse words out of the output
//
// ✨ Why choose hashid?
//
//   - Deterministic — same (salt, alphabet, min length, numbers) in, same hash out
//   - Reversible — decode recovers the exact integer sequence, or nothing at all
//   - Immutable configuration — one Codec, safe for concurrent use
//   - Honest — obfuscation, not encryption; don't put secrets in the numbers
//
// Under the hood, everything is organized under two subpackages:
//
//	alphabet/ — alphabet validation, the salt-driven shuffle primitive,
//	            and the working/separator/guard partition
//	codec/    — the Codec itself: construction, Encode*/Decode* operations
//
// Quick example:
//
//	c, err := codec.New(codec.WithSalt("this is my salt"))
//	if err != nil { ... }
//	h := c.Encode([]int64{12345}) // "NkK9"
//	n := c.Decode(h)              // [12345]
//
// A wrong salt decodes to an empty slice, never to someone else's numbers.
// See cmd/hashid for the command-line front-end.
//
//	go get github.com/katalvlaran/hashid
package hashid
