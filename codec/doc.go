// Package codec encodes sequences of non-negative integers into short,
// salt-shuffled hashid strings and decodes them back.
//
// 🚀 What is a hashid?
//
//	An obfuscated, reversible rendition of one or more database IDs:
//	"NkK9" instead of 12345. It hides sequential structure from the public
//	while staying fully decodable by anyone holding the same configuration.
//	It is obfuscation, not encryption — never put secrets in the numbers.
//
// ✨ Key features:
//
//   - One immutable Codec per configuration (salt, alphabet, min length);
//     safe for concurrent Encode/Decode from any number of goroutines
//   - Salt from code or from the environment (HASHID_SALT by default)
//   - Minimum-length padding with guard symbols for uniform-looking hashes
//   - Hex helpers for encoding identifiers already rendered as hex strings
//   - Decode never guesses: a wrong salt or corrupted hash yields an empty
//     result, verified by re-encoding, never someone else's numbers
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hashid/codec"
//
//	c, err := codec.New(
//	  codec.WithSalt("this is my salt"),
//	  codec.WithMinLength(8),
//	)
//	if err != nil {
//	  // handle ErrMissingSalt / ErrInvalidAlphabet / ErrInvalidMinLength
//	}
//
//	hash := c.Encode([]int64{683, 94108, 123, 5})
//	nums := c.Decode(hash) // [683 94108 123 5]
//
// Error model (two tiers):
//
//	Construction fails loudly with typed errors. Encode/Decode never fail:
//	malformed input produces an empty string or an empty slice, because the
//	algorithm cannot distinguish a wrong salt from a corrupted hash. Use
//	DecodeWithError when the caller wants the distinguishable variant.
//
// See examples in example_test.go and the runnable demos under examples/.
package codec
