// Package alphabet validates hashid alphabets and derives the three symbol
// sets every hashid codec is built on: the working alphabet, the separators,
// and the guards.
//
// 🚀 What lives here?
//
//   - Dedupe — first-occurrence deduplication + validation of a raw alphabet
//   - Shuffle — the deterministic, salt-driven permutation primitive that the
//     whole scheme reuses (alphabet setup, lottery derivation, per-number
//     reshuffling, padding)
//   - Partition — the frozen working/separator/guard split, computed once per
//     configuration and shared read-only afterwards
//
// ✨ Key properties:
//
//   - Pure & deterministic — identical (alphabet, salt) always yields the
//     identical partition; there is no randomness, only the salt
//   - Disjoint — working alphabet, separators and guards never overlap
//   - Immutable — a Partition never changes after construction; accessors
//     hand out copies, so it is safe to share across goroutines
//   - Wire-compatible — the separator reference set ("cfhistuCFHISTU"), the
//     3.5 separator ratio and the /12 guard ratio are an external contract
//     shared with other implementations of the scheme; do not tune them
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hashid/alphabet"
//
//	p, err := alphabet.NewPartition(alphabet.DefaultAlphabet, "my salt")
//	if err != nil {
//	  // handle ErrInvalidAlphabet
//	}
//	working := p.Working() // digit symbols, already salt-shuffled
//
// Most callers never touch this package directly — codec.New does all of the
// above internally. It is exported for tooling that needs to inspect or test
// the partition itself.
package alphabet
