package alphabet_test

import (
	"fmt"

	"github.com/katalvlaran/hashid/alphabet"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleShuffle
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Permute a sequence with a salt and observe that the permutation is
//	reproducible: this is the primitive the whole hashid scheme reuses for
//	alphabet setup, per-number reshuffling and padding.
//
// Complexity: O(len(seq)) time and space.
func ExampleShuffle() {
	out := alphabet.Shuffle([]byte("anything really goes"), []byte("this is my salt"))
	fmt.Printf("%q\n", string(out))

	again := alphabet.Shuffle([]byte("anything really goes"), []byte("this is my salt"))
	fmt.Println(string(out) == string(again))
	// Output:
	// " eagnrlityas oelygnh"
	// true
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewPartition
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Split the default alphabet under a salt and inspect the sizes of the
//	three disjoint sets. 14 of the 62 symbols are separator candidates; 4 of
//	the remaining 48 become guards.
//
// Use case:
//
//	Tooling that needs to reason about which symbols may appear where in a
//	hash (e.g. validators, fuzzers).
func ExampleNewPartition() {
	p, err := alphabet.NewPartition(alphabet.DefaultAlphabet, "this is my salt")
	if err != nil {
		fmt.Println("unexpected:", err)
		return
	}
	fmt.Println(len(p.Working()), len(p.Separators()), len(p.Guards()))
	// Output: 44 14 4
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDedupe
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Clean a user-supplied alphabet: duplicates collapse to their first
//	occurrence, and the result must still hold 16 unique symbols.
func ExampleDedupe() {
	clean, err := alphabet.Dedupe("aabbccddeeffgghhiijjkkllmmnnoopp")
	if err != nil {
		fmt.Println("unexpected:", err)
		return
	}
	fmt.Println(clean)
	// Output: abcdefghijklmnop
}
