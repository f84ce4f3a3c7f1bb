// SPDX-License-Identifier: MIT
// Package: hashid/alphabet
//
// shuffle.go — the salt-driven consistent shuffle, the scheme's one
// reusable primitive.

package alphabet

// Shuffle returns a salt-driven permutation of seq. Neither argument is
// mutated; the result is a fresh slice.
//
// Description:
//
//	The permutation walks seq from its last index down to 1. At each step it
//	takes the next salt byte (cycling through the salt), folds it into a
//	running accumulator, and swaps the current position with an index inside
//	the not-yet-fixed prefix. The same (seq, salt) pair always produces the
//	same output, and changing a single salt byte reorders essentially
//	everything after it — which is the entire obfuscation mechanism.
//
//	An empty salt yields seq unchanged (as a copy). The codec never calls it
//	that way — construction rejects empty salts — but the primitive itself
//	stays total.
//
// Callers may pass the same slice as both seq and salt (the padding step
// shuffles the alphabet with itself); the salt bytes read are the ones from
// before the permutation, because seq is copied first.
//
// Complexity: O(len(seq)) time, O(len(seq)) space.
func Shuffle(seq, salt []byte) []byte {
	out := append([]byte(nil), seq...)
	if len(salt) == 0 {
		return out
	}

	for i, v, p := len(out)-1, 0, 0; i > 0; i, v = i-1, v+1 {
		v %= len(salt)
		t := int(salt[v])
		p += t
		j := (t + v + p) % i
		out[i], out[j] = out[j], out[i]
	}

	return out
}
