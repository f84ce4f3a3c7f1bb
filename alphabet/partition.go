// SPDX-License-Identifier: MIT
// Package: hashid/alphabet
//
// partition.go — one-time derivation of the working/separator/guard split.

package alphabet

import "math"

// Partition is the frozen three-way split of a validated alphabet:
//
//   - working    — the digit symbols numbers are encoded with,
//   - separators — symbols inserted between per-number digit chunks,
//   - guards     — symbols framing short hashes up to the minimum length.
//
// The three sets are disjoint and never change after NewPartition returns,
// so a Partition is safe to share across goroutines.
type Partition struct {
	working  []byte
	seps     []byte
	guards   []byte
	sepSet   [256]bool
	guardSet [256]bool
}

// NewPartition validates alpha (see Dedupe) and derives its Partition under
// the given salt.
//
// Algorithm (wire contract — every step order and rounding below must stay
// exactly as is to remain interoperable with existing hashes):
//  1. Deduplicate and validate alpha.
//  2. separators = DefaultSeparators ∩ alphabet (in DefaultSeparators order);
//     remove them from the alphabet.
//  3. Salt-shuffle the separators.
//  4. If no separator survived, or the alphabet outnumbers the separators
//     more than sepDiv times (integer ratio, by contract), resize the
//     separator set to len(alphabet)/sepDiv (truncated; minimum 2), borrowing
//     symbols from the front of the alphabet when the set must grow.
//  5. Salt-shuffle the alphabet, then carve ceil(len(alphabet)/guardDiv)
//     guards from its front — or from the separators when fewer than 3
//     alphabet symbols remain after the borrowing in step 4.
//
// Errors:
//   - ErrInvalidAlphabet — propagated from Dedupe.
//
// An empty salt is allowed and leaves the shuffles as identities; codec-level
// construction rejects empty salts before ever reaching this point.
//
// Complexity: O(len(alpha)) time and space.
func NewPartition(alpha, salt string) (*Partition, error) {
	unique, err := Dedupe(alpha)
	if err != nil {
		return nil, err
	}

	var inRef [256]bool
	for i := 0; i < len(DefaultSeparators); i++ {
		inRef[DefaultSeparators[i]] = true
	}
	var inAlpha [256]bool
	for i := 0; i < len(unique); i++ {
		inAlpha[unique[i]] = true
	}

	seps := make([]byte, 0, len(DefaultSeparators))
	for i := 0; i < len(DefaultSeparators); i++ {
		if c := DefaultSeparators[i]; inAlpha[c] {
			seps = append(seps, c)
		}
	}
	working := make([]byte, 0, len(unique))
	for i := 0; i < len(unique); i++ {
		if c := unique[i]; !inRef[c] {
			working = append(working, c)
		}
	}

	saltBytes := []byte(salt)
	seps = Shuffle(seps, saltBytes)

	// The ratio uses integer division before the comparison — part of the
	// wire contract, not a simplification.
	if len(seps) == 0 || float64(len(working)/len(seps)) > sepDiv {
		sepsLen := int(float64(len(working)) / sepDiv)
		if sepsLen == 1 {
			sepsLen = 2
		}
		if sepsLen > len(seps) {
			diff := sepsLen - len(seps)
			seps = append(seps, working[:diff]...)
			working = working[diff:]
		} else {
			seps = seps[:sepsLen]
		}
	}

	working = Shuffle(working, saltBytes)

	// Guard arithmetic uses the post-borrow alphabet length.
	guardCount := int(math.Ceil(float64(len(working)) / guardDiv))
	var guards []byte
	if len(working) < 3 {
		guards = seps[:guardCount]
		seps = seps[guardCount:]
	} else {
		guards = working[:guardCount]
		working = working[guardCount:]
	}

	p := &Partition{working: working, seps: seps, guards: guards}
	for _, c := range seps {
		p.sepSet[c] = true
	}
	for _, c := range guards {
		p.guardSet[c] = true
	}

	return p, nil
}

// Working returns a copy of the salt-shuffled working alphabet.
func (p *Partition) Working() []byte { return append([]byte(nil), p.working...) }

// Separators returns a copy of the separator set.
func (p *Partition) Separators() []byte { return append([]byte(nil), p.seps...) }

// Guards returns a copy of the guard set.
func (p *Partition) Guards() []byte { return append([]byte(nil), p.guards...) }

// IsSeparator reports whether b belongs to the separator set. O(1).
func (p *Partition) IsSeparator(b byte) bool { return p.sepSet[b] }

// IsGuard reports whether b belongs to the guard set. O(1).
func (p *Partition) IsGuard(b byte) bool { return p.guardSet[b] }
