// SPDX-License-Identifier: MIT
// Package: hashid/codec
//
// types.go — package-level defaults and the Codec value itself.

package codec

import "github.com/katalvlaran/hashid/alphabet"

const (
	// DefaultEnvKey is the environment variable consulted for the salt when
	// WithSalt is not used. Override the name with WithEnvKey.
	DefaultEnvKey = "HASHID_SALT"

	// DefaultMinLength is the default minimum hash length: no padding.
	DefaultMinLength = 0
)

// Codec is an immutable hashid encoder/decoder bound to one configuration
// (salt, alphabet, minimum length) and its derived partitions.
//
// Construction via New does all validation and the one-time alphabet
// partitioning; Encode/Decode then allocate only call-scoped state, so a
// single Codec may be shared freely between goroutines. Build one per
// configuration and keep it — reconstructing per call repeats the partition
// work for nothing.
type Codec struct {
	salt      []byte
	working   []byte
	seps      []byte
	guards    []byte
	part      *alphabet.Partition
	minLength int
}

// MinLength returns the configured minimum hash length.
func (c *Codec) MinLength() int { return c.minLength }

// Alphabet returns a copy of the salt-shuffled working alphabet the codec
// encodes digits with. Exposed for inspection and testing only.
func (c *Codec) Alphabet() []byte { return append([]byte(nil), c.working...) }

// config collects option state before validation; only New sees it.
type config struct {
	salt      string
	saltSet   bool
	alphabet  string
	minLength int
	envKey    string
}
