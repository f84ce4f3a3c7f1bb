// SPDX-License-Identifier: MIT
// Package: hashid/codec
//
// codec.go — Codec construction and validation.

package codec

import (
	"os"

	"github.com/katalvlaran/hashid/alphabet"
)

// New builds an immutable Codec from the given options.
//
// Resolution order for the salt: WithSalt if set and non-empty, otherwise
// the environment variable named by WithEnvKey ("HASHID_SALT" by default).
// The alphabet defaults to alphabet.DefaultAlphabet and the minimum length
// to DefaultMinLength (0).
//
// Errors:
//   - ErrMissingSalt      — no salt from either source.
//   - ErrInvalidAlphabet  — unusable alphabet (see alphabet.Dedupe).
//   - ErrInvalidMinLength — negative minimum length.
//
// These are the only failure points of the package: once New succeeds,
// Encode and Decode never return errors.
//
// Complexity: O(len(alphabet) + len(salt)) time, O(len(alphabet)) space.
func New(opts ...Option) (*Codec, error) {
	cfg := config{
		alphabet:  alphabet.DefaultAlphabet,
		minLength: DefaultMinLength,
		envKey:    DefaultEnvKey,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.minLength < 0 {
		return nil, ErrInvalidMinLength
	}

	if !cfg.saltSet {
		cfg.salt = os.Getenv(cfg.envKey)
	}
	if cfg.salt == "" {
		return nil, ErrMissingSalt
	}

	part, err := alphabet.NewPartition(cfg.alphabet, cfg.salt)
	if err != nil {
		return nil, err
	}

	return &Codec{
		salt:      []byte(cfg.salt),
		working:   part.Working(),
		seps:      part.Separators(),
		guards:    part.Guards(),
		part:      part,
		minLength: cfg.minLength,
	}, nil
}
