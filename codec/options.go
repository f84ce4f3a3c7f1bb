// SPDX-License-Identifier: MIT
// Package: hashid/codec
//
// options.go — functional options for Codec construction.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors PANIC only on meaningless programmer input
//     (empty environment key); data-driven problems (bad alphabet, missing
//     salt, negative length) surface as errors from New, never panics.
//   • No hidden globals: the environment is read exactly once, inside New,
//     and only when WithSalt was not used.

package codec

// Option customizes Codec construction by mutating the pending config
// before validation. Applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithSalt sets the secret salt explicitly, taking precedence over any
// environment fallback. The salt is used as raw bytes; any non-empty string
// works, and every byte of it matters — two salts differing in one byte
// produce unrelated hashes. An empty string is treated as "no salt" and New
// fails with ErrMissingSalt unless the environment provides one.
func WithSalt(salt string) Option {
	return func(c *config) {
		c.salt = salt
		c.saltSet = salt != ""
	}
}

// WithAlphabet replaces the default 62-symbol alphabet. The value is
// deduplicated by first occurrence and must leave at least 16 unique ASCII,
// non-whitespace symbols, or New fails with ErrInvalidAlphabet.
func WithAlphabet(alpha string) Option {
	return func(c *config) {
		c.alphabet = alpha
	}
}

// WithMinLength sets the minimum length of every produced hash. Shorter
// encodings are padded with guard and alphabet symbols. Negative values make
// New fail with ErrInvalidMinLength.
func WithMinLength(n int) Option {
	return func(c *config) {
		c.minLength = n
	}
}

// WithEnvKey renames the environment variable consulted for the salt
// fallback (DefaultEnvKey, "HASHID_SALT", by default). Panics on an empty
// name to surface programmer error early.
func WithEnvKey(name string) Option {
	if name == "" {
		// Fail fast: option constructors validate and panic on nonsense.
		panic("codec: WithEnvKey(\"\")")
	}
	return func(c *config) {
		c.envKey = name
	}
}
