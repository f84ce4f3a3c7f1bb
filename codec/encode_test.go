package codec_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/hashid/alphabet"
	"github.com/katalvlaran/hashid/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncode_ReferenceVectors pins the documented hashes of the scheme.
// These are the interoperability contract: they must match every other
// implementation configured identically.
func TestEncode_ReferenceVectors(t *testing.T) {
	c := mustCodec(t, codec.WithSalt(testSalt))

	assert.Equal(t, "NkK9", c.Encode([]int64{12345}))
	assert.Equal(t, "aBMswoO2UB3Sj", c.Encode([]int64{683, 94108, 123, 5}))
}

// TestEncode_MinLengthVector pins the guard/padding behavior: with minimum
// length 8, the single number 1 pads to exactly "gB0NV05e".
func TestEncode_MinLengthVector(t *testing.T) {
	c := mustCodec(t, codec.WithSalt(testSalt), codec.WithMinLength(8))

	assert.Equal(t, "gB0NV05e", c.Encode([]int64{1}))
}

// TestEncode_CustomAlphabetVector pins the hex-alphabet borrow path end to
// end: 1234567 over "0123456789abcdef" must yield "b332db5".
func TestEncode_CustomAlphabetVector(t *testing.T) {
	c := mustCodec(t, codec.WithSalt(testSalt), codec.WithAlphabet("0123456789abcdef"))

	assert.Equal(t, "b332db5", c.Encode([]int64{1234567}))
}

// TestEncode_EmptyAndNegative verifies boundary rejection: empty input and
// any negative number produce an empty string, silently.
func TestEncode_EmptyAndNegative(t *testing.T) {
	c := mustCodec(t, codec.WithSalt(testSalt))

	assert.Equal(t, "", c.Encode(nil))
	assert.Equal(t, "", c.Encode([]int64{}))
	assert.Equal(t, "", c.Encode([]int64{-1}))
	assert.Equal(t, "", c.Encode([]int64{683, -94108, 123, 5}))
	assert.Equal(t, "", c.EncodeOne(-7))
}

// TestEncodeOne verifies the single-ID convenience matches the slice form.
func TestEncodeOne(t *testing.T) {
	c := mustCodec(t, codec.WithSalt(testSalt))

	assert.Equal(t, "NkK9", c.EncodeOne(12345))
	assert.Equal(t, c.Encode([]int64{0}), c.EncodeOne(0), "zero is a valid identifier")
}

// TestEncode_MinLengthFloor verifies len(hash) >= minLength for a sweep of
// minimum lengths, and that padding never breaks decodability.
func TestEncode_MinLengthFloor(t *testing.T) {
	for _, minLen := range []int{0, 1, 4, 8, 16, 30, 50} {
		c := mustCodec(t, codec.WithSalt(testSalt), codec.WithMinLength(minLen))

		for _, numbers := range [][]int64{{0}, {1}, {12345}, {683, 94108, 123, 5}} {
			hash := c.Encode(numbers)
			assert.GreaterOrEqual(t, len(hash), minLen, "min %d, numbers %v", minLen, numbers)
			assert.Equal(t, numbers, c.Decode(hash), "min %d, numbers %v", minLen, numbers)
		}
	}
}

// TestEncode_NoSeparatorAdjacency verifies the curse-word rule: symbols from
// the reserved separator set never touch each other in any output, because
// they only ever appear singly between digit chunks.
func TestEncode_NoSeparatorAdjacency(t *testing.T) {
	isReserved := func(b byte) bool {
		return strings.IndexByte(alphabet.DefaultSeparators, b) >= 0
	}

	check := func(hash string) {
		t.Helper()
		for i := 1; i < len(hash); i++ {
			if isReserved(hash[i-1]) && isReserved(hash[i]) {
				t.Fatalf("adjacent reserved symbols %q in %q", hash[i-1:i+1], hash)
			}
		}
	}

	plain := mustCodec(t, codec.WithSalt(testSalt))
	padded := mustCodec(t, codec.WithSalt(testSalt), codec.WithMinLength(20))
	for n := int64(0); n < 500; n++ {
		check(plain.Encode([]int64{n}))
		check(plain.Encode([]int64{n, n + 1, n * 7}))
		check(padded.Encode([]int64{n}))
	}
}

// TestEncode_Deterministic verifies repeated calls are byte-identical: the
// codec holds no per-call state.
func TestEncode_Deterministic(t *testing.T) {
	c := mustCodec(t, codec.WithSalt(testSalt))

	first := c.Encode([]int64{42, 4242, 424242})
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Encode([]int64{42, 4242, 424242}))
	}
}

// TestEncodeHex_RoundTrip verifies hex strings of assorted lengths,
// including ones longer than a single 12-nibble group, survive the round
// trip (lowercased).
func TestEncodeHex_RoundTrip(t *testing.T) {
	c := mustCodec(t, codec.WithSalt(testSalt))

	for _, hex := range []string{
		"f",
		"deadbeef",
		"123456789abc",              // exactly one group
		"123456789abcd",             // one group + 1 nibble
		"507f1f77bcf86cd799439011",  // Mongo-style object id, 24 nibbles
		"00000000000000000000000f",  // leading zeros must survive
		"ffffffffffffffffffffffff",  // max nibbles, 2 groups
	} {
		hash, err := c.EncodeHex(hex)
		require.NoError(t, err, "hex %q", hex)
		require.NotEmpty(t, hash)

		back, err := c.DecodeHex(hash)
		require.NoError(t, err, "hex %q", hex)
		assert.Equal(t, strings.ToLower(hex), back, "hex %q", hex)
	}
}

// TestEncodeHex_UppercaseInput verifies casing is accepted on input and
// normalized on output.
func TestEncodeHex_UppercaseInput(t *testing.T) {
	c := mustCodec(t, codec.WithSalt(testSalt))

	hash, err := c.EncodeHex("DEADBEEF")
	require.NoError(t, err)
	back, err := c.DecodeHex(hash)
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", back)
}

// TestEncodeHex_Invalid verifies non-hex input is rejected with
// ErrNonHexString.
func TestEncodeHex_Invalid(t *testing.T) {
	c := mustCodec(t, codec.WithSalt(testSalt))

	for _, bad := range []string{"", "xyz", "12g4", "dead beef", "-1f"} {
		_, err := c.EncodeHex(bad)
		assert.ErrorIs(t, err, codec.ErrNonHexString, "input %q", bad)
	}
}
