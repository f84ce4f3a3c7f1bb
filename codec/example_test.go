package codec_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hashid/codec"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCodec_Encode
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Expose a database primary key publicly. The salt makes the mapping
//	unique to this application; anyone without it cannot enumerate IDs.
//
// Use case:
//
//	Share URLs like /orders/NkK9 instead of /orders/12345.
func ExampleCodec_Encode() {
	c, err := codec.New(codec.WithSalt("this is my salt"))
	if err != nil {
		fmt.Println("unexpected:", err)
		return
	}
	fmt.Println(c.Encode([]int64{12345}))
	// Output: NkK9
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCodec_Decode
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Decode a hash received from a URL back to the original numbers, and
//	observe that a foreign salt recovers nothing at all.
func ExampleCodec_Decode() {
	mine, _ := codec.New(codec.WithSalt("this is my salt"))
	theirs, _ := codec.New(codec.WithSalt("not the same salt"))

	fmt.Println(mine.Decode("NkK9"))
	fmt.Println(len(theirs.Decode("NkK9")))
	// Output:
	// [12345]
	// 0
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleWithMinLength
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Pad every hash to a uniform minimum length so short IDs don't stand
//	out. Padding is reversible: decoding strips it transparently.
func ExampleWithMinLength() {
	c, _ := codec.New(
		codec.WithSalt("this is my salt"),
		codec.WithMinLength(8),
	)
	hash := c.Encode([]int64{1})
	fmt.Println(hash, "->", c.Decode(hash))
	// Output: gB0NV05e -> [1]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCodec_DecodeWithError
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Decode, but distinguish "nothing to decode" from "does not belong to
//	this configuration" instead of treating every miss as an empty slice.
func ExampleCodec_DecodeWithError() {
	c, _ := codec.New(codec.WithSalt("this is my salt"))

	_, err := c.DecodeWithError("!!!")
	fmt.Println(errors.Is(err, codec.ErrHashMismatch))
	// Output: true
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCodec_EncodeHex
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Obfuscate an identifier that already lives as a hex string (Mongo
//	object IDs, UUID fragments) without converting it to integers first.
func ExampleCodec_EncodeHex() {
	c, _ := codec.New(codec.WithSalt("this is my salt"))

	hash, _ := c.EncodeHex("507f1f77bcf86cd799439011")
	back, _ := c.DecodeHex(hash)
	fmt.Println(back)
	// Output: 507f1f77bcf86cd799439011
}
