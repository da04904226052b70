// Package primint provides generic arithmetic and bit-manipulation
// operations for Go's primitive fixed-width integer types.
//
// The standard library's math/bits package only works with concrete
// unsigned types. The functions here accept any integer type parameter,
// signed or unsigned, so numeric code can be written once against a type
// parameter and still compile down to the native per-width operations.
//
// All functions are pure and safe for concurrent use.
package primint

import "golang.org/x/exp/constraints"

// Integer is the constraint satisfied by every primitive fixed-width
// integer type: int8 through int64, uint8 through uint64, int, uint,
// and uintptr, as well as any type whose underlying type is one of those.
type Integer interface {
	constraints.Integer
}

// Word is the capability set required by PowWord and CheckedPowWord.
// It lets the exponentiation algorithms run over integer types that are
// not Go primitives, such as int128.Uint128. A Word decides its own
// overflow behavior: Mul may wrap, saturate, or panic as it sees fit,
// and the power algorithms inherit that behavior unmodified.
type Word[T any] interface {
	// One returns the multiplicative identity.
	One() T
	// Mul returns the product of the receiver and x.
	Mul(x T) T
	// CheckedMul returns the product of the receiver and x, or ok=false
	// if the exact product does not fit in the type.
	CheckedMul(x T) (T, bool)
}

// Width returns the size of T in bits.
func Width[T Integer]() int {
	var n int
	for v := T(1); v != 0; v <<= 1 {
		n++
	}
	return n
}

// signed reports whether T is a signed type.
func signed[T Integer]() bool {
	return ^T(0) < 0
}

// mask64 returns a uint64 with the low w bits set.
func mask64(w int) uint64 {
	return ^uint64(0) >> (64 - uint(w))
}

// toUint64 converts v to uint64, zeroing any sign-extension bits beyond
// the width of T. No bit beyond T's width is ever observable in the
// result.
func toUint64[T Integer](v T) uint64 {
	return uint64(v) & mask64(Width[T]())
}
