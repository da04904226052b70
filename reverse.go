package primint

import "math/bits"

// ReverseBits returns v with its bits in reverse order: bit i of the
// result is bit W-1-i of v, where W is the width of T.
func ReverseBits[T Integer](v T) T {
	w := Width[T]()
	return T(bits.Reverse64(toUint64(v)) >> (64 - uint(w)))
}

// ReverseBitsFallback computes the same result as ReverseBits using only
// byte swap, shifts, and masks derived from the width of T, with no
// per-width branching. It exists for word representations that have no
// reverse-bits primitive; ReverseBits should be preferred for Go's own
// integer types.
//
// The byte swap reverses byte order in one step. After it, each byte's
// internal bits still need reversing, and because a byte is always 8 bits
// this takes exactly three halving rounds (nibbles, bit pairs, single
// bits) no matter how wide T is.
func ReverseBitsFallback[T Integer](v T) T {
	rep01 := onePerByte[T]()
	rep03 := rep01<<1 | rep01 // low 2 bits of each byte
	rep05 := rep01<<2 | rep01 // bits 0 and 2 of each byte
	rep0f := rep03<<2 | rep03 // low nibble of each byte
	rep33 := rep03<<4 | rep03 // 0x33... pattern
	rep55 := rep05<<4 | rep05 // 0x55... pattern

	r := SwapBytes(v)
	r = ((r & rep0f) << 4) | ((r >> 4) & rep0f)
	r = ((r & rep33) << 2) | ((r >> 2) & rep33)
	r = ((r & rep55) << 1) | ((r >> 1) & rep55)
	return r
}

// onePerByte returns the value of type T with bit 0 of every byte set:
// 0x01, 0x0101, 0x01010101, and so on for wider types. The repeating
// pattern is built by doubling shifts so the derivation works for any
// width without special cases.
func onePerByte[T Integer]() T {
	v := T(1)
	shift := 8
	for b := Width[T]()/8 - 1; b != 0; b >>= 1 {
		v = v<<shift | v
		shift <<= 1
	}
	return v
}

// SwapBytes returns v with its bytes in reverse order.
func SwapBytes[T Integer](v T) T {
	w := Width[T]()
	return T(bits.ReverseBytes64(toUint64(v)) >> (64 - uint(w)))
}
