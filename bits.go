package primint

import (
	"encoding/binary"
	"math/bits"
)

// OnesCount returns the number of one bits in v.
func OnesCount[T Integer](v T) int {
	return bits.OnesCount64(toUint64(v))
}

// ZerosCount returns the number of zero bits in v.
func ZerosCount[T Integer](v T) int {
	return Width[T]() - OnesCount(v)
}

// LeadingZeros returns the number of leading zero bits in v; the result
// is the width of T for v == 0.
func LeadingZeros[T Integer](v T) int {
	w := Width[T]()
	return bits.LeadingZeros64(toUint64(v)) - (64 - w)
}

// TrailingZeros returns the number of trailing zero bits in v; the
// result is the width of T for v == 0.
func TrailingZeros[T Integer](v T) int {
	u := toUint64(v)
	if u == 0 {
		return Width[T]()
	}
	return bits.TrailingZeros64(u)
}

// RotateLeft returns v rotated left by (k mod W) bits, where W is the
// width of T. To rotate right by k bits, call RotateLeft(v, -k).
func RotateLeft[T Integer](v T, k int) T {
	w := Width[T]()
	s := uint(k) & uint(w-1)
	u := toUint64(v)
	return T((u<<s | u>>(uint(w)-s)) & mask64(w))
}

// RotateRight returns v rotated right by (k mod W) bits.
func RotateRight[T Integer](v T, k int) T {
	return RotateLeft(v, -k)
}

// UnsignedShiftRight returns v shifted right by k bits, shifting in
// zeros regardless of whether T is signed.
func UnsignedShiftRight[T Integer](v T, k uint) T {
	w := Width[T]()
	if k >= uint(w) {
		return 0
	}
	return T(toUint64(v) >> k)
}

// SignedShiftRight returns v shifted right by k bits, replicating the
// top bit regardless of whether T is signed. Shift counts of W or more
// behave like W-1, filling the value with copies of the top bit.
func SignedShiftRight[T Integer](v T, k uint) T {
	w := uint(Width[T]())
	if k >= w {
		k = w - 1
	}
	s := int64(toUint64(v)<<(64-w)) >> (64 - w + k)
	return T(uint64(s) & mask64(int(w)))
}

// hostLittleEndian reports whether the host is little-endian. The probe
// runs once at package init.
var hostLittleEndian = binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001

// ToBigEndian returns v with its bytes in big-endian order: on a
// big-endian host it returns v unchanged, otherwise it swaps bytes.
func ToBigEndian[T Integer](v T) T {
	if hostLittleEndian {
		return SwapBytes(v)
	}
	return v
}

// ToLittleEndian returns v with its bytes in little-endian order.
func ToLittleEndian[T Integer](v T) T {
	if hostLittleEndian {
		return v
	}
	return SwapBytes(v)
}

// FromBigEndian converts v, whose bytes are in big-endian order, to the
// host's byte order.
func FromBigEndian[T Integer](v T) T {
	return ToBigEndian(v)
}

// FromLittleEndian converts v, whose bytes are in little-endian order,
// to the host's byte order.
func FromLittleEndian[T Integer](v T) T {
	return ToLittleEndian(v)
}
