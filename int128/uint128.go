// Package int128 implements 128-bit integer types.
//
// Uint128 and Int128 are immutable value types; operations return a new
// value rather than mutating the receiver. Arithmetic wraps on overflow
// like Go's built-in integer types, and checked variants report overflow
// instead. Both types implement the capability set consumed by
// primint.PowWord and primint.CheckedPowWord, which back their Pow and
// CheckedPow methods.
package int128

import (
	"encoding/binary"
	"math/big"
	"math/bits"

	"github.com/cespare/primint"
)

// Uint128 represents a 128-bit unsigned integer.
type Uint128 struct {
	hi uint64
	lo uint64
}

// MaxUint128 returns the largest representable Uint128, 2^128-1.
func MaxUint128() Uint128 {
	return Uint128{hi: ^uint64(0), lo: ^uint64(0)}
}

// New returns the Uint128 with the given high and low halves.
func New(hi, lo uint64) Uint128 {
	return Uint128{hi: hi, lo: lo}
}

// From64 returns the Uint128 with value v.
func From64(v uint64) Uint128 {
	return Uint128{lo: v}
}

// FromBig returns the Uint128 with the value of b. It returns ok=false
// if b is negative or does not fit in 128 bits.
func FromBig(b *big.Int) (Uint128, bool) {
	if b.Sign() < 0 || b.BitLen() > 128 {
		return Uint128{}, false
	}
	var buf [16]byte
	b.FillBytes(buf[:])
	return Uint128{
		hi: binary.BigEndian.Uint64(buf[:8]),
		lo: binary.BigEndian.Uint64(buf[8:]),
	}, true
}

// Uint64s returns the high and low 64-bit halves of u.
func (u Uint128) Uint64s() (hi, lo uint64) {
	return u.hi, u.lo
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool {
	return u.hi == 0 && u.lo == 0
}

// Cmp returns -1, 0, or 1 depending on whether u is less than, equal to,
// or greater than v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.hi != v.hi:
		if u.hi < v.hi {
			return -1
		}
		return 1
	case u.lo != v.lo:
		if u.lo < v.lo {
			return -1
		}
		return 1
	}
	return 0
}

// Equal reports whether u == v. (Uint128 values are also directly
// comparable with ==.)
func (u Uint128) Equal(v Uint128) bool {
	return u == v
}

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.lo))
}

// String returns the decimal representation of u.
func (u Uint128) String() string {
	return u.Big().String()
}

// And computes u & v.
func (u Uint128) And(v Uint128) Uint128 {
	return Uint128{hi: u.hi & v.hi, lo: u.lo & v.lo}
}

// Or computes u | v.
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{hi: u.hi | v.hi, lo: u.lo | v.lo}
}

// Xor computes u ^ v.
func (u Uint128) Xor(v Uint128) Uint128 {
	return Uint128{hi: u.hi ^ v.hi, lo: u.lo ^ v.lo}
}

// AndNot computes u &^ v.
func (u Uint128) AndNot(v Uint128) Uint128 {
	return Uint128{hi: u.hi &^ v.hi, lo: u.lo &^ v.lo}
}

// Not computes ^u.
func (u Uint128) Not() Uint128 {
	return Uint128{hi: ^u.hi, lo: ^u.lo}
}

// Lsh computes u << n. Shift counts of 128 or more yield zero.
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{hi: u.lo << (n - 64)}
	}
	return Uint128{hi: u.hi<<n | u.lo>>(64-n), lo: u.lo << n}
}

// Rsh computes u >> n. Shift counts of 128 or more yield zero.
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{lo: u.hi >> (n - 64)}
	}
	return Uint128{hi: u.hi >> n, lo: u.lo>>n | u.hi<<(64-n)}
}

// RotateLeft returns u rotated left by (k mod 128) bits. To rotate
// right, pass a negative k.
func (u Uint128) RotateLeft(k int) Uint128 {
	s := uint(k) & 127
	return u.Lsh(s).Or(u.Rsh(128 - s))
}

// Add computes u + v, wrapping on overflow.
func (u Uint128) Add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, _ := bits.Add64(u.hi, v.hi, carry)
	return Uint128{hi: hi, lo: lo}
}

// Sub computes u - v, wrapping on underflow.
func (u Uint128) Sub(v Uint128) Uint128 {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, borrow)
	return Uint128{hi: hi, lo: lo}
}

// Mul computes u * v, wrapping on overflow.
func (u Uint128) Mul(v Uint128) Uint128 {
	hi, lo := bits.Mul64(u.lo, v.lo)
	hi += u.hi*v.lo + u.lo*v.hi
	return Uint128{hi: hi, lo: lo}
}

// CheckedAdd computes u + v, returning ok=false if the sum does not fit
// in 128 bits.
func (u Uint128) CheckedAdd(v Uint128) (Uint128, bool) {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, carry := bits.Add64(u.hi, v.hi, carry)
	if carry != 0 {
		return Uint128{}, false
	}
	return Uint128{hi: hi, lo: lo}, true
}

// CheckedSub computes u - v, returning ok=false on underflow.
func (u Uint128) CheckedSub(v Uint128) (Uint128, bool) {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, borrow := bits.Sub64(u.hi, v.hi, borrow)
	if borrow != 0 {
		return Uint128{}, false
	}
	return Uint128{hi: hi, lo: lo}, true
}

// CheckedMul computes u * v, returning ok=false if the product does not
// fit in 128 bits.
func (u Uint128) CheckedMul(v Uint128) (Uint128, bool) {
	if u.hi != 0 && v.hi != 0 {
		return Uint128{}, false
	}
	c1, x1 := bits.Mul64(u.hi, v.lo)
	c2, x2 := bits.Mul64(u.lo, v.hi)
	if c1 != 0 || c2 != 0 {
		return Uint128{}, false
	}
	hi, lo := bits.Mul64(u.lo, v.lo)
	hi, carry := bits.Add64(hi, x1, 0)
	if carry != 0 {
		return Uint128{}, false
	}
	hi, carry = bits.Add64(hi, x2, 0)
	if carry != 0 {
		return Uint128{}, false
	}
	return Uint128{hi: hi, lo: lo}, true
}

// One returns the Uint128 with value 1. Together with Mul and
// CheckedMul it satisfies the capability set used by primint.PowWord.
func (Uint128) One() Uint128 {
	return Uint128{lo: 1}
}

// Pow returns u raised to the power exp, wrapping on overflow.
// Pow(0, 0) is 1.
func (u Uint128) Pow(exp uint) Uint128 {
	return primint.PowWord(u, exp)
}

// CheckedPow returns u raised to the power exp, or ok=false if the exact
// result does not fit in 128 bits.
func (u Uint128) CheckedPow(exp uint) (Uint128, bool) {
	return primint.CheckedPowWord(u, exp)
}

// OnesCount returns the number of one bits in u.
func (u Uint128) OnesCount() int {
	return bits.OnesCount64(u.hi) + bits.OnesCount64(u.lo)
}

// LeadingZeros returns the number of leading zero bits in u; the result
// is 128 for u == 0.
func (u Uint128) LeadingZeros() int {
	if u.hi != 0 {
		return bits.LeadingZeros64(u.hi)
	}
	return 64 + bits.LeadingZeros64(u.lo)
}

// TrailingZeros returns the number of trailing zero bits in u; the
// result is 128 for u == 0.
func (u Uint128) TrailingZeros() int {
	if u.lo != 0 {
		return bits.TrailingZeros64(u.lo)
	}
	return 64 + bits.TrailingZeros64(u.hi)
}

// SwapBytes returns u with its bytes in reverse order.
func (u Uint128) SwapBytes() Uint128 {
	return Uint128{hi: bits.ReverseBytes64(u.lo), lo: bits.ReverseBytes64(u.hi)}
}

// ReverseBits returns u with its bits in reverse order.
func (u Uint128) ReverseBits() Uint128 {
	return Uint128{hi: bits.Reverse64(u.lo), lo: bits.Reverse64(u.hi)}
}
