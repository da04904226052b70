package int128

import (
	"math/big"
	"math/bits"

	"github.com/cespare/primint"
)

// Int128 represents a 128-bit signed integer in two's complement form.
type Int128 struct {
	hi int64
	lo uint64
}

// MaxInt128 returns the largest representable Int128, 2^127-1.
func MaxInt128() Int128 {
	return Int128{hi: int64(^uint64(0) >> 1), lo: ^uint64(0)}
}

// MinInt128 returns the smallest representable Int128, -2^127.
func MinInt128() Int128 {
	return Int128{hi: -1 << 63}
}

// NewInt returns the Int128 with the given high and low halves.
func NewInt(hi int64, lo uint64) Int128 {
	return Int128{hi: hi, lo: lo}
}

// FromInt64 returns the Int128 with value v.
func FromInt64(v int64) Int128 {
	return Int128{hi: v >> 63, lo: uint64(v)}
}

// FromBigInt returns the Int128 with the value of b. It returns ok=false
// if b does not fit in 128 bits.
func FromBigInt(b *big.Int) (Int128, bool) {
	neg := b.Sign() < 0
	mag := b
	if neg {
		mag = new(big.Int).Neg(b)
	}
	m, ok := FromBig(mag)
	if !ok {
		return Int128{}, false
	}
	if neg {
		// The magnitude may be as large as 2^127 (MinInt128).
		if m.Cmp(Uint128{hi: 1 << 63}) > 0 {
			return Int128{}, false
		}
		return fromMagnitude(m, true), true
	}
	if m.hi>>63 != 0 {
		return Int128{}, false
	}
	return Int128{hi: int64(m.hi), lo: m.lo}, true
}

// bitsOf returns the two's complement bit pattern of i.
func (i Int128) bitsOf() Uint128 {
	return Uint128{hi: uint64(i.hi), lo: i.lo}
}

// fromBits interprets the bit pattern of u as an Int128.
func fromBits(u Uint128) Int128 {
	return Int128{hi: int64(u.hi), lo: u.lo}
}

// magnitude returns the absolute value of i as a Uint128, along with
// whether i was negative. The magnitude of MinInt128 is 2^127, which is
// representable in a Uint128.
func (i Int128) magnitude() (Uint128, bool) {
	if i.hi < 0 {
		return i.bitsOf().Not().Add(Uint128{lo: 1}), true
	}
	return i.bitsOf(), false
}

// fromMagnitude builds the Int128 with the given magnitude and sign.
func fromMagnitude(m Uint128, neg bool) Int128 {
	if neg {
		m = m.Not().Add(Uint128{lo: 1})
	}
	return fromBits(m)
}

// Int64s returns the high and low halves of i.
func (i Int128) Int64s() (hi int64, lo uint64) {
	return i.hi, i.lo
}

// IsZero reports whether i is zero.
func (i Int128) IsZero() bool {
	return i.hi == 0 && i.lo == 0
}

// Sign returns -1, 0, or 1 depending on whether i is negative, zero, or
// positive.
func (i Int128) Sign() int {
	switch {
	case i.hi < 0:
		return -1
	case i.hi == 0 && i.lo == 0:
		return 0
	}
	return 1
}

// Cmp returns -1, 0, or 1 depending on whether i is less than, equal
// to, or greater than j.
func (i Int128) Cmp(j Int128) int {
	switch {
	case i.hi != j.hi:
		if i.hi < j.hi {
			return -1
		}
		return 1
	case i.lo != j.lo:
		if i.lo < j.lo {
			return -1
		}
		return 1
	}
	return 0
}

// Equal reports whether i == j.
func (i Int128) Equal(j Int128) bool {
	return i == j
}

// Big returns i as a big.Int.
func (i Int128) Big() *big.Int {
	m, neg := i.magnitude()
	b := m.Big()
	if neg {
		b.Neg(b)
	}
	return b
}

// String returns the decimal representation of i.
func (i Int128) String() string {
	return i.Big().String()
}

// And computes i & j.
func (i Int128) And(j Int128) Int128 {
	return Int128{hi: i.hi & j.hi, lo: i.lo & j.lo}
}

// Or computes i | j.
func (i Int128) Or(j Int128) Int128 {
	return Int128{hi: i.hi | j.hi, lo: i.lo | j.lo}
}

// Xor computes i ^ j.
func (i Int128) Xor(j Int128) Int128 {
	return Int128{hi: i.hi ^ j.hi, lo: i.lo ^ j.lo}
}

// AndNot computes i &^ j.
func (i Int128) AndNot(j Int128) Int128 {
	return Int128{hi: i.hi &^ j.hi, lo: i.lo &^ j.lo}
}

// Not computes ^i.
func (i Int128) Not() Int128 {
	return Int128{hi: ^i.hi, lo: ^i.lo}
}

// Neg computes -i, wrapping for MinInt128.
func (i Int128) Neg() Int128 {
	return fromBits(i.bitsOf().Not().Add(Uint128{lo: 1}))
}

// Lsh computes i << n. Shift counts of 128 or more yield zero.
func (i Int128) Lsh(n uint) Int128 {
	return fromBits(i.bitsOf().Lsh(n))
}

// Rsh computes i >> n as an arithmetic shift, replicating the sign bit.
// Shift counts of 128 or more yield 0 or -1 depending on the sign.
func (i Int128) Rsh(n uint) Int128 {
	switch {
	case n >= 128:
		return Int128{hi: i.hi >> 63, lo: uint64(i.hi >> 63)}
	case n >= 64:
		return Int128{hi: i.hi >> 63, lo: uint64(i.hi >> (n - 64))}
	}
	return Int128{hi: i.hi >> n, lo: i.lo>>n | uint64(i.hi)<<(64-n)}
}

// Add computes i + j, wrapping on overflow.
func (i Int128) Add(j Int128) Int128 {
	return fromBits(i.bitsOf().Add(j.bitsOf()))
}

// Sub computes i - j, wrapping on overflow.
func (i Int128) Sub(j Int128) Int128 {
	return fromBits(i.bitsOf().Sub(j.bitsOf()))
}

// Mul computes i * j, wrapping on overflow. Two's complement
// multiplication shares its bit pattern with the unsigned product.
func (i Int128) Mul(j Int128) Int128 {
	return fromBits(i.bitsOf().Mul(j.bitsOf()))
}

// CheckedAdd computes i + j, returning ok=false if the sum does not fit
// in 128 bits.
func (i Int128) CheckedAdd(j Int128) (Int128, bool) {
	c := i.Add(j)
	if (i.hi < 0) == (j.hi < 0) && (c.hi < 0) != (i.hi < 0) {
		return Int128{}, false
	}
	return c, true
}

// CheckedSub computes i - j, returning ok=false if the difference does
// not fit in 128 bits.
func (i Int128) CheckedSub(j Int128) (Int128, bool) {
	c := i.Sub(j)
	if (i.hi < 0) != (j.hi < 0) && (c.hi < 0) != (i.hi < 0) {
		return Int128{}, false
	}
	return c, true
}

// CheckedMul computes i * j, returning ok=false if the product does not
// fit in 128 bits.
func (i Int128) CheckedMul(j Int128) (Int128, bool) {
	mi, negI := i.magnitude()
	mj, negJ := j.magnitude()
	neg := negI != negJ
	p, ok := mi.CheckedMul(mj)
	if !ok {
		return Int128{}, false
	}
	// A positive result is bounded by 2^127-1, a negative one by 2^127.
	if neg {
		if p.Cmp(Uint128{hi: 1 << 63}) > 0 {
			return Int128{}, false
		}
	} else if p.hi>>63 != 0 {
		return Int128{}, false
	}
	return fromMagnitude(p, neg), true
}

// One returns the Int128 with value 1. Together with Mul and CheckedMul
// it satisfies the capability set used by primint.PowWord.
func (Int128) One() Int128 {
	return Int128{lo: 1}
}

// Pow returns i raised to the power exp, wrapping on overflow.
// Pow(0, 0) is 1.
func (i Int128) Pow(exp uint) Int128 {
	return primint.PowWord(i, exp)
}

// CheckedPow returns i raised to the power exp, or ok=false if the exact
// result does not fit in 128 bits.
func (i Int128) CheckedPow(exp uint) (Int128, bool) {
	return primint.CheckedPowWord(i, exp)
}

// OnesCount returns the number of one bits in the two's complement
// representation of i.
func (i Int128) OnesCount() int {
	return bits.OnesCount64(uint64(i.hi)) + bits.OnesCount64(i.lo)
}

// SwapBytes returns i with its bytes in reverse order.
func (i Int128) SwapBytes() Int128 {
	return fromBits(i.bitsOf().SwapBytes())
}

// ReverseBits returns i with its bits in reverse order.
func (i Int128) ReverseBits() Int128 {
	return fromBits(i.bitsOf().ReverseBits())
}
