package primint

import (
	"math/big"
	"math/rand/v2"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestPow(t *testing.T) {
	c := qt.New(t)

	c.Assert(Pow(uint8(2), 4), qt.Equals, uint8(16))
	c.Assert(Pow(uint8(3), 5), qt.Equals, uint8(243))
	c.Assert(Pow(uint8(2), 8), qt.Equals, uint8(0))   // wraps
	c.Assert(Pow(int8(3), 6), qt.Equals, int8(-39))   // 729 mod 256
	c.Assert(Pow(int8(-2), 3), qt.Equals, int8(-8))
	c.Assert(Pow(int8(-2), 4), qt.Equals, int8(16))
	c.Assert(Pow(uint32(7), 11), qt.Equals, uint32(1977326743))
	c.Assert(Pow(int64(-3), 13), qt.Equals, int64(-1594323))
	c.Assert(Pow(uint64(1), 1<<30), qt.Equals, uint64(1))

	// 0^0 == 1 by convention, for every type.
	c.Assert(Pow(uint8(0), 0), qt.Equals, uint8(1))
	c.Assert(Pow(int8(0), 0), qt.Equals, int8(1))
	c.Assert(Pow(uint64(0), 0), qt.Equals, uint64(1))
	c.Assert(Pow(int(0), 0), qt.Equals, 1)
}

func TestCheckedPow(t *testing.T) {
	c := qt.New(t)

	v, ok := CheckedPow(uint8(7), 8)
	c.Assert(ok, qt.IsFalse)
	c.Assert(v, qt.Equals, uint8(0))

	u, ok := CheckedPow(uint32(0), 0)
	c.Assert(ok, qt.IsTrue)
	c.Assert(u, qt.Equals, uint32(1))

	// Exponent 1 is a pass-through and must not report overflow even
	// for values whose square would not fit.
	b, ok := CheckedPow(uint8(255), 1)
	c.Assert(ok, qt.IsTrue)
	c.Assert(b, qt.Equals, uint8(255))
	m, ok := CheckedPow(int8(-128), 1)
	c.Assert(ok, qt.IsTrue)
	c.Assert(m, qt.Equals, int8(-128))

	w, ok := CheckedPow(uint64(2), 63)
	c.Assert(ok, qt.IsTrue)
	c.Assert(w, qt.Equals, uint64(1)<<63)
	_, ok = CheckedPow(uint64(2), 64)
	c.Assert(ok, qt.IsFalse)
	_, ok = CheckedPow(int64(-2), 63) // exactly MinInt64
	c.Assert(ok, qt.IsTrue)
	_, ok = CheckedPow(int64(2), 63)
	c.Assert(ok, qt.IsFalse)
}

func TestPowExhaustive8(t *testing.T) {
	t.Run("uint8", func(t *testing.T) { testPowExhaustive8[uint8](t) })
	t.Run("int8", func(t *testing.T) { testPowExhaustive8[int8](t) })
}

// testPowExhaustive8 checks Pow and CheckedPow against math/big for
// every 8-bit base and all exponents up to 12.
func testPowExhaustive8[T Integer](t *testing.T) {
	c := qt.New(t)
	for b := 0; b < 256; b++ {
		base := T(b)
		for exp := uint(0); exp <= 12; exp++ {
			exact := bigPow(toBig(base), exp)
			want := wrapBig[T](exact)
			c.Assert(Pow(base, exp), qt.Equals, want,
				qt.Commentf("base=%d exp=%d", base, exp))

			got, ok := CheckedPow(base, exp)
			c.Assert(ok, qt.Equals, fitsIn[T](exact),
				qt.Commentf("base=%d exp=%d exact=%s", base, exp, exact))
			if ok {
				c.Assert(got, qt.Equals, want)
			}
		}
	}
}

func TestPowRandom(t *testing.T) {
	t.Run("uint16", func(t *testing.T) { testPowRandom[uint16](t) })
	t.Run("int16", func(t *testing.T) { testPowRandom[int16](t) })
	t.Run("uint32", func(t *testing.T) { testPowRandom[uint32](t) })
	t.Run("int32", func(t *testing.T) { testPowRandom[int32](t) })
	t.Run("uint64", func(t *testing.T) { testPowRandom[uint64](t) })
	t.Run("int64", func(t *testing.T) { testPowRandom[int64](t) })
	t.Run("uint", func(t *testing.T) { testPowRandom[uint](t) })
	t.Run("int", func(t *testing.T) { testPowRandom[int](t) })
	t.Run("uintptr", func(t *testing.T) { testPowRandom[uintptr](t) })
}

func testPowRandom[T Integer](t *testing.T) {
	c := qt.New(t)
	rng := rand.New(rand.NewPCG(0, uint64(Width[T]())))
	for n := 0; n < 2000; n++ {
		base := T(rng.Uint64())
		exp := uint(rng.Uint64() % 40)

		exact := bigPow(toBig(base), exp)
		want := wrapBig[T](exact)
		c.Assert(Pow(base, exp), qt.Equals, want,
			qt.Commentf("base=%d exp=%d", base, exp))

		got, ok := CheckedPow(base, exp)
		c.Assert(ok, qt.Equals, fitsIn[T](exact),
			qt.Commentf("base=%d exp=%d", base, exp))
		if ok {
			c.Assert(got, qt.Equals, want)
		}

		// Wrapping arithmetic is a ring homomorphism, so the recurrence
		// and product laws hold even across overflow.
		if exp >= 1 {
			c.Assert(Pow(base, exp), qt.Equals, base*Pow(base, exp-1))
		}
		e2 := uint(rng.Uint64() % 40)
		c.Assert(Pow(base, exp+e2), qt.Equals, Pow(base, exp)*Pow(base, e2))
	}
}

// countingWord wraps a uint8 in the Word capability set and counts
// multiplications, to pin down how many multiplies the power algorithms
// perform.
type countingWord struct {
	v    uint8
	muls *int
}

func (w countingWord) One() countingWord {
	return countingWord{v: 1, muls: w.muls}
}

func (w countingWord) Mul(x countingWord) countingWord {
	(*w.muls)++
	return countingWord{v: w.v * x.v, muls: w.muls}
}

func (w countingWord) CheckedMul(x countingWord) (countingWord, bool) {
	(*w.muls)++
	v, ok := CheckedMul(w.v, x.v)
	return countingWord{v: v, muls: w.muls}, ok
}

func TestPowWord(t *testing.T) {
	c := qt.New(t)

	var muls int
	w := countingWord{v: 3, muls: &muls}

	got := PowWord(w, 5)
	c.Assert(got.v, qt.Equals, uint8(243))

	// Exponent 1 performs no multiplications at all.
	muls = 0
	got, ok := CheckedPowWord(w, 1)
	c.Assert(ok, qt.IsTrue)
	c.Assert(got.v, qt.Equals, uint8(3))
	c.Assert(muls, qt.Equals, 0)

	// Overflow short-circuits at the earliest multiply: 16^2 does not
	// fit in a byte, so exactly one multiplication happens.
	muls = 0
	_, ok = CheckedPowWord(countingWord{v: 16, muls: &muls}, 4)
	c.Assert(ok, qt.IsFalse)
	c.Assert(muls, qt.Equals, 1)

	// 0^0 == 1 without any multiplications.
	muls = 0
	got = PowWord(countingWord{v: 0, muls: &muls}, 0)
	c.Assert(got.v, qt.Equals, uint8(1))
	c.Assert(muls, qt.Equals, 0)
}

func bigPow(base *big.Int, exp uint) *big.Int {
	return new(big.Int).Exp(base, new(big.Int).SetUint64(uint64(exp)), nil)
}

// toBig returns v's exact mathematical value.
func toBig[T Integer](v T) *big.Int {
	if signed[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(toUint64(v))
}

// wrapBig reduces b to T the way Go's wrapping conversions would.
func wrapBig[T Integer](b *big.Int) T {
	w := Width[T]()
	mod := new(big.Int).Lsh(big.NewInt(1), uint(w))
	r := new(big.Int).Mod(b, mod) // non-negative
	return T(r.Uint64())
}

// fitsIn reports whether b's exact value is representable in T.
func fitsIn[T Integer](b *big.Int) bool {
	w := uint(Width[T]())
	if signed[T]() {
		min := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), w-1))
		max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), w-1), big.NewInt(1))
		return b.Cmp(min) >= 0 && b.Cmp(max) <= 0
	}
	return b.Sign() >= 0 && b.BitLen() <= int(w)
}

func BenchmarkPow(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkUint64 = Pow(uint64(3), 40)
	}
}

func BenchmarkCheckedPow(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkUint64, _ = CheckedPow(uint64(3), 40)
	}
}

var sinkUint64 uint64
