package primint

// Pow returns base raised to the power exp, computed by exponentiation by
// squaring in O(log exp) multiplications. Overflow behaves exactly like
// Go's built-in multiplication on T (it wraps); Pow adds no overflow
// handling of its own. By convention Pow(0, 0) == 1.
func Pow[T Integer](base T, exp uint) T {
	if exp == 0 {
		return 1
	}
	// Consume trailing zero bits of exp by squaring. This computes
	// base^(2^k) where 2^k is the largest power of two dividing exp.
	for exp&1 == 0 {
		base *= base
		exp >>= 1
	}
	if exp == 1 {
		return base
	}
	acc := base
	for exp > 1 {
		exp >>= 1
		base *= base
		if exp&1 == 1 {
			acc *= base
		}
	}
	return acc
}

// CheckedPow returns base raised to the power exp, or ok=false if the
// exact result does not fit in T. It follows the same control flow as Pow
// with every multiplication checked, and returns as soon as any
// intermediate product overflows; no partial or wrapped value is ever
// returned. CheckedPow(base, 1) performs no multiplications, and
// CheckedPow(0, 0) == (1, true), matching Pow.
func CheckedPow[T Integer](base T, exp uint) (T, bool) {
	if exp == 0 {
		return 1, true
	}
	var ok bool
	for exp&1 == 0 {
		if base, ok = CheckedMul(base, base); !ok {
			return 0, false
		}
		exp >>= 1
	}
	if exp == 1 {
		return base, true
	}
	acc := base
	for exp > 1 {
		exp >>= 1
		if base, ok = CheckedMul(base, base); !ok {
			return 0, false
		}
		if exp&1 == 1 {
			if acc, ok = CheckedMul(acc, base); !ok {
				return 0, false
			}
		}
	}
	return acc, true
}

// PowWord is Pow for types that implement the Word capability set rather
// than the built-in operators. Whether squaring wraps, saturates, or
// panics on overflow is decided entirely by T's Mul.
func PowWord[T Word[T]](base T, exp uint) T {
	if exp == 0 {
		return base.One()
	}
	for exp&1 == 0 {
		base = base.Mul(base)
		exp >>= 1
	}
	if exp == 1 {
		return base
	}
	acc := base
	for exp > 1 {
		exp >>= 1
		base = base.Mul(base)
		if exp&1 == 1 {
			acc = acc.Mul(base)
		}
	}
	return acc
}

// CheckedPowWord is CheckedPow for types that implement the Word
// capability set.
func CheckedPowWord[T Word[T]](base T, exp uint) (T, bool) {
	if exp == 0 {
		return base.One(), true
	}
	var ok bool
	for exp&1 == 0 {
		if base, ok = base.CheckedMul(base); !ok {
			var zero T
			return zero, false
		}
		exp >>= 1
	}
	if exp == 1 {
		return base, true
	}
	acc := base
	for exp > 1 {
		exp >>= 1
		if base, ok = base.CheckedMul(base); !ok {
			var zero T
			return zero, false
		}
		if exp&1 == 1 {
			if acc, ok = acc.CheckedMul(base); !ok {
				var zero T
				return zero, false
			}
		}
	}
	return acc, true
}
