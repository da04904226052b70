package primint

// CheckedAdd returns a+b, or ok=false if the exact sum does not fit in T.
func CheckedAdd[T Integer](a, b T) (T, bool) {
	c := a + b
	// For unsigned T, b >= 0 always holds and the condition reduces to
	// the usual wraparound check c < a.
	if (b >= 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

// CheckedSub returns a-b, or ok=false if the exact difference does not
// fit in T.
func CheckedSub[T Integer](a, b T) (T, bool) {
	c := a - b
	if (b >= 0 && c > a) || (b < 0 && c < a) {
		return 0, false
	}
	return c, true
}

// CheckedMul returns a*b, or ok=false if the exact product does not fit
// in T.
func CheckedMul[T Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if signed[T]() {
		// MinInt * -1 wraps back to MinInt, which the division test
		// below cannot distinguish from a correct product.
		min := T(1) << (Width[T]() - 1)
		if (a == min && b == ^T(0)) || (b == min && a == ^T(0)) {
			return 0, false
		}
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}
