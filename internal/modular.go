package internal

// GCD returns the greatest common divisor of a and b (always >= 0).
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Mod returns x mod m in [0, m). Go's % truncates toward zero, so negative
// operands are shifted back into range.
func Mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// ModInverse returns the multiplicative inverse of a modulo m.
// Returns (i, true) with (i*a) mod m == 1 when gcd(a, m) == 1; otherwise (0, false).
// The modulus used by the cipher is 36, so a linear scan is enough.
func ModInverse(a, m int) (int, bool) {
	if m <= 0 || GCD(a, m) != 1 {
		return 0, false
	}
	a = Mod(a, m)
	for i := 0; i < m; i++ {
		if Mod(i*a, m) == 1%m {
			return i, true
		}
	}
	return 0, false
}
