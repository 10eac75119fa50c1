package internal

// CipherTable returns the substitution induced by key: p[x] = (A*x + B) mod Modulus.
// For a valid key p is a permutation of [0..Modulus-1]; for an invalid one
// several positions collide.
func CipherTable(key Key) []int {
	p := make([]int, Modulus)
	for x := 0; x < Modulus; x++ {
		p[x] = Mod(x*key.A+key.B, Modulus)
	}
	return p
}

// Inv computes the inverse mapping of a permutation p where p[i] is the value
// at position i. The returned slice inv has inv[p[i]] = i for all i.
func Inv(p []int) []int {
	inv := make([]int, len(p))
	for i, v := range p {
		inv[v] = i
	}
	return inv
}

// ApplyTable substitutes every alphabet symbol in in through table p.
// Runes outside the alphabet are copied unchanged.
func ApplyTable(p []int, in []rune) []rune {
	out := make([]rune, len(in))
	for i, r := range in {
		x, ok := IndexOf(r)
		if !ok {
			out[i] = r
			continue
		}
		out[i] = Symbols[p[x]]
	}
	return out
}
