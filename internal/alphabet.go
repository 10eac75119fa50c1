package internal

// Alphabet model used by the affine cipher.
//
// The symbol set is fixed: the 26 uppercase Latin letters followed by the ten
// decimal digits. Every symbol has exactly one index in [0, Modulus) and the
// two lookup tables below are exact inverses of each other.
//
//   0..25:  A B C ... Z
//   26..35: 0 1 2 ... 9
//
// Whitespace cannot pass through an alphanumeric-only cipher, so spaces are
// replaced by SpaceMarker before encipherment and restored after decipherment.

const (
	// Alphabet is the ordered symbol set.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// Modulus is the alphabet size (M).
	Modulus = len(Alphabet)
	// SpaceMarker stands in for a space inside normalized text.
	SpaceMarker = "XMEZERAX"
)

// Symbols holds the alphabet as runes, indexed by position.
var Symbols = []rune(Alphabet)

// Index maps each alphabet symbol back to its position.
var Index = func() map[rune]int {
	m := make(map[rune]int, Modulus)
	for i, r := range Symbols {
		m[r] = i
	}
	return m
}()

// SymbolAt returns the symbol at position index. The index is reduced mod
// Modulus first, so any integer is accepted.
func SymbolAt(index int) rune {
	return Symbols[Mod(index, Modulus)]
}

// IndexOf returns the position of r in the alphabet.
// Returns (index, true) for alphabet symbols; otherwise (0, false).
func IndexOf(r rune) (int, bool) {
	i, ok := Index[r]
	return i, ok
}

// InAlphabet reports whether r is one of the 36 symbols.
func InAlphabet(r rune) bool {
	_, ok := Index[r]
	return ok
}
