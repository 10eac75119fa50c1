package internal

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
)

// plainSymbols is what random self-test text is drawn from.
const plainSymbols = Alphabet + " "

// RandomText returns n runes drawn from the alphabet plus space.
func RandomText(r *rand.Rand, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(plainSymbols[r.Intn(len(plainSymbols))])
	}
	return b.String()
}

// RunSelfTest enciphers and deciphers `rounds` random texts for every valid a
// (with a random b each time), prints one result line per a to w, and returns
// the number of keys that failed.
//
// Parameters:
// - w:      destination for the report
// - r:      random source (seeded by the caller for reproducible runs)
// - rounds: texts per key; values < 1 are treated as 1
func RunSelfTest(w io.Writer, r *rand.Rand, rounds int) int {
	if rounds < 1 {
		rounds = 1
	}
	fmt.Fprintln(w, Style(T("selftest_title", nil), Bold, Blue))

	keys := ValidKeysA()
	failed := 0
	for _, a := range keys {
		ok := true
		var sample, sampleCipher string
		for i := 0; i < rounds; i++ {
			key := Key{A: a, B: r.Intn(Modulus)}
			text := RandomText(r, 1+r.Intn(40))

			if err := VerifyRoundTrip(key, text); err != nil {
				Debugf("self-test a=%d b=%d: %v", key.A, key.B, err)
				ok = false
				break
			}
			if i == 0 {
				sample = text
				sampleCipher, _ = Encipher(key.A, key.B, text)
			}
		}

		result := Style(T("selftest_passed", nil), Bold, Green)
		if !ok {
			result = Style(T("selftest_failed", nil), Bold, Red)
			failed++
		}
		fmt.Fprintf(w, "  a=%-2d %s\n", a, result)
		if ok {
			fmt.Fprintf(w, "       %s -> %s\n", Style(fmt.Sprintf("%q", sample), Gray), Style(sampleCipher, Cyan))
		}
	}

	fmt.Fprintln(w, Style(T("selftest_summary", map[string]any{"Total": len(keys), "Failed": failed}), Bold))
	return failed
}
