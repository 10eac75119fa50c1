package internal

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// decompose strips diacritics: "é" -> "e", "ﬁ" -> "fi", "²" -> "2".
func decompose() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Normalize converts raw input into the symbol sequence the cipher works on:
// diacritics removed, other scripts transliterated to their closest ASCII
// spelling ("Привет" -> "PRIVET"), upper-cased, letters and digits kept,
// spaces replaced by SpaceMarker and everything else dropped. Any input is
// valid; the result may be empty.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	plain, _, err := transform.String(decompose(), raw)
	if err != nil {
		plain = raw
	}

	var b strings.Builder
	b.Grow(len(plain))
	for _, r := range plain {
		switch {
		case r < 0x80:
			appendASCII(&b, r)
		case unicode.Is(unicode.Zs, r):
			b.WriteString(SpaceMarker)
		default:
			// Runes with no ASCII spelling come back empty.
			for _, c := range unidecode.Unidecode(string(r)) {
				appendASCII(&b, c)
			}
		}
	}
	return b.String()
}

func appendASCII(b *strings.Builder, r rune) {
	switch {
	case r >= 'a' && r <= 'z':
		b.WriteRune(r - 'a' + 'A')
	case InAlphabet(r):
		b.WriteRune(r)
	case r == ' ':
		b.WriteString(SpaceMarker)
	}
}

// Denormalize turns normalized text back into readable plaintext by replacing
// every SpaceMarker with a single space.
func Denormalize(normalized string) string {
	return strings.ReplaceAll(normalized, SpaceMarker, " ")
}
