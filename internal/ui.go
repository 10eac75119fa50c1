package internal

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// UI helpers: terminal styling and ciphertext block formatting.
//
// Color usage
// - Enable or disable color globally via SetColorEnabled(true/false).
// - Wrap text with Style("text", Bold, Blue) to apply styles when enabled.
// - When disabled, Style returns the input unchanged.

// Default: colors enabled. Override via SetColorEnabled.
var colorEnabled = true

// Style parts, combined left to right by Style (Tokyo Night–inspired).
var (
	Bold   = lipgloss.NewStyle().Bold(true)
	Blue   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7AA2F7"))
	Cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2AC3DE"))
	Purple = lipgloss.NewStyle().Foreground(lipgloss.Color("#BB9AF7"))
	Gray   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8892B0"))
	Red    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7768E"))
	Green  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ECE6A"))
)

// SetColorEnabled toggles styling on or off.
func SetColorEnabled(on bool) {
	colorEnabled = on
}

// ColorEnabled reports whether styling is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// Style renders s with the given styles merged in order when color is enabled.
//
// Example:
//
//	Style("Hello", Bold, Blue)
func Style(s string, styles ...lipgloss.Style) string {
	if !colorEnabled || len(styles) == 0 {
		return s
	}
	st := lipgloss.NewStyle()
	for _, o := range styles {
		st = st.Inherit(o)
	}
	return st.Render(s)
}

// Banner returns the styled CLI header.
func Banner(version string) string {
	return Style("AffineRiot — affine cipher over A-Z0-9 - "+version, Bold, Purple)
}

// --- Ciphertext formatting helpers ---

// GroupCharacters splits s into blocks of n runes joined by a single space.
// The last block may be shorter; nothing is padded. n <= 0 returns s unchanged.
func GroupCharacters(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	var b strings.Builder
	b.Grow(len(r) + len(r)/n)
	for i, ch := range r {
		if i > 0 && i%n == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// StripSpaces removes all Unicode whitespace, undoing GroupCharacters along
// with any line breaks picked up while copying ciphertext around.
func StripSpaces(s string) string {
	var buf []rune
	for _, r := range s {
		if !unicode.IsSpace(r) {
			buf = append(buf, r)
		}
	}
	return string(buf)
}
