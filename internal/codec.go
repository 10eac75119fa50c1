package internal

import (
	"errors"
	"fmt"
	"strings"
)

// GroupSize is the number of ciphertext symbols per space-separated block.
const GroupSize = 5

// ErrEmptyText is returned by drivers that refuse zero-length input. The
// engine itself treats empty text as a valid no-op.
var ErrEmptyText = errors.New("text is empty")

// ErrInvalidSymbol is returned by Decipher when the ciphertext contains a
// character outside the alphabet.
var ErrInvalidSymbol = errors.New("invalid ciphertext symbol")

// Observer receives intermediate text at each stage of a transform.
// Stages: "filtered", "raw", "formatted" (encipher); "input", "deciphered" (decipher).
type Observer interface {
	Observe(stage, text string)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(stage, text string)

// Observe calls f(stage, text).
func (f ObserverFunc) Observe(stage, text string) { f(stage, text) }

// Engine runs the affine transform. The zero value groups ciphertext in
// blocks of GroupSize and reports to nobody.
type Engine struct {
	// Group is the ciphertext block size; <= 0 means GroupSize.
	Group int
	// Observer, if set, sees intermediate results. It never changes them.
	Observer Observer
}

var defaultEngine = &Engine{}

// Encipher enciphers plain with key (a, b) using the default engine.
func Encipher(a, b int, plain string) (string, error) {
	return defaultEngine.Encipher(Key{A: a, B: b}, plain)
}

// Decipher deciphers cipher with key (a, b) using the default engine.
func Decipher(a, b int, cipher string) (string, error) {
	return defaultEngine.Decipher(Key{A: a, B: b}, cipher)
}

// Encipher normalizes plain, maps every symbol x to (A*x + B) mod Modulus and
// groups the result. An invalid key is reported before any work is done.
//
// Returns:
//   - grouped ciphertext (empty when nothing survives normalization)
//   - error wrapping ErrInvalidKey if A is not invertible
func (e *Engine) Encipher(key Key, plain string) (string, error) {
	if err := key.Validate(); err != nil {
		return "", err
	}

	filtered := Normalize(plain)
	e.observe("filtered", filtered)

	out := make([]rune, 0, len(filtered))
	for _, r := range filtered {
		x, _ := IndexOf(r) // Normalize only emits alphabet symbols
		out = append(out, SymbolAt(x*key.A+key.B))
	}
	raw := string(out)
	e.observe("raw", raw)

	formatted := GroupCharacters(raw, e.groupSize())
	e.observe("formatted", formatted)
	return formatted, nil
}

// Decipher strips all whitespace from cipher, maps every symbol y to
// inv(A) * (y - B) mod Modulus and finally turns each SpaceMarker into a space.
//
// Returns:
//   - the recovered plaintext
//   - error wrapping ErrInvalidKey if A is not invertible, or ErrInvalidSymbol
//     if cipher contains anything other than alphabet symbols and whitespace
func (e *Engine) Decipher(key Key, cipher string) (string, error) {
	inv, err := key.Inverse()
	if err != nil {
		return "", err
	}

	input := strings.ToUpper(StripSpaces(cipher))
	e.observe("input", input)

	out := make([]rune, 0, len(input))
	for i, r := range []rune(input) {
		y, ok := IndexOf(r)
		if !ok {
			return "", fmt.Errorf("%w %q at position %d", ErrInvalidSymbol, r, i)
		}
		out = append(out, SymbolAt(inv*(y-key.B)))
	}

	plain := Denormalize(string(out))
	e.observe("deciphered", plain)
	return plain, nil
}

// Transform dispatches to Encipher or Decipher.
func (e *Engine) Transform(mode Mode, key Key, text string) (string, error) {
	switch mode {
	case ModeEncipher:
		return e.Encipher(key, text)
	case ModeDecipher:
		return e.Decipher(key, text)
	default:
		return "", fmt.Errorf("unknown mode %d", mode)
	}
}

// PreviewCipherAlphabet returns the alphabet with every symbol enciphered
// under (a, b). It is a display aid and does not validate a.
func PreviewCipherAlphabet(a, b int) string {
	return string(ApplyTable(CipherTable(Key{A: a, B: b}), Symbols))
}

// PreviewDecipherAlphabet returns, for every cipher symbol in alphabet order,
// the plain symbol it deciphers to under key. Unlike PreviewCipherAlphabet it
// needs the table to be a permutation, so the key is validated.
func PreviewDecipherAlphabet(key Key) (string, error) {
	if err := key.Validate(); err != nil {
		return "", err
	}
	return string(ApplyTable(Inv(CipherTable(key)), Symbols)), nil
}

func (e *Engine) groupSize() int {
	if e.Group <= 0 {
		return GroupSize
	}
	return e.Group
}

func (e *Engine) observe(stage, text string) {
	if e.Observer != nil {
		e.Observer.Observe(stage, text)
	}
}
