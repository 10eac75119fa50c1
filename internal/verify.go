package internal

import (
	"fmt"
)

// ExpectedPlaintext is what Decipher must return for text enciphered from
// plain: the normalized symbols with every SpaceMarker turned back into a space.
func ExpectedPlaintext(plain string) string {
	return Denormalize(Normalize(plain))
}

// EncipherVerified enciphers plain and then immediately deciphers the result
// with the same key, comparing against ExpectedPlaintext(plain).
// If verification fails for any reason, an error is returned and no ciphertext
// is produced.
//
// Parameters:
//   - key:   the affine key
//   - plain: raw input text
//
// Returns:
//   - grouped ciphertext
//   - error: non-nil if the key is invalid or the round trip does not match
func (e *Engine) EncipherVerified(key Key, plain string) (string, error) {
	cipher, err := e.Encipher(key, plain)
	if err != nil {
		return "", err
	}

	// Verification runs without the observer so stages are reported once.
	check := &Engine{Group: e.Group}
	decoded, err := check.Decipher(key, cipher)
	if err != nil {
		return "", fmt.Errorf("decipher failed: %w", err)
	}
	want := ExpectedPlaintext(plain)
	if decoded != want {
		return "", fmt.Errorf("round-trip mismatch: have %q, want %q", decoded, want)
	}
	return cipher, nil
}

// VerifyRoundTrip checks that plain survives Encipher followed by Decipher
// under key. It returns nil on success or a detailed error on any failure.
func VerifyRoundTrip(key Key, plain string) error {
	_, err := defaultEngine.EncipherVerified(key, plain)
	return err
}
