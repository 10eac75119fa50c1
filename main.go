// AffineRiot — affine cipher over the 36-symbol alphabet A-Z0-9
//
// Scheme:
// - Alphabet A..Z then 0..9, modulus M = 36
// - Key (a, b): a coprime with 36 (1 5 7 11 13 17 19 23 25 29 31 35), b any shift
//
// Encipher (text -> ciphertext):
// - Fold diacritics, upper-case, keep letters and digits
// - Replace each space with the marker XMEZERAX, drop everything else
// - Map index x to (a*x + b) mod 36
// - Print in blocks of 5 separated by spaces
//
// Decipher (ciphertext -> text):
// - Remove all whitespace
// - Map index y to a^-1 * (y - b) mod 36
// - Replace each XMEZERAX with a space
//
// Notes:
// - Keys come from -a/-b, the config file, or a passphrase (--passphrase/--prompt)
// - Text is read from the arguments, or from stdin when none are given

package main

import (
	"errors"
	"fmt"
	"os"

	"affineriot/internal"
)

var version = "dev"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error {
	return &exitError{code: exitUsage, err: err}
}

// exitCode picks the exit status for err.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if errors.Is(err, internal.ErrInvalidKey) || errors.Is(err, internal.ErrEmptyText) {
		return exitUsage
	}
	return exitFailure
}

// userMessage renders err for the terminal without leaking passphrases;
// no error built in this module includes one.
func userMessage(err error) string {
	if errors.Is(err, internal.ErrEmptyText) {
		return internal.T("error_empty_text", nil)
	}
	if errors.Is(err, internal.ErrInvalidKey) {
		return internal.T("error_generic", map[string]any{
			"Err": internal.T("error_invalid_key", map[string]any{"Mod": internal.Modulus}),
		})
	}
	return internal.T("error_generic", map[string]any{"Err": err.Error()})
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, internal.Style(userMessage(err), internal.Bold, internal.Red))
		os.Exit(exitCode(err))
	}
}
