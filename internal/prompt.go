package internal

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// PromptForPassphrase reads a passphrase from the terminal twice without echo
// and verifies both entries match. Errors never echo the passphrase.
func PromptForPassphrase(out io.Writer) (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("prompt requires an interactive terminal")
	}

	read := func(prompt string) (string, error) {
		fmt.Fprint(out, "\r"+prompt)

		oldState, err := term.GetState(fd)
		if err != nil {
			return "", fmt.Errorf("terminal not ready")
		}
		restore := func() { _ = term.Restore(fd, oldState) }

		// ReadPassword leaves the terminal in no-echo mode if interrupted.
		done := make(chan struct{})
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case <-sigc:
				restore()
				os.Exit(130)
			case <-done:
			}
		}()
		defer func() { signal.Stop(sigc); close(done) }()

		b, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("failed to read passphrase")
		}
		return string(b), nil
	}

	p1, err := read(T("prompt_passphrase", nil))
	if err != nil {
		return "", err
	}
	p2, err := read(T("prompt_passphrase_again", nil))
	if err != nil {
		return "", err
	}
	if p1 != p2 {
		return "", fmt.Errorf("passphrases do not match")
	}
	return p1, nil
}
