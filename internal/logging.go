package internal

import (
	"fmt"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. It writes to stderr so that stdout carries
// only cipher output.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "affineriot"})

// SetVerbose switches L between debug and info level.
func SetVerbose(on bool) {
	if on {
		L.SetLevel(clog.DebugLevel)
		return
	}
	L.SetLevel(clog.InfoLevel)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// LogObserver reports transform stages to L at debug level.
type LogObserver struct{}

// Observe implements Observer.
func (LogObserver) Observe(stage, text string) {
	L.Debug("transform", "stage", stage, "text", text)
}

// LogKeyDiagnostics logs the key, the modulus and both alphabets at debug level.
func LogKeyDiagnostics(key Key) {
	L.Debug("key", "a", key.A, "b", key.B, "mod", Modulus)
	L.Debug("alphabet", "plain", Alphabet)
	L.Debug("alphabet", "cipher", PreviewCipherAlphabet(key.A, key.B))
	if dec, err := PreviewDecipherAlphabet(key); err == nil {
		L.Debug("alphabet", "decipher", dec)
	}
}
