package internal

import (
	"bytes"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

// withBufferLogger swaps L for a debug-level logger writing to the returned
// buffer and restores it when the test ends.
func withBufferLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	t.Cleanup(func() { L = prev })
	return &buf
}

func TestLoggingHelpers(t *testing.T) {
	buf := withBufferLogger(t)

	Debugf("hello %s", "dbg")
	Warnf("warn %d", 2)

	out := buf.String()
	assert.Contains(t, out, "hello dbg")
	assert.Contains(t, out, "warn 2")
}

func TestLogObserver(t *testing.T) {
	buf := withBufferLogger(t)

	e := &Engine{Observer: LogObserver{}}
	_, err := e.Encipher(Key{A: 1}, "ab")
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "stage=filtered")
	assert.Contains(t, out, "stage=formatted")
	assert.Contains(t, out, "text=AB")
}

func TestLogKeyDiagnostics(t *testing.T) {
	buf := withBufferLogger(t)
	LogKeyDiagnostics(Key{A: 1, B: 1})
	assert.Contains(t, buf.String(), "BCDEFGHIJKLMNOPQRSTUVWXYZ0123456789A")
	assert.Contains(t, buf.String(), "decipher=9ABCDEFGHIJKLMNOPQRSTUVWXYZ012345678")
}

func TestLogKeyDiagnosticsInvalidKey(t *testing.T) {
	buf := withBufferLogger(t)
	LogKeyDiagnostics(Key{A: 2})
	assert.Contains(t, buf.String(), "cipher=")
	assert.NotContains(t, buf.String(), "decipher=")
}

func TestSetVerbose(t *testing.T) {
	prev := L.GetLevel()
	defer L.SetLevel(prev)

	SetVerbose(true)
	assert.Equal(t, clog.DebugLevel, L.GetLevel())
	SetVerbose(false)
	assert.Equal(t, clog.InfoLevel, L.GetLevel())
}
