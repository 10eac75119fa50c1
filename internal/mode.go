package internal

import (
	"fmt"
	"strings"
)

// Mode selects the transform direction.
type Mode int

const (
	ModeEncipher Mode = iota
	ModeDecipher
)

func (m Mode) String() string {
	switch m {
	case ModeEncipher:
		return "encipher"
	case ModeDecipher:
		return "decipher"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "encipher"/"encrypt"/"e" and "decipher"/"decrypt"/"d", any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encipher", "encrypt", "e":
		return ModeEncipher, nil
	case "decipher", "decrypt", "d":
		return ModeDecipher, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (supported: encipher, decipher)", s)
	}
}
