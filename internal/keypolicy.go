package internal

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrEmptyPassphrase is returned when a passphrase-derived key is requested
// with nothing to derive it from.
var ErrEmptyPassphrase = errors.New("passphrase is empty")

// KeyPolicy defines how a passphrase is turned into key material.
//   - KDF "argon2id" (default) runs Argon2id with the configured cost.
//   - KDF "none" hashes the passphrase with SHA-256 only.
type KeyPolicy struct {
	KDF         string `mapstructure:"name" yaml:"name"`         // "argon2id" or "none"
	KDFMemMB    uint32 `mapstructure:"mem_mb" yaml:"mem_mb"`     // memory in MB
	KDFTime     uint32 `mapstructure:"time" yaml:"time"`         // iterations
	KDFParallel uint8  `mapstructure:"parallel" yaml:"parallel"` // parallelism
}

// DefaultKeyPolicy returns the policy used when nothing is configured.
// The key space is only 12*36 keys, so the cost is kept modest.
func DefaultKeyPolicy() KeyPolicy {
	return KeyPolicy{
		KDF:         "argon2id",
		KDFMemMB:    64,
		KDFTime:     3,
		KDFParallel: 1,
	}
}

// EffectiveKeyMaterial derives a 32-byte seed from the passphrase using the policy.
func EffectiveKeyMaterial(pass string, policy KeyPolicy) ([32]byte, error) {
	var seed32 [32]byte

	switch strings.ToLower(strings.TrimSpace(policy.KDF)) {
	case "", "argon2id":
		salt := []byte("AffineRiot/v1/argon2id/domain-sep")
		mem := policy.KDFMemMB
		if mem == 0 {
			mem = 64
		}
		time := policy.KDFTime
		if time == 0 {
			time = 3
		}
		par := policy.KDFParallel
		if par == 0 {
			par = 1
		}

		derived := argon2.IDKey([]byte(pass), salt, time, mem*1024, par, 32)
		seed32 = sha256.Sum256(derived)
		return seed32, nil

	case "none":
		seed32 = sha256.Sum256([]byte(pass))
		return seed32, nil

	default:
		return seed32, fmt.Errorf("unknown KDF %q (supported: argon2id, none)", policy.KDF)
	}
}

// KeyFromPassphrase maps a passphrase onto one of the ValidKeysA()*Modulus keys.
// The same passphrase and policy always give the same key.
func KeyFromPassphrase(pass string, policy KeyPolicy) (Key, error) {
	if strings.TrimSpace(pass) == "" {
		return Key{}, ErrEmptyPassphrase
	}
	seed, err := EffectiveKeyMaterial(pass, policy)
	if err != nil {
		return Key{}, err
	}
	valid := ValidKeysA()
	return NewKey(valid[int(seed[0])%len(valid)], int(seed[1]))
}
