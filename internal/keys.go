package internal

import (
	"errors"
	"fmt"
)

// ErrInvalidKey is returned when the multiplicative key a shares a factor
// with Modulus and therefore has no inverse.
var ErrInvalidKey = errors.New("invalid key")

// Key is an affine cipher key: x -> (A*x + B) mod Modulus.
type Key struct {
	A int `json:"a" yaml:"a" mapstructure:"a"`
	B int `json:"b" yaml:"b" mapstructure:"b"`
}

// NewKey validates a and reduces b into [0, Modulus).
func NewKey(a, b int) (Key, error) {
	k := Key{A: a, B: Mod(b, Modulus)}
	if err := k.Validate(); err != nil {
		return Key{}, err
	}
	return k, nil
}

// Validate returns an error wrapping ErrInvalidKey when A is not invertible.
func (k Key) Validate() error {
	if !IsValidKeyA(k.A) {
		return fmt.Errorf("%w: a=%d must be coprime with %d", ErrInvalidKey, k.A, Modulus)
	}
	return nil
}

// Inverse returns the multiplicative inverse of A modulo Modulus.
func (k Key) Inverse() (int, error) {
	inv, ok := ModInverse(k.A, Modulus)
	if !ok {
		return 0, fmt.Errorf("%w: a=%d has no inverse mod %d", ErrInvalidKey, k.A, Modulus)
	}
	return inv, nil
}

func (k Key) String() string {
	return fmt.Sprintf("a=%d b=%d", k.A, k.B)
}

// IsValidKeyA reports whether a is coprime with Modulus.
func IsValidKeyA(a int) bool {
	return GCD(a, Modulus) == 1
}

// ValidKeysA lists every a in [1, Modulus) coprime with Modulus, ascending.
// The slice is rebuilt on each call; callers may modify it.
func ValidKeysA() []int {
	out := make([]int, 0, Modulus)
	for a := 1; a < Modulus; a++ {
		if IsValidKeyA(a) {
			out = append(out, a)
		}
	}
	return out
}

// ListValidKeysA is the selectable set of multiplicative keys offered to users.
func ListValidKeysA() []int {
	return ValidKeysA()
}
