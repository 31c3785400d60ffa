package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrModulusTooSmall is returned when the sampled primes yield a
	// modulus n <= 255, too small to encrypt bytes injectively.
	ErrModulusTooSmall = errors.New("modulus too small for byte encryption")

	// ErrInvalidRange is returned when a prime range is malformed or
	// wide enough that intermediate products could overflow.
	ErrInvalidRange = errors.New("invalid prime range")

	// ErrRoundTripMismatch is returned if a decrypted message does not
	// match the original. It cannot occur for keys that satisfy the
	// generator's invariants and exists as a final consistency check.
	ErrRoundTripMismatch = errors.New("decrypted message does not match original")
)

// ModulusSizeError reports the prime pair whose product failed the
// n > 255 requirement. The caller may retry with a wider range.
type ModulusSizeError struct {
	P int64
	Q int64
	N int64
}

func (e *ModulusSizeError) Error() string {
	return fmt.Sprintf("modulus n=%d from primes p=%d, q=%d must exceed 255", e.N, e.P, e.Q)
}

// Unwrap makes errors.Is(err, ErrModulusTooSmall) hold.
func (e *ModulusSizeError) Unwrap() error { return ErrModulusTooSmall }
