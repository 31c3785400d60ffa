package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"primecipher/internal/numtheory"
)

// Default prime sampling range. A pair of three-digit primes always
// clears the n > 255 requirement with room to spare.
const (
	DefaultPrimeLow  int64 = 100
	DefaultPrimeHigh int64 = 1000
)

// KeygenSettings holds the prime sampling range and the PRNG seed used
// for key generation. A zero seed means "seed from the wall clock".
type KeygenSettings struct {
	PrimeLow  int64 `mapstructure:"prime_low" validate:"required,min=2"`
	PrimeHigh int64 `mapstructure:"prime_high" validate:"required,gtefield=PrimeLow"`
	Seed      int64 `mapstructure:"seed"`
}

// Validate checks that all fields in KeygenSettings are valid and that
// the range cannot produce a modulus past the overflow bound.
func (s *KeygenSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeygenSettings: %w", err)
	}

	if s.PrimeHigh > numtheory.MaxPrimeBound {
		return fmt.Errorf("prime high bound must not exceed %d (overflow-safe modulus limit)", numtheory.MaxPrimeBound)
	}

	return nil
}

// Range returns the settings as a sampling range.
func (s *KeygenSettings) Range() (low, high int64) {
	return s.PrimeLow, s.PrimeHigh
}
