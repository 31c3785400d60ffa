package keygen

import (
	"fmt"

	"primecipher/internal/domain"
	"primecipher/internal/numtheory"
	"primecipher/internal/pkg/logger"
)

// Generator produces keypairs from primes drawn through an injected
// random source.
type Generator struct {
	rng domain.RandomSource
	log logger.Logger
}

// New returns a Generator drawing candidates from rng.
func New(rng domain.RandomSource, log logger.Logger) *Generator {
	return &Generator{rng: rng, log: log}
}

// Generate samples two distinct primes from r and derives a keypair.
//
// The range must contain at least two primes; sampling resamples
// until it accepts, so a barren range would never return. Ranges whose
// maximum product cannot exceed 255 fail with a ModulusSizeError
// carrying the offending primes. The sampled primes and the totient
// are dropped before returning; only (e, n) and (d, n) escape.
func (g *Generator) Generate(r domain.PrimeRange) (domain.PublicKey, domain.PrivateKey, error) {
	if err := validateRange(r); err != nil {
		return domain.PublicKey{}, domain.PrivateKey{}, err
	}

	p := g.samplePrime(r, 0)
	q := g.samplePrime(r, p)

	n := p * q
	phi := (p - 1) * (q - 1)

	// Every byte 0..255 must map injectively under reduction mod n.
	if n <= 255 {
		g.log.Warn(fmt.Sprintf("rejecting keypair: n=%d from p=%d q=%d is not above 255", n, p, q))
		return domain.PublicKey{}, domain.PrivateKey{}, &domain.ModulusSizeError{P: p, Q: q, N: n}
	}

	// Linear search from 3, stepping by 1. Deliberately not odd-only:
	// the first coprime value wins, whatever its parity.
	e := int64(3)
	for e < phi {
		if numtheory.GCD(e, phi) == 1 {
			break
		}
		e++
	}

	d := numtheory.ModInverse(e, phi)

	g.log.Debug(fmt.Sprintf("generated keypair: n=%d e=%d", n, e))
	return domain.PublicKey{E: e, N: n}, domain.PrivateKey{D: d, N: n}, nil
}

// samplePrime rejection-samples the range until a prime different from
// exclude is drawn. Passing exclude 0 disables the distinctness check.
func (g *Generator) samplePrime(r domain.PrimeRange, exclude int64) int64 {
	for {
		candidate := g.rng.IntInRange(r.Low, r.High)
		if candidate != exclude && numtheory.IsPrime(candidate) {
			return candidate
		}
	}
}

func validateRange(r domain.PrimeRange) error {
	if r.Low < 2 {
		return fmt.Errorf("%w: low bound %d is below 2", domain.ErrInvalidRange, r.Low)
	}
	if r.High < r.Low {
		return fmt.Errorf("%w: high bound %d is below low bound %d", domain.ErrInvalidRange, r.High, r.Low)
	}
	if r.High > numtheory.MaxPrimeBound {
		return fmt.Errorf("%w: high bound %d exceeds overflow-safe limit %d",
			domain.ErrInvalidRange, r.High, numtheory.MaxPrimeBound)
	}
	return nil
}

// Compile-time assertion that Generator implements domain.KeyGenerator.
var _ domain.KeyGenerator = (*Generator)(nil)
