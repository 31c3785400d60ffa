package keygen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primecipher/internal/domain"
	"primecipher/internal/numtheory"
	"primecipher/internal/pkg/testutil"
	"primecipher/internal/randsource"
	"primecipher/internal/services/keygen"
)

// referenceExponent mirrors the generator's linear exponent search so
// tests never hardcode an assumed e.
func referenceExponent(phi int64) int64 {
	e := int64(3)
	for e < phi {
		if numtheory.GCD(e, phi) == 1 {
			break
		}
		e++
	}
	return e
}

func TestGenerate_KnownPrimePair(t *testing.T) {
	// Draw exactly p=101, q=103: n=10403, phi=10200.
	gen := keygen.New(randsource.NewSequence(101, 103), testutil.NewTestLogger(t))

	pub, priv, err := gen.Generate(domain.PrimeRange{Low: 100, High: 1000})
	require.NoError(t, err)

	assert.Equal(t, int64(10403), pub.N)
	assert.Equal(t, int64(10403), priv.N)

	wantE := referenceExponent(10200)
	assert.Equal(t, wantE, pub.E)
	assert.Greater(t, pub.E, int64(1))
	assert.Less(t, pub.E, int64(10200))

	// d inverts e modulo the totient.
	assert.GreaterOrEqual(t, priv.D, int64(0))
	assert.Less(t, priv.D, int64(10200))
	assert.Equal(t, int64(1), pub.E*priv.D%10200)
}

func TestGenerate_ResamplesComposites(t *testing.T) {
	// 100 and 102 are composite and must be rejected, not returned.
	gen := keygen.New(randsource.NewSequence(100, 101, 102, 103), testutil.NewTestLogger(t))

	pub, _, err := gen.Generate(domain.PrimeRange{Low: 100, High: 1000})
	require.NoError(t, err)
	assert.Equal(t, int64(101*103), pub.N)
}

func TestGenerate_ResamplesWhenQEqualsP(t *testing.T) {
	// The second draw repeats p and must be resampled, not rejected
	// after the fact.
	gen := keygen.New(randsource.NewSequence(101, 101, 103), testutil.NewTestLogger(t))

	pub, _, err := gen.Generate(domain.PrimeRange{Low: 100, High: 1000})
	require.NoError(t, err)
	assert.Equal(t, int64(101*103), pub.N)
}

func TestGenerate_SmallRangeFailsWithSizeError(t *testing.T) {
	// Primes from [2, 10] cannot clear n > 255.
	gen := keygen.New(randsource.NewSequence(7, 5), testutil.NewTestLogger(t))

	_, _, err := gen.Generate(domain.PrimeRange{Low: 2, High: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModulusTooSmall)

	var sizeErr *domain.ModulusSizeError
	require.True(t, errors.As(err, &sizeErr))
	assert.Equal(t, int64(7), sizeErr.P)
	assert.Equal(t, int64(5), sizeErr.Q)
	assert.Equal(t, int64(35), sizeErr.N)
}

func TestGenerate_RejectsInvalidRanges(t *testing.T) {
	gen := keygen.New(randsource.NewSequence(101, 103), testutil.NewTestLogger(t))

	tests := []struct {
		name string
		r    domain.PrimeRange
	}{
		{"low below 2", domain.PrimeRange{Low: 1, High: 100}},
		{"inverted", domain.PrimeRange{Low: 1000, High: 100}},
		{"past overflow bound", domain.PrimeRange{Low: 2, High: numtheory.MaxPrimeBound + 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := gen.Generate(tt.r)
			assert.ErrorIs(t, err, domain.ErrInvalidRange)
		})
	}
}

func TestGenerate_SeededSourceHonorsInvariants(t *testing.T) {
	// Sweep real PRNG draws over the default range; every generated
	// keypair must satisfy the published invariants.
	r := domain.PrimeRange{Low: 100, High: 1000}
	for seed := int64(1); seed <= 25; seed++ {
		gen := keygen.New(randsource.New(seed), testutil.NewTestLogger(t))
		pub, priv, err := gen.Generate(r)
		require.NoError(t, err, "seed %d", seed)

		assert.Greater(t, pub.N, int64(255), "seed %d", seed)
		assert.Equal(t, pub.N, priv.N, "seed %d", seed)
		assert.Greater(t, pub.E, int64(1), "seed %d", seed)
	}
}
