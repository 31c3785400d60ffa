package crypto_test

import (
	"testing"

	"primecipher/internal/crypto"
	"primecipher/internal/domain"
)

func TestFingerprint_StableAndDistinct(t *testing.T) {
	a := domain.PublicKey{E: 7, N: 10403}
	b := domain.PublicKey{E: 11, N: 10403}

	fpA := crypto.Fingerprint(a)
	if fpA != crypto.Fingerprint(a) {
		t.Fatal("fingerprint not stable for identical keys")
	}
	if len(fpA) != 20 {
		t.Fatalf("fingerprint length = %d, want 20 hex chars", len(fpA))
	}
	if fpA == crypto.Fingerprint(b) {
		t.Fatal("distinct keys share a fingerprint")
	}
}

func TestFingerprint_FieldOrderMatters(t *testing.T) {
	// (e=7, n=10403) and (e=10403, n=7) must not collide; the encoding
	// separates the fields.
	a := domain.PublicKey{E: 7, N: 10403}
	b := domain.PublicKey{E: 10403, N: 7}
	if crypto.Fingerprint(a) == crypto.Fingerprint(b) {
		t.Fatal("swapped fields share a fingerprint")
	}
}
