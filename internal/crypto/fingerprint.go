package crypto

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"primecipher/internal/domain"
)

// Fingerprint returns a short hex fingerprint of the public key for
// display and logging. The input is the canonical "e:n" encoding so
// the same key always fingerprints identically.
func Fingerprint(pub domain.PublicKey) string {
	sum := blake2b.Sum256([]byte(fmt.Sprintf("%d:%d", pub.E, pub.N)))
	return hex.EncodeToString(sum[:10])
}
