package cipher

import (
	"primecipher/internal/domain"
	"primecipher/internal/numtheory"
)

// Service applies the keypair's modular exponentiation byte by byte.
// Both directions are pure: inputs are never mutated, outputs always
// match the input length, and empty input yields empty output.
type Service struct{}

// New returns a Cipher service.
func New() *Service { return &Service{} }

// Encrypt raises each plaintext byte to the public exponent modulo n,
// producing one ciphertext value per byte in input order.
func (s *Service) Encrypt(plaintext []byte, pub domain.PublicKey) []int64 {
	ciphertext := make([]int64, len(plaintext))
	for i, b := range plaintext {
		ciphertext[i] = numtheory.ModPow(int64(b), pub.E, pub.N)
	}
	return ciphertext
}

// Decrypt raises each ciphertext value to the private exponent modulo
// n and truncates to a byte. The truncation is lossless for any value
// encrypted from a byte under a modulus above 255, which the generator
// guarantees; arbitrary integers outside that domain are not
// supported.
func (s *Service) Decrypt(ciphertext []int64, priv domain.PrivateKey) []byte {
	plaintext := make([]byte, len(ciphertext))
	for i, c := range ciphertext {
		plaintext[i] = byte(numtheory.ModPow(c, priv.D, priv.N))
	}
	return plaintext
}

// Compile-time assertion that Service implements domain.Cipher.
var _ domain.Cipher = (*Service)(nil)
