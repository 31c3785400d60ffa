package domain

// RandomSource supplies uniformly distributed integers for prime
// sampling. Implementations need not be cryptographically secure; the
// generator is a teaching cipher and treats randomness quality as a
// caller concern.
type RandomSource interface {
	// IntInRange returns a uniform value in the closed range
	// [low, high]. Callers guarantee low <= high.
	IntInRange(low, high int64) int64
}

// KeyGenerator produces a keypair from primes sampled in a range.
type KeyGenerator interface {
	Generate(r PrimeRange) (PublicKey, PrivateKey, error)
}

// Cipher encrypts and decrypts byte sequences one byte per modular
// exponentiation. Neither operation can fail for keys produced by a
// KeyGenerator.
type Cipher interface {
	Encrypt(plaintext []byte, pub PublicKey) []int64
	Decrypt(ciphertext []int64, priv PrivateKey) []byte
}

// SessionService runs a full keygen, encrypt, decrypt round trip over
// a single message and reports the result as a Transcript.
type SessionService interface {
	Run(message string, r PrimeRange) (Transcript, error)
}
