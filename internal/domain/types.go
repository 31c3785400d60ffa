package domain

// PublicKey is the published half of a keypair: the encryption
// exponent e and the modulus n.
type PublicKey struct {
	E int64
	N int64
}

// PrivateKey is the secret half of a keypair: the decryption exponent
// d (modular inverse of e modulo the totient) and the same modulus n.
type PrivateKey struct {
	D int64
	N int64
}

// PrimeRange is the closed interval [Low, High] that prime candidates
// are drawn from.
type PrimeRange struct {
	Low  int64
	High int64
}

// Transcript records one complete keygen, encrypt, decrypt round trip.
//
// The primes and totient used during generation are deliberately
// absent: they are not part of either key and never leave the
// generator.
type Transcript struct {
	ID         string
	Public     PublicKey
	Private    PrivateKey
	Plaintext  []byte
	Ciphertext []int64
	Recovered  []byte
}

// Message returns the recovered plaintext as a string.
func (t Transcript) Message() string { return string(t.Recovered) }
