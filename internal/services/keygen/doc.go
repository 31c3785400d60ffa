// Package keygen samples prime pairs and derives keypairs.
//
// The generator rejection-samples two distinct primes from a
// configured range, computes the modulus and totient, finds the
// smallest usable public exponent by linear search, and derives the
// private exponent as its modular inverse.
package keygen
