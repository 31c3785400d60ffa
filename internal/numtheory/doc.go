// Package numtheory exposes the integer primitives the cipher is built
// on.
//
// Contents
//
//   - Trial-division primality testing (IsPrime)
//   - Euclidean greatest common divisor (GCD)
//   - Modular inverse via the extended Euclidean algorithm (ModInverse)
//   - Modular exponentiation by repeated squaring (ModPow)
//
// # Notes
//
// Everything operates on int64. The squaring step inside ModPow is the
// only place an intermediate product can exceed the modulus, so all
// arithmetic stays overflow-free as long as the modulus does not
// exceed MaxModulus. Callers that sample primes are responsible for
// keeping products under that bound.
package numtheory
