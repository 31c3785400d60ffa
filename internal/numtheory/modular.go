package numtheory

// MaxModulus is the largest modulus ModPow accepts without risk of
// overflow: floor(sqrt(MaxInt64)). The squaring step multiplies two
// values already reduced below the modulus, so products stay within
// int64 whenever the modulus is at most this bound.
const MaxModulus int64 = 3037000499

// MaxPrimeBound is the largest upper bound a prime range may carry:
// the product of two primes at most this value stays within
// MaxModulus.
const MaxPrimeBound int64 = 55108

// GCD returns the greatest common divisor of a and b via the
// Euclidean algorithm. Defined for non-negative inputs; GCD(a, 0) = a.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ModInverse returns d such that (e*d) mod phi = 1, computed with the
// extended Euclidean algorithm and normalized to [0, phi).
//
// When phi == 1 no meaningful inverse exists and 0 is returned by
// convention. The result is meaningful only when gcd(e, phi) == 1,
// which callers guarantee by construction.
func ModInverse(e, phi int64) int64 {
	if phi == 1 {
		return 0
	}

	m0 := phi
	var y, x int64 = 0, 1

	for e > 1 {
		q := e / phi
		phi, e = e%phi, phi
		y, x = x-q*y, y
	}

	if x < 0 {
		x += m0
	}
	return x
}

// ModPow returns (base^exp) mod mod by repeated squaring, reducing the
// base first so every intermediate product involves operands below the
// modulus. Defined for base >= 0, exp >= 0, mod >= 1.
func ModPow(base, exp, mod int64) int64 {
	result := int64(1)
	base %= mod

	for exp > 0 {
		if exp%2 == 1 {
			result = result * base % mod
		}
		base = base * base % mod
		exp /= 2
	}
	return result
}
