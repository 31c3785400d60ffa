package numtheory

// IsPrime reports whether num is prime.
//
// Values <= 1 are not prime, 2 is the only even prime, and odd values
// are trial-divided by consecutive odd divisors up to sqrt(num). At
// the word sizes this module samples from, trial division is exact and
// fast enough that a probabilistic test would buy nothing.
func IsPrime(num int64) bool {
	if num <= 1 {
		return false
	}
	if num == 2 {
		return true
	}
	if num%2 == 0 {
		return false
	}
	for i := int64(3); i*i <= num; i += 2 {
		if num%i == 0 {
			return false
		}
	}
	return true
}
