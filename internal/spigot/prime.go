package spigot

import "math"

// IsPrime reports whether n is prime, by trial division against odd numbers
// up to sqrt(n). Even n is immediately composite (2 never reaches this path:
// the extractor only probes odd candidates from 3 upward).
//
// No caching: the primes consumed per digit computation are cheap relative
// to the inner summation loop, so each call recomputes from scratch.
func IsPrime(n int64) bool {
	if n%2 == 0 {
		return false
	}

	r := int64(math.Sqrt(float64(n)))
	for i := int64(3); i <= r; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime strictly greater than n.
func NextPrime(n int64) int64 {
	for {
		n++
		if IsPrime(n) {
			return n
		}
	}
}
