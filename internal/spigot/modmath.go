package spigot

// Modular arithmetic kernel for the digit extractor. All functions are pure;
// operands and moduli fit in 32 bits, so every intermediate product fits in
// the int64 width before reduction.

// MulMod returns (a*b) mod m.
// The product of two 32-bit operands overflows 32 bits, not 64.
func MulMod(a, b, m int64) int64 {
	return (a * b) % m
}

// PowMod returns (a^b) mod m by binary exponentiation, reducing after every
// multiplication. b must be non-negative. Result is in [0, m).
func PowMod(a, b, m int64) int64 {
	r := int64(1)
	for {
		if b&1 == 1 {
			r = MulMod(r, a, m)
		}
		b >>= 1
		if b == 0 {
			break
		}
		a = MulMod(a, a, m)
	}
	return r
}

// InvMod returns the inverse of x mod y via the iterative extended Euclidean
// algorithm. Callers guarantee gcd(x, y) = 1 (y is a prime power coprime to
// x). Result is normalized into [0, y).
func InvMod(x, y int64) int64 {
	u, v := x, y
	c, a := int64(1), int64(0)
	for {
		q := v / u

		t := c
		c = a - q*c
		a = t

		t = u
		u = v - q*u
		v = t

		if u == 0 {
			break
		}
	}
	a = a % y
	if a < 0 {
		a = y + a
	}
	return a
}
