package spigot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrime(t *testing.T) {
	t.Run("odd primes", func(t *testing.T) {
		for _, n := range []int64{3, 5, 7, 11, 13, 97, 7919, 104729} {
			assert.True(t, IsPrime(n), "expected %d to be prime", n)
		}
	})

	t.Run("odd composites", func(t *testing.T) {
		for _, n := range []int64{9, 15, 21, 25, 49, 7917, 104731} {
			assert.False(t, IsPrime(n), "expected %d to be composite", n)
		}
	})

	t.Run("even numbers are composite", func(t *testing.T) {
		for _, n := range []int64{4, 6, 100, 1024} {
			assert.False(t, IsPrime(n))
		}
	})
}

func TestNextPrime(t *testing.T) {
	t.Run("steps through the odd prime sequence", func(t *testing.T) {
		want := []int64{5, 7, 11, 13, 17, 19, 23, 29, 31}

		n := int64(3)
		for _, p := range want {
			n = NextPrime(n)
			assert.Equal(t, p, n)
		}
	})

	t.Run("strictly greater than n", func(t *testing.T) {
		assert.Equal(t, int64(3), NextPrime(2))
		assert.Equal(t, int64(7927), NextPrime(7919))
	})
}
