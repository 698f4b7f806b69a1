package spigot

import "math"

/*
  ALGORITHM: Digit Extraction (Plouffe series, Bellard's formulation)
  ------------------------------------------------------------------
  Goal: the 9 decimal digits of pi starting at 1-based position `offset`,
  without computing any digit before that position.

  1. N = floor((offset+20) * ln10 / ln2)
     Number of series terms needed: 20 guard bits of precision beyond the
     requested digits.

  2. For each prime base a = 3, 5, 7, ... up to 2N:
     - vmax = floor(log(2N) / log(a)), av = a^vmax.
       av is the prime-power modulus carrying this base's contribution.
     - Inner loop k = 1..N grows numerator terms t=k and denominator terms
       t=2k-1, each reduced mod av. kq/kq2 count how close the growing
       products are to the next multiple of a; when one is reached, the
       factor of a is divided out and the valuation counter v adjusted.
       This p-adic bookkeeping is what lets the final term contribute at
       the correct power of a.
     - Whenever v > 0 the partial term num/den * k is folded into s via
       the modular inverse, scaled back up by the a^(vmax-v) powers that
       were divided out, with wraparound subtraction keeping s < av.
     - s is then shifted to the target digit position by 10^(offset-1)
       mod av, and s/av folded into the fractional accumulator.

  3. The chunk is floor(sum * 1e9), truncated, in [0, 1e9).
*/

// ChunkDigits is the number of decimal digits one extraction yields.
const ChunkDigits = 9

// Extract returns the 9 decimal digits of pi beginning at the 1-based
// decimal position offset, as an integer in [0, 1e9). Pure and
// deterministic; callers validate offset before dispatch.
func Extract(offset int64) int64 {
	N := int64(float64(offset+20) * math.Ln10 / math.Ln2)
	sum := 0.0

	for a := int64(3); a <= 2*N; a = NextPrime(a) {
		vmax := int64(math.Log(float64(2*N)) / math.Log(float64(a)))
		av := int64(1)
		for i := int64(0); i < vmax; i++ {
			av *= a
		}

		var s, v int64
		num, den := int64(1), int64(1)
		kq, kq2 := int64(1), int64(1)

		for k := int64(1); k <= N; k++ {
			// Numerator term t = k, with factors of a divided out.
			t := k
			if kq >= a {
				for {
					t /= a
					v--
					if t%a != 0 {
						break
					}
				}
				kq = 0
			}
			kq++
			num = MulMod(num, t, av)

			// Denominator term t = 2k-1, same valuation tracking.
			t = 2*k - 1
			if kq2 >= a {
				if kq2 == a {
					for {
						t /= a
						v++
						if t%a != 0 {
							break
						}
					}
				}
				kq2 -= a
			}
			den = MulMod(den, t, av)
			kq2 += 2

			if v > 0 {
				t = InvMod(den, av)
				t = MulMod(t, num, av)
				t = MulMod(t, k, av)
				for i := v; i < vmax; i++ {
					t = MulMod(t, a, av)
				}
				s += t
				if s >= av {
					s -= av
				}
			}
		}

		// Shift this base's contribution to the requested digit position.
		t := PowMod(10, offset-1, av)
		s = MulMod(s, t, av)
		sum = math.Mod(sum+float64(s)/float64(av), 1.0)
	}

	return int64(sum * 1e9)
}
