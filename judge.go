package primejudge

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Judge classifies n by trial division.
//
// Numbers less than or equal to 1 are Invalid. For the rest every divisor i with i*i <= n
// is recorded together with its complement n/i, so 12 yields [2 3 4 6]. 1 and n itself
// are never part of the factor list. An empty list means n is prime.
func Judge(n int64) Verdict {
	if n <= 1 {
		return Verdict{Kind: Invalid, Input: n}
	}
	factors := Factors(n)
	if len(factors) == 0 {
		return Verdict{Kind: Prime, Input: n}
	}
	return Verdict{Kind: Composite, Input: n, Factors: factors}
}

// Factors returns the ascending, deduplicated divisors of n found by trial division,
// excluding 1 and n. It returns nil for n <= 1 and for primes.
func Factors[T constraints.Signed](n T) []T {
	if n <= 1 {
		return nil
	}

	var factors []T
	// i <= n/i is i*i <= n without the overflow near the type maximum.
	for i := T(2); i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		factors = append(factors, i)
		if c := n / i; c != i {
			factors = append(factors, c)
		}
	}
	slices.Sort(factors)

	return slices.Compact(factors)
}
