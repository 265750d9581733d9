package renorm

import (
	"errors"
	"fmt"
)

// ErrNonPositive is returned for generator values N ≤ 0; factorization is
// defined on positive integers only and rejects everything else explicitly.
var ErrNonPositive = errors.New("renorm: generator must be a positive integer")

// Factorize returns the distinct prime factors of n in discovery order:
// ascending trial-division factors first, then the residual (if > 1), which
// is guaranteed prime and numerically largest.
// Factorize(1) returns an empty set. n ≤ 0 returns ErrNonPositive.
// Complexity: O(√n) candidate divisors.
func Factorize(n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Factorize(%d): %w", n, ErrNonPositive)
	}

	primes := make([]int, 0, 4)
	q := n
	for p := 2; p*p <= q; p++ {
		if q%p != 0 {
			continue
		}
		primes = append(primes, p) // record each prime once
		for q%p == 0 {
			q /= p
		}
	}
	if q > 1 {
		primes = append(primes, q) // residual cofactor, prime by construction
	}

	return primes, nil
}
