// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

import "math/big"

// bddPrimeGTE returns the smallest prime greater than or equal to src, the
// way the teacher library's primes.go picks table sizes so that modulo
// reduction spreads keys evenly (spec.md §4.3: "Table sizes SHOULD be
// primes").
func bddPrimeGTE(src int) int {
	if src < 2 {
		return 2
	}
	if src%2 == 0 {
		src++
	}
	for {
		if hasEasyFactor(src) {
			src += 2
			continue
		}
		// ProbablyPrime(0) is a deterministic primality test for inputs
		// that fit in a machine word, exactly as the teacher relies on it.
		if big.NewInt(int64(src)).ProbablyPrime(0) {
			return src
		}
		src += 2
	}
}

func hasEasyFactor(n int) bool {
	for _, p := range [...]int{3, 5, 7, 11, 13} {
		if n != p && n%p == 0 {
			return true
		}
	}
	return false
}
