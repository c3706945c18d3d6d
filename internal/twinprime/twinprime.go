// Package twinprime picks hash table capacities from twin-prime pairs.
package twinprime

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("no twin prime pair in range")

// IsPrime reports whether n is prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Generate returns p+2 for the smallest twin prime pair (p, p+2) with
// min <= p and p+2 <= max.
func Generate(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("invalid range [%d, %d]", min, max)
	}
	for p := min; p <= max-2; p++ {
		if IsPrime(p) && IsPrime(p+2) {
			return p + 2, nil
		}
	}
	return 0, fmt.Errorf("%w [%d, %d]", ErrNotFound, min, max)
}
