package domain

import "math/rand"

// DefaultSampleSize is the maximum number of questions drawn for one attempt.
const DefaultSampleSize = 5

// SampleIndices draws up to min(k, n) distinct indices uniformly without
// replacement from [0, n). The returned order is the presentation order for
// the attempt and is fixed once drawn. An empty bank yields an empty draw;
// downstream code routes a zero-question session straight to its result.
func SampleIndices(n, k int) []int {
	if n <= 0 || k <= 0 {
		return []int{}
	}
	if k > n {
		k = n
	}
	return rand.Perm(n)[:k]
}
