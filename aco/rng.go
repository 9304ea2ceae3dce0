// Package aco - RNG utilities for tour construction.
//
// Determinism: same seed ⇒ identical candidate draws across runs.
// math/rand.Rand is NOT goroutine-safe; an Engine owns its stream.
package aco

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// sampleIndex draws k with probability probs[k] from a normalized discrete
// distribution (Σ probs == 1 up to rounding). cum is scratch space of
// len(probs) and receives the cumulative distribution.
//
// One uniform draw u ∈ [0,1) selects the first k with cum[k] > u. When rounding
// leaves cum[last] ≤ u, the last slot with positive probability is returned.
//
// Complexity: O(k) for the prefix sum, O(log k) for the search.
func sampleIndex(r *rand.Rand, probs, cum []float64) int {
	floats.CumSum(cum, probs)

	var (
		u = r.Float64()
		k = sort.Search(len(cum), func(i int) bool { return cum[i] > u })
	)
	if k < len(probs) {
		return k
	}
	for k = len(probs) - 1; k > 0; k-- {
		if probs[k] > 0 {
			break
		}
	}

	return k
}
