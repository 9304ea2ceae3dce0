package aco

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRNGFromSeed_ZeroUsesDefault: seed 0 and the default seed share one stream.
func TestRNGFromSeed_ZeroUsesDefault(t *testing.T) {
	a, b := rngFromSeed(0), rngFromSeed(defaultRNGSeed)
	for i := 0; i < 8; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

// TestSampleIndex_NeverPicksZeroProbability draws many times from a sparse distribution.
func TestSampleIndex_NeverPicksZeroProbability(t *testing.T) {
	var (
		r     = rand.New(rand.NewSource(3))
		probs = []float64{0, 0.25, 0, 0.75, 0}
		cum   = make([]float64, len(probs))
		hits  = make([]int, len(probs))
	)
	for i := 0; i < 4000; i++ {
		hits[sampleIndex(r, probs, cum)]++
	}

	assert.Zero(t, hits[0])
	assert.Zero(t, hits[2])
	assert.Zero(t, hits[4])
	assert.InDelta(t, 0.25, float64(hits[1])/4000, 0.05)
	assert.InDelta(t, 0.75, float64(hits[3])/4000, 0.05)
}

// TestSampleIndex_RoundingFallsBackToLastPositive covers a prefix sum that stays below u.
func TestSampleIndex_RoundingFallsBackToLastPositive(t *testing.T) {
	var (
		r     = rand.New(rand.NewSource(1))
		probs = []float64{1e-300, 1e-300, 0} // sums to ~0, every u lands past the end
		cum   = make([]float64, len(probs))
	)
	for i := 0; i < 16; i++ {
		assert.Equal(t, 1, sampleIndex(r, probs, cum))
	}
}

// TestSampleIndex_Single always returns the only slot.
func TestSampleIndex_Single(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	assert.Equal(t, 0, sampleIndex(r, []float64{1}, make([]float64, 1)))
}
