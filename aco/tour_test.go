package aco_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDistance covers the 3-4-5 triangle and symmetry.
func TestDistance(t *testing.T) {
	a, b := aco.Point{X: 0, Y: 0}, aco.Point{X: 3, Y: 4}
	assert.Equal(t, 5.0, aco.Distance(a, b))
	assert.Equal(t, aco.Distance(a, b), aco.Distance(b, a))
	assert.Equal(t, 0.0, aco.Distance(b, b))
}

// TestDistanceMatrix verifies the cached matrix is symmetric with a zero diagonal.
func TestDistanceMatrix(t *testing.T) {
	pts := circlePoints(6)
	m, err := aco.DistanceMatrix(pts)
	require.NoError(t, err)
	require.Equal(t, 6, m.Rows())

	for i := range pts {
		assert.Equal(t, 0.0, cell(t, m, i, i))
		for j := range pts {
			assert.Equal(t, aco.Distance(pts[i], pts[j]), cell(t, m, i, j))
			assert.Equal(t, cell(t, m, j, i), cell(t, m, i, j))
		}
	}

	_, err = aco.DistanceMatrix(nil)
	require.ErrorIs(t, err, aco.ErrInvalidConfiguration)

	_, err = aco.DistanceMatrix([]aco.Point{{X: -math.MaxFloat64, Y: 0}, {X: math.MaxFloat64, Y: 0}})
	require.ErrorIs(t, err, aco.ErrInvalidConfiguration)
}

// TestValidateTour exercises shape, start, range, and duplicate checks.
func TestValidateTour(t *testing.T) {
	require.NoError(t, aco.ValidateTour(aco.Tour{0, 2, 1}, 3))
	require.NoError(t, aco.ValidateTour(aco.Tour{0}, 1))

	assert.ErrorContains(t, aco.ValidateTour(aco.Tour{0, 1}, 3), "want 3")
	assert.ErrorContains(t, aco.ValidateTour(aco.Tour{1, 0, 2}, 3), "starts at 1")
	assert.ErrorContains(t, aco.ValidateTour(aco.Tour{0, 3, 1}, 3), "out of range")
	assert.ErrorContains(t, aco.ValidateTour(aco.Tour{0, 1, 1}, 3), "visited twice")
	assert.Error(t, aco.ValidateTour(nil, 0))
}

// TestTourAndCycleLength compares open and closed lengths on a unit square.
func TestTourAndCycleLength(t *testing.T) {
	square := []aco.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	open, err := aco.TourLength(square, aco.Tour{0, 1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, open, epsTiny)

	closed, err := aco.CycleLength(square, aco.Tour{0, 1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, closed, epsTiny)

	crossed, err := aco.TourLength(square, aco.Tour{0, 2, 1, 3})
	require.NoError(t, err)
	assert.InDelta(t, 1+2*math.Sqrt2, crossed, epsTiny)

	_, err = aco.TourLength(square, aco.Tour{0, 1})
	require.Error(t, err)
}

// TestTourClone ensures Clone is independent and nil-preserving.
func TestTourClone(t *testing.T) {
	orig := aco.Tour{0, 1, 2}
	cp := orig.Clone()
	cp[1] = 7
	assert.Equal(t, aco.Tour{0, 1, 2}, orig)

	var none aco.Tour
	assert.Nil(t, none.Clone())
}
