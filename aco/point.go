package aco

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antcolony/matrix"
)

// Distance returns the Euclidean distance between a and b.
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// DistanceMatrix caches Distance for every ordered pair of points.
// The result is symmetric with a zero diagonal.
//
// Errors: ErrInvalidConfiguration for an empty slice or non-finite distances.
//
// Complexity: O(N²) time and memory.
func DistanceMatrix(points []Point) (*matrix.Dense, error) {
	var n = len(points)
	if n == 0 {
		return nil, fmt.Errorf("%w: no points", ErrInvalidConfiguration)
	}
	dist, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // upper triangle, mirrored
			d = Distance(points[i], points[j])
			if err = dist.Set(i, j, d); err != nil {
				return nil, fmt.Errorf("%w: distance %d→%d: %v", ErrInvalidConfiguration, i, j, err)
			}
			if err = dist.Set(j, i, d); err != nil {
				return nil, fmt.Errorf("%w: distance %d→%d: %v", ErrInvalidConfiguration, j, i, err)
			}
		}
	}

	return dist, nil
}
