// Package aco_test provides lightweight helpers shared across *_test.go files
// in this package.
package aco_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/matrix"
	"github.com/stretchr/testify/require"
)

const (
	// epsTiny is the tolerance for recomputed tour lengths.
	epsTiny = 1e-9

	// seedDet is a fixed non-default seed for determinism checks.
	seedDet = int64(42)
)

// referencePoints is the ten-point instance the colony was tuned on.
func referencePoints() []aco.Point {
	return []aco.Point{
		{X: 0.62005352, Y: 0.7051838},
		{X: 0.38730963, Y: 0.22982921},
		{X: 0.72145019, Y: 0.34813559},
		{X: 0.69624767, Y: 0.74909976},
		{X: 0.21898804, Y: 0.1450391},
		{X: 0.91504129, Y: 0.91483308},
		{X: 0.43181647, Y: 0.09180593},
		{X: 0.94606053, Y: 0.5478663},
		{X: 0.27562911, Y: 0.68909373},
		{X: 0.10469777, Y: 0.49994994},
	}
}

// circlePoints places n points on a slightly rippled unit circle to avoid ties.
func circlePoints(n int) []aco.Point {
	var (
		pts = make([]aco.Point, n)
		i   int
		th  float64
		r   float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 1.0 + 0.025*float64(i%3)
		pts[i] = aco.Point{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}

	return pts
}

// recorder captures every snapshot and the final result.
type recorder struct {
	snaps  []aco.Snapshot
	result *aco.Result
}

func (r *recorder) OnIterationComplete(s aco.Snapshot) { r.snaps = append(r.snaps, s) }

func (r *recorder) OnRunComplete(res aco.Result) { r.result = &res }

// allTours flattens every ant tour of every snapshot in emission order.
func (r *recorder) allTours() []aco.Tour {
	var out []aco.Tour
	for _, s := range r.snaps {
		out = append(out, s.Tours...)
	}

	return out
}

// mustSolve runs a fresh engine and fails the test on error.
func mustSolve(t *testing.T, pts []aco.Point, opts ...aco.Option) (aco.Result, *recorder) {
	t.Helper()
	rec := &recorder{}
	res, err := aco.Solve(pts, rec, opts...)
	require.NoError(t, err)

	return res, rec
}

// cell reads m[i][j] and fails the test on error.
func cell(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// freshPheromoneTours rebuilds the tours of the first iteration by hand:
// every pheromone cell is 1, so candidate k at each step weighs
// 1/dist·alpha[k], and one Float64 from a source seeded with seed picks it.
func freshPheromoneTours(pts []aco.Point, alpha []float64, ants int, seed int64) []aco.Tour {
	var (
		n     = len(pts)
		r     = rand.New(rand.NewSource(seed))
		tours = make([]aco.Tour, ants)
		a, k  int
	)
	for a = 0; a < ants; a++ {
		var (
			tour    = aco.Tour{0}
			visited = make([]bool, n)
			current int
		)
		visited[0] = true
		for len(tour) < n {
			var (
				cands   []int
				weights []float64
				sum     float64
			)
			for j := 0; j < n; j++ {
				if !visited[j] {
					cands = append(cands, j)
				}
			}
			for k = range cands {
				w := 1 / aco.Distance(pts[current], pts[cands[k]]) * alpha[k]
				weights = append(weights, w)
				sum += w
			}

			var (
				inv  = 1 / sum
				u    = r.Float64()
				acc  float64
				pick = -1
			)
			for k = range weights {
				weights[k] *= inv
				acc += weights[k]
				if pick < 0 && acc > u {
					pick = k
				}
			}
			if pick < 0 {
				for pick = len(weights) - 1; pick > 0 && weights[pick] <= 0; pick-- {
				}
			}

			current = cands[pick]
			visited[current] = true
			tour = append(tour, current)
		}
		tours[a] = tour
	}

	return tours
}
