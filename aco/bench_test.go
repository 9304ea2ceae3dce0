// Package aco_test - benchmarks for tour construction on rippled circles.
package aco_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/antcolony/aco"
)

// sinkF defeats dead-code elimination.
var sinkF float64

// BenchmarkSolve measures full runs of 10 ants × 10 iterations.
func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{10, 50, 100} {
		pts := circlePoints(n)
		alpha := aco.UniformAlpha(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := aco.Solve(pts, nil,
					aco.WithAnts(10),
					aco.WithIterations(10),
					aco.WithAlpha(alpha),
					aco.WithSeed(seedDet),
				)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = res.BestLength
			}
		})
	}
}
