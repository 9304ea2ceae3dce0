// Package aco_test provides runnable, deterministic examples for the colony.
package aco_test

import (
	"fmt"

	"github.com/katalvlaran/antcolony/aco"
)

// ExampleSolve_triangle: on a right triangle both tours from 0 have length 1+√2.
func ExampleSolve_triangle() {
	// 1) Three points; the ant starts at (0,0).
	pts := []aco.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}

	// 2) One ant, one iteration, neutral alpha.
	res, err := aco.Solve(pts, nil,
		aco.WithAnts(1),
		aco.WithIterations(1),
		aco.WithAlpha([]float64{1, 1}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print the length and tour size.
	fmt.Printf("length=%.6f points=%d\n", res.BestLength, len(res.BestTour))
	// Output: length=2.414214 points=3
}

// ExampleEngine_Run_observer shows per-iteration callbacks.
func ExampleEngine_Run_observer() {
	pts := []aco.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}

	e, err := aco.NewEngine(pts,
		aco.WithAnts(3),
		aco.WithIterations(3),
		aco.WithAlpha(aco.UniformAlpha(len(pts))),
		aco.WithSeed(7),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	obs := aco.ObserverFuncs{
		Iteration: func(s aco.Snapshot) {
			fmt.Printf("iteration %d: %d tours\n", s.Iteration, len(s.Tours))
		},
		Complete: func(r aco.Result) {
			fmt.Printf("done after %d iterations\n", r.Iterations)
		},
	}
	if _, err = e.Run(obs); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// iteration 0: 3 tours
	// iteration 1: 3 tours
	// iteration 2: 3 tours
	// done after 3 iterations
}

// ExampleSolve_coincident: duplicate points abort the run.
func ExampleSolve_coincident() {
	pts := []aco.Point{{X: 0, Y: 0}, {X: 0, Y: 0}}

	_, err := aco.Solve(pts, nil, aco.WithAlpha([]float64{1}))
	fmt.Println(err)
	// Output: aco: degenerate probability: iteration 0, ant 0, point 0: candidate 1 has weight +Inf
}
