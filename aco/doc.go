// Package aco implements Ant Colony Optimization for the Euclidean
// Travelling Salesman Problem.
//
// A colony of ants repeatedly builds open tours over a fixed sequence of 2D
// points. Every ant starts at point 0 and extends its path one point at a
// time, choosing among the unvisited points with probability proportional to
//
//	pheromone[cur][j] / distance(cur, j) * alpha[k]
//
// where k is the position of j in the ordered list of still-unvisited
// candidates (not the identity of j). After all ants of an iteration have
// finished, each ant deposits 1/length on every forward step of its path.
// There is no evaporation: pheromone values never decrease.
//
// Ordering guarantee:
//
//	Ants within one iteration read only the pheromone state left by
//	previous iterations. Reinforcement is applied as one batch after the
//	last ant of the iteration, before the next iteration starts.
//
// Reporting is decoupled through Observer: the engine calls
// OnIterationComplete once per iteration and OnRunComplete once at the end.
// Rendering, logging, and animation live in separate packages.
//
// Errors (sentinel, match with errors.Is):
//
//   - ErrInvalidConfiguration  - empty points, non-finite coordinates,
//     ants/iterations < 1, alpha length != N-1, negative or non-finite alpha.
//   - ErrDegenerateProbability - a candidate weight is NaN/±Inf or the weights
//     sum to zero (e.g. two coincident points). Details via *DegenerateError.
//
// Both abort the run; no partial result is returned.
//
// Example:
//
//	pts := []aco.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
//	res, err := aco.Solve(pts, nil,
//	    aco.WithAnts(4),
//	    aco.WithIterations(20),
//	    aco.WithAlpha(aco.UniformAlpha(len(pts))),
//	    aco.WithSeed(7),
//	)
//
// Complexity per iteration: O(A·N²) time, O(N²) memory for the pheromone and
// distance matrices.
package aco
