// Package antcolony is an ant colony optimizer for the open-path Euclidean
// traveling salesman problem, with collaborators that log, chart, draw and
// display a run while it progresses.
//
// What is in the box?
//
//	matrix/       - dense float64 matrix used for distances and pheromone
//	aco/          - the colony engine: tour construction, reinforcement, best tracking
//	report/       - log observer, per-iteration statistics recorder, observer fan-out
//	render/       - PNG frames, GIF animations and the convergence chart
//	termview/     - live pheromone heatmap in the terminal
//	config/       - YAML run configuration
//	cmd/antcolony - command line front end
//
// Quick start:
//
//	pts := []aco.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
//	res, err := aco.Solve(pts, nil,
//		aco.WithAnts(4), aco.WithIterations(20), aco.WithAlpha(aco.UniformAlpha(len(pts))))
//	if err != nil {
//		// errors.Is(err, aco.ErrInvalidConfiguration) or aco.ErrDegenerateProbability
//	}
//	fmt.Println(res.BestTour, res.BestLength)
//
// Every tour starts at point 0 and visits each point exactly once; the
// return edge to point 0 is not part of the length.
//
// Install:
//
//	go get github.com/katalvlaran/antcolony
package antcolony
