package aco

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/antcolony/matrix"
	"gonum.org/v1/gonum/floats"
)

// initialPheromone is the value every pheromone cell starts with.
const initialPheromone = 1.0

// Engine owns the pheromone matrix and the best-so-far tour of one colony.
// An Engine is not safe for concurrent use.
type Engine struct {
	points    []Point
	opts      Options
	dist      *matrix.Dense // cached Distance(points[i], points[j])
	pheromone *matrix.Dense // N×N, starts at 1.0, only ever increases
	rng       *rand.Rand

	bestTour   Tour
	bestLength float64
	iteration  int // completed iterations across all Run calls

	// per-step scratch, reused by every ant
	visited    []bool
	candidates []int
	weights    []float64
	cum        []float64
}

// NewEngine validates the configuration and prepares a colony over points.
// DefaultOptions() is the base; opts are applied in order.
//
// Errors: ErrInvalidConfiguration (wrapped with the failing rule).
//
// Complexity: O(N²) for the distance and pheromone matrices.
func NewEngine(points []Point, opts ...Option) (*Engine, error) {
	var o = DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateConfig(points, o); err != nil {
		return nil, err
	}

	var n = len(points)
	dist, err := DistanceMatrix(points)
	if err != nil {
		return nil, err
	}
	pheromone, err := matrix.NewFilled(n, n, initialPheromone)
	if err != nil {
		return nil, err
	}

	var r = o.Rand
	if r == nil {
		r = rngFromSeed(o.Seed)
	}

	return &Engine{
		points:     append([]Point(nil), points...),
		opts:       o,
		dist:       dist,
		pheromone:  pheromone,
		rng:        r,
		bestLength: math.Inf(1),
		visited:    make([]bool, n),
		candidates: make([]int, 0, n),
		weights:    make([]float64, 0, n),
		cum:        make([]float64, n),
	}, nil
}

// Solve builds an Engine and runs it once.
func Solve(points []Point, obs Observer, opts ...Option) (Result, error) {
	e, err := NewEngine(points, opts...)
	if err != nil {
		return Result{}, err
	}

	return e.Run(obs)
}

// Run executes Options.Iterations iterations and returns the best tour found.
// obs may be nil. Calling Run again continues from the current pheromone and
// best-so-far state.
//
// Errors: ErrDegenerateProbability (as *DegenerateError). The run aborts on the
// first error; OnRunComplete is not called.
//
// Complexity: O(I·A·N²).
func (e *Engine) Run(obs Observer) (Result, error) {
	var i int
	for i = 0; i < e.opts.Iterations; i++ {
		if err := e.iterate(obs); err != nil {
			return Result{}, err
		}
	}

	res := Result{
		BestTour:   e.bestTour.Clone(),
		BestLength: e.bestLength,
		Iterations: e.iteration,
	}
	if obs != nil {
		obs.OnRunComplete(res)
	}

	return res, nil
}

// Pheromone returns a copy of the current pheromone matrix.
func (e *Engine) Pheromone() *matrix.Dense { return e.pheromone.Clone() }

// Best returns a copy of the best-so-far tour and its length
// (nil and +Inf before the first iteration).
func (e *Engine) Best() (Tour, float64) { return e.bestTour.Clone(), e.bestLength }

// Iteration returns the number of completed iterations.
func (e *Engine) Iteration() int { return e.iteration }

// iterate runs one iteration:
//
//	Stage 1: every ant builds a tour against the iteration-start pheromone.
//	Stage 2: strict-improvement best update, earliest ant wins ties.
//	Stage 3: batched reinforcement, += 1/length on each forward step.
//	Stage 4: notify obs.
func (e *Engine) iterate(obs Observer) error {
	var (
		ants    = e.opts.Ants
		tours   = make([]Tour, ants)
		lengths = make([]float64, ants)
		a       int
		err     error
	)

	// Stage 1: construction reads pheromone only.
	for a = 0; a < ants; a++ {
		tours[a], lengths[a], err = e.constructTour(a)
		if err != nil {
			return err
		}
	}

	// Stage 2: best-so-far.
	for a = 0; a < ants; a++ {
		if lengths[a] < e.bestLength {
			e.bestLength = lengths[a]
			e.bestTour = tours[a].Clone()
		}
	}

	// Stage 3: single-writer batch merge.
	var (
		step    int
		deposit float64
	)
	for a = 0; a < ants; a++ {
		if len(tours[a]) < 2 {
			continue // N == 1: no steps, nothing to deposit
		}
		deposit = 1 / lengths[a]
		for step = 0; step+1 < len(tours[a]); step++ {
			if err = e.pheromone.AddAt(tours[a][step], tours[a][step+1], deposit); err != nil {
				return fmt.Errorf("aco: reinforce iteration %d, ant %d: %w", e.iteration, a, err)
			}
		}
	}

	var idx = e.iteration
	e.iteration++

	// Stage 4: hand copies to the collaborator.
	if obs != nil {
		obs.OnIterationComplete(Snapshot{
			Iteration:  idx,
			BestTour:   e.bestTour.Clone(),
			BestLength: e.bestLength,
			Pheromone:  e.pheromone.Clone(),
			Tours:      tours,
			Lengths:    lengths,
		})
	}

	return nil
}

// constructTour walks one ant from point 0 through every point.
//
// At each step the candidates are the unvisited points in their original
// order. Candidate j at position k weighs
//
//	pheromone[cur][j] / dist[cur][j] * alpha[k]
//
// Weights are normalized and one candidate is drawn from the distribution.
//
// Complexity: O(N²).
func (e *Engine) constructTour(ant int) (Tour, float64, error) {
	var (
		n       = len(e.points)
		tour    = make(Tour, 1, n)
		length  float64
		current int
		j, k    int
		tau, d  float64
		w, sum  float64
	)
	for j = range e.visited {
		e.visited[j] = false
	}
	e.visited[current] = true

	for len(tour) < n {
		// Unvisited candidates, in point order.
		e.candidates = e.candidates[:0]
		for j = 0; j < n; j++ {
			if !e.visited[j] {
				e.candidates = append(e.candidates, j)
			}
		}

		// Raw weights; every entry must be finite.
		e.weights = e.weights[:0]
		sum = 0
		for k, j = range e.candidates {
			tau, _ = e.pheromone.At(current, j) // indices are in range by construction
			d, _ = e.dist.At(current, j)
			w = tau / d * e.opts.Alpha[k]
			if !finite(w) {
				return nil, 0, &DegenerateError{
					Iteration: e.iteration, Ant: ant, Current: current,
					Candidate: j, Weight: w, Sum: sum,
				}
			}
			e.weights = append(e.weights, w)
			sum += w
		}
		if sum <= 0 || !finite(sum) || !finite(1/sum) {
			return nil, 0, &DegenerateError{
				Iteration: e.iteration, Ant: ant, Current: current,
				Candidate: -1, Sum: sum,
			}
		}

		// Normalize and draw.
		floats.Scale(1/sum, e.weights)
		k = sampleIndex(e.rng, e.weights, e.cum[:len(e.weights)])
		j = e.candidates[k]

		d, _ = e.dist.At(current, j)
		length += d
		tour = append(tour, j)
		e.visited[j] = true
		current = j
	}

	return tour, length, nil
}
