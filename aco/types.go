package aco

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/antcolony/matrix"
)

// Sentinel errors returned by the engine.
var (
	// ErrInvalidConfiguration indicates that the points or Options cannot
	// describe a run (see validateConfig for the exact rules).
	ErrInvalidConfiguration = errors.New("aco: invalid configuration")

	// ErrDegenerateProbability indicates that candidate weights could not be
	// normalized into a probability distribution.
	ErrDegenerateProbability = errors.New("aco: degenerate probability")
)

// DegenerateError carries the position at which tour construction failed.
// It unwraps to ErrDegenerateProbability.
type DegenerateError struct {
	Iteration int     // 0-based iteration index
	Ant       int     // 0-based ant index within the iteration
	Current   int     // point the ant was standing on
	Candidate int     // offending candidate point, -1 when the sum is at fault
	Weight    float64 // offending candidate weight (valid when Candidate >= 0)
	Sum       float64 // sum of the weights computed so far
}

// Error implements the error interface.
func (e *DegenerateError) Error() string {
	if e.Candidate >= 0 {
		return fmt.Sprintf("%v: iteration %d, ant %d, point %d: candidate %d has weight %g",
			ErrDegenerateProbability, e.Iteration, e.Ant, e.Current, e.Candidate, e.Weight)
	}

	return fmt.Sprintf("%v: iteration %d, ant %d, point %d: weights sum to %g",
		ErrDegenerateProbability, e.Iteration, e.Ant, e.Current, e.Sum)
}

// Unwrap returns ErrDegenerateProbability.
func (e *DegenerateError) Unwrap() error { return ErrDegenerateProbability }

// Point is an immutable 2D coordinate.
type Point struct {
	X, Y float64
}

// Tour is an ordered sequence of point indices starting at 0.
// A complete tour over N points is a permutation of 0..N-1.
type Tour []int

// Clone returns an independent copy of t. Clone of nil is nil.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}

	return append(Tour(nil), t...)
}

// Snapshot is handed to Observer.OnIterationComplete after reinforcement.
// All fields are copies; observers may retain them.
type Snapshot struct {
	Iteration  int           // 0-based index of the iteration just completed
	BestTour   Tour          // best-so-far tour across the run
	BestLength float64       // length of BestTour
	Pheromone  *matrix.Dense // pheromone matrix after this iteration's update
	Tours      []Tour        // tours built by each ant in this iteration
	Lengths    []float64     // Lengths[i] is the length of Tours[i]
}

// Result is the outcome of a run.
type Result struct {
	BestTour   Tour    // shortest tour found
	BestLength float64 // its length
	Iterations int     // iterations completed by the engine
}

// Options configures an Engine.
//
// Ants       – number of ants per iteration (A ≥ 1).
// Iterations – iterations per Run call (I ≥ 1).
// Alpha      – per-candidate-slot bias, len == N-1, entries finite and ≥ 0.
// Seed       – RNG seed; 0 selects the fixed default seed (still deterministic).
// Rand       – optional caller-owned source; when set, Seed is ignored.
type Options struct {
	Ants       int
	Iterations int
	Alpha      []float64
	Seed       int64
	Rand       *rand.Rand
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithAnts sets the number of ants per iteration.
func WithAnts(n int) Option {
	return func(o *Options) {
		o.Ants = n
	}
}

// WithIterations sets the number of iterations executed by Run.
func WithIterations(n int) Option {
	return func(o *Options) {
		o.Iterations = n
	}
}

// WithAlpha sets the candidate-slot bias vector. The slice is copied.
func WithAlpha(alpha []float64) Option {
	return func(o *Options) {
		if alpha == nil {
			o.Alpha = nil
			return
		}
		o.Alpha = append([]float64(nil), alpha...)
	}
}

// WithSeed sets the RNG seed. Equal seeds over equal inputs yield equal tours.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects a caller-owned *rand.Rand. The engine becomes its only user
// for the lifetime of the run; math/rand.Rand is not goroutine-safe.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// DefaultOptions returns the defaults used by the reference colony:
//   - Ants:       10
//   - Iterations: 100
//   - Alpha:      nil (must be supplied, see UniformAlpha)
//   - Seed:       0 (default deterministic stream)
func DefaultOptions() Options {
	return Options{
		Ants:       10,
		Iterations: 100,
	}
}

// UniformAlpha returns a neutral alpha vector of ones for n points (length n-1).
// For n ≤ 1 it returns an empty, non-nil slice.
func UniformAlpha(n int) []float64 {
	if n <= 1 {
		return []float64{}
	}
	alpha := make([]float64, n-1)

	var i int
	for i = range alpha {
		alpha[i] = 1
	}

	return alpha
}
