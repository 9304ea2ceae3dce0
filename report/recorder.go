package report

import (
	"sync"

	"github.com/katalvlaran/antcolony/aco"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// IterationStats summarizes the ant tours of one iteration.
type IterationStats struct {
	Iteration int     // 0-based iteration index
	Best      float64 // best-so-far length after this iteration
	Mean      float64 // mean ant tour length
	StdDev    float64 // sample standard deviation (0 for a single ant)
	Min       float64 // shortest ant tour of the iteration
	Max       float64 // longest ant tour of the iteration
}

// Recorder keeps IterationStats for every iteration and the final result.
// It is safe to read from another goroutine while the engine runs.
type Recorder struct {
	mu      sync.RWMutex
	history []IterationStats
	result  *aco.Result
}

var _ aco.Observer = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// OnIterationComplete appends the statistics of s.
// Complexity: O(A).
func (r *Recorder) OnIterationComplete(s aco.Snapshot) {
	st := IterationStats{Iteration: s.Iteration, Best: s.BestLength}
	if len(s.Lengths) > 0 {
		st.Mean, st.StdDev = stat.MeanStdDev(s.Lengths, nil)
		if len(s.Lengths) == 1 {
			st.StdDev = 0 // undefined sample deviation
		}
		st.Min = floats.Min(s.Lengths)
		st.Max = floats.Max(s.Lengths)
	}

	r.mu.Lock()
	r.history = append(r.history, st)
	r.mu.Unlock()
}

// OnRunComplete stores a copy of res.
func (r *Recorder) OnRunComplete(res aco.Result) {
	res.BestTour = res.BestTour.Clone()

	r.mu.Lock()
	r.result = &res
	r.mu.Unlock()
}

// History returns a copy of all recorded iteration statistics.
func (r *Recorder) History() []IterationStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]IterationStats(nil), r.history...)
}

// BestCurve returns iteration indices and best-so-far lengths, ready for plotting.
func (r *Recorder) BestCurve() (xs, ys []float64) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	xs = make([]float64, len(r.history))
	ys = make([]float64, len(r.history))
	for i, st := range r.history {
		xs[i] = float64(st.Iteration)
		ys[i] = st.Best
	}

	return xs, ys
}

// Result returns the final result and whether the run has completed.
func (r *Recorder) Result() (aco.Result, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.result == nil {
		return aco.Result{}, false
	}
	res := *r.result
	res.BestTour = res.BestTour.Clone()

	return res, true
}
