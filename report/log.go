package report

import (
	"log"

	"github.com/katalvlaran/antcolony/aco"
	"gonum.org/v1/gonum/floats"
)

// LogObserver writes progress through a *log.Logger.
type LogObserver struct {
	logger  *log.Logger
	verbose bool
}

var _ aco.Observer = (*LogObserver)(nil)

// NewLogObserver returns a LogObserver writing to l; nil selects log.Default().
// In verbose mode every ant tour and the pheromone matrix are logged as well.
func NewLogObserver(l *log.Logger, verbose bool) *LogObserver {
	if l == nil {
		l = log.Default()
	}

	return &LogObserver{logger: l, verbose: verbose}
}

// OnIterationComplete logs the best-so-far length and the iteration minimum.
func (o *LogObserver) OnIterationComplete(s aco.Snapshot) {
	if o.verbose {
		for ant, tour := range s.Tours {
			o.logger.Printf("iteration %d: ant %d length %.6f path %v", s.Iteration, ant, s.Lengths[ant], tour)
		}
	}

	var iterMin float64
	if len(s.Lengths) > 0 {
		iterMin = floats.Min(s.Lengths)
	}
	o.logger.Printf("iteration %d: best %.6f (iteration min %.6f)", s.Iteration, s.BestLength, iterMin)

	if o.verbose {
		o.logger.Printf("iteration %d: pheromone matrix:\n%s", s.Iteration, s.Pheromone)
	}
}

// OnRunComplete logs the final best tour.
func (o *LogObserver) OnRunComplete(r aco.Result) {
	o.logger.Printf("best path = %v with length = %.6f after %d iterations", r.BestTour, r.BestLength, r.Iterations)
}
