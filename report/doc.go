// Package report provides console and in-memory collaborators for the
// colony engine.
//
//   - LogObserver - one log line per iteration plus the final result,
//     optionally dumping the pheromone matrix.
//   - Recorder    - keeps per-iteration statistics (best, mean, std-dev,
//     min, max of the ant tour lengths) for charts and tests.
//   - Multi       - fans one engine callback out to several observers.
//
// All types implement aco.Observer. None of them can fail the run.
package report
