package aco

// Observer receives the engine's progress. Implementations render, log, or
// record; the engine never inspects what they do.
type Observer interface {
	// OnIterationComplete is called once per iteration, after reinforcement.
	OnIterationComplete(s Snapshot)

	// OnRunComplete is called once when Run finishes without error.
	OnRunComplete(r Result)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Iteration func(Snapshot)
	Complete  func(Result)
}

var _ Observer = ObserverFuncs{}

// OnIterationComplete calls f.Iteration when set.
func (f ObserverFuncs) OnIterationComplete(s Snapshot) {
	if f.Iteration != nil {
		f.Iteration(s)
	}
}

// OnRunComplete calls f.Complete when set.
func (f ObserverFuncs) OnRunComplete(r Result) {
	if f.Complete != nil {
		f.Complete(r)
	}
}
