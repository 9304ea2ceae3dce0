package report

import "github.com/katalvlaran/antcolony/aco"

// multi forwards every callback to each observer in order.
type multi []aco.Observer

// Multi combines observers into one. Nil entries are dropped; with no
// remaining observers Multi returns nil, which the engine accepts.
// All observers receive the same Snapshot value.
func Multi(obs ...aco.Observer) aco.Observer {
	var out multi
	for _, o := range obs {
		if o != nil {
			out = append(out, o)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	}

	return out
}

func (m multi) OnIterationComplete(s aco.Snapshot) {
	for _, o := range m {
		o.OnIterationComplete(s)
	}
}

func (m multi) OnRunComplete(r aco.Result) {
	for _, o := range m {
		o.OnRunComplete(r)
	}
}
