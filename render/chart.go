package render

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"
)

// writeChart plots best-so-far length against iteration. Fewer than two
// points cannot form a line and produce no file.
func writeChart(path string, xs, ys []float64) error {
	if len(xs) < 2 {
		return nil
	}

	graph := chart.Chart{
		Title: "Best path length",
		XAxis: chart.XAxis{Name: "iteration"},
		YAxis: chart.YAxis{Name: "length"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "best",
				XValues: xs,
				YValues: ys,
			},
		},
	}

	// A run that never improves has a flat curve; go-chart rejects a zero range.
	if lo, hi := floats.Min(ys), floats.Max(ys); hi <= lo {
		graph.YAxis.Range = &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err = graph.Render(chart.PNG, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("render: chart %s: %w", path, err)
	}

	return f.Close()
}
