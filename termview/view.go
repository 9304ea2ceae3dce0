// Package termview draws colony progress on a terminal.
//
// View implements aco.Observer over a tcell.Screen: a header with the run id,
// iteration and best length, the pheromone matrix as a coloured heatmap (two
// cells per entry), and the best-so-far tour beneath it. Matrices larger than
// the screen are clipped.
package termview

import (
	"fmt"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/antcolony/aco"
)

// cellWidth is the number of terminal columns per matrix entry.
const cellWidth = 2

// View renders snapshots onto a tcell.Screen. The caller owns the screen's
// lifecycle (Init/Fini).
type View struct {
	mu     sync.Mutex
	screen tcell.Screen
	runID  string
	done   bool
}

var _ aco.Observer = (*View)(nil)

// New returns a View drawing on s. runID is shown in the header and may be empty.
func New(s tcell.Screen, runID string) *View {
	return &View{screen: s, runID: runID}
}

// Done reports whether OnRunComplete has been received.
func (v *View) Done() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.done
}

// OnIterationComplete redraws the whole screen from s.
func (v *View) OnIterationComplete(s aco.Snapshot) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.screen.Clear()
	v.text(0, 0, tcell.StyleDefault.Bold(true),
		fmt.Sprintf("run %s  iteration %d  best %.6f", v.runID, s.Iteration, s.BestLength))

	var rows int
	if s.Pheromone != nil {
		rows = v.heatmap(2, s)
	}
	v.text(0, 3+rows, tcell.StyleDefault, fmt.Sprintf("best path %v", s.BestTour))
	v.screen.Show()
}

// OnRunComplete prints the final result under the heatmap header.
func (v *View) OnRunComplete(r aco.Result) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.done = true
	v.text(0, 1, tcell.StyleDefault.Foreground(tcell.ColorGreen),
		fmt.Sprintf("done: length %.6f after %d iterations (press any key)", r.BestLength, r.Iterations))
	v.screen.Show()
}

// heatmap draws the pheromone matrix starting at row top and returns the
// number of rows used.
func (v *View) heatmap(top int, s aco.Snapshot) int {
	var (
		w, h   = v.screen.Size()
		m      = s.Pheromone
		lo, hi = m.MinMax()
		i, j   int
		x      int
		val    float64
		style  tcell.Style
	)
	for i = 0; i < m.Rows() && top+i < h; i++ {
		for j = 0; j < m.Cols(); j++ {
			x = j * cellWidth
			if x+cellWidth > w {
				break
			}
			val, _ = m.At(i, j) // in range by construction
			style = tcell.StyleDefault.Background(intensity(val, lo, hi))
			v.screen.SetContent(x, top+i, ' ', nil, style)
			v.screen.SetContent(x+1, top+i, ' ', nil, style)
		}
	}

	return i
}

// text writes str at (x, y) without wrapping.
func (v *View) text(x, y int, style tcell.Style, str string) {
	w, _ := v.screen.Size()
	for _, r := range str {
		if x >= w {
			return
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// intensity maps val ∈ [lo, hi] to a blue shade, brighter for more pheromone.
func intensity(val, lo, hi float64) tcell.Color {
	var t float64
	if hi > lo {
		t = (val - lo) / (hi - lo)
	}
	t = math.Max(0, math.Min(1, t))

	return tcell.NewRGBColor(int32(16+t*40), int32(32+t*120), int32(64+t*191))
}
