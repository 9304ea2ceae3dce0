package render

import (
	"testing"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/stretchr/testify/assert"
)

// TestHeat_Endpoints maps the range ends onto the first and last colour stop.
func TestHeat_Endpoints(t *testing.T) {
	assert.Equal(t, gnbu[0], heat(1, 1, 5))
	assert.Equal(t, gnbu[len(gnbu)-1], heat(5, 1, 5))
	assert.Equal(t, gnbu[2], heat(3, 1, 5))
	assert.Equal(t, gnbu[0], heat(7, 7, 7)) // flat matrix
}

// TestProjector_FlipsY keeps larger y values higher on the frame.
func TestProjector_FlipsY(t *testing.T) {
	pts := []aco.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}
	pr := newProjector(pts, 200)

	x0, y0 := pr.at(pts[0])
	x1, y1 := pr.at(pts[1])
	assert.InDelta(t, margin, x0, 1e-9)
	assert.InDelta(t, 200-margin, x1, 1e-9)
	assert.Greater(t, y0, y1)
}
