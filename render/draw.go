package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/matrix"
)

// margin is the blank border, in pixels, around every frame.
const margin = 32.0

var (
	colorBackground = color.White
	colorPoint      = color.RGBA{R: 220, G: 20, B: 20, A: 255}
	colorPath       = color.RGBA{R: 20, G: 150, B: 40, A: 255}
	colorText       = color.Black

	// gnbu are the colour stops of a green-to-blue sequential scale.
	gnbu = []color.RGBA{
		{R: 247, G: 252, B: 240, A: 255},
		{R: 204, G: 235, B: 197, A: 255},
		{R: 123, G: 204, B: 196, A: 255},
		{R: 43, G: 140, B: 190, A: 255},
		{R: 8, G: 64, B: 129, A: 255},
	}
)

// projector maps point coordinates into the drawable square of a frame.
type projector struct {
	minX, minY float64
	scale      float64
	size       float64
}

// newProjector fits the bounding box of points into size×size minus margins,
// keeping the aspect ratio. A degenerate box (one point, or collinear points
// on an axis) is centred.
func newProjector(points []aco.Point, size int) projector {
	var (
		minX, minY = math.Inf(1), math.Inf(1)
		maxX, maxY = math.Inf(-1), math.Inf(-1)
	)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	var (
		span  = math.Max(maxX-minX, maxY-minY)
		inner = float64(size) - 2*margin
		scale = 1.0
	)
	if span > 0 {
		scale = inner / span
	} else {
		minX, minY = minX-inner/2, minY-inner/2
	}

	return projector{minX: minX, minY: minY, scale: scale, size: float64(size)}
}

// at returns pixel coordinates for p; y grows upwards in point space.
func (pr projector) at(p aco.Point) (float64, float64) {
	return margin + (p.X-pr.minX)*pr.scale, pr.size - margin - (p.Y-pr.minY)*pr.scale
}

// DrawPath renders points and the open path through them.
// Complexity: O(N) drawing operations.
func DrawPath(points []aco.Point, tour aco.Tour, title string, size int) image.Image {
	dc := gg.NewContext(size, size)
	dc.SetColor(colorBackground)
	dc.Clear()

	pr := newProjector(points, size)

	// Path first so the points stay visible on top.
	dc.SetColor(colorPath)
	dc.SetLineWidth(2)
	var i int
	for i = 0; i+1 < len(tour); i++ {
		x1, y1 := pr.at(points[tour[i]])
		x2, y2 := pr.at(points[tour[i+1]])
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	dc.SetColor(colorPoint)
	for _, p := range points {
		x, y := pr.at(p)
		dc.DrawCircle(x, y, 4)
		dc.Fill()
	}

	dc.SetColor(colorText)
	dc.DrawStringAnchored(title, float64(size)/2, margin/2, 0.5, 0.5)

	return dc.Image()
}

// DrawPheromone renders m as a heatmap with each value printed to one decimal.
// Complexity: O(N²) drawing operations.
func DrawPheromone(m *matrix.Dense, title string, size int) image.Image {
	dc := gg.NewContext(size, size)
	dc.SetColor(colorBackground)
	dc.Clear()

	dc.SetColor(colorText)
	dc.DrawStringAnchored(title, float64(size)/2, margin/2, 0.5, 0.5)
	if m == nil || m.Rows() == 0 {
		return dc.Image()
	}

	var (
		n      = m.Rows()
		cellSz = (float64(size) - 2*margin) / float64(n)
		lo, hi = m.MinMax()
		i, j   int
		v      float64
		x, y   float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // in range by construction
			x = margin + float64(j)*cellSz
			y = margin + float64(i)*cellSz

			dc.SetColor(heat(v, lo, hi))
			dc.DrawRectangle(x, y, cellSz, cellSz)
			dc.Fill()

			if cellSz >= 24 {
				dc.SetColor(colorText)
				dc.DrawStringAnchored(fmt.Sprintf("%.1f", v), x+cellSz/2, y+cellSz/2, 0.5, 0.5)
			}
		}
	}

	return dc.Image()
}

// heat maps v ∈ [lo, hi] onto the gnbu scale by linear interpolation.
func heat(v, lo, hi float64) color.RGBA {
	var t float64
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	t = math.Max(0, math.Min(1, t))

	var (
		pos  = t * float64(len(gnbu)-1)
		k    = int(math.Floor(pos))
		frac = pos - float64(k)
	)
	if k >= len(gnbu)-1 {
		return gnbu[len(gnbu)-1]
	}
	a, b := gnbu[k], gnbu[k+1]

	return color.RGBA{
		R: lerp8(a.R, b.R, frac),
		G: lerp8(a.G, b.G, frac),
		B: lerp8(a.B, b.B, frac),
		A: 255,
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// savePNG writes img to path.
func savePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}
