package render

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
	"sync"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/report"
)

// ErrNoOutputDir is returned when Options.Dir is empty.
var ErrNoOutputDir = errors.New("render: output directory is empty")

// Options configures a FrameWriter.
//
// Dir    – output root, created if missing.
// Size   – frame width and height in pixels (default 480).
// Frames – write one PNG pair per iteration.
// GIF    – assemble paths.gif and pheromone.gif at the end of the run.
// Chart  – write convergence.png at the end of the run.
// Delay  – GIF frame delay in 1/100 s (default 5).
type Options struct {
	Dir    string
	Size   int
	Frames bool
	GIF    bool
	Chart  bool
	Delay  int
}

// DefaultOptions enables every output with 480px frames and a 50ms GIF delay.
func DefaultOptions(dir string) Options {
	return Options{
		Dir:    dir,
		Size:   480,
		Frames: true,
		GIF:    true,
		Chart:  true,
		Delay:  5,
	}
}

// FrameWriter is an aco.Observer that renders every snapshot.
type FrameWriter struct {
	opts   Options
	points []aco.Point
	curve  *report.Recorder

	mu         sync.Mutex
	pathFrames []*image.Paletted
	pmFrames   []*image.Paletted
	err        error
}

var _ aco.Observer = (*FrameWriter)(nil)

// NewFrameWriter prepares the output directories for points.
func NewFrameWriter(points []aco.Point, opts Options) (*FrameWriter, error) {
	if opts.Dir == "" {
		return nil, ErrNoOutputDir
	}
	if opts.Size <= 0 {
		opts.Size = 480
	}
	if opts.Delay <= 0 {
		opts.Delay = 5
	}

	if opts.Frames {
		for _, sub := range []string{"paths", "pheromone"} {
			if err := os.MkdirAll(filepath.Join(opts.Dir, sub), 0o755); err != nil {
				return nil, fmt.Errorf("render: %w", err)
			}
		}
	} else if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return &FrameWriter{
		opts:   opts,
		points: append([]aco.Point(nil), points...),
		curve:  report.NewRecorder(),
	}, nil
}

// Err returns the first rendering error, if any.
func (w *FrameWriter) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.err
}

// OnIterationComplete draws the best path and the pheromone heatmap of s.
func (w *FrameWriter) OnIterationComplete(s aco.Snapshot) {
	w.curve.OnIterationComplete(s)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil || (!w.opts.Frames && !w.opts.GIF) {
		return
	}

	var (
		path = DrawPath(w.points, s.BestTour,
			fmt.Sprintf("Best path (%.4f) at iteration = %d", s.BestLength, s.Iteration), w.opts.Size)
		pm = DrawPheromone(s.Pheromone,
			fmt.Sprintf("Pheromone Matrix at iteration = %d", s.Iteration), w.opts.Size)
	)

	if w.opts.Frames {
		if w.err = savePNG(filepath.Join(w.opts.Dir, "paths", fmt.Sprintf("path_%04d.png", s.Iteration)), path); w.err != nil {
			return
		}
		if w.err = savePNG(filepath.Join(w.opts.Dir, "pheromone", fmt.Sprintf("pm_%04d.png", s.Iteration)), pm); w.err != nil {
			return
		}
	}
	if w.opts.GIF {
		w.pathFrames = append(w.pathFrames, toPaletted(path))
		w.pmFrames = append(w.pmFrames, toPaletted(pm))
	}
}

// OnRunComplete writes the animations and the convergence chart.
func (w *FrameWriter) OnRunComplete(r aco.Result) {
	w.curve.OnRunComplete(r)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return
	}

	if w.opts.GIF {
		if w.err = writeGIF(filepath.Join(w.opts.Dir, "paths.gif"), w.pathFrames, w.opts.Delay); w.err != nil {
			return
		}
		if w.err = writeGIF(filepath.Join(w.opts.Dir, "pheromone.gif"), w.pmFrames, w.opts.Delay); w.err != nil {
			return
		}
		w.pathFrames, w.pmFrames = nil, nil
	}
	if w.opts.Chart {
		xs, ys := w.curve.BestCurve()
		w.err = writeChart(filepath.Join(w.opts.Dir, "convergence.png"), xs, ys)
	}
}

// toPaletted quantizes img to the Plan9 palette with Floyd–Steinberg dithering.
func toPaletted(img image.Image) *image.Paletted {
	b := img.Bounds()
	pal := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(pal, b, img, b.Min)

	return pal
}

// writeGIF encodes frames as a looping animation. No frames ⇒ no file.
func writeGIF(path string, frames []*image.Paletted, delay int) error {
	if len(frames) == 0 {
		return nil
	}

	anim := gif.GIF{
		Image: frames,
		Delay: make([]int, len(frames)),
	}
	for i := range anim.Delay {
		anim.Delay[i] = delay
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err = gif.EncodeAll(f, &anim); err != nil {
		_ = f.Close()
		return fmt.Errorf("render: encode %s: %w", path, err)
	}

	return f.Close()
}
