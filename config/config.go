// Package config loads colony run configurations from YAML.
//
// A RunConfig describes the points, the colony parameters, and which
// collaborator outputs to produce:
//
//	points: [[0.62, 0.70], [0.38, 0.22], [0.72, 0.34]]
//	ants: 10
//	iterations: 100
//	alpha: [1, 1]        # optional, defaults to N-1 ones
//	seed: 42             # optional, 0 = default deterministic stream
//	output:
//	  dir: plots
//	  frames: true
//	  gif: true
//	  chart: true
//	  frame_delay: 5
//	  size: 480
//
// Unknown keys are rejected so typos surface early.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/render"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for configurations that cannot drive a run.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output selects the rendering artifacts.
type Output struct {
	Dir        string `yaml:"dir"`
	Frames     bool   `yaml:"frames"`
	GIF        bool   `yaml:"gif"`
	Chart      bool   `yaml:"chart"`
	FrameDelay int    `yaml:"frame_delay"`
	Size       int    `yaml:"size"`
}

// RunConfig is the file form of a colony run.
type RunConfig struct {
	Coords     [][]float64 `yaml:"points"`
	Ants       int         `yaml:"ants"`
	Iterations int         `yaml:"iterations"`
	Alpha      []float64   `yaml:"alpha,omitempty"`
	Seed       int64       `yaml:"seed"`
	Output     Output      `yaml:"output"`
}

// referenceCoords is the ten-point instance used when no file is given.
var referenceCoords = [][]float64{
	{0.62005352, 0.7051838},
	{0.38730963, 0.22982921},
	{0.72145019, 0.34813559},
	{0.69624767, 0.74909976},
	{0.21898804, 0.1450391},
	{0.91504129, 0.91483308},
	{0.43181647, 0.09180593},
	{0.94606053, 0.5478663},
	{0.27562911, 0.68909373},
	{0.10469777, 0.49994994},
}

// Default returns the reference run: ten points, 10 ants, 100 iterations,
// uniform alpha, frames, animations and chart under "plots".
func Default() *RunConfig {
	def := aco.DefaultOptions()
	coords := make([][]float64, len(referenceCoords))
	for i, c := range referenceCoords {
		coords[i] = append([]float64(nil), c...)
	}

	return &RunConfig{
		Coords:     coords,
		Ants:       def.Ants,
		Iterations: def.Iterations,
		Output: Output{
			Dir:        "plots",
			Frames:     true,
			GIF:        true,
			Chart:      true,
			FrameDelay: 5,
			Size:       480,
		},
	}
}

// Load reads and parses the YAML file at path.
func Load(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
// Keys absent from data keep their default values.
func Parse(data []byte) (*RunConfig, error) {
	cfg := Default()
	cfg.Coords = nil // points are never merged with the reference set

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the structural rules a YAML file can violate and then
// hands the colony rules (ant and iteration counts, alpha, finiteness) to
// aco.Validate. Colony failures wrap both ErrInvalidConfig and
// aco.ErrInvalidConfiguration.
func (c *RunConfig) Validate() error {
	if len(c.Coords) == 0 {
		return fmt.Errorf("%w: no points", ErrInvalidConfig)
	}
	for i, p := range c.Coords {
		if len(p) != 2 {
			return fmt.Errorf("%w: point %d has %d coordinates, want 2", ErrInvalidConfig, i, len(p))
		}
	}
	if c.Output.FrameDelay < 0 || c.Output.Size < 0 {
		return fmt.Errorf("%w: frame_delay and size must be >= 0", ErrInvalidConfig)
	}
	if err := aco.Validate(c.Points(), c.Options()...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Points converts the coordinate pairs to aco points.
func (c *RunConfig) Points() []aco.Point {
	pts := make([]aco.Point, len(c.Coords))
	for i, p := range c.Coords {
		pts[i] = aco.Point{X: p[0], Y: p[1]}
	}

	return pts
}

// Options returns the engine options. A missing alpha becomes uniform.
func (c *RunConfig) Options() []aco.Option {
	alpha := c.Alpha
	if alpha == nil {
		alpha = aco.UniformAlpha(len(c.Coords))
	}

	return []aco.Option{
		aco.WithAnts(c.Ants),
		aco.WithIterations(c.Iterations),
		aco.WithAlpha(alpha),
		aco.WithSeed(c.Seed),
	}
}

// RenderOptions returns the FrameWriter options rooted at dir.
func (c *RunConfig) RenderOptions(dir string) render.Options {
	return render.Options{
		Dir:    dir,
		Size:   c.Output.Size,
		Frames: c.Output.Frames,
		GIF:    c.Output.GIF,
		Chart:  c.Output.Chart,
		Delay:  c.Output.FrameDelay,
	}
}

// Rendering reports whether any file output is enabled.
func (c *RunConfig) Rendering() bool {
	return c.Output.Frames || c.Output.GIF || c.Output.Chart
}

// Marshal encodes c back to YAML.
func (c *RunConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
