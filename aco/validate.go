package aco

import (
	"fmt"
	"math"
)

// Validate reports whether points and opts could drive an Engine, applying
// opts on top of DefaultOptions exactly as NewEngine does. It allocates no
// matrices.
//
// Errors: ErrInvalidConfiguration (wrapped with the failing rule).
func Validate(points []Point, opts ...Option) error {
	var o = DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return validateConfig(points, o)
}

// validateConfig checks points and Options before any allocation.
//
// Rules (all reported as ErrInvalidConfiguration with context):
//   - len(points) ≥ 1 and every coordinate finite;
//   - Ants ≥ 1, Iterations ≥ 1;
//   - len(Alpha) == N-1 (N = 1 ⇒ empty alpha);
//   - every alpha entry finite and ≥ 0.
//
// Complexity: O(N).
func validateConfig(points []Point, opts Options) error {
	var n = len(points)
	if n == 0 {
		return fmt.Errorf("%w: no points", ErrInvalidConfiguration)
	}

	var (
		i int
		p Point
	)
	for i, p = range points {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("%w: point %d has non-finite coordinates (%g, %g)",
				ErrInvalidConfiguration, i, p.X, p.Y)
		}
	}

	if opts.Ants < 1 {
		return fmt.Errorf("%w: ants must be >= 1, got %d", ErrInvalidConfiguration, opts.Ants)
	}
	if opts.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be >= 1, got %d", ErrInvalidConfiguration, opts.Iterations)
	}

	if len(opts.Alpha) != n-1 {
		return fmt.Errorf("%w: alpha length must be %d for %d points, got %d",
			ErrInvalidConfiguration, n-1, n, len(opts.Alpha))
	}

	var a float64
	for i, a = range opts.Alpha {
		if !finite(a) || a < 0 {
			return fmt.Errorf("%w: alpha[%d] must be finite and >= 0, got %g",
				ErrInvalidConfiguration, i, a)
		}
	}

	return nil
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
