// Command antcolony runs an ant colony over a set of 2D points and reports
// the shortest open tour found.
//
// Usage:
//
//	antcolony [-config run.yaml] [-ants 10] [-iterations 100] [-seed 0]
//	          [-out plots] [-frames] [-gif] [-chart] [-tui] [-v] [-logfile]
//
// Without -config the ten-point reference instance is used. Flags that are
// set explicitly override values from the file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/gofrs/uuid"
	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/config"
	"github.com/katalvlaran/antcolony/render"
	"github.com/katalvlaran/antcolony/report"
	"github.com/katalvlaran/antcolony/termview"
)

const logFileName = "antcolony.log"

// cliFlags holds the parsed command line.
type cliFlags struct {
	configPath string
	ants       int
	iterations int
	seed       int64
	out        string
	frames     bool
	gif        bool
	chart      bool
	tui        bool
	verbose    bool
	logFile    bool
	flat       bool
	set        map[string]bool // names of flags given explicitly
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "antcolony: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses args into cliFlags.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, error) {
	f := &cliFlags{set: map[string]bool{}}
	fs := flag.NewFlagSet("antcolony", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&f.configPath, "config", "", "YAML run configuration")
	fs.IntVar(&f.ants, "ants", 0, "ants per iteration")
	fs.IntVar(&f.iterations, "iterations", 0, "number of iterations")
	fs.Int64Var(&f.seed, "seed", 0, "random seed (0 = default stream)")
	fs.StringVar(&f.out, "out", "", "output directory for images")
	fs.BoolVar(&f.frames, "frames", false, "write per-iteration PNG frames")
	fs.BoolVar(&f.gif, "gif", false, "write GIF animations")
	fs.BoolVar(&f.chart, "chart", false, "write the convergence chart")
	fs.BoolVar(&f.tui, "tui", false, "show live pheromone heatmap in the terminal")
	fs.BoolVar(&f.verbose, "v", false, "log every ant tour and the pheromone matrix")
	fs.BoolVar(&f.logFile, "logfile", false, "log to <out>/antcolony.log instead of stderr")
	fs.BoolVar(&f.flat, "flat", false, "write outputs directly into -out, without a run-id sub-directory")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, nil
}

// resolveConfig loads the file (or the defaults) and applies explicit flags.
func resolveConfig(f *cliFlags) (*config.RunConfig, error) {
	var (
		cfg = config.Default()
		err error
	)
	if f.configPath != "" {
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}

	if f.set["ants"] {
		cfg.Ants = f.ants
	}
	if f.set["iterations"] {
		cfg.Iterations = f.iterations
	}
	if f.set["seed"] {
		cfg.Seed = f.seed
	}
	if f.set["out"] {
		cfg.Output.Dir = f.out
	}
	if f.set["frames"] {
		cfg.Output.Frames = f.frames
	}
	if f.set["gif"] {
		cfg.Output.GIF = f.gif
	}
	if f.set["chart"] {
		cfg.Output.Chart = f.chart
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setupLogging routes the standard logger to stderr or to a file under dir.
// It returns the opened file, if any, for the caller to close.
func setupLogging(toFile bool, dir string, stderr io.Writer, prefix string) (*os.File, error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetPrefix(prefix)
	if !toFile {
		log.SetOutput(stderr)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	lf, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(lf)

	return lf, nil
}

// run is main without os.Exit, for tests.
func run(args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(f)
	if err != nil {
		return err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}
	runID := id.String()

	outDir := cfg.Output.Dir
	if !f.flat {
		outDir = filepath.Join(outDir, runID)
	}

	// The terminal view owns the screen, so logs go to the file.
	lf, err := setupLogging(f.logFile || f.tui, outDir, stderr, "["+runID[:8]+"] ")
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if lf != nil {
		defer func() {
			log.SetOutput(stderr) // nothing may write to the closed file
			_ = lf.Close()
		}()
	}

	points := cfg.Points()
	log.Printf("starting colony: %d points, %d ants, %d iterations, seed %d", len(points), cfg.Ants, cfg.Iterations, cfg.Seed)

	var (
		writer *render.FrameWriter
		view   *termview.View
		screen tcell.Screen
	)
	if cfg.Rendering() {
		if writer, err = render.NewFrameWriter(points, cfg.RenderOptions(outDir)); err != nil {
			return err
		}
	}
	if f.tui {
		if screen, err = tcell.NewScreen(); err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		if err = screen.Init(); err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		defer screen.Fini()
		view = termview.New(screen, runID)
	}

	// Nil concrete pointers must not reach Multi as non-nil interfaces.
	observers := []aco.Observer{report.NewLogObserver(nil, f.verbose)}
	if writer != nil {
		observers = append(observers, writer)
	}
	if view != nil {
		observers = append(observers, view)
	}
	obs := report.Multi(observers...)

	res, err := aco.Solve(points, obs, cfg.Options()...)
	if err != nil {
		var de *aco.DegenerateError
		if errors.As(err, &de) {
			log.Printf("run aborted at iteration %d, ant %d, point %d", de.Iteration, de.Ant, de.Current)
		}
		return err
	}

	if view != nil {
		screen.PollEvent() // wait for a key before restoring the terminal
	}

	fmt.Fprintf(stdout, "Best path = %v with length = %v\n", []int(res.BestTour), res.BestLength)

	// The colony result stands; a failed image still fails the command.
	if writer != nil {
		if err = writer.Err(); err != nil {
			log.Printf("rendering failed: %v", err)
			return err
		}
		log.Printf("images written to %s", outDir)
	}

	return nil
}
