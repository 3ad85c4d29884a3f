package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dataviews/pkg/export"
	"github.com/matzehuels/dataviews/pkg/layout"
	"github.com/matzehuels/dataviews/pkg/manifest"
	"github.com/matzehuels/dataviews/pkg/stack"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → build → sample → export pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	s, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stack = s
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.KeyCount = s.Len()

	opts.Logger.Info("built stack",
		"keys", s.Len(),
		"type", s.Type(),
		"dimensions", s.DimensionNames(),
		"duration", result.Stats.LoadTime)

	if !opts.WantsSampling() {
		return result, r.export(result, opts)
	}

	// Stage 2: Sample
	sampleStart := time.Now()
	samples, err := r.Sample(ctx, s, opts)
	if err != nil {
		return nil, fmt.Errorf("sample: %w", err)
	}
	result.Samples = samples
	result.Stats.SampleTime = time.Since(sampleStart)
	result.Stats.PointCount = len(samples)

	grid, err := layout.SideBySide(samples)
	if err != nil {
		return nil, fmt.Errorf("sample: %w", err)
	}
	result.Grid = grid

	opts.Logger.Info("sampled stack",
		"points", len(samples),
		"duration", result.Stats.SampleTime)

	return result, r.export(result, opts)
}

// Load builds the stack declared by the options' manifest.
func (r *Runner) Load(ctx context.Context, opts Options) (*stack.Stack, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, err := manifest.Load(opts.Manifest)
	if err != nil {
		return nil, err
	}
	return m.Build()
}

// LoadTableStack builds a TableStack from the options' manifest. It
// fails for manifests holding curves or histograms.
func (r *Runner) LoadTableStack(ctx context.Context, opts Options) (*stack.TableStack, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, err := manifest.Load(opts.Manifest)
	if err != nil {
		return nil, err
	}
	return m.BuildTableStack()
}

// Sample runs the sampling stage over an already built stack. Point
// specs probe curves and histograms; heading lists probe tables.
func (r *Runner) Sample(ctx context.Context, s *stack.Stack, opts Options) ([]*stack.Stack, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(opts.Heading) > 0 {
		ts, err := r.LoadTableStack(ctx, opts)
		if err != nil {
			return nil, err
		}
		return ts.Sample(opts.Heading, opts.SampleOptions())
	}

	points := make([]any, len(opts.points))
	for i, p := range opts.points {
		points[i] = p
	}
	return s.Sample(points, opts.SampleOptions())
}

// export writes the result to opts.Output when set: the grid for
// sampled runs, the bare stack otherwise.
func (r *Runner) export(result *Result, opts Options) error {
	if opts.Output == "" {
		return nil
	}
	var err error
	if result.Grid != nil {
		err = export.WriteGridFile(result.Grid, opts.Output)
	} else {
		err = export.WriteStackFile(result.Stack, opts.Output)
	}
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	opts.Logger.Info("wrote output", "path", opts.Output)
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
