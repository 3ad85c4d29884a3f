// Package pipeline provides the load → build → sample → export pipeline.
//
// This package implements the complete path from a manifest file on
// disk to sampled, serializable output, shared by the CLI and any
// embedding program. Centralizing it keeps behavior consistent across
// entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Parse and validate the TOML manifest, build the stack
//  2. Sample: Pivot on the sampling axis and extract curves per point
//  3. Export: Arrange per-point results on a grid and serialize
//
// Each stage can be run independently or as part of the complete
// pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Manifest: "dataset.toml",
//	    Axis:     "time",
//	    GroupBy:  []string{"trial"},
//	    Points:   "0:10:5",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dataviews/pkg/layout"
	"github.com/matzehuels/dataviews/pkg/stack"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Embedders
// =============================================================================

// DefaultPointCount is the number of sample points expanded from a
// range spec without an explicit count.
const DefaultPointCount = 10

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for embedding programs.
type Options struct {
	// Load options
	Manifest string `json:"manifest"`

	// Sample options
	Axis    string   `json:"axis,omitempty"`
	GroupBy []string `json:"group_by,omitempty"`
	Points  string   `json:"points,omitempty"`   // "lo:hi:n" range or comma-separated scalars
	Heading []string `json:"headings,omitempty"` // Table headings to probe instead of points

	// Export options
	Output string `json:"output,omitempty"` // JSON file path; empty keeps results in memory

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`

	points []float64
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Stack is the stack built from the manifest.
	Stack *stack.Stack

	// Samples holds one stack per sample point, in point order.
	// Empty when no sampling was requested.
	Samples []*stack.Stack

	// Grid arranges the sampled stacks side by side.
	// Nil when no sampling was requested.
	Grid *layout.GridLayout

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	KeyCount   int
	PointCount int
	LoadTime   time.Duration
	SampleTime time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Manifest == "" {
		return fmt.Errorf("manifest is required")
	}
	if o.Points != "" && len(o.Heading) > 0 {
		return fmt.Errorf("points and headings are mutually exclusive")
	}
	if o.Points != "" {
		pts, err := ParsePoints(o.Points)
		if err != nil {
			return err
		}
		o.points = pts
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// WantsSampling reports whether the options request a sampling stage.
func (o *Options) WantsSampling() bool {
	return o.Points != "" || len(o.Heading) > 0
}

// SampleOptions translates the pipeline options to the stack sampling
// configuration.
func (o *Options) SampleOptions() stack.SampleOptions {
	return stack.SampleOptions{Axis: o.Axis, GroupBy: o.GroupBy}
}
