// Package pkg provides the core libraries for dataviews, a dimension-indexed
// container and composition algebra for visualizable data.
//
// # Overview
//
// Dataviews organizes views (curves, histograms, tables, annotations, and
// overlays) into stacks keyed by tuples of dimension values. The pkg
// directory is organized into three main areas:
//
//  1. [dims], [view], [stack] - Domain logic (dimensions, views, the container
//     and its algebra)
//  2. [manifest], [analysis], [layout], [export] - Supporting layers (loading,
//     statistics, arrangement, serialization)
//  3. [pipeline] - Orchestration (load → sample → export)
//
// # Architecture
//
// The typical data flow through dataviews:
//
//	TOML manifest
//	         ↓
//	    [manifest] package (load + validate + build)
//	         ↓
//	    [stack] package (compose, split, sample)
//	         ↓
//	    [layout] / [export] packages (arrange + serialize)
//	         ↓
//	    JSON output
//
// # Quick Start
//
// Load a manifest, sample it along an axis, and export the result:
//
//	import (
//	    "github.com/matzehuels/dataviews/pkg/export"
//	    "github.com/matzehuels/dataviews/pkg/manifest"
//	    "github.com/matzehuels/dataviews/pkg/stack"
//	)
//
//	// 1. Load and build
//	m, _ := manifest.Load("dataset.toml")
//	s, _ := m.Build()
//
//	// 2. Pivot into per-trial samples, one stack per point
//	samples, _ := s.Sample([]any{0.0, 0.5, 1.0}, stack.SampleOptions{
//	    Axis:    "time",
//	    GroupBy: []string{"trial"},
//	})
//
//	// 3. Export
//	_ = export.WriteStackFile(samples[0], "out.json")
//
// # Main Packages
//
// ## Core Domain Logic
//
// [dims] - Dimension declarations and keys. A key is a tuple of values, one
// per dimension, with canonical forms so numerically equal values match.
//
// [view] - Atomic view types (Curve, Histogram, Table, Annotation) and the
// Overlay composite, plus the element-wise Mul pairing between views.
//
// [stack] - The dimension-indexed container. Insert merges colliding entries
// into overlays; Mul takes the union-key product of two stacks; Split and
// Sample pivot along a declared axis. TableStack specializes the container
// for tabular entries with heading-set enforcement.
//
// ## Supporting Layers
//
// [manifest] - TOML manifest loading and validation. A manifest declares
// dimensions and entries and builds into a Stack or TableStack.
//
// [analysis] - Per-entry transforms over a stack and summary statistics
// (mean, median, min, max, stddev) collected into a TableStack.
//
// [layout] - Grid arrangement of stacks and views for side-by-side display.
//
// [export] - JSON serialization of stacks, views, and grids.
//
// ## Infrastructure
//
// [pipeline] - Complete load → sample → export pipeline used by the CLI.
// Ensures consistent behavior across all entry points.
//
// # Common Workflows
//
// Compose two stacks over the union of their keys:
//
//	product, _ := stack.Mul(left, right)
//
// Reduce a stack along one axis, keeping the views grouped per reduced key:
//
//	split, _ := s.SplitAxis("time")
//	for _, key := range split.ReducedKeys() {
//	    group, _ := split.Group(key)
//	    fmt.Println(key, len(group))
//	}
//
// Summarize entries into a statistics table:
//
//	described, _ := analysis.Describe(s)
//	headings, _ := described.HeadingTypes()
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/stack/...    # Specific package
//	go test -run Example       # Examples only
//
// [dims]: https://pkg.go.dev/github.com/matzehuels/dataviews/pkg/dims
// [view]: https://pkg.go.dev/github.com/matzehuels/dataviews/pkg/view
// [stack]: https://pkg.go.dev/github.com/matzehuels/dataviews/pkg/stack
// [manifest]: https://pkg.go.dev/github.com/matzehuels/dataviews/pkg/manifest
// [analysis]: https://pkg.go.dev/github.com/matzehuels/dataviews/pkg/analysis
// [layout]: https://pkg.go.dev/github.com/matzehuels/dataviews/pkg/layout
// [export]: https://pkg.go.dev/github.com/matzehuels/dataviews/pkg/export
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/dataviews/pkg/pipeline
package pkg
