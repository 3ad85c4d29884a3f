package stack

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/matzehuels/dataviews/pkg/dims"
	"github.com/matzehuels/dataviews/pkg/view"
)

// Labeller derives the axis and value labels of sampled curves. The
// default capitalizes the axis dimension's name and renders the sample
// point with fmt.Sprint.
type Labeller interface {
	// AxisLabel is the x-axis label of curves sampled along d.
	AxisLabel(d dims.Dimension) string
	// ValueLabel is the y-axis label of curves sampled at point.
	ValueLabel(point any) string
}

type defaultLabeller struct{}

func (defaultLabeller) AxisLabel(d dims.Dimension) string { return capitalize(d.Name) }
func (defaultLabeller) ValueLabel(point any) string       { return fmt.Sprint(point) }

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// SampleOptions configures [Stack.Sample].
type SampleOptions struct {
	// Axis is the dimension the sampled curves run along. Optional for
	// one-dimensional stacks, required otherwise.
	Axis string

	// GroupBy lists dimensions that produce overlays instead of output
	// keys: entries differing only in grouped dimensions compose into
	// one overlay, with the grouped values as the curve legend label.
	GroupBy []string

	// Labeller overrides the default label derivation.
	Labeller Labeller
}

// Sample projects the stack to curves of sampled scalars along one
// dimension. For each requested point and each reduced key of
// [Stack.SplitAxis], a curve is built from the ordered (axis value,
// sampled scalar) pairs, where the scalar is extracted from each view
// through its sampling contract at that point. Output keys drop the
// grouped dimensions; colliding output keys compose into overlays.
//
// One output stack is produced per point, in point order. Arranging
// multiple stacks side by side is the layout package's concern.
func (s *Stack) Sample(points []any, opts SampleOptions) ([]*Stack, error) {
	axis := opts.Axis
	if axis == "" {
		if len(s.dimensions) != 1 {
			return nil, fmt.Errorf("%w: stack has dimensions %v", ErrAxisRequired, s.DimensionNames())
		}
		axis = s.dimensions[0].Name
	}
	if slices.Contains(opts.GroupBy, axis) {
		return nil, fmt.Errorf("%w: %q", ErrAxisGrouped, axis)
	}
	for _, g := range opts.GroupBy {
		if _, err := dims.Index(s.dimensions, g); err != nil {
			return nil, err
		}
	}
	labeller := opts.Labeller
	if labeller == nil {
		labeller = defaultLabeller{}
	}

	split, err := s.SplitAxis(axis)
	if err != nil {
		return nil, err
	}

	// Cyclic curves inherit their period from the axis dimension.
	var cyclic *float64
	if split.Axis.Cyclic && split.Axis.Range != nil {
		period := split.Axis.Range[1]
		cyclic = &period
	}

	groupIdx := make([]int, len(opts.GroupBy))
	for i, g := range opts.GroupBy {
		groupIdx[i], _ = dims.Index(split.Dimensions, g)
	}
	outDims := make([]dims.Dimension, 0, len(split.Dimensions)-len(groupIdx))
	for i, d := range split.Dimensions {
		if !slices.Contains(groupIdx, i) {
			outDims = append(outDims, d)
		}
	}

	outs := make([]*Stack, 0, len(points))
	for _, p := range points {
		out := New(outDims, WithTitle(s.titleFormat), WithStyle(s.style))
		for _, rk := range split.ReducedKeys() {
			group, _ := split.Group(rk)
			curve, err := sampleCurve(group, p, split.Axis, rk, split.Dimensions, groupIdx, labeller, cyclic)
			if err != nil {
				return nil, err
			}
			outKey := make(dims.Key, 0, len(outDims))
			for i, v := range rk {
				if !slices.Contains(groupIdx, i) {
					outKey = append(outKey, v)
				}
			}
			if err := out.Insert(outKey, curve); err != nil {
				return nil, err
			}
		}
		outs = append(outs, out)
	}
	return outs, nil
}

func sampleCurve(group []AxisSample, point any, axis dims.Dimension, rk dims.Key,
	reducedDims []dims.Dimension, groupIdx []int, labeller Labeller, cyclic *float64) (*view.Curve, error) {

	pts := make([]view.Point, 0, len(group))
	for _, smp := range group {
		x, ok := dims.ToFloat(smp.Value)
		if !ok {
			return nil, fmt.Errorf("%w: %q has value %v", ErrAxisNotNumeric, axis.Name, smp.Value)
		}
		sampler, ok := smp.View.(view.Sampler)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotSampleable, smp.View.Kind())
		}
		y, err := sampler.Sample(point)
		if err != nil {
			return nil, err
		}
		pts = append(pts, view.Point{X: x, Y: y})
	}

	var labelParts []string
	for _, i := range groupIdx {
		labelParts = append(labelParts, dims.FormatValue(reducedDims[i], rk[i]))
	}
	return &view.Curve{
		Meta: view.Axes{
			Label:  strings.Join(labelParts, ", "),
			XLabel: labeller.AxisLabel(axis),
			YLabel: labeller.ValueLabel(point),
		},
		Points:      pts,
		CyclicRange: cyclic,
	}, nil
}
