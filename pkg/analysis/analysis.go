package analysis

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/matzehuels/dataviews/pkg/dims"
	"github.com/matzehuels/dataviews/pkg/stack"
	"github.com/matzehuels/dataviews/pkg/view"
)

// ErrNoData is returned when an entry holds no values to analyze.
var ErrNoData = errors.New("entry holds no data")

// Operation maps one stack entry to its replacement. Operations see
// entries independently and must not rely on iteration order.
type Operation func(key dims.Key, v view.View) (view.View, error)

// Apply runs op over every entry of s and assembles the results into a
// new stack over the same dimensions, keyed identically. The input is
// untouched; the first failing entry aborts the whole application.
func Apply(s *stack.Stack, op Operation) (*stack.Stack, error) {
	out := stack.New(s.Dimensions(), stack.WithTitle(s.TitleFormat()), stack.WithStyle(s.Style()))
	for _, it := range s.Items() {
		v, err := op(it.Key, it.View)
		if err != nil {
			return nil, fmt.Errorf("entry %v: %w", it.Key, err)
		}
		if err := out.Put(it.Key, v); err != nil {
			return nil, fmt.Errorf("entry %v: %w", it.Key, err)
		}
	}
	return out, nil
}

// DescribeHeadings lists the statistics Describe computes, in table
// order.
var DescribeHeadings = []string{"mean", "median", "min", "max", "stddev"}

// Describe reduces every entry of s to a table of descriptive
// statistics over the entry's values: a curve contributes its y
// values, a histogram its bin values, an overlay the union of its
// members' values. The result is a table stack keyed like the input.
func Describe(s *stack.Stack) (*stack.TableStack, error) {
	ts := stack.NewTableStack(s.Dimensions(), stack.WithStyle(s.Style()))
	for _, it := range s.Items() {
		data, err := extract(it.View)
		if err != nil {
			return nil, fmt.Errorf("entry %v: %w", it.Key, err)
		}
		tbl, err := describeTable(data, it.View.Axes().Label)
		if err != nil {
			return nil, fmt.Errorf("entry %v: %w", it.Key, err)
		}
		if err := ts.Put(it.Key, tbl); err != nil {
			return nil, fmt.Errorf("entry %v: %w", it.Key, err)
		}
	}
	return ts, nil
}

func describeTable(data []float64, label string) (*view.Table, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	sd := stats.Float64Data(data)

	values := make([]any, 0, len(DescribeHeadings))
	for _, fn := range []func() (float64, error){sd.Mean, sd.Median, sd.Min, sd.Max, sd.StandardDeviation} {
		v, err := fn()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return view.NewTable(DescribeHeadings, values, view.Axes{Label: label})
}

func extract(v view.View) ([]float64, error) {
	switch x := v.(type) {
	case *view.Curve:
		out := make([]float64, len(x.Points))
		for i, p := range x.Points {
			out[i] = p.Y
		}
		return out, nil
	case *view.Histogram:
		return append([]float64(nil), x.Values...), nil
	case *view.Overlay:
		var out []float64
		for _, layer := range x.Layers() {
			if layer.Kind() == view.KindAnnotation {
				continue
			}
			vals, err := extract(layer)
			if err != nil {
				return nil, err
			}
			out = append(out, vals...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot describe %s views", v.Kind())
	}
}
