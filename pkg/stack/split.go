package stack

import (
	"fmt"
	"slices"

	"github.com/matzehuels/dataviews/pkg/dims"
	"github.com/matzehuels/dataviews/pkg/view"
)

// Split decomposes a stack of overlays into parallel stacks, one per
// overlay position, each keyed identically to the original. Entries
// must agree on member count or Split fails with ErrRaggedOverlay. An
// empty stack, or one whose content type is not Overlay, returns a
// single-element slice holding a copy of itself. Member views keep
// their existing titles and styles.
func (s *Stack) Split() ([]*Stack, error) {
	if s.Len() == 0 || s.Type() != view.KindOverlay {
		return []*Stack{s.clone(true)}, nil
	}

	width := -1
	for _, it := range s.Items() {
		o, ok := it.View.(*view.Overlay)
		if !ok {
			return nil, fmt.Errorf("%w: entry at %v is %s", ErrRaggedOverlay, it.Key, it.View.Kind())
		}
		if width == -1 {
			width = o.Len()
		} else if o.Len() != width {
			return nil, fmt.Errorf("%w: %d members at %v, expected %d", ErrRaggedOverlay, o.Len(), it.Key, width)
		}
	}

	out := make([]*Stack, width)
	for i := range out {
		out[i] = New(s.dimensions, WithTitle(s.titleFormat), WithStyle(s.style))
	}
	for _, it := range s.Items() {
		o := it.View.(*view.Overlay)
		for i := 0; i < width; i++ {
			out[i].rawSet(it.Key, o.At(i))
		}
	}
	return out, nil
}

// AxisSample is one (axis value, view) pair of an axis split.
type AxisSample struct {
	Value any
	View  view.View
}

// AxisSplit is the result of pivoting a stack on one dimension: a
// sparse, ordered mapping from reduced keys (the original keys with
// the axis component removed) to the (axis value, view) pairs that
// actually existed, sorted by ascending axis value. No entries are
// synthesized for missing combinations.
type AxisSplit struct {
	// Axis is the dimension the stack was pivoted on.
	Axis dims.Dimension
	// Dimensions is the reduced dimension list.
	Dimensions []dims.Dimension

	keys   []dims.Key // reduced keys, first-seen order
	groups map[string][]AxisSample
}

// ReducedKeys returns the reduced keys in first-seen order.
func (as *AxisSplit) ReducedKeys() []dims.Key {
	out := make([]dims.Key, len(as.keys))
	for i, k := range as.keys {
		out[i] = k.Clone()
	}
	return out
}

// Group returns the (axis value, view) pairs for a reduced key, in
// ascending axis-value order.
func (as *AxisSplit) Group(key dims.Key) ([]AxisSample, bool) {
	g, ok := as.groups[key.Canonical()]
	return g, ok
}

// Len reports the number of distinct reduced keys.
func (as *AxisSplit) Len() int { return len(as.keys) }

// SplitAxis pivots the stack on the named dimension. Every existing
// key (axis value, reduced key) contributes one pair to its reduced
// key's group; the cost is linear in the number of existing keys.
func (s *Stack) SplitAxis(axis string) (*AxisSplit, error) {
	idx, err := dims.Index(s.dimensions, axis)
	if err != nil {
		return nil, err
	}

	reduced := make([]dims.Dimension, 0, len(s.dimensions)-1)
	reduced = append(reduced, s.dimensions[:idx]...)
	reduced = append(reduced, s.dimensions[idx+1:]...)

	out := &AxisSplit{
		Axis:       s.dimensions[idx],
		Dimensions: reduced,
		groups:     make(map[string][]AxisSample),
	}
	for _, it := range s.Items() {
		axisVal := it.Key[idx]
		rk := make(dims.Key, 0, len(it.Key)-1)
		rk = append(rk, it.Key[:idx]...)
		rk = append(rk, it.Key[idx+1:]...)

		canon := rk.Canonical()
		if _, seen := out.groups[canon]; !seen {
			out.keys = append(out.keys, rk)
		}
		out.groups[canon] = append(out.groups[canon], AxisSample{Value: axisVal, View: it.View})
	}
	for canon := range out.groups {
		slices.SortStableFunc(out.groups[canon], func(a, b AxisSample) int {
			return dims.Compare(dims.Key{a.Value}, dims.Key{b.Value})
		})
	}
	return out, nil
}
