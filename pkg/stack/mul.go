package stack

import (
	"fmt"
	"slices"

	"github.com/matzehuels/dataviews/pkg/dims"
	"github.com/matzehuels/dataviews/pkg/view"
)

// MulViewStack maps the overlay operator across every value of the
// stack, producing a new stack with identical keys whose values are
// each v * value.
func MulViewStack(v view.View, s *Stack) (*Stack, error) {
	return s.mapValues(func(old view.View) (view.View, error) { return view.Mul(v, old) })
}

// MulStackView maps the overlay operator across every value of the
// stack, producing a new stack with identical keys whose values are
// each value * v.
func MulStackView(s *Stack, v view.View) (*Stack, error) {
	return s.mapValues(func(old view.View) (view.View, error) { return view.Mul(old, v) })
}

func (s *Stack) mapValues(fn func(view.View) (view.View, error)) (*Stack, error) {
	out := New(s.dimensions, WithTitle(s.titleFormat), WithStyle(s.style))
	for _, it := range s.Items() {
		merged, err := fn(it.View)
		if err != nil {
			return nil, err
		}
		if err := out.Insert(it.Key, merged); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Mul composes two stacks pairwise by key. The stacks' dimension-name
// sets must be in a subset/superset relation; the result carries the
// superset dimension list. For each key in the sorted union of keys on
// the superset side, the two operands' entries (projected onto each
// operand's own dimension ordering) are overlaid; a key missing on one
// side contributes that side's empty element, whose zero limits
// participate in the result's limit fold.
func Mul(a, b *Stack) (*Stack, error) {
	aNames, bNames := a.DimensionNames(), b.DimensionNames()
	aInB := subset(aNames, bNames)
	bInA := subset(bNames, aNames)

	var superDims []dims.Dimension
	var superKeys []dims.Key
	switch {
	case aInB && bInA:
		// Equal dimension sets: the union of both key sets, with b's
		// keys reordered into a's dimension ordering.
		superDims = a.dimensions
		seen := make(map[string]bool)
		for _, k := range a.keys {
			superKeys = append(superKeys, k.Clone())
			seen[k.Canonical()] = true
		}
		for _, k := range b.keys {
			projected, err := projectKey(k, b.dimensions, superDims)
			if err != nil {
				return nil, err
			}
			if !seen[projected.Canonical()] {
				superKeys = append(superKeys, projected)
				seen[projected.Canonical()] = true
			}
		}
	case bInA:
		superDims = a.dimensions
		superKeys = a.Keys()
	case aInB:
		superDims = b.dimensions
		superKeys = b.Keys()
	default:
		return nil, fmt.Errorf("%w: %v vs %v", ErrDimensionMismatch, aNames, bNames)
	}
	slices.SortStableFunc(superKeys, dims.Compare)

	out := New(superDims, WithTitle(a.titleFormat), WithStyle(a.style))
	for _, k := range superKeys {
		aKey, err := projectKey(k, superDims, a.dimensions)
		if err != nil {
			return nil, err
		}
		bKey, err := projectKey(k, superDims, b.dimensions)
		if err != nil {
			return nil, err
		}
		va, aOK := a.Get(aKey)
		vb, bOK := b.Get(bKey)
		if !aOK {
			va = a.EmptyElement()
		}
		if !bOK {
			vb = b.EmptyElement()
		}
		merged, err := view.Mul(va, vb)
		if err != nil {
			return nil, err
		}
		if err := out.Insert(k, merged); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Compose dispatches the overlay operator over the closed set of
// operand shapes: view×view, view×stack, stack×view, and stack×stack.
// Any other operand fails with view.ErrCannotOverlay.
func Compose(a, b any) (any, error) {
	switch x := a.(type) {
	case *Stack:
		switch y := b.(type) {
		case *Stack:
			return Mul(x, y)
		case view.View:
			return MulStackView(x, y)
		}
	case view.View:
		switch y := b.(type) {
		case *Stack:
			return MulViewStack(x, y)
		case view.View:
			return view.Mul(x, y)
		}
	}
	return nil, fmt.Errorf("%w: got %T and %T", view.ErrCannotOverlay, a, b)
}

// subset reports whether every name in a also appears in b.
func subset(a, b []string) bool {
	for _, n := range a {
		if !slices.Contains(b, n) {
			return false
		}
	}
	return true
}

// projectKey reorders a key given in fromDims order onto the (sub)set
// of dimensions in toDims. Every toDims name must appear in fromDims.
func projectKey(key dims.Key, fromDims, toDims []dims.Dimension) (dims.Key, error) {
	out := make(dims.Key, len(toDims))
	for i, d := range toDims {
		j, err := dims.Index(fromDims, d.Name)
		if err != nil {
			return nil, err
		}
		out[i] = key[j]
	}
	return out, nil
}
