package stack

import (
	"fmt"

	"github.com/matzehuels/dataviews/pkg/dims"
	"github.com/matzehuels/dataviews/pkg/view"
)

// ScalarType classifies the values stored under one table heading
// across all tables of a TableStack.
type ScalarType int

const (
	// TypeUnknown marks a heading whose value type disagrees between
	// tables. Unknown headings cannot be sampled.
	TypeUnknown ScalarType = iota
	// TypeNumber marks a heading consistently holding numeric values.
	TypeNumber
	// TypeString marks a heading consistently holding strings.
	TypeString
)

// String returns "number", "string", or "unknown".
func (t ScalarType) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	}
	return "unknown"
}

func scalarTypeOf(v any) ScalarType {
	if _, ok := dims.ToFloat(v); ok {
		return TypeNumber
	}
	if _, ok := v.(string); ok {
		return TypeString
	}
	return TypeUnknown
}

// TableStack is a stack whose content type is fixed to Table. It
// additionally tracks, per heading, the scalar type shared by all
// inserted tables, and restricts sampling to consistently numeric
// headings.
type TableStack struct {
	Stack
}

// NewTableStack creates an empty table stack over the given dimension
// list. The content kind is fixed before the first insertion: only
// tables can be inserted.
func NewTableStack(dimensions []dims.Dimension, opts ...Option) *TableStack {
	ts := &TableStack{Stack: *New(dimensions, opts...)}
	ts.kind = view.KindTable
	ts.kindSet = true
	return ts
}

// Insert adds v under key. Unlike the generic stack, an occupied key is
// ErrTableMerge rather than an overlay merge, which would break the
// table-only content guarantee. Use [Stack.Put] to replace.
func (ts *TableStack) Insert(key dims.Key, v view.View) error {
	if ts.Contains(key) {
		return fmt.Errorf("%w: key %v is occupied", ErrTableMerge, key)
	}
	return ts.Stack.Insert(key, v)
}

// HeadingTypes derives the per-heading scalar type map from the stored
// tables. The map is recomputed on every call. Two tables disagreeing
// on the set of headings is a hard failure (ErrHeadingSet); two tables
// disagreeing on one heading's value type softly degrades that heading
// to TypeUnknown.
func (ts *TableStack) HeadingTypes() (map[string]ScalarType, error) {
	types := make(map[string]ScalarType)
	var reference []string
	for _, it := range ts.Items() {
		tbl, ok := it.View.(*view.Table)
		if !ok {
			return nil, fmt.Errorf("%w: entry at %v is %s", ErrContentType, it.Key, it.View.Kind())
		}
		headings := tbl.Headings()
		if reference == nil {
			reference = headings
			for _, h := range headings {
				v, _ := tbl.Value(h)
				types[h] = scalarTypeOf(v)
			}
			continue
		}
		if !sameHeadingSet(reference, headings) {
			return nil, fmt.Errorf("%w: %v vs %v", ErrHeadingSet, reference, headings)
		}
		for _, h := range headings {
			v, _ := tbl.Value(h)
			if types[h] != TypeUnknown && types[h] != scalarTypeOf(v) {
				types[h] = TypeUnknown
			}
		}
	}
	return types, nil
}

func sameHeadingSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, h := range a {
		set[h] = true
	}
	for _, h := range b {
		if !set[h] {
			return false
		}
	}
	return true
}

// Sample extracts curves of table values along one dimension. Every
// requested heading must be consistently numeric across the stored
// tables; any other heading fails before the generic sampling
// algorithm runs.
func (ts *TableStack) Sample(headings []string, opts SampleOptions) ([]*Stack, error) {
	types, err := ts.HeadingTypes()
	if err != nil {
		return nil, err
	}
	points := make([]any, len(headings))
	for i, h := range headings {
		t, known := types[h]
		if !known {
			return nil, fmt.Errorf("%w: %q", view.ErrUnknownHeading, h)
		}
		if t != TypeNumber {
			return nil, fmt.Errorf("%w: %q is %s", ErrHeadingNotSampleable, h, t)
		}
		points[i] = h
	}
	return ts.Stack.Sample(points, opts)
}
