package export

import (
	"fmt"

	"github.com/matzehuels/dataviews/pkg/layout"
	"github.com/matzehuels/dataviews/pkg/stack"
	"github.com/matzehuels/dataviews/pkg/view"
)

// =============================================================================
// Serialization Types
// =============================================================================

// Stack is the canonical serialization format for stacks.
type Stack struct {
	Type       string      `json:"type"`
	Style      string      `json:"style,omitempty"`
	Dimensions []Dimension `json:"dimensions"`
	Entries    []Entry     `json:"entries"`
}

// Dimension mirrors one dimension declaration.
type Dimension struct {
	Name   string    `json:"name"`
	Cyclic bool      `json:"cyclic,omitempty"`
	Range  []float64 `json:"range,omitempty"`
}

// Entry is one (key, view) pair, in stack insertion order.
type Entry struct {
	Key  []any `json:"key"`
	View View  `json:"view"`
}

// View is the unified serialization type for every view kind. Only the
// fields matching Kind are populated.
type View struct {
	Kind   string `json:"kind"`
	Label  string `json:"label,omitempty"`
	XLabel string `json:"xlabel,omitempty"`
	YLabel string `json:"ylabel,omitempty"`
	Title  string `json:"title,omitempty"`
	Style  string `json:"style,omitempty"`

	// Curve
	Points      []Point  `json:"points,omitempty"`
	CyclicRange *float64 `json:"cyclic_range,omitempty"`

	// Histogram
	Values []float64 `json:"values,omitempty"`
	Edges  []float64 `json:"edges,omitempty"`

	// Table
	Headings []string `json:"headings,omitempty"`
	Row      []any    `json:"row,omitempty"`

	// Annotation
	Marks []Mark `json:"marks,omitempty"`

	// Overlay
	Layers []View `json:"layers,omitempty"`
}

// Point is one curve sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Mark is one annotation marker.
type Mark struct {
	Kind string  `json:"kind"`
	X    float64 `json:"x,omitempty"`
	Y    float64 `json:"y,omitempty"`
	Text string  `json:"text,omitempty"`
}

// Grid arranges serialized stacks and views on rows.
type Grid struct {
	MaxCols int        `json:"max_cols"`
	Entries []GridCell `json:"entries"`
}

// GridCell is one grid entry: exactly one of Stack or View is set.
type GridCell struct {
	Stack *Stack `json:"stack,omitempty"`
	View  *View  `json:"view,omitempty"`
}

// =============================================================================
// Conversion
// =============================================================================

// FromStack converts a stack to its serialization format.
func FromStack(s *stack.Stack) Stack {
	out := Stack{
		Type:       s.Type().String(),
		Style:      s.Style(),
		Dimensions: make([]Dimension, 0, len(s.Dimensions())),
		Entries:    make([]Entry, 0, s.Len()),
	}
	for _, d := range s.Dimensions() {
		dim := Dimension{Name: d.Name, Cyclic: d.Cyclic}
		if d.Range != nil {
			dim.Range = []float64{d.Range[0], d.Range[1]}
		}
		out.Dimensions = append(out.Dimensions, dim)
	}
	for _, it := range s.Items() {
		out.Entries = append(out.Entries, Entry{
			Key:  append([]any(nil), it.Key...),
			View: FromView(it.View),
		})
	}
	return out
}

// FromView converts a view to its serialization format.
func FromView(v view.View) View {
	meta := v.Axes()
	out := View{
		Kind:   v.Kind().String(),
		Label:  meta.Label,
		XLabel: meta.XLabel,
		YLabel: meta.YLabel,
		Title:  meta.Title,
		Style:  meta.Style,
	}
	switch x := v.(type) {
	case *view.Curve:
		out.Points = make([]Point, len(x.Points))
		for i, p := range x.Points {
			out.Points[i] = Point{X: p.X, Y: p.Y}
		}
		out.CyclicRange = x.CyclicRange
	case *view.Histogram:
		out.Values = append([]float64(nil), x.Values...)
		out.Edges = append([]float64(nil), x.Edges...)
	case *view.Table:
		out.Headings = x.Headings()
		out.Row = make([]any, len(out.Headings))
		for i, h := range out.Headings {
			out.Row[i], _ = x.Value(h)
		}
	case *view.Annotation:
		out.Marks = make([]Mark, len(x.Marks))
		for i, m := range x.Marks {
			out.Marks[i] = Mark{Kind: markKind(m.Kind), X: m.X, Y: m.Y, Text: m.Text}
		}
	case *view.Overlay:
		out.Layers = make([]View, 0, x.Len())
		for _, layer := range x.Layers() {
			out.Layers = append(out.Layers, FromView(layer))
		}
	}
	return out
}

// FromGrid converts a grid layout to its serialization format.
func FromGrid(g *layout.GridLayout) (Grid, error) {
	out := Grid{MaxCols: g.MaxCols(), Entries: make([]GridCell, 0, g.Len())}
	for _, it := range g.Items() {
		switch x := it.(type) {
		case *stack.Stack:
			s := FromStack(x)
			out.Entries = append(out.Entries, GridCell{Stack: &s})
		case *stack.TableStack:
			s := FromStack(&x.Stack)
			out.Entries = append(out.Entries, GridCell{Stack: &s})
		case view.View:
			v := FromView(x)
			out.Entries = append(out.Entries, GridCell{View: &v})
		default:
			return Grid{}, fmt.Errorf("cannot serialize grid entry %T", it)
		}
	}
	return out, nil
}

func markKind(k view.MarkKind) string {
	switch k {
	case view.MarkHLine:
		return "hline"
	case view.MarkVLine:
		return "vline"
	case view.MarkText:
		return "text"
	}
	return "unknown"
}
