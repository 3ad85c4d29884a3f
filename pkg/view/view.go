package view

import (
	"errors"
	"math"
)

var (
	// ErrLabelMismatch is returned by [Overlay.Add] and [Mul] when two
	// non-annotation members disagree on x- or y-labels. The overlay is
	// left unmodified.
	ErrLabelMismatch = errors.New("overlaid views must share common x- and y-labels")

	// ErrCannotOverlay is returned by the composition algebra when an
	// operand is not a view or stack.
	ErrCannotOverlay = errors.New("can only overlay views")

	// ErrNonUniformBins is returned by [NewHistogram] when bin centers
	// were supplied with non-uniform spacing.
	ErrNonUniformBins = errors.New("histogram bin centers must be uniformly spaced")

	// ErrBinCount is returned by [NewHistogram] when the edge count is
	// neither len(values) (centers) nor len(values)+1 (edges).
	ErrBinCount = errors.New("histogram needs len(values) centers or len(values)+1 edges")

	// ErrLengthMismatch is returned by constructors when parallel
	// sequences disagree in length.
	ErrLengthMismatch = errors.New("sequences must have equal length")

	// ErrUnknownHeading is returned by [Table.Sample] for a heading the
	// table does not contain.
	ErrUnknownHeading = errors.New("unknown table heading")

	// ErrNotNumeric is returned by [Table.Sample] when the requested
	// heading holds a non-numeric value.
	ErrNotNumeric = errors.New("table heading is not numeric")

	// ErrBadProbe is returned by the Sample contract when the probe has
	// the wrong type for the view (e.g. a string probe on a curve).
	ErrBadProbe = errors.New("probe type does not match view")

	// ErrOutOfRange is returned when a sample probe or cell request
	// falls outside the view's data.
	ErrOutOfRange = errors.New("out of range")
)

// Kind identifies the closed set of view shapes. Composition and stack
// homogeneity dispatch over this tagged union rather than reflection.
type Kind int

const (
	// KindCurve is an ordered sequence of (x, y) points.
	KindCurve Kind = iota
	// KindHistogram is a set of binned values.
	KindHistogram
	// KindTable is an ordered heading → value record.
	KindTable
	// KindAnnotation is a set of axis markers exempt from label and
	// limit checks.
	KindAnnotation
	// KindOverlay is an ordered composition of the other kinds.
	KindOverlay
)

// String returns the display name of the kind (e.g. "Curve").
func (k Kind) String() string {
	switch k {
	case KindCurve:
		return "Curve"
	case KindHistogram:
		return "Histogram"
	case KindTable:
		return "Table"
	case KindAnnotation:
		return "Annotation"
	case KindOverlay:
		return "Overlay"
	}
	return "Unknown"
}

// Axes holds the labeling and styling metadata shared by every view.
// Style is an opaque tag consumed by plotting backends; Title is
// assigned by the owning stack on insertion.
type Axes struct {
	Label  string // Legend label
	XLabel string // X-axis label
	YLabel string // Y-axis label
	Title  string // Display title (set by the owning stack)
	Style  string // Opaque style tag for plotting backends
}

// Lim is a (min, max) pair of axis limits.
type Lim struct {
	Min, Max float64
}

// FindMinMax folds two limit pairs into their element-wise union:
// the min of the mins and the max of the maxes.
func FindMinMax(a, b Lim) Lim {
	return Lim{Min: math.Min(a.Min, b.Min), Max: math.Max(a.Max, b.Max)}
}

// LBRT is a (left, bottom, right, top) bounding box.
type LBRT struct {
	Left, Bottom, Right, Top float64
}

// MakeLBRT combines x- and y-limits into a bounding box.
func MakeLBRT(x, y Lim) LBRT {
	return LBRT{Left: x.Min, Bottom: y.Min, Right: x.Max, Top: y.Max}
}

// View is the read-only contract every plottable unit exposes.
// Implementations are the closed set Curve, Histogram, Table,
// Annotation, and Overlay.
type View interface {
	// Kind reports the view's shape in the closed union.
	Kind() Kind
	// Axes returns the view's labeling metadata. The pointer refers to
	// the view's own metadata; owning containers use it to assign
	// titles and propagate styles.
	Axes() *Axes
	// XLim reports the x-axis bounding interval of the data.
	XLim() Lim
	// YLim reports the y-axis bounding interval of the data.
	YLim() Lim
	// Empty returns a zero-content instance of the same kind, used as
	// the placeholder element when composing sparsely-keyed stacks.
	Empty() View
}

// Sampler is implemented by views that support scalar extraction at a
// probe point: curves and histograms take an x coordinate, tables take
// a heading name.
type Sampler interface {
	Sample(probe any) (float64, error)
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}
