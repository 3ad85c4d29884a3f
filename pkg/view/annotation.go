package view

// MarkKind identifies the shape of one annotation marker.
type MarkKind int

const (
	// MarkHLine is a horizontal line at a y position.
	MarkHLine MarkKind = iota
	// MarkVLine is a vertical line at an x position.
	MarkVLine
	// MarkText is a text label at an (x, y) position.
	MarkText
)

// Mark is one marker of an annotation.
type Mark struct {
	Kind MarkKind
	X, Y float64 // Position; HLine uses Y only, VLine uses X only
	Text string  // Label for MarkText
}

// Annotation is a set of axis markers. Annotations are exempt from the
// label and limit checks applied to overlay members and contribute
// nothing to bounding boxes.
type Annotation struct {
	Meta  Axes
	Marks []Mark
}

// HLine appends a horizontal line marker at y and returns the
// annotation for chaining.
func (a *Annotation) HLine(y float64) *Annotation {
	a.Marks = append(a.Marks, Mark{Kind: MarkHLine, Y: y})
	return a
}

// VLine appends a vertical line marker at x and returns the annotation
// for chaining.
func (a *Annotation) VLine(x float64) *Annotation {
	a.Marks = append(a.Marks, Mark{Kind: MarkVLine, X: x})
	return a
}

// Text appends a text marker at (x, y) and returns the annotation for
// chaining.
func (a *Annotation) Text(x, y float64, text string) *Annotation {
	a.Marks = append(a.Marks, Mark{Kind: MarkText, X: x, Y: y, Text: text})
	return a
}

// Kind reports KindAnnotation.
func (a *Annotation) Kind() Kind { return KindAnnotation }

// Axes returns the annotation's labeling metadata.
func (a *Annotation) Axes() *Axes { return &a.Meta }

// XLim reports a zero interval; annotations carry no extent.
func (a *Annotation) XLim() Lim { return Lim{} }

// YLim reports a zero interval; annotations carry no extent.
func (a *Annotation) YLim() Lim { return Lim{} }

// Empty returns a zero-content annotation.
func (a *Annotation) Empty() View { return &Annotation{} }
