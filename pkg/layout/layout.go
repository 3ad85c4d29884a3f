package layout

import (
	"errors"
	"fmt"

	"github.com/matzehuels/dataviews/pkg/stack"
	"github.com/matzehuels/dataviews/pkg/view"
)

// Errors returned by grid operations.
var (
	// ErrBadEntry is returned when an added item is neither a view nor
	// a stack.
	ErrBadEntry = errors.New("layout entries must be views or stacks")
	// ErrOutOfRange is returned by At for cells outside the grid.
	ErrOutOfRange = errors.New("cell out of range")
)

// DefaultMaxCols is the row width used when none is configured.
const DefaultMaxCols = 4

// GridLayout is an ordered collection of views and stacks, displayed
// as rows of at most MaxCols entries.
type GridLayout struct {
	maxCols int
	items   []any
}

// Option configures a new grid.
type Option func(*GridLayout)

// WithMaxCols sets the row width. Values below 1 are ignored.
func WithMaxCols(n int) Option {
	return func(g *GridLayout) {
		if n >= 1 {
			g.maxCols = n
		}
	}
}

// New creates a grid holding the given items in order.
func New(items []any, opts ...Option) (*GridLayout, error) {
	g := &GridLayout{maxCols: DefaultMaxCols}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.Add(items...); err != nil {
		return nil, err
	}
	return g, nil
}

// SideBySide arranges sampled stacks on one row each, in slice order.
// It is the natural display for multi-point sampling output: one
// column per sample point.
func SideBySide(stacks []*stack.Stack) (*GridLayout, error) {
	items := make([]any, len(stacks))
	for i, s := range stacks {
		items[i] = s
	}
	return New(items, WithMaxCols(max(1, len(stacks))))
}

// Add appends items to the grid, filling rows left to right. An item
// that is neither a view nor a stack fails with ErrBadEntry and
// nothing is appended.
func (g *GridLayout) Add(items ...any) error {
	for _, it := range items {
		switch it.(type) {
		case view.View, *stack.Stack, *stack.TableStack:
		default:
			return fmt.Errorf("%w: %T", ErrBadEntry, it)
		}
	}
	g.items = append(g.items, items...)
	return nil
}

// Append adds a single item and returns the grid for chaining.
func (g *GridLayout) Append(item any) (*GridLayout, error) {
	if err := g.Add(item); err != nil {
		return nil, err
	}
	return g, nil
}

// Len reports the number of entries.
func (g *GridLayout) Len() int { return len(g.items) }

// MaxCols reports the configured row width.
func (g *GridLayout) MaxCols() int { return g.maxCols }

// Shape reports the grid's (rows, cols): cols is MaxCols capped at the
// entry count, rows is the number of rows needed. An empty grid is
// (0, 0).
func (g *GridLayout) Shape() (rows, cols int) {
	n := len(g.items)
	if n == 0 {
		return 0, 0
	}
	cols = min(n, g.maxCols)
	rows = (n + g.maxCols - 1) / g.maxCols
	return rows, cols
}

// At returns the entry at a grid cell in row-major order.
func (g *GridLayout) At(row, col int) (any, error) {
	if row < 0 || col < 0 || col >= g.maxCols {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	i := row*g.maxCols + col
	if i >= len(g.items) {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	return g.items[i], nil
}

// Items returns the entries in insertion order.
func (g *GridLayout) Items() []any {
	return append([]any(nil), g.items...)
}
