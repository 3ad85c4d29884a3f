package view

import (
	"fmt"
)

// Table is an ordered record of heading → scalar value pairs. Values
// are float64, int, or string. Tables have no axis extent; their
// limits are zero.
type Table struct {
	Meta     Axes
	headings []string
	values   map[string]any
}

// NewTable builds a table from parallel heading and value sequences.
// Heading order is preserved; duplicate headings are rejected.
func NewTable(headings []string, values []any, meta Axes) (*Table, error) {
	if len(headings) != len(values) {
		return nil, fmt.Errorf("%w: %d headings, %d values", ErrLengthMismatch, len(headings), len(values))
	}
	m := make(map[string]any, len(values))
	for i, h := range headings {
		if _, dup := m[h]; dup {
			return nil, fmt.Errorf("duplicate table heading %q", h)
		}
		m[h] = values[i]
	}
	return &Table{Meta: meta, headings: append([]string(nil), headings...), values: m}, nil
}

// Kind reports KindTable.
func (t *Table) Kind() Kind { return KindTable }

// Axes returns the table's labeling metadata.
func (t *Table) Axes() *Axes { return &t.Meta }

// Headings returns the headings in insertion order.
func (t *Table) Headings() []string { return append([]string(nil), t.headings...) }

// Len reports the number of heading/value rows.
func (t *Table) Len() int { return len(t.headings) }

// Value returns the value stored under the heading.
func (t *Table) Value(heading string) (any, bool) {
	v, ok := t.values[heading]
	return v, ok
}

// Cell addresses the table as a two-column grid: column 0 holds the
// heading, column 1 the value. Out-of-range rows or columns beyond the
// second are ErrOutOfRange.
func (t *Table) Cell(row, col int) (any, error) {
	if row < 0 || row >= len(t.headings) {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, row, len(t.headings))
	}
	switch col {
	case 0:
		return t.headings[row], nil
	case 1:
		return t.values[t.headings[row]], nil
	}
	return nil, fmt.Errorf("%w: tables have two columns, requested %d", ErrOutOfRange, col)
}

// XLim reports a zero interval; tables have no axis extent.
func (t *Table) XLim() Lim { return Lim{} }

// YLim reports a zero interval; tables have no axis extent.
func (t *Table) YLim() Lim { return Lim{} }

// Empty returns a zero-content table.
func (t *Table) Empty() View { return &Table{values: map[string]any{}} }

// Sample extracts the numeric value under the heading probe. String
// probes only; unknown headings are ErrUnknownHeading and non-numeric
// values ErrNotNumeric.
func (t *Table) Sample(probe any) (float64, error) {
	heading, ok := probe.(string)
	if !ok {
		return 0, fmt.Errorf("%w: table probe must be a heading name, got %T", ErrBadProbe, probe)
	}
	v, ok := t.values[heading]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownHeading, heading)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("%w: %q holds %T", ErrNotNumeric, heading, v)
	}
	return f, nil
}
