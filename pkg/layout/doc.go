// Package layout arranges views and stacks on a grid for display.
//
// A [GridLayout] is an ordered, heterogeneous collection: each entry is
// either a single view or a whole stack. Entries fill rows left to
// right, up to a configurable number of columns per row. The layout
// holds references only; it never copies or mutates its entries.
package layout
