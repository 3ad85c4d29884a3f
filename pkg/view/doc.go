// Package view provides the atomic plottable data units (Curve,
// Histogram, Table, Annotation), the Overlay composition of those
// units, and the leaf-level composition algebra.
//
// # Overview
//
// Every view exposes the same read-only contract: labeling metadata via
// [View.Axes], a bounding box via [View.XLim] and [View.YLim], and a
// closed type identity via [View.Kind]. Downstream plotting code reads
// finished views purely through this contract; nothing in this package
// renders anything.
//
// # Views
//
//   - [Curve]: an ordered sequence of (x, y) points, optionally cyclic.
//   - [Histogram]: binned values. The constructor normalizes bin
//     centers into edges and rejects non-uniform center spacing.
//   - [Table]: an ordered record of heading → scalar value pairs.
//   - [Annotation]: markers (horizontal/vertical lines, text) that are
//     exempt from label and limit checks when overlaid.
//
// # Overlays
//
// An [Overlay] is an ordered list of views rendered on one set of axes.
// All non-annotation members must share x- and y-labels; the overlay's
// limits are the running element-wise min/max of its members' limits,
// seeded by the first member.
//
// # Composition
//
// [Mul] implements the overlay operator for leaf and overlay operands:
// two leaves become a two-member overlay, and overlay operands
// contribute their member lists in order. Composition with stacks is
// handled by the stack package, which dispatches over the closed set of
// operand shapes.
package view
