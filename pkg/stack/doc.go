// Package stack provides the dimension-indexed view container and its
// composition and sampling algebra.
//
// # Overview
//
// A [Stack] is an ordered mapping from a [dims.Key] (one value per
// dimension, in dimension-list order) to a single view or overlay. The
// dimension list and title template are fixed at creation; items are
// added by key with [Stack.Insert]. Stacks are append-only: there is no
// deletion, and inserting at an existing key composes the existing and
// new content through the overlay operator rather than replacing it
// ([Stack.Put] replaces explicitly).
//
// # Invariants
//
// Insertion enforces, in order:
//
//   - Key arity: every key's length equals the dimension count.
//   - Homogeneity: the kind of the first inserted value fixes the
//     stack's content kind; later insertions of a different kind fail.
//   - Style propagation: a stack with a non-empty style tag overwrites
//     the style of every inserted item (and every overlay member).
//   - Title determinism: every insertion renders a title from the
//     stack's template, the item's label and kind, and the key's
//     dimension/value pairs grouped two per line.
//
// Derived properties (content type, x/y limits) are recomputed from the
// stored items on every read; there are no hidden caches.
//
// # Composition
//
// The overlay operator is defined for three shape combinations and
// dispatched over the closed set of operand shapes by [Compose]:
// leaf/overlay pairs ([view.Mul]), a view against every value of a
// stack ([MulViewStack], [MulStackView]), and two stacks ([Mul]). Two
// stacks compose only when one dimension-name set is a subset of the
// other; keys missing on one side contribute that side's zero-content
// empty element, whose zero limits deliberately participate in the
// result's limit fold.
//
// # Splitting and sampling
//
// [Stack.SplitAxis] pivots a stack on one named dimension, producing a
// sparse mapping from reduced keys to the (axis value, view) pairs that
// actually exist. [Stack.Sample] builds on it to extract curves of
// sampled scalars along the axis, optionally regrouping chosen
// dimensions into overlays instead of output keys. [TableStack]
// restricts content to tables, refuses insert-or-merge at occupied
// keys, and gates sampling on per-heading scalar type consistency.
package stack
