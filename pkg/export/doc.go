// Package export serializes stacks, views, and grids to JSON.
//
// The format is deterministic: entries appear in stack insertion order
// and floats are written as-is. It is meant for plotting frontends and
// downstream tooling, not for round-tripping back into stacks.
package export
