// Package analysis applies per-entry operations to stacks.
//
// An [Operation] transforms each entry of a stack independently; Apply
// reassembles the results into a stack keyed like the input. Describe
// is the built-in summary operation, reducing each entry's data to a
// table of descriptive statistics.
package analysis
