// Package dims describes the axes along which view stacks are indexed.
//
// # Overview
//
// A [Dimension] names one axis of indexing: a repetition count, a time
// coordinate, a configuration value. A [Key] is an ordered vector of
// scalar values, one per dimension of the owning container, in
// dimension-list order. Together they give stacks structural arity
// checks: a key is valid for a dimension list when its length matches,
// and two keys compare component-wise in that fixed order.
//
// # Keys
//
// Key components are scalars: float64, int, or string. [Compare] orders
// numeric components by value (int and float64 compare against each
// other), strings lexicographically, and numbers before strings so that
// mixed key sets still have a total order. [Canonical] renders a key as
// a stable string for use as a map key.
//
// # Formatting
//
// Dimensions carry an optional Format hook used when a dimension value
// is rendered for titles and legends. [PrettyPairs] renders a full key
// as "Name: value" pairs, grouped a fixed number of pairs per line,
// which is the deterministic representation stacks embed in item titles.
package dims
