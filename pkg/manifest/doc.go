// Package manifest loads dimensioned datasets from TOML files.
//
// A manifest declares the dimension list once, then the entries: curve,
// histogram, and table blocks, each carrying its key and data. Build
// assembles the entries into a stack, applying the manifest's style and
// title template. Validation failures identify the offending file and
// block.
package manifest
