package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/dataviews/pkg/layout"
	"github.com/matzehuels/dataviews/pkg/stack"
)

// =============================================================================
// Stack Serialization API
// =============================================================================

// MarshalStack converts a stack to indented JSON bytes.
func MarshalStack(s *stack.Stack) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteStack(s, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteStack writes a stack as JSON to an io.Writer.
// Use MarshalStack for in-memory serialization or WriteStackFile for files.
func WriteStack(s *stack.Stack, w io.Writer) error {
	return encode(FromStack(s), w)
}

// WriteStackFile writes a stack to a JSON file.
// The file is created with 0644 permissions.
func WriteStackFile(s *stack.Stack, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteStack(s, f)
}

// =============================================================================
// Grid Serialization API
// =============================================================================

// MarshalGrid converts a grid layout to indented JSON bytes.
func MarshalGrid(g *layout.GridLayout) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGrid(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGrid writes a grid layout as JSON to an io.Writer.
func WriteGrid(g *layout.GridLayout, w io.Writer) error {
	out, err := FromGrid(g)
	if err != nil {
		return err
	}
	return encode(out, w)
}

// WriteGridFile writes a grid layout to a JSON file.
func WriteGridFile(g *layout.GridLayout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGrid(g, f)
}

func encode(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
