package cli

import (
	"encoding/json"
	"io"
)

// Formatter routes a command's result to text or JSON rendering based
// on the global --format flag.
type Formatter struct {
	Format string
	Writer io.Writer
}

// Emit writes the result: JSON-encodes v when --format=json, otherwise
// calls the command's text renderer.
func (f *Formatter) Emit(v any, text func(w io.Writer) error) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	}

	return text(f.Writer)
}
