// Package display renders values for the host environment's output surface.
//
// The dash API picks one Renderer per detected environment: a Terminal
// renderer for plain processes and a Notebook renderer for interactive
// kernels. The sandboxed environment has no renderer here at all; the
// hosting page substitutes its own before user code runs.
package display

import (
	"encoding/json"
	"fmt"
	"io"
)

// Table is an ordered row set ready for rendering. Columns fixes the column
// order; rows may omit columns, which render empty.
type Table struct {
	Columns []string
	Rows    []map[string]any
}

// Renderer renders a value to one output surface.
type Renderer interface {
	Render(item any) error
}

// formatCell renders a single value as text. Structured values are encoded
// as JSON so nested results stay readable in a table cell.
func formatCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// writeAll writes s to w, surfacing the first write error.
func writeAll(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
