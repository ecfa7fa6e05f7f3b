package dash

import (
	"sort"

	"github.com/WillDaSilva/logfire/internal/display"
	"github.com/WillDaSilva/logfire/internal/runenv"
)

// Show displays the provided item appropriately for the host environment.
//
// In a notebook the item renders as rich HTML under the cell; in a plain
// process it prints textually, with row sets rendered as a table. In the
// sandboxed environment Show fails with *EnvironmentError: the hosting page
// substitutes an implementation that renders into its "Display" panel before
// user code runs, exactly as with query execution.
func (s *Session) Show(item any) error {
	switch s.env.Kind() {
	case runenv.Sandboxed:
		return &EnvironmentError{Op: "display"}
	case runenv.Notebook:
		return display.NewNotebook(s.notebookOut).Render(displayable(item))
	default:
		return display.NewTerminal(s.out).Render(displayable(item))
	}
}

// displayable converts row sets to display tables so both renderers keep the
// result's column order. Anything else passes through for textual rendering.
func displayable(item any) any {
	switch v := item.(type) {
	case QueryResult:
		if v.Status != StatusSuccess {
			return (&QueryError{Details: v.ErrorDetails}).Error()
		}
		return display.Table{Columns: v.Columns, Rows: rowMaps(v.Rows)}
	case []Row:
		return display.Table{Columns: rowColumns(v), Rows: rowMaps(v)}
	default:
		return item
	}
}

func rowMaps(rows []Row) []map[string]any {
	out := make([]map[string]any, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}

// rowColumns derives a deterministic column order for bare row slices, which
// carry no order of their own.
func rowColumns(rows []Row) []string {
	if len(rows) == 0 {
		return nil
	}
	cols := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}
