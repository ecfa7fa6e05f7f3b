package display

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
)

// Terminal renders values for a plain local process. Row sets become a pterm
// table; everything else prints textually, matching what a script author
// would get from fmt.Println.
type Terminal struct {
	Out io.Writer
}

// NewTerminal returns a Terminal renderer writing to out, or stdout when out
// is nil.
func NewTerminal(out io.Writer) *Terminal {
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{Out: out}
}

func (t *Terminal) Render(item any) error {
	tbl, ok := item.(Table)
	if !ok {
		_, err := fmt.Fprintln(t.Out, item)
		return err
	}

	if len(tbl.Columns) == 0 {
		_, err := fmt.Fprintln(t.Out, "(no rows)")
		return err
	}

	data := make(pterm.TableData, 0, len(tbl.Rows)+1)
	data = append(data, tbl.Columns)
	for _, row := range tbl.Rows {
		cells := make([]string, len(tbl.Columns))
		for i, col := range tbl.Columns {
			cells[i] = formatCell(row[col])
		}
		data = append(data, cells)
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithWriter(t.Out).
		WithData(data).
		Render()
}
