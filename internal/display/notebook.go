package display

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
)

// Notebook renders values as HTML for an interactive kernel's rich-display
// channel. The channel itself is an external collaborator; this renderer
// only produces the markup and hands it to the configured writer.
type Notebook struct {
	Out io.Writer
}

// NewNotebook returns a Notebook renderer writing to out, or stdout when out
// is nil.
func NewNotebook(out io.Writer) *Notebook {
	if out == nil {
		out = os.Stdout
	}
	return &Notebook{Out: out}
}

func (n *Notebook) Render(item any) error {
	tbl, ok := item.(Table)
	if !ok {
		escaped := html.EscapeString(fmt.Sprintf("%v", item))
		return writeAll(n.Out, "<pre>"+escaped+"</pre>\n")
	}
	return writeAll(n.Out, tableHTML(tbl))
}

// tableHTML builds an HTML table preserving the result's column order.
func tableHTML(tbl Table) string {
	var b strings.Builder
	b.WriteString("<table>\n<thead><tr>")
	for _, col := range tbl.Columns {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(col))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead>\n<tbody>\n")
	for _, row := range tbl.Rows {
		b.WriteString("<tr>")
		for _, col := range tbl.Columns {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(formatCell(row[col])))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")
	return b.String()
}
