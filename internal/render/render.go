// Package render lays out document tables as bordered plain text.
package render

import (
	"io"
	"strings"
)

// RenderTable writes t to w. A table without cells writes nothing.
func RenderTable(w io.Writer, t *Table) error {
	if len(t.Cells) == 0 || t.Rows == 0 || t.Cols == 0 {
		return nil
	}
	for _, c := range t.Cells {
		c.Text = strings.TrimSpace(c.Text)
	}
	_, err := io.WriteString(w, t.Render())
	return err
}
