package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one table cell placed on the grid. Spans below 1 count as 1.
type Cell struct {
	Row     int
	Col     int
	Text    string
	RowSpan int
	ColSpan int
}

// Table is a grid of Rows x Cols slots covered by Cells.
type Table struct {
	Rows  int
	Cols  int
	Cells []*Cell
}

// grid is the computed layout of a Table.
type grid struct {
	table *Table
	cells []*Cell // cells that start inside the grid

	owner   [][]*Cell          // owner[row][col] is the cell covering that slot
	widths  []int              // content width per column
	heights []int              // display lines per table row
	lines   map[*Cell][]string // cell text split on newlines
}

// Render lays out the table as bordered ASCII text, one line per display
// row, each terminated by a newline.
func (t *Table) Render() string {
	return t.layout().String()
}

func (t *Table) layout() *grid {
	g := &grid{
		table:   t,
		owner:   make([][]*Cell, t.Rows),
		widths:  make([]int, t.Cols),
		heights: make([]int, t.Rows),
		lines:   make(map[*Cell][]string, len(t.Cells)),
	}
	for i := range g.owner {
		g.owner[i] = make([]*Cell, t.Cols)
	}

	for _, c := range t.Cells {
		if c == nil || c.Row < 0 || c.Col < 0 || c.Row >= t.Rows || c.Col >= t.Cols {
			continue
		}
		g.cells = append(g.cells, c)
		c.RowSpan = clampSpan(c.RowSpan, c.Row, t.Rows)
		c.ColSpan = clampSpan(c.ColSpan, c.Col, t.Cols)
		g.lines[c] = strings.Split(c.Text, "\n")
		for r := c.Row; r < c.Row+c.RowSpan; r++ {
			for col := c.Col; col < c.Col+c.ColSpan; col++ {
				g.owner[r][col] = c
			}
		}
	}

	g.measureColumns()
	g.measureRows()
	return g
}

// clampSpan keeps a span at least 1 and inside the table bounds.
func clampSpan(span, start, limit int) int {
	if span < 1 {
		span = 1
	}
	if start+span > limit {
		span = max(limit-start, 1)
	}
	return span
}

func (g *grid) textWidth(c *Cell) int {
	w := 0
	for _, line := range g.lines[c] {
		w = max(w, displayWidth(line))
	}
	return w
}

func (g *grid) measureColumns() {
	for i := range g.widths {
		g.widths[i] = 1
	}

	// Single-column cells set the base widths.
	for _, c := range g.cells {
		if c.ColSpan == 1 {
			g.widths[c.Col] = max(g.widths[c.Col], g.textWidth(c))
		}
	}

	// Spanning cells spread whatever they still lack over their columns.
	for _, c := range g.cells {
		if c.ColSpan < 2 {
			continue
		}
		have := 0
		for i := c.Col; i < c.Col+c.ColSpan; i++ {
			have += g.widths[i]
		}
		need := g.textWidth(c) - have
		if need <= 0 {
			continue
		}
		for i := 0; i < c.ColSpan; i++ {
			g.widths[c.Col+i] += need / c.ColSpan
			if i < need%c.ColSpan {
				g.widths[c.Col+i]++
			}
		}
	}
}

func (g *grid) measureRows() {
	for i := range g.heights {
		g.heights[i] = 1
	}
	for _, c := range g.cells {
		g.heights[c.Row] = max(g.heights[c.Row], len(g.lines[c]))
	}
}

func (g *grid) String() string {
	var sb strings.Builder

	g.writeBorder(&sb, -1)
	for row := 0; row < g.table.Rows; row++ {
		for line := 0; line < g.heights[row]; line++ {
			g.writeContent(&sb, row, line)
		}
		g.writeBorder(&sb, row)
	}
	return sb.String()
}

// writeBorder writes the border below row; -1 is the top border.
func (g *grid) writeBorder(sb *strings.Builder, row int) {
	sb.WriteByte('+')
	for col := 0; col < g.table.Cols; col++ {
		fill := " "
		if g.splitsBelow(row, col) {
			fill = "-"
		}
		sb.WriteString(strings.Repeat(fill, g.widths[col]+2))

		if col < g.table.Cols-1 {
			if g.joinsBelow(row, col) {
				sb.WriteByte('+')
			} else {
				sb.WriteByte('-')
			}
		}
	}
	sb.WriteString("+\n")
}

func (g *grid) outerBorder(row int) bool {
	return row == -1 || row == g.table.Rows-1
}

// splitsBelow reports whether slot (row, col) and the slot under it
// belong to different cells.
func (g *grid) splitsBelow(row, col int) bool {
	if g.outerBorder(row) {
		return true
	}
	return g.owner[row][col] != g.owner[row+1][col]
}

// joinsBelow reports whether a vertical rule meets the border between
// col and col+1.
func (g *grid) joinsBelow(row, col int) bool {
	if g.outerBorder(row) {
		return true
	}
	above, below := g.owner[row], g.owner[row+1]
	return above[col] != above[col+1] || below[col] != below[col+1]
}

// writeContent writes display line `line` of table row `row`. Row-spanning
// cells show their text only in their first row.
func (g *grid) writeContent(sb *strings.Builder, row, line int) {
	sb.WriteByte('|')
	for col := 0; col < g.table.Cols; {
		c := g.owner[row][col]
		if c == nil || c.Col != col {
			col++
			continue
		}

		width := (c.ColSpan - 1) * 3
		for i := col; i < col+c.ColSpan; i++ {
			width += g.widths[i]
		}

		text := ""
		if lines := g.lines[c]; c.Row == row && line < len(lines) {
			text = lines[line]
		}

		sb.WriteByte(' ')
		sb.WriteString(text)
		sb.WriteString(strings.Repeat(" ", max(width-displayWidth(text), 0)))
		sb.WriteByte(' ')

		col += c.ColSpan
		if col < g.table.Cols {
			sb.WriteByte('|')
		}
	}
	sb.WriteString("|\n")
}

// displayWidth measures terminal columns; Hangul and other wide runes
// take two.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
