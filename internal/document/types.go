package document

// Section is one body part of the document (Contents/sectionN.xml).
type Section struct {
	Path       string
	Paragraphs []*Paragraph
	Tables     []*Table

	// Structured reports that the part has a recognized section root.
	Structured bool

	// Unshaped is set when the part has no paragraph shape at all;
	// Fallback then holds the raw text collected from it.
	Unshaped bool
	Fallback []string
}

// Paragraph is an ordered list of runs.
type Paragraph struct {
	Align string
	Runs  []*Run

	// Text is the paragraph's own inline text, used only when it has no runs.
	Text string
}

// Empty reports whether the paragraph carries no runs (a blank line).
func (p *Paragraph) Empty() bool {
	return len(p.Runs) == 0
}

// Run is the smallest styled text unit.
type Run struct {
	Text   string
	Style  *CharStyle
	BinRef string

	// Control marks section-property / control runs; they never produce output.
	Control bool

	// Tables anchored in this run.
	Tables []*Table
}

// CharStyle holds the character properties the renderers understand.
type CharStyle struct {
	Bold      bool
	Italic    bool
	Underline bool
	Color     string
	Size      string
}

// IsZero reports whether no property is set.
func (s *CharStyle) IsZero() bool {
	return s == nil || (!s.Bold && !s.Italic && !s.Underline && s.Color == "" && s.Size == "")
}

// Table is a grid of cells in row order.
type Table struct {
	Rows int
	Cols int
	Grid [][]*Cell
}

// Cells returns all cells in row order.
func (t *Table) Cells() []*Cell {
	var out []*Cell
	for _, row := range t.Grid {
		out = append(out, row...)
	}
	return out
}

// Cell is a table cell. Spans default to 1.
type Cell struct {
	Row        int
	Col        int
	RowSpan    int
	ColSpan    int
	Align      string
	Paragraphs []*Paragraph
}
