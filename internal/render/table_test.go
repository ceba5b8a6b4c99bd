package render

import (
	"strings"
	"testing"
)

func TestBasicTable(t *testing.T) {
	table := &Table{
		Rows: 2,
		Cols: 3,
		Cells: []*Cell{
			{Row: 0, Col: 0, Text: "A", RowSpan: 1, ColSpan: 1},
			{Row: 0, Col: 1, Text: "B", RowSpan: 1, ColSpan: 1},
			{Row: 0, Col: 2, Text: "C", RowSpan: 1, ColSpan: 1},
			{Row: 1, Col: 0, Text: "1", RowSpan: 1, ColSpan: 1},
			{Row: 1, Col: 1, Text: "2", RowSpan: 1, ColSpan: 1},
			{Row: 1, Col: 2, Text: "3", RowSpan: 1, ColSpan: 1},
		},
	}

	result := table.Render()
	t.Logf("\n%s", result)

	checkAllLinesEqualWidth(t, result)
}

func TestMultilineCell(t *testing.T) {
	table := &Table{
		Rows: 2,
		Cols: 2,
		Cells: []*Cell{
			{Row: 0, Col: 0, Text: "A", RowSpan: 1, ColSpan: 1},
			{Row: 0, Col: 1, Text: "첫째줄\n둘째줄\n셋째줄", RowSpan: 1, ColSpan: 1},
			{Row: 1, Col: 0, Text: "B", RowSpan: 1, ColSpan: 1},
			{Row: 1, Col: 1, Text: "단일줄", RowSpan: 1, ColSpan: 1},
		},
	}

	result := table.Render()
	t.Logf("\n%s", result)

	checkAllLinesEqualWidth(t, result)

	// top border + 3 display rows + middle border + 1 display row + bottom border + trailing newline = 8 lines
	lines := strings.Split(result, "\n")
	if len(lines) != 8 {
		t.Errorf("Expected 8 lines, got %d", len(lines))
	}
}

func TestMultilineWithColSpan(t *testing.T) {
	table := &Table{
		Rows: 2,
		Cols: 3,
		Cells: []*Cell{
			{Row: 0, Col: 0, Text: "Header\nLine2\nLine3", RowSpan: 1, ColSpan: 2},
			{Row: 0, Col: 2, Text: "C", RowSpan: 1, ColSpan: 1},
			{Row: 1, Col: 0, Text: "A", RowSpan: 1, ColSpan: 1},
			{Row: 1, Col: 1, Text: "B", RowSpan: 1, ColSpan: 1},
			{Row: 1, Col: 2, Text: "C", RowSpan: 1, ColSpan: 1},
		},
	}

	result := table.Render()
	t.Logf("\n%s", result)

	checkAllLinesEqualWidth(t, result)
}

func TestMultilineWithRowSpan(t *testing.T) {
	table := &Table{
		Rows: 3,
		Cols: 2,
		Cells: []*Cell{
			{Row: 0, Col: 0, Text: "A", RowSpan: 1, ColSpan: 1},
			{Row: 0, Col: 1, Text: "Merged\n3\nrows", RowSpan: 3, ColSpan: 1},
			{Row: 1, Col: 0, Text: "B", RowSpan: 1, ColSpan: 1},
			{Row: 2, Col: 0, Text: "C", RowSpan: 1, ColSpan: 1},
		},
	}

	result := table.Render()
	t.Logf("\n%s", result)

	checkAllLinesEqualWidth(t, result)
}

func TestKoreanMultiline(t *testing.T) {
	table := &Table{
		Rows: 1,
		Cols: 2,
		Cells: []*Cell{
			{Row: 0, Col: 0, Text: "제목", RowSpan: 1, ColSpan: 1},
			{Row: 0, Col: 1, Text: "첫째 줄\n둘째 줄\n셋째 줄", RowSpan: 1, ColSpan: 1},
		},
	}

	result := table.Render()
	t.Logf("\n%s", result)

	checkAllLinesEqualWidth(t, result)
}

func TestSpanClampedToBounds(t *testing.T) {
	table := &Table{
		Rows: 2,
		Cols: 2,
		Cells: []*Cell{
			{Row: 0, Col: 0, Text: "wide", RowSpan: 1, ColSpan: 5},
			{Row: 1, Col: 0, Text: "x", RowSpan: 0, ColSpan: 0},
			{Row: 1, Col: 1, Text: "y", RowSpan: 1, ColSpan: 1},
			{Row: 7, Col: 7, Text: "outside", RowSpan: 1, ColSpan: 1},
		},
	}

	result := table.Render()
	t.Logf("\n%s", result)

	checkAllLinesEqualWidth(t, result)
	if strings.Contains(result, "outside") {
		t.Error("cell outside the grid should be dropped")
	}
	if table.Cells[0].ColSpan != 2 {
		t.Errorf("expected span clamped to 2, got %d", table.Cells[0].ColSpan)
	}
}

func TestRenderTable(t *testing.T) {
	var sb strings.Builder
	err := RenderTable(&sb, &Table{
		Rows:  1,
		Cols:  1,
		Cells: []*Cell{{Row: 0, Col: 0, Text: "  셀  ", RowSpan: 1, ColSpan: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "+----+\n| 셀 |\n+----+\n"
	if sb.String() != want {
		t.Errorf("unexpected layout:\n%s\nwant:\n%s", sb.String(), want)
	}

	sb.Reset()
	if err := RenderTable(&sb, &Table{Rows: 1, Cols: 1}); err != nil || sb.Len() != 0 {
		t.Errorf("empty table should write nothing, got %q (%v)", sb.String(), err)
	}
}

func checkAllLinesEqualWidth(t *testing.T, result string) {
	lines := strings.Split(result, "\n")
	var firstLineWidth int
	for i, line := range lines {
		if line == "" {
			continue
		}
		width := displayWidth(line)
		if i == 0 || (firstLineWidth == 0 && line != "") {
			firstLineWidth = width
		}
		if width != firstLineWidth {
			t.Errorf("Line %d has different display width: expected %d, got %d\nLine: %s", i, firstLineWidth, width, line)
		}
	}
}
