package owpml

import (
	"strconv"
	"strings"

	"github.com/hanpama/hwpx/internal/document"
	"github.com/hanpama/hwpx/internal/xmltree"
)

// Element spellings accepted for each structural role. Namespace prefixes
// are already stripped by the parser.
var (
	sectionKeys   = []string{"sec", "section"}
	paragraphKeys = []string{"p"}
	runKeys       = []string{"run"}
	textKeys      = []string{"t"}
	tableKeys     = []string{"tbl"}
	rowKeys       = []string{"tr"}
	cellKeys      = []string{"tc"}
	charPrKeys    = []string{"charPr"}
)

var validAlign = map[string]bool{
	"left":    true,
	"center":  true,
	"right":   true,
	"justify": true,
}

func sectionRoot(doc *xmltree.Node) *xmltree.Node {
	return doc.Lookup(sectionKeys...)
}

// ScanSection parses one body part into the document model. It never
// fails: malformed or unshaped parts come back with Unshaped set.
func (r *Reader) ScanSection(path string) *document.Section {
	sec := &document.Section{Path: path}
	doc := r.parsePart(path)

	root := sectionRoot(doc)
	if root == nil {
		sec.Unshaped = true
		sec.Fallback = xmltree.CollectText(doc)
		return sec
	}
	sec.Structured = true

	for _, tbl := range root.Lookup(tableKeys...).Seq() {
		sec.Tables = append(sec.Tables, r.scanTable(tbl))
	}

	ps := root.Lookup(paragraphKeys...)
	if ps == nil {
		sec.Unshaped = true
		sec.Fallback = xmltree.CollectText(root)
		return sec
	}
	for _, p := range ps.Seq() {
		sec.Paragraphs = append(sec.Paragraphs, r.scanParagraph(p))
	}
	return sec
}

func (r *Reader) scanParagraph(p *xmltree.Node) *document.Paragraph {
	para := &document.Paragraph{Align: r.paragraphAlign(p)}
	for _, run := range p.Lookup(runKeys...).Seq() {
		para.Runs = append(para.Runs, r.scanRun(run))
	}
	if len(para.Runs) == 0 {
		para.Text, _ = p.Text()
	}
	return para
}

func (r *Reader) scanRun(n *xmltree.Node) *document.Run {
	run := &document.Run{}
	if n.HasAny("secPr", "ctrl") {
		run.Control = true
		return run
	}
	run.Text, _ = xmltree.InlineText(n.Lookup(textKeys...))
	run.BinRef = findBinRef(n)
	run.Style = r.charStyle(n)
	for _, tbl := range n.Lookup(tableKeys...).Seq() {
		run.Tables = append(run.Tables, r.scanTable(tbl))
	}
	return run
}

// charStyle reads an inline charPr, or the header.xml character
// properties named by charPrIDRef.
func (r *Reader) charStyle(run *xmltree.Node) *document.CharStyle {
	if pr := run.Lookup(charPrKeys...); pr != nil {
		style := &document.CharStyle{
			Bold:      attrIs(pr, "true", "bold", "b"),
			Italic:    attrIs(pr, "true", "italic", "i"),
			Underline: attrIs(pr, "true", "underline", "u"),
		}
		style.Color, _ = pr.Attr("color", "fontColor")
		style.Size, _ = pr.Attr("sz", "size")
		if style.IsZero() {
			return nil
		}
		return style
	}
	if id, ok := run.Attr("charPrIDRef"); ok {
		return r.headerStyles().char[id]
	}
	return nil
}

func attrIs(n *xmltree.Node, want string, names ...string) bool {
	for _, name := range names {
		if v, ok := n.Attr(name); ok && v == want {
			return true
		}
	}
	return false
}

// alignOf reads an alignment declared on the node itself or on an
// embedded paraPr/cellPr.
func alignOf(n *xmltree.Node) string {
	v, ok := n.Attr("align", "textAlign")
	if !ok {
		v, ok = n.Get("paraPr").Attr("align")
	}
	if !ok {
		v, ok = n.Get("cellPr").Attr("align")
	}
	if !ok {
		return ""
	}
	v = strings.ToLower(v)
	if !validAlign[v] {
		return ""
	}
	return v
}

func (r *Reader) paragraphAlign(p *xmltree.Node) string {
	if a := alignOf(p); a != "" {
		return a
	}
	if id, ok := p.Attr("paraPrIDRef"); ok {
		return r.headerStyles().align[id]
	}
	return ""
}

// findBinRef returns the binary item id referenced by an image-like
// child of run, or "".
func findBinRef(run *xmltree.Node) string {
	for _, key := range []string{"pic", "picture", "draw", "img"} {
		for _, n := range run.Get(key).Seq() {
			if ref := binRefOf(n); ref != "" {
				return ref
			}
		}
	}
	return ""
}

func binRefOf(n *xmltree.Node) string {
	if v, ok := n.Attr("binaryItemIDRef"); ok && v != "" {
		return v
	}
	if v, ok := n.Get("img").Attr("binaryItemIDRef"); ok && v != "" {
		return v
	}
	if v, ok := n.Get("binItem").Attr("ref"); ok && v != "" {
		return v
	}
	if v, ok := n.Attr("ref"); ok && v != "" {
		return v
	}
	return ""
}

func (r *Reader) scanTable(n *xmltree.Node) *document.Table {
	t := &document.Table{}
	for ri, tr := range n.Lookup(rowKeys...).Seq() {
		var row []*document.Cell
		col := 0
		for _, tc := range tr.Lookup(cellKeys...).Seq() {
			cell := &document.Cell{
				Row:     ri,
				Col:     col,
				RowSpan: span(tc, "rowSpan", "rowspan"),
				ColSpan: span(tc, "colSpan", "colspan", "gridSpan"),
				Align:   alignOf(tc),
			}
			if addr := tc.Get("cellAddr"); addr != nil {
				if v, ok := intAttr(addr, "rowAddr"); ok {
					cell.Row = v
				}
				if v, ok := intAttr(addr, "colAddr"); ok {
					cell.Col = v
				}
			}
			cell.Paragraphs = r.cellParagraphs(tc)
			col = cell.Col + cell.ColSpan
			row = append(row, cell)

			t.Rows = max(t.Rows, cell.Row+cell.RowSpan)
			t.Cols = max(t.Cols, cell.Col+cell.ColSpan)
		}
		t.Grid = append(t.Grid, row)
	}
	if v, ok := intAttr(n, "rowCnt"); ok {
		t.Rows = max(t.Rows, v)
	}
	if v, ok := intAttr(n, "colCnt"); ok {
		t.Cols = max(t.Cols, v)
	}
	return t
}

// span reads a span attribute from the cell or its cellSpan child.
// Missing or invalid values count as 1.
func span(tc *xmltree.Node, names ...string) int {
	if v, ok := intAttr(tc, names...); ok && v > 0 {
		return v
	}
	if v, ok := intAttr(tc.Get("cellSpan"), names...); ok && v > 0 {
		return v
	}
	return 1
}

func intAttr(n *xmltree.Node, names ...string) (int, bool) {
	s, ok := n.Attr(names...)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// cellParagraphs reads cell content from direct paragraphs, a subList,
// bare runs, or plain text, in that order.
func (r *Reader) cellParagraphs(tc *xmltree.Node) []*document.Paragraph {
	ps := tc.Lookup(paragraphKeys...)
	if ps == nil {
		ps = tc.Get("subList").Lookup(paragraphKeys...)
	}
	if ps != nil {
		var out []*document.Paragraph
		for _, p := range ps.Seq() {
			out = append(out, r.scanParagraph(p))
		}
		return out
	}

	if runs := tc.Lookup(runKeys...); runs != nil {
		para := &document.Paragraph{}
		for _, run := range runs.Seq() {
			para.Runs = append(para.Runs, r.scanRun(run))
		}
		return []*document.Paragraph{para}
	}
	if text, ok := tc.Text(); ok {
		return []*document.Paragraph{{Text: text}}
	}
	return nil
}
