package owpml

import (
	"strings"

	"github.com/hanpama/hwpx/internal/document"
	"github.com/hanpama/hwpx/internal/xmltree"
)

// headerStyles indexes the character and paragraph properties declared
// in Contents/header.xml by id.
type headerStyles struct {
	char  map[string]*document.CharStyle
	align map[string]string
}

func (r *Reader) headerStyles() *headerStyles {
	r.headerOnce.Do(func() {
		r.header = parseHeaderStyles(r.parsePart(HeaderPath))
	})
	return r.header
}

func parseHeaderStyles(doc *xmltree.Node) *headerStyles {
	h := &headerStyles{
		char:  map[string]*document.CharStyle{},
		align: map[string]string{},
	}
	refs := doc.Path("head", "refList")

	for _, pr := range refs.Path("charProperties", "charPr").Seq() {
		id, ok := pr.Attr("id")
		if !ok {
			continue
		}
		style := &document.CharStyle{
			Bold:      pr.Has("bold"),
			Italic:    pr.Has("italic"),
			Underline: underlined(pr.Get("underline")),
		}
		if c, ok := pr.Attr("textColor"); ok && !isDefaultColor(c) {
			style.Color = c
		}
		if !style.IsZero() {
			h.char[id] = style
		}
	}

	for _, pr := range refs.Path("paraProperties", "paraPr").Seq() {
		id, ok := pr.Attr("id")
		if !ok {
			continue
		}
		a, _ := pr.Get("align").Attr("horizontal")
		if a = strings.ToLower(a); validAlign[a] {
			h.align[id] = a
		}
	}
	return h
}

func underlined(n *xmltree.Node) bool {
	if n == nil {
		return false
	}
	typ, ok := n.Attr("type")
	return !ok || !strings.EqualFold(typ, "NONE")
}

func isDefaultColor(c string) bool {
	switch strings.ToLower(strings.TrimSpace(c)) {
	case "", "none", "#000000", "000000":
		return true
	}
	return false
}
