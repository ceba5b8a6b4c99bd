package xmltree

import (
	"io"
	"strings"

	"github.com/beevik/etree"
)

// Parse parses an XML document into a Mapping keyed by the root element name.
// Any parse failure yields nil: callers treat it as "no structured data here".
func Parse(text string) *Node {
	doc := etree.NewDocument()
	// Text has already been decoded, whatever the declaration claims.
	doc.ReadSettings.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	if err := doc.ReadFromString(text); err != nil {
		return nil
	}
	root := doc.Root()
	if root == nil {
		return nil
	}

	top := NewMapping()
	top.Set(root.Tag, convert(root))
	return top
}

func convert(el *etree.Element) *Node {
	attrs := make([]etree.Attr, 0, len(el.Attr))
	for _, a := range el.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}
		attrs = append(attrs, a)
	}

	hasElements := false
	for _, tok := range el.Child {
		if _, ok := tok.(*etree.Element); ok {
			hasElements = true
			break
		}
	}

	if !hasElements && len(attrs) == 0 {
		return NewScalar(charData(el, false))
	}

	m := NewMapping()
	for _, a := range attrs {
		m.Set(AttrPrefix+a.Key, NewScalar(a.Value))
	}
	if text := charData(el, hasElements); text != "" {
		m.Set(TextKey, NewScalar(text))
	}
	for _, tok := range el.Child {
		if child, ok := tok.(*etree.Element); ok {
			m.add(child.Tag, convert(child))
		}
	}
	return m
}

// charData concatenates the direct character data of el. Whitespace-only
// runs between child elements are layout, not content.
func charData(el *etree.Element, skipBlank bool) string {
	var sb strings.Builder
	for _, tok := range el.Child {
		cd, ok := tok.(*etree.CharData)
		if !ok {
			continue
		}
		if skipBlank && strings.TrimSpace(cd.Data) == "" {
			continue
		}
		sb.WriteString(cd.Data)
	}
	return sb.String()
}
