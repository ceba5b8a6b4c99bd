package xmltree

import "strings"

// ControlKeys name subtrees that carry layout or control data, never content.
var ControlKeys = []string{"secPr", "ctrl", "linesegarray"}

// InlineText returns the text of a "t"-shaped value: a Scalar, a Mapping
// with "#text", or a Sequence of those (concatenated).
func InlineText(n *Node) (string, bool) {
	if n == nil {
		return "", false
	}
	if n.Kind() != Sequence {
		return n.Text()
	}
	var sb strings.Builder
	found := false
	for _, item := range n.Seq() {
		if s, ok := item.Text(); ok {
			sb.WriteString(s)
			found = true
		}
	}
	return sb.String(), found
}

// CollectText gathers text depth-first from an arbitrary subtree.
// Control subtrees and attribute values are skipped, and a branch stops at
// the first level that has a direct "t" child.
func CollectText(n *Node) []string {
	var out []string
	collect(n, &out)
	return out
}

func collect(n *Node, out *[]string) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case Scalar:
		*out = append(*out, n.text)
	case Sequence:
		for _, item := range n.items {
			collect(item, out)
		}
	case Mapping:
		if n.HasAny(ControlKeys...) {
			return
		}
		if s, ok := n.Get(TextKey).Scalar(); ok {
			*out = append(*out, s)
		}
		if s, ok := InlineText(n.Get("t")); ok {
			*out = append(*out, s)
			return
		}
		for _, k := range n.keys {
			if k == TextKey || k == "t" || strings.HasPrefix(k, AttrPrefix) || isControlKey(k) {
				continue
			}
			collect(n.fields[k], out)
		}
	}
}

func isControlKey(k string) bool {
	for _, c := range ControlKeys {
		if k == c {
			return true
		}
	}
	return false
}
