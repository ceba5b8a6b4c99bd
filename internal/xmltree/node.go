// Package xmltree projects OWPML XML parts into a loosely typed tree and
// provides the lookups needed to read it without knowing which spelling
// (prefixed or not) or which cardinality a producer used.
//
// A Node is one of three kinds:
//
//	Scalar    text of a leaf element without attributes
//	Sequence  repeated sibling elements sharing a name
//	Mapping   element with attributes ("@name"), children and mixed text ("#text")
//
// All accessors are nil-safe so lookups can be chained.
package xmltree

import "strings"

// Kind discriminates the Node variant.
type Kind int

const (
	Scalar Kind = iota
	Sequence
	Mapping
)

// TextKey holds the character data of a Mapping.
const TextKey = "#text"

// AttrPrefix marks attribute keys inside a Mapping.
const AttrPrefix = "@"

// Node is a Scalar, Sequence or Mapping.
type Node struct {
	kind   Kind
	text   string
	items  []*Node
	keys   []string
	fields map[string]*Node
}

// NewScalar returns a Scalar node.
func NewScalar(s string) *Node {
	return &Node{kind: Scalar, text: s}
}

// NewSequence returns a Sequence node holding items.
func NewSequence(items ...*Node) *Node {
	return &Node{kind: Sequence, items: items}
}

// NewMapping returns an empty Mapping node.
func NewMapping() *Node {
	return &Node{kind: Mapping, fields: map[string]*Node{}}
}

// Set stores v under key, keeping first-insertion order.
func (n *Node) Set(key string, v *Node) {
	if _, ok := n.fields[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.fields[key] = v
}

// add appends v under key, turning an existing value into a Sequence.
func (n *Node) add(key string, v *Node) {
	cur, ok := n.fields[key]
	if !ok {
		n.Set(key, v)
		return
	}
	if cur.kind == Sequence {
		cur.items = append(cur.items, v)
		return
	}
	n.fields[key] = NewSequence(cur, v)
}

// Kind returns the variant of n. A nil node reports Scalar.
func (n *Node) Kind() Kind {
	if n == nil {
		return Scalar
	}
	return n.kind
}

// Get returns the value stored under key, or nil.
func (n *Node) Get(key string) *Node {
	if n == nil || n.kind != Mapping {
		return nil
	}
	return n.fields[key]
}

// Has reports whether key is present.
func (n *Node) Has(key string) bool {
	return n.Get(key) != nil
}

// Lookup returns the value of the first alias present in n.
func (n *Node) Lookup(aliases ...string) *Node {
	for _, a := range aliases {
		if v := n.Get(a); v != nil {
			return v
		}
	}
	return nil
}

// HasAny reports whether any of keys is present.
func (n *Node) HasAny(keys ...string) bool {
	return n.Lookup(keys...) != nil
}

// Seq normalizes n to a slice: nil yields nil, a Sequence its items,
// anything else a one-element slice.
func (n *Node) Seq() []*Node {
	if n == nil {
		return nil
	}
	if n.kind == Sequence {
		return n.items
	}
	return []*Node{n}
}

// Keys returns mapping keys in document order.
func (n *Node) Keys() []string {
	if n == nil || n.kind != Mapping {
		return nil
	}
	return n.keys
}

// Scalar returns the text of a Scalar node.
func (n *Node) Scalar() (string, bool) {
	if n == nil || n.kind != Scalar {
		return "", false
	}
	return n.text, true
}

// Text returns inline text: a Scalar's value or a Mapping's "#text".
func (n *Node) Text() (string, bool) {
	if n == nil {
		return "", false
	}
	switch n.kind {
	case Scalar:
		return n.text, true
	case Mapping:
		return n.Get(TextKey).Scalar()
	}
	return "", false
}

// Attr returns the first attribute present among names (without "@").
func (n *Node) Attr(names ...string) (string, bool) {
	for _, name := range names {
		if s, ok := n.Get(AttrPrefix + name).Scalar(); ok {
			return s, true
		}
	}
	return "", false
}

// Path walks nested keys, each step trying the aliases separated by "|".
//
//	n.Path("package", "manifest", "item")
//	n.Path("spine", "itemref|itemRef")
func (n *Node) Path(steps ...string) *Node {
	cur := n
	for _, step := range steps {
		cur = cur.Lookup(strings.Split(step, "|")...)
		if cur == nil {
			return nil
		}
	}
	return cur
}
