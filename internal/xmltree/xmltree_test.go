package xmltree

import (
	"strings"
	"testing"
)

func TestParseStripsPrefixes(t *testing.T) {
	doc := Parse(`<?xml version="1.0" encoding="UTF-8"?>
<hs:sec xmlns:hs="urn:s" xmlns:hp="urn:p">
  <hp:p id="1"><hp:run charPrIDRef="0"><hp:t>Hello</hp:t></hp:run></hp:p>
</hs:sec>`)
	if doc == nil {
		t.Fatal("Parse returned nil")
	}

	sec := doc.Lookup("hp:section", "sec")
	if sec == nil {
		t.Fatalf("section root not found, keys: %v", doc.Keys())
	}
	if sec.Has("@xmlns") || sec.Has("@hs") || sec.Has("@hp") {
		t.Errorf("namespace declarations leaked into attributes: %v", sec.Keys())
	}

	p := sec.Get("p")
	if id, _ := p.Attr("id"); id != "1" {
		t.Errorf("expected id=1, got %q", id)
	}
	text, ok := p.Path("run", "hp:t|t").Text()
	if !ok || text != "Hello" {
		t.Errorf("expected Hello, got %q (%v)", text, ok)
	}
}

func TestParseCardinality(t *testing.T) {
	doc := Parse(`<sec><p><run><t>a</t></run></p><p><run><t>b</t></run></p><tbl/></sec>`)
	sec := doc.Get("sec")

	ps := sec.Get("p").Seq()
	if len(ps) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(ps))
	}
	if len(sec.Get("tbl").Seq()) != 1 {
		t.Error("single element should normalize to a one-element sequence")
	}
	if sec.Get("missing").Seq() != nil {
		t.Error("missing key should normalize to nil")
	}
}

func TestParseKeepsLeafWhitespace(t *testing.T) {
	doc := Parse("<sec>\n  <t>  two spaces</t>\n  <t></t>\n</sec>")
	ts := doc.Path("sec", "t").Seq()
	if len(ts) != 2 {
		t.Fatalf("expected 2 t nodes, got %d", len(ts))
	}
	if s, _ := ts[0].Scalar(); s != "  two spaces" {
		t.Errorf("leaf text changed: %q", s)
	}
	if s, ok := ts[1].Scalar(); !ok || s != "" {
		t.Errorf("empty element should be an empty scalar, got %q (%v)", s, ok)
	}
	if doc.Get("sec").Has(TextKey) {
		t.Error("layout whitespace should not become #text")
	}
}

func TestParseMixedText(t *testing.T) {
	doc := Parse(`<t color="red">Hello <tab/>World</t>`)
	text, ok := doc.Get("t").Text()
	if !ok || text != "Hello World" {
		t.Errorf("expected mixed text, got %q", text)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "not xml", "<a><b></a", "<a x=></a>"} {
		if Parse(in) != nil {
			t.Errorf("Parse(%q) should return nil", in)
		}
	}
}

func TestParseForeignEncodingDeclaration(t *testing.T) {
	doc := Parse(`<?xml version="1.0" encoding="UTF-16"?><Version><OWPMLVersion>1.2</OWPMLVersion></Version>`)
	if v, _ := doc.Path("Version", "OWPMLVersion").Text(); v != "1.2" {
		t.Errorf("expected 1.2, got %q", v)
	}
}

func TestLookupAliases(t *testing.T) {
	m := NewMapping()
	m.Set("itemRef", NewScalar("x"))
	if got, _ := m.Lookup("itemref", "itemRef").Scalar(); got != "x" {
		t.Errorf("expected second alias to match, got %q", got)
	}
	var nilNode *Node
	if nilNode.Lookup("a").Get("b").Seq() != nil {
		t.Error("nil chains should stay nil")
	}
}

func TestCollectText(t *testing.T) {
	doc := Parse(`<root>
  <hidden><secPr/><t>hidden</t></hidden>
  <block id="attr-value">
    <t>first</t>
    <deeper><t>not visited</t></deeper>
  </block>
  <other>
    <wrap><ctrl/><t>control</t></wrap>
    <para><linesegarray><seg>skip</seg></linesegarray><x>also skipped</x></para>
    <leaf>second</leaf>
  </other>
</root>`)

	got := strings.Join(CollectText(doc), "|")
	if got != "first|second" {
		t.Errorf("expected first|second, got %q", got)
	}
}

func TestCollectTextSkipsMarkedSubtree(t *testing.T) {
	doc := Parse(`<run><secPr/><t>nope</t></run>`)
	if got := CollectText(doc); len(got) != 0 {
		t.Errorf("expected nothing from a control run, got %v", got)
	}
}

func TestInlineText(t *testing.T) {
	seq := NewSequence(NewScalar("a"), NewScalar("b"))
	if s, ok := InlineText(seq); !ok || s != "ab" {
		t.Errorf("expected ab, got %q", s)
	}
	if _, ok := InlineText(NewMapping()); ok {
		t.Error("mapping without #text has no inline text")
	}
}
