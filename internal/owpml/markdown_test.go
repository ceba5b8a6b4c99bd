package owpml

import (
	"strings"
	"testing"
)

func TestExtractMarkdown(t *testing.T) {
	r := newTestReader(t, entry{"Contents/section0.xml", section(
		`<hp:p><hp:run><hp:charPr bold="true"/><hp:t>Title</hp:t></hp:run></hp:p>` +
			para("body text") +
			`<hp:tbl><hp:tr><hp:tc>` + para("k") + `</hp:tc><hp:tc>` + para("v") + `</hp:tc></hp:tr></hp:tbl>`,
	)})

	md, err := r.ExtractMarkdown()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"**Title**", "body text", "| k", "v |"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestExtractMarkdownEmpty(t *testing.T) {
	r := newTestReader(t)
	md, err := r.ExtractMarkdown()
	if err != nil || md != "" {
		t.Errorf("ExtractMarkdown() = %q, %v", md, err)
	}
}
