package owpml

import (
	"bytes"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/hanpama/hwpx/internal/document"
	"github.com/hanpama/hwpx/internal/render"
)

type textOptions struct {
	separator string
	tables    bool
	normalize bool
}

func defaultTextOptions() textOptions {
	return textOptions{separator: "\n"}
}

// TextOption configures ExtractText.
type TextOption func(*textOptions)

// WithParagraphSeparator sets the string placed between paragraphs.
func WithParagraphSeparator(sep string) TextOption {
	return func(o *textOptions) {
		o.separator = sep
	}
}

// WithTableLayout renders tables as bordered ASCII grids after the
// paragraph that anchors them.
func WithTableLayout() TextOption {
	return func(o *textOptions) {
		o.tables = true
	}
}

// WithNormalization applies Unicode NFC to the result.
func WithNormalization() TextOption {
	return func(o *textOptions) {
		o.normalize = true
	}
}

// ExtractText returns the plain text of all sections. When the body yields
// only whitespace, the package preview text is returned instead.
func (r *Reader) ExtractText(opts ...TextOption) (string, error) {
	if r.Encrypted() {
		return "", ErrEncryptedDocument
	}
	o := defaultTextOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var paragraphs []string
	for _, p := range r.SectionPaths() {
		if !r.files.Has(p) {
			continue
		}
		sec := r.ScanSection(p)
		if sec.Unshaped {
			if len(sec.Fallback) > 0 {
				paragraphs = append(paragraphs, strings.Join(sec.Fallback, ""))
			}
			if o.tables {
				paragraphs = append(paragraphs, r.tableTexts(sec.Tables)...)
			}
			continue
		}
		for _, para := range sec.Paragraphs {
			paragraphs = append(paragraphs, paragraphText(para))
			if o.tables {
				for _, run := range para.Runs {
					paragraphs = append(paragraphs, r.tableTexts(run.Tables)...)
				}
			}
		}
		if o.tables {
			paragraphs = append(paragraphs, r.tableTexts(sec.Tables)...)
		}
	}

	combined := strings.Join(paragraphs, o.separator)
	if strings.TrimSpace(combined) == "" {
		if prv, ok := r.PreviewText(); ok {
			r.logger.Debug("body is empty, using preview text")
			combined = prv
		}
	}
	if o.normalize {
		combined = norm.NFC.String(combined)
	}
	return combined, nil
}

func paragraphText(p *document.Paragraph) string {
	var sb strings.Builder
	for _, run := range p.Runs {
		if run.Control {
			continue
		}
		sb.WriteString(run.Text)
	}
	return sb.String()
}

func (r *Reader) tableTexts(tables []*document.Table) []string {
	var out []string
	for _, t := range tables {
		var buf bytes.Buffer
		if err := render.RenderTable(&buf, toLayoutTable(t)); err != nil {
			r.logger.Debug("table layout failed", "error", err)
			continue
		}
		if s := strings.TrimRight(buf.String(), "\n"); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// toLayoutTable flattens the non-empty cell paragraphs into lines for the
// grid renderer.
func toLayoutTable(t *document.Table) *render.Table {
	lt := &render.Table{Rows: t.Rows, Cols: t.Cols}
	for _, c := range t.Cells() {
		lines := make([]string, 0, len(c.Paragraphs))
		for _, p := range c.Paragraphs {
			line := p.Text
			if len(p.Runs) > 0 {
				line = paragraphText(p)
			}
			if line != "" {
				lines = append(lines, line)
			}
		}
		lt.Cells = append(lt.Cells, &render.Cell{
			Row:     c.Row,
			Col:     c.Col,
			RowSpan: c.RowSpan,
			ColSpan: c.ColSpan,
			Text:    strings.Join(lines, "\n"),
		})
	}
	return lt
}

// PreviewText returns Preview/PrvText.txt when it holds non-blank text.
func (r *Reader) PreviewText() (string, bool) {
	p, ok := r.files.FindFold(PreviewPath)
	if !ok {
		return "", false
	}
	text, ok := r.textFile(p)
	if !ok || strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}
