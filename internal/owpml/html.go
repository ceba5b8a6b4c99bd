package owpml

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hanpama/hwpx/internal/document"
)

var (
	hexColor    = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)
	newlineRuns = regexp.MustCompile(`\n+`)
	numericSize = regexp.MustCompile(`^\d+(\.\d+)?$`)
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

type htmlOptions struct {
	paragraphTag   string
	tableClass     string
	srcResolver    func(path string) string
	images         bool
	tables         bool
	styles         bool
	embedImages    bool
	headerFirstRow bool
}

func defaultHTMLOptions() htmlOptions {
	return htmlOptions{
		paragraphTag: "p",
		tableClass:   "hwpx-table",
		images:       true,
		tables:       true,
		styles:       true,
	}
}

// HTMLOption configures ExtractHTML.
type HTMLOption func(*htmlOptions)

// WithParagraphTag sets the element name used for paragraphs.
func WithParagraphTag(tag string) HTMLOption {
	return func(o *htmlOptions) {
		if tag != "" {
			o.paragraphTag = tag
		}
	}
}

// WithTableClass sets the class attribute of rendered tables.
func WithTableClass(class string) HTMLOption {
	return func(o *htmlOptions) {
		o.tableClass = class
	}
}

// WithImageSrcResolver maps a BinData path to the src written into <img>.
// Embedded images take precedence.
func WithImageSrcResolver(fn func(path string) string) HTMLOption {
	return func(o *htmlOptions) {
		o.srcResolver = fn
	}
}

// WithImages toggles <img> output.
func WithImages(enabled bool) HTMLOption {
	return func(o *htmlOptions) {
		o.images = enabled
	}
}

// WithTables toggles table output.
func WithTables(enabled bool) HTMLOption {
	return func(o *htmlOptions) {
		o.tables = enabled
	}
}

// WithStyles toggles bold/italic/underline/color/size markup.
func WithStyles(enabled bool) HTMLOption {
	return func(o *htmlOptions) {
		o.styles = enabled
	}
}

// WithEmbeddedImages inlines image bytes as data URIs.
func WithEmbeddedImages(enabled bool) HTMLOption {
	return func(o *htmlOptions) {
		o.embedImages = enabled
	}
}

// WithHeaderFirstRow renders the first row of every table with <th>.
func WithHeaderFirstRow(enabled bool) HTMLOption {
	return func(o *htmlOptions) {
		o.headerFirstRow = enabled
	}
}

// ExtractHTML renders all sections as an HTML fragment. When the body
// renders to whitespace only, the preview text is wrapped in paragraphs.
func (r *Reader) ExtractHTML(opts ...HTMLOption) (string, error) {
	if r.Encrypted() {
		return "", ErrEncryptedDocument
	}
	o := defaultHTMLOptions()
	for _, opt := range opts {
		opt(&o)
	}

	h := &htmlWriter{r: r, o: &o}
	for _, p := range r.SectionPaths() {
		if !r.files.Has(p) {
			continue
		}
		sec := r.ScanSection(p)
		if !sec.Structured {
			continue
		}
		for _, para := range sec.Paragraphs {
			h.paragraph(para)
		}
		if o.tables {
			for _, t := range sec.Tables {
				h.table(t)
			}
		}
	}

	out := h.sb.String()
	if strings.TrimSpace(out) != "" {
		return out, nil
	}
	if prv, ok := r.PreviewText(); ok {
		r.logger.Debug("body is empty, using preview text")
		return "<p>" + newlineRuns.ReplaceAllString(escapeHTML(prv), "</p><p>") + "</p>", nil
	}
	return out, nil
}

// escapeHTML escapes text content. Quotes are left as they are.
func escapeHTML(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttr escapes a double-quoted attribute value.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

type htmlWriter struct {
	r  *Reader
	o  *htmlOptions
	sb strings.Builder
}

func (h *htmlWriter) paragraph(p *document.Paragraph) {
	tag := h.o.paragraphTag
	h.sb.WriteString("<" + tag)
	if p.Align != "" {
		h.sb.WriteString(` style="text-align:` + p.Align + `"`)
	}
	h.sb.WriteString(">")
	h.sb.WriteString(h.inline(p))
	h.sb.WriteString("</" + tag + ">")

	if !h.o.tables {
		return
	}
	for _, run := range p.Runs {
		if run.Control {
			continue
		}
		for _, t := range run.Tables {
			h.table(t)
		}
	}
}

// inline renders the content of a paragraph without its element.
func (h *htmlWriter) inline(p *document.Paragraph) string {
	if len(p.Runs) == 0 {
		return escapeHTML(p.Text)
	}
	var sb strings.Builder
	for _, run := range p.Runs {
		sb.WriteString(h.run(run))
	}
	return sb.String()
}

func (h *htmlWriter) run(run *document.Run) string {
	if run.Control {
		return ""
	}
	out := escapeHTML(run.Text)

	if h.o.images && run.BinRef != "" {
		if p := h.r.ResolveBinary(run.BinRef); p != "" {
			out += `<img src="` + escapeAttr(h.imageSrc(p)) + `" alt="" />`
		}
	}

	if h.o.styles && !run.Style.IsZero() {
		out = styled(run.Style, out)
	}
	return out
}

func (h *htmlWriter) imageSrc(p string) string {
	switch {
	case h.o.embedImages:
		if uri, ok := h.r.dataURI(p); ok {
			return uri
		}
		return p
	case h.o.srcResolver != nil:
		return h.o.srcResolver(p)
	default:
		return p
	}
}

func styled(s *document.CharStyle, inner string) string {
	var open, close string
	if s.Bold {
		open += "<strong>"
		close = "</strong>" + close
	}
	if s.Italic {
		open += "<em>"
		close = "</em>" + close
	}

	var css []string
	if s.Underline {
		css = append(css, "text-decoration:underline")
	}
	if s.Color != "" {
		css = append(css, "color:"+normalizeColor(s.Color))
	}
	if s.Size != "" {
		css = append(css, "font-size:"+normalizeSize(s.Size))
	}
	if len(css) > 0 {
		inner = `<span style="` + escapeAttr(strings.Join(css, ";")) + `">` + inner + "</span>"
	}
	return open + inner + close
}

func normalizeColor(c string) string {
	c = strings.TrimSpace(c)
	if hexColor.MatchString(c) && !strings.HasPrefix(c, "#") {
		return "#" + c
	}
	return c
}

func normalizeSize(s string) string {
	s = strings.TrimSpace(s)
	if numericSize.MatchString(s) {
		return s + "pt"
	}
	return s
}

func (h *htmlWriter) table(t *document.Table) {
	h.sb.WriteString(`<table class="` + escapeAttr(h.o.tableClass) + `">`)
	for ri, row := range t.Grid {
		h.sb.WriteString("<tr>")
		tag := "td"
		if h.o.headerFirstRow && ri == 0 {
			tag = "th"
		}
		for _, c := range row {
			h.sb.WriteString("<" + tag)
			if c.ColSpan != 1 {
				h.sb.WriteString(` colspan="` + strconv.Itoa(c.ColSpan) + `"`)
			}
			if c.RowSpan != 1 {
				h.sb.WriteString(` rowspan="` + strconv.Itoa(c.RowSpan) + `"`)
			}
			if c.Align != "" {
				h.sb.WriteString(` style="text-align:` + c.Align + `"`)
			}
			h.sb.WriteString(">")
			h.cell(c)
			h.sb.WriteString("</" + tag + ">")
		}
		h.sb.WriteString("</tr>")
	}
	h.sb.WriteString("</table>")
}

// cell writes cell paragraphs separated by newlines. Tables nested in a
// cell follow its text.
func (h *htmlWriter) cell(c *document.Cell) {
	parts := make([]string, 0, len(c.Paragraphs))
	for _, p := range c.Paragraphs {
		parts = append(parts, h.inline(p))
	}
	h.sb.WriteString(strings.Join(parts, "\n"))

	for _, p := range c.Paragraphs {
		for _, run := range p.Runs {
			if run.Control {
				continue
			}
			for _, t := range run.Tables {
				h.table(t)
			}
		}
	}
}
