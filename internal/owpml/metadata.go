package owpml

import (
	"strings"

	"github.com/hanpama/hwpx/internal/xmltree"
)

// Metadata holds the descriptive fields of content.hpf together with the
// application version (version.xml) and saved caret position
// (settings.xml). Empty fields were absent from the package.
type Metadata struct {
	Title         string `json:"title,omitempty"`
	Creator       string `json:"creator,omitempty"`
	Created       string `json:"created,omitempty"`
	Modified      string `json:"modified,omitempty"`
	Version       string `json:"version,omitempty"`
	CaretPosition string `json:"caretPosition,omitempty"`
}

// Info is the metadata plus the package summary.
type Info struct {
	Metadata
	Summary Summary `json:"summary"`
}

// metadata fields and the <meta name="..."> spellings that may carry them.
var metaFallbacks = map[string][]string{
	"title":    {"title"},
	"creator":  {"creator", "author"},
	"created":  {"CreatedDate", "created"},
	"modified": {"ModifiedDate", "modified"},
}

// Metadata reads title, creator and dates from content.hpf, the version
// from version.xml and the caret position from settings.xml.
func (r *Reader) Metadata() Metadata {
	md := Metadata{
		Version:       r.Version(),
		CaretPosition: r.CaretPosition(),
	}
	d := r.descriptor()
	if d == nil {
		return md
	}
	fields := d.pkg.Get("metadata")
	if fields == nil {
		return md
	}
	md.Title = metaField(fields, "title")
	md.Creator = metaField(fields, "creator")
	md.Created = metaField(fields, "created")
	md.Modified = metaField(fields, "modified")
	return md
}

func metaField(md *xmltree.Node, name string) string {
	if s, ok := md.Get(name).Text(); ok && strings.TrimSpace(s) != "" {
		return s
	}
	for _, meta := range md.Get("meta").Seq() {
		key, _ := meta.Attr("name")
		for _, alias := range metaFallbacks[name] {
			if !strings.EqualFold(key, alias) {
				continue
			}
			if s, ok := meta.Text(); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return ""
}

// Info returns everything inspect reports about the package.
func (r *Reader) Info() Info {
	return Info{
		Metadata: r.Metadata(),
		Summary:  r.Summary(),
	}
}

// Version reads version.xml. The OWPMLVersion element is preferred; an
// HCFVersion root falls back to its dotted attribute form.
func (r *Reader) Version() string {
	doc := r.parsePart(VersionPath)
	if doc == nil {
		return ""
	}
	if v, ok := doc.Path("Version|version", "OWPMLVersion|owpmlVersion").Text(); ok && v != "" {
		return v
	}

	hcf := doc.Get("HCFVersion")
	var parts []string
	for _, attr := range []string{"major", "minor", "micro", "buildNumber"} {
		v, ok := hcf.Attr(attr)
		if !ok || v == "" {
			break
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, ".")
}

// CaretPosition reads settings.xml and formats "list:para:pos".
func (r *Reader) CaretPosition() string {
	doc := r.parsePart(SettingsPath)
	root := doc.Lookup("HWPApplicationSetting", "Settings", "settings")
	caret := root.Lookup("CaretPosition", "caretPosition")
	if caret == nil {
		return ""
	}

	list, _ := caret.Attr("listIDRef", "listIdRef")
	para, _ := caret.Attr("paraIDRef", "paraIdRef")
	pos, _ := caret.Attr("pos")
	if list == "" && para == "" && pos == "" {
		return ""
	}
	return orZero(list) + ":" + orZero(para) + ":" + orZero(pos)
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
