package owpml

import (
	"regexp"
	"sort"
	"strings"

	"github.com/hanpama/hwpx/internal/xmltree"
)

var encryptionMarker = regexp.MustCompile(`(?i)encrypt|cipher`)

// ManifestItem is one entry of the content.hpf manifest.
type ManifestItem struct {
	ID        string `json:"id,omitempty"`
	Href      string `json:"href,omitempty"`
	MediaType string `json:"mediaType,omitempty"`
}

// Summary describes the package layout.
type Summary struct {
	HasEncryptionInfo bool           `json:"hasEncryptionInfo"`
	ContentsFiles     []string       `json:"contentsFiles"`
	Manifest          []ManifestItem `json:"manifest,omitempty"`
	Spine             []string       `json:"spine,omitempty"`
	Mimetype          string         `json:"mimetype,omitempty"`
	MimetypeMismatch  bool           `json:"mimetypeMismatch,omitempty"`
}

// descriptor is the parsed Contents/content.hpf.
type descriptor struct {
	pkg      *xmltree.Node
	manifest []ManifestItem
	spine    []string
	hasMan   bool
	hasSpine bool
}

// Encrypted reports whether META-INF/manifest.xml names an encryption or
// cipher anywhere in its element names, attribute names or values. The
// result is computed once per Reader.
func (r *Reader) Encrypted() bool {
	r.encOnce.Do(func() {
		r.encrypted = hasEncryptionMarker(r.parsePart(ManifestPath))
		if r.encrypted {
			r.logger.Debug("encryption marker found", "path", ManifestPath)
		}
	})
	return r.encrypted
}

func hasEncryptionMarker(n *xmltree.Node) bool {
	if n == nil {
		return false
	}
	switch n.Kind() {
	case xmltree.Scalar:
		s, _ := n.Scalar()
		return encryptionMarker.MatchString(s)
	case xmltree.Sequence:
		for _, item := range n.Seq() {
			if hasEncryptionMarker(item) {
				return true
			}
		}
	case xmltree.Mapping:
		for _, k := range n.Keys() {
			if encryptionMarker.MatchString(k) || hasEncryptionMarker(n.Get(k)) {
				return true
			}
		}
	}
	return false
}

func (r *Reader) descriptor() *descriptor {
	r.pkgOnce.Do(func() {
		r.pkg = r.parseDescriptor()
	})
	return r.pkg
}

func (r *Reader) parseDescriptor() *descriptor {
	doc := r.parsePart(ContentPath)
	pkg := doc.Get("package")
	if pkg == nil {
		pkg = doc.Path("opf", "package")
	}
	if pkg == nil {
		return nil
	}

	d := &descriptor{pkg: pkg}
	if man := pkg.Get("manifest"); man != nil {
		d.hasMan = true
		d.manifest = []ManifestItem{}
		for _, it := range man.Get("item").Seq() {
			item := ManifestItem{}
			item.ID, _ = it.Attr("id")
			item.Href, _ = it.Attr("href")
			item.MediaType, _ = it.Attr("media-type", "mediaType")
			d.manifest = append(d.manifest, item)
		}
	}
	if sp := pkg.Get("spine"); sp != nil {
		d.hasSpine = true
		d.spine = []string{}
		for _, ref := range sp.Lookup("itemref", "itemRef").Seq() {
			if id, _ := ref.Attr("idref", "idRef"); id != "" {
				d.spine = append(d.spine, id)
			}
		}
	}
	return d
}

// manifestItem returns the first manifest item with id.
func (d *descriptor) manifestItem(id string) (ManifestItem, bool) {
	if d == nil {
		return ManifestItem{}, false
	}
	for _, it := range d.manifest {
		if it.ID == id {
			return it, true
		}
	}
	return ManifestItem{}, false
}

// Summary reports the package layout. It does not fail on encrypted
// packages so callers can inspect them.
func (r *Reader) Summary() Summary {
	s := Summary{
		HasEncryptionInfo: r.Encrypted(),
		ContentsFiles:     []string{},
		Mimetype:          r.mimetype,
		MimetypeMismatch:  r.mimetypeMismatch,
	}
	for _, p := range r.files.Paths() {
		if strings.HasPrefix(p, "Contents/") {
			s.ContentsFiles = append(s.ContentsFiles, p)
		}
	}
	sort.Strings(s.ContentsFiles)
	if d := r.descriptor(); d != nil {
		if d.hasMan {
			s.Manifest = append([]ManifestItem{}, d.manifest...)
		}
		if d.hasSpine {
			s.Spine = append([]string{}, d.spine...)
		}
	}
	return s
}
