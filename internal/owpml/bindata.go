package owpml

import (
	"encoding/base64"
	"path"
	"sort"
	"strings"
)

var imageTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
}

// ResolveBinary maps a binary item id to an archive path. It never fails:
// when nothing matches, BinData/<id> is returned.
func (r *Reader) ResolveBinary(id string) string {
	direct := BinDataDir + id
	if r.files.Has(direct) {
		return direct
	}

	item, ok := r.descriptor().manifestItem(id)
	if ok && item.Href != "" {
		candidate := item.Href
		if !strings.HasPrefix(candidate, BinDataDir) {
			candidate = BinDataDir + candidate
		}
		if r.files.Has(candidate) {
			return candidate
		}
		if r.files.Has(item.Href) {
			return item.Href
		}
	}
	return direct
}

// ListImages returns every BinData entry, sorted.
func (r *Reader) ListImages() []string {
	out := []string{}
	for _, p := range r.files.Paths() {
		if strings.HasPrefix(p, BinDataDir) && !strings.HasSuffix(p, "/") {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// ImageMimeType guesses a media type from the file extension.
func ImageMimeType(p string) string {
	if t, ok := imageTypes[strings.ToLower(path.Ext(p))]; ok {
		return t
	}
	return "application/octet-stream"
}

// dataURI inlines the entry at p, reporting false when it is missing.
func (r *Reader) dataURI(p string) (string, bool) {
	data, ok := r.files.Get(p)
	if !ok {
		return "", false
	}
	return "data:" + ImageMimeType(p) + ";base64," + base64.StdEncoding.EncodeToString(data), true
}
