package owpml

import (
	"io"
	"log/slog"
	"testing"

	"github.com/hanpama/hwpx/internal/archive"
)

type entry struct {
	name string
	body string
}

func newTestReader(t *testing.T, entries ...entry) *Reader {
	t.Helper()
	paths := make([]string, 0, len(entries))
	data := make(map[string][]byte, len(entries))
	for _, e := range entries {
		paths = append(paths, e.name)
		data[e.name] = []byte(e.body)
	}
	return NewReader(archive.NewFileMap(paths, data), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// section wraps paragraph markup in a prefixed section root.
func section(body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>` +
		`<hs:sec xmlns:hs="urn:hs" xmlns:hp="urn:hp" xmlns:hc="urn:hc">` + body + `</hs:sec>`
}

func para(text string) string {
	return `<hp:p><hp:run><hp:t>` + text + `</hp:t></hp:run></hp:p>`
}

func contentHPFWith(manifest, spine string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>` +
		`<opf:package xmlns:opf="urn:opf" xmlns:dc="urn:dc">` +
		`<opf:manifest>` + manifest + `</opf:manifest>` +
		`<opf:spine>` + spine + `</opf:spine>` +
		`</opf:package>`
}
