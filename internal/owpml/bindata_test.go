package owpml

import (
	"reflect"
	"testing"
)

func TestResolveBinary(t *testing.T) {
	r := newTestReader(t,
		entry{ContentPath, contentHPFWith(
			`<opf:item id="img1" href="img1.jpg"/>`+
				`<opf:item id="img2" href="Media/img2.gif"/>`+
				`<opf:item id="img4" href="BinData/missing.png"/>`,
			``,
		)},
		entry{"BinData/direct", "d"},
		entry{"BinData/img1.jpg", "j"},
		entry{"Media/img2.gif", "g"},
	)

	tests := map[string]string{
		"direct": "BinData/direct",
		"img1":   "BinData/img1.jpg",
		"img2":   "Media/img2.gif",
		"img3":   "BinData/img3",
		"img4":   "BinData/img4",
	}
	for id, want := range tests {
		if got := r.ResolveBinary(id); got != want {
			t.Errorf("ResolveBinary(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestResolveBinaryWithoutDescriptor(t *testing.T) {
	r := newTestReader(t)
	if got := r.ResolveBinary("x"); got != "BinData/x" {
		t.Errorf("ResolveBinary = %q", got)
	}
}

func TestListImages(t *testing.T) {
	r := newTestReader(t,
		entry{"BinData/b.png", "b"},
		entry{"Contents/section0.xml", "<sec/>"},
		entry{"BinData/a.jpg", "a"},
		entry{"BinData/", ""},
	)
	want := []string{"BinData/a.jpg", "BinData/b.png"}
	if got := r.ListImages(); !reflect.DeepEqual(got, want) {
		t.Errorf("ListImages() = %v, want %v", got, want)
	}

	if got := newTestReader(t).ListImages(); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", got)
	}
}

func TestImageMimeType(t *testing.T) {
	tests := map[string]string{
		"BinData/a.PNG":  "image/png",
		"BinData/a.jpeg": "image/jpeg",
		"BinData/a.jpg":  "image/jpeg",
		"BinData/a.gif":  "image/gif",
		"BinData/a.bmp":  "image/bmp",
		"BinData/a.webp": "image/webp",
		"BinData/a.emf":  "application/octet-stream",
		"BinData/noext":  "application/octet-stream",
	}
	for p, want := range tests {
		if got := ImageMimeType(p); got != want {
			t.Errorf("ImageMimeType(%q) = %q, want %q", p, got, want)
		}
	}
}
