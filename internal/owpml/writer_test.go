package owpml

import (
	"archive/zip"
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"
)

func TestWriteRoundTrip(t *testing.T) {
	text := "첫 줄\r\n  <둘째> & \"셋\"\n\nlast"
	data, err := Write(text, WriteOptions{
		Title:      "제목 & 부제",
		Creator:    "kim",
		Identifier: "doc-1",
		Created:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}

	r, err := Open(data, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	got, err := r.ExtractText()
	if err != nil {
		t.Fatal(err)
	}
	if want := "첫 줄\n  <둘째> & \"셋\"\n\nlast"; got != want {
		t.Errorf("round trip = %q, want %q", got, want)
	}

	md := r.Metadata()
	if md.Title != "제목 & 부제" || md.Creator != "kim" || md.Created != "2024-05-01T12:00:00Z" {
		t.Errorf("Metadata() = %+v", md)
	}
	if v := r.Version(); v != "1.4" {
		t.Errorf("Version() = %q", v)
	}
	if c := r.CaretPosition(); c != "0:0:0" {
		t.Errorf("CaretPosition() = %q", c)
	}
	s := r.Summary()
	if s.HasEncryptionInfo || s.MimetypeMismatch {
		t.Errorf("Summary() = %+v", s)
	}
	if len(s.Spine) != 1 || s.Spine[0] != "section0" {
		t.Errorf("Spine = %v", s.Spine)
	}
}

func TestWriteDropsCharactersXMLCannotCarry(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"control", "x\u0001y", "xy"},
		{"mixed", "a\u000Bb\u000Cc\u001Fd\x00e", "abcde"},
		{"noncharacters", "p\uFFFEq\uFFFFr", "pqr"},
		{"tab kept", "a\tb", "a\tb"},
		{"lone carriage return", "a\rb\nc", "a\rb\nc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Write(tt.in, WriteOptions{Title: "t\u0002"})
			if err != nil {
				t.Fatal(err)
			}
			r, err := Open(data, slog.New(slog.NewTextHandler(io.Discard, nil)))
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			got, err := r.ExtractText()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("round trip = %q, want %q", got, tt.want)
			}
			if title := r.Metadata().Title; title != "t" {
				t.Errorf("Title = %q", title)
			}
		})
	}
}

func TestWriteMimetypeFirstAndStored(t *testing.T) {
	data, err := Write("x", WriteOptions{})
	if err != nil {
		t.Fatal(err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	first := zr.File[0]
	if first.Name != MimetypePath || first.Method != zip.Store {
		t.Fatalf("first entry = %s (method %d)", first.Name, first.Method)
	}
	rc, err := first.Open()
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	if string(body) != Mimetype {
		t.Errorf("mimetype = %q", body)
	}
}

func TestWriteEmptyOptionalMetadata(t *testing.T) {
	data, err := Write("", WriteOptions{})
	if err != nil {
		t.Fatal(err)
	}
	r, err := Open(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	md := r.Metadata()
	if md.Title != "" || md.Creator != "" || md.Created == "" {
		t.Errorf("Metadata() = %+v", md)
	}
}
