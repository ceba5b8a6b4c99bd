// Package hwpv5 recognizes legacy binary HWP 5.x documents (OLE compound
// files) and reports what they contain without decoding the body.
package hwpv5

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/richardlehane/mscfb"
	"github.com/richardlehane/msoleps"
)

// ErrUnsupportedFormat is returned for documents that are recognized but
// cannot be extracted.
var ErrUnsupportedFormat = errors.New("hwp: binary HWP 5.x documents are not supported")

// ErrPasswordProtected is returned by Probe when the FileHeader marks the
// document as password encrypted.
var ErrPasswordProtected = errors.New("hwp: password encrypted document")

var compoundMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

const summaryStream = "\x05HwpSummaryInformation"

// IsCompoundFile reports whether b starts with the OLE compound file magic.
func IsCompoundFile(b []byte) bool {
	return bytes.HasPrefix(b, compoundMagic)
}

// Info describes a legacy document.
type Info struct {
	Version      string   `json:"version"`
	Compressed   bool     `json:"compressed"`
	Encrypted    bool     `json:"encrypted"`
	Distribution bool     `json:"distribution"`
	Sections     int      `json:"sections"`
	Title        string   `json:"title,omitempty"`
	Author       string   `json:"author,omitempty"`
	Streams      []string `json:"streams"`
}

// Probe walks the compound file once, reading the FileHeader, the summary
// property set and the list of body streams.
func Probe(ra io.ReaderAt) (Info, error) {
	var info Info

	doc, err := mscfb.New(ra)
	if err != nil {
		return info, fmt.Errorf("failed to open compound file: %w", err)
	}

	sawHeader := false
	props := msoleps.New()
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		name := streamPath(entry)
		info.Streams = append(info.Streams, name)

		switch {
		case name == "FileHeader":
			hdr, err := readFileHeader(doc)
			if err != nil {
				return info, fmt.Errorf("failed to read FileHeader: %w", err)
			}
			sawHeader = true
			info.Version = hdr.Version.String()
			info.Compressed = hdr.Properties.Compressed()
			info.Encrypted = hdr.Properties.Encrypted()
			info.Distribution = hdr.Properties.Distribution()

		case entry.Name == summaryStream && msoleps.IsMSOLEPS(entry.Initial):
			if err := props.Reset(doc); err != nil {
				continue
			}
			for _, p := range props.Property {
				switch p.Name {
				case "Title":
					info.Title = strings.TrimRight(p.String(), "\x00")
				case "Author":
					info.Author = strings.TrimRight(p.String(), "\x00")
				}
			}

		case isSectionStream(name):
			info.Sections++
		}
	}

	if !sawHeader {
		return info, errors.New("FileHeader stream not found")
	}
	sort.Strings(info.Streams)
	if info.Encrypted {
		return info, ErrPasswordProtected
	}
	return info, nil
}

func streamPath(entry *mscfb.File) string {
	if len(entry.Path) == 0 {
		return entry.Name
	}
	return strings.Join(entry.Path, "/") + "/" + entry.Name
}

func isSectionStream(name string) bool {
	return strings.HasPrefix(name, "BodyText/Section") || strings.HasPrefix(name, "ViewText/Section")
}
