package owpml

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	nsOPF     = "http://www.idpf.org/2007/opf/"
	nsDC      = "http://purl.org/dc/elements/1.1/"
	nsHead    = "http://www.hancom.co.kr/hwpml/2011/head"
	nsSection = "http://www.hancom.co.kr/hwpml/2011/section"
	nsPara    = "http://www.hancom.co.kr/hwpml/2011/paragraph"
	nsApp     = "http://www.hancom.co.kr/hwpml/2011/app"
	nsODF     = "urn:oasis:names:tc:opendocument:xmlns:manifest:1.0"

	xmlDecl = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"
)

var (
	lineBreak  = regexp.MustCompile(`\r?\n`)
	xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\r", "&#13;")
)

// WriteOptions describes the package metadata of a new document.
type WriteOptions struct {
	Title   string
	Creator string

	// Identifier defaults to a random UUID.
	Identifier string
	// Created defaults to the current time.
	Created time.Time
}

// Write builds a minimal HWPX package holding text, one paragraph per line.
func Write(text string, opts WriteOptions) ([]byte, error) {
	if opts.Identifier == "" {
		opts.Identifier = uuid.NewString()
	}
	if opts.Created.IsZero() {
		opts.Created = time.Now()
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	// mimetype must be the first entry and stored uncompressed.
	mw, err := zw.CreateHeader(&zip.FileHeader{Name: MimetypePath, Method: zip.Store})
	if err != nil {
		return nil, fmt.Errorf("failed to create mimetype entry: %w", err)
	}
	if _, err := mw.Write([]byte(Mimetype)); err != nil {
		return nil, fmt.Errorf("failed to write mimetype entry: %w", err)
	}

	parts := []struct {
		name string
		body string
	}{
		{VersionPath, versionXML()},
		{SettingsPath, settingsXML()},
		{ManifestPath, manifestXML()},
		{ContentPath, contentHPF(opts)},
		{HeaderPath, headerXML()},
		{"Contents/section0.xml", sectionXML(text)},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.body)); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish archive: %w", err)
	}
	return buf.Bytes(), nil
}

func versionXML() string {
	return xmlDecl + `<Version><OWPMLVersion>1.4</OWPMLVersion></Version>`
}

func settingsXML() string {
	return xmlDecl +
		`<ha:HWPApplicationSetting xmlns:ha="` + nsApp + `">` +
		`<ha:CaretPosition listIDRef="0" paraIDRef="0" pos="0"/>` +
		`</ha:HWPApplicationSetting>`
}

func manifestXML() string {
	return xmlDecl + `<odf:manifest xmlns:odf="` + nsODF + `"/>`
}

func headerXML() string {
	return xmlDecl + `<hh:head xmlns:hh="` + nsHead + `" version="1.4" secCnt="1"/>`
}

func contentHPF(opts WriteOptions) string {
	var sb strings.Builder
	sb.WriteString(xmlDecl)
	sb.WriteString(`<opf:package xmlns:opf="` + nsOPF + `" xmlns:dc="` + nsDC + `" version="" unique-identifier="hwpx-id">`)

	sb.WriteString(`<opf:metadata>`)
	if opts.Title != "" {
		sb.WriteString(`<dc:title>` + xmlText(opts.Title) + `</dc:title>`)
	}
	if opts.Creator != "" {
		sb.WriteString(`<dc:creator>` + xmlText(opts.Creator) + `</dc:creator>`)
	}
	sb.WriteString(`<dc:identifier id="hwpx-id">` + xmlText(opts.Identifier) + `</dc:identifier>`)
	sb.WriteString(`<opf:meta name="CreatedDate" content="text">` + opts.Created.UTC().Format(time.RFC3339) + `</opf:meta>`)
	sb.WriteString(`</opf:metadata>`)

	sb.WriteString(`<opf:manifest>`)
	sb.WriteString(`<opf:item id="header" href="Contents/header.xml" media-type="application/xml"/>`)
	sb.WriteString(`<opf:item id="section0" href="Contents/section0.xml" media-type="application/xml"/>`)
	sb.WriteString(`</opf:manifest>`)

	sb.WriteString(`<opf:spine><opf:itemref idref="section0"/></opf:spine>`)
	sb.WriteString(`</opf:package>`)
	return sb.String()
}

func sectionXML(text string) string {
	var sb strings.Builder
	sb.WriteString(xmlDecl)
	sb.WriteString(`<hs:sec xmlns:hs="` + nsSection + `" xmlns:hp="` + nsPara + `">`)
	for _, line := range lineBreak.Split(text, -1) {
		sb.WriteString(`<hp:p><hp:run><hp:t>` + xmlText(line) + `</hp:t></hp:run></hp:p>`)
	}
	sb.WriteString(`</hs:sec>`)
	return sb.String()
}

// xmlText escapes s as element content. Runes outside the XML 1.0 Char
// production are dropped and a lone carriage return becomes &#13;.
func xmlText(s string) string {
	return xmlEscaper.Replace(strings.Map(func(r rune) rune {
		if validXMLRune(r) {
			return r
		}
		return -1
	}, s))
}

func validXMLRune(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r < 0x20:
		return false
	case r == 0xFFFE || r == 0xFFFF:
		return false
	case r >= 0xD800 && r <= 0xDFFF:
		return false
	}
	return r <= 0x10FFFF
}
