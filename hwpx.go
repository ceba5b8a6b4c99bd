// Package hwpx reads and writes HWPX documents, the zip-packaged OWPML
// format of the Hangul word processor.
//
// A Document is loaded once from the package bytes and then queried.
// Every query works on the same immutable file map, so a loaded Document
// is safe for concurrent use.
//
// # Example Usage
//
//	data, err := os.ReadFile("report.hwpx")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	doc := hwpx.New()
//	if err := doc.Load(data); err != nil {
//		log.Fatal(err)
//	}
//
//	text, err := doc.ExtractText()
//	html, err := doc.ExtractHTML(hwpx.WithEmbeddedImages(true))
//
// # Package Layout
//
// The reader understands the parts an HWPX producer writes:
//   - mimetype, version.xml and settings.xml
//   - META-INF/manifest.xml (encryption markers only)
//   - Contents/content.hpf (metadata, manifest, spine)
//   - Contents/header.xml (character and paragraph properties)
//   - Contents/sectionN.xml (body)
//   - BinData/* and Preview/PrvText.txt
//
// Missing or malformed parts never abort extraction; each lookup falls
// back to the next strategy. Only the errors below are reported.
//
// Binary HWP 5.x files are recognized but not extracted; see ProbeLegacy.
package hwpx

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/hanpama/hwpx/internal/archive"
	"github.com/hanpama/hwpx/internal/hwpv5"
	"github.com/hanpama/hwpx/internal/owpml"
)

var (
	// ErrNotLoaded is returned by queries on a Document without a loaded package.
	ErrNotLoaded = owpml.ErrNotLoaded
	// ErrEncryptedDocument is returned when the package declares encryption.
	ErrEncryptedDocument = owpml.ErrEncryptedDocument
	// ErrInvalidArchive is returned by Load when the input is not a readable zip.
	ErrInvalidArchive = archive.ErrInvalidArchive
	// ErrUnsupportedFormat is returned for binary HWP 5.x input.
	ErrUnsupportedFormat = hwpv5.ErrUnsupportedFormat
)

type (
	Summary      = owpml.Summary
	ManifestItem = owpml.ManifestItem
	Metadata     = owpml.Metadata
	Info         = owpml.Info
	WriteOptions = owpml.WriteOptions
	TextOption   = owpml.TextOption
	HTMLOption   = owpml.HTMLOption
	LegacyInfo   = hwpv5.Info
)

// Text options.
var (
	WithParagraphSeparator = owpml.WithParagraphSeparator
	WithTableLayout        = owpml.WithTableLayout
	WithNormalization      = owpml.WithNormalization
)

// HTML options.
var (
	WithParagraphTag     = owpml.WithParagraphTag
	WithTableClass       = owpml.WithTableClass
	WithImageSrcResolver = owpml.WithImageSrcResolver
	WithImages           = owpml.WithImages
	WithTables           = owpml.WithTables
	WithStyles           = owpml.WithStyles
	WithEmbeddedImages   = owpml.WithEmbeddedImages
	WithHeaderFirstRow   = owpml.WithHeaderFirstRow
)

// Document is an HWPX package handle. The zero value is not usable; call New.
type Document struct {
	logger *slog.Logger

	mu     sync.RWMutex
	reader *owpml.Reader
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger used for diagnostics. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// New returns an empty Document.
func New(opts ...Option) *Document {
	d := &Document{logger: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load replaces the document contents with the package in data. On
// failure the previously loaded package, if any, stays in place.
func (d *Document) Load(data []byte) error {
	if hwpv5.IsCompoundFile(data) {
		return ErrUnsupportedFormat
	}
	r, err := owpml.Open(data, d.logger)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.reader = r
	d.mu.Unlock()
	d.logger.Debug("package loaded", "entries", r.Files().Len())
	return nil
}

func (d *Document) current() (*owpml.Reader, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.reader == nil {
		return nil, ErrNotLoaded
	}
	return d.reader, nil
}

// Summary reports the package layout. It succeeds on encrypted packages.
func (d *Document) Summary() (Summary, error) {
	r, err := d.current()
	if err != nil {
		return Summary{}, err
	}
	return r.Summary(), nil
}

// Metadata returns the content.hpf metadata, the OWPML version and the
// saved caret position.
func (d *Document) Metadata() (Metadata, error) {
	r, err := d.current()
	if err != nil {
		return Metadata{}, err
	}
	return r.Metadata(), nil
}

// Info returns the metadata and the package summary.
func (d *Document) Info() (Info, error) {
	r, err := d.current()
	if err != nil {
		return Info{}, err
	}
	return r.Info(), nil
}

// ExtractText returns the document body as plain text.
func (d *Document) ExtractText(opts ...TextOption) (string, error) {
	r, err := d.current()
	if err != nil {
		return "", err
	}
	return r.ExtractText(opts...)
}

// ExtractHTML returns the document body as an HTML fragment.
func (d *Document) ExtractHTML(opts ...HTMLOption) (string, error) {
	r, err := d.current()
	if err != nil {
		return "", err
	}
	return r.ExtractHTML(opts...)
}

// ExtractMarkdown returns the document body as CommonMark.
func (d *Document) ExtractMarkdown(opts ...HTMLOption) (string, error) {
	r, err := d.current()
	if err != nil {
		return "", err
	}
	return r.ExtractMarkdown(opts...)
}

// ListImages returns the sorted BinData entry paths.
func (d *Document) ListImages() ([]string, error) {
	r, err := d.current()
	if err != nil {
		return nil, err
	}
	return r.ListImages(), nil
}

// Image returns the bytes and media type of a BinData entry.
func (d *Document) Image(path string) ([]byte, string, error) {
	r, err := d.current()
	if err != nil {
		return nil, "", err
	}
	data, ok := r.Files().Get(path)
	if !ok {
		return nil, "", fmt.Errorf("image %q not found", path)
	}
	return data, owpml.ImageMimeType(path), nil
}
