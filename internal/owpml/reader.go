// Package owpml reads and writes HWPX (OWPML) packages.
//
// A Reader works on a fully materialized archive.FileMap and never mutates
// it, so one Reader may serve concurrent extractions.
package owpml

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/hanpama/hwpx/internal/archive"
	"github.com/hanpama/hwpx/internal/textenc"
	"github.com/hanpama/hwpx/internal/xmltree"
)

// Well-known package part paths.
const (
	MimetypePath  = "mimetype"
	VersionPath   = "version.xml"
	SettingsPath  = "settings.xml"
	ContainerPath = "META-INF/container.xml"
	ManifestPath  = "META-INF/manifest.xml"
	ContentPath   = "Contents/content.hpf"
	HeaderPath    = "Contents/header.xml"
	PreviewPath   = "Preview/PrvText.txt"
	BinDataDir    = "BinData/"
)

// Mimetype is the canonical media type written into new packages.
const Mimetype = "application/hwp+zip"

// Reader provides access to the parts of one loaded HWPX package.
type Reader struct {
	files  *archive.FileMap
	logger *slog.Logger

	mimetype         string
	mimetypeMismatch bool

	encOnce   sync.Once
	encrypted bool

	pkgOnce sync.Once
	pkg     *descriptor

	headerOnce sync.Once
	header     *headerStyles
}

// Open materializes buf as a zip archive and returns a Reader over it.
func Open(buf []byte, logger *slog.Logger) (*Reader, error) {
	files, err := archive.Load(buf)
	if err != nil {
		return nil, err
	}
	return NewReader(files, logger), nil
}

// NewReader wraps an already materialized archive.
func NewReader(files *archive.FileMap, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Reader{files: files, logger: logger}
	r.checkMimetype()
	r.checkContainer()
	return r
}

// Files returns the underlying archive.
func (r *Reader) Files() *archive.FileMap {
	return r.files
}

// checkMimetype records the declared media type. A missing or unexpected
// value is only reported; the package is still read.
func (r *Reader) checkMimetype() {
	text, ok := r.textFile(MimetypePath)
	if !ok {
		r.logger.Debug("package has no mimetype entry")
		return
	}
	r.mimetype = strings.TrimSpace(text)
	if !acceptedMimetype(r.mimetype) {
		r.mimetypeMismatch = true
		r.logger.Warn("unexpected package mimetype", "mimetype", r.mimetype)
	}
}

func acceptedMimetype(m string) bool {
	lower := strings.ToLower(m)
	return strings.Contains(lower, "owpml") ||
		strings.Contains(lower, "hwpx") ||
		lower == Mimetype
}

func (r *Reader) checkContainer() {
	if !r.files.Has(ContainerPath) {
		return
	}
	if r.parsePart(ContainerPath) == nil {
		r.logger.Debug("container descriptor is not well-formed", "path", ContainerPath)
	}
}

// textFile returns the decoded text of path.
func (r *Reader) textFile(path string) (string, bool) {
	data, ok := r.files.Get(path)
	if !ok {
		return "", false
	}
	return textenc.Decode(data), true
}

// parsePart decodes and parses path. Missing or malformed parts yield nil.
func (r *Reader) parsePart(path string) *xmltree.Node {
	text, ok := r.textFile(path)
	if !ok {
		return nil
	}
	doc := xmltree.Parse(text)
	if doc == nil {
		r.logger.Debug("part is not well-formed XML", "path", path)
	}
	return doc
}
