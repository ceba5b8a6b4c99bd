package hwpx

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/hanpama/hwpx/internal/hwpv5"
)

// ReadHWPX renders an HWPX package as plain text with tables laid out as
// ASCII grids.
//
// Example:
//
//	file, _ := os.Open("document.hwpx")
//	defer file.Close()
//	info, _ := file.Stat()
//	hwpx.ReadHWPX(file, info.Size(), os.Stdout)
func ReadHWPX(in io.ReaderAt, size int64, out io.Writer) error {
	data, err := io.ReadAll(io.NewSectionReader(in, 0, size))
	if err != nil {
		return fmt.Errorf("failed to read HWPX file: %w", err)
	}

	doc := New()
	if err := doc.Load(data); err != nil {
		return fmt.Errorf("failed to parse HWPX file: %w", err)
	}
	text, err := doc.ExtractText(WithTableLayout())
	if err != nil {
		return fmt.Errorf("failed to render HWPX: %w", err)
	}
	if _, err := io.WriteString(out, text+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// ReadHWP recognizes a binary HWP 5.x file. Its body is not decoded, so
// nothing is written to out and the error always wraps
// ErrUnsupportedFormat (or a probe failure). out keeps the signature of
// ReadHWPX so Read can dispatch to either.
func ReadHWP(in io.ReaderAt, out io.Writer) error {
	info, err := hwpv5.Probe(in)
	if err != nil {
		return fmt.Errorf("failed to parse HWP file: %w", err)
	}
	return fmt.Errorf("HWP %s with %d section(s): %w", info.Version, info.Sections, ErrUnsupportedFormat)
}

// ProbeLegacy reports the header, summary and stream layout of a binary
// HWP 5.x file.
func ProbeLegacy(in io.ReaderAt) (LegacyInfo, error) {
	return hwpv5.Probe(in)
}

// Read detects the container format from the file signature and renders
// the document to plain text.
func Read(file *os.File, out io.Writer) error {
	fileInfo, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}

	var magic [8]byte
	n, err := file.ReadAt(magic[:], 0)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file signature: %w", err)
	}

	if hwpv5.IsCompoundFile(magic[:n]) {
		return ReadHWP(file, out)
	}
	if !bytes.HasPrefix(magic[:n], []byte("PK")) {
		return fmt.Errorf("%s: %w", file.Name(), ErrInvalidArchive)
	}
	return ReadHWPX(file, fileInfo.Size(), out)
}
