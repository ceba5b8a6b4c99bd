// Package archive materializes a zip package into an in-memory file map.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidArchive is returned when the input is not a readable zip container.
var ErrInvalidArchive = errors.New("hwpx: invalid or corrupted archive")

// maxEntrySize caps the decompressed size of a single entry (zip bomb guard).
const maxEntrySize int64 = 256 * 1024 * 1024

// FileMap maps archive-relative paths to raw entry contents.
// It is never modified after Load returns.
type FileMap struct {
	paths []string
	data  map[string][]byte
}

// NewFileMap builds a FileMap from explicit entries, keeping the given order.
func NewFileMap(paths []string, data map[string][]byte) *FileMap {
	fm := &FileMap{
		paths: make([]string, 0, len(paths)),
		data:  make(map[string][]byte, len(paths)),
	}
	for _, p := range paths {
		b, ok := data[p]
		if !ok {
			continue
		}
		if _, dup := fm.data[p]; !dup {
			fm.paths = append(fm.paths, p)
		}
		fm.data[p] = b
	}
	return fm
}

// Load opens a zip buffer and inflates every non-directory entry.
// Entries are decompressed concurrently; Load returns only after all of them finished.
func Load(buf []byte) (*FileMap, error) {
	zr, err := zip.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}

	entries := make([]*zip.File, 0, len(zr.File))
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, "/") || f.FileInfo().IsDir() {
			continue
		}
		entries = append(entries, f)
	}

	contents := make([][]byte, len(entries))
	var g errgroup.Group
	for i, f := range entries {
		g.Go(func() error {
			b, err := readEntry(f)
			if err != nil {
				return err
			}
			contents[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}

	fm := &FileMap{
		paths: make([]string, 0, len(entries)),
		data:  make(map[string][]byte, len(entries)),
	}
	for i, f := range entries {
		if _, dup := fm.data[f.Name]; !dup {
			fm.paths = append(fm.paths, f.Name)
		}
		fm.data[f.Name] = contents[i]
	}
	return fm, nil
}

func readEntry(f *zip.File) ([]byte, error) {
	if f.UncompressedSize64 > uint64(maxEntrySize) {
		return nil, fmt.Errorf("entry %s too large: %d bytes", f.Name, f.UncompressedSize64)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxEntrySize+1))
	if err != nil {
		return nil, fmt.Errorf("read entry %s: %w", f.Name, err)
	}
	if int64(len(data)) > maxEntrySize {
		return nil, fmt.Errorf("entry %s exceeds %d bytes", f.Name, maxEntrySize)
	}
	return data, nil
}

// Get returns the raw bytes stored under path (exact match).
func (m *FileMap) Get(path string) ([]byte, bool) {
	if m == nil {
		return nil, false
	}
	b, ok := m.data[path]
	return b, ok
}

// Has reports whether path exists (exact match).
func (m *FileMap) Has(path string) bool {
	_, ok := m.Get(path)
	return ok
}

// FindFold returns the stored path equal to target under case folding.
func (m *FileMap) FindFold(target string) (string, bool) {
	if m == nil {
		return "", false
	}
	if _, ok := m.data[target]; ok {
		return target, true
	}
	for _, p := range m.paths {
		if strings.EqualFold(p, target) {
			return p, true
		}
	}
	return "", false
}

// Paths returns all entry paths in archive order.
func (m *FileMap) Paths() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.paths))
	copy(out, m.paths)
	return out
}

// Len returns the number of entries.
func (m *FileMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.paths)
}
