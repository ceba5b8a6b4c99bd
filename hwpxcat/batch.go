package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/hanpama/hwpx"
)

var (
	blankLines  = regexp.MustCompile(`\n+`)
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	dataExts    = []string{".json", ".yaml", ".yml"}
)

// BatchCmd converts every .hwpx file of a directory.
type BatchCmd struct {
	InDir  string `arg:"" type:"existingdir" help:"Directory of .hwpx files."`
	OutDir string `arg:"" type:"path" help:"Output directory."`
	Format string `enum:"html,txt,md" default:"html" help:"Output format (html, txt, md)."`
	Jobs   int    `short:"j" default:"4" help:"Files converted in parallel."`
}

func (c *BatchCmd) Run(g *Globals) error {
	return runBatch(c.InDir, c.OutDir, c.Jobs, "."+c.Format, g, func(doc *hwpx.Document, _ string) (string, error) {
		switch c.Format {
		case "txt":
			return doc.ExtractText()
		case "md":
			return doc.ExtractMarkdown(hwpx.WithEmbeddedImages(true))
		default:
			return doc.ExtractHTML(hwpx.WithEmbeddedImages(true))
		}
	})
}

// BatchTplCmd fills every .hwpx template of a directory. Data comes from
// <name>.json|yaml|yml in the data directory, falling back to default.*.
type BatchTplCmd struct {
	InDir   string `arg:"" type:"existingdir" help:"Directory of .hwpx templates."`
	DataDir string `arg:"" type:"existingdir" help:"Directory of data files."`
	OutDir  string `arg:"" type:"path" help:"Output directory."`
	Jobs    int    `short:"j" default:"4" help:"Files converted in parallel."`
}

func (c *BatchTplCmd) Run(g *Globals) error {
	return runBatch(c.InDir, c.OutDir, c.Jobs, ".html", g, func(doc *hwpx.Document, name string) (string, error) {
		data, err := templateData(c.DataDir, strings.TrimSuffix(name, filepath.Ext(name)))
		if err != nil {
			return "", err
		}
		text, err := doc.ApplyTemplate(data)
		if err != nil {
			return "", err
		}
		return paragraphsHTML(text), nil
	})
}

type convertFunc func(doc *hwpx.Document, name string) (string, error)

// runBatch converts each .hwpx file in inDir. A failing file is reported
// and skipped; the batch fails only when no file could be converted.
func runBatch(inDir, outDir string, jobs int, ext string, g *Globals, convert convertFunc) error {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".hwpx") {
			names = append(names, e.Name())
		}
	}

	results := make([]error, len(names))
	var eg errgroup.Group
	eg.SetLimit(max(jobs, 1))
	for i, name := range names {
		eg.Go(func() error {
			results[i] = convertOne(filepath.Join(inDir, name), outDir, ext, g, convert)
			return nil
		})
	}
	eg.Wait()

	failed := 0
	for i, err := range results {
		if err != nil {
			failed++
			warnf("%s: %v", names[i], err)
		}
	}
	if failed > 0 && failed == len(names) {
		return fmt.Errorf("all %d file(s) failed", failed)
	}
	return nil
}

func convertOne(path, outDir, ext string, g *Globals, convert convertFunc) error {
	doc, err := loadDocument(path, g)
	if err != nil {
		return err
	}
	name := filepath.Base(path)
	out, err := convert(doc, name)
	if err != nil {
		return err
	}
	outPath := filepath.Join(outDir, strings.TrimSuffix(name, filepath.Ext(name))+ext)
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return err
	}
	infof("Wrote %s", outPath)
	return nil
}

func loadDocument(path string, g *Globals) (*hwpx.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc := hwpx.New(hwpx.WithLogger(g.Logger()))
	if err := doc.Load(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// loadData reads a JSON or YAML object; the extension picks the decoder.
func loadData(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &data)
	default:
		err = json.Unmarshal(raw, &data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return data, nil
}

// templateData finds <base>.<ext> or default.<ext> in dir. No data file
// yields an empty map.
func templateData(dir, base string) (map[string]any, error) {
	for _, name := range []string{base, "default"} {
		for _, ext := range dataExts {
			path := filepath.Join(dir, name+ext)
			data, err := loadData(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return data, err
		}
	}
	return map[string]any{}, nil
}

// paragraphsHTML escapes text and wraps its lines in <p>; runs of blank
// lines count as a single break.
func paragraphsHTML(text string) string {
	var sb strings.Builder
	for _, line := range blankLines.Split(text, -1) {
		sb.WriteString("<p>" + textEscaper.Replace(line) + "</p>")
	}
	return sb.String()
}

func writeOutput(path, content string) error {
	if path == "" {
		_, err := fmt.Fprintln(os.Stdout, content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
