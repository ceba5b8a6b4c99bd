package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/hanpama/hwpx"
)

// CatCmd prints a document the way hwpx.Read renders it.
type CatCmd struct {
	File string `arg:"" type:"existingfile" help:"HWPX or HWP file."`
}

func (c *CatCmd) Run(g *Globals) error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()
	return hwpx.Read(f, os.Stdout)
}

// InspectCmd prints package facts as tables or JSON.
type InspectCmd struct {
	File string `arg:"" type:"existingfile" help:"HWPX or HWP file."`
	JSON bool   `help:"Print JSON instead of tables."`
}

func (c *InspectCmd) Run(g *Globals) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	doc := hwpx.New(hwpx.WithLogger(g.Logger()))
	if err := doc.Load(data); err != nil {
		if errors.Is(err, hwpx.ErrUnsupportedFormat) {
			return c.legacy()
		}
		return err
	}
	info, err := doc.Info()
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(info)
	}
	return printInfo(info)
}

func (c *InspectCmd) legacy() error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := hwpx.ProbeLegacy(f)
	if err != nil {
		return err
	}
	if c.JSON {
		return printJSON(info)
	}

	if err := printTable([]any{"Field", "Value"}, [][]string{
		{"format", "HWP 5.x (binary)"},
		{"version", info.Version},
		{"compressed", fmt.Sprint(info.Compressed)},
		{"encrypted", fmt.Sprint(info.Encrypted)},
		{"distribution", fmt.Sprint(info.Distribution)},
		{"sections", fmt.Sprint(info.Sections)},
		{"title", info.Title},
		{"author", info.Author},
	}); err != nil {
		return err
	}
	warnf("binary HWP body extraction is not supported")
	return nil
}

func printInfo(info hwpx.Info) error {
	err := printTable([]any{"Field", "Value"}, [][]string{
		{"title", info.Title},
		{"creator", info.Creator},
		{"created", info.Created},
		{"modified", info.Modified},
		{"version", info.Version},
		{"caret", info.CaretPosition},
		{"mimetype", info.Summary.Mimetype},
		{"encrypted", fmt.Sprint(info.Summary.HasEncryptionInfo)},
		{"spine", strings.Join(info.Summary.Spine, ", ")},
	})
	if err != nil {
		return err
	}

	if len(info.Summary.Manifest) > 0 {
		fmt.Println()
		rows := make([][]string, 0, len(info.Summary.Manifest))
		for _, it := range info.Summary.Manifest {
			rows = append(rows, []string{it.ID, it.Href, it.MediaType})
		}
		if err := printTable([]any{"ID", "Href", "Media Type"}, rows); err != nil {
			return err
		}
	}

	if info.Summary.MimetypeMismatch {
		warnf("unexpected mimetype %q", info.Summary.Mimetype)
	}
	return nil
}

func printTable(header []any, rows [][]string) error {
	return renderTable(os.Stdout, header, rows)
}

func renderTable(w io.Writer, header []any, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(header...)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to add table rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// TxtCmd extracts plain text.
type TxtCmd struct {
	File      string `arg:"" type:"existingfile" help:"HWPX file."`
	Output    string `short:"o" type:"path" help:"Write to this file instead of stdout."`
	Separator string `help:"Paragraph separator (default newline)."`
	Tables    bool   `help:"Lay out tables as ASCII grids."`
	NFC       bool   `name:"nfc" help:"Normalize output to Unicode NFC."`
}

func (c *TxtCmd) Run(g *Globals) error {
	doc, err := loadDocument(c.File, g)
	if err != nil {
		return err
	}
	text, err := doc.ExtractText(c.options()...)
	if err != nil {
		return err
	}
	return writeOutput(c.Output, text)
}

func (c *TxtCmd) options() []hwpx.TextOption {
	var opts []hwpx.TextOption
	if c.Separator != "" {
		opts = append(opts, hwpx.WithParagraphSeparator(c.Separator))
	}
	if c.Tables {
		opts = append(opts, hwpx.WithTableLayout())
	}
	if c.NFC {
		opts = append(opts, hwpx.WithNormalization())
	}
	return opts
}

// HTMLCmd extracts an HTML fragment.
type HTMLCmd struct {
	File         string `arg:"" type:"existingfile" help:"HWPX file."`
	Output       string `short:"o" type:"path" help:"Write to this file instead of stdout."`
	EmbedImages  bool   `default:"true" negatable:"" help:"Inline images as data URIs."`
	Images       bool   `default:"true" negatable:"" help:"Render images."`
	Tables       bool   `default:"true" negatable:"" help:"Render tables."`
	Styles       bool   `default:"true" negatable:"" help:"Render character styles."`
	HeaderRow    bool   `help:"Render the first table row with <th>."`
	TableClass   string `default:"hwpx-table" help:"Class attribute of rendered tables."`
	ParagraphTag string `default:"p" help:"Element used for paragraphs."`
}

func (c *HTMLCmd) Run(g *Globals) error {
	doc, err := loadDocument(c.File, g)
	if err != nil {
		return err
	}
	out, err := doc.ExtractHTML(c.options()...)
	if err != nil {
		return err
	}
	return writeOutput(c.Output, out)
}

func (c *HTMLCmd) options() []hwpx.HTMLOption {
	return []hwpx.HTMLOption{
		hwpx.WithEmbeddedImages(c.EmbedImages),
		hwpx.WithImages(c.Images),
		hwpx.WithTables(c.Tables),
		hwpx.WithStyles(c.Styles),
		hwpx.WithHeaderFirstRow(c.HeaderRow),
		hwpx.WithTableClass(c.TableClass),
		hwpx.WithParagraphTag(c.ParagraphTag),
	}
}

// MdCmd extracts Markdown.
type MdCmd struct {
	File        string `arg:"" type:"existingfile" help:"HWPX file."`
	Output      string `short:"o" type:"path" help:"Write to this file instead of stdout."`
	EmbedImages bool   `negatable:"" help:"Inline images as data URIs."`
}

func (c *MdCmd) Run(g *Globals) error {
	doc, err := loadDocument(c.File, g)
	if err != nil {
		return err
	}
	md, err := doc.ExtractMarkdown(hwpx.WithEmbeddedImages(c.EmbedImages))
	if err != nil {
		return err
	}
	return writeOutput(c.Output, md)
}

// TplCmd fills a document's text placeholders from a data file.
type TplCmd struct {
	File   string `arg:"" type:"existingfile" help:"HWPX template."`
	Data   string `arg:"" type:"existingfile" help:"JSON or YAML data file."`
	Output string `short:"o" type:"path" help:"Write to this file instead of stdout."`
}

func (c *TplCmd) Run(g *Globals) error {
	doc, err := loadDocument(c.File, g)
	if err != nil {
		return err
	}
	data, err := loadData(c.Data)
	if err != nil {
		return err
	}
	text, err := doc.ApplyTemplate(data)
	if err != nil {
		return err
	}
	return writeOutput(c.Output, paragraphsHTML(text))
}

// WriteCmd creates a document from a UTF-8 text file.
type WriteCmd struct {
	Input   string `arg:"" type:"existingfile" help:"Text file."`
	Output  string `arg:"" type:"path" help:"Destination .hwpx file."`
	Title   string `help:"Document title."`
	Creator string `help:"Document author."`
}

func (c *WriteCmd) Run(g *Globals) error {
	text, err := os.ReadFile(c.Input)
	if err != nil {
		return err
	}
	data, err := hwpx.Write(string(text), hwpx.WriteOptions{Title: c.Title, Creator: c.Creator})
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Output, data, 0o644); err != nil {
		return err
	}
	infof("Wrote %s", c.Output)
	return nil
}
