// Command hwpxcat inspects, converts and creates HWPX documents.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/hanpama/hwpx"
)

// Globals are flags shared by every command.
type Globals struct {
	Verbose bool `short:"v" help:"Log debug output to stderr."`
}

// Logger returns a text logger on stderr.
func (g *Globals) Logger() *slog.Logger {
	level := slog.LevelWarn
	if g.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

var cli struct {
	Globals

	Cat      CatCmd      `cmd:"" default:"withargs" help:"Print a document as plain text with table layout."`
	Inspect  InspectCmd  `cmd:"" help:"Show package metadata, manifest and spine."`
	Txt      TxtCmd      `cmd:"" help:"Extract plain text."`
	HTML     HTMLCmd     `cmd:"" name:"html" help:"Extract an HTML fragment."`
	Md       MdCmd       `cmd:"" help:"Extract Markdown."`
	Tpl      TplCmd      `cmd:"" help:"Fill {{placeholders}} in the document text and print HTML paragraphs."`
	Write    WriteCmd    `cmd:"" help:"Create an HWPX document from a text file."`
	Batch    BatchCmd    `cmd:"" help:"Convert every .hwpx file in a directory."`
	BatchTpl BatchTplCmd `cmd:"" name:"batch-tpl" help:"Fill templates for every .hwpx file in a directory."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("hwpxcat"),
		kong.Description("Read and write HWPX (OWPML) documents."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err := ctx.Run(&cli.Globals); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode gives each hard failure class its own status.
func exitCode(err error) int {
	switch {
	case errors.Is(err, hwpx.ErrInvalidArchive):
		return 2
	case errors.Is(err, hwpx.ErrEncryptedDocument):
		return 3
	case errors.Is(err, hwpx.ErrUnsupportedFormat):
		return 4
	default:
		return 1
	}
}

func warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(os.Stderr, format+"\n", args...)
}

func infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
