package owpml

import (
	"fmt"
	"strings"
	"sync"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
)

var (
	mdOnce      sync.Once
	mdConverter *converter.Converter
)

func markdownConverter() *converter.Converter {
	mdOnce.Do(func() {
		mdConverter = converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		)
	})
	return mdConverter
}

// ExtractMarkdown renders the document as HTML and converts it to
// CommonMark with pipe tables.
func (r *Reader) ExtractMarkdown(opts ...HTMLOption) (string, error) {
	html, err := r.ExtractHTML(opts...)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	md, err := markdownConverter().ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert to markdown: %w", err)
	}
	return md, nil
}
