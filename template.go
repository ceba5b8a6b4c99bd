package hwpx

import "github.com/hanpama/hwpx/internal/tmpl"

// ApplyTemplate replaces {{key}} and {{nested.key}} placeholders in text
// with values from data. Unknown keys become empty strings.
//
//	hwpx.ApplyTemplate("Hello {{user.name}}", map[string]any{
//		"user": map[string]any{"name": "Kim"},
//	}) // "Hello Kim"
func ApplyTemplate(text string, data map[string]any) string {
	return tmpl.Apply(text, data)
}

// ApplyTemplate extracts the document text and fills its placeholders.
func (d *Document) ApplyTemplate(data map[string]any, opts ...TextOption) (string, error) {
	text, err := d.ExtractText(opts...)
	if err != nil {
		return "", err
	}
	return tmpl.Apply(text, data), nil
}
