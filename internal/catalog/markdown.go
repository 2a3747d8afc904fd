package catalog

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Raw HTML in descriptions is escaped; the catalog is edited by hand.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Markdown renders a description to HTML. On a render error the source is
// returned escaped.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
