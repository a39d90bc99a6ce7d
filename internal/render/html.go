package render

import (
	"bytes"

	"github.com/yuin/goldmark"

	"git.home.luguber.info/inful/seostudio/internal/article"
	"git.home.luguber.info/inful/seostudio/internal/foundation/errors"
)

// HTML renders doc's Markdown to an HTML fragment for previewing.
func HTML(doc *article.Document) ([]byte, error) {
	return MarkdownToHTML([]byte(Markdown(doc)))
}

// MarkdownToHTML converts a Markdown body (frontmatter already removed) to HTML.
func MarkdownToHTML(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert(src, &buf); err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "convert markdown to html").Build()
	}
	return buf.Bytes(), nil
}
