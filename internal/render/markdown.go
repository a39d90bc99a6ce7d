// Package render turns an article.Document into its export forms: the
// Markdown document, an HTML preview, and a file on disk.
package render

import (
	"strings"

	"git.home.luguber.info/inful/seostudio/internal/article"
)

// MIMEType is the media type of the Markdown export.
const MIMEType = "text/markdown"

// Markdown renders doc as a single Markdown document. The output is a pure
// function of doc and carries no trailing newline. The final paragraph names
// the main keyword and lists the variations joined by ", ".
func Markdown(doc *article.Document) string {
	var b strings.Builder

	b.WriteString("# " + doc.Title + "\n\n")
	b.WriteString("**Slug:** " + doc.Slug + "\n\n")
	b.WriteString("**Meta Descrição:** " + doc.MetaDescription + "\n\n")
	b.WriteString("## Introdução\n\n")
	b.WriteString(doc.Introduction + "\n\n")

	for i, s := range doc.Sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("## " + s.Heading + "\n\n")
		if s.Subheading != "" {
			b.WriteString("### " + s.Subheading + "\n\n")
		}
		b.WriteString(s.Body)
	}

	b.WriteString("\n\n## Perguntas Frequentes\n\n")
	for i, qa := range doc.FAQ {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("### " + qa.Question + "\n\n" + qa.Answer)
	}

	b.WriteString("\n\n## Conclusão\n\n")
	b.WriteString(doc.Conclusion)
	b.WriteString("\n\n---\n\n")
	b.WriteString("**Palavra-chave principal:** " + doc.Keyword + "\n")
	b.WriteString("**Variações:** " + strings.Join(doc.Variations, ", "))
	return b.String()
}

// Filename is the export file name for doc.
func Filename(doc *article.Document) string {
	return doc.Slug + ".md"
}
