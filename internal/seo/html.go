package seo

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/seostudio/internal/foundation/errors"
)

// outline is what the audit reads out of a rendered page.
type outline struct {
	h1, h2, h3 int
	firstH1    string
	text       strings.Builder
}

func parseOutline(src []byte) (*outline, error) {
	doc, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "failed to parse HTML").Build()
	}

	o := &outline{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			switch n.Data {
			case "h1":
				o.h1++
				if o.h1 == 1 {
					o.firstH1 = strings.TrimSpace(extractText(n))
				}
			case "h2":
				o.h2++
			case "h3":
				o.h3++
			}
		case html.TextNode:
			o.text.WriteString(n.Data)
			o.text.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return o, nil
}

func extractText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
