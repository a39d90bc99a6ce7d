// Package article assembles SEO articles from fixed prose templates.
//
// A Builder takes one scored keyword and fills title, meta description,
// introduction, four body sections, an FAQ block and a conclusion. Template
// choice for the title and introduction goes through an injectable Picker so
// output can be pinned in tests.
package article

import (
	"unicode"
	"unicode/utf8"
)

// QuestionAnswer is one FAQ ("people also ask") entry.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Section is one body section. Subheading may be empty.
type Section struct {
	Heading    string `json:"heading"`
	Subheading string `json:"subheading,omitempty"`
	Body       string `json:"body"`
}

// Document is a fully assembled article. It is not modified after Build returns.
type Document struct {
	Title           string           `json:"title"`
	Slug            string           `json:"slug"`
	MetaDescription string           `json:"meta_description"`
	Introduction    string           `json:"introduction"`
	Sections        []Section        `json:"sections"`
	FAQ             []QuestionAnswer `json:"faq"`
	Conclusion      string           `json:"conclusion"`
	Keyword         string           `json:"keyword"`
	Variations      []string         `json:"variations"`
}

// Singular drops the last character of keyword. It is a naive plural strip
// and yields odd results for keywords that are already singular.
func Singular(keyword string) string {
	if keyword == "" {
		return ""
	}
	_, size := utf8.DecodeLastRuneInString(keyword)
	return keyword[:len(keyword)-size]
}

// Capitalize upper-cases the first character of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
