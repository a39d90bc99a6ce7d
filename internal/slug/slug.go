// Package slug derives URL-safe identifiers from article titles.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// spaceClass matches the same runes as unicode.IsSpace plus the BOM, not
// just RE2's ASCII \s.
const spaceClass = `\s\v\p{Z}\x{85}\x{feff}`

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9` + spaceClass + `-]`)
	whitespace   = regexp.MustCompile(`[` + spaceClass + `]+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// Make lowercases title, folds accented letters to ASCII, drops anything
// other than [a-z0-9], whitespace and hyphens, joins words with single
// hyphens and trims hyphens at both ends. Any Unicode space separates words.
func Make(title string) string {
	s := Fold(strings.ToLower(title))
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Fold strips combining marks after canonical decomposition, so "ção"
// becomes "cao". Characters without a decomposition are left untouched.
func Fold(s string) string {
	// Chained transformers keep state; build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
