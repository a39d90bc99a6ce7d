// Package seo audits a rendered article for the on-page signals the studio
// reports: heading structure, title and meta description lengths, and
// keyword placement and density.
package seo

// Severity grades a Finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Rule identifies the check that produced a Finding.
type Rule string

const (
	RuleTitleLength    Rule = "title_length"
	RuleMetaLength     Rule = "meta_length"
	RuleKeywordInTitle Rule = "keyword_in_title"
	RuleKeywordInMeta  Rule = "keyword_in_meta"
	RuleSingleH1       Rule = "single_h1"
)

// Length bounds, in runes.
const (
	MinTitleLength = 30
	MaxTitleLength = 65
	MinMetaLength  = 120
	MaxMetaLength  = 160
)

// Finding is one failed check.
type Finding struct {
	Rule     Rule     `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Report is the outcome of an audit.
type Report struct {
	Keyword         string    `json:"keyword"`
	Title           string    `json:"title"`
	MetaDescription string    `json:"meta_description"`
	TitleLength     int       `json:"title_length"`
	MetaLength      int       `json:"meta_length"`
	H1              int       `json:"h1"`
	H2              int       `json:"h2"`
	H3              int       `json:"h3"`
	Words           int       `json:"words"`
	KeywordCount    int       `json:"keyword_count"`
	Density         float64   `json:"keyword_density"`
	Findings        []Finding `json:"findings"`
}

// HasErrors reports whether any finding has error severity.
func (r Report) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the number of findings with the given severity.
func (r Report) Count(sev Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == sev {
			n++
		}
	}
	return n
}
