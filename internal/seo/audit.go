package seo

import (
	"bufio"
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"git.home.luguber.info/inful/seostudio/internal/article"
	"git.home.luguber.info/inful/seostudio/internal/frontmatter"
	"git.home.luguber.info/inful/seostudio/internal/logfields"
	"git.home.luguber.info/inful/seostudio/internal/metrics"
	"git.home.luguber.info/inful/seostudio/internal/render"
)

const (
	metaPrefix    = "**Meta Descrição:** "
	keywordPrefix = "**Palavra-chave principal:** "
)

// Auditor runs the checks. The zero value is not usable; call NewAuditor.
type Auditor struct {
	recorder metrics.Recorder
	logger   *slog.Logger
}

// Option configures an Auditor.
type Option func(*Auditor)

func WithRecorder(rec metrics.Recorder) Option {
	return func(a *Auditor) {
		if rec != nil {
			a.recorder = rec
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *Auditor) {
		if l != nil {
			a.logger = l
		}
	}
}

func NewAuditor(opts ...Option) *Auditor {
	a := &Auditor{recorder: metrics.NoopRecorder{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Audit checks a generated document.
func (a *Auditor) Audit(doc *article.Document) (Report, error) {
	page, err := render.HTML(doc)
	if err != nil {
		return Report{}, err
	}
	return a.audit(page, doc.Keyword, doc.Title, doc.MetaDescription)
}

// AuditMarkdown checks an exported article. The title is the first H1. The
// meta description comes from the "Meta Descrição" line, falling back to the
// frontmatter description. An empty keyword is read from the trailer line or
// the first frontmatter keyword.
func (a *Auditor) AuditMarkdown(src []byte, kw string) (Report, error) {
	fm, body, had, err := frontmatter.Split(src)
	if err != nil {
		return Report{}, err
	}

	var fields map[string]any
	if had {
		if fields, err = frontmatter.ParseYAML(fm); err != nil {
			return Report{}, err
		}
	}

	meta := linePrefixed(body, metaPrefix)
	if meta == "" {
		meta, _ = fields["description"].(string)
	}
	if strings.TrimSpace(kw) == "" {
		kw = linePrefixed(body, keywordPrefix)
	}
	if kw == "" {
		if list, ok := fields["keywords"].([]any); ok && len(list) > 0 {
			kw, _ = list[0].(string)
		}
	}

	page, err := render.MarkdownToHTML(body)
	if err != nil {
		return Report{}, err
	}
	return a.audit(page, kw, "", meta)
}

func (a *Auditor) audit(page []byte, kw, title, meta string) (Report, error) {
	o, err := parseOutline(page)
	if err != nil {
		return Report{}, err
	}
	if title == "" {
		title = o.firstH1
	}

	kw = strings.TrimSpace(kw)
	text := o.text.String()
	r := Report{
		Keyword:         kw,
		Title:           title,
		MetaDescription: meta,
		TitleLength:     utf8.RuneCountInString(title),
		MetaLength:      utf8.RuneCountInString(meta),
		H1:              o.h1,
		H2:              o.h2,
		H3:              o.h3,
		Words:           len(words(text)),
	}
	r.KeywordCount, r.Density = density(text, kw, r.Words)
	r.Findings = check(r)

	for _, f := range r.Findings {
		a.recorder.IncAuditFinding(string(f.Severity))
	}
	a.logger.Debug("Audit complete",
		logfields.Keyword(kw),
		logfields.Count(len(r.Findings)),
		slog.Int("words", r.Words))
	return r, nil
}

func check(r Report) []Finding {
	var out []Finding
	add := func(rule Rule, sev Severity, format string, args ...any) {
		out = append(out, Finding{Rule: rule, Severity: sev, Message: fmt.Sprintf(format, args...)})
	}

	if r.TitleLength < MinTitleLength || r.TitleLength > MaxTitleLength {
		add(RuleTitleLength, SeverityWarning, "title has %d characters, want %d-%d", r.TitleLength, MinTitleLength, MaxTitleLength)
	}
	if r.MetaLength < MinMetaLength || r.MetaLength > MaxMetaLength {
		add(RuleMetaLength, SeverityWarning, "meta description has %d characters, want %d-%d", r.MetaLength, MinMetaLength, MaxMetaLength)
	}
	if !containsFold(r.Title, r.Keyword) {
		add(RuleKeywordInTitle, SeverityError, "keyword %q not found in title", r.Keyword)
	}
	if !containsFold(r.MetaDescription, r.Keyword) {
		add(RuleKeywordInMeta, SeverityError, "keyword %q not found in meta description", r.Keyword)
	}
	if r.H1 != 1 {
		add(RuleSingleH1, SeverityError, "found %d H1 headings, want exactly 1", r.H1)
	}
	return out
}

func containsFold(s, sub string) bool {
	if sub == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// density counts whole-word occurrences of kw in text and returns the share
// of all words they cover, as a percentage rounded to two decimals.
func density(text, kw string, total int) (int, float64) {
	needle := words(kw)
	if len(needle) == 0 || total == 0 {
		return 0, 0
	}
	hay := words(text)
	count := 0
	for i := 0; i+len(needle) <= len(hay); i++ {
		match := true
		for j, w := range needle {
			if hay[i+j] != w {
				match = false
				break
			}
		}
		if match {
			count++
			i += len(needle) - 1
		}
	}
	pct := float64(count*len(needle)) / float64(total) * 100
	return count, math.Round(pct*100) / 100
}

func linePrefixed(body []byte, prefix string) string {
	sc := bufio.NewScanner(bytes.NewReader(body))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if v, ok := strings.CutPrefix(line, prefix); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
