package render

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inful/mdfp"

	"git.home.luguber.info/inful/seostudio/internal/article"
	"git.home.luguber.info/inful/seostudio/internal/foundation/errors"
	"git.home.luguber.info/inful/seostudio/internal/frontmatter"
)

// exportFields is the frontmatter written ahead of an exported article.
type exportFields struct {
	Title       string   `yaml:"title"`
	Slug        string   `yaml:"slug"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	UID         string   `yaml:"uid,omitempty"`
	Date        string   `yaml:"date,omitempty"`
	Fingerprint string   `yaml:"fingerprint,omitempty"`
}

// ExportOptions controls Export.
type ExportOptions struct {
	// Frontmatter prepends a YAML block with SEO fields and a content fingerprint.
	Frontmatter bool
	// Now stamps the date field; zero means time.Now.
	Now time.Time
	// UID is written as uid; empty generates a random UUID.
	UID string
}

// Export returns the file content for doc. Without frontmatter it is exactly
// Markdown(doc).
func Export(doc *article.Document, opts ExportOptions) ([]byte, error) {
	body := Markdown(doc)
	if !opts.Frontmatter {
		return []byte(body), nil
	}

	fields := exportFields{
		Title:       doc.Title,
		Slug:        doc.Slug,
		Description: doc.MetaDescription,
		Keywords:    append([]string{doc.Keyword}, doc.Variations...),
	}
	fp, err := fingerprint(fields, body)
	if err != nil {
		return nil, err
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	fields.UID = opts.UID
	if fields.UID == "" {
		fields.UID = uuid.NewString()
	}
	fields.Date = now.UTC().Format("2006-01-02")
	fields.Fingerprint = fp

	fm, err := frontmatter.Marshal(fields)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "encode frontmatter").Build()
	}
	return frontmatter.Join(fm, []byte(body)), nil
}

// fingerprint hashes the content-bearing frontmatter fields together with
// body. uid, date and any existing fingerprint are excluded so re-exports of
// the same article keep the same value.
func fingerprint(fields exportFields, body string) (string, error) {
	fields.UID = ""
	fields.Date = ""
	fields.Fingerprint = ""
	fm, err := frontmatter.Marshal(fields)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryRender, "encode frontmatter for fingerprint").Build()
	}
	return mdfp.CalculateFingerprintFromParts(strings.TrimSuffix(string(fm), "\n"), body), nil
}

// WithFrontmatter is Export with frontmatter enabled and a fresh uid.
func WithFrontmatter(doc *article.Document, now time.Time) (string, error) {
	out, err := Export(doc, ExportOptions{Frontmatter: true, Now: now})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
