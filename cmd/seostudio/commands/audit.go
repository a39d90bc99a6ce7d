package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/seostudio/internal/foundation/errors"
	"git.home.luguber.info/inful/seostudio/internal/seo"
)

// AuditCmd implements the 'audit' command.
type AuditCmd struct {
	Files   []string `arg:"" help:"Markdown files to audit"`
	Keyword string   `short:"k" help:"Keyword to check (default: read from each file)"`
	JSON    bool     `name:"json" help:"Print reports as JSON"`
}

type fileReport struct {
	Path   string     `json:"path"`
	Report seo.Report `json:"report"`
}

func (a *AuditCmd) Run(g *Global, _ *CLI) error {
	auditor := seo.NewAuditor(seo.WithRecorder(g.Recorder), seo.WithLogger(g.Logger))

	reports := make([]fileReport, 0, len(a.Files))
	failed := 0
	for _, path := range a.Files {
		src, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to read article").
				WithContext("path", path).
				Build()
		}
		report, err := auditor.AuditMarkdown(src, a.Keyword)
		if err != nil {
			return err
		}
		if report.HasErrors() {
			failed++
		}
		reports = append(reports, fileReport{Path: path, Report: report})
	}

	if a.JSON {
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	} else {
		for _, fr := range reports {
			printReport(g, fr)
		}
	}

	if failed > 0 {
		return errors.ValidationError("audit found errors").
			WithContext("files", failed).
			Build()
	}
	return nil
}

func printReport(g *Global, fr fileReport) {
	r := fr.Report
	_, _ = fmt.Fprintf(g.Out, "%s\n", fr.Path)
	_, _ = fmt.Fprintf(g.Out, "  keyword: %q  words: %d  density: %.2f%%\n", r.Keyword, r.Words, r.Density)
	_, _ = fmt.Fprintf(g.Out, "  title: %d chars  meta: %d chars  h1/h2/h3: %d/%d/%d\n",
		r.TitleLength, r.MetaLength, r.H1, r.H2, r.H3)
	if len(r.Findings) == 0 {
		_, _ = fmt.Fprintln(g.Out, "  ok")
		return
	}
	for _, f := range r.Findings {
		_, _ = fmt.Fprintf(g.Out, "  %s [%s] %s\n", f.Severity, f.Rule, f.Message)
	}
}
