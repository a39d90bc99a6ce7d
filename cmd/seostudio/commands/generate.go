package commands

import (
	"fmt"
	"os"
	"time"

	"git.home.luguber.info/inful/seostudio/internal/article"
	"git.home.luguber.info/inful/seostudio/internal/logfields"
	"git.home.luguber.info/inful/seostudio/internal/render"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Keywords    []string `arg:"" optional:"" sep:"none" help:"Candidate keywords (default: configured or built-in list)"`
	Input       string   `short:"i" help:"Read candidate keywords from a file ('-' for stdin)"`
	Index       int      `short:"n" default:"0" help:"Rank of the keyword to write about (0 is the best score)"`
	Output      string   `short:"o" help:"Output directory (default: output.directory from config)"`
	Frontmatter bool     `help:"Prepend YAML frontmatter with SEO fields and a fingerprint"`
	Force       bool     `help:"Overwrite an existing article file"`
	Stdout      bool     `help:"Print the Markdown instead of writing a file"`
	HTML        bool     `name:"html" help:"Print the HTML rendering instead of writing a file"`
}

func (c *GenerateCmd) Run(g *Global, _ *CLI) error {
	input, err := g.keywordInput(c.Keywords, c.Input, os.Stdin)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	progress := progressObserver{g: g}
	session := g.newSession(article.WithObserver(progress))
	doc, err := session.Run(ctx, input, c.Index)
	if err != nil {
		return err
	}

	switch {
	case c.HTML:
		out, err := render.HTML(doc)
		if err != nil {
			return err
		}
		_, err = g.Out.Write(out)
		return err
	case c.Stdout:
		_, err := fmt.Fprint(g.Out, render.Markdown(doc))
		return err
	}

	content, err := render.Export(doc, render.ExportOptions{Frontmatter: c.Frontmatter || g.Config.Output.Frontmatter})
	if err != nil {
		return err
	}
	dir := c.Output
	if dir == "" {
		dir = g.Config.Output.Directory
	}
	path, err := render.WriteFile(dir, render.Filename(doc), content, c.Force || g.Config.Output.Force)
	g.Recorder.IncExport(err == nil)
	if err != nil {
		return err
	}
	g.Logger.Info("Article exported", logfields.Path(path), logfields.Keyword(doc.Keyword))
	_, err = fmt.Fprintln(g.Out, path)
	return err
}

// progressObserver prints one line per generation stage to stderr.
type progressObserver struct {
	g *Global
}

func (p progressObserver) OnStageStart(stage article.Stage, index, total int) {
	_, _ = fmt.Fprintf(p.g.Err, "[%d/%d] %s...\n", index+1, total, stage.Label())
}

func (p progressObserver) OnStageComplete(article.Stage, time.Duration) {}
