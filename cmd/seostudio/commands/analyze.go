package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"git.home.luguber.info/inful/seostudio/internal/keyword"
)

// AnalyzeCmd implements the 'analyze' command.
type AnalyzeCmd struct {
	Keywords []string `arg:"" optional:"" sep:"none" help:"Keywords to score (default: configured or built-in list)"`
	Input    string   `short:"i" help:"Read keywords from a file, one per line ('-' for stdin)"`
	JSON     bool     `name:"json" help:"Print records as JSON"`
}

func (a *AnalyzeCmd) Run(g *Global, _ *CLI) error {
	input, err := g.keywordInput(a.Keywords, a.Input, os.Stdin)
	if err != nil {
		return err
	}
	records, err := g.newSession().Analyze(input)
	if err != nil {
		return err
	}

	if a.JSON {
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	return writeRecordTable(g, records)
}

func writeRecordTable(g *Global, records []keyword.Record) error {
	tw := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "#\tKEYWORD\tVOLUME\tDIFFICULTY\tINTENT\tSCORE")
	for i, r := range records {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%d (%s)\t%s\t%d\n",
			i+1, r.Keyword, r.Volume, r.Difficulty, keyword.DifficultyBand(r.Difficulty), r.Intent, r.Score)
	}
	return tw.Flush()
}
