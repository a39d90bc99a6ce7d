package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/seostudio/cmd/seostudio/commands"
	"git.home.luguber.info/inful/seostudio/internal/foundation/errors"
	"git.home.luguber.info/inful/seostudio/internal/version"
)

func main() {
	cli := &commands.CLI{}
	global := commands.NewGlobal()

	parser := kong.Parse(cli,
		kong.Name("seostudio"),
		kong.Description("Keyword analysis and templated SEO article generation."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(global, cli),
	)

	if err := parser.Run(); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
