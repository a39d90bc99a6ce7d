package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/seostudio/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" name:"output" help:"Directory to write seostudio.yaml into"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path := root.configPath()
	if i.Output != "" {
		path = filepath.Join(i.Output, config.DefaultFileName)
	}
	if err := config.Init(path, i.Force); err != nil {
		return err
	}
	_, err := fmt.Fprintf(g.Out, "Wrote configuration to %s\n", path)
	return err
}
