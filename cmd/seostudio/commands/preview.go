package commands

import (
	"net"
	"strconv"

	"git.home.luguber.info/inful/seostudio/internal/metrics"
	"git.home.luguber.info/inful/seostudio/internal/preview"
	"git.home.luguber.info/inful/seostudio/internal/seo"
)

// PreviewCmd implements the 'preview' command.
type PreviewCmd struct {
	Input string `short:"i" help:"Keyword file to generate from (default: configured or built-in list)" type:"path"`
	Watch bool   `short:"w" help:"Regenerate whenever the keyword file changes"`
	Index int    `short:"n" default:"0" help:"Rank of the keyword to write about"`
	Host  string `help:"Listen host (default: preview.host from config)"`
	Port  int    `short:"p" help:"Listen port (default: preview.port from config)"`
}

func (p *PreviewCmd) Run(g *Global, _ *CLI) error {
	ctx, cancel := signalContext()
	defer cancel()

	host, port := g.Config.Preview.Host, g.Config.Preview.Port
	if p.Host != "" {
		host = p.Host
	}
	if p.Port != 0 {
		port = p.Port
	}

	opts := preview.Options{
		Addr:      net.JoinHostPort(host, strconv.Itoa(port)),
		InputPath: p.Input,
		Fallback:  g.fallbackInput(),
		Index:     p.Index,
		Watch:     p.Watch,
		Auditor:   seo.NewAuditor(seo.WithRecorder(g.Recorder), seo.WithLogger(g.Logger)),
		Logger:    g.Logger,
	}
	if g.Registry != nil {
		opts.Metrics = metrics.HTTPHandler(g.Registry)
	}
	return preview.New(g.newSession(), opts).ListenAndServe(ctx)
}
