// Package commands implements the seostudio subcommands.
package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/seostudio/internal/article"
	"git.home.luguber.info/inful/seostudio/internal/config"
	"git.home.luguber.info/inful/seostudio/internal/foundation/errors"
	"git.home.luguber.info/inful/seostudio/internal/keyword"
	"git.home.luguber.info/inful/seostudio/internal/metrics"
	"git.home.luguber.info/inful/seostudio/internal/workflow"
)

// Global carries state shared by all subcommands once flags are parsed.
type Global struct {
	Out      io.Writer
	Err      io.Writer
	Logger   *slog.Logger
	Config   *config.Config
	Registry *prom.Registry
	Recorder metrics.Recorder
}

// NewGlobal returns a Global writing to the process stdout and stderr.
func NewGlobal() *Global {
	return &Global{
		Out:      os.Stdout,
		Err:      os.Stderr,
		Logger:   slog.Default(),
		Config:   config.Default(),
		Recorder: metrics.NoopRecorder{},
	}
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: ./seostudio.yaml when present)" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Seed    int64            `help:"Seed for reproducible output (-1 keeps the configured value)" default:"-1"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Analyze  AnalyzeCmd  `cmd:"" help:"Score and rank candidate keywords"`
	Generate GenerateCmd `cmd:"" help:"Generate an SEO article for a keyword and export it as Markdown"`
	Audit    AuditCmd    `cmd:"" help:"Audit exported Markdown articles"`
	Preview  PreviewCmd  `cmd:"" help:"Serve the generated article on a local preview server"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; it loads configuration and sets up
// logging once for every command.
func (c *CLI) AfterApply(g *Global, kctx *kong.Context) error {
	if kctx != nil && kctx.Command() == "init" {
		g.Logger = config.Default().Logging.NewLogger(g.Err, c.Verbose)
		slog.SetDefault(g.Logger)
		return nil
	}
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if c.Seed >= 0 {
		seed := uint64(c.Seed)
		cfg.Seed = &seed
	}
	g.Config = cfg
	g.Logger = cfg.Logging.NewLogger(g.Err, c.Verbose)
	slog.SetDefault(g.Logger)

	if cfg.Metrics.Enabled {
		g.Registry = prom.NewRegistry()
		g.Recorder = metrics.NewPrometheusRecorder(g.Registry)
	}
	return nil
}

func (c *CLI) loadConfig() (*config.Config, error) {
	if c.Config == "" {
		return config.LoadOrDefault(config.DefaultFileName)
	}
	return config.Load(c.Config)
}

// configPath is where init writes.
func (c *CLI) configPath() string {
	if c.Config == "" {
		return config.DefaultFileName
	}
	return c.Config
}

// newAnalyzer and newBuilder honour the configured seed: with a seed both
// keyword synthesis and template choice are reproducible.
func (g *Global) newAnalyzer() *keyword.Analyzer {
	opts := []keyword.Option{keyword.WithRecorder(g.Recorder), keyword.WithLogger(g.Logger)}
	if g.Config.Seed != nil {
		opts = append(opts, keyword.WithSource(keyword.NewSeededSource(*g.Config.Seed)))
	}
	return keyword.NewAnalyzer(opts...)
}

func (g *Global) newBuilder(extra ...article.Option) *article.Builder {
	opts := []article.Option{
		article.WithBrand(g.Config.Brand),
		article.WithPace(g.Config.StageDelayDuration()),
		article.WithRecorder(g.Recorder),
		article.WithLogger(g.Logger),
	}
	if g.Config.Seed != nil {
		opts = append(opts, article.WithPicker(keyword.NewSeededSource(*g.Config.Seed+1)))
	}
	return article.NewBuilder(append(opts, extra...)...)
}

func (g *Global) newSession(extra ...article.Option) *workflow.Session {
	return workflow.NewSession(g.newAnalyzer(), g.newBuilder(extra...), g.Logger)
}

// fallbackInput is the configured keyword list, or empty for the built-in one.
func (g *Global) fallbackInput() string {
	return strings.Join(g.Config.Keywords, "\n")
}

// keywordInput resolves the keyword text from positional args, an input
// file ("-" reads stdin) or the configured list, in that order.
func (g *Global) keywordInput(args []string, inputPath string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, "\n"), nil
	}
	if inputPath == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.WrapError(err, errors.CategoryFileSystem, "failed to read keywords from stdin").Build()
		}
		return string(data), nil
	}
	if inputPath != "" {
		data, err := os.ReadFile(filepath.Clean(inputPath))
		if err != nil {
			return "", errors.WrapError(err, errors.CategoryFileSystem, "failed to read keyword file").
				WithContext("path", inputPath).
				Build()
		}
		return string(data), nil
	}
	return g.fallbackInput(), nil
}

// signalContext cancels on SIGINT or SIGTERM.
var signalContext = notifyContext
