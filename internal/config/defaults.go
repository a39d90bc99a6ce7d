package config

import (
	"strings"

	"git.home.luguber.info/inful/seostudio/internal/article"
)

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// GenerationDefaultApplier handles brand, keyword list and pacing defaults.
type GenerationDefaultApplier struct{}

func (GenerationDefaultApplier) Domain() string { return "generation" }

func (GenerationDefaultApplier) ApplyDefaults(cfg *Config) error {
	cfg.Brand = strings.TrimSpace(cfg.Brand)
	if cfg.Brand == "" {
		cfg.Brand = article.DefaultBrand
	}
	kept := cfg.Keywords[:0]
	for _, k := range cfg.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			kept = append(kept, k)
		}
	}
	cfg.Keywords = kept
	if strings.TrimSpace(cfg.StageDelay) == "" {
		cfg.StageDelay = "0s"
	}
	return nil
}

// OutputDefaultApplier handles export defaults.
type OutputDefaultApplier struct{}

func (OutputDefaultApplier) Domain() string { return "output" }

func (OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "."
	}
	return nil
}

// LoggingDefaultApplier normalizes level and format.
type LoggingDefaultApplier struct{}

func (LoggingDefaultApplier) Domain() string { return "logging" }

func (LoggingDefaultApplier) ApplyDefaults(cfg *Config) error {
	cfg.Logging.Level = NormalizeLogLevel(string(cfg.Logging.Level))
	cfg.Logging.Format = NormalizeLogFormat(string(cfg.Logging.Format))
	return nil
}

// PreviewDefaultApplier handles preview server defaults.
type PreviewDefaultApplier struct{}

func (PreviewDefaultApplier) Domain() string { return "preview" }

func (PreviewDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Preview.Host == "" {
		cfg.Preview.Host = "127.0.0.1"
	}
	if cfg.Preview.Port == 0 {
		cfg.Preview.Port = 8080
	}
	return nil
}

var defaultAppliers = []DefaultApplier{
	GenerationDefaultApplier{},
	OutputDefaultApplier{},
	LoggingDefaultApplier{},
	PreviewDefaultApplier{},
}

func applyDefaults(cfg *Config) error {
	for _, applier := range defaultAppliers {
		if err := applier.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}
