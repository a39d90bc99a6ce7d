// Package config loads seostudio.yaml.
//
// Load reads .env files, expands ${VAR} references, decodes YAML, applies
// per-domain defaults and validates the result. Every field has a working
// default, so a missing file is not an error when using LoadOrDefault.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/seostudio/internal/foundation/errors"
)

// DefaultFileName is the config file looked up when --config is not given.
const DefaultFileName = "seostudio.yaml"

// Config is the studio configuration.
type Config struct {
	// Brand is woven into generated prose.
	Brand string `yaml:"brand"`
	// Keywords replaces the built-in keyword list used when no input is given.
	Keywords []string `yaml:"keywords,omitempty"`
	// Seed pins keyword synthesis and template choice. Unset means random.
	Seed *uint64 `yaml:"seed,omitempty"`
	// StageDelay is waited before each generation stage completes, as a Go duration.
	StageDelay string `yaml:"stage_delay"`

	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Preview PreviewConfig `yaml:"preview"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// OutputConfig controls article export.
type OutputConfig struct {
	Directory   string `yaml:"directory"`
	Frontmatter bool   `yaml:"frontmatter"`
	Force       bool   `yaml:"force"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// PreviewConfig configures the local preview server.
type PreviewConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// MetricsConfig toggles the Prometheus /metrics endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// StageDelayDuration returns StageDelay parsed. Validate guarantees it parses.
func (c *Config) StageDelayDuration() time.Duration {
	d, err := time.ParseDuration(c.StageDelay)
	if err != nil {
		return 0
	}
	return d
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	_ = applyDefaults(cfg)
	return cfg
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	loadEnvFiles(filepath.Dir(path))

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundError("configuration file not found").
				WithContext("path", path).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read config file").
			WithContext("path", path).
			Build()
	}
	return Parse(data)
}

// LoadOrDefault behaves like Load but falls back to Default when path does
// not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.HasCategory(err, errors.CategoryNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes YAML content after expanding environment variables.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").Build()
	}
	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init writes an example configuration file.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.AlreadyExistsError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}

	seed := uint64(42)
	example := Default()
	example.Seed = &seed
	example.StageDelay = "1200ms"
	example.Keywords = []string{"anel de prata feminino", "colar de prata elegante"}

	data, err := yaml.Marshal(example)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Build()
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("path", path).
			Build()
	}
	return nil
}
