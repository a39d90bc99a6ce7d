package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/seostudio/internal/foundation/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault_AllDomainsFilled(t *testing.T) {
	cfg := Default()

	require.Equal(t, "Viora", cfg.Brand)
	require.Equal(t, "0s", cfg.StageDelay)
	require.Zero(t, cfg.StageDelayDuration())
	require.Equal(t, ".", cfg.Output.Directory)
	require.Equal(t, LogLevelInfo, cfg.Logging.Level)
	require.Equal(t, LogFormatText, cfg.Logging.Format)
	require.Equal(t, "127.0.0.1", cfg.Preview.Host)
	require.Equal(t, 8080, cfg.Preview.Port)
	require.Nil(t, cfg.Seed)
	require.False(t, cfg.Metrics.Enabled)
}

func TestLoad_ParsesAndNormalizes(t *testing.T) {
	path := writeConfig(t, `
brand: "  Lumina "
keywords:
  - anel de prata
  - "  "
seed: 7
stage_delay: 250ms
output:
  directory: out
  frontmatter: true
logging:
  level: DEBUG
  format: Json
preview:
  port: 9090
metrics:
  enabled: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "Lumina", cfg.Brand)
	require.Equal(t, []string{"anel de prata"}, cfg.Keywords)
	require.NotNil(t, cfg.Seed)
	require.Equal(t, uint64(7), *cfg.Seed)
	require.Equal(t, 250*time.Millisecond, cfg.StageDelayDuration())
	require.Equal(t, "out", cfg.Output.Directory)
	require.True(t, cfg.Output.Frontmatter)
	require.Equal(t, LogLevelDebug, cfg.Logging.Level)
	require.Equal(t, LogFormatJSON, cfg.Logging.Format)
	require.Equal(t, 9090, cfg.Preview.Port)
	require.True(t, cfg.Metrics.Enabled)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("SEOSTUDIO_TEST_BRAND", "Aurea")
	cfg, err := Load(writeConfig(t, "brand: ${SEOSTUDIO_TEST_BRAND}\n"))
	require.NoError(t, err)
	require.Equal(t, "Aurea", cfg.Brand)
}

func TestLoad_DotEnvNextToConfig(t *testing.T) {
	path := writeConfig(t, "brand: ${SEOSTUDIO_DOTENV_BRAND}\n")
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), ".env"), []byte("SEOSTUDIO_DOTENV_BRAND=Prisma\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SEOSTUDIO_DOTENV_BRAND") })

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Prisma", cfg.Brand)
}

func TestLoad_Missing_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.True(t, errors.HasCategory(err, errors.CategoryNotFound))

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, "Viora", cfg.Brand)
}

func TestParse_InvalidValues_ConfigError(t *testing.T) {
	cases := map[string]string{
		"bad yaml":       "brand: [",
		"bad delay":      "stage_delay: soon\n",
		"negative delay": "stage_delay: -1s\n",
		"bad port":       "preview:\n  port: 70000\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(content))
			require.Error(t, err)
			require.True(t, errors.HasCategory(err, errors.CategoryConfig))
		})
	}
}

func TestInit_WritesLoadableExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed)
	require.Equal(t, 1200*time.Millisecond, cfg.StageDelayDuration())

	err = Init(path, false)
	require.True(t, errors.HasCategory(err, errors.CategoryAlreadyExists))
	require.NoError(t, Init(path, true))
}

func TestLoggingConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LoggingConfig{Level: LogLevelWarn, Format: LogFormatJSON}.NewLogger(&buf, false)
	logger.Info("hidden")
	logger.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.True(t, strings.HasPrefix(buf.String(), "{"))

	buf.Reset()
	LoggingConfig{Level: LogLevelError}.NewLogger(&buf, true).Debug("verbose")
	require.Contains(t, buf.String(), "verbose")
}

func TestNormalizeLogLevel_UnknownFallsBackToInfo(t *testing.T) {
	require.Equal(t, LogLevelWarn, NormalizeLogLevel(" Warning "))
	require.Equal(t, LogLevelInfo, NormalizeLogLevel("loud"))
}
