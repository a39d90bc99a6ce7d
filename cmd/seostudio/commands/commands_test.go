package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/seostudio/internal/foundation/errors"
	"git.home.luguber.info/inful/seostudio/internal/keyword"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, args ...string) result {
	t.Helper()
	cli := &CLI{}
	g := NewGlobal()
	var out, errOut bytes.Buffer
	g.Out, g.Err = &out, &errOut

	parser, err := kong.New(cli,
		kong.Name("seostudio"),
		kong.Vars{"version": "test"},
		kong.Bind(g, cli),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	if err == nil {
		err = kctx.Run()
	}
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

// writeConfig creates an isolated config whose output directory is inside
// the test's temp dir.
func writeConfig(t *testing.T, extra string) (cfgPath, outDir string) {
	t.Helper()
	dir := t.TempDir()
	outDir = filepath.Join(dir, "out")
	cfgPath = filepath.Join(dir, "seostudio.yaml")
	content := "stage_delay: 0s\nlogging:\n  level: error\noutput:\n  directory: " + outDir + "\n" + extra
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))
	return cfgPath, outDir
}

func TestAnalyze_JSON_SortedByScore(t *testing.T) {
	cfg, _ := writeConfig(t, "")
	res := runCLI(t, "-c", cfg, "analyze", "--json", "aliança de prata 925", "anel de prata feminino")
	require.NoError(t, res.err)

	var records []keyword.Record
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &records))
	require.Len(t, records, 2)
	require.Equal(t, "anel de prata feminino", records[0].Keyword)
	require.Equal(t, 99, records[1].Score)
}

func TestAnalyze_CommaInKeyword_KeptWhole(t *testing.T) {
	cfg, _ := writeConfig(t, "")
	input := filepath.Join(t.TempDir(), "keywords.txt")
	require.NoError(t, os.WriteFile(input, []byte("anel, colar de prata\n"), 0o600))

	for _, args := range [][]string{
		{"-c", cfg, "analyze", "--json", "anel, colar de prata"},
		{"-c", cfg, "analyze", "--json", "-i", input},
	} {
		res := runCLI(t, args...)
		require.NoError(t, res.err)
		var records []keyword.Record
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &records))
		require.Len(t, records, 1)
		require.Equal(t, "anel, colar de prata", records[0].Keyword)
	}
}

func TestAnalyze_Table_DefaultsFromConfig(t *testing.T) {
	cfg, _ := writeConfig(t, "keywords:\n  - colar de prata elegante\n")
	res := runCLI(t, "-c", cfg, "analyze")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "KEYWORD")
	require.Contains(t, lines[1], "colar de prata elegante")
}

func TestGenerate_WritesFileAndRefusesOverwrite(t *testing.T) {
	cfg, outDir := writeConfig(t, "")
	res := runCLI(t, "-c", cfg, "--seed", "3", "generate", "aliança de prata 925")
	require.NoError(t, res.err)

	path := strings.TrimSpace(res.stdout)
	require.Equal(t, outDir, filepath.Dir(path))
	require.True(t, strings.HasSuffix(path, ".md"))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(content), "# "))
	require.Contains(t, string(content), "**Palavra-chave principal:** aliança de prata 925")
	require.Equal(t, 5, strings.Count(res.stderr, "...\n"))
	require.Contains(t, res.stderr, "[1/5] Coletando perguntas relacionadas (PAA)...")

	res = runCLI(t, "-c", cfg, "--seed", "3", "generate", "aliança de prata 925")
	require.True(t, errors.HasCategory(res.err, errors.CategoryAlreadyExists))
}

func TestGenerate_Stdout_MatchesExportedFile(t *testing.T) {
	cfg, _ := writeConfig(t, "")
	printed := runCLI(t, "-c", cfg, "--seed", "4", "generate", "--stdout", "colar de prata elegante")
	require.NoError(t, printed.err)
	written := runCLI(t, "-c", cfg, "--seed", "4", "generate", "colar de prata elegante")
	require.NoError(t, written.err)

	content, err := os.ReadFile(strings.TrimSpace(written.stdout))
	require.NoError(t, err)
	require.Equal(t, string(content), printed.stdout)
	require.False(t, strings.HasSuffix(printed.stdout, "\n"))
}

func TestGenerate_SameSeed_SameArticle(t *testing.T) {
	cfg, _ := writeConfig(t, "")
	first := runCLI(t, "-c", cfg, "--seed", "9", "generate", "--stdout", "pingente de prata único", "joias artesanais prata")
	second := runCLI(t, "-c", cfg, "--seed", "9", "generate", "--stdout", "pingente de prata único", "joias artesanais prata")
	require.NoError(t, first.err)
	require.NoError(t, second.err)
	require.Equal(t, first.stdout, second.stdout)
	require.Contains(t, first.stdout, "**Variações:**")
}

func TestGenerate_Frontmatter_Force(t *testing.T) {
	cfg, _ := writeConfig(t, "seed: 1\n")
	res := runCLI(t, "-c", cfg, "generate", "--frontmatter", "anel de prata feminino")
	require.NoError(t, res.err)
	res = runCLI(t, "-c", cfg, "generate", "--frontmatter", "--force", "anel de prata feminino")
	require.NoError(t, res.err)

	content, err := os.ReadFile(strings.TrimSpace(res.stdout))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(content), "---\n"))
	require.Contains(t, string(content), "fingerprint:")
}

func TestGenerate_IndexOutOfRange_ValidationError(t *testing.T) {
	cfg, _ := writeConfig(t, "")
	res := runCLI(t, "-c", cfg, "generate", "-n", "5", "anel de prata feminino")
	require.True(t, errors.HasCategory(res.err, errors.CategoryValidation))
}

func TestAudit_GeneratedArticle_Passes(t *testing.T) {
	cfg, _ := writeConfig(t, "seed: 2\n")
	res := runCLI(t, "-c", cfg, "generate", "aliança de prata 925")
	require.NoError(t, res.err)
	path := strings.TrimSpace(res.stdout)

	res = runCLI(t, "-c", cfg, "audit", path)
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "  ok")
}

func TestAudit_BrokenArticle_ValidationError(t *testing.T) {
	cfg, _ := writeConfig(t, "")
	path := filepath.Join(t.TempDir(), "bad.md")
	require.NoError(t, os.WriteFile(path, []byte("## sem título\n\ntexto\n"), 0o600))

	res := runCLI(t, "-c", cfg, "audit", "--json", "-k", "prata", path)
	require.True(t, errors.HasCategory(res.err, errors.CategoryValidation))
	require.Contains(t, res.stdout, `"single_h1"`)
}

func TestInit_WritesConfigIntoOutputDir(t *testing.T) {
	dir := t.TempDir()
	res := runCLI(t, "init", "-o", dir)
	require.NoError(t, res.err)
	require.FileExists(t, filepath.Join(dir, "seostudio.yaml"))

	res = runCLI(t, "init", "-o", dir)
	require.True(t, errors.HasCategory(res.err, errors.CategoryAlreadyExists))
}

func TestMissingConfig_NotFound(t *testing.T) {
	res := runCLI(t, "-c", filepath.Join(t.TempDir(), "none.yaml"), "analyze")
	require.True(t, errors.HasCategory(res.err, errors.CategoryNotFound))
}
