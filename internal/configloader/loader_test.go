package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojsonlint/internal/configloader"
	"github.com/yaklabco/gojsonlint/pkg/config"
	_ "github.com/yaklabco/gojsonlint/pkg/lint/rules" // register heuristics
)

// isolatedOptions returns LoadOptions that ignore everything outside the
// given directory, so host configuration cannot leak into tests.
func isolatedOptions(dir string) configloader.LoadOptions {
	return configloader.LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeProjectConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".gojsonlint.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()

	result, err := configloader.Load(context.Background(), isolatedOptions(dir))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Config.IndentWidth)
	assert.Equal(t, "error", result.Config.SeverityDefault)
	assert.Equal(t, config.FormatText, result.Config.Format)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeProjectConfig(t, dir, "indent_width: 4\nseverity_default: warning\n")

	result, err := configloader.Load(context.Background(), isolatedOptions(dir))
	require.NoError(t, err)

	assert.Equal(t, 4, result.Config.IndentWidth)
	assert.Equal(t, "warning", result.Config.SeverityDefault)
	assert.Equal(t, []string{path}, result.LoadedFrom)
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	explicit := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(explicit, []byte("indent_width: 8\n"), 0o644))

	opts := isolatedOptions(dir)
	opts.ExplicitPath = explicit

	result, err := configloader.Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 8, result.Config.IndentWidth)
	assert.Contains(t, result.LoadedFrom, explicit)
}

func TestLoad_CLIOverridesProject(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "indent_width: 4\n")

	opts := isolatedOptions(dir)
	opts.CLIConfig = &config.Config{IndentWidth: 3, Write: true}

	result, err := configloader.Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Config.IndentWidth)
	assert.True(t, result.Config.Write)
}

func TestLoad_EnvOverridesProject(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "indent_width: 4\n")
	t.Setenv("GOJSONLINT_INDENT_WIDTH", "6")

	opts := isolatedOptions(dir)
	opts.IgnoreEnv = false

	result, err := configloader.Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 6, result.Config.IndentWidth)
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOJSONLINT_JOBS", "lots")

	opts := isolatedOptions(dir)
	opts.IgnoreEnv = false

	_, err := configloader.Load(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOJSONLINT_JOBS")
}

func TestLoad_ValidationError(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "severity_default: critical\n")

	_, err := configloader.Load(context.Background(), isolatedOptions(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid severity")
}

func TestLoad_NormalizesRuleNames(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "rules:\n  unterminated-string:\n    severity: warning\n")

	result, err := configloader.Load(context.Background(), isolatedOptions(dir))
	require.NoError(t, err)

	ruleCfg, ok := result.Config.Rules["JL001"]
	require.True(t, ok, "rule name should resolve to canonical ID")
	require.NotNil(t, ruleCfg.Severity)
	assert.Equal(t, "warning", *ruleCfg.Severity)
}

func TestLoad_UnknownRuleWarns(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "rules:\n  JL999:\n    enabled: false\n")

	result, err := configloader.Load(context.Background(), isolatedOptions(dir))
	require.NoError(t, err)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "JL999")
}

func TestFindProjectConfig_SearchesUpward(t *testing.T) {
	root := t.TempDir()
	path := writeProjectConfig(t, root, "indent_width: 4\n")

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := configloader.FindProjectConfig(context.Background(), nested)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	root := t.TempDir()
	writeProjectConfig(t, root, "indent_width: 4\n")

	// A .git directory below the config marks a repo boundary.
	repo := filepath.Join(root, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	found, err := configloader.FindProjectConfig(context.Background(), repo)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestMergeAll_Precedence(t *testing.T) {
	base := config.NewConfig()
	override := &config.Config{
		IndentWidth: 4,
		Format:      config.FormatJSON,
		Ignore:      []string{"vendor/**"},
	}

	merged := configloader.MergeAll(base, override)

	assert.Equal(t, 4, merged.IndentWidth)
	assert.Equal(t, config.FormatJSON, merged.Format)
	assert.Equal(t, []string{"vendor/**"}, merged.Ignore)
	// Untouched fields keep base values.
	assert.Equal(t, "error", merged.SeverityDefault)
}

func TestValidate_BadBackupMode(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Backups.Mode = "copy"

	result := configloader.Validate(cfg)
	assert.False(t, result.Valid())
}

func TestValidate_BadIgnorePattern(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Ignore = []string{"[unclosed"}

	result := configloader.Validate(cfg)
	assert.False(t, result.Valid())
}

func TestListEnvVars_Documented(t *testing.T) {
	vars := configloader.ListEnvVars()
	assert.Contains(t, vars, "GOJSONLINT_INDENT_WIDTH")
	assert.Contains(t, vars, "GOJSONLINT_FORMAT")
}
