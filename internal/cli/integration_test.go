package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojsonlint/internal/cli"
)

// testJSONWithTrailingComma has a trailing comma on line 2, which the strict
// parser rejects and the trailing-comma heuristic flags.
const testJSONWithTrailingComma = "{\n  \"name\": \"demo\",\n}\n"

const testValidJSON = "{\n  \"name\": \"demo\"\n}\n"

func testBuildInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}
}

// writeTestConfig creates a minimal config file so project config discovery
// does not pick up anything from the surrounding tree.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	cfgDir := t.TempDir()
	cfgFile := filepath.Join(cfgDir, ".gojsonlint.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("indent_width: 2\n"), 0644))
	return cfgFile
}

// TestIntegration_RuleFormatFlag tests the --rule-format flag with different formats.
func TestIntegration_RuleFormatFlag(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	jsonFile := filepath.Join(tmpDir, "test.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(testJSONWithTrailingComma), 0644))

	tests := []struct {
		name           string
		ruleFormat     string
		wantContains   []string
		wantNotContain []string
	}{
		{
			name:           "format name shows rule name only",
			ruleFormat:     "name",
			wantContains:   []string{"trailing-comma"},
			wantNotContain: []string{"JL004/"},
		},
		{
			name:           "format id shows rule ID only",
			ruleFormat:     "id",
			wantContains:   []string{"JL004"},
			wantNotContain: []string{"trailing-comma"},
		},
		{
			name:         "format combined shows both ID and name",
			ruleFormat:   "combined",
			wantContains: []string{"JL004/trailing-comma"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := cli.NewRootCommand(testBuildInfo())

			var stdout, stderr bytes.Buffer
			cmd.SetOut(&stdout)
			cmd.SetErr(&stderr)

			cmd.SetArgs([]string{
				"check",
				"--config", writeTestConfig(t),
				"--rule-format", tt.ruleFormat,
				"--no-context",
				"--color", "never",
				jsonFile,
			})

			_ = cmd.Execute() //nolint:errcheck // Invalid input is the point of the test.

			output := stdout.String() + stderr.String()

			for _, want := range tt.wantContains {
				assert.Contains(t, output, want,
					"output should contain %q for rule-format=%s", want, tt.ruleFormat)
			}

			for _, notWant := range tt.wantNotContain {
				assert.NotContains(t, output, notWant,
					"output should not contain %q for rule-format=%s", notWant, tt.ruleFormat)
			}
		})
	}
}

// TestIntegration_CheckValidFile verifies that a valid document passes.
func TestIntegration_CheckValidFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	jsonFile := filepath.Join(tmpDir, "valid.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(testValidJSON), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"check",
		"--config", writeTestConfig(t),
		"--color", "never",
		jsonFile,
	})

	err := cmd.Execute()
	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "All files valid")
}

// TestIntegration_CheckInvalidFileFails verifies the issues-found error path.
func TestIntegration_CheckInvalidFileFails(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	jsonFile := filepath.Join(tmpDir, "broken.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(testJSONWithTrailingComma), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"check",
		"--config", writeTestConfig(t),
		"--color", "never",
		jsonFile,
	})

	err := cmd.Execute()
	assert.ErrorIs(t, err, cli.ErrIssuesFound)
}

// TestIntegration_CheckJSONFormat verifies machine-readable output.
func TestIntegration_CheckJSONFormat(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	jsonFile := filepath.Join(tmpDir, "broken.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(testJSONWithTrailingComma), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"check",
		"--config", writeTestConfig(t),
		"--format", "json",
		"--color", "never",
		jsonFile,
	})

	_ = cmd.Execute() //nolint:errcheck // Invalid input is the point of the test.

	var output struct {
		Files []struct {
			Path       string `json:"path"`
			Valid      bool   `json:"valid"`
			ErrorLines []int  `json:"errorLines"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &output))
	require.Len(t, output.Files, 1)
	assert.False(t, output.Files[0].Valid)
	assert.Contains(t, output.Files[0].ErrorLines, 2)
}

// TestIntegration_ConfigWithRuleNames tests that config files can use rule names.
func TestIntegration_ConfigWithRuleNames(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	jsonFile := filepath.Join(tmpDir, "test.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(testJSONWithTrailingComma), 0644))

	configContent := `
rules:
  trailing-comma:
    enabled: false
`
	configFile := filepath.Join(tmpDir, ".gojsonlint.yml")
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"check",
		"--config", configFile,
		"--no-context",
		"--color", "never",
		jsonFile,
	})

	_ = cmd.Execute() //nolint:errcheck // The file is still invalid.

	output := stdout.String() + stderr.String()
	assert.NotContains(t, output, "trailing-comma",
		"disabled heuristic should not appear in output")
}

// TestIntegration_FmtPrintsFormatted verifies fmt reformats invalid input
// without failing.
func TestIntegration_FmtPrintsFormatted(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	jsonFile := filepath.Join(tmpDir, "messy.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte("{\"a\":{\"b\":1,}}\n"), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"fmt",
		"--config", writeTestConfig(t),
		jsonFile,
	})

	err := cmd.Execute()
	assert.NoError(t, err, "fmt should not fail on invalid input")
	assert.NotEmpty(t, stdout.String())
}

// TestIntegration_FmtWrite verifies in-place rewriting.
func TestIntegration_FmtWrite(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	jsonFile := filepath.Join(tmpDir, "compact.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{"name":"demo","count":2}`), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"fmt",
		"--config", writeTestConfig(t),
		"--write",
		"--no-backups",
		jsonFile,
	})

	require.NoError(t, cmd.Execute())

	rewritten, err := os.ReadFile(jsonFile)
	require.NoError(t, err)
	assert.Contains(t, string(rewritten), "\n", "rewritten file should be indented")
	assert.True(t, strings.HasSuffix(string(rewritten), "\n"))
}

// TestIntegration_FmtList verifies --list prints only paths that would change.
func TestIntegration_FmtList(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	messy := filepath.Join(tmpDir, "messy.json")
	require.NoError(t, os.WriteFile(messy, []byte(`{"a":1}`), 0644))
	clean := filepath.Join(tmpDir, "clean.json")
	require.NoError(t, os.WriteFile(clean, []byte(testValidJSON), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"fmt",
		"--config", writeTestConfig(t),
		"--list",
		tmpDir,
	})

	require.NoError(t, cmd.Execute())

	output := stdout.String()
	assert.Contains(t, output, "messy.json")
	assert.NotContains(t, output, "clean.json")
}

// TestIntegration_FmtQuery verifies subdocument extraction.
func TestIntegration_FmtQuery(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	jsonFile := filepath.Join(tmpDir, "user.json")
	require.NoError(t, os.WriteFile(jsonFile,
		[]byte(`{"user": {"name": "amy", "admin": true}}`), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"fmt",
		"--config", writeTestConfig(t),
		"--query", "user.name",
		jsonFile,
	})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "\"amy\"\n", stdout.String())
}

// TestIntegration_FmtStdin verifies the "-" pseudo-path.
func TestIntegration_FmtStdin(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(`{"a":[1,2]}`))
	cmd.SetArgs([]string{
		"fmt",
		"--config", writeTestConfig(t),
		"-",
	})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "\"a\": [")
}

// TestIntegration_InitCreatesConfig verifies the init command output file.
func TestIntegration_InitCreatesConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	outPath := filepath.Join(tmpDir, "generated.yml")

	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetArgs([]string{"init", "--output", outPath})

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "gojsonlint")

	// A second run without --force must refuse to overwrite.
	cmd = cli.NewRootCommand(testBuildInfo())
	cmd.SetArgs([]string{"init", "--output", outPath})
	assert.Error(t, cmd.Execute())
}

// TestIntegration_EmbeddedMarkdown verifies fenced block checking.
func TestIntegration_EmbeddedMarkdown(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := filepath.Join(tmpDir, "doc.md")
	doc := "# Example\n\n```json\n{\n  \"a\": 1,\n}\n```\n"
	require.NoError(t, os.WriteFile(mdFile, []byte(doc), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"check",
		"--config", writeTestConfig(t),
		"--embedded",
		"--no-context",
		"--color", "never",
		mdFile,
	})

	err := cmd.Execute()
	assert.ErrorIs(t, err, cli.ErrIssuesFound)

	output := stdout.String() + stderr.String()
	assert.Contains(t, output, "doc.md")
}
