package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojsonlint/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		clone := c.Clone()
		assert.Nil(t, clone)
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies Rules map", func(t *testing.T) {
		enabled := true
		severity := "error"
		original := &config.Config{
			Rules: map[string]config.RuleConfig{
				"JL001": {
					Enabled:  &enabled,
					Severity: &severity,
					Options: map[string]any{
						"max_lines": 500,
					},
				},
			},
		}

		clone := original.Clone()
		require.NotNil(t, clone)

		// Mutating the clone must not affect the original.
		disabled := false
		entry := clone.Rules["JL001"]
		entry.Enabled = &disabled
		clone.Rules["JL001"] = entry
		clone.Rules["JL002"] = config.RuleConfig{}

		assert.True(t, *original.Rules["JL001"].Enabled)
		assert.Len(t, original.Rules, 1)
	})

	t.Run("copies CLI-only fields", func(t *testing.T) {
		original := &config.Config{
			Write:        true,
			Diff:         true,
			Query:        "name.first",
			Strict:       true,
			Annotate:     true,
			Format:       config.FormatJSON,
			RuleFormat:   config.RuleFormatCombined,
			Jobs:         4,
			EnableRules:  []string{"JL001"},
			DisableRules: []string{"JL005"},
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.True(t, clone.Write)
		assert.True(t, clone.Diff)
		assert.Equal(t, "name.first", clone.Query)
		assert.True(t, clone.Strict)
		assert.True(t, clone.Annotate)
		assert.Equal(t, config.FormatJSON, clone.Format)
		assert.Equal(t, config.RuleFormatCombined, clone.RuleFormat)
		assert.Equal(t, 4, clone.Jobs)
		assert.Equal(t, []string{"JL001"}, clone.EnableRules)
		assert.Equal(t, []string{"JL005"}, clone.DisableRules)

		clone.EnableRules[0] = "JL009"
		assert.Equal(t, "JL001", original.EnableRules[0])
	})

	t.Run("deep copies Ignore slice", func(t *testing.T) {
		original := &config.Config{Ignore: []string{"vendor/**"}}
		clone := original.Clone()
		require.NotNil(t, clone)

		clone.Ignore[0] = "changed"
		assert.Equal(t, "vendor/**", original.Ignore[0])
	})
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	enabled := false
	severity := "warning"
	original := &config.Config{
		IndentWidth:     4,
		SeverityDefault: "warning",
		Embedded:        true,
		Ignore:          []string{"testdata/**"},
		Rules: map[string]config.RuleConfig{
			"JL002": {Enabled: &enabled, Severity: &severity},
		},
		Backups: config.BackupsConfig{Enabled: true, Mode: "sidecar"},
	}

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "indent_width: 4")
	assert.Contains(t, string(data), "JL002")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, 4, parsed.IndentWidth)
	assert.Equal(t, "warning", parsed.SeverityDefault)
	assert.True(t, parsed.Embedded)
	assert.Equal(t, []string{"testdata/**"}, parsed.Ignore)
	require.Contains(t, parsed.Rules, "JL002")
	assert.False(t, *parsed.Rules["JL002"].Enabled)
	assert.Equal(t, "warning", *parsed.Rules["JL002"].Severity)
}

func TestFromYAML_Invalid(t *testing.T) {
	_, err := config.FromYAML([]byte("rules: [not a map"))
	assert.Error(t, err)
}

func TestFromYAML_InitializesRules(t *testing.T) {
	cfg, err := config.FromYAML([]byte("indent_width: 2\n"))
	require.NoError(t, err)
	assert.NotNil(t, cfg.Rules)
}

func TestToYAMLWithHeader(t *testing.T) {
	cfg := config.NewConfig()
	data, err := cfg.ToYAMLWithHeader("# generated by gojsonlint init")
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Contains(t, string(data), "# generated by gojsonlint init\n")
	assert.Contains(t, string(data), "indent_width: 2")
}
