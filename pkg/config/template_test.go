package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojsonlint/pkg/config"
)

func TestGenerateTemplate_Minimal(t *testing.T) {
	data, err := config.GenerateTemplate(config.TemplateOptions{})
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "gojsonlint configuration")
	assert.Contains(t, text, "indent_width: 2")
	assert.Contains(t, text, "# rules:")
}

func TestGenerateTemplate_Full(t *testing.T) {
	previous := config.DefaultRuleInfoProvider
	defer func() { config.DefaultRuleInfoProvider = previous }()

	config.DefaultRuleInfoProvider = func() []config.RuleInfo {
		return []config.RuleInfo{
			{
				ID:          "JL002",
				Name:        "bare-token",
				Description: "quoted token missing structural context",
				Enabled:     true,
				Severity:    config.SeverityError,
			},
			{
				ID:          "JL001",
				Name:        "unterminated-string",
				Description: "string left open at end of line",
				Enabled:     true,
				Severity:    config.SeverityError,
			},
		}
	}

	data, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "JL001:")
	assert.Contains(t, text, "JL002:")
	assert.Contains(t, text, "unterminated-string")

	// Sorted by ID regardless of provider order.
	assert.Less(t, strings.Index(text, "JL001:"), strings.Index(text, "JL002:"))
}

func TestGenerateTemplate_FullFiltered(t *testing.T) {
	previous := config.DefaultRuleInfoProvider
	defer func() { config.DefaultRuleInfoProvider = previous }()

	config.DefaultRuleInfoProvider = func() []config.RuleInfo {
		return []config.RuleInfo{
			{ID: "JL001", Name: "unterminated-string", Enabled: true, Severity: config.SeverityError},
			{ID: "JL004", Name: "trailing-comma", Enabled: true, Severity: config.SeverityError},
		}
	}

	data, err := config.GenerateTemplate(config.TemplateOptions{
		Full:         true,
		IncludeRules: []string{"jl004"},
	})
	require.NoError(t, err)

	text := string(data)
	assert.NotContains(t, text, "JL001:")
	assert.Contains(t, text, "JL004:")
}

func TestGenerateTemplate_FullWithoutProvider(t *testing.T) {
	previous := config.DefaultRuleInfoProvider
	defer func() { config.DefaultRuleInfoProvider = previous }()
	config.DefaultRuleInfoProvider = nil

	_, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
	assert.Error(t, err)
}
