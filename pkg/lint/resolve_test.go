package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojsonlint/pkg/config"
	"github.com/yaklabco/gojsonlint/pkg/lint"
)

func resolveRegistry() *lint.Registry {
	registry := lint.NewRegistry()
	registry.Register(stubRule("JL901", "stub-one"))
	registry.Register(stubRule("JL902", "stub-two"))
	return registry
}

func resolvedIDs(resolved []lint.ResolvedRule) []string {
	ids := make([]string, 0, len(resolved))
	for _, rr := range resolved {
		ids = append(ids, rr.Rule.ID())
	}
	return ids
}

func TestResolveRulesDefaults(t *testing.T) {
	resolved := lint.ResolveRules(resolveRegistry(), config.NewConfig())

	assert.Equal(t, []string{"JL901", "JL902"}, resolvedIDs(resolved))
	for _, rr := range resolved {
		assert.True(t, rr.Enabled)
		assert.Equal(t, config.SeverityError, rr.Severity)
	}
}

func TestResolveRulesNilConfig(t *testing.T) {
	resolved := lint.ResolveRules(resolveRegistry(), nil)
	assert.Len(t, resolved, 2)
}

func TestResolveRulesDisableByID(t *testing.T) {
	cfg := config.NewConfig()
	cfg.DisableRules = []string{"JL901"}

	resolved := lint.ResolveRules(resolveRegistry(), cfg)
	assert.Equal(t, []string{"JL902"}, resolvedIDs(resolved))
}

func TestResolveRulesDisableByName(t *testing.T) {
	cfg := config.NewConfig()
	cfg.DisableRules = []string{"stub-two"}

	resolved := lint.ResolveRules(resolveRegistry(), cfg)
	assert.Equal(t, []string{"JL901"}, resolvedIDs(resolved))
}

func TestResolveRulesRuleConfigOverrides(t *testing.T) {
	disabled := false
	sev := string(config.SeverityInfo)

	cfg := config.NewConfig()
	cfg.Rules["JL901"] = config.RuleConfig{Enabled: &disabled}
	cfg.Rules["JL902"] = config.RuleConfig{Severity: &sev}

	resolved := lint.ResolveRules(resolveRegistry(), cfg)
	require.Len(t, resolved, 1)
	assert.Equal(t, "JL902", resolved[0].Rule.ID())
	assert.Equal(t, config.SeverityInfo, resolved[0].Severity)
	require.NotNil(t, resolved[0].Config)
}

func TestResolveRulesEnableWinsOverRuleConfigDisable(t *testing.T) {
	disabled := false

	cfg := config.NewConfig()
	cfg.Rules["JL901"] = config.RuleConfig{Enabled: &disabled}
	cfg.EnableRules = []string{"JL901"}

	// Rule-level config is applied after the CLI enable list, so the file
	// still wins for per-rule settings.
	resolved := lint.ResolveRules(resolveRegistry(), cfg)
	assert.Equal(t, []string{"JL902"}, resolvedIDs(resolved))
}
