package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gojsonlint/pkg/config"
	"github.com/yaklabco/gojsonlint/pkg/jsontext"
	"github.com/yaklabco/gojsonlint/pkg/lint"
)

func TestDiagnosticBuilder(t *testing.T) {
	pos := jsontext.SourcePosition{StartLine: 3, StartColumn: 1, EndLine: 3, EndColumn: 9}

	diag := lint.NewDiagnosticAt("JL004", "data.json", pos, "Trailing comma").
		WithSeverity(config.SeverityWarning).
		WithSuggestion("Remove the comma").
		Build()

	assert.Equal(t, "JL004", diag.RuleID)
	assert.Equal(t, "data.json", diag.FilePath)
	assert.Equal(t, "Trailing comma", diag.Message)
	assert.Equal(t, config.SeverityWarning, diag.Severity)
	assert.Equal(t, "Remove the comma", diag.Suggestion)
	assert.Equal(t, 3, diag.StartLine)
	assert.Equal(t, 9, diag.EndColumn)
	assert.Equal(t, pos, diag.SourcePosition())
}

func TestDiagnosticBuilderWithRegistry(t *testing.T) {
	registry := lint.NewRegistry()
	registry.Register(stubRule("JL901", "stub-one"))

	pos := jsontext.SourcePosition{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 2}

	diag := lint.NewDiagnosticAtWithRegistry("JL901", "x.json", pos, "msg", registry).Build()
	assert.Equal(t, "stub-one", diag.RuleName)

	unknown := lint.NewDiagnosticAtWithRegistry("JL999", "x.json", pos, "msg", registry).Build()
	assert.Empty(t, unknown.RuleName)

	nilReg := lint.NewDiagnosticAtWithRegistry("JL901", "x.json", pos, "msg", nil).Build()
	assert.Empty(t, nilReg.RuleName)
}

func TestBaseRuleDefaults(t *testing.T) {
	base := lint.NewBaseRule("JL900", "base-stub", "description", []string{"test"})

	assert.Equal(t, "JL900", base.ID())
	assert.Equal(t, "base-stub", base.Name())
	assert.Equal(t, "description", base.Description())
	assert.Equal(t, []string{"test"}, base.Tags())
	assert.True(t, base.DefaultEnabled())
	assert.Equal(t, config.SeverityError, base.DefaultSeverity())

	diags, err := base.Apply(nil)
	assert.NoError(t, err)
	assert.Empty(t, diags)
}
