package rules

import (
	"fmt"

	"github.com/yaklabco/gojsonlint/pkg/config"
	"github.com/yaklabco/gojsonlint/pkg/lint"
)

// TrailingCommaRule flags a comma immediately before a closing brace or
// bracket on the following line.
type TrailingCommaRule struct {
	lint.BaseRule
}

// NewTrailingCommaRule creates the trailing comma rule.
func NewTrailingCommaRule() *TrailingCommaRule {
	return &TrailingCommaRule{
		BaseRule: lint.NewBaseRule(
			"JL004",
			"trailing-comma",
			"The last element before a closing brace or bracket should not end with a comma",
			[]string{"commas"},
		),
	}
}

// Apply flags every line whose trailing comma is followed by a closer.
func (r *TrailingCommaRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic
	lineCount := ctx.File.LineCount()

	for lineNum := 1; lineNum < lineCount; lineNum++ {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		if !HasTrailingComma(ctx.File.LineTrimmed(lineNum), ctx.File.LineText(lineNum+1)) {
			continue
		}

		diag := lint.NewDiagnosticAt(r.ID(), ctx.File.Path,
			ctx.File.LinePosition(lineNum),
			"Trailing comma before a closing bracket").
			WithSeverity(r.DefaultSeverity()).
			WithSuggestion("Remove the comma after the last element").
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}

// MissingCommaRule flags a line where the next line starts a new value even
// though the current line does not end with a comma or a bracket.
type MissingCommaRule struct {
	lint.BaseRule
}

// NewMissingCommaRule creates the missing comma rule.
func NewMissingCommaRule() *MissingCommaRule {
	return &MissingCommaRule{
		BaseRule: lint.NewBaseRule(
			"JL005",
			"missing-comma",
			"Sibling elements should be separated by commas",
			[]string{"commas", "structure"},
		),
	}
}

// DefaultSeverity returns warning: like bare-quoted-token, this check can
// misfire on unusual but valid layouts.
func (r *MissingCommaRule) DefaultSeverity() config.Severity {
	return config.SeverityWarning
}

// Apply flags every line after which a new value starts without a separator.
func (r *MissingCommaRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic
	lineCount := ctx.File.LineCount()

	for lineNum := 1; lineNum < lineCount; lineNum++ {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		if !MissingComma(ctx.File.LineTrimmed(lineNum), ctx.File.LineText(lineNum+1)) {
			continue
		}

		diag := lint.NewDiagnosticAt(r.ID(), ctx.File.Path,
			ctx.File.LinePosition(lineNum),
			"Possible missing comma before the next element").
			WithSeverity(r.DefaultSeverity()).
			WithSuggestion("Add a comma at the end of this line").
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}
