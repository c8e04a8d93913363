package rules

import (
	"fmt"

	"github.com/yaklabco/gojsonlint/pkg/config"
	"github.com/yaklabco/gojsonlint/pkg/jsontext"
	"github.com/yaklabco/gojsonlint/pkg/lint"
)

// UnterminatedStringRule flags lines that open a double-quoted string
// without closing it before the end of the line.
type UnterminatedStringRule struct {
	lint.BaseRule
}

// NewUnterminatedStringRule creates the unterminated string rule.
func NewUnterminatedStringRule() *UnterminatedStringRule {
	return &UnterminatedStringRule{
		BaseRule: lint.NewBaseRule(
			"JL001",
			"unterminated-string",
			"Strings should be closed before the end of the line",
			[]string{"strings"},
		),
	}
}

// Apply scans every line with a single string-scan state threaded across the
// whole document, so a quote left open on one line keeps later lines inside
// string context until something closes it.
func (r *UnterminatedStringRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic
	var state jsontext.ScanState

	for lineNum := 1; lineNum <= ctx.File.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		if !LeavesOpenString(&state, ctx.File.LineText(lineNum)) {
			continue
		}

		diag := lint.NewDiagnosticAt(r.ID(), ctx.File.Path,
			ctx.File.LinePosition(lineNum),
			"String is not terminated before the end of the line").
			WithSeverity(r.DefaultSeverity()).
			WithSuggestion(`Add the missing closing '"'`).
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}

// BareQuotedTokenRule flags a quoted token sitting on its own line with no
// key, colon, or bracket around it, usually a copy-paste leftover.
type BareQuotedTokenRule struct {
	lint.BaseRule
}

// NewBareQuotedTokenRule creates the bare quoted token rule.
func NewBareQuotedTokenRule() *BareQuotedTokenRule {
	return &BareQuotedTokenRule{
		BaseRule: lint.NewBaseRule(
			"JL002",
			"bare-quoted-token",
			"Quoted values should be part of a key/value pair or an array element",
			[]string{"strings", "structure"},
		),
	}
}

// DefaultSeverity returns warning: the check is known to misfire on some
// valid multi-line layouts, so it should not dominate the error count.
func (r *BareQuotedTokenRule) DefaultSeverity() config.Severity {
	return config.SeverityWarning
}

// Apply flags every line matching the bare quoted token shape.
func (r *BareQuotedTokenRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	for lineNum := 1; lineNum <= ctx.File.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		if !IsBareQuotedToken(ctx.File.LineTrimmed(lineNum)) {
			continue
		}

		diag := lint.NewDiagnosticAt(r.ID(), ctx.File.Path,
			ctx.File.LinePosition(lineNum),
			"Quoted token has no surrounding structure").
			WithSeverity(r.DefaultSeverity()).
			WithSuggestion("Attach the value to a key or separate it with a comma").
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}
