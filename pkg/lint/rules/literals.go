package rules

import (
	"fmt"

	"github.com/yaklabco/gojsonlint/pkg/lint"
)

// TruncatedLiteralRule flags lines where a keyword literal after a colon was
// cut off, such as ": tr" for true or ": nu" for null. The "un" prefix also
// catches a truncated "undefined", which is never valid JSON but common in
// pasted JavaScript.
type TruncatedLiteralRule struct {
	lint.BaseRule
}

// NewTruncatedLiteralRule creates the truncated literal rule.
func NewTruncatedLiteralRule() *TruncatedLiteralRule {
	return &TruncatedLiteralRule{
		BaseRule: lint.NewBaseRule(
			"JL003",
			"truncated-literal",
			"Keyword literals (true, false, null) should be written out in full",
			[]string{"literals"},
		),
	}
}

// Apply flags every line ending in a colon followed by a cut-off literal.
func (r *TruncatedLiteralRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	for lineNum := 1; lineNum <= ctx.File.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		if !HasTruncatedLiteral(ctx.File.LineTrimmed(lineNum)) {
			continue
		}

		diag := lint.NewDiagnosticAt(r.ID(), ctx.File.Path,
			ctx.File.LinePosition(lineNum),
			"Literal value appears to be cut off").
			WithSeverity(r.DefaultSeverity()).
			WithSuggestion("Complete the literal (true, false, or null)").
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}
