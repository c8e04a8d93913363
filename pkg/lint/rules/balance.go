package rules

import (
	"fmt"

	"github.com/yaklabco/gojsonlint/pkg/jsontext"
	"github.com/yaklabco/gojsonlint/pkg/lint"
)

// UnbalancedNestingRule accumulates brace and bracket counts over the whole
// document and flags the last line when either total is non-zero. The rule
// does not try to localize the unmatched bracket; it only signals that the
// nesting never resolves.
type UnbalancedNestingRule struct {
	lint.BaseRule
}

// NewUnbalancedNestingRule creates the unbalanced nesting rule.
func NewUnbalancedNestingRule() *UnbalancedNestingRule {
	return &UnbalancedNestingRule{
		BaseRule: lint.NewBaseRule(
			"JL006",
			"unbalanced-nesting",
			"Braces and brackets should balance over the whole document",
			[]string{"structure"},
		),
	}
}

// Apply counts bracket characters on every line and reports a single
// diagnostic on the last line when opens and closes do not cancel out.
func (r *UnbalancedNestingRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil || ctx.File.LineCount() == 0 {
		return nil, nil
	}

	var balance jsontext.Balance

	for lineNum := 1; lineNum <= ctx.File.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}
		balance.Add(ctx.File.LineText(lineNum))
	}

	if balance.Balanced() {
		return nil, nil
	}

	lastLine := ctx.File.LineCount()
	diag := lint.NewDiagnosticAt(r.ID(), ctx.File.Path,
		ctx.File.LinePosition(lastLine),
		unbalanceMessage(balance)).
		WithSeverity(r.DefaultSeverity()).
		WithSuggestion("Check that every opening bracket has a matching closer").
		Build()

	return []lint.Diagnostic{diag}, nil
}

// unbalanceMessage describes which bracket kind is off and in which
// direction.
func unbalanceMessage(b jsontext.Balance) string {
	describe := func(n int, open, close string) string {
		if n > 0 {
			return fmt.Sprintf("%d unclosed '%s'", n, open)
		}
		return fmt.Sprintf("%d extra '%s'", -n, close)
	}

	switch {
	case b.Braces != 0 && b.Brackets != 0:
		return fmt.Sprintf("Unbalanced nesting: %s, %s",
			describe(b.Braces, "{", "}"), describe(b.Brackets, "[", "]"))
	case b.Braces != 0:
		return "Unbalanced nesting: " + describe(b.Braces, "{", "}")
	default:
		return "Unbalanced nesting: " + describe(b.Brackets, "[", "]")
	}
}
