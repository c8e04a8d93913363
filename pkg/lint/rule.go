// Package lint provides the heuristic engine, diagnostics, and registry for
// gojsonlint. Heuristics inspect a document snapshot line by line and flag
// lines that look responsible for a failed parse; the engine coordinates the
// strict-parse gate, the heuristics, and the formatted display text.
package lint

import (
	"github.com/yaklabco/gojsonlint/pkg/config"
	"github.com/yaklabco/gojsonlint/pkg/jsontext"
)

// Diagnostic represents a single suspect finding in a document.
type Diagnostic struct {
	// RuleID is the identifier of the heuristic that produced this
	// diagnostic (e.g., "JL001").
	RuleID string

	// RuleName is the human-readable name of the heuristic
	// (e.g., "unterminated-string").
	RuleName string

	// Message is the human-readable description of the finding.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path to the file containing the finding.
	FilePath string

	// StartLine is the 1-based line number where the finding starts.
	StartLine int

	// StartColumn is the 1-based column number where the finding starts.
	StartColumn int

	// EndLine is the 1-based line number where the finding ends.
	EndLine int

	// EndColumn is the 1-based column number where the finding ends.
	EndColumn int

	// Suggestion is an optional human-readable repair hint.
	Suggestion string
}

// SourcePosition returns the diagnostic position as a SourcePosition.
func (d *Diagnostic) SourcePosition() jsontext.SourcePosition {
	return jsontext.SourcePosition{
		StartLine:   d.StartLine,
		StartColumn: d.StartColumn,
		EndLine:     d.EndLine,
		EndColumn:   d.EndColumn,
	}
}

// Rule defines the interface that all heuristics must implement.
type Rule interface {
	// ID returns the unique identifier for this heuristic (e.g., "JL001").
	ID() string

	// Name returns the human-readable name of the heuristic.
	Name() string

	// Description returns a detailed description of what the heuristic flags.
	Description() string

	// DefaultEnabled returns whether the heuristic is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this heuristic.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this heuristic (e.g., ["strings"]).
	Tags() []string

	// Apply executes the heuristic against the given context and returns
	// diagnostics.
	//
	// Heuristics must:
	//   - Return diagnostics for each suspect line found.
	//   - Respect context cancellation.
	//   - Return error only for internal failures, not findings.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}
