package lint

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/yaklabco/gojsonlint/pkg/config"
	"github.com/yaklabco/gojsonlint/pkg/format"
	"github.com/yaklabco/gojsonlint/pkg/jsontext"
)

// FileResult contains the results of checking a single document.
type FileResult struct {
	// Snapshot is the document that was checked.
	Snapshot *jsontext.Snapshot

	// Valid reports whether the strict parser accepted the document. When
	// true, no heuristics were run and Diagnostics is empty.
	Valid bool

	// ParseError is the strict parser's message when Valid is false. It is
	// a presentation label only; positions inside it are never used to
	// refine detection.
	ParseError string

	// Display is the formatted text: the canonical rendering when Valid,
	// otherwise the structural reformatting of the original text.
	Display string

	// Diagnostics contains all findings, ordered by line.
	Diagnostics []Diagnostic

	// RuleErrors contains any internal errors from heuristic execution.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// CountBySeverity returns the number of diagnostics with the given severity.
func (fr *FileResult) CountBySeverity(severity config.Severity) int {
	count := 0
	for _, d := range fr.Diagnostics {
		if d.Severity == severity {
			count++
		}
	}
	return count
}

// ErrorLines returns the ordered, de-duplicated 1-based line numbers of all
// flagged lines. Lines appear in ascending order; the whole-document nesting
// check always lands on the last line, so it sorts last.
func (fr *FileResult) ErrorLines() []int {
	seen := make(map[int]bool, len(fr.Diagnostics))
	var lines []int
	for _, d := range fr.Diagnostics {
		if d.StartLine < 1 || seen[d.StartLine] {
			continue
		}
		seen[d.StartLine] = true
		lines = append(lines, d.StartLine)
	}
	return lines
}

// Engine coordinates the strict-parse gate, the heuristics, and the
// formatted display text.
type Engine struct {
	// Formatter renders display text. When nil, a default formatter is
	// used.
	Formatter *format.Formatter

	// Registry holds all available heuristics.
	Registry *Registry
}

// NewEngine creates a new Engine with the given formatter and registry.
func NewEngine(formatter *format.Formatter, registry *Registry) *Engine {
	return &Engine{
		Formatter: formatter,
		Registry:  registry,
	}
}

// CheckSource checks a single document. Documents the strict parser accepts
// come back valid with a canonical rendering and no diagnostics. For
// everything else the heuristics run against the original text and the
// display text is the structural reformatting.
//
// CheckSource never fails on malformed input; the only error paths are
// cancellation and internal heuristic failures.
func (e *Engine) CheckSource(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	snapshot := jsontext.NewSnapshot(path, content)
	formatter := e.formatterFor(cfg)

	result := &FileResult{
		Snapshot:   snapshot,
		RuleErrors: make(map[string]error),
	}

	err := format.Validate(content)
	if err == nil {
		result.Valid = true
		result.Display = formatter.Canonical(content)
		return result, nil
	}

	result.ParseError = err.Error()
	result.Display = formatter.Reformat(string(content))

	diags, ruleErrs, runErr := runRules(ctx, snapshot, cfg, e.Registry)
	result.Diagnostics = diags
	result.RuleErrors = ruleErrs
	if runErr != nil {
		return result, runErr
	}

	sortDiagnostics(result.Diagnostics)

	return result, nil
}

// runRules executes every resolved heuristic against the snapshot and
// collects diagnostics. Internal heuristic failures are recorded per rule
// and do not stop the pass; only cancellation aborts it.
func runRules(
	ctx context.Context,
	snapshot *jsontext.Snapshot,
	cfg *config.Config,
	registry *Registry,
) ([]Diagnostic, map[string]error, error) {
	var diagnostics []Diagnostic
	ruleErrors := make(map[string]error)

	for _, rr := range ResolveRules(registry, cfg) {
		select {
		case <-ctx.Done():
			return diagnostics, ruleErrors, fmt.Errorf("check cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, snapshot, cfg, rr.Config)
		ruleCtx.Registry = registry

		diags, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			ruleErrors[rr.Rule.ID()] = err
			continue
		}

		for diagIdx := range diags {
			diags[diagIdx].Severity = rr.Severity

			if diags[diagIdx].FilePath == "" {
				diags[diagIdx].FilePath = snapshot.Path
			}
			if diags[diagIdx].RuleName == "" {
				diags[diagIdx].RuleName = rr.Rule.Name()
			}
		}

		diagnostics = append(diagnostics, diags...)
	}

	return diagnostics, ruleErrors, nil
}

// formatterFor returns the formatter to use for the given configuration,
// honoring an indent width override.
func (e *Engine) formatterFor(cfg *config.Config) *format.Formatter {
	if cfg != nil && cfg.IndentWidth > 0 {
		return format.NewWithIndent(cfg.IndentWidth)
	}
	if e.Formatter != nil {
		return e.Formatter
	}
	return format.New()
}

// sortDiagnostics orders diagnostics by start line, then rule ID, keeping
// the order stable for identical keys.
func sortDiagnostics(diags []Diagnostic) {
	slices.SortStableFunc(diags, func(a, b Diagnostic) int {
		if c := cmp.Compare(a.StartLine, b.StartLine); c != 0 {
			return c
		}
		return cmp.Compare(a.RuleID, b.RuleID)
	})
}
