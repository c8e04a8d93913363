package lint

import (
	"context"

	"github.com/yaklabco/gojsonlint/pkg/config"
	"github.com/yaklabco/gojsonlint/pkg/jsontext"
)

// DetectErrorLines runs every registered heuristic over text and returns the
// ordered, de-duplicated 1-based line numbers of suspect lines. It is total:
// any input produces a (possibly empty) line set and never an error.
//
// Unlike Engine.CheckSource, no strict-parse gate is applied here; the
// heuristics run unconditionally, so locally suspicious shapes inside valid
// documents can still be flagged. Callers wanting "silent on valid input"
// should go through the engine.
func DetectErrorLines(text string) []int {
	return DetectErrorLinesWith(DefaultRegistry, config.NewConfig(), text)
}

// DetectErrorLinesWith is DetectErrorLines with an explicit registry and
// configuration.
func DetectErrorLinesWith(registry *Registry, cfg *config.Config, text string) []int {
	snapshot := jsontext.NewSnapshot("", []byte(text))

	diags, _, err := runRules(context.Background(), snapshot, cfg, registry)
	if err != nil {
		return nil
	}
	sortDiagnostics(diags)

	result := &FileResult{Diagnostics: diags}
	return result.ErrorLines()
}
