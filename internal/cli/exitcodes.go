package cli

import (
	"github.com/yaklabco/gojsonlint/pkg/runner"
)

// Exit codes for gojsonlint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitCheckErrors indicates the check completed but found invalid documents.
	ExitCheckErrors = 1

	// ExitCheckWarnings indicates the check found warnings (when strict mode).
	ExitCheckWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// CodedError carries a process exit code alongside the underlying error.
// The entry point unwraps it to pick the exit status.
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	errors := result.Stats.DiagnosticsBySeverity["error"]
	warnings := result.Stats.DiagnosticsBySeverity["warning"]
	invalid := result.Stats.FilesProcessed - result.Stats.FilesValid

	// A document can be invalid without any heuristic firing, so the
	// invalid-file count matters independently of the diagnostics.
	if errors > 0 || invalid > 0 || result.Stats.FilesErrored > 0 {
		return ExitCheckErrors
	}

	if strict && warnings > 0 {
		return ExitCheckWarnings
	}

	return ExitSuccess
}
