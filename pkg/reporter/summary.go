package reporter

import (
	"bufio"
	"context"

	"github.com/yaklabco/gojsonlint/internal/ui/pretty"
	"github.com/yaklabco/gojsonlint/pkg/runner"
)

// SummaryReporter writes only the aggregate statistics block.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	if _, err := r.bw.WriteString(r.styles.FormatSummary(result.Stats)); err != nil {
		return 0, err
	}

	return result.Stats.DiagnosticsTotal, nil
}
