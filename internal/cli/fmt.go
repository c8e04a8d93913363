package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gojsonlint/internal/logging"
	"github.com/yaklabco/gojsonlint/internal/ui/pretty"
	"github.com/yaklabco/gojsonlint/pkg/config"
	"github.com/yaklabco/gojsonlint/pkg/format"
	"github.com/yaklabco/gojsonlint/pkg/lint"
	_ "github.com/yaklabco/gojsonlint/pkg/lint/rules" // Register built-in heuristics
	"github.com/yaklabco/gojsonlint/pkg/runner"
)

// stdinPath is the pseudo-path that selects standard input.
const stdinPath = "-"

type fmtFlags struct {
	write     bool
	list      bool
	diff      bool
	compact   bool
	indent    int
	query     string
	format    string
	noBackups bool
	ignore    []string
}

func newFmtCommand() *cobra.Command {
	var cfg config.Config
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Reformat JSON files, valid or not",
		Long:  fmtLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, &cfg, flags)
		},
	}

	addFmtFlags(cmd, &cfg, flags)

	return cmd
}

const fmtLongDescription = `Reformat JSON files. Valid documents get a canonical rendering through
the strict parser; invalid documents go through a structural reformatter
that indents by bracket nesting and never fails.

Reads standard input when the path is "-".

Examples:
  gojsonlint fmt data.json           # Print formatted output
  gojsonlint fmt --write configs/    # Rewrite files in place
  gojsonlint fmt --list .            # List files whose formatting differs
  gojsonlint fmt --diff data.json    # Show a unified diff
  gojsonlint fmt --compact data.json # Minify instead of indent
  gojsonlint fmt --query user.name data.json
  cat broken.json | gojsonlint fmt -`

func runFmt(cmd *cobra.Command, args []string, cfg *config.Config, flags *fmtFlags) error {
	// Map flags to typed config values.
	cfg.Write = flags.write
	cfg.ListOnly = flags.list
	cfg.Diff = flags.diff
	cfg.Compact = flags.compact
	cfg.Query = flags.query
	cfg.NoBackups = flags.noBackups
	cfg.Ignore = flags.ignore
	cfg.Format = config.OutputFormat(flags.format)
	if cfg.Format != "" && cfg.Format != config.FormatText && cfg.Format != config.FormatJSON {
		return &CodedError{
			Code: ExitInvalidUsage,
			Err:  fmt.Errorf("invalid format %q: must be text or json", flags.format),
		}
	}
	if cmd.Flags().Changed("indent") {
		cfg.IndentWidth = flags.indent
	}

	finalCfg, workDir, err := loadConfig(cmd, cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logging.Default())

	// Stdin mode bypasses discovery entirely. With no path arguments and
	// piped input, stdin is the document.
	if len(args) == 1 && args[0] == stdinPath || len(args) == 0 && stdinIsPiped() {
		return fmtStdin(ctx, cmd, finalCfg)
	}

	fmtRunner := newRunner(finalCfg)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	result, err := fmtRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("format run failed"), err)
	}

	return writeFmtOutput(cmd, result, finalCfg)
}

// diffStyles builds the style set for diff output, honoring the root
// command's --color flag.
func diffStyles(cmd *cobra.Command) *pretty.Styles {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	return pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout))
}

// stdinIsPiped reports whether standard input comes from a pipe or file
// rather than a terminal.
func stdinIsPiped() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

// fmtStdin formats standard input to standard output.
func fmtStdin(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	pipeline := newRunner(cfg).Pipeline
	result, err := pipeline.ProcessContent(ctx, "<stdin>", content, cfg, lint.PipelineOptions{
		Diff: cfg.Diff,
	})
	if err != nil {
		return fmt.Errorf("process stdin: %w", err)
	}

	if cfg.Diff {
		if result.Diff != nil {
			fmt.Fprint(cmd.OutOrStdout(), diffStyles(cmd).ColorizeDiff(result.Diff.String()))
		}
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), renderDocument(result, cfg))
	return nil
}

// fmtJSONFile is one entry in the machine-readable fmt output.
type fmtJSONFile struct {
	Path    string `json:"path"`
	Valid   bool   `json:"valid"`
	Changed bool   `json:"changed"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
}

// writeFmtJSON emits the run result as a JSON array.
func writeFmtJSON(cmd *cobra.Command, result *runner.Result, cfg *config.Config) error {
	files := make([]fmtJSONFile, 0, len(result.Files))
	var failed bool

	for _, file := range result.Files {
		entry := fmtJSONFile{Path: file.Path}
		switch {
		case file.Error != nil:
			entry.Error = file.Error.Error()
			failed = true
		case file.Result != nil:
			entry.Valid = file.Result.Valid
			entry.Changed = file.Result.Changed
			if !cfg.Write && !cfg.ListOnly {
				entry.Output = renderDocument(file.Result, cfg)
			}
		}
		files = append(files, entry)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(files); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}

	if failed {
		return &CodedError{Code: ExitIOError, Err: ErrIssuesFound}
	}
	return nil
}

// writeFmtOutput renders the run result according to the output mode.
func writeFmtOutput(cmd *cobra.Command, result *runner.Result, cfg *config.Config) error {
	if cfg.Format == config.FormatJSON {
		return writeFmtJSON(cmd, result, cfg)
	}

	logger := logging.Default()
	out := cmd.OutOrStdout()
	styles := diffStyles(cmd)

	var failed bool
	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", file.Path, file.Error)
			failed = true
			continue
		}
		if file.Result == nil {
			continue
		}

		switch {
		case cfg.ListOnly:
			if file.Result.Changed {
				fmt.Fprintln(out, file.Path)
			}
		case cfg.Diff:
			if file.Result.Diff != nil && file.Result.Diff.HasChanges() {
				fmt.Fprint(out, styles.ColorizeDiff(file.Result.Diff.String()))
			}
		case cfg.Write:
			if file.Result.Skipped {
				logger.Warn("skipped", logging.FieldPath, file.Path, "reason", file.Result.SkipReason)
			} else if file.Result.Written {
				logger.Info("rewrote", logging.FieldPath, file.Path)
			}
		default:
			fmt.Fprint(out, renderDocument(file.Result, cfg))
		}
	}

	if failed {
		return &CodedError{Code: ExitIOError, Err: ErrIssuesFound}
	}
	return nil
}

// renderDocument produces the final output text for one document, applying
// query extraction and compaction where they make sense. Query and compact
// need a parseable document; invalid input falls back to the structural
// reformatting, which is always available.
func renderDocument(result *lint.PipelineResult, cfg *config.Config) string {
	if result.FileResult == nil {
		return ""
	}

	if result.Valid {
		content := result.Snapshot.Content

		if cfg.Query != "" {
			if extracted, ok := format.Query(content, cfg.Query); ok {
				return extracted + "\n"
			}
			return "null\n"
		}

		if cfg.Compact {
			return format.Compact(content) + "\n"
		}
	}

	return string(result.Formatted)
}

func addFmtFlags(cmd *cobra.Command, cfg *config.Config, flags *fmtFlags) {
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVarP(&flags.list, "list", "l", false, "list files whose formatting differs")
	cmd.Flags().BoolVarP(&flags.diff, "diff", "d", false, "print a unified diff instead of the formatted text")
	cmd.Flags().BoolVarP(&flags.compact, "compact", "c", false, "emit minified output")
	cmd.Flags().IntVar(&flags.indent, "indent", 2, "spaces per nesting level")
	cmd.Flags().StringVarP(&flags.query, "query", "q", "", "extract the subdocument at a path expression")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.noBackups, "no-backups", false, "disable backup creation when rewriting")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
}
