package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gojsonlint/internal/configloader"
	"github.com/yaklabco/gojsonlint/internal/logging"
	"github.com/yaklabco/gojsonlint/pkg/config"
	"github.com/yaklabco/gojsonlint/pkg/format"
	"github.com/yaklabco/gojsonlint/pkg/lint"
	_ "github.com/yaklabco/gojsonlint/pkg/lint/rules" // Register built-in heuristics
	"github.com/yaklabco/gojsonlint/pkg/reporter"
	"github.com/yaklabco/gojsonlint/pkg/runner"
)

// ErrIssuesFound is returned when the check finds invalid documents.
var ErrIssuesFound = errors.New("issues found")

type checkFlags struct {
	format     string
	ignore     []string
	enable     []string
	disable    []string
	strict     bool
	noContext  bool
	annotate   bool
	embedded   bool
	compact    bool
	ruleFormat string
}

func newCheckCommand() *cobra.Command {
	var cfg config.Config
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Validate JSON files and point at suspect lines",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, &cfg, flags)
		},
	}

	addCheckFlags(cmd, &cfg, flags)

	return cmd
}

const checkLongDescription = `Validate JSON files with a strict parser, then run error-line heuristics
on anything the parser rejects.

By default, checks all .json files in the current directory and
subdirectories. Specify paths to check specific files or directories.

Examples:
  gojsonlint check                   # Check current directory
  gojsonlint check configs/          # Check a directory
  gojsonlint check data.json         # Check a single file
  gojsonlint check --annotate        # Show a gutter view of invalid files
  gojsonlint check --embedded docs/  # Also check json blocks in Markdown
  gojsonlint check --format json     # Output as JSON for CI
  gojsonlint check --strict          # Treat warnings as errors`

func runCheck(cmd *cobra.Command, args []string, cfg *config.Config, flags *checkFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	cfg.Format = config.OutputFormat(flags.format)
	cfg.Ignore = flags.ignore
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	cfg.Strict = flags.strict
	cfg.NoContext = flags.noContext
	cfg.Annotate = flags.annotate
	cfg.Embedded = flags.embedded
	cfg.RuleFormat = config.RuleFormat(flags.ruleFormat)

	finalCfg, workDir, err := loadConfig(cmd, cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	logger.Debug("configuration loaded",
		logging.FieldStrict, finalCfg.Strict,
		logging.FieldEmbedded, finalCfg.Embedded,
		logging.FieldJobs, finalCfg.Jobs,
	)

	checkRunner := newRunner(finalCfg)

	extensions := runner.DefaultExtensions()
	if finalCfg.Embedded {
		extensions = append(extensions, runner.MarkdownExtensions()...)
	}

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   extensions,
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	logger.Debug("starting check run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := checkRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("check run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	outputFormat, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      outputFormat,
		Color:       colorMode,
		ShowContext: !finalCfg.NoContext,
		ShowSummary: true,
		GroupByFile: true,
		Compact:     flags.compact,
		Annotate:    finalCfg.Annotate,
		Width:       terminalWidth(),
		RuleFormat:  finalCfg.RuleFormat,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if code := ExitCodeFromResult(result, finalCfg.Strict); code != ExitSuccess {
		return &CodedError{Code: code, Err: ErrIssuesFound}
	}

	return nil
}

func addCheckFlags(cmd *cobra.Command, cfg *config.Config, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "heuristic IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "heuristic IDs to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.annotate, "annotate", false,
		"render invalid documents with a line-number gutter and suspect-line markers")
	cmd.Flags().BoolVar(&flags.embedded, "embedded", false,
		"also check fenced json blocks inside Markdown files")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"heuristic identifier format in output: name, id, or combined")
}

// loadConfig resolves the final configuration from all sources, using the
// root command's persistent --config flag and the CLI config overrides.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, string, error) {
	logger := logging.FromContext(cmd.Context())

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", &CodedError{
			Code: ExitConfigError,
			Err:  errors.Join(errors.New("failed to load configuration"), err),
		}
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, workDir, nil
}

// newRunner builds the engine, pipeline, and runner stack for a run.
func newRunner(cfg *config.Config) *runner.Runner {
	formatter := format.NewWithIndent(cfg.IndentWidth)
	engine := lint.NewEngine(formatter, lint.DefaultRegistry)
	pipeline := lint.NewPipeline(engine)
	return runner.New(pipeline)
}

// terminalWidth returns the stdout terminal width, or 0 when stdout is not
// a terminal (which disables line truncation in the annotated view).
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
