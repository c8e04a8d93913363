package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gojsonlint/internal/logging"
	"github.com/yaklabco/gojsonlint/pkg/config"
	_ "github.com/yaklabco/gojsonlint/pkg/lint/rules" // Register built-in heuristics
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gojsonlint configuration file",
		Long: `Create a new .gojsonlint.yml configuration file in the current directory
with sensible defaults. The file can be customized to enable/disable
heuristics, change severities, and configure formatting options.

Examples:
  gojsonlint init                    Create minimal .gojsonlint.yml
  gojsonlint init --full             Create full config with all heuristics documented
  gojsonlint init --output custom.yml  Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with all heuristics documented")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .gojsonlint.yml)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	// Determine output path
	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".gojsonlint.yml"
	}

	// Make path absolute
	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	// Check if file exists
	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	// Generate template
	opts := config.TemplateOptions{
		Full: flags.full,
	}

	content, err := config.GenerateTemplate(opts)
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	// Write file
	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)

	if flags.full {
		logger.Info("full template includes all heuristics with documentation")
	}

	logger.Info("customize your configuration by editing the file")
	logger.Info("run 'gojsonlint rules' to see all available heuristics")

	return nil
}
