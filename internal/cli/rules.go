package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gojsonlint/internal/logging"
	"github.com/yaklabco/gojsonlint/pkg/config"
	"github.com/yaklabco/gojsonlint/pkg/lint"
	_ "github.com/yaklabco/gojsonlint/pkg/lint/rules" // Register built-in heuristics
)

type rulesFlags struct {
	ruleFormat string
	format     string
	verbose    bool
}

const formatJSON = "json"

// ruleInfo represents a heuristic in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Tags        []string `json:"tags,omitempty"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available heuristics",
		Long: `List the error-detection heuristics with their IDs, descriptions,
default severity, and categorization tags.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			rules := lint.DefaultRegistry.Rules()

			// Handle JSON output format.
			if flags.format == formatJSON {
				return outputRulesJSON(rules)
			}

			// Default to text output.
			logger := logging.NewInteractive()

			if len(rules) == 0 {
				logger.Info("no heuristics registered")
				return nil
			}

			logger.Info("available heuristics")

			ruleFormat := config.RuleFormat(flags.ruleFormat)

			for _, rule := range rules {
				ruleIdentifier := config.FormatRuleID(ruleFormat, rule.ID(), rule.Name())

				fields := []any{
					logging.FieldSeverity, rule.DefaultSeverity(),
					logging.FieldDescription, rule.Description(),
				}
				if flags.verbose {
					fields = append(fields,
						"enabled", rule.DefaultEnabled(),
						"tags", strings.Join(rule.Tags(), ","),
					)
				}

				logger.Info(ruleIdentifier, fields...)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"include default-enabled state and tags")

	return cmd
}

// outputRulesJSON outputs heuristics as a JSON array.
func outputRulesJSON(rules []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Severity:    string(rule.DefaultSeverity()),
			Tags:        rule.Tags(),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
