package config

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes all heuristics with their documentation.
	// If false, generates a minimal template.
	Full bool

	// IncludeRules is a list of rule IDs to include.
	// If empty, all rules are included.
	IncludeRules []string
}

// RuleInfo contains heuristic metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Severity    Severity
	Tags        []string
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the lint package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the lint package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate(opts)
	}
	return generateMinimalTemplate(), nil
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# gojsonlint configuration
# See: https://github.com/yaklabco/gojsonlint

# Spaces per nesting level in formatted output
indent_width: 2

# Default severity for all heuristics: error, warning, or info
# severity_default: error

# Scan fenced json blocks inside Markdown files
# embedded: false

# File patterns to skip (glob patterns)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"

# Per-heuristic configuration
# rules:
#   JL002:
#     enabled: true
#     severity: warning
#   JL005:
#     enabled: false
`)

	return buf.Bytes()
}

// generateFullTemplate creates a template with every registered heuristic
// documented, using the rule info provider installed by the lint package.
func generateFullTemplate(opts TemplateOptions) ([]byte, error) {
	if DefaultRuleInfoProvider == nil {
		return nil, fmt.Errorf("no rule info provider registered")
	}

	rules := DefaultRuleInfoProvider()
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })

	include := make(map[string]bool, len(opts.IncludeRules))
	for _, id := range opts.IncludeRules {
		include[strings.ToUpper(id)] = true
	}

	var buf bytes.Buffer
	buf.WriteString(`# gojsonlint configuration - full template
# See: https://github.com/yaklabco/gojsonlint
#
# Every heuristic is listed with its default settings. Uncomment and adjust
# as needed.

indent_width: 2
severity_default: error
embedded: false

backups:
  enabled: true
  mode: sidecar

rules:
`)

	for _, rule := range rules {
		if len(include) > 0 && !include[rule.ID] {
			continue
		}

		fmt.Fprintf(&buf, "  # %s: %s\n", rule.Name, rule.Description)
		fmt.Fprintf(&buf, "  %s:\n", rule.ID)
		fmt.Fprintf(&buf, "    enabled: %t\n", rule.Enabled)
		fmt.Fprintf(&buf, "    severity: %s\n", rule.Severity)
	}

	return buf.Bytes(), nil
}
