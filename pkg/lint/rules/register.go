package rules

import (
	"github.com/yaklabco/gojsonlint/pkg/config"
	"github.com/yaklabco/gojsonlint/pkg/lint"
)

// RegisterAll registers all built-in heuristics with the given registry.
func RegisterAll(registry *lint.Registry) {
	// String heuristics
	registry.Register(NewUnterminatedStringRule()) // JL001
	registry.Register(NewBareQuotedTokenRule())    // JL002

	// Literal heuristics
	registry.Register(NewTruncatedLiteralRule()) // JL003

	// Separator heuristics
	registry.Register(NewTrailingCommaRule()) // JL004
	registry.Register(NewMissingCommaRule())  // JL005

	// Whole-document structure
	registry.Register(NewUnbalancedNestingRule()) // JL006
}

// init registers all built-in heuristics with the default registry and
// exposes their metadata to the config template generator.
func init() {
	RegisterAll(lint.DefaultRegistry)

	config.DefaultRuleInfoProvider = func() []config.RuleInfo {
		rules := lint.DefaultRegistry.Rules()
		infos := make([]config.RuleInfo, 0, len(rules))
		for _, rule := range rules {
			infos = append(infos, config.RuleInfo{
				ID:          rule.ID(),
				Name:        rule.Name(),
				Description: rule.Description(),
				Enabled:     rule.DefaultEnabled(),
				Severity:    rule.DefaultSeverity(),
				Tags:        rule.Tags(),
			})
		}
		return infos
	}
}
