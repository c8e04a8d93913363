package lint

import "github.com/yaklabco/gojsonlint/pkg/config"

// BaseRule provides a default implementation of the Rule interface.
// Embed this in heuristic implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface
// methods. Use NewBaseRule or a struct literal with field names.
type BaseRule struct {
	id   string   // Unique identifier (e.g., "JL001")
	name string   // Human-readable name
	desc string   // Detailed description
	tags []string // Categorization tags
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, tags []string) BaseRule {
	return BaseRule{
		id:   id,
		name: name,
		desc: desc,
		tags: tags,
	}
}

// ID returns the unique identifier for this heuristic.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the heuristic.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the heuristic flags.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultEnabled returns whether the heuristic is enabled by default.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// DefaultSeverity returns the default severity for this heuristic.
// Override this method to change the default.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Tags returns categorization tags for this heuristic.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// Apply must be overridden by concrete heuristic implementations.
// The default implementation returns no diagnostics.
func (r *BaseRule) Apply(_ *RuleContext) ([]Diagnostic, error) {
	return nil, nil
}
