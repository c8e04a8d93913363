// Package config defines core configuration types for gojsonlint.
// These types are pure data structures with no dependency on the loader.
package config

// Severity represents the severity level of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// RuleConfig holds per-heuristic configuration options.
type RuleConfig struct {
	Enabled  *bool          `mapstructure:"enabled" yaml:"enabled"`
	Severity *string        `mapstructure:"severity" yaml:"severity"`
	Options  map[string]any `mapstructure:"options" yaml:"options"`
}

// BackupsConfig controls backup behavior when rewriting files in place.
type BackupsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Mode    string `mapstructure:"mode" yaml:"mode"` // "sidecar" is the only mode today
}

// OutputFormat specifies the output format for results.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// RuleFormat controls how heuristic identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "unterminated-string"
	RuleFormatID       RuleFormat = "id"       // "JL001"
	RuleFormatCombined RuleFormat = "combined" // "JL001/unterminated-string"
)

// Config is the root configuration structure for gojsonlint.
type Config struct {
	// IndentWidth is the number of spaces per nesting level in formatted
	// output.
	IndentWidth int `mapstructure:"indent_width" yaml:"indent_width"`

	// SeverityDefault is the default severity for heuristics that don't
	// specify one.
	SeverityDefault string `mapstructure:"severity_default" yaml:"severity_default"`

	// Rules contains per-heuristic configuration keyed by rule ID.
	Rules map[string]RuleConfig `mapstructure:"rules" yaml:"rules"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// Embedded enables scanning fenced json blocks inside Markdown files.
	Embedded bool `mapstructure:"embedded" yaml:"embedded"`

	// Backups configures backup behavior for in-place rewrites.
	Backups BackupsConfig `mapstructure:"backups" yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// Write rewrites files in place with formatted output.
	Write bool `mapstructure:"-" yaml:"-"`

	// ListOnly prints only the names of files whose formatting would change.
	ListOnly bool `mapstructure:"-" yaml:"-"`

	// Diff prints a unified diff instead of the formatted text.
	Diff bool `mapstructure:"-" yaml:"-"`

	// Compact emits minified output instead of indented output.
	Compact bool `mapstructure:"-" yaml:"-"`

	// Query extracts the subdocument at a path expression before output.
	Query string `mapstructure:"-" yaml:"-"`

	// Strict makes warnings affect the exit code.
	Strict bool `mapstructure:"-" yaml:"-"`

	// NoContext suppresses source-line context in text output.
	NoContext bool `mapstructure:"-" yaml:"-"`

	// Annotate renders the formatted text with a line-number gutter and
	// flagged-line markers.
	Annotate bool `mapstructure:"-" yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// RuleFormat controls how heuristic identifiers appear in output.
	RuleFormat RuleFormat `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `mapstructure:"-" yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `mapstructure:"-" yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `mapstructure:"-" yaml:"-"`

	// NoBackups disables backup creation when rewriting.
	NoBackups bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		IndentWidth:     2,
		SeverityDefault: string(SeverityError),
		Rules:           make(map[string]RuleConfig),
		Ignore:          nil,
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Format:     FormatText,
		RuleFormat: RuleFormatName,
		Jobs:       0, // 0 means use GOMAXPROCS
	}
}
