// Package format renders JSON text with consistent indentation. Valid
// documents go through the strict parser and its canonical printer; anything
// the parser rejects falls back to a line-oriented structural reformatter
// that never fails, so broken documents still come back readable.
package format

import "strings"

// DefaultIndentWidth is the number of spaces per nesting level.
const DefaultIndentWidth = 2

// Formatter renders JSON text. The zero value formats with the default
// indent width.
type Formatter struct {
	// IndentWidth is the number of spaces per nesting level. Values less
	// than 1 fall back to DefaultIndentWidth.
	IndentWidth int
}

// New returns a Formatter with the default indent width.
func New() *Formatter {
	return &Formatter{IndentWidth: DefaultIndentWidth}
}

// NewWithIndent returns a Formatter using width spaces per nesting level.
func NewWithIndent(width int) *Formatter {
	return &Formatter{IndentWidth: width}
}

// Result holds the outcome of formatting one document.
type Result struct {
	// Output is the formatted text, without a trailing newline.
	Output string

	// Strict reports whether the strict parser accepted the input, in
	// which case Output is the canonical rendering. When false, Output
	// came from the structural reformatter.
	Strict bool

	// Changed reports whether Output differs from the input text.
	Changed bool

	// Err is the strict parser's rejection when Strict is false. It is a
	// label for presentation only; formatting itself never fails.
	Err error
}

// Format renders text as indented JSON. It is total: malformed input is the
// normal case and produces a structural rendering rather than an error.
func (f *Formatter) Format(text string) Result {
	data := []byte(text)
	if err := Validate(data); err != nil {
		out := f.Reformat(text)
		return Result{Output: out, Changed: out != text, Err: err}
	}

	out := f.Canonical(data)
	return Result{Output: out, Strict: true, Changed: out != text}
}

// Reformat re-indents text by structure alone, without parsing. It walks the
// lines once, tracking a nesting level: a line whose trimmed form ends with
// an opener bumps the level for following lines, and one that starts with a
// closer drops it first (never below zero). Everything else is emitted at
// the current level. Blank lines stay blank and leave the level alone.
//
// The opener check is tested first, so a line like "}, {" indents as an
// opener. Only the first and last character of the trimmed line matter;
// string contents can fool the level tracking, which is acceptable for a
// display fallback.
func (f *Formatter) Reformat(text string) string {
	unit := f.indentUnit()
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	level := 0

	for _, raw := range lines {
		trimmed := strings.TrimSpace(raw)

		switch {
		case trimmed == "":
			out = append(out, "")
		case strings.HasSuffix(trimmed, "{") || strings.HasSuffix(trimmed, "["):
			out = append(out, strings.Repeat(unit, level)+trimmed)
			level++
		case strings.HasPrefix(trimmed, "}") || strings.HasPrefix(trimmed, "]"):
			if level > 0 {
				level--
			}
			out = append(out, strings.Repeat(unit, level)+trimmed)
		default:
			out = append(out, strings.Repeat(unit, level)+trimmed)
		}
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}

func (f *Formatter) indentUnit() string {
	width := f.IndentWidth
	if width < 1 {
		width = DefaultIndentWidth
	}
	return strings.Repeat(" ", width)
}
