package rules

import (
	"regexp"
	"strings"

	"github.com/yaklabco/gojsonlint/pkg/jsontext"
)

// The heuristics below are deliberately line-local: each one looks at the
// trimmed current line and at most the raw following line. They trade
// completeness for simplicity, which is acceptable because they only run on
// documents the strict parser has already rejected (or when a caller asks
// for an unconditional scan). Each predicate is exported so it can be tested
// in isolation from the rule that wraps it.

// LeavesOpenString advances the string-scan state over one raw line and
// reports whether the scan position is inside a string at end of line. The
// caller threads the same state across the whole document so an unterminated
// quote on one line affects interpretation of the lines after it.
func LeavesOpenString(state *jsontext.ScanState, line string) bool {
	state.Advance(line)
	return state.InString
}

// IsBareQuotedToken reports whether a trimmed line holds a quoted token with
// no surrounding structure: it contains a double quote but none of the
// characters ':', '{', '}', '[', ']', and does not end with a comma or a
// bracket. This shape is typical of a value pasted in without its key.
func IsBareQuotedToken(trimmed string) bool {
	if !strings.Contains(trimmed, `"`) {
		return false
	}
	if strings.ContainsAny(trimmed, ":{}[]") {
		return false
	}
	switch {
	case strings.HasSuffix(trimmed, ","),
		strings.HasSuffix(trimmed, "{"),
		strings.HasSuffix(trimmed, "}"),
		strings.HasSuffix(trimmed, "["),
		strings.HasSuffix(trimmed, "]"):
		return false
	}
	return true
}

// truncatedLiteralPattern matches a colon followed by a two-letter prefix of
// true, false, null, or undefined at end of line. The anchored prefix form
// matches a literal cut off mid-word without firing on complete literals.
var truncatedLiteralPattern = regexp.MustCompile(`:\s*(tr|fa|nu|un)$`)

// HasTruncatedLiteral reports whether a trimmed line ends in a colon followed
// by the start of a keyword literal (true, false, null, undefined) that was
// cut off.
func HasTruncatedLiteral(trimmed string) bool {
	return truncatedLiteralPattern.MatchString(trimmed)
}

// HasTrailingComma reports whether a trimmed line ends with a comma while the
// next line (trimmed) begins with a closing brace or bracket. Standard JSON
// does not allow a separator before a closer.
func HasTrailingComma(trimmed, nextRaw string) bool {
	if !strings.HasSuffix(trimmed, ",") {
		return false
	}
	next := strings.TrimSpace(nextRaw)
	return strings.HasPrefix(next, "}") || strings.HasPrefix(next, "]")
}

// MissingComma reports whether a new element appears to start on the next
// line without a separating comma on the current one. It fires when the
// trimmed current line is non-empty and ends with none of ',', '{', '}',
// '[', ']', while the trimmed next line is non-empty, does not start with a
// closer, and starts like a value: a double quote, a digit, or one of the
// literals true, false, null.
func MissingComma(trimmed, nextRaw string) bool {
	if trimmed == "" {
		return false
	}
	switch trimmed[len(trimmed)-1] {
	case ',', '{', '}', '[', ']':
		return false
	}

	next := strings.TrimSpace(nextRaw)
	if next == "" || strings.HasPrefix(next, "}") || strings.HasPrefix(next, "]") {
		return false
	}
	return startsLikeValue(next)
}

// startsLikeValue reports whether a trimmed line begins the way a JSON value
// does: with a quote, a digit, or a keyword literal.
func startsLikeValue(next string) bool {
	if next[0] == '"' || (next[0] >= '0' && next[0] <= '9') {
		return true
	}
	return strings.HasPrefix(next, "true") ||
		strings.HasPrefix(next, "false") ||
		strings.HasPrefix(next, "null")
}
