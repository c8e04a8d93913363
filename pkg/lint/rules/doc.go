// Package rules provides the built-in heuristics for gojsonlint.
//
// Each heuristic inspects the raw text of a document that the strict JSON
// parser has rejected and flags the lines most likely responsible. The
// checks are line-local by design: they look at the trimmed current line and
// at most the raw line after it, plus two pieces of state threaded across
// the whole document (string-scan context and bracket balance). They are a
// presentation aid, not a validator of record; false negatives are expected
// and two of the checks (JL002, JL005) are known to misfire on some valid
// multi-line layouts.
//
// # Heuristics
//
//   - JL001: unterminated-string - a double-quoted string is left open at
//     the end of a line
//
//   - JL002: bare-quoted-token - a quoted token with no key, colon, or
//     bracket around it
//
//   - JL003: truncated-literal - a keyword literal after a colon cut off
//     mid-word (": tr", ": nu", ...)
//
//   - JL004: trailing-comma - a comma directly before a closing brace or
//     bracket on the next line
//
//   - JL005: missing-comma - the next line starts a new value but the
//     current line has no separator
//
//   - JL006: unbalanced-nesting - braces or brackets do not balance over
//     the whole document; flagged on the last line
//
// All heuristics register themselves with lint.DefaultRegistry during
// package initialization. Import this package for its side effects:
//
//	import _ "github.com/yaklabco/gojsonlint/pkg/lint/rules"
package rules
