package jsontext

import "strings"

// ScanState tracks double-quoted string context while feeding lines of a
// document through the scanner in order. The state carries across line
// boundaries: a string opened on one line stays open on the next, and a
// trailing backslash escapes the first character of the following line.
//
// The zero value is ready to use and represents "outside any string".
type ScanState struct {
	// InString reports whether the scan position is inside a double-quoted
	// string.
	InString bool

	// EscapeNext reports whether the previous character was an unconsumed
	// backslash, so the next character must be skipped without
	// interpretation.
	EscapeNext bool
}

// Advance feeds one line of text (without its newline) through the scanner,
// updating the state character by character. A backslash sets EscapeNext;
// a character read while EscapeNext is set is consumed blindly; an
// unescaped double-quote toggles InString.
func (s *ScanState) Advance(line string) {
	for i := 0; i < len(line); i++ {
		if s.EscapeNext {
			s.EscapeNext = false
			continue
		}

		switch line[i] {
		case '\\':
			s.EscapeNext = true
		case '"':
			s.InString = !s.InString
		}
	}
}

// Balance accumulates brace and bracket counts over a stream of lines.
// Counting is textual: characters inside strings count too. That keeps the
// totals cheap to compute and matches the intentionally loose checks built
// on top of them.
//
// The zero value is ready to use.
type Balance struct {
	// Braces is the running count of '{' minus '}'.
	Braces int

	// Brackets is the running count of '[' minus ']'.
	Brackets int
}

// Add counts the brace and bracket characters on one line into the totals.
func (b *Balance) Add(line string) {
	b.Braces += strings.Count(line, "{") - strings.Count(line, "}")
	b.Brackets += strings.Count(line, "[") - strings.Count(line, "]")
}

// Balanced reports whether both running totals are zero.
func (b Balance) Balanced() bool {
	return b.Braces == 0 && b.Brackets == 0
}
