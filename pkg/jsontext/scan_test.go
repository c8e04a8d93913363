package jsontext_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/gojsonlint/pkg/jsontext"
)

func TestScanState_Advance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		lines            []string
		expectInString   bool
		expectEscapeNext bool
	}{
		{
			name:  "empty input",
			lines: []string{""},
		},
		{
			name:  "balanced quotes",
			lines: []string{`"key": "value"`},
		},
		{
			name:           "odd quote count leaves string open",
			lines:          []string{`"key": "value`},
			expectInString: true,
		},
		{
			name:  "escaped quote does not toggle",
			lines: []string{`"she said \"hi\""`},
		},
		{
			name:  "escaped backslash before closing quote",
			lines: []string{`"path\\"`},
		},
		{
			name:           "double escape then real quote opens string",
			lines:          []string{`"a\\" "`},
			expectInString: true,
		},
		{
			name:           "open string carries to next line",
			lines:          []string{`"broken`, `still inside`},
			expectInString: true,
		},
		{
			name:  "string closed on following line",
			lines: []string{`"broken`, `done"`},
		},
		{
			name:             "trailing backslash escapes across line boundary",
			lines:            []string{`"abc\`},
			expectInString:   true,
			expectEscapeNext: true,
		},
		{
			name:           "escape consumes first character of next line",
			lines:          []string{`"abc\`, `"rest`},
			expectInString: true,
		},
		{
			name:  "quotes in separate tokens pair up",
			lines: []string{`{"a": "b", "c": "d"}`},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var state jsontext.ScanState
			for _, line := range testCase.lines {
				state.Advance(line)
			}

			if state.InString != testCase.expectInString {
				t.Errorf("InString = %v, expected %v", state.InString, testCase.expectInString)
			}
			if state.EscapeNext != testCase.expectEscapeNext {
				t.Errorf("EscapeNext = %v, expected %v", state.EscapeNext, testCase.expectEscapeNext)
			}
		})
	}
}

func TestScanState_AdvancePerLine(t *testing.T) {
	t.Parallel()

	// InString observed after each line of a document with a string broken
	// across lines two and three.
	lines := []string{
		`{`,
		`  "msg": "hello`,
		`world",`,
		`}`,
	}
	expected := []bool{false, true, false, false}

	var state jsontext.ScanState
	for i, line := range lines {
		state.Advance(line)
		if state.InString != expected[i] {
			t.Errorf("after line %d (%q): InString = %v, expected %v",
				i+1, line, state.InString, expected[i])
		}
	}
}

func TestBalance_Add(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		text            string
		expectBraces    int
		expectBrackets  int
		expectBalancedT bool
	}{
		{
			name:            "empty",
			text:            "",
			expectBalancedT: true,
		},
		{
			name:            "balanced object",
			text:            "{\n  \"a\": 1\n}",
			expectBalancedT: true,
		},
		{
			name:         "unclosed object",
			text:         "{\n  \"a\": 1",
			expectBraces: 1,
		},
		{
			name:           "unclosed array inside object",
			text:           "{\n  \"a\": [1, 2\n}",
			expectBrackets: 1,
		},
		{
			name:         "extra closer",
			text:         "{\n}\n}",
			expectBraces: -1,
		},
		{
			name:            "nested and balanced",
			text:            `{"a": [{"b": []}]}`,
			expectBalancedT: true,
		},
		{
			name:            "braces inside strings still count",
			text:            `{"a": "}"`,
			expectBraces:    0,
			expectBalancedT: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var balance jsontext.Balance
			for _, line := range strings.Split(testCase.text, "\n") {
				balance.Add(line)
			}

			if balance.Braces != testCase.expectBraces {
				t.Errorf("Braces = %d, expected %d", balance.Braces, testCase.expectBraces)
			}
			if balance.Brackets != testCase.expectBrackets {
				t.Errorf("Brackets = %d, expected %d", balance.Brackets, testCase.expectBrackets)
			}
			if balance.Balanced() != testCase.expectBalancedT {
				t.Errorf("Balanced() = %v, expected %v", balance.Balanced(), testCase.expectBalancedT)
			}
		})
	}
}
