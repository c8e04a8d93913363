package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gojsonlint/pkg/jsontext"
	"github.com/yaklabco/gojsonlint/pkg/lint/rules"
)

func TestLeavesOpenString(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []bool
	}{
		{
			name:  "closed string",
			lines: []string{`"key": "value",`},
			want:  []bool{false},
		},
		{
			name:  "unterminated string",
			lines: []string{`"key": "value`},
			want:  []bool{true},
		},
		{
			name:  "escaped quote does not close",
			lines: []string{`"key": "va\"`},
			want:  []bool{true},
		},
		{
			name:  "escaped backslash then quote closes",
			lines: []string{`"key": "va\\"`},
			want:  []bool{false},
		},
		{
			// The carried-in open string flips the meaning of every quote
			// on the next line: its two quotes close and then reopen, so
			// the scan still ends inside a string.
			name:  "open string carries into the next line",
			lines: []string{`"key": "broken`, `"next": 1,`},
			want:  []bool{true, true},
		},
		{
			name:  "line with no quotes stays inside the open string",
			lines: []string{`"key": "broken`, `still broken`},
			want:  []bool{true, true},
		},
		{
			name:  "stray quote on a later line closes the string",
			lines: []string{`"key": "broken`, `end",`},
			want:  []bool{true, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var state jsontext.ScanState
			for i, line := range tt.lines {
				got := rules.LeavesOpenString(&state, line)
				assert.Equal(t, tt.want[i], got, "line %d: %q", i+1, line)
			}
		})
	}
}

func TestIsBareQuotedToken(t *testing.T) {
	tests := []struct {
		name    string
		trimmed string
		want    bool
	}{
		{"bare quoted value", `"orphan"`, true},
		{"unclosed quote with no structure", `"orphan`, true},
		{"key value pair", `"key": "value"`, false},
		{"quoted value with trailing comma", `"element",`, false},
		{"quoted value ending an object", `"value"}`, false},
		{"line with a bracket", `["value"`, false},
		{"no quote at all", `orphan`, false},
		{"empty line", ``, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.IsBareQuotedToken(tt.trimmed))
		})
	}
}

func TestHasTruncatedLiteral(t *testing.T) {
	tests := []struct {
		name    string
		trimmed string
		want    bool
	}{
		{"truncated true", `"a": tr`, true},
		{"truncated false", `"a": fa`, true},
		{"truncated null", `"a": nu`, true},
		{"truncated undefined", `"a": un`, true},
		{"no space after colon", `"a":tr`, true},
		{"complete true", `"a": true`, false},
		{"complete false", `"a": false,`, false},
		{"complete null", `"a": null`, false},
		{"longer truncation is not matched", `"a": tru`, false},
		{"no colon", `tr`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.HasTruncatedLiteral(tt.trimmed))
		})
	}
}

func TestHasTrailingComma(t *testing.T) {
	tests := []struct {
		name    string
		trimmed string
		next    string
		want    bool
	}{
		{"comma before closing brace", `"a": 1,`, `}`, true},
		{"comma before closing bracket", `2,`, `  ]`, true},
		{"comma before another element", `"a": 1,`, `"b": 2`, false},
		{"no comma before closing brace", `"a": 1`, `}`, false},
		{"comma before blank line", `"a": 1,`, ``, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.HasTrailingComma(tt.trimmed, tt.next))
		})
	}
}

func TestMissingComma(t *testing.T) {
	tests := []struct {
		name    string
		trimmed string
		next    string
		want    bool
	}{
		{"string value then string value", `"a": 1`, `"b": 2`, true},
		{"string value then number", `"a": "x"`, `42`, true},
		{"string value then true", `"a": "x"`, `true`, true},
		{"string value then null", `"a": "x"`, `null`, true},
		{"comma present", `"a": 1,`, `"b": 2`, false},
		{"next line closes the object", `"a": 1`, `}`, false},
		{"next line closes the array", `"a": 1`, `]`, false},
		{"current line opens an object", `"obj": {`, `"a": 1`, false},
		{"blank next line", `"a": 1`, ``, false},
		{"blank current line", ``, `"b": 2`, false},
		{"next line is not a value start", `"a": 1`, `not json`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.MissingComma(tt.trimmed, tt.next))
		})
	}
}
