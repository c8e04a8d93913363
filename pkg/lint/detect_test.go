package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gojsonlint/pkg/lint"
	_ "github.com/yaklabco/gojsonlint/pkg/lint/rules"
)

func TestDetectErrorLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{
			name:  "well-formed object reformatted onto lines",
			input: "{\n  \"a\": 1,\n  \"b\": 2\n}",
			want:  nil,
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "unterminated string",
			input: "{\"a\": \"unterminated}",
			want:  []int{1},
		},
		{
			name:  "trailing comma before close",
			input: "{\n  \"a\": 1,\n}",
			want:  []int{2},
		},
		{
			name:  "missing closing brace flags the last line",
			input: "{\"a\": 1",
			want:  []int{1},
		},
		{
			name:  "missing closing brace on a later line",
			input: "{\n  \"a\": 1,\n  \"b\": 2",
			want:  []int{3},
		},
		{
			name:  "missing comma between members",
			input: "{\n  \"a\": 1\n  \"b\": 2\n}",
			want:  []int{2},
		},
		{
			name:  "truncated literal",
			input: "{\n  \"flag\": tr\n}",
			want:  []int{2},
		},
		{
			name:  "bare quoted token",
			input: "{\n  \"orphan\"\n}",
			want:  []int{2},
		},
		{
			name:  "multiple problems in ascending line order",
			input: "{\n  \"a\": 1,\n}\n{\"b\": \"open",
			want:  []int{2, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lint.DetectErrorLines(tt.input))
		})
	}
}

func TestDetectErrorLinesDeduplicates(t *testing.T) {
	// An unterminated string on the only line also leaves the brace balance
	// open, so two heuristics land on line 1. The set reports it once.
	got := lint.DetectErrorLines(`{"a": "unterminated`)
	assert.Equal(t, []int{1}, got)
}

func TestDetectErrorLinesWith(t *testing.T) {
	registry := lint.NewRegistry()
	// An empty registry flags nothing regardless of input.
	got := lint.DetectErrorLinesWith(registry, nil, "{\n  \"a\": 1,\n}")
	assert.Empty(t, got)
}
