package format_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/gojsonlint/pkg/format"
)

func TestFormatter_Reformat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   \n\t\n  ",
			expected: "",
		},
		{
			name:     "flat object reindented",
			input:    "{\n\"a\": 1,\n\"b\": 2\n}",
			expected: "{\n  \"a\": 1,\n  \"b\": 2\n}",
		},
		{
			name:     "existing indentation replaced",
			input:    "{\n        \"a\": 1\n}",
			expected: "{\n  \"a\": 1\n}",
		},
		{
			name:  "nested object and array",
			input: "{\n\"a\": {\n\"b\": [\n1,\n2\n],\n\"c\": 3\n}\n}",
			expected: strings.Join([]string{
				"{",
				"  \"a\": {",
				"    \"b\": [",
				"      1,",
				"      2",
				"    ],",
				"    \"c\": 3",
				"  }",
				"}",
			}, "\n"),
		},
		{
			name:     "closers never go below level zero",
			input:    "}\n}\n{\n\"a\": 1\n}",
			expected: "}\n}\n{\n  \"a\": 1\n}",
		},
		{
			name:     "opener wins over closer on the same line",
			input:    "[\n{\n\"a\": 1\n}, {\n\"b\": 2\n}\n]",
			expected: "[\n  {\n    \"a\": 1\n    }, {\n      \"b\": 2\n    }\n  ]",
		},
		{
			name:     "blank lines preserved without indentation",
			input:    "{\n\n\"a\": 1\n\n}",
			expected: "{\n\n  \"a\": 1\n\n}",
		},
		{
			name:     "leading and trailing blank lines trimmed",
			input:    "\n\n{\n\"a\": 1\n}\n\n",
			expected: "{\n  \"a\": 1\n}",
		},
		{
			name:     "carriage returns dropped",
			input:    "{\r\n\"a\": 1\r\n}",
			expected: "{\n  \"a\": 1\n}",
		},
		{
			name:     "non-JSON text passes through",
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:     "unterminated document still renders",
			input:    "{\n\"a\": [\n1,",
			expected: "{\n  \"a\": [\n    1,",
		},
		{
			name:     "single line stays single line",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
	}

	formatter := format.New()

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := formatter.Reformat(testCase.input)
			if got != testCase.expected {
				t.Errorf("Reformat() = %q, expected %q", got, testCase.expected)
			}
		})
	}
}

func TestFormatter_Reformat_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"{\n\"a\": 1,\n\"b\": [\n1,\n2\n]\n}",
		"{\n\"broken\": \n",
		"[\n[\n[\n1\n]\n]\n]",
	}

	formatter := format.New()

	for _, input := range inputs {
		once := formatter.Reformat(input)
		twice := formatter.Reformat(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\nonce:  %q\ntwice: %q", input, once, twice)
		}
	}
}

func TestFormatter_Reformat_IndentWidth(t *testing.T) {
	t.Parallel()

	formatter := format.NewWithIndent(4)
	got := formatter.Reformat("{\n\"a\": 1\n}")
	expected := "{\n    \"a\": 1\n}"
	if got != expected {
		t.Errorf("Reformat() = %q, expected %q", got, expected)
	}

	// Zero and negative widths fall back to the default.
	fallback := format.NewWithIndent(0)
	got = fallback.Reformat("{\n\"a\": 1\n}")
	expected = "{\n  \"a\": 1\n}"
	if got != expected {
		t.Errorf("Reformat() with zero width = %q, expected %q", got, expected)
	}
}

func TestFormatter_Reformat_LinePreservation(t *testing.T) {
	t.Parallel()

	// Inputs with no leading/trailing blank lines keep a 1:1 line mapping.
	input := "{\n\"a\": 1,\nnot json at all\n}"
	got := format.New().Reformat(input)

	inputLines := strings.Split(input, "\n")
	outputLines := strings.Split(got, "\n")
	if len(inputLines) != len(outputLines) {
		t.Fatalf("expected %d lines, got %d", len(inputLines), len(outputLines))
	}

	for i := range inputLines {
		if strings.TrimSpace(inputLines[i]) != strings.TrimSpace(outputLines[i]) {
			t.Errorf("line %d content changed: %q -> %q", i+1, inputLines[i], outputLines[i])
		}
	}
}

func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	formatter := format.New()

	t.Run("valid document uses canonical printer", func(t *testing.T) {
		t.Parallel()

		result := formatter.Format(`{"a":1}`)
		if !result.Strict {
			t.Fatalf("expected strict result, got fallback with err %v", result.Err)
		}
		if result.Err != nil {
			t.Errorf("expected nil Err, got %v", result.Err)
		}
		expected := "{\n  \"a\": 1\n}"
		if result.Output != expected {
			t.Errorf("Output = %q, expected %q", result.Output, expected)
		}
		if !result.Changed {
			t.Errorf("expected Changed for reflowed input")
		}
	})

	t.Run("invalid document falls back to reformatter", func(t *testing.T) {
		t.Parallel()

		result := formatter.Format("{\n\"a\": 1,\n}")
		if result.Strict {
			t.Fatalf("expected fallback result")
		}
		if result.Err == nil {
			t.Errorf("expected parse error label")
		}
		expected := "{\n  \"a\": 1,\n}"
		if result.Output != expected {
			t.Errorf("Output = %q, expected %q", result.Output, expected)
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()

		result := formatter.Format("")
		if result.Strict {
			t.Fatalf("expected fallback for empty input")
		}
		if result.Output != "" {
			t.Errorf("Output = %q, expected empty", result.Output)
		}
		if result.Changed {
			t.Errorf("empty input should be unchanged")
		}
	})

	t.Run("already canonical input reports no change", func(t *testing.T) {
		t.Parallel()

		canonical := "{\n  \"a\": 1\n}"
		result := formatter.Format(canonical)
		if !result.Strict {
			t.Fatalf("expected strict result")
		}
		if result.Changed {
			t.Errorf("expected Changed=false, output %q", result.Output)
		}
	})
}
