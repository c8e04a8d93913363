package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gojsonlint/pkg/config"
)

func TestFormatRuleID(t *testing.T) {
	tests := []struct {
		name     string
		format   config.RuleFormat
		ruleID   string
		ruleName string
		want     string
	}{
		{"name format", config.RuleFormatName, "JL001", "unterminated-string", "unterminated-string"},
		{"id format", config.RuleFormatID, "JL001", "unterminated-string", "JL001"},
		{"combined format", config.RuleFormatCombined, "JL001", "unterminated-string", "JL001/unterminated-string"},
		{"name format empty name", config.RuleFormatName, "JL001", "", "JL001"},
		{"default to name", config.RuleFormat(""), "JL001", "unterminated-string", "unterminated-string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FormatRuleID(tt.format, tt.ruleID, tt.ruleName)
			assert.Equal(t, tt.want, got)
		})
	}
}
