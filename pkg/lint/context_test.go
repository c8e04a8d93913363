package lint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gojsonlint/pkg/config"
	"github.com/yaklabco/gojsonlint/pkg/jsontext"
	"github.com/yaklabco/gojsonlint/pkg/lint"
)

func newTestContext(ruleCfg *config.RuleConfig) *lint.RuleContext {
	snapshot := jsontext.NewSnapshot("test.json", []byte("{}"))
	return lint.NewRuleContext(context.Background(), snapshot, config.NewConfig(), ruleCfg)
}

func TestRuleContextCancelled(t *testing.T) {
	rc := newTestContext(nil)
	assert.False(t, rc.Cancelled())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rc.Ctx = ctx
	assert.True(t, rc.Cancelled())
}

func TestRuleContextOptionDefaults(t *testing.T) {
	rc := newTestContext(nil)

	assert.Equal(t, 7, rc.OptionInt("missing", 7))
	assert.Equal(t, "fallback", rc.OptionString("missing", "fallback"))
	assert.True(t, rc.OptionBool("missing", true))
	assert.Equal(t, []string{"x"}, rc.OptionStringSlice("missing", []string{"x"}))
}

func TestRuleContextOptionLookup(t *testing.T) {
	rc := newTestContext(&config.RuleConfig{
		Options: map[string]any{
			"width":   4,
			"ratio":   2.0,
			"label":   "strict",
			"enabled": false,
			"subset":  []string{"a", "b"},
			"yaml":    []interface{}{"c", "d"},
		},
	})

	assert.Equal(t, 4, rc.OptionInt("width", 0))
	assert.Equal(t, 2, rc.OptionInt("ratio", 0), "float64 from YAML converts to int")
	assert.Equal(t, "strict", rc.OptionString("label", ""))
	assert.False(t, rc.OptionBool("enabled", true))
	assert.Equal(t, []string{"a", "b"}, rc.OptionStringSlice("subset", nil))
	assert.Equal(t, []string{"c", "d"}, rc.OptionStringSlice("yaml", nil))
}

func TestRuleContextOptionWrongType(t *testing.T) {
	rc := newTestContext(&config.RuleConfig{
		Options: map[string]any{"width": "four"},
	})

	assert.Equal(t, 2, rc.OptionInt("width", 2))
}
