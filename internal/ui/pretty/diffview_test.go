package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gojsonlint/internal/ui/pretty"
)

const sampleDiff = `--- a/data.json
+++ b/data.json
@@ -1,3 +1,3 @@
 {
-"a":1
+  "a": 1
 }
`

func TestColorizeDiff_NoColorPassthrough(t *testing.T) {
	styles := pretty.NewStyles(false)

	got := styles.ColorizeDiff(sampleDiff)
	assert.Equal(t, sampleDiff, got, "no-color styling should not alter the diff text")
}

func TestColorizeDiff_PreservesLineCount(t *testing.T) {
	styles := pretty.NewStyles(true)

	got := styles.ColorizeDiff(sampleDiff)
	assert.Contains(t, got, "a/data.json")
	assert.Contains(t, got, `"a": 1`)
}

func TestColorizeDiff_Empty(t *testing.T) {
	styles := pretty.NewStyles(true)
	assert.Empty(t, styles.ColorizeDiff(""))
}
