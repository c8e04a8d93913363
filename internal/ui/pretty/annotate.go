package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gojsonlint/pkg/jsontext"
)

// AnnotateOptions controls annotated source rendering.
type AnnotateOptions struct {
	// Width is the maximum render width in columns. Lines longer than the
	// available content width are truncated with an ellipsis. Zero means
	// no truncation.
	Width int

	// Context limits output to N lines around each flagged line. Zero
	// renders the whole document.
	Context int
}

const annotateEllipsis = "…"

// AnnotateSource renders source with a line-number gutter, marking the given
// 1-based lines as suspect. Used for the --annotate view of invalid documents.
func (s *Styles) AnnotateSource(source string, flagged []int, opts AnnotateOptions) string {
	snap := jsontext.NewSnapshot("", []byte(source))
	lineCount := snap.LineCount()
	// A trailing newline yields a final empty line; don't render it.
	for lineCount > 0 && snap.LineText(lineCount) == "" {
		lineCount--
	}
	if lineCount == 0 {
		return ""
	}

	flaggedSet := make(map[int]bool, len(flagged))
	for _, n := range flagged {
		flaggedSet[n] = true
	}

	visible := visibleLines(lineCount, flaggedSet, opts.Context)

	gutterWidth := len(fmt.Sprintf("%d", lineCount))
	contentWidth := 0
	if opts.Width > 0 {
		// marker + space + gutter + " | "
		contentWidth = opts.Width - gutterWidth - 5
		if contentWidth < 8 {
			contentWidth = 8
		}
	}

	var builder strings.Builder
	prevShown := 0
	for num := 1; num <= lineCount; num++ {
		if !visible[num] {
			continue
		}
		if prevShown != 0 && num != prevShown+1 {
			builder.WriteString(s.Dim.Render(strings.Repeat(" ", gutterWidth+2) + "⋮"))
			builder.WriteString("\n")
		}
		prevShown = num

		text := truncateLine(snap.LineText(num), contentWidth)

		numStr := fmt.Sprintf("%*d", gutterWidth, num)
		if flaggedSet[num] {
			builder.WriteString(s.Marker.Render(">"))
			builder.WriteString(" ")
			builder.WriteString(s.GutterFlagged.Render(numStr))
			builder.WriteString(s.Gutter.Render(" | "))
			builder.WriteString(s.FlaggedLine.Render(text))
		} else {
			builder.WriteString("  ")
			builder.WriteString(s.Gutter.Render(numStr))
			builder.WriteString(s.Gutter.Render(" | "))
			builder.WriteString(text)
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

// truncateLine shortens text to at most width columns, replacing the tail
// with an ellipsis. Truncation counts runes so a multibyte character is
// never split. Zero width disables truncation.
func truncateLine(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	return string(runes[:width-1]) + annotateEllipsis
}

// visibleLines computes the set of 1-based line numbers to render. With zero
// context every line is visible; otherwise only lines within context of a
// flagged line are.
func visibleLines(lineCount int, flagged map[int]bool, context int) map[int]bool {
	visible := make(map[int]bool, lineCount)
	if context <= 0 || len(flagged) == 0 {
		for n := 1; n <= lineCount; n++ {
			visible[n] = true
		}
		return visible
	}
	for n := range flagged {
		lo := n - context
		if lo < 1 {
			lo = 1
		}
		hi := n + context
		if hi > lineCount {
			hi = lineCount
		}
		for i := lo; i <= hi; i++ {
			visible[i] = true
		}
	}
	return visible
}
