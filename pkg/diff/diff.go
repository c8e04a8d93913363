// Package diff produces unified diffs between original and formatted
// document content, for previewing what a rewrite would change.
package diff

import (
	"fmt"
	"strings"
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

// Diff is a unified diff between original and formatted content.
type Diff struct {
	// Path is the file path used in the diff headers.
	Path string

	// Hunks contains the change hunks in document order.
	Hunks []Hunk

	// Additions is the number of added lines across all hunks.
	Additions int

	// Deletions is the number of removed lines across all hunks.
	Deletions int
}

// Hunk is one contiguous group of changes with surrounding context.
type Hunk struct {
	// OriginalStart is the 1-based first line of the hunk in the original.
	OriginalStart int

	// OriginalCount is the number of original lines covered by the hunk.
	OriginalCount int

	// FormattedStart is the 1-based first line of the hunk in the
	// formatted output.
	FormattedStart int

	// FormattedCount is the number of formatted lines covered by the hunk.
	FormattedCount int

	// Lines are the hunk lines in order.
	Lines []Line
}

// Line is a single line within a hunk.
type Line struct {
	Kind    LineKind
	Content string
}

// LineKind distinguishes context, added, and removed lines.
type LineKind int

const (
	// Context is a line present in both versions.
	Context LineKind = iota

	// Added is a line only present in the formatted output.
	Added

	// Removed is a line only present in the original.
	Removed
)

// Generate computes the unified diff between original and formatted content.
// It returns nil when the two are line-identical.
func Generate(path string, original, formatted []byte) *Diff {
	origLines := splitLines(original)
	newLines := splitLines(formatted)

	ops := diffOps(origLines, newLines)
	hunks := groupHunks(ops)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks}
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case Added:
				d.Additions++
			case Removed:
				d.Deletions++
			}
		}
	}
	return d
}

// HasChanges reports whether the diff contains any hunks.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// Stat returns a short "+N -M" change summary.
func (d *Diff) Stat() string {
	if d == nil {
		return "+0 -0"
	}
	return fmt.Sprintf("+%d -%d", d.Additions, d.Deletions)
}

// String renders the diff in unified format with ---/+++ headers.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.FormattedStart, hunk.FormattedCount)

		for _, line := range hunk.Lines {
			switch line.Kind {
			case Context:
				b.WriteByte(' ')
			case Added:
				b.WriteByte('+')
			case Removed:
				b.WriteByte('-')
			}
			b.WriteString(line.Content)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// splitLines splits content on newlines, dropping the final empty fragment
// left by a trailing newline.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// op is one element of the raw line-level edit script.
type op struct {
	kind    LineKind
	content string
}

// diffOps builds the edit script from an LCS of the two line slices.
func diffOps(orig, formatted []string) []op {
	lcs := longestCommonSubsequence(orig, formatted)

	var ops []op
	oi, fi, li := 0, 0, 0

	for oi < len(orig) || fi < len(formatted) {
		if li < len(lcs) && oi < len(orig) && fi < len(formatted) &&
			orig[oi] == lcs[li] && formatted[fi] == lcs[li] {
			ops = append(ops, op{kind: Context, content: orig[oi]})
			oi++
			fi++
			li++
			continue
		}

		for oi < len(orig) && (li >= len(lcs) || orig[oi] != lcs[li]) {
			ops = append(ops, op{kind: Removed, content: orig[oi]})
			oi++
		}
		for fi < len(formatted) && (li >= len(lcs) || formatted[fi] != lcs[li]) {
			ops = append(ops, op{kind: Added, content: formatted[fi]})
			fi++
		}
	}

	return ops
}

// groupHunks groups the edit script into hunks, merging changes whose
// context windows touch.
func groupHunks(ops []op) []Hunk {
	type span struct{ start, end int }

	var spans []span
	inChange := false
	spanStart := 0

	for i, o := range ops {
		changed := o.kind != Context
		switch {
		case changed && !inChange:
			spanStart = i
			inChange = true
		case !changed && inChange:
			spans = append(spans, span{spanStart, i})
			inChange = false
		}
	}
	if inChange {
		spans = append(spans, span{spanStart, len(ops)})
	}
	if len(spans) == 0 {
		return nil
	}

	var hunks []Hunk
	for i := 0; i < len(spans); {
		end := i + 1
		for end < len(spans) && spans[end].start-spans[end-1].end <= contextLines*2 {
			end++
		}
		hunks = append(hunks, buildHunk(ops, spans[i].start, spans[end-1].end))
		i = end
	}
	return hunks
}

// buildHunk assembles one hunk spanning ops[changeStart:changeEnd] plus
// context.
func buildHunk(ops []op, changeStart, changeEnd int) Hunk {
	start := max(changeStart-contextLines, 0)
	end := min(changeEnd+contextLines, len(ops))

	hunk := Hunk{OriginalStart: 1, FormattedStart: 1}
	for i := 0; i < start; i++ {
		if ops[i].kind != Added {
			hunk.OriginalStart++
		}
		if ops[i].kind != Removed {
			hunk.FormattedStart++
		}
	}

	for i := start; i < end; i++ {
		hunk.Lines = append(hunk.Lines, Line{Kind: ops[i].kind, Content: ops[i].content})
		switch ops[i].kind {
		case Context:
			hunk.OriginalCount++
			hunk.FormattedCount++
		case Removed:
			hunk.OriginalCount++
		case Added:
			hunk.FormattedCount++
		}
	}

	return hunk
}

// longestCommonSubsequence computes the LCS of two line slices with the
// classic dynamic program. Editor buffers are small enough that the
// quadratic table is not a concern.
func longestCommonSubsequence(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	length := dp[len(a)][len(b)]
	if length == 0 {
		return nil
	}

	lcs := make([]string, length)
	i, j, k := len(a), len(b), length-1
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			lcs[k] = a[i-1]
			i--
			j--
			k--
		case dp[i-1][j] > dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	return lcs
}
