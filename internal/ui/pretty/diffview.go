package pretty

import "strings"

// ColorizeDiff applies styling to a unified diff, line by line. Header lines
// (---, +++), hunk markers (@@), additions, and removals each get their own
// style; everything else renders as context.
func (s *Styles) ColorizeDiff(diff string) string {
	if diff == "" {
		return ""
	}

	trailingNewline := strings.HasSuffix(diff, "\n")
	lines := strings.Split(strings.TrimSuffix(diff, "\n"), "\n")

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			b.WriteString(s.DiffHeader.Render(line))
		case strings.HasPrefix(line, "@@"):
			b.WriteString(s.DiffHunk.Render(line))
		case strings.HasPrefix(line, "+"):
			b.WriteString(s.DiffAdd.Render(line))
		case strings.HasPrefix(line, "-"):
			b.WriteString(s.DiffRemove.Render(line))
		default:
			b.WriteString(s.DiffContext.Render(line))
		}
	}
	if trailingNewline {
		b.WriteByte('\n')
	}
	return b.String()
}
