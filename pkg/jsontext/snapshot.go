// Package jsontext provides the raw-text view of a JSON document that the
// rest of gojsonlint works on. It deliberately stops short of parsing: the
// formatter and the heuristic checks operate on lines of text so they can
// handle documents that no real JSON parser would accept.
//
// The package defines:
// - Snapshot: an immutable view of a document with a line index
// - ScanState: string-context tracking threaded across lines
// - Balance: brace and bracket counting
package jsontext

// Snapshot is an immutable view of a JSON document at a specific time.
// It holds the raw content plus a line index for offset translation.
type Snapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full document bytes.
	Content []byte

	// Lines contains metadata for each line in the document.
	Lines []LineInfo
}

// LineInfo holds metadata for a single line in a document.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of document).
	EndOffset int
}

// NewSnapshot creates a Snapshot from content, building the line index.
func NewSnapshot(path string, content []byte) *Snapshot {
	return &Snapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}
