// Package langdetect classifies snippet content, primarily to decide
// whether an untagged fenced block or an extensionless file should be
// treated as JSON. It combines fast shape checks with a go-enry
// classifier fallback.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language constants for detected languages.
const (
	LangJSON = "json"
	LangYAML = "yaml"
	LangText = "text"
)

// classifierCandidates limits the enry classifier to languages that are
// plausibly confused with JSON documents.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"JSON", "YAML", "JavaScript", "Markdown", "Text",
}

// IsJSON reports whether content should be treated as a JSON document.
// It is intentionally permissive: malformed JSON still counts, since the
// whole point of this tool is handling documents a strict parser rejects.
func IsJSON(content []byte) bool {
	return Detect(content) == LangJSON
}

// Detect returns the detected language for snippet content.
// Returns "text" if detection fails or confidence is low.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return LangText
	}

	// Shape checks first: cheap and right for the common cases.
	if lang := detectJSON(trimmed); lang != "" {
		return lang
	}
	if lang := detectYAML(trimmed); lang != "" {
		return lang
	}

	// Classifier fallback. Only trust the result when enry marks it safe.
	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return LangText
}

// detectJSON checks for JSON document shape: a brace or bracket opener,
// or a lone top-level scalar. Broken documents qualify too, so the check
// looks at the opener rather than attempting a parse.
func detectJSON(trimmed []byte) string {
	switch trimmed[0] {
	case '{', '[':
		return LangJSON
	case '"':
		// A quoted top-level scalar, as long as the rest doesn't look
		// like YAML ("key": value lines are still JSON).
		return LangJSON
	}

	// Bare top-level literals.
	str := string(trimmed)
	switch str {
	case "true", "false", "null":
		return LangJSON
	}
	if len(str) > 0 && (str[0] == '-' || (str[0] >= '0' && str[0] <= '9')) {
		if !strings.ContainsAny(str, " \t\n") {
			return LangJSON
		}
	}

	return ""
}

// detectYAML checks for YAML patterns by counting key: value pairs.
func detectYAML(trimmed []byte) string {
	lines := bytes.Split(trimmed, []byte("\n"))
	yamlKeyCount := 0

	for _, line := range lines {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		// Simple key: value (unquoted identifier followed by colon and
		// space). Quoted keys indicate JSON, not YAML.
		if bytes.Contains(line, []byte(": ")) {
			if !bytes.Contains(line, []byte("(")) &&
				!bytes.Contains(line, []byte("{")) &&
				!bytes.HasPrefix(line, []byte(`"`)) {
				yamlKeyCount++
			}
		}
		// YAML list item at root level.
		if bytes.HasPrefix(line, []byte("- ")) {
			yamlKeyCount++
		}
	}

	if yamlKeyCount >= 2 {
		return LangYAML
	}
	return ""
}

// normalize converts go-enry language names to lowercase tags.
func normalize(lang string) string {
	return strings.ToLower(lang)
}
