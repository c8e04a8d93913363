package format

import (
	"errors"
	"strings"

	jsonenc "encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Validate reports whether data is strictly valid JSON. A fast validity scan
// accepts clean documents without building a document tree; rejected input
// is re-parsed with encoding/json so the returned error carries that
// parser's message.
func Validate(data []byte) error {
	if gjson.ValidBytes(data) {
		return nil
	}

	var v any
	if err := jsonenc.Unmarshal(data, &v); err != nil {
		return err
	}

	return errors.New("invalid JSON document")
}

// Canonical renders already-valid JSON in the standard indented style,
// preserving key order. Short arrays and objects may stay on one line. The
// result has no trailing newline.
func (f *Formatter) Canonical(data []byte) string {
	opts := &pretty.Options{
		Width:    80,
		Indent:   f.indentUnit(),
		SortKeys: false,
	}
	return strings.TrimSpace(string(pretty.PrettyOptions(data, opts)))
}

// Compact renders already-valid JSON with all insignificant whitespace
// removed.
func Compact(data []byte) string {
	return strings.TrimSpace(string(pretty.Ugly(data)))
}
