package format

import "github.com/tidwall/gjson"

// Query extracts the subdocument at a gjson path expression from valid JSON.
// It returns the raw JSON of the match and true, or "" and false when the
// path addresses nothing.
func Query(data []byte, path string) (string, bool) {
	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return "", false
	}
	return result.Raw, true
}
