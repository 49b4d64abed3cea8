// Package report implements the text transformations that turn the workflow
// webhook's markdown-like response into display HTML and download documents.
package report

import (
	"encoding/json"
	"strings"
)

// BlockSeparator is the line inserted between attendee blocks when they are
// re-joined for document export.
var BlockSeparator = strings.Repeat("=", 50)

// ParseBlocks normalizes a webhook response body into report blocks.
//
// The webhook may answer with a JSON array (one element per attendee), a
// single JSON object, or plain text. Array elements and single objects
// contribute their "output" field when present, their re-serialized JSON
// otherwise. A body that does not decode as JSON is itself the single block.
// Decode failure is a recognized fallback, not an error.
func ParseBlocks(raw string) []string {
	var decoded interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return []string{raw}
	}

	switch v := decoded.(type) {
	case []interface{}:
		blocks := make([]string, 0, len(v))
		for _, elem := range v {
			blocks = append(blocks, blockText(elem))
		}
		return blocks
	default:
		return []string{blockText(decoded)}
	}
}

// blockText extracts the report text from one decoded JSON value.
func blockText(elem interface{}) string {
	if obj, ok := elem.(map[string]interface{}); ok {
		if output, ok := obj["output"].(string); ok {
			return output
		}
	}
	encoded, err := json.Marshal(elem)
	if err != nil {
		return ""
	}
	return string(encoded)
}

// JoinBlocks concatenates report blocks with the block separator flanked by
// blank lines, the form the RTF and PDF cleaning path expects.
func JoinBlocks(blocks []string) string {
	return strings.Join(blocks, "\n\n"+BlockSeparator+"\n\n")
}
