// Package ingest validates uploaded conference CSV files before they are
// forwarded to the workflow webhook.
package ingest

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validate checks an uploaded file and returns its content as a string.
// The file must look like CSV (declared text/csv type or a .csv filename)
// and decode as UTF-8 text.
func Validate(filename, contentType string, content []byte) (string, error) {
	if !isCSV(filename, contentType) {
		return "", fmt.Errorf("unsupported file type %q: expected a CSV file", contentType)
	}
	if !utf8.Valid(content) {
		return "", fmt.Errorf("file %s is not valid UTF-8 text", filename)
	}
	return string(content), nil
}

// isCSV accepts a declared text/csv content type, or falls back to the
// filename extension for clients that upload CSVs as octet-stream.
func isCSV(filename, contentType string) bool {
	mediaType := strings.TrimSpace(strings.ToLower(strings.SplitN(contentType, ";", 2)[0]))
	if mediaType == "text/csv" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(filename), ".csv")
}
