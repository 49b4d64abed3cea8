package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsDeclaredCSV(t *testing.T) {
	content, err := Validate("upload.bin", "text/csv", []byte("a,b\n1,2"))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2", content)
}

func TestValidateAcceptsCSVWithParameters(t *testing.T) {
	_, err := Validate("data.csv", "text/csv; charset=utf-8", []byte("a,b"))
	assert.NoError(t, err)
}

func TestValidateFallsBackToExtension(t *testing.T) {
	_, err := Validate("conference_data.csv", "application/octet-stream", []byte("a,b"))
	assert.NoError(t, err)
}

func TestValidateRejectsOtherTypes(t *testing.T) {
	_, err := Validate("notes.txt", "text/plain", []byte("hello"))
	assert.Error(t, err)
}

func TestValidateRejectsInvalidUTF8(t *testing.T) {
	_, err := Validate("data.csv", "text/csv", []byte{0xff, 0xfe, 0x00})
	assert.Error(t, err)
}
