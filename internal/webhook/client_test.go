package webhook

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessSendsCSVAsMultipartFile(t *testing.T) {
	var gotFieldName, gotFileName, gotContentType, gotBody string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile(UploadFieldName)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		gotFieldName = UploadFieldName
		gotFileName = header.Filename
		gotContentType = header.Header.Get("Content-Type")
		content, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotBody = string(content)

		io.WriteString(w, "report text")
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	body, err := client.Process([]byte("name,company\nJane,Acme"))
	require.NoError(t, err)

	assert.Equal(t, "report text", body)
	assert.Equal(t, "file", gotFieldName)
	assert.Equal(t, "conference_data.csv", gotFileName)
	assert.Equal(t, "text/csv", gotContentType)
	assert.Equal(t, "name,company\nJane,Acme", gotBody)
}

func TestProcessNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "workflow exploded")
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Process([]byte("csv"))
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	// The body comes back verbatim
	assert.Equal(t, "workflow exploded", statusErr.Body)
}

func TestProcessTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL)
	_, err := client.Process([]byte("csv"))
	require.Error(t, err)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestNewClientDefaultURL(t *testing.T) {
	assert.Equal(t, DefaultURL, NewClient("").URL)
	assert.Equal(t, "https://example.com/hook", NewClient("https://example.com/hook").URL)
}
