// Package webhook calls the external workflow endpoint that enriches the
// uploaded conference CSV into attendee reports.
package webhook

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// DefaultURL is the fixed workflow endpoint. Deployments can override it
// with the WEBHOOK_URL environment variable.
const DefaultURL = "https://workflows.nexa-automation.com/webhook/conference-networking-briefs"

// UploadFieldName and UploadFileName are what the workflow expects the CSV
// part to be called.
const (
	UploadFieldName = "file"
	UploadFileName  = "conference_data.csv"
)

// StatusError reports a non-2xx webhook response. Body carries the response
// text verbatim so callers can surface it unchanged.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook returned status %d: %s", e.Code, e.Body)
}

// Client posts CSV uploads to the workflow webhook. The call is fire-once:
// no retry, no timeout, no cancellation. A transport failure or non-2xx
// status ends the attempt; the user retries by re-uploading.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

// NewClient creates a Client for the given webhook URL, falling back to
// DefaultURL when empty.
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		URL:        url,
		HTTPClient: &http.Client{},
	}
}

// Process sends the CSV bytes to the webhook as a multipart upload and
// returns the response body text. Non-2xx responses come back as a
// *StatusError holding the body verbatim.
func (c *Client) Process(csvContent []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, UploadFieldName, UploadFileName))
	header.Set("Content-Type", "text/csv")

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to create multipart field: %w", err)
	}
	if _, err := part.Write(csvContent); err != nil {
		return "", fmt.Errorf("failed to write CSV content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	resp, err := c.HTTPClient.Post(c.URL, writer.FormDataContentType(), &body)
	if err != nil {
		return "", fmt.Errorf("failed to reach webhook: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read webhook response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	return string(respBody), nil
}
