package api

import "briefs-processor/internal/model"

// ProcessResponse represents the response for a processed CSV upload
type ProcessResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId,omitempty"`
	// HTML is the formatted briefing fragment for in-app display
	HTML   string `json:"html,omitempty"`
	Blocks int    `json:"blocks,omitempty"`
	Error  string `json:"error,omitempty"`
}

// SessionResponse reports the processing state of a session
type SessionResponse struct {
	SessionID string `json:"sessionId"`
	State     string `json:"state"`
	Error     string `json:"error,omitempty"`
}

// SaveResponse represents the response when an export is saved to disk
// instead of streamed back
type SaveResponse struct {
	Success    bool   `json:"success"`
	ResultName string `json:"resultName,omitempty"`
	Location   string `json:"location,omitempty"`
	Size       int64  `json:"size,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ContentTypes maps export formats to download content types
var ContentTypes = map[model.Format]string{
	model.FormatHTML: "text/html; charset=utf-8",
	model.FormatRTF:  "application/rtf",
	model.FormatPDF:  "application/pdf",
}
