package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"briefs-processor/internal/export"
	"briefs-processor/internal/ingest"
	"briefs-processor/internal/model"
	"briefs-processor/internal/report"
	"briefs-processor/internal/session"
	"briefs-processor/internal/webhook"
)

// Server represents the API server
type Server struct {
	webhookClient *webhook.Client
	exporterMgr   *export.ExporterManager
	sessions      *session.Store
	outputDir     string
}

// NewServer creates a new API server
func NewServer(client *webhook.Client, exporterMgr *export.ExporterManager, outputDir string) *Server {
	// Create the output directory if it doesn't exist
	if outputDir != "" {
		os.MkdirAll(outputDir, 0755)
	}

	return &Server{
		webhookClient: client,
		exporterMgr:   exporterMgr,
		sessions:      session.NewStore(),
		outputDir:     outputDir,
	}
}

// ProcessHandler handles a CSV upload: it validates the file, forwards it to
// the workflow webhook, and returns the formatted briefing HTML.
func (s *Server) ProcessHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Maximum upload size (10MB)
	r.Body = http.MaxBytesReader(w, r.Body, 10*1024*1024)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		responseWithError(w, http.StatusBadRequest, "Failed to parse form", err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, "Failed to get file from form", err)
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		responseWithError(w, http.StatusBadRequest, "Failed to read file content", err)
		return
	}

	sess := s.sessions.Create()
	sess.Fire(session.EventFileSelected)

	csvContent, err := ingest.Validate(header.Filename, header.Header.Get("Content-Type"), fileBytes)
	if err != nil {
		sess.Fire(session.EventSubmit)
		s.failSession(sess, err.Error())
		responseWithError(w, http.StatusBadRequest, "Invalid upload", err)
		return
	}

	sess.Fire(session.EventSubmit)
	slog.Info("forwarding CSV to webhook", "session", sess.ID, "file", header.Filename, "bytes", len(csvContent))

	body, err := s.webhookClient.Process([]byte(csvContent))
	if err != nil {
		var statusErr *webhook.StatusError
		if errors.As(err, &statusErr) {
			// The workflow's own error text goes back verbatim
			s.failSession(sess, statusErr.Body)
			writeSessionError(w, statusErr.Code, sess.ID, statusErr.Body)
			return
		}
		slog.Error("webhook call failed", "session", sess.ID, "error", err)
		msg := "Could not reach the processing workflow. The network may restrict outbound requests; please try again."
		s.failSession(sess, msg)
		writeSessionError(w, http.StatusBadGateway, sess.ID, msg)
		return
	}

	blocks := report.ParseBlocks(body)
	briefing := model.NewBriefing(header.Filename, body, blocks)
	sess.SetBriefing(briefing)
	sess.Fire(session.EventResponseOK)
	slog.Info("briefing ready", "session", sess.ID, "blocks", len(blocks))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ProcessResponse{
		Success:   true,
		SessionID: sess.ID,
		HTML:      report.FormatBlocksHTML(blocks),
		Blocks:    len(blocks),
	})
}

// ExportHandler streams a briefing in the requested format, or saves it to
// the output directory when save=true.
func (s *Server) ExportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess, ok := s.sessions.Get(r.URL.Query().Get("id"))
	if !ok {
		responseWithError(w, http.StatusNotFound, "Unknown session", nil)
		return
	}
	if sess.State() != session.StateShowingResults {
		responseWithError(w, http.StatusConflict,
			fmt.Sprintf("Session is %s, not ready for export", sess.State()), nil)
		return
	}

	format := model.Format(r.URL.Query().Get("format"))
	contentType, ok := ContentTypes[format]
	if !ok {
		responseWithError(w, http.StatusBadRequest,
			fmt.Sprintf("Unsupported export format: %s", format), nil)
		return
	}

	briefing := sess.Briefing()

	var buf bytes.Buffer
	if err := s.exporterMgr.Export(briefing, format, &buf); err != nil {
		responseWithError(w, http.StatusInternalServerError, "Failed to export briefing", err)
		return
	}

	fileName := briefing.ArtifactName(format)

	if r.URL.Query().Get("save") == "true" && s.outputDir != "" {
		outputPath := filepath.Join(s.outputDir, fileName)
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			responseWithError(w, http.StatusInternalServerError, "Failed to save export", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SaveResponse{
			Success:    true,
			ResultName: fileName,
			Location:   outputPath,
			Size:       int64(buf.Len()),
		})
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		// We can't return an error to the client at this point
		slog.Error("error writing export response", "error", err)
	}
}

// SessionHandler reports the processing state of a session
func (s *Server) SessionHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.Get(r.URL.Query().Get("id"))
	if !ok {
		responseWithError(w, http.StatusNotFound, "Unknown session", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SessionResponse{
		SessionID: sess.ID,
		State:     string(sess.State()),
		Error:     sess.Err(),
	})
}

// failSession moves a session into showing_error with the given message
func (s *Server) failSession(sess *session.Session, msg string) {
	sess.SetError(msg)
	sess.Fire(session.EventResponseError)
}

// Helper function to return an error response in JSON format
func responseWithError(w http.ResponseWriter, status int, message string, err error) {
	errMsg := message
	if err != nil {
		errMsg = fmt.Sprintf("%s: %v", message, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ProcessResponse{
		Success: false,
		Error:   errMsg,
	})
}

// writeSessionError is responseWithError for failures that belong to a
// session, so the caller can still query or reset it
func writeSessionError(w http.ResponseWriter, status int, sessionID, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ProcessResponse{
		Success:   false,
		SessionID: sessionID,
		Error:     message,
	})
}
