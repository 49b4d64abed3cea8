package export

import (
	"fmt"
	"io"

	"briefs-processor/internal/model"
	"briefs-processor/internal/report"
)

// RTFExporter implements the Exporter interface for RTF documents
type RTFExporter struct{}

// NewRTFExporter creates a new RTF exporter
func NewRTFExporter() *RTFExporter {
	return &RTFExporter{}
}

// Export writes the briefing as an RTF document. Blocks are joined with the
// block separator, cleaned of markdown syntax, then composed line by line.
func (e *RTFExporter) Export(briefing *model.Briefing, output io.Writer) error {
	cleaned := report.CleanMarkdown(report.JoinBlocks(briefing.Blocks))
	doc := report.ComposeRTF(cleaned)

	if _, err := io.WriteString(output, doc); err != nil {
		return fmt.Errorf("failed to write RTF document: %w", err)
	}
	return nil
}

// CanExport checks if this exporter can handle the given format
func (e *RTFExporter) CanExport(format model.Format) bool {
	return format == model.FormatRTF
}
