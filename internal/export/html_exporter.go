package export

import (
	"fmt"
	"io"
	"strings"

	"briefs-processor/internal/model"
	"briefs-processor/internal/report"
)

// htmlStyles is the fixed stylesheet embedded in standalone HTML exports.
// The class names match what report.FormatHTML emits.
const htmlStyles = `body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; margin: 32px; color: #212121; background-color: #ffffff; max-width: 860px; }
.main-title { color: #2e7d32; margin-bottom: 0.5rem; }
.executive-summary { color: #2e7d32; margin-top: 1.5rem; }
.attendee-name { font-size: 1.4rem; font-weight: 700; color: #2e7d32; margin: 1.5rem 0 0.5rem; }
.section-title { color: #2e7d32; margin-top: 1.25rem; }
.subsection-title { color: #388e3c; margin-top: 1rem; }
.info-label { font-weight: 700; margin-top: 0.75rem; }
.company-name { font-weight: 600; color: #1b5e20; }
.linkedin-link, .email-link, .profile-photo-link { color: #0066cc; text-decoration: none; }
.linkedin-link:hover, .email-link:hover { text-decoration: underline; }
.profile-photo { max-width: 140px; border-radius: 8px; margin: 0.5rem 0; }
.profile-photo-placeholder { color: #757575; font-style: italic; margin: 0.5rem 0; }
.icp-indicator { background-color: #e8f5e9; color: #1b5e20; padding: 0.1rem 0.4rem; border-radius: 4px; font-weight: 600; }
li { margin: 0.25rem 0; }
hr.section-divider { border: none; border-top: 1px solid #d2d6dc; margin: 1.5rem 0; }
`

// HTMLExporter implements the Exporter interface for standalone HTML
// documents
type HTMLExporter struct{}

// NewHTMLExporter creates a new HTML exporter
func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

// Export writes the briefing as a complete HTML document: the fixed
// stylesheet, a banner heading, and one formatted section per report block.
func (e *HTMLExporter) Export(briefing *model.Briefing, output io.Writer) error {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n")
	b.WriteString("<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n")
	b.WriteString("  <title>Networking Briefs</title>\n")
	fmt.Fprintf(&b, "  <style>%s</style>\n", htmlStyles)
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")
	b.WriteString("<h1>Networking Briefs</h1>\n")
	b.WriteString(report.FormatBlocksHTML(briefing.Blocks))
	b.WriteString("\n</body>\n")
	b.WriteString("</html>\n")

	if _, err := io.WriteString(output, b.String()); err != nil {
		return fmt.Errorf("failed to write HTML document: %w", err)
	}
	return nil
}

// CanExport checks if this exporter can handle the given format
func (e *HTMLExporter) CanExport(format model.Format) bool {
	return format == model.FormatHTML
}
