package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"briefs-processor/internal/model"
	"briefs-processor/internal/report"
)

// accent is the heading color shared with the HTML stylesheet and the RTF
// color table (green #2e7d32).
var accent = [3]int{46, 125, 50}

// linkBlue matches the RTF link color (#0066cc).
var linkBlue = [3]int{0, 102, 204}

// PDFExporter implements the Exporter interface for PDF documents
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Export writes the briefing as a PDF. It renders the same cleaned text the
// RTF path uses, applying the same line classification for headings,
// sections, bullets, and separators.
func (e *PDFExporter) Export(briefing *model.Briefing, output io.Writer) error {
	cleaned := report.CleanMarkdown(report.JoinBlocks(briefing.Blocks))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, raw := range strings.Split(cleaned, "\n") {
		line := strings.TrimSpace(raw)
		e.writeLine(pdf, tr, line)
	}

	if err := pdf.Output(output); err != nil {
		return fmt.Errorf("failed to write PDF document: %w", err)
	}
	return nil
}

func (e *PDFExporter) writeLine(pdf *gofpdf.Fpdf, tr func(string) string, line string) {
	switch {
	case line == "Create a networking dossier for each attendee:":
		e.heading(pdf, tr, line, 16)

	case strings.HasPrefix(line, "Attendee Name:"):
		name := strings.TrimSpace(strings.TrimPrefix(line, "Attendee Name:"))
		e.heading(pdf, tr, name, 14)

	case containsLine(report.RTFSectionTitles, line):
		e.heading(pdf, tr, line, 13)

	case containsLine(report.RTFSubsectionTitles, line):
		e.heading(pdf, tr, line, 11)

	case strings.HasPrefix(line, "• ") || strings.HasPrefix(line, "- "):
		text := strings.TrimPrefix(strings.TrimPrefix(line, "• "), "- ")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetX(pdf.GetX() + 5)
		pdf.MultiCell(0, 5, tr("• "+text), "", "L", false)

	case strings.HasPrefix(line, "LinkedIn Profile"):
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(linkBlue[0], linkBlue[1], linkBlue[2])
		pdf.MultiCell(0, 5, tr(line), "", "L", false)

	case line == "---" || line == report.BlockSeparator:
		pdf.Ln(2)
		x, y := pdf.GetX(), pdf.GetY()
		pageWidth, _ := pdf.GetPageSize()
		pdf.SetDrawColor(180, 180, 180)
		pdf.Line(x, y, pageWidth-15, y)
		pdf.Ln(3)

	case line == "":
		pdf.Ln(3)

	default:
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
}

func (e *PDFExporter) heading(pdf *gofpdf.Fpdf, tr func(string) string, text string, size float64) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", size)
	pdf.SetTextColor(accent[0], accent[1], accent[2])
	pdf.MultiCell(0, size/2, tr(text), "", "L", false)
	pdf.Ln(1)
}

// CanExport checks if this exporter can handle the given format
func (e *PDFExporter) CanExport(format model.Format) bool {
	return format == model.FormatPDF
}

func containsLine(values []string, line string) bool {
	for _, v := range values {
		if v == line {
			return true
		}
	}
	return false
}
