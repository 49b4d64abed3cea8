// Package export turns a processed briefing into downloadable documents.
package export

import (
	"fmt"
	"io"

	"briefs-processor/internal/model"
)

// Exporter writes a briefing in one output format
type Exporter interface {
	// CanExport checks if this exporter handles the given format
	CanExport(format model.Format) bool

	// Export writes the briefing to the output
	Export(briefing *model.Briefing, output io.Writer) error
}

// ExporterManager manages exporters and selects the appropriate one
// This is the "context" in the strategy pattern
type ExporterManager struct {
	exporters []Exporter
}

// NewExporterManager creates a new exporter manager with the given exporters
func NewExporterManager(exporters ...Exporter) *ExporterManager {
	return &ExporterManager{
		exporters: exporters,
	}
}

// RegisterExporter adds a new exporter to the manager
func (m *ExporterManager) RegisterExporter(exporter Exporter) {
	m.exporters = append(m.exporters, exporter)
}

// Export writes the briefing in the requested format using the appropriate
// exporter
func (m *ExporterManager) Export(briefing *model.Briefing, format model.Format, output io.Writer) error {
	for _, exporter := range m.exporters {
		if exporter.CanExport(format) {
			return exporter.Export(briefing, output)
		}
	}

	return fmt.Errorf("no exporter found for format: %s", format)
}

// CreateDefaultManager creates an exporter manager with the default set of
// exporters
func CreateDefaultManager() *ExporterManager {
	manager := NewExporterManager()

	manager.RegisterExporter(NewHTMLExporter())
	manager.RegisterExporter(NewRTFExporter())
	manager.RegisterExporter(NewPDFExporter())

	return manager
}
