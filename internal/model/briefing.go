// Package model contains data structures used in the briefs processor
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Format represents supported export formats
type Format string

// Supported export formats
const (
	FormatHTML Format = "html"
	FormatRTF  Format = "rtf"
	FormatPDF  Format = "pdf"
)

// Briefing represents one processed webhook response: the raw body plus the
// report blocks extracted from it, one block per attendee.
type Briefing struct {
	// ID is a unique identifier for the briefing
	ID string

	// SourceName is the filename of the uploaded CSV
	SourceName string

	// Raw is the webhook response body as received
	Raw string

	// Blocks are the attendee report texts, in response order
	Blocks []string

	// ReceivedAt is the time the webhook response arrived
	ReceivedAt time.Time
}

// NewBriefing creates a Briefing from a webhook response body and its blocks
func NewBriefing(sourceName, raw string, blocks []string) *Briefing {
	return &Briefing{
		ID:         uuid.NewString(),
		SourceName: sourceName,
		Raw:        raw,
		Blocks:     blocks,
		ReceivedAt: time.Now(),
	}
}

// ArtifactName returns the download filename for an export of this briefing,
// e.g. Conference_Networking_Briefs_2026-08-31.rtf
func (b *Briefing) ArtifactName(format Format) string {
	return fmt.Sprintf("Conference_Networking_Briefs_%s.%s", b.ReceivedAt.Format("2006-01-02"), format)
}
