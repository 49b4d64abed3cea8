package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewBriefingAssignsID(t *testing.T) {
	a := NewBriefing("data.csv", "raw", []string{"raw"})
	b := NewBriefing("data.csv", "raw", []string{"raw"})
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestArtifactNameCarriesISODate(t *testing.T) {
	b := NewBriefing("data.csv", "raw", []string{"raw"})
	b.ReceivedAt = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Conference_Networking_Briefs_2026-08-31.rtf", b.ArtifactName(FormatRTF))
	assert.Equal(t, "Conference_Networking_Briefs_2026-08-31.html", b.ArtifactName(FormatHTML))
	assert.Equal(t, "Conference_Networking_Briefs_2026-08-31.pdf", b.ArtifactName(FormatPDF))
}
