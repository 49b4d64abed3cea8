package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHTMLTitleLines(t *testing.T) {
	out := FormatHTML("# Networking Briefs")
	assert.Contains(t, out, `<h1 class="main-title">Networking Briefs</h1>`)

	out = FormatHTML("Create a networking dossier for each attendee:")
	assert.Contains(t, out, `<h1 class="main-title">Create a networking dossier for each attendee:</h1>`)
}

func TestFormatHTMLExecutiveSummary(t *testing.T) {
	out := FormatHTML("**Executive Summary**")
	assert.Contains(t, out, `<h2 class="executive-summary">Executive Summary</h2>`)
}

func TestFormatHTMLAttendeeName(t *testing.T) {
	out := FormatHTML("**Attendee Name: Jane Doe**")
	assert.Contains(t, out, `<div class="attendee-name">Jane Doe Networking Dossier</div>`)
}

func TestFormatHTMLProfilePhotoImageMarkdown(t *testing.T) {
	out := FormatHTML("**Profile Photo:** ![alt](https://x/y.jpg)")
	assert.Contains(t, out, `<img src="https://x/y.jpg"`)
	assert.Contains(t, out, "onerror=")
	assert.Contains(t, out, "View Profile Photo")
}

func TestFormatHTMLProfilePhotoLinkMarkdown(t *testing.T) {
	out := FormatHTML("**Profile Photo:** [photo](https://x/p.png)")
	assert.Contains(t, out, `<img src="https://x/p.png"`)
}

func TestFormatHTMLProfilePhotoBareURL(t *testing.T) {
	out := FormatHTML("**Profile Photo:** see https://x/bare.jpg today")
	assert.Contains(t, out, `<img src="https://x/bare.jpg"`)
}

func TestFormatHTMLProfilePhotoNonHTTPCandidate(t *testing.T) {
	out := FormatHTML("**Profile Photo:** (not available)")
	assert.Contains(t, out, "Profile Photo Not Available")
	assert.NotContains(t, out, "<img")
}

func TestFormatHTMLProfilePhotoMissing(t *testing.T) {
	out := FormatHTML("**Profile Photo:** no-url-here")
	assert.Contains(t, out, "Profile Photo Not Available")
	assert.NotContains(t, out, "<img")
}

func TestFormatHTMLSectionTitles(t *testing.T) {
	out := FormatHTML("**COMPANY INTELLIGENCE**\nINDIVIDUAL PROFILE")
	assert.Contains(t, out, `<h2 class="section-title">COMPANY INTELLIGENCE</h2>`)
	assert.Contains(t, out, `<h2 class="section-title">INDIVIDUAL PROFILE</h2>`)

	out = FormatHTML("**Organization Profile**\nCONVERSATION STARTERS & CONNECTION STRATEGY")
	assert.Contains(t, out, `<h3 class="subsection-title">Organization Profile</h3>`)
	assert.Contains(t, out, `<h3 class="subsection-title">CONVERSATION STARTERS & CONNECTION STRATEGY</h3>`)
}

func TestFormatHTMLBulletItems(t *testing.T) {
	out := FormatHTML("- **Role:** Engineer")
	assert.Contains(t, out, `<li><strong>Role:</strong> Engineer</li>`)

	out = FormatHTML("1. **Step:** Say hello")
	assert.Contains(t, out, `<li class="numbered"><strong>Step:</strong> Say hello</li>`)
}

func TestFormatHTMLFieldLabels(t *testing.T) {
	out := FormatHTML("**Tech Stack:** Go, Postgres")
	assert.Contains(t, out, `<div class="info-label">Tech Stack:</div>`)
	assert.Contains(t, out, "Go, Postgres")
}

func TestFormatHTMLBoldSpanHeuristic(t *testing.T) {
	// Short plain span: strong
	out := FormatHTML("Hello **World**")
	assert.Contains(t, out, `<strong class="company-name">World</strong>`)
	assert.NotContains(t, out, "**")

	// Longer than 10 characters: span
	out = FormatHTML("**A Very Long Company Name**")
	assert.Contains(t, out, `<span class="company-name">A Very Long Company Name</span>`)

	// Structured content: span even when short
	out = FormatHTML("**A&B**")
	assert.Contains(t, out, `<span class="company-name">A&B</span>`)
	out = FormatHTML("**a|b**")
	assert.Contains(t, out, `<span class="company-name">a|b</span>`)
}

func TestFormatHTMLLinkedIn(t *testing.T) {
	out := FormatHTML("[LinkedIn](https://linkedin.com/in/jane)")
	assert.Contains(t, out, `<a href="https://linkedin.com/in/jane" target="_blank" class="linkedin-link">LinkedIn</a>`)
}

func TestFormatHTMLEmail(t *testing.T) {
	out := FormatHTML("Reach out to jane@example.com for intros")
	assert.Contains(t, out, `<a href="mailto:jane@example.com" class="email-link">jane@example.com</a>`)
}

func TestFormatHTMLICPIndicator(t *testing.T) {
	out := FormatHTML("An ICP: True")
	assert.Contains(t, out, `<span class="icp-indicator">An ICP: True</span>`)
}

func TestFormatHTMLDividers(t *testing.T) {
	out := FormatHTML("a\n---\nb")
	assert.Contains(t, out, `<hr class="section-divider">`)

	out = FormatHTML("a\n" + strings.Repeat("=", 50) + "\nb")
	assert.Contains(t, out, `<hr class="section-divider">`)
}

func TestFormatHTMLLineBreaks(t *testing.T) {
	out := FormatHTML("a\nb")
	assert.Contains(t, out, "a<br>b")

	// Triple breaks collapse to double
	out = FormatHTML("a\n\nb")
	assert.NotContains(t, out, "<br><br><br>")
}

func TestFormatBlocksHTMLIndependentSections(t *testing.T) {
	blocks := []string{
		"**Attendee Name: Jane Doe**\n- **Role:** CTO",
		"**Attendee Name: John Smith**\n- **Role:** CEO",
	}
	out := FormatBlocksHTML(blocks)
	assert.Equal(t, 2, strings.Count(out, `class="attendee-name"`))
	assert.Contains(t, out, "Jane Doe Networking Dossier")
	assert.Contains(t, out, "John Smith Networking Dossier")
}
