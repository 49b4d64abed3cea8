package report

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// SectionTitles are the top-level dossier sections recognized by the HTML
// formatter.
var SectionTitles = []string{
	"COMPANY INTELLIGENCE",
	"INDIVIDUAL PROFILE",
	"STRATEGIC NETWORKING INSIGHTS",
}

// SubsectionTitles are the second-level dossier sections.
var SubsectionTitles = []string{
	"Organization Profile",
	"Technology Infrastructure",
	"Recent Company Developments",
	"Professional Background",
	"Recent Personal Updates",
	"KEY HIGHLIGHTS",
	"CONVERSATION STARTERS & CONNECTION STRATEGY",
}

// fieldLabels are inline bold labels promoted to block-level divs.
var fieldLabels = []string{
	"Primary Approach",
	"Key Talking Points",
	"Follow-up Strategy",
	"Value Proposition",
	"LinkedIn Engagement",
	"Tech Stack",
	"Industry Focus",
	"Company Description",
	"Employee Count",
}

var (
	tripleNewlineRe = regexp.MustCompile(`\n{3,}`)
	titleLineRe     = regexp.MustCompile(`(?m)^(Networking Briefs|Create a networking dossier for each attendee:)\s*$`)
	execSummaryRe   = regexp.MustCompile(`\*\*Executive Summary\*\*`)
	attendeeNameRe  = regexp.MustCompile(`\*\*Attendee Name:\s*(.+?)\s*\*\*`)
	profilePhotoRe  = regexp.MustCompile(`(?m)^\*\*Profile Photo:\*\*[ \t]*(.*)$`)
	boldSpanRe      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	bulletItemRe    = regexp.MustCompile(`(?m)^- \*\*(.+?):\*\*[ \t]*(.*)$`)
	numberedItemRe  = regexp.MustCompile(`(?m)^\d+\. \*\*(.+?):\*\*[ \t]*(.*)$`)
	fieldLabelRe    = regexp.MustCompile(`\*\*(` + alternation(fieldLabels) + `):\*\*`)
	linkedInRe      = regexp.MustCompile(`\[LinkedIn\]\(([^)]+)\)`)
	emailRe         = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	dashDividerRe   = regexp.MustCompile(`(?m)^---\s*$`)
	equalsDividerRe = regexp.MustCompile(`(?m)^={50}\s*$`)
	tripleBreakRe   = regexp.MustCompile(`(?:<br>){3,}`)

	sectionBoldRe    = regexp.MustCompile(`\*\*(` + alternation(SectionTitles) + `)\*\*`)
	sectionLineRe    = regexp.MustCompile(`(?m)^(` + alternation(SectionTitles) + `)\s*$`)
	subsectionBoldRe = regexp.MustCompile(`\*\*(` + alternation(SubsectionTitles) + `)\*\*`)
	subsectionLineRe = regexp.MustCompile(`(?m)^(` + alternation(SubsectionTitles) + `)\s*$`)
)

// photoStrategies extract a profile-photo URL candidate, tried in priority
// order; the last capture group of the first matching pattern wins.
var photoStrategies = []*regexp.Regexp{
	regexp.MustCompile(`!\[[^\]]*\]\(([^)]+)\)`), // image markdown
	regexp.MustCompile(`\[[^\]]*\]\(([^)]+)\)`),  // link markdown
	regexp.MustCompile(`(https?://[^\s)]+)`),     // bare URL
	regexp.MustCompile(`\(([^)]+)\)`),            // parenthesized value
}

func alternation(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = regexp.QuoteMeta(v)
	}
	return strings.Join(quoted, "|")
}

// htmlRule is one step of the formatting pipeline. Rules run in order; each
// assumes the bold spans consumed by earlier rules are gone.
type htmlRule struct {
	name  string
	apply func(string) string
}

// htmlRules is the ordered substitution pipeline. The order is a correctness
// requirement: the generic bold-span rule must run after every rule that
// assigns a semantic role to a specific **...** span, and line-break
// conversion must run last.
var htmlRules = []htmlRule{
	{"normalize", func(s string) string {
		s = tripleNewlineRe.ReplaceAllString(s, "\n\n")
		return headingMarkerRe.ReplaceAllString(s, "")
	}},
	{"title-lines", func(s string) string {
		return titleLineRe.ReplaceAllString(s, `<h1 class="main-title">$1</h1>`)
	}},
	{"executive-summary", func(s string) string {
		return execSummaryRe.ReplaceAllString(s, `<h2 class="executive-summary">Executive Summary</h2>`)
	}},
	{"attendee-name", func(s string) string {
		return attendeeNameRe.ReplaceAllString(s, `<div class="attendee-name">$1 Networking Dossier</div>`)
	}},
	{"profile-photo", func(s string) string {
		return profilePhotoRe.ReplaceAllStringFunc(s, func(m string) string {
			content := profilePhotoRe.FindStringSubmatch(m)[1]
			return formatProfilePhoto(content)
		})
	}},
	{"section-titles", func(s string) string {
		s = sectionBoldRe.ReplaceAllString(s, `<h2 class="section-title">$1</h2>`)
		s = sectionLineRe.ReplaceAllString(s, `<h2 class="section-title">$1</h2>`)
		s = subsectionBoldRe.ReplaceAllString(s, `<h3 class="subsection-title">$1</h3>`)
		return subsectionLineRe.ReplaceAllString(s, `<h3 class="subsection-title">$1</h3>`)
	}},
	{"list-items", func(s string) string {
		s = bulletItemRe.ReplaceAllString(s, `<li><strong>$1:</strong> $2</li>`)
		return numberedItemRe.ReplaceAllString(s, `<li class="numbered"><strong>$1:</strong> $2</li>`)
	}},
	{"field-labels", func(s string) string {
		return fieldLabelRe.ReplaceAllString(s, `<div class="info-label">$1:</div>`)
	}},
	{"bold-spans", func(s string) string {
		return boldSpanRe.ReplaceAllStringFunc(s, func(m string) string {
			content := boldSpanRe.FindStringSubmatch(m)[1]
			// Long or structured spans are treated as company names
			// rather than emphasis and get a styled span instead of strong.
			if strings.ContainsAny(content, "|&") || utf8.RuneCountInString(content) > 10 {
				return `<span class="company-name">` + content + `</span>`
			}
			return `<strong class="company-name">` + content + `</strong>`
		})
	}},
	{"linkedin-links", func(s string) string {
		return linkedInRe.ReplaceAllString(s, `<a href="$1" target="_blank" class="linkedin-link">LinkedIn</a>`)
	}},
	{"email-links", func(s string) string {
		return emailRe.ReplaceAllString(s, `<a href="mailto:$0" class="email-link">$0</a>`)
	}},
	{"icp-indicator", func(s string) string {
		return strings.ReplaceAll(s, "An ICP: True", `<span class="icp-indicator">An ICP: True</span>`)
	}},
	{"dividers", func(s string) string {
		s = dashDividerRe.ReplaceAllString(s, `<hr class="section-divider">`)
		return equalsDividerRe.ReplaceAllString(s, `<hr class="section-divider">`)
	}},
	{"line-breaks", func(s string) string {
		s = strings.ReplaceAll(s, "\n", "<br>")
		return tripleBreakRe.ReplaceAllString(s, "<br><br>")
	}},
}

// FormatHTML converts one report block into an HTML fragment for in-app
// display. The input is trusted workflow output; this is a formatter, not a
// sanitizer, and attacker-controlled text must not be routed through it.
func FormatHTML(text string) string {
	for _, rule := range htmlRules {
		text = rule.apply(text)
	}
	return text
}

// FormatBlocksHTML formats each report block independently and joins the
// fragments with a divider, one section per attendee.
func FormatBlocksHTML(blocks []string) string {
	fragments := make([]string, len(blocks))
	for i, block := range blocks {
		fragments[i] = FormatHTML(block)
	}
	return strings.Join(fragments, `<hr class="section-divider">`)
}

// formatProfilePhoto renders the content of a **Profile Photo:** line. When
// a usable URL is found, the image falls back to a plain link if it fails to
// load; otherwise a placeholder is emitted.
func formatProfilePhoto(content string) string {
	url, ok := extractPhotoURL(content)
	if !ok || !strings.HasPrefix(url, "http") {
		return `<div class="profile-photo-placeholder">Profile Photo Not Available</div>`
	}
	return fmt.Sprintf(`<div class="profile-photo-container">`+
		`<img src="%s" alt="Profile Photo" class="profile-photo" `+
		`onerror="this.onerror=null;this.outerHTML='<a href=&quot;%s&quot; target=&quot;_blank&quot; class=&quot;profile-photo-link&quot;>View Profile Photo</a>';">`+
		`</div>`, url, url)
}

// extractPhotoURL runs the photo strategies in order and returns the first
// candidate found.
func extractPhotoURL(content string) (string, bool) {
	for _, re := range photoStrategies {
		if m := re.FindStringSubmatch(content); m != nil {
			return m[len(m)-1], true
		}
	}
	return "", false
}
