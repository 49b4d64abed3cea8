package report

import (
	"regexp"
	"strings"
)

var (
	doubleUnderscoreRe = regexp.MustCompile(`__(.*?)__`)
	asteriskRe         = regexp.MustCompile(`\*(.*?)\*`)
	underscoreRe       = regexp.MustCompile(`_(.*?)_`)
	headingMarkerRe    = regexp.MustCompile(`(?m)^#{1,6} `)
	inlineCodeRe       = regexp.MustCompile("`(.*?)`")
	linkOrImageRe      = regexp.MustCompile(`!?\[([^\]]*)\]\(([^)]*)\)`)
	imageRe            = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	blankRunRe         = regexp.MustCompile(`\n{3,}`)
)

// CleanMarkdown strips markdown syntax from report text for plain-text
// output. The strip order is significant: emphasis goes before link
// collapsing so that **[text](url)** is not interpreted twice, and link
// collapsing skips image syntax so the profile-photo rule still sees it.
// Cleaning is idempotent.
func CleanMarkdown(text string) string {
	text = doubleUnderscoreRe.ReplaceAllString(text, "$1")
	text = asteriskRe.ReplaceAllString(text, "$1")
	text = underscoreRe.ReplaceAllString(text, "$1")
	text = headingMarkerRe.ReplaceAllString(text, "")
	text = inlineCodeRe.ReplaceAllString(text, "$1")
	text = linkOrImageRe.ReplaceAllStringFunc(text, func(m string) string {
		if strings.HasPrefix(m, "!") {
			return m
		}
		return linkOrImageRe.FindStringSubmatch(m)[1]
	})
	text = imageRe.ReplaceAllString(text, "[Profile Photo]")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
