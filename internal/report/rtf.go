package report

import (
	"fmt"
	"regexp"
	"strings"
)

// rtfHeader opens the document with one font table entry and the color
// table: cf1 black (default), cf2 link blue, cf3 accent green. The colors
// mirror the class conventions of the HTML formatter so both exports read
// alike.
const rtfHeader = `{\rtf1\ansi\deff0 {\fonttbl{\f0 Helvetica;}}{\colortbl;\red0\green0\blue0;\red0\green102\blue204;\red46\green125\blue50;}`

// dossierTitle is the report preamble line emitted by the workflow.
const dossierTitle = "Create a networking dossier for each attendee:"

// linkedInLookahead is how many lines past an attendee name the composer
// scans for a LinkedIn link. The bound is load-bearing; widening or
// narrowing it changes which links are associated with which attendee.
const linkedInLookahead = 10

// RTFSectionTitles are the top-level sections recognized as exact lines.
var RTFSectionTitles = []string{
	"COMPANY INTELLIGENCE",
	"INDIVIDUAL PROFILE",
	"STRATEGIC NETWORKING INSIGHTS",
	"RELATIONSHIP NOTES",
}

// RTFSubsectionTitles are the subsection labels recognized as exact lines.
var RTFSubsectionTitles = []string{
	"Organization Profile",
	"Technology Infrastructure",
	"Recent Company Developments",
	"Professional Background",
	"Recent Personal Updates",
	"KEY HIGHLIGHTS",
	"CONVERSATION STARTERS & CONNECTION STRATEGY",
	"Executive Summary",
	"Mutual Connections",
}

// boldPrefixes introduce contact-detail lines rendered with a bold label.
var boldPrefixes = []string{
	"Contact:",
	"Current Role:",
	"Location:",
	"Industry:",
	"Company Size:",
}

var (
	rtfAttendeeRe = regexp.MustCompile(`^(?:#{1,6} )?Attendee Name:\s*(.+)$`)
	numberedRe    = regexp.MustCompile(`^\d+\. `)
)

const (
	rtfThinRule  = `{\pard\brdrb\brdrs\brdrw10\sa120 \par}`
	rtfThickRule = `{\pard\brdrb\brdrs\brdrw30\sa120 \par}`
)

// escapeRTF escapes the characters RTF reserves. Backslash goes first so
// injected brace escapes are not escaped again.
func escapeRTF(line string) string {
	line = strings.ReplaceAll(line, `\`, `\\`)
	line = strings.ReplaceAll(line, `{`, `\{`)
	line = strings.ReplaceAll(line, `}`, `\}`)
	return line
}

// ComposeRTF converts cleaned report text into an RTF document, one styled
// paragraph per input line. Input should already have been through
// CleanMarkdown; stray markup is carried into the output verbatim.
func ComposeRTF(text string) string {
	lines := strings.Split(text, "\n")

	var b strings.Builder
	b.WriteString(rtfHeader)
	b.WriteString("\n")

	for i, raw := range lines {
		line := escapeRTF(strings.TrimSpace(raw))

		switch {
		case line == dossierTitle:
			fmt.Fprintf(&b, "{\\f0\\fs32\\b\\cf3 %s\\par}\n", line)

		case rtfAttendeeRe.MatchString(line):
			name := rtfAttendeeRe.FindStringSubmatch(line)[1]
			fmt.Fprintf(&b, "{\\f0\\fs28\\b\\cf3 %s\\par}\n", name)
			if url, ok := findLinkedInURL(lines, i); ok {
				fmt.Fprintf(&b, "{\\f0\\fs20\\cf2 LinkedIn Profile: %s\\par}\n", escapeRTF(url))
			} else {
				b.WriteString("{\\f0\\fs20\\cf2 LinkedIn Profile\\par}\n")
			}

		case containsString(RTFSectionTitles, line):
			fmt.Fprintf(&b, "{\\f0\\fs26\\b\\cf3 %s\\par}\n", line)

		case containsString(RTFSubsectionTitles, line):
			fmt.Fprintf(&b, "{\\f0\\fs22\\b\\cf3 %s\\par}\n", line)

		case strings.HasPrefix(line, "\u2022 ") || strings.HasPrefix(line, "- "):
			marker := "- "
			if strings.HasPrefix(line, "\u2022 ") {
				marker = "\u2022 "
			}
			fmt.Fprintf(&b, "{\\f0\\fs20\\li360 \\bullet  %s\\par}\n", strings.TrimPrefix(line, marker))

		case numberedRe.MatchString(line):
			fmt.Fprintf(&b, "{\\f0\\fs20\\li360 %s\\par}\n", line)

		case hasBoldPrefix(line) != "":
			prefix := hasBoldPrefix(line)
			rest := strings.TrimSpace(strings.TrimPrefix(line, prefix))
			fmt.Fprintf(&b, "{\\f0\\fs20 {\\b %s} %s\\par}\n", prefix, rest)

		case line == "---":
			b.WriteString(rtfThinRule + "\n")

		case line == "":
			b.WriteString("\\par\n")

		case line == BlockSeparator:
			b.WriteString(rtfThickRule + "\n\\par\n")

		default:
			fmt.Fprintf(&b, "{\\f0\\fs20 %s\\par}\n", line)
		}
	}

	b.WriteString("}")
	return b.String()
}

// findLinkedInURL scans up to linkedInLookahead lines past the attendee
// name for a [LinkedIn](url) link.
func findLinkedInURL(lines []string, from int) (string, bool) {
	for j := from + 1; j <= from+linkedInLookahead && j < len(lines); j++ {
		if m := linkedInRe.FindStringSubmatch(lines[j]); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

func hasBoldPrefix(line string) string {
	for _, prefix := range boldPrefixes {
		if strings.HasPrefix(line, prefix) {
			return prefix
		}
	}
	return ""
}
