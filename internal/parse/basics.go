// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"

	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

var (
	reEmail    = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	rePhone    = regexp.MustCompile(`(\+\d{1,2}\s*)?(\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4})`)
	reLinkedIn = regexp.MustCompile(`(https?://)?(www\.)?linkedin\.com/[^\s]+`)
)

// Location patterns, tried in order on each candidate line.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(?:Located in|Location)\b:?\s*(.+)$`),
	regexp.MustCompile(`Greater [\w ]*\w`),
	regexp.MustCompile(`[A-Za-z][A-Za-z ]*, [A-Z]{2}\b`),
}

// ParseBasics reads the identity block that precedes the first section.
// The first non-blank line is the name, the second the headline; email,
// phone and profile URL are the first matches anywhere in the block.
func ParseBasics(header string) types.Basics {
	lines := nonBlankLines(header)

	var b types.Basics
	if len(lines) > 0 {
		b.Name = strings.TrimSpace(lines[0])
	}
	if len(lines) > 1 {
		b.Title = strings.TrimSpace(lines[1])
	}

	all := strings.Join(lines, " ")
	b.Email = reEmail.FindString(all)
	b.Phone = strings.TrimSpace(rePhone.FindString(all))
	b.LinkedIn = reLinkedIn.FindString(all)
	b.Location = findLocation(lines)
	return b
}

// findLocation scans line by line so a match never runs into the next line.
// Lines after the headline are tried first; the headline itself is the
// fallback because titles such as "Director, HR" look like "City, ST".
func findLocation(lines []string) string {
	if len(lines) < 2 {
		return ""
	}
	candidates := append(append([]string{}, lines[2:]...), lines[1])
	for _, line := range candidates {
		line = strings.TrimSpace(line)
		for _, re := range locationPatterns {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			loc := m[0]
			if len(m) > 1 {
				loc = m[1]
			}
			loc = strings.ReplaceAll(loc, "Located in", "")
			loc = strings.ReplaceAll(loc, "Location", "")
			if loc = strings.TrimSpace(loc); loc != "" {
				return loc
			}
		}
	}
	return ""
}

// ParseSummary flattens an About or Summary body to one line.
func ParseSummary(block string) string {
	return strings.TrimSpace(strings.ReplaceAll(block, "\n", " "))
}
