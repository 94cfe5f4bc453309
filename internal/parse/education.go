// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"

	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

var (
	reYear = regexp.MustCompile(`\b(\d{4})\b`)

	// reInlineYears matches LinkedIn's "Degree · (2012 - 2016)" suffix.
	reInlineYears = regexp.MustCompile(`\s*·\s*\(([^)]*\d{4}[^)]*)\)\s*$`)
)

// ParseEducation reads the Education body, one school per blank-line
// separated chunk: school, then degree, then any lines holding years.
func ParseEducation(block string) []types.Edu {
	edus := []types.Edu{}
	for _, chunk := range chunks(block) {
		var lines []string
		for _, l := range nonBlankLines(chunk) {
			lines = append(lines, strings.TrimSpace(l))
		}
		if len(lines) == 0 {
			continue
		}

		edu := types.Edu{School: lines[0]}
		var dates string
		if len(lines) > 1 {
			edu.Degree = lines[1]
		}
		if len(lines) > 2 {
			dates = strings.Join(lines[2:], " ")
		} else if m := reInlineYears.FindStringSubmatchIndex(edu.Degree); m != nil {
			dates = edu.Degree[m[2]:m[3]]
			edu.Degree = strings.TrimSpace(edu.Degree[:m[0]])
		}

		edu.Start, edu.End = yearSpan(dates)
		edus = append(edus, edu)
	}
	return edus
}

// yearSpan returns the first and second four-digit years in s. A single
// year is both start and end.
func yearSpan(s string) (start, end string) {
	years := reYear.FindAllString(s, -1)
	switch len(years) {
	case 0:
		return "", ""
	case 1:
		return years[0], years[0]
	default:
		return years[0], years[1]
	}
}
