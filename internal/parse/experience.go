// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"

	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

var (
	reChunkBreak = regexp.MustCompile(`\n\s*\n`)
	reBullet     = regexp.MustCompile(`^(?:[•●▪◦‣∙*]+|-(?:\s|$))\s*`)

	// reTitleCompany splits "Title – Company" on a spaced dash.
	reTitleCompany = regexp.MustCompile(`^(.*?)\s+[–—-]\s+(.*)$`)

	// reDate matches "Month Year", a bare year, or "Present".
	reDate = regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+\d{4}\b|\b\d{4}\b|\bpresent\b`)

	// reDotLocation captures the text after a middle dot at the end of a line.
	reDotLocation = regexp.MustCompile(`·\s*([A-Za-z.\s,-]+)$`)
)

// chunks splits a section body into blank-line separated entries.
func chunks(block string) []string {
	block = strings.TrimSpace(block)
	if block == "" {
		return nil
	}
	return reChunkBreak.Split(block, -1)
}

// nonBlankLines returns the lines of s that contain something besides whitespace.
func nonBlankLines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// stripBullet removes a leading bullet marker and surrounding blanks.
func stripBullet(line string) string {
	line = strings.TrimSpace(line)
	line = reBullet.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}

// ParseExperience reads the Experience body, one job per blank-line
// separated chunk. The first line is "Title – Company", the second carries
// dates and an optional "· Location" suffix, and the rest are bullets.
func ParseExperience(block string) []types.Job {
	jobs := []types.Job{}
	for _, chunk := range chunks(block) {
		var lines []string
		for _, l := range nonBlankLines(chunk) {
			if l = stripBullet(l); l != "" {
				lines = append(lines, l)
			}
		}
		if len(lines) == 0 {
			continue
		}

		job := types.Job{Title: lines[0], Bullets: []string{}}
		if m := reTitleCompany.FindStringSubmatch(lines[0]); m != nil {
			job.Title, job.Company = m[1], m[2]
		}

		if len(lines) > 1 {
			job.Start, job.End = dateSpan(lines[1])
			job.Location = dotLocation(lines[1])
		}
		if len(lines) > 2 {
			job.Bullets = append(job.Bullets, lines[2:]...)
		}
		jobs = append(jobs, job)
	}
	return jobs
}

// dateSpan returns the first two date tokens of a line. A single token
// leaves end empty, unless it is "Present", which is always an end.
func dateSpan(line string) (start, end string) {
	found := reDate.FindAllString(line, 2)
	switch len(found) {
	case 0:
	case 1:
		if strings.EqualFold(found[0], "present") {
			return "", found[0]
		}
		start = found[0]
	default:
		start, end = found[0], found[1]
	}
	return start, end
}

func dotLocation(line string) string {
	m := reDotLocation.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
