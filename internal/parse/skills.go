// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var reSkillSep = regexp.MustCompile(`[|,•]`)

// ParseSkills splits a Skills body on commas, pipes and bullets. Entries
// are trimmed and de-duplicated without regard to case; the first spelling
// and the first-seen order win.
func ParseSkills(block string) []string {
	text := strings.ReplaceAll(block, "\n", " ")
	return uniqueFold(reSkillSep.Split(text, -1))
}

// uniqueFold trims items and drops blanks and case-folded repeats.
func uniqueFold(items []string) []string {
	fold := cases.Fold()
	seen := make(map[string]bool)
	out := []string{}
	for _, item := range items {
		s := strings.TrimSpace(item)
		if s == "" {
			continue
		}
		key := fold.String(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

// ParseCerts returns one certification per non-blank line with bullet
// markers removed. Order is kept and repeats are not collapsed.
func ParseCerts(block string) []string {
	certs := []string{}
	for _, l := range nonBlankLines(block) {
		if c := stripBullet(l); c != "" {
			certs = append(certs, c)
		}
	}
	return certs
}
