// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

// summarySections are tried in order; the first non-empty one wins.
var summarySections = []SectionName{SectionAbout, SectionSummary}

// Parser assembles a ResumeData from normalized text.
type Parser struct {
	// Duplicates resolves repeated section headers. Empty means concat.
	Duplicates types.DuplicatePolicy
}

// NewParser returns a Parser configured from cfg.
func NewParser(cfg types.ParseConfig) Parser {
	return Parser{Duplicates: cfg.Duplicates}
}

// ParseResume parses text with the default Parser.
func ParseResume(text string) types.ResumeData {
	return Parser{}.Parse(text)
}

// Parse splits text into section blocks once and runs each field
// extractor on every block the duplicate policy keeps, appending results
// in document order. Skills are de-duplicated across blocks. Absent
// sections leave the matching field empty; Parse never fails.
func (p Parser) Parse(text string) types.ResumeData {
	blocks := KeepBlocks(SplitBlocks(text), p.Duplicates)
	data := types.NewResumeData()

	var skills []string
	for _, b := range blocks {
		switch b.Name {
		case SectionHeader:
			data.Basics = ParseBasics(b.Body)
		case SectionExperience:
			data.Experience = append(data.Experience, ParseExperience(b.Body)...)
		case SectionEducation:
			data.Education = append(data.Education, ParseEducation(b.Body)...)
		case SectionSkills:
			skills = append(skills, ParseSkills(b.Body)...)
		case SectionLicensesCerts, SectionCertifications:
			data.Certs = append(data.Certs, ParseCerts(b.Body)...)
		}
	}
	data.Skills = uniqueFold(skills)

	sections := collect(blocks)
	for _, name := range summarySections {
		if s := ParseSummary(sections.Get(name)); s != "" {
			data.Basics.Summary = s
			break
		}
	}
	return data
}
