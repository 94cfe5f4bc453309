// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"strings"

	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

// SectionName identifies a recognized resume section.
type SectionName string

const (
	// SectionHeader is the synthetic section holding text before the first
	// recognized header: name, headline and contact details.
	SectionHeader SectionName = "Header"

	SectionAbout          SectionName = "About"
	SectionSummary        SectionName = "Summary"
	SectionExperience     SectionName = "Experience"
	SectionEducation      SectionName = "Education"
	SectionLicensesCerts  SectionName = "Licenses & Certifications"
	SectionCertifications SectionName = "Certifications"
	SectionSkills         SectionName = "Skills"
	SectionProjects       SectionName = "Projects"
	SectionVolunteer      SectionName = "Volunteer"
	SectionOrganizations  SectionName = "Organizations"
)

// vocabulary is the closed list of header lines the splitter recognizes,
// in the order LinkedIn prints them. SectionHeader is never matched from text.
var vocabulary = []SectionName{
	SectionAbout,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionLicensesCerts,
	SectionCertifications,
	SectionSkills,
	SectionProjects,
	SectionVolunteer,
	SectionOrganizations,
}

// headerLookup maps the exact header line text to its section.
var headerLookup = func() map[string]SectionName {
	m := make(map[string]SectionName, len(vocabulary))
	for _, s := range vocabulary {
		m[string(s)] = s
	}
	return m
}()

// Vocabulary returns the recognized section headers in print order.
func Vocabulary() []SectionName {
	out := make([]SectionName, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// LookupSection reports the section a line introduces, if any. The line
// matches only when its trimmed text equals a header exactly.
func LookupSection(line string) (SectionName, bool) {
	s, ok := headerLookup[strings.TrimSpace(line)]
	return s, ok
}

// Block is one section occurrence in document order.
type Block struct {
	Name SectionName

	// Line is the header line as it appeared; empty for SectionHeader.
	Line string

	// Body is the trimmed text between this header and the next.
	Body string
}

// SplitBlocks partitions text into section blocks in document order.
// Repeated headers produce repeated blocks. Text before the first header
// becomes a SectionHeader block only when it is not blank.
func SplitBlocks(text string) []Block {
	var (
		blocks  []Block
		current = Block{Name: SectionHeader}
		body    []string
	)

	flush := func() {
		current.Body = strings.TrimSpace(strings.Join(body, "\n"))
		if current.Name != SectionHeader || current.Body != "" {
			blocks = append(blocks, current)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if name, ok := LookupSection(line); ok {
			flush()
			current = Block{Name: name, Line: line}
			body = body[:0]
			continue
		}
		body = append(body, line)
	}
	flush()

	return blocks
}

// Sections maps section names to their bodies.
type Sections map[SectionName]string

// Has reports whether the section occurred in the text.
func (s Sections) Has(name SectionName) bool {
	_, ok := s[name]
	return ok
}

// Get returns the body of the section, or "" when absent.
func (s Sections) Get(name SectionName) string {
	return s[name]
}

// KeepBlocks applies a duplicate policy to blocks and returns the ones it
// keeps, still in document order. DuplicatesFirst and DuplicatesLast keep
// one block per section name; DuplicatesConcat (or empty) keeps them all.
func KeepBlocks(blocks []Block, policy types.DuplicatePolicy) []Block {
	if policy != types.DuplicatesFirst && policy != types.DuplicatesLast {
		return blocks
	}
	keep := make(map[SectionName]int, len(blocks))
	for i, b := range blocks {
		if _, seen := keep[b.Name]; !seen || policy == types.DuplicatesLast {
			keep[b.Name] = i
		}
	}
	out := make([]Block, 0, len(keep))
	for i, b := range blocks {
		if keep[b.Name] == i {
			out = append(out, b)
		}
	}
	return out
}

// SplitSections partitions text into named sections, resolving repeated
// headers with the given policy. An empty policy means DuplicatesConcat,
// which joins repeated bodies with a blank line.
func SplitSections(text string, policy types.DuplicatePolicy) Sections {
	return collect(KeepBlocks(SplitBlocks(text), policy))
}

func collect(blocks []Block) Sections {
	sections := make(Sections)
	for _, b := range blocks {
		sections[b.Name] = joinBodies(sections[b.Name], b.Body)
	}
	return sections
}

func joinBodies(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "\n\n" + b
	}
}
