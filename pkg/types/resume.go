// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Basics holds the identity and contact block at the top of a resume.
// Every field defaults to the empty string when the export does not carry it.
type Basics struct {
	Name     string `json:"name" yaml:"name"`
	Title    string `json:"title" yaml:"title"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	Location string `json:"location" yaml:"location"`

	// LinkedIn is the public profile URL as printed in the export
	// (e.g. "www.linkedin.com/in/jdoe").
	LinkedIn string `json:"linkedin" yaml:"linkedin"`

	// Summary is the About/Summary section flattened to a single line.
	Summary string `json:"summary" yaml:"summary"`
}

// Job is one entry of the Experience section.
type Job struct {
	Title   string `json:"title" yaml:"title"`
	Company string `json:"company" yaml:"company"`
	Start   string `json:"start" yaml:"start"`

	// End is "Present" for the current position and empty when the export
	// gives no end date, which leaves the end unknown.
	End string `json:"end,omitempty" yaml:"end,omitempty"`

	Location string   `json:"location" yaml:"location"`
	Bullets  []string `json:"bullets" yaml:"bullets"`
}

// Current reports whether the job ends "Present".
func (j Job) Current() bool {
	return strings.EqualFold(strings.TrimSpace(j.End), "present")
}

// Edu is one entry of the Education section.
type Edu struct {
	School string `json:"school" yaml:"school"`
	Degree string `json:"degree" yaml:"degree"`
	Start  string `json:"start" yaml:"start"`
	End    string `json:"end" yaml:"end"`
}

// ResumeData is the aggregate produced by one parse of an exported resume.
// It is built once, never mutated afterwards, and handed to a renderer.
type ResumeData struct {
	Basics     Basics   `json:"basics" yaml:"basics"`
	Experience []Job    `json:"experience" yaml:"experience"`
	Education  []Edu    `json:"education" yaml:"education"`
	Skills     []string `json:"skills" yaml:"skills"`
	Certs      []string `json:"certs" yaml:"certs"`
}

// NewResumeData returns a ResumeData whose list fields are empty but non-nil,
// so encoders emit [] rather than null.
func NewResumeData() ResumeData {
	return ResumeData{
		Experience: []Job{},
		Education:  []Edu{},
		Skills:     []string{},
		Certs:      []string{},
	}
}

// IsEmpty reports whether nothing at all was extracted.
func (r ResumeData) IsEmpty() bool {
	return r.Basics == (Basics{}) &&
		len(r.Experience) == 0 && len(r.Education) == 0 &&
		len(r.Skills) == 0 && len(r.Certs) == 0
}
