// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

func TestParseBasics(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   types.Basics
	}{
		{
			name: "full contact block",
			header: "Jane Doe\nSenior DevOps Engineer at Acme\nAustin, TX\n" +
				"jane.doe@example.com\n+1 (555) 123-4567\nwww.linkedin.com/in/janedoe",
			want: types.Basics{
				Name:     "Jane Doe",
				Title:    "Senior DevOps Engineer at Acme",
				Email:    "jane.doe@example.com",
				Phone:    "+1 (555) 123-4567",
				Location: "Austin, TX",
				LinkedIn: "www.linkedin.com/in/janedoe",
			},
		},
		{
			name:   "blank lines are skipped",
			header: "\n  Jane Doe  \n\n\tPlatform Lead\n",
			want:   types.Basics{Name: "Jane Doe", Title: "Platform Lead"},
		},
		{
			name:   "name only",
			header: "Jane Doe",
			want:   types.Basics{Name: "Jane Doe"},
		},
		{
			name:   "empty block",
			header: "",
			want:   types.Basics{},
		},
		{
			name:   "located in prefix is stripped",
			header: "Jane Doe\nEngineer\nLocated in Seattle, Washington",
			want:   types.Basics{Name: "Jane Doe", Title: "Engineer", Location: "Seattle, Washington"},
		},
		{
			name:   "location prefix is stripped",
			header: "Jane Doe\nEngineer\nLocation: Berlin",
			want:   types.Basics{Name: "Jane Doe", Title: "Engineer", Location: "Berlin"},
		},
		{
			name:   "greater area",
			header: "Jane Doe\nDirector, HR\nGreater Boston Area",
			want:   types.Basics{Name: "Jane Doe", Title: "Director, HR", Location: "Greater Boston Area"},
		},
		{
			name:   "full profile url",
			header: "Jane Doe\nEngineer\nhttps://www.linkedin.com/in/jane-doe-42 (LinkedIn)",
			want:   types.Basics{Name: "Jane Doe", Title: "Engineer", LinkedIn: "https://www.linkedin.com/in/jane-doe-42"},
		},
		{
			name:   "dotted phone without country code",
			header: "Jane Doe\nEngineer\n555.123.4567",
			want:   types.Basics{Name: "Jane Doe", Title: "Engineer", Phone: "555.123.4567"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBasics(tt.header))
		})
	}
}

func TestParseSummary(t *testing.T) {
	assert.Equal(t, "Builds reliable systems. Likes Go.", ParseSummary("Builds reliable systems.\nLikes Go.\n"))
	assert.Equal(t, "", ParseSummary("  \n "))
}
