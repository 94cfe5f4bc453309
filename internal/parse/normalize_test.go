// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  string
	}{
		{
			name:  "joins pages with newlines",
			pages: []string{"page one", "page two"},
			want:  "page one\npage two",
		},
		{
			name:  "rejoins hyphenated line breaks",
			pages: []string{"Infra-\nstructure engineer"},
			want:  "Infrastructure engineer",
		},
		{
			name:  "strips trailing blanks before newlines",
			pages: []string{"line one  \t\nline two"},
			want:  "line one\nline two",
		},
		{
			name:  "collapses runs of blank lines",
			pages: []string{"a\n\n\n\n\nb"},
			want:  "a\n\nb",
		},
		{
			name:  "trims the whole text",
			pages: []string{"  \n\n  Jane Doe \n\n"},
			want:  "Jane Doe",
		},
		{
			name:  "converts CRLF line endings",
			pages: []string{"a\r\nb\rc"},
			want:  "a\nb\nc",
		},
		{
			name:  "folds ligatures",
			pages: []string{"ﬁnance and ﬂow"},
			want:  "finance and flow",
		},
		{
			name:  "blank pages contribute nothing",
			pages: []string{"", "content", ""},
			want:  "content",
		},
		{
			name:  "no pages",
			pages: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.pages))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Jane Doe\nSenior DevOps Engineer\n\n\n\nExperience\nFoo – Bar",
		"a -\n\nb",
		"a--\n\nb",
		"trailing   \n\n\n\n   \nspaces\t\t\n",
		"Soft-\nware  \nEngi-\nneer\n\n\n",
		"ﬁ\r\nle",
		"",
	}
	for _, in := range inputs {
		once := NormalizeText(in)
		twice := NormalizeText(once)
		assert.Equal(t, once, twice, "normalizing %q twice changed the result", in)
	}
}
