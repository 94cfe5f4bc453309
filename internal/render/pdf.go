// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

var (
	reEmphasis = regexp.MustCompile(`\*\*([^*]+)\*\*|_([^_]+)_`)
	reListItem = regexp.MustCompile(`^[-*]\s+`)
)

// PDF lays out rendered Markdown as a plain A4 document. Headings become
// bold lines, list items get a bullet and emphasis markers are dropped.
// It does not attempt full Markdown layout.
func PDF(markdown string) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetFont("Helvetica", "", 11)
	doc.AddPage()

	scanner := bufio.NewScanner(strings.NewReader(markdown))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			doc.Ln(3)
			continue
		}
		if strings.HasPrefix(s, "#") {
			i := 0
			for i < len(s) && s[i] == '#' {
				i++
			}
			text := plain(strings.TrimSpace(s[i:]))
			if text == "" {
				continue
			}
			size := 16.0
			switch {
			case i == 2:
				size = 13.0
			case i >= 3:
				size = 11.5
			}
			doc.SetFont("Helvetica", "B", size)
			doc.MultiCell(0, size*0.5, tr(text), "", "L", false)
			doc.SetFont("Helvetica", "", 11)
			continue
		}
		if loc := reListItem.FindStringIndex(s); loc != nil {
			doc.MultiCell(0, 5, tr("• "+plain(s[loc[1]:])), "", "L", false)
			continue
		}
		doc.MultiCell(0, 5, tr(plain(s)), "", "L", false)
	}
	if err := scanner.Err(); err != nil {
		return nil, &RenderError{Format: string(types.OutputPDF), Message: "failed to read markdown", Cause: err}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &RenderError{Format: string(types.OutputPDF), Message: "failed to write document", Cause: err}
	}
	return buf.Bytes(), nil
}

// plain strips bold and italic markers.
func plain(s string) string {
	return reEmphasis.ReplaceAllString(s, "$1$2")
}
