// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse turns the plain text of a LinkedIn resume export into a
// types.ResumeData record. Every function in the package is pure: it reads
// strings and returns values, and never fails on missing or odd input.
// Fields the heuristics cannot find are left empty.
package parse

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	reHyphenBreak  = regexp.MustCompile(`-\n`)
	reTrailingWS   = regexp.MustCompile(`[ \t]+\n`)
	reExtraNewline = regexp.MustCompile(`\n{3,}`)
)

// maxNormalizePasses bounds the fixed-point loop in Normalize. Each pass
// either shrinks the text or leaves it unchanged, so this is never reached
// on real exports.
const maxNormalizePasses = 16

// Normalize joins extracted pages and cleans the result: CRLF becomes LF,
// compatibility characters are folded (NFKC), words split by an end-of-line
// hyphen are rejoined, trailing blanks are dropped, runs of three or more
// newlines collapse to one blank line, and the whole text is trimmed.
//
// The steps repeat until nothing changes, so Normalize(Normalize(x)) is
// identical to Normalize(x).
func Normalize(pages []string) string {
	t := strings.Join(pages, "\n")
	t = strings.ReplaceAll(t, "\r\n", "\n")
	t = strings.ReplaceAll(t, "\r", "\n")

	for i := 0; i < maxNormalizePasses; i++ {
		next := cleanText(t)
		if next == t {
			break
		}
		t = next
	}
	return t
}

// NormalizeText is Normalize for text that is already a single string.
func NormalizeText(text string) string {
	return Normalize([]string{text})
}

func cleanText(t string) string {
	t = norm.NFKC.String(t)
	t = reHyphenBreak.ReplaceAllString(t, "")
	t = reTrailingWS.ReplaceAllString(t, "\n")
	t = reExtraNewline.ReplaceAllString(t, "\n\n")
	return strings.TrimSpace(t)
}
