// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts plain text from PDF files, one string per page.
// Two backends are available: a pure-Go reader of the embedded text layer
// and poppler's pdftotext. Scanned (image-only) pages yield empty strings.
package pdftext

import (
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

// Extractor returns the text of each page of a PDF in page order.
type Extractor interface {
	// Name identifies the backend in logs ("native" or "poppler").
	Name() string

	// Pages reads the PDF at path. Pages without a text layer are "".
	Pages(ctx context.Context, path string) ([]string, error)
}

// New returns the extractor for backend. An empty backend selects native.
func New(backend types.ExtractBackend) (Extractor, error) {
	switch backend {
	case types.BackendNative, "":
		return Native{}, nil
	case types.BackendPoppler:
		return NewPoppler(), nil
	default:
		return nil, fmt.Errorf("unknown extraction backend %q: use native or poppler", backend)
	}
}

// Native reads the text layer with github.com/ledongthuc/pdf.
type Native struct{}

// Name implements Extractor.
func (Native) Name() string { return string(types.BackendNative) }

// Pages implements Extractor. Fonts are cached across pages so shared
// font dictionaries are decoded once.
func (Native) Pages(ctx context.Context, path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	numPages := r.NumPage()
	fonts := make(map[string]*pdf.Font)
	pages := make([]string, 0, numPages)

	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}

		text, err := p.GetPlainText(fonts)
		if err != nil {
			return nil, fmt.Errorf("reading page %d of %s: %w", i, path, err)
		}
		pages = append(pages, text)
	}

	return pages, nil
}
