// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of PDFs processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any PDF failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// OutputExt returns the file extension for format.
func OutputExt(format types.OutputFormat) string {
	switch format {
	case types.OutputYAML:
		return ".yaml"
	case types.OutputJSON:
		return ".json"
	case types.OutputPDF:
		return ".pdf"
	default:
		return ".md"
	}
}

// OutputPathFor returns outDir/<pdf base name><format extension>.
func OutputPathFor(pdfPath, outDir string, format types.OutputFormat) string {
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	return filepath.Join(outDir, base+OutputExt(format))
}

// RunBatch converts each PDF into outDir, one output per input named after
// the PDF. Existing outputs are skipped unless force is set. Per-file
// status is printed to w. Cancellation stops the batch between files.
func (p *Pipeline) RunBatch(ctx context.Context, cfg types.ConvertConfig, pdfPaths []string, outDir string, force bool, w io.Writer) BatchResult {
	var result BatchResult
	for _, pdfPath := range pdfPaths {
		if ctx.Err() != nil {
			break
		}
		base := filepath.Base(pdfPath)

		c := cfg
		c.PDFPath = pdfPath
		c.OutputPath = OutputPathFor(pdfPath, outDir, cfg.WithDefaults().Format)

		if _, err := os.Stat(c.OutputPath); err == nil && !force {
			fmt.Fprintf(w, "skipped:   %s (%s exists)\n", base, c.OutputPath)
			result.Skipped++
			continue
		}

		if _, err := p.Run(ctx, c); err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", base, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "converted: %s -> %s\n", base, c.OutputPath)
		result.Converted++
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}
