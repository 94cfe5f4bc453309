// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

const binPdftotext = "pdftotext"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args []string, stdout io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) Run(ctx context.Context, name string, args []string, stdout io.Writer) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

// Poppler runs poppler's pdftotext and splits its output on form feeds,
// which pdftotext emits after every page.
type Poppler struct {
	bin  string
	exec executor
}

// NewPoppler returns a Poppler extractor using pdftotext from PATH.
func NewPoppler() *Poppler {
	return &Poppler{bin: binPdftotext, exec: osExecutor{}}
}

// Name implements Extractor.
func (p *Poppler) Name() string { return string(types.BackendPoppler) }

// Available reports whether pdftotext is on PATH.
func (p *Poppler) Available() bool {
	_, err := p.exec.LookPath(p.bin)
	return err == nil
}

// Pages implements Extractor.
func (p *Poppler) Pages(ctx context.Context, path string) ([]string, error) {
	if !p.Available() {
		return nil, fmt.Errorf("%s not found on PATH: install poppler-utils or use the native backend", p.bin)
	}

	var out bytes.Buffer
	args := []string{"-enc", "UTF-8", path, "-"}
	if err := p.exec.Run(ctx, p.bin, args, &out); err != nil {
		return nil, fmt.Errorf("running %s on %s: %w", p.bin, path, err)
	}
	return splitPages(out.String()), nil
}

// splitPages splits pdftotext output into pages. The form feed after the
// last page does not start another page.
func splitPages(s string) []string {
	s = strings.TrimSuffix(s, "\f")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\f")
}
