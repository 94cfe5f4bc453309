// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the full conversion of a LinkedIn export: read the
// PDF text, parse it into ResumeData, check it against the schema, render
// the requested format, write it, and optionally archive the result.
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/pdiddy/resume-from-linkedin/internal/archive"
	"github.com/pdiddy/resume-from-linkedin/internal/parse"
	"github.com/pdiddy/resume-from-linkedin/internal/pdftext"
	"github.com/pdiddy/resume-from-linkedin/internal/render"
	"github.com/pdiddy/resume-from-linkedin/internal/schema"
	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

// ErrPDFNotFound is returned when the input PDF does not exist or is a
// directory.
var ErrPDFNotFound = errors.New("PDF not found")

// Archiver records successful conversions. *archive.Store implements it.
type Archiver interface {
	Save(ctx context.Context, pdfPath string, data types.ResumeData) (string, error)
}

// Result describes one completed conversion.
type Result struct {
	OutputPath string
	Format     types.OutputFormat
	Backend    string
	Pages      int
	Data       types.ResumeData

	// Template is the template file used, or "" for the built-in one.
	Template string

	// ArchiveID is the archive record id when archiving was enabled.
	ArchiveID string

	// Warnings lists schema violations and other non-fatal problems.
	Warnings []string
}

// Pipeline wires the conversion stages together. The zero value is not
// usable; construct with New.
type Pipeline struct {
	log       zerolog.Logger
	extractor pdftext.Extractor
	archiver  Archiver
	now       func() time.Time
	validate  *validator.Validate
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithExtractor overrides the extractor selected from the config backend.
func WithExtractor(e pdftext.Extractor) Option {
	return func(p *Pipeline) { p.extractor = e }
}

// WithArchiver overrides the archive opened from the config.
func WithArchiver(a Archiver) Option {
	return func(p *Pipeline) { p.archiver = a }
}

// WithClock sets the time source used for front matter.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// New returns a Pipeline that logs to log.
func New(log zerolog.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		log:      log,
		now:      time.Now,
		validate: validator.New(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Validate applies defaults to cfg and checks it. A missing PDF yields an
// error wrapping ErrPDFNotFound.
func (p *Pipeline) Validate(cfg types.ConvertConfig) (types.ConvertConfig, error) {
	cfg = cfg.WithDefaults()
	if err := p.validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return cfg, fmt.Errorf("validating configuration: %w", err)
		}
		for _, fe := range verrs {
			if fe.StructField() == "PDFPath" {
				return cfg, fmt.Errorf("%w: %s", ErrPDFNotFound, cfg.PDFPath)
			}
		}
		fe := verrs[0]
		return cfg, fmt.Errorf("invalid configuration: %s=%v fails %q", fe.Namespace(), fe.Value(), fe.Tag())
	}
	return cfg, nil
}

// Parse reads pdfPath with the configured extractor and returns the parsed
// resume and the page count.
func (p *Pipeline) Parse(ctx context.Context, pdfPath string, backend types.ExtractBackend, pc types.ParseConfig) (types.ResumeData, int, error) {
	ex := p.extractor
	if ex == nil {
		var err error
		if ex, err = pdftext.New(backend); err != nil {
			return types.ResumeData{}, 0, err
		}
	}

	p.log.Info().Str("pdf", pdfPath).Str("backend", ex.Name()).Msg("reading")
	pages, err := ex.Pages(ctx, pdfPath)
	if err != nil {
		return types.ResumeData{}, 0, fmt.Errorf("reading %s: %w", pdfPath, err)
	}

	text := parse.Normalize(pages)
	if text == "" {
		p.log.Warn().Str("pdf", pdfPath).Int("pages", len(pages)).Msg("no text layer found; the PDF may be scanned")
	}

	p.log.Info().Int("pages", len(pages)).Int("chars", len(text)).Msg("parsing")
	data := parse.NewParser(pc).Parse(text)
	p.log.Debug().
		Str("name", data.Basics.Name).
		Int("jobs", len(data.Experience)).
		Int("schools", len(data.Education)).
		Int("skills", len(data.Skills)).
		Int("certs", len(data.Certs)).
		Msg("parsed")
	return data, len(pages), nil
}

// Run performs one conversion described by cfg.
func (p *Pipeline) Run(ctx context.Context, cfg types.ConvertConfig) (Result, error) {
	cfg, err := p.Validate(cfg)
	if err != nil {
		return Result{}, err
	}

	data, pages, err := p.Parse(ctx, cfg.PDFPath, cfg.Backend, cfg.Parse)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		OutputPath: cfg.OutputPath,
		Format:     cfg.Format,
		Backend:    string(cfg.Backend),
		Pages:      pages,
		Data:       data,
	}
	if p.extractor != nil {
		res.Backend = p.extractor.Name()
	}
	res.Warnings = p.checkSchema(data)

	p.log.Info().Str("format", string(cfg.Format)).Msg("rendering")
	r, err := render.New(cfg.TemplatesDir, p.log, render.WithFrontMatter(cfg.FrontMatter))
	if err != nil {
		return Result{}, err
	}
	res.Template = r.TemplatePath()

	out, err := r.Render(cfg.Format, data, render.Meta{
		SourcePDF:   cfg.PDFPath,
		ConvertedAt: p.now(),
		Name:        data.Basics.Name,
	})
	if err != nil {
		return Result{}, err
	}

	if err := writeOutput(cfg.OutputPath, out); err != nil {
		return Result{}, err
	}

	if cfg.Archive.Enabled {
		id, err := p.archive(ctx, cfg, data)
		if err != nil {
			p.log.Warn().Err(err).Msg("archiving failed")
			res.Warnings = append(res.Warnings, err.Error())
		} else {
			res.ArchiveID = id
		}
	}

	p.log.Info().Str("out", cfg.OutputPath).Int("bytes", len(out)).Msg("done")
	return res, nil
}

// checkSchema logs schema violations as warnings and returns them.
func (p *Pipeline) checkSchema(data types.ResumeData) []string {
	err := schema.Validate(data)
	if err == nil {
		return nil
	}
	var ve *schema.ValidationError
	if !errors.As(err, &ve) {
		p.log.Warn().Err(err).Msg("schema check skipped")
		return []string{err.Error()}
	}
	warnings := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		p.log.Warn().Str("field", fe.Field).Msg(fe.Message)
		warnings = append(warnings, fe.Field+": "+fe.Message)
	}
	return warnings
}

func (p *Pipeline) archive(ctx context.Context, cfg types.ConvertConfig, data types.ResumeData) (string, error) {
	a := p.archiver
	if a == nil {
		store, err := archive.NewStore(cfg.Archive)
		if err != nil {
			return "", fmt.Errorf("opening archive: %w", err)
		}
		defer store.Close()
		a = store
	}
	id, err := a.Save(ctx, cfg.PDFPath, data)
	if err != nil {
		return "", fmt.Errorf("saving to archive: %w", err)
	}
	p.log.Debug().Str("id", id).Msg("archived")
	return id, nil
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
