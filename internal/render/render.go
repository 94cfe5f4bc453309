// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a parsed resume into output documents: Markdown
// through a user-editable text/template, YAML and JSON exports, and a
// simple PDF.
package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

// TemplateName is the file looked up in the templates directory.
const TemplateName = "resume.md.tmpl"

//go:embed templates/resume.md.tmpl
var builtin embed.FS

// DefaultTemplate returns the built-in Markdown template source.
func DefaultTemplate() []byte {
	data, err := builtin.ReadFile("templates/" + TemplateName)
	if err != nil {
		panic(fmt.Sprintf("built-in template missing: %v", err))
	}
	return data
}

// Meta describes the run that produced a document. It feeds the optional
// front matter.
type Meta struct {
	SourcePDF   string    `yaml:"source_pdf"`
	ConvertedAt time.Time `yaml:"converted_at"`
	Name        string    `yaml:"name,omitempty"`
}

// Renderer produces documents from ResumeData.
type Renderer struct {
	tmpl         *template.Template
	templatePath string
	frontMatter  bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFrontMatter prepends YAML front matter to Markdown output.
func WithFrontMatter(on bool) Option {
	return func(r *Renderer) { r.frontMatter = on }
}

// New loads resume.md.tmpl from templatesDir. When the directory or the
// file does not exist the built-in template is used and a warning is
// logged. Any other read or parse failure is a TemplateError.
func New(templatesDir string, log zerolog.Logger, opts ...Option) (*Renderer, error) {
	r := &Renderer{}
	for _, o := range opts {
		o(r)
	}

	src, path, err := loadTemplate(templatesDir)
	if err != nil {
		return nil, err
	}
	switch {
	case path == "" && templatesDir != "":
		log.Warn().Str("dir", templatesDir).Msg("template not found, using built-in template")
	case path == "":
		log.Debug().Msg("using built-in template")
	default:
		log.Debug().Str("template", path).Msg("using template")
	}

	tmpl, err := template.New(TemplateName).Funcs(funcMap()).Parse(string(src))
	if err != nil {
		return nil, &TemplateError{Path: path, Message: "failed to parse template", Cause: err}
	}
	r.tmpl = tmpl
	r.templatePath = path
	return r, nil
}

// TemplatePath is the template file in use, or "" for the built-in one.
func (r *Renderer) TemplatePath() string {
	return r.templatePath
}

func loadTemplate(dir string) ([]byte, string, error) {
	if dir == "" {
		return DefaultTemplate(), "", nil
	}
	path := filepath.Join(dir, TemplateName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		return data, path, nil
	case errors.Is(err, fs.ErrNotExist):
		return DefaultTemplate(), "", nil
	default:
		return nil, "", &TemplateError{Path: path, Message: "failed to read template", Cause: err}
	}
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"join":    strings.Join,
		"compact": compact,
		"dates":   dates,
		"period":  period,
	}
}

// compact drops empty strings.
func compact(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// dates formats a start/end pair. A missing side is left out.
func dates(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "" || start == end:
		return start
	default:
		return start + " – " + end
	}
}

// period formats a job's dates, spelling the current position "Present".
func period(j types.Job) string {
	if j.Current() {
		return dates(j.Start, "Present")
	}
	return dates(j.Start, j.End)
}

// Markdown executes the template against data.
func (r *Renderer) Markdown(data types.ResumeData, meta Meta) (string, error) {
	var b strings.Builder
	if r.frontMatter {
		fm, err := frontMatter(meta)
		if err != nil {
			return "", &RenderError{Format: string(types.OutputMarkdown), Message: "failed to build front matter", Cause: err}
		}
		b.WriteString(fm)
	}
	if err := r.tmpl.Execute(&b, data); err != nil {
		return "", &TemplateError{Path: r.templatePath, Message: "failed to execute template", Cause: err}
	}
	return b.String(), nil
}

// Render produces the document for format.
func (r *Renderer) Render(format types.OutputFormat, data types.ResumeData, meta Meta) ([]byte, error) {
	switch format {
	case types.OutputMarkdown, "":
		md, err := r.Markdown(data, meta)
		if err != nil {
			return nil, err
		}
		return []byte(md), nil
	case types.OutputYAML:
		return YAML(data)
	case types.OutputJSON:
		return JSON(data)
	case types.OutputPDF:
		md, err := r.tmplOnly(data)
		if err != nil {
			return nil, err
		}
		return PDF(md)
	default:
		return nil, &RenderError{Format: string(format), Message: "unsupported format: use markdown, yaml, json or pdf"}
	}
}

// tmplOnly renders Markdown without front matter, for PDF layout.
func (r *Renderer) tmplOnly(data types.ResumeData) (string, error) {
	var b strings.Builder
	if err := r.tmpl.Execute(&b, data); err != nil {
		return "", &TemplateError{Path: r.templatePath, Message: "failed to execute template", Cause: err}
	}
	return b.String(), nil
}

func frontMatter(meta Meta) (string, error) {
	meta.ConvertedAt = meta.ConvertedAt.UTC()
	data, err := yaml.Marshal(meta)
	if err != nil {
		return "", err
	}
	return "---\n" + string(data) + "---\n\n", nil
}

// YAML encodes data as a YAML document.
func YAML(data types.ResumeData) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return nil, &RenderError{Format: string(types.OutputYAML), Message: "failed to marshal", Cause: err}
	}
	if err := enc.Close(); err != nil {
		return nil, &RenderError{Format: string(types.OutputYAML), Message: "failed to flush", Cause: err}
	}
	return buf.Bytes(), nil
}

// JSON encodes data as indented JSON with a trailing newline.
func JSON(data types.ResumeData) ([]byte, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, &RenderError{Format: string(types.OutputJSON), Message: "failed to marshal", Cause: err}
	}
	return append(out, '\n'), nil
}
