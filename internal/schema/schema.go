// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schema checks parsed resumes against an embedded JSON Schema.
// Extraction is heuristic, so callers treat violations as warnings.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

//go:embed resume.schema.json
var resumeSchema []byte

// Source returns the embedded schema document.
func Source() []byte {
	out := make([]byte, len(resumeSchema))
	copy(out, resumeSchema)
	return out
}

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a field path such as
// "experience.0.title".
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Fields returns the paths of all violations in order.
func (ve *ValidationError) Fields() []string {
	out := make([]string, len(ve.Errors))
	for i, e := range ve.Errors {
		out[i] = e.Field
	}
	return out
}

// SchemaLoadError reports a schema that could not be compiled.
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load resume schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load resume schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

var (
	compileOnce sync.Once
	compiled    *gojsonschema.Schema
	compileErr  error
)

func load() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(resumeSchema))
		if compileErr != nil {
			compileErr = &SchemaLoadError{Message: "invalid schema", Cause: compileErr}
		}
	})
	return compiled, compileErr
}

// Validate checks data against the resume schema. It returns nil, a
// *ValidationError, or a *SchemaLoadError.
func Validate(data types.ResumeData) error {
	doc, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding resume: %w", err)
	}
	return ValidateJSON(doc)
}

// ValidateJSON checks an encoded resume document against the schema.
func ValidateJSON(doc []byte) error {
	s, err := load()
	if err != nil {
		return err
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("reading resume document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}
