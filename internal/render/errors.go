package render

import "fmt"

// TemplateError represents an error loading, parsing or executing the
// Markdown template.
type TemplateError struct {
	Path    string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	where := e.Path
	if where == "" {
		where = "built-in template"
	}
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %s: %v", where, e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s: %s", where, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a failure producing an output format.
type RenderError struct {
	Format  string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error (%s): %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("render error (%s): %s", e.Format, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
