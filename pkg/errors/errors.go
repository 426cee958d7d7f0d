package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures rejected configuration values and user input.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError reports a failure inside one stage of the render pass
// (tokenize, layout, rasterize).
type RenderError struct {
	Stage string
	Err   error
}

// NewRenderError constructs a RenderError for the given stage.
func NewRenderError(stage string, err error) error {
	return &RenderError{Stage: stage, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stage != "" {
		return fmt.Sprintf("render error during %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExportError indicates that an encoded image or document could not be produced or written.
type ExportError struct {
	Format  string
	Path    string
	Message string
	Err     error
}

// NewExportError constructs an ExportError for the given format and destination.
func NewExportError(format, path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ExportError{Format: format, Path: path, Message: message, Err: err}
}

func (e *ExportError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("export error [%s] %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("export error [%s]: %s", e.Format, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ExportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SourceError represents a failure to read code from a file, stdin or a git revision.
type SourceError struct {
	Origin string
	Err    error
}

// NewSourceError constructs a SourceError.
func NewSourceError(origin string, err error) error {
	return &SourceError{Origin: origin, Err: err}
}

func (e *SourceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Origin != "" {
		return fmt.Sprintf("source error: %s: %v", e.Origin, e.Err)
	}
	return fmt.Sprintf("source error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *SourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
