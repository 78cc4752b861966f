// Package errors defines the typed errors shared across reszplay.
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

// ValidationError captures configuration validation issues.
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

// CapabilityError reports why an external capability could not be used.
type CapabilityError struct {
	Capability string
	Reason     string
	Err        error
}

// NewCapabilityError constructs a CapabilityError.
func NewCapabilityError(capability, reason string, err error) error {
	return &CapabilityError{Capability: capability, Reason: reason, Err: err}
}

func (e *CapabilityError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Reason
	if e.Err != nil {
		if msg != "" {
			msg += ": "
		}
		msg += e.Err.Error()
	}
	if e.Capability != "" {
		return fmt.Sprintf("capability unavailable [%s]: %s", e.Capability, msg)
	}
	return fmt.Sprintf("capability unavailable: %s", msg)
}

// Unwrap exposes the underlying error.
func (e *CapabilityError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ClipboardError indicates the system clipboard rejected a write.
type ClipboardError struct {
	Bytes int
	Err   error
}

// NewClipboardError constructs a ClipboardError for a write of n bytes.
func NewClipboardError(n int, err error) error {
	return &ClipboardError{Bytes: n, Err: err}
}

func (e *ClipboardError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("clipboard write of %d bytes failed: %v", e.Bytes, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ClipboardError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
