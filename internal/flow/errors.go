package flow

import (
	"errors"
	"fmt"
)

// Error codes for parse failures. Every code is fatal to the document that
// raised it; the batch boundary decides whether to continue with other files.
const (
	ErrCodeMalformedDocument    = "MALFORMED_DOCUMENT"
	ErrCodeMissingStart         = "MISSING_START"
	ErrCodeUnresolvedTransition = "UNRESOLVED_TRANSITION"
	ErrCodeDuplicateName        = "DUPLICATE_NAME"
)

// FlowError is the structured error type for flow parsing.
type FlowError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Node    string `json:"node,omitempty"`
	Cause   error  `json:"-"`
}

func (e *FlowError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("[%s] node %s: %s", e.Code, e.Node, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *FlowError) Unwrap() error {
	return e.Cause
}

// NewError creates a new FlowError.
func NewError(code, message string) *FlowError {
	return &FlowError{Code: code, Message: message}
}

// NewErrorf creates a new FlowError with a formatted message.
func NewErrorf(code, format string, args ...any) *FlowError {
	return &FlowError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithNode attaches the offending node name to the error.
func (e *FlowError) WithNode(name string) *FlowError {
	e.Node = name
	return e
}

// WithCause attaches an underlying cause.
func (e *FlowError) WithCause(err error) *FlowError {
	e.Cause = err
	return e
}

// CodeOf returns the FlowError code carried by err, or "" when err is not a
// FlowError.
func CodeOf(err error) string {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ""
}
