package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Category represents the type of error.
type Category string

const (
	CategoryCatalog  Category = "catalog"
	CategoryProvider Category = "provider"
	CategoryRender   Category = "render"
	CategoryConfig   Category = "config"
	CategoryCLI      Category = "cli"
)

// GalleryError is a structured error with a code, suggestion and
// documentation link.
type GalleryError struct {
	// Code is a unique error identifier (e.g., "E200").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of this occurrence.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Status is the HTTP status the error maps to.
	Status int

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *GalleryError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *GalleryError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a GalleryError with the same code.
func (e *GalleryError) Is(target error) bool {
	t, ok := target.(*GalleryError)
	return ok && t.Code != "" && t.Code == e.Code
}

// HTTPStatus returns the HTTP status for the error, defaulting to 500.
func (e *GalleryError) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}

// WithSuggestion adds a fix suggestion to the error.
func (e *GalleryError) WithSuggestion(s string) *GalleryError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *GalleryError) WithDetail(d string) *GalleryError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted explanation to the error.
func (e *GalleryError) WithDetailf(format string, args ...any) *GalleryError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *GalleryError) Wrap(err error) *GalleryError {
	e.Wrapped = err
	return e
}

// New creates a GalleryError from a registered error code.
func New(code string) *GalleryError {
	template, ok := registry[code]
	if !ok {
		return &GalleryError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &GalleryError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		Status:   template.Status,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new GalleryError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *GalleryError {
	return &GalleryError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a GalleryError. Errors that already
// carry a GalleryError in their chain are returned as that error.
func FromError(err error, code string) *GalleryError {
	if err == nil {
		return nil
	}
	var ge *GalleryError
	if stderrors.As(err, &ge) {
		return ge
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first GalleryError in err's chain, or "".
func Code(err error) string {
	var ge *GalleryError
	if stderrors.As(err, &ge) {
		return ge.Code
	}
	return ""
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
