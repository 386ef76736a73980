package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryDocument  Category = "document"
	CategoryTranspile Category = "transpile"
	CategoryConfig    Category = "config"
	CategoryServer    Category = "server"
)

// GoliaError is a structured error with a stable code and fix suggestion.
type GoliaError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (document, transpile, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *GoliaError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *GoliaError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *GoliaError) WithSuggestion(s string) *GoliaError {
	e.Suggestion = s
	return e
}

// New creates an error from a registered code.
// Unregistered codes produce a generic error carrying the code.
func New(code string) *GoliaError {
	if tmpl, ok := registry[code]; ok {
		return &GoliaError{
			Code:     code,
			Category: tmpl.Category,
			Message:  tmpl.Message,
			Detail:   tmpl.Detail,
		}
	}
	return &GoliaError{Code: code, Message: "unknown error"}
}

// Newf creates an error from a registered code with extra message context.
func Newf(code string, format string, args ...any) *GoliaError {
	e := New(code)
	e.Message = e.Message + ": " + fmt.Sprintf(format, args...)
	return e
}

// Wrap creates an error from a registered code wrapping an underlying error.
func Wrap(code string, err error) *GoliaError {
	e := New(code)
	e.Wrapped = err
	return e
}
