// Package apperr defines the application-layer error shared by the domain
// containers. Every operation failure is one of a closed set of codes;
// the HTTP adapter maps Status to the response code.
package apperr

import "net/http"

const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeInvalidBudget   = "INVALID_BUDGET"
	CodeInvalidLocation = "INVALID_LOCATION"
	CodeNotFound        = "NOT_FOUND"
	CodeProvider        = "PROVIDER_ERROR"
	CodeUnauthorized    = "UNAUTHORIZED"
)

// Error is an application-layer error that can be mapped to an HTTP response.
type Error struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

// Validation is a malformed/missing-input error, caught before any provider call.
func Validation(message string, details map[string]any) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Code: CodeValidation, Message: message, Details: details}
}

// NotFound is a specific lookup miss.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: CodeNotFound, Message: message}
}

// Provider wraps a provider-call rejection.
func Provider(message string) *Error {
	return &Error{Status: http.StatusBadGateway, Code: CodeProvider, Message: message}
}

// Unauthorized is a rejected credential or session.
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// New builds an error with an explicit status and code.
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}
