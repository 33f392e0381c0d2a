package domain

import (
	"errors"
	"strings"
)

var (
	MessageFailedBodyRequest   = "invalid request body"
	MessageInternalServerError = "Internal server error"
	MessageRouteNotFound       = "route not found"
	MessageMethodNotAllowed    = "method not allowed"

	// Error kinds. Every domain error wraps exactly one of these so the API
	// layer can pick a status code without knowing the individual errors.
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")

	ErrInvalidBody = NewError(ErrBadRequest, MessageFailedBodyRequest)
)

type kindError struct {
	kind    error
	message string
}

func (e *kindError) Error() string { return e.message }

func (e *kindError) Unwrap() error { return e.kind }

// NewError returns an error with the given message that matches kind under errors.Is.
func NewError(kind error, message string) error {
	return &kindError{kind: kind, message: message}
}

type Issue struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError carries the field-level issues of a rejected payload.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+" "+issue.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, rule, message string) *ValidationError {
	return &ValidationError{Issues: []Issue{{Field: field, Rule: rule, Message: message}}}
}
