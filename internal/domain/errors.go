package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrCacheMiss is returned by Cache implementations when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Quiz specific errors
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeEmptySubmission    ErrorCode = "EMPTY_SUBMISSION"
	CodeNoActiveSession    ErrorCode = "NO_ACTIVE_SESSION"
	CodeInvalidReviewIndex ErrorCode = "INVALID_REVIEW_INDEX"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

// NewInvalidCredentialsError carries one fixed message so responses do not
// reveal whether the username or the password was wrong.
func NewInvalidCredentialsError() *DomainError {
	return NewError(CodeInvalidCredentials, "Invalid username or password", nil)
}

func NewEmptySubmissionError() *DomainError {
	return NewError(CodeEmptySubmission, "No answer was selected; please choose an option", nil)
}

func NewNoActiveSessionError() *DomainError {
	return NewError(CodeNoActiveSession, "No quiz attempt in progress; start a new quiz first", nil)
}

func NewInvalidReviewIndexError(index, bankSize int) *DomainError {
	err := NewError(CodeInvalidReviewIndex, fmt.Sprintf("Question index %d is out of range", index), nil)
	err.Context = map[string]interface{}{"index": index, "bank_size": bankSize}
	return err
}

// ValidationError represents a single invalid request field.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field errors so a response can report all of
// them at once.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// NewValidationError creates a field-less validation error.
func NewValidationError(message string) error {
	return ValidationError{Message: message}
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %q", value)}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("value %d must be between %d and %d", value, min, max)}
}
