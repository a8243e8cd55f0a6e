package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrUnauthorized = errors.New("authentication required")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Course Errors
var (
	ErrCourseNotFound = NewCustomError(ErrResourceNotFound, "course not found")
)

// Unit Errors
var (
	ErrUnitNotFound  = NewCustomError(ErrResourceNotFound, "unit not found")
	ErrUnitOwnership = NewCustomError(ErrValidationFailed, "unit does not belong to course")
)

// NewUnitOwnershipError reports a unit addressed through a course that does not own it
func NewUnitOwnershipError(unitID, courseID fmt.Stringer) error {
	return &CustomError{
		Err:     ErrUnitOwnership,
		Message: fmt.Sprintf("unit %s does not belong to course %s", unitID, courseID),
		Field:   "courseId",
	}
}

// NewValidationError creates a validation failure that cites the offending field
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Code    string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// WithField records which request field the error refers to
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}

// FieldOf returns the field recorded on the first CustomError in err's chain.
func FieldOf(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Field
	}
	return ""
}

// MessageOf returns the client-facing message of the first CustomError in err's chain,
// falling back to fallback when none is present.
func MessageOf(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}
