package apperrors

import "errors"

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Teacher errors
var (
	ErrTeacherNotFound = errors.New("teacher not found")
)

// Course errors
var (
	ErrCourseNotFound = errors.New("course not found")
)

// Enrolment errors
var (
	ErrEnrolmentNotFound = errors.New("enrolment not found")
)

// NewValidationError creates a new custom error for a field-level validation failure
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
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
