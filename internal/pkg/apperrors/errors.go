package apperrors

import "errors"

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrTokenMissing       = errors.New("token missing")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrForbidden          = errors.New("forbidden")
)

// Resource errors
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("conflict")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
)

// Admin errors
var (
	ErrAdminNotFound     = errors.New("admin not found")
	ErrAdminExists       = errors.New("admin already exists")
	ErrSecurityKeyNeeded = errors.New("security key is required")
	ErrSecurityKeyWrong  = errors.New("invalid security key")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrStudentExists   = errors.New("student already exists")
)

// Course errors
var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrCourseCodeExists = errors.New("course code already exists")
)

// Teacher errors
var (
	ErrTeacherNotFound    = errors.New("teacher not found")
	ErrTeacherEmailExists = errors.New("teacher email already exists")
)

// Feedback errors
var (
	ErrFeedbackNotFound      = errors.New("feedback not found")
	ErrInvalidFeedbackStatus = errors.New("invalid feedback status")
)

// Timetable errors
var (
	ErrTimetableEntryNotFound = errors.New("timetable entry not found")
)

// Registration link errors
var (
	ErrRegistrationLinkNotFound = errors.New("no registration link configured")
)

// Course resource errors
var (
	ErrCourseResourceNotFound = errors.New("course resource not found")
)

// CustomError represents application-specific errors with additional context.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewConflictError creates a conflict error with a message.
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewNotFoundError creates a not-found error with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewForbiddenError creates a forbidden error with a message.
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrForbidden, Message: message}
}
