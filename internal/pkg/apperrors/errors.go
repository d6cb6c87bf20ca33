package apperrors

import "errors"

// Common errors
var (
	// Constraint violations on natural keys
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrCourseAlreadyExists   = errors.New("course with this course_id already exists")
	ErrLectureAlreadyExists  = errors.New("lecture with this lecture_id already exists")

	// Resource errors
	ErrCourseNotFound = errors.New("course not found")
	ErrUserNotFound   = errors.New("user not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Credential digest errors: the hashing backend failed or a stored
	// digest is not a well-formed hash. Distinct from a wrong password.
	ErrHashingFailed = errors.New("credential hashing failed")

	// Decode errors
	ErrUnknownRole = errors.New("unknown role value")
	ErrRowDecode   = errors.New("stored row could not be decoded")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Store connectivity lost mid-operation
	ErrStoreUnavailable = errors.New("store unavailable")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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
