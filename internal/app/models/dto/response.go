package dto

// ErrorCode represents standardized error codes carried in the envelope.
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeHashingFailed      ErrorCode = "AUTH_002"

	// Resource errors
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
	ErrorCodeDatabaseError  ErrorCode = "SRV_002"
)

// ErrorPayload is the error half of the envelope.
type ErrorPayload struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Note    string    `json:"note,omitempty"`
}

// APIResponse is the uniform response envelope. Exactly one of Error and
// Payload is non-nil.
type APIResponse struct {
	Error   *ErrorPayload `json:"error"`
	Payload interface{}   `json:"payload"`
}

// NewSuccessResponse wraps a payload in a success envelope.
func NewSuccessResponse(payload interface{}) APIResponse {
	return APIResponse{Payload: payload}
}

// NewErrorResponse builds an error envelope with a code, a stable message
// and an optional free-text note.
func NewErrorResponse(code ErrorCode, message, note string) APIResponse {
	return APIResponse{
		Error: &ErrorPayload{
			Code:    code,
			Message: message,
			Note:    note,
		},
	}
}
