package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ekaraca/blackboard/internal/app/models/dto"
	"github.com/ekaraca/blackboard/internal/pkg/apperrors"
)

// errorNote picks the client-facing note for the envelope. A CustomError
// carries a per-site message written for the caller; anything else falls
// back to the error text.
func errorNote(err error) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return err.Error()
}

// HandleAPIError translates the error taxonomy into the uniform
// response envelope. Every failure kind keeps a distinct code.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Validation failed", errorNote(err)))

	case errors.Is(err, apperrors.ErrUsernameAlreadyExists),
		errors.Is(err, apperrors.ErrCourseAlreadyExists),
		errors.Is(err, apperrors.ErrLectureAlreadyExists):
		c.JSON(http.StatusConflict,
			dto.NewErrorResponse(dto.ErrorCodeResourceAlreadyExists, "Resource already exists", errorNote(err)))

	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Resource not found", errorNote(err)))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeInvalidCredentials, "Invalid username or password", ""))

	case errors.Is(err, apperrors.ErrHashingFailed):
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.ErrorCodeHashingFailed, "Credential hashing failed", ""))

	case errors.Is(err, apperrors.ErrUnknownRole),
		errors.Is(err, apperrors.ErrRowDecode):
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.ErrorCodeDatabaseError, "Stored data could not be decoded", ""))

	case errors.Is(err, apperrors.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable,
			dto.NewErrorResponse(dto.ErrorCodeDatabaseError, "Store unavailable", ""))

	default:
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error", ""))
	}
}
