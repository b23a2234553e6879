package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edunova/backend/internal/app/models/dto"
	"github.com/edunova/backend/internal/pkg/apperrors"
	"github.com/edunova/backend/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Controllers pass
// every error through here so the status mapping lives in one place.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := ""
	if errors.As(err, &custom) {
		message = custom.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, pick(message, "Validation failed"))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")

	case errors.Is(err, apperrors.ErrTokenMissing):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required")

	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")

	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")

	case errors.Is(err, apperrors.ErrAccountDisabled):
		respondError(c, http.StatusForbidden, dto.ErrorCodeAccountDisabled, "Account is disabled")

	case errors.Is(err, apperrors.ErrSecurityKeyWrong):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Invalid security key")

	case errors.Is(err, apperrors.ErrForbidden):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, pick(message, "Permission denied"))

	case errors.Is(err, apperrors.ErrAdminNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Admin not found")

	case errors.Is(err, apperrors.ErrStudentNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found")

	case errors.Is(err, apperrors.ErrCourseNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found")

	case errors.Is(err, apperrors.ErrTeacherNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Teacher not found")

	case errors.Is(err, apperrors.ErrFeedbackNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Feedback not found")

	case errors.Is(err, apperrors.ErrTimetableEntryNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Timetable entry not found")

	case errors.Is(err, apperrors.ErrRegistrationLinkNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "No registration link configured")

	case errors.Is(err, apperrors.ErrCourseResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course resource not found")

	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, pick(message, "Resource not found"))

	case errors.Is(err, apperrors.ErrAdminExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Username or email already registered")

	case errors.Is(err, apperrors.ErrStudentExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Student email or student ID already registered")

	case errors.Is(err, apperrors.ErrCourseCodeExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Course code already exists")

	case errors.Is(err, apperrors.ErrTeacherEmailExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Teacher email already registered")

	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, pick(message, "Resource already exists"))

	case errors.Is(err, apperrors.ErrInvalidFeedbackStatus):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid feedback status")

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

func pick(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
