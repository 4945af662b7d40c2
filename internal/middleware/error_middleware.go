package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sicproject/backend/internal/app/models/dto"
	"github.com/sicproject/backend/internal/pkg/apperrors"
	"github.com/sicproject/backend/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. The body
// carries a stable code and a generic message; the underlying detail
// goes to the server log only.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrSubjectNotFound),
		errors.Is(err, apperrors.ErrLoanNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")))
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrUsernameExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists")))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))
	case errors.Is(err, apperrors.ErrNoFile):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeNoFile, "No file uploaded")))
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")))
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		logger.Error().Err(err).Msg("Storage unavailable")
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeStorageUnavailable, "Storage unavailable")))
	case errors.Is(err, apperrors.ErrExternalCallTimeout):
		logger.Error().Err(err).Msg("External call timed out")
		c.JSON(http.StatusGatewayTimeout, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExternalTimeout, "External call timed out")))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled service error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
