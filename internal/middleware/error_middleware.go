package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openlms/backend/internal/app/models/dto"
	"github.com/openlms/backend/internal/pkg/apperrors"
	"github.com/openlms/backend/internal/pkg/dberrors"
	"github.com/openlms/backend/internal/pkg/logger"
)

// HandleAPIError translates service-layer errors into HTTP responses.
// Validation failures map to 400, missing resources to 404, database
// integrity violations to 409 and anything unrecognized to 500.
func HandleAPIError(c *gin.Context, err error) {
	var integrityErr *dberrors.IntegrityError
	if errors.As(err, &integrityErr) {
		handleIntegrityError(c, integrityErr)
		return
	}

	var customErr *apperrors.CustomError
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, messageFor(err, "Validation failed"))
		if errors.As(err, &customErr) && customErr.Field != "" {
			errorDetail = errorDetail.WithField(customErr.Field)
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")))
	case errors.Is(err, apperrors.ErrTeacherNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Teacher not found")))
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found")))
	case errors.Is(err, apperrors.ErrEnrolmentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Enrolment not found")))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// handleIntegrityError maps constraint violations onto 409 responses. The
// error message carries the column name for not-null failures and the
// server's detail line otherwise, both safe to show callers.
func handleIntegrityError(c *gin.Context, err *dberrors.IntegrityError) {
	code := dto.ErrorCodeIntegrityViolation
	switch {
	case errors.Is(err.Err, dberrors.ErrNotNullViolation):
		code = dto.ErrorCodeNotNullViolation
	case errors.Is(err.Err, dberrors.ErrUniqueViolation):
		code = dto.ErrorCodeUniqueViolation
	case errors.Is(err.Err, dberrors.ErrForeignKeyViolation):
		code = dto.ErrorCodeForeignKeyViolation
	}

	errorDetail := dto.NewErrorDetail(code, err.Error())
	if err.Column != "" {
		errorDetail = errorDetail.WithField(err.Column)
	}
	c.JSON(http.StatusConflict, dto.NewErrorResponse(errorDetail))
}

// messageFor prefers the wrapped CustomError message when one is present.
func messageFor(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}
