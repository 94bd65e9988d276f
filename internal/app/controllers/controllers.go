// Package controllers contains the HTTP handlers. Controllers bind and
// sanity-check the request, delegate to the service layer, and translate
// service errors through the shared error middleware.
package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openlms/backend/internal/app/models/dto"
)

// parseIDParam extracts the numeric "id" path parameter. On failure it
// writes a 400 response and reports false.
func parseIDParam(ctx *gin.Context, resource string) (int64, bool) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, fmt.Sprintf("Invalid %s ID", resource))
		errorDetail = errorDetail.WithDetails(fmt.Sprintf("%s ID must be a valid number", resource))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
