package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openlms/backend/internal/app/models/dto"
	"github.com/openlms/backend/internal/app/repositories"
	"github.com/openlms/backend/internal/app/services"
	"github.com/openlms/backend/internal/middleware"
)

// EnrolmentController handles enrolment-related operations
type EnrolmentController struct {
	enrolmentService services.EnrolmentService
}

// NewEnrolmentController creates a new EnrolmentController
func NewEnrolmentController(enrolmentService services.EnrolmentService) *EnrolmentController {
	return &EnrolmentController{
		enrolmentService: enrolmentService,
	}
}

// CreateEnrolment handles enrolment creation
// @Summary Create a new enrolment
// @Description Enrols a student in a course; the date defaults to today
// @Tags enrolments
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrolmentRequest true "Enrolment information"
// @Success 201 {object} dto.APIResponse{data=dto.EnrolmentResponse} "Enrolment created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Missing or unknown student/course, or student already enrolled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrolments [post]
func (c *EnrolmentController) CreateEnrolment(ctx *gin.Context) {
	var req dto.CreateEnrolmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrolment data")
		errorDetail = errorDetail.WithDetails(middleware.BindingErrorDetails(err))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	enrolment, err := c.enrolmentService.CreateEnrolment(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      enrolment,
		Timestamp: time.Now(),
	})
}

// GetEnrolmentByID retrieves an enrolment by ID
// @Summary Get enrolment by ID
// @Description Retrieves a specific enrolment with its student and course
// @Tags enrolments
// @Accept json
// @Produce json
// @Param id path int true "Enrolment ID"
// @Success 200 {object} dto.APIResponse{data=dto.EnrolmentResponse} "Enrolment retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrolment ID"
// @Failure 404 {object} dto.ErrorResponse "Enrolment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrolments/{id} [get]
func (c *EnrolmentController) GetEnrolmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Enrolment")
	if !ok {
		return
	}

	enrolment, err := c.enrolmentService.GetEnrolmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      enrolment,
		Timestamp: time.Now(),
	})
}

// ListEnrolments retrieves enrolments matching the query filters
// @Summary List enrolments
// @Description Retrieves enrolments, optionally filtered by enrolment, student or course ID
// @Tags enrolments
// @Accept json
// @Produce json
// @Param enrolment_id query int false "Filter by enrolment ID"
// @Param student_id query int false "Filter by student ID"
// @Param course_id query int false "Filter by course ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrolmentResponse} "Enrolments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrolments [get]
func (c *EnrolmentController) ListEnrolments(ctx *gin.Context) {
	var filter dto.EnrolmentFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrolment filters")
		errorDetail = errorDetail.WithDetails(middleware.BindingErrorDetails(err))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	enrolments, err := c.enrolmentService.ListEnrolments(ctx, repositories.EnrolmentFilter{
		EnrolmentID: filter.EnrolmentID,
		StudentID:   filter.StudentID,
		CourseID:    filter.CourseID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(enrolments) == 0 {
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Message:   dto.EmptyTableMessage,
			Timestamp: time.Now(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      enrolments,
		Timestamp: time.Now(),
	})
}

// DeleteEnrolment deletes an enrolment
// @Summary Delete an enrolment
// @Description Removes a student's enrolment in a course
// @Tags enrolments
// @Accept json
// @Produce json
// @Param id path int true "Enrolment ID"
// @Success 200 {object} dto.APIResponse "Enrolment deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrolment ID"
// @Failure 404 {object} dto.ErrorResponse "Enrolment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrolments/{id} [delete]
func (c *EnrolmentController) DeleteEnrolment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Enrolment")
	if !ok {
		return
	}

	if err := c.enrolmentService.DeleteEnrolment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   fmt.Sprintf("Enrolment %d deleted successfully.", id),
		Timestamp: time.Now(),
	})
}
