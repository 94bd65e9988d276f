package services

import (
	"context"
	"fmt"

	"github.com/openlms/backend/internal/app/models"
	"github.com/openlms/backend/internal/app/models/dto"
	"github.com/openlms/backend/internal/app/repositories"
	"github.com/openlms/backend/internal/pkg/apperrors"
	"github.com/openlms/backend/internal/pkg/helpers"
)

// EnrolmentService defines the interface for enrolment-related operations
type EnrolmentService interface {
	CreateEnrolment(ctx context.Context, req dto.CreateEnrolmentRequest) (*dto.EnrolmentResponse, error)
	GetEnrolmentByID(ctx context.Context, id int64) (*dto.EnrolmentResponse, error)
	ListEnrolments(ctx context.Context, filter repositories.EnrolmentFilter) ([]dto.EnrolmentResponse, error)
	DeleteEnrolment(ctx context.Context, id int64) error
}

// enrolmentServiceImpl implements the EnrolmentService interface
type enrolmentServiceImpl struct {
	enrolments EnrolmentStore
	students   StudentStore
	courses    CourseStore
}

// NewEnrolmentService creates a new enrolment service instance
func NewEnrolmentService(enrolments EnrolmentStore, students StudentStore, courses CourseStore) EnrolmentService {
	return &enrolmentServiceImpl{
		enrolments: enrolments,
		students:   students,
		courses:    courses,
	}
}

// CreateEnrolment creates a new enrolment. The date defaults to the current
// date, computed once here when the payload omits it. Unknown student or
// course references and duplicate (student, course) pairs are the
// database's call.
func (s *enrolmentServiceImpl) CreateEnrolment(ctx context.Context, req dto.CreateEnrolmentRequest) (*dto.EnrolmentResponse, error) {
	enrolmentDate := helpers.Today()
	if req.EnrolmentDate != nil {
		parsed, err := helpers.ParseDate(*req.EnrolmentDate)
		if err != nil {
			return nil, apperrors.NewValidationError("enrolment_date", "Enrolment date must be a valid date in YYYY-MM-DD format.")
		}
		enrolmentDate = parsed
	}

	enrolment := &models.Enrolment{
		EnrolmentDate: enrolmentDate,
		StudentID:     req.StudentID,
		CourseID:      req.CourseID,
	}

	if err := s.enrolments.Create(ctx, enrolment); err != nil {
		return nil, err
	}

	return s.project(ctx, enrolment)
}

// GetEnrolmentByID retrieves an enrolment with both references resolved
func (s *enrolmentServiceImpl) GetEnrolmentByID(ctx context.Context, id int64) (*dto.EnrolmentResponse, error) {
	enrolment, err := s.enrolments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.project(ctx, enrolment)
}

// ListEnrolments retrieves enrolments matching the filter, with student and
// course references resolved in bulk
func (s *enrolmentServiceImpl) ListEnrolments(ctx context.Context, filter repositories.EnrolmentFilter) ([]dto.EnrolmentResponse, error) {
	enrolments, err := s.enrolments.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolments: %w", err)
	}

	students, err := s.students.GetByIDs(ctx, studentIDs(enrolments))
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolled students: %w", err)
	}

	courses, err := s.courses.GetByIDs(ctx, courseIDs(enrolments))
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolment courses: %w", err)
	}

	responses := make([]dto.EnrolmentResponse, 0, len(enrolments))
	for _, enrolment := range enrolments {
		var student models.Student
		if enrolment.StudentID != nil {
			student = students[*enrolment.StudentID]
		}
		var course models.Course
		if enrolment.CourseID != nil {
			course = courses[*enrolment.CourseID]
		}
		responses = append(responses, dto.NewEnrolmentResponse(*enrolment, student, course))
	}
	return responses, nil
}

// DeleteEnrolment removes an enrolment
func (s *enrolmentServiceImpl) DeleteEnrolment(ctx context.Context, id int64) error {
	return s.enrolments.Delete(ctx, id)
}

func (s *enrolmentServiceImpl) project(ctx context.Context, enrolment *models.Enrolment) (*dto.EnrolmentResponse, error) {
	var student models.Student
	if enrolment.StudentID != nil {
		stored, err := s.students.GetByID(ctx, *enrolment.StudentID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving enrolled student: %w", err)
		}
		student = *stored
	}

	var course models.Course
	if enrolment.CourseID != nil {
		stored, err := s.courses.GetByID(ctx, *enrolment.CourseID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving enrolment course: %w", err)
		}
		course = *stored
	}

	resp := dto.NewEnrolmentResponse(*enrolment, student, course)
	return &resp, nil
}
