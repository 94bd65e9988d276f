package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/openlms/backend/internal/app/models"
	"github.com/openlms/backend/internal/app/models/dto"
	"github.com/openlms/backend/internal/pkg/apperrors"
	"github.com/openlms/backend/internal/pkg/validation"
)

// Course validation failure messages
const (
	courseNameLengthErrMessage  = "Course cannot be less than 3 or more than 50 characters in length."
	courseNamePatternErrMessage = "Name must start with a letter and must contain only letters, numbers and spaces."
	courseDurationErrMessage    = "Duration must be greater than 1."
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error)
	GetAllCourses(ctx context.Context) ([]dto.CourseResponse, error)
	UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, id int64) (*models.Course, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courses    CourseStore
	teachers   TeacherStore
	students   StudentStore
	enrolments EnrolmentStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore, teachers TeacherStore, students StudentStore, enrolments EnrolmentStore) CourseService {
	return &courseServiceImpl{
		courses:    courses,
		teachers:   teachers,
		students:   students,
		enrolments: enrolments,
	}
}

// validateCourseName checks the length bounds first, then the character
// pattern, reporting the first rule broken. A nil name is left for the
// database's not-null constraint.
func validateCourseName(name *string) error {
	if name == nil {
		return nil
	}
	if len(*name) < validation.CourseNameMinLength || len(*name) > validation.CourseNameMaxLength {
		return apperrors.NewValidationError("name", courseNameLengthErrMessage)
	}
	if !validation.CompiledPatterns.CourseName.MatchString(*name) {
		return apperrors.NewValidationError("name", courseNamePatternErrMessage)
	}
	return nil
}

// validateCourseDuration rejects durations of 1 or less
func validateCourseDuration(duration *float64) error {
	if duration == nil {
		return nil
	}
	if !validation.ValidCourseDuration(*duration) {
		return apperrors.NewValidationError("duration", courseDurationErrMessage)
	}
	return nil
}

func validateCourse(name *string, duration *float64) error {
	if err := validateCourseName(name); err != nil {
		return err
	}
	return validateCourseDuration(duration)
}

// CreateCourse validates and creates a new course. An unknown teacher
// reference is the database's call and surfaces as a foreign-key violation.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if err := validateCourse(req.Name, req.Duration); err != nil {
		return nil, err
	}

	course := &models.Course{
		Name:      req.Name,
		Duration:  req.Duration,
		TeacherID: req.TeacherID,
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	teacher, err := s.teacherFor(ctx, course)
	if err != nil {
		return nil, err
	}

	// A freshly created course has no enrolments
	resp := dto.NewCourseResponse(*course, teacher, nil, nil)
	return &resp, nil
}

// GetCourseByID retrieves a course with its teacher and enrolments resolved
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.project(ctx, course)
}

// GetAllCourses retrieves all courses with teachers and enrolments resolved
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		resp, err := s.project(ctx, course)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// UpdateCourse merges the supplied fields onto the stored record,
// re-validating whatever the payload carries. A missing record is reported
// before any field validation runs.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateCourse(req.Name, req.Duration); err != nil {
		return nil, err
	}

	if req.Name != nil {
		course.Name = req.Name
	}
	if req.Duration != nil {
		course.Duration = req.Duration
	}
	if req.TeacherID != nil {
		course.TeacherID = req.TeacherID
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}

	return s.GetCourseByID(ctx, id)
}

// DeleteCourse removes a course and, atomically, every enrolment in it. The
// removed record is returned for the acknowledgement.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.courses.Delete(ctx, id); err != nil {
		return nil, err
	}

	return course, nil
}

// teacherFor resolves the course's teacher reference, nil when unassigned
func (s *courseServiceImpl) teacherFor(ctx context.Context, course *models.Course) (*models.Teacher, error) {
	if course.TeacherID == nil {
		return nil, nil
	}

	teacher, err := s.teachers.GetByID(ctx, *course.TeacherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeacherNotFound) {
			// Reference cleared between reads; treat as unassigned
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course teacher: %w", err)
	}
	return teacher, nil
}

func (s *courseServiceImpl) project(ctx context.Context, course *models.Course) (*dto.CourseResponse, error) {
	teacher, err := s.teacherFor(ctx, course)
	if err != nil {
		return nil, err
	}

	enrolments, err := s.enrolments.GetByCourseID(ctx, course.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course enrolments: %w", err)
	}

	students, err := s.students.GetByIDs(ctx, studentIDs(enrolments))
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolled students: %w", err)
	}

	resp := dto.NewCourseResponse(*course, teacher, deref(enrolments), students)
	return &resp, nil
}
