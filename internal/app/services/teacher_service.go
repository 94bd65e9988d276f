package services

import (
	"context"
	"fmt"

	"github.com/openlms/backend/internal/app/models"
	"github.com/openlms/backend/internal/app/models/dto"
	"github.com/openlms/backend/internal/pkg/apperrors"
)

// departmentErrMessage names the accepted values in validation failures
const departmentErrMessage = "Only valid departments are: Science, Management, and Engineering."

// TeacherService defines the interface for teacher-related operations
type TeacherService interface {
	CreateTeacher(ctx context.Context, req dto.CreateTeacherRequest) (*dto.TeacherResponse, error)
	GetTeacherByID(ctx context.Context, id int64) (*dto.TeacherResponse, error)
	GetAllTeachers(ctx context.Context, department *string) ([]dto.TeacherResponse, error)
	UpdateTeacher(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*dto.TeacherResponse, error)
	DeleteTeacher(ctx context.Context, id int64) (*models.Teacher, error)
}

// teacherServiceImpl implements the TeacherService interface
type teacherServiceImpl struct {
	teachers   TeacherStore
	courses    CourseStore
	enrolments EnrolmentStore
	students   StudentStore
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teachers TeacherStore, courses CourseStore, enrolments EnrolmentStore, students StudentStore) TeacherService {
	return &teacherServiceImpl{
		teachers:   teachers,
		courses:    courses,
		enrolments: enrolments,
		students:   students,
	}
}

// validateDepartment rejects any value outside the enumerated set before
// persistence is attempted. A nil department is left alone: the database
// reports the missing required column.
func validateDepartment(department *string) error {
	if department == nil {
		return nil
	}
	if !models.Department(*department).IsValid() {
		return apperrors.NewValidationError("department", departmentErrMessage)
	}
	return nil
}

// CreateTeacher creates a new teacher
func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, req dto.CreateTeacherRequest) (*dto.TeacherResponse, error) {
	if err := validateDepartment(req.Department); err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
		Address:    req.Address,
		Phone:      req.Phone,
		Email:      req.Email,
	}

	if err := s.teachers.Create(ctx, teacher); err != nil {
		return nil, err
	}

	// A freshly created teacher has no courses
	resp := dto.NewTeacherResponse(*teacher, nil, nil, nil)
	return &resp, nil
}

// GetTeacherByID retrieves a teacher with the courses they teach resolved
// through a foreign-key query
func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id int64) (*dto.TeacherResponse, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.project(ctx, teacher)
}

// GetAllTeachers retrieves all teachers, optionally filtered by department.
// An unknown department simply matches nothing.
func (s *teacherServiceImpl) GetAllTeachers(ctx context.Context, department *string) ([]dto.TeacherResponse, error) {
	teachers, err := s.teachers.GetAll(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}

	responses := make([]dto.TeacherResponse, 0, len(teachers))
	for _, teacher := range teachers {
		resp, err := s.project(ctx, teacher)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// UpdateTeacher merges the supplied fields onto the stored record. A missing
// record is reported before any field validation runs.
func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*dto.TeacherResponse, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateDepartment(req.Department); err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		teacher.FirstName = req.FirstName
	}
	if req.LastName != nil {
		teacher.LastName = req.LastName
	}
	if req.Department != nil {
		teacher.Department = req.Department
	}
	if req.Address != nil {
		teacher.Address = req.Address
	}
	if req.Phone != nil {
		teacher.Phone = req.Phone
	}
	if req.Email != nil {
		teacher.Email = req.Email
	}

	if err := s.teachers.Update(ctx, teacher); err != nil {
		return nil, err
	}

	return s.GetTeacherByID(ctx, id)
}

// DeleteTeacher removes a teacher. Their courses survive with the teacher
// reference cleared, atomically with the delete. The removed record is
// returned for the acknowledgement.
func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.teachers.Delete(ctx, id); err != nil {
		return nil, err
	}

	return teacher, nil
}

// project resolves the teacher's courses and, two hops down, each course's
// enrolments with their students.
func (s *teacherServiceImpl) project(ctx context.Context, teacher *models.Teacher) (*dto.TeacherResponse, error) {
	courses, err := s.courses.GetByTeacherID(ctx, teacher.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teacher courses: %w", err)
	}

	courseEnrolments := make(map[int64][]models.Enrolment, len(courses))
	var allEnrolments []*models.Enrolment
	for _, course := range courses {
		enrolments, err := s.enrolments.GetByCourseID(ctx, course.ID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving course enrolments: %w", err)
		}
		for _, enrolment := range enrolments {
			courseEnrolments[course.ID] = append(courseEnrolments[course.ID], *enrolment)
		}
		allEnrolments = append(allEnrolments, enrolments...)
	}

	students, err := s.students.GetByIDs(ctx, studentIDs(allEnrolments))
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolled students: %w", err)
	}

	resp := dto.NewTeacherResponse(*teacher, derefCourses(courses), courseEnrolments, students)
	return &resp, nil
}

func derefCourses(courses []*models.Course) []models.Course {
	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		out = append(out, *c)
	}
	return out
}
