package services

import (
	"context"
	"fmt"

	"github.com/openlms/backend/internal/app/models"
	"github.com/openlms/backend/internal/app/models/dto"
	"github.com/openlms/backend/internal/app/repositories"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetStudentByID(ctx context.Context, id int64) (*dto.StudentResponse, error)
	GetAllStudents(ctx context.Context) ([]dto.StudentResponse, error)
	UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	DeleteStudent(ctx context.Context, id int64) (*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	students   StudentStore
	courses    CourseStore
	enrolments EnrolmentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore, courses CourseStore, enrolments EnrolmentStore) StudentService {
	return &studentServiceImpl{
		students:   students,
		courses:    courses,
		enrolments: enrolments,
	}
}

// CreateStudent creates a new student. Required-field and email-uniqueness
// enforcement is the database's job; violations arrive as typed integrity
// errors.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	student := &models.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	// A freshly created student has no enrolments
	resp := dto.NewStudentResponse(*student, nil, nil)
	return &resp, nil
}

// GetStudentByID retrieves a student with its enrolments resolved
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	enrolments, err := s.enrolments.GetByStudentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student enrolments: %w", err)
	}

	courses, err := s.courses.GetByIDs(ctx, courseIDs(enrolments))
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolment courses: %w", err)
	}

	resp := dto.NewStudentResponse(*student, deref(enrolments), courses)
	return &resp, nil
}

// GetAllStudents retrieves all students with their enrolments resolved
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	enrolments, err := s.enrolments.List(ctx, repositories.EnrolmentFilter{})
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolments: %w", err)
	}

	courses, err := s.courses.GetByIDs(ctx, courseIDs(enrolments))
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolment courses: %w", err)
	}

	byStudent := make(map[int64][]models.Enrolment)
	for _, e := range enrolments {
		if e.StudentID == nil {
			continue
		}
		byStudent[*e.StudentID] = append(byStudent[*e.StudentID], *e)
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, dto.NewStudentResponse(*student, byStudent[student.ID], courses))
	}
	return responses, nil
}

// UpdateStudent merges the supplied fields onto the stored record. Fields
// absent from the payload keep their prior values.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		student.FirstName = req.FirstName
	}
	if req.LastName != nil {
		student.LastName = req.LastName
	}
	if req.Email != nil {
		student.Email = req.Email
	}
	if req.Phone != nil {
		student.Phone = req.Phone
	}
	if req.Address != nil {
		student.Address = req.Address
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	return s.GetStudentByID(ctx, id)
}

// DeleteStudent removes a student and, atomically, every enrolment the
// student holds. The removed record is returned for the acknowledgement.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.students.Delete(ctx, id); err != nil {
		return nil, err
	}

	return student, nil
}

// courseIDs collects the distinct course ids referenced by enrolments
func courseIDs(enrolments []*models.Enrolment) []int64 {
	seen := make(map[int64]bool, len(enrolments))
	ids := make([]int64, 0, len(enrolments))
	for _, e := range enrolments {
		if e.CourseID == nil || seen[*e.CourseID] {
			continue
		}
		seen[*e.CourseID] = true
		ids = append(ids, *e.CourseID)
	}
	return ids
}

// studentIDs collects the distinct student ids referenced by enrolments
func studentIDs(enrolments []*models.Enrolment) []int64 {
	seen := make(map[int64]bool, len(enrolments))
	ids := make([]int64, 0, len(enrolments))
	for _, e := range enrolments {
		if e.StudentID == nil || seen[*e.StudentID] {
			continue
		}
		seen[*e.StudentID] = true
		ids = append(ids, *e.StudentID)
	}
	return ids
}

func deref(enrolments []*models.Enrolment) []models.Enrolment {
	out := make([]models.Enrolment, 0, len(enrolments))
	for _, e := range enrolments {
		out = append(out, *e)
	}
	return out
}
