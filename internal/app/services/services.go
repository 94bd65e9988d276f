// Package services holds the application logic between the HTTP controllers
// and the repositories: field-level validation, partial-update merging, and
// assembly of the nested response projections.
package services

import (
	"context"

	"github.com/openlms/backend/internal/app/models"
	"github.com/openlms/backend/internal/app/repositories"
)

// The store interfaces are declared on the consumer side so services can be
// exercised against fakes. The concrete pgx repositories satisfy them.

// StudentStore is the student persistence surface used by the services
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// TeacherStore is the teacher persistence surface used by the services
type TeacherStore interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetAll(ctx context.Context, department *string) ([]*models.Teacher, error)
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id int64) error
}

// CourseStore is the course persistence surface used by the services
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByTeacherID(ctx context.Context, teacherID int64) ([]*models.Course, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// EnrolmentStore is the enrolment persistence surface used by the services
type EnrolmentStore interface {
	Create(ctx context.Context, enrolment *models.Enrolment) error
	GetByID(ctx context.Context, id int64) (*models.Enrolment, error)
	List(ctx context.Context, filter repositories.EnrolmentFilter) ([]*models.Enrolment, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrolment, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Enrolment, error)
	Delete(ctx context.Context, id int64) error
}
