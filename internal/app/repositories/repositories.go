package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository   *StudentRepository
	TeacherRepository   *TeacherRepository
	CourseRepository    *CourseRepository
	EnrolmentRepository *EnrolmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:   NewStudentRepository(db),
		TeacherRepository:   NewTeacherRepository(db),
		CourseRepository:    NewCourseRepository(db),
		EnrolmentRepository: NewEnrolmentRepository(db),
	}
}
