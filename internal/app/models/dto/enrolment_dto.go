package dto

import (
	"github.com/openlms/backend/internal/app/models"
	"github.com/openlms/backend/internal/pkg/helpers"
)

// CreateEnrolmentRequest represents enrolment creation data. The date is
// optional; when absent the server fills in the current date.
type CreateEnrolmentRequest struct {
	EnrolmentDate *string `json:"enrolment_date" binding:"omitempty,datetime=2006-01-02"`
	StudentID     *int64  `json:"student_id" binding:"omitempty,gt=0"`
	CourseID      *int64  `json:"course_id" binding:"omitempty,gt=0"`
}

// EnrolmentFilter holds the optional enrolment listing filters, combined
// with AND when more than one is present.
type EnrolmentFilter struct {
	EnrolmentID *int64 `form:"enrolment_id" binding:"omitempty,gt=0"`
	StudentID   *int64 `form:"student_id" binding:"omitempty,gt=0"`
	CourseID    *int64 `form:"course_id" binding:"omitempty,gt=0"`
}

// EnrolledStudent is the reduced student projection nested inside an
// enrolment: identity and name only.
type EnrolledStudent struct {
	StudentID int64  `json:"student_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// EnrolledCourse is the reduced course projection nested inside an
// enrolment: name and duration only.
type EnrolledCourse struct {
	CourseID int64   `json:"course_id"`
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
}

// EnrolmentResponse is the full enrolment projection. Field order is the
// serialization contract: date, enrolling student, course taken.
type EnrolmentResponse struct {
	ID            int64           `json:"id"`
	EnrolmentDate string          `json:"enrolment_date"`
	Student       EnrolledStudent `json:"student"`
	Course        EnrolledCourse  `json:"course"`
}

// StudentEnrolment is the enrolment projection nested under a student. The
// student back-reference is excluded by construction to avoid cycles.
type StudentEnrolment struct {
	ID            int64          `json:"id"`
	EnrolmentDate string         `json:"enrolment_date"`
	Course        EnrolledCourse `json:"course"`
}

// CourseEnrolment is the enrolment projection nested under a course. The
// course back-reference is excluded by construction to avoid cycles.
type CourseEnrolment struct {
	ID            int64           `json:"id"`
	EnrolmentDate string          `json:"enrolment_date"`
	Student       EnrolledStudent `json:"student"`
}

// NewEnrolledStudent projects a student onto its reduced nested form.
func NewEnrolledStudent(s models.Student) EnrolledStudent {
	return EnrolledStudent{
		StudentID: s.ID,
		FirstName: derefString(s.FirstName),
		LastName:  derefString(s.LastName),
	}
}

// NewEnrolledCourse projects a course onto its reduced nested form.
func NewEnrolledCourse(c models.Course) EnrolledCourse {
	return EnrolledCourse{
		CourseID: c.ID,
		Name:     derefString(c.Name),
		Duration: derefFloat(c.Duration),
	}
}

// NewEnrolmentResponse projects an enrolment with both of its references
// resolved by the caller.
func NewEnrolmentResponse(e models.Enrolment, student models.Student, course models.Course) EnrolmentResponse {
	return EnrolmentResponse{
		ID:            e.ID,
		EnrolmentDate: helpers.FormatDate(e.EnrolmentDate),
		Student:       NewEnrolledStudent(student),
		Course:        NewEnrolledCourse(course),
	}
}

// NewStudentEnrolment projects an enrolment for nesting under its student.
func NewStudentEnrolment(e models.Enrolment, course models.Course) StudentEnrolment {
	return StudentEnrolment{
		ID:            e.ID,
		EnrolmentDate: helpers.FormatDate(e.EnrolmentDate),
		Course:        NewEnrolledCourse(course),
	}
}

// NewCourseEnrolment projects an enrolment for nesting under its course.
func NewCourseEnrolment(e models.Enrolment, student models.Student) CourseEnrolment {
	return CourseEnrolment{
		ID:            e.ID,
		EnrolmentDate: helpers.FormatDate(e.EnrolmentDate),
		Student:       NewEnrolledStudent(student),
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func derefInt64(i *int64) int64 {
	if i == nil {
		return 0
	}
	return *i
}
