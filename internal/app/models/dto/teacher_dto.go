package dto

import "github.com/openlms/backend/internal/app/models"

// CreateTeacherRequest represents teacher creation data.
type CreateTeacherRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Department *string `json:"department"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
}

// UpdateTeacherRequest represents a partial teacher update.
type UpdateTeacherRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Department *string `json:"department"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
}

// TeacherCourse is the course projection nested under a teacher. The
// teacher back-reference and foreign key are excluded by construction;
// the course enrolments stay in, each with its student.
type TeacherCourse struct {
	CourseID   int64             `json:"course_id"`
	Name       string            `json:"name"`
	Duration   float64           `json:"duration"`
	Enrolments []CourseEnrolment `json:"enrolments"`
}

// TeacherResponse is the teacher projection. Field order is the
// serialization contract: name, department, courses, contact details.
type TeacherResponse struct {
	TeacherID  int64           `json:"teacher_id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Department string          `json:"department"`
	Courses    []TeacherCourse `json:"courses"`
	Address    *string         `json:"address"`
	Phone      *string         `json:"phone"`
	Email      *string         `json:"email"`
}

// NewTeacherResponse projects a teacher together with the courses they
// teach, resolved by the caller through a foreign-key query. Enrolments are
// keyed by course id, the referenced students by student id.
func NewTeacherResponse(t models.Teacher, courses []models.Course, enrolments map[int64][]models.Enrolment, students map[int64]models.Student) TeacherResponse {
	nested := make([]TeacherCourse, 0, len(courses))
	for _, c := range courses {
		courseEnrolments := enrolments[c.ID]
		nestedEnrolments := make([]CourseEnrolment, 0, len(courseEnrolments))
		for _, e := range courseEnrolments {
			nestedEnrolments = append(nestedEnrolments, NewCourseEnrolment(e, students[derefInt64(e.StudentID)]))
		}
		nested = append(nested, TeacherCourse{
			CourseID:   c.ID,
			Name:       derefString(c.Name),
			Duration:   derefFloat(c.Duration),
			Enrolments: nestedEnrolments,
		})
	}

	return TeacherResponse{
		TeacherID:  t.ID,
		FirstName:  derefString(t.FirstName),
		LastName:   derefString(t.LastName),
		Department: derefString(t.Department),
		Courses:    nested,
		Address:    t.Address,
		Phone:      t.Phone,
		Email:      t.Email,
	}
}
