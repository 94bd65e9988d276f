package dto

import "github.com/openlms/backend/internal/app/models"

// CreateCourseRequest represents course creation data.
type CreateCourseRequest struct {
	Name      *string  `json:"name"`
	Duration  *float64 `json:"duration"`
	TeacherID *int64   `json:"teacher_id" binding:"omitempty,gt=0"`
}

// UpdateCourseRequest represents a partial course update.
type UpdateCourseRequest struct {
	Name      *string  `json:"name"`
	Duration  *float64 `json:"duration"`
	TeacherID *int64   `json:"teacher_id" binding:"omitempty,gt=0"`
}

// CourseTeacher is the read-only teacher projection nested under a course:
// name and department only.
type CourseTeacher struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department"`
}

// CourseResponse is the course projection. Field order is the serialization
// contract: name, duration, course teacher, student enrolments. The teacher
// is null when the course has no assigned teacher.
type CourseResponse struct {
	CourseID   int64             `json:"course_id"`
	Name       string            `json:"name"`
	Duration   float64           `json:"duration"`
	TeacherID  *int64            `json:"teacher_id"`
	Teacher    *CourseTeacher    `json:"teacher"`
	Enrolments []CourseEnrolment `json:"enrolments"`
}

// NewCourseResponse projects a course with its teacher (nil when the course
// is unassigned) and its enrolments. The caller supplies the students
// referenced by those enrolments, keyed by student id.
func NewCourseResponse(c models.Course, teacher *models.Teacher, enrolments []models.Enrolment, students map[int64]models.Student) CourseResponse {
	var nestedTeacher *CourseTeacher
	if teacher != nil {
		nestedTeacher = &CourseTeacher{
			FirstName:  derefString(teacher.FirstName),
			LastName:   derefString(teacher.LastName),
			Department: derefString(teacher.Department),
		}
	}

	nested := make([]CourseEnrolment, 0, len(enrolments))
	for _, e := range enrolments {
		nested = append(nested, NewCourseEnrolment(e, students[derefInt64(e.StudentID)]))
	}

	return CourseResponse{
		CourseID:   c.ID,
		Name:       derefString(c.Name),
		Duration:   derefFloat(c.Duration),
		TeacherID:  c.TeacherID,
		Teacher:    nestedTeacher,
		Enrolments: nested,
	}
}
