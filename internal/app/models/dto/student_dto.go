package dto

import "github.com/openlms/backend/internal/app/models"

// CreateStudentRequest represents student creation data. Required fields are
// pointers on purpose: a missing field reaches the database as NULL so the
// not-null constraint reports the offending column.
type CreateStudentRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

// UpdateStudentRequest represents a partial student update. Absent fields
// keep their stored values.
type UpdateStudentRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

// StudentResponse is the student projection. Field order is the
// serialization contract: name, enrolments, contact details.
type StudentResponse struct {
	StudentID  int64              `json:"student_id"`
	FirstName  string             `json:"first_name"`
	LastName   string             `json:"last_name"`
	Enrolments []StudentEnrolment `json:"enrolments"`
	Email      string             `json:"email"`
	Phone      *string            `json:"phone"`
	Address    *string            `json:"address"`
}

// NewStudentResponse projects a student together with its enrolments. The
// caller supplies the courses referenced by those enrolments, keyed by
// course id; back-references stay query results, never stored pointers.
func NewStudentResponse(s models.Student, enrolments []models.Enrolment, courses map[int64]models.Course) StudentResponse {
	nested := make([]StudentEnrolment, 0, len(enrolments))
	for _, e := range enrolments {
		nested = append(nested, NewStudentEnrolment(e, courses[derefInt64(e.CourseID)]))
	}

	return StudentResponse{
		StudentID:  s.ID,
		FirstName:  derefString(s.FirstName),
		LastName:   derefString(s.LastName),
		Enrolments: nested,
		Email:      derefString(s.Email),
		Phone:      s.Phone,
		Address:    s.Address,
	}
}
