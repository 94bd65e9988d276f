package models

import "time"

// Enrolment links a student to a course. An enrolment cannot exist without
// both references, and (student_id, course_id) is unique across the table.
type Enrolment struct {
	ID            int64     `json:"id" db:"id"`
	EnrolmentDate time.Time `json:"enrolment_date" db:"enrolment_date"`
	StudentID     *int64    `json:"student_id" db:"student_id"`
	CourseID      *int64    `json:"course_id" db:"course_id"`
}
