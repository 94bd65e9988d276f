package models

// Course represents a course run by the school.
type Course struct {
	ID       int64    `json:"course_id" db:"course_id"`
	Name     *string  `json:"name" db:"name"` // Unique, pattern-constrained
	Duration *float64 `json:"duration" db:"duration"`

	// TeacherID is nullable: a course survives its teacher's departure with
	// the reference cleared.
	TeacherID *int64 `json:"teacher_id" db:"teacher_id"`
}
