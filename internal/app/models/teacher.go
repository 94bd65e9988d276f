package models

// Teacher defines the teacher model based on the 'teachers' table.
// Email carries no uniqueness constraint, unlike Student.Email.
type Teacher struct {
	ID         int64   `json:"teacher_id" db:"teacher_id"`
	FirstName  *string `json:"first_name" db:"first_name"`
	LastName   *string `json:"last_name" db:"last_name"`
	Department *string `json:"department" db:"department"`
	Address    *string `json:"address,omitempty" db:"address"`
	Phone      *string `json:"phone,omitempty" db:"phone"`
	Email      *string `json:"email,omitempty" db:"email"`
}
