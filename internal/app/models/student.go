package models

// Student defines the student model based on the 'students' table.
// Columns that the database may reject as NULL are pointers so a missing
// request field reaches the database as NULL and surfaces as a not-null
// violation naming the column.
type Student struct {
	ID        int64   `json:"student_id" db:"student_id"`
	FirstName *string `json:"first_name" db:"first_name"`
	LastName  *string `json:"last_name" db:"last_name"`
	Email     *string `json:"email" db:"email"` // Globally unique
	Phone     *string `json:"phone,omitempty" db:"phone"`
	Address   *string `json:"address,omitempty" db:"address"`
}
