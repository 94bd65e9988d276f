package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openlms/backend/internal/app/models"
	"github.com/openlms/backend/internal/db"
	"github.com/openlms/backend/internal/pkg/apperrors"
	"github.com/openlms/backend/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create persists a new student and fills in the generated id. Constraint
// violations (missing required column, duplicate email) come back as typed
// integrity errors.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (first_name, last_name, email, phone, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING student_id
	`

	err := r.db.QueryRow(ctx, query,
		student.FirstName, student.LastName, student.Email, student.Phone, student.Address,
	).Scan(&student.ID)
	if err != nil {
		return dberrors.Translate(err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT student_id, first_name, last_name, email, phone, address
		FROM students
		WHERE student_id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.Phone,
		&student.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT student_id, first_name, last_name, email, phone, address
		FROM students
		ORDER BY student_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.FirstName,
			&student.LastName,
			&student.Email,
			&student.Phone,
			&student.Address,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetByIDs retrieves the students with the given ids, keyed by id. Missing
// ids are simply absent from the result.
func (r *StudentRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]models.Student, error) {
	students := make(map[int64]models.Student, len(ids))
	if len(ids) == 0 {
		return students, nil
	}

	query := `
		SELECT student_id, first_name, last_name, email, phone, address
		FROM students
		WHERE student_id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.FirstName,
			&student.LastName,
			&student.Email,
			&student.Phone,
			&student.Address,
		); err != nil {
			return nil, err
		}
		students[student.ID] = student
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update writes the full merged student row back. The caller merges partial
// payloads onto the stored record first; uniqueness is re-checked by the
// database at commit.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, email = $3, phone = $4, address = $5
		WHERE student_id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FirstName, student.LastName, student.Email, student.Phone, student.Address,
		student.ID,
	)
	if err != nil {
		return dberrors.Translate(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student and every enrolment that depends on it in one
// transaction.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM enrolments WHERE student_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting student enrolments: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting student: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		return nil
	})
}
