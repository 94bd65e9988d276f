package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openlms/backend/internal/app/models"
	"github.com/openlms/backend/internal/db"
	"github.com/openlms/backend/internal/pkg/apperrors"
	"github.com/openlms/backend/internal/pkg/dberrors"
	"github.com/openlms/backend/internal/pkg/logger"
)

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db *pgxpool.Pool
	// Use squirrel instance with placeholder format
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create persists a new teacher and fills in the generated id
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	sql, args, err := r.sb.Insert("teachers").
		Columns("first_name", "last_name", "department", "address", "phone", "email").
		Values(teacher.FirstName, teacher.LastName, teacher.Department, teacher.Address, teacher.Phone, teacher.Email).
		Suffix("RETURNING teacher_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create teacher SQL")
		return fmt.Errorf("failed to build create teacher query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&teacher.ID); err != nil {
		return dberrors.Translate(err)
	}

	return nil
}

// GetByID retrieves a teacher by ID
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	sql, args, err := r.sb.Select("teacher_id", "first_name", "last_name", "department", "address", "phone", "email").
		From("teachers").
		Where(squirrel.Eq{"teacher_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	var teacher models.Teacher
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&teacher.ID,
		&teacher.FirstName,
		&teacher.LastName,
		&teacher.Department,
		&teacher.Address,
		&teacher.Phone,
		&teacher.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return &teacher, nil
}

// GetAll retrieves all teachers, optionally filtered by department
func (r *TeacherRepository) GetAll(ctx context.Context, department *string) ([]*models.Teacher, error) {
	builder := r.sb.Select("teacher_id", "first_name", "last_name", "department", "address", "phone", "email").
		From("teachers").
		OrderBy("teacher_id")

	if department != nil {
		builder = builder.Where(squirrel.Eq{"department": *department})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		if err := rows.Scan(
			&teacher.ID,
			&teacher.FirstName,
			&teacher.LastName,
			&teacher.Department,
			&teacher.Address,
			&teacher.Phone,
			&teacher.Email,
		); err != nil {
			return nil, err
		}
		teachers = append(teachers, &teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

// Update writes the full merged teacher row back
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	sql, args, err := r.sb.Update("teachers").
		Set("first_name", teacher.FirstName).
		Set("last_name", teacher.LastName).
		Set("department", teacher.Department).
		Set("address", teacher.Address).
		Set("phone", teacher.Phone).
		Set("email", teacher.Email).
		Where(squirrel.Eq{"teacher_id": teacher.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update teacher query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return dberrors.Translate(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}

// Delete removes a teacher. Courses taught by the teacher survive with their
// teacher reference cleared, in the same transaction as the delete.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE courses SET teacher_id = NULL WHERE teacher_id = $1`, id); err != nil {
			return fmt.Errorf("error clearing teacher reference on courses: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM teachers WHERE teacher_id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting teacher: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrTeacherNotFound
		}

		return nil
	})
}
