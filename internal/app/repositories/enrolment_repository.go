package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openlms/backend/internal/app/models"
	"github.com/openlms/backend/internal/pkg/apperrors"
	"github.com/openlms/backend/internal/pkg/dberrors"
)

// EnrolmentFilter narrows an enrolment listing. All fields are optional and
// combine with AND.
type EnrolmentFilter struct {
	EnrolmentID *int64
	StudentID   *int64
	CourseID    *int64
}

// EnrolmentRepository handles database operations for enrolments
type EnrolmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrolmentRepository creates a new EnrolmentRepository
func NewEnrolmentRepository(db *pgxpool.Pool) *EnrolmentRepository {
	return &EnrolmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create persists a new enrolment and fills in the generated id. An unknown
// student or course reference surfaces as a foreign-key violation, a
// duplicate (student, course) pair as a unique violation.
func (r *EnrolmentRepository) Create(ctx context.Context, enrolment *models.Enrolment) error {
	sql, args, err := r.sb.Insert("enrolments").
		Columns("enrolment_date", "student_id", "course_id").
		Values(enrolment.EnrolmentDate, enrolment.StudentID, enrolment.CourseID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create enrolment query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&enrolment.ID); err != nil {
		return dberrors.Translate(err)
	}

	return nil
}

// GetByID retrieves an enrolment by ID
func (r *EnrolmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrolment, error) {
	sql, args, err := r.sb.Select("id", "enrolment_date", "student_id", "course_id").
		From("enrolments").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get enrolment query: %w", err)
	}

	var enrolment models.Enrolment
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&enrolment.ID,
		&enrolment.EnrolmentDate,
		&enrolment.StudentID,
		&enrolment.CourseID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrolmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrolment: %w", err)
	}

	return &enrolment, nil
}

// List retrieves enrolments matching the filter. An empty filter lists the
// whole table.
func (r *EnrolmentRepository) List(ctx context.Context, filter EnrolmentFilter) ([]*models.Enrolment, error) {
	builder := r.sb.Select("id", "enrolment_date", "student_id", "course_id").
		From("enrolments").
		OrderBy("id")

	if filter.EnrolmentID != nil {
		builder = builder.Where(squirrel.Eq{"id": *filter.EnrolmentID})
	}
	if filter.StudentID != nil {
		builder = builder.Where(squirrel.Eq{"student_id": *filter.StudentID})
	}
	if filter.CourseID != nil {
		builder = builder.Where(squirrel.Eq{"course_id": *filter.CourseID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrolments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEnrolments(rows)
}

// GetByStudentID retrieves all enrolments held by a student. This is the
// query-based back reference of the student/enrolment relationship.
func (r *EnrolmentRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrolment, error) {
	return r.List(ctx, EnrolmentFilter{StudentID: &studentID})
}

// GetByCourseID retrieves all enrolments in a course
func (r *EnrolmentRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Enrolment, error) {
	return r.List(ctx, EnrolmentFilter{CourseID: &courseID})
}

// Delete removes an enrolment. Nothing depends on enrolments, so no cascade
// is involved.
func (r *EnrolmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrolments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrolment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrolmentNotFound
	}

	return nil
}

func scanEnrolments(rows pgx.Rows) ([]*models.Enrolment, error) {
	var enrolments []*models.Enrolment
	for rows.Next() {
		var enrolment models.Enrolment
		if err := rows.Scan(
			&enrolment.ID,
			&enrolment.EnrolmentDate,
			&enrolment.StudentID,
			&enrolment.CourseID,
		); err != nil {
			return nil, err
		}
		enrolments = append(enrolments, &enrolment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrolments, nil
}
