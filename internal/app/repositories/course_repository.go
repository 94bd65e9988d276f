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

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create persists a new course and fills in the generated id. A duplicate
// name or an unknown teacher reference comes back as a typed integrity
// error.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, duration, teacher_id)
		VALUES ($1, $2, $3)
		RETURNING course_id
	`

	err := r.db.QueryRow(ctx, query, course.Name, course.Duration, course.TeacherID).Scan(&course.ID)
	if err != nil {
		return dberrors.Translate(err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT course_id, name, duration, teacher_id
		FROM courses
		WHERE course_id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.Duration,
		&course.TeacherID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT course_id, name, duration, teacher_id
		FROM courses
		ORDER BY course_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// GetByTeacherID retrieves all courses taught by a given teacher. This is
// the query-based back reference of the teacher/course relationship.
func (r *CourseRepository) GetByTeacherID(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	query := `
		SELECT course_id, name, duration, teacher_id
		FROM courses
		WHERE teacher_id = $1
		ORDER BY course_id
	`

	rows, err := r.db.Query(ctx, query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// GetByIDs retrieves the courses with the given ids, keyed by id
func (r *CourseRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]models.Course, error) {
	courses := make(map[int64]models.Course, len(ids))
	if len(ids) == 0 {
		return courses, nil
	}

	query := `
		SELECT course_id, name, duration, teacher_id
		FROM courses
		WHERE course_id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Name, &course.Duration, &course.TeacherID); err != nil {
			return nil, err
		}
		courses[course.ID] = course
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Update writes the full merged course row back
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET name = $1, duration = $2, teacher_id = $3
		WHERE course_id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, course.Name, course.Duration, course.TeacherID, course.ID)
	if err != nil {
		return dberrors.Translate(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course and every enrolment that depends on it in one
// transaction.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM enrolments WHERE course_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting course enrolments: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM courses WHERE course_id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting course: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCourseNotFound
		}

		return nil
	})
}

func scanCourses(rows pgx.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Name, &course.Duration, &course.TeacherID); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
