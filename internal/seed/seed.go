// Package seed populates a fresh database with a small, known data set:
// two students, two teachers, five courses and three enrolments. It is
// meant for local development and is idempotent per run only on an empty
// database.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openlms/backend/internal/pkg/helpers"
	"github.com/openlms/backend/internal/pkg/logger"
)

type seedStudent struct {
	firstName string
	lastName  string
	email     string
	phone     string
	address   string
}

type seedTeacher struct {
	firstName  string
	lastName   string
	department string
	address    string
	phone      string
	email      string
}

type seedCourse struct {
	name     string
	duration float64
	teacher  int // index into the seeded teachers
}

type seedEnrolment struct {
	date    string
	student int // index into the seeded students
	course  int // index into the seeded courses
}

var (
	students = []seedStudent{
		{"Alice", "Son", "alice@email.com", "12345678", "Sydney"},
		{"Bob", "Aliceson", "bob@email.com", "67891234", "Brisbane"},
	}

	teachers = []seedTeacher{
		{"Teacher", "1", "Science", "Sydney", "0412345678", "teacher1@email.com"},
		{"Teacher", "2", "Management", "Brisbane", "98091234", "teacher2@email.com"},
	}

	courses = []seedCourse{
		{"Physics", 3, 0},
		{"Chemistry", 3, 0},
		{"Biology", 3, 0},
		{"Mathematics", 3, 1},
		{"Accounting", 3, 1},
	}

	enrolments = []seedEnrolment{
		{"2025-09-29", 0, 0},
		{"2025-09-29", 1, 1},
		{"2025-09-29", 0, 1},
	}
)

// Run inserts the seed data set in one transaction. Courses reference
// teachers and enrolments reference both students and courses, so rows go
// in dependency order.
func Run(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	studentIDs, err := seedStudents(ctx, tx)
	if err != nil {
		return err
	}

	teacherIDs, err := seedTeachers(ctx, tx)
	if err != nil {
		return err
	}

	courseIDs, err := seedCourses(ctx, tx, teacherIDs)
	if err != nil {
		return err
	}

	if err := seedEnrolments(ctx, tx, studentIDs, courseIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	logger.Info().
		Int("students", len(students)).
		Int("teachers", len(teachers)).
		Int("courses", len(courses)).
		Int("enrolments", len(enrolments)).
		Msg("Database seeded")
	return nil
}

func seedStudents(ctx context.Context, tx pgx.Tx) ([]int64, error) {
	ids := make([]int64, 0, len(students))
	for _, s := range students {
		var id int64
		err := tx.QueryRow(ctx,
			`INSERT INTO students (first_name, last_name, email, phone, address)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING student_id`,
			s.firstName, s.lastName, s.email, s.phone, s.address,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to seed student %s %s: %w", s.firstName, s.lastName, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedTeachers(ctx context.Context, tx pgx.Tx) ([]int64, error) {
	ids := make([]int64, 0, len(teachers))
	for _, t := range teachers {
		var id int64
		err := tx.QueryRow(ctx,
			`INSERT INTO teachers (first_name, last_name, department, address, phone, email)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING teacher_id`,
			t.firstName, t.lastName, t.department, t.address, t.phone, t.email,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to seed teacher %s %s: %w", t.firstName, t.lastName, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedCourses(ctx context.Context, tx pgx.Tx, teacherIDs []int64) ([]int64, error) {
	ids := make([]int64, 0, len(courses))
	for _, c := range courses {
		var id int64
		err := tx.QueryRow(ctx,
			`INSERT INTO courses (name, duration, teacher_id)
			 VALUES ($1, $2, $3)
			 RETURNING course_id`,
			c.name, c.duration, teacherIDs[c.teacher],
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to seed course %s: %w", c.name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedEnrolments(ctx context.Context, tx pgx.Tx, studentIDs, courseIDs []int64) error {
	for _, e := range enrolments {
		date, err := time.Parse(helpers.DateLayout, e.date)
		if err != nil {
			return fmt.Errorf("invalid seed enrolment date %q: %w", e.date, err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO enrolments (enrolment_date, student_id, course_id)
			 VALUES ($1, $2, $3)`,
			date, studentIDs[e.student], courseIDs[e.course],
		)
		if err != nil {
			return fmt.Errorf("failed to seed enrolment: %w", err)
		}
	}
	return nil
}
