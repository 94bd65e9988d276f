package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestTranslateNotIntegrityError(t *testing.T) {
	t.Parallel()

	plain := errors.New("connection refused")
	if got := Translate(plain); got != plain {
		t.Fatalf("Translate(%v) = %v, want the error unchanged", plain, got)
	}

	pgErr := &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}
	if got := Translate(pgErr); got != error(pgErr) {
		t.Fatalf("Translate(non class-23 pg error) = %v, want the error unchanged", got)
	}
}

func TestTranslateCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pgErr    *pgconn.PgError
		sentinel error
	}{
		{
			name:     "not-null violation",
			pgErr:    &pgconn.PgError{Code: "23502", ColumnName: "first_name"},
			sentinel: ErrNotNullViolation,
		},
		{
			name:     "unique violation",
			pgErr:    &pgconn.PgError{Code: "23505", ConstraintName: "students_email_key", Detail: "Key (email)=(alice@email.com) already exists."},
			sentinel: ErrUniqueViolation,
		},
		{
			name:     "foreign key violation",
			pgErr:    &pgconn.PgError{Code: "23503", ConstraintName: "enrolments_student_id_fkey", Detail: "Key (student_id)=(99) is not present in table \"students\"."},
			sentinel: ErrForeignKeyViolation,
		},
		{
			name:     "other class 23",
			pgErr:    &pgconn.PgError{Code: "23514", ConstraintName: "courses_duration_check"},
			sentinel: ErrIntegrityViolation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Translate(tt.pgErr)
			if !errors.Is(got, tt.sentinel) {
				t.Fatalf("Translate(%s) = %v, want errors.Is %v", tt.pgErr.Code, got, tt.sentinel)
			}

			var integrityErr *IntegrityError
			if !errors.As(got, &integrityErr) {
				t.Fatalf("Translate(%s) = %T, want *IntegrityError", tt.pgErr.Code, got)
			}
		})
	}
}

func TestTranslateWrappedError(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "courses_name_key"}
	wrapped := fmt.Errorf("error creating course: %w", pgErr)

	got := Translate(wrapped)
	if !errors.Is(got, ErrUniqueViolation) {
		t.Fatalf("Translate(wrapped pg error) = %v, want unique violation", got)
	}
}

func TestIntegrityErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *IntegrityError
		want string
	}{
		{
			name: "not-null names the column",
			err:  &IntegrityError{Err: ErrNotNullViolation, Column: "last_name"},
			want: "Required field: last_name cannot be null.",
		},
		{
			name: "detail passes through",
			err:  &IntegrityError{Err: ErrUniqueViolation, Constraint: "students_email_key", Detail: "Key (email)=(bob@email.com) already exists."},
			want: "Key (email)=(bob@email.com) already exists.",
		},
		{
			name: "constraint fallback",
			err:  &IntegrityError{Err: ErrForeignKeyViolation, Constraint: "enrolments_course_id_fkey"},
			want: "constraint enrolments_course_id_fkey violated",
		},
		{
			name: "sentinel fallback",
			err:  &IntegrityError{Err: ErrIntegrityViolation},
			want: "integrity constraint violation",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "students_email_key"}

	if !IsDuplicateConstraintError(pgErr, "students_email_key") {
		t.Error("expected match on same constraint name")
	}
	if IsDuplicateConstraintError(pgErr, "courses_name_key") {
		t.Error("expected no match on a different constraint name")
	}
	if IsDuplicateConstraintError(errors.New("not a pg error"), "students_email_key") {
		t.Error("expected no match on a non-pg error")
	}
}
