// Package dberrors translates PostgreSQL constraint violations into typed
// errors the rest of the application can match on without importing pgconn.
package dberrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations (class 23).
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	classIntegrityViolation = "23"
)

// Sentinel errors for the constraint violation categories. Callers match
// with errors.Is after a write fails.
var (
	ErrNotNullViolation    = errors.New("not-null constraint violation")
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
	ErrIntegrityViolation  = errors.New("integrity constraint violation")
)

// IntegrityError carries the user-facing pieces of a constraint violation:
// the offending column for not-null failures, the constraint name and the
// server's detail line otherwise. Nothing else from the driver error is
// retained.
type IntegrityError struct {
	Err        error
	Column     string
	Constraint string
	Detail     string
}

// Error implements the error interface
func (e *IntegrityError) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotNullViolation):
		return fmt.Sprintf("Required field: %s cannot be null.", e.Column)
	case e.Detail != "":
		return e.Detail
	case e.Constraint != "":
		return fmt.Sprintf("constraint %s violated", e.Constraint)
	default:
		return e.Err.Error()
	}
}

// Unwrap implements errors.Unwrap
func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// Translate maps a pgconn.PgError onto a typed IntegrityError. Violation
// categories are checked in order: not-null, unique, foreign key, then any
// other class-23 code. Errors that are not integrity violations are returned
// unchanged.
func Translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case pgErr.Code == codeNotNullViolation:
		return &IntegrityError{Err: ErrNotNullViolation, Column: pgErr.ColumnName}
	case pgErr.Code == codeUniqueViolation:
		return &IntegrityError{Err: ErrUniqueViolation, Constraint: pgErr.ConstraintName, Detail: pgErr.Detail}
	case pgErr.Code == codeForeignKeyViolation:
		return &IntegrityError{Err: ErrForeignKeyViolation, Constraint: pgErr.ConstraintName, Detail: pgErr.Detail}
	case strings.HasPrefix(pgErr.Code, classIntegrityViolation):
		return &IntegrityError{Err: ErrIntegrityViolation}
	default:
		return err
	}
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique
// violation error for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation && pgErr.ConstraintName == constraintName
}
