package persistence

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrConstraintViolation is returned when a write breaks a column rule,
// either in the gateway's own checks or in the database.
var ErrConstraintViolation = errors.New("constraint violation")

// ErrSessionClosed is returned by operations on a committed or closed session.
var ErrSessionClosed = errors.New("session closed")

// ColumnError describes which column rule a write broke.
type ColumnError struct {
	Column string
	Reason string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %s: %s", e.Column, e.Reason)
}

// Unwrap returns ErrConstraintViolation for errors.Is() support.
func (e *ColumnError) Unwrap() error {
	return ErrConstraintViolation
}

// translate maps gorm's translated driver errors onto this package's errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrCheckConstraintViolated),
		errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	default:
		return err
	}
}
