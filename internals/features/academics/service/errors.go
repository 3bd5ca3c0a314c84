package service

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Structured error kinds returned by the academics services. Controllers map
// these to HTTP statuses and human-readable messages; the services themselves
// never format user-facing text.
var (
	ErrNotFound         = errors.New("referenced entity does not exist")
	ErrDuplicateKey     = errors.New("unique constraint violated")
	ErrInvalidReference = errors.New("referenced natural key does not exist")
	ErrOutOfRange       = errors.New("grade outside allowed range")
	ErrUnavailable      = errors.New("storage unavailable")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateDBError folds driver-level failures into the error taxonomy. The
// app-level existence checks catch most violations first; this is the backstop
// for races that reach the DB constraints.
func translateDBError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return ErrDuplicateKey
		case pgForeignKeyViolation:
			return ErrInvalidReference
		}
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrInvalidReference
	case errors.Is(err, gorm.ErrInvalidDB):
		return ErrUnavailable
	}
	return err
}
