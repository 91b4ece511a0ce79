package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrForeignKey   = errors.New("foreign key violation")
)

// Postgres SQLSTATE codes, used when the connection was opened without
// gorm's TranslateError.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func translate(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", ErrForeignKey, err)
	case errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation:
		return fmt.Errorf("%w: %s", ErrDuplicateKey, pgErr.ConstraintName)
	case errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrForeignKey, pgErr.ConstraintName)
	}
	return err
}
