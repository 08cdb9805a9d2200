package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// pgConstraintName returns the violated constraint, when Postgres reported one.
func pgConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgErrorCode(err) == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	return pgErrorCode(err) == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || pgErrorCode(err) == pgCheckViolation
}
