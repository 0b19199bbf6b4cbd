package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrReferenceMissing a foreign key target does not exist (e.g. the unit was
// deleted between the ownership check and the write).
var ErrReferenceMissing = errors.New("referenced record does not exist")

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgCode(err) == pgForeignKeyViolation
}
