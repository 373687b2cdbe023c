package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation reports whether err is a unique-constraint violation on
// the named index. The typed pgconn check covers PostgreSQL; the string
// fallback covers the SQLite driver used for local runs and tests.
func IsUniqueViolation(err error, index string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && (index == "" || pgErr.ConstraintName == index)
	}

	msg := err.Error()
	if strings.Contains(msg, "SQLSTATE 23505") {
		return index == "" || strings.Contains(msg, index)
	}
	if strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "constraint failed") {
		return true
	}
	return false
}
