package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeCheckViolation    = "23514"
	pgCodeNumericOutOfRange = "22003"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsCheckViolationError checks if the error comes from a failed CHECK constraint,
// e.g. a non-positive kcal_per_hour or duration_minutes
func IsCheckViolationError(err error) bool {
	return pgErrorCode(err) == pgCodeCheckViolation
}

// IsNumericOutOfRangeError checks if a value did not fit its column type,
// e.g. a duration_minutes above the INTEGER range
func IsNumericOutOfRangeError(err error) bool {
	return pgErrorCode(err) == pgCodeNumericOutOfRange
}
