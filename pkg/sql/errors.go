package sql

import (
	"errors"

	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether err was raised by a unique constraint.
// An empty constraint matches any of them.
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolationCode {
		return false
	}

	return constraint == "" || pqErr.Constraint == constraint
}
