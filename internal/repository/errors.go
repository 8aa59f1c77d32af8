package repository

import (
	"errors"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation      = "23505"
	pqSerializationFailure = "40001"
)

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != pqUniqueViolation {
		return false
	}
	return constraint == "" || string(pqErr.Constraint) == constraint
}

// IsSerializationFailure reports whether err is a serialization conflict a
// caller may retry.
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqSerializationFailure
}
