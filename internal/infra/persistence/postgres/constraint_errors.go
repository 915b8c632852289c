package postgres

import (
	"strings"

	domainerrors "steamcache/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for constraint error checking. Both PostgreSQL and SQLite
// errors are translated by GORM when TranslateError is enabled; the message
// checks cover drivers that do not translate.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "23514") // PostgreSQL check_violation error code
}

// translateWriteError maps a failed write onto the domain error taxonomy.
// Rows rejected by a constraint mean the payload carried invalid values.
func translateWriteError(err error, details string) error {
	if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
		return errors.Wrapf(domainerrors.ErrInvalidPayload, "%s: %v", details, err)
	}

	return domainerrors.NewStoreError(err, details)
}
