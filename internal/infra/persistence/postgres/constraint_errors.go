package postgres

import (
	"strings"

	"backoffice/internal/errors"

	"gorm.io/gorm"
)

// SQLSTATE codes the console repositories translate.
const (
	sqlStateNotNull = "23502"
	sqlStateCheck   = "23514"
)

// isNotNullConstraintViolation matches a missing session column. gorm only
// translates some driver errors, so the text is checked.
func isNotNullConstraintViolation(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, sqlStateNotNull) || strings.Contains(msg, "violates not-null constraint")
}

// isCheckConstraintViolation matches a settings row the database rejected.
func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || strings.Contains(err.Error(), sqlStateCheck)
}
