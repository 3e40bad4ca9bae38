package service

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound — записи с таким id нет.
	ErrItemNotFound = errors.New("item not found")

	// ErrConstraintViolation — корень для всех *ConstraintViolation, удобно для errors.Is.
	ErrConstraintViolation = errors.New("constraint violation")
)

// ConstraintViolation — ввод нарушает правило столбца: обязательность, уникальность,
// длину или числовой формат.
type ConstraintViolation struct {
	Field  string
	Reason string
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ConstraintViolation) Is(target error) bool {
	return target == ErrConstraintViolation
}

func violation(field, format string, args ...any) *ConstraintViolation {
	return &ConstraintViolation{Field: field, Reason: fmt.Sprintf(format, args...)}
}
