package service

import (
	"errors"
	"strings"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// Reasons a catalog mutation is rejected.
var (
	ErrNoActivities      = errors.New("no activities provided")
	ErrUnknownActivity   = errors.New("activity not found")
	ErrUnknownCategory   = errors.New("category not found")
	ErrDuplicateCategory = errors.New("duplicate category name")
	ErrDuplicateProduct  = errors.New("duplicate product name")
	ErrNotLinked         = errors.New("activity not linked to category")
	ErrStarsOutOfRange   = errors.New("stars out of range")
	ErrUnknownProduct    = errors.New("product not found")
)

// ValidationError reports a rejected mutation. The catalog is unchanged
// when one is returned.
type ValidationError struct {
	Op     string // operation name, e.g. "add_product"
	Reason error  // one of the Err* reasons above
	Detail string // offending name or value
	Err    error  // underlying cause, may be nil
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("catalog.")
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Reason.Error())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Unwrap exposes ErrValidation, the reason and the cause to errors.Is/As.
func (e *ValidationError) Unwrap() []error {
	errs := []error{ErrValidation, e.Reason}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
