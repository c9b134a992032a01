package rating

import "errors"

// ErrOutOfRange is returned when stars fall outside the policy range.
var ErrOutOfRange = errors.New("stars out of range")
