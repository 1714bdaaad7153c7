package avro

import "errors"

// Configuration errors reported by the loaders. They are wrapped with the
// position of the offending entry.
var (
	ErrEmptyPattern      = errors.New("pattern has neither token nor replacement")
	ErrDuplicatePattern  = errors.New("duplicate pattern token")
	ErrInvalidCondition  = errors.New("invalid rule condition")
	ErrInvalidClass      = errors.New("invalid character class")
	ErrExceptionConflict = errors.New("conflicting word exceptions")
)
