package constraint

import "errors"

var (
	// ErrUnknownKind is returned when a tag or schema names a constraint that does not exist.
	ErrUnknownKind = errors.New("unknown constraint kind")

	// ErrInvalidTag is returned when a constraint tag item cannot be parsed.
	ErrInvalidTag = errors.New("invalid constraint tag")

	// ErrTypeMismatch is wrapped by MismatchError.
	ErrTypeMismatch = errors.New("constraint is not applicable to value type")
)
