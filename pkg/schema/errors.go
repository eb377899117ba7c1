package schema

import "errors"

var (
	// ErrNotStruct is returned when a registered sample is not a struct or pointer to struct.
	ErrNotStruct = errors.New("sample must be a struct or a pointer to struct")

	// ErrNotConstrained is returned when a registered struct does not embed Constrained.
	ErrNotConstrained = errors.New("struct does not embed schema.Constrained")

	// ErrInvalidDive is returned when a tag dives deeper than the field's sequence nesting.
	ErrInvalidDive = errors.New("dive used on a non-sequence level")

	// ErrIncompatibleConstraint is returned in strict mode when a constraint cannot apply to a field type.
	ErrIncompatibleConstraint = errors.New("constraint is not compatible with field type")

	// ErrInvalidSchema is returned when a document schema is malformed.
	ErrInvalidSchema = errors.New("invalid document schema")

	// ErrDuplicateType is returned when two document schemas declare the same type.
	ErrDuplicateType = errors.New("duplicate document type")
)
