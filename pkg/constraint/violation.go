package constraint

import "fmt"

// Violation is a single constraint failure. Value holds the offending value,
// or nil when the value was absent.
type Violation struct {
	Path    string
	Message string
	Value   any
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// MismatchError reports a constraint attached to a value it cannot evaluate,
// e.g. AnyOf on a number. It is a configuration problem, not a violation.
type MismatchError struct {
	Kind     Kind
	Expected string
	Path     string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s annotation can be only with %s. Problem with: %s", e.Kind, e.Expected, e.Path)
}

func (e *MismatchError) Unwrap() error {
	return ErrTypeMismatch
}

func violation(path, message string, value any) *Violation {
	return &Violation{Path: path, Message: message, Value: value}
}

func mismatch(kind Kind, path string) *MismatchError {
	return &MismatchError{Kind: kind, Expected: expected[kind], Path: path}
}
