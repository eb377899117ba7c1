package validator

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrymomot/formguard/pkg/constraint"
)

// Violation is a single constraint failure at a path.
type Violation = constraint.Violation

// Violations is the ordered result of a walk. It implements error so it can
// be returned as one, but Validate itself never returns errors.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Path, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) true for Violations.
func (vs Violations) Is(target error) bool {
	return target == ErrValidationFailed
}

func (vs *Violations) Add(v Violation) {
	*vs = append(*vs, v)
}

func (vs Violations) Has(path string) bool {
	for _, v := range vs {
		if v.Path == path {
			return true
		}
	}
	return false
}

// Get returns the messages recorded at path in order.
func (vs Violations) Get(path string) []string {
	var messages []string
	for _, v := range vs {
		if v.Path == path {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// Paths returns the distinct paths in first-seen order.
func (vs Violations) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, v := range vs {
		if !seen[v.Path] {
			paths = append(paths, v.Path)
			seen[v.Path] = true
		}
	}
	return paths
}

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

// Err returns vs as an error, or nil when there are no violations.
func (vs Violations) Err() error {
	if len(vs) == 0 {
		return nil
	}
	return vs
}

// Values groups messages by path, ready for form re-rendering.
func (vs Violations) Values() url.Values {
	values := make(url.Values, len(vs))
	for _, v := range vs {
		values.Add(v.Path, v.Message)
	}
	return values
}

// Unique drops violations with the same path and message as an earlier one.
func (vs Violations) Unique() Violations {
	type key struct{ path, message string }

	out := make(Violations, 0, len(vs))
	seen := make(map[key]bool, len(vs))
	for _, v := range vs {
		k := key{v.Path, v.Message}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, v)
	}
	return out
}

// Filter keeps violations at prefix or below it. "address" matches
// "address", "address.city" and "address[0]" but not "addressee".
func (vs Violations) Filter(prefix string) Violations {
	out := make(Violations, 0, len(vs))
	for _, v := range vs {
		if underPath(v.Path, prefix) {
			out = append(out, v)
		}
	}
	return out
}

func underPath(path, prefix string) bool {
	if prefix == "" || path == prefix {
		return true
	}
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	next := path[len(prefix)]
	return next == '.' || next == '['
}

// ExtractViolations returns the Violations wrapped in err, if any.
func ExtractViolations(err error) Violations {
	if err == nil {
		return nil
	}

	var vs Violations
	if errors.As(err, &vs) {
		return vs
	}
	return nil
}

func IsViolations(err error) bool {
	if err == nil {
		return false
	}

	var vs Violations
	return errors.As(err, &vs)
}
