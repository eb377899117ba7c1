package formguard

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

// ValidationError maps violation paths to messages, ready to be rendered
// next to form inputs. It's based on url.Values to leverage built-in string
// slice handling.
type ValidationError url.Values

// Error implements the error interface.
// Returns the first message of every path, in path order.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "Validation failed"
	}

	paths := make([]string, 0, len(e))
	for path := range e {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var parts []string
	for _, path := range paths {
		if messages := e[path]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", path, messages[0]))
		}
	}

	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

func NewValidationError() ValidationError {
	return make(ValidationError)
}

// FromViolations groups violations by path. Messages keep walk order.
func FromViolations(vs validator.Violations) ValidationError {
	return ValidationError(vs.Values())
}

// Add adds an error message for a path.
func (e ValidationError) Add(path, message string) {
	url.Values(e).Add(path, message)
}

// Get returns the first error message for a path.
func (e ValidationError) Get(path string) string {
	return url.Values(e).Get(path)
}

func (e ValidationError) Has(path string) bool {
	return len(e[path]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
