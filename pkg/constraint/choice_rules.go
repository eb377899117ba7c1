package constraint

import (
	"fmt"
	"slices"
	"strings"
)

func evalAnyOf(value any, spec Spec, path string) (*Violation, error) {
	rv, ok := indirect(value)
	if !ok {
		return nil, nil
	}
	if categoryOf(rv.Kind()) != categoryText {
		return nil, mismatch(spec.Kind, path)
	}
	if slices.Contains(spec.Allowed, rv.String()) {
		return nil, nil
	}
	return violation(path, fmt.Sprintf("Must be one of [%s]", strings.Join(spec.Allowed, ", ")), rv.Interface()), nil
}
