package constraint

import "strings"

func evalNotBlank(value any, spec Spec, path string) (*Violation, error) {
	rv, ok := indirect(value)
	if !ok {
		return nil, nil
	}
	if categoryOf(rv.Kind()) != categoryText {
		return nil, mismatch(spec.Kind, path)
	}
	if strings.TrimSpace(rv.String()) == "" {
		return violation(path, "Must not be blank!", rv.Interface()), nil
	}
	return nil, nil
}
