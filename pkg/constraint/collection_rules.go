package constraint

import "fmt"

// evalNotEmpty accepts text, maps and collections; the message names the
// category of the value.
func evalNotEmpty(value any, spec Spec, path string) (*Violation, error) {
	rv, ok := indirect(value)
	if !ok {
		return nil, nil
	}

	switch categoryOf(rv.Kind()) {
	case categoryText:
		if rv.Len() == 0 {
			return violation(path, "String shouldn't be empty", rv.Interface()), nil
		}
	case categoryMap:
		if rv.Len() == 0 {
			return violation(path, "Map shouldn't be empty", rv.Interface()), nil
		}
	case categoryCollection:
		if rv.Len() == 0 {
			return violation(path, "Collection shouldn't be empty", rv.Interface()), nil
		}
	default:
		return nil, mismatch(spec.Kind, path)
	}
	return nil, nil
}

// evalSize checks text length in runes, or the number of entries of a map or
// collection, against inclusive bounds.
func evalSize(value any, spec Spec, path string) (*Violation, error) {
	rv, ok := indirect(value)
	if !ok {
		return nil, nil
	}

	var (
		size   int
		format string
	)
	switch categoryOf(rv.Kind()) {
	case categoryText:
		size, format = textLength(rv), "String length should be between %d and %d"
	case categoryMap:
		size, format = rv.Len(), "Map size should be between %d and %d"
	case categoryCollection:
		size, format = rv.Len(), "Collection size should be between %d and %d"
	default:
		return nil, mismatch(spec.Kind, path)
	}

	if int64(size) < spec.Min || int64(size) > spec.Max {
		return violation(path, fmt.Sprintf(format, spec.Min, spec.Max), rv.Interface()), nil
	}
	return nil, nil
}
