package constraint

import "fmt"

func evalInRange(value any, spec Spec, path string) (*Violation, error) {
	rv, ok := indirect(value)
	if !ok {
		return nil, nil
	}
	if categoryOf(rv.Kind()) != categoryNumber {
		return nil, mismatch(spec.Kind, path)
	}
	if n := toInt64(rv); n < spec.Min || n > spec.Max {
		return violation(path, fmt.Sprintf("Must be in range between %d and %d", spec.Min, spec.Max), rv.Interface()), nil
	}
	return nil, nil
}

func evalPositive(value any, spec Spec, path string) (*Violation, error) {
	rv, ok := indirect(value)
	if !ok {
		return nil, nil
	}
	if categoryOf(rv.Kind()) != categoryNumber {
		return nil, mismatch(spec.Kind, path)
	}
	if toInt64(rv) <= 0 {
		return violation(path, "Must be positive!", rv.Interface()), nil
	}
	return nil, nil
}

func evalNegative(value any, spec Spec, path string) (*Violation, error) {
	rv, ok := indirect(value)
	if !ok {
		return nil, nil
	}
	if categoryOf(rv.Kind()) != categoryNumber {
		return nil, mismatch(spec.Kind, path)
	}
	if toInt64(rv) >= 0 {
		return violation(path, "Must be negative!", rv.Interface()), nil
	}
	return nil, nil
}
