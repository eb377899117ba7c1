package constraint

// evalRequired is the only evaluator that inspects absent values.
func evalRequired(value any, _ Spec, path string) (*Violation, error) {
	if _, ok := indirect(value); ok {
		return nil, nil
	}
	return violation(path, "Must not be null", nil), nil
}
