package constraint

import (
	"fmt"
	"strconv"
	"strings"
)

// Spec is a constraint specifier: a kind plus the parameters that kind uses.
// Min and Max are the inclusive bounds of Size and InRange, Allowed holds the
// literals of AnyOf. A Spec must not be modified once it is attached to a field.
type Spec struct {
	Kind    Kind
	Min     int64
	Max     int64
	Allowed []string
}

func Required() Spec { return Spec{Kind: KindRequired} }

func NotBlank() Spec { return Spec{Kind: KindNotBlank} }

func NotEmpty() Spec { return Spec{Kind: KindNotEmpty} }

func Positive() Spec { return Spec{Kind: KindPositive} }

func Negative() Spec { return Spec{Kind: KindNegative} }

// Size constrains text length or collection size to [min, max].
func Size(min, max int) Spec {
	return Spec{Kind: KindSize, Min: int64(min), Max: int64(max)}
}

// InRange constrains a number to [min, max].
func InRange(min, max int64) Spec {
	return Spec{Kind: KindInRange, Min: min, Max: max}
}

// AnyOf constrains text to one of the allowed literals.
func AnyOf(allowed ...string) Spec {
	values := make([]string, len(allowed))
	copy(values, allowed)
	return Spec{Kind: KindAnyOf, Allowed: values}
}

// String renders the spec in tag form, e.g. "size=1..3".
func (s Spec) String() string {
	switch s.Kind {
	case KindSize, KindInRange:
		return fmt.Sprintf("%s=%d..%d", s.Kind.TagName(), s.Min, s.Max)
	case KindAnyOf:
		return s.Kind.TagName() + "=" + strings.Join(s.Allowed, " ")
	default:
		return s.Kind.TagName()
	}
}

// ParseSpec parses a single tag item such as "required", "size=1..3" or
// "anyof=a b c".
func ParseSpec(item string) (Spec, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(item), "=")
	kind, err := ParseKind(name)
	if err != nil {
		return Spec{}, err
	}

	switch kind {
	case KindSize, KindInRange:
		if !hasArg {
			return Spec{}, fmt.Errorf("%w: %q requires bounds like %s=1..10", ErrInvalidTag, item, kind.TagName())
		}
		min, max, err := parseBounds(arg)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: %q: %v", ErrInvalidTag, item, err)
		}
		if kind == KindSize && min < 0 {
			return Spec{}, fmt.Errorf("%w: %q: size bounds must not be negative", ErrInvalidTag, item)
		}
		return Spec{Kind: kind, Min: min, Max: max}, nil

	case KindAnyOf:
		allowed := strings.Fields(arg)
		if len(allowed) == 0 {
			return Spec{}, fmt.Errorf("%w: %q requires at least one allowed value", ErrInvalidTag, item)
		}
		return Spec{Kind: kind, Allowed: allowed}, nil

	default:
		if hasArg {
			return Spec{}, fmt.Errorf("%w: %q takes no parameters", ErrInvalidTag, item)
		}
		return Spec{Kind: kind}, nil
	}
}

// ParseTag parses a comma separated constraint list. The result holds one
// spec list per level: index 0 for the field itself, index 1 for the
// elements after the first "dive", and so on.
func ParseTag(tag string) ([][]Spec, error) {
	levels := [][]Spec{nil}
	for _, item := range strings.Split(tag, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if strings.EqualFold(item, "dive") {
			levels = append(levels, nil)
			continue
		}
		spec, err := ParseSpec(item)
		if err != nil {
			return nil, err
		}
		levels[len(levels)-1] = append(levels[len(levels)-1], spec)
	}
	return levels, nil
}

func parseBounds(arg string) (int64, int64, error) {
	lo, hi, ok := strings.Cut(arg, "..")
	if !ok {
		return 0, 0, fmt.Errorf("bounds %q must look like min..max", arg)
	}
	min, err := strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid lower bound %q", lo)
	}
	max, err := strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid upper bound %q", hi)
	}
	if min > max {
		return 0, 0, fmt.Errorf("lower bound %d is greater than upper bound %d", min, max)
	}
	return min, max, nil
}
