package constraint

import (
	"math"
	"reflect"
	"unicode/utf8"
)

type category uint8

const (
	categoryOther category = iota
	categoryText
	categoryNumber
	categoryMap
	categoryCollection
)

func categoryOf(k reflect.Kind) category {
	switch k {
	case reflect.String:
		return categoryText
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return categoryNumber
	case reflect.Map:
		return categoryMap
	case reflect.Slice, reflect.Array:
		return categoryCollection
	default:
		return categoryOther
	}
}

// indirect dereferences pointers and interfaces. ok is false when the value
// is absent.
func indirect(value any) (rv reflect.Value, ok bool) {
	rv = reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return reflect.Value{}, false
	}
	if (rv.Kind() == reflect.Map || rv.Kind() == reflect.Slice) && rv.IsNil() {
		return reflect.Value{}, false
	}
	return rv, true
}

// toInt64 converts any numeric value to int64. Floats are truncated toward
// zero, NaN becomes 0 and out of range values clamp to the int64 limits.
func toInt64(rv reflect.Value) int64 {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return math.MaxInt64
		}
		return int64(u)
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		switch {
		case math.IsNaN(f):
			return 0
		case f >= math.MaxInt64:
			return math.MaxInt64
		case f <= math.MinInt64:
			return math.MinInt64
		}
		return int64(f)
	}
	return 0
}

// textLength counts runes, not bytes.
func textLength(rv reflect.Value) int {
	return utf8.RuneCountInString(rv.String())
}
