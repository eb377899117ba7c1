package constraint

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind identifies a constraint. The set of kinds is closed.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindRequired
	KindNotBlank
	KindNotEmpty
	KindSize
	KindInRange
	KindPositive
	KindNegative
	KindAnyOf
)

// kinds lists every known kind in declaration order.
var kinds = []Kind{
	KindRequired,
	KindNotBlank,
	KindNotEmpty,
	KindSize,
	KindInRange,
	KindPositive,
	KindNegative,
	KindAnyOf,
}

var kindNames = map[Kind]string{
	KindRequired: "Required",
	KindNotBlank: "NotBlank",
	KindNotEmpty: "NotEmpty",
	KindSize:     "Size",
	KindInRange:  "InRange",
	KindPositive: "Positive",
	KindNegative: "Negative",
	KindAnyOf:    "AnyOf",
}

// tagNames maps lowercase tag names to kinds. "notnull" is kept as an alias
// for forms migrated from annotation based validators.
var tagNames = map[string]Kind{
	"required": KindRequired,
	"notnull":  KindRequired,
	"notblank": KindNotBlank,
	"notempty": KindNotEmpty,
	"size":     KindSize,
	"inrange":  KindInRange,
	"positive": KindPositive,
	"negative": KindNegative,
	"anyof":    KindAnyOf,
}

// expected describes the value types each kind accepts. Used in diagnostics.
var expected = map[Kind]string{
	KindNotBlank: "String type",
	KindNotEmpty: "collections, maps or string",
	KindSize:     "collections, maps or strings",
	KindInRange:  "numbers",
	KindPositive: "numbers",
	KindNegative: "numbers",
	KindAnyOf:    "String type",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// TagName returns the name used for the kind in struct tags and schemas.
func (k Kind) TagName() string {
	return strings.ToLower(k.String())
}

// ParseKind resolves a tag name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	if k, ok := tagNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Kinds returns all known kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Accepts reports whether values of static type t can ever satisfy the kind's
// type requirements. Interface types are accepted because their dynamic type
// is only known during the walk.
func (k Kind) Accepts(t reflect.Type) bool {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() == reflect.Interface {
		return true
	}

	c := categoryOf(t.Kind())
	switch k {
	case KindRequired:
		return true
	case KindNotBlank, KindAnyOf:
		return c == categoryText
	case KindNotEmpty, KindSize:
		return c == categoryText || c == categoryMap || c == categoryCollection
	case KindInRange, KindPositive, KindNegative:
		return c == categoryNumber
	default:
		return false
	}
}
