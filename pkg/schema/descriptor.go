package schema

import (
	"reflect"

	"github.com/dmitrymomot/formguard/pkg/constraint"
)

// Provider resolves the descriptor of a validated value. Values whose type is
// not validated are reported with ok == false and treated as opaque leaves.
type Provider interface {
	Describe(value any) (d *TypeDescriptor, ok bool)
}

// TypeDescriptor lists the fields of a validated type in declaration order.
type TypeDescriptor struct {
	Name   string
	Fields []FieldDescriptor
}

// FieldDescriptor is the per-field metadata resolved once per type.
//
// Get returns the current value of the field for a value of the described
// type, or nil when the field is absent (nil pointer, slice, map or
// interface, missing document key). Element is non-nil exactly when the field
// is a sequence.
type FieldDescriptor struct {
	Name          string
	Constraints   []constraint.Spec
	SelfValidated bool
	Element       *ElementDescriptor
	Get           func(object any) any
}

// IsSequence reports whether the field holds a sequence.
func (f FieldDescriptor) IsSequence() bool {
	return f.Element != nil
}

// ElementDescriptor describes the elements of a sequence: the constraints
// that apply to each element and, when elements are sequences themselves,
// the descriptor of the next level.
type ElementDescriptor struct {
	Constraints []constraint.Spec
	Element     *ElementDescriptor
}

// Depth returns the number of sequence levels described by the chain.
func (e *ElementDescriptor) Depth() int {
	n := 0
	for ; e != nil; e = e.Element {
		n++
	}
	return n
}

// Chain combines providers; the first one that describes a value wins.
func Chain(providers ...Provider) Provider {
	clean := make(chain, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			clean = append(clean, p)
		}
	}
	return clean
}

type chain []Provider

func (c chain) Describe(value any) (*TypeDescriptor, bool) {
	for _, p := range c {
		if d, ok := p.Describe(value); ok {
			return d, true
		}
	}
	return nil, false
}

// ValueOf converts a reflected value to an interface, returning nil for
// absent values: invalid values and nil pointers, maps, slices, funcs,
// channels and interfaces. Interfaces are unwrapped so a typed nil pointer
// stored in an interface is absent too.
func ValueOf(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return ValueOf(rv.Elem())
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return nil
		}
	}
	if !rv.CanInterface() {
		return nil
	}
	return rv.Interface()
}

func elementChain(levels [][]constraint.Spec) *ElementDescriptor {
	if len(levels) == 0 {
		return nil
	}
	return &ElementDescriptor{
		Constraints: levels[0],
		Element:     elementChain(levels[1:]),
	}
}
