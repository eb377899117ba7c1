package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/dmitrymomot/formguard/pkg/constraint"
)

// Constrained marks a struct type as validated. Embed it to have the
// struct's fields walked:
//
//	type Person struct {
//	    schema.Constrained
//	    FirstName *string `json:"firstName" check:"required,notblank"`
//	}
//
// Structs without the marker are opaque leaves even if they have tags.
type Constrained struct{}

var constrainedType = reflect.TypeOf(Constrained{})

const (
	DefaultTagName  = "check"
	DefaultNameTag  = "json"
	skipTagValue    = "-"
	nameTagSplitMax = 2
)

// StructProvider builds descriptors from struct tags.
//
// Descriptors are built once per type: eagerly for registered samples and
// every Constrained struct reachable from their field types, lazily (and
// cached) for Constrained types first seen during a walk, such as values
// stored in interface fields.
type StructProvider struct {
	tagName string
	nameTag string
	strict  bool

	types sync.Map // reflect.Type -> *TypeDescriptor
}

type StructOption func(*StructProvider)

// WithTagName sets the struct tag holding constraints. Default "check".
func WithTagName(name string) StructOption {
	return func(p *StructProvider) {
		if name != "" {
			p.tagName = name
		}
	}
}

// WithNameTag sets the struct tag used for path segments, "json" by default.
// An empty name uses Go field names.
func WithNameTag(name string) StructOption {
	return func(p *StructProvider) {
		p.nameTag = name
	}
}

// WithStrictKinds rejects, at registration, constraints that can never apply
// to the static type of their field (NotBlank on an int, for example).
// Without it such constraints produce diagnostics during the walk.
func WithStrictKinds() StructOption {
	return func(p *StructProvider) {
		p.strict = true
	}
}

func NewStructProvider(opts ...StructOption) *StructProvider {
	p := &StructProvider{
		tagName: DefaultTagName,
		nameTag: DefaultNameTag,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Register builds descriptors for the samples' types and every Constrained
// type they reference. Samples may be values or pointers, nil pointers
// included: (*Person)(nil) registers Person.
func (p *StructProvider) Register(samples ...any) error {
	var errs []error
	for _, sample := range samples {
		t := derefType(reflect.TypeOf(sample))
		if t == nil || t.Kind() != reflect.Struct {
			errs = append(errs, fmt.Errorf("%w: got %T", ErrNotStruct, sample))
			continue
		}
		if !isConstrained(t) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrNotConstrained, t))
			continue
		}
		if err := p.build(t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// MustRegister works like Register but panics on error.
func (p *StructProvider) MustRegister(samples ...any) *StructProvider {
	if err := p.Register(samples...); err != nil {
		panic(fmt.Sprintf("failed to register validated types: %v", err))
	}
	return p
}

// Describe implements Provider.
func (p *StructProvider) Describe(value any) (*TypeDescriptor, bool) {
	t := derefType(reflect.TypeOf(value))
	if t == nil || t.Kind() != reflect.Struct {
		return nil, false
	}
	if d, ok := p.types.Load(t); ok {
		return d.(*TypeDescriptor), true
	}
	if !isConstrained(t) {
		return nil, false
	}
	// Tag errors on types that were never registered cannot be reported
	// from here; such types are treated as leaves.
	if err := p.build(t); err != nil {
		return nil, false
	}
	d, ok := p.types.Load(t)
	if !ok {
		return nil, false
	}
	return d.(*TypeDescriptor), true
}

// build describes t and every Constrained type reachable from it. Results
// are published only when the whole set was built without errors.
func (p *StructProvider) build(t reflect.Type) error {
	pending := make(map[reflect.Type]*TypeDescriptor)
	if err := p.describe(t, pending); err != nil {
		return err
	}
	for typ, d := range pending {
		p.types.LoadOrStore(typ, d)
	}
	return nil
}

func (p *StructProvider) describe(t reflect.Type, pending map[reflect.Type]*TypeDescriptor) error {
	if _, ok := pending[t]; ok {
		return nil
	}
	if _, ok := p.types.Load(t); ok {
		return nil
	}

	d := &TypeDescriptor{Name: typeName(t)}
	pending[t] = d

	var errs []error
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous && sf.Type == constrainedType {
			continue
		}
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get(p.tagName)
		if tag == skipTagValue {
			continue
		}

		fd, err := p.describeField(t, i, sf, tag, pending)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.%s: %w", d.Name, sf.Name, err))
			continue
		}
		d.Fields = append(d.Fields, fd)
	}
	return errors.Join(errs...)
}

func (p *StructProvider) describeField(owner reflect.Type, index int, sf reflect.StructField, tag string, pending map[reflect.Type]*TypeDescriptor) (FieldDescriptor, error) {
	levels, err := constraint.ParseTag(tag)
	if err != nil {
		return FieldDescriptor{}, err
	}
	if err := p.checkKinds(levels[0], sf.Type); err != nil {
		return FieldDescriptor{}, err
	}

	base := derefType(sf.Type)
	fd := FieldDescriptor{
		Name:        p.fieldName(sf),
		Constraints: levels[0],
		Get:         fieldGetter(owner, index),
	}

	switch {
	case base.Kind() == reflect.Interface:
		fd.SelfValidated = true
	case base.Kind() == reflect.Struct && isConstrained(base):
		fd.SelfValidated = true
		if err := p.describe(base, pending); err != nil {
			return FieldDescriptor{}, err
		}
	}

	fd.Element, err = p.describeElements(base, levels[1:], pending)
	if err != nil {
		return FieldDescriptor{}, err
	}
	return fd, nil
}

// describeElements mirrors the sequence nesting of t. Each tag level after a
// dive is attached to the matching nesting level.
func (p *StructProvider) describeElements(t reflect.Type, levels [][]constraint.Spec, pending map[reflect.Type]*TypeDescriptor) (*ElementDescriptor, error) {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
	case reflect.Interface:
		// Nesting of dynamic values is only known at walk time.
		return elementChain(levels), nil
	default:
		if len(levels) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDive, t)
		}
		return nil, nil
	}

	elem := t.Elem()
	ed := &ElementDescriptor{}
	if len(levels) > 0 {
		ed.Constraints, levels = levels[0], levels[1:]
		if err := p.checkKinds(ed.Constraints, elem); err != nil {
			return nil, err
		}
	}

	base := derefType(elem)
	if base.Kind() == reflect.Struct && isConstrained(base) {
		if err := p.describe(base, pending); err != nil {
			return nil, err
		}
	}

	next, err := p.describeElements(base, levels, pending)
	if err != nil {
		return nil, err
	}
	ed.Element = next
	return ed, nil
}

func (p *StructProvider) checkKinds(specs []constraint.Spec, t reflect.Type) error {
	if !p.strict {
		return nil
	}
	for _, spec := range specs {
		if !spec.Kind.Accepts(t) {
			return fmt.Errorf("%w: %s on %s", ErrIncompatibleConstraint, spec.Kind, t)
		}
	}
	return nil
}

func (p *StructProvider) fieldName(sf reflect.StructField) string {
	if p.nameTag == "" {
		return sf.Name
	}
	name := strings.SplitN(sf.Tag.Get(p.nameTag), ",", nameTagSplitMax)[0]
	if name == "" || name == skipTagValue {
		return sf.Name
	}
	return name
}

func fieldGetter(owner reflect.Type, index int) func(object any) any {
	return func(object any) any {
		rv := reflect.ValueOf(object)
		for rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return nil
			}
			rv = rv.Elem()
		}
		if !rv.IsValid() || rv.Type() != owner {
			return nil
		}
		return ValueOf(rv.Field(index))
	}
}

func isConstrained(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous && sf.Type == constrainedType {
			return true
		}
	}
	return false
}

func derefType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func typeName(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
