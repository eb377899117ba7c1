package validator

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formguard/pkg/constraint"
	"github.com/dmitrymomot/formguard/pkg/diag"
	"github.com/dmitrymomot/formguard/pkg/schema"
)

// walker holds the state of a single call.
type walker struct {
	*Validator

	ctx   context.Context
	runID string
	out   Violations

	depth    int
	visiting map[identity]struct{}
}

// identity of a reference value on the current descent path.
type identity struct {
	typ reflect.Type
	ptr uintptr
	len int
}

func (w *walker) walkObject(value any, prefix string) {
	d, ok := w.provider.Describe(value)
	if !ok {
		return
	}
	if !w.enter(value, strings.TrimSuffix(prefix, ".")) {
		return
	}
	defer w.leave(value)

	for _, field := range d.Fields {
		fv := field.Get(value)
		path := prefix + field.Name
		w.evaluate(fv, field.Constraints, path)
		if fv == nil {
			continue
		}
		if field.SelfValidated {
			w.walkObject(fv, path+".")
		}
		if field.Element != nil || field.SelfValidated && isSequence(fv) {
			w.walkSequence(fv, field.Element, path)
		}
	}
}

// walkSequence visits the present elements of values. A nil element
// descriptor means no constraints at this level; nested validated objects
// are still walked.
func (w *walker) walkSequence(values any, element *schema.ElementDescriptor, prefix string) {
	rv := reflect.ValueOf(values)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return
	}
	if !w.enter(values, prefix) {
		return
	}
	defer w.leave(values)

	var specs []constraint.Spec
	var next *schema.ElementDescriptor
	if element != nil {
		specs, next = element.Constraints, element.Element
	}

	for i := 0; i < rv.Len(); i++ {
		ev := schema.ValueOf(rv.Index(i))
		if ev == nil {
			continue
		}
		path := prefix + "[" + strconv.Itoa(i) + "]"

		w.walkObject(ev, path+".")
		w.evaluate(ev, specs, path)
		if isSequence(ev) {
			w.walkSequence(ev, next, path)
		}
	}
}

func (w *walker) evaluate(value any, specs []constraint.Spec, path string) {
	for _, spec := range specs {
		violation, err := w.registry.Evaluate(value, spec, path)
		if err != nil {
			w.report(spec.Kind, path, err.Error())
			continue
		}
		if violation != nil {
			w.out = append(w.out, *violation)
		}
	}
}

// enter applies the depth and cycle guards. It returns false when the
// value must not be descended into.
func (w *walker) enter(value any, path string) bool {
	if w.depth >= w.maxDepth {
		w.report(constraint.KindUnknown, path, fmt.Sprintf("maximum depth %d exceeded. Problem with: %s", w.maxDepth, path))
		return false
	}

	if id, ok := identityOf(value); ok {
		if _, seen := w.visiting[id]; seen {
			w.report(constraint.KindUnknown, path, "cycle detected, skipping nested validation. Problem with: "+path)
			return false
		}
		if w.visiting == nil {
			w.visiting = make(map[identity]struct{})
		}
		w.visiting[id] = struct{}{}
	}
	w.depth++
	return true
}

func (w *walker) leave(value any) {
	w.depth--
	if id, ok := identityOf(value); ok {
		delete(w.visiting, id)
	}
}

func (w *walker) report(kind constraint.Kind, path, message string) {
	w.sink.Report(w.ctx, diag.Diagnostic{
		RunID:   w.runID,
		Kind:    kind,
		Path:    path,
		Message: message,
	})
}

// identityOf returns the identity of pointers, maps and non-empty slices.
// Other values cannot form cycles on their own.
func identityOf(value any) (identity, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		if rv.IsNil() {
			return identity{}, false
		}
		return identity{typ: rv.Type(), ptr: rv.Pointer()}, true
	case reflect.Slice:
		if rv.Len() == 0 {
			return identity{}, false
		}
		return identity{typ: rv.Type(), ptr: rv.Pointer(), len: rv.Len()}, true
	}
	return identity{}, false
}

func isSequence(value any) bool {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}
