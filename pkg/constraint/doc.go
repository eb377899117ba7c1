// Package constraint defines the declarative field constraints understood by
// formguard together with the pure evaluator functions that check them.
//
// A constraint is described by a Spec: a Kind from a closed enumeration and
// the parameters that kind needs (bounds for Size and InRange, the allowed
// literals for AnyOf). Specs are created once, when a type's schema is
// declared, and are shared read-only afterwards.
//
// # Architecture
//
// Each source file groups the evaluators of one value category
// (`presence_rules.go`, `string_rules.go`, `numeric_rules.go`, etc.). An
// Evaluator receives the field value, the Spec and the path of the field and
// returns either a *Violation or a *MismatchError when the constraint cannot
// be applied to the runtime type of the value. Absent values (nil) are
// skipped by every evaluator except Required.
//
// The Registry maps every Kind to its Evaluator. It is built once and never
// mutated, so it can be shared by any number of goroutines without locking.
//
// Core building blocks:
//   - Kind            – closed enumeration of constraint kinds
//   - Spec            – immutable (kind, parameters) pair
//   - Evaluator       – pure check function for one kind
//   - Registry        – immutable Kind → Evaluator table
//   - Violation       – path-qualified failure record
//   - MismatchError   – configuration misuse (constraint on the wrong type)
//
// # Tag Grammar
//
// ParseTag understands the compact form used in struct tags and YAML schemas:
//
//	required,notblank              two constraints on the field itself
//	size=1..3                      inclusive bounds
//	inrange=-10..10                inclusive bounds, negative numbers allowed
//	anyof=Pfizer Sputnik CoronaVac allowed literals separated by spaces
//	required,size=1..3,dive,size=1..10,dive,required
//
// Every `dive` moves the following constraints one sequence level down, so
// the last example constrains a list, each of its inner lists and each
// element of those.
//
// # Usage
//
//	eval, ok := constraint.DefaultRegistry().Lookup(constraint.KindInRange)
//	if ok {
//	    v, err := eval(age, constraint.InRange(0, 150), "age")
//	    // v != nil: age is out of range
//	    // err != nil: age is not a number
//	}
package constraint
