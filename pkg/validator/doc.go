// Package validator walks object graphs and collects constraint violations.
//
// A Validator asks a schema.Provider for the descriptor of each value it
// meets. For every field, in declaration order, it evaluates the attached
// constraints at the field's path, then descends into nested validated
// objects and into sequences, element by element and level by level:
//
//	v := validator.New(schema.NewStructProvider().MustRegister(VaccineForm{}))
//	violations := v.Validate(form)
//	for _, violation := range violations {
//	    fmt.Println(violation.Path, violation.Message) // members[0][1].firstName Must not be blank!
//	}
//
// Paths join field names with "." and sequence indexes with "[i]".
//
// # Violations and diagnostics
//
// Validate never fails. Broken constraints are data: an ordered Violations
// slice that implements error and converts with Err. Misconfiguration, such
// as AnyOf attached to a number, goes to a diag.Sink instead and the walk
// continues. Cycles and graphs deeper than the configured maximum are
// reported there too and are not descended into.
//
// # Concurrency
//
// A Validator is immutable. Each call owns its result and guard state, so
// one Validator may serve any number of goroutines.
package validator
