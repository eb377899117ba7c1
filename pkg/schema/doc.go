// Package schema describes which values are validated and how: the ordered
// fields of a validated type, the constraints attached to each field, whether
// a field holds a nested validated object, and for sequence fields the
// recursive element descriptor of every nesting level.
//
// The validator never inspects type metadata itself; it asks a Provider.
// Two providers are included:
//
//   - StructProvider reads `check` struct tags of Go types that embed the
//     Constrained marker.
//   - DocumentProvider compiles YAML schemas for dynamic map[string]any
//     documents, selected by a discriminator key.
//
// Chain combines providers so one validator can handle both.
//
// # Struct tags
//
//	type VaccineForm struct {
//	    schema.Constrained
//	    Members [][]*Person `json:"members" check:"required,size=1..3,dive,size=1..10,dive,required"`
//	}
//
// Path segments use the `json` tag name when present and the Go field name
// otherwise. Unexported fields and fields tagged `check:"-"` are skipped.
// Maps are leaves: their values are not walked.
//
// # Document schemas
//
//	discriminator: kind
//	types:
//	  person:
//	    fields:
//	      - name: firstName
//	        constraints: [required, notblank]
//	      - name: vaccine
//	        constraints: ["anyof=Pfizer Sputnik CoronaVac"]
//
// Descriptors are immutable once built and are safe to share between
// goroutines.
package schema
