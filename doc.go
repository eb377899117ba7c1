// Package formguard validates submitted forms and other object graphs
// against constraints declared in struct tags or YAML document schemas.
//
// Guard wires the pieces from the pkg/ tree together from a
// validator.Config, usually loaded from FORMGUARD_* environment variables:
//
//	type Person struct {
//	    schema.Constrained
//	    FirstName *string `json:"firstName" check:"required,notblank"`
//	    Age       int     `json:"age" check:"inrange=0..150"`
//	}
//
//	type VaccineForm struct {
//	    schema.Constrained
//	    Members [][]*Person `json:"members" check:"required,size=1..3,dive,size=1..10"`
//	}
//
//	guard, err := formguard.NewFromEnv(VaccineForm{})
//	if err != nil {
//	    return err
//	}
//
//	if err := guard.Check(ctx, form); err != nil {
//	    var verr formguard.ValidationError
//	    if errors.As(err, &verr) {
//	        // verr.Get("members[0][1].firstName") == "Must not be blank!"
//	    }
//	}
//
// Constraint misconfiguration is logged as warnings, tagged with the
// request ID stored by WithRequestID, and counted in Prometheus when
// metrics are enabled.
package formguard
