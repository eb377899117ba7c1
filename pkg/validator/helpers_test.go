package validator_test

import (
	"github.com/dmitrymomot/formguard/pkg/diag"
	"github.com/dmitrymomot/formguard/pkg/schema"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

type address struct {
	schema.Constrained
	City *string `json:"city" check:"required,notblank"`
}

type person struct {
	schema.Constrained
	FirstName *string  `json:"firstName" check:"required,notblank"`
	Age       int      `json:"age" check:"inrange=0..150"`
	Vaccine   *string  `json:"vaccine" check:"anyof=Pfizer Sputnik CoronaVac"`
	Address   *address `json:"address"`
}

type vaccineForm struct {
	schema.Constrained
	Members [][]*person `json:"members" check:"required,size=1..3,dive,size=1..10"`
	Tags    []string    `json:"tags" check:"dive,notblank"`
	Extra   any         `json:"extra"`
}

type node struct {
	schema.Constrained
	Name string `json:"name" check:"notblank"`
	Next *node  `json:"next"`
}

func ptr[T any](v T) *T {
	return &v
}

func newValidator(opts ...validator.Option) (*validator.Validator, *diag.Collector) {
	sink := &diag.Collector{}
	provider := schema.NewStructProvider().MustRegister(vaccineForm{}, node{})
	opts = append([]validator.Option{validator.WithSink(sink)}, opts...)
	return validator.New(provider, opts...), sink
}
