package validator_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/constraint"
	"github.com/dmitrymomot/formguard/pkg/diag"
	"github.com/dmitrymomot/formguard/pkg/schema"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

func TestValidate_Absent(t *testing.T) {
	t.Parallel()
	v, sink := newValidator()

	for _, root := range []any{nil, (*person)(nil), []int(nil)} {
		got := v.Validate(root)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
	assert.Empty(t, sink.Diagnostics())
}

func TestValidate_Fields(t *testing.T) {
	t.Parallel()
	v, sink := newValidator()

	t.Run("required absent yields a single violation", func(t *testing.T) {
		got := v.Validate(&person{})
		require.Len(t, got, 1)
		assert.Equal(t, validator.Violation{Path: "firstName", Message: "Must not be null"}, got[0])
	})

	t.Run("blank and out of range", func(t *testing.T) {
		got := v.Validate(person{FirstName: ptr("  "), Age: -3})
		assert.Equal(t, validator.Violations{
			{Path: "firstName", Message: "Must not be blank!", Value: "  "},
			{Path: "age", Message: "Must be in range between 0 and 150", Value: -3},
		}, got)
	})

	t.Run("valid values", func(t *testing.T) {
		for _, age := range []int{0, 150} {
			got := v.Validate(person{FirstName: ptr("Hi!!"), Age: age, Vaccine: ptr("Pfizer")})
			assert.Empty(t, got)
		}
	})

	t.Run("any of lists allowed values", func(t *testing.T) {
		got := v.Validate(person{FirstName: ptr("Ann"), Vaccine: ptr("Unknown")})
		require.Len(t, got, 1)
		assert.Equal(t, "vaccine", got[0].Path)
		assert.Equal(t, "Must be one of [Pfizer, Sputnik, CoronaVac]", got[0].Message)
	})

	t.Run("nested object paths", func(t *testing.T) {
		got := v.Validate(person{FirstName: ptr("Ann"), Address: &address{City: ptr("")}})
		require.Len(t, got, 1)
		assert.Equal(t, "address.city", got[0].Path)
		assert.Equal(t, "Must not be blank!", got[0].Message)
	})

	assert.Empty(t, sink.Diagnostics())
}

func TestValidate_NestedSequences(t *testing.T) {
	t.Parallel()
	v, sink := newValidator()

	valid := func() *person { return &person{FirstName: ptr("Ok")} }
	form := vaccineForm{
		Members: [][]*person{
			{&person{}, &person{FirstName: ptr("")}},
			{valid(), valid()},
		},
	}

	got := v.Validate(form)
	assert.Equal(t, validator.Violations{
		{Path: "members[0][0].firstName", Message: "Must not be null"},
		{Path: "members[0][1].firstName", Message: "Must not be blank!", Value: ""},
	}, got)
	assert.False(t, got.Has("members[1][0].firstName"))
	assert.Empty(t, sink.Diagnostics())

	t.Run("sequence level constraints", func(t *testing.T) {
		form := vaccineForm{
			Members: [][]*person{{}, {valid()}, {valid()}, {valid()}},
			Tags:    []string{"a", " "},
		}
		got := v.Validate(form)
		assert.Equal(t, []string{"members", "members[0]", "tags[1]"}, got.Paths())
		assert.Equal(t, []string{"Collection size should be between 1 and 3"}, got.Get("members"))
		assert.Equal(t, []string{"Collection size should be between 1 and 10"}, got.Get("members[0]"))
	})

	t.Run("nil elements are skipped", func(t *testing.T) {
		form := vaccineForm{Members: [][]*person{{nil, valid()}, nil}}
		assert.Empty(t, v.Validate(form))
	})

	t.Run("absent sequence", func(t *testing.T) {
		got := v.Validate(vaccineForm{})
		assert.Equal(t, validator.Violations{{Path: "members", Message: "Must not be null"}}, got)
	})
}

func TestValidate_DynamicValues(t *testing.T) {
	t.Parallel()
	v, _ := newValidator()

	t.Run("interface holding validated object", func(t *testing.T) {
		form := vaccineForm{Members: [][]*person{{&person{FirstName: ptr("A")}}}, Extra: &address{}}
		got := v.Validate(form)
		assert.Equal(t, []string{"extra.city"}, got.Paths())
	})

	t.Run("interface holding sequence of validated objects", func(t *testing.T) {
		form := vaccineForm{Members: [][]*person{{&person{FirstName: ptr("A")}}}, Extra: []any{&address{City: ptr("x")}, &address{}}}
		got := v.Validate(form)
		assert.Equal(t, []string{"extra[1].city"}, got.Paths())
	})

	t.Run("typed nil in interface is absent", func(t *testing.T) {
		form := vaccineForm{Members: [][]*person{{&person{FirstName: ptr("A")}}}, Extra: (*address)(nil)}
		assert.Empty(t, v.Validate(form))
	})
}

func TestValidate_TypeMismatch(t *testing.T) {
	t.Parallel()

	type badForm struct {
		schema.Constrained
		Count int    `json:"count" check:"anyof=a b"`
		Name  string `json:"name" check:"notblank"`
	}

	sink := &diag.Collector{}
	v := validator.New(schema.NewStructProvider(), validator.WithSink(sink), validator.WithRunID(func() string { return "run-1" }))

	got := v.Validate(badForm{Count: 3})
	assert.Equal(t, []string{"name"}, got.Paths(), "walk continues after a mismatch")

	diagnostics := sink.Diagnostics()
	require.Len(t, diagnostics, 1)
	assert.Equal(t, diag.Diagnostic{
		RunID:   "run-1",
		Kind:    constraint.KindAnyOf,
		Path:    "count",
		Message: "AnyOf annotation can be only with String type. Problem with: count",
	}, diagnostics[0])
}

func TestValidate_UnknownKind(t *testing.T) {
	t.Parallel()

	entries := constraint.Builtins()
	delete(entries, constraint.KindNotBlank)
	v, sink := newValidator(validator.WithRegistry(constraint.NewRegistry(entries)))

	got := v.Validate(person{FirstName: ptr(" ")})
	assert.Empty(t, got)
	assert.Empty(t, sink.Diagnostics())
}

func TestValidate_Guards(t *testing.T) {
	t.Parallel()

	t.Run("cycle", func(t *testing.T) {
		v, sink := newValidator()
		n := &node{Name: " "}
		n.Next = n

		got := v.Validate(n)
		assert.Equal(t, []string{"name"}, got.Paths())
		assert.Equal(t, []string{"cycle detected, skipping nested validation. Problem with: next"}, sink.Messages())
	})

	t.Run("shared references are walked at every path", func(t *testing.T) {
		v, sink := newValidator()
		shared := &node{Name: " "}
		root := &node{Name: "root", Next: &node{Name: "mid", Next: shared}}
		form := vaccineForm{
			Members: [][]*person{{&person{FirstName: ptr("A")}}},
			Extra:   []any{root, shared},
		}

		got := v.Validate(form)
		assert.Equal(t, []string{"extra[0].next.next.name", "extra[1].name"}, got.Paths())
		assert.Empty(t, sink.Diagnostics())
	})

	t.Run("depth", func(t *testing.T) {
		v, sink := newValidator(validator.WithMaxDepth(2))
		root := &node{Name: "a", Next: &node{Name: "b", Next: &node{Name: " "}}}

		assert.Empty(t, v.Validate(root))
		assert.Equal(t, []string{"maximum depth 2 exceeded. Problem with: next.next"}, sink.Messages())
	})
}

func TestValidate_Documents(t *testing.T) {
	t.Parallel()

	docs, err := schema.NewDocumentProvider(schema.DocumentSchema{
		Types: map[string]schema.TypeSchema{
			"form": {Fields: []schema.FieldSchema{{
				Name:        "members",
				Constraints: []string{"required"},
				Elements:    &schema.ElementSchema{Elements: &schema.ElementSchema{Constraints: []string{"required"}}},
			}}},
			"person": {Fields: []schema.FieldSchema{
				{Name: "firstName", Constraints: []string{"required", "notblank"}},
				{Name: "address", Object: true},
			}},
			"address": {Fields: []schema.FieldSchema{{Name: "city", Constraints: []string{"required"}}}},
		},
	})
	require.NoError(t, err)

	v := validator.New(docs, validator.WithSink(diag.Discard))
	doc := map[string]any{
		"kind": "form",
		"members": []any{
			[]any{
				map[string]any{"kind": "person"},
				map[string]any{"kind": "person", "firstName": "", "address": map[string]any{"kind": "address"}},
			},
			[]any{map[string]any{"kind": "person", "firstName": "Ann"}},
		},
	}

	got := v.Validate(doc)
	assert.Equal(t, validator.Violations{
		{Path: "members[0][0].firstName", Message: "Must not be null"},
		{Path: "members[0][1].firstName", Message: "Must not be blank!", Value: ""},
		{Path: "members[0][1].address.city", Message: "Must not be null"},
	}, got)
}

type observation struct {
	typeName   string
	violations int
}

type recordingObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (o *recordingObserver) ObserveValidation(_ context.Context, typeName string, violations int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, observation{typeName, violations})
}

func TestValidate_Observer(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}
	v, _ := newValidator(validator.WithObserver(obs))

	v.Validate(&person{})
	v.Validate("leaf")
	v.Validate(nil)

	assert.Equal(t, []observation{{"person", 1}, {"", 0}}, obs.seen)
}

func TestValidate_Concurrent(t *testing.T) {
	t.Parallel()
	v, _ := newValidator()

	var wg sync.WaitGroup
	results := make([]validator.Violations, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			members := make([][]*person, 0, 1)
			row := make([]*person, i%5+1)
			for j := range row {
				row[j] = &person{}
			}
			members = append(members, row)
			results[i] = v.Validate(vaccineForm{Members: members})
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		want := make([]string, 0, i%5+1)
		for j := 0; j < i%5+1; j++ {
			want = append(want, fmt.Sprintf("members[0][%d].firstName", j))
		}
		assert.Equal(t, want, got.Paths(), "result %d", i)
	}
}
