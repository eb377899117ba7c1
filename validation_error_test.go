package formguard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formguard"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		e := formguard.NewValidationError()
		assert.True(t, e.IsEmpty())
		assert.Equal(t, "Validation failed", e.Error())
	})

	t.Run("add and get", func(t *testing.T) {
		e := formguard.NewValidationError()
		e.Add("age", "Must be positive!")
		e.Add("age", "Must be in range between 0 and 150")

		assert.True(t, e.Has("age"))
		assert.False(t, e.Has("name"))
		assert.Equal(t, "Must be positive!", e.Get("age"))
		assert.Empty(t, e.Get("name"))
	})

	t.Run("error lists first message per path in order", func(t *testing.T) {
		e := formguard.NewValidationError()
		e.Add("members[0].firstName", "Must not be null")
		e.Add("age", "Must be positive!")
		e.Add("age", "Must be negative!")

		assert.Equal(t, "validation error: age: Must be positive!, members[0].firstName: Must not be null", e.Error())
	})

	t.Run("from violations", func(t *testing.T) {
		e := formguard.FromViolations(validator.Violations{
			{Path: "address.city", Message: "Must not be null"},
			{Path: "address.city", Message: "Must not be blank!"},
		})
		assert.Equal(t, []string{"Must not be null", "Must not be blank!"}, e["address.city"])
	})
}
