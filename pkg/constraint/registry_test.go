package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/constraint"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg := constraint.DefaultRegistry()
	assert.Same(t, reg, constraint.DefaultRegistry())
	assert.Equal(t, constraint.Kinds(), reg.Kinds())

	for _, kind := range constraint.Kinds() {
		eval, ok := reg.Lookup(kind)
		assert.True(t, ok, kind.String())
		assert.NotNil(t, eval, kind.String())
	}

	_, ok := reg.Lookup(constraint.KindUnknown)
	assert.False(t, ok)
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	t.Run("copies its input", func(t *testing.T) {
		entries := constraint.Builtins()
		reg := constraint.NewRegistry(entries)
		delete(entries, constraint.KindRequired)

		_, ok := reg.Lookup(constraint.KindRequired)
		assert.True(t, ok)
	})

	t.Run("drops nil evaluators", func(t *testing.T) {
		reg := constraint.NewRegistry(map[constraint.Kind]constraint.Evaluator{
			constraint.KindRequired: nil,
		})
		_, ok := reg.Lookup(constraint.KindRequired)
		assert.False(t, ok)
		assert.Empty(t, reg.Kinds())
	})

	t.Run("missing kinds are ignored by Evaluate", func(t *testing.T) {
		reg := constraint.NewRegistry(nil)
		v, err := reg.Evaluate(nil, constraint.Required(), "field")
		assert.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("nil registry has no evaluators", func(t *testing.T) {
		var reg *constraint.Registry
		_, ok := reg.Lookup(constraint.KindRequired)
		assert.False(t, ok)
	})

	t.Run("custom evaluator replaces a built-in", func(t *testing.T) {
		entries := constraint.Builtins()
		entries[constraint.KindPositive] = func(value any, spec constraint.Spec, path string) (*constraint.Violation, error) {
			return &constraint.Violation{Path: path, Message: "custom"}, nil
		}
		reg := constraint.NewRegistry(entries)

		v, err := reg.Evaluate(1, constraint.Positive(), "n")
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, "custom", v.Message)
	})
}
