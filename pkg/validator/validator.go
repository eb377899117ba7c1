package validator

import (
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formguard/pkg/constraint"
	"github.com/dmitrymomot/formguard/pkg/diag"
	"github.com/dmitrymomot/formguard/pkg/schema"
)

// DefaultMaxDepth bounds the number of nested objects and sequence levels
// on a descent path, the root included.
const DefaultMaxDepth = 100

// Observer is notified once per validated root.
type Observer interface {
	ObserveValidation(ctx context.Context, typeName string, violations int, elapsed time.Duration)
}

// Validator walks object graphs described by a schema.Provider and collects
// constraint violations. It is immutable and safe for concurrent use.
type Validator struct {
	provider schema.Provider
	registry *constraint.Registry
	sink     diag.Sink
	observer Observer
	maxDepth int
	runID    func() string
}

type Option func(*Validator)

// WithRegistry replaces the built-in evaluator table.
func WithRegistry(r *constraint.Registry) Option {
	return func(v *Validator) {
		if r != nil {
			v.registry = r
		}
	}
}

// WithSink sets where diagnostics go. Nil discards them.
func WithSink(s diag.Sink) Option {
	return func(v *Validator) {
		if s == nil {
			s = diag.Discard
		}
		v.sink = s
	}
}

// WithMaxDepth sets the nesting limit. Non-positive values keep the default.
func WithMaxDepth(depth int) Option {
	return func(v *Validator) {
		if depth > 0 {
			v.maxDepth = depth
		}
	}
}

func WithObserver(o Observer) Option {
	return func(v *Validator) {
		v.observer = o
	}
}

// WithRunID sets the generator of the ID attached to each call's diagnostics.
func WithRunID(fn func() string) Option {
	return func(v *Validator) {
		if fn != nil {
			v.runID = fn
		}
	}
}

// New creates a validator over provider. Diagnostics are logged through
// slog.Default unless WithSink is given.
func New(provider schema.Provider, opts ...Option) *Validator {
	v := &Validator{
		provider: provider,
		registry: constraint.DefaultRegistry(),
		sink:     diag.NewLogSink(nil),
		maxDepth: DefaultMaxDepth,
		runID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.provider == nil {
		v.provider = schema.Chain()
	}
	return v
}

// Validate walks root and returns its violations in walk order.
func (v *Validator) Validate(root any) Violations {
	return v.ValidateContext(context.Background(), root)
}

// ValidateContext is Validate with a context passed to the diagnostic sink
// and the observer. The walk itself is not cancellable.
func (v *Validator) ValidateContext(ctx context.Context, root any) Violations {
	root = schema.ValueOf(reflect.ValueOf(root))
	if root == nil {
		return Violations{}
	}

	start := time.Now()
	w := &walker{
		Validator: v,
		ctx:       ctx,
		runID:     v.runID(),
		out:       Violations{},
	}
	w.walkObject(root, "")

	if v.observer != nil {
		typeName := ""
		if d, ok := v.provider.Describe(root); ok {
			typeName = d.Name
		}
		v.observer.ObserveValidation(ctx, typeName, len(w.out), time.Since(start))
	}
	return w.out
}
