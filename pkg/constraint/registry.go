package constraint

// Evaluator checks one constraint kind against a value. It returns a
// Violation when the value breaks the constraint and a *MismatchError when
// the constraint cannot be applied to the value's type. Evaluators are pure.
type Evaluator func(value any, spec Spec, path string) (*Violation, error)

// Registry is an immutable Kind → Evaluator table.
type Registry struct {
	evaluators map[Kind]Evaluator
}

var defaultRegistry = NewRegistry(Builtins())

// Builtins returns a fresh map of all built-in evaluators. Callers may edit
// the map before passing it to NewRegistry.
func Builtins() map[Kind]Evaluator {
	return map[Kind]Evaluator{
		KindRequired: evalRequired,
		KindNotBlank: evalNotBlank,
		KindNotEmpty: evalNotEmpty,
		KindSize:     evalSize,
		KindInRange:  evalInRange,
		KindPositive: evalPositive,
		KindNegative: evalNegative,
		KindAnyOf:    evalAnyOf,
	}
}

// NewRegistry copies entries into a new registry. Nil evaluators are dropped.
func NewRegistry(entries map[Kind]Evaluator) *Registry {
	evaluators := make(map[Kind]Evaluator, len(entries))
	for kind, eval := range entries {
		if eval != nil {
			evaluators[kind] = eval
		}
	}
	return &Registry{evaluators: evaluators}
}

// DefaultRegistry returns the shared registry of built-in evaluators.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

func (r *Registry) Lookup(kind Kind) (Evaluator, bool) {
	if r == nil {
		return nil, false
	}
	eval, ok := r.evaluators[kind]
	return eval, ok
}

// Kinds lists the registered kinds in declaration order.
func (r *Registry) Kinds() []Kind {
	var out []Kind
	for _, k := range kinds {
		if _, ok := r.evaluators[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// Evaluate looks up the evaluator for spec.Kind and runs it. Unknown kinds
// produce neither a violation nor an error.
func (r *Registry) Evaluate(value any, spec Spec, path string) (*Violation, error) {
	eval, ok := r.Lookup(spec.Kind)
	if !ok {
		return nil, nil
	}
	return eval(value, spec, path)
}
