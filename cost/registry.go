package cost

import (
	"fmt"
	"sort"
	"strings"
)

// Registry maps configuration names to cost functions.
// It is built once at setup time and read afterwards; it is not synchronized.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry returns a registry holding the built-in functions.
func NewRegistry() *Registry {
	return &Registry{funcs: map[string]Func{
		NameDeltaR:  DeltaR,
		NameDeltaPt: DeltaPt,
		NameDeltaE:  DeltaE,
	}}
}

// Register adds or replaces the function called name.
// Names using the reserved "attribute:" prefix are rejected.
func (r *Registry) Register(name string, f Func) error {
	if f == nil {
		return fmt.Errorf("register %q: %w", name, ErrNilFunc)
	}
	if name == "" || strings.HasPrefix(name, AttributePrefix) {
		return fmt.Errorf("register %q: %w", name, ErrUnknownCostFunction)
	}
	r.funcs[name] = f

	return nil
}

// Lookup resolves name. The "attribute:<key>" form builds Attribute(key) on
// the fly and needs no registration.
func (r *Registry) Lookup(name string) (Func, error) {
	if key, ok := strings.CutPrefix(name, AttributePrefix); ok {
		if key == "" {
			return nil, fmt.Errorf("lookup %q: %w: empty attribute key", name, ErrUnknownCostFunction)
		}

		return Attribute(key), nil
	}
	f, ok := r.funcs[name]
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", name, ErrUnknownCostFunction)
	}

	return f, nil
}

// Names returns the registered names in ascending order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for n := range r.funcs {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
