package inspect

import (
	"github.com/korindev/inspect/typename"
	"github.com/korindev/inspect/value"
)

type (
	//registration keeps the registered order for deterministic installs
	registration struct {
		name      string
		construct Constructor
	}

	//Registry maps base names to formatter constructors. It is built once
	//at initialization in a fixed order and never mutated afterwards.
	Registry struct {
		name    string
		ordered []registration
		index   map[string]Constructor
	}
)

// NewRegistry returns an empty named registry.
func NewRegistry(name string) *Registry {
	return &Registry{name: name, index: map[string]Constructor{}}
}

// Name returns the registry name.
func (r *Registry) Name() string {
	return r.name
}

// Add appends a (base name, constructor) registration. A duplicate name
// overwrites the lookup entry; real initialization never registers a name
// twice.
func (r *Registry) Add(name string, construct Constructor) {
	r.ordered = append(r.ordered, registration{name: name, construct: construct})
	r.index[name] = construct
}

// Names returns the registered base names in registration order.
func (r *Registry) Names() []string {
	result := make([]string, 0, len(r.ordered))
	for _, reg := range r.ordered {
		result = append(result, reg.name)
	}
	return result
}

// Lookup resolves a value to its formatter. A (nil, nil) return means no
// formatter: the expected, silent outcome for ordinary values. A non-nil
// error means a matched constructor failed against the value's layout.
func (r *Registry) Lookup(v value.Value) (Formatter, error) {
	base, ok := typename.Resolve(v.Type())
	if !ok {
		return nil, nil
	}
	construct, ok := r.index[base]
	if !ok {
		return nil, nil
	}
	if v.Type().IsRef() {
		referenced, err := v.Deref()
		if err != nil {
			return nil, err
		}
		v = referenced
	}
	return construct(v)
}
