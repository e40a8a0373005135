// Package inspect renders inspected runtime containers for debug display.
// Given a read-only value handle and its type descriptor it resolves the
// container shape by base name, then exposes a one-line summary and a lazily
// enumerated sequence of named children reconstructed from the container's
// internal field layout.
package inspect

import (
	"github.com/korindev/inspect/value"
)

// ObjectFile is the host-side registration context: an append-only list of
// registries consulted in order when a value is displayed.
type ObjectFile struct {
	Registries []*Registry
}

// Register installs a registry into the host context. Called exactly once
// per registry at process attach.
func Register(obj *ObjectFile, registry *Registry) {
	obj.Registries = append(obj.Registries, registry)
}

// Lookup resolves a value against the installed registries in order,
// returning the first match or (nil, nil) when no formatter applies.
func (o *ObjectFile) Lookup(v value.Value) (Formatter, error) {
	for _, registry := range o.Registries {
		formatter, err := registry.Lookup(v)
		if err != nil {
			return nil, err
		}
		if formatter != nil {
			return formatter, nil
		}
	}
	return nil, nil
}

// NewKorinRegistry builds the registry for the korin container set, in the
// fixed registration order the runtime installs.
func NewKorinRegistry() *Registry {
	registry := NewRegistry("korin")
	registry.Add("Array", NewArray)
	registry.Add("StringBase", NewString)
	registry.Add("List", NewList)
	registry.Add("Tuple", NewTuple)
	registry.Add("Map", NewMap)
	registry.Add("Set", NewSet)
	registry.Add("Vec2", NewVector)
	registry.Add("Vec3", NewVector)
	registry.Add("Vec4", NewVector)
	registry.Add("Quat", NewQuat)
	return registry
}
