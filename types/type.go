// Package types models the static type information of inspected values: the
// kind, declared name, byte size, field layout and template arguments that a
// debug-info producer (or a layout sidecar) reports for a foreign type.
package types

import (
	"github.com/cockroachdb/errors"
)

// Kind classifies a type descriptor.
type Kind int

const (
	Invalid Kind = iota
	Ref
	Pointer
	Record
	Array
	Typedef
	Qualified
	Int
	Uint
	Float
	Char
	Bool
)

// WordSize is the pointer width of the inspected target.
const WordSize = 8

type (
	//Field represents a record member at a fixed byte offset
	Field struct {
		Name   string
		Offset uint64
		Type   *Type
	}

	//Type represents a type descriptor
	Type struct {
		Kind   Kind
		Name   string
		Size   uint64
		Elem   *Type   //pointee, array element or underlying type
		Fields []Field //record members, base subobjects first
		Args   []*Type //template argument slots
	}
)

// ErrNoField reports a field lookup against a layout that has no such member.
var ErrNoField = errors.New("no such field")

func (k Kind) String() string {
	switch k {
	case Ref:
		return "ref"
	case Pointer:
		return "pointer"
	case Record:
		return "record"
	case Array:
		return "array"
	case Typedef:
		return "typedef"
	case Qualified:
		return "qualified"
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Float:
		return "float"
	case Char:
		return "char"
	case Bool:
		return "bool"
	}
	return "invalid"
}

// Strip removes typedef aliases and qualifier layers, returning the
// underlying type. Reference and pointer layers are kept.
func (t *Type) Strip() *Type {
	for t != nil && (t.Kind == Typedef || t.Kind == Qualified) {
		t = t.Elem
	}
	return t
}

// Tag returns the record tag of the stripped type, or "" when the type has
// no tag (fundamental and derived types).
func (t *Type) Tag() string {
	s := t.Strip()
	if s == nil || s.Kind != Record {
		return ""
	}
	return s.Name
}

// Arg returns the i-th template argument; ok is false once slots are
// exhausted, so callers can iterate by increasing index.
func (t *Type) Arg(i int) (*Type, bool) {
	s := t.Strip()
	if s == nil || i < 0 || i >= len(s.Args) {
		return nil, false
	}
	return s.Args[i], true
}

// FieldByName returns the named record member.
func (t *Type) FieldByName(name string) (*Field, error) {
	s := t.Strip()
	if s == nil || s.Kind != Record {
		return nil, errors.Wrapf(ErrNoField, "%v is not a record", t.Name)
	}
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i], nil
		}
	}
	return nil, errors.Wrapf(ErrNoField, "%v.%v", s.Name, name)
}

// FieldAt returns the record member at the supplied position.
func (t *Type) FieldAt(index int) (*Field, error) {
	s := t.Strip()
	if s == nil || s.Kind != Record {
		return nil, errors.Wrapf(ErrNoField, "%v is not a record", t.Name)
	}
	if index < 0 || index >= len(s.Fields) {
		return nil, errors.Wrapf(ErrNoField, "%v[%d]", s.Name, index)
	}
	return &s.Fields[index], nil
}

// NumFields returns the record member count of the stripped type.
func (t *Type) NumFields() int {
	s := t.Strip()
	if s == nil || s.Kind != Record {
		return 0
	}
	return len(s.Fields)
}

// Count returns the element count of a fixed-size array: declared size
// divided by element stride.
func (t *Type) Count() uint64 {
	s := t.Strip()
	if s == nil || s.Kind != Array || s.Elem == nil || s.Elem.Size == 0 {
		return 0
	}
	return s.Size / s.Elem.Size
}

// IsChar reports whether the stripped type is a character type.
func (t *Type) IsChar() bool {
	s := t.Strip()
	return s != nil && s.Kind == Char
}

// IsRef reports whether the type is a reference before stripping.
func (t *Type) IsRef() bool {
	return t != nil && t.Kind == Ref
}

func (t *Type) String() string {
	if t == nil {
		return "?"
	}
	if t.Name != "" {
		return t.Name
	}
	switch t.Kind {
	case Pointer:
		return "*" + t.Elem.String()
	case Ref:
		return "&" + t.Elem.String()
	case Array:
		return t.Elem.String() + "[]"
	}
	return t.Kind.String()
}
