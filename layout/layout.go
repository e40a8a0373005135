// Package layout loads type descriptors from a YAML sidecar. A debugger host
// normally produces descriptors from debug info; offline snapshots instead
// carry an explicit description of record layouts, typedefs and template
// arguments.
package layout

import (
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/korindev/inspect/types"
)

type (
	//document is the sidecar root
	document struct {
		Types map[string]*entry `yaml:"types"`
	}

	//entry describes one named type
	entry struct {
		Kind   string       `yaml:"kind"` //record (default) or typedef
		Size   uint64       `yaml:"size"`
		Type   string       `yaml:"type,omitempty"` //typedef underlying
		Args   []string     `yaml:"args,omitempty"`
		Fields []fieldEntry `yaml:"fields,omitempty"`
	}

	fieldEntry struct {
		Name   string `yaml:"name"`
		Offset uint64 `yaml:"offset"`
		Type   string `yaml:"type"`
	}

	//Table indexes the loaded descriptors by name
	Table struct {
		types  map[string]*types.Type
		arrays []arraySizing
	}

	//arraySizing defers an array's byte size until its element entry fills
	arraySizing struct {
		typ   *types.Type
		count uint64
	}
)

// ErrUnknownType reports a reference to a type the sidecar never declares.
var ErrUnknownType = errors.New("unknown type")

// Load reads and parses a sidecar file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading layout %v", path)
	}
	return Parse(data)
}

// Parse builds a table from sidecar YAML. Entries may reference each other
// and themselves in any order; references resolve after all entries exist.
func Parse(data []byte) (*Table, error) {
	doc := document{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing layout")
	}
	table := &Table{types: map[string]*types.Type{}}
	for name := range doc.Types {
		table.types[name] = &types.Type{Name: name}
	}
	for name, e := range doc.Types {
		if e.Kind == "typedef" {
			continue
		}
		if err := table.fill(table.types[name], name, e); err != nil {
			return nil, err
		}
	}
	// Typedefs resolve after records so alias sizes copy from filled
	// entries; repeated passes settle alias-of-alias chains.
	for pass := 0; pass < len(doc.Types); pass++ {
		settled := true
		for name, e := range doc.Types {
			if e.Kind != "typedef" {
				continue
			}
			if err := table.fill(table.types[name], name, e); err != nil {
				return nil, err
			}
			if table.types[name].Size == 0 {
				settled = false
			}
		}
		if settled {
			break
		}
	}
	// Array sizes resolve last: an element entry referenced before its own
	// fill would otherwise bake a zero element size into the array. Sizings
	// are recorded innermost first, so nested arrays settle in one pass.
	for _, sizing := range table.arrays {
		sizing.typ.Size = sizing.typ.Elem.Size * sizing.count
	}
	return table, nil
}

// Lookup returns the named descriptor, or nil.
func (t *Table) Lookup(name string) *types.Type {
	return t.types[name]
}

func (t *Table) fill(target *types.Type, name string, e *entry) error {
	switch e.Kind {
	case "typedef":
		underlying, err := t.ref(e.Type)
		if err != nil {
			return errors.Wrapf(err, "typedef %v", name)
		}
		target.Kind = types.Typedef
		target.Size = underlying.Size
		target.Elem = underlying
		return nil
	case "", "record":
		target.Kind = types.Record
		target.Size = e.Size
		for _, arg := range e.Args {
			argType, err := t.ref(arg)
			if err != nil {
				return errors.Wrapf(err, "record %v", name)
			}
			target.Args = append(target.Args, argType)
		}
		for _, field := range e.Fields {
			fieldType, err := t.ref(field.Type)
			if err != nil {
				return errors.Wrapf(err, "record %v field %v", name, field.Name)
			}
			target.Fields = append(target.Fields, types.Field{
				Name:   field.Name,
				Offset: field.Offset,
				Type:   fieldType,
			})
		}
		return nil
	}
	return errors.Errorf("type %v has unsupported kind %q", name, e.Kind)
}

// ref resolves a type reference: a scalar name, a declared entry name, a
// "*T" pointer, an "&T" reference, or a "T[N]" fixed array.
func (t *Table) ref(name string) (*types.Type, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Wrap(ErrUnknownType, "empty type reference")
	}
	switch name[0] {
	case '*':
		elem, err := t.ref(name[1:])
		if err != nil {
			return nil, err
		}
		return types.PointerTo(elem), nil
	case '&':
		elem, err := t.ref(name[1:])
		if err != nil {
			return nil, err
		}
		return types.RefTo(elem), nil
	}
	if strings.HasSuffix(name, "]") {
		open := strings.LastIndex(name, "[")
		if open == -1 {
			return nil, errors.Wrapf(ErrUnknownType, "malformed array reference %q", name)
		}
		count, err := strconv.ParseUint(name[open+1:len(name)-1], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrUnknownType, "malformed array count in %q", name)
		}
		elem, err := t.ref(name[:open])
		if err != nil {
			return nil, err
		}
		array := types.ArrayOf(elem, count)
		t.arrays = append(t.arrays, arraySizing{typ: array, count: count})
		return array, nil
	}
	if scalar := types.Scalar(name); scalar != nil {
		return scalar, nil
	}
	if declared, ok := t.types[name]; ok {
		return declared, nil
	}
	return nil, errors.Wrapf(ErrUnknownType, "%q", name)
}
