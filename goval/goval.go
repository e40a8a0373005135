// Package goval bridges live Go values into the inspection engine: it derives
// type descriptors from reflect types through xunsafe and serves reads from
// the current process's own memory. Mirror structs of the target containers
// can then be built as ordinary Go values and rendered through the engine.
//
// Go generic names normalize to template tags: Array[int32] becomes
// Array<int32>, with package qualifiers inside the clause stripped. Signed
// 8-bit integers describe as the character type so char buffers render as
// text. Template argument slots stay empty; formatters recover element types
// structurally.
package goval

import (
	"reflect"
	"strings"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/viant/xunsafe"

	"github.com/korindev/inspect/memory"
	"github.com/korindev/inspect/types"
	"github.com/korindev/inspect/value"
)

type processReader struct{}

// Process returns a reader over the current process's address space.
func Process() memory.Reader {
	return processReader{}
}

func (processReader) ReadAt(addr uint64, buf []byte) error {
	if addr == 0 {
		return errors.Wrap(memory.ErrOutOfRange, "null address")
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(addr))), len(buf))
	copy(buf, src)
	return nil
}

// Describer derives and caches type descriptors from reflect types.
type Describer struct {
	cache map[reflect.Type]*types.Type
}

// NewDescriber returns an empty describer.
func NewDescriber() *Describer {
	return &Describer{cache: map[reflect.Type]*types.Type{}}
}

// ValueOf returns an inspected view of the struct a non-nil pointer points
// at. The caller keeps the target alive for the inspection's duration.
func (d *Describer) ValueOf(v interface{}) (value.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return value.Value{}, errors.Errorf("expected non-nil pointer, got %T", v)
	}
	typ, err := d.Describe(rv.Type().Elem())
	if err != nil {
		return value.Value{}, err
	}
	return value.At(Process(), typ, uint64(rv.Pointer())), nil
}

// Describe derives the descriptor of a reflect type.
func (d *Describer) Describe(t reflect.Type) (*types.Type, error) {
	if cached, ok := d.cache[t]; ok {
		return cached, nil
	}
	switch t.Kind() {
	case reflect.Struct:
		return d.describeStruct(t)
	case reflect.Ptr:
		result := &types.Type{Kind: types.Pointer, Size: uint64(t.Size())}
		d.cache[t] = result
		elem, err := d.Describe(t.Elem())
		if err != nil {
			return nil, err
		}
		result.Elem = elem
		return result, nil
	case reflect.Array:
		elem, err := d.Describe(t.Elem())
		if err != nil {
			return nil, err
		}
		result := &types.Type{Kind: types.Array, Size: uint64(t.Size()), Elem: elem}
		d.cache[t] = result
		return result, nil
	case reflect.Int8:
		return types.CharT, nil
	case reflect.Int, reflect.Int16, reflect.Int32, reflect.Int64:
		return scalarOf(types.Int, t), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return scalarOf(types.Uint, t), nil
	case reflect.Float32, reflect.Float64:
		return scalarOf(types.Float, t), nil
	case reflect.Bool:
		return types.BoolT, nil
	}
	return nil, errors.Errorf("cannot describe %v", t)
}

func (d *Describer) describeStruct(t reflect.Type) (*types.Type, error) {
	result := &types.Type{Kind: types.Record, Name: normalizeName(t.Name()), Size: uint64(t.Size())}
	d.cache[t] = result
	xStruct := xunsafe.NewStruct(t)
	for i := range xStruct.Fields {
		field := &xStruct.Fields[i]
		fieldType, err := d.Describe(field.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "field %v.%v", t.Name(), field.Name)
		}
		result.Fields = append(result.Fields, types.Field{
			Name:   field.Name,
			Offset: uint64(field.Offset),
			Type:   fieldType,
		})
	}
	return result, nil
}

func scalarOf(kind types.Kind, t reflect.Type) *types.Type {
	switch kind {
	case types.Int:
		switch t.Size() {
		case 2:
			return types.Int16T
		case 4:
			return types.Int32T
		default:
			return types.Int64T
		}
	case types.Uint:
		switch t.Size() {
		case 1:
			return types.Uint8T
		case 2:
			return types.Uint16T
		case 4:
			return types.Uint32T
		default:
			return types.Uint64T
		}
	default:
		if t.Size() == 4 {
			return types.Float32T
		}
		return types.Float64T
	}
}

// normalizeName rewrites a Go generic instantiation name into a template
// tag: brackets become angle brackets and package qualifiers inside the
// clause drop.
func normalizeName(name string) string {
	if !strings.ContainsRune(name, '[') {
		return name
	}
	builder := strings.Builder{}
	token := strings.Builder{}
	flush := func() {
		text := token.String()
		if dot := strings.LastIndexByte(text, '.'); dot != -1 {
			text = text[dot+1:]
		}
		builder.WriteString(text)
		token.Reset()
	}
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '[':
			flush()
			builder.WriteByte('<')
		case ']':
			flush()
			builder.WriteByte('>')
		case ',':
			flush()
			builder.WriteByte(',')
		case ' ':
			flush()
			builder.WriteByte(' ')
		case '*':
			flush()
			builder.WriteByte('*')
		default:
			token.WriteByte(name[i])
		}
	}
	flush()
	return builder.String()
}
