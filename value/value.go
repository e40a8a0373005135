// Package value implements the structural accessors over inspected memory:
// field reads, pointer resolution, element addressing and scalar decoding,
// all against a read-only memory snapshot.
package value

import (
	"encoding/binary"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/korindev/inspect/memory"
	"github.com/korindev/inspect/types"
)

// Value is an inspected value: a typed, read-only view of foreign memory.
// Values share the underlying region, accessors never copy container
// payloads.
type Value struct {
	mem  memory.Reader
	typ  *types.Type
	addr uint64
}

// At returns the value of the supplied type located at addr.
func At(mem memory.Reader, typ *types.Type, addr uint64) Value {
	return Value{mem: mem, typ: typ, addr: addr}
}

// Type returns the declared type descriptor.
func (v Value) Type() *types.Type {
	return v.typ
}

// Addr returns the value location.
func (v Value) Addr() uint64 {
	return v.addr
}

// Field returns the named record member as a value sharing this value's
// memory. An absent field is a formatter programming error and fails loudly.
func (v Value) Field(name string) (Value, error) {
	field, err := v.typ.FieldByName(name)
	if err != nil {
		return Value{}, err
	}
	return Value{mem: v.mem, typ: field.Type, addr: v.addr + field.Offset}, nil
}

// FieldAt returns the record member at the supplied position.
func (v Value) FieldAt(index int) (Value, error) {
	field, err := v.typ.FieldAt(index)
	if err != nil {
		return Value{}, err
	}
	return Value{mem: v.mem, typ: field.Type, addr: v.addr + field.Offset}, nil
}

// Elem returns the i-th element of a fixed-size array value.
func (v Value) Elem(i uint64) (Value, error) {
	s := v.typ.Strip()
	if s == nil || s.Kind != types.Array || s.Elem == nil {
		return Value{}, errors.Errorf("%v is not an array", v.typ)
	}
	return Value{mem: v.mem, typ: s.Elem, addr: v.addr + i*s.Elem.Size}, nil
}

// Pointer resolves a pointer or reference typed value to its target.
func (v Value) Pointer() (Ptr, error) {
	s := v.typ.Strip()
	if s == nil || (s.Kind != types.Pointer && s.Kind != types.Ref) {
		return Ptr{}, errors.Errorf("%v is not pointer-like", v.typ)
	}
	target, err := v.word()
	if err != nil {
		return Ptr{}, err
	}
	return Ptr{mem: v.mem, elem: s.Elem, addr: target}, nil
}

// Deref dereferences a pointer or reference typed value.
func (v Value) Deref() (Value, error) {
	ptr, err := v.Pointer()
	if err != nil {
		return Value{}, err
	}
	return ptr.Deref(), nil
}

// Int decodes a signed scalar of the declared size.
func (v Value) Int() (int64, error) {
	buf, err := v.bytes()
	if err != nil {
		return 0, err
	}
	switch len(buf) {
	case 1:
		return int64(int8(buf[0])), nil
	case 2:
		return int64(int16(binary.LittleEndian.Uint16(buf))), nil
	case 4:
		return int64(int32(binary.LittleEndian.Uint32(buf))), nil
	case 8:
		return int64(binary.LittleEndian.Uint64(buf)), nil
	}
	return 0, errors.Errorf("unsupported scalar size %d", len(buf))
}

// Uint decodes an unsigned scalar of the declared size.
func (v Value) Uint() (uint64, error) {
	buf, err := v.bytes()
	if err != nil {
		return 0, err
	}
	switch len(buf) {
	case 1:
		return uint64(buf[0]), nil
	case 2:
		return uint64(binary.LittleEndian.Uint16(buf)), nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(buf)), nil
	case 8:
		return binary.LittleEndian.Uint64(buf), nil
	}
	return 0, errors.Errorf("unsupported scalar size %d", len(buf))
}

// Float decodes a floating point scalar of the declared size.
func (v Value) Float() (float64, error) {
	buf, err := v.bytes()
	if err != nil {
		return 0, err
	}
	switch len(buf) {
	case 4:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(buf))), nil
	case 8:
		return math.Float64frombits(binary.LittleEndian.Uint64(buf)), nil
	}
	return 0, errors.Errorf("unsupported float size %d", len(buf))
}

// Bool decodes a boolean scalar.
func (v Value) Bool() (bool, error) {
	u, err := v.Uint()
	if err != nil {
		return false, err
	}
	return u != 0, nil
}

func (v Value) word() (uint64, error) {
	var buf [types.WordSize]byte
	if err := v.mem.ReadAt(v.addr, buf[:]); err != nil {
		return 0, errors.Wrapf(err, "reading pointer at 0x%x", v.addr)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func (v Value) bytes() ([]byte, error) {
	s := v.typ.Strip()
	if s == nil || s.Size == 0 {
		return nil, errors.Errorf("%v has no size", v.typ)
	}
	buf := make([]byte, s.Size)
	if err := v.mem.ReadAt(v.addr, buf); err != nil {
		return nil, errors.Wrapf(err, "reading %v at 0x%x", v.typ, v.addr)
	}
	return buf, nil
}
