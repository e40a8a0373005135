package value

import (
	"strings"

	"github.com/korindev/inspect/memory"
	"github.com/korindev/inspect/types"
)

// Ptr is a resolved pointer: an element type plus the target address it
// points at. Advancing a Ptr moves the target by whole element strides and
// never touches the inspected memory.
type Ptr struct {
	mem  memory.Reader
	elem *types.Type
	addr uint64
}

// PtrAt returns a pointer to an element of the supplied type at target.
func PtrAt(mem memory.Reader, elem *types.Type, target uint64) Ptr {
	return Ptr{mem: mem, elem: elem, addr: target}
}

// Null returns the null pointer.
func Null() Ptr {
	return Ptr{}
}

// IsNull reports a zero target address.
func (p Ptr) IsNull() bool {
	return p.addr == 0
}

// Equal compares target addresses.
func (p Ptr) Equal(o Ptr) bool {
	return p.addr == o.addr
}

// Target returns the target address.
func (p Ptr) Target() uint64 {
	return p.addr
}

// Elem returns the pointee type.
func (p Ptr) Elem() *types.Type {
	return p.elem
}

// Advance returns a pointer moved forward by n element strides.
func (p Ptr) Advance(n uint64) Ptr {
	stride := uint64(0)
	if p.elem != nil {
		stride = p.elem.Size
	}
	return Ptr{mem: p.mem, elem: p.elem, addr: p.addr + n*stride}
}

// Next returns a pointer moved forward by one element stride.
func (p Ptr) Next() Ptr {
	return p.Advance(1)
}

// Deref returns the pointed-at value.
func (p Ptr) Deref() Value {
	return Value{mem: p.mem, typ: p.elem, addr: p.addr}
}

// Text reads up to limit bytes from the target, stopping at the first NUL.
func (p Ptr) Text(limit uint64) (string, error) {
	if p.IsNull() || limit == 0 {
		return "", nil
	}
	builder := strings.Builder{}
	buf := make([]byte, 1)
	for i := uint64(0); i < limit; i++ {
		if err := p.mem.ReadAt(p.addr+i, buf); err != nil {
			return "", err
		}
		if buf[0] == 0 {
			break
		}
		builder.WriteByte(buf[0])
	}
	return builder.String(), nil
}
