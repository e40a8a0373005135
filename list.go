package inspect

import (
	"fmt"

	"github.com/korindev/inspect/types"
	"github.com/korindev/inspect/value"
	"github.com/korindev/inspect/walk"
)

// listFormatter renders the singly-linked List container.
type listFormatter struct {
	head   value.Ptr
	tail   value.Ptr
	length uint64
	elem   *types.Type
}

// NewList builds the List formatter.
func NewList(v value.Value) (Formatter, error) {
	head, err := fieldPointer(v, "head")
	if err != nil {
		return nil, err
	}
	tail, err := fieldPointer(v, "tail")
	if err != nil {
		return nil, err
	}
	length, err := fieldUint(v, "length")
	if err != nil {
		return nil, err
	}
	elem, ok := v.Type().Arg(0)
	if !ok {
		elem = nodeDataType(head)
	}
	return &listFormatter{head: head, tail: tail, length: length, elem: elem}, nil
}

func (f *listFormatter) Hint() Hint {
	return HintArray
}

// Children walks [head, tail.next). A null head is the empty list; a null
// tail degrades to a walk-to-null so a half-linked list cannot fault.
func (f *listFormatter) Children() walk.Seq {
	return func(yield func(string, value.Value) (bool, error)) error {
		if f.head.IsNull() {
			return nil
		}
		end := value.Null()
		if !f.tail.IsNull() {
			next, err := f.tail.Deref().Field(walk.FieldNext)
			if err != nil {
				return err
			}
			if end, err = next.Pointer(); err != nil {
				return err
			}
		}
		return walk.Chain(f.head, end)(yield)
	}
}

func (f *listFormatter) Summary() (string, error) {
	return fmt.Sprintf("List %s[%d]", f.elem, f.length), nil
}

func fieldPointer(v value.Value, name string) (value.Ptr, error) {
	field, err := v.Field(name)
	if err != nil {
		return value.Ptr{}, err
	}
	return field.Pointer()
}

// nodeDataType returns the data member type of a link node, or nil.
func nodeDataType(node value.Ptr) *types.Type {
	if node.Elem() == nil {
		return nil
	}
	field, err := node.Elem().FieldByName(walk.FieldData)
	if err != nil {
		return nil
	}
	return field.Type
}
