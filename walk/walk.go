// Package walk offers the lazy traversal primitives the container formatters
// are composed from: a bounded pointer range, a singly-linked chain and an
// in-order walk of a successor-threaded search tree. Every traversal is a
// single-pass sequence produced on demand, nothing is materialized up front.
package walk

import (
	"fmt"

	"github.com/korindev/inspect/value"
)

// Node field names shared by the inspected linked structures.
const (
	FieldData = "data"
	FieldNext = "next"
	FieldLeft = "left"
	FieldRoot = "root"
)

// Seq is a lazy sequence of (key, value) entries. The Visit method calls the
// provided callback for each entry. If the callback returns (false, nil),
// the visit stops. If the callback returns an error, the visit stops and
// returns that error. A Seq is single-pass: it must not be restarted.
type Seq func(yield func(key string, item value.Value) (bool, error)) error

// Empty returns a sequence with no entries.
func Empty() Seq {
	return func(func(string, value.Value) (bool, error)) error {
		return nil
	}
}

// Range returns the elements of [begin, end), dereferencing and advancing
// begin one element stride at a time. An equal begin and end yields nothing
// without dereferencing. The caller guarantees end is reachable from begin.
func Range(begin, end value.Ptr) Seq {
	return func(yield func(string, value.Value) (bool, error)) error {
		idx := 0
		for item := begin; !item.Equal(end); item = item.Next() {
			cont, err := yield(key(idx), item.Deref())
			if err != nil || !cont {
				return err
			}
			idx++
		}
		return nil
	}
}

// Chain follows a singly-linked chain from head, yielding each node's data
// field and advancing through its next field. The walk stops at a null link
// or, when end is non-null, one node before end. A null head is the empty
// sequence.
func Chain(head, end value.Ptr) Seq {
	return func(yield func(string, value.Value) (bool, error)) error {
		idx := 0
		for item := head; !item.IsNull() && !item.Equal(end); idx++ {
			node := item.Deref()
			data, err := node.Field(FieldData)
			if err != nil {
				return err
			}
			next, err := node.Field(FieldNext)
			if err != nil {
				return err
			}
			cont, err := yield(key(idx), data)
			if err != nil || !cont {
				return err
			}
			if item, err = next.Pointer(); err != nil {
				return err
			}
		}
		return nil
	}
}

// Tree walks an intrusive search tree in order: descend left links from the
// root to the minimum node, then follow the tree's threaded next links as a
// plain chain. The tree itself maintains the successor threading; a null
// root is the empty sequence.
func Tree(tree value.Value) Seq {
	return func(yield func(string, value.Value) (bool, error)) error {
		root, err := tree.Field(FieldRoot)
		if err != nil {
			return err
		}
		item, err := root.Pointer()
		if err != nil {
			return err
		}
		for !item.IsNull() {
			left, err := item.Deref().Field(FieldLeft)
			if err != nil {
				return err
			}
			leftPtr, err := left.Pointer()
			if err != nil {
				return err
			}
			if leftPtr.IsNull() {
				break
			}
			item = leftPtr
		}
		return Chain(item, value.Null())(yield)
	}
}

func key(idx int) string {
	return fmt.Sprintf("[%d]", idx)
}
