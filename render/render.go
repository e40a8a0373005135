// Package render assembles host-side display trees: it resolves values
// against the installed registries, expands children to a bounded depth and
// exports the result as JSON for frontend consumption.
package render

import (
	"github.com/korindev/inspect"
	"github.com/korindev/inspect/value"
)

// Node is one rendered value. A failed render is captured in Err; sibling
// nodes render independently.
type Node struct {
	Name     string
	Summary  string
	Hint     string
	Err      string
	Children []*Node
}

// Value renders v against the installed registries, expanding children
// depth levels deep. Values with no formatter render as scalar literals or
// as their bare type name.
func Value(obj *inspect.ObjectFile, name string, v value.Value, depth int) *Node {
	node := &Node{Name: name}

	formatter, err := obj.Lookup(v)
	if err != nil {
		node.Err = err.Error()
		return node
	}
	if formatter == nil {
		renderPlain(node, v)
		return node
	}

	node.Hint = formatter.Hint().String()
	if node.Summary, err = formatter.Summary(); err != nil {
		node.Err = err.Error()
		return node
	}
	if depth <= 0 {
		return node
	}
	seq := formatter.Children()
	if seq == nil {
		return node
	}
	err = seq(func(key string, item value.Value) (bool, error) {
		node.Children = append(node.Children, Value(obj, key, item, depth-1))
		return true, nil
	})
	if err != nil {
		// The traversal itself broke; children gathered so far stand.
		node.Err = err.Error()
	}
	return node
}

func renderPlain(node *Node, v value.Value) {
	text, ok, err := inspect.ScalarText(v)
	if err != nil {
		node.Err = err.Error()
		return
	}
	if ok {
		node.Summary = text
		return
	}
	node.Summary = v.Type().String()
}
