package render

import (
	"github.com/francoispqt/gojay"
)

// MarshalJSONObject encodes the node with gojay.
func (n *Node) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKeyOmitEmpty("name", n.Name)
	enc.StringKey("summary", n.Summary)
	enc.StringKeyOmitEmpty("hint", n.Hint)
	enc.StringKeyOmitEmpty("error", n.Err)
	enc.ArrayKeyOmitEmpty("children", nodes(n.Children))
}

// IsNil implements gojay's marshaler contract.
func (n *Node) IsNil() bool {
	return n == nil
}

type nodes []*Node

func (s nodes) MarshalJSONArray(enc *gojay.Encoder) {
	for _, node := range s {
		enc.Object(node)
	}
}

func (s nodes) IsNil() bool {
	return len(s) == 0
}

// JSON encodes a rendered tree.
func JSON(n *Node) ([]byte, error) {
	return gojay.MarshalJSONObject(n)
}
