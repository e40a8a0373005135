package inspect

import (
	"fmt"

	"github.com/korindev/inspect/types"
	"github.com/korindev/inspect/value"
	"github.com/korindev/inspect/walk"
)

// setFormatter renders the Set container, one entry per tree node.
type setFormatter struct {
	tree     value.Value
	numNodes uint64
	elem     *types.Type
}

// NewSet builds the Set formatter.
func NewSet(v value.Value) (Formatter, error) {
	tree, err := v.Field("tree")
	if err != nil {
		return nil, err
	}
	numNodes, err := fieldUint(tree, "numNodes")
	if err != nil {
		return nil, err
	}
	elem, _ := v.Type().Arg(0)
	return &setFormatter{tree: tree, numNodes: numNodes, elem: elem}, nil
}

func (f *setFormatter) Hint() Hint {
	return HintArray
}

func (f *setFormatter) Children() walk.Seq {
	return walk.Tree(f.tree)
}

func (f *setFormatter) Summary() (string, error) {
	return fmt.Sprintf("Set %s[%d]", f.elem, f.numNodes), nil
}
