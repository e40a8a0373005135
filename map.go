package inspect

import (
	"fmt"

	"github.com/korindev/inspect/types"
	"github.com/korindev/inspect/value"
	"github.com/korindev/inspect/walk"
)

// mapFormatter renders the Map container: a successor-threaded search tree
// of (first, second) pair nodes.
type mapFormatter struct {
	tree     value.Value
	numNodes uint64
	keyType  *types.Type
	valType  *types.Type
}

// NewMap builds the Map formatter.
func NewMap(v value.Value) (Formatter, error) {
	tree, err := v.Field("tree")
	if err != nil {
		return nil, err
	}
	numNodes, err := fieldUint(tree, "numNodes")
	if err != nil {
		return nil, err
	}
	keyType, _ := v.Type().Arg(0)
	valType, _ := v.Type().Arg(1)
	return &mapFormatter{tree: tree, numNodes: numNodes, keyType: keyType, valType: valType}, nil
}

func (f *mapFormatter) Hint() Hint {
	return HintMap
}

// Children yields two entries per tree pair, the key then the value.
func (f *mapFormatter) Children() walk.Seq {
	return func(yield func(string, value.Value) (bool, error)) error {
		idx := 0
		return walk.Tree(f.tree)(func(_ string, pair value.Value) (bool, error) {
			first, err := pair.Field("first")
			if err != nil {
				return false, err
			}
			second, err := pair.Field("second")
			if err != nil {
				return false, err
			}
			cont, err := yield(fmt.Sprintf("[%d]", idx), first)
			if err != nil || !cont {
				return cont, err
			}
			cont, err = yield(fmt.Sprintf("[%d]", idx+1), second)
			idx += 2
			return cont, err
		})
	}
}

func (f *mapFormatter) Summary() (string, error) {
	return fmt.Sprintf("Map <%s, %s>[%d]", f.keyType, f.valType, f.numNodes), nil
}
