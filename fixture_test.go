package inspect

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/korindev/inspect/memory"
	"github.com/korindev/inspect/types"
	"github.com/korindev/inspect/value"
	"github.com/korindev/inspect/walk"
)

// Target layouts of the korin containers, mirroring the runtime's field
// order on a 64-bit little-endian target.

func arrayType(elem *types.Type) *types.Type {
	return types.NewRecord("Array<"+elem.String()+">", 24, []types.Field{
		{Name: "buffer", Offset: 0, Type: types.PointerTo(elem)},
		{Name: "count", Offset: 8, Type: types.Uint64T},
		{Name: "capacity", Offset: 16, Type: types.Uint64T},
	}, elem)
}

func stringType() *types.Type {
	return types.NewRecord("StringBase<char>", 24, []types.Field{
		{Name: "array", Offset: 0, Type: arrayType(types.CharT)},
	}, types.CharT)
}

func listLinkType(elem *types.Type) *types.Type {
	link := &types.Type{Kind: types.Record, Name: "Link<" + elem.String() + ">", Size: 24}
	ptr := types.PointerTo(link)
	link.Fields = []types.Field{
		{Name: walk.FieldData, Offset: 0, Type: elem},
		{Name: walk.FieldNext, Offset: 8, Type: ptr},
		{Name: "prev", Offset: 16, Type: ptr},
	}
	return link
}

func listType(elem *types.Type) *types.Type {
	link := listLinkType(elem)
	return types.NewRecord("List<"+elem.String()+">", 24, []types.Field{
		{Name: "head", Offset: 0, Type: types.PointerTo(link)},
		{Name: "tail", Offset: 8, Type: types.PointerTo(link)},
		{Name: "length", Offset: 16, Type: types.Uint64T},
	}, elem)
}

func binaryNodeType(data *types.Type) *types.Type {
	node := &types.Type{Kind: types.Record, Name: "BinaryNode<" + data.String() + ">", Size: 40 + data.Size}
	ptr := types.PointerTo(node)
	node.Fields = []types.Field{
		{Name: walk.FieldLeft, Offset: 0, Type: ptr},
		{Name: "right", Offset: 8, Type: ptr},
		{Name: "parent", Offset: 16, Type: ptr},
		{Name: walk.FieldNext, Offset: 24, Type: ptr},
		{Name: "prev", Offset: 32, Type: ptr},
		{Name: walk.FieldData, Offset: 40, Type: data},
	}
	return node
}

func treeType(data *types.Type) *types.Type {
	return types.NewRecord("Tree<"+data.String()+">", 16, []types.Field{
		{Name: walk.FieldRoot, Offset: 0, Type: types.PointerTo(binaryNodeType(data))},
		{Name: "numNodes", Offset: 8, Type: types.Uint64T},
	}, data)
}

func pairType(first, second *types.Type) *types.Type {
	return types.NewRecord("Pair<"+first.String()+", "+second.String()+">", first.Size+second.Size, []types.Field{
		{Name: "first", Offset: 0, Type: first},
		{Name: "second", Offset: first.Size, Type: second},
	}, first, second)
}

func mapType(key, val *types.Type) *types.Type {
	return types.NewRecord("Map<"+key.String()+", "+val.String()+">", 16, []types.Field{
		{Name: "tree", Offset: 0, Type: treeType(pairType(key, val))},
	}, key, val)
}

func setType(elem *types.Type) *types.Type {
	return types.NewRecord("Set<"+elem.String()+">", 16, []types.Field{
		{Name: "tree", Offset: 0, Type: treeType(elem)},
	}, elem)
}

// putBinaryNode writes a binary node's links; data is written by the caller
// at addr+40.
func putBinaryNode(t *testing.T, s *memory.Snapshot, addr, left, next uint64) {
	require.Nil(t, s.PutUint64(addr, left))
	require.Nil(t, s.PutUint64(addr+24, next))
}

// collectChildren drains a child sequence into parallel key/value slices.
func collectChildren(t *testing.T, f Formatter) ([]string, []int64) {
	var keys []string
	var items []int64
	seq := f.Children()
	if seq == nil {
		return keys, items
	}
	err := seq(func(key string, item value.Value) (bool, error) {
		n, err := item.Int()
		if err != nil {
			return false, err
		}
		keys = append(keys, key)
		items = append(items, n)
		return true, nil
	})
	require.Nil(t, err)
	return keys, items
}
