package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korindev/inspect/memory"
	"github.com/korindev/inspect/types"
	"github.com/korindev/inspect/value"
)

func collect(t *testing.T, seq Seq) ([]string, []int64) {
	var keys []string
	var items []int64
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

func TestRange(t *testing.T) {
	snapshot := memory.NewSnapshot(0x1000, make([]byte, 64))
	require.Nil(t, snapshot.PutUint32(0x1000, 1))
	require.Nil(t, snapshot.PutUint32(0x1004, 2))
	require.Nil(t, snapshot.PutUint32(0x1008, 3))

	begin := value.PtrAt(snapshot, types.Int32T, 0x1000)

	keys, items := collect(t, Range(begin, begin.Advance(3)))
	assert.EqualValues(t, []string{"[0]", "[1]", "[2]"}, keys)
	assert.EqualValues(t, []int64{1, 2, 3}, items)

	// Zero-length range never dereferences, even through a wild pointer.
	wild := value.PtrAt(snapshot, types.Int32T, 0xdead0000)
	keys, items = collect(t, Range(wild, wild))
	assert.Empty(t, keys)
	assert.Empty(t, items)
}

func TestRangeStopsEarly(t *testing.T) {
	snapshot := memory.NewSnapshot(0x1000, make([]byte, 64))
	begin := value.PtrAt(snapshot, types.Int32T, 0x1000)

	seen := 0
	err := Range(begin, begin.Advance(8))(func(string, value.Value) (bool, error) {
		seen++
		return seen < 2, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, 2, seen)
}

// linkNode lays out {data int32; next *node} nodes in the snapshot and
// returns the node record type.
func linkNode() *types.Type {
	node := &types.Type{Kind: types.Record, Name: "ListNode<int32>", Size: 16}
	node.Fields = []types.Field{
		{Name: FieldData, Offset: 0, Type: types.Int32T},
		{Name: FieldNext, Offset: 8, Type: types.PointerTo(node)},
	}
	return node
}

func TestChain(t *testing.T) {
	snapshot := memory.NewSnapshot(0x1000, make([]byte, 256))
	node := linkNode()

	// Three nodes: 0x1000 -> 0x1040 -> 0x1080 -> null.
	require.Nil(t, snapshot.PutUint32(0x1000, 10))
	require.Nil(t, snapshot.PutUint64(0x1008, 0x1040))
	require.Nil(t, snapshot.PutUint32(0x1040, 20))
	require.Nil(t, snapshot.PutUint64(0x1048, 0x1080))
	require.Nil(t, snapshot.PutUint32(0x1080, 30))

	head := value.PtrAt(snapshot, node, 0x1000)

	keys, items := collect(t, Chain(head, value.Null()))
	assert.EqualValues(t, []string{"[0]", "[1]", "[2]"}, keys)
	assert.EqualValues(t, []int64{10, 20, 30}, items)

	// End sentinel stops one node short.
	keys, items = collect(t, Chain(head, value.PtrAt(snapshot, node, 0x1080)))
	assert.EqualValues(t, []string{"[0]", "[1]"}, keys)
	assert.EqualValues(t, []int64{10, 20}, items)

	// Null head is the empty sequence.
	keys, _ = collect(t, Chain(value.Null(), value.Null()))
	assert.Empty(t, keys)
}

// treeNode lays out {data int32; left, right, parent, next *node}.
func treeNode() *types.Type {
	node := &types.Type{Kind: types.Record, Name: "BinaryNode<int32>", Size: 40}
	ptr := types.PointerTo(node)
	node.Fields = []types.Field{
		{Name: FieldData, Offset: 0, Type: types.Int32T},
		{Name: FieldLeft, Offset: 8, Type: ptr},
		{Name: "right", Offset: 16, Type: ptr},
		{Name: "parent", Offset: 24, Type: ptr},
		{Name: FieldNext, Offset: 32, Type: ptr},
	}
	return node
}

func treeRecord(node *types.Type) *types.Type {
	return types.NewRecord("Tree<int32>", 16, []types.Field{
		{Name: FieldRoot, Offset: 0, Type: types.PointerTo(node)},
		{Name: "numNodes", Offset: 8, Type: types.Uint64T},
	}, types.Int32T)
}

// putTreeNode writes a node with the given data and link targets.
func putTreeNode(t *testing.T, s *memory.Snapshot, addr uint64, data uint32, left, next uint64) {
	require.Nil(t, s.PutUint32(addr, data))
	require.Nil(t, s.PutUint64(addr+8, left))
	require.Nil(t, s.PutUint64(addr+32, next))
}

func TestTree(t *testing.T) {
	snapshot := memory.NewSnapshot(0x1000, make([]byte, 512))
	node := treeNode()
	tree := treeRecord(node)

	// Root 20 at 0x1040, left child 10 at 0x1080, right child 30 at 0x10c0.
	// Successor threading: 10 -> 20 -> 30 -> null.
	putTreeNode(t, snapshot, 0x1040, 20, 0x1080, 0x10c0)
	putTreeNode(t, snapshot, 0x1080, 10, 0, 0x1040)
	putTreeNode(t, snapshot, 0x10c0, 30, 0, 0)
	require.Nil(t, snapshot.PutUint64(0x1000, 0x1040)) // tree.root
	require.Nil(t, snapshot.PutUint64(0x1008, 3))      // tree.numNodes

	keys, items := collect(t, Tree(value.At(snapshot, tree, 0x1000)))
	assert.EqualValues(t, []string{"[0]", "[1]", "[2]"}, keys)
	assert.EqualValues(t, []int64{10, 20, 30}, items)
}

func TestTreeEmpty(t *testing.T) {
	snapshot := memory.NewSnapshot(0x1000, make([]byte, 64))
	tree := treeRecord(treeNode())

	keys, _ := collect(t, Tree(value.At(snapshot, tree, 0x1000)))
	assert.Empty(t, keys)
}

func TestChainMissingField(t *testing.T) {
	snapshot := memory.NewSnapshot(0x1000, make([]byte, 64))
	bare := types.NewRecord("Bare", 8, []types.Field{
		{Name: "payload", Offset: 0, Type: types.Int64T},
	})

	err := Chain(value.PtrAt(snapshot, bare, 0x1000), value.Null())(
		func(string, value.Value) (bool, error) { return true, nil })
	assert.ErrorIs(t, err, types.ErrNoField)
}
