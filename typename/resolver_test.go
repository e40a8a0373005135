package typename

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/korindev/inspect/types"
)

func TestSplit(t *testing.T) {
	var testCases = []struct {
		description string
		tag         string
		expectBase  string
		expectOk    bool
	}{
		{
			description: "nested template clause",
			tag:         "Map<int, Array<char> >",
			expectBase:  "Map",
			expectOk:    true,
		},
		{
			description: "no clause resolves to itself",
			tag:         "Quat",
			expectBase:  "Quat",
			expectOk:    true,
		},
		{
			description: "namespace qualified",
			tag:         "korin::Array<int32>",
			expectBase:  "korin::Array",
			expectOk:    true,
		},
		{
			description: "clause with pointer argument",
			tag:         "List<Entity*>",
			expectBase:  "List",
			expectOk:    true,
		},
		{
			description: "space before clause",
			tag:         "Foo <int>",
			expectOk:    false,
		},
		{
			description: "trailing garbage after clause",
			tag:         "Foo<int>x",
			expectOk:    false,
		},
		{
			description: "anonymous tag",
			tag:         "",
			expectOk:    false,
		},
		{
			description: "leading bracket",
			tag:         "<int>",
			expectOk:    false,
		},
	}

	for _, testCase := range testCases {
		base, _, ok := Split(testCase.tag)
		if !testCase.expectOk {
			assert.False(t, ok, testCase.description)
			continue
		}
		assert.True(t, ok, testCase.description)
		assert.EqualValues(t, testCase.expectBase, base, testCase.description)
	}
}

func TestResolve(t *testing.T) {
	record := types.NewRecord("Set<uint64>", 24, nil, types.Uint64T)

	base, ok := Resolve(record)
	assert.True(t, ok)
	assert.EqualValues(t, "Set", base)

	base, ok = Resolve(types.RefTo(types.TypedefOf("IdSet", record)))
	assert.True(t, ok)
	assert.EqualValues(t, "Set", base, "reference and typedef layers strip away")

	_, ok = Resolve(types.Int32T)
	assert.False(t, ok, "fundamental types have no tag")

	_, ok = Resolve(types.PointerTo(record))
	assert.False(t, ok, "pointers are not dereferenced by the resolver")

	_, ok = Resolve(nil)
	assert.False(t, ok)
}
