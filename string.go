package inspect

import (
	"github.com/korindev/inspect/value"
	"github.com/korindev/inspect/walk"
)

// stringFormatter renders the string container, a thin wrapper over a char
// Array. The summary is the buffer text itself, there are no children.
type stringFormatter struct {
	buffer value.Ptr
	count  uint64
}

// NewString builds the StringBase formatter.
func NewString(v value.Value) (Formatter, error) {
	array, err := v.Field("array")
	if err != nil {
		return nil, err
	}
	buffer, err := array.Field("buffer")
	if err != nil {
		return nil, err
	}
	ptr, err := buffer.Pointer()
	if err != nil {
		return nil, err
	}
	count, err := fieldUint(array, "count")
	if err != nil {
		return nil, err
	}
	return &stringFormatter{buffer: ptr, count: count}, nil
}

func (f *stringFormatter) Hint() Hint {
	return HintString
}

func (f *stringFormatter) Children() walk.Seq {
	return nil
}

func (f *stringFormatter) Summary() (string, error) {
	if f.buffer.IsNull() {
		return "", nil
	}
	return f.buffer.Text(f.count)
}
