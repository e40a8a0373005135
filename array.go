package inspect

import (
	"fmt"
	"strconv"

	"github.com/korindev/inspect/types"
	"github.com/korindev/inspect/value"
	"github.com/korindev/inspect/walk"
)

// arrayFormatter renders the dynamic Array container: a heap buffer plus
// count and capacity counters.
type arrayFormatter struct {
	buffer   value.Ptr
	count    uint64
	capacity uint64
	elem     *types.Type
	isString bool
}

// NewArray builds the Array formatter.
func NewArray(v value.Value) (Formatter, error) {
	buffer, err := v.Field("buffer")
	if err != nil {
		return nil, err
	}
	ptr, err := buffer.Pointer()
	if err != nil {
		return nil, err
	}
	count, err := fieldUint(v, "count")
	if err != nil {
		return nil, err
	}
	capacity, err := fieldUint(v, "capacity")
	if err != nil {
		return nil, err
	}
	elem, ok := v.Type().Arg(0)
	if !ok {
		elem = ptr.Elem()
	}
	return &arrayFormatter{
		buffer:   ptr,
		count:    count,
		capacity: capacity,
		elem:     elem,
		isString: elem.IsChar(),
	}, nil
}

func (f *arrayFormatter) Hint() Hint {
	if f.isString {
		return HintString
	}
	return HintArray
}

func (f *arrayFormatter) Children() walk.Seq {
	if f.isString {
		return nil
	}
	return walk.Range(f.buffer, f.buffer.Advance(f.count))
}

func (f *arrayFormatter) Summary() (string, error) {
	if f.isString {
		text, err := f.buffer.Text(f.count)
		if err != nil {
			return "", err
		}
		return strconv.Quote(text), nil
	}
	return fmt.Sprintf("Array %s[%d] with max. capacity %d", f.elem, f.count, f.capacity), nil
}

func fieldUint(v value.Value, name string) (uint64, error) {
	field, err := v.Field(name)
	if err != nil {
		return 0, err
	}
	return field.Uint()
}
